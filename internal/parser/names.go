package parser

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/matchnotes/matchnotes-go/pkg/matchnotes/event"
)

var (
	// Matches: "saved by Jones", "header by Smith"
	// Captures: (1) name
	byNamePattern = regexp.MustCompile(`\bby\s+([A-Za-z][A-Za-z'\-]*)`)

	// Matches: "Smith's header"
	// Captures: (1) name
	possessivePattern = regexp.MustCompile(`\b([A-Za-z][A-Za-z'\-]+)'s\b`)

	capitalizedToken = regexp.MustCompile(`^[A-Z][A-Za-z'\-]*$`)
)

// nameDenylist holds capitalized words that commonly start a note line
// but are never player names: category nouns, connectors, and the usual
// sentence openers note authors reach for.
var nameDenylist = map[string]struct{}{}

func init() {
	words := []string{
		"goal", "goals", "assist", "save", "card", "corner", "foul",
		"offside", "chance", "tackle", "substitution", "sub", "penalty",
		"yellow", "red", "header", "shot", "volley", "free", "kick",
		"keeper", "goalkeeper", "ball", "box", "net", "post", "bar",
		"half", "full", "time", "minute", "minutes", "min",
		"the", "a", "an", "he", "she", "it", "they", "what", "big",
		"great", "good", "brilliant", "amazing", "huge", "lovely",
		"after", "before", "into", "from", "with", "and", "but",
		"ht", "ft", "ko",
	}
	for _, w := range words {
		nameDenylist[w] = struct{}{}
	}
}

var titleCaser = cases.Title(language.English)

// ExtractName derives a player name from free text when the active
// grammar did not capture one explicitly. Attempts, in order: a
// "by <Name>" phrase, a possessive "<Name>'s", then the first
// capitalized token that is not a known non-name word. Returns
// event.PlayerUnknown if all three fail.
func ExtractName(text string) string {
	if m := byNamePattern.FindStringSubmatch(text); m != nil {
		return NormalizeName(m[1])
	}
	if m := possessivePattern.FindStringSubmatch(text); m != nil {
		return NormalizeName(m[1])
	}
	if tok := firstCapitalized(text); tok != "" {
		return NormalizeName(tok)
	}
	return event.PlayerUnknown
}

// firstCapitalized returns the first capitalized token in the text that
// is not on the denylist, or "" if there is none.
func firstCapitalized(text string) string {
	for _, tok := range strings.Fields(text) {
		tok = strings.Trim(tok, ".,!?:;()\"")
		if !capitalizedToken.MatchString(tok) {
			continue
		}
		if _, denied := nameDenylist[strings.ToLower(tok)]; denied {
			continue
		}
		return tok
	}
	return ""
}

// NormalizeName canonicalizes an extracted player name: trim surrounding
// whitespace, title-case each token, and strip every character that is
// not a letter, space, apostrophe, or hyphen.
//
// The title caser treats an apostrophe between letters as word-internal
// and leaves the following letter lowercase, so the segment after an
// apostrophe or hyphen is uppercased explicitly ("o'brien" becomes
// "O'Brien", not "O'brien").
func NormalizeName(name string) string {
	name = titleCaser.String(strings.TrimSpace(name))

	var b strings.Builder
	b.Grow(len(name))
	var prev rune
	for _, r := range name {
		switch {
		case unicode.IsLetter(r):
			if prev == '\'' || prev == '-' {
				r = unicode.ToUpper(r)
			}
		case r == ' ' || r == '\'' || r == '-':
		default:
			continue
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}
