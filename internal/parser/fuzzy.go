package parser

import (
	"regexp"
	"strings"

	"github.com/matchnotes/matchnotes-go/pkg/matchnotes/event"
)

// FuzzyConfidence is the fixed confidence assigned to every event the
// fallback parser recovers.
const FuzzyConfidence = 0.5

var (
	fuzzyClockPattern    = regexp.MustCompile(`\b(\d{1,3}:\d{2})\b`)
	fuzzyStoppagePattern = regexp.MustCompile(`\b(\d{1,3}\+\d{1,2})'`)
	fuzzyMinutePattern   = regexp.MustCompile(`\b(\d{1,3})'`)
	fuzzyBarePattern     = regexp.MustCompile(`\b(\d{1,3})\b`)
)

// ParseFuzzy is the fallback for lines no grammar recognized. It
// independently re-derives timestamp, category, and player with
// reduced-confidence heuristics and requires all three: a valid
// timestamp, a category other than "other", and a player other than
// "Unknown". A line missing any of the three yields nil, a silent
// miss, never an error.
func ParseFuzzy(line string) *event.Event {
	line = strings.TrimRight(line, "\r")

	secs, ok := fuzzyTimestamp(line)
	if !ok || secs > event.MaxTimestamp {
		return nil
	}

	// Keyword table only; the contextual rules are reserved for the
	// grammar path where the description is better scoped.
	action, ok := event.ClassifyKeywords(line)
	if !ok {
		return nil
	}

	player := fuzzyName(line)
	if player == event.PlayerUnknown {
		return nil
	}

	def := event.DefinitionFor(action)
	return &event.Event{
		Timestamp:   secs,
		Player:      player,
		Action:      action,
		Description: strings.TrimSpace(line),
		RawText:     line,
		Confidence:  FuzzyConfidence,
		ClipTiming:  def.Clip,
		Priority:    def.Priority,
		FuzzyParsed: true,
	}
}

// fuzzyTimestamp scans for a time token anywhere in the line, trying the
// notations in a fixed order: clock, stoppage, apostrophe minute, then a
// bare number read as minutes.
func fuzzyTimestamp(line string) (int, bool) {
	if m := fuzzyClockPattern.FindStringSubmatch(line); m != nil {
		if secs, ok := ParseClock(m[1]); ok {
			return secs, true
		}
	}
	if m := fuzzyStoppagePattern.FindStringSubmatch(line); m != nil {
		if secs, ok := ParseMinutes(m[1]); ok {
			return secs, true
		}
	}
	if m := fuzzyMinutePattern.FindStringSubmatch(line); m != nil {
		if secs, ok := ParseMinutes(m[1]); ok {
			return secs, true
		}
	}
	if m := fuzzyBarePattern.FindStringSubmatch(line); m != nil {
		if secs, ok := ParseMinutes(m[1]); ok {
			return secs, true
		}
	}
	return 0, false
}

// fuzzyName applies the capitalized-token heuristic only; the "by" and
// possessive patterns belong to the grammar path.
func fuzzyName(line string) string {
	if tok := firstCapitalized(line); tok != "" {
		return NormalizeName(tok)
	}
	return event.PlayerUnknown
}
