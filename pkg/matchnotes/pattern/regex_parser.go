package pattern

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/matchnotes/matchnotes-go/internal/parser"
	"github.com/matchnotes/matchnotes-go/pkg/matchnotes"
	"github.com/matchnotes/matchnotes-go/pkg/matchnotes/event"
)

// DefaultConfidence is assigned to events from patterns that do not set
// their own confidence.
const DefaultConfidence = 0.7

// RegexParser is a Parser implementation that matches note lines using
// user-defined regular expression patterns from a YAML file.
//
// Patterns are tried in file order and the first one that matches,
// extracts, and validates wins, the same first-valid-match semantics as
// the built-in cascade.
//
// RegexParser is safe for concurrent use by multiple goroutines.
type RegexParser struct {
	patterns []*compiledPattern
}

type compiledPattern struct {
	id         string
	action     event.Action // forced category, "" to classify the description
	confidence float64
	regex      *regexp.Regexp
	groups     map[string]int // named capture group -> submatch index
}

// NewRegexParser creates a RegexParser from a PatternFile. All regular
// expressions are compiled up front; an invalid regex yields a
// PatternError.
func NewRegexParser(pf *PatternFile) (*RegexParser, error) {
	if pf == nil {
		return nil, fmt.Errorf("pattern file is nil")
	}

	patterns := make([]*compiledPattern, 0, len(pf.Patterns))
	for i, p := range pf.Patterns {
		re, err := regexp.Compile(p.Regex)
		if err != nil {
			return nil, &PatternError{
				Index:   i,
				ID:      p.ID,
				Field:   "regex",
				Message: fmt.Sprintf("invalid regular expression: %v", err),
				Cause:   err,
			}
		}

		groups := make(map[string]int)
		for j, name := range re.SubexpNames() {
			if j > 0 && name != "" {
				groups[name] = j
			}
		}
		if _, hasClock := groups["clock"]; !hasClock {
			if _, hasMinute := groups["minute"]; !hasMinute {
				return nil, &PatternError{
					Index: i, ID: p.ID, Field: "regex",
					Message: "a clock or minute capture group is required",
				}
			}
		}

		conf := p.Confidence
		if conf == 0 {
			conf = DefaultConfidence
		}

		// Re-checked here so a hand-built PatternFile that skipped Parse
		// gets the same strictness as a loaded one.
		var action event.Action
		if p.Action != "" {
			a, ok := event.ParseAction(p.Action)
			if !ok {
				return nil, &PatternError{
					Index: i, ID: p.ID, Field: "action",
					Message: fmt.Sprintf("unknown action category %q", p.Action),
				}
			}
			action = a
		}

		patterns = append(patterns, &compiledPattern{
			id:         p.ID,
			action:     action,
			confidence: conf,
			regex:      re,
			groups:     groups,
		})
	}

	return &RegexParser{patterns: patterns}, nil
}

// NewRegexParserFromFile loads a pattern file and creates a RegexParser
// in one step.
func NewRegexParserFromFile(path string) (*RegexParser, error) {
	pf, err := Load(path)
	if err != nil {
		return nil, err
	}
	return NewRegexParser(pf)
}

// ParseLine implements the matchnotes.Parser interface.
//
// The context parameter is currently unused but is provided for future
// enhancements (e.g., timeout support).
func (p *RegexParser) ParseLine(ctx context.Context, line string) (matchnotes.LineResult, error) {
	line = strings.TrimRight(line, "\r")

	for _, cp := range p.patterns {
		m := cp.regex.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		ev, err := cp.extract(m, line)
		if err != nil {
			return matchnotes.LineResult{}, fmt.Errorf("pattern %q: %w", cp.id, err)
		}
		if ev == nil {
			continue
		}

		return matchnotes.LineResult{Events: []event.Event{*ev}, Matched: true}, nil
	}

	return matchnotes.LineResult{Matched: false}, nil
}

// extract builds a candidate event from the pattern's named groups.
// It returns (nil, nil) when a captured field fails validation, so the
// next pattern gets its turn.
func (cp *compiledPattern) extract(m []string, line string) (*event.Event, error) {
	secs, ok, err := cp.timestamp(m)
	if err != nil {
		return nil, err
	}
	if !ok || secs > event.MaxTimestamp {
		return nil, nil
	}

	description := cp.group(m, "description")
	if description == "" {
		description = line
	}

	player := cp.group(m, "player")
	if player != "" {
		player = parser.NormalizeName(player)
	} else {
		player = parser.ExtractName(description)
	}
	if player == "" {
		return nil, nil
	}

	action := cp.action
	if action == "" {
		action = event.Classify(description)
	}

	def := event.DefinitionFor(action)
	return &event.Event{
		Timestamp:   secs,
		Player:      player,
		Action:      action,
		Description: strings.TrimSpace(description),
		RawText:     line,
		Confidence:  cp.confidence,
		ClipTiming:  def.Clip,
		Priority:    def.Priority,
	}, nil
}

func (cp *compiledPattern) timestamp(m []string) (int, bool, error) {
	if tok := cp.group(m, "clock"); tok != "" {
		secs, ok := parser.ParseClock(tok)
		return secs, ok, nil
	}
	if tok := cp.group(m, "minute"); tok != "" {
		secs, ok := parser.ParseMinutes(tok)
		return secs, ok, nil
	}
	return 0, false, fmt.Errorf("no timestamp captured")
}

func (cp *compiledPattern) group(m []string, name string) string {
	idx, ok := cp.groups[name]
	if !ok || idx >= len(m) {
		return ""
	}
	return m[idx]
}
