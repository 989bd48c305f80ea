// Package parser implements the match-note line grammar cascade and its
// fuzzy fallback.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matchnotes/matchnotes-go/pkg/matchnotes/event"
)

// Parse attempts one note line against the grammar cascade.
//
// Returns:
//   - (*Event, nil): a grammar matched, extracted, and validated
//   - (nil, nil): no grammar recognized the line
//   - (nil, error): one or more matched grammars failed during extraction
//     and no later grammar recovered the line
//
// A grammar whose pattern matches but whose candidate fails validation
// (out-of-range timestamp, empty player or action) is skipped silently;
// the cascade simply moves on to the next grammar.
func Parse(line string) (*event.Event, error) {
	// Trim trailing CR for Windows CRLF compatibility
	line = strings.TrimRight(line, "\r")

	var extractErrs []error
	for _, g := range grammars {
		m := g.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		ev, err := g.extract(m)
		if err != nil {
			extractErrs = append(extractErrs, fmt.Errorf("grammar %s: %w", g.name, err))
			continue
		}
		if ev == nil || !valid(ev) {
			continue
		}

		ev.Confidence = g.confidence
		ev.RawText = line
		return ev, nil
	}

	if len(extractErrs) > 0 {
		return nil, errors.Join(extractErrs...)
	}
	return nil, nil
}

// valid applies the field checks every candidate event must pass
// regardless of which grammar produced it.
func valid(ev *event.Event) bool {
	if ev.Timestamp < 0 || ev.Timestamp > event.MaxTimestamp {
		return false
	}
	if ev.Player == "" {
		return false
	}
	if ev.Action == "" {
		return false
	}
	return true
}
