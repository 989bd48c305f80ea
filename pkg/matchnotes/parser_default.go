package matchnotes

import (
	"context"

	"github.com/matchnotes/matchnotes-go/internal/parser"
	"github.com/matchnotes/matchnotes-go/pkg/matchnotes/event"
)

// CascadeParser wraps the built-in grammar cascade: an ordered list of
// line grammars tried until one matches, extracts, and validates.
// It does not run the fuzzy fallback; the batch engine applies that
// after every configured parser has missed.
type CascadeParser struct{}

// ParseLine implements the Parser interface.
// The context parameter is for future use (e.g., timeout/cancellation).
func (CascadeParser) ParseLine(ctx context.Context, line string) (LineResult, error) {
	ev, err := parser.Parse(line)
	if err != nil {
		return LineResult{}, err
	}
	if ev == nil {
		return LineResult{Matched: false}, nil
	}
	return LineResult{Events: []event.Event{*ev}, Matched: true}, nil
}

// Ensure CascadeParser implements Parser.
var _ Parser = CascadeParser{}
