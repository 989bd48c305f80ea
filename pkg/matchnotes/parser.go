package matchnotes

import (
	"context"
	"errors"

	"github.com/matchnotes/matchnotes-go/pkg/matchnotes/event"
)

// LineResult represents the result of parsing one note line.
type LineResult struct {
	// Events contains the parsed events.
	Events []event.Event

	// Matched indicates whether the parser recognized the input.
	// This can be true even if Events is empty (e.g., a filter that
	// matches but outputs nothing).
	Matched bool
}

// Parser is the interface for note line parsers.
// Implementations include CascadeParser (the built-in grammar cascade)
// and pattern.RegexParser (YAML-defined custom grammars).
type Parser interface {
	// ParseLine parses a single note line.
	// Returns LineResult with Matched=true if the line was recognized.
	// Returns error only for extraction failures (not for unrecognized lines).
	ParseLine(ctx context.Context, line string) (LineResult, error)
}

// ParserFunc is an adapter to allow ordinary functions to be used as Parsers.
type ParserFunc func(ctx context.Context, line string) (LineResult, error)

// ParseLine implements the Parser interface.
func (f ParserFunc) ParseLine(ctx context.Context, line string) (LineResult, error) {
	return f(ctx, line)
}

// ChainMode specifies how ParserChain executes parsers.
type ChainMode int

const (
	// ChainFirst stops at the first parser that matches (default).
	// This is the cascade semantics: list order is disambiguation priority.
	ChainFirst ChainMode = iota

	// ChainAll executes all parsers and combines results.
	ChainAll

	// ChainContinueOnError skips parsers that return errors and continues.
	// Errors are collected and returned together at the end.
	ChainContinueOnError
)

// ParserChain combines multiple parsers.
type ParserChain struct {
	Mode    ChainMode
	Parsers []Parser
}

// ParseLine implements the Parser interface.
//
// If the context is cancelled during execution, ParseLine returns
// immediately with partial results and the context error.
func (c *ParserChain) ParseLine(ctx context.Context, line string) (LineResult, error) {
	var allEvents []event.Event
	var errs []error
	anyMatched := false

	for _, p := range c.Parsers {
		if err := ctx.Err(); err != nil {
			return LineResult{Events: allEvents, Matched: anyMatched}, err
		}
		if p == nil {
			continue
		}

		result, err := p.ParseLine(ctx, line)
		if err != nil {
			if c.Mode == ChainContinueOnError {
				errs = append(errs, err)
				continue
			}
			return LineResult{}, err
		}
		if result.Matched {
			anyMatched = true
			allEvents = append(allEvents, result.Events...)
			if c.Mode == ChainFirst {
				return LineResult{Events: allEvents, Matched: true}, nil
			}
		}
	}

	if len(errs) > 0 {
		return LineResult{Events: allEvents, Matched: anyMatched}, errors.Join(errs...)
	}
	return LineResult{Events: allEvents, Matched: anyMatched}, nil
}
