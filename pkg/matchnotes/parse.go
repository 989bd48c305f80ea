package matchnotes

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/matchnotes/matchnotes-go/internal/parser"
)

// Parse converts a batch of free-text match notes into a structured,
// time-ordered Result.
//
// The input is newline-delimited text (LF or CRLF); blank and
// whitespace-only lines are skipped, and surrounding whitespace is
// stripped before matching so indented notes hit the anchored grammars
// at full confidence. Each remaining line is attempted against the
// configured parser (the grammar cascade by default) and, if nothing
// matches, against the fuzzy fallback. Parsed events are sorted
// by timestamp, annotated with timeline warnings, and folded into
// per-player and batch statistics.
//
// No input causes Parse to fail on its own: empty or entirely
// unparseable text yields a Result with TotalActions 0. The only error
// returns are context cancellation and a parser implementation failing
// outright. The engine has no internal cancellation hook inside a single
// line attempt; wrap the call with a context timeout to bound
// pathological inputs.
func Parse(ctx context.Context, notes string, opts ...ParseOption) (*Result, error) {
	cfg := applyParseOptions(opts)
	log := cfg.logger
	if log == nil {
		log = discardLogger()
	}

	var (
		events    []Event
		parseErrs []ParseError
	)

	lines := strings.Split(notes, "\n")
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		lineNo := i + 1
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		res, err := cfg.parser.ParseLine(ctx, trimmed)
		if res.Matched {
			for _, ev := range res.Events {
				if ev.LineNumber == 0 {
					ev.LineNumber = lineNo
				}
				if ev.RawText == "" {
					ev.RawText = trimmed
				}
				events = append(events, ev)
				if cfg.eventFunc != nil {
					cfg.eventFunc(ev)
				}
			}
			continue
		}

		// Cascade exhausted. Try the fuzzy fallback before giving up.
		if cfg.fuzzy {
			if ev := parser.ParseFuzzy(trimmed); ev != nil {
				ev.LineNumber = lineNo
				log.Debug("fuzzy parsed line", "line", lineNo, "player", ev.Player, "action", ev.Action)
				events = append(events, *ev)
				if cfg.eventFunc != nil {
					cfg.eventFunc(*ev)
				}
				continue
			}
		}

		// The line produced nothing. Extraction errors surface in
		// ParseErrors for diagnosability; lines that merely matched no
		// grammar are dropped silently.
		if err != nil {
			parseErrs = append(parseErrs, ParseError{
				LineNumber:   lineNo,
				Content:      trimmed,
				ErrorMessage: err.Error(),
			})
			log.Debug("line failed extraction", "line", lineNo, "error", err)
		} else {
			log.Debug("unparseable line dropped", "line", lineNo)
		}
	}

	sortTimeline(events)
	warnings := validateTimeline(events)

	players := aggregatePlayers(events)
	stats := aggregateStatistics(events, players)

	return &Result{
		Actions:      events,
		Players:      players,
		TotalActions: len(events),
		ParseErrors:  parseErrs,
		Warnings:     warnings,
		Statistics:   stats,
	}, nil
}

// ParseReader reads all notes from r and parses them as one batch.
func ParseReader(ctx context.Context, r io.Reader, opts ...ParseOption) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(ctx, string(data), opts...)
}

// ParseFile reads a notes file and parses it as one batch.
func ParseFile(ctx context.Context, path string, opts ...ParseOption) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(ctx, string(data), opts...)
}

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
