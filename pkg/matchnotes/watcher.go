package matchnotes

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/nxadm/tail"

	"github.com/matchnotes/matchnotes-go/internal/parser"
)

// watcherErrBuffer is the buffer size for the error channel. A small
// buffer prevents error loss during brief moments when the consumer is
// busy processing events, while keeping memory usage minimal.
const watcherErrBuffer = 16

// WatchOption configures WatchFile behavior.
type WatchOption func(*watchConfig)

type watchConfig struct {
	parser    Parser
	fuzzy     bool
	fromStart bool
	logger    *slog.Logger
}

func defaultWatchConfig() *watchConfig {
	return &watchConfig{
		parser: CascadeParser{},
		fuzzy:  true,
	}
}

// WithWatchParser sets a custom parser for tailed note lines.
// If p is nil, this option has no effect (the cascade remains active).
func WithWatchParser(p Parser) WatchOption {
	return func(c *watchConfig) {
		if p != nil {
			c.parser = p
		}
	}
}

// WithWatchFromStart replays the existing file content before tailing
// new lines. Default is to start at the end of the file.
func WithWatchFromStart() WatchOption {
	return func(c *watchConfig) {
		c.fromStart = true
	}
}

// WithoutWatchFuzzy disables the fuzzy fallback for tailed lines.
func WithoutWatchFuzzy() WatchOption {
	return func(c *watchConfig) {
		c.fuzzy = false
	}
}

// WithWatchLogger sets a custom logger for debug output.
// If logger is nil, logging is disabled (default behavior).
func WithWatchLogger(logger *slog.Logger) WatchOption {
	return func(c *watchConfig) {
		c.logger = logger
	}
}

// WatchFile tails a notes file being written during a live match and
// streams parsed events over a channel. Lines are parsed with the same
// cascade-then-fuzzy pipeline as Parse; timeline assembly and statistics
// are batch concerns and do not apply here.
//
// Both returned channels are closed when ctx is cancelled or the tail
// stops. Line numbers follow the tailed file.
func WatchFile(ctx context.Context, path string, opts ...WatchOption) (<-chan Event, <-chan error, error) {
	cfg := defaultWatchConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	log := cfg.logger
	if log == nil {
		log = discardLogger()
	}

	tailCfg := tail.Config{
		Follow: true,
		ReOpen: true,
		Poll:   true,
		Logger: tail.DiscardingLogger,
	}
	if !cfg.fromStart {
		tailCfg.Location = &tail.SeekInfo{Whence: io.SeekEnd}
	}

	t, err := tail.TailFile(path, tailCfg)
	if err != nil {
		return nil, nil, err
	}

	eventCh := make(chan Event)
	errCh := make(chan error, watcherErrBuffer)

	go func() {
		defer close(eventCh)
		defer close(errCh)
		defer func() { _ = t.Stop() }()

		log.Debug("tailing notes file", "path", path, "from_start", cfg.fromStart)

		for {
			select {
			case <-ctx.Done():
				return
			case line, ok := <-t.Lines:
				if !ok {
					return
				}
				if line.Err != nil {
					sendError(ctx, errCh, line.Err)
					continue
				}
				processLine(ctx, cfg, line.Text, line.Num, eventCh, errCh)
			}
		}
	}()

	return eventCh, errCh, nil
}

func processLine(ctx context.Context, cfg *watchConfig, text string, num int, eventCh chan<- Event, errCh chan<- error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return
	}

	res, err := cfg.parser.ParseLine(ctx, trimmed)
	if res.Matched {
		for _, ev := range res.Events {
			if ev.LineNumber == 0 {
				ev.LineNumber = num
			}
			if ev.RawText == "" {
				ev.RawText = trimmed
			}
			select {
			case eventCh <- ev:
			case <-ctx.Done():
				return
			}
		}
		return
	}

	if cfg.fuzzy {
		if ev := parser.ParseFuzzy(trimmed); ev != nil {
			ev.LineNumber = num
			select {
			case eventCh <- *ev:
			case <-ctx.Done():
			}
			return
		}
	}

	if err != nil {
		sendError(ctx, errCh, ParseError{LineNumber: num, Content: trimmed, ErrorMessage: err.Error()})
	}
}

// sendError delivers an error without blocking forever on a stalled consumer.
func sendError(ctx context.Context, errCh chan<- error, err error) {
	select {
	case errCh <- err:
	case <-ctx.Done():
	}
}
