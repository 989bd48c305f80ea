package matchnotes

import (
	"log/slog"

	"github.com/matchnotes/matchnotes-go/pkg/matchnotes/event"
)

// ParseOption configures Parse/ParseReader/ParseFile behavior using the
// functional options pattern.
type ParseOption func(*parseConfig)

// parseConfig holds internal configuration for a batch parse.
type parseConfig struct {
	parser    Parser
	fuzzy     bool
	eventFunc func(event.Event)
	logger    *slog.Logger
}

// defaultParseConfig returns a parseConfig with sensible defaults.
func defaultParseConfig() *parseConfig {
	return &parseConfig{
		parser: CascadeParser{},
		fuzzy:  true,
	}
}

// applyParseOptions applies functional options to a parseConfig.
func applyParseOptions(opts []ParseOption) *parseConfig {
	cfg := defaultParseConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithParser sets a custom parser for note lines.
// If p is nil, this option has no effect (the cascade remains active).
func WithParser(p Parser) ParseOption {
	return func(c *parseConfig) {
		if p != nil {
			c.parser = p
		}
	}
}

// WithParsers combines the built-in cascade with additional parsers using
// ChainFirst mode: the cascade keeps priority, extras catch what it misses.
func WithParsers(parsers ...Parser) ParseOption {
	return func(c *parseConfig) {
		if len(parsers) == 0 {
			return
		}
		all := append([]Parser{CascadeParser{}}, parsers...)
		c.parser = &ParserChain{Mode: ChainFirst, Parsers: all}
	}
}

// WithoutFuzzy disables the fuzzy fallback, so lines no parser recognizes
// are dropped without the reduced-confidence recovery attempt.
func WithoutFuzzy() ParseOption {
	return func(c *parseConfig) {
		c.fuzzy = false
	}
}

// WithEventFunc registers a callback invoked for each parsed event, in
// source line order, before timeline assembly. Use this when a caller
// needs per-event streaming; batch completion is the return value of
// Parse itself.
func WithEventFunc(fn func(event.Event)) ParseOption {
	return func(c *parseConfig) {
		c.eventFunc = fn
	}
}

// WithLogger sets a custom logger for debug output.
// If logger is nil, logging is disabled (default behavior).
func WithLogger(logger *slog.Logger) ParseOption {
	return func(c *parseConfig) {
		c.logger = logger
	}
}
