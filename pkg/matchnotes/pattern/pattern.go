// Package pattern provides custom line formats for match notes.
// It allows users to define their own note grammars via YAML
// configuration files with regular expression patterns, without touching
// the built-in cascade.
package pattern

// PatternFile represents the structure of a YAML pattern file.
//
// Example YAML file:
//
//	version: 1
//	patterns:
//	  - id: bracket_minute
//	    regex: '^\[(?P<minute>\d{1,3})\] (?P<player>\w+) (?P<description>.+)$'
//	    confidence: 0.75
//	  - id: radio_style
//	    regex: '^(?P<clock>\d{1,2}:\d{2}) \| (?P<description>.+) \| (?P<player>\w+)$'
type PatternFile struct {
	// Version is the pattern file format version. Currently only version 1 is supported.
	Version int `yaml:"version"`

	// Patterns is the list of pattern definitions.
	Patterns []Pattern `yaml:"patterns"`
}

// Pattern represents a single note line format.
//
// The regex uses named capture groups to mark the extracted fields:
//
//	clock        timestamp as MM:SS
//	minute       timestamp as minutes (stoppage "45+2" accepted)
//	player       player name token (normalized after capture)
//	description  text the action category is classified from
//
// One of clock/minute is required for a match to produce an event.
// If player is not captured it is derived from the description.
type Pattern struct {
	// ID is a unique identifier for this pattern (e.g., "bracket_minute").
	// IDs must be unique within a pattern file.
	ID string `yaml:"id"`

	// Regex is the regular expression to match against note lines.
	Regex string `yaml:"regex"`

	// Action optionally forces the category instead of classifying the
	// description (e.g. "goal"). Must name a valid category when set.
	Action string `yaml:"action,omitempty"`

	// Confidence is assigned to events this pattern produces.
	// Zero means the default of 0.7. Valid range is (0,1].
	Confidence float64 `yaml:"confidence,omitempty"`
}
