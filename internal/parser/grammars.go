package parser

import (
	"regexp"
	"strings"

	"github.com/matchnotes/matchnotes-go/pkg/matchnotes/event"
)

// grammar is one line-shape pattern plus its extraction rule. The cascade
// tries grammars in declaration order; the order encodes disambiguation
// priority for lines that could structurally satisfy more than one shape.
//
// extract returns (nil, nil) when a matched line fails field-level
// extraction (e.g. an out-of-range clock); that is a signal to continue
// the cascade, not an error. A non-nil error marks a genuine extraction
// failure and is surfaced in ParseErrors if the line ends up unmatched.
type grammar struct {
	name       string
	re         *regexp.Regexp
	confidence float64
	extract    func(m []string) (*event.Event, error)
}

var grammars = []grammar{
	{
		// "15:30 - Smith goal from penalty"
		name:       "dash_clock",
		re:         regexp.MustCompile(`^(\d{1,3}:\d{2})\s*-\s*(\S+)\s+(.+)$`),
		confidence: 0.9,
		extract: func(m []string) (*event.Event, error) {
			secs, ok := ParseClock(m[1])
			if !ok {
				return nil, nil
			}
			return describedEvent(secs, NormalizeName(m[2]), m[3]), nil
		},
	},
	{
		// "Smith goal 15:30"
		name:       "name_action_clock",
		re:         regexp.MustCompile(`^([A-Z][A-Za-z'\-]*)\s+(.+?)\s+(\d{1,3}:\d{2})$`),
		confidence: 0.8,
		extract: func(m []string) (*event.Event, error) {
			secs, ok := ParseClock(m[3])
			if !ok {
				return nil, nil
			}
			return describedEvent(secs, NormalizeName(m[1]), m[2]), nil
		},
	},
	{
		// "15:30 Smith goal"
		name:       "clock_name_action",
		re:         regexp.MustCompile(`^(\d{1,3}:\d{2})\s+(\S+)\s+(.+)$`),
		confidence: 0.85,
		extract: func(m []string) (*event.Event, error) {
			secs, ok := ParseClock(m[1])
			if !ok {
				return nil, nil
			}
			return describedEvent(secs, NormalizeName(m[2]), m[3]), nil
		},
	},
	{
		// "Header saved by Jones at 23 minutes"
		name:       "by_name_at_minutes",
		re:         regexp.MustCompile(`(?i)^(.+?)\s+by\s+([A-Za-z'\-]+)\s+at\s+(\d{1,3})\s*min(?:ute)?s?$`),
		confidence: 0.8,
		extract: func(m []string) (*event.Event, error) {
			secs, ok := ParseMinutes(m[3])
			if !ok {
				return nil, nil
			}
			return describedEvent(secs, NormalizeName(m[2]), m[1]), nil
		},
	},
	{
		// "45+2' - Smith goal"
		name:       "apostrophe_minute",
		re:         regexp.MustCompile(`^(\d{1,3}(?:\+\d{1,2})?)'\s*-\s*(\S+)\s+(.+)$`),
		confidence: 0.85,
		extract: func(m []string) (*event.Event, error) {
			secs, ok := ParseMinutes(m[1])
			if !ok {
				return nil, nil
			}
			return describedEvent(secs, NormalizeName(m[2]), m[3]), nil
		},
	},
	{
		// "HT: 1-0", "FT 2-1", "KO"
		name:       "system_marker",
		re:         regexp.MustCompile(`(?i)^(HT|FT|KO)\b[:\s]*(.*)$`),
		confidence: 1.0,
		extract: func(m []string) (*event.Event, error) {
			return systemEvent(strings.ToUpper(m[1]), strings.TrimSpace(m[2])), nil
		},
	},
	{
		// "min 23: Smith goal"
		name:       "min_prefix",
		re:         regexp.MustCompile(`(?i)^min\.?\s*(\d{1,3})\s*:\s*(\S+)\s+(.+)$`),
		confidence: 0.75,
		extract: func(m []string) (*event.Event, error) {
			secs, ok := ParseMinutes(m[1])
			if !ok {
				return nil, nil
			}
			return describedEvent(secs, NormalizeName(m[2]), m[3]), nil
		},
	},
	{
		// "23rd minute - header by Smith"
		name:       "ordinal_minute",
		re:         regexp.MustCompile(`(?i)^(\d{1,3})(?:st|nd|rd|th)\s+minute\s*[-:]\s*(.+)$`),
		confidence: 0.7,
		extract: func(m []string) (*event.Event, error) {
			secs, ok := ParseMinutes(m[1])
			if !ok {
				return nil, nil
			}
			// This shape carries no explicit player token.
			return describedEvent(secs, ExtractName(m[2]), m[2]), nil
		},
	},
}

// describedEvent builds a candidate event from the common grammar fields,
// classifying the description and stamping category-derived metadata.
func describedEvent(secs int, player, description string) *event.Event {
	action := event.Classify(description)
	def := event.DefinitionFor(action)
	return &event.Event{
		Timestamp:   secs,
		Player:      player,
		Action:      action,
		Description: strings.TrimSpace(description),
		ClipTiming:  def.Clip,
		Priority:    def.Priority,
	}
}

// Match-clock anchors for system markers, in seconds.
const (
	kickoffSeconds  = 0
	halfTimeSeconds = 45 * 60
	fullTimeSeconds = 90 * 60
)

func systemEvent(marker, rest string) *event.Event {
	var (
		action event.Action
		secs   int
	)
	switch marker {
	case "KO":
		action, secs = event.ActionKickoff, kickoffSeconds
	case "HT":
		action, secs = event.ActionHalfTime, halfTimeSeconds
	case "FT":
		action, secs = event.ActionFullTime, fullTimeSeconds
	default:
		return nil
	}

	def := event.DefinitionFor(action)
	return &event.Event{
		Timestamp:     secs,
		Player:        event.PlayerSystem,
		Action:        action,
		Description:   rest,
		ClipTiming:    def.Clip,
		Priority:      def.Priority,
		IsSystemEvent: true,
	}
}
