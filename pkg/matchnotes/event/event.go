// Package event defines the core Event type for match note parsing.
//
// This package is separated from the main matchnotes package to avoid
// import cycles between pkg/matchnotes and internal/parser.
package event

import (
	"sort"
	"strings"
)

// Action represents the category of a match event.
type Action string

const (
	// ActionGoal indicates a goal was scored.
	ActionGoal Action = "goal"

	// ActionAssist indicates a pass leading directly to a goal.
	ActionAssist Action = "assist"

	// ActionSave indicates a goalkeeper save or a block.
	ActionSave Action = "save"

	// ActionCard indicates a yellow or red card.
	ActionCard Action = "card"

	// ActionSubstitution indicates a player change.
	ActionSubstitution Action = "substitution"

	// ActionFoul indicates a foul or handball.
	ActionFoul Action = "foul"

	// ActionCorner indicates a corner kick.
	ActionCorner Action = "corner"

	// ActionOffside indicates an offside call.
	ActionOffside Action = "offside"

	// ActionChance indicates a scoring chance that did not convert.
	ActionChance Action = "chance"

	// ActionTackle indicates a tackle or defensive challenge.
	ActionTackle Action = "tackle"

	// ActionOther is the category for descriptions matching no keyword.
	ActionOther Action = "other"
)

// System pseudo-categories. These bypass the keyword table and are
// recognized directly by their markers (KO/HT/FT).
const (
	ActionKickoff  Action = "kickoff"
	ActionHalfTime Action = "half_time"
	ActionFullTime Action = "full_time"
)

const (
	// PlayerUnknown is the sentinel player name used when no name could
	// be extracted from a line.
	PlayerUnknown = "Unknown"

	// PlayerSystem is the player name attached to system events.
	PlayerSystem = "SYSTEM"
)

// MaxTimestamp is the highest valid event timestamp in seconds
// (120 minutes, covering extra time).
const MaxTimestamp = 7200

// allActions is the canonical list of all event categories.
// Add new categories here when extending the classifier.
var allActions = []Action{
	ActionGoal, ActionAssist, ActionSave, ActionCard, ActionSubstitution,
	ActionFoul, ActionCorner, ActionOffside, ActionChance, ActionTackle,
	ActionOther, ActionKickoff, ActionHalfTime, ActionFullTime,
}

// ActionNames returns a sorted list of all valid action category names.
// This is the single source of truth for category enumeration.
func ActionNames() []string {
	names := make([]string, len(allActions))
	for i, a := range allActions {
		names[i] = string(a)
	}
	sort.Strings(names)
	return names
}

// actionByName maps lowercase string names to Action for efficient lookup.
var actionByName = func() map[string]Action {
	m := make(map[string]Action, len(allActions))
	for _, a := range allActions {
		m[string(a)] = a
	}
	return m
}()

// ParseAction converts a string to an Action if valid.
// It is case-insensitive and trims leading/trailing whitespace.
// Returns the action and true if found, zero value and false otherwise.
func ParseAction(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	a, ok := actionByName[name]
	return a, ok
}

// ClipWindow holds the seconds of footage to retain around an event's
// timestamp when cutting highlight clips.
type ClipWindow struct {
	Before int `json:"before"`
	After  int `json:"after"`
}

// Event represents one recognized match occurrence parsed from a note line.
type Event struct {
	// Timestamp is the match clock position in seconds (0..MaxTimestamp).
	Timestamp int `json:"timestamp"`

	// Player is the canonical player name, PlayerUnknown, or PlayerSystem.
	Player string `json:"player"`

	// Action is the event category.
	Action Action `json:"action"`

	// Description is the free-text fragment the category was derived from.
	Description string `json:"description"`

	// RawText is the original note line.
	RawText string `json:"raw_text,omitempty"`

	// Confidence expresses how certain the parser is, in [0,1].
	Confidence float64 `json:"confidence"`

	// LineNumber is the 1-based source line index, for diagnostics.
	LineNumber int `json:"line_number"`

	// ClipTiming is the highlight clip window for the event's category.
	ClipTiming ClipWindow `json:"clip_timing"`

	// Priority is the category priority rank (lower is more important).
	Priority int `json:"priority"`

	// IsSystemEvent marks kickoff/half-time/full-time anchor events.
	IsSystemEvent bool `json:"is_system_event,omitempty"`

	// FuzzyParsed marks events recovered by the fallback parser.
	FuzzyParsed bool `json:"fuzzy_parsed,omitempty"`
}
