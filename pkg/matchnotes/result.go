package matchnotes

import (
	"fmt"

	"github.com/matchnotes/matchnotes-go/pkg/matchnotes/event"
)

// ParseError records a grammar extraction failure on a line that
// ultimately produced no event. Lines that simply match nothing are not
// recorded here; they are dropped silently.
type ParseError struct {
	LineNumber   int    `json:"line_number"`
	Content      string `json:"content"`
	ErrorMessage string `json:"error_message"`
}

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.LineNumber, e.ErrorMessage)
}

// WarningKind classifies a timeline anomaly.
type WarningKind string

const (
	// WarningOutOfOrder flags an event whose timestamp is strictly less
	// than its predecessor's. After sorting this can only happen through
	// downstream misuse of the slice.
	WarningOutOfOrder WarningKind = "out_of_order"

	// WarningSimultaneousMajor flags two adjacent events sharing a
	// timestamp where both are major (goal, save, card). That is either
	// a double-counted note or a true near-simultaneous pair, and is
	// left for a human to resolve.
	WarningSimultaneousMajor WarningKind = "simultaneous_major"
)

// TimelineWarning is an informational annotation attached to a pair of
// adjacent events in the sorted timeline. The events themselves are
// retained unchanged.
type TimelineWarning struct {
	Kind      WarningKind `json:"kind"`
	Index     int         `json:"index"` // index of the later event of the pair
	Timestamp int         `json:"timestamp"`
	Message   string      `json:"message"`
}

// PlayerStats holds the per-category counters for one player.
type PlayerStats struct {
	Goals   int `json:"goals"`
	Assists int `json:"assists"`
	Saves   int `json:"saves"`
	Cards   int `json:"cards"`
	Total   int `json:"total"`
}

// PlayerRecord aggregates every event attributed to one distinct player.
// Records are created lazily on first reference and never deleted within
// a batch. SYSTEM and Unknown events carry no record.
type PlayerRecord struct {
	Name    string        `json:"name"`
	Actions []event.Event `json:"actions"`
	Stats   PlayerStats   `json:"statistics"`
}

// PlayerStanding is one leaderboard entry: a player's total action count
// with a full per-category breakdown.
type PlayerStanding struct {
	Name      string               `json:"name"`
	Total     int                  `json:"total"`
	Breakdown map[event.Action]int `json:"breakdown"`
}

// Statistics holds the batch-level aggregates.
type Statistics struct {
	// ActionCounts is the histogram of retained events per category.
	ActionCounts map[event.Action]int `json:"action_counts"`

	// TotalClipDuration is the summed clip window (before+after) of all
	// retained events, in seconds.
	TotalClipDuration int `json:"total_clip_duration"`

	// AverageTimestamp is the arithmetic mean of all event timestamps.
	AverageTimestamp float64 `json:"average_timestamp"`

	// TopPlayers lists up to five players by total action count.
	TopPlayers []PlayerStanding `json:"top_players"`
}

// Result is the engine's single output for one batch of notes.
// It is assembled once and not mutated afterwards.
type Result struct {
	// Actions is the full event timeline, ascending by timestamp.
	Actions []event.Event `json:"actions"`

	// Players holds the per-player aggregation records, unordered.
	Players []PlayerRecord `json:"players"`

	// TotalActions equals len(Actions).
	TotalActions int `json:"total_actions"`

	// ParseErrors lists grammar extraction failures, in line order.
	ParseErrors []ParseError `json:"parse_errors"`

	// Warnings lists timeline anomalies found during assembly.
	Warnings []TimelineWarning `json:"warnings"`

	// Statistics holds the batch aggregates.
	Statistics Statistics `json:"statistics"`
}
