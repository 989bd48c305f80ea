package matchnotes

import (
	"fmt"
	"sort"

	"github.com/matchnotes/matchnotes-go/pkg/matchnotes/event"
)

// majorActions is the subset of categories where two events on the same
// second usually mean the note author wrote the same moment twice.
var majorActions = map[event.Action]struct{}{
	event.ActionGoal: {},
	event.ActionSave: {},
	event.ActionCard: {},
}

// sortTimeline orders events ascending by timestamp. The sort is stable
// so events sharing a second keep their source line order.
func sortTimeline(events []event.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp < events[j].Timestamp
	})
}

// validateTimeline runs a single backward pass over the sorted timeline
// and flags anomalies. Validation is strictly additive: warnings annotate
// the affected pair, the events themselves are never removed or mutated.
// Downstream highlight clipping tolerates a noisy but complete timeline
// far better than silently dropped events.
func validateTimeline(events []event.Event) []TimelineWarning {
	var warnings []TimelineWarning

	for i := len(events) - 1; i > 0; i-- {
		cur, prev := events[i], events[i-1]

		if cur.Timestamp < prev.Timestamp {
			warnings = append(warnings, TimelineWarning{
				Kind:      WarningOutOfOrder,
				Index:     i,
				Timestamp: cur.Timestamp,
				Message: fmt.Sprintf("event at %ds precedes its neighbour at %ds",
					cur.Timestamp, prev.Timestamp),
			})
			continue
		}

		if cur.Timestamp == prev.Timestamp && isMajor(cur.Action) && isMajor(prev.Action) {
			warnings = append(warnings, TimelineWarning{
				Kind:      WarningSimultaneousMajor,
				Index:     i,
				Timestamp: cur.Timestamp,
				Message: fmt.Sprintf("simultaneous %s and %s at %ds: possible double count",
					prev.Action, cur.Action, cur.Timestamp),
			})
		}
	}

	// Backward pass appends in reverse; restore chronological order.
	for l, r := 0, len(warnings)-1; l < r; l, r = l+1, r-1 {
		warnings[l], warnings[r] = warnings[r], warnings[l]
	}
	return warnings
}

func isMajor(a event.Action) bool {
	_, ok := majorActions[a]
	return ok
}
