package matchnotes

import (
	"sort"

	"github.com/matchnotes/matchnotes-go/pkg/matchnotes/event"
)

// maxTopPlayers caps the leaderboard length.
const maxTopPlayers = 5

// aggregatePlayers folds the timeline into one PlayerRecord per distinct
// player. Records are created lazily on first reference; SYSTEM and
// Unknown events are excluded from per-player aggregation (they still
// count toward the batch statistics).
func aggregatePlayers(events []event.Event) []PlayerRecord {
	byName := make(map[string]*PlayerRecord)
	var order []string

	for _, ev := range events {
		if ev.IsSystemEvent || ev.Player == event.PlayerSystem || ev.Player == event.PlayerUnknown {
			continue
		}

		rec, ok := byName[ev.Player]
		if !ok {
			rec = &PlayerRecord{Name: ev.Player}
			byName[ev.Player] = rec
			order = append(order, ev.Player)
		}

		rec.Actions = append(rec.Actions, ev)
		rec.Stats.Total++
		switch ev.Action {
		case event.ActionGoal:
			rec.Stats.Goals++
		case event.ActionAssist:
			rec.Stats.Assists++
		case event.ActionSave:
			rec.Stats.Saves++
		case event.ActionCard:
			rec.Stats.Cards++
		}
	}

	players := make([]PlayerRecord, 0, len(order))
	for _, name := range order {
		players = append(players, *byName[name])
	}
	return players
}

// aggregateStatistics computes the batch-level aggregates: the action
// histogram, the summed clip duration, the mean timestamp, and the
// top-player leaderboard.
func aggregateStatistics(events []event.Event, players []PlayerRecord) Statistics {
	stats := Statistics{
		ActionCounts: make(map[event.Action]int, len(events)),
	}

	var tsSum int
	for _, ev := range events {
		stats.ActionCounts[ev.Action]++
		stats.TotalClipDuration += ev.ClipTiming.Before + ev.ClipTiming.After
		tsSum += ev.Timestamp
	}
	if len(events) > 0 {
		stats.AverageTimestamp = float64(tsSum) / float64(len(events))
	}

	stats.TopPlayers = leaderboard(players)
	return stats
}

// leaderboard ranks players by total action count, descending, with name
// as a deterministic tie-break, and returns at most maxTopPlayers
// entries with full per-category breakdowns.
func leaderboard(players []PlayerRecord) []PlayerStanding {
	standings := make([]PlayerStanding, 0, len(players))
	for _, p := range players {
		breakdown := make(map[event.Action]int, len(p.Actions))
		for _, ev := range p.Actions {
			breakdown[ev.Action]++
		}
		standings = append(standings, PlayerStanding{
			Name:      p.Name,
			Total:     p.Stats.Total,
			Breakdown: breakdown,
		})
	}

	sort.Slice(standings, func(i, j int) bool {
		if standings[i].Total != standings[j].Total {
			return standings[i].Total > standings[j].Total
		}
		return standings[i].Name < standings[j].Name
	})

	if len(standings) > maxTopPlayers {
		standings = standings[:maxTopPlayers]
	}
	return standings
}
