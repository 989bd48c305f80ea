package matchnotes

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchnotes/matchnotes-go/pkg/matchnotes/event"
)

func classified(ts int, action event.Action, player string) event.Event {
	def := event.DefinitionFor(action)
	return event.Event{
		Timestamp:  ts,
		Action:     action,
		Player:     player,
		ClipTiming: def.Clip,
		Priority:   def.Priority,
	}
}

func TestAggregatePlayers(t *testing.T) {
	events := []event.Event{
		classified(100, event.ActionGoal, "Smith"),
		classified(200, event.ActionSave, "Davies"),
		classified(300, event.ActionGoal, "Smith"),
		classified(400, event.ActionCard, "Smith"),
		classified(500, event.ActionAssist, "Jones"),
		classified(600, event.ActionTackle, "Jones"),
	}

	players := aggregatePlayers(events)
	require.Len(t, players, 3)

	byName := make(map[string]PlayerRecord, len(players))
	for _, p := range players {
		byName[p.Name] = p
	}

	smith := byName["Smith"]
	assert.Equal(t, PlayerStats{Goals: 2, Cards: 1, Total: 3}, smith.Stats)
	assert.Len(t, smith.Actions, 3)

	jones := byName["Jones"]
	assert.Equal(t, PlayerStats{Assists: 1, Total: 2}, jones.Stats)

	davies := byName["Davies"]
	assert.Equal(t, PlayerStats{Saves: 1, Total: 1}, davies.Stats)
}

func TestAggregatePlayersSkipsSystemAndUnknown(t *testing.T) {
	events := []event.Event{
		{Timestamp: 0, Action: event.ActionKickoff, Player: event.PlayerSystem, IsSystemEvent: true},
		classified(100, event.ActionOther, event.PlayerUnknown),
		classified(200, event.ActionGoal, "Smith"),
	}
	players := aggregatePlayers(events)
	require.Len(t, players, 1)
	assert.Equal(t, "Smith", players[0].Name)
}

func TestAggregateStatistics(t *testing.T) {
	events := []event.Event{
		classified(600, event.ActionGoal, "Smith"),   // clip 8+12
		classified(1200, event.ActionSave, "Davies"), // clip 5+8
		classified(1800, event.ActionGoal, "Smith"),  // clip 8+12
	}
	players := aggregatePlayers(events)
	stats := aggregateStatistics(events, players)

	assert.Equal(t, 2, stats.ActionCounts[event.ActionGoal])
	assert.Equal(t, 1, stats.ActionCounts[event.ActionSave])
	assert.Equal(t, 53, stats.TotalClipDuration)
	assert.Equal(t, 1200.0, stats.AverageTimestamp)

	require.Len(t, stats.TopPlayers, 2)
	assert.Equal(t, "Smith", stats.TopPlayers[0].Name)
	assert.Equal(t, 2, stats.TopPlayers[0].Total)
	assert.Equal(t, map[event.Action]int{event.ActionGoal: 2}, stats.TopPlayers[0].Breakdown)
}

func TestAggregateStatisticsEmpty(t *testing.T) {
	stats := aggregateStatistics(nil, nil)
	assert.Zero(t, stats.TotalClipDuration)
	assert.Zero(t, stats.AverageTimestamp)
	assert.Empty(t, stats.TopPlayers)
	assert.Empty(t, stats.ActionCounts)
}

func TestLeaderboardCapsAtFive(t *testing.T) {
	var events []event.Event
	for i := 0; i < 8; i++ {
		name := fmt.Sprintf("Player%c", 'A'+i)
		// Player A gets 9 actions, B gets 8, and so on.
		for j := 0; j < 9-i; j++ {
			events = append(events, classified(100*j, event.ActionGoal, name))
		}
	}

	players := aggregatePlayers(events)
	top := leaderboard(players)

	require.Len(t, top, maxTopPlayers)
	assert.Equal(t, "PlayerA", top[0].Name)
	assert.Equal(t, 9, top[0].Total)
	assert.Equal(t, "PlayerE", top[4].Name)
}

func TestLeaderboardTieBreaksByName(t *testing.T) {
	events := []event.Event{
		classified(100, event.ActionGoal, "Zed"),
		classified(200, event.ActionGoal, "Abel"),
	}
	top := leaderboard(aggregatePlayers(events))

	require.Len(t, top, 2)
	assert.Equal(t, "Abel", top[0].Name)
	assert.Equal(t, "Zed", top[1].Name)
}
