package matchnotes

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchnotes/matchnotes-go/pkg/matchnotes/event"
)

const sampleNotes = `KO
10:00 - Smith goal from close range
23' great block Davies saves it

Header saved by Jones at 31 minutes
HT: 1-0
52:10 - Smith goal again
min 60: Wilson booked
Great atmosphere today
FT: 2-1
`

func TestParseCanonicalFormat(t *testing.T) {
	result, err := Parse(context.Background(), "15:30 - Smith goal from penalty")
	require.NoError(t, err)
	require.Equal(t, 1, result.TotalActions)

	ev := result.Actions[0]
	assert.Equal(t, 930, ev.Timestamp)
	assert.Equal(t, "Smith", ev.Player)
	assert.Equal(t, event.ActionGoal, ev.Action)
	assert.Equal(t, 0.9, ev.Confidence)
	assert.Equal(t, 1, ev.LineNumber)
}

func TestParseSystemMarkers(t *testing.T) {
	result, err := Parse(context.Background(), "HT: 1-0\nFT: 2-1")
	require.NoError(t, err)
	require.Equal(t, 2, result.TotalActions)

	ht := result.Actions[0]
	assert.Equal(t, event.PlayerSystem, ht.Player)
	assert.Equal(t, event.ActionHalfTime, ht.Action)
	assert.Equal(t, 2700, ht.Timestamp)
	assert.Equal(t, 1.0, ht.Confidence)
	assert.True(t, ht.IsSystemEvent)

	ft := result.Actions[1]
	assert.Equal(t, event.ActionFullTime, ft.Action)
	assert.Equal(t, 5400, ft.Timestamp)
}

func TestParseFuzzyFallback(t *testing.T) {
	result, err := Parse(context.Background(), "23' great block Davies saves it")
	require.NoError(t, err)
	require.Equal(t, 1, result.TotalActions)

	ev := result.Actions[0]
	assert.True(t, ev.FuzzyParsed)
	assert.Equal(t, 0.5, ev.Confidence)
	assert.Equal(t, event.ActionSave, ev.Action)
	assert.Equal(t, "Davies", ev.Player)
}

func TestParseSilentDrop(t *testing.T) {
	// A line matching no grammar and failing the fuzzy fallback is
	// dropped without a parse error. This pins current behavior; see
	// the audit-trail note in DESIGN.md before changing it.
	result, err := Parse(context.Background(), "Great atmosphere today")
	require.NoError(t, err)
	assert.Zero(t, result.TotalActions)
	assert.Empty(t, result.ParseErrors)
}

func TestParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "\n\n\n", "   \n\t\n"} {
		result, err := Parse(context.Background(), input)
		require.NoError(t, err)
		assert.Zero(t, result.TotalActions)
		assert.Empty(t, result.Actions)
		assert.Empty(t, result.Players)
	}
}

func TestParseIdempotent(t *testing.T) {
	first, err := Parse(context.Background(), sampleNotes)
	require.NoError(t, err)
	second, err := Parse(context.Background(), sampleNotes)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseOrderingAndRangeInvariants(t *testing.T) {
	result, err := Parse(context.Background(), sampleNotes)
	require.NoError(t, err)
	require.NotZero(t, result.TotalActions)

	assert.Equal(t, len(result.Actions), result.TotalActions)
	for i, ev := range result.Actions {
		assert.GreaterOrEqual(t, ev.Timestamp, 0)
		assert.LessOrEqual(t, ev.Timestamp, event.MaxTimestamp)
		if i > 0 {
			assert.GreaterOrEqual(t, ev.Timestamp, result.Actions[i-1].Timestamp,
				"actions must be ascending by timestamp")
		}
	}
}

func TestParsePlayerAggregation(t *testing.T) {
	notes := "10:00 - Smith goal\n20:00 - Smith goal from the edge"
	result, err := Parse(context.Background(), notes)
	require.NoError(t, err)

	require.Len(t, result.Players, 1)
	smith := result.Players[0]
	assert.Equal(t, "Smith", smith.Name)
	assert.Equal(t, 2, smith.Stats.Goals)
	assert.Equal(t, 2, smith.Stats.Total)
	assert.Len(t, smith.Actions, 2)
}

func TestParseExcludesSystemAndUnknownFromPlayers(t *testing.T) {
	notes := "HT: 0-0\n15th minute - cleared off the line\n10:00 - Smith goal"
	result, err := Parse(context.Background(), notes)
	require.NoError(t, err)

	require.Equal(t, 3, result.TotalActions)
	require.Len(t, result.Players, 1)
	assert.Equal(t, "Smith", result.Players[0].Name)

	// They still count toward the global histogram.
	assert.Equal(t, 1, result.Statistics.ActionCounts[event.ActionHalfTime])
	assert.Equal(t, 1, result.Statistics.ActionCounts[event.ActionOther])
}

func TestParseClipDurationSum(t *testing.T) {
	// One goal (8+12) plus one save (5+8) is 33 seconds of footage.
	notes := "10:00 - Smith goal\n20:00 - Jones great save"
	result, err := Parse(context.Background(), notes)
	require.NoError(t, err)

	require.Equal(t, 2, result.TotalActions)
	assert.Equal(t, 33, result.Statistics.TotalClipDuration)
	assert.Equal(t, 900.0, result.Statistics.AverageTimestamp)
}

func TestParseNameNormalization(t *testing.T) {
	for _, raw := range []string{"SMITH", "smith", "Smith"} {
		result, err := Parse(context.Background(), "10:00 - "+raw+" goal")
		require.NoError(t, err)
		require.Equal(t, 1, result.TotalActions)
		assert.Equal(t, "Smith", result.Actions[0].Player, "input %q", raw)
	}
}

func TestParseIndentedLineKeepsGrammarConfidence(t *testing.T) {
	result, err := Parse(context.Background(), "   15:30 - Smith goal from penalty")
	require.NoError(t, err)
	require.Equal(t, 1, result.TotalActions)

	// Indentation must not demote the line to the fuzzy fallback.
	ev := result.Actions[0]
	assert.False(t, ev.FuzzyParsed)
	assert.Equal(t, 0.9, ev.Confidence)
	assert.Equal(t, "15:30 - Smith goal from penalty", ev.RawText)
}

func TestParseSimultaneousMajorWarning(t *testing.T) {
	notes := "10:00 - Smith goal\n10:00 - Jones goal"
	result, err := Parse(context.Background(), notes)
	require.NoError(t, err)

	// Both events stay in the timeline; the anomaly is only annotated.
	require.Equal(t, 2, result.TotalActions)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, WarningSimultaneousMajor, result.Warnings[0].Kind)
	assert.Equal(t, 600, result.Warnings[0].Timestamp)
}

func TestParseLineNumbersCountBlankLines(t *testing.T) {
	notes := "\n\n10:00 - Smith goal"
	result, err := Parse(context.Background(), notes)
	require.NoError(t, err)
	require.Equal(t, 1, result.TotalActions)
	assert.Equal(t, 3, result.Actions[0].LineNumber)
}

func TestParseEventFuncStreamsInLineOrder(t *testing.T) {
	var seen []int
	notes := "20:00 - Smith goal\n10:00 - Jones great save"
	result, err := Parse(context.Background(), notes, WithEventFunc(func(ev Event) {
		seen = append(seen, ev.LineNumber)
	}))
	require.NoError(t, err)

	// Callback fires in source order even though the result is sorted.
	assert.Equal(t, []int{1, 2}, seen)
	assert.Equal(t, 600, result.Actions[0].Timestamp)
}

func TestParseWithoutFuzzy(t *testing.T) {
	result, err := Parse(context.Background(), "23' great block Davies saves it", WithoutFuzzy())
	require.NoError(t, err)
	assert.Zero(t, result.TotalActions)
}

func TestParseRecordsExtractionErrors(t *testing.T) {
	failing := ParserFunc(func(ctx context.Context, line string) (LineResult, error) {
		if strings.Contains(line, "boom") {
			return LineResult{}, errors.New("extractor exploded")
		}
		return LineResult{Matched: false}, nil
	})

	result, err := Parse(context.Background(), "nothing here boom", WithParser(failing))
	require.NoError(t, err)
	require.Len(t, result.ParseErrors, 1)
	assert.Equal(t, 1, result.ParseErrors[0].LineNumber)
	assert.Contains(t, result.ParseErrors[0].ErrorMessage, "extractor exploded")

	// If the fuzzy fallback recovers the line, no error is recorded.
	result, err = Parse(context.Background(), "23' boom great block Davies saves it", WithParser(failing))
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalActions)
	assert.Empty(t, result.ParseErrors)
}

func TestParseContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Parse(ctx, sampleNotes)
	require.ErrorIs(t, err, context.Canceled)
}

func TestParseReader(t *testing.T) {
	result, err := ParseReader(context.Background(), strings.NewReader("10:00 - Smith goal"))
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalActions)
}
