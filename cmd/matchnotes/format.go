package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/mattn/go-runewidth"

	"github.com/matchnotes/matchnotes-go/pkg/matchnotes"
)

// ValidFormats lists all valid output formats.
var ValidFormats = map[string]bool{
	"jsonl":   true,
	"pretty":  true,
	"summary": true,
}

// OutputEvent writes an event in the specified format to the writer.
func OutputEvent(format string, ev matchnotes.Event, out io.Writer) error {
	switch format {
	case "jsonl":
		return OutputJSON(ev, out)
	case "pretty":
		return OutputPretty(ev, out)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// OutputJSON writes an event as JSON Lines format.
func OutputJSON(ev matchnotes.Event, out io.Writer) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// OutputPretty writes an event in human-readable form.
func OutputPretty(ev matchnotes.Event, out io.Writer) error {
	flags := ""
	if ev.FuzzyParsed {
		flags = " (fuzzy)"
	}

	var err error
	if ev.IsSystemEvent {
		_, err = fmt.Fprintf(out, "[%s] == %s ==\n", clockString(ev.Timestamp), ev.Action)
	} else {
		_, err = fmt.Fprintf(out, "[%s] %s: %s - %s%s\n",
			clockString(ev.Timestamp), ev.Player, ev.Action, ev.Description, flags)
	}
	return err
}

// OutputSummary writes the batch statistics: histogram, clip duration,
// and the player leaderboard as an aligned table.
func OutputSummary(result *matchnotes.Result, out io.Writer) error {
	fmt.Fprintf(out, "Events: %d", result.TotalActions)
	if len(result.Warnings) > 0 {
		fmt.Fprintf(out, " (%d warnings)", len(result.Warnings))
	}
	fmt.Fprintln(out)

	stats := result.Statistics
	fmt.Fprintf(out, "Total clip duration: %ds\n", stats.TotalClipDuration)
	fmt.Fprintf(out, "Average timestamp: %s\n", clockString(int(stats.AverageTimestamp)))

	// Histogram, sorted by count descending then name for determinism.
	type countEntry struct {
		action matchnotes.Action
		count  int
	}
	entries := make([]countEntry, 0, len(stats.ActionCounts))
	for a, n := range stats.ActionCounts {
		entries = append(entries, countEntry{a, n})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].action < entries[j].action
	})

	fmt.Fprintln(out, "\nActions:")
	for _, e := range entries {
		fmt.Fprintf(out, "  %-14s %d\n", e.action, e.count)
	}

	if len(stats.TopPlayers) == 0 {
		return nil
	}

	// Player names can be any width (accents, CJK); pad by display width.
	nameWidth := len("Player")
	for _, p := range stats.TopPlayers {
		if w := runewidth.StringWidth(p.Name); w > nameWidth {
			nameWidth = w
		}
	}

	fmt.Fprintf(out, "\nTop players:\n")
	fmt.Fprintf(out, "  %s  %5s  %s\n", pad("Player", nameWidth), "Total", "Breakdown")
	for _, p := range stats.TopPlayers {
		fmt.Fprintf(out, "  %s  %5d  %s\n", pad(p.Name, nameWidth), p.Total, breakdownString(p))
	}
	return nil
}

// pad right-pads s with spaces to the given display width.
func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	for gap > 0 {
		s += " "
		gap--
	}
	return s
}

// breakdownString formats a per-category breakdown as sorted action=count pairs.
func breakdownString(p matchnotes.PlayerStanding) string {
	actions := make([]string, 0, len(p.Breakdown))
	for a := range p.Breakdown {
		actions = append(actions, string(a))
	}
	sort.Strings(actions)

	s := ""
	for i, a := range actions {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%s=%d", a, p.Breakdown[matchnotes.Action(a)])
	}
	return s
}

// clockString renders seconds as a match clock, e.g. 930 -> "15:30".
func clockString(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
