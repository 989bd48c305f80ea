package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matchnotes/matchnotes-go/pkg/matchnotes/event"
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List action categories, keywords, and clip windows",
	Long: `List the action categories the classifier recognizes, the keywords
that select each one, and the clip window a downstream video cutter
retains around events of that category.`,
	RunE: runActions,
}

func init() {
	rootCmd.AddCommand(actionsCmd)
}

func runActions(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%-14s %-9s %-11s %s\n", "CATEGORY", "PRIORITY", "CLIP (s)", "KEYWORDS")
	for _, d := range event.Definitions {
		fmt.Fprintf(out, "%-14s %-9d -%d/+%-7d %s\n",
			d.Action, d.Priority, d.Clip.Before, d.Clip.After,
			strings.Join(d.Keywords, ", "))
	}

	fmt.Fprintln(out, "\nSystem markers (no keywords):")
	for _, a := range []event.Action{event.ActionKickoff, event.ActionHalfTime, event.ActionFullTime} {
		fmt.Fprintf(out, "  %s\n", a)
	}
	return nil
}
