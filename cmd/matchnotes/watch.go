package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matchnotes/matchnotes-go/pkg/matchnotes"
)

var (
	// watch flags
	watchFormat    string
	watchFromStart bool
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Tail a live notes file and output events as they are written",
	Long: `Tail a notes file being written during a match and output each
parsed event as soon as its line lands in the file.

Examples:
  # Follow the note-taker's file during a match
  matchnotes watch notes.txt

  # Replay the whole file first, then follow
  matchnotes watch notes.txt --from-start

  # Human-readable output
  matchnotes watch notes.txt --format pretty`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchFormat, "format", "f", "jsonl",
		"Output format: jsonl, pretty")
	watchCmd.Flags().BoolVar(&watchFromStart, "from-start", false,
		"Replay existing file content before tailing")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if watchFormat != "jsonl" && watchFormat != "pretty" {
		return fmt.Errorf("unknown format: %s", watchFormat)
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var opts []matchnotes.WatchOption
	if watchFromStart {
		opts = append(opts, matchnotes.WithWatchFromStart())
	}

	events, errs, err := matchnotes.WatchFile(ctx, args[0], opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := OutputEvent(watchFormat, ev, out); err != nil {
				return err
			}
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
	}
}
