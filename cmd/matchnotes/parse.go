package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matchnotes/matchnotes-go/pkg/matchnotes"
	"github.com/matchnotes/matchnotes-go/pkg/matchnotes/pattern"
)

var (
	// parse flags
	parseFormat   string
	patternFiles  []string
	minConfidence float64
	noFuzzy       bool
	showWarnings  bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a match notes file into structured events",
	Long: `Parse a batch of match notes into a time-ordered event timeline.

Reads from the given file, or stdin when no file is specified.
Events are output as JSON Lines by default (one JSON object per line),
which makes it easy to process with tools like jq.

Examples:
  # Parse a notes file
  matchnotes parse notes.txt

  # Parse from stdin, human-readable output
  cat notes.txt | matchnotes parse --format pretty

  # Statistics summary with the player leaderboard
  matchnotes parse notes.txt --format summary

  # Add custom line formats from a YAML file
  matchnotes parse notes.txt --patterns club-formats.yaml

  # Only keep confident events
  matchnotes parse notes.txt --min-confidence 0.8

  # Pipe to jq for filtering
  matchnotes parse notes.txt | jq 'select(.action == "goal")'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "jsonl",
		"Output format: jsonl, pretty, summary")
	parseCmd.Flags().StringSliceVarP(&patternFiles, "patterns", "p", nil,
		"YAML pattern files with additional line formats")
	parseCmd.Flags().Float64Var(&minConfidence, "min-confidence", 0,
		"Drop events below this confidence from the output")
	parseCmd.Flags().BoolVar(&noFuzzy, "no-fuzzy", false,
		"Disable the fuzzy fallback parser")
	parseCmd.Flags().BoolVarP(&showWarnings, "warnings", "w", false,
		"Print timeline warnings and parse errors to stderr")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if !ValidFormats[parseFormat] {
		return fmt.Errorf("unknown format: %s", parseFormat)
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts, err := buildParseOptions()
	if err != nil {
		return err
	}

	var notes []byte
	if len(args) == 1 {
		notes, err = os.ReadFile(args[0])
	} else {
		notes, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("reading notes: %w", err)
	}

	result, err := matchnotes.Parse(ctx, string(notes), opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if parseFormat == "summary" {
		return OutputSummary(result, out)
	}

	for _, ev := range result.Actions {
		if ev.Confidence < minConfidence {
			continue
		}
		if err := OutputEvent(parseFormat, ev, out); err != nil {
			return err
		}
	}

	if showWarnings {
		errOut := cmd.ErrOrStderr()
		for _, w := range result.Warnings {
			fmt.Fprintf(errOut, "warning: %s\n", w.Message)
		}
		for _, pe := range result.ParseErrors {
			fmt.Fprintf(errOut, "parse error: line %d: %s\n", pe.LineNumber, pe.ErrorMessage)
		}
	}
	return nil
}

// buildParseOptions assembles the engine options from the parse flags.
func buildParseOptions() ([]matchnotes.ParseOption, error) {
	var opts []matchnotes.ParseOption

	if len(patternFiles) > 0 {
		parsers := make([]matchnotes.Parser, 0, len(patternFiles))
		for i, path := range patternFiles {
			rp, err := pattern.NewRegexParserFromFile(path)
			if err != nil {
				// Error from the pattern package is already sanitized (no path)
				return nil, fmt.Errorf("pattern file %d: %w", i+1, err)
			}
			parsers = append(parsers, rp)
		}
		opts = append(opts, matchnotes.WithParsers(parsers...))
	}

	if noFuzzy {
		opts = append(opts, matchnotes.WithoutFuzzy())
	}
	return opts, nil
}
