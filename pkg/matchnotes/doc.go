// Package matchnotes converts free-text, human-authored match notes into
// a structured, time-ordered sequence of categorized events, annotated
// with per-category clip-timing windows and per-player statistics. The
// output feeds an automated highlight-video assembly stage.
//
// # Basic Usage
//
// To parse a batch of notes:
//
//	result, err := matchnotes.Parse(ctx, notes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, ev := range result.Actions {
//	    fmt.Printf("%4ds %-12s %s\n", ev.Timestamp, ev.Player, ev.Action)
//	}
//
// result.Actions is ascending by timestamp; the video cutter reads each
// event's ClipTiming as seconds of footage to retain around Timestamp.
//
// # Custom Parsers
//
// Implement the [Parser] interface to extend or replace the built-in
// grammar cascade, or load extra line formats from a YAML file with the
// [pattern] subpackage:
//
//	rp, err := pattern.NewRegexParserFromFile("formats.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := matchnotes.Parse(ctx, notes, matchnotes.WithParsers(rp))
//
// Use [ParserChain] to combine multiple parsers explicitly.
//
// # Live Notes
//
// WatchFile tails a notes file being written during a match and streams
// events over a channel:
//
//	events, errs, err := matchnotes.WatchFile(ctx, "notes.txt")
package matchnotes
