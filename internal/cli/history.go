package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"labgrade/internal/config"
	"labgrade/internal/history"
)

// runHistory builds the handler for the history command.
func runHistory(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		dir := fs.String("dir", ".", "Directory of the graded working tree")
		limit := fs.Int("limit", 20, "Maximum number of runs to list")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintln(stderr, "Usage: labgrade history [--dir <path>] [--limit <n>]")
			return ExitUsage
		}

		cfg, err := config.LoadOrDefault("", *dir)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		if cfg.Output.HistoryDB == "" {
			fmt.Fprintln(stdout, "Grade history is disabled in the config.")
			return ExitOK
		}
		dbPath := filepath.Join(*dir, cfg.Output.Dir, cfg.Output.HistoryDB)
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			fmt.Fprintln(stdout, "No grade history recorded yet.")
			return ExitOK
		}

		db, err := history.Open(dbPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open grade history: %v\n", err)
			return ExitError
		}
		defer db.Close()

		entries, err := history.List(context.Background(), db, *limit)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to list grade history: %v\n", err)
			return ExitError
		}
		if len(entries) == 0 {
			fmt.Fprintln(stdout, "No grade history recorded yet.")
			return ExitOK
		}
		for _, entry := range entries {
			commit := entry.Commit
			if commit == "" {
				commit = "-"
			}
			fmt.Fprintf(stdout, "%s  %s  %.8s  %g/%g\n",
				entry.RecordedAt.Format("2006-01-02 15:04"),
				entry.RunID,
				commit,
				entry.Total,
				entry.Max,
			)
		}
		return ExitOK
	}
}
