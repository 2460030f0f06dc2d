package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"labgrade/internal/config"
	"labgrade/internal/grader"
	"labgrade/internal/report"
	"labgrade/internal/vcs"
)

// runGraderPass is a test seam for grading execution.
var runGraderPass = grader.Run

// runGrade builds the handler for the grade command.
func runGrade(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		dir := fs.String("dir", "", "Directory to grade (default: current directory)")
		configPath := fs.String("config", "", "Path to config file (default: search for .labgrade/config.yml)")
		noColor := fs.Bool("no-color", false, "Disable ANSI colors in console output")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintln(stderr, "Usage: labgrade grade [--dir <path>] [--config <path>]")
			return ExitUsage
		}

		cfg, err := config.LoadOrDefault(*configPath, *dir)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		result, err := runGraderPass(context.Background(), grader.Params{
			Dir:    *dir,
			Config: cfg,
			Git:    vcs.NewClient(nil),
			Stderr: stderr,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Grading failed: %v\n", err)
			return ExitError
		}

		plain := *noColor || !isTerminal(stdout)
		fmt.Fprintln(stdout, report.RenderConsoleLine(result.Grade, plain))
		fmt.Fprintf(stdout, "Record: %s\n", result.Paths.Record)
		fmt.Fprintf(stdout, "Feedback: %s\n", result.Paths.Feedback)
		return ExitOK
	}
}

// isTerminal reports whether the writer is an interactive terminal.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
