package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"labgrade/internal/config"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: search for .labgrade/config.yml)")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintln(stderr, "Usage: labgrade validate [--config <path>]")
			return ExitUsage
		}

		path := *configPath
		if path == "" {
			found, err := config.FindConfigPath("")
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					fmt.Fprintln(stdout, "No config file found; built-in defaults apply.")
					return ExitOK
				}
				fmt.Fprintf(stderr, "Failed to locate config: %v\n", err)
				return ExitError
			}
			path = found
		}

		if _, err := config.Load(path); err != nil {
			var validationErr *config.ValidationError
			if errors.As(err, &validationErr) {
				fmt.Fprintf(stderr, "Config %s is invalid:\n", path)
				for _, issue := range validationErr.Issues {
					fmt.Fprintf(stderr, "  - %s: %s\n", issue.Field, issue.Message)
				}
				return ExitError
			}
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Config %s is valid.\n", path)
		return ExitOK
	}
}
