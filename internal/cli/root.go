package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"graphparse/internal/names"
	"graphparse/internal/obslog"
)

var (
	namesFile string
	verbose   bool
	logger    obslog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "graphparse",
	Short: "Lex and parse graphing-calculator expressions",
	Long: `graphparse turns graphing-calculator source text into tokens,
a typed AST, or a rendered diagnostics report.

Subcommands:
  tokens  - print the token stream as JSON
  ast     - print the parsed AST (plus diagnostics) as JSON
  check   - render diagnostics with caret snippets and set the exit code`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := obslogLevel(verbose)
		logger = obslog.New(os.Stderr, level).WithRequestID(uuid.New().String())
	},
}

// Execute runs the CLI, returning any error from the selected subcommand.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&namesFile, "names", "", "path to a YAML file of auto-operator/auto-command names (default: built-in set)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func loadNames() (names.Set, error) {
	if namesFile == "" {
		return names.Default(), nil
	}
	return names.Load(namesFile)
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func obslogLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
