package cli

import (
	"os"

	"github.com/spf13/cobra"

	"graphparse/internal/diag"
	"graphparse/internal/parser"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Parse a source file and render its diagnostics",
	Long: `check parses the given file and writes one caret-annotated snippet per
diagnostic to stderr. It exits 1 if any error-severity diagnostic was
recorded, 0 otherwise (warnings alone do not fail the check).`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	source, err := readSource(args[0])
	if err != nil {
		return err
	}
	set, err := loadNames()
	if err != nil {
		return err
	}
	logger.Info("checking", "file", args[0], "bytes", len(source))

	diagnostics, _ := parser.Parse(source, set)
	Render(os.Stderr, source, diagnostics, os.Getenv("NO_COLOR") == "")

	if hasError(diagnostics) {
		logger.Warn("check failed", "file", args[0], "diagnostics", len(diagnostics))
		os.Exit(1)
	}
	return nil
}

func hasError(diagnostics []diag.Diagnostic) bool {
	for _, d := range diagnostics {
		if d.Severity == diag.SeverityError {
			return true
		}
	}
	return false
}
