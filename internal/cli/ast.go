package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"graphparse/internal/diag"
	"graphparse/internal/parser"
)

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Print the parsed AST and diagnostics for a source file as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
}

type astOutput struct {
	Diagnostics []diag.Diagnostic `json:"diagnostics"`
	Program     *parser.Program   `json:"program"`
}

func runAST(cmd *cobra.Command, args []string) error {
	source, err := readSource(args[0])
	if err != nil {
		return err
	}
	set, err := loadNames()
	if err != nil {
		return err
	}
	logger.Info("parsing", "file", args[0], "bytes", len(source))

	diagnostics, program := parser.Parse(source, set)
	out := astOutput{Diagnostics: diagnostics, Program: program}

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
