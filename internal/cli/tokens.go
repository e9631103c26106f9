package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"graphparse/internal/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the token stream for a source file as JSON lines",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	source, err := readSource(args[0])
	if err != nil {
		return err
	}
	logger.Info("tokenizing", "file", args[0], "bytes", len(source))

	lex := lexer.New(source)
	enc := json.NewEncoder(os.Stdout)
	for {
		t := lex.Next()
		if err := enc.Encode(t); err != nil {
			return err
		}
		if t.Kind == lexer.KindEOF {
			return nil
		}
	}
}
