package cmd

import (
	"fmt"
	"os"

	"github.com/mlclang/mlc/internal/diag"
	"github.com/mlclang/mlc/internal/lexer"
	"github.com/spf13/cobra"
)

var (
	showPos    bool
	onlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize an ML file or expression",
	Long: `Tokenize an ML program and print the resulting tokens, one per
line. Useful for debugging the lexer and understanding how source code
is split up.

Examples:
  # Tokenize a source file
  mlc lex program.ml

  # Tokenize inline code with spans
  mlc lex --show-pos -e "let x: i32 = 5;"

  # Show only lexical diagnostics
  mlc lex --only-errors program.ml`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token spans (line:col-line:col)")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "print only lexical diagnostics")
}

func lexScript(command *cobra.Command, args []string) error {
	input, filename, err := readInput(args)
	if err != nil {
		return err
	}

	l := lexer.New(input, lexer.WithFile(filename))
	tokens := l.Lex()

	if !onlyErrors {
		for _, tok := range tokens {
			if showPos {
				fmt.Printf("%-10s %-20q [%s]\n", tok.Kind, tok.Lexeme, tok.Span)
			} else {
				fmt.Printf("%-10s %q\n", tok.Kind, tok.Lexeme)
			}
		}
	}

	diag.Print(os.Stderr, l.Diagnostics())
	if diag.HasErrors(l.Diagnostics()) {
		command.SilenceUsage = true
		return fmt.Errorf("lexing failed with %d diagnostic(s)", len(l.Diagnostics()))
	}
	return nil
}
