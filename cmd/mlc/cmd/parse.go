package cmd

import (
	"fmt"
	"os"

	"github.com/mlclang/mlc/internal/diag"
	"github.com/mlclang/mlc/internal/lexer"
	"github.com/mlclang/mlc/internal/parser"
	"github.com/mlclang/mlc/pkg/printer"
	"github.com/spf13/cobra"
)

var parseSpans bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse an ML file or expression and print the syntax tree",
	Long: `Parse an ML program and print the abstract syntax tree. The
semantic analyzer does not run; only lexical and syntactic diagnostics
are reported.

Examples:
  # Print a file's syntax tree
  mlc parse program.ml

  # Parse inline code with node spans
  mlc parse --spans -e "a + b * c;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: parseScript,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading from file")
	parseCmd.Flags().BoolVar(&parseSpans, "spans", false, "show node spans in the tree")
}

func parseScript(command *cobra.Command, args []string) error {
	input, filename, err := readInput(args)
	if err != nil {
		return err
	}

	l := lexer.New(input, lexer.WithFile(filename))
	tokens := l.Lex()
	p := parser.New(tokens, input, parser.WithFile(filename))
	program := p.ParseProgram()

	printer.New(printer.WithSpans(parseSpans)).Print(os.Stdout, program)

	diags := append(l.Diagnostics(), p.Diagnostics()...)
	diag.Print(os.Stderr, diags)
	if diag.HasErrors(diags) {
		command.SilenceUsage = true
		return fmt.Errorf("parsing failed with %d diagnostic(s)", len(diags))
	}
	return nil
}
