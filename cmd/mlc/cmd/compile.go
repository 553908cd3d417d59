package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mlclang/mlc/internal/diag"
	"github.com/mlclang/mlc/pkg/mlc"
	"github.com/mlclang/mlc/pkg/printer"
	"github.com/spf13/cobra"
)

var evalExpr string

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile an ML file or expression",
	Long: `Run the full front-end pipeline on an ML program: tokenize,
parse, and semantically analyze. Diagnostics are written to stderr with
source context; the exit code is 0 only when the program is valid.

Examples:
  # Compile a source file
  mlc compile program.ml

  # Compile inline code
  mlc compile -e "let x: i32 = 5;"

  # Print the syntax tree and pause at shutdown
  mlc compile -g program.ml`,
	Args: cobra.MaximumNArgs(1),
	RunE: compileScript,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "compile inline code instead of reading from file")
}

func compileScript(command *cobra.Command, args []string) error {
	input, filename, err := readInput(args)
	if err != nil {
		return err
	}

	result := mlc.Run(input, filename)

	if debugFlag && result.Program != nil {
		printer.New(printer.WithSpans(true)).Print(os.Stdout, result.Program)
	}
	diag.Print(os.Stderr, result.Diagnostics)

	if debugFlag {
		pauseForEnter()
	}
	if !result.Valid {
		command.SilenceUsage = true
		return fmt.Errorf("compilation failed with %d diagnostic(s)", len(result.Diagnostics))
	}
	return nil
}

// pauseForEnter blocks until the user presses Enter, so a debug session
// launched from a GUI keeps its output on screen.
func pauseForEnter() {
	fmt.Fprint(os.Stderr, "Press Enter to exit...")
	bufio.NewReader(os.Stdin).ReadString('\n')
}
