package cmd

import (
	"fmt"
	"os"

	"github.com/mlclang/mlc/internal/diag"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:   "mlc [file]",
	Short: "ML compiler front-end",
	Long: `mlc is the compiler front-end for the ML language.

It tokenizes, parses, and semantically analyzes ML programs, reporting
every diagnostic with source context and caret underlines. Subcommands
expose each pipeline stage for debugging and learning:

  mlc program.ml          compile (lex, parse, analyze)
  mlc lex program.ml      print the token stream
  mlc parse program.ml    print the syntax tree`,
	Version: Version,
	Args:    cobra.ArbitraryArgs,
	FParseErrWhitelist: cobra.FParseErrWhitelist{
		UnknownFlags: true,
	},
	RunE: func(command *cobra.Command, args []string) error {
		if len(args) == 0 {
			return command.Help()
		}
		return compileScript(command, args[:1])
	},
}

// Execute runs the root command.
func Execute() error {
	diag.EnableVirtualTerminal()
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "g", false,
		"print the syntax tree and pause before exiting")
}

// readInput resolves the source text for a command: the inline -e
// expression when given, otherwise the file named by the argument.
func readInput(args []string) (input, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) != 1 {
		return "", "", fmt.Errorf("provide a source file or use -e")
	}
	content, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
	}
	return string(content), args[0], nil
}
