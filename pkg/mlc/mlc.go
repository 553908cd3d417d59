// Package mlc is the embedding API over the ML front-end pipeline:
// lexer, parser, and semantic analyzer, with diagnostics rendered to a
// configurable sink.
package mlc

import (
	"fmt"
	"io"
	"os"

	"github.com/mlclang/mlc/internal/ast"
	"github.com/mlclang/mlc/internal/diag"
	"github.com/mlclang/mlc/internal/lexer"
	"github.com/mlclang/mlc/internal/parser"
	"github.com/mlclang/mlc/internal/semantic"
	"github.com/mlclang/mlc/pkg/printer"
)

// Config controls a compilation run.
type Config struct {
	// Debug prints the AST tree after parsing.
	Debug bool

	// Writer receives diagnostics and debug output. Defaults to stderr.
	Writer io.Writer
}

func (c Config) writer() io.Writer {
	if c.Writer != nil {
		return c.Writer
	}
	return os.Stderr
}

// Result is the full outcome of a pipeline run, for tools that need
// more than an exit code.
type Result struct {
	Tokens      []lexer.Token
	Program     *ast.Program
	Diagnostics []*diag.Diagnostic
	Valid       bool
}

// Run executes the pipeline on a source string labelled with file. All
// stages run to completion; diagnostics from every stage accumulate by
// stage (lexical, then syntactic, then semantic), each stage's in source
// order.
func Run(src, file string) *Result {
	l := lexer.New(src, lexer.WithFile(file))
	tokens := l.Lex()

	p := parser.New(tokens, src, parser.WithFile(file))
	program := p.ParseProgram()

	a := semantic.NewAnalyzer(src, semantic.WithFile(file))
	a.Analyze(program)

	var diags []*diag.Diagnostic
	diags = append(diags, l.Diagnostics()...)
	diags = append(diags, p.Diagnostics()...)
	diags = append(diags, a.Diagnostics()...)

	return &Result{
		Tokens:      tokens,
		Program:     program,
		Diagnostics: diags,
		Valid:       !diag.HasErrors(diags),
	}
}

// RunFile reads path and executes the pipeline on its contents.
func RunFile(path string) (*Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return Run(string(content), path), nil
}

// CompileSource compiles a source string, renders all diagnostics to the
// configured writer, and returns the process exit code: 0 when the
// program parsed and is semantically valid, 1 otherwise.
func CompileSource(src string, cfg Config) int {
	return finish(Run(src, "<source>"), cfg)
}

// CompileFile reads path and compiles it like CompileSource.
func CompileFile(path string, cfg Config) int {
	result, err := RunFile(path)
	if err != nil {
		fmt.Fprintf(cfg.writer(), "Error: %v\n", err)
		return 1
	}
	return finish(result, cfg)
}

func finish(result *Result, cfg Config) int {
	w := cfg.writer()
	if cfg.Debug && result.Program != nil {
		printer.Print(w, result.Program)
	}
	diag.Print(w, result.Diagnostics)
	if !result.Valid {
		return 1
	}
	return 0
}
