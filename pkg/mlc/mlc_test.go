package mlc

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileSourceValid(t *testing.T) {
	var out bytes.Buffer
	code := CompileSource("let x: i32 = 5;", Config{Writer: &out})

	assert.Equal(t, 0, code)
	assert.Empty(t, out.String())
}

func TestCompileSourceSemanticError(t *testing.T) {
	var out bytes.Buffer
	code := CompileSource("return 1;", Config{Writer: &out})

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "Return statement not within a function scope")
	assert.Contains(t, out.String(), "-->")
}

func TestCompileSourceLexicalError(t *testing.T) {
	var out bytes.Buffer
	code := CompileSource(`let s: str = "unterminated`, Config{Writer: &out})

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "Unterminated string literal")
}

func TestCompileSourceWarningStillSucceeds(t *testing.T) {
	var out bytes.Buffer
	code := CompileSource("let x i32 = 5;", Config{Writer: &out})

	assert.Equal(t, 0, code, "warnings alone must not fail the build")
	assert.Contains(t, out.String(), "Missing ':' before type annotation")
}

func TestCompileSourceDebugPrintsTree(t *testing.T) {
	var out bytes.Buffer
	CompileSource("let x: i32 = 5;", Config{Debug: true, Writer: &out})

	assert.Contains(t, out.String(), "Program")
	assert.Contains(t, out.String(), "Variable x")
}

func TestCompileFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.ml")
	require.NoError(t, os.WriteFile(path, []byte("fn main() { }\n"), 0o644))

	var out bytes.Buffer
	code := CompileFile(path, Config{Writer: &out})
	assert.Equal(t, 0, code)
}

func TestCompileFileMissing(t *testing.T) {
	var out bytes.Buffer
	code := CompileFile(filepath.Join(t.TempDir(), "absent.ml"), Config{Writer: &out})

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "failed to read file")
}

// Diagnostics carry the file label the pipeline was given.
func TestRunFileLabelsDiagnostics(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.ml")
	require.NoError(t, os.WriteFile(path, []byte("return 1;\n"), 0o644))

	result, err := RunFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, result.Diagnostics)
	assert.Equal(t, path, result.Diagnostics[0].File)
}

func TestRunAccumulatesAllStages(t *testing.T) {
	// One semantic, one lexical, and one syntactic problem.
	src := "break;\nlet c: char = '';\nlet x: i32 = ;"
	result := Run(src, "<test>")

	require.False(t, result.Valid)
	joined := ""
	for _, d := range result.Diagnostics {
		joined += d.Message + "\n"
	}
	assert.Contains(t, joined, "Empty character literal")
	assert.Contains(t, joined, "Break statement not within a loop scope")
}

func TestRunDeterminism(t *testing.T) {
	src := "fn f(a: i32): i32 { return a + 1; }\nlet r: i32 = f(41);"

	first := Run(src, "<test>")
	second := Run(src, "<test>")

	require.Equal(t, len(first.Tokens), len(second.Tokens))
	require.Equal(t, len(first.Diagnostics), len(second.Diagnostics))
	assert.Equal(t, first.Program.String(), second.Program.String())
	assert.Equal(t, first.Valid, second.Valid)
}

func TestRunTokensEndWithEof(t *testing.T) {
	result := Run("", "<test>")
	require.Len(t, result.Tokens, 1)
	assert.True(t, strings.HasSuffix(result.Tokens[0].Kind.String(), "Eof"))
}
