package lexer

import "github.com/mlclang/mlc/internal/source"

// TokenKind classifies a token produced by the lexer.
type TokenKind int

const (
	// None marks an unclassified token. The lexer never emits it: an
	// unrecognized byte is reported and skipped. The parser's end-of-
	// stream check still treats an empty-lexeme None token as the end.
	None TokenKind = iota

	// Literals
	Integer   // 42
	Float     // 3.14
	Boolean   // reserved; true/false currently lex as keywords
	Character // 'a', '\n'
	String    // "hello"

	// Names
	Identifier // x, count, Point
	Keyword    // let, fn, if, ...

	// Punctuation
	Operator  // + == && ..
	Delimiter // ( ) { } : ; ,

	// Eof terminates every token stream exactly once.
	Eof
)

var tokenKindNames = [...]string{
	None:       "None",
	Integer:    "Integer",
	Float:      "Float",
	Boolean:    "Boolean",
	Character:  "Character",
	String:     "String",
	Identifier: "Identifier",
	Keyword:    "Keyword",
	Operator:   "Operator",
	Delimiter:  "Delimiter",
	Eof:        "Eof",
}

// String returns the kind's name for debug output.
func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "Unknown"
	}
	return tokenKindNames[k]
}

// Token is a single lexeme with its classification and source span.
// The lexeme is the raw source slice, including the surrounding quotes
// for string and character literals.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Span   source.Span
}

// Is reports whether the token has the given kind.
func (t Token) Is(kind TokenKind) bool {
	return t.Kind == kind
}

// IsValue reports whether the token's lexeme equals value.
func (t Token) IsValue(value string) bool {
	return t.Lexeme == value
}

// Pos returns the token's start position.
func (t Token) Pos() source.Position {
	return t.Span.Start
}
