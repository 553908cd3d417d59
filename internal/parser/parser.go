// Package parser builds an ML syntax tree from a token stream.
//
// The parser is recursive descent with an explicit precedence-climbing
// ladder for expressions. It never aborts: every expectation failure
// emits a diagnostic and either advances or substitutes a best-effort
// placeholder subtree, so one pass reports as many problems as possible.
package parser

import (
	"fmt"

	"github.com/mlclang/mlc/internal/ast"
	"github.com/mlclang/mlc/internal/diag"
	"github.com/mlclang/mlc/internal/lexer"
	"github.com/mlclang/mlc/internal/source"
)

// Parser consumes a token stream and produces a Program.
type Parser struct {
	tokens      []lexer.Token
	pos         int
	prev        lexer.Token // last consumed token, for "just past" spans
	src         string
	file        string
	diagnostics []*diag.Diagnostic
}

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithFile sets the file label used in diagnostics.
func WithFile(name string) Option {
	return func(p *Parser) {
		p.file = name
	}
}

// New creates a Parser over the given tokens. The source string is kept
// for diagnostic rendering only.
func New(tokens []lexer.Token, src string, opts ...Option) *Parser {
	p := &Parser{
		tokens: tokens,
		src:    src,
		file:   "<source>",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Diagnostics returns the syntactic diagnostics accumulated so far.
func (p *Parser) Diagnostics() []*diag.Diagnostic {
	return p.diagnostics
}

// ParseProgram parses the whole token stream into a Program. On a
// statement that fails to produce anything, the loop advances one token
// and retries, so a malformed fragment never wedges the parser.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	start := p.peek().Span.Start

	for !p.isEof() {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		} else {
			p.advance()
		}
	}

	program.Loc = source.NewSpan(start, p.prev.Span.End)
	if len(program.Statements) == 0 {
		program.Loc = source.NewSpan(start, p.peek().Span.End)
	}
	return program
}

// ----------------------------------------------------------------------
// Token cursor
// ----------------------------------------------------------------------

var eofToken = lexer.Token{Kind: lexer.Eof}

// peek returns the current token without consuming it.
func (p *Parser) peek() lexer.Token {
	return p.look(0)
}

// look returns the token offset positions past the current one.
func (p *Parser) look(offset int) lexer.Token {
	idx := p.pos + offset
	if idx < 0 || idx >= len(p.tokens) {
		return eofToken
	}
	return p.tokens[idx]
}

// advance consumes and returns the current token.
func (p *Parser) advance() lexer.Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.prev = p.tokens[p.pos]
		p.pos++
	}
	return tok
}

// isEof reports end of stream: an index past the last token, or a
// terminal empty-lexeme token (Eof).
func (p *Parser) isEof() bool {
	if p.pos >= len(p.tokens) {
		return true
	}
	tok := p.tokens[p.pos]
	return tok.Lexeme == "" && (tok.Kind == lexer.Eof || tok.Kind == lexer.None)
}

// checkKind reports whether the current token has the given kind.
func (p *Parser) checkKind(kind lexer.TokenKind) bool {
	return p.peek().Kind == kind
}

// checkValue reports whether the current token's lexeme equals value.
func (p *Parser) checkValue(value string) bool {
	return p.peek().Lexeme == value
}

// matchKind consumes the current token when it has the given kind.
func (p *Parser) matchKind(kind lexer.TokenKind) bool {
	if p.checkKind(kind) {
		p.advance()
		return true
	}
	return false
}

// matchValue consumes the current token when its lexeme equals value.
func (p *Parser) matchValue(value string) bool {
	if p.checkValue(value) {
		p.advance()
		return true
	}
	return false
}

// expectKind consumes the current token, reporting an error when its
// kind differs. The token is consumed either way so the stream keeps
// progressing.
func (p *Parser) expectKind(kind lexer.TokenKind) lexer.Token {
	tok := p.peek()
	if tok.Kind != kind {
		p.report(diag.Error, diag.CodeUnexpectedToken,
			fmt.Sprintf("Unexpected token %q", tok.Lexeme),
			fmt.Sprintf("expected a %s token", kind), tok.Span)
	}
	if !p.isEof() {
		p.advance()
	}
	return tok
}

// expectValue consumes the current token, reporting an error when its
// lexeme differs from value.
func (p *Parser) expectValue(value string) lexer.Token {
	tok := p.peek()
	if tok.Lexeme != value {
		span := tok.Span
		if p.isEof() {
			span = source.NewSpan(p.prev.Span.End, p.prev.Span.End)
		}
		p.report(diag.Error, diag.CodeExpectedValue,
			fmt.Sprintf("Expected value %q", value),
			fmt.Sprintf("insert %q here", value), span)
	}
	if !p.isEof() {
		p.advance()
	}
	return tok
}

// spanFrom builds a span from a recorded start to the end of the last
// consumed token.
func (p *Parser) spanFrom(start source.Position) source.Span {
	return source.NewSpan(start, p.prev.Span.End)
}

func (p *Parser) report(level diag.Level, code int, message, help string, span source.Span) {
	p.diagnostics = append(p.diagnostics, diag.New(
		level, code, message, help, span, p.src, p.file))
}

// ----------------------------------------------------------------------
// Statement dispatch
// ----------------------------------------------------------------------

// parseStatement dispatches on the lookahead lexeme.
func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.checkValue("return"):
		return p.parseReturn()
	case p.checkValue("break"):
		return p.parseBreak()
	case p.checkValue("continue"):
		return p.parseContinue()
	case p.checkValue("{"):
		return p.parseBlock()
	case p.checkValue("let"):
		return p.parseVariable(true)
	case p.startsFunction():
		return p.parseFunction(p.parseModifierPrefix())
	case p.startsBareModifier():
		return p.parseModifierStatement()
	case p.checkValue("rec"):
		return p.parseRecord()
	case p.checkValue("cls"):
		return p.parseClass()
	case p.checkValue("if"):
		return p.parseIf()
	case p.checkValue("switch"):
		return p.parseSwitch()
	case p.checkValue("while"):
		return p.parseWhile()
	case p.checkValue("for"):
		return p.parseFor()
	default:
		return p.parseExpressionStatement()
	}
}

// startsFunction reports whether the statement ahead is a function
// declaration: `fn`, possibly behind a run of accessors and modifiers.
func (p *Parser) startsFunction() bool {
	offset := 0
	for lexer.IsAccessor(p.look(offset).Lexeme) || lexer.IsModifier(p.look(offset).Lexeme) {
		offset++
	}
	return p.look(offset).IsValue("fn")
}

// startsBareModifier reports whether the statement ahead is a run of
// accessors and modifiers standing alone, terminated by a semicolon.
func (p *Parser) startsBareModifier() bool {
	offset := 0
	for lexer.IsAccessor(p.look(offset).Lexeme) || lexer.IsModifier(p.look(offset).Lexeme) {
		offset++
	}
	return offset > 0 && p.look(offset).IsValue(";")
}

// parseModifierStatement parses a bare accessor/modifier run as a
// statement. The analyzer restricts where it may appear.
func (p *Parser) parseModifierStatement() ast.Statement {
	start := p.peek().Span.Start
	mods := p.parseModifierPrefix()
	p.expectValue(";")
	mods.Loc = p.spanFrom(start)
	return mods
}

func (p *Parser) parseReturn() ast.Statement {
	start := p.peek().Span.Start
	p.expectValue("return")

	var value ast.Expression
	if !p.checkValue(";") {
		value = p.parseExpression()
	}
	p.expectValue(";")
	return &ast.ReturnStatement{Value: value, Loc: p.spanFrom(start)}
}

func (p *Parser) parseBreak() ast.Statement {
	start := p.peek().Span.Start
	p.expectValue("break")
	p.expectValue(";")
	return &ast.BreakStatement{Loc: p.spanFrom(start)}
}

func (p *Parser) parseContinue() ast.Statement {
	start := p.peek().Span.Start
	p.expectValue("continue")
	p.expectValue(";")
	return &ast.ContinueStatement{Loc: p.spanFrom(start)}
}

// parseBlock parses a braced statement list. Inside the braces the same
// recovery as ParseProgram applies: a statement that produces nothing
// costs one token and parsing continues.
func (p *Parser) parseBlock() *ast.BlockStatement {
	start := p.peek().Span.Start
	p.expectValue("{")

	block := &ast.BlockStatement{}
	for !p.isEof() && !p.checkValue("}") {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		} else {
			p.advance()
		}
	}
	p.expectValue("}")
	block.Loc = p.spanFrom(start)
	return block
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	start := p.peek().Span.Start
	expr := p.parseExpression()
	if expr == nil {
		// parseExpression already reported; drop the fragment.
		return nil
	}
	p.expectValue(";")
	return &ast.ExpressionStatement{Expr: expr, Loc: p.spanFrom(start)}
}
