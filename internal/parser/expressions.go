package parser

import (
	"fmt"

	"github.com/mlclang/mlc/internal/ast"
	"github.com/mlclang/mlc/internal/diag"
	"github.com/mlclang/mlc/internal/lexer"
	"github.com/mlclang/mlc/internal/source"
)

// Expression parsing is an explicit precedence-climbing ladder, lowest
// binding power first:
//
//	assignment  =                      right
//	logical or  ||                     left
//	logical and &&                     left
//	equality    == !=                  left
//	comparison  < > <= >= .. ...       left
//	term        + -                    left
//	factor      * / %                  left
//	unary       ! -                    prefix
//	postfix     call ++ -- .attr [i]   left
//	primary     literals this ( ) [ ]
//
// Each level returns nil when the operand below it failed; callers drop
// the fragment and recovery happens at the statement layer.

// parseExpression parses at the lowest precedence level.
func (p *Parser) parseExpression() ast.Expression {
	return p.parseAssignment()
}

// parseAssignment handles `=`, right-associatively.
func (p *Parser) parseAssignment() ast.Expression {
	left := p.parseOr()
	if left == nil {
		return nil
	}
	if p.checkValue("=") {
		op := p.advance().Lexeme
		right := p.parseAssignment()
		if right == nil {
			return left
		}
		return p.binary(left, op, right)
	}
	return left
}

func (p *Parser) parseOr() ast.Expression {
	return p.parseBinaryLevel(p.parseAnd, "||")
}

func (p *Parser) parseAnd() ast.Expression {
	return p.parseBinaryLevel(p.parseEquality, "&&")
}

func (p *Parser) parseEquality() ast.Expression {
	return p.parseBinaryLevel(p.parseComparison, "==", "!=")
}

func (p *Parser) parseComparison() ast.Expression {
	return p.parseBinaryLevel(p.parseTerm, "<", ">", "<=", ">=", "..", "...")
}

func (p *Parser) parseTerm() ast.Expression {
	return p.parseBinaryLevel(p.parseFactor, "+", "-")
}

func (p *Parser) parseFactor() ast.Expression {
	return p.parseBinaryLevel(p.parseUnary, "*", "/", "%")
}

// parseBinaryLevel builds one left-associative ladder rung over the
// given operator lexemes.
func (p *Parser) parseBinaryLevel(next func() ast.Expression, operators ...string) ast.Expression {
	left := next()
	if left == nil {
		return nil
	}
	for p.checkAnyValue(operators...) {
		op := p.advance().Lexeme
		right := next()
		if right == nil {
			return left
		}
		left = p.binary(left, op, right)
	}
	return left
}

func (p *Parser) checkAnyValue(values ...string) bool {
	for _, v := range values {
		if p.checkValue(v) {
			return true
		}
	}
	return false
}

func (p *Parser) binary(left ast.Expression, op string, right ast.Expression) ast.Expression {
	return &ast.BinaryExpression{
		Left:     left,
		Operator: op,
		Right:    right,
		Loc:      left.Span().Join(right.Span()),
	}
}

// parseUnary handles the prefix operators `!` and `-`.
func (p *Parser) parseUnary() ast.Expression {
	if p.checkValue("!") || p.checkValue("-") {
		opTok := p.advance()
		operand := p.parseUnary()
		if operand == nil {
			return nil
		}
		return &ast.UnaryExpression{
			Operator: opTok.Lexeme,
			Operand:  operand,
			Prefix:   true,
			Loc:      opTok.Span.Join(operand.Span()),
		}
	}
	return p.parsePostfix()
}

// parsePostfix repeatedly applies postfix rules, left-associatively:
// calls, `++`/`--`, attribute access, and indexing.
func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parsePrimary()
	if expr == nil {
		return nil
	}

	for {
		switch {
		case p.checkValue("("):
			expr = p.parseCall(expr)
		case p.checkValue("++") || p.checkValue("--"):
			opTok := p.advance()
			expr = &ast.UnaryExpression{
				Operator: opTok.Lexeme,
				Operand:  expr,
				Prefix:   false,
				Loc:      expr.Span().Join(opTok.Span),
			}
		case p.checkValue("."):
			p.advance()
			attr := p.parseAttribute()
			if attr == nil {
				return expr
			}
			expr = &ast.AttributeExpression{
				Object:    expr,
				Attribute: attr,
				Loc:       expr.Span().Join(attr.Span()),
			}
		case p.checkValue("["):
			open := p.advance()
			index := p.parseExpression()
			p.expectValue("]")
			if index == nil {
				return expr
			}
			expr = &ast.IndexExpression{
				Array: expr,
				Index: index,
				Loc:   expr.Span().Join(p.prev.Span).Join(open.Span),
			}
		default:
			return expr
		}
	}
}

// parseCall parses an argument list for the given callee. The opening
// parenthesis has not been consumed yet.
func (p *Parser) parseCall(callee ast.Expression) ast.Expression {
	p.expectValue("(")
	call := &ast.CallExpression{Callee: callee}

	for !p.isEof() && !p.checkValue(")") {
		arg := p.parseExpression()
		if arg == nil {
			break
		}
		call.Arguments = append(call.Arguments, arg)
		if !p.matchValue(",") {
			break
		}
	}
	p.expectValue(")")

	call.Loc = callee.Span().Join(p.prev.Span)
	return call
}

// parseAttribute parses the expression after `.`: an identifier, or a
// method call when the identifier is directly followed by `(`.
func (p *Parser) parseAttribute() ast.Expression {
	nameTok := p.expectKind(lexer.Identifier)
	ident := &ast.Identifier{Name: nameTok.Lexeme, Loc: nameTok.Span}
	if p.checkValue("(") {
		return p.parseCall(ident)
	}
	return ident
}

// parsePrimary parses literals, `this`, identifiers, grouped
// expressions, and array literals. On failure it reports a diagnostic,
// consumes one token to make progress, and returns nil.
func (p *Parser) parsePrimary() ast.Expression {
	tok := p.peek()

	switch tok.Kind {
	case lexer.Integer:
		p.advance()
		return &ast.Literal{Kind: ast.LitInteger, Value: tok.Lexeme, Loc: tok.Span}
	case lexer.Float:
		p.advance()
		return &ast.Literal{Kind: ast.LitFloat, Value: tok.Lexeme, Loc: tok.Span}
	case lexer.String:
		p.advance()
		return &ast.Literal{Kind: ast.LitString, Value: tok.Lexeme, Loc: tok.Span}
	case lexer.Character:
		p.advance()
		return &ast.Literal{Kind: ast.LitCharacter, Value: tok.Lexeme, Loc: tok.Span}
	case lexer.Identifier:
		p.advance()
		return &ast.Identifier{Name: tok.Lexeme, Loc: tok.Span}
	case lexer.Keyword:
		switch tok.Lexeme {
		case "true", "false":
			p.advance()
			return &ast.Literal{Kind: ast.LitBoolean, Value: tok.Lexeme, Loc: tok.Span}
		case "null":
			p.advance()
			return &ast.Literal{Kind: ast.LitNull, Value: tok.Lexeme, Loc: tok.Span}
		case "this":
			p.advance()
			return &ast.Identifier{Name: "this", Loc: tok.Span}
		}
	}

	switch tok.Lexeme {
	case "(":
		p.advance()
		expr := p.parseExpression()
		p.expectValue(")")
		return expr
	case "[":
		return p.parseArrayLiteral()
	}

	span := tok.Span
	if p.isEof() {
		span = source.NewSpan(p.prev.Span.End, p.prev.Span.End)
	}
	p.report(diag.Error, diag.CodeExpectedExpression,
		fmt.Sprintf("Expected an expression, found %q", tok.Lexeme),
		"a value, name, or grouped expression is required here", span)
	if !p.isEof() {
		p.advance()
	}
	return nil
}

// parseArrayLiteral collects comma-separated elements up to the closing
// bracket.
func (p *Parser) parseArrayLiteral() ast.Expression {
	open := p.advance() // [
	lit := &ast.ArrayLiteral{}

	for !p.isEof() && !p.checkValue("]") {
		el := p.parseExpression()
		if el == nil {
			break
		}
		lit.Elements = append(lit.Elements, el)
		if !p.matchValue(",") {
			break
		}
	}
	p.expectValue("]")

	lit.Loc = open.Span.Join(p.prev.Span)
	return lit
}
