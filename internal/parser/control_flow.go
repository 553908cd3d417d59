package parser

import (
	"github.com/mlclang/mlc/internal/ast"
	"github.com/mlclang/mlc/internal/lexer"
)

// parseIf parses `if cond block`, zero or more `elif cond block` arms,
// and an optional trailing `else block`. An elif after the else is not
// collected; it would start a fresh statement and fail on its own.
func (p *Parser) parseIf() *ast.IfStatement {
	start := p.peek().Span.Start
	p.expectValue("if")

	stmt := &ast.IfStatement{
		Condition: p.parseExpression(),
		Then:      p.parseBlock(),
	}

	for p.matchValue("elif") {
		elifStart := p.prev.Span.Start
		arm := &ast.IfStatement{
			Condition: p.parseExpression(),
			Then:      p.parseBlock(),
		}
		arm.Loc = p.spanFrom(elifStart)
		stmt.Elifs = append(stmt.Elifs, arm)
	}

	if p.matchValue("else") {
		stmt.Else = p.parseBlock()
	}

	stmt.Loc = p.spanFrom(start)
	return stmt
}

// parseSwitch parses `switch expr { case expr block ... default block }`.
// The statement's span ends at the end of the last case.
func (p *Parser) parseSwitch() *ast.SwitchStatement {
	start := p.peek().Span.Start
	p.expectValue("switch")

	stmt := &ast.SwitchStatement{Value: p.parseExpression()}
	p.expectValue("{")

	for !p.isEof() {
		caseStart := p.peek().Span.Start
		switch {
		case p.matchValue("case"):
			branch := &ast.CaseBranch{
				Value: p.parseExpression(),
				Body:  p.parseBlock(),
			}
			branch.Loc = p.spanFrom(caseStart)
			stmt.Cases = append(stmt.Cases, branch)
			continue
		case p.matchValue("default"):
			branch := &ast.CaseBranch{Body: p.parseBlock()}
			branch.Loc = p.spanFrom(caseStart)
			stmt.Cases = append(stmt.Cases, branch)
			continue
		}
		break
	}

	stmt.Loc = p.spanFrom(start)
	p.expectValue("}")
	return stmt
}

// parseWhile parses `while cond body`.
func (p *Parser) parseWhile() *ast.WhileStatement {
	start := p.peek().Span.Start
	p.expectValue("while")

	stmt := &ast.WhileStatement{
		Condition: p.parseExpression(),
		Body:      p.parseBlock(),
	}
	stmt.Loc = p.spanFrom(start)
	return stmt
}

// parseFor parses the three loop shapes:
//
//	for (let i: i32 = 0; i < 10; i = i + 1) body   C-style
//	for (item: i32 in items) body                  for-in
//	for (0..10) body                               range
//
// A leading `let` selects C-style; an identifier directly followed by
// `:` selects for-in; anything else is a range expression.
func (p *Parser) parseFor() *ast.ForStatement {
	start := p.peek().Span.Start
	p.expectValue("for")
	p.expectValue("(")

	stmt := &ast.ForStatement{}
	switch {
	case p.checkValue("let"):
		stmt.Init = p.parseVariable(true)
		stmt.Condition = p.parseExpression()
		p.expectValue(";")
		stmt.Post = p.parseExpression()
	case p.checkKind(lexer.Identifier) && p.look(1).IsValue(":"):
		stmt.Init = p.parseVariable(false)
		p.expectValue("in")
		stmt.Post = p.parseExpression()
	default:
		stmt.Condition = p.parseExpression()
	}
	p.expectValue(")")

	stmt.Body = p.parseBlock()
	stmt.Loc = p.spanFrom(start)
	return stmt
}
