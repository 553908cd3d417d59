package parser

import (
	"github.com/mlclang/mlc/internal/ast"
	"github.com/mlclang/mlc/internal/diag"
	"github.com/mlclang/mlc/internal/lexer"
	"github.com/mlclang/mlc/internal/source"
)

// parseModifierPrefix parses an optional accessor followed by zero or
// more modifiers. It always returns a ModifierStatement; when nothing
// was consumed the statement is Public with no flags and a zero-width
// span at the current token.
func (p *Parser) parseModifierPrefix() *ast.ModifierStatement {
	start := p.peek().Span.Start
	mods := &ast.ModifierStatement{Accessor: ast.Public}
	consumed := false

	if lexer.IsAccessor(p.peek().Lexeme) {
		mods.Accessor = ast.AccessorFromLexeme(p.advance().Lexeme)
		consumed = true
	}
	for lexer.IsModifier(p.peek().Lexeme) {
		switch p.advance().Lexeme {
		case "static":
			mods.Flags = mods.Flags.With(ast.ModStatic)
		case "const":
			mods.Flags = mods.Flags.With(ast.ModConstant)
		case "init":
			mods.Flags = mods.Flags.With(ast.ModInit)
		}
		consumed = true
	}

	if consumed {
		mods.Loc = p.spanFrom(start)
	} else {
		mods.Loc = source.NewSpan(start, start)
	}
	return mods
}

// parseVariable parses a variable declaration: an optional `let`, a
// modifier prefix, the identifier, an optional type annotation, an
// optional `?` nullable marker, and an optional initializer. When
// semicolon is true the declaration must be terminated by `;`.
//
// A missing `:` in front of an identifier-looking type annotation is
// recovered with a warning; the parser assumes the colon was intended.
func (p *Parser) parseVariable(semicolon bool) *ast.VariableDecl {
	start := p.peek().Span.Start
	p.matchValue("let")

	mods := p.parseModifierPrefix()
	nameTok := p.expectKind(lexer.Identifier)

	decl := &ast.VariableDecl{
		Name:      nameTok.Lexeme,
		Modifiers: mods,
	}

	if p.matchValue(":") {
		decl.Type = p.parseTypeExpression()
	} else if p.checkKind(lexer.Identifier) {
		p.report(diag.Warning, diag.CodeMissingTypeColon,
			"Missing ':' before type annotation",
			"separate the name and its type with ':'", p.peek().Span)
		decl.Type = p.parseTypeExpression()
	}

	if _, ok := decl.Type.(*ast.ArrayIdentifier); ok {
		mods.Flags = mods.Flags.With(ast.ModArray)
	}
	if p.matchValue("?") {
		mods.Flags = mods.Flags.With(ast.ModNullable)
	}

	if p.matchValue("=") {
		decl.Value = p.parseExpression()
	}
	if semicolon {
		p.expectValue(";")
	}

	decl.Loc = p.spanFrom(start)
	return decl
}

// parseTypeExpression parses `identifier` or `identifier [size?]`.
// Empty brackets record the size as the integer literal -1, meaning
// "unsized".
func (p *Parser) parseTypeExpression() ast.Expression {
	nameTok := p.expectKind(lexer.Identifier)
	nameSpan := nameTok.Span

	if !p.checkValue("[") {
		return &ast.Identifier{Name: nameTok.Lexeme, Loc: nameSpan}
	}
	p.advance() // [

	var size ast.Expression
	if p.checkValue("]") {
		size = &ast.Literal{Kind: ast.LitInteger, Value: "-1", Loc: p.peek().Span}
	} else {
		size = p.parseExpression()
		if size == nil {
			size = &ast.Literal{Kind: ast.LitInteger, Value: "-1", Loc: p.peek().Span}
		}
	}
	p.expectValue("]")

	return &ast.ArrayIdentifier{
		ElementType: nameTok.Lexeme,
		Size:        size,
		Loc:         source.NewSpan(nameSpan.Start, p.prev.Span.End),
	}
}

// parseFunction parses a function declaration. The modifier prefix has
// already been consumed by the caller. A constructor either carries the
// `init` modifier or uses the literal `init` as its name.
func (p *Parser) parseFunction(mods *ast.ModifierStatement) *ast.FunctionDecl {
	start := p.peek().Span.Start
	if mods.Loc.Start.Before(mods.Loc.End) {
		start = mods.Loc.Start
	}
	p.expectValue("fn")

	decl := &ast.FunctionDecl{Modifiers: mods}
	switch {
	case p.checkKind(lexer.Identifier):
		decl.Name = p.advance().Lexeme
	case p.checkValue("init"):
		p.advance()
		decl.Name = "init"
		mods.Flags = mods.Flags.With(ast.ModInit)
	case mods.Flags.Has(ast.ModInit):
		decl.Name = "init"
	default:
		decl.Name = p.expectKind(lexer.Identifier).Lexeme
	}

	if p.matchValue("?") {
		mods.Flags = mods.Flags.With(ast.ModNullable)
	}

	p.expectValue("(")
	for !p.isEof() && !p.checkValue(")") {
		decl.Params = append(decl.Params, p.parseVariable(false))
		if !p.matchValue(",") {
			break
		}
	}
	p.expectValue(")")

	if p.matchValue(":") {
		decl.ReturnType = p.parseTypeExpression()
	}

	decl.Body = p.parseBlock()
	decl.Loc = p.spanFrom(start)
	return decl
}

// parseRecord parses `rec`, optional modifiers, the name, and a braced
// field list. Each field is a variable declaration terminated by `;`.
func (p *Parser) parseRecord() *ast.RecordDecl {
	start := p.peek().Span.Start
	p.expectValue("rec")

	mods := p.parseModifierPrefix()
	nameTok := p.expectKind(lexer.Identifier)
	decl := &ast.RecordDecl{Name: nameTok.Lexeme, Modifiers: mods}

	p.expectValue("{")
	for !p.isEof() && !p.checkValue("}") {
		before := p.pos
		decl.Fields = append(decl.Fields, p.parseVariable(true))
		if p.pos == before {
			p.advance()
		}
	}
	p.expectValue("}")

	decl.Loc = p.spanFrom(start)
	return decl
}

// parseClass parses `cls`, optional modifiers, the name, and a braced
// member list. A member starting with a run of accessors and modifiers
// followed by `fn` is a method; anything else is a field.
func (p *Parser) parseClass() *ast.ClassDecl {
	start := p.peek().Span.Start
	p.expectValue("cls")

	mods := p.parseModifierPrefix()
	nameTok := p.expectKind(lexer.Identifier)
	decl := &ast.ClassDecl{Name: nameTok.Lexeme, Modifiers: mods}

	p.expectValue("{")
	for !p.isEof() && !p.checkValue("}") {
		before := p.pos
		if p.startsFunction() {
			decl.Methods = append(decl.Methods, p.parseFunction(p.parseModifierPrefix()))
		} else {
			decl.Fields = append(decl.Fields, p.parseVariable(true))
		}
		if p.pos == before {
			p.advance()
		}
	}
	p.expectValue("}")

	decl.Loc = p.spanFrom(start)
	return decl
}
