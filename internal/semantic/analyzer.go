package semantic

import (
	"fmt"

	"github.com/mlclang/mlc/internal/ast"
	"github.com/mlclang/mlc/internal/diag"
	"github.com/mlclang/mlc/internal/source"
	"github.com/mlclang/mlc/internal/types"
)

// Analyzer walks a parsed program, builds the scope chain, infers
// expression types, and verifies declarations and control-flow context.
// It never mutates the AST and never aborts: diagnostics accumulate and
// the whole program is analyzed before the verdict is read.
type Analyzer struct {
	scope       *Scope
	src         string
	file        string
	diagnostics []*diag.Diagnostic
}

// Option configures an Analyzer at construction time.
type Option func(*Analyzer)

// WithFile sets the file label used in diagnostics.
func WithFile(name string) Option {
	return func(a *Analyzer) {
		a.file = name
	}
}

// NewAnalyzer creates an Analyzer. The source string is kept for
// diagnostic rendering only.
func NewAnalyzer(src string, opts ...Option) *Analyzer {
	a := &Analyzer{
		src:  src,
		file: "<source>",
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Diagnostics returns the semantic diagnostics accumulated so far.
func (a *Analyzer) Diagnostics() []*diag.Diagnostic {
	return a.diagnostics
}

// HasErrors reports whether any accumulated diagnostic is Error level or
// higher.
func (a *Analyzer) HasErrors() bool {
	return diag.HasErrors(a.diagnostics)
}

// Analyze checks the whole program inside a fresh global scope and
// reports whether it is semantically valid.
func (a *Analyzer) Analyze(program *ast.Program) bool {
	a.scope = NewGlobalScope()
	defer a.exitScope()

	for _, stmt := range program.Statements {
		a.analyzeStatement(stmt)
	}
	return !a.HasErrors()
}

// enterScope pushes a child scope; exitScope pops it. Every enter is
// matched by an exit on every control-flow path, including error paths.
func (a *Analyzer) enterScope(name string, kind ScopeKind) {
	a.scope = NewScope(name, kind, a.scope)
}

func (a *Analyzer) exitScope() {
	if a.scope != nil {
		a.scope = a.scope.Parent
	}
}

func (a *Analyzer) report(level diag.Level, code int, message, help string, span source.Span) {
	a.diagnostics = append(a.diagnostics, diag.New(
		level, code, message, help, span, a.src, a.file))
}

// analyzeStatement dispatches on the statement variant.
func (a *Analyzer) analyzeStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VariableDecl:
		a.analyzeVariableDecl(s)
	case *ast.FunctionDecl:
		a.analyzeFunctionDecl(s)
	case *ast.RecordDecl:
		a.analyzeRecordDecl(s)
	case *ast.ClassDecl:
		a.analyzeClassDecl(s)
	case *ast.BlockStatement:
		a.enterScope("block", ScopeBlock)
		defer a.exitScope()
		for _, inner := range s.Statements {
			a.analyzeStatement(inner)
		}
	case *ast.ExpressionStatement:
		a.analyzeExpressionStatement(s)
	case *ast.IfStatement:
		a.analyzeIf(s)
	case *ast.SwitchStatement:
		a.analyzeSwitch(s)
	case *ast.WhileStatement:
		a.analyzeWhile(s)
	case *ast.ForStatement:
		a.analyzeFor(s)
	case *ast.ReturnStatement:
		a.analyzeReturn(s)
	case *ast.BreakStatement:
		if !a.scope.Kind.Has(ScopeLoop) {
			a.report(diag.Error, diag.CodeBreakOutsideLoop,
				"Break statement not within a loop scope",
				"break is only valid inside while or for", s.Span())
		}
	case *ast.ContinueStatement:
		if !a.scope.Kind.Has(ScopeLoop) {
			a.report(diag.Error, diag.CodeContinueOutsideLoop,
				"Continue statement not within a loop scope",
				"continue is only valid inside while or for", s.Span())
		}
	case *ast.ModifierStatement:
		if !a.scope.Kind.Has(ScopeClass) {
			a.report(diag.Error, diag.CodeModifierOutsideCls,
				"Modifier statement outside of a class scope",
				"accessors and modifiers stand alone only inside cls bodies", s.Span())
		}
	}
}

// analyzeExpressionStatement infers the expression's type and discards
// it. An invalid result that no inner inference already reported gets a
// diagnostic of its own.
func (a *Analyzer) analyzeExpressionStatement(s *ast.ExpressionStatement) {
	if s.Expr == nil {
		return
	}
	before := len(a.diagnostics)
	t := a.inferExpression(s.Expr)
	if types.IsNone(t) && len(a.diagnostics) == before {
		a.report(diag.Error, diag.CodeTypeMismatch,
			"Expression has an invalid type",
			"the operand types of this expression do not combine", s.Expr.Span())
	}
}

// checkCondition requires a condition to infer to a valid, truthy type.
func (a *Analyzer) checkCondition(cond ast.Expression) {
	if cond == nil {
		return
	}
	t := a.inferExpression(cond)
	if types.IsNone(t) {
		return // already reported by inference
	}
	if !types.IsTruthy(t) {
		a.report(diag.Error, diag.CodeInvalidCondition,
			fmt.Sprintf("Invalid condition type '%s'", t.Name()),
			"a condition must not be none, void, or null", cond.Span())
	}
}

func (a *Analyzer) analyzeIf(s *ast.IfStatement) {
	a.checkCondition(s.Condition)
	a.analyzeBlock(s.Then, "if", ScopeBlock)
	for _, elif := range s.Elifs {
		a.checkCondition(elif.Condition)
		a.analyzeBlock(elif.Then, "elif", ScopeBlock)
	}
	if s.Else != nil {
		a.analyzeBlock(s.Else, "else", ScopeBlock)
	}
}

// analyzeSwitch infers the scrutinee and analyzes every arm. Case
// expressions are inferred but not matched against the scrutinee type.
func (a *Analyzer) analyzeSwitch(s *ast.SwitchStatement) {
	if s.Value != nil {
		a.inferExpression(s.Value)
	}
	for _, c := range s.Cases {
		if c.Value != nil {
			a.inferExpression(c.Value)
		}
		a.analyzeBlock(c.Body, "case", ScopeBlock)
	}
}

func (a *Analyzer) analyzeWhile(s *ast.WhileStatement) {
	a.checkCondition(s.Condition)
	a.analyzeBlock(s.Body, "while", ScopeLoop)
}

// analyzeFor opens the loop scope first so a C-style initializer is
// declared inside it, then checks the parts the loop shape provides.
func (a *Analyzer) analyzeFor(s *ast.ForStatement) {
	a.enterScope("for", ScopeLoop)
	defer a.exitScope()

	if s.Init != nil {
		a.analyzeStatement(s.Init)
	}
	a.checkCondition(s.Condition)
	if s.Post != nil {
		a.inferExpression(s.Post)
	}
	if s.Body != nil {
		for _, inner := range s.Body.Statements {
			a.analyzeStatement(inner)
		}
	}
}

func (a *Analyzer) analyzeReturn(s *ast.ReturnStatement) {
	if !a.scope.Kind.Has(ScopeFunction) {
		a.report(diag.Error, diag.CodeReturnOutsideFn,
			"Return statement not within a function scope",
			"return is only valid inside fn bodies", s.Span())
	}
	if s.Value != nil {
		a.inferExpression(s.Value)
	}
}

// analyzeBlock analyzes a block's statements inside a child scope of the
// given kind.
func (a *Analyzer) analyzeBlock(block *ast.BlockStatement, name string, kind ScopeKind) {
	if block == nil {
		return
	}
	a.enterScope(name, kind)
	defer a.exitScope()
	for _, stmt := range block.Statements {
		a.analyzeStatement(stmt)
	}
}
