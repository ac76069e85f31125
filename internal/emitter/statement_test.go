package emitter

import (
	"strings"
	"testing"

	"github.com/gryphon-lang/gryphon-go/internal/ast"
)

func TestEmitStructAsDataClass(t *testing.T) {
	e := newTestEmitter()
	n := &ast.Struct{
		Name: "Point",
		Members: []ast.Statement{
			&ast.VariableDeclaration{Name: "x", Type: "Int", IsLet: true},
			&ast.VariableDeclaration{Name: "y", Type: "Int", IsLet: true},
		},
	}
	got := e.EmitStatement(n, "")
	want := "data class Point(\n\tval x: Int,\n\tval y: Int\n)\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitEnumClass(t *testing.T) {
	e := newTestEmitter()
	e.Ctx.AddEnumClass("Direction")
	n := &ast.Enum{
		Name: "Direction",
		Elements: []ast.EnumElement{
			{Name: "north"},
			{Name: "south"},
		},
	}
	got := e.EmitStatement(n, "")
	want := "enum class Direction {\n\tnorth,\n\tsouth;\n}\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitEnumSealedClass(t *testing.T) {
	e := newTestEmitter()
	n := &ast.Enum{
		Name: "Color",
		Elements: []ast.EnumElement{
			{Name: "red"},
			{Name: "rgb", AssociatedValues: []ast.AssociatedValue{
				{Label: "r", Type: "Int"},
				{Label: "g", Type: "Int"},
				{Label: "b", Type: "Int"},
			}},
		},
	}
	got := e.EmitStatement(n, "")
	want := "sealed class Color {\n\tclass Red: Color()\n\tclass Rgb(val r: Int, val g: Int, val b: Int): Color()\n}\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitIfElseChain(t *testing.T) {
	e := newTestEmitter()
	inner := &ast.If{
		Conditions: []ast.Condition{ast.ConditionExpr{Expr: &ast.LiteralBool{Value: false}}},
		Statements: []ast.Statement{&ast.Return{Expr: &ast.LiteralInt{Value: 2}}},
	}
	outer := &ast.If{
		Conditions:    []ast.Condition{ast.ConditionExpr{Expr: &ast.LiteralBool{Value: true}}},
		Statements:    []ast.Statement{&ast.Return{Expr: &ast.LiteralInt{Value: 1}}},
		ElseStatement: inner,
	}
	got := e.EmitStatement(outer, "")
	want := "if (true) {\n\treturn 1\n} else if (false) {\n\treturn 2\n}\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitSwitchWithIsAndElse(t *testing.T) {
	e := newTestEmitter()
	subject := &ast.DeclarationReference{Identifier: "shape"}
	n := &ast.Switch{
		Subject: subject,
		Cases: []ast.SwitchCase{
			{
				Expressions: []ast.Expression{&ast.BinaryOperator{
					Lhs: subject, Rhs: &ast.DeclarationReference{Identifier: "Circle"}, Operator: "is", Type: "Bool",
				}},
				Statements: []ast.Statement{&ast.Return{Expr: &ast.LiteralInt{Value: 1}}},
			},
			{
				Statements: []ast.Statement{&ast.Return{Expr: &ast.LiteralInt{Value: 0}}},
			},
		},
	}
	got := e.EmitStatement(n, "")
	if !strings.Contains(got, "when (shape) {") {
		t.Errorf("missing when header: %q", got)
	}
	if !strings.Contains(got, "is Circle -> return 1") {
		t.Errorf("missing is-case: %q", got)
	}
	if !strings.Contains(got, "else -> return 0") {
		t.Errorf("missing else-case: %q", got)
	}
}

func TestEmitFunctionWithDeferWrapsTryFinally(t *testing.T) {
	e := newTestEmitter()
	n := &ast.FunctionDeclaration{
		Prefix: "run",
		Statements: []ast.Statement{
			&ast.Defer{Stmts: []ast.Statement{
				&ast.ExpressionStatement{Expr: &ast.CallExpression{
					Function:   &ast.DeclarationReference{Identifier: "cleanup"},
					Parameters: &ast.TupleExpr{},
				}},
			}},
			&ast.Return{Expr: &ast.LiteralInt{Value: 1}},
		},
	}
	got := e.EmitStatement(n, "")
	want := "fun run() {\n\ttry {\n\t\treturn 1\n\t} finally {\n\t\tcleanup()\n\t}\n}\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitFunctionHeaderWrapsAtLineWidth(t *testing.T) {
	e := newTestEmitter()
	e.LineWidth = 20
	n := &ast.FunctionDeclaration{
		Prefix: "longFunctionName",
		Parameters: []ast.Parameter{
			{Label: "firstParameter", Type: "String"},
			{Label: "secondParameter", Type: "Int"},
		},
		Statements: []ast.Statement{&ast.Return{Expr: &ast.LiteralInt{Value: 0}}},
	}
	got := e.EmitStatement(n, "")
	if !strings.Contains(got, "longFunctionName(\n") {
		t.Errorf("expected wrapped header, got %q", got)
	}
	if !strings.Contains(got, "firstParameter: String,\n") {
		t.Errorf("expected wrapped first param, got %q", got)
	}
}

func TestEmitStatementExtensionReturnsSentinel(t *testing.T) {
	e := newTestEmitter()
	got := e.EmitStatement(&ast.Extension{Name: "Foo"}, "")
	if got != Sentinel {
		t.Errorf("got %q, want sentinel", got)
	}
}

func TestEmitSiblingStatementsBlankLinePolicy(t *testing.T) {
	e := newTestEmitter()
	stmts := []ast.Statement{
		&ast.VariableDeclaration{Name: "a", Type: "Int", IsLet: true},
		&ast.VariableDeclaration{Name: "b", Type: "Int", IsLet: true},
		&ast.Return{Expr: &ast.DeclarationReference{Identifier: "a"}},
	}
	got := e.emitSiblingStatements(stmts, "")
	want := "val a: Int\nval b: Int\n\nreturn a\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
