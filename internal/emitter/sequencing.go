package emitter

import (
	"strings"

	"github.com/gryphon-lang/gryphon-go/internal/ast"
)

// emitSiblingStatements emits a block of statements at one indentation
// level, inserting a blank line between two of them wherever the
// sequencing policy calls for one.
func (e *Emitter) emitSiblingStatements(stmts []ast.Statement, ind string) string {
	type entry struct {
		stmt ast.Statement
		text string
	}

	entries := make([]entry, 0, len(stmts))
	for _, s := range stmts {
		text := e.EmitStatement(s, ind)
		if text == "" {
			continue
		}
		entries = append(entries, entry{stmt: s, text: text})
	}

	if len(entries) <= limitForAddingNewlines {
		var b strings.Builder
		for _, en := range entries {
			b.WriteString(en.text)
		}
		return b.String()
	}

	var b strings.Builder
	for i, en := range entries {
		b.WriteString(en.text)
		if i == len(entries)-1 {
			continue
		}
		if !suppressBlankLine(en.stmt, entries[i+1].stmt) {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// suppressBlankLine reports whether no blank line should separate cur
// from the statement that follows it.
func suppressBlankLine(cur, next ast.Statement) bool {
	if _, ok := cur.(*ast.Comment); ok {
		return true
	}

	switch cur.(type) {
	case *ast.VariableDeclaration:
		_, ok := next.(*ast.VariableDeclaration)
		return ok
	case *ast.Assignment:
		_, ok := next.(*ast.Assignment)
		return ok
	case *ast.Typealias:
		_, ok := next.(*ast.Typealias)
		return ok
	case *ast.Do:
		_, ok := next.(*ast.Catch)
		return ok
	case *ast.Catch:
		_, ok := next.(*ast.Catch)
		return ok
	}

	curEs, ok := cur.(*ast.ExpressionStatement)
	if !ok {
		return false
	}
	nextEs, ok := next.(*ast.ExpressionStatement)
	if !ok {
		return false
	}
	if isCallExpr(curEs.Expr) && isCallExpr(nextEs.Expr) {
		return true
	}
	if isTemplateExpr(curEs.Expr) && isTemplateExpr(nextEs.Expr) {
		return true
	}
	if isLiteralCodeExpr(curEs.Expr) && isLiteralCodeExpr(nextEs.Expr) {
		return true
	}
	return false
}

func isCallExpr(e ast.Expression) bool {
	_, ok := e.(*ast.CallExpression)
	return ok
}

func isTemplateExpr(e ast.Expression) bool {
	_, ok := e.(*ast.Template)
	return ok
}

func isLiteralCodeExpr(e ast.Expression) bool {
	_, ok := e.(*ast.LiteralCode)
	return ok
}
