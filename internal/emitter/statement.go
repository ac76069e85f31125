package emitter

import (
	"github.com/gryphon-lang/gryphon-go/internal/ast"
	"github.com/gryphon-lang/gryphon-go/internal/typerewriter"
)

// EmitStatement is the StatementEmitter entry point: a single
// exhaustive dispatch over the statement variant universe. Reaching the
// default case means the AST is out of sync with this switch; it panics
// rather than emitting anything, since that is a programming error in
// this package, not a translation failure.
func (e *Emitter) EmitStatement(stmt ast.Statement, ind string) string {
	e.curIndent = ind

	switch n := stmt.(type) {
	case *ast.Comment:
		return ind + "//" + n.Text + "\n"
	case *ast.Import:
		return ""
	case *ast.Extension:
		return e.diag.extensionSurvived(n.Name)
	case *ast.Defer:
		return e.diag.misplacedDefer()
	case *ast.Typealias:
		return ind + "typealias " + n.Name + " = " + typerewriter.Rewrite(n.Target) + "\n"
	case *ast.Class:
		return e.emitClass(n, ind)
	case *ast.Struct:
		return e.emitStruct(n, ind)
	case *ast.CompanionObject:
		return e.emitCompanionObject(n, ind)
	case *ast.Enum:
		return e.emitEnum(n, ind)
	case *ast.Do:
		return e.emitDo(n, ind)
	case *ast.Catch:
		return e.emitCatch(n, ind)
	case *ast.ForEach:
		return e.emitForEach(n, ind)
	case *ast.While:
		return e.emitWhile(n, ind)
	case *ast.Protocol:
		return e.emitProtocol(n, ind)
	case *ast.Throw:
		return ind + "throw " + e.EmitExpression(n.Expr) + "\n"
	case *ast.FunctionDeclaration:
		return e.emitFunctionDeclaration(n, ind)
	case *ast.VariableDeclaration:
		return e.emitVariableDeclaration(n, ind)
	case *ast.Assignment:
		return ind + e.EmitExpression(n.Lhs) + " = " + e.EmitExpression(n.Rhs) + "\n"
	case *ast.If:
		return e.emitIf(n, ind)
	case *ast.Switch:
		return e.emitSwitch(n, ind)
	case *ast.Return:
		if n.Expr != nil {
			return ind + "return " + e.EmitExpression(n.Expr) + "\n"
		}
		return ind + "return\n"
	case *ast.Break:
		return ind + "break\n"
	case *ast.Continue:
		return ind + "continue\n"
	case *ast.ExpressionStatement:
		text := e.EmitExpression(n.Expr)
		if text == "" {
			return "\n"
		}
		return ind + text + "\n"
	case *ast.ErrorStatement:
		return Sentinel
	default:
		panic("emitter: unhandled statement variant")
	}
}
