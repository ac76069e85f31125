package emitter

import (
	"strings"

	"github.com/gryphon-lang/gryphon-go/internal/ast"
)

// emitClosure lowers a SourceLang closure literal to a TargetLang lambda.
func (e *Emitter) emitClosure(n *ast.ClosureExpr) string {
	if len(n.Stmts) == 0 {
		return "{ }"
	}

	head := "{"
	if len(n.Parameters) > 0 {
		names := make([]string, len(n.Parameters))
		for i, p := range n.Parameters {
			names[i] = p.Label
		}
		head += " " + strings.Join(names, ", ") + " ->"
	}

	if len(n.Stmts) == 1 {
		if es, ok := n.Stmts[0].(*ast.ExpressionStatement); ok {
			return head + " " + e.EmitExpression(es.Expr) + " }"
		}
	}

	ind1 := e.inc(e.curIndent)
	ind2 := e.inc(ind1)
	body := e.emitSiblingStatements(n.Stmts, ind2)
	return head + "\n" + body + ind1 + "}"
}
