package emitter

import (
	"strings"

	"github.com/gryphon-lang/gryphon-go/internal/ast"
	"github.com/gryphon-lang/gryphon-go/internal/utils"
)

// emitDot lowers a Dot (member-access) expression.
func (e *Emitter) emitDot(n *ast.DotExpr) string {
	lhsText := e.EmitExpression(n.Lhs)
	rhsText := e.EmitExpression(n.Rhs)

	if e.Ctx.IsSealedClass(lhsText) {
		return lhsText + "." + utils.CamelCapitalise(rhsText) + "()"
	}

	segments := strings.Split(lhsText, ".")
	lastSegment := segments[len(segments)-1]
	if e.Ctx.IsEnumClass(lastSegment) {
		if e.PreserveElementCase {
			return lhsText + "." + rhsText
		}
		return lhsText + "." + utils.UpperSnake(rhsText)
	}

	return lhsText + "." + rhsText
}
