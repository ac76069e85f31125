package emitter

import (
	"strings"

	"github.com/gryphon-lang/gryphon-go/internal/ast"
)

// emitIf lowers an IfStatement: keyword selection,
// condition extraction/joining, isGuard wrapping, and else-if chaining.
func (e *Emitter) emitIf(n *ast.If, ind string) string {
	return e.emitIfChain(n, ind, false)
}

func (e *Emitter) emitIfChain(n *ast.If, ind string, isElseIf bool) string {
	e.curIndent = ind
	keyword := "if"
	switch {
	case len(n.Conditions) == 0 && len(n.Declarations) == 0:
		keyword = "else"
	case isElseIf:
		keyword = "else if"
	}

	var head string
	if keyword == "else" {
		head = "else"
	} else {
		conds := extractConditions(n.Conditions, e)
		joined := strings.Join(conds, " && ")
		if n.IsGuard {
			head = keyword + " (!(" + joined + "))"
		} else {
			head = keyword + " (" + joined + ")"
		}
	}

	ind1 := e.inc(ind)
	var b strings.Builder
	if isElseIf {
		b.WriteString(" ")
	} else {
		b.WriteString(ind)
	}
	b.WriteString(head + " {\n")
	b.WriteString(e.emitSiblingStatements(n.Statements, ind1))
	b.WriteString(ind + "}")

	if n.ElseStatement != nil {
		b.WriteString(e.emitIfChain(n.ElseStatement, ind, true))
	} else {
		b.WriteString("\n")
	}
	return b.String()
}

// extractConditions keeps only the .condition(expr) variants.
func extractConditions(conds []ast.Condition, e *Emitter) []string {
	var out []string
	for _, c := range conds {
		if ce, ok := c.(ast.ConditionExpr); ok {
			out = append(out, e.EmitExpression(ce.Expr))
		}
	}
	return out
}

// emitSwitch lowers a SwitchStatement to a TargetLang when expression.
func (e *Emitter) emitSwitch(n *ast.Switch, ind string) string {
	var prelude string
	switch n.ConvertsToExpression {
	case ast.ConvertsToReturn:
		prelude = ind + "return when ("
	case ast.ConvertsToAssignment:
		prelude = ind + e.EmitExpression(n.AssignmentLhs) + " = when ("
	case ast.ConvertsToVariableDeclaration:
		nilled := *n.VariableDecl
		nilled.Expr = &ast.NilLiteral{}
		declText := e.EmitStatement(&nilled, ind)
		declText = strings.TrimSuffix(declText, "null\n")
		prelude = declText + "when ("
	default:
		prelude = ind + "when ("
	}

	ind1 := e.inc(ind)
	ind2 := e.inc(ind1)

	var b strings.Builder
	b.WriteString(prelude + e.EmitExpression(n.Subject) + ") {\n")
	for _, c := range n.Cases {
		e.curIndent = ind
		var caseExprStr string
		if len(c.Expressions) == 0 {
			caseExprStr = "else"
		} else {
			parts := make([]string, len(c.Expressions))
			for i, expr := range c.Expressions {
				parts[i] = e.switchCaseExpr(expr, n.Subject)
			}
			caseExprStr = strings.Join(parts, ", ")
		}
		b.WriteString(ind1 + caseExprStr + " -> ")

		if len(c.Statements) == 1 {
			b.WriteString(e.EmitStatement(c.Statements[0], ""))
			e.curIndent = ind
		} else {
			b.WriteString("{\n")
			b.WriteString(e.emitSiblingStatements(c.Statements, ind2))
			b.WriteString(ind1 + "}\n")
		}
	}
	b.WriteString(ind + "}\n")
	return b.String()
}

// switchCaseExpr implements the case-expression transforms applicable
// to the cases a SwitchStatement can carry.
func (e *Emitter) switchCaseExpr(expr, subject ast.Expression) string {
	bo, ok := expr.(*ast.BinaryOperator)
	if !ok {
		return e.EmitExpression(expr)
	}
	if bo.Operator == "is" && bo.Type == "Bool" && ast.Equal(bo.Lhs, subject) {
		return "is " + e.EmitExpression(bo.Rhs)
	}
	if tmpl, ok := bo.Lhs.(*ast.Template); ok && isRangePattern(tmpl.Pattern) {
		return "in " + e.EmitExpression(bo.Lhs)
	}
	return e.EmitExpression(bo.Lhs)
}

func isRangePattern(pattern string) bool {
	return strings.Contains(pattern, "..") || strings.Contains(pattern, "until") || strings.Contains(pattern, "rangeTo")
}
