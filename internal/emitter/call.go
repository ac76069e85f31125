package emitter

import (
	"strings"

	"github.com/gryphon-lang/gryphon-go/internal/ast"
	"github.com/gryphon-lang/gryphon-go/internal/registries"
)

// emitCall assembles a function call: callee, argument list, trailing closure.
func (e *Emitter) emitCall(n *ast.CallExpression) string {
	prefix, funcExpr := e.peelDotChain(n.Function)
	ft, found := e.lookupFunctionTranslation(funcExpr)

	var funcText string
	if found {
		funcText = prefix + ft.Prefix
	} else {
		funcText = prefix + e.EmitExpression(funcExpr)
	}

	switch params := n.Parameters.(type) {
	case *ast.TupleExpr:
		return e.emitCallWithTuple(funcText, params, ft, found)
	case *ast.TupleShuffleExpr:
		return e.emitCallWithShuffle(funcText, params)
	default:
		return e.diag.callParametersNotTuple(n.Parameters)
	}
}

// peelDotChain peels nested Dot chains on the left of a call's function
// expression, translating each peeled lhs, until it reaches a non-Dot
// function expression.
func (e *Emitter) peelDotChain(fn ast.Expression) (string, ast.Expression) {
	var b strings.Builder
	for {
		dot, ok := fn.(*ast.DotExpr)
		if !ok {
			break
		}
		b.WriteString(e.EmitExpression(dot.Lhs) + ".")
		fn = dot.Rhs
	}
	return b.String(), fn
}

func (e *Emitter) lookupFunctionTranslation(funcExpr ast.Expression) (registries.FunctionTranslation, bool) {
	declRef, ok := funcExpr.(*ast.DeclarationReference)
	if !ok {
		return registries.FunctionTranslation{}, false
	}
	return e.Ctx.LookupFunctionTranslation(declRef.DisplayName(), declRef.Type)
}

func (e *Emitter) emitCallWithTuple(funcText string, tup *ast.TupleExpr, ft registries.FunctionTranslation, hasFT bool) string {
	if len(tup.Pairs) > 0 {
		if closure, ok := tup.Pairs[len(tup.Pairs)-1].Expr.(*ast.ClosureExpr); ok {
			rest := tup.Pairs[:len(tup.Pairs)-1]
			closureText := e.emitClosure(closure)
			if len(rest) == 0 {
				return funcText + " " + closureText
			}
			args := e.tupleArgs(rest, ft, hasFT)
			return e.assembleCall(funcText, args) + " " + closureText
		}
	}
	args := e.tupleArgs(tup.Pairs, ft, hasFT)
	return e.assembleCall(funcText, args)
}

func (e *Emitter) tupleArgs(pairs []ast.TuplePair, ft registries.FunctionTranslation, hasFT bool) []string {
	names := ftNames(ft, hasFT)
	args := make([]string, len(pairs))
	for i, p := range pairs {
		args[i] = renderArg(effectiveLabel(p, names, i, hasFT), e.EmitExpression(p.Expr))
	}
	return args
}

func (e *Emitter) emitCallWithShuffle(funcText string, sh *ast.TupleShuffleExpr) string {
	args, ok := e.buildShuffleArgs(sh)
	if !ok {
		return e.diag.tupleShuffleArityMismatch(len(sh.Labels), len(sh.Indices))
	}
	return e.assembleCall(funcText, args)
}

// assembleCall renders the inline call text and, if it exceeds the line
// width, retries once with newlined arguments.
func (e *Emitter) assembleCall(funcText string, args []string) string {
	inline := funcText + "(" + strings.Join(args, ", ") + ")"
	if len(args) == 0 || len(inline) <= e.lineWidth() {
		return inline
	}
	ind1 := e.inc(e.curIndent)
	lines := make([]string, len(args))
	for i, a := range args {
		lines[i] = ind1 + a
	}
	return funcText + "(\n" + strings.Join(lines, ",\n") + "\n" + e.curIndent + ")"
}
