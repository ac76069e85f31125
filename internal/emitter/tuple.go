package emitter

import (
	"github.com/gryphon-lang/gryphon-go/internal/ast"
	"github.com/gryphon-lang/gryphon-go/internal/registries"
)

// emitBareTuple handles a Tuple used outside a
// call's parameter position (e.g. a tuple literal): no function
// translation zipping applies, so each pair's own label is used as-is.
func (e *Emitter) emitBareTuple(n *ast.TupleExpr) string {
	if len(n.Pairs) == 0 {
		return "()"
	}
	args := make([]string, len(n.Pairs))
	for i, p := range n.Pairs {
		args[i] = renderArg(p.Label, e.EmitExpression(p.Expr))
	}
	return e.assembleCall("", args)
}

func (e *Emitter) emitBareTupleShuffle(sh *ast.TupleShuffleExpr) string {
	args, ok := e.buildShuffleArgs(sh)
	if !ok {
		return e.diag.tupleShuffleArityMismatch(len(sh.Labels), len(sh.Indices))
	}
	return e.assembleCall("", args)
}

// buildShuffleArgs walks tuple-shuffle indices in order,
// skipping Absent, consuming one expression per Present (unlabelled when
// it sits at or before the first Variadic index, labelled otherwise), and
// n expressions per Variadic (always unlabelled).
func (e *Emitter) buildShuffleArgs(sh *ast.TupleShuffleExpr) ([]string, bool) {
	if len(sh.Labels) != len(sh.Indices) {
		return nil, false
	}

	firstVariadic := -1
	for i, idx := range sh.Indices {
		if idx.Kind == ast.Variadic {
			firstVariadic = i
			break
		}
	}

	var args []string
	exprPos := 0
	for i, idx := range sh.Indices {
		switch idx.Kind {
		case ast.Absent:
		case ast.Present:
			expr := sh.Exprs[exprPos]
			exprPos++
			label := sh.Labels[i]
			if firstVariadic != -1 && i <= firstVariadic {
				label = ""
			}
			args = append(args, renderArg(label, e.EmitExpression(expr)))
		case ast.Variadic:
			for k := 0; k < idx.Count; k++ {
				args = append(args, e.EmitExpression(sh.Exprs[exprPos]))
				exprPos++
			}
		}
	}
	return args, true
}

func ftNames(ft registries.FunctionTranslation, hasFT bool) []string {
	if !hasFT {
		return nil
	}
	return ft.Parameters
}

// effectiveLabel derives a Tuple argument's label:
// with a function translation, an unlabelled source pair stays
// unlabelled and a labelled one is replaced by the translation's
// parameter name at the same position; with no translation, the
// source pair's own label is used unchanged.
func effectiveLabel(p ast.TuplePair, names []string, i int, hasFT bool) string {
	if !hasFT {
		return p.Label
	}
	if p.Label == "" {
		return ""
	}
	if i < len(names) {
		return names[i]
	}
	return p.Label
}

func renderArg(label, text string) string {
	if label == "" {
		return text
	}
	return label + " = " + text
}
