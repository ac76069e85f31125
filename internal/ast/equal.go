package ast

// Equal reports whether two expressions are structurally identical,
// ignoring their source Range. This backs the switch emitter's check of
// whether an `is` case-expression's left side is the switch subject.
func Equal(a, b Expression) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *DeclarationReference:
		y, ok := b.(*DeclarationReference)
		return ok && x.Identifier == y.Identifier && x.Type == y.Type
	case *LiteralString:
		y, ok := b.(*LiteralString)
		return ok && x.Value == y.Value
	case *LiteralCharacter:
		y, ok := b.(*LiteralCharacter)
		return ok && x.Value == y.Value
	case *LiteralInt:
		y, ok := b.(*LiteralInt)
		return ok && x.Value == y.Value
	case *LiteralUInt:
		y, ok := b.(*LiteralUInt)
		return ok && x.Value == y.Value
	case *LiteralDouble:
		y, ok := b.(*LiteralDouble)
		return ok && x.Value == y.Value
	case *LiteralFloat:
		y, ok := b.(*LiteralFloat)
		return ok && x.Value == y.Value
	case *LiteralBool:
		y, ok := b.(*LiteralBool)
		return ok && x.Value == y.Value
	case *NilLiteral:
		_, ok := b.(*NilLiteral)
		return ok
	case *DotExpr:
		y, ok := b.(*DotExpr)
		return ok && Equal(x.Lhs, y.Lhs) && Equal(x.Rhs, y.Rhs)
	case *ParensExpr:
		y, ok := b.(*ParensExpr)
		return ok && Equal(x.Expr, y.Expr)
	case *ForceValueExpr:
		y, ok := b.(*ForceValueExpr)
		return ok && Equal(x.Expr, y.Expr)
	case *OptionalExpr:
		y, ok := b.(*OptionalExpr)
		return ok && Equal(x.Expr, y.Expr)
	case *BinaryOperator:
		y, ok := b.(*BinaryOperator)
		return ok && x.Operator == y.Operator && Equal(x.Lhs, y.Lhs) && Equal(x.Rhs, y.Rhs)
	case *Template:
		y, ok := b.(*Template)
		if !ok || x.Pattern != y.Pattern || len(x.Matches) != len(y.Matches) {
			return false
		}
		for k, v := range x.Matches {
			ov, exists := y.Matches[k]
			if !exists || !Equal(v, ov) {
				return false
			}
		}
		return true
	case *SubscriptExpr:
		y, ok := b.(*SubscriptExpr)
		return ok && Equal(x.Object, y.Object) && Equal(x.Index, y.Index)
	case *CallExpression:
		y, ok := b.(*CallExpression)
		return ok && Equal(x.Function, y.Function) && Equal(x.Parameters, y.Parameters)
	case *TupleExpr:
		y, ok := b.(*TupleExpr)
		if !ok || len(x.Pairs) != len(y.Pairs) {
			return false
		}
		for i := range x.Pairs {
			if x.Pairs[i].Label != y.Pairs[i].Label || !Equal(x.Pairs[i].Expr, y.Pairs[i].Expr) {
				return false
			}
		}
		return true
	default:
		// Node kinds with no meaningful structural role in the
		// back-reference check fall back to pointer identity.
		return a == b
	}
}
