package ast

import "testing"

func TestEqualLiterals(t *testing.T) {
	if !Equal(&LiteralInt{Value: 3}, &LiteralInt{Value: 3}) {
		t.Error("expected equal LiteralInt values to compare equal")
	}
	if Equal(&LiteralInt{Value: 3}, &LiteralInt{Value: 4}) {
		t.Error("expected different LiteralInt values to compare unequal")
	}
	if Equal(&LiteralInt{Value: 3}, &LiteralString{Value: "3"}) {
		t.Error("expected different node kinds to compare unequal")
	}
}

func TestEqualNilHandling(t *testing.T) {
	if !Equal(nil, nil) {
		t.Error("expected two nil expressions to compare equal")
	}
	if Equal(nil, &LiteralInt{Value: 0}) {
		t.Error("expected nil vs non-nil to compare unequal")
	}
}

func TestEqualNestedDot(t *testing.T) {
	a := &DotExpr{
		Lhs: &DeclarationReference{Identifier: "shape"},
		Rhs: &DeclarationReference{Identifier: "circle"},
	}
	b := &DotExpr{
		Lhs: &DeclarationReference{Identifier: "shape"},
		Rhs: &DeclarationReference{Identifier: "circle"},
	}
	c := &DotExpr{
		Lhs: &DeclarationReference{Identifier: "shape"},
		Rhs: &DeclarationReference{Identifier: "square"},
	}
	if !Equal(a, b) {
		t.Error("expected structurally identical Dot expressions to compare equal")
	}
	if Equal(a, c) {
		t.Error("expected Dot expressions differing on rhs to compare unequal")
	}
}

func TestEqualTupleIgnoresRangeComparesLabelsAndArity(t *testing.T) {
	a := &TupleExpr{Pairs: []TuplePair{{Label: "x", Expr: &LiteralInt{Value: 1, R: &Range{Start: Position{Line: 1}}}}}}
	b := &TupleExpr{Pairs: []TuplePair{{Label: "x", Expr: &LiteralInt{Value: 1, R: &Range{Start: Position{Line: 99}}}}}}
	if !Equal(a, b) {
		t.Error("expected Range to be ignored by Equal")
	}
	c := &TupleExpr{Pairs: []TuplePair{{Label: "y", Expr: &LiteralInt{Value: 1}}}}
	if Equal(a, c) {
		t.Error("expected differing labels to compare unequal")
	}
	d := &TupleExpr{Pairs: []TuplePair{{Expr: &LiteralInt{Value: 1}}, {Expr: &LiteralInt{Value: 2}}}}
	if Equal(a, d) {
		t.Error("expected differing arity to compare unequal")
	}
}

func TestEqualFallsBackToIdentityForUnhandledKinds(t *testing.T) {
	x := &ErrorExpr{}
	if !Equal(x, x) {
		t.Error("expected identical pointers to compare equal under the identity fallback")
	}
	if Equal(&ErrorExpr{}, &ErrorExpr{}) {
		t.Error("expected distinct ErrorExpr values to compare unequal under the identity fallback")
	}
}
