package ast

// TupleShuffleIndexKind distinguishes the three ways a sugar-removal
// pass can record how one output position of a reordered/defaulted
// call was produced.
type TupleShuffleIndexKind int

const (
	// Absent means this position was skipped (e.g. a defaulted
	// parameter the caller didn't supply).
	Absent TupleShuffleIndexKind = iota
	// Present means this position consumes exactly one expression.
	Present
	// Variadic means this position consumes Count expressions,
	// expanded unlabelled.
	Variadic
)

// TupleShuffleIndex is one position of a TupleShuffleExpr's Indices.
type TupleShuffleIndex struct {
	Kind  TupleShuffleIndexKind
	Count int // only meaningful when Kind == Variadic
}

// TupleShuffleExpr is an argument list produced by sugar-removal passes
// that reordered, defaulted, or variadic-expanded the source call.
// len(Labels) must equal len(Indices) (§3 invariant).
type TupleShuffleExpr struct {
	R       *Range
	Labels  []string
	Indices []TupleShuffleIndex
	Exprs   []Expression
}

func (n *TupleShuffleExpr) Accept(v Visitor) { v.VisitTupleShuffleExpr(n) }
func (n *TupleShuffleExpr) expressionNode()  {}
func (n *TupleShuffleExpr) GetRange() *Range { return n.R }
