package ast

// Template splices translated sub-expressions into a literal skeleton.
// Matches is conceptually unordered (it models an unordered source
// mapping); ExpressionEmitter substitutes longest-key-first, so a key
// that is a prefix of a longer one never shadows it. Keys of equal
// length are substituted in no fixed order.
type Template struct {
	R       *Range
	Pattern string
	Matches map[string]Expression
}

func (n *Template) Accept(v Visitor)  { v.VisitTemplate(n) }
func (n *Template) expressionNode()   {}
func (n *Template) GetRange() *Range  { return n.R }

// LiteralCode emits its Raw text with backslash escapes interpreted.
type LiteralCode struct {
	R   *Range
	Raw string
}

func (n *LiteralCode) Accept(v Visitor) { v.VisitLiteralCode(n) }
func (n *LiteralCode) expressionNode()  {}
func (n *LiteralCode) GetRange() *Range { return n.R }

// LiteralDeclaration is LiteralCode's declaration-position sibling.
type LiteralDeclaration struct {
	R   *Range
	Raw string
}

func (n *LiteralDeclaration) Accept(v Visitor) { v.VisitLiteralDeclaration(n) }
func (n *LiteralDeclaration) expressionNode()  {}
func (n *LiteralDeclaration) GetRange() *Range { return n.R }

// ArrayExpr lowers to `mutableListOf(...)`.
type ArrayExpr struct {
	R        *Range
	Elements []Expression
	Type     string
}

func (n *ArrayExpr) Accept(v Visitor) { v.VisitArrayExpr(n) }
func (n *ArrayExpr) expressionNode()  {}
func (n *ArrayExpr) GetRange() *Range { return n.R }

// DictionaryExpr lowers to `mutableMapOf(...)`.
type DictionaryExpr struct {
	R      *Range
	Keys   []Expression
	Values []Expression
	Type   string
}

func (n *DictionaryExpr) Accept(v Visitor) { v.VisitDictionaryExpr(n) }
func (n *DictionaryExpr) expressionNode()  {}
func (n *DictionaryExpr) GetRange() *Range { return n.R }

// BinaryOperator lowers to `lhs op rhs`.
type BinaryOperator struct {
	R        *Range
	Lhs      Expression
	Rhs      Expression
	Operator string
	Type     string
}

func (n *BinaryOperator) Accept(v Visitor) { v.VisitBinaryOperator(n) }
func (n *BinaryOperator) expressionNode()  {}
func (n *BinaryOperator) GetRange() *Range { return n.R }

// CallExpression invokes Function with Parameters, which must be either
// a *TupleExpr or a *TupleShuffleExpr (§3 invariant).
type CallExpression struct {
	R          *Range
	Function   Expression
	Parameters Expression
}

func (n *CallExpression) Accept(v Visitor) { v.VisitCallExpression(n) }
func (n *CallExpression) expressionNode()  {}
func (n *CallExpression) GetRange() *Range { return n.R }

// ClosureParam is one parameter of a ClosureExpr.
type ClosureParam struct {
	Label string
	Type  string
}

// ClosureExpr lowers to a Kotlin lambda literal.
type ClosureExpr struct {
	R          *Range
	Parameters []ClosureParam
	Stmts      []Statement
	Type       string
}

func (n *ClosureExpr) Accept(v Visitor) { v.VisitClosureExpr(n) }
func (n *ClosureExpr) expressionNode()  {}
func (n *ClosureExpr) GetRange() *Range { return n.R }

// DeclarationReference names a binding. Identifier may carry a trailing
// signature mangling after the first '('; only the prefix before it is
// the display name (§3 invariant).
type DeclarationReference struct {
	R          *Range
	Identifier string
	Type       string
}

func (n *DeclarationReference) Accept(v Visitor) { v.VisitDeclarationReference(n) }
func (n *DeclarationReference) expressionNode()  {}
func (n *DeclarationReference) GetRange() *Range { return n.R }

// DisplayName is the portion of Identifier before the first '('.
func (n *DeclarationReference) DisplayName() string {
	if idx := indexByte(n.Identifier, '('); idx >= 0 {
		return n.Identifier[:idx]
	}
	return n.Identifier
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// ReturnExpr is the expression-context return (no trailing newline,
// used e.g. inside a single-expression closure body).
type ReturnExpr struct {
	R    *Range
	Expr Expression
}

func (n *ReturnExpr) Accept(v Visitor) { v.VisitReturnExpr(n) }
func (n *ReturnExpr) expressionNode()  {}
func (n *ReturnExpr) GetRange() *Range { return n.R }

// DotExpr is a member access `lhs.rhs`.
type DotExpr struct {
	R   *Range
	Lhs Expression
	Rhs Expression
}

func (n *DotExpr) Accept(v Visitor) { v.VisitDotExpr(n) }
func (n *DotExpr) expressionNode()  {}
func (n *DotExpr) GetRange() *Range { return n.R }

// LiteralString lowers to a quoted string literal.
type LiteralString struct {
	R     *Range
	Value string
}

func (n *LiteralString) Accept(v Visitor) { v.VisitLiteralString(n) }
func (n *LiteralString) expressionNode()  {}
func (n *LiteralString) GetRange() *Range { return n.R }

// LiteralCharacter lowers to a quoted character literal.
type LiteralCharacter struct {
	R     *Range
	Value string
}

func (n *LiteralCharacter) Accept(v Visitor) { v.VisitLiteralCharacter(n) }
func (n *LiteralCharacter) expressionNode()  {}
func (n *LiteralCharacter) GetRange() *Range { return n.R }

// InterpolatedString lowers to a Kotlin template string. Each Parts
// entry is either a *LiteralString (emitted verbatim, except the
// two-character empty-segment marker `""` which is skipped) or any
// other expression (wrapped as `${...}`).
type InterpolatedString struct {
	R     *Range
	Parts []Expression
}

func (n *InterpolatedString) Accept(v Visitor) { v.VisitInterpolatedString(n) }
func (n *InterpolatedString) expressionNode()  {}
func (n *InterpolatedString) GetRange() *Range { return n.R }

// PrefixUnary lowers to `op expr`.
type PrefixUnary struct {
	R        *Range
	Operator string
	Expr     Expression
}

func (n *PrefixUnary) Accept(v Visitor) { v.VisitPrefixUnary(n) }
func (n *PrefixUnary) expressionNode()  {}
func (n *PrefixUnary) GetRange() *Range { return n.R }

// PostfixUnary lowers to `expr op`.
type PostfixUnary struct {
	R        *Range
	Operator string
	Expr     Expression
}

func (n *PostfixUnary) Accept(v Visitor) { v.VisitPostfixUnary(n) }
func (n *PostfixUnary) expressionNode()  {}
func (n *PostfixUnary) GetRange() *Range { return n.R }

// IfExpression lowers to `if (cond) { true } else { false }`.
type IfExpression struct {
	R         *Range
	Condition Expression
	TrueExpr  Expression
	FalseExpr Expression
}

func (n *IfExpression) Accept(v Visitor) { v.VisitIfExpression(n) }
func (n *IfExpression) expressionNode()  {}
func (n *IfExpression) GetRange() *Range { return n.R }

// TypeExpr is a type used in expression position (e.g. `Foo.self`-style
// metatype references), lowered through the TypeRewriter.
type TypeExpr struct {
	R    *Range
	Name string
}

func (n *TypeExpr) Accept(v Visitor) { v.VisitTypeExpr(n) }
func (n *TypeExpr) expressionNode()  {}
func (n *TypeExpr) GetRange() *Range { return n.R }

// SubscriptExpr lowers to `object[index]`.
type SubscriptExpr struct {
	R      *Range
	Object Expression
	Index  Expression
	Type   string
}

func (n *SubscriptExpr) Accept(v Visitor) { v.VisitSubscriptExpr(n) }
func (n *SubscriptExpr) expressionNode()  {}
func (n *SubscriptExpr) GetRange() *Range { return n.R }

// ParensExpr lowers to `(expr)`.
type ParensExpr struct {
	R    *Range
	Expr Expression
}

func (n *ParensExpr) Accept(v Visitor) { v.VisitParensExpr(n) }
func (n *ParensExpr) expressionNode()  {}
func (n *ParensExpr) GetRange() *Range { return n.R }

// ForceValueExpr lowers to `expr!!`.
type ForceValueExpr struct {
	R    *Range
	Expr Expression
}

func (n *ForceValueExpr) Accept(v Visitor) { v.VisitForceValueExpr(n) }
func (n *ForceValueExpr) expressionNode()  {}
func (n *ForceValueExpr) GetRange() *Range { return n.R }

// OptionalExpr lowers to `expr?`.
type OptionalExpr struct {
	R    *Range
	Expr Expression
}

func (n *OptionalExpr) Accept(v Visitor) { v.VisitOptionalExpr(n) }
func (n *OptionalExpr) expressionNode()  {}
func (n *OptionalExpr) GetRange() *Range { return n.R }

// LiteralInt lowers to a plain decimal integer literal.
type LiteralInt struct {
	R     *Range
	Value int64
}

func (n *LiteralInt) Accept(v Visitor) { v.VisitLiteralInt(n) }
func (n *LiteralInt) expressionNode()  {}
func (n *LiteralInt) GetRange() *Range { return n.R }

// LiteralUInt lowers to a decimal literal with a trailing `u`.
type LiteralUInt struct {
	R     *Range
	Value uint64
}

func (n *LiteralUInt) Accept(v Visitor) { v.VisitLiteralUInt(n) }
func (n *LiteralUInt) expressionNode()  {}
func (n *LiteralUInt) GetRange() *Range { return n.R }

// LiteralDouble lowers to a plain decimal literal.
type LiteralDouble struct {
	R     *Range
	Value float64
}

func (n *LiteralDouble) Accept(v Visitor) { v.VisitLiteralDouble(n) }
func (n *LiteralDouble) expressionNode()  {}
func (n *LiteralDouble) GetRange() *Range { return n.R }

// LiteralFloat lowers to a decimal literal with a trailing `f`.
type LiteralFloat struct {
	R     *Range
	Value float32
}

func (n *LiteralFloat) Accept(v Visitor) { v.VisitLiteralFloat(n) }
func (n *LiteralFloat) expressionNode()  {}
func (n *LiteralFloat) GetRange() *Range { return n.R }

// LiteralBool lowers to `true`/`false`.
type LiteralBool struct {
	R     *Range
	Value bool
}

func (n *LiteralBool) Accept(v Visitor) { v.VisitLiteralBool(n) }
func (n *LiteralBool) expressionNode()  {}
func (n *LiteralBool) GetRange() *Range { return n.R }

// NilLiteral lowers to `null`.
type NilLiteral struct{ R *Range }

func (n *NilLiteral) Accept(v Visitor) { v.VisitNilLiteral(n) }
func (n *NilLiteral) expressionNode()  {}
func (n *NilLiteral) GetRange() *Range { return n.R }

// TuplePair is one labelled-or-bare element of a TupleExpr.
type TuplePair struct {
	Label string // empty when unlabelled
	Expr  Expression
}

// TupleExpr is a tuple literal or a Call's argument list.
type TupleExpr struct {
	R     *Range
	Pairs []TuplePair
}

func (n *TupleExpr) Accept(v Visitor) { v.VisitTupleExpr(n) }
func (n *TupleExpr) expressionNode()  {}
func (n *TupleExpr) GetRange() *Range { return n.R }

// ErrorExpr marks a subtree earlier passes could not construct
// correctly; it always lowers to the <<Error>> sentinel.
type ErrorExpr struct{ R *Range }

func (n *ErrorExpr) Accept(v Visitor) { v.VisitErrorExpr(n) }
func (n *ErrorExpr) expressionNode()  {}
func (n *ErrorExpr) GetRange() *Range { return n.R }
