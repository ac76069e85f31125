package ast

// Visitor is implemented by anything that walks the AST, the way the
// teacher toolchain's prettyprinter implements ast.Visitor over its own
// node universe. The emitter dispatches with a type switch rather than
// Accept/Visit (it threads an indent string and returns a value at every
// call, which a void Visitor interface does not carry); Visitor is kept
// for walkers that only need to traverse, not translate, and still want
// the exhaustiveness guarantee. Nothing in this module implements it.
type Visitor interface {
	// Statements
	VisitComment(n *Comment)
	VisitImport(n *Import)
	VisitExtension(n *Extension)
	VisitDefer(n *Defer)
	VisitTypealias(n *Typealias)
	VisitClass(n *Class)
	VisitStruct(n *Struct)
	VisitCompanionObject(n *CompanionObject)
	VisitEnum(n *Enum)
	VisitDo(n *Do)
	VisitCatch(n *Catch)
	VisitForEach(n *ForEach)
	VisitWhile(n *While)
	VisitProtocol(n *Protocol)
	VisitThrow(n *Throw)
	VisitFunctionDeclaration(n *FunctionDeclaration)
	VisitVariableDeclaration(n *VariableDeclaration)
	VisitAssignment(n *Assignment)
	VisitIf(n *If)
	VisitSwitch(n *Switch)
	VisitReturn(n *Return)
	VisitBreak(n *Break)
	VisitContinue(n *Continue)
	VisitExpressionStatement(n *ExpressionStatement)
	VisitErrorStatement(n *ErrorStatement)

	// Expressions
	VisitTemplate(n *Template)
	VisitLiteralCode(n *LiteralCode)
	VisitLiteralDeclaration(n *LiteralDeclaration)
	VisitArrayExpr(n *ArrayExpr)
	VisitDictionaryExpr(n *DictionaryExpr)
	VisitBinaryOperator(n *BinaryOperator)
	VisitCallExpression(n *CallExpression)
	VisitClosureExpr(n *ClosureExpr)
	VisitDeclarationReference(n *DeclarationReference)
	VisitReturnExpr(n *ReturnExpr)
	VisitDotExpr(n *DotExpr)
	VisitLiteralString(n *LiteralString)
	VisitLiteralCharacter(n *LiteralCharacter)
	VisitInterpolatedString(n *InterpolatedString)
	VisitPrefixUnary(n *PrefixUnary)
	VisitPostfixUnary(n *PostfixUnary)
	VisitIfExpression(n *IfExpression)
	VisitTypeExpr(n *TypeExpr)
	VisitSubscriptExpr(n *SubscriptExpr)
	VisitParensExpr(n *ParensExpr)
	VisitForceValueExpr(n *ForceValueExpr)
	VisitOptionalExpr(n *OptionalExpr)
	VisitLiteralInt(n *LiteralInt)
	VisitLiteralUInt(n *LiteralUInt)
	VisitLiteralDouble(n *LiteralDouble)
	VisitLiteralFloat(n *LiteralFloat)
	VisitLiteralBool(n *LiteralBool)
	VisitNilLiteral(n *NilLiteral)
	VisitTupleExpr(n *TupleExpr)
	VisitTupleShuffleExpr(n *TupleShuffleExpr)
	VisitErrorExpr(n *ErrorExpr)
}
