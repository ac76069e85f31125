package emitter

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gryphon-lang/gryphon-go/internal/ast"
	"github.com/gryphon-lang/gryphon-go/internal/typerewriter"
)

// EmitExpression is the ExpressionEmitter entry point: an
// exhaustive dispatch over the expression variant universe. Every case
// returns a string with no trailing newline.
func (e *Emitter) EmitExpression(expr ast.Expression) string {
	switch n := expr.(type) {
	case nil:
		return ""
	case *ast.Template:
		return e.emitTemplate(n)
	case *ast.LiteralCode:
		return interpretEscapes(n.Raw)
	case *ast.LiteralDeclaration:
		return interpretEscapes(n.Raw)
	case *ast.ArrayExpr:
		return e.emitArray(n)
	case *ast.DictionaryExpr:
		return e.emitDictionary(n)
	case *ast.BinaryOperator:
		return e.EmitExpression(n.Lhs) + " " + n.Operator + " " + e.EmitExpression(n.Rhs)
	case *ast.CallExpression:
		return e.emitCall(n)
	case *ast.ClosureExpr:
		return e.emitClosure(n)
	case *ast.DeclarationReference:
		return n.DisplayName()
	case *ast.ReturnExpr:
		if n.Expr != nil {
			return "return " + e.EmitExpression(n.Expr)
		}
		return "return"
	case *ast.DotExpr:
		return e.emitDot(n)
	case *ast.LiteralString:
		return "\"" + n.Value + "\""
	case *ast.LiteralCharacter:
		return "'" + n.Value + "'"
	case *ast.InterpolatedString:
		return e.emitInterpolatedString(n)
	case *ast.PrefixUnary:
		return n.Operator + e.EmitExpression(n.Expr)
	case *ast.PostfixUnary:
		return e.EmitExpression(n.Expr) + n.Operator
	case *ast.IfExpression:
		return "if (" + e.EmitExpression(n.Condition) + ") { " + e.EmitExpression(n.TrueExpr) + " } else { " + e.EmitExpression(n.FalseExpr) + " }"
	case *ast.TypeExpr:
		return typerewriter.Rewrite(n.Name)
	case *ast.SubscriptExpr:
		return e.EmitExpression(n.Object) + "[" + e.EmitExpression(n.Index) + "]"
	case *ast.ParensExpr:
		return "(" + e.EmitExpression(n.Expr) + ")"
	case *ast.ForceValueExpr:
		return e.EmitExpression(n.Expr) + "!!"
	case *ast.OptionalExpr:
		return e.EmitExpression(n.Expr) + "?"
	case *ast.LiteralInt:
		return strconv.FormatInt(n.Value, 10)
	case *ast.LiteralUInt:
		return strconv.FormatUint(n.Value, 10) + "u"
	case *ast.LiteralDouble:
		return formatDecimal(n.Value)
	case *ast.LiteralFloat:
		return formatDecimal(float64(n.Value)) + "f"
	case *ast.LiteralBool:
		return strconv.FormatBool(n.Value)
	case *ast.NilLiteral:
		return "null"
	case *ast.TupleExpr:
		return e.emitBareTuple(n)
	case *ast.TupleShuffleExpr:
		return e.emitBareTupleShuffle(n)
	case *ast.ErrorExpr:
		return Sentinel
	default:
		panic("emitter: unhandled expression variant")
	}
}

func (e *Emitter) emitTemplate(n *ast.Template) string {
	keys := make([]string, 0, len(n.Matches))
	for k := range n.Matches {
		keys = append(keys, k)
	}
	// Longest-key-first so a key that is a prefix of another never
	// shadows it.
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })

	result := n.Pattern
	for _, k := range keys {
		result = strings.ReplaceAll(result, k, e.EmitExpression(n.Matches[k]))
	}
	return result
}

func (e *Emitter) emitArray(n *ast.ArrayExpr) string {
	parts := make([]string, len(n.Elements))
	for i, el := range n.Elements {
		parts[i] = e.EmitExpression(el)
	}
	return "mutableListOf(" + strings.Join(parts, ", ") + ")"
}

func (e *Emitter) emitDictionary(n *ast.DictionaryExpr) string {
	parts := make([]string, len(n.Keys))
	for i := range n.Keys {
		parts[i] = e.EmitExpression(n.Keys[i]) + " to " + e.EmitExpression(n.Values[i])
	}
	return "mutableMapOf(" + strings.Join(parts, ", ") + ")"
}

func (e *Emitter) emitInterpolatedString(n *ast.InterpolatedString) string {
	var b strings.Builder
	b.WriteString("\"")
	for _, part := range n.Parts {
		if ls, ok := part.(*ast.LiteralString); ok {
			if ls.Value == `""` {
				continue
			}
			b.WriteString(ls.Value)
			continue
		}
		b.WriteString("${" + e.EmitExpression(part) + "}")
	}
	b.WriteString("\"")
	return b.String()
}

// interpretEscapes renders LiteralCode/LiteralDeclaration raw text with
// backslash escapes interpreted.
func interpretEscapes(raw string) string {
	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' || i+1 >= len(raw) {
			b.WriteByte(c)
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case '\'':
			b.WriteByte('\'')
		default:
			b.WriteByte('\\')
			b.WriteByte(raw[i])
		}
	}
	return b.String()
}

// formatDecimal renders a float in plain decimal form, always keeping a
// fractional part so "1" doesn't round-trip as the Kotlin Int literal
// "1" instead of the Double/Float literal "1.0".
func formatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
