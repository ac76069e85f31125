package emitter

import (
	"strings"

	"github.com/gryphon-lang/gryphon-go/internal/ast"
	"github.com/gryphon-lang/gryphon-go/internal/typerewriter"
	"github.com/gryphon-lang/gryphon-go/internal/utils"
)

func (e *Emitter) emitClass(n *ast.Class, ind string) string {
	ind1 := e.inc(ind)
	return ind + "open class " + n.Name + e.formatPlainInherits(n.Inherits) + " {\n" +
		e.emitSiblingStatements(n.Members, ind1) + ind + "}\n"
}

func (e *Emitter) emitCompanionObject(n *ast.CompanionObject, ind string) string {
	ind1 := e.inc(ind)
	return ind + "companion object {\n" + e.emitSiblingStatements(n.Members, ind1) + ind + "}\n"
}

func (e *Emitter) emitProtocol(n *ast.Protocol, ind string) string {
	ind1 := e.inc(ind)
	return ind + "interface " + n.Name + " {\n" + e.emitSiblingStatements(n.Members, ind1) + ind + "}\n"
}

func (e *Emitter) emitDo(n *ast.Do, ind string) string {
	ind1 := e.inc(ind)
	return ind + "try {\n" + e.emitSiblingStatements(n.Stmts, ind1) + ind + "}\n"
}

func (e *Emitter) emitCatch(n *ast.Catch, ind string) string {
	ind1 := e.inc(ind)
	var head string
	if n.Decl != nil {
		head = "catch (" + n.Decl.Name + ": " + typerewriter.Rewrite(n.Decl.Type) + ")"
	} else {
		head = "catch"
	}
	return ind + head + " {\n" + e.emitSiblingStatements(n.Stmts, ind1) + ind + "}\n"
}

func (e *Emitter) emitForEach(n *ast.ForEach, ind string) string {
	ind1 := e.inc(ind)
	head := "for (" + e.EmitExpression(n.Variable) + " in " + e.EmitExpression(n.Collection) + ")"
	return ind + head + " {\n" + e.emitSiblingStatements(n.Stmts, ind1) + ind + "}\n"
}

func (e *Emitter) emitWhile(n *ast.While, ind string) string {
	ind1 := e.inc(ind)
	head := "while (" + e.EmitExpression(n.Cond) + ")"
	return ind + head + " {\n" + e.emitSiblingStatements(n.Stmts, ind1) + ind + "}\n"
}

// formatPlainInherits renders a Class's inherits list: rewritten names,
// comma-joined, no protocol-vs-class() distinction.
func (e *Emitter) formatPlainInherits(inherits []string) string {
	if len(inherits) == 0 {
		return ""
	}
	parts := make([]string, len(inherits))
	for i, name := range inherits {
		parts[i] = typerewriter.Rewrite(name)
	}
	return ": " + strings.Join(parts, ", ")
}

// formatConstructorInherits renders a Struct's or Enum's inherits list:
// every non-protocol name gets a trailing "()" constructor invocation.
func (e *Emitter) formatConstructorInherits(inherits []string) string {
	if len(inherits) == 0 {
		return ""
	}
	parts := make([]string, len(inherits))
	for i, name := range inherits {
		rewritten := typerewriter.Rewrite(name)
		if !e.Ctx.IsProtocol(name) {
			rewritten += "()"
		}
		parts[i] = rewritten
	}
	return ": " + strings.Join(parts, ", ")
}

func (e *Emitter) emitStruct(n *ast.Struct, ind string) string {
	ind1 := e.inc(ind)

	var stored []string
	var rest []ast.Statement
	for _, m := range n.Members {
		if vd, ok := m.(*ast.VariableDeclaration); ok && vd.IsStoredProperty() {
			text := strings.TrimSuffix(e.EmitStatement(vd, ind1), "\n")
			stored = append(stored, text)
			continue
		}
		rest = append(rest, m)
	}

	var b strings.Builder
	if len(n.Annotations) > 0 {
		b.WriteString(ind + strings.Join(n.Annotations, " ") + "\n")
	}
	b.WriteString(ind + "data class " + n.Name + "(")
	if len(stored) > 0 {
		b.WriteString("\n" + strings.Join(stored, ",\n") + "\n" + ind)
	}
	b.WriteString(")")
	b.WriteString(e.formatConstructorInherits(n.Inherits))

	if len(rest) > 0 {
		b.WriteString(" {\n")
		b.WriteString(e.emitSiblingStatements(rest, ind1))
		b.WriteString(ind + "}\n")
	} else {
		b.WriteString("\n")
	}
	return b.String()
}

func (e *Emitter) emitEnum(n *ast.Enum, ind string) string {
	ind1 := e.inc(ind)

	accessPrefix := ""
	if n.Access != "" {
		accessPrefix = n.Access + " "
	}
	inheritsClause := e.formatConstructorInherits(n.Inherits)

	if e.Ctx.IsEnumClass(n.Name) {
		var elemLines []string
		for _, el := range n.Elements {
			line := ind1
			if len(el.Annotations) > 0 {
				line += strings.Join(el.Annotations, " ") + " "
			}
			line += el.Name
			elemLines = append(elemLines, line)
		}
		var elemsBlock strings.Builder
		for i, l := range elemLines {
			if i < len(elemLines)-1 {
				elemsBlock.WriteString(l + ",\n")
			} else {
				elemsBlock.WriteString(l + ";\n")
			}
		}
		membersText := e.emitSiblingStatements(n.Members, ind1)

		var b strings.Builder
		b.WriteString(ind + accessPrefix + "enum class " + n.Name + inheritsClause + " {\n")
		b.WriteString(elemsBlock.String())
		if elemsBlock.Len() > 0 && membersText != "" {
			b.WriteString("\n")
		}
		b.WriteString(membersText)
		b.WriteString(ind + "}\n")
		return b.String()
	}

	var elemsBlock strings.Builder
	for _, el := range n.Elements {
		elemsBlock.WriteString(ind1)
		if len(el.Annotations) > 0 {
			elemsBlock.WriteString(strings.Join(el.Annotations, " ") + " ")
		}
		elemsBlock.WriteString("class " + utils.CamelCapitalise(el.Name))
		if len(el.AssociatedValues) > 0 {
			avs := make([]string, len(el.AssociatedValues))
			for i, av := range el.AssociatedValues {
				avs[i] = "val " + av.Label + ": " + typerewriter.Rewrite(av.Type)
			}
			elemsBlock.WriteString("(" + strings.Join(avs, ", ") + ")")
		}
		elemsBlock.WriteString(": " + n.Name + "()\n")
	}
	membersText := e.emitSiblingStatements(n.Members, ind1)

	var b strings.Builder
	b.WriteString(ind + accessPrefix + "sealed class " + n.Name + inheritsClause + " {\n")
	b.WriteString(elemsBlock.String())
	if elemsBlock.Len() > 0 && membersText != "" {
		b.WriteString("\n")
	}
	b.WriteString(membersText)
	b.WriteString(ind + "}\n")
	return b.String()
}

// liftGenerics extracts the generic parameter list by re-parsing a
// rewritten extended-type string. A structured generics list carried
// alongside the type would be sturdier, but this follows the
// literal string-based rule the rest of the extended-type handling uses.
func liftGenerics(rewrittenExt string) []string {
	idx := strings.Index(rewrittenExt, "<")
	if idx < 0 || !strings.HasSuffix(rewrittenExt, ">") {
		return nil
	}
	inner := rewrittenExt[idx+1 : len(rewrittenExt)-1]
	var generics []string
	for _, p := range strings.Split(inner, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			generics = append(generics, p)
		}
	}
	return generics
}

func (e *Emitter) emitVariableDeclaration(n *ast.VariableDeclaration, ind string) string {
	if n.Implicit {
		return ""
	}

	var b strings.Builder
	if len(n.Annotations) > 0 {
		b.WriteString(ind + strings.Join(n.Annotations, " ") + "\n")
	}

	var keyword string
	switch {
	case n.Getter != nil && n.Setter != nil:
		keyword = "var"
	case n.Getter != nil:
		keyword = "val"
	case n.IsLet:
		keyword = "val"
	default:
		keyword = "var"
	}

	extPrefix := ""
	if n.ExtendsType != "" {
		rewrittenExt := typerewriter.Rewrite(n.ExtendsType)
		if generics := liftGenerics(rewrittenExt); len(generics) > 0 {
			extPrefix = "<" + strings.Join(generics, ", ") + "> "
		}
		extPrefix += rewrittenExt + "."
	}

	b.WriteString(ind + keyword + " " + extPrefix + n.Name + ": " + typerewriter.Rewrite(n.Type))
	if n.Expr != nil {
		b.WriteString(" = " + e.EmitExpression(n.Expr))
	}
	b.WriteString("\n")

	ind1 := e.inc(ind)
	ind2 := e.inc(ind1)
	if n.Getter != nil {
		b.WriteString(ind1 + "get() {\n")
		b.WriteString(e.emitSiblingStatements(n.Getter.Statements, ind2))
		b.WriteString(ind1 + "}\n")
	}
	if n.Setter != nil {
		b.WriteString(ind1 + "set(newValue) {\n")
		b.WriteString(e.emitSiblingStatements(n.Setter.Statements, ind2))
		b.WriteString(ind1 + "}\n")
	}
	return b.String()
}
