package emitter

import (
	"strings"

	"github.com/gryphon-lang/gryphon-go/internal/ast"
	"github.com/gryphon-lang/gryphon-go/internal/typerewriter"
)

// emitFunctionDeclaration lowers a FunctionDeclaration node:
// header composition (with a one-shot line-wrap retry), then body
// emission (with defer-to-try/finally wrapping).
func (e *Emitter) emitFunctionDeclaration(fn *ast.FunctionDeclaration, ind string) string {
	if fn.IsImplicit {
		return ""
	}

	prefix := e.functionPrefix(fn)
	params := make([]string, len(fn.Parameters))
	for i, p := range fn.Parameters {
		params[i] = e.renderParameter(p)
	}
	suffix := e.functionSuffix(fn)

	oneLine := ind + prefix + strings.Join(params, ", ") + ")" + suffix + " {"
	var header string
	if len(oneLine) <= e.lineWidth() {
		header = oneLine + "\n"
	} else {
		header = e.functionHeaderMultiline(ind, prefix, params, suffix)
	}

	return header + e.functionBody(fn, ind) + ind + "}\n"
}

func (e *Emitter) functionPrefix(fn *ast.FunctionDeclaration) string {
	if fn.IsInitializer {
		return "constructor("
	}
	if fn.Prefix == "invoke" {
		return "operator fun invoke("
	}

	var b strings.Builder
	if len(fn.Annotations) > 0 {
		b.WriteString(strings.Join(fn.Annotations, " ") + " ")
	}
	if fn.Access != "" {
		b.WriteString(fn.Access + " ")
	}
	b.WriteString("fun ")

	if generics := e.mergedGenerics(fn); len(generics) > 0 {
		b.WriteString("<" + strings.Join(generics, ", ") + "> ")
	}
	if fn.ExtendsType != "" {
		b.WriteString(typerewriter.Rewrite(fn.ExtendsType))
		if fn.IsStatic {
			b.WriteString(".Companion")
		}
		b.WriteString(".")
	}
	b.WriteString(fn.Prefix + "(")
	return b.String()
}

// mergedGenerics set-unions the extension type's own lifted generic
// clause (first) with the declaration's own GenericTypes.
func (e *Emitter) mergedGenerics(fn *ast.FunctionDeclaration) []string {
	var extGenerics []string
	if fn.ExtendsType != "" {
		extGenerics = liftGenerics(typerewriter.Rewrite(fn.ExtendsType))
	}
	seen := make(map[string]bool, len(extGenerics)+len(fn.GenericTypes))
	merged := make([]string, 0, len(extGenerics)+len(fn.GenericTypes))
	for _, g := range extGenerics {
		if !seen[g] {
			seen[g] = true
			merged = append(merged, g)
		}
	}
	for _, g := range fn.GenericTypes {
		if !seen[g] {
			seen[g] = true
			merged = append(merged, g)
		}
	}
	return merged
}

func (e *Emitter) renderParameter(p ast.Parameter) string {
	s := p.Label + ": " + typerewriter.Rewrite(p.Type)
	if p.DefaultValue != nil {
		s += " = " + e.EmitExpression(p.DefaultValue)
	}
	return s
}

func (e *Emitter) functionSuffix(fn *ast.FunctionDeclaration) string {
	if fn.IsInitializer {
		if fn.SuperCall != nil {
			return ": " + e.EmitExpression(fn.SuperCall)
		}
		return ""
	}
	if fn.ReturnType != "" && fn.ReturnType != "()" {
		return ": " + typerewriter.Rewrite(fn.ReturnType)
	}
	return ""
}

func (e *Emitter) functionHeaderMultiline(ind, prefix string, params []string, suffix string) string {
	ind1 := e.inc(ind)
	var b strings.Builder
	b.WriteString(ind + prefix + "\n")
	for i, p := range params {
		b.WriteString(ind1 + p)
		if i < len(params)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(ind + ")\n")
	if suffix != "" {
		b.WriteString(ind1 + suffix + "\n")
	}
	b.WriteString(ind + "{\n")
	return b.String()
}

func (e *Emitter) functionBody(fn *ast.FunctionDeclaration, ind string) string {
	ind1 := e.inc(ind)

	var defers []*ast.Defer
	var rest []ast.Statement
	for _, s := range fn.Statements {
		if d, ok := s.(*ast.Defer); ok {
			defers = append(defers, d)
			continue
		}
		rest = append(rest, s)
	}

	if len(defers) == 0 {
		return e.emitSiblingStatements(fn.Statements, ind1)
	}

	ind2 := e.inc(ind1)
	var deferStmts []ast.Statement
	for _, d := range defers {
		deferStmts = append(deferStmts, d.Stmts...)
	}

	var b strings.Builder
	b.WriteString(ind1 + "try {\n")
	b.WriteString(e.emitSiblingStatements(rest, ind2))
	b.WriteString(ind1 + "} finally {\n")
	b.WriteString(e.emitSiblingStatements(deferStmts, ind2))
	b.WriteString(ind1 + "}\n")
	return b.String()
}
