package emitter

import (
	"strings"

	"github.com/gryphon-lang/gryphon-go/internal/ast"
)

// Translate is the TopLevelDriver entry point: it emits declarations at
// zero indentation, then, if there are any top-level statements, wraps
// them in a synthetic `fun main(args: Array<String>)` at one indent
// level, separated from the declarations by a blank line when both
// produced output.
func (e *Emitter) Translate(program *ast.GryphonAST) string {
	var b strings.Builder

	declText := e.emitSiblingStatements(program.Declarations, "")
	b.WriteString(declText)

	stmtText := e.emitSiblingStatements(program.Statements, e.inc(""))
	if strings.TrimSpace(stmtText) != "" {
		if declText != "" {
			b.WriteString("\n")
		}
		b.WriteString("fun main(args: Array<String>) {\n")
		b.WriteString(stmtText)
		b.WriteString("}\n")
	}

	return b.String()
}

// TranslateFiles concatenates declarations from every file before any
// statement, then merges each file's top-level statements into one
// synthetic main.
func (e *Emitter) TranslateFiles(files []*ast.GryphonAST) string {
	merged := &ast.GryphonAST{}
	for _, f := range files {
		merged.Declarations = append(merged.Declarations, f.Declarations...)
	}
	for _, f := range files {
		merged.Statements = append(merged.Statements, f.Statements...)
	}
	return e.Translate(merged)
}
