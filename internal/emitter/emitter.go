// Package emitter implements the recursive AST-to-TargetLang-text
// translator: ExpressionEmitter, StatementEmitter, and TopLevelDriver.
// It is the core this module exists to build; every other package is a
// collaborator it consults.
package emitter

import (
	"github.com/gryphon-lang/gryphon-go/internal/diagnostics"
	"github.com/gryphon-lang/gryphon-go/internal/indent"
	"github.com/gryphon-lang/gryphon-go/internal/registries"
)

// limitForAddingNewlines bounds how many non-empty statement
// translations a sibling block can have before the blank-line
// sequencing policy kicks in at all.
const limitForAddingNewlines = 1

// Emitter holds the per-run state the translator threads through every
// recursive call: the registries it reads, the diagnostic sink it
// reports structural violations to, and the line-width it wraps at.
type Emitter struct {
	Ctx       *registries.TranslationContext
	diag      diagnosticAdapter
	LineWidth int

	// IndentUnit overrides indent.Unit when non-empty (EmitConfig's
	// indent_unit knob).
	IndentUnit string

	// PreserveElementCase keeps enum-class element access as written
	// instead of rewriting to UPPER_SNAKE (EmitConfig's
	// preserve_element_case knob).
	PreserveElementCase bool

	// curIndent is the indentation of the statement currently being
	// emitted. StatementEmitter sets it on entry; ExpressionEmitter reads
	// it to place closures and wrapped call arguments one level deeper,
	// since the expression dispatch itself takes no indent parameter.
	curIndent string
}

// New builds an Emitter for one translation run. ctx is typically fresh
// per run (internal/registries.New()); sink may be nil to discard
// diagnostics.
func New(ctx *registries.TranslationContext, sink diagnostics.Compiler) *Emitter {
	return &Emitter{
		Ctx:       ctx,
		diag:      diagnosticAdapter{sink: sink},
		LineWidth: indent.LineWidth,
	}
}

// WithConfig applies an emitconfig.EmitConfig's overrides to e and
// returns e for chaining. Defined here rather than in emitconfig to
// avoid a dependency cycle (emitconfig has no reason to import emitter).
func (e *Emitter) WithConfig(lineWidth int, indentUnit string, preserveElementCase bool) *Emitter {
	e.LineWidth = lineWidth
	e.IndentUnit = indentUnit
	e.PreserveElementCase = preserveElementCase
	return e
}

func (e *Emitter) lineWidth() int {
	if e.LineWidth > 0 {
		return e.LineWidth
	}
	return indent.LineWidth
}

// indentUnit returns the unit this run increases indentation by,
// defaulting to indent.Unit when no EmitConfig override was applied.
func (e *Emitter) indentUnit() string {
	if e.IndentUnit != "" {
		return e.IndentUnit
	}
	return indent.Unit
}

// inc increases ind one nesting level using this run's indent unit.
func (e *Emitter) inc(ind string) string {
	return indent.IncreaseWith(ind, e.indentUnit())
}
