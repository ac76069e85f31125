// Package registries implements the five translation-lookup tables the
// emitter consults read-only during a run: sealed classes, enum classes,
// protocols, function translations, and pure functions. Rather than
// process-wide mutable globals, they are threaded through every emitter
// call on a *TranslationContext*, which removes the need for a
// caller-driven clear between runs and lets independent runs translate
// concurrently (see internal/batch).
package registries

import (
	"strings"

	"github.com/google/uuid"
	"github.com/gryphon-lang/gryphon-go/internal/ast"
)

// FunctionTranslation is one entry of the function-translation table:
// the API name the source used to call a function, and the
// TargetLang-side name/parameter list to substitute it with.
type FunctionTranslation struct {
	SourceAPIName string   `yaml:"source_api_name"`
	TypeName      string   `yaml:"type_name"`
	Prefix        string   `yaml:"prefix"`
	Parameters    []string `yaml:"parameters"`
}

// TranslationContext carries the per-run registries and the run's
// correlation ID, a fresh UUID per context. The diagnostics raised
// during a run do not carry it.
type TranslationContext struct {
	RunID string

	sealedClasses    []string
	enumClasses      []string
	protocols        []string
	funcTranslations []FunctionTranslation
	pureFunctions    []*ast.FunctionDeclaration
}

// New creates an empty TranslationContext with a fresh run ID.
func New() *TranslationContext {
	return &TranslationContext{RunID: uuid.NewString()}
}

// AddSealedClass registers name as a sealed-class lowering target.
func (c *TranslationContext) AddSealedClass(name string) { c.sealedClasses = append(c.sealedClasses, name) }

// AddEnumClass registers name as an enum-class lowering target.
func (c *TranslationContext) AddEnumClass(name string) { c.enumClasses = append(c.enumClasses, name) }

// AddProtocol registers name as a protocol (interface) lowering target.
func (c *TranslationContext) AddProtocol(name string) { c.protocols = append(c.protocols, name) }

// AddFunctionTranslation appends a function-translation entry.
func (c *TranslationContext) AddFunctionTranslation(ft FunctionTranslation) {
	c.funcTranslations = append(c.funcTranslations, ft)
}

// AddPureFunction registers fn as a pure function.
func (c *TranslationContext) AddPureFunction(fn *ast.FunctionDeclaration) {
	c.pureFunctions = append(c.pureFunctions, fn)
}

// Clear empties every registry in place, for a caller reusing one
// TranslationContext across independent runs (a production caller
// using the legacy global-registry style must do this itself; a
// per-run context makes it optional).
func (c *TranslationContext) Clear() {
	c.sealedClasses = nil
	c.enumClasses = nil
	c.protocols = nil
	c.funcTranslations = nil
	c.pureFunctions = nil
}

// IsSealedClass reports whether name is registered as a sealed class.
func (c *TranslationContext) IsSealedClass(name string) bool { return contains(c.sealedClasses, name) }

// IsEnumClass reports whether name is registered as an enum class.
func (c *TranslationContext) IsEnumClass(name string) bool { return contains(c.enumClasses, name) }

// IsProtocol reports whether name is registered as a protocol.
func (c *TranslationContext) IsProtocol(name string) bool { return contains(c.protocols, name) }

func contains(list []string, name string) bool {
	for _, v := range list {
		if v == name {
			return true
		}
	}
	return false
}

// LookupFunctionTranslation performs the first-match-wins, prefix-match
// lookup: the stored SourceAPIName is matched against query with
// hasPrefix, so a labelled variant registered as "f(_:_:)" is found
// when queried as "f". queryType additionally narrows the match by
// identifier and type, against the entry's TypeName when both sides
// supply one; an empty TypeName or an empty queryType is treated as a
// wildcard so untyped call sites still match.
func (c *TranslationContext) LookupFunctionTranslation(query, queryType string) (FunctionTranslation, bool) {
	for _, ft := range c.funcTranslations {
		if !strings.HasPrefix(ft.SourceAPIName, query) {
			continue
		}
		if queryType != "" && ft.TypeName != "" && ft.TypeName != queryType {
			continue
		}
		return ft, true
	}
	return FunctionTranslation{}, false
}

// PureFunctions returns the registered pure functions in insertion order.
func (c *TranslationContext) PureFunctions() []*ast.FunctionDeclaration {
	return c.pureFunctions
}
