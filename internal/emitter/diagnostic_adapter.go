package emitter

import (
	"fmt"

	"github.com/gryphon-lang/gryphon-go/internal/diagnostics"
)

// diagnosticAdapter constructs structured errors for unexpected AST
// shapes, forwards them to the external sink, and returns the sentinel
// so emission can continue.
type diagnosticAdapter struct {
	sink diagnostics.Compiler
}

// unexpectedStructure builds an E001 error describing message and a
// horizontally-truncated rendering of the offending node, forwards it
// to the sink, and returns Sentinel.
func (d *diagnosticAdapter) unexpectedStructure(message string, offending interface{}) string {
	d.report(diagnostics.NewError(diagnostics.ErrE001, diagnostics.PhaseEmit, message+": "+summarize(offending)))
	return Sentinel
}

// tupleShuffleArityMismatch builds an E002 error.
func (d *diagnosticAdapter) tupleShuffleArityMismatch(labels, indices int) string {
	d.report(diagnostics.NewError(diagnostics.ErrE002, diagnostics.PhaseEmit, labels, indices))
	return Sentinel
}

// callParametersNotTuple builds an E003 error.
func (d *diagnosticAdapter) callParametersNotTuple(got interface{}) string {
	d.report(diagnostics.NewError(diagnostics.ErrE003, diagnostics.PhaseEmit, fmt.Sprintf("%T", got)))
	return Sentinel
}

// misplacedDefer builds an E004 error.
func (d *diagnosticAdapter) misplacedDefer() string {
	d.report(diagnostics.NewError(diagnostics.ErrE004, diagnostics.PhaseEmit))
	return Sentinel
}

// extensionSurvived builds an E005 error.
func (d *diagnosticAdapter) extensionSurvived(name string) string {
	d.report(diagnostics.NewError(diagnostics.ErrE005, diagnostics.PhaseEmit, name))
	return Sentinel
}

func (d *diagnosticAdapter) report(err error) {
	if d.sink != nil {
		d.sink.HandleError(err)
	}
}

// summarize pretty-prints the offending node within a 100-column
// horizontal limit, the way DiagnosticAdapter.unexpected_structure
// does for its sink-bound report.
func summarize(node interface{}) string {
	const limit = 100
	s := fmt.Sprintf("%#v", node)
	if len(s) > limit {
		return s[:limit-3] + "..."
	}
	return s
}
