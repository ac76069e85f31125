package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ConsoleSink is the reference Compiler implementation: it accumulates
// errors and prints them to an io.Writer, colorized only when that
// writer is backed by a real terminal (isatty.IsTerminal /
// IsCygwinTerminal gate the color output).
type ConsoleSink struct {
	out    io.Writer
	color  bool
	errors []error
}

// NewConsoleSink builds a sink writing to out. Pass os.Stderr to get
// the same TTY-aware colorization cmd/gryphon uses.
func NewConsoleSink(out *os.File) *ConsoleSink {
	color := isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
	return &ConsoleSink{out: out, color: color}
}

func (s *ConsoleSink) HandleError(err error) {
	s.errors = append(s.errors, err)
	if s.color {
		fmt.Fprintf(s.out, "\x1b[31merror:\x1b[0m %s\n", err.Error())
		return
	}
	fmt.Fprintf(s.out, "error: %s\n", err.Error())
}

func (s *ConsoleSink) ClearDiagnostics() { s.errors = nil }
func (s *ConsoleSink) HasDiagnostics() bool { return len(s.errors) > 0 }

// Errors returns the accumulated diagnostics in report order.
func (s *ConsoleSink) Errors() []error { return s.errors }
