package diagnostics

import (
	"bytes"
	"strings"
	"testing"
)

func TestDiagnosticErrorFormatting(t *testing.T) {
	err := NewError(ErrE002, PhaseEmit, 2, 3).WithLine(10)
	msg := err.Error()
	if !strings.Contains(msg, "E002") || !strings.Contains(msg, "line 10") {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestDiagnosticErrorUnknownCode(t *testing.T) {
	err := &DiagnosticError{Code: "E999"}
	if !strings.Contains(err.Error(), "unknown error code") {
		t.Errorf("expected unknown-code message, got %q", err.Error())
	}
}

func TestConsoleSinkAccumulatesAndClears(t *testing.T) {
	var buf bytes.Buffer
	sink := &ConsoleSink{out: &buf}
	if sink.HasDiagnostics() {
		t.Fatal("expected no diagnostics initially")
	}
	sink.HandleError(NewError(ErrE001, PhaseEmit, "bad node"))
	if !sink.HasDiagnostics() || len(sink.Errors()) != 1 {
		t.Fatal("expected one recorded diagnostic")
	}
	if !strings.Contains(buf.String(), "E001") {
		t.Errorf("expected report written to sink, got %q", buf.String())
	}
	sink.ClearDiagnostics()
	if sink.HasDiagnostics() {
		t.Fatal("expected ClearDiagnostics to empty the sink")
	}
}
