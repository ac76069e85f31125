package emitconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gryphon-lang/gryphon-go/internal/indent"
)

func TestParseConfigAppliesDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("preserve_element_case: true\n"), "gryphon.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LineWidth != indent.LineWidth {
		t.Errorf("got LineWidth %d, want default %d", cfg.LineWidth, indent.LineWidth)
	}
	if cfg.IndentUnit != indent.Unit {
		t.Errorf("got IndentUnit %q, want default %q", cfg.IndentUnit, indent.Unit)
	}
	if !cfg.PreserveElementCase {
		t.Error("expected preserve_element_case to round-trip true")
	}
}

func TestParseConfigRejectsNegativeLineWidth(t *testing.T) {
	if _, err := ParseConfig([]byte("line_width: -1\n"), "gryphon.yaml"); err == nil {
		t.Fatal("expected an error for negative line_width")
	}
}

func TestLoadConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gryphon.yaml")
	if err := os.WriteFile(path, []byte("line_width: 80\nindent_unit: \"  \"\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LineWidth != 80 || cfg.IndentUnit != "  " {
		t.Errorf("got %+v", cfg)
	}
}

func TestFindConfigWalksUpToParent(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "gryphon.yaml"), []byte("line_width: 90\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	found, err := FindConfig(nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found == "" {
		t.Fatal("expected to find gryphon.yaml walking up from a nested directory")
	}
}
