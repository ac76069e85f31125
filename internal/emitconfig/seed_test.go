package emitconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gryphon-lang/gryphon-go/internal/registries"
)

func TestLoadSeedApplyTo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	data := `
sealed_classes: ["Shape"]
enum_classes: ["Direction"]
protocols: ["Drawable"]
function_translations:
  - source_api_name: "map(_:)"
    type_name: "Array"
    prefix: "map"
    parameters: ["transform"]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	seed, err := LoadSeed(path)
	if err != nil {
		t.Fatalf("LoadSeed: %v", err)
	}

	ctx := registries.New()
	seed.ApplyTo(ctx)

	if !ctx.IsSealedClass("Shape") {
		t.Error("expected Shape to be registered as a sealed class")
	}
	if !ctx.IsEnumClass("Direction") {
		t.Error("expected Direction to be registered as an enum class")
	}
	if !ctx.IsProtocol("Drawable") {
		t.Error("expected Drawable to be registered as a protocol")
	}
}

func TestLoadSeedForResolvesRelativePath(t *testing.T) {
	dir := t.TempDir()
	seedPath := filepath.Join(dir, "seed.yaml")
	if err := os.WriteFile(seedPath, []byte("sealed_classes: [\"Shape\"]\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg := &EmitConfig{RegistrySeed: "seed.yaml"}
	seed, err := LoadSeedFor(cfg, dir)
	if err != nil {
		t.Fatalf("LoadSeedFor: %v", err)
	}
	if seed == nil {
		t.Fatal("expected a non-nil seed")
	}
	if len(seed.SealedClasses) != 1 || seed.SealedClasses[0] != "Shape" {
		t.Errorf("got %v", seed.SealedClasses)
	}
}

func TestLoadSeedForNilWhenUnconfigured(t *testing.T) {
	seed, err := LoadSeedFor(&EmitConfig{}, "/nonexistent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seed != nil {
		t.Error("expected a nil seed when RegistrySeed is unset")
	}
}
