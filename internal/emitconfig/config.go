// Package emitconfig implements gryphon.yaml: the project-level knobs
// that override the emitter's compiled-in defaults.
package emitconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gryphon-lang/gryphon-go/internal/indent"
)

// EmitConfig is the top-level gryphon.yaml configuration.
type EmitConfig struct {
	// LineWidth overrides indent.LineWidth (100) when non-zero.
	LineWidth int `yaml:"line_width,omitempty"`

	// IndentUnit overrides indent.Unit ("\t") when non-empty.
	IndentUnit string `yaml:"indent_unit,omitempty"`

	// PreserveElementCase keeps enum-class element names as written
	// instead of rewriting them to UPPER_SNAKE.
	PreserveElementCase bool `yaml:"preserve_element_case,omitempty"`

	// RegistrySeed is a path, relative to the gryphon.yaml directory,
	// to a file pre-populating the TranslationContext registries
	// (sealed classes, enum classes, protocols, function translations)
	// before a run, so batch/CLI callers don't need to rediscover them
	// from a normalization pass this module doesn't implement. See
	// LoadSeedFor/Seed.ApplyTo.
	RegistrySeed string `yaml:"registry_seed,omitempty"`
}

// LoadConfig reads and parses a gryphon.yaml file.
func LoadConfig(path string) (*EmitConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses gryphon.yaml content from bytes. path is used only
// for error messages.
func ParseConfig(data []byte, path string) (*EmitConfig, error) {
	var cfg EmitConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return &cfg, nil
}

// FindConfig searches for gryphon.yaml starting from dir and walking up
// to parent directories. Returns the path and nil error if found, or
// empty string and nil error if not found anywhere above dir.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, "gryphon.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		candidate = filepath.Join(dir, "gryphon.yml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func (c *EmitConfig) validate(path string) error {
	if c.LineWidth < 0 {
		return fmt.Errorf("%s: line_width must not be negative", path)
	}
	return nil
}

// setDefaults fills in the zero-value fallbacks:
// tab indent, 100-column width.
func (c *EmitConfig) setDefaults() {
	if c.LineWidth == 0 {
		c.LineWidth = indent.LineWidth
	}
	if c.IndentUnit == "" {
		c.IndentUnit = indent.Unit
	}
}
