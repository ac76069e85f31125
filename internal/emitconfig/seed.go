package emitconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gryphon-lang/gryphon-go/internal/registries"
)

// Seed is the shape of a gryphon.yaml registry_seed file: the registry
// entries a CLI caller would otherwise need a normalization pass (out
// of scope for this module) to rediscover before translating.
type Seed struct {
	SealedClasses        []string                       `yaml:"sealed_classes,omitempty"`
	EnumClasses          []string                       `yaml:"enum_classes,omitempty"`
	Protocols            []string                       `yaml:"protocols,omitempty"`
	FunctionTranslations []registries.FunctionTranslation `yaml:"function_translations,omitempty"`
}

// LoadSeed reads and parses a registry seed file.
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading registry seed %s: %w", path, err)
	}
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parsing registry seed %s: %w", path, err)
	}
	return &seed, nil
}

// ApplyTo registers every entry of s into ctx.
func (s *Seed) ApplyTo(ctx *registries.TranslationContext) {
	for _, name := range s.SealedClasses {
		ctx.AddSealedClass(name)
	}
	for _, name := range s.EnumClasses {
		ctx.AddEnumClass(name)
	}
	for _, name := range s.Protocols {
		ctx.AddProtocol(name)
	}
	for _, ft := range s.FunctionTranslations {
		ctx.AddFunctionTranslation(ft)
	}
}

// LoadSeedFor loads cfg's RegistrySeed, if set, resolving a relative
// path against configDir (the directory the gryphon.yaml that produced
// cfg was found in). Returns a nil Seed and nil error when cfg has no
// seed configured.
func LoadSeedFor(cfg *EmitConfig, configDir string) (*Seed, error) {
	if cfg == nil || cfg.RegistrySeed == "" {
		return nil, nil
	}
	path := cfg.RegistrySeed
	if !filepath.IsAbs(path) {
		path = filepath.Join(configDir, path)
	}
	return LoadSeed(path)
}
