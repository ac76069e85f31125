package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gryphon-lang/gryphon-go/internal/ast"
	"github.com/gryphon-lang/gryphon-go/internal/diagnostics"
	"github.com/gryphon-lang/gryphon-go/internal/emitconfig"
	"github.com/gryphon-lang/gryphon-go/internal/emitter"
	"github.com/gryphon-lang/gryphon-go/internal/registries"
)

// newEmitCmd builds the "emit" subcommand: translate one AST file to
// TargetLang source on stdout. Reading the AST is boundary I/O (json,
// not a designed wire format, since AST serialisation proper is out of
// scope), kept deliberately thin so the emitter package stays the only
// place translation semantics live.
func newEmitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emit <ast.json>",
		Short: "Translate a single AST file to TargetLang source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := loadEffectiveConfig(configPath, filepath.Dir(args[0]))
			if err != nil {
				return err
			}

			tree, err := readAST(args[0])
			if err != nil {
				return err
			}

			ctx := registries.New()
			seed, err := emitconfig.LoadSeedFor(cfg, configDir(configPath, filepath.Dir(args[0])))
			if err != nil {
				return err
			}
			if seed != nil {
				seed.ApplyTo(ctx)
			}

			sink := diagnostics.NewConsoleSink(os.Stderr)
			e := emitter.New(ctx, sink)
			e.WithConfig(cfg.LineWidth, cfg.IndentUnit, cfg.PreserveElementCase)

			fmt.Print(e.Translate(tree))
			if sink.HasDiagnostics() {
				return fmt.Errorf("translation reported %d diagnostic(s)", len(sink.Errors()))
			}
			return nil
		},
	}
	return cmd
}

func readAST(path string) (*ast.GryphonAST, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var tree ast.GryphonAST
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &tree, nil
}

func loadEffectiveConfig(explicitPath, searchDir string) (*emitconfig.EmitConfig, error) {
	path := resolveConfigPath(explicitPath, searchDir)
	if path == "" {
		return &emitconfig.EmitConfig{}, nil
	}
	return emitconfig.LoadConfig(path)
}

// resolveConfigPath resolves the gryphon.yaml path that
// loadEffectiveConfig would load: explicitPath if set, otherwise the
// result of walking up from searchDir. Returns "" when neither yields
// a file.
func resolveConfigPath(explicitPath, searchDir string) string {
	if explicitPath != "" {
		return explicitPath
	}
	found, err := emitconfig.FindConfig(searchDir)
	if err != nil {
		return ""
	}
	return found
}

// configDir returns the directory a registry_seed path relative
// reference should resolve against: the directory of the resolved
// gryphon.yaml, or searchDir itself when no config file was found.
func configDir(explicitPath, searchDir string) string {
	path := resolveConfigPath(explicitPath, searchDir)
	if path == "" {
		return searchDir
	}
	return filepath.Dir(path)
}
