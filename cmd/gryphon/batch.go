package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gryphon-lang/gryphon-go/internal/batch"
	"github.com/gryphon-lang/gryphon-go/internal/diagnostics"
	"github.com/gryphon-lang/gryphon-go/internal/emitcache"
	"github.com/gryphon-lang/gryphon-go/internal/emitconfig"
	"github.com/gryphon-lang/gryphon-go/internal/registries"
)

// newBatchCmd builds the "batch" subcommand: translate every *.ast.json
// file in a directory concurrently (internal/batch.TranslateAll),
// writing each result alongside its input as *.kt.
func newBatchCmd() *cobra.Command {
	var cachePath string
	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Translate every AST file in a directory concurrently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := loadEffectiveConfig(configPath, dir)
			if err != nil {
				return err
			}

			entries, err := os.ReadDir(dir)
			if err != nil {
				return fmt.Errorf("reading %s: %w", dir, err)
			}

			seed, err := emitconfig.LoadSeedFor(cfg, configDir(configPath, dir))
			if err != nil {
				return err
			}

			var units []batch.Unit
			for _, entry := range entries {
				if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".ast.json") {
					continue
				}
				path := filepath.Join(dir, entry.Name())
				tree, err := readAST(path)
				if err != nil {
					return err
				}
				ctx := registries.New()
				if seed != nil {
					seed.ApplyTo(ctx)
				}
				units = append(units, batch.Unit{Name: entry.Name(), AST: tree, Ctx: ctx})
			}
			if len(units) == 0 {
				return fmt.Errorf("no *.ast.json files found in %s", dir)
			}

			var cache *emitcache.Cache
			if cachePath != "" {
				cache, err = emitcache.Open(cachePath)
				if err != nil {
					return err
				}
				defer cache.Close()
			}

			sink := diagnostics.NewConsoleSink(os.Stderr)
			results, err := batch.TranslateAll(context.Background(), units, batch.Options{
				Config: cfg,
				Cache:  cache,
				Sink:   sink,
			})
			if err != nil {
				return fmt.Errorf("batch translation: %w", err)
			}

			for _, r := range results {
				if r.Err != nil {
					fmt.Fprintf(os.Stderr, "%s: %v\n", r.Name, r.Err)
					continue
				}
				outName := strings.TrimSuffix(r.Name, ".ast.json") + ".kt"
				outPath := filepath.Join(dir, outName)
				if err := os.WriteFile(outPath, []byte(r.Text), 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", outPath, err)
				}
			}
			if sink.HasDiagnostics() {
				return fmt.Errorf("batch translation reported %d diagnostic(s)", len(sink.Errors()))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cachePath, "cache", "", "path to an emitcache sqlite database (default: no cache)")
	return cmd
}
