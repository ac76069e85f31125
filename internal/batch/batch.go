// Package batch fans independent translation runs out across
// goroutines, concurrency a per-run TranslationContext makes safe since
// nothing is shared mutable state between units.
package batch

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/gryphon-lang/gryphon-go/internal/ast"
	"github.com/gryphon-lang/gryphon-go/internal/diagnostics"
	"github.com/gryphon-lang/gryphon-go/internal/emitcache"
	"github.com/gryphon-lang/gryphon-go/internal/emitconfig"
	"github.com/gryphon-lang/gryphon-go/internal/emitter"
	"github.com/gryphon-lang/gryphon-go/internal/registries"
)

// Unit is one independent translation: a parsed source file's AST, the
// registries discovered for it, and the name used to report it.
type Unit struct {
	Name string
	AST  *ast.GryphonAST
	Ctx  *registries.TranslationContext
}

// Result is a Unit's translated text, or the error that stopped it.
type Result struct {
	Name string
	Text string
	Err  error
}

// Options configures a TranslateAll run.
type Options struct {
	Config *emitconfig.EmitConfig
	Cache  *emitcache.Cache
	Sink   diagnostics.Compiler
}

// TranslateAll runs units through the emitter concurrently, one
// goroutine per unit, and returns their results in input order. A
// single unit's emitter failure does not cancel its siblings: the
// emitter itself never returns an error (unexpected shapes degrade to
// the sentinel string) and cache I/O failures are logged rather than
// returned, so the only error TranslateAll propagates is ctx's own,
// for units that had not started when ctx was cancelled.
func TranslateAll(ctx context.Context, units []Unit, opts Options) ([]Result, error) {
	results := make([]Result, len(units))
	g, gctx := errgroup.WithContext(ctx)

	for i, u := range units {
		i, u := i, u
		g.Go(func() error {
			select {
			case <-gctx.Done():
				results[i] = Result{Name: u.Name, Err: gctx.Err()}
				return gctx.Err()
			default:
			}

			if opts.Cache != nil {
				if text, hit, err := opts.Cache.Lookup(u.AST); err != nil {
					log.Printf("batch: cache lookup failed for %s: %v", u.Name, err)
				} else if hit {
					results[i] = Result{Name: u.Name, Text: text}
					return nil
				}
			}

			e := emitter.New(u.Ctx, opts.Sink)
			if opts.Config != nil {
				e.WithConfig(opts.Config.LineWidth, opts.Config.IndentUnit, opts.Config.PreserveElementCase)
			}
			text := e.Translate(u.AST)
			results[i] = Result{Name: u.Name, Text: text}

			if opts.Cache != nil {
				if err := opts.Cache.Store(u.AST, text); err != nil {
					log.Printf("batch: cache store failed for %s: %v", u.Name, err)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
