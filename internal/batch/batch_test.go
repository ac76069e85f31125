package batch

import (
	"context"
	"testing"

	"github.com/gryphon-lang/gryphon-go/internal/ast"
	"github.com/gryphon-lang/gryphon-go/internal/emitcache"
	"github.com/gryphon-lang/gryphon-go/internal/registries"
)

func unitFor(name string, value int64) Unit {
	return Unit{
		Name: name,
		AST: &ast.GryphonAST{
			Statements: []ast.Statement{&ast.Return{Expr: &ast.LiteralInt{Value: value}}},
		},
		Ctx: registries.New(),
	}
}

func TestTranslateAllReturnsResultsInInputOrder(t *testing.T) {
	units := []Unit{unitFor("a", 1), unitFor("b", 2), unitFor("c", 3)}

	results, err := TranslateAll(context.Background(), units, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, want := range []string{"a", "b", "c"} {
		if results[i].Name != want {
			t.Errorf("result %d: got name %q, want %q", i, results[i].Name, want)
		}
		if results[i].Err != nil {
			t.Errorf("result %d: unexpected error %v", i, results[i].Err)
		}
	}
}

func TestTranslateAllCacheHitSkipsEmission(t *testing.T) {
	cache, err := emitcache.Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer cache.Close()

	u := unitFor("cached", 7)
	if err := cache.Store(u.AST, "already emitted\n"); err != nil {
		t.Fatalf("Store: %v", err)
	}

	results, err := TranslateAll(context.Background(), []Unit{u}, Options{Cache: cache})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].Text != "already emitted\n" {
		t.Errorf("expected the cached text to win over a fresh emission, got %q", results[0].Text)
	}
}

func TestTranslateAllStoresFreshEmissionInCache(t *testing.T) {
	cache, err := emitcache.Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer cache.Close()

	u := unitFor("fresh", 9)
	if _, err := TranslateAll(context.Background(), []Unit{u}, Options{Cache: cache}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text, hit, err := cache.Lookup(u.AST)
	if err != nil || !hit {
		t.Fatalf("expected a cache entry after a fresh emission, hit=%v err=%v", hit, err)
	}
	if text != "fun main(args: Array<String>) {\n\treturn 9\n}\n" {
		t.Errorf("got %q", text)
	}
}

func TestTranslateAllCancelledContextPopulatesErr(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := TranslateAll(ctx, []Unit{unitFor("a", 1)}, Options{})
	if err == nil {
		t.Fatal("expected an error from a pre-cancelled context")
	}
	if results[0].Err == nil {
		t.Error("expected the unit's result to carry the cancellation error")
	}
}
