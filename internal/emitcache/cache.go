// Package emitcache implements a content-addressed cache of
// (ast digest) -> emitted text, backed by modernc.org/sqlite, so a
// batch or LSP-style caller re-emitting an unchanged subtree gets a
// cache hit instead of re-running the translator.
package emitcache

import (
	"database/sql"
	"fmt"
	"hash/fnv"

	_ "modernc.org/sqlite"

	"github.com/gryphon-lang/gryphon-go/internal/ast"
)

// Cache wraps a sqlite-backed key/value table mapping an AST digest to
// its last emitted text.
type Cache struct {
	db *sql.DB
}

// Open creates or opens the cache database at path. Pass ":memory:"
// for an ephemeral cache scoped to one process.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("emitcache: opening %s: %w", path, err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS emitted (
			digest TEXT PRIMARY KEY,
			text   TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("emitcache: creating schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close closes the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Lookup returns the cached text for tree's digest, if present.
func (c *Cache) Lookup(tree *ast.GryphonAST) (text string, hit bool, err error) {
	row := c.db.QueryRow(`SELECT text FROM emitted WHERE digest = ?`, Digest(tree))
	if err := row.Scan(&text); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("emitcache: lookup: %w", err)
	}
	return text, true, nil
}

// Store records text as the emission for tree's digest, replacing any
// prior entry for the same digest.
func (c *Cache) Store(tree *ast.GryphonAST, text string) error {
	_, err := c.db.Exec(
		`INSERT INTO emitted (digest, text) VALUES (?, ?)
		 ON CONFLICT(digest) DO UPDATE SET text = excluded.text`,
		Digest(tree), text,
	)
	if err != nil {
		return fmt.Errorf("emitcache: store: %w", err)
	}
	return nil
}

// Digest computes the cache key for tree: an FNV-1a hash of a
// canonical (Go %#v, field-order-stable) dump of the AST. This is a
// structural digest, not a source-text hash: two ASTs built from
// differently-formatted source that happen to parse identically cache
// as one entry.
func Digest(tree *ast.GryphonAST) string {
	h := fnv.New128a()
	fmt.Fprintf(h, "%#v", tree)
	return fmt.Sprintf("%x", h.Sum(nil))
}
