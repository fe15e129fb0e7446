package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tvandenberg/fleetlens/internal/analysis"
	"github.com/tvandenberg/fleetlens/internal/routes"
	"github.com/tvandenberg/fleetlens/internal/schema"
	"github.com/tvandenberg/fleetlens/pkg/types"
)

// writeTree creates an app tree under a temp root. Values are file
// contents; empty string writes a stub.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create dir for %s: %v", rel, err)
		}
		if content == "" {
			content = "<?php // stub\n"
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", rel, err)
		}
	}
	return root
}

func newTestEngine(t *testing.T, root string, table []types.RouteRecord) *Engine {
	t.Helper()

	lister := func(ctx context.Context) ([]types.RouteRecord, error) {
		return table, nil
	}
	cache := routes.NewCache(lister, time.Minute)
	return New(root, cache, schema.NewInspector(root), analysis.NewRunner(root, time.Second))
}

func expectKind(t *testing.T, err error, kind types.ErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected %s error, got nil", kind)
	}
	if got := types.KindOf(err); got != kind {
		t.Fatalf("Expected %s error, got %s: %v", kind, got, err)
	}
}
