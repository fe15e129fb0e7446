package engine

import (
	"context"

	"github.com/tvandenberg/fleetlens/internal/analysis"
	"github.com/tvandenberg/fleetlens/pkg/types"
)

// TableSchema resolves one table's schema through the inspector: database
// first, newest matching migration as a degraded fallback.
func (e *Engine) TableSchema(table string) (*types.TableSchema, error) {
	if table == "" {
		return nil, types.Usagef("table is required")
	}
	return e.schema.TableSchema(table)
}

// StaticAnalysis runs phpstan on a relative path and returns its output
// verbatim. Findings (non-zero exit) are a normal result.
func (e *Engine) StaticAnalysis(ctx context.Context, relPath string) (*analysis.Report, error) {
	return e.analyzer.Analyze(ctx, relPath)
}
