package engine

import (
	"path/filepath"

	"github.com/tvandenberg/fleetlens/internal/analysis"
	"github.com/tvandenberg/fleetlens/internal/catalog"
	"github.com/tvandenberg/fleetlens/internal/routes"
	"github.com/tvandenberg/fleetlens/internal/schema"
	"github.com/tvandenberg/fleetlens/pkg/types"
)

// Engine implements the read-only introspection queries over the fleet
// app. It owns the route cache; everything else is re-derived from the
// filesystem on every call.
type Engine struct {
	appPath  string
	routes   *routes.Cache
	schema   *schema.Inspector
	analyzer *analysis.Runner
}

// New wires an engine over the given collaborators.
func New(appPath string, cache *routes.Cache, inspector *schema.Inspector, analyzer *analysis.Runner) *Engine {
	return &Engine{
		appPath:  appPath,
		routes:   cache,
		schema:   inspector,
		analyzer: analyzer,
	}
}

// AppPath returns the configured Laravel application root.
func (e *Engine) AppPath() string {
	return e.appPath
}

// sourceRoot resolves the search root for an optional domain filter:
// app/<Domain> when a domain is given, the whole app/ tree otherwise.
func (e *Engine) sourceRoot(domain string) (string, error) {
	if domain == "" {
		return filepath.Join(e.appPath, "app"), nil
	}
	if !types.ValidDomain(domain) {
		return "", types.Usagef("unknown domain %q (expected one of Core, Customer, Dealer, Employer)", domain)
	}
	return filepath.Join(e.appPath, "app", domain), nil
}

// rel converts an absolute path to a slash-separated path relative to the
// app root.
func (e *Engine) rel(path string) string {
	r, err := filepath.Rel(e.appPath, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(r)
}

func (e *Engine) relAll(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, e.rel(p))
	}
	return out
}

// filterByCategory returns the relative paths of files matching one
// category bucket. Buckets are independent: the same file may appear in
// several of them.
func (e *Engine) filterByCategory(paths []string, cat types.Category) []string {
	matched := []string{}
	for _, p := range paths {
		if catalog.Matches(p, cat) {
			matched = append(matched, e.rel(p))
		}
	}
	return matched
}
