package engine

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/tvandenberg/fleetlens/internal/catalog"
	"github.com/tvandenberg/fleetlens/pkg/types"
)

// EntityFiles is the result of a free-text entity search: source matches
// classified into buckets, with test-root matches appended as their own
// bucket. Test matches never count toward the source buckets.
type EntityFiles struct {
	Entity string `json:"entity"`
	Domain string `json:"domain,omitempty"`
	Buckets
	TotalFiles int `json:"total_files"`
}

// FindEntityFiles globs `*<entity>*` across the app source and, separately,
// across the test tree. Zero matches in both is a hard not-found: these
// lookups short-circuit before any correlation work.
func (e *Engine) FindEntityFiles(entity, domain string) (*EntityFiles, error) {
	if entity == "" {
		return nil, types.Usagef("entity is required")
	}

	root, err := e.sourceRoot(domain)
	if err != nil {
		return nil, err
	}

	var source []string
	if catalog.DirExists(root) {
		source, err = catalog.FindFiles(root, "**/*"+entity+"*.php", nil)
		if err != nil {
			return nil, err
		}
	}

	var tests []string
	testRoot := filepath.Join(e.appPath, "tests")
	if catalog.DirExists(testRoot) {
		tests, err = catalog.FindFiles(testRoot, "**/*"+entity+"*.php", nil)
		if err != nil {
			return nil, err
		}
	}

	if len(source)+len(tests) == 0 {
		return nil, types.NotFoundf("no files found for entity %q", entity)
	}

	buckets := e.bucketize(source)
	buckets.Tests = append(buckets.Tests, e.relAll(tests)...)

	return &EntityFiles{
		Entity:     entity,
		Domain:     domain,
		Buckets:    buckets,
		TotalFiles: len(source) + len(tests),
	}, nil
}

// ControllerRoutes pairs one discovered controller with the routes whose
// action reference contains its class name.
type ControllerRoutes struct {
	Controller string              `json:"controller"`
	Routes     []types.RouteRecord `json:"routes"`
}

// ServiceChain is the synthesized Route -> Controller -> Repository ->
// Model correlation for one entity.
type ServiceChain struct {
	Entity               string             `json:"entity"`
	Domain               string             `json:"domain,omitempty"`
	Controllers          []ControllerRoutes `json:"controllers"`
	Repositories         []string           `json:"repositories"`
	RepositoryInterfaces []string           `json:"repository_interfaces"`
	Model                string             `json:"model,omitempty"`
	Transformers         []string           `json:"transformers"`
}

// Chain composes the entity search with the cached route table. Routes
// join to controllers by case-sensitive substring containment of the
// controller class name in the action reference. When several model files
// match, the first one is taken as the model; best effort, not an error.
func (e *Engine) Chain(ctx context.Context, entity, domain string) (*ServiceChain, error) {
	files, err := e.FindEntityFiles(entity, domain)
	if err != nil {
		return nil, err
	}

	table, err := e.routes.Routes(ctx)
	if err != nil {
		return nil, err
	}

	chain := &ServiceChain{
		Entity:               entity,
		Domain:               domain,
		Controllers:          []ControllerRoutes{},
		Repositories:         files.Repositories,
		RepositoryInterfaces: files.RepositoryInterfaces,
		Transformers:         files.Transformers,
	}

	for _, controller := range files.Controllers {
		className := types.Stem(controller)
		matched := []types.RouteRecord{}
		for _, r := range table {
			if strings.Contains(r.Action, className) {
				matched = append(matched, r)
			}
		}
		chain.Controllers = append(chain.Controllers, ControllerRoutes{
			Controller: controller,
			Routes:     matched,
		})
	}

	if len(files.Models) > 0 {
		chain.Model = files.Models[0]
	}

	return chain, nil
}
