package engine

import (
	"context"
	"strings"

	"github.com/tvandenberg/fleetlens/pkg/types"
)

// RouteList is a filtered view of the route table.
type RouteList struct {
	Routes []types.RouteRecord `json:"routes"`
	Total  int                 `json:"total"`
}

// ListRoutes returns the cached route table, optionally filtered by domain
// and/or HTTP method.
func (e *Engine) ListRoutes(ctx context.Context, domain, method string) (*RouteList, error) {
	if domain != "" && !types.ValidDomain(domain) {
		return nil, types.Usagef("unknown domain %q (expected one of Core, Customer, Dealer, Employer)", domain)
	}
	if method != "" && !types.ValidMethod(method) {
		return nil, types.Usagef("unknown method %q (expected one of GET, POST, PUT, PATCH, DELETE)", method)
	}

	table, err := e.routes.Routes(ctx)
	if err != nil {
		return nil, err
	}

	filtered := []types.RouteRecord{}
	for _, r := range table {
		if domain != "" && r.Domain() != domain {
			continue
		}
		if method != "" && r.Method != method {
			continue
		}
		filtered = append(filtered, r)
	}

	return &RouteList{Routes: filtered, Total: len(filtered)}, nil
}

// RouteMatch is a single resolved route plus its derived domain.
type RouteMatch struct {
	Route  types.RouteRecord `json:"route"`
	Domain string            `json:"domain,omitempty"`
}

// FindRoute resolves one route by symbolic name or by exact URI. Exactly
// one selector must be supplied; an absent route is a hard not-found.
func (e *Engine) FindRoute(ctx context.Context, uri, name string) (*RouteMatch, error) {
	if uri == "" && name == "" {
		return nil, types.Usagef("either uri or name is required")
	}

	table, err := e.routes.Routes(ctx)
	if err != nil {
		return nil, err
	}

	for _, r := range table {
		if name != "" {
			if r.Name == name {
				return &RouteMatch{Route: r, Domain: r.Domain()}, nil
			}
			continue
		}
		if r.URI == uri || r.URI == strings.TrimPrefix(uri, "/") {
			return &RouteMatch{Route: r, Domain: r.Domain()}, nil
		}
	}

	if name != "" {
		return nil, types.NotFoundf("no route named %q", name)
	}
	return nil, types.NotFoundf("no route with uri %q", uri)
}

// RoutesForController lists every route whose action reference contains
// the given controller name. An empty list is a valid success.
func (e *Engine) RoutesForController(ctx context.Context, controller string) (*RouteList, error) {
	if controller == "" {
		return nil, types.Usagef("controller is required")
	}

	table, err := e.routes.Routes(ctx)
	if err != nil {
		return nil, err
	}

	matched := []types.RouteRecord{}
	for _, r := range table {
		if strings.Contains(r.Action, controller) {
			matched = append(matched, r)
		}
	}

	return &RouteList{Routes: matched, Total: len(matched)}, nil
}
