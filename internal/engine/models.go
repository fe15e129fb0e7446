package engine

import (
	"os"
	"regexp"
	"strings"

	"github.com/tvandenberg/fleetlens/internal/catalog"
	"github.com/tvandenberg/fleetlens/pkg/types"
)

var scopePattern = regexp.MustCompile(`(?m)(?:public|protected)\s+function\s+scope([A-Za-z0-9_]+)\s*\(`)

// ScopeList is the ordered list of Eloquent query scopes in one model.
type ScopeList struct {
	Model  string             `json:"model"`
	Path   string             `json:"path"`
	Scopes []types.ModelScope `json:"scopes"`
	Total  int                `json:"total"`
}

// ModelScopes reads one model file and extracts every scope method
// declaration in document order. Duplicate names are kept as-is.
func (e *Engine) ModelScopes(model, domain string) (*ScopeList, error) {
	if model == "" {
		return nil, types.Usagef("model is required")
	}

	root, err := e.sourceRoot(domain)
	if err != nil {
		return nil, err
	}

	var matches []string
	if catalog.DirExists(root) {
		matches, err = catalog.FindFiles(root, "**/Models/*"+model+"*.php", nil)
		if err != nil {
			return nil, err
		}
	}
	if len(matches) == 0 {
		return nil, types.NotFoundf("no model file found for %q", model)
	}

	path := matches[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	list := &ScopeList{
		Model:  model,
		Path:   e.rel(path),
		Scopes: []types.ModelScope{},
	}
	for _, m := range scopePattern.FindAllStringSubmatch(string(content), -1) {
		list.Scopes = append(list.Scopes, types.ModelScope{
			Name:   strings.ToLower(m[1]),
			Method: "scope" + m[1],
		})
	}
	list.Total = len(list.Scopes)

	return list, nil
}
