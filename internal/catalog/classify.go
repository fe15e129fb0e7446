package catalog

import (
	"path/filepath"
	"strings"

	"github.com/tvandenberg/fleetlens/pkg/types"
)

// ComponentExt is the Vue single-file-component extension used by the
// target app's frontend.
const ComponentExt = ".vue"

// Matches reports whether path belongs to the given category. The rules are
// naming-convention substring checks, evaluated independently per category:
// one path can match several categories and callers must not assume
// exclusivity.
func Matches(path string, cat types.Category) bool {
	base := filepath.Base(path)
	stem := types.Stem(path)

	switch cat {
	case types.CategoryController:
		return strings.Contains(base, "Controller")
	case types.CategoryRepository:
		return strings.Contains(base, "Repository") && !strings.Contains(base, "Interface")
	case types.CategoryRepositoryInterface:
		return strings.Contains(base, "Repository") && strings.Contains(base, "Interface")
	case types.CategoryTransformer:
		return strings.Contains(base, "Transformer")
	case types.CategoryRequest:
		return strings.Contains(base, "Request")
	case types.CategoryModel:
		return hasSegment(path, "Models")
	case types.CategoryEntity:
		return hasSegment(path, "Entities")
	case types.CategoryService:
		return strings.Contains(base, "Service")
	case types.CategoryException:
		return strings.Contains(base, "Exception")
	case types.CategoryTest:
		return strings.HasSuffix(stem, "Test")
	case types.CategoryComponent:
		return strings.EqualFold(filepath.Ext(path), ComponentExt) && !inPagesDir(path)
	case types.CategoryPage:
		return strings.EqualFold(filepath.Ext(path), ComponentExt) && inPagesDir(path)
	default:
		return false
	}
}

// Categories returns every category the path matches, in rule order.
// Unknown when nothing matched.
func Categories(path string) []types.Category {
	all := []types.Category{
		types.CategoryController,
		types.CategoryRepository,
		types.CategoryRepositoryInterface,
		types.CategoryTransformer,
		types.CategoryRequest,
		types.CategoryModel,
		types.CategoryEntity,
		types.CategoryService,
		types.CategoryException,
		types.CategoryTest,
		types.CategoryComponent,
		types.CategoryPage,
	}

	var cats []types.Category
	for _, c := range all {
		if Matches(path, c) {
			cats = append(cats, c)
		}
	}
	if len(cats) == 0 {
		cats = []types.Category{types.CategoryUnknown}
	}
	return cats
}

// DomainOf scans a path or namespace-qualified reference for the first
// segment equal to one of the four domain tokens. Empty string when the
// path belongs to no domain.
func DomainOf(ref string) string {
	for _, seg := range splitSegments(ref) {
		if types.ValidDomain(seg) {
			return seg
		}
	}
	return ""
}

// NewFileRecord classifies an absolute path relative to the app base dir.
func NewFileRecord(path, baseDir string) types.FileRecord {
	rel, err := filepath.Rel(baseDir, path)
	if err != nil {
		rel = path
	}
	return types.FileRecord{
		Path:         path,
		RelativePath: filepath.ToSlash(rel),
		Categories:   Categories(path),
		Domain:       DomainOf(path),
		Name:         types.Stem(path),
	}
}

func hasSegment(path, want string) bool {
	for _, seg := range splitSegments(path) {
		if seg == want {
			return true
		}
	}
	return false
}

func inPagesDir(path string) bool {
	for _, seg := range splitSegments(path) {
		if strings.EqualFold(seg, "pages") {
			return true
		}
	}
	return false
}

func splitSegments(ref string) []string {
	return strings.FieldsFunc(ref, func(r rune) bool {
		return r == '/' || r == '\\'
	})
}
