package engine

import (
	"path/filepath"

	"github.com/tvandenberg/fleetlens/internal/catalog"
	"github.com/tvandenberg/fleetlens/pkg/types"
)

// Buckets holds the per-category relative-path lists of a structure
// listing. Categories are evaluated independently over the full file set,
// so one file can appear in more than one bucket.
type Buckets struct {
	Controllers          []string `json:"controllers"`
	Repositories         []string `json:"repositories"`
	RepositoryInterfaces []string `json:"repository_interfaces"`
	Transformers         []string `json:"transformers"`
	Requests             []string `json:"requests"`
	Models               []string `json:"models"`
	Entities             []string `json:"entities"`
	Services             []string `json:"services"`
	Exceptions           []string `json:"exceptions"`
	Tests                []string `json:"tests"`
}

func (e *Engine) bucketize(paths []string) Buckets {
	return Buckets{
		Controllers:          e.filterByCategory(paths, types.CategoryController),
		Repositories:         e.filterByCategory(paths, types.CategoryRepository),
		RepositoryInterfaces: e.filterByCategory(paths, types.CategoryRepositoryInterface),
		Transformers:         e.filterByCategory(paths, types.CategoryTransformer),
		Requests:             e.filterByCategory(paths, types.CategoryRequest),
		Models:               e.filterByCategory(paths, types.CategoryModel),
		Entities:             e.filterByCategory(paths, types.CategoryEntity),
		Services:             e.filterByCategory(paths, types.CategoryService),
		Exceptions:           e.filterByCategory(paths, types.CategoryException),
		Tests:                e.filterByCategory(paths, types.CategoryTest),
	}
}

// DomainInfo is one entry of the domain listing.
type DomainInfo struct {
	Domain string `json:"domain"`
	Path   string `json:"path"`
	Files  int    `json:"files"`
}

// DomainList enumerates the four domains with their file counts.
type DomainList struct {
	Domains []DomainInfo `json:"domains"`
}

// ListDomains reports the closed domain set and how many source files each
// domain root currently holds. Missing roots count zero rather than fail,
// so the listing always covers all four.
func (e *Engine) ListDomains() (*DomainList, error) {
	list := &DomainList{}
	for _, d := range types.Domains {
		root := filepath.Join(e.appPath, "app", string(d))
		info := DomainInfo{Domain: string(d), Path: e.rel(root)}
		if catalog.DirExists(root) {
			files, err := catalog.FindFiles(root, "**/*.php", nil)
			if err != nil {
				return nil, err
			}
			info.Files = len(files)
		}
		list.Domains = append(list.Domains, info)
	}
	return list, nil
}

// DomainStructure is the full category breakdown of one domain.
type DomainStructure struct {
	Domain string `json:"domain"`
	Buckets
	TotalFiles int `json:"total_files"`
}

// Structure enumerates every file under one domain root and applies every
// category filter to the set.
func (e *Engine) Structure(domain string) (*DomainStructure, error) {
	if !types.ValidDomain(domain) {
		return nil, types.Usagef("unknown domain %q (expected one of Core, Customer, Dealer, Employer)", domain)
	}

	root := filepath.Join(e.appPath, "app", domain)
	if !catalog.DirExists(root) {
		return nil, types.NotFoundf("domain directory %s does not exist", e.rel(root))
	}

	files, err := catalog.FindFiles(root, "**/*.php", nil)
	if err != nil {
		return nil, err
	}

	return &DomainStructure{
		Domain:     domain,
		Buckets:    e.bucketize(files),
		TotalFiles: len(files),
	}, nil
}

// Listing is a single-category file listing with classified records.
type Listing struct {
	Domain string             `json:"domain,omitempty"`
	Files  []types.FileRecord `json:"files"`
	Total  int                `json:"total"`
}

// records classifies the matching paths relative to the app root.
func (e *Engine) records(paths []string, cats ...types.Category) []types.FileRecord {
	matched := []types.FileRecord{}
	for _, p := range paths {
		for _, cat := range cats {
			if catalog.Matches(p, cat) {
				matched = append(matched, catalog.NewFileRecord(p, e.appPath))
				break
			}
		}
	}
	return matched
}

// ListControllers lists controller files, optionally limited to a domain.
func (e *Engine) ListControllers(domain string) (*Listing, error) {
	return e.listCategory(domain, types.CategoryController)
}

// ListRepositories lists repository implementations and interfaces,
// optionally limited to a domain.
func (e *Engine) ListRepositories(domain string) (*Listing, error) {
	root, err := e.sourceRoot(domain)
	if err != nil {
		return nil, err
	}
	files, err := e.findAllPHP(root)
	if err != nil {
		return nil, err
	}

	matched := e.records(files, types.CategoryRepository, types.CategoryRepositoryInterface)
	return &Listing{Domain: domain, Files: matched, Total: len(matched)}, nil
}

// ListModels lists Eloquent models and entities, optionally limited to a
// domain.
func (e *Engine) ListModels(domain string) (*Listing, error) {
	root, err := e.sourceRoot(domain)
	if err != nil {
		return nil, err
	}
	files, err := e.findAllPHP(root)
	if err != nil {
		return nil, err
	}

	matched := e.records(files, types.CategoryModel, types.CategoryEntity)
	return &Listing{Domain: domain, Files: matched, Total: len(matched)}, nil
}

func (e *Engine) listCategory(domain string, cat types.Category) (*Listing, error) {
	root, err := e.sourceRoot(domain)
	if err != nil {
		return nil, err
	}
	files, err := e.findAllPHP(root)
	if err != nil {
		return nil, err
	}

	matched := e.records(files, cat)
	return &Listing{Domain: domain, Files: matched, Total: len(matched)}, nil
}

// findAllPHP globs every PHP file under root; a missing root yields an
// empty set so optional-domain listings stay list-style successes.
func (e *Engine) findAllPHP(root string) ([]string, error) {
	if !catalog.DirExists(root) {
		return nil, nil
	}
	return catalog.FindFiles(root, "**/*.php", nil)
}
