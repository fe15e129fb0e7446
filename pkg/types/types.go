package types

import (
	"path/filepath"
	"strings"
)

// Domain is one of the four top-level partitions of the fleet app source tree.
type Domain string

const (
	DomainCore     Domain = "Core"
	DomainCustomer Domain = "Customer"
	DomainDealer   Domain = "Dealer"
	DomainEmployer Domain = "Employer"
)

// Domains is the closed domain set, in catalog order.
var Domains = []Domain{DomainCore, DomainCustomer, DomainDealer, DomainEmployer}

// ValidDomain reports whether s is one of the four known domains.
func ValidDomain(s string) bool {
	for _, d := range Domains {
		if string(d) == s {
			return true
		}
	}
	return false
}

// Category is a file classification bucket. Classification is non-exclusive:
// a single path can land in several buckets (e.g. OrderServiceTest.php is
// both a service and a test).
type Category string

const (
	CategoryController          Category = "controller"
	CategoryRepository          Category = "repository"
	CategoryRepositoryInterface Category = "repository_interface"
	CategoryTransformer         Category = "transformer"
	CategoryRequest             Category = "request"
	CategoryModel               Category = "model"
	CategoryEntity              Category = "entity"
	CategoryService             Category = "service"
	CategoryException           Category = "exception"
	CategoryTest                Category = "test"
	CategoryComponent           Category = "component"
	CategoryPage                Category = "page"
	CategoryUnknown             Category = "unknown"
)

// HTTPMethods is the closed method set accepted by route filters.
var HTTPMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE"}

// ValidMethod reports whether m is one of the five supported HTTP methods.
func ValidMethod(m string) bool {
	for _, known := range HTTPMethods {
		if known == m {
			return true
		}
	}
	return false
}

// FileRecord is a classified filesystem path. Records are built fresh on
// every query and never cached.
type FileRecord struct {
	Path         string     `json:"path"`
	RelativePath string     `json:"relative_path"`
	Categories   []Category `json:"categories"`
	Domain       string     `json:"domain,omitempty"`
	Name         string     `json:"name"`
}

// Stem returns the file name without directory or extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// RouteRecord is one HTTP endpoint as reported by `php artisan route:list`.
type RouteRecord struct {
	Name       string   `json:"name,omitempty"`
	Method     string   `json:"method"`
	URI        string   `json:"uri"`
	Action     string   `json:"action"`
	Middleware []string `json:"middleware,omitempty"`
}

// Domain derives the route's domain by matching the action reference
// (e.g. "App\Employer\Controllers\OrderController@index") against the
// four domain tokens. Empty when no token matches.
func (r RouteRecord) Domain() string {
	for _, d := range Domains {
		if strings.Contains(r.Action, `\`+string(d)+`\`) || strings.Contains(r.Action, "/"+string(d)+"/") {
			return string(d)
		}
	}
	return ""
}

// ControllerName extracts the bare controller class name from the action
// reference, without namespace or method suffix.
func (r RouteRecord) ControllerName() string {
	action := r.Action
	if at := strings.Index(action, "@"); at >= 0 {
		action = action[:at]
	}
	if i := strings.LastIndex(action, `\`); i >= 0 {
		action = action[i+1:]
	}
	if i := strings.LastIndex(action, "/"); i >= 0 {
		action = action[i+1:]
	}
	return action
}

// ModelScope is one Eloquent query scope extracted from a model file.
type ModelScope struct {
	Name   string `json:"name"`
	Method string `json:"method"`
}

// ComponentUsage is one file's usage of a Vue component.
type ComponentUsage struct {
	File        string `json:"file"`
	Occurrences int    `json:"occurrences"`
}

// ColumnInfo is one column of a database table.
type ColumnInfo struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Nullable bool   `json:"nullable"`
	Default  string `json:"default,omitempty"`
	Primary  bool   `json:"primary"`
}

// TableSchema is the introspected shape of one database table. When the
// database is unreachable the Migration fields carry the fallback payload
// and Columns is empty.
type TableSchema struct {
	Table         string       `json:"table"`
	Columns       []ColumnInfo `json:"columns,omitempty"`
	Source        string       `json:"source"`
	MigrationFile string       `json:"migration_file,omitempty"`
	MigrationText string       `json:"migration_text,omitempty"`
}
