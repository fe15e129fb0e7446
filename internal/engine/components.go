package engine

import (
	"os"
	"regexp"
	"strings"

	"github.com/tvandenberg/fleetlens/internal/catalog"
	"github.com/tvandenberg/fleetlens/pkg/types"
)

const frontendRoot = "resources/js"

// unusedExemptDirs are shared/base component folders that are never
// reported as unused, referenced or not.
var unusedExemptDirs = []string{
	"resources/js/components/shared",
	"resources/js/components/base",
}

func importPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`import[^;\n]*\b` + regexp.QuoteMeta(name) + `\b[^;\n]*from`)
}

func tagPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`<` + regexp.QuoteMeta(name) + `(?:\s|/|>)`)
}

// ComponentFile is one located Vue single-file component.
type ComponentFile struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// FindComponent locates the first .vue file whose stem equals the short
// name. Zero matches is a hard not-found.
func (e *Engine) FindComponent(name string) (*ComponentFile, error) {
	if name == "" {
		return nil, types.Usagef("name is required")
	}

	matches, err := e.findVue("**/" + name + ".vue")
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, types.NotFoundf("no component named %q", name)
	}

	return &ComponentFile{Name: name, Path: e.rel(matches[0])}, nil
}

// UsageReport is the cross-tree usage count for one component.
type UsageReport struct {
	Component        string                 `json:"component"`
	Path             string                 `json:"path"`
	Usages           []types.ComponentUsage `json:"usages"`
	FilesUsing       int                    `json:"files_using"`
	TotalOccurrences int                    `json:"total_occurrences"`
}

// ComponentUsage counts template-tag occurrences of a component across all
// .vue files. A file only contributes when its content also matches the
// import pattern: tags without a detected import are assumed to belong to
// a different component and excluded entirely.
func (e *Engine) ComponentUsage(name string) (*UsageReport, error) {
	comp, err := e.FindComponent(name)
	if err != nil {
		return nil, err
	}

	files, err := e.findVue("**/*.vue")
	if err != nil {
		return nil, err
	}

	importRe := importPattern(name)
	tagRe := tagPattern(name)

	report := &UsageReport{
		Component: name,
		Path:      comp.Path,
		Usages:    []types.ComponentUsage{},
	}

	for _, file := range files {
		if e.rel(file) == comp.Path {
			continue
		}
		content, err := os.ReadFile(file)
		if err != nil {
			continue
		}
		if !importRe.Match(content) {
			continue
		}
		occurrences := len(tagRe.FindAll(content, -1))
		if occurrences == 0 {
			continue
		}
		report.Usages = append(report.Usages, types.ComponentUsage{
			File:        e.rel(file),
			Occurrences: occurrences,
		})
		report.TotalOccurrences += occurrences
	}
	report.FilesUsing = len(report.Usages)

	return report, nil
}

// UnusedReport lists components no other .vue file imports.
type UnusedReport struct {
	Unused          []string `json:"unused"`
	TotalComponents int      `json:"total_components"`
	ExemptDirs      []string `json:"exempt_dirs"`
}

// UnusedComponents reports every component under resources/js/components
// whose import pattern matches no other .vue file. Shared and base
// component folders are exempt.
func (e *Engine) UnusedComponents() (*UnusedReport, error) {
	components, err := catalog.FindFiles(e.appPath, frontendRoot+"/components/**/*.vue", nil)
	if err != nil {
		return nil, err
	}

	all, err := e.findVue("**/*.vue")
	if err != nil {
		return nil, err
	}

	contents := make(map[string][]byte, len(all))
	for _, file := range all {
		if data, err := os.ReadFile(file); err == nil {
			contents[file] = data
		}
	}

	report := &UnusedReport{
		Unused:          []string{},
		TotalComponents: len(components),
		ExemptDirs:      unusedExemptDirs,
	}

	for _, comp := range components {
		rel := e.rel(comp)
		if e.exemptFromUnused(rel) {
			continue
		}

		importRe := importPattern(types.Stem(comp))
		referenced := false
		for file, data := range contents {
			if file == comp {
				continue
			}
			if importRe.Match(data) {
				referenced = true
				break
			}
		}
		if !referenced {
			report.Unused = append(report.Unused, rel)
		}
	}

	return report, nil
}

func (e *Engine) exemptFromUnused(rel string) bool {
	for _, dir := range unusedExemptDirs {
		if strings.HasPrefix(rel, dir+"/") {
			return true
		}
	}
	return false
}

// PageList enumerates Inertia page components.
type PageList struct {
	Domain string   `json:"domain,omitempty"`
	Pages  []string `json:"pages"`
	Total  int      `json:"total"`
}

// ListPages lists every .vue file under a pages directory segment,
// optionally narrowed to files whose path mentions the domain.
func (e *Engine) ListPages(domain string) (*PageList, error) {
	if domain != "" && !types.ValidDomain(domain) {
		return nil, types.Usagef("unknown domain %q (expected one of Core, Customer, Dealer, Employer)", domain)
	}

	files, err := e.findVue("**/*.vue")
	if err != nil {
		return nil, err
	}

	list := &PageList{Domain: domain, Pages: []string{}}
	for _, file := range files {
		if !catalog.Matches(file, types.CategoryPage) {
			continue
		}
		if domain != "" && !pathMentions(file, domain) {
			continue
		}
		list.Pages = append(list.Pages, e.rel(file))
	}
	list.Total = len(list.Pages)

	return list, nil
}

// Both defineProps shapes used in the frontend: the TS generic form
// defineProps<{...}>() and the runtime object form defineProps({...}).
var definePropsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?s)defineProps\s*<\s*\{(.*?)\}\s*>\s*\(\s*\)`),
	regexp.MustCompile(`(?s)defineProps\s*\(\s*\{(.*?)\}\s*\)`),
}

var propNamePattern = regexp.MustCompile(`(?m)^\s*([A-Za-z_][A-Za-z0-9_]*)\s*[:?]`)

// PagePropsReport maps a page component back to the controllers that
// render it and the props the page declares.
type PagePropsReport struct {
	Page        string   `json:"page"`
	Path        string   `json:"path"`
	Props       []string `json:"props"`
	PropsBlock  string   `json:"props_block,omitempty"`
	Controllers []string `json:"controllers"`
}

// PageProps finds a page component, extracts its defineProps declaration,
// and locates the controllers whose Inertia::render calls reference the
// page name.
func (e *Engine) PageProps(page string) (*PagePropsReport, error) {
	if page == "" {
		return nil, types.Usagef("page is required")
	}

	matches, err := e.findVue("**/" + page + ".vue")
	if err != nil {
		return nil, err
	}
	var path string
	for _, m := range matches {
		if catalog.Matches(m, types.CategoryPage) {
			path = m
			break
		}
	}
	if path == "" {
		return nil, types.NotFoundf("no page component named %q", page)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	report := &PagePropsReport{
		Page:        page,
		Path:        e.rel(path),
		Props:       []string{},
		Controllers: []string{},
	}

	for _, pattern := range definePropsPatterns {
		if block := pattern.FindSubmatch(content); block != nil {
			report.PropsBlock = strings.TrimSpace(string(block[1]))
			for _, m := range propNamePattern.FindAllStringSubmatch(report.PropsBlock, -1) {
				report.Props = append(report.Props, m[1])
			}
			break
		}
	}

	renderRe := regexp.MustCompile(`Inertia::render\(\s*['"][^'"]*` + regexp.QuoteMeta(page) + `[^'"]*['"]`)
	controllers, err := catalog.FindFiles(e.appPath, "app/**/*Controller.php", nil)
	if err != nil {
		return nil, err
	}
	for _, controller := range controllers {
		data, err := os.ReadFile(controller)
		if err != nil {
			continue
		}
		if renderRe.Match(data) {
			report.Controllers = append(report.Controllers, e.rel(controller))
		}
	}

	return report, nil
}

func (e *Engine) findVue(pattern string) ([]string, error) {
	root := e.appPath
	if !catalog.DirExists(root) {
		return nil, nil
	}
	return catalog.FindFiles(root, frontendRoot+"/"+pattern, nil)
}

func pathMentions(path, domain string) bool {
	for _, seg := range strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '\\' }) {
		if strings.EqualFold(seg, domain) {
			return true
		}
	}
	return false
}
