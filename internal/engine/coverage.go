package engine

import (
	"math"
	"path/filepath"
	"sort"

	"github.com/tvandenberg/fleetlens/internal/catalog"
	"github.com/tvandenberg/fleetlens/pkg/types"
)

// typeGlobs maps the optional file_type filter to discovery globs. This is
// a second, independent categorization path next to the substring
// classifier: the original tool discovered candidates per type with
// directory globs, and that asymmetry is kept on purpose.
var typeGlobs = map[string]string{
	"controller":  "**/Controllers/*.php",
	"repository":  "**/Repositories/*.php",
	"service":     "**/Services/*.php",
	"transformer": "**/Transformers/*.php",
	"model":       "**/Models/*.php",
	"request":     "**/Requests/*.php",
}

// CoverageReport is the untested-file breakdown for one domain.
type CoverageReport struct {
	Domain             string   `json:"domain"`
	FileType           string   `json:"file_type,omitempty"`
	TotalFiles         int      `json:"total_files"`
	TestedFiles        int      `json:"tested_files"`
	UntestedFiles      []string `json:"untested_files"`
	CoveragePercentage int      `json:"coverage_percentage"`
}

// UntestedFiles enumerates candidate files in a domain and checks each for
// a `*<name>*Test` match under tests/Unit or tests/Feature. Coverage is
// round(100*tested/total), reported as 0 for an empty candidate set.
func (e *Engine) UntestedFiles(domain, fileType string) (*CoverageReport, error) {
	if !types.ValidDomain(domain) {
		return nil, types.Usagef("unknown domain %q (expected one of Core, Customer, Dealer, Employer)", domain)
	}

	pattern := "**/*.php"
	if fileType != "" {
		glob, ok := typeGlobs[fileType]
		if !ok {
			known := make([]string, 0, len(typeGlobs))
			for t := range typeGlobs {
				known = append(known, t)
			}
			sort.Strings(known)
			return nil, types.Usagef("unknown file_type %q (expected one of %v)", fileType, known)
		}
		pattern = glob
	}

	root := filepath.Join(e.appPath, "app", domain)
	if !catalog.DirExists(root) {
		return nil, types.NotFoundf("domain directory %s does not exist", e.rel(root))
	}

	candidates, err := catalog.FindFiles(root, pattern, nil)
	if err != nil {
		return nil, err
	}

	report := &CoverageReport{
		Domain:        domain,
		FileType:      fileType,
		TotalFiles:    len(candidates),
		UntestedFiles: []string{},
	}

	for _, candidate := range candidates {
		tested, err := e.hasTest(types.Stem(candidate))
		if err != nil {
			return nil, err
		}
		if tested {
			report.TestedFiles++
		} else {
			report.UntestedFiles = append(report.UntestedFiles, e.rel(candidate))
		}
	}

	if report.TotalFiles > 0 {
		report.CoveragePercentage = int(math.Round(100 * float64(report.TestedFiles) / float64(report.TotalFiles)))
	}

	return report, nil
}

// hasTest reports whether either test root holds a file matching
// `*<name>*Test`.
func (e *Engine) hasTest(name string) (bool, error) {
	for _, sub := range []string{"Unit", "Feature"} {
		root := filepath.Join(e.appPath, "tests", sub)
		if !catalog.DirExists(root) {
			continue
		}
		matches, err := catalog.FindFiles(root, "**/*"+name+"*Test.php", nil)
		if err != nil {
			return false, err
		}
		if len(matches) > 0 {
			return true, nil
		}
	}
	return false, nil
}
