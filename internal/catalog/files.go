package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// FindFiles returns the absolute paths under root matching pattern, minus
// any path matching one of the exclude patterns. Patterns use doublestar
// syntax, so `**` recursion and `[jt]s`-style classes both work. Every call
// re-walks the tree; nothing is cached.
func FindFiles(root, pattern string, excludes []string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(root), pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q under %s: %w", pattern, root, err)
	}

	var paths []string
	for _, rel := range matches {
		if excluded(rel, excludes) {
			continue
		}
		abs := filepath.Join(root, filepath.FromSlash(rel))
		info, err := os.Stat(abs)
		if err != nil || info.IsDir() {
			continue
		}
		paths = append(paths, abs)
	}

	sort.Strings(paths)
	return paths, nil
}

func excluded(rel string, excludes []string) bool {
	for _, ex := range excludes {
		if ok, err := doublestar.Match(ex, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
