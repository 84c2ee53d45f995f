// Package walker discovers the files a scan will count: it walks root
// paths, prunes hidden and excluded entries, and keeps only files whose
// extension resolves to an enabled language.
package walker

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/toukei-tech/toukei/pkg/lang"
)

// Walker yields the file paths a pipeline will process. All filtering
// happens here; the pipeline never re-checks paths.
type Walker struct {
	registry *lang.Registry
	excludes []string
	enabled  map[string]bool // lowercased language names; empty = all
}

// New creates a Walker. enabledLanguages holds case-insensitive language
// names; an empty list enables every registered language.
func New(registry *lang.Registry, excludePatterns, enabledLanguages []string) *Walker {
	enabled := make(map[string]bool, len(enabledLanguages))
	for _, name := range enabledLanguages {
		enabled[strings.ToLower(name)] = true
	}

	return &Walker{
		registry: registry,
		excludes: excludePatterns,
		enabled:  enabled,
	}
}

// Walk collects every countable file under root. The root itself is never
// treated as hidden, so scanning ".hidden-project" from inside works. A
// directory that cannot be read aborts the walk.
func (w *Walker) Walk(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("walk %s: %w", path, walkErr)
		}

		if path == root {
			if entry.IsDir() {
				return nil
			}

			// Single-file root: honor the same inclusion rules.
			if w.includeFile(path) {
				files = append(files, path)
			}

			return nil
		}

		name := entry.Name()

		if entry.IsDir() {
			if strings.HasPrefix(name, ".") || w.excluded(path) {
				return filepath.SkipDir
			}

			return nil
		}

		if strings.HasPrefix(name, ".") {
			return nil
		}

		if w.includeFile(path) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// includeFile applies the exclusion and language filters to one file.
// Files that do not pass are dropped silently; that is not an error.
func (w *Walker) includeFile(path string) bool {
	if w.excluded(path) {
		return false
	}

	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return false
	}

	rule, ok := w.registry.LookupExtension(ext)
	if !ok {
		return false
	}

	if len(w.enabled) == 0 {
		return true
	}

	return w.enabled[strings.ToLower(rule.Name)]
}

// excluded reports whether a path matches any exclude pattern. Three
// pattern forms are honored for compatibility: a path-fragment suffix
// match, a case-insensitive raw substring match, and doublestar globs.
func (w *Walker) excluded(path string) bool {
	slashed := filepath.ToSlash(path)
	lowered := strings.ToLower(slashed)

	for _, pattern := range w.excludes {
		if pattern == "" {
			continue
		}

		fragment := filepath.ToSlash(pattern)

		if suffixFragmentMatch(slashed, fragment) {
			return true
		}

		if strings.Contains(lowered, strings.ToLower(fragment)) {
			return true
		}

		if isGlob(fragment) {
			if ok, err := doublestar.Match(fragment, slashed); err == nil && ok {
				return true
			}

			if ok, err := doublestar.Match(fragment, filepath.Base(path)); err == nil && ok {
				return true
			}
		}
	}

	return false
}

// suffixFragmentMatch reports whether the path ends with the pattern on a
// path-component boundary, mirroring filepath-style suffix semantics.
func suffixFragmentMatch(path, fragment string) bool {
	fragment = strings.TrimSuffix(fragment, "/")
	if fragment == "" || !strings.HasSuffix(path, fragment) {
		return false
	}

	prefixLen := len(path) - len(fragment)
	if prefixLen == 0 {
		return true
	}

	return path[prefixLen-1] == '/'
}

func isGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
