package vfs

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// SearchByTag walks the whole tree depth-first and returns, for every file
// carrying the tag, a path string of the form
// "<immediate-parent-name>/<file-name>". Only one level of ancestry is
// reconstructed; root-level hits therefore read "//name" because the root's
// own name is "/". The format is preserved for compatibility with existing
// consumers; SearchByGlob returns real root-relative paths.
func (s *Store) SearchByTag(tag string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.searchFiles(func(f *file) bool {
		return f.metadata.hasTag(tag)
	})
}

// SearchByMIME is SearchByTag's traversal filtering on exact MIME-type
// string equality. The same one-level path format applies.
func (s *Store) SearchByMIME(mime string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.searchFiles(func(f *file) bool {
		return f.metadata.MIMEType == mime
	})
}

func (s *Store) searchFiles(match func(*file) bool) []string {
	results := []string{}
	var visit func(dir *directory)
	visit = func(dir *directory) {
		for _, name := range sortedChildNames(dir) {
			switch child := dir.children[name].(type) {
			case *file:
				if match(child) {
					results = append(results, fmt.Sprintf("%s/%s", dir.nodeName, child.nodeName))
				}
			case *directory:
				visit(child)
			}
		}
	}
	visit(s.root)
	return results
}

// SearchByGlob matches file paths against a doublestar pattern, "**"
// included, and returns root-relative paths with a leading separator.
func (s *Store) SearchByGlob(pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("glob %q: %w", pattern, doublestar.ErrBadPattern)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	results := []string{}
	s.walk(s.root, "", func(rel string, n node) {
		if n.isDir() {
			return
		}
		if ok, _ := doublestar.Match(pattern, rel); ok {
			results = append(results, Separator+rel)
		}
	})
	return results, nil
}
