package vfs

import "strings"

// Separator divides path components. Leading, trailing and duplicate
// separators are tolerated everywhere.
const Separator = "/"

// splitPath breaks a path into its non-empty components. "" and "/" both
// yield an empty slice; callers that require at least one component must
// check and fail with ErrInvalidPath themselves.
func splitPath(path string) []string {
	var parts []string
	for _, p := range strings.Split(path, Separator) {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// joinPath renders components as a root-relative path with a leading
// separator.
func joinPath(parts []string) string {
	return Separator + strings.Join(parts, Separator)
}
