package vfs

import (
	"fmt"
	"strings"
	"time"
)

// NodeInfo is the structured, detached view of a node's metadata. It shares
// no storage with the tree.
type NodeInfo struct {
	Name        string      `json:"name"`
	Path        string      `json:"path"`
	IsDir       bool        `json:"is_dir"`
	Size        int64       `json:"size"`
	Permissions Permissions `json:"permissions"`
	Mode        string      `json:"mode"`
	Owner       string      `json:"owner"`
	Group       string      `json:"group"`
	MIMEType    string      `json:"mime_type"`
	Tags        []string    `json:"tags,omitempty"`
	ReadOnly    bool        `json:"is_read_only"`
	Hidden      bool        `json:"is_hidden"`
	CreatedAt   time.Time   `json:"created_at"`
	ModifiedAt  time.Time   `json:"modified_at"`
	AccessedAt  time.Time   `json:"accessed_at"`
	ID          string      `json:"id"`
}

// Stats summarizes the whole tree.
type Stats struct {
	Nodes       int   `json:"nodes"`
	Files       int   `json:"files"`
	Directories int   `json:"directories"`
	Bytes       int64 `json:"bytes"`
}

// ListDirectory returns the child names of the directory at path, sorted for
// deterministic output. "/" and "" list the root. Listing a file fails with
// ErrNotADirectory.
func (s *Store) ListDirectory(path string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dir, err := s.resolveDirectory(splitPath(path))
	if err != nil {
		return nil, err
	}
	return sortedChildNames(dir), nil
}

// Exists reports whether a node is present at path. Malformed paths count
// as absent.
func (s *Store) Exists(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	parent, leaf, err := s.resolveEntry(path)
	if err != nil {
		return false
	}
	_, ok := parent.children[leaf]
	return ok
}

// Stat returns the detached metadata view of the node at path.
func (s *Store) Stat(path string) (NodeInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, err := s.lookup(path)
	if err != nil {
		return NodeInfo{}, err
	}
	return infoOf(n, joinPath(splitPath(path))), nil
}

// GetInfo returns the human-readable multi-line summary of a node. It is a
// display convenience, not a machine-parsable format.
func (s *Store) GetInfo(path string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, err := s.lookup(path)
	if err != nil {
		return "", err
	}
	meta := n.meta()
	if n.isDir() {
		return fmt.Sprintf("Directory Name: %s\nSize: %d\nPermissions: %s\nOwner: %s",
			n.name(), meta.Size, meta.Permissions, meta.Owner), nil
	}
	return fmt.Sprintf("File Name: %s\nSize: %d\nPermissions: %s\nOwner: %s\nMIME Type: %s\nTags: %v",
		n.name(), meta.Size, meta.Permissions, meta.Owner, meta.MIMEType, meta.Tags), nil
}

// Stats counts every node reachable from the root, excluding the root
// itself.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var st Stats
	s.walk(s.root, "", func(_ string, n node) {
		st.Nodes++
		if n.isDir() {
			st.Directories++
		} else {
			st.Files++
			st.Bytes += n.meta().Size
		}
	})
	return st
}

// Tree renders the subtree at path as an indented listing, directories
// suffixed with the separator.
func (s *Store) Tree(path string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dir, err := s.resolveDirectory(splitPath(path))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(dir.name())
	if dir.name() != RootName {
		b.WriteString(Separator)
	}
	b.WriteString("\n")
	renderTree(&b, dir, 1)
	return b.String(), nil
}

func renderTree(b *strings.Builder, dir *directory, depth int) {
	for _, name := range sortedChildNames(dir) {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(name)
		child := dir.children[name]
		if sub, ok := child.(*directory); ok {
			b.WriteString(Separator)
			b.WriteString("\n")
			renderTree(b, sub, depth+1)
		} else {
			b.WriteString("\n")
		}
	}
}

// Walk visits every descendant of the directory at path depth-first in
// sorted name order, handing the visitor the node's absolute path and a
// detached metadata view. The lock is held for the whole traversal, so
// visitors must not call back into the store.
func (s *Store) Walk(path string, fn func(path string, info NodeInfo)) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dir, err := s.resolveDirectory(splitPath(path))
	if err != nil {
		return err
	}
	base := joinPath(splitPath(path))
	s.walk(dir, "", func(rel string, n node) {
		abs := base + Separator + rel
		if base == Separator {
			abs = Separator + rel
		}
		fn(abs, infoOf(n, abs))
	})
	return nil
}

// walk visits every descendant of dir depth-first in sorted name order. The
// visited path is root-relative without a leading separator. Callers must
// hold the lock.
func (s *Store) walk(dir *directory, prefix string, fn func(relPath string, n node)) {
	for _, name := range sortedChildNames(dir) {
		child := dir.children[name]
		rel := name
		if prefix != "" {
			rel = prefix + Separator + name
		}
		fn(rel, child)
		if sub, ok := child.(*directory); ok {
			s.walk(sub, rel, fn)
		}
	}
}

func infoOf(n node, path string) NodeInfo {
	meta := n.meta()
	return NodeInfo{
		Name:        n.name(),
		Path:        path,
		IsDir:       n.isDir(),
		Size:        meta.Size,
		Permissions: meta.Permissions,
		Mode:        meta.Permissions.String(),
		Owner:       meta.Owner,
		Group:       meta.Group,
		MIMEType:    meta.MIMEType,
		Tags:        append([]string(nil), meta.Tags...),
		ReadOnly:    meta.ReadOnly,
		Hidden:      meta.Hidden,
		CreatedAt:   meta.CreatedAt,
		ModifiedAt:  meta.ModifiedAt,
		AccessedAt:  meta.AccessedAt,
		ID:          meta.ID,
	}
}
