package vfs

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

const (
	// RootName is the name of the root directory node.
	RootName = "/"

	// DefaultFileMIME is assigned to files when detection is disabled or
	// yields nothing useful.
	DefaultFileMIME = "text/plain"

	// DirectoryMIME is assigned to directory nodes.
	DirectoryMIME = "directory"
)

// Config controls store construction.
type Config struct {
	// Owner and Group are stamped on every node the store creates.
	Owner string
	Group string

	// DetectMIME enables content sniffing for file MIME types. When false,
	// files default to DefaultFileMIME.
	DetectMIME bool
}

// DefaultConfig returns the conventional root identity with MIME detection
// enabled.
func DefaultConfig() Config {
	return Config{Owner: "root", Group: "root", DetectMIME: true}
}

// Store is the tree store. One root directory owns all nodes; a single
// readers-writer lock serializes access, so a Store is safe for concurrent
// use by multiple goroutines.
type Store struct {
	mu     sync.RWMutex
	root   *directory
	cfg    Config
	events *eventBus
	now    func() time.Time
}

// New creates an empty store with default configuration.
func New() *Store {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an empty store. The root directory is named "/" and
// carries read+write permission, no execute.
func NewWithConfig(cfg Config) *Store {
	if cfg.Owner == "" {
		cfg.Owner = "root"
	}
	if cfg.Group == "" {
		cfg.Group = "root"
	}
	s := &Store{
		cfg:    cfg,
		events: newEventBus(),
		now:    time.Now,
	}
	s.root = newDirectory(RootName, newMetadata(s.now(), cfg.Owner, cfg.Group, DirectoryMIME))
	return s
}

// resolveDirectory walks components from the root, following only directory
// nodes. It is the primitive under every operation: callers pop the leaf
// component off first when they want a parent.
func (s *Store) resolveDirectory(parts []string) (*directory, error) {
	current := s.root
	for _, part := range parts {
		child, ok := current.children[part]
		if !ok {
			return nil, fmt.Errorf("%s: %w", part, ErrNotFound)
		}
		dir, ok := child.(*directory)
		if !ok {
			return nil, fmt.Errorf("%s: %w", part, ErrNotADirectory)
		}
		current = dir
	}
	return current, nil
}

// resolveEntry splits the path, pops the final component as the leaf name
// and resolves the remaining prefix to the parent directory. It does not
// verify the leaf exists.
func (s *Store) resolveEntry(path string) (*directory, string, error) {
	parts := splitPath(path)
	if len(parts) == 0 {
		return nil, "", fmt.Errorf("%q: %w", path, ErrInvalidPath)
	}
	leaf := parts[len(parts)-1]
	parent, err := s.resolveDirectory(parts[:len(parts)-1])
	if err != nil {
		return nil, "", err
	}
	return parent, leaf, nil
}

// Create inserts a new file or directory at path with default metadata. The
// parent must already exist; the leaf name must be free.
func (s *Store) Create(path string, content []byte, isDir bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	parent, leaf, err := s.resolveEntry(path)
	if err != nil {
		return err
	}
	if _, ok := parent.children[leaf]; ok {
		return fmt.Errorf("create %s: %w", path, ErrAlreadyExists)
	}

	now := s.now()
	if isDir {
		parent.children[leaf] = newDirectory(leaf, newMetadata(now, s.cfg.Owner, s.cfg.Group, DirectoryMIME))
	} else {
		meta := newMetadata(now, s.cfg.Owner, s.cfg.Group, s.sniffMIME(content))
		meta.Size = int64(len(content))
		parent.children[leaf] = &file{
			nodeName: leaf,
			content:  append([]byte(nil), content...),
			metadata: meta,
		}
	}

	s.publish(EventCreate, path)
	return nil
}

// Delete removes the leaf at path from its parent. A directory may be
// deleted only when it has no children; a failed delete leaves the tree
// untouched.
func (s *Store) Delete(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	parent, leaf, err := s.resolveEntry(path)
	if err != nil {
		return err
	}
	child, ok := parent.children[leaf]
	if !ok {
		return fmt.Errorf("delete %s: %w", path, ErrNotFound)
	}
	if dir, ok := child.(*directory); ok && len(dir.children) > 0 {
		return fmt.Errorf("delete %s: %w", path, ErrDirectoryNotEmpty)
	}

	delete(parent.children, leaf)
	s.publish(EventDelete, path)
	return nil
}

// Rename moves the node at oldPath to newName within the same parent. The
// node's own name field follows the new key.
func (s *Store) Rename(oldPath, newName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	parent, oldName, err := s.resolveEntry(oldPath)
	if err != nil {
		return err
	}
	child, ok := parent.children[oldName]
	if !ok {
		return fmt.Errorf("rename %s: %w", oldPath, ErrNotFound)
	}
	if _, ok := parent.children[newName]; ok {
		return fmt.Errorf("rename %s -> %s: %w", oldPath, newName, ErrAlreadyExists)
	}

	delete(parent.children, oldName)
	child.rename(newName)
	child.meta().touchModified(s.now())
	parent.children[newName] = child

	s.publish(EventRename, oldPath)
	return nil
}

// Copy deep-clones the subtree at sourcePath and inserts it into the
// directory resolved from the FULL target path, keyed by the source's leaf
// name. The target path's final component is a destination directory, not a
// new name; use Rename afterwards for copy-and-rename semantics. A name
// collision at the destination fails with ErrAlreadyExists.
func (s *Store) Copy(sourcePath, targetPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	srcParent, srcLeaf, err := s.resolveEntry(sourcePath)
	if err != nil {
		return err
	}
	source, ok := srcParent.children[srcLeaf]
	if !ok {
		return fmt.Errorf("copy %s: %w", sourcePath, ErrNotFound)
	}

	target, err := s.resolveDirectory(splitPath(targetPath))
	if err != nil {
		return err
	}
	if _, ok := target.children[srcLeaf]; ok {
		return fmt.Errorf("copy %s -> %s: %w", sourcePath, targetPath, ErrAlreadyExists)
	}

	target.children[srcLeaf] = source.clone()
	s.publish(EventCopy, targetPath)
	return nil
}

// sniffMIME picks a MIME type for new file content.
func (s *Store) sniffMIME(content []byte) string {
	if !s.cfg.DetectMIME || len(content) == 0 {
		return DefaultFileMIME
	}
	return detectMIME(content)
}

// sortedChildNames gives deterministic traversal order for search, walk and
// archive export.
func sortedChildNames(d *directory) []string {
	names := make([]string, 0, len(d.children))
	for name := range d.children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
