package vfs

import (
	"fmt"

	"github.com/gabriel-vasile/mimetype"
)

// ReadFile returns a copy of the file's content and marks the stored node
// accessed. The access timestamp persists: unlike a snapshot-based reader,
// the store mutates the node it holds.
func (s *Store) ReadFile(path string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	parent, leaf, err := s.resolveEntry(path)
	if err != nil {
		return nil, err
	}
	switch n := parent.children[leaf].(type) {
	case *file:
		n.metadata.touchAccessed(s.now())
		return append([]byte(nil), n.content...), nil
	case *directory:
		return nil, fmt.Errorf("read %s: %w", path, ErrIsADirectory)
	default:
		return nil, fmt.Errorf("read %s: %w", path, ErrNotFound)
	}
}

// WriteFile replaces or appends the file's content unconditionally and
// touches modified_at. Size always tracks content length. This variant
// bypasses the permission check; see UpdateFile for the checked contract.
func (s *Store) WriteFile(path string, content []byte, appendTo bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	parent, leaf, err := s.resolveEntry(path)
	if err != nil {
		return err
	}
	switch n := parent.children[leaf].(type) {
	case *file:
		s.writeContent(n, content, appendTo)
		s.publish(EventWrite, path)
		return nil
	case *directory:
		return fmt.Errorf("write %s: %w", path, ErrIsADirectory)
	default:
		return fmt.Errorf("write %s: %w", path, ErrNotFound)
	}
}

// UpdateFile is WriteFile behind the node's write permission. The two
// operations are distinct contracts: callers rely on WriteFile bypassing the
// check, so they are never merged. A directory target reports ErrNotFound,
// matching the unchecked variant's historical sibling behavior.
func (s *Store) UpdateFile(path string, content []byte, appendTo bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	parent, leaf, err := s.resolveEntry(path)
	if err != nil {
		return err
	}
	n, ok := parent.children[leaf].(*file)
	if !ok {
		return fmt.Errorf("update %s: %w", path, ErrNotFound)
	}
	if !n.metadata.Permissions.Write {
		return fmt.Errorf("update %s: %w", path, ErrPermissionDenied)
	}

	s.writeContent(n, content, appendTo)
	s.publish(EventWrite, path)
	return nil
}

func (s *Store) writeContent(n *file, content []byte, appendTo bool) {
	if appendTo {
		n.content = append(n.content, content...)
	} else {
		n.content = append(n.content[:0:0], content...)
		if s.cfg.DetectMIME && len(content) > 0 {
			n.metadata.MIMEType = detectMIME(content)
		}
	}
	n.metadata.Size = int64(len(n.content))
	n.metadata.touchModified(s.now())
}

// ChangePermissions overwrites the permission triple on any node and
// touches modified_at.
func (s *Store) ChangePermissions(path string, perms Permissions) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.lookup(path)
	if err != nil {
		return err
	}
	n.meta().Permissions = perms
	n.meta().touchModified(s.now())
	s.publish(EventChmod, path)
	return nil
}

// AddTag attaches a label to the node at path. Adding a tag twice is a
// no-op.
func (s *Store) AddTag(path, tag string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.lookup(path)
	if err != nil {
		return err
	}
	if n.meta().hasTag(tag) {
		return nil
	}
	n.meta().Tags = append(n.meta().Tags, tag)
	n.meta().touchModified(s.now())
	return nil
}

// RemoveTag detaches a label from the node at path. Removing an absent tag
// is a no-op.
func (s *Store) RemoveTag(path, tag string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.lookup(path)
	if err != nil {
		return err
	}
	meta := n.meta()
	for i, t := range meta.Tags {
		if t == tag {
			meta.Tags = append(meta.Tags[:i], meta.Tags[i+1:]...)
			meta.touchModified(s.now())
			return nil
		}
	}
	return nil
}

// SetMIMEType overrides the node's MIME classifier.
func (s *Store) SetMIMEType(path, mime string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.lookup(path)
	if err != nil {
		return err
	}
	n.meta().MIMEType = mime
	n.meta().touchModified(s.now())
	return nil
}

// lookup resolves path to its stored node. Callers must hold the lock.
func (s *Store) lookup(path string) (node, error) {
	parent, leaf, err := s.resolveEntry(path)
	if err != nil {
		return nil, err
	}
	n, ok := parent.children[leaf]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	return n, nil
}

func detectMIME(content []byte) string {
	return mimetype.Detect(content).String()
}
