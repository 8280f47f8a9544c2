package vfs

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// ExportArchive writes the subtree rooted at path (a directory; "/" exports
// everything) to w as a gzip-compressed tar stream. Entry names are relative
// to the exported directory.
func (s *Store) ExportArchive(path string, w io.Writer) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dir, err := s.resolveDirectory(splitPath(path))
	if err != nil {
		return err
	}

	gz := gzip.NewWriter(w)
	tw := tar.NewWriter(gz)

	var werr error
	s.walk(dir, "", func(rel string, n node) {
		if werr != nil {
			return
		}
		meta := n.meta()
		hdr := &tar.Header{
			Name:    rel,
			Mode:    tarMode(meta.Permissions),
			ModTime: meta.ModifiedAt,
		}
		if n.isDir() {
			hdr.Typeflag = tar.TypeDir
			hdr.Name += Separator
		} else {
			hdr.Typeflag = tar.TypeReg
			hdr.Size = int64(len(n.(*file).content))
		}
		if werr = tw.WriteHeader(hdr); werr != nil {
			return
		}
		if f, ok := n.(*file); ok {
			_, werr = tw.Write(f.content)
		}
	})
	if werr != nil {
		return fmt.Errorf("export %s: %w", path, werr)
	}
	if err := tw.Close(); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return gz.Close()
}

// ImportArchive reads a gzip-compressed tar stream into the directory at
// path. Missing intermediate directories are created with default metadata;
// an entry colliding with an existing file fails the import.
func (s *Store) ImportArchive(path string, r io.Reader) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir, err := s.resolveDirectory(splitPath(path))
	if err != nil {
		return err
	}

	gz, err := gzip.NewReader(r)
	if err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("import %s: %w", path, err)
		}

		parts := splitPath(hdr.Name)
		if len(parts) == 0 {
			continue
		}

		if hdr.Typeflag == tar.TypeDir {
			if _, err := s.ensureDirectories(dir, parts); err != nil {
				return fmt.Errorf("import %s: %w", hdr.Name, err)
			}
			continue
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}

		parent, err := s.ensureDirectories(dir, parts[:len(parts)-1])
		if err != nil {
			return fmt.Errorf("import %s: %w", hdr.Name, err)
		}
		leaf := parts[len(parts)-1]
		if _, ok := parent.children[leaf]; ok {
			return fmt.Errorf("import %s: %w", hdr.Name, ErrAlreadyExists)
		}

		content, err := io.ReadAll(tr)
		if err != nil {
			return fmt.Errorf("import %s: %w", hdr.Name, err)
		}
		meta := newMetadata(s.now(), s.cfg.Owner, s.cfg.Group, s.sniffMIME(content))
		meta.Size = int64(len(content))
		parent.children[leaf] = &file{nodeName: leaf, content: content, metadata: meta}
	}
	return nil
}

// ensureDirectories walks parts below base, creating missing directories.
// Callers must hold the write lock.
func (s *Store) ensureDirectories(base *directory, parts []string) (*directory, error) {
	current := base
	for _, part := range parts {
		child, ok := current.children[part]
		if !ok {
			sub := newDirectory(part, newMetadata(s.now(), s.cfg.Owner, s.cfg.Group, DirectoryMIME))
			current.children[part] = sub
			current = sub
			continue
		}
		sub, ok := child.(*directory)
		if !ok {
			return nil, fmt.Errorf("%s: %w", part, ErrNotADirectory)
		}
		current = sub
	}
	return current, nil
}

func tarMode(p Permissions) int64 {
	var m int64
	if p.Read {
		m |= 0o444
	}
	if p.Write {
		m |= 0o200
	}
	if p.Execute {
		m |= 0o111
	}
	return m
}
