package vfs

import "errors"

// Operation failures are sentinel errors wrapped with path context.
// Callers dispatch with errors.Is.
var (
	// ErrInvalidPath means the path parsed to zero usable components.
	ErrInvalidPath = errors.New("invalid path")

	// ErrNotFound means a path component or final leaf does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotADirectory means traversal hit a file where a directory was required.
	ErrNotADirectory = errors.New("not a directory")

	// ErrIsADirectory means an operation requiring a file found a directory.
	ErrIsADirectory = errors.New("is a directory")

	// ErrAlreadyExists means the target name collides with an existing sibling.
	ErrAlreadyExists = errors.New("already exists")

	// ErrDirectoryNotEmpty means delete was attempted on a non-empty directory.
	ErrDirectoryNotEmpty = errors.New("directory not empty")

	// ErrPermissionDenied means a permission-checked write found no write bit.
	ErrPermissionDenied = errors.New("permission denied")
)
