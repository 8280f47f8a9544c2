// Package filesystem provides file and directory operations over the
// in-memory tree store.
//
// The provider is organized into focused operation modules:
//   - BasicOps: read, write, append, update, create, delete, exists
//   - DirectoryOps: mkdir, list, tree
//   - OperationOps: rename, copy, chmod
//   - MetadataOps: stat, info, tags, MIME type
//   - SearchOps: tag, MIME and glob search
//   - ArchiveOps: tar.gz subtree export/import
//
// All modules share the FilesystemOps base, which holds the store handle.
// Failures inside the store surface as unsuccessful Results, not transport
// errors.
package filesystem
