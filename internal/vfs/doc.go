// Package vfs implements an in-memory hierarchical namespace: a tree of
// named file and directory nodes rooted at "/".
//
// The store supports creation, deletion, renaming, copying, content IO,
// permission changes, and tag/MIME/glob search. All operations funnel
// through two primitives: resolving a directory from path components, and
// resolving a parent directory plus leaf name for an entry.
//
// The tree is strictly owning: each node belongs to exactly one parent
// directory, and read operations return copies or derived values, never
// aliases into the tree. A single readers-writer lock serializes access;
// there is no persistence and no network surface in this package.
package vfs
