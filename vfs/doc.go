// Package vfs provides the path-addressed virtual filesystem source units
// are registered into.
//
// The Filesystem interface is the loader's only view of storage. Memory is
// the in-process implementation: a trie keyed by canonical absolute paths,
// holding file content alongside a per-file Metadata record. Content and
// metadata are stored independently so overwriting one never clobbers the
// other.
//
// The store is process-memory only; nothing persists across interpreter
// instances.
package vfs
