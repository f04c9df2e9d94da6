package vfs

import (
	"github.com/hibiscus-lang/hibiscus"
)

// Metadata is the per-file record attached to a source unit. The zero
// value means no native initializer is attached.
type Metadata struct {
	// Init is invoked by the guest require machinery in place of parsing
	// the file's text.
	Init hibiscus.InitFunc
}

// Filesystem is the path-addressed store source units are registered
// into. All paths are absolute, slash-separated, and canonical.
type Filesystem interface {
	// CreateDirAll creates a directory and all missing ancestors. It is
	// idempotent; it fails if the path or an ancestor exists as a file.
	CreateDirAll(path string) error

	// IsFile reports whether a file exists at path.
	IsFile(path string) bool

	// WriteFile replaces the content at path, creating the file if
	// absent. Metadata already attached to the path is preserved.
	WriteFile(path string, data []byte) error

	// ReadFile returns the content stored at path.
	ReadFile(path string) ([]byte, error)

	// Metadata returns the metadata record at path, or the zero value if
	// none has been stored.
	Metadata(path string) Metadata

	// SetMetadata replaces the metadata record at an existing file.
	SetMetadata(path string, md Metadata) error
}
