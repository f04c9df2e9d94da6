package interp

import (
	"github.com/hibiscus-lang/hibiscus"
	"github.com/hibiscus-lang/hibiscus/vfs"
)

// State is the interpreter's internal state container. It owns the virtual
// filesystem handle shared by the loader and implements the value
// conversion seam host extensions use.
//
// A State is single-threaded; nothing here locks.
type State struct {
	fs vfs.Filesystem
}

// Option configures a State during construction.
type Option func(*State)

// WithFilesystem replaces the default in-memory virtual filesystem.
func WithFilesystem(fs vfs.Filesystem) Option {
	return func(s *State) {
		s.fs = fs
	}
}

// New creates a fresh interpreter state backed by an in-memory virtual
// filesystem unless configured otherwise.
func New(opts ...Option) *State {
	s := &State{}
	for _, opt := range opts {
		opt(s)
	}
	if s.fs == nil {
		s.fs = vfs.NewMemory()
	}
	return s
}

// VFS returns the virtual filesystem handle. The handle is borrowed:
// callers must not retain it past the State's lifetime.
func (s *State) VFS() vfs.Filesystem {
	return s.fs
}

// ConvertBytes implements hibiscus.Converter.
func (s *State) ConvertBytes(b []byte) hibiscus.Value {
	owned := make([]byte, len(b))
	copy(owned, b)
	return bytesValue{b: owned}
}

// ConvertNil implements hibiscus.Converter.
func (s *State) ConvertNil() hibiscus.Value {
	return nilValue{}
}

var _ hibiscus.Interp = (*State)(nil)

type bytesValue struct {
	b []byte
}

func (v bytesValue) IsNil() bool {
	return false
}

func (v bytesValue) Bytes() []byte {
	return v.b
}

type nilValue struct{}

func (nilValue) IsNil() bool {
	return true
}

func (nilValue) Bytes() []byte {
	return nil
}
