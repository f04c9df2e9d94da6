package vfs

import (
	"path"
	"strings"
	"sync"

	"github.com/dghubble/trie"

	"github.com/hibiscus-lang/hibiscus/errors"
)

// Memory is an in-memory Filesystem backed by a path trie.
type Memory struct {
	entries *trie.PathTrie
	mu      sync.RWMutex
}

type entry struct {
	data []byte
	meta Metadata
	dir  bool
}

// NewMemory creates an empty in-memory filesystem. The root directory "/"
// always exists.
func NewMemory() *Memory {
	return &Memory{
		entries: trie.NewPathTrie(),
	}
}

// canon cleans p into the canonical absolute form all entries are keyed by.
func canon(p string) (string, error) {
	if !strings.HasPrefix(p, "/") {
		return "", errors.InvalidInput(errors.PhaseStorage, "path must be absolute: "+p)
	}
	return path.Clean(p), nil
}

// ancestors returns every prefix of p from the first segment to p itself,
// e.g. "/a/b/c" -> "/a", "/a/b", "/a/b/c".
func ancestors(p string) []string {
	if p == "/" {
		return nil
	}
	segs := strings.Split(p[1:], "/")
	out := make([]string, 0, len(segs))
	prefix := ""
	for _, seg := range segs {
		prefix += "/" + seg
		out = append(out, prefix)
	}
	return out
}

func pathSegments(p string) []string {
	if p == "/" {
		return nil
	}
	return strings.Split(p[1:], "/")
}

// CreateDirAll implements Filesystem.
func (m *Memory) CreateDirAll(p string) error {
	p, err := canon(p)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, prefix := range ancestors(p) {
		switch e := m.entries.Get(prefix).(type) {
		case nil:
			m.entries.Put(prefix, &entry{dir: true})
		case *entry:
			if !e.dir {
				return errors.Conflict(pathSegments(prefix), "path exists and is a file")
			}
		}
	}
	return nil
}

// IsFile implements Filesystem.
func (m *Memory) IsFile(p string) bool {
	p, err := canon(p)
	if err != nil {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries.Get(p).(*entry)
	return ok && !e.dir
}

// WriteFile implements Filesystem.
func (m *Memory) WriteFile(p string, data []byte) error {
	p, err := canon(p)
	if err != nil {
		return err
	}
	if p == "/" {
		return errors.Conflict(nil, "path is a directory")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if parent := path.Dir(p); parent != "/" {
		pe, ok := m.entries.Get(parent).(*entry)
		if !ok {
			return errors.NotFound(errors.PhaseStorage, "directory", parent)
		}
		if !pe.dir {
			return errors.Conflict(pathSegments(parent), "ancestor is a file")
		}
	}

	stored := make([]byte, len(data))
	copy(stored, data)

	switch e := m.entries.Get(p).(type) {
	case nil:
		m.entries.Put(p, &entry{data: stored})
	case *entry:
		if e.dir {
			return errors.Conflict(pathSegments(p), "path is a directory")
		}
		e.data = stored
	}
	return nil
}

// ReadFile implements Filesystem.
func (m *Memory) ReadFile(p string) ([]byte, error) {
	p, err := canon(p)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries.Get(p).(*entry)
	if !ok {
		return nil, errors.NotFound(errors.PhaseStorage, "file", p)
	}
	if e.dir {
		return nil, errors.Conflict(pathSegments(p), "path is a directory")
	}

	out := make([]byte, len(e.data))
	copy(out, e.data)
	return out, nil
}

// Metadata implements Filesystem.
func (m *Memory) Metadata(p string) Metadata {
	p, err := canon(p)
	if err != nil {
		return Metadata{}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if e, ok := m.entries.Get(p).(*entry); ok && !e.dir {
		return e.meta
	}
	return Metadata{}
}

// SetMetadata implements Filesystem.
func (m *Memory) SetMetadata(p string, md Metadata) error {
	p, err := canon(p)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries.Get(p).(*entry)
	if !ok || e.dir {
		return errors.NotFound(errors.PhaseStorage, "file", p)
	}
	e.meta = md
	return nil
}
