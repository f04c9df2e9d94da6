package env

import (
	"github.com/hibiscus-lang/hibiscus"
	"github.com/hibiscus-lang/hibiscus/errors"
)

// Memory is an instance-scoped environment store. It applies the same
// naming rules as System but never touches process state, which makes it
// suitable for sandboxed embeddings and deterministic tests. Unlike
// System it stores raw bytes, so names and values need not be UTF-8.
type Memory struct {
	vars map[string][]byte
}

// NewMemory creates an empty instance-scoped environment store.
func NewMemory() *Memory {
	return &Memory{
		vars: make(map[string][]byte),
	}
}

// Get implements Backend.
func (m *Memory) Get(cv hibiscus.Converter, name []byte) (hibiscus.Value, error) {
	if unsettableName(name) {
		return cv.ConvertNil(), nil
	}
	if containsNul(name) {
		return nil, errors.Argument(nulNameMsg)
	}

	if value, ok := m.vars[string(name)]; ok {
		return cv.ConvertBytes(value), nil
	}
	return cv.ConvertNil(), nil
}

// Put implements Backend.
func (m *Memory) Put(cv hibiscus.Converter, name []byte, value []byte) (hibiscus.Value, error) {
	if unsettableName(name) {
		return nil, errors.Argument("Invalid argument - setenv(%q)", string(name))
	}
	if containsNul(name) {
		return nil, errors.Argument(nulNameMsg)
	}

	if value != nil {
		if containsNul(value) {
			return nil, errors.Argument(nulValueMsg)
		}
		stored := make([]byte, len(value))
		copy(stored, value)
		m.vars[string(name)] = stored
		return cv.ConvertBytes(value), nil
	}

	prior, bound := m.vars[string(name)]
	delete(m.vars, string(name))
	if bound {
		return cv.ConvertBytes(prior), nil
	}
	return cv.ConvertNil(), nil
}

// AsMap implements Backend.
func (m *Memory) AsMap() (map[string][]byte, error) {
	out := make(map[string][]byte, len(m.vars))
	for name, value := range m.vars {
		copied := make([]byte, len(value))
		copy(copied, value)
		out[name] = copied
	}
	return out, nil
}

var _ Backend = (*Memory)(nil)
