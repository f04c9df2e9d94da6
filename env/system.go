package env

import (
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/hibiscus-lang/hibiscus"
	"github.com/hibiscus-lang/hibiscus/errors"
)

// System is the OS-backed environment store. It mutates process-wide
// state: bindings are visible to every thread and interpreter instance in
// the process, and access is not safe to parallelize across instances.
type System struct{}

// NewSystem creates an OS-backed environment store.
func NewSystem() System {
	return System{}
}

// Get implements Backend.
//
// The OS set/unset primitives reject empty names, '=' and NUL outright, so
// those are caught here first. Element reference on an unsettable name is
// the one permissive case: the wider language convention is silent absence
// rather than an error.
func (System) Get(cv hibiscus.Converter, name []byte) (hibiscus.Value, error) {
	if unsettableName(name) {
		return cv.ConvertNil(), nil
	}
	if containsNul(name) {
		return nil, errors.Argument(nulNameMsg)
	}

	key, err := hibiscus.BytesToNative(name)
	if err != nil {
		return nil, err
	}
	if value, ok := os.LookupEnv(key); ok {
		return cv.ConvertBytes(hibiscus.NativeToBytes(value)), nil
	}
	return cv.ConvertNil(), nil
}

// Put implements Backend.
func (System) Put(cv hibiscus.Converter, name []byte, value []byte) (hibiscus.Value, error) {
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
		key, err := hibiscus.BytesToNative(name)
		if err != nil {
			return nil, err
		}
		val, err := hibiscus.BytesToNative(value)
		if err != nil {
			return nil, err
		}
		if err := os.Setenv(key, val); err != nil {
			return nil, errors.Platform("setenv", err)
		}
		Logger().Debug("set environment variable", zap.String("name", key))
		return cv.ConvertBytes(value), nil
	}

	key, err := hibiscus.BytesToNative(name)
	if err != nil {
		return nil, err
	}
	prior, bound := os.LookupEnv(key)
	if err := os.Unsetenv(key); err != nil {
		return nil, errors.Platform("unsetenv", err)
	}
	Logger().Debug("removed environment variable", zap.String("name", key))
	if bound {
		return cv.ConvertBytes(hibiscus.NativeToBytes(prior)), nil
	}
	return cv.ConvertNil(), nil
}

// AsMap implements Backend. Last write wins on platform-level duplicate
// names, which should not occur.
func (System) AsMap() (map[string][]byte, error) {
	out := make(map[string][]byte)
	for _, kv := range os.Environ() {
		idx := strings.IndexByte(kv, '=')
		if idx < 0 {
			continue
		}
		out[kv[:idx]] = hibiscus.NativeToBytes(kv[idx+1:])
	}
	return out, nil
}

var _ Backend = System{}
