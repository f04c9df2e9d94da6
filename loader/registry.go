package loader

import (
	"sync"

	"github.com/hibiscus-lang/hibiscus"
	"github.com/hibiscus-lang/hibiscus/errors"
)

// Registry maps capability names to native initializers. Embedding code
// registers a whole family of native-backed units by name instead of
// passing function values around individually.
type Registry struct {
	inits map[string]hibiscus.InitFunc
	mu    sync.RWMutex
}

// NewRegistry creates an empty capability registry.
func NewRegistry() *Registry {
	return &Registry{
		inits: make(map[string]hibiscus.InitFunc),
	}
}

// Register binds a capability name to its initializer. Re-binding an
// already registered name is rejected so two capabilities cannot silently
// shadow each other.
func (r *Registry) Register(name string, init hibiscus.InitFunc) error {
	if name == "" {
		return errors.Registration("capability name cannot be empty")
	}
	if init == nil {
		return errors.Registration("nil initializer for capability %q", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.inits[name]; ok {
		return errors.Registration("capability %q already registered", name)
	}
	r.inits[name] = init
	return nil
}

// Lookup returns the initializer bound to name.
func (r *Registry) Lookup(name string) (hibiscus.InitFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	init, ok := r.inits[name]
	return init, ok
}

// DefineSource resolves a capability name to its initializer and registers
// a native-backed source unit at p via DefineNativeSource.
func (r *Registry) DefineSource(ip Interp, p, name string) error {
	init, ok := r.Lookup(name)
	if !ok {
		return errors.NotFound(errors.PhaseLoad, "capability", name)
	}
	return DefineNativeSource(ip, p, init)
}
