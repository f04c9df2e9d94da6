package env

import (
	"bytes"

	"github.com/hibiscus-lang/hibiscus"
)

// Backend is the environment store behind the guest's ENV object.
//
// All operations take a Converter so results come back as guest values.
// Validation failures surface as guest-visible ArgumentError-kind errors
// (errors.KindArgument); everything else propagates as-is.
type Backend interface {
	// Get returns the value bound to name, or the guest nil if unbound.
	// Names that are empty or contain '=' are unsettable at the OS level
	// and yield the guest nil rather than an error.
	Get(cv hibiscus.Converter, name []byte) (hibiscus.Value, error)

	// Put binds name to value and returns the value. A nil value is a
	// deletion request: the variable is removed and its prior value (or
	// the guest nil) is returned. An empty non-nil value binds the name
	// to the empty string.
	Put(cv hibiscus.Converter, name []byte, value []byte) (hibiscus.Value, error)

	// AsMap snapshots every bound variable. Enumeration trusts the
	// store; no validation is applied.
	AsMap() (map[string][]byte, error)
}

// unsettableName reports whether the OS set/unset primitives cannot accept
// name at all: empty, or containing '='.
func unsettableName(name []byte) bool {
	return len(name) == 0 || bytes.IndexByte(name, '=') >= 0
}

func containsNul(b []byte) bool {
	return bytes.IndexByte(b, 0) >= 0
}

const (
	nulNameMsg  = "bad environment variable name: contains null byte"
	nulValueMsg = "bad environment variable value: contains null byte"
)
