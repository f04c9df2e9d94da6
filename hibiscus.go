package hibiscus

// LoadRoot is the canonical directory all relative load paths are anchored
// under in the virtual filesystem.
const LoadRoot = "/src/lib"

// Value is a handle to a guest-language value. The full guest object model
// lives in the evaluator; this layer only needs nil and byte-string values.
type Value interface {
	// IsNil reports whether the value is the guest nil.
	IsNil() bool

	// Bytes returns the raw byte content for string-like values.
	// It returns nil for the guest nil.
	Bytes() []byte
}

// Converter builds guest values from host data.
type Converter interface {
	// ConvertBytes wraps a byte string as a guest value. The converter
	// takes its own copy; the caller keeps ownership of b.
	ConvertBytes(b []byte) Value

	// ConvertNil returns the guest nil.
	ConvertNil() Value
}

// Interp is the interpreter handle passed to native initializers and other
// host-side extension code.
type Interp interface {
	Converter
}

// InitFunc defines runtime-native guest items when the guest require
// machinery loads a native-backed source unit.
type InitFunc func(interp Interp) error
