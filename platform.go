package hibiscus

import (
	"unicode/utf8"

	"github.com/hibiscus-lang/hibiscus/errors"
)

// BytesToNative converts a guest byte string to the platform's native
// string representation. Names and values handed to the OS must survive
// the round trip through a Go string, so the bytes are required to be
// valid UTF-8.
func BytesToNative(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", errors.InvalidUTF8(errors.PhaseConvert, b)
	}
	return string(b), nil
}

// NativeToBytes converts a platform string back to a guest byte string.
// It is the inverse of BytesToNative and cannot fail on this platform,
// but stays the single seam for the conversion.
func NativeToBytes(s string) []byte {
	return []byte(s)
}
