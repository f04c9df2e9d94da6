package env

import (
	"bytes"
	"errors"
	"os"
	"testing"

	herrors "github.com/hibiscus-lang/hibiscus/errors"
	"github.com/hibiscus-lang/hibiscus/interp"
)

// Names are namespaced to this test binary so runs against the real
// process environment stay isolated.
const testVar = "HIBISCUS_ENV_TEST"

func TestSystem_Get_UnsettableNames(t *testing.T) {
	cv := interp.New()
	sys := NewSystem()

	for _, name := range [][]byte{nil, []byte(""), []byte("="), []byte("A=B")} {
		v, err := sys.Get(cv, name)
		if err != nil {
			t.Fatalf("Get(%q) error: %v", name, err)
		}
		if !v.IsNil() {
			t.Errorf("Get(%q) should answer the guest nil", name)
		}
	}
}

func TestSystem_Get_NulName(t *testing.T) {
	cv := interp.New()
	sys := NewSystem()

	_, err := sys.Get(cv, []byte("FOO\x00"))
	if err == nil {
		t.Fatal("expected ArgumentError for NUL in name")
	}
	if !errors.Is(err, argumentErr) {
		t.Errorf("expected argument kind, got %v", err)
	}
}

func TestSystem_Get_InvalidUTF8Name(t *testing.T) {
	cv := interp.New()
	sys := NewSystem()

	_, err := sys.Get(cv, []byte{'A', 0xff, 'B'})
	if err == nil {
		t.Fatal("expected conversion error for non-UTF-8 name")
	}
	if !errors.Is(err, &herrors.Error{Phase: herrors.PhaseConvert, Kind: herrors.KindInvalidUTF8}) {
		t.Errorf("expected invalid_utf8 kind, got %v", err)
	}
}

func TestSystem_Put_InvalidNames(t *testing.T) {
	cv := interp.New()
	sys := NewSystem()

	_, err := sys.Put(cv, []byte("A=B"), []byte("v"))
	if err == nil {
		t.Fatal("expected ArgumentError for '=' in name")
	}
	if !errors.Is(err, argumentErr) {
		t.Errorf("expected argument kind, got %v", err)
	}

	if _, err := sys.Put(cv, []byte(""), []byte("v")); !errors.Is(err, argumentErr) {
		t.Errorf("expected argument kind for empty name, got %v", err)
	}
	if _, err := sys.Put(cv, []byte("FOO\x00"), []byte("v")); !errors.Is(err, argumentErr) {
		t.Errorf("expected argument kind for NUL in name, got %v", err)
	}
	if _, err := sys.Put(cv, []byte(testVar), []byte("v\x00")); !errors.Is(err, argumentErr) {
		t.Errorf("expected argument kind for NUL in value, got %v", err)
	}
}

func TestSystem_RoundTrip(t *testing.T) {
	cv := interp.New()
	sys := NewSystem()
	defer os.Unsetenv(testVar)

	set, err := sys.Put(cv, []byte(testVar), []byte("round-trip"))
	if err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if !bytes.Equal(set.Bytes(), []byte("round-trip")) {
		t.Errorf("Put returned %q", set.Bytes())
	}

	got, err := sys.Get(cv, []byte(testVar))
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !bytes.Equal(got.Bytes(), []byte("round-trip")) {
		t.Errorf("Get = %q, want %q", got.Bytes(), "round-trip")
	}
}

func TestSystem_Overwrite(t *testing.T) {
	cv := interp.New()
	sys := NewSystem()
	defer os.Unsetenv(testVar)

	if _, err := sys.Put(cv, []byte(testVar), []byte("first")); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if _, err := sys.Put(cv, []byte(testVar), []byte("second")); err != nil {
		t.Fatalf("second Put error: %v", err)
	}

	got, err := sys.Get(cv, []byte(testVar))
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !bytes.Equal(got.Bytes(), []byte("second")) {
		t.Errorf("Get = %q, want %q", got.Bytes(), "second")
	}
}

func TestSystem_Delete(t *testing.T) {
	cv := interp.New()
	sys := NewSystem()
	defer os.Unsetenv(testVar)

	if _, err := sys.Put(cv, []byte(testVar), []byte("doomed")); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	removed, err := sys.Put(cv, []byte(testVar), nil)
	if err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if !bytes.Equal(removed.Bytes(), []byte("doomed")) {
		t.Errorf("delete should return the prior value, got %q", removed.Bytes())
	}

	got, err := sys.Get(cv, []byte(testVar))
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !got.IsNil() {
		t.Error("Get after delete should answer the guest nil")
	}

	again, err := sys.Put(cv, []byte(testVar), nil)
	if err != nil {
		t.Fatalf("second delete error: %v", err)
	}
	if !again.IsNil() {
		t.Error("deleting an unbound name should answer the guest nil")
	}
}

func TestSystem_AsMap(t *testing.T) {
	cv := interp.New()
	sys := NewSystem()
	defer os.Unsetenv(testVar + "_A")
	defer os.Unsetenv(testVar + "_B")

	if _, err := sys.Put(cv, []byte(testVar+"_A"), []byte("1")); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if _, err := sys.Put(cv, []byte(testVar+"_B"), []byte("2")); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	snap, err := sys.AsMap()
	if err != nil {
		t.Fatalf("AsMap error: %v", err)
	}

	// The snapshot contains whatever else the process has; filter to the
	// keys under test.
	if !bytes.Equal(snap[testVar+"_A"], []byte("1")) {
		t.Errorf("snapshot[%s_A] = %q, want %q", testVar, snap[testVar+"_A"], "1")
	}
	if !bytes.Equal(snap[testVar+"_B"], []byte("2")) {
		t.Errorf("snapshot[%s_B] = %q, want %q", testVar, snap[testVar+"_B"], "2")
	}
}
