// Package env bridges the host process environment to guest code.
//
// The guest's ENV object talks to a Backend. System is the real OS store;
// Memory keeps bindings instance-scoped for sandboxed embeddings.
//
// The OS set/unset primitives abort the process on empty names, '=' in a
// name, or NUL bytes anywhere. This package's reason to exist is
// pre-validating those inputs so a host-fatal condition becomes a
// recoverable guest ArgumentError — with one exception: element reference
// on an unsettable name answers the guest nil, matching the wider language
// convention of silent absence.
//
// System mutates process-wide state. Hosts running more than one
// interpreter instance must serialize environment access themselves.
package env
