// Package hibiscus provides the host-side embedding layer for the Hibiscus
// guest scripting language.
//
// This library lets a host program register executable source units —
// native-code-backed modules or plain-text scripts — into the interpreter's
// virtual filesystem namespace, and bridges the host process environment to
// guest code with the guest language's naming rules enforced.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	hibiscus/        Root package with guest value and platform-string seams
//	├── interp/      Interpreter state container shared by host extensions
//	├── loader/      Source unit registration into the virtual filesystem
//	├── env/         OS process environment bridge
//	├── vfs/         Path-addressed virtual filesystem
//	└── errors/      Structured error types for debugging
//
// # Quick Start
//
// Register source units during interpreter construction:
//
//	state := interp.New()
//
//	err := loader.DefineNativeSource(state, "ostruct.hib", ostruct.Init)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = loader.DefineScriptSource(state, "delegate.hib", delegateSource)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Registration happens before any guest code runs. The guest require
// machinery later resolves a logical name to a load path, reads it through
// the same virtual filesystem, and invokes the attached native initializer
// instead of parsing the stub text.
//
// # Thread Safety
//
// An interpreter instance and its registration surface are single-threaded:
// loader and env operations perform no internal locking. The environment
// bridge mutates process-wide OS state that is not instance-scoped — hosts
// running multiple interpreter instances must serialize environment access
// or confine one instance per process.
package hibiscus
