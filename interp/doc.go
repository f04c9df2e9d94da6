// Package interp holds the interpreter state container shared by host-side
// extension code.
//
// State is the concrete handle behind the hibiscus.Interp interface: it
// owns the virtual filesystem the loader registers source units into and
// builds the minimal guest values this layer needs (byte strings and nil).
// The evaluator and the rest of the guest object model live elsewhere.
package interp
