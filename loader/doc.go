// Package loader registers source units into the interpreter's virtual
// filesystem namespace.
//
// A source unit is either native-code-backed (a stub file plus a metadata
// record pointing at an InitFunc the require machinery invokes instead of
// parsing) or a plain-text guest script. Relative load paths are anchored
// under hibiscus.LoadRoot; absolute paths are used verbatim. Ancestor
// directories are created automatically.
//
// Registration happens during interpreter bootstrap, before any guest code
// runs. There is no deregistration: a path stays registered for the
// lifetime of the interpreter instance. Filesystem failures are surfaced
// verbatim so the embedding layer can abort construction instead of
// running with a partially populated namespace.
package loader
