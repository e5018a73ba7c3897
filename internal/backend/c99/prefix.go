package c99

// Prefix optionally namespaces the symbols the generator itself emits:
// observer names, trigger names, and the step entry point. Extern
// symbols are never prefixed; they name definitions owned by the
// embedding code and must survive untouched or linkage breaks.
//
// Modeled as an explicit absent/present pair rather than a nullable
// string so the resolution rule lives in one place.
type Prefix struct {
	name string
	set  bool
}

// NoPrefix is the absent case: generated symbols keep their bare names.
func NoPrefix() Prefix { return Prefix{} }

// WithPrefix namespaces generated symbols as "<name>_<symbol>".
func WithPrefix(name string) Prefix { return Prefix{name: name, set: true} }

// Resolve returns the string prepended to every generated symbol name.
func (p Prefix) Resolve() string {
	if !p.set {
		return ""
	}
	return p.name + "_"
}

// HeaderFileName returns the base name of the artifact Generate writes
// for this prefix, without performing any I/O. Build systems use it to
// declare the output before running generation.
func HeaderFileName(p Prefix) string {
	return p.Resolve() + "monitor.h"
}
