// Package env implements the typing-environment contract the resolver
// queries: namespace-qualified lookup of identifiers as written at the
// cursor, yielding canonical declaration descriptors.
package env

import (
	"lumen/internal/source"
	"lumen/internal/sym"
)

// Env holds one table per namespace, keyed by the qualified identifier text
// as the checker registered it (e.g. "List.map"). The host type-checker
// populates it for the unit under analysis; tests populate it by hand.
type Env struct {
	tables map[sym.Namespace]map[string]sym.Descriptor
}

// New returns an empty environment with the language builtins predeclared.
func New() *Env {
	e := &Env{tables: make(map[sym.Namespace]map[string]sym.Descriptor, 6)}
	registerBuiltins(e)
	return e
}

// NewBare returns an environment without builtins, for tests that need full
// control over lookup results.
func NewBare() *Env {
	return &Env{tables: make(map[sym.Namespace]map[string]sym.Descriptor, 6)}
}

// Bind registers a declaration under the given namespace and identifier.
// A later Bind for the same key shadows the earlier one.
func (e *Env) Bind(ns sym.Namespace, ident string, d sym.Descriptor) {
	table, ok := e.tables[ns]
	if !ok {
		table = make(map[string]sym.Descriptor)
		e.tables[ns] = table
	}
	d.Ns = ns
	table[ident] = d
}

// Lookup probes a single namespace for the identifier.
func (e *Env) Lookup(ns sym.Namespace, ident string) (sym.Descriptor, bool) {
	table, ok := e.tables[ns]
	if !ok {
		return sym.Descriptor{}, false
	}
	d, ok := table[ident]
	return d, ok
}

// BindLocal registers a declaration defined in the current unit: the
// canonical path stays internal and the location is taken verbatim.
func (e *Env) BindLocal(ns sym.Namespace, ident string, loc source.Location, comps ...string) {
	e.Bind(ns, ident, sym.Descriptor{
		Path: sym.MakePath(false, comps...),
		Loc:  loc,
	})
}

// BindExternal registers a declaration owned by another compilation unit.
// The location, when present, is the approximate one the checker saw; the
// navigator refines it against the owning unit's artifact.
func (e *Env) BindExternal(ns sym.Namespace, ident string, loc source.Location, comps ...string) {
	e.Bind(ns, ident, sym.Descriptor{
		Path: sym.MakePath(true, comps...),
		Loc:  loc,
	})
}
