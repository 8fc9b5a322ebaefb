// Package artifact loads and caches the per-unit compiled metadata blobs
// the navigator walks: source file name and digest, the compile-time search
// path, pack membership, and the unit's declaration list.
package artifact

import (
	"slices"
	"sync/atomic"

	"lumen/internal/decltree"
	"lumen/internal/source"
	"lumen/internal/typedtree"
)

// SchemaVersion is bumped whenever the on-disk payload format changes.
const SchemaVersion uint16 = 1

// Artifact is the compiled metadata of one unit. Everything is immutable
// after Load except the lazily built declaration tree.
type Artifact struct {
	Schema uint16

	// Unit is the logical unit name ("List", "Std").
	Unit string

	// SourceFile is the source file the unit was compiled from, as the
	// compiler recorded it; SourceDigest hashes that file's content.
	SourceFile   string
	SourceDigest source.Digest

	// BuildPath is the unit-metadata search path active when the unit was
	// compiled. Needed to resolve inside packed bundles.
	BuildPath []string

	// Pack lists the bundled member units when this unit is a pack.
	Pack []string

	// InterfaceOnly marks artifacts compiled from an interface source with
	// no implementation counterpart.
	InterfaceOnly bool

	// Unreadable marks artifacts whose typed tree could not be recovered;
	// Decls is empty for them.
	Unreadable bool

	Decls []typedtree.Decl

	// tree is built on first use; a racy double build overwrites with an
	// identical value, so last write wins.
	tree atomic.Pointer[decltree.Tree]
}

// IsPack reports whether the unit bundles other units.
func (a *Artifact) IsPack() bool {
	return len(a.Pack) > 0
}

// HasMember reports whether name is one of the bundled member units.
func (a *Artifact) HasMember(name string) bool {
	return slices.Contains(a.Pack, name)
}

// Tree returns the unit's declaration tree, building and memoizing it on
// first use.
func (a *Artifact) Tree() *decltree.Tree {
	if t := a.tree.Load(); t != nil {
		return t
	}
	t := decltree.Build(a.Decls)
	a.tree.Store(t)
	return t
}
