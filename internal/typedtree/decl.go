package typedtree

import (
	"lumen/internal/source"
	"lumen/internal/sym"
)

// DeclKind enumerates the declaration shapes recorded in a unit artifact.
type DeclKind uint8

const (
	DeclValue DeclKind = iota
	DeclType
	DeclModule
	DeclModuleType
	DeclConstructor
	DeclLabel
	// DeclAlias is a module alias ("module M = N"): Target names the aliased
	// path, Loc anchors the alias itself.
	DeclAlias
	// DeclInclude re-exports another scope ("include M"): members of Target
	// appear in the enclosing scope, Loc anchors the include site.
	DeclInclude
)

// String returns the string representation of DeclKind.
func (k DeclKind) String() string {
	switch k {
	case DeclValue:
		return "value"
	case DeclType:
		return "type"
	case DeclModule:
		return "module"
	case DeclModuleType:
		return "module type"
	case DeclConstructor:
		return "constructor"
	case DeclLabel:
		return "label"
	case DeclAlias:
		return "alias"
	case DeclInclude:
		return "include"
	default:
		return "unknown"
	}
}

// Decl is one declaration of a compilation unit as serialized into its
// artifact. Module declarations nest their body in Children. Alias and
// include declarations carry a Target path; everything else carries a
// concrete location and, when the compiler kept one, a doc string.
type Decl struct {
	Kind     DeclKind
	Name     string
	Loc      source.Location
	Doc      string
	Target   *sym.Path
	Children []Decl
}
