// Package typedtree models the slice of the type-checker's output the
// resolver consumes: the local typed tree around the cursor and the per-unit
// declaration lists recorded in compiled artifacts.
package typedtree

import (
	"lumen/internal/source"
	"lumen/internal/sym"
)

// NodeKind enumerates the typed-tree node shapes the context classifier
// distinguishes. Everything else arrives as NodeUnknown.
type NodeKind uint8

const (
	NodeUnknown NodeKind = iota
	NodePatternVar
	NodePatternWildcard
	NodePatternAlias
	NodeValueBinding
	NodeTypeBinding
	NodeModuleBinding
	NodeModuleTypeBinding
	NodeConstructorExpr
	NodeConstructorPat
	NodeFieldExpr
	NodeFieldPat
	NodeOpen
	NodeModulePath
	NodeModuleTypeExpr
	NodeTypeExpr
	NodeExpr
	NodePattern
)

// String returns the string representation of NodeKind.
func (k NodeKind) String() string {
	switch k {
	case NodePatternVar:
		return "pattern-var"
	case NodePatternWildcard:
		return "pattern-wildcard"
	case NodePatternAlias:
		return "pattern-alias"
	case NodeValueBinding:
		return "value-binding"
	case NodeTypeBinding:
		return "type-binding"
	case NodeModuleBinding:
		return "module-binding"
	case NodeModuleTypeBinding:
		return "module-type-binding"
	case NodeConstructorExpr:
		return "constructor-expr"
	case NodeConstructorPat:
		return "constructor-pattern"
	case NodeFieldExpr:
		return "field-expr"
	case NodeFieldPat:
		return "field-pattern"
	case NodeOpen:
		return "open"
	case NodeModulePath:
		return "module-path"
	case NodeModuleTypeExpr:
		return "module-type-expr"
	case NodeTypeExpr:
		return "type-expr"
	case NodeExpr:
		return "expr"
	case NodePattern:
		return "pattern"
	default:
		return "unknown"
	}
}

// Node is one typed-tree node of the local compilation unit. Name carries
// the bound name for binding/pattern nodes and the tag or field name for
// constructor and field occurrences. Desc is the checker-resolved
// descriptor attached to constructor and field occurrences so that
// disambiguated uses skip the environment lookup.
type Node struct {
	Kind     NodeKind
	Span     source.Span
	Name     string
	Desc     *sym.Descriptor
	Children []*Node
}

// EnclosingNode returns the smallest node of the tree containing the byte
// offset, or nil when the offset falls outside the tree entirely.
func EnclosingNode(root *Node, off uint32) *Node {
	if root == nil || !root.Span.Contains(off) {
		return nil
	}
	best := root
	for {
		next := (*Node)(nil)
		for _, child := range best.Children {
			if child != nil && child.Span.Contains(off) {
				next = child
				break
			}
		}
		if next == nil {
			return best
		}
		best = next
	}
}
