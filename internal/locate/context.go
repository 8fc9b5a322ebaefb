package locate

import (
	"fmt"

	"fortio.org/safecast"

	"lumen/internal/sym"
	"lumen/internal/typedtree"
)

// ContextKind classifies the semantic role of the reference under the
// cursor; it determines the namespace search order.
type ContextKind uint8

const (
	// CtxUnknown is the default when the enclosing node tells us nothing.
	CtxUnknown ContextKind = iota
	// CtxAtOrigin means the cursor already rests on the definition itself;
	// there is nothing to resolve.
	CtxAtOrigin
	CtxExpr
	CtxPattern
	CtxModulePath
	CtxModuleType
	CtxType
	// CtxConstructor and CtxLabel carry the checker-resolved descriptor of
	// the occurrence, so lookup can skip the environment.
	CtxConstructor
	CtxLabel
)

// String returns the string representation of ContextKind.
func (k ContextKind) String() string {
	switch k {
	case CtxAtOrigin:
		return "at-origin"
	case CtxExpr:
		return "expression"
	case CtxPattern:
		return "pattern"
	case CtxModulePath:
		return "module-path"
	case CtxModuleType:
		return "module-type"
	case CtxType:
		return "type"
	case CtxConstructor:
		return "constructor"
	case CtxLabel:
		return "label"
	default:
		return "unknown"
	}
}

// Context is the classifier's verdict for one reference.
type Context struct {
	Kind ContextKind
	Desc *sym.Descriptor
}

// classify determines the semantic role of the identifier at the cursor
// from the smallest enclosing typed-tree node.
func classify(node *typedtree.Node, off uint32, comps []string) Context {
	if node == nil || len(comps) == 0 {
		return Context{Kind: CtxUnknown}
	}
	last := comps[len(comps)-1]

	switch node.Kind {
	case typedtree.NodePatternVar, typedtree.NodePatternWildcard, typedtree.NodePatternAlias:
		if node.Name == last {
			return Context{Kind: CtxAtOrigin}
		}
		return Context{Kind: CtxPattern}

	case typedtree.NodeValueBinding, typedtree.NodeTypeBinding,
		typedtree.NodeModuleBinding, typedtree.NodeModuleTypeBinding:
		// A binding declaration is its own definition.
		return Context{Kind: CtxAtOrigin}

	case typedtree.NodeConstructorExpr, typedtree.NodeConstructorPat:
		if cursorOnName(node, off) {
			return Context{Kind: CtxConstructor, Desc: node.Desc}
		}
		if node.Kind == typedtree.NodeConstructorPat {
			return Context{Kind: CtxPattern}
		}
		return Context{Kind: CtxExpr}

	case typedtree.NodeFieldExpr, typedtree.NodeFieldPat:
		if cursorOnName(node, off) {
			return Context{Kind: CtxLabel, Desc: node.Desc}
		}
		if node.Kind == typedtree.NodeFieldPat {
			return Context{Kind: CtxPattern}
		}
		return Context{Kind: CtxExpr}

	case typedtree.NodeOpen, typedtree.NodeModulePath:
		return Context{Kind: CtxModulePath}
	case typedtree.NodeModuleTypeExpr:
		return Context{Kind: CtxModuleType}
	case typedtree.NodeTypeExpr:
		return Context{Kind: CtxType}
	case typedtree.NodeExpr:
		return Context{Kind: CtxExpr}
	case typedtree.NodePattern:
		return Context{Kind: CtxPattern}
	default:
		return Context{Kind: CtxUnknown}
	}
}

// cursorOnName reports whether the cursor sits on the tag or field name
// itself rather than on the qualifying path before it. The name occupies
// the last len(Name) bytes of the occurrence's span.
func cursorOnName(node *typedtree.Node, off uint32) bool {
	if node.Name == "" {
		return false
	}
	nameLen, err := safecast.Conv[uint32](len(node.Name))
	if err != nil {
		panic(fmt.Errorf("name length overflow: %w", err))
	}
	if node.Span.End < nameLen {
		return false
	}
	return off >= node.Span.End-nameLen
}
