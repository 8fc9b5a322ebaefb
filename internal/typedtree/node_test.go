package typedtree

import (
	"testing"

	"lumen/internal/source"
)

func TestEnclosingNodePicksSmallest(t *testing.T) {
	inner := &Node{Kind: NodeConstructorExpr, Span: source.Span{Start: 10, End: 18}, Name: "Some"}
	mid := &Node{Kind: NodeExpr, Span: source.Span{Start: 5, End: 25}, Children: []*Node{inner}}
	root := &Node{Kind: NodeValueBinding, Span: source.Span{Start: 0, End: 40}, Name: "x", Children: []*Node{mid}}

	got := EnclosingNode(root, 12)
	if got != inner {
		t.Fatalf("expected inner node, got %v", got)
	}
	got = EnclosingNode(root, 6)
	if got != mid {
		t.Fatalf("expected mid node, got %v", got)
	}
	got = EnclosingNode(root, 30)
	if got != root {
		t.Fatalf("expected root node, got %v", got)
	}
}

func TestEnclosingNodeOutside(t *testing.T) {
	root := &Node{Kind: NodeExpr, Span: source.Span{Start: 10, End: 20}}
	if got := EnclosingNode(root, 25); got != nil {
		t.Fatalf("expected nil for offset outside the tree, got %v", got)
	}
	if got := EnclosingNode(nil, 0); got != nil {
		t.Fatalf("expected nil for nil tree, got %v", got)
	}
}
