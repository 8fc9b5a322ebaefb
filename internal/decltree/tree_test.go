package decltree

import (
	"errors"
	"testing"

	"lumen/internal/source"
	"lumen/internal/sym"
	"lumen/internal/typedtree"
)

func loc(line, col uint32) source.Location {
	return source.Location{File: "unit.lm", Line: line, Col: col}
}

func walk(t *testing.T, tree *Tree, comps []string, hint source.Location) Result {
	t.Helper()
	res, err := tree.Walk(comps, hint)
	if err != nil {
		t.Fatalf("walk %v: %v", comps, err)
	}
	return res
}

func TestWalkFindsNestedDeclaration(t *testing.T) {
	tree := Build([]typedtree.Decl{
		{Kind: typedtree.DeclModule, Name: "Assoc", Loc: loc(3, 1), Children: []typedtree.Decl{
			{Kind: typedtree.DeclValue, Name: "find", Loc: loc(5, 3), Doc: "Find a binding by key."},
		}},
	})

	res := walk(t, tree, []string{"Assoc", "find"}, source.None)
	if res.Outcome != Found {
		t.Fatalf("outcome = %v", res.Outcome)
	}
	if res.Loc != loc(5, 3) {
		t.Fatalf("loc = %v", res.Loc)
	}
	if res.Doc != "Find a binding by key." {
		t.Fatalf("doc = %q", res.Doc)
	}

	res = walk(t, tree, []string{"Assoc"}, source.None)
	if res.Outcome != Found || res.Loc != loc(3, 1) {
		t.Fatalf("module itself: %v at %v", res.Outcome, res.Loc)
	}
}

func TestWalkAbsent(t *testing.T) {
	tree := Build([]typedtree.Decl{
		{Kind: typedtree.DeclValue, Name: "x", Loc: loc(1, 1)},
	})
	if res := walk(t, tree, []string{"y"}, source.None); res.Outcome != Absent {
		t.Fatalf("expected absent, got %v", res.Outcome)
	}
	// Cannot descend into a value.
	if res := walk(t, tree, []string{"x", "member"}, source.None); res.Outcome != Absent {
		t.Fatalf("expected absent for member of a value, got %v", res.Outcome)
	}
}

func TestWalkAliasCarriesRemainder(t *testing.T) {
	target := sym.MakePath(true, "RealList")
	tree := Build([]typedtree.Decl{
		{Kind: typedtree.DeclAlias, Name: "L", Loc: loc(2, 1), Target: &target},
	})
	res := walk(t, tree, []string{"L", "map"}, source.None)
	if res.Outcome != AliasOf {
		t.Fatalf("outcome = %v", res.Outcome)
	}
	if res.Path.String() != "RealList.map" || !res.Path.External {
		t.Fatalf("path = %v external=%v", res.Path, res.Path.External)
	}
	if res.Loc != loc(2, 1) {
		t.Fatalf("anchor = %v", res.Loc)
	}
}

func TestWalkIncludeIndirection(t *testing.T) {
	target := sym.MakePath(true, "Base")
	tree := Build([]typedtree.Decl{
		{Kind: typedtree.DeclInclude, Loc: loc(1, 1), Target: &target},
		{Kind: typedtree.DeclValue, Name: "own", Loc: loc(4, 1)},
	})

	// Declared locally: the include must not shadow it.
	if res := walk(t, tree, []string{"own"}, source.None); res.Outcome != Found {
		t.Fatalf("own: %v", res.Outcome)
	}

	res := walk(t, tree, []string{"inherited"}, source.None)
	if res.Outcome != ResolvesTo {
		t.Fatalf("outcome = %v", res.Outcome)
	}
	if res.Path.String() != "Base.inherited" {
		t.Fatalf("path = %v", res.Path)
	}
	if res.Loc != loc(1, 1) {
		t.Fatalf("fallback anchor = %v", res.Loc)
	}
}

func TestWalkShadowingUsesHint(t *testing.T) {
	tree := Build([]typedtree.Decl{
		{Kind: typedtree.DeclValue, Name: "x", Loc: loc(2, 1)},
		{Kind: typedtree.DeclValue, Name: "x", Loc: loc(9, 1)},
	})

	// No hint: the latest declaration wins.
	res := walk(t, tree, []string{"x"}, source.None)
	if res.Loc != loc(9, 1) {
		t.Fatalf("no hint: %v", res.Loc)
	}

	// Hint at the first occurrence selects it.
	res = walk(t, tree, []string{"x"}, loc(2, 1))
	if res.Loc != loc(2, 1) {
		t.Fatalf("exact hint: %v", res.Loc)
	}

	// Hint between the two selects the one at or before it.
	res = walk(t, tree, []string{"x"}, loc(5, 1))
	if res.Loc != loc(2, 1) {
		t.Fatalf("between hint: %v", res.Loc)
	}
}

func TestWalkRejectsMissingTarget(t *testing.T) {
	// An alias without a target cannot come out of a well-formed compile;
	// walking it must fail instead of crashing.
	tree := Build([]typedtree.Decl{
		{Kind: typedtree.DeclAlias, Name: "A", Loc: loc(1, 1)},
	})
	if _, err := tree.Walk([]string{"A", "x"}, source.None); !errors.Is(err, ErrMalformed) {
		t.Fatalf("alias without target: %v", err)
	}

	tree = Build([]typedtree.Decl{
		{Kind: typedtree.DeclInclude, Loc: loc(1, 1)},
	})
	if _, err := tree.Walk([]string{"anything"}, source.None); !errors.Is(err, ErrMalformed) {
		t.Fatalf("include without target: %v", err)
	}
}
