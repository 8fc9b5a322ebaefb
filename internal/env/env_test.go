package env

import (
	"testing"

	"lumen/internal/source"
	"lumen/internal/sym"
)

func TestLookupMissesEmptyNamespace(t *testing.T) {
	e := NewBare()
	if _, ok := e.Lookup(sym.NsValue, "map"); ok {
		t.Fatalf("expected miss in empty environment")
	}
}

func TestBindShadowsEarlier(t *testing.T) {
	e := NewBare()
	first := source.Location{File: "a.lm", Line: 1, Col: 1}
	second := source.Location{File: "b.lm", Line: 2, Col: 1}
	e.BindLocal(sym.NsValue, "x", first, "x")
	e.BindLocal(sym.NsValue, "x", second, "x")

	d, ok := e.Lookup(sym.NsValue, "x")
	if !ok {
		t.Fatalf("expected hit")
	}
	if d.Loc != second {
		t.Fatalf("expected later binding to shadow, got %v", d.Loc)
	}
	if d.Ns != sym.NsValue {
		t.Fatalf("namespace tag not stamped: %v", d.Ns)
	}
}

func TestBuiltinsPredeclared(t *testing.T) {
	e := New()
	d, ok := e.Lookup(sym.NsType, "int")
	if !ok || !d.Builtin {
		t.Fatalf("expected builtin type int, got %v ok=%v", d, ok)
	}
	d, ok = e.Lookup(sym.NsConstructor, "some")
	if !ok || !d.Builtin {
		t.Fatalf("expected builtin constructor some, got %v ok=%v", d, ok)
	}
	if _, ok := e.Lookup(sym.NsModule, "int"); ok {
		t.Fatalf("builtins must not leak into the module namespace")
	}
}

func TestExternalBindingMarksPath(t *testing.T) {
	e := NewBare()
	e.BindExternal(sym.NsValue, "List.map", source.Location{}, "List", "map")
	d, _ := e.Lookup(sym.NsValue, "List.map")
	if !d.Path.External {
		t.Fatalf("external binding must carry an external path")
	}
	if d.Path.String() != "List.map" {
		t.Fatalf("path = %q", d.Path.String())
	}
}
