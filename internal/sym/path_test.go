package sym

import (
	"testing"
)

func TestParseDotted(t *testing.T) {
	cases := []struct {
		in    string
		comps []string
		label bool
	}{
		{"map", []string{"map"}, false},
		{"List.map", []string{"List", "map"}, false},
		{"Std.List.Assoc.find", []string{"Std", "List", "Assoc", "find"}, false},
		{"~init", []string{"init"}, true},
		{"", nil, false},
	}
	for _, c := range cases {
		comps, label := ParseDotted(c.in)
		if label != c.label {
			t.Fatalf("%q: label = %v, want %v", c.in, label, c.label)
		}
		if len(comps) != len(c.comps) {
			t.Fatalf("%q: comps = %v, want %v", c.in, comps, c.comps)
		}
		for i := range comps {
			if comps[i] != c.comps[i] {
				t.Fatalf("%q: comps = %v, want %v", c.in, comps, c.comps)
			}
		}
	}
}

func TestPathAccessors(t *testing.T) {
	p := MakePath(true, "Std", "List", "map")
	if p.Head() != "Std" {
		t.Fatalf("head = %q", p.Head())
	}
	if p.Name() != "map" {
		t.Fatalf("name = %q", p.Name())
	}
	if got := p.String(); got != "Std.List.map" {
		t.Fatalf("string = %q", got)
	}
	sub := p.Sub()
	if len(sub) != 2 || sub[0] != "List" || sub[1] != "map" {
		t.Fatalf("sub = %v", sub)
	}

	q := p.Append("extra")
	if q.String() != "Std.List.map.extra" || !q.External {
		t.Fatalf("append = %v external=%v", q, q.External)
	}
	// Append must not alias the original backing array.
	if p.String() != "Std.List.map" {
		t.Fatalf("append mutated receiver: %v", p)
	}
}
