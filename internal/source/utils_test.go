package source

import (
	"testing"
)

func TestToLineCol(t *testing.T) {
	content := []byte("let x = 1\nlet y = 2\n\nlet z = 3")
	idx := BuildLineIndex(content)

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{4, LineCol{1, 5}},
		{9, LineCol{1, 10}}, // the '\n' terminating line 1
		{10, LineCol{2, 1}},
		{14, LineCol{2, 5}},
		{20, LineCol{3, 1}}, // empty line
		{21, LineCol{4, 1}},
		{29, LineCol{4, 9}},
	}
	for _, c := range cases {
		got := ToLineCol(idx, c.off)
		if got != c.want {
			t.Fatalf("ToLineCol(%d) = %v, want %v", c.off, got, c.want)
		}
	}
}

func TestToLineColSingleLine(t *testing.T) {
	got := ToLineCol(nil, 7)
	if got != (LineCol{1, 8}) {
		t.Fatalf("expected 1:8, got %v", got)
	}
}

func TestSpanContains(t *testing.T) {
	s := Span{Start: 4, End: 10}
	if !s.Contains(4) || !s.Contains(9) {
		t.Fatalf("expected span %v to contain its interior", s)
	}
	if s.Contains(10) || s.Contains(3) {
		t.Fatalf("expected span %v to exclude its exterior", s)
	}
	empty := Span{Start: 5, End: 5}
	if !empty.Contains(5) {
		t.Fatalf("empty span must contain its own start")
	}
	if empty.Contains(6) {
		t.Fatalf("empty span must not contain other offsets")
	}
}

func TestDigestString(t *testing.T) {
	d := HashBytes([]byte("module Foo"))
	if d.IsZero() {
		t.Fatalf("digest of non-empty content must not be zero")
	}
	if len(d.String()) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(d.String()))
	}
	var zero Digest
	if !zero.IsZero() {
		t.Fatalf("zero digest must report IsZero")
	}
}

func TestLocationString(t *testing.T) {
	loc := Location{File: "map.lm", Line: 12, Col: 3}
	if loc.String() != "map.lm:12:3" {
		t.Fatalf("unexpected string: %q", loc.String())
	}
	ghost := Location{File: "map.lm", Line: 1, Col: 1, Ghost: true}
	if ghost.String() != "map.lm:1:1 (ghost)" {
		t.Fatalf("unexpected ghost string: %q", ghost.String())
	}
	if !None.IsNone() {
		t.Fatalf("None must be IsNone")
	}
}
