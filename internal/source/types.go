package source

import (
	"encoding/hex"
	"fmt"
)

// Digest is a SHA-256 content hash of a source file. The compiler records it
// in every unit artifact; the resolver uses it to pick among same-named
// candidate files on disk.
type Digest [32]byte

// IsZero reports whether the digest was never computed.
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// String returns the digest in hex form.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

func (lc LineCol) String() string {
	return fmt.Sprintf("%d:%d", lc.Line, lc.Col)
}

// Location names a point inside a source file. File is the logical file name
// recorded by the compiler, not necessarily a resolvable path. Ghost marks a
// synthetic location that is not backed by a real text span.
type Location struct {
	File  string
	Line  uint32 // 1-based
	Col   uint32 // 1-based
	Ghost bool
}

// None is the absent location.
var None = Location{}

// IsNone reports whether the location carries no information at all.
func (l Location) IsNone() bool {
	return l.File == "" && l.Line == 0 && l.Col == 0
}

// Pos returns the line/column pair of the location.
func (l Location) Pos() LineCol {
	return LineCol{Line: l.Line, Col: l.Col}
}

func (l Location) String() string {
	if l.IsNone() {
		return "<none>"
	}
	s := fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Col)
	if l.Ghost {
		s += " (ghost)"
	}
	return s
}
