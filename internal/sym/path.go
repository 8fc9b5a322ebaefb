package sym

import (
	"strings"

	"lumen/internal/source"
)

// Path is the canonical, scope-qualified name of a declaration: a sequence
// of module components ending in the declared name. External marks a path
// whose head component names a compilation unit rather than a binding local
// to the current unit.
type Path struct {
	Comps    []string
	External bool
}

// MakePath builds a path from components.
func MakePath(external bool, comps ...string) Path {
	return Path{Comps: comps, External: external}
}

func (p Path) IsEmpty() bool {
	return len(p.Comps) == 0
}

func (p Path) Len() int {
	return len(p.Comps)
}

// Head returns the first component, the unit or root binding name.
func (p Path) Head() string {
	if len(p.Comps) == 0 {
		return ""
	}
	return p.Comps[0]
}

// Sub returns the path without its head component.
func (p Path) Sub() []string {
	if len(p.Comps) == 0 {
		return nil
	}
	return p.Comps[1:]
}

// Name returns the final component, the declared name itself.
func (p Path) Name() string {
	if len(p.Comps) == 0 {
		return ""
	}
	return p.Comps[len(p.Comps)-1]
}

// Append returns a new path extended with extra trailing components.
func (p Path) Append(comps ...string) Path {
	out := make([]string, 0, len(p.Comps)+len(comps))
	out = append(out, p.Comps...)
	out = append(out, comps...)
	return Path{Comps: out, External: p.External}
}

func (p Path) String() string {
	return strings.Join(p.Comps, ".")
}

// ParseDotted splits an identifier as written at the cursor into its dotted
// components. A leading '~' marks a label reference and is stripped.
func ParseDotted(ident string) (comps []string, label bool) {
	ident = strings.TrimSpace(ident)
	if strings.HasPrefix(ident, "~") {
		label = true
		ident = ident[1:]
	}
	if ident == "" {
		return nil, label
	}
	return strings.Split(ident, "."), label
}

// Descriptor is what a namespace lookup yields: the canonical path of a
// declaration, the namespace it was found in, and its recorded (possibly
// approximate) location.
type Descriptor struct {
	Path    Path
	Ns      Namespace
	Loc     source.Location
	Builtin bool
}
