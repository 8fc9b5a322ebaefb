// Package decltree builds and walks the per-unit declaration index: a
// nested-scope map from canonical sub-paths to exact locations, include
// indirections, or module aliases. A tree is a pure function of the unit's
// recorded declarations and is built at most once per artifact.
package decltree

import (
	"errors"
	"fmt"

	"lumen/internal/source"
	"lumen/internal/sym"
	"lumen/internal/typedtree"
)

// ErrMalformed reports an alias or include declaration with no target path.
// Artifacts of a well-formed unit never contain one, so walking such an
// entry aborts the query.
var ErrMalformed = errors.New("malformed declaration")

// Outcome tags the result of a tree walk.
type Outcome uint8

const (
	// Absent means the sub-path names nothing in this unit.
	Absent Outcome = iota
	// Found is an exact answer: Loc is the declaration's own location.
	Found
	// ResolvesTo is an indirection: the declaration is re-exported from
	// Path; Loc is the fallback anchor (the include site).
	ResolvesTo
	// AliasOf is a module alias: Path is the aliased target, Loc anchors
	// the alias declaration itself.
	AliasOf
)

// String returns the string representation of Outcome.
func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case ResolvesTo:
		return "resolves-to"
	case AliasOf:
		return "alias-of"
	default:
		return "absent"
	}
}

// Result is the outcome of walking a tree with one sub-path.
type Result struct {
	Outcome Outcome
	Loc     source.Location
	Doc     string
	Path    sym.Path
}

type entry struct {
	decl  *typedtree.Decl
	child *scope // populated for module declarations with a body
}

type scope struct {
	// entries keeps every occurrence of a name in declaration order;
	// shadowing is resolved at walk time, optionally against a hint.
	entries  map[string][]entry
	includes []entry
}

// Tree is the navigable declaration index of one compilation unit.
type Tree struct {
	root *scope
}

// Build indexes a unit's declaration list into a walkable tree.
func Build(decls []typedtree.Decl) *Tree {
	return &Tree{root: buildScope(decls)}
}

func buildScope(decls []typedtree.Decl) *scope {
	sc := &scope{entries: make(map[string][]entry, len(decls))}
	for i := range decls {
		d := &decls[i]
		e := entry{decl: d}
		if d.Kind == typedtree.DeclInclude {
			sc.includes = append(sc.includes, e)
			continue
		}
		if d.Kind == typedtree.DeclModule && len(d.Children) > 0 {
			e.child = buildScope(d.Children)
		}
		sc.entries[d.Name] = append(sc.entries[d.Name], e)
	}
	return sc
}

// Walk resolves a sub-path inside the unit. hint, when non-none,
// disambiguates between multiple occurrences of the same name (shadowing):
// the occurrence anchored at the hint wins, otherwise the last occurrence
// at or before the hint's line, otherwise the latest one. A non-nil error
// means the unit's declarations are malformed; it aborts the query instead
// of degrading.
func (t *Tree) Walk(comps []string, hint source.Location) (Result, error) {
	if t == nil || len(comps) == 0 {
		return Result{Outcome: Absent}, nil
	}
	sc := t.root
	for i, comp := range comps {
		rest := comps[i+1:]
		occs := sc.entries[comp]
		if len(occs) == 0 {
			// Not declared here directly: the most recent include may
			// re-export it from another scope.
			if inc, ok := sc.lastInclude(); ok {
				if inc.decl.Target == nil {
					return Result{}, fmt.Errorf("include at %s: %w", inc.decl.Loc, ErrMalformed)
				}
				return Result{
					Outcome: ResolvesTo,
					Loc:     inc.decl.Loc,
					Path:    inc.decl.Target.Append(comps[i:]...),
				}, nil
			}
			return Result{Outcome: Absent}, nil
		}
		e := pick(occs, hint)
		switch e.decl.Kind {
		case typedtree.DeclAlias:
			if e.decl.Target == nil {
				return Result{}, fmt.Errorf("alias %q: %w", e.decl.Name, ErrMalformed)
			}
			return Result{
				Outcome: AliasOf,
				Loc:     e.decl.Loc,
				Path:    e.decl.Target.Append(rest...),
			}, nil
		case typedtree.DeclModule:
			if len(rest) == 0 {
				return Result{Outcome: Found, Loc: e.decl.Loc, Doc: e.decl.Doc}, nil
			}
			if e.child == nil {
				return Result{Outcome: Absent}, nil
			}
			sc = e.child
		default:
			if len(rest) == 0 {
				return Result{Outcome: Found, Loc: e.decl.Loc, Doc: e.decl.Doc}, nil
			}
			// Values, types and the rest have no members to descend into.
			return Result{Outcome: Absent}, nil
		}
	}
	return Result{Outcome: Absent}, nil
}

func (sc *scope) lastInclude() (entry, bool) {
	if len(sc.includes) == 0 {
		return entry{}, false
	}
	return sc.includes[len(sc.includes)-1], true
}

func pick(occs []entry, hint source.Location) entry {
	if hint.IsNone() || len(occs) == 1 {
		return occs[len(occs)-1]
	}
	for _, e := range occs {
		if e.decl.Loc.Line == hint.Line && e.decl.Loc.Col == hint.Col {
			return e
		}
	}
	best := -1
	for i, e := range occs {
		if e.decl.Loc.Line <= hint.Line {
			best = i
		}
	}
	if best >= 0 {
		return occs[best]
	}
	return occs[len(occs)-1]
}
