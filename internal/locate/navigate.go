package locate

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"lumen/internal/artifact"
	"lumen/internal/config"
	"lumen/internal/decltree"
	"lumen/internal/source"
	"lumen/internal/srcfile"
	"lumen/internal/sym"
	"lumen/internal/trace"
)

// resolver threads the per-query state through the recursive navigation:
// the active unit search path, the visited-file record, the best fallback
// location and the cycle guard. A fresh resolver is made for every
// top-level query; nothing here is shared.
type resolver struct {
	cfg    *config.Config
	cache  *artifact.Cache
	tr     trace.Tracer
	prefer config.Preference
	ident  string

	search   []string
	visited  srcfile.Visited
	fallback source.Location
	seen     map[string]struct{}
}

func newResolver(cfg *config.Config, cache *artifact.Cache, tr trace.Tracer, prefer config.Preference, ident string) *resolver {
	return &resolver{
		cfg:    cfg,
		cache:  cache,
		tr:     tr,
		prefer: prefer,
		ident:  ident,
		search: cfg.UnitPath,
		seen:   make(map[string]struct{}),
	}
}

// noteFallback records the best approximate answer so far. Ghost locations
// never qualify.
func (r *resolver) noteFallback(loc source.Location) {
	if !loc.IsNone() && !loc.Ghost {
		r.fallback = loc
	}
}

// resolve refines a descriptor into an exact location. Local declarations
// already carry their answer; external ones are navigated through their
// owning unit's artifact.
func (r *resolver) resolve(desc sym.Descriptor) (source.Location, string, error) {
	if desc.Path.External {
		return r.resolvePath(desc.Path, source.None)
	}
	if desc.Loc.IsNone() {
		return source.None, "", &NotFoundError{Ident: r.ident}
	}
	return desc.Loc, "", nil
}

// resolvePath resolves a canonical path whose head names a compilation
// unit: locate the unit's artifact, then walk its declaration tree with the
// remaining sub-path, recursing across units as aliases and re-exports
// demand.
func (r *resolver) resolvePath(p sym.Path, hint source.Location) (source.Location, string, error) {
	if p.IsEmpty() {
		return source.None, "", &NotFoundError{Ident: r.ident, LastVisited: r.visited.File}
	}
	key := p.String()
	if _, dup := r.seen[key]; dup {
		return source.None, "", fmt.Errorf("%q: %w", key, ErrCycle)
	}
	r.seen[key] = struct{}{}

	unit := p.Head()
	file, ok := r.findUnitFile(unit)
	if !ok && !slices.Equal(r.search, r.cfg.UnitPath) {
		// The active path may be a pack override; retry under the default.
		r.search = r.cfg.UnitPath
		file, ok = r.findUnitFile(unit)
	}
	if !ok {
		if p.Len() == 1 {
			// Let the source-file stage try by name alone.
			trace.Point(r.tr, trace.LevelUnit, "artifact", "unit %s: no artifact, ghost location", unit)
			return source.Location{File: r.sourceNameFor(unit), Line: 1, Col: 1, Ghost: true}, "", nil
		}
		return source.None, "", &FileNotFoundError{Ident: r.ident, Unit: unit, Role: r.roleName()}
	}
	trace.Point(r.tr, trace.LevelUnit, "artifact", "unit %s -> %s", unit, file)

	art, err := r.cache.Get(file)
	if err != nil {
		return source.None, "", &FileNotFoundError{Ident: r.ident, Unit: unit, Role: r.roleName(), Cause: err}
	}
	r.visited = srcfile.Visited{
		File:      art.SourceFile,
		Digest:    art.SourceDigest,
		HasDigest: !art.SourceDigest.IsZero(),
	}

	if p.Len() == 1 {
		// No finer position needed: anchor at the unit's source start.
		return source.Location{File: art.SourceFile, Line: 1, Col: 1}, "", nil
	}

	sub := p.Sub()
	if art.IsPack() && art.HasMember(sub[0]) {
		return r.resolveInPack(art, sub)
	}
	return r.walkUnit(art, sub, hint)
}

// resolveInPack resolves a member of a packed bundle under the bundle's
// original compile-time search path, falling back to the active path once:
// the bundle path only covers its members, the active path may carry units
// the member's declarations point back to.
func (r *resolver) resolveInPack(art *artifact.Artifact, sub []string) (source.Location, string, error) {
	saved := r.search
	savedSeen := cloneSet(r.seen)

	trace.Point(r.tr, trace.LevelUnit, "pack", "unit %s: entering bundle path", art.Unit)
	r.search = art.BuildPath
	loc, doc, err := r.resolvePath(sym.MakePath(true, sub...), source.None)
	r.search = saved
	if err == nil {
		return loc, doc, nil
	}

	r.seen = savedSeen
	loc, doc, retryErr := r.resolvePath(sym.MakePath(true, sub...), source.None)
	if retryErr == nil {
		return loc, doc, nil
	}
	// Surface the original failure, not the retry's.
	return source.None, "", err
}

// walkUnit walks one unit's declaration tree, following local alias chains
// in place and recursing across units for external targets.
func (r *resolver) walkUnit(art *artifact.Artifact, comps []string, hint source.Location) (source.Location, string, error) {
	tree := art.Tree()
	for {
		res, err := tree.Walk(comps, hint)
		if err != nil {
			return source.None, "", fmt.Errorf("unit %s: %w", art.Unit, err)
		}
		trace.Point(r.tr, trace.LevelProbe, "walk", "unit %s %s -> %s", art.Unit, strings.Join(comps, "."), res.Outcome)
		switch res.Outcome {
		case decltree.Found:
			loc := res.Loc
			if loc.File == "" {
				loc.File = art.SourceFile
			}
			return loc, res.Doc, nil

		case decltree.ResolvesTo:
			anchor := res.Loc
			if anchor.File == "" {
				anchor.File = art.SourceFile
			}
			if !res.Path.External {
				// Not a navigable unit reference: the anchor is the best
				// exact-ish answer there is.
				return anchor, "", nil
			}
			r.noteFallback(anchor)
			return r.resolvePath(res.Path, source.None)

		case decltree.AliasOf:
			anchor := res.Loc
			if anchor.File == "" {
				anchor.File = art.SourceFile
			}
			r.noteFallback(anchor)
			if res.Path.External {
				return r.resolvePath(res.Path, source.None)
			}
			key := art.Unit + "#" + res.Path.String()
			if _, dup := r.seen[key]; dup {
				return source.None, "", fmt.Errorf("%q: %w", key, ErrCycle)
			}
			r.seen[key] = struct{}{}
			// Re-walk this unit anchored at the alias: the anchor picks
			// the right occurrence when the name is declared twice.
			comps, hint = res.Path.Comps, res.Loc

		default:
			return source.None, "", &NotFoundError{Ident: r.ident, LastVisited: r.visited.File}
		}
	}
}

// findUnitFile searches the active path for the unit's artifact, preferred
// file kind first.
func (r *resolver) findUnitFile(unit string) (string, bool) {
	exts := r.cfg.ArtifactExts(r.prefer)
	for _, dir := range r.search {
		for _, ext := range exts {
			path := filepath.Join(dir, unit+ext)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, true
			}
			trace.Point(r.tr, trace.LevelProbe, "probe", "miss %s", path)
		}
	}
	return "", false
}

// sourceNameFor derives the source file name a unit would have, in the
// preferred form.
func (r *resolver) sourceNameFor(unit string) string {
	exts := r.cfg.SourceExts(r.prefer)
	if len(exts) == 0 {
		return unit
	}
	return unit + exts[0]
}

func (r *resolver) roleName() string {
	if r.prefer == config.PreferInterface {
		return "interface form"
	}
	return "definition form"
}

func cloneSet(m map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(m))
	for k := range m {
		out[k] = struct{}{}
	}
	return out
}
