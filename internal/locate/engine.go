// Package locate implements definition resolution: given an identifier
// reference in a typed program, find the file and position of its defining
// declaration, or explain why that is impossible.
package locate

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"lumen/internal/artifact"
	"lumen/internal/config"
	"lumen/internal/decltree"
	"lumen/internal/env"
	"lumen/internal/source"
	"lumen/internal/srcfile"
	"lumen/internal/sym"
	"lumen/internal/trace"
	"lumen/internal/typedtree"
)

// Engine answers definition queries. The artifact cache persists across
// queries; everything else is per-query state. Queries are synchronous and
// must not run concurrently against one Engine unless the host serializes
// them (the cache itself is safe to share).
type Engine struct {
	cfg   config.Config
	cache *artifact.Cache
	tr    trace.Tracer
}

// New builds an engine over a validated configuration. A nil cache or
// tracer gets a sane default.
func New(cfg config.Config, cache *artifact.Cache, tr trace.Tracer) *Engine {
	if cache == nil {
		cache = artifact.NewCache()
	}
	if tr == nil {
		tr = trace.Nop
	}
	return &Engine{cfg: cfg, cache: cache, tr: tr}
}

// Cache exposes the engine's artifact cache for preloading.
func (e *Engine) Cache() *artifact.Cache {
	return e.cache
}

// Request is one definition query.
type Request struct {
	// Ident is the identifier text under the cursor, as written
	// ("List.map", "~init").
	Ident string
	// Pos is the cursor's byte offset in the local file.
	Pos uint32
	// File is the local source file the cursor is in.
	File string
	// Content optionally carries the local file's text, for position
	// conversion without a re-read.
	Content []byte
	// Tree is the local typed tree produced by the checker.
	Tree *typedtree.Node
	// Env is the typing environment at the cursor.
	Env *env.Env
	// Prefer overrides the configured implementation/interface preference
	// when non-nil.
	Prefer *config.Preference
}

// Query resolves one reference. The returned error is reserved for
// internal invariant violations (alias cycles, malformed artifacts); every
// expected outcome, including failures, arrives as a tagged Result.
func (e *Engine) Query(req Request) (Result, error) {
	comps, label := sym.ParseDotted(req.Ident)
	if len(comps) == 0 {
		return Result{Kind: KindNotFound, Ident: req.Ident}, nil
	}
	trace.Point(e.tr, trace.LevelQuery, "query", "ident=%s pos=%d file=%s", req.Ident, req.Pos, req.File)

	node := typedtree.EnclosingNode(req.Tree, req.Pos)
	ctx := classify(node, req.Pos, comps)
	if label && ctx.Kind != CtxLabel && ctx.Kind != CtxConstructor {
		ctx = Context{Kind: CtxLabel, Desc: ctx.Desc}
	}
	if ctx.Kind == CtxAtOrigin {
		// The cursor already rests on the definition.
		return Result{Kind: KindFound, File: req.File, Pos: e.originPos(req, node)}, nil
	}

	desc, ok := lookupOrdered(ctx, strings.Join(comps, "."), req.Env)
	if !ok {
		return Result{Kind: KindNotInEnvironment, Ident: req.Ident}, nil
	}
	if desc.Builtin {
		return Result{Kind: KindBuiltin, Ident: req.Ident}, nil
	}

	r := newResolver(&e.cfg, e.cache, e.tr, e.preference(req.Prefer), req.Ident)
	loc, doc, err := r.resolve(desc)
	return e.finish(r, req.Ident, loc, doc, err)
}

// LocatePath resolves a fully qualified unit-rooted path ("Std.List.map")
// without cursor context, for hosts that already know the canonical name.
func (e *Engine) LocatePath(ident string, prefer *config.Preference) (Result, error) {
	comps, _ := sym.ParseDotted(ident)
	if len(comps) == 0 {
		return Result{Kind: KindNotFound, Ident: ident}, nil
	}
	trace.Point(e.tr, trace.LevelQuery, "query", "path=%s", ident)

	r := newResolver(&e.cfg, e.cache, e.tr, e.preference(prefer), ident)
	loc, doc, err := r.resolvePath(sym.MakePath(true, comps...), source.None)
	return e.finish(r, ident, loc, doc, err)
}

func (e *Engine) preference(override *config.Preference) config.Preference {
	if override != nil {
		return *override
	}
	return e.cfg.Prefer
}

// finish applies the failure policy (a recorded fallback outranks
// artifact and source-file misses) and resolves the logical file name to
// a real path.
func (e *Engine) finish(r *resolver, ident string, loc source.Location, doc string, err error) (Result, error) {
	degraded := false
	if err != nil {
		if errors.Is(err, ErrCycle) || errors.Is(err, decltree.ErrMalformed) {
			// Invariant violations abort loudly; no fallback applies.
			return Result{}, err
		}
		if r.fallback.IsNone() {
			var fnf *FileNotFoundError
			if errors.As(err, &fnf) {
				return Result{Kind: KindFileNotFound, Message: fnf.Error()}, nil
			}
			var nf *NotFoundError
			if errors.As(err, &nf) {
				return Result{Kind: KindNotFound, Ident: nf.Ident, LastVisited: nf.LastVisited}, nil
			}
			return Result{}, err
		}
		trace.Point(e.tr, trace.LevelQuery, "fallback", "using %s after: %v", r.fallback, err)
		loc, doc = r.fallback, ""
		degraded = true
	}

	if loc.File == "" {
		// Synthetic location with no file to show.
		return Result{Kind: KindFound, Pos: loc.Pos(), Doc: doc}, nil
	}

	finder := &srcfile.Resolver{
		Dirs:     e.cfg.SourcePath,
		Synonyms: e.cfg.Synonyms,
		Prefer:   r.prefer,
		WorkDir:  e.cfg.WorkDir,
	}
	path, ferr := finder.Find(loc.File, r.visited)
	if ferr == nil {
		return Result{Kind: KindFound, File: path, Pos: loc.Pos(), Doc: doc}, nil
	}

	var amb *srcfile.AmbiguityError
	if errors.As(ferr, &amb) {
		// Definitive: never replaced by a fallback. The position still
		// holds for whichever candidate the caller settles on.
		return Result{Kind: KindMultipleMatches, Pos: loc.Pos(), Candidates: amb.Candidates}, nil
	}

	if degraded {
		// Already on the fallback: an approximate answer still beats a
		// failure report.
		return Result{Kind: KindFound, Logical: loc.File, Pos: loc.Pos()}, nil
	}
	if !r.fallback.IsNone() && r.fallback != loc {
		// Source miss on the exact answer: degrade to the fallback.
		trace.Point(e.tr, trace.LevelQuery, "fallback", "using %s after: %v", r.fallback, ferr)
		fb := r.fallback
		if fpath, err2 := finder.Find(fb.File, r.visited); err2 == nil {
			return Result{Kind: KindFound, File: fpath, Pos: fb.Pos()}, nil
		}
		return Result{Kind: KindFound, Logical: fb.File, Pos: fb.Pos()}, nil
	}
	return Result{
		Kind:    KindFileNotFound,
		Message: fmt.Sprintf("source file %q not found (needed to locate %q): %v", loc.File, ident, ferr),
	}, nil
}

// originPos converts the at-origin node's span start into a line/column
// position, reading the local file when the request did not carry its
// content.
func (e *Engine) originPos(req Request, node *typedtree.Node) source.LineCol {
	content := req.Content
	if content == nil && req.File != "" {
		if data, err := os.ReadFile(req.File); err == nil {
			content = data
		}
	}
	if content == nil || node == nil {
		return source.LineCol{Line: 1, Col: 1}
	}
	return source.ToLineCol(source.BuildLineIndex(content), node.Span.Start)
}
