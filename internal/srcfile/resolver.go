// Package srcfile maps the logical file name of a resolved location to a
// real file on disk: case-insensitive search across the source path,
// digest-based disambiguation, and a path-suffix scoring heuristic for the
// rest.
package srcfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"lumen/internal/config"
	"lumen/internal/source"
)

// ErrNotFound is wrapped into every "no candidate on disk" failure.
var ErrNotFound = errors.New("source file not found")

// AmbiguityError reports candidates the resolver could not tell apart.
// Candidates are sorted for a stable order.
type AmbiguityError struct {
	Candidates []string
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("ambiguous source file: %s", strings.Join(e.Candidates, ", "))
}

// Visited is the navigator's record of the last unit crossed: its source
// file name and content digest, used to pick among same-named candidates.
type Visited struct {
	File      string
	Digest    source.Digest
	HasDigest bool
}

// Resolver finds source files for resolved locations.
type Resolver struct {
	// Dirs is the ordered source search path, distinct from the
	// unit-metadata search path.
	Dirs     []string
	Synonyms []config.Synonym
	Prefer   config.Preference
	// WorkDir anchors the relative directory of the last visited file
	// during the narrowed fallback search.
	WorkDir string
}

// Find resolves the logical file name of a location to a path on disk.
func (r *Resolver) Find(expected string, visited Visited) (string, error) {
	names := r.logicalNames(expected)
	candidates := collect(r.Dirs, names)

	switch len(candidates) {
	case 0:
		return r.findNarrowed(expected, names, visited)
	case 1:
		return candidates[0], nil
	}

	if visited.HasDigest {
		if match, ok := byDigest(candidates, visited.Digest); ok {
			return match, nil
		}
	}
	// Scoring compares against the preference-adjusted spelling, so that
	// the preferred form outranks the one the location happened to name.
	adjusted := expected
	if base := filepath.Base(expected); base != names[0] {
		adjusted = filepath.Join(filepath.Dir(expected), names[0])
	}
	return r.byScore(adjusted, candidates)
}

// logicalNames derives the file names worth matching: the expected name
// adjusted for the active preference, plus its suffix-synonym counterpart.
func (r *Resolver) logicalNames(expected string) []string {
	base := filepath.Base(expected)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if ext == "" {
		return []string{base}
	}

	primary := ext
	other := config.Counterpart(r.Synonyms, ext)
	wantImpl := r.Prefer == config.PreferImplementation
	if config.IsImplExt(r.Synonyms, ext) != wantImpl && other != ext {
		primary, other = other, primary
	}
	if other == primary {
		return []string{stem + primary}
	}
	return []string{stem + primary, stem + other}
}

// collect gathers every file in dirs whose name matches one of names,
// case-insensitively and under Unicode NFC normalization (case-preserving
// and normalizing filesystems both occur in the wild).
func collect(dirs, names []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			for _, name := range names {
				if foldEqual(entry.Name(), name) {
					path := filepath.Join(dir, entry.Name())
					if _, dup := seen[path]; !dup {
						seen[path] = struct{}{}
						out = append(out, path)
					}
					break
				}
			}
		}
	}
	return out
}

func foldEqual(a, b string) bool {
	return strings.EqualFold(norm.NFC.String(a), norm.NFC.String(b))
}

// findNarrowed is the single-directory retry seeded from the last visited
// unit's source file. It tries the synonym-aware names first and the raw
// expected name last; a miss surfaces the original not-found error.
func (r *Resolver) findNarrowed(expected string, names []string, visited Visited) (string, error) {
	notFound := fmt.Errorf("%q: %w", names[0], ErrNotFound)
	if visited.File == "" {
		return "", notFound
	}
	dir := filepath.Dir(visited.File)
	if !filepath.IsAbs(dir) && r.WorkDir != "" {
		dir = filepath.Join(r.WorkDir, dir)
	}

	if found := collect([]string{dir}, names); len(found) == 1 {
		return found[0], nil
	}
	raw := filepath.Join(dir, filepath.Base(expected))
	if info, err := os.Stat(raw); err == nil && !info.IsDir() {
		return raw, nil
	}
	return "", notFound
}

// byDigest returns the unique candidate whose content hash matches.
func byDigest(candidates []string, want source.Digest) (string, bool) {
	match := ""
	count := 0
	for _, cand := range candidates {
		d, err := source.HashFile(cand)
		if err != nil {
			continue
		}
		if d == want {
			match = cand
			count++
		}
	}
	if count == 1 {
		return match, true
	}
	return "", false
}

// byScore applies the heuristic tie-break:
//
//	score = 2*len(common path suffix with expected) + 1 if the extension
//	matches the active preference
//
// Ties collapse candidates naming the same underlying file (case-insensitive
// filesystems expose duplicates); surviving ties are a hard ambiguity.
func (r *Resolver) byScore(expected string, candidates []string) (string, error) {
	best := -1
	var top []string
	for _, cand := range candidates {
		s := 2*commonSuffixLen(cand, expected) + r.extBonus(cand)
		if s > best {
			best = s
			top = top[:0]
			top = append(top, cand)
		} else if s == best {
			top = append(top, cand)
		}
	}
	if len(top) == 1 {
		return top[0], nil
	}

	if unique, ok := collapseSameFile(top); ok {
		return unique, nil
	}
	sort.Strings(top)
	return "", &AmbiguityError{Candidates: top}
}

func (r *Resolver) extBonus(cand string) int {
	ext := filepath.Ext(cand)
	if config.IsImplExt(r.Synonyms, ext) == (r.Prefer == config.PreferImplementation) {
		return 1
	}
	return 0
}

// commonSuffixLen counts the shared trailing bytes of two slash-normalized
// paths.
func commonSuffixLen(a, b string) int {
	a = filepath.ToSlash(a)
	b = filepath.ToSlash(b)
	n := 0
	for n < len(a) && n < len(b) && a[len(a)-1-n] == b[len(b)-1-n] {
		n++
	}
	return n
}

// collapseSameFile reports whether every candidate is the same underlying
// file; the lexicographically first spelling is the survivor.
func collapseSameFile(candidates []string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}
	first, err := os.Stat(candidates[0])
	if err != nil {
		return "", false
	}
	for _, cand := range candidates[1:] {
		info, err := os.Stat(cand)
		if err != nil || !os.SameFile(first, info) {
			return "", false
		}
	}
	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)
	return sorted[0], true
}
