package locate

import (
	"fmt"

	"lumen/internal/source"
)

// Kind tags a query outcome. The set is closed: every terminal state of a
// query is one of these.
type Kind uint8

const (
	// KindFound carries a position and, unless the location is synthetic,
	// a resolved file.
	KindFound Kind = iota
	// KindBuiltin marks a language primitive with no user-visible
	// declaration.
	KindBuiltin
	// KindNotFound means navigation failed and no fallback was recorded.
	KindNotFound
	// KindNotInEnvironment means the identifier is unknown to the typing
	// environment.
	KindNotInEnvironment
	// KindFileNotFound means a required artifact or source file is
	// missing.
	KindFileNotFound
	// KindMultipleMatches means several on-disk candidates survived
	// digest and heuristic disambiguation.
	KindMultipleMatches
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindFound:
		return "found"
	case KindBuiltin:
		return "builtin"
	case KindNotFound:
		return "not-found"
	case KindNotInEnvironment:
		return "not-in-environment"
	case KindFileNotFound:
		return "file-not-found"
	case KindMultipleMatches:
		return "multiple-matches"
	default:
		return "unknown"
	}
}

// Result is the tagged outcome returned to the caller.
type Result struct {
	Kind Kind

	// File is the resolved path for KindFound; empty when resolution
	// stopped at a synthetic location, or when only the logical name is
	// known (Logical is set then).
	File string
	// Logical is the unresolved logical file name, kept when the on-disk
	// file could not be pinned down but a position is still useful.
	Logical string
	Pos     source.LineCol
	Doc     string

	// Ident is set for KindBuiltin, KindNotFound, KindNotInEnvironment.
	Ident string
	// LastVisited is the last unit file navigation crossed, for
	// KindNotFound.
	LastVisited string

	// Message describes the missing file for KindFileNotFound.
	Message string

	// Candidates lists the ambiguous files for KindMultipleMatches, in a
	// stable order.
	Candidates []string
}

func (r Result) String() string {
	switch r.Kind {
	case KindFound:
		file := r.File
		if file == "" {
			file = r.Logical
		}
		if file == "" {
			return fmt.Sprintf("found at %s", r.Pos)
		}
		return fmt.Sprintf("found %s:%s", file, r.Pos)
	case KindBuiltin:
		return fmt.Sprintf("%q is a builtin", r.Ident)
	case KindNotFound:
		if r.LastVisited != "" {
			return fmt.Sprintf("%q not found (last visited %s)", r.Ident, r.LastVisited)
		}
		return fmt.Sprintf("%q not found", r.Ident)
	case KindNotInEnvironment:
		return fmt.Sprintf("%q is not in the environment", r.Ident)
	case KindFileNotFound:
		return r.Message
	case KindMultipleMatches:
		return fmt.Sprintf("ambiguous: %d candidate files", len(r.Candidates))
	default:
		return "unknown result"
	}
}
