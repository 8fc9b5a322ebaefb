package locate

import (
	"errors"
	"fmt"
)

// ErrCycle reports an alias or indirection loop across units. Artifacts of
// a well-typed program cannot produce one, so a detected cycle is an
// internal invariant violation and aborts the query instead of degrading
// to a fallback.
var ErrCycle = errors.New("alias cycle detected")

// NotFoundError means navigation ran out of road: the declaration tree had
// no entry for the remaining sub-path.
type NotFoundError struct {
	Ident       string
	LastVisited string
}

func (e *NotFoundError) Error() string {
	if e.LastVisited != "" {
		return fmt.Sprintf("%q not found (last visited %s)", e.Ident, e.LastVisited)
	}
	return fmt.Sprintf("%q not found", e.Ident)
}

// FileNotFoundError means the artifact for a unit could not be located
// under any search path, naming the identifier that needed it and the file
// kind the active preference asked for.
type FileNotFoundError struct {
	Ident string
	Unit  string
	Role  string // "definition form" or "interface form"
	Cause error
}

func (e *FileNotFoundError) Error() string {
	msg := fmt.Sprintf("no %s artifact found for unit %q (needed to locate %q)", e.Role, e.Unit, e.Ident)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *FileNotFoundError) Unwrap() error { return e.Cause }
