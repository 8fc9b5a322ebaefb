// Package trace provides lightweight query tracing for the resolver: a
// tracer interface, a line-oriented stream implementation and a no-op
// singleton for the disabled case.
package trace

import (
	"fmt"
	"time"
)

// Level controls tracing verbosity.
type Level uint8

const (
	// LevelOff disables tracing.
	LevelOff Level = iota
	// LevelQuery emits one event per top-level query.
	LevelQuery
	// LevelUnit adds unit-boundary events: artifact loads, pack recursion.
	LevelUnit
	// LevelProbe adds every filesystem probe and tree-walk step.
	LevelProbe
)

// String returns the string representation of Level.
func (l Level) String() string {
	switch l {
	case LevelQuery:
		return "query"
	case LevelUnit:
		return "unit"
	case LevelProbe:
		return "probe"
	default:
		return "off"
	}
}

// ParseLevel converts a string to a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "off", "":
		return LevelOff, nil
	case "query":
		return LevelQuery, nil
	case "unit":
		return LevelUnit, nil
	case "probe":
		return LevelProbe, nil
	default:
		return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|query|unit|probe)", s)
	}
}

// Event is one trace record.
type Event struct {
	Time   time.Time
	Level  Level  // the level this event belongs to
	Name   string // short operation name ("lookup", "artifact", "probe")
	Detail string
}

// Tracer is the interface for emitting trace events.
type Tracer interface {
	// Emit records an event. Must be goroutine-safe.
	Emit(ev Event)

	// Level returns the current tracing level.
	Level() Level

	// Enabled returns true if tracing is active.
	Enabled() bool
}

// Point emits a single event if the tracer accepts its level.
func Point(t Tracer, level Level, name, format string, args ...any) {
	if t == nil || !t.Enabled() || t.Level() < level {
		return
	}
	t.Emit(Event{
		Time:   time.Now(),
		Level:  level,
		Name:   name,
		Detail: fmt.Sprintf(format, args...),
	})
}
