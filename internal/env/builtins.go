package env

import (
	"lumen/internal/sym"
)

// The Lumen primitives have no user-visible declaration; looking one up
// must short-circuit without touching the filesystem.

var builtinTypes = []string{
	"int", "float", "bool", "char", "string", "bytes",
	"unit", "list", "array", "option", "result", "exn",
}

var builtinConstructors = []string{
	"true", "false", "none", "some", "ok", "error", "nil", "cons",
}

var builtinValues = []string{
	"raise", "ignore",
}

func registerBuiltins(e *Env) {
	for _, name := range builtinTypes {
		e.Bind(sym.NsType, name, sym.Descriptor{
			Path:    sym.MakePath(false, name),
			Builtin: true,
		})
	}
	for _, name := range builtinConstructors {
		e.Bind(sym.NsConstructor, name, sym.Descriptor{
			Path:    sym.MakePath(false, name),
			Builtin: true,
		})
	}
	for _, name := range builtinValues {
		e.Bind(sym.NsValue, name, sym.Descriptor{
			Path:    sym.MakePath(false, name),
			Builtin: true,
		})
	}
}
