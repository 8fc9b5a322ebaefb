package locate

import (
	"lumen/internal/env"
	"lumen/internal/sym"
)

// Each context implies a fixed namespace probe order; the first namespace
// that knows the identifier wins.
var nsOrder = map[ContextKind][]sym.Namespace{
	CtxType: {
		sym.NsType, sym.NsModule, sym.NsModuleType,
		sym.NsConstructor, sym.NsLabel, sym.NsValue,
	},
	CtxModuleType: {
		sym.NsModuleType, sym.NsModule, sym.NsType,
		sym.NsConstructor, sym.NsLabel, sym.NsValue,
	},
	CtxExpr: {
		sym.NsValue, sym.NsModule, sym.NsModuleType,
		sym.NsConstructor, sym.NsLabel, sym.NsType,
	},
	CtxPattern: {
		sym.NsValue, sym.NsModule, sym.NsModuleType,
		sym.NsConstructor, sym.NsLabel, sym.NsType,
	},
	CtxUnknown: {
		sym.NsValue, sym.NsType, sym.NsConstructor,
		sym.NsModule, sym.NsModuleType, sym.NsLabel,
	},
	CtxLabel:       {sym.NsLabel, sym.NsModule},
	CtxConstructor: {sym.NsConstructor, sym.NsModule},
	CtxModulePath:  {sym.NsModule},
}

// lookupOrdered resolves the identifier against the environment in the
// context's namespace order. Constructor and label contexts return their
// attached descriptor without touching the environment.
func lookupOrdered(ctx Context, ident string, e *env.Env) (sym.Descriptor, bool) {
	if (ctx.Kind == CtxConstructor || ctx.Kind == CtxLabel) && ctx.Desc != nil {
		return *ctx.Desc, true
	}
	if e == nil {
		return sym.Descriptor{}, false
	}
	for _, ns := range nsOrder[ctx.Kind] {
		if d, ok := e.Lookup(ns, ident); ok {
			return d, true
		}
	}
	return sym.Descriptor{}, false
}
