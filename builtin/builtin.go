/*
File    : PeanutScript/builtin/builtin.go
Package : builtin

Package builtin is the static name-indexed registry spec.md §9 calls for:
"a static map from name to a function pointer plus an argument-name
list; built-in dispatch is by name-indexed table lookup, not dynamic
method resolution on a value." Grounded on the teacher's std.Builtins
(std/builtins.go) — a package-level slice of *Builtin appended to by each
file's init() — adapted to Peanut's value.BuiltIn shape (which carries a
fixed Arity instead of an arg-name list, since Peanut's interp already
validates arity against the callee before invoking Fn).

NewTables builds the process-wide locked/global symbol tables (spec.md
§4.4/§9: "process-wide singletons with explicit init/teardown at program
boundaries") pre-populated with every built-in and every pre-bound global
name spec.md §6 lists. Nothing is ever written into the locked table here
— it starts empty and is only ever populated at runtime by root-level
`scoped` assignments (spec.md §4.4).
*/
package builtin

import (
	"github.com/gapples2/PeanutScript/rtctx"
	"github.com/gapples2/PeanutScript/value"
)

// registry lists every built-in name bound into the global table,
// mirroring the teacher's commonMethods/fileMethods slices but keyed to
// spec.md §6's exact built-in name list.
var registry = []*value.BuiltIn{
	value.NewBuiltIn("print", 1, print),
	value.NewBuiltIn("printReturn", 1, printReturn),
	value.NewBuiltIn("input", 0, input),
	value.NewBuiltIn("inputNumber", 0, inputNumber),
	value.NewBuiltIn("cls", 0, cls),

	value.NewBuiltIn("isNumber", 1, isNumber),
	value.NewBuiltIn("isString", 1, isString),
	value.NewBuiltIn("isArray", 1, isArray),
	value.NewBuiltIn("isFunction", 1, isFunction),
	value.NewBuiltIn("typeof", 1, typeOf),

	value.NewBuiltIn("append", 2, appendFn),
	value.NewBuiltIn("removeIndex", 2, removeIndex),
	value.NewBuiltIn("concat", 2, concat),
	value.NewBuiltIn("length", 1, length),

	value.NewBuiltIn("time", 0, timeFn),

	value.NewBuiltIn("b64Encode", 1, b64Encode),
	value.NewBuiltIn("b64Decode", 1, b64Decode),
	value.NewBuiltIn("toUnicode", 1, toUnicode),
	value.NewBuiltIn("fromUnicode", 1, fromUnicode),
	value.NewBuiltIn("formatNumber", 1, formatNumber),

	value.NewBuiltIn("run", 1, runScript),
	value.NewBuiltIn("use", 1, useScript),
	value.NewBuiltIn("read", 1, readScript),
}

// preBound lists spec.md §6's "Global pre-bound names" — plain value
// bindings rather than callables.
func preBound() map[string]value.Value {
	return map[string]value.Value{
		"NO_RETURN":    noReturn,
		"ZERO":         value.Zero,
		"FALSE_VALUE":  value.False,
		"TRUE_VALUE":   value.True,
		"false":        value.False,
		"true":         value.True,
		"INFINITY":     value.Infinity,
		"NEGATIVE_INF": value.NegInfinity,
	}
}

// noReturn carries the same text as interp.NoReturn. It is a separate
// value rather than interp.NoReturn itself; that is enough because the
// sentinel's identity is defined purely by its text (interp.IsNoReturn
// compares text, per spec.md §7).
var noReturn = value.NewString("No Return Value, ignore this!")

// NewTables constructs the process-wide locked and global symbol tables,
// with global pre-populated by every built-in and pre-bound name. Call
// once at program startup and pass the results to interp.Init.
func NewTables() (locked, global *rtctx.SymbolTable) {
	locked = rtctx.NewSymbolTable(nil)
	global = rtctx.NewSymbolTable(nil)

	for name, v := range preBound() {
		global.Set(name, &rtctx.Entry{Value: v})
	}
	for _, b := range registry {
		global.Set(b.Name, &rtctx.Entry{Value: b})
	}
	return locked, global
}
