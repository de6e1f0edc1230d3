/*
File    : PeanutScript/interp/sentinel.go
Package : interp
*/
package interp

import "github.com/gapples2/PeanutScript/value"

// NoReturn is the no-return sentinel (spec.md §7): an internal String
// value standing in for "this statement form has no meaningful value"
// (absent else-branch, block-form if/for/while, bare `return`'s absent
// expression before it's stringified). It prints without quotes, like any
// other String, and a host REPL/CLI suppresses it when it is a program's
// final value.
var NoReturn = value.NewString("No Return Value, ignore this!")

// IsNoReturn reports whether v is the no-return sentinel, compared by
// text rather than pointer identity since WithPos/WithCtx copy values (so
// a sentinel reaching a caller through a variable is never the same
// pointer as NoReturn itself). A host REPL/CLI uses this to suppress
// printing a program's final value when it carries no meaningful result.
func IsNoReturn(v value.Value) bool {
	s, ok := v.(*value.String)
	return ok && s.Value == NoReturn.Value
}

// Warn receives warning messages emitted during evaluation (e.g. the
// redundant root-level `scoped` notice) without aborting it. The default
// is a no-op; cmd/peanut's main replaces it to print to stderr,
// mirroring how lexer.Interpolator is wired as a package-level hook to
// avoid an import cycle back into the driving package.
var Warn func(message string) = func(string) {}
