/*
File    : PeanutScript/interp/run.go
Package : interp

Run is the single `lex -> parse -> evaluate` pipeline spec.md §6 calls
the entry point `run(fn, text)`, factored into a reusable function per
§9's design note so the lexer's string-interpolation hook can re-enter it
without looping back through a CLI/REPL package (which would create an
import cycle: lexer -> interp -> cmd -> lexer).

Init wires lexer.Interpolator to call back into this same pipeline,
evaluating each `${...}` fragment under the synthetic filename
"INTERPOLATION" against the shared global table, per spec.md §6/§9.
*/
package interp

import (
	"io"

	"github.com/gapples2/PeanutScript/lexer"
	"github.com/gapples2/PeanutScript/parser"
	"github.com/gapples2/PeanutScript/rtctx"
	"github.com/gapples2/PeanutScript/value"
)

var (
	sharedLocked *rtctx.SymbolTable
	sharedGlobal *rtctx.SymbolTable
)

// Init installs the process-wide locked/global symbol tables (normally
// built by the builtin package, which pre-populates global with the
// built-in functions and pre-bound names) and wires string interpolation
// to re-enter this pipeline against those same tables.
func Init(locked, global *rtctx.SymbolTable) {
	sharedLocked = locked
	sharedGlobal = global
	lexer.Interpolator = interpolateFragment
}

// Run lexes, parses, and evaluates text as a complete program named
// fileName, returning its final value or the first error encountered.
// Output/input default to os.Stdout/os.Stdin (see RunIO for redirecting
// them, used by the REPL and TCP server). Must be called after Init.
func Run(fileName, text string) (value.Value, error) {
	return evaluate(fileName, text, sharedLocked, sharedGlobal, nil, nil)
}

// RunIO is Run with an explicit output/input pair, so a caller such as
// the TCP server can give each session its own socket instead of the
// process's real stdio.
func RunIO(fileName, text string, output io.Writer, input io.Reader) (value.Value, error) {
	return evaluate(fileName, text, sharedLocked, sharedGlobal, output, input)
}

// interpolateFragment re-enters the pipeline for a `${...}` fragment.
// Interpolation happens synchronously nested inside whatever evaluate
// call is lexing the enclosing string (spec.md §5), so it always inherits
// that call's tables; it has no Context to read an I/O pair from (the
// lexer's Interpolator hook is a plain string-in/string-out function), so
// it runs against the default stdio. Fragments rarely perform I/O, and a
// program that needs interpolation to use its own stream should avoid
// calling print/input from inside one.
func interpolateFragment(fragment string) (string, error) {
	v, err := evaluate("INTERPOLATION", fragment, sharedLocked, sharedGlobal, nil, nil)
	if err != nil {
		return "", err
	}
	return v.ToString(), nil
}

func evaluate(fileName, text string, locked, global *rtctx.SymbolTable, output io.Writer, input io.Reader) (value.Value, error) {
	lx := lexer.New(fileName, text)
	tokens, err := lx.MakeTokens()
	if err != nil {
		return nil, err
	}
	ast, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}
	ctx := rtctx.NewRootContext(fileName, locked, global, output, input)
	result := executeBlock(ast, ctx)
	if result.Err != nil {
		return nil, newRuntimeError(result.Err, result.ErrStart, result.ErrEnd, result.ErrCtx)
	}
	return result.Value, nil
}
