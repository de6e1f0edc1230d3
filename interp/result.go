/*
File    : PeanutScript/interp/result.go
Package : interp

Result is the interpreter's unified control-flow channel (spec.md §4.6): a
disjoint union of {value, error, func_return_value, loop_should_continue,
loop_should_break}. Every Eval call returns one. Go has no sum type, so the
slots are modelled as separate fields with the invariant that at most one
of Err/FuncReturn/Continue/Break is set at a time — ShouldReturn reports
exactly that condition.
*/
package interp

import (
	"github.com/gapples2/PeanutScript/position"
	"github.com/gapples2/PeanutScript/rtctx"
	"github.com/gapples2/PeanutScript/value"
)

// Result carries the outcome of evaluating one AST node. ErrStart/ErrEnd/
// ErrCtx are only meaningful when Err is set: they record where the error
// occurred and the context chain active at that point, for the traceback
// spec.md §7 calls for. They are filled in at the point an error
// originates (see errAt) and simply carried unchanged as the Result
// propagates up through ShouldReturn checks.
type Result struct {
	Value         value.Value
	Err           *value.RTError
	ErrStart      position.Position
	ErrEnd        position.Position
	ErrCtx        *rtctx.Context
	FuncReturn    value.Value
	HasFuncReturn bool
	LoopContinue  bool
	LoopBreak     bool
}

// ValueResult wraps a plain successful value.
func ValueResult(v value.Value) Result { return Result{Value: v} }

// ErrorResult wraps a runtime error with no position information attached
// (used only where no AST node is available at the throw site).
func ErrorResult(err *value.RTError) Result { return Result{Err: err} }

// errAt wraps a runtime error with the node and context it occurred at,
// so the traceback can point at the right source line.
func errAt(err *value.RTError, node interface {
	PosStart() position.Position
	PosEnd() position.Position
}, ctx *rtctx.Context) Result {
	return Result{Err: err, ErrStart: node.PosStart(), ErrEnd: node.PosEnd(), ErrCtx: ctx}
}

// ReturnResult represents a `return EXPR` (or bare `return`, where v is
// the no-return sentinel already).
func ReturnResult(v value.Value) Result { return Result{FuncReturn: v, HasFuncReturn: true} }

// ContinueResult represents a `continue` statement.
func ContinueResult() Result { return Result{LoopContinue: true} }

// BreakResult represents a `break` statement.
func BreakResult() Result { return Result{LoopBreak: true} }

// ShouldReturn reports whether the current visitor must stop combining
// further work and propagate this Result upward unchanged.
func (r Result) ShouldReturn() bool {
	return r.Err != nil || r.HasFuncReturn || r.LoopContinue || r.LoopBreak
}
