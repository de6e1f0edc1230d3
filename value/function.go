/*
File    : PeanutScript/value/function.go
Package : value

Function and BuiltIn are the two callable Value kinds. Grounded on the
teacher's function.Function (function/function.go), generalized to carry
trailing-parameter defaults (spec.md §4.5) and an opaque captured context
instead of a concrete *scope.Scope — value cannot import rtctx (rtctx
itself holds Values in its symbol tables), so ParentContext is threaded
through as interface{} and type-asserted back to *rtctx.Context by the
interp package at call time.
*/
package value

import (
	"fmt"

	"github.com/gapples2/PeanutScript/parser"
	"github.com/gapples2/PeanutScript/position"
)

// Function is a user-defined Peanut function: a name, parameter list
// (with optional trailing literal defaults), a body node, and the
// context it closed over at definition time.
type Function struct {
	base
	Name           string
	ArgNames       []string
	ArgDefaults    []Value // nil entry = no default for that trailing parameter
	Body           parser.Node
	AutoReturn     bool
	ParentContext  interface{}
}

func NewFunction(name string, argNames []string, argDefaults []Value, body parser.Node, autoReturn bool, parentCtx interface{}) *Function {
	return &Function{Name: name, ArgNames: argNames, ArgDefaults: argDefaults, Body: body, AutoReturn: autoReturn, ParentContext: parentCtx}
}

func (f *Function) Type() Type { return FunctionType }

func (f *Function) ToString() string {
	name := f.Name
	if name == "" {
		name = "<anonymous>"
	}
	return fmt.Sprintf("<function %s>", name)
}

func (f *Function) Inspect() string { return f.ToString() }

func (f *Function) IsTruthy() bool { return true }

func (f *Function) WithPos(start, end position.Position) Value {
	cp := *f
	cp.start, cp.end = start, end
	return &cp
}

func (f *Function) WithCtx(ctx Context) Value {
	cp := *f
	cp.ctx = ctx
	return &cp
}

// BuiltIn is a natively-implemented function (print, length, b64Encode,
// ...). Fn receives already-evaluated arguments and the opaque calling
// context (a *rtctx.Context; builtins such as print, input and run/use
// read its Output/Input — see builtin's contextOf).
type BuiltInFunc func(args []Value, callCtx interface{}) (Value, *RTError)

type BuiltIn struct {
	base
	Name string
	Fn   BuiltInFunc
	// Arity is the fixed number of arguments this builtin expects, or -1
	// for variable arity (Fn itself validates the count in that case).
	Arity int
}

func NewBuiltIn(name string, arity int, fn BuiltInFunc) *BuiltIn {
	return &BuiltIn{Name: name, Arity: arity, Fn: fn}
}

func (b *BuiltIn) Type() Type { return BuiltInType }

func (b *BuiltIn) ToString() string { return fmt.Sprintf("<builtin %s>", b.Name) }

func (b *BuiltIn) Inspect() string { return b.ToString() }

func (b *BuiltIn) IsTruthy() bool { return true }

func (b *BuiltIn) WithPos(start, end position.Position) Value {
	cp := *b
	cp.start, cp.end = start, end
	return &cp
}

func (b *BuiltIn) WithCtx(ctx Context) Value {
	cp := *b
	cp.ctx = ctx
	return &cp
}
