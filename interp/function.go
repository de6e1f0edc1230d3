/*
File    : PeanutScript/interp/function.go
Package : interp

FuncDef and Call, grounded on spec.md §4.5. Default argument literals are
stored as lexer.Token at parse time (parser.FuncDefNode.ArgDefaults) and
converted to value.Value here, at definition time, not at call time — the
teacher's function.Function captures a *scope.Scope at definition for the
same reason (closures see the defining scope, not the call site).
*/
package interp

import (
	"fmt"

	"github.com/gapples2/PeanutScript/lexer"
	"github.com/gapples2/PeanutScript/parser"
	"github.com/gapples2/PeanutScript/rtctx"
	"github.com/gapples2/PeanutScript/value"
)

func evalFuncDef(n *parser.FuncDefNode, ctx *rtctx.Context) Result {
	defaults := make([]value.Value, len(n.ArgDefaults))
	for i, tok := range n.ArgDefaults {
		if tok.Type == "" {
			continue
		}
		defaults[i] = literalTokenToValue(tok)
	}
	fn := value.NewFunction(n.Name, n.ArgNames, defaults, n.Body, n.AutoReturn, ctx)
	result := fn.WithPos(n.PosStart(), n.PosEnd()).WithCtx(ctx)
	if n.Name != "" {
		ctx.AssignVar(n.Name, result)
	}
	return ValueResult(result)
}

func literalTokenToValue(tok lexer.Token) value.Value {
	switch tok.Type {
	case lexer.INT:
		return value.NewInt(tok.Value.(int64))
	case lexer.FLOAT:
		return value.NewFloat(tok.Value.(float64))
	case lexer.STRING:
		return value.NewString(tok.Value.(string))
	default:
		return nil
	}
}

// requiredParamCount returns the index of the first defaulted trailing
// parameter, i.e. the number of arguments that must always be supplied
// (spec.md §4.5: required = |params| - |defaults|).
func requiredParamCount(defaults []value.Value) int {
	for i, d := range defaults {
		if d != nil {
			return i
		}
	}
	return len(defaults)
}

func evalCall(n *parser.CallNode, ctx *rtctx.Context) Result {
	calleeResult := Eval(n.Callee, ctx)
	if calleeResult.ShouldReturn() {
		return calleeResult
	}

	args := make([]value.Value, 0, len(n.Args))
	for _, argNode := range n.Args {
		r := Eval(argNode, ctx)
		if r.ShouldReturn() {
			return r
		}
		args = append(args, r.Value)
	}

	switch callee := calleeResult.Value.(type) {
	case *value.BuiltIn:
		return callBuiltIn(callee, args, ctx, n)
	case *value.Function:
		return callFunction(callee, args, ctx, n)
	default:
		return errAt(&value.RTError{Details: fmt.Sprintf("'%s' is not callable", calleeResult.Value.Type())}, n, ctx)
	}
}

func callBuiltIn(fn *value.BuiltIn, args []value.Value, ctx *rtctx.Context, call *parser.CallNode) Result {
	if fn.Arity >= 0 {
		if len(args) > fn.Arity {
			return errAt(&value.RTError{Details: fmt.Sprintf("%d too many args", len(args)-fn.Arity)}, call, ctx)
		}
		if len(args) < fn.Arity {
			return errAt(&value.RTError{Details: fmt.Sprintf("%d too few args", fn.Arity-len(args))}, call, ctx)
		}
	}
	v, err := fn.Fn(args, ctx)
	if err != nil {
		return errAt(err, call, ctx)
	}
	return ValueResult(v.WithPos(call.PosStart(), call.PosEnd()).WithCtx(ctx))
}

func callFunction(fn *value.Function, args []value.Value, callerCtx *rtctx.Context, call *parser.CallNode) Result {
	required := requiredParamCount(fn.ArgDefaults)
	if len(args) > len(fn.ArgNames) {
		return errAt(&value.RTError{Details: fmt.Sprintf("%d too many args", len(args)-len(fn.ArgNames))}, call, callerCtx)
	}
	if len(args) < required {
		return errAt(&value.RTError{Details: fmt.Sprintf("%d too few args", required-len(args))}, call, callerCtx)
	}

	parentCtx, ok := fn.ParentContext.(*rtctx.Context)
	if !ok || parentCtx == nil {
		return errAt(&value.RTError{Details: "function has no captured context"}, call, callerCtx)
	}

	name := fn.Name
	if name == "" {
		name = "<anonymous>"
	}
	callCtx := parentCtx.Child(name, parentCtx.Table, call.PosStart())

	for i, argName := range fn.ArgNames {
		var v value.Value
		if i < len(args) {
			v = args[i]
		} else {
			v = fn.ArgDefaults[i]
		}
		callCtx.BindLoopVar(argName, v)
	}

	bodyResult := evalFunctionBody(fn.Body, fn.AutoReturn, callCtx)
	if bodyResult.Err != nil {
		return bodyResult
	}
	return ValueResult(bodyResult.Value.WithPos(call.PosStart(), call.PosEnd()).WithCtx(callerCtx))
}

// evalFunctionBody implements spec.md §4.5 step 7: auto-return yields the
// body expression's value directly; block form yields the explicit
// return's value, or the null Number sentinel (value.Zero) if the body
// completed without one — distinct from the no-return String sentinel
// used by bodyless If/For/While block forms.
func evalFunctionBody(body parser.Node, autoReturn bool, ctx *rtctx.Context) Result {
	if autoReturn {
		return Eval(body, ctx)
	}
	r := executeBlock(body.(*parser.ArrayNode), ctx)
	if r.Err != nil {
		return r
	}
	if r.HasFuncReturn {
		return ValueResult(r.FuncReturn)
	}
	return ValueResult(value.Zero)
}
