/*
File    : PeanutScript/interp/control.go
Package : interp

If/For/While, grounded on the teacher's evalForLoop/evalWhileLoop
(eval/eval_loops.go) but rebuilt on the Result channel instead of
sentinel std.BreakType/std.ContinueType objects, per spec.md §4.6.
*/
package interp

import (
	"github.com/gapples2/PeanutScript/parser"
	"github.com/gapples2/PeanutScript/rtctx"
	"github.com/gapples2/PeanutScript/value"
)

// executeBlock runs a NEWLINE-separated statement sequence (an *ArrayNode
// produced by Parser.statements, never an array literal — see eval.go's
// package doc) in order, short-circuiting as soon as a statement's Result
// reports should_return. Otherwise it returns the last statement's Result
// (or a NoReturn value Result for an empty block).
func executeBlock(body *parser.ArrayNode, ctx *rtctx.Context) Result {
	last := ValueResult(NoReturn)
	for _, stmt := range body.Elements {
		r := Eval(stmt, ctx)
		if r.ShouldReturn() {
			return r
		}
		last = r
	}
	return last
}

// evalBody evaluates an If/For/While body: the inline form is a single
// expression/statement Node evaluated directly; the block form runs
// executeBlock and, absent an early return/break/continue/error,
// discards whatever the last statement produced in favor of the
// no-return sentinel (spec.md §4.6: "unless the block-form flag says
// 'return null', in which case return the no-return sentinel").
func evalBody(body parser.Node, isBlock bool, ctx *rtctx.Context) Result {
	if !isBlock {
		return Eval(body, ctx)
	}
	r := executeBlock(body.(*parser.ArrayNode), ctx)
	if r.ShouldReturn() {
		return r
	}
	return ValueResult(NoReturn)
}

func evalIf(n *parser.IfNode, ctx *rtctx.Context) Result {
	for _, c := range n.Cases {
		cond := Eval(c.Condition, ctx)
		if cond.ShouldReturn() {
			return cond
		}
		if cond.Value.IsTruthy() {
			return evalBody(c.Body, c.IsBlock, ctx)
		}
	}
	if n.Else != nil {
		return evalBody(n.Else.Body, n.Else.IsBlock, ctx)
	}
	return ValueResult(NoReturn)
}

func evalWhile(n *parser.WhileNode, ctx *rtctx.Context) Result {
	var results []value.Value
	for {
		cond := Eval(n.Condition, ctx)
		if cond.ShouldReturn() {
			return cond
		}
		if !cond.Value.IsTruthy() {
			break
		}
		r := evalBody(n.Body, n.IsBlock, ctx)
		if r.Err != nil || r.HasFuncReturn {
			return r
		}
		if r.LoopBreak {
			break
		}
		if !n.IsBlock && !r.LoopContinue {
			results = append(results, r.Value)
		}
		// LoopContinue just falls through to the next iteration.
	}
	if n.IsBlock {
		return ValueResult(NoReturn)
	}
	return ValueResult(value.NewArray(results))
}

func evalFor(n *parser.ForNode, ctx *rtctx.Context) Result {
	start := Eval(n.StartValue, ctx)
	if start.ShouldReturn() {
		return start
	}
	end := Eval(n.EndValue, ctx)
	if end.ShouldReturn() {
		return end
	}
	startNum, ok := start.Value.(*value.Number)
	if !ok {
		return errAt(&value.RTError{Details: "for loop start value must be a Number"}, n.StartValue, ctx)
	}
	endNum, ok := end.Value.(*value.Number)
	if !ok {
		return errAt(&value.RTError{Details: "for loop end value must be a Number"}, n.EndValue, ctx)
	}

	step := 1.0
	isFloat := startNum.IsFloat || endNum.IsFloat
	if n.StepValue != nil {
		stepResult := Eval(n.StepValue, ctx)
		if stepResult.ShouldReturn() {
			return stepResult
		}
		stepNum, ok := stepResult.Value.(*value.Number)
		if !ok {
			return errAt(&value.RTError{Details: "for loop step value must be a Number"}, n.StepValue, ctx)
		}
		step = stepNum.AsFloat()
		isFloat = isFloat || stepNum.IsFloat
	}

	var results []value.Value
	i := startNum.AsFloat()
	for (step >= 0 && i < endNum.AsFloat()) || (step < 0 && i > endNum.AsFloat()) {
		var loopVal *value.Number
		if isFloat {
			loopVal = value.NewFloat(i)
		} else {
			loopVal = value.NewInt(int64(i))
		}
		ctx.BindLoopVar(n.VarName, loopVal)

		r := evalBody(n.Body, n.IsBlock, ctx)
		if r.Err != nil || r.HasFuncReturn {
			return r
		}
		if r.LoopBreak {
			break
		}
		if !n.IsBlock && !r.LoopContinue {
			results = append(results, r.Value)
		}
		i += step
	}
	if n.IsBlock {
		return ValueResult(NoReturn)
	}
	return ValueResult(value.NewArray(results))
}
