/*
File    : PeanutScript/interp/eval.go
Package : interp

Package interp is the tree-walking evaluator: a single recursive Eval
function type-switching over every parser.Node variant, grounded on the
teacher's (*Evaluator).Eval dispatcher (eval/eval_expressions.go) but
returning the unified Result channel (spec.md §4.6) instead of a sentinel
std.GoMixObject, and resolving names through rtctx.Context instead of a
flat *scope.Scope.

Node.(*parser.ArrayNode) is load-bearing two ways in the grammar: as an
array literal `[a, b, c]` and as a block body (a NEWLINE-separated
statement sequence produced by Parser.statements). Only the former ever
reaches Eval directly — block bodies are always consumed by executeBlock,
called explicitly from whichever construct knows it is looking at a block
(If/For/While's IsBlock arm, a non-auto-return function body, or the
program root via Run). Eval's *parser.ArrayNode case is therefore safe to
treat unconditionally as an array literal.
*/
package interp

import (
	"fmt"

	"github.com/gapples2/PeanutScript/lexer"
	"github.com/gapples2/PeanutScript/parser"
	"github.com/gapples2/PeanutScript/rtctx"
	"github.com/gapples2/PeanutScript/value"
)

// Eval visits a single AST node under ctx, returning its Result.
func Eval(node parser.Node, ctx *rtctx.Context) Result {
	switch n := node.(type) {
	case *parser.NumberNode:
		return evalNumber(n, ctx)
	case *parser.StringNode:
		return evalString(n, ctx)
	case *parser.ArrayNode:
		return evalArrayLiteral(n, ctx)
	case *parser.VarAssignNode:
		return evalVarAssign(n, ctx)
	case *parser.ScopedAssignNode:
		return evalScopedAssign(n, ctx)
	case *parser.StrictAssignNode:
		return evalStrictAssign(n, ctx)
	case *parser.AccessNode:
		return evalAccess(n, ctx)
	case *parser.BinaryOpNode:
		return evalBinaryOp(n, ctx)
	case *parser.UnaryOpNode:
		return evalUnaryOp(n, ctx)
	case *parser.IfNode:
		return evalIf(n, ctx)
	case *parser.ForNode:
		return evalFor(n, ctx)
	case *parser.WhileNode:
		return evalWhile(n, ctx)
	case *parser.FuncDefNode:
		return evalFuncDef(n, ctx)
	case *parser.CallNode:
		return evalCall(n, ctx)
	case *parser.ReturnNode:
		return evalReturn(n, ctx)
	case *parser.ContinueNode:
		return ContinueResult()
	case *parser.BreakNode:
		return BreakResult()
	default:
		return ErrorResult(&value.RTError{Details: fmt.Sprintf("no evaluation rule for node %T", node)})
	}
}

func evalNumber(n *parser.NumberNode, ctx *rtctx.Context) Result {
	var num *value.Number
	if n.Tok.Type == lexer.FLOAT {
		num = value.NewFloat(n.Tok.Value.(float64))
	} else {
		num = value.NewInt(n.Tok.Value.(int64))
	}
	return ValueResult(num.WithPos(n.PosStart(), n.PosEnd()).WithCtx(ctx))
}

func evalString(n *parser.StringNode, ctx *rtctx.Context) Result {
	s := value.NewString(n.Tok.Value.(string))
	return ValueResult(s.WithPos(n.PosStart(), n.PosEnd()).WithCtx(ctx))
}

func evalArrayLiteral(n *parser.ArrayNode, ctx *rtctx.Context) Result {
	elements := make([]value.Value, 0, len(n.Elements))
	for _, el := range n.Elements {
		r := Eval(el, ctx)
		if r.ShouldReturn() {
			return r
		}
		elements = append(elements, r.Value)
	}
	arr := value.NewArray(elements)
	return ValueResult(arr.WithPos(n.PosStart(), n.PosEnd()).WithCtx(ctx))
}

func evalVarAssign(n *parser.VarAssignNode, ctx *rtctx.Context) Result {
	r := Eval(n.Value, ctx)
	if r.ShouldReturn() {
		return r
	}
	ctx.AssignVar(n.VarName, r.Value)
	return ValueResult(r.Value)
}

func evalScopedAssign(n *parser.ScopedAssignNode, ctx *rtctx.Context) Result {
	r := Eval(n.Value, ctx)
	if r.ShouldReturn() {
		return r
	}
	if warning := ctx.AssignScoped(n.VarName, r.Value); warning != "" {
		Warn(warning)
	}
	return ValueResult(r.Value)
}

func evalStrictAssign(n *parser.StrictAssignNode, ctx *rtctx.Context) Result {
	r := Eval(n.Value, ctx)
	if r.ShouldReturn() {
		return r
	}
	if err := ctx.AssignStrict(n.VarName, n.DeclaredType, r.Value); err != nil {
		return errAt(err, n, ctx)
	}
	return ValueResult(r.Value)
}

func evalAccess(n *parser.AccessNode, ctx *rtctx.Context) Result {
	v, err := ctx.Lookup(n.VarName)
	if err != nil {
		return errAt(err, n, ctx)
	}
	return ValueResult(v.WithPos(n.PosStart(), n.PosEnd()).WithCtx(ctx))
}

func evalReturn(n *parser.ReturnNode, ctx *rtctx.Context) Result {
	if n.Value == nil {
		return ReturnResult(NoReturn)
	}
	r := Eval(n.Value, ctx)
	if r.ShouldReturn() {
		return r
	}
	return ReturnResult(r.Value)
}
