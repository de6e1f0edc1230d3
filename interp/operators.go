/*
File    : PeanutScript/interp/operators.go
Package : interp

Maps a BinaryOpNode/UnaryOpNode's operator token onto the value package's
operator-dispatch functions. Grounded on the teacher's evalBinaryExpression
/ evalUnaryExpression (eval/eval_expressions.go), generalized from int/
float promotion to the per-kind-pair dispatch value.Add/Sub/... already
implement.

and/or evaluate both operands unconditionally (spec.md §4.3: short-circuit
is permitted but not required, and not evaluating the right-hand side
would change observable side effects for an impure operand — so neither
is short-circuited here).
*/
package interp

import (
	"fmt"

	"github.com/gapples2/PeanutScript/lexer"
	"github.com/gapples2/PeanutScript/parser"
	"github.com/gapples2/PeanutScript/rtctx"
	"github.com/gapples2/PeanutScript/value"
)

func evalBinaryOp(n *parser.BinaryOpNode, ctx *rtctx.Context) Result {
	left := Eval(n.Left, ctx)
	if left.ShouldReturn() {
		return left
	}
	right := Eval(n.Right, ctx)
	if right.ShouldReturn() {
		return right
	}

	var result value.Value
	var err *value.RTError

	switch {
	case n.OpTok.Matches(lexer.KEYWORD, "and"):
		result = value.And(left.Value, right.Value)
	case n.OpTok.Matches(lexer.KEYWORD, "or"):
		result = value.Or(left.Value, right.Value)
	default:
		switch n.OpTok.Type {
		case lexer.PLUS:
			result, err = value.Add(left.Value, right.Value)
		case lexer.MINUS:
			result, err = value.Sub(left.Value, right.Value)
		case lexer.MUL:
			result, err = value.Mul(left.Value, right.Value)
		case lexer.DIV:
			result, err = value.Div(left.Value, right.Value)
		case lexer.MOD:
			result, err = value.Mod(left.Value, right.Value)
		case lexer.POW:
			result, err = value.Pow(left.Value, right.Value)
		case lexer.EE:
			result = value.Equals(left.Value, right.Value)
		case lexer.NE:
			result = value.NotEquals(left.Value, right.Value)
		case lexer.LT:
			result, err = value.LessThan(left.Value, right.Value)
		case lexer.GT:
			result, err = value.GreaterThan(left.Value, right.Value)
		case lexer.LTE:
			result, err = value.LessThanEquals(left.Value, right.Value)
		case lexer.GTE:
			result, err = value.GreaterThanEquals(left.Value, right.Value)
		default:
			err = &value.RTError{Details: fmt.Sprintf("unsupported binary operator %s", n.OpTok)}
		}
	}
	if err != nil {
		return errAt(err, n, ctx)
	}
	return ValueResult(result.WithPos(n.PosStart(), n.PosEnd()).WithCtx(ctx))
}

func evalUnaryOp(n *parser.UnaryOpNode, ctx *rtctx.Context) Result {
	operand := Eval(n.Node, ctx)
	if operand.ShouldReturn() {
		return operand
	}

	var result value.Value
	var err *value.RTError

	switch {
	case n.OpTok.Matches(lexer.KEYWORD, "not"):
		result = value.Not(operand.Value)
	case n.OpTok.Type == lexer.MINUS:
		result, err = value.Negate(operand.Value)
	case n.OpTok.Type == lexer.PLUS:
		result = operand.Value
	default:
		err = &value.RTError{Details: fmt.Sprintf("unsupported unary operator %s", n.OpTok)}
	}
	if err != nil {
		return errAt(err, n, ctx)
	}
	return ValueResult(result.WithPos(n.PosStart(), n.PosEnd()).WithCtx(ctx))
}
