/*
File    : PeanutScript/value/ops.go
Package : value

The operator dispatch surface, grounded on the teacher's evaluateBinaryOp
and evalBooleanExpression (eval/eval_expressions.go) but generalized to
Peanut's per-type-pair semantics (spec.md §4.3): arrays, strings, and
numbers each overload +, -, *, / differently instead of sharing a single
numeric-promotion ladder.
*/
package value

import (
	"fmt"
	"math"
)

// RTError is a runtime operator/type error, carried back through interp
// as the error payload of a Result.
type RTError struct {
	Details string
}

func (e *RTError) Error() string { return e.Details }

func typeError(op string, left, right Value) *RTError {
	return &RTError{Details: fmt.Sprintf("illegal operation: %s %s %s", left.Type(), op, right.Type())}
}

// Add implements +. Number+Number adds; String+String concatenates;
// Array+x appends x as a new trailing element (a copy of the array, per
// spec.md's value semantics — Peanut arrays are not shared/mutated in
// place by arithmetic operators).
func Add(left, right Value) (Value, *RTError) {
	switch l := left.(type) {
	case *Number:
		if r, ok := right.(*Number); ok {
			return numericBinOp(l, r, func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b }), nil
		}
	case *String:
		if r, ok := right.(*String); ok {
			return NewString(l.Value + r.Value), nil
		}
	case *Array:
		cp := append(append([]Value{}, l.Elements...), right)
		return NewArray(cp), nil
	}
	return nil, typeError("+", left, right)
}

// Sub implements -. Number-Number subtracts; Array-Number removes the
// element at that index (0-based, negative indexes count from the end).
func Sub(left, right Value) (Value, *RTError) {
	switch l := left.(type) {
	case *Number:
		if r, ok := right.(*Number); ok {
			return numericBinOp(l, r, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b }), nil
		}
	case *Array:
		if r, ok := right.(*Number); ok && !r.IsFloat {
			idx := int(r.IntValue)
			if idx < 0 {
				idx += len(l.Elements)
			}
			if idx < 0 || idx >= len(l.Elements) {
				return nil, &RTError{Details: fmt.Sprintf("array index %d out of range (len %d)", r.IntValue, len(l.Elements))}
			}
			cp := append([]Value{}, l.Elements[:idx]...)
			cp = append(cp, l.Elements[idx+1:]...)
			return NewArray(cp), nil
		}
	}
	return nil, typeError("-", left, right)
}

// Mul implements *. Number*Number multiplies; String*Number repeats the
// string; Array*Array concatenates two arrays into one.
func Mul(left, right Value) (Value, *RTError) {
	switch l := left.(type) {
	case *Number:
		if r, ok := right.(*Number); ok {
			return numericBinOp(l, r, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b }), nil
		}
	case *String:
		if r, ok := right.(*Number); ok && !r.IsFloat {
			// N <= 0 falls straight through to an empty string, matching
			// Python's str * negint == "" (spec.md §4.3).
			out := ""
			for i := int64(0); i < r.IntValue; i++ {
				out += l.Value
			}
			return NewString(out), nil
		}
	case *Array:
		if r, ok := right.(*Array); ok {
			cp := append(append([]Value{}, l.Elements...), r.Elements...)
			return NewArray(cp), nil
		}
	}
	return nil, typeError("*", left, right)
}

// Div implements /. Number/Number divides (div-by-zero is an RTError);
// String/Number indexes a character out as a one-character String;
// Array/Number indexes an element out.
func Div(left, right Value) (Value, *RTError) {
	switch l := left.(type) {
	case *Number:
		if r, ok := right.(*Number); ok {
			if r.AsFloat() == 0 {
				return nil, &RTError{Details: "Division by zero"}
			}
			return numericBinOp(l, r, func(a, b int64) int64 { return a / b }, func(a, b float64) float64 { return a / b }), nil
		}
	case *String:
		if r, ok := right.(*Number); ok && !r.IsFloat {
			idx := int(r.IntValue)
			if idx < 0 {
				idx += len(l.Value)
			}
			if idx < 0 || idx >= len(l.Value) {
				return nil, &RTError{Details: fmt.Sprintf("string index %d out of range (len %d)", r.IntValue, len(l.Value))}
			}
			return NewString(string(l.Value[idx])), nil
		}
	case *Array:
		if r, ok := right.(*Number); ok && !r.IsFloat {
			idx := int(r.IntValue)
			if idx < 0 {
				idx += len(l.Elements)
			}
			if idx < 0 || idx >= len(l.Elements) {
				return nil, &RTError{Details: fmt.Sprintf("array index %d out of range (len %d)", r.IntValue, len(l.Elements))}
			}
			return l.Elements[idx], nil
		}
	}
	return nil, typeError("/", left, right)
}

// Pow implements ^ via math.Pow. The result is an integer Number when both
// operands are integers and the exponent is non-negative, else a float.
func Pow(left, right Value) (Value, *RTError) {
	l, lok := left.(*Number)
	r, rok := right.(*Number)
	if !lok || !rok {
		return nil, typeError("^", left, right)
	}
	result := math.Pow(l.AsFloat(), r.AsFloat())
	if !l.IsFloat && !r.IsFloat && r.IntValue >= 0 {
		return NewInt(int64(result)), nil
	}
	return NewFloat(result), nil
}

// Mod implements % as floored modulo (result always carries the sign of
// the divisor, matching most scripting languages' % rather than Go's
// truncated remainder).
func Mod(left, right Value) (Value, *RTError) {
	l, lok := left.(*Number)
	r, rok := right.(*Number)
	if !lok || !rok {
		return nil, typeError("%", left, right)
	}
	if r.AsFloat() == 0 {
		return nil, &RTError{Details: "Division by zero"}
	}
	if !l.IsFloat && !r.IsFloat {
		m := l.IntValue % r.IntValue
		if m != 0 && (m < 0) != (r.IntValue < 0) {
			m += r.IntValue
		}
		return NewInt(m), nil
	}
	m := math.Mod(l.AsFloat(), r.AsFloat())
	if m != 0 && (m < 0) != (r.AsFloat() < 0) {
		m += r.AsFloat()
	}
	return NewFloat(m), nil
}

func numericBinOp(l, r *Number, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) *Number {
	if l.IsFloat || r.IsFloat {
		return NewFloat(floatOp(l.AsFloat(), r.AsFloat()))
	}
	return NewInt(intOp(l.IntValue, r.IntValue))
}

func boolNumber(b bool) *Number {
	if b {
		return NewInt(1)
	}
	return NewInt(0)
}

// Equals implements == across all value kinds (spec.md: cross-type
// comparisons are simply unequal, never an error).
func Equals(left, right Value) *Number {
	return boolNumber(rawEquals(left, right))
}

func NotEquals(left, right Value) *Number {
	return boolNumber(!rawEquals(left, right))
}

func rawEquals(left, right Value) bool {
	switch l := left.(type) {
	case *Number:
		r, ok := right.(*Number)
		return ok && l.AsFloat() == r.AsFloat()
	case *String:
		r, ok := right.(*String)
		return ok && l.Value == r.Value
	case *Array:
		r, ok := right.(*Array)
		if !ok || len(l.Elements) != len(r.Elements) {
			return false
		}
		for i := range l.Elements {
			if !rawEquals(l.Elements[i], r.Elements[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// LessThan, GreaterThan, and their -or-equal variants only apply to
// Number operands (spec.md §4.3); any other pairing is an RTError.
func LessThan(left, right Value) (Value, *RTError) {
	l, lok := left.(*Number)
	r, rok := right.(*Number)
	if !lok || !rok {
		return nil, typeError("<", left, right)
	}
	return boolNumber(l.AsFloat() < r.AsFloat()), nil
}

func GreaterThan(left, right Value) (Value, *RTError) {
	l, lok := left.(*Number)
	r, rok := right.(*Number)
	if !lok || !rok {
		return nil, typeError(">", left, right)
	}
	return boolNumber(l.AsFloat() > r.AsFloat()), nil
}

func LessThanEquals(left, right Value) (Value, *RTError) {
	l, lok := left.(*Number)
	r, rok := right.(*Number)
	if !lok || !rok {
		return nil, typeError("<=", left, right)
	}
	return boolNumber(l.AsFloat() <= r.AsFloat()), nil
}

func GreaterThanEquals(left, right Value) (Value, *RTError) {
	l, lok := left.(*Number)
	r, rok := right.(*Number)
	if !lok || !rok {
		return nil, typeError(">=", left, right)
	}
	return boolNumber(l.AsFloat() >= r.AsFloat()), nil
}

// And, Or, Not implement the logical keyword operators on truthiness
// (not strictly on Booleans, since Peanut has no separate bool kind).
func And(left, right Value) *Number  { return boolNumber(left.IsTruthy() && right.IsTruthy()) }
func Or(left, right Value) *Number   { return boolNumber(left.IsTruthy() || right.IsTruthy()) }
func Not(v Value) *Number            { return boolNumber(!v.IsTruthy()) }
func Negate(v Value) (Value, *RTError) {
	n, ok := v.(*Number)
	if !ok {
		return nil, &RTError{Details: fmt.Sprintf("illegal operation: -%s", v.Type())}
	}
	if n.IsFloat {
		return NewFloat(-n.FloatValue), nil
	}
	return NewInt(-n.IntValue), nil
}
