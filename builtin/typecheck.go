/*
File    : PeanutScript/builtin/typecheck.go
Package : builtin

isNumber/isString/isArray/isFunction/typeof, grounded on original_source's
execute_is_number/execute_is_string/execute_is_array/execute_is_function/
execute_typeof — a straight Go type switch replaces the Python isinstance
chain. typeof's Function arm covers both value.Function and value.BuiltIn,
since Peanut has no separate "built-in" type name in spec.md's external
interface (`typeof(value)` → one of "Number"/"String"/"Array"/"Function"/
"Bool").
*/
package builtin

import "github.com/gapples2/PeanutScript/value"

func boolNumber(b bool) *value.Number {
	if b {
		return value.True
	}
	return value.False
}

func isNumber(args []value.Value, _ interface{}) (value.Value, *value.RTError) {
	_, ok := args[0].(*value.Number)
	return boolNumber(ok), nil
}

func isString(args []value.Value, _ interface{}) (value.Value, *value.RTError) {
	_, ok := args[0].(*value.String)
	return boolNumber(ok), nil
}

func isArray(args []value.Value, _ interface{}) (value.Value, *value.RTError) {
	_, ok := args[0].(*value.Array)
	return boolNumber(ok), nil
}

func isFunction(args []value.Value, _ interface{}) (value.Value, *value.RTError) {
	switch args[0].(type) {
	case *value.Function, *value.BuiltIn:
		return value.True, nil
	default:
		return value.False, nil
	}
}

// typeOf reports one of "Number"/"String"/"Array"/"Function". spec.md §6
// also names "Bool" as a possible result, but Peanut booleans are plain
// Number(0/1) sentinels (spec.md §3) indistinguishable from any other
// Number once copied through a variable access — original_source's own
// is_bool check tests against a distinct Bool class that true/false were
// never actually instances of (they're bound as Number.true/Number.false),
// so that arm was always unreachable there too. This rewrite preserves
// that: typeOf never returns "Bool".
func typeOf(args []value.Value, _ interface{}) (value.Value, *value.RTError) {
	v := args[0]
	switch v.(type) {
	case *value.Number:
		return value.NewString("Number"), nil
	case *value.String:
		return value.NewString("String"), nil
	case *value.Array:
		return value.NewString("Array"), nil
	case *value.Function, *value.BuiltIn:
		return value.NewString("Function"), nil
	default:
		return value.NewString("That's strange, this value has no type."), nil
	}
}
