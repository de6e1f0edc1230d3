/*
File    : PeanutScript/builtin/collections.go
Package : builtin

append/removeIndex/concat/length. original_source registers these four
names (BuiltInFunction.append/.remove/.concat/.len) but never defines an
execute_append/execute_remove/execute_concat method for the first three —
calling any of them hits the interpreter's no_visit_method and raises,
so in the reference implementation they are permanently broken aliases.
The evident intent (the names, and that Array already overloads +/-/* for
exactly append/remove-at-index/concat per spec.md §4.3) is to expose
those same operations as ordinary callables; this rewrite wires them to
value.Add/Sub/Mul directly instead of leaving them dead. length mirrors
original_source's execute_len, generalized to spec.md's "array_or_string"
wording.
*/
package builtin

import "github.com/gapples2/PeanutScript/value"

func appendFn(args []value.Value, _ interface{}) (value.Value, *value.RTError) {
	if _, ok := args[0].(*value.Array); !ok {
		return nil, &value.RTError{Details: "first argument to `append` must be an array"}
	}
	return value.Add(args[0], args[1])
}

func removeIndex(args []value.Value, _ interface{}) (value.Value, *value.RTError) {
	if _, ok := args[0].(*value.Array); !ok {
		return nil, &value.RTError{Details: "first argument to `removeIndex` must be an array"}
	}
	if _, ok := args[1].(*value.Number); !ok {
		return nil, &value.RTError{Details: "second argument to `removeIndex` must be a Number"}
	}
	return value.Sub(args[0], args[1])
}

func concat(args []value.Value, _ interface{}) (value.Value, *value.RTError) {
	if _, ok := args[0].(*value.Array); !ok {
		return nil, &value.RTError{Details: "first argument to `concat` must be an array"}
	}
	if _, ok := args[1].(*value.Array); !ok {
		return nil, &value.RTError{Details: "second argument to `concat` must be an array"}
	}
	return value.Mul(args[0], args[1])
}

func length(args []value.Value, _ interface{}) (value.Value, *value.RTError) {
	switch v := args[0].(type) {
	case *value.Array:
		return value.NewInt(int64(len(v.Elements))), nil
	case *value.String:
		return value.NewInt(int64(len(v.Value))), nil
	default:
		return nil, &value.RTError{Details: "argument must be an array or string"}
	}
}
