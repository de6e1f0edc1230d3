/*
File    : PeanutScript/builtin/encoding.go
Package : builtin

b64Encode/b64Decode/toUnicode/fromUnicode/formatNumber, grounded on
original_source's execute_base64_encode/execute_base64_decode/
execute_number_to_unicode/execute_unicode_to_number/execute_format_number.

spec.md §9 flags that the reference `b64Decode` re-encodes its input and
then decodes that, making it a no-op round-trip rather than a true
inverse of `b64Encode` (spec.md §8's round-trip law
`b64Decode(b64Encode(s)) == s` only happens to hold there by accident,
since b64Decode(x) == x for any x). This rewrite implements the evidently
intended behavior: b64Decode plain-decodes its argument.
*/
package builtin

import (
	"encoding/base64"
	"fmt"
	"math"

	"github.com/gapples2/PeanutScript/value"
)

func b64Encode(args []value.Value, _ interface{}) (value.Value, *value.RTError) {
	s, ok := args[0].(*value.String)
	if !ok {
		return nil, &value.RTError{Details: "argument must be a string"}
	}
	return value.NewString(base64.StdEncoding.EncodeToString([]byte(s.Value))), nil
}

func b64Decode(args []value.Value, _ interface{}) (value.Value, *value.RTError) {
	s, ok := args[0].(*value.String)
	if !ok {
		return nil, &value.RTError{Details: "argument must be a string"}
	}
	decoded, err := base64.StdEncoding.DecodeString(s.Value)
	if err != nil {
		return nil, &value.RTError{Details: fmt.Sprintf("invalid base64: %v", err)}
	}
	return value.NewString(string(decoded)), nil
}

const maxUnicodePoint = 1111998

func toUnicode(args []value.Value, _ interface{}) (value.Value, *value.RTError) {
	n, ok := args[0].(*value.Number)
	if !ok || n.IsFloat || n.IntValue > maxUnicodePoint || n.IntValue < 0 {
		return nil, &value.RTError{Details: fmt.Sprintf("argument must be an integer Number from 0 to %d", maxUnicodePoint)}
	}
	return value.NewString(string(rune(n.IntValue))), nil
}

func fromUnicode(args []value.Value, _ interface{}) (value.Value, *value.RTError) {
	s, ok := args[0].(*value.String)
	if !ok {
		return nil, &value.RTError{Details: "argument must be a 1-Character String"}
	}
	runes := []rune(s.Value)
	if len(runes) != 1 {
		return nil, &value.RTError{Details: "argument must be a 1-Character String"}
	}
	return value.NewInt(int64(runes[0])), nil
}

// formatNumber renders n in scientific "Me+E" form, matching
// original_source's f"{mantissa}e{exponent}" (always base-10,
// Go's %g gives the mantissa's natural precision rather than Python's).
func formatNumber(args []value.Value, _ interface{}) (value.Value, *value.RTError) {
	n, ok := args[0].(*value.Number)
	if !ok {
		return nil, &value.RTError{Details: "argument must be a Number"}
	}
	f := n.AsFloat()
	if f == 0 {
		return value.NewString("0e+00"), nil
	}
	exponent := math.Floor(math.Log10(math.Abs(f)))
	mantissa := f / math.Pow(10, exponent)
	return value.NewString(fmt.Sprintf("%ge%+d", mantissa, int(exponent))), nil
}
