package builtin

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gapples2/PeanutScript/interp"
	"github.com/gapples2/PeanutScript/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freshTables(t *testing.T) {
	t.Helper()
	locked, global := NewTables()
	interp.Init(locked, global)
}

func TestNewTables_RegistersBuiltInsAndPreBound(t *testing.T) {
	freshTables(t)
	v, err := interp.Run("<test>", "print(1 + 2)")
	require.NoError(t, err)
	_ = v

	v, err = interp.Run("<test>", "NO_RETURN")
	require.NoError(t, err)
	assert.True(t, interp.IsNoReturn(v))
}

func TestPrint_WritesDisplayStringAndReturnsNoReturn(t *testing.T) {
	freshTables(t)
	var buf bytes.Buffer
	v, err := interp.RunIO("<test>", `print("hi")`, &buf, strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "hi", buf.String())
	assert.Equal(t, "No Return Value, ignore this!", v.ToString())
}

func TestPrintReturn_DoesNotWriteButReturnsString(t *testing.T) {
	freshTables(t)
	var buf bytes.Buffer
	v, err := interp.RunIO("<test>", `printReturn(42)`, &buf, strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "", buf.String())
	assert.Equal(t, "42", v.ToString())
}

func TestAppendRemoveConcat(t *testing.T) {
	freshTables(t)
	v, err := interp.Run("<test>", "length(append([1,2], 3))")
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.(*value.Number).IntValue)

	v, err = interp.Run("<test>", "removeIndex([1,2,3], 1)")
	require.NoError(t, err)
	arr := v.(*value.Array)
	require.Len(t, arr.Elements, 2)
	assert.Equal(t, int64(1), arr.Elements[0].(*value.Number).IntValue)
	assert.Equal(t, int64(3), arr.Elements[1].(*value.Number).IntValue)

	v, err = interp.Run("<test>", "length(concat([1,2], [3,4]))")
	require.NoError(t, err)
	assert.Equal(t, int64(4), v.(*value.Number).IntValue)
}

func TestIsNumberIsStringIsArrayIsFunction(t *testing.T) {
	freshTables(t)
	v, err := interp.Run("<test>", "isNumber(1)")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.(*value.Number).IntValue)

	v, err = interp.Run("<test>", `isString("x")`)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.(*value.Number).IntValue)

	v, err = interp.Run("<test>", "isArray(1)")
	require.NoError(t, err)
	assert.Equal(t, int64(0), v.(*value.Number).IntValue)

	v, err = interp.Run("<test>", "function f() => 1\nisFunction(f)")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.(*value.Number).IntValue)
}

func TestTypeOf(t *testing.T) {
	freshTables(t)
	v, err := interp.Run("<test>", "typeof(1)")
	require.NoError(t, err)
	assert.Equal(t, "Number", v.(*value.String).Value)

	v, err = interp.Run("<test>", `typeof("x")`)
	require.NoError(t, err)
	assert.Equal(t, "String", v.(*value.String).Value)

	v, err = interp.Run("<test>", "typeof([1])")
	require.NoError(t, err)
	assert.Equal(t, "Array", v.(*value.String).Value)
}

func TestBase64RoundTrip(t *testing.T) {
	freshTables(t)
	v, err := interp.Run("<test>", `b64Decode(b64Encode("hello world"))`)
	require.NoError(t, err)
	assert.Equal(t, "hello world", v.(*value.String).Value)
}

func TestUnicodeRoundTrip(t *testing.T) {
	freshTables(t)
	v, err := interp.Run("<test>", "fromUnicode(toUnicode(65))")
	require.NoError(t, err)
	assert.Equal(t, int64(65), v.(*value.Number).IntValue)
}

func TestToUnicode_RejectsOutOfRange(t *testing.T) {
	freshTables(t)
	_, err := interp.Run("<test>", "toUnicode(99999999)")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "1111998"))
}

func TestFormatNumber(t *testing.T) {
	freshTables(t)
	v, err := interp.Run("<test>", "formatNumber(1500)")
	require.NoError(t, err)
	assert.Contains(t, v.(*value.String).Value, "e+")
}

func TestPreBoundGlobals(t *testing.T) {
	freshTables(t)
	v, err := interp.Run("<test>", "true")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.(*value.Number).IntValue)

	v, err = interp.Run("<test>", "ZERO")
	require.NoError(t, err)
	assert.Equal(t, int64(0), v.(*value.Number).IntValue)
}

func TestInput_ReadsOneLinePerCall(t *testing.T) {
	freshTables(t)
	var buf bytes.Buffer
	v, err := interp.RunIO("<test>", "input() + input()", &buf, strings.NewReader("ab\ncd\n"))
	require.NoError(t, err)
	assert.Equal(t, "abcd", v.(*value.String).Value)
}

func TestInputNumber_SkipsNonNumericLines(t *testing.T) {
	freshTables(t)
	var buf bytes.Buffer
	v, err := interp.RunIO("<test>", "inputNumber()", &buf, strings.NewReader("notanumber\n42\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), v.(*value.Number).IntValue)
	assert.Contains(t, buf.String(), "Input must be a Number!")
}

func TestUseScript_SharesGlobalsWithCaller(t *testing.T) {
	freshTables(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "lib.peanut")
	require.NoError(t, os.WriteFile(path, []byte("var shared = 99"), 0o644))

	var buf bytes.Buffer
	v, err := interp.RunIO("<test>", `use("`+path+`")
shared`, &buf, strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, int64(99), v.(*value.Number).IntValue)
}

func TestReadScript_ReturnsRawContentsWithoutExecuting(t *testing.T) {
	freshTables(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "lib.peanut")
	require.NoError(t, os.WriteFile(path, []byte("var shared = 99"), 0o644))

	v, err := interp.Run("<test>", `read("`+path+`")`)
	require.NoError(t, err)
	assert.Equal(t, "var shared = 99", v.(*value.String).Value)
}

func TestArityMismatchIsRuntimeError(t *testing.T) {
	freshTables(t)
	_, err := interp.Run("<test>", "print(1, 2)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many args")
}
