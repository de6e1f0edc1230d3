package interp

import (
	"testing"

	"github.com/gapples2/PeanutScript/rtctx"
	"github.com/gapples2/PeanutScript/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freshTables(t *testing.T) {
	t.Helper()
	Init(rtctx.NewSymbolTable(nil), rtctx.NewSymbolTable(nil))
}

func TestRun_ArithmeticPrecedence(t *testing.T) {
	freshTables(t)
	v, err := Run("<test>", "var a = 2 + 3 * 4\na")
	require.NoError(t, err)
	assert.Equal(t, int64(14), v.(*value.Number).IntValue)
}

func TestRun_FunctionAutoReturn(t *testing.T) {
	freshTables(t)
	v, err := Run("<test>", "function add(a, b) => a + b\nadd(2, 3)")
	require.NoError(t, err)
	assert.Equal(t, int64(5), v.(*value.Number).IntValue)
}

func TestRun_FunctionBlockFormWithExplicitReturn(t *testing.T) {
	freshTables(t)
	src := "function add(a, b)\nreturn a + b\nend\nadd(2, 3)"
	v, err := Run("<test>", src)
	require.NoError(t, err)
	assert.Equal(t, int64(5), v.(*value.Number).IntValue)
}

func TestRun_FunctionBlockFormWithoutReturnYieldsZero(t *testing.T) {
	freshTables(t)
	src := "function noop()\n1 + 1\nend\nnoop()"
	v, err := Run("<test>", src)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v.(*value.Number).IntValue)
}

func TestRun_FunctionDefaults(t *testing.T) {
	freshTables(t)
	src := "function greet(name = \"world\") => name\ngreet()"
	v, err := Run("<test>", src)
	require.NoError(t, err)
	assert.Equal(t, "world", v.(*value.String).Value)
}

func TestRun_ForInlineAccumulatesArray(t *testing.T) {
	freshTables(t)
	v, err := Run("<test>", "for i = 0 until 3 => i")
	require.NoError(t, err)
	arr := v.(*value.Array)
	require.Len(t, arr.Elements, 3)
	assert.Equal(t, int64(0), arr.Elements[0].(*value.Number).IntValue)
	assert.Equal(t, int64(2), arr.Elements[2].(*value.Number).IntValue)
}

func TestRun_ForBlockFormReturnsNoReturn(t *testing.T) {
	freshTables(t)
	src := "for i = 0 until 3 then\nend\n1"
	v, err := Run("<test>", src)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.(*value.Number).IntValue)

	v, err = Run("<test>", "for i = 0 until 3 then\nend")
	require.NoError(t, err)
	assert.True(t, IsNoReturn(v))
}

func TestRun_WhileLoop(t *testing.T) {
	freshTables(t)
	src := "var i = 0\nwhile i < 3 then\nvar i = i + 1\nend\ni"
	v, err := Run("<test>", src)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.(*value.Number).IntValue)
}

func TestRun_IfElifElse(t *testing.T) {
	freshTables(t)
	src := "var x = 2\nif x == 1 then \"one\" elif x == 2 then \"two\" else \"other\""
	v, err := Run("<test>", src)
	require.NoError(t, err)
	assert.Equal(t, "two", v.(*value.String).Value)
}

func TestRun_BreakStopsLoopEarly(t *testing.T) {
	freshTables(t)
	src := "for i = 0 until 10 then\nif i == 2 then break\nend\ni"
	v, err := Run("<test>", src)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.(*value.Number).IntValue)
}

func TestRun_DivisionByZeroIsRuntimeError(t *testing.T) {
	freshTables(t)
	_, err := Run("<test>", "1 / 0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Division by zero")
}

func TestRun_UndefinedNameIsRuntimeError(t *testing.T) {
	freshTables(t)
	_, err := Run("<test>", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not defined or not in this scope")
}

func TestRun_StringInterpolation(t *testing.T) {
	freshTables(t)
	v, err := Run("<test>", `var s = "x=${1+2}"
s`)
	require.NoError(t, err)
	assert.Equal(t, "x=3", v.(*value.String).Value)
}

func TestRun_ScopedAtRootWarns(t *testing.T) {
	freshTables(t)
	var captured string
	Warn = func(msg string) { captured = msg }
	defer func() { Warn = func(string) {} }()
	_, err := Run("<test>", "scoped x = 1")
	require.NoError(t, err)
	assert.Contains(t, captured, "redundant")
}

func TestRun_ArrayLiteralAndIndexing(t *testing.T) {
	freshTables(t)
	v, err := Run("<test>", "var arr = [1, 2, 3]\narr / 1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.(*value.Number).IntValue)
}

func TestRun_ArityTooFewArgsIsError(t *testing.T) {
	freshTables(t)
	src := "function add(a, b) => a + b\nadd(1)"
	_, err := Run("<test>", src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too few args")
}

func TestRun_ArityTooManyArgsIsError(t *testing.T) {
	freshTables(t)
	src := "function add(a, b) => a + b\nadd(1, 2, 3)"
	_, err := Run("<test>", src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many args")
}

func TestIsNoReturn_TrueForSentinelTextFalseOtherwise(t *testing.T) {
	assert.True(t, IsNoReturn(NoReturn))
	assert.True(t, IsNoReturn(value.NewString(NoReturn.Value)))
	assert.False(t, IsNoReturn(value.NewString("hello")))
	assert.False(t, IsNoReturn(value.NewInt(0)))
}

func TestRun_ClosureCapturesDefiningContext(t *testing.T) {
	freshTables(t)
	src := `function makeAdder(base)
  scoped captured = base
  function inner(n) => n + captured
  return inner
end
var add10 = makeAdder(10)
add10(5)`
	v, err := Run("<test>", src)
	require.NoError(t, err)
	assert.Equal(t, int64(15), v.(*value.Number).IntValue)
}
