package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_NumberNumber(t *testing.T) {
	r, err := Add(NewInt(2), NewInt(3))
	require.Nil(t, err)
	assert.Equal(t, int64(5), r.(*Number).IntValue)
}

func TestAdd_FloatPromotion(t *testing.T) {
	r, err := Add(NewInt(2), NewFloat(0.5))
	require.Nil(t, err)
	n := r.(*Number)
	assert.True(t, n.IsFloat)
	assert.Equal(t, 2.5, n.FloatValue)
}

func TestAdd_StringConcat(t *testing.T) {
	r, err := Add(NewString("foo"), NewString("bar"))
	require.Nil(t, err)
	assert.Equal(t, "foobar", r.(*String).Value)
}

func TestAdd_ArrayAppend(t *testing.T) {
	arr := NewArray([]Value{NewInt(1), NewInt(2)})
	r, err := Add(arr, NewInt(3))
	require.Nil(t, err)
	out := r.(*Array)
	require.Len(t, out.Elements, 3)
	assert.Equal(t, int64(3), out.Elements[2].(*Number).IntValue)
	assert.Len(t, arr.Elements, 2, "original array must not be mutated")
}

func TestSub_ArrayRemovesIndex(t *testing.T) {
	arr := NewArray([]Value{NewInt(1), NewInt(2), NewInt(3)})
	r, err := Sub(arr, NewInt(1))
	require.Nil(t, err)
	out := r.(*Array)
	require.Len(t, out.Elements, 2)
	assert.Equal(t, int64(1), out.Elements[0].(*Number).IntValue)
	assert.Equal(t, int64(3), out.Elements[1].(*Number).IntValue)
}

func TestSub_ArrayNegativeIndex(t *testing.T) {
	arr := NewArray([]Value{NewInt(1), NewInt(2), NewInt(3)})
	r, err := Sub(arr, NewInt(-1))
	require.Nil(t, err)
	out := r.(*Array)
	assert.Len(t, out.Elements, 2)
}

func TestMul_StringRepeat(t *testing.T) {
	r, err := Mul(NewString("ab"), NewInt(3))
	require.Nil(t, err)
	assert.Equal(t, "ababab", r.(*String).Value)
}

func TestMul_StringRepeat_NonPositiveCountIsEmpty(t *testing.T) {
	r, err := Mul(NewString("ab"), NewInt(0))
	require.Nil(t, err)
	assert.Equal(t, "", r.(*String).Value)

	r, err = Mul(NewString("ab"), NewInt(-2))
	require.Nil(t, err)
	assert.Equal(t, "", r.(*String).Value)
}

func TestMul_ArrayConcat(t *testing.T) {
	a := NewArray([]Value{NewInt(1)})
	b := NewArray([]Value{NewInt(2), NewInt(3)})
	r, err := Mul(a, b)
	require.Nil(t, err)
	assert.Len(t, r.(*Array).Elements, 3)
}

func TestDiv_ByZeroIsError(t *testing.T) {
	_, err := Div(NewInt(1), NewInt(0))
	assert.Error(t, err)
}

func TestDiv_StringCharAt(t *testing.T) {
	r, err := Div(NewString("hello"), NewInt(1))
	require.Nil(t, err)
	assert.Equal(t, "e", r.(*String).Value)
}

func TestDiv_ArrayElementAt(t *testing.T) {
	arr := NewArray([]Value{NewInt(10), NewInt(20)})
	r, err := Div(arr, NewInt(1))
	require.Nil(t, err)
	assert.Equal(t, int64(20), r.(*Number).IntValue)
}

func TestPow(t *testing.T) {
	r, err := Pow(NewInt(2), NewInt(10))
	require.Nil(t, err)
	assert.Equal(t, int64(1024), r.(*Number).IntValue)
}

func TestMod_FlooredForNegatives(t *testing.T) {
	r, err := Mod(NewInt(-1), NewInt(3))
	require.Nil(t, err)
	assert.Equal(t, int64(2), r.(*Number).IntValue)
}

func TestEquals_CrossTypeIsFalseNotError(t *testing.T) {
	r := Equals(NewInt(1), NewString("1"))
	assert.Equal(t, int64(0), r.IntValue)
}

func TestEquals_ArrayDeepEquality(t *testing.T) {
	a := NewArray([]Value{NewInt(1), NewString("x")})
	b := NewArray([]Value{NewInt(1), NewString("x")})
	assert.Equal(t, int64(1), Equals(a, b).IntValue)
}

func TestLessThan_NonNumberIsError(t *testing.T) {
	_, err := LessThan(NewString("a"), NewInt(1))
	assert.Error(t, err)
}

func TestAndOrNot(t *testing.T) {
	assert.Equal(t, int64(0), And(False, True).IntValue)
	assert.Equal(t, int64(1), Or(False, True).IntValue)
	assert.Equal(t, int64(1), Not(False).IntValue)
}

func TestNegate(t *testing.T) {
	r, err := Negate(NewInt(5))
	require.Nil(t, err)
	assert.Equal(t, int64(-5), r.(*Number).IntValue)
}
