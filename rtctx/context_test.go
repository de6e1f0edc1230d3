package rtctx

import (
	"testing"

	"github.com/gapples2/PeanutScript/position"
	"github.com/gapples2/PeanutScript/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRuntimeContext() *Context {
	locked := NewSymbolTable(nil)
	global := NewSymbolTable(nil)
	return NewRootContext("<program>", locked, global, nil, nil)
}

func TestAssignVar_GoesToGlobal(t *testing.T) {
	ctx := newRuntimeContext()
	ctx.AssignVar("x", value.NewInt(1))
	_, ok := ctx.global.lookupLocal("x")
	assert.True(t, ok)
}

func TestAssignScopedAtRoot_GoesToLockedWithWarning(t *testing.T) {
	ctx := newRuntimeContext()
	warning := ctx.AssignScoped("x", value.NewInt(1))
	assert.NotEmpty(t, warning)
	_, ok := ctx.locked.lookupLocal("x")
	assert.True(t, ok)
}

func TestAssignScopedInChild_GoesToChildTable(t *testing.T) {
	ctx := newRuntimeContext()
	child := ctx.Child("fn", ctx.Table, position.Position{})
	warning := child.AssignScoped("x", value.NewInt(1))
	assert.Empty(t, warning)
	_, ok := child.Table.lookupLocal("x")
	assert.True(t, ok)
	_, ok = ctx.Table.lookupLocal("x")
	assert.False(t, ok)
}

func TestLookup_FallsBackToGlobal(t *testing.T) {
	ctx := newRuntimeContext()
	ctx.AssignVar("x", value.NewInt(42))
	child := ctx.Child("fn", ctx.Table, position.Position{})
	v, err := child.Lookup("x")
	require.Nil(t, err)
	assert.Equal(t, int64(42), v.(*value.Number).IntValue)
}

func TestLookup_UnresolvedIsError(t *testing.T) {
	ctx := newRuntimeContext()
	_, err := ctx.Lookup("missing")
	assert.Error(t, err)
}

func TestAssignStrict_RedeclarationWithDifferentTypeErrors(t *testing.T) {
	ctx := newRuntimeContext()
	require.Nil(t, ctx.AssignStrict("x", "int", value.NewInt(1)))
	err := ctx.AssignStrict("x", "float", value.NewFloat(1.0))
	assert.Error(t, err)
}

func TestAssignVar_RebindingOverwritesExistingValue(t *testing.T) {
	ctx := newRuntimeContext()
	ctx.AssignVar("x", value.NewInt(1))
	ctx.AssignVar("x", value.NewInt(2))
	v, err := ctx.Lookup("x")
	require.Nil(t, err)
	assert.Equal(t, int64(2), v.(*value.Number).IntValue)
}

func TestChild_TableChainsToCapturedTable(t *testing.T) {
	ctx := newRuntimeContext()
	child := ctx.Child("fn", ctx.Table, position.Position{})
	assert.True(t, child.Parent == ctx)
	assert.True(t, child.Table.parent == ctx.Table)
}
