package parser

import (
	"testing"

	"github.com/gapples2/PeanutScript/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lex(t *testing.T, src string) []lexer.Token {
	t.Helper()
	toks, err := lexer.New("<test>", src).MakeTokens()
	require.NoError(t, err)
	return toks
}

func TestParse_ArithmeticPrecedence(t *testing.T) {
	root, err := Parse(lex(t, "2 + 3 * 4"))
	require.NoError(t, err)
	require.Len(t, root.Elements, 1)
	bin, ok := root.Elements[0].(*BinaryOpNode)
	require.True(t, ok)
	assert.Equal(t, lexer.PLUS, bin.OpTok.Type)
	_, leftIsNum := bin.Left.(*NumberNode)
	assert.True(t, leftIsNum)
	rightBin, ok := bin.Right.(*BinaryOpNode)
	require.True(t, ok)
	assert.Equal(t, lexer.MUL, rightBin.OpTok.Type)
}

func TestParse_PowerIsRightOfCall(t *testing.T) {
	root, err := Parse(lex(t, "2 ^ 3 ^ 2"))
	require.NoError(t, err)
	bin := root.Elements[0].(*BinaryOpNode)
	assert.Equal(t, lexer.POW, bin.OpTok.Type)
}

func TestParse_VarAssign(t *testing.T) {
	root, err := Parse(lex(t, "var x = 1 + 2"))
	require.NoError(t, err)
	assign, ok := root.Elements[0].(*VarAssignNode)
	require.True(t, ok)
	assert.Equal(t, "x", assign.VarName)
}

func TestParse_ScopedAssign(t *testing.T) {
	root, err := Parse(lex(t, "scoped counter = 0"))
	require.NoError(t, err)
	assign, ok := root.Elements[0].(*ScopedAssignNode)
	require.True(t, ok)
	assert.Equal(t, "counter", assign.VarName)
}

func TestParse_StrictAssignAcceptsMatchingLiteral(t *testing.T) {
	root, err := Parse(lex(t, `strict string name = "bob"`))
	require.NoError(t, err)
	assign, ok := root.Elements[0].(*StrictAssignNode)
	require.True(t, ok)
	assert.Equal(t, "string", assign.DeclaredType)
	assert.Equal(t, "name", assign.VarName)
}

func TestParse_StrictAssignRejectsMismatchedLiteral(t *testing.T) {
	_, err := Parse(lex(t, `strict int name = "bob"`))
	assert.Error(t, err)
}

func TestParse_StrictRedeclarationWithDifferentTypeErrors(t *testing.T) {
	_, err := Parse(lex(t, "strict int x = 1\nstrict float x = 2.0"))
	assert.Error(t, err)
}

func TestParse_CallWithArgs(t *testing.T) {
	root, err := Parse(lex(t, "foo(1, 2, bar())"))
	require.NoError(t, err)
	call, ok := root.Elements[0].(*CallNode)
	require.True(t, ok)
	assert.Len(t, call.Args, 3)
}

func TestParse_ArrayLiteral(t *testing.T) {
	root, err := Parse(lex(t, "[1, 2, 3]"))
	require.NoError(t, err)
	arr, ok := root.Elements[0].(*ArrayNode)
	require.True(t, ok)
	assert.Len(t, arr.Elements, 3)
}

func TestParse_InlineIf(t *testing.T) {
	root, err := Parse(lex(t, "if x > 0 then 1 else 2"))
	require.NoError(t, err)
	ifNode, ok := root.Elements[0].(*IfNode)
	require.True(t, ok)
	require.Len(t, ifNode.Cases, 1)
	assert.False(t, ifNode.Cases[0].IsBlock)
	require.NotNil(t, ifNode.Else)
	assert.False(t, ifNode.Else.IsBlock)
}

func TestParse_BlockIfElif(t *testing.T) {
	src := "if x > 0 then\n  1\nelif x < 0 then\n  2\nelse\n  3\nend"
	root, err := Parse(lex(t, src))
	require.NoError(t, err)
	ifNode, ok := root.Elements[0].(*IfNode)
	require.True(t, ok)
	require.Len(t, ifNode.Cases, 2)
	assert.True(t, ifNode.Cases[0].IsBlock)
	require.NotNil(t, ifNode.Else)
}

func TestParse_ForLoop(t *testing.T) {
	root, err := Parse(lex(t, "for i = 0 until 10 step 2 then print(i)"))
	require.NoError(t, err)
	forNode, ok := root.Elements[0].(*ForNode)
	require.True(t, ok)
	assert.Equal(t, "i", forNode.VarName)
	assert.NotNil(t, forNode.StepValue)
	assert.False(t, forNode.IsBlock)
}

func TestParse_WhileBlock(t *testing.T) {
	root, err := Parse(lex(t, "while x < 10 then\n  var x = x + 1\nend"))
	require.NoError(t, err)
	w, ok := root.Elements[0].(*WhileNode)
	require.True(t, ok)
	assert.True(t, w.IsBlock)
}

func TestParse_FuncDefArrow(t *testing.T) {
	root, err := Parse(lex(t, "function add(a, b) => a + b"))
	require.NoError(t, err)
	fn, ok := root.Elements[0].(*FuncDefNode)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	assert.True(t, fn.AutoReturn)
	assert.Equal(t, []string{"a", "b"}, fn.ArgNames)
}

func TestParse_FuncDefWithDefaults(t *testing.T) {
	root, err := Parse(lex(t, `function greet(name, greeting = "hi") => greeting`))
	require.NoError(t, err)
	fn := root.Elements[0].(*FuncDefNode)
	require.Len(t, fn.ArgDefaults, 2)
	assert.Equal(t, lexer.TokenType(""), fn.ArgDefaults[0].Type)
	assert.Equal(t, lexer.STRING, fn.ArgDefaults[1].Type)
}

func TestParse_FuncDefDefaultThenRequiredErrors(t *testing.T) {
	_, err := Parse(lex(t, "function bad(a = 1, b) => a"))
	assert.Error(t, err)
}

func TestParse_FuncDefBlockForm(t *testing.T) {
	root, err := Parse(lex(t, "function add(a, b)\n  return a + b\nend"))
	require.NoError(t, err)
	fn := root.Elements[0].(*FuncDefNode)
	assert.False(t, fn.AutoReturn)
}

func TestParse_ReturnContinueBreak(t *testing.T) {
	root, err := Parse(lex(t, "function f()\n  return 1\nend"))
	require.NoError(t, err)
	fn := root.Elements[0].(*FuncDefNode)
	body := fn.Body.(*ArrayNode)
	ret, ok := body.Elements[0].(*ReturnNode)
	require.True(t, ok)
	assert.NotNil(t, ret.Value)

	root2, err := Parse(lex(t, "while true then\n  continue\nend"))
	require.NoError(t, err)
	w := root2.Elements[0].(*WhileNode)
	wb := w.Body.(*ArrayNode)
	_, isContinue := wb.Elements[0].(*ContinueNode)
	assert.True(t, isContinue)

	root3, err := Parse(lex(t, "while true then\n  break\nend"))
	require.NoError(t, err)
	w3 := root3.Elements[0].(*WhileNode)
	wb3 := w3.Body.(*ArrayNode)
	_, isBreak := wb3.Elements[0].(*BreakNode)
	assert.True(t, isBreak)
}

func TestParse_BareReturnHasNilValue(t *testing.T) {
	root, err := Parse(lex(t, "function f()\n  return\nend"))
	require.NoError(t, err)
	fn := root.Elements[0].(*FuncDefNode)
	body := fn.Body.(*ArrayNode)
	ret := body.Elements[0].(*ReturnNode)
	assert.Nil(t, ret.Value)
}

func TestParse_TrailingGarbageIsSyntaxError(t *testing.T) {
	_, err := Parse(lex(t, "1 2"))
	assert.Error(t, err)
}

func TestParse_UnterminatedBlockIsSyntaxError(t *testing.T) {
	_, err := Parse(lex(t, "if true then\n  1\n"))
	assert.Error(t, err)
}

func TestParse_NotOperator(t *testing.T) {
	root, err := Parse(lex(t, "not true"))
	require.NoError(t, err)
	un, ok := root.Elements[0].(*UnaryOpNode)
	require.True(t, ok)
	assert.True(t, un.OpTok.Matches(lexer.KEYWORD, "not"))
}

func TestParse_AndOrChain(t *testing.T) {
	root, err := Parse(lex(t, "a and b or c"))
	require.NoError(t, err)
	bin, ok := root.Elements[0].(*BinaryOpNode)
	require.True(t, ok)
	assert.True(t, bin.OpTok.Matches(lexer.KEYWORD, "or"))
}
