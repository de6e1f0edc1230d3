package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func kinds(toks []Token) []TokenType {
	out := make([]TokenType, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func TestMakeTokens_Arithmetic(t *testing.T) {
	toks, err := New("<test>", "2 + 3 * 4").MakeTokens()
	assert.NoError(t, err)
	assert.Equal(t, []TokenType{INT, PLUS, INT, MUL, INT, EOF}, kinds(toks))
	assert.Equal(t, int64(3), toks[2].Value)
}

func TestMakeTokens_KeywordsVsIdentifiers(t *testing.T) {
	toks, err := New("<test>", "var xyz = 1").MakeTokens()
	assert.NoError(t, err)
	assert.Equal(t, KEYWORD, toks[0].Type)
	assert.Equal(t, "var", toks[0].Value)
	assert.Equal(t, IDENTIFIER, toks[1].Type)
}

func TestMakeTokens_MultiCharOperators(t *testing.T) {
	toks, err := New("<test>", "== != <= >= =>").MakeTokens()
	assert.NoError(t, err)
	assert.Equal(t, []TokenType{EE, NE, LTE, GTE, ARROW, EOF}, kinds(toks))
}

func TestMakeTokens_BareBangIsExpectedCharError(t *testing.T) {
	_, err := New("<test>", "a ! b").MakeTokens()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Expected Character")
}

func TestMakeTokens_IllegalCharacter(t *testing.T) {
	_, err := New("<test>", "a @ b").MakeTokens()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Illegal Character")
}

func TestMakeTokens_StringEscapes(t *testing.T) {
	toks, err := New("<test>", `"hi\nthere"`).MakeTokens()
	assert.NoError(t, err)
	assert.Equal(t, "hi\nthere", toks[0].Value)
}

func TestMakeTokens_FloatLiteral(t *testing.T) {
	toks, err := New("<test>", "3.14").MakeTokens()
	assert.NoError(t, err)
	assert.Equal(t, FLOAT, toks[0].Type)
	assert.Equal(t, 3.14, toks[0].Value)
}

func TestMakeTokens_NewlineAndSemicolonAreNewlineTokens(t *testing.T) {
	toks, err := New("<test>", "a;\nb").MakeTokens()
	assert.NoError(t, err)
	assert.Equal(t, []TokenType{IDENTIFIER, NEWLINE, NEWLINE, IDENTIFIER, EOF}, kinds(toks))
}

func TestMakeTokens_LineComment(t *testing.T) {
	toks, err := New("<test>", "1 # a comment\n2").MakeTokens()
	assert.NoError(t, err)
	assert.Equal(t, []TokenType{INT, NEWLINE, INT, EOF}, kinds(toks))
}

func TestMakeTokens_InterpolationWithoutInterpolatorErrors(t *testing.T) {
	old := Interpolator
	Interpolator = nil
	defer func() { Interpolator = old }()
	_, err := New("<test>", `"x=${1+2}"`).MakeTokens()
	assert.Error(t, err)
}

func TestMakeTokens_InterpolationSplicesStringifiedResult(t *testing.T) {
	old := Interpolator
	Interpolator = func(fragment string) (string, error) { return "3", nil }
	defer func() { Interpolator = old }()
	toks, err := New("<test>", `"x=${1+2}"`).MakeTokens()
	assert.NoError(t, err)
	assert.Equal(t, "x=3", toks[0].Value)
}
