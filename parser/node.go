/*
File    : PeanutScript/parser/node.go
Package : parser

This file defines the AST node variants produced by the parser. Peanut's
grammar is small enough that, per spec.md §9's design note ("tagged union
with exhaustive pattern matching"), every node is a plain struct carrying
its own start/end Position and the interpreter dispatches on concrete type
with a type switch rather than a separate Visitor interface per node.
*/
package parser

import (
	"github.com/gapples2/PeanutScript/lexer"
	"github.com/gapples2/PeanutScript/position"
)

// Node is implemented by every AST node. PosStart/PosEnd bound the node's
// source span; spec.md §3's invariant (n.pos_start <= first-child.pos_start
// and n.pos_end >= last-child.pos_end) holds for every constructor below.
type Node interface {
	PosStart() position.Position
	PosEnd() position.Position
}

type span struct {
	start position.Position
	end   position.Position
}

func (s span) PosStart() position.Position { return s.start }
func (s span) PosEnd() position.Position   { return s.end }

// NumberNode wraps an INT or FLOAT literal token.
type NumberNode struct {
	span
	Tok lexer.Token
}

func NewNumberNode(tok lexer.Token) *NumberNode {
	return &NumberNode{span: span{tok.PosStart, tok.PosEnd}, Tok: tok}
}

// StringNode wraps a STRING literal token (already interpolation-resolved
// by the lexer).
type StringNode struct {
	span
	Tok lexer.Token
}

func NewStringNode(tok lexer.Token) *StringNode {
	return &StringNode{span: span{tok.PosStart, tok.PosEnd}, Tok: tok}
}

// ArrayNode is an ordered sequence of element nodes — both an array
// literal `[a, b, c]` and the program root (a sequence of statements).
type ArrayNode struct {
	span
	Elements []Node
}

func NewArrayNode(elements []Node, start, end position.Position) *ArrayNode {
	return &ArrayNode{span: span{start, end}, Elements: elements}
}

// VarAssignNode is `var NAME = EXPR` or `let NAME = EXPR`: both bind a
// plain (non-scoped, non-strict) variable in the global table.
type VarAssignNode struct {
	span
	VarName string
	Value   Node
}

func NewVarAssignNode(name string, value Node, start, end position.Position) *VarAssignNode {
	return &VarAssignNode{span: span{start, end}, VarName: name, Value: value}
}

// ScopedAssignNode is `scoped NAME = EXPR`.
type ScopedAssignNode struct {
	span
	VarName string
	Value   Node
}

func NewScopedAssignNode(name string, value Node, start, end position.Position) *ScopedAssignNode {
	return &ScopedAssignNode{span: span{start, end}, VarName: name, Value: value}
}

// StrictAssignNode is `strict TYPE NAME = EXPR`, where DeclaredType is one
// of "string", "int", "float".
type StrictAssignNode struct {
	span
	VarName      string
	DeclaredType string
	Value        Node
}

func NewStrictAssignNode(name, declaredType string, value Node, start, end position.Position) *StrictAssignNode {
	return &StrictAssignNode{span: span{start, end}, VarName: name, DeclaredType: declaredType, Value: value}
}

// AccessNode reads a variable by name.
type AccessNode struct {
	span
	VarName string
}

func NewAccessNode(tok lexer.Token) *AccessNode {
	return &AccessNode{span: span{tok.PosStart, tok.PosEnd}, VarName: tok.Value.(string)}
}

// BinaryOpNode applies a binary operator token between two sub-expressions.
// Both arithmetic (+ - * / % ^) and logical (and, or, ==, !=, <, >, <=, >=)
// binary operators are represented the same way; OpTok.Type distinguishes
// punctuation operators while OpTok.Value distinguishes `and`/`or` keyword
// operators.
type BinaryOpNode struct {
	span
	Left  Node
	OpTok lexer.Token
	Right Node
}

func NewBinaryOpNode(left Node, opTok lexer.Token, right Node) *BinaryOpNode {
	return &BinaryOpNode{span: span{left.PosStart(), right.PosEnd()}, Left: left, OpTok: opTok, Right: right}
}

// UnaryOpNode applies a prefix operator (+, -, or the `not` keyword) to a
// single sub-expression.
type UnaryOpNode struct {
	span
	OpTok lexer.Token
	Node  Node
}

func NewUnaryOpNode(opTok lexer.Token, node Node) *UnaryOpNode {
	return &UnaryOpNode{span: span{opTok.PosStart, node.PosEnd()}, OpTok: opTok, Node: node}
}

// IfCase is one `if`/`elif` arm: a condition, its body, and whether the
// body was written in block form (closed by `end`) or inline form (a
// single statement).
type IfCase struct {
	Condition Node
	Body      Node
	IsBlock   bool
}

// ElseCase is the optional trailing `else` arm.
type ElseCase struct {
	Body    Node
	IsBlock bool
}

// IfNode is the full if/elif*/else? chain.
type IfNode struct {
	span
	Cases []IfCase
	Else  *ElseCase
}

func NewIfNode(cases []IfCase, elseCase *ElseCase, start, end position.Position) *IfNode {
	return &IfNode{span: span{start, end}, Cases: cases, Else: elseCase}
}

// ForNode is `for VAR = START until END [step STEP] then BODY [end]`.
// StepValue is nil when the source omitted the `step` clause (the interpreter
// defaults it to Number(1)).
type ForNode struct {
	span
	VarName      string
	StartValue   Node
	EndValue     Node
	StepValue    Node
	Body         Node
	IsBlock      bool
}

func NewForNode(varName string, startValue, endValue, stepValue, body Node, isBlock bool, start, end position.Position) *ForNode {
	return &ForNode{span: span{start, end}, VarName: varName, StartValue: startValue, EndValue: endValue, StepValue: stepValue, Body: body, IsBlock: isBlock}
}

// WhileNode is `while COND then BODY [end]`.
type WhileNode struct {
	span
	Condition Node
	Body      Node
	IsBlock   bool
}

func NewWhileNode(condition, body Node, isBlock bool, start, end position.Position) *WhileNode {
	return &WhileNode{span: span{start, end}, Condition: condition, Body: body, IsBlock: isBlock}
}

// FuncDefNode is a function definition. Name is "" for anonymous function
// expressions. ArgDefaults runs parallel to ArgNames, one slot per
// parameter: its i-th slot is a literal lexer.Token (INT/FLOAT/STRING) when that
// parameter has a default, or a zero Token (Type == "") when it does not.
// AutoReturn is true for the single-expression arrow form `=> EXPR`, false
// for the block form closed by `end`.
type FuncDefNode struct {
	span
	Name        string
	ArgNames    []string
	ArgDefaults []lexer.Token
	Body        Node
	AutoReturn  bool
}

func NewFuncDefNode(name string, argNames []string, argDefaults []lexer.Token, body Node, autoReturn bool, start, end position.Position) *FuncDefNode {
	return &FuncDefNode{span: span{start, end}, Name: name, ArgNames: argNames, ArgDefaults: argDefaults, Body: body, AutoReturn: autoReturn}
}

// CallNode applies Callee to Args.
type CallNode struct {
	span
	Callee Node
	Args   []Node
}

func NewCallNode(callee Node, args []Node, end position.Position) *CallNode {
	return &CallNode{span: span{callee.PosStart(), end}, Callee: callee, Args: args}
}

// ReturnNode is `return [EXPR]`; Value is nil when no expression follows.
type ReturnNode struct {
	span
	Value Node
}

func NewReturnNode(value Node, start, end position.Position) *ReturnNode {
	return &ReturnNode{span: span{start, end}, Value: value}
}

// ContinueNode is the `continue` statement.
type ContinueNode struct{ span }

func NewContinueNode(start, end position.Position) *ContinueNode {
	return &ContinueNode{span: span{start, end}}
}

// BreakNode is the `break` statement.
type BreakNode struct{ span }

func NewBreakNode(start, end position.Position) *BreakNode {
	return &BreakNode{span: span{start, end}}
}
