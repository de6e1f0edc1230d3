/*
File    : PeanutScript/parser/parser.go
Package : parser

Package parser implements a recursive-descent parser with precedence
climbing for Peanut, converting a lexer.Token stream into a single
ArrayNode representing the program (a sequence of statements).

The precedence ladder, lowest to highest, follows spec.md §4.2 exactly:
expression -> comp_expr -> arith_expr -> term -> factor -> power -> call -> atom.
Grounded on the teacher's Parser{Lex, CurrToken, NextToken, Errors} shape
(go-mix/parser/parser.go), but dispatch is one named method per grammar
level instead of a Pratt operator-precedence table, and the parser fails
fast on the first error instead of collecting a slice — spec.md §7 states
parser errors are non-recoverable.
*/
package parser

import (
	"fmt"

	"github.com/gapples2/PeanutScript/lexer"
	"github.com/gapples2/PeanutScript/position"
)

// Error is a parse-time failure (InvalidSyntaxError in spec.md's
// terminology). It formats the same way lexer.Error does.
type Error struct {
	Details  string
	PosStart position.Position
	PosEnd   position.Position
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("Invalid Syntax: %s", e.Details)
	msg += fmt.Sprintf("\nTrace: File %s, line %d", e.PosStart.FileName, e.PosStart.Line+1)
	msg += "\n\n" + position.CaretSpan(e.PosStart, e.PosEnd)
	return msg
}

// Parser holds the token stream and cursor for one parse.
type Parser struct {
	tokens       []lexer.Token
	tokIdx       int
	currentTok   lexer.Token
	strictTypes  map[string]string // name -> declared type, for strict re-declaration checks
}

// New creates a Parser over an already-lexed token stream.
func New(tokens []lexer.Token) *Parser {
	p := &Parser{tokens: tokens, tokIdx: -1, strictTypes: make(map[string]string)}
	p.advance()
	return p
}

func (p *Parser) advance() lexer.Token {
	p.tokIdx++
	if p.tokIdx < len(p.tokens) {
		p.currentTok = p.tokens[p.tokIdx]
	}
	return p.currentTok
}

func (p *Parser) invalidSyntaxHere(details string) error {
	return &Error{Details: details, PosStart: p.currentTok.PosStart, PosEnd: p.currentTok.PosEnd}
}

// Parse runs the parser to completion, requiring the whole token stream to
// be consumed (anything left over is a syntax error pointing at the first
// unconsumed token).
func Parse(tokens []lexer.Token) (*ArrayNode, error) {
	p := New(tokens)
	statements, err := p.statements(nil)
	if err != nil {
		return nil, err
	}
	if p.currentTok.Type != lexer.EOF {
		return nil, p.invalidSyntaxHere("Expected '+', '-', '*', '/', '^', '%', a comparison operator, or EOF")
	}
	return statements, nil
}

// statements parses a sequence of statements separated by one or more
// NEWLINE tokens, stopping at EOF or at a KEYWORD token whose literal is a
// member of stop (used by callers parsing a block body closed by `end`,
// `elif`, or `else`).
func (p *Parser) statements(stop map[string]bool) (*ArrayNode, error) {
	start := p.currentTok.PosStart
	var stmts []Node

	for p.currentTok.Type == lexer.NEWLINE {
		p.advance()
	}

	for p.currentTok.Type != lexer.EOF && !p.atStop(stop) {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)

		newlines := 0
		for p.currentTok.Type == lexer.NEWLINE {
			p.advance()
			newlines++
		}
		if newlines == 0 {
			break
		}
	}

	end := p.currentTok.PosStart
	if len(stmts) > 0 {
		end = stmts[len(stmts)-1].PosEnd()
	}
	return NewArrayNode(stmts, start, end), nil
}

func (p *Parser) atStop(stop map[string]bool) bool {
	if stop == nil {
		return false
	}
	if p.currentTok.Type != lexer.KEYWORD {
		return false
	}
	name, _ := p.currentTok.Value.(string)
	return stop[name]
}

func isBodyStopToken(tok lexer.Token) bool {
	if tok.Type == lexer.EOF || tok.Type == lexer.NEWLINE {
		return true
	}
	if tok.Type != lexer.KEYWORD {
		return false
	}
	name, _ := tok.Value.(string)
	return name == "end" || name == "elif" || name == "else"
}

// statement parses `return [expr]`, `continue`, `break`, or a bare
// expression.
func (p *Parser) statement() (Node, error) {
	start := p.currentTok.PosStart

	if p.currentTok.Matches(lexer.KEYWORD, "return") {
		p.advance()
		var expr Node
		if !isBodyStopToken(p.currentTok) {
			e, err := p.expression()
			if err != nil {
				return nil, err
			}
			expr = e
		}
		end := p.currentTok.PosStart
		if expr != nil {
			end = expr.PosEnd()
		}
		return NewReturnNode(expr, start, end), nil
	}
	if p.currentTok.Matches(lexer.KEYWORD, "continue") {
		end := p.currentTok.PosEnd
		p.advance()
		return NewContinueNode(start, end), nil
	}
	if p.currentTok.Matches(lexer.KEYWORD, "break") {
		end := p.currentTok.PosEnd
		p.advance()
		return NewBreakNode(start, end), nil
	}
	return p.expression()
}

// expression is the lowest precedence level: a declaration prefix
// (var/let/scoped/strict), else a left-associative and/or chain.
func (p *Parser) expression() (Node, error) {
	start := p.currentTok.PosStart

	if p.currentTok.Matches(lexer.KEYWORD, "var") || p.currentTok.Matches(lexer.KEYWORD, "let") {
		p.advance()
		if p.currentTok.Type != lexer.IDENTIFIER {
			return nil, p.invalidSyntaxHere("Expected identifier")
		}
		name := p.currentTok.Value.(string)
		p.advance()
		if p.currentTok.Type != lexer.EQ {
			return nil, p.invalidSyntaxHere("Expected '='")
		}
		p.advance()
		value, err := p.expression()
		if err != nil {
			return nil, err
		}
		return NewVarAssignNode(name, value, start, value.PosEnd()), nil
	}

	if p.currentTok.Matches(lexer.KEYWORD, "scoped") {
		p.advance()
		if p.currentTok.Type != lexer.IDENTIFIER {
			return nil, p.invalidSyntaxHere("Expected identifier")
		}
		name := p.currentTok.Value.(string)
		p.advance()
		if p.currentTok.Type != lexer.EQ {
			return nil, p.invalidSyntaxHere("Expected '='")
		}
		p.advance()
		value, err := p.expression()
		if err != nil {
			return nil, err
		}
		return NewScopedAssignNode(name, value, start, value.PosEnd()), nil
	}

	if p.currentTok.Matches(lexer.KEYWORD, "strict") {
		return p.strictAssign(start)
	}

	left, err := p.compExpr()
	if err != nil {
		return nil, err
	}
	for p.currentTok.Matches(lexer.KEYWORD, "and") || p.currentTok.Matches(lexer.KEYWORD, "or") {
		opTok := p.currentTok
		p.advance()
		right, err := p.compExpr()
		if err != nil {
			return nil, err
		}
		left = NewBinaryOpNode(left, opTok, right)
	}
	return left, nil
}

func (p *Parser) strictAssign(start position.Position) (Node, error) {
	p.advance() // consume 'strict'
	if p.currentTok.Type != lexer.IDENTIFIER {
		return nil, p.invalidSyntaxHere("Expected a type name (string, int, or float)")
	}
	declaredType := p.currentTok.Value.(string)
	if !lexer.TypeNames[declaredType] {
		return nil, p.invalidSyntaxHere(fmt.Sprintf("'%s' is not a valid strict type (expected string, int, or float)", declaredType))
	}
	p.advance()
	if p.currentTok.Type != lexer.IDENTIFIER {
		return nil, p.invalidSyntaxHere("Expected identifier")
	}
	name := p.currentTok.Value.(string)
	if existing, ok := p.strictTypes[name]; ok && existing != declaredType {
		return nil, p.invalidSyntaxHere(fmt.Sprintf("'%s' was already declared strict %s, cannot redeclare as %s", name, existing, declaredType))
	}
	p.advance()
	if p.currentTok.Type != lexer.EQ {
		return nil, p.invalidSyntaxHere("Expected '='")
	}
	p.advance()
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !topTokenKindMatches(declaredType, value) {
		return nil, p.invalidSyntaxHere(fmt.Sprintf("expression does not match declared type '%s'", declaredType))
	}
	p.strictTypes[name] = declaredType
	return NewStrictAssignNode(name, declaredType, value, start, value.PosEnd()), nil
}

// topTokenKindMatches inspects the top-level token kind of an expression
// tree — per spec.md §4.2's static check. Any expression whose outermost
// literal/operand is of the declared kind passes, even deep inside a
// binary expression (spec.md §9 flags this looseness and calls for it to
// be preserved, not silently tightened into an evaluated-value check).
func topTokenKindMatches(declaredType string, n Node) bool {
	switch v := n.(type) {
	case *NumberNode:
		if declaredType == "int" {
			return v.Tok.Type == lexer.INT
		}
		if declaredType == "float" {
			return v.Tok.Type == lexer.FLOAT
		}
		return false
	case *StringNode:
		return declaredType == "string"
	case *BinaryOpNode:
		return topTokenKindMatches(declaredType, v.Left)
	case *UnaryOpNode:
		return topTokenKindMatches(declaredType, v.Node)
	default:
		return false
	}
}

// compExpr: optional unary `not`, else a left-assoc comparison chain.
func (p *Parser) compExpr() (Node, error) {
	if p.currentTok.Matches(lexer.KEYWORD, "not") {
		opTok := p.currentTok
		p.advance()
		node, err := p.compExpr()
		if err != nil {
			return nil, err
		}
		return NewUnaryOpNode(opTok, node), nil
	}

	left, err := p.arithExpr()
	if err != nil {
		return nil, err
	}
	for isComparisonOp(p.currentTok.Type) {
		opTok := p.currentTok
		p.advance()
		right, err := p.arithExpr()
		if err != nil {
			return nil, err
		}
		left = NewBinaryOpNode(left, opTok, right)
	}
	return left, nil
}

func isComparisonOp(t lexer.TokenType) bool {
	switch t {
	case lexer.EE, lexer.NE, lexer.LT, lexer.GT, lexer.LTE, lexer.GTE:
		return true
	}
	return false
}

// arithExpr: left-assoc + and - over term.
func (p *Parser) arithExpr() (Node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.currentTok.Type == lexer.PLUS || p.currentTok.Type == lexer.MINUS {
		opTok := p.currentTok
		p.advance()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = NewBinaryOpNode(left, opTok, right)
	}
	return left, nil
}

// term: left-assoc *, /, % over factor.
func (p *Parser) term() (Node, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.currentTok.Type == lexer.MUL || p.currentTok.Type == lexer.DIV || p.currentTok.Type == lexer.MOD {
		opTok := p.currentTok
		p.advance()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = NewBinaryOpNode(left, opTok, right)
	}
	return left, nil
}

// factor: optional unary +/-, else power.
func (p *Parser) factor() (Node, error) {
	if p.currentTok.Type == lexer.PLUS || p.currentTok.Type == lexer.MINUS {
		opTok := p.currentTok
		p.advance()
		node, err := p.factor()
		if err != nil {
			return nil, err
		}
		return NewUnaryOpNode(opTok, node), nil
	}
	return p.power()
}

// power: ^ with a call on the left and a factor on the right. Because the
// right operand is a factor (which parses its own power), a chain groups
// to the right: 2 ^ 3 ^ 2 parses as 2 ^ (3 ^ 2).
func (p *Parser) power() (Node, error) {
	left, err := p.call()
	if err != nil {
		return nil, err
	}
	for p.currentTok.Type == lexer.POW {
		opTok := p.currentTok
		p.advance()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = NewBinaryOpNode(left, opTok, right)
	}
	return left, nil
}

// call: an atom optionally followed by a parenthesized, comma-separated
// argument list.
func (p *Parser) call() (Node, error) {
	atomNode, err := p.atom()
	if err != nil {
		return nil, err
	}
	if p.currentTok.Type != lexer.LPAREN {
		return atomNode, nil
	}
	p.advance()
	var args []Node
	if p.currentTok.Type == lexer.RPAREN {
		end := p.currentTok.PosEnd
		p.advance()
		return NewCallNode(atomNode, args, end), nil
	}
	arg, err := p.expression()
	if err != nil {
		return nil, err
	}
	args = append(args, arg)
	for p.currentTok.Type == lexer.COMMA {
		p.advance()
		arg, err := p.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if p.currentTok.Type != lexer.RPAREN {
		return nil, p.invalidSyntaxHere("Expected ',' or ')'")
	}
	end := p.currentTok.PosEnd
	p.advance()
	return NewCallNode(atomNode, args, end), nil
}

// atom: the highest-precedence, "can't be decomposed further" productions.
func (p *Parser) atom() (Node, error) {
	tok := p.currentTok
	switch {
	case tok.Type == lexer.INT || tok.Type == lexer.FLOAT:
		p.advance()
		return NewNumberNode(tok), nil
	case tok.Type == lexer.STRING:
		p.advance()
		return NewStringNode(tok), nil
	case tok.Type == lexer.IDENTIFIER:
		p.advance()
		return NewAccessNode(tok), nil
	case tok.Type == lexer.LPAREN:
		p.advance()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if p.currentTok.Type != lexer.RPAREN {
			return nil, p.invalidSyntaxHere("Expected ')'")
		}
		p.advance()
		return expr, nil
	case tok.Type == lexer.LSQUARE:
		return p.arrayExpr()
	case tok.Matches(lexer.KEYWORD, "if"):
		return p.ifExpr()
	case tok.Matches(lexer.KEYWORD, "for"):
		return p.forExpr()
	case tok.Matches(lexer.KEYWORD, "while"):
		return p.whileExpr()
	case tok.Matches(lexer.KEYWORD, "function"):
		return p.funcDef()
	default:
		return nil, p.invalidSyntaxHere("Expected int, float, identifier, '+', '-', '(', '[', 'if', 'for', 'while', or 'function'")
	}
}

func (p *Parser) arrayExpr() (Node, error) {
	start := p.currentTok.PosStart
	p.advance() // consume '['
	var elements []Node
	if p.currentTok.Type == lexer.RSQUARE {
		end := p.currentTok.PosEnd
		p.advance()
		return NewArrayNode(elements, start, end), nil
	}
	el, err := p.expression()
	if err != nil {
		return nil, err
	}
	elements = append(elements, el)
	for p.currentTok.Type == lexer.COMMA {
		p.advance()
		el, err := p.expression()
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}
	if p.currentTok.Type != lexer.RSQUARE {
		return nil, p.invalidSyntaxHere("Expected ',' or ']'")
	}
	end := p.currentTok.PosEnd
	p.advance()
	return NewArrayNode(elements, start, end), nil
}

func (p *Parser) ifExpr() (Node, error) {
	startPos := p.currentTok.PosStart
	cases, elseCase, err := p.ifExprCases("if")
	if err != nil {
		return nil, err
	}
	endPos := startPos
	if elseCase != nil {
		endPos = elseCase.Body.PosEnd()
	} else if len(cases) > 0 {
		endPos = cases[len(cases)-1].Body.PosEnd()
	}
	return NewIfNode(cases, elseCase, startPos, endPos), nil
}

func (p *Parser) ifExprCases(keyword string) ([]IfCase, *ElseCase, error) {
	if !p.currentTok.Matches(lexer.KEYWORD, keyword) {
		return nil, nil, p.invalidSyntaxHere(fmt.Sprintf("Expected '%s'", keyword))
	}
	p.advance()
	condition, err := p.expression()
	if err != nil {
		return nil, nil, err
	}
	if !(p.currentTok.Matches(lexer.KEYWORD, "then") || p.currentTok.Type == lexer.ARROW) {
		return nil, nil, p.invalidSyntaxHere("Expected 'then' or '=>'")
	}
	p.advance()

	var cases []IfCase
	var elseCase *ElseCase

	if p.currentTok.Type == lexer.NEWLINE {
		p.advance()
		body, err := p.statements(map[string]bool{"end": true, "elif": true, "else": true})
		if err != nil {
			return nil, nil, err
		}
		cases = append(cases, IfCase{Condition: condition, Body: body, IsBlock: true})

		switch {
		case p.currentTok.Matches(lexer.KEYWORD, "end"):
			p.advance()
		case p.currentTok.Matches(lexer.KEYWORD, "elif"):
			moreCases, moreElse, err := p.ifExprCases("elif")
			if err != nil {
				return nil, nil, err
			}
			cases = append(cases, moreCases...)
			elseCase = moreElse
		case p.currentTok.Matches(lexer.KEYWORD, "else"):
			ec, err := p.elseCase()
			if err != nil {
				return nil, nil, err
			}
			elseCase = ec
		default:
			return nil, nil, p.invalidSyntaxHere("Expected 'end', 'elif', or 'else'")
		}
		return cases, elseCase, nil
	}

	body, err := p.statement()
	if err != nil {
		return nil, nil, err
	}
	cases = append(cases, IfCase{Condition: condition, Body: body, IsBlock: false})

	if p.currentTok.Matches(lexer.KEYWORD, "elif") {
		moreCases, moreElse, err := p.ifExprCases("elif")
		if err != nil {
			return nil, nil, err
		}
		cases = append(cases, moreCases...)
		elseCase = moreElse
	} else if p.currentTok.Matches(lexer.KEYWORD, "else") {
		ec, err := p.elseCase()
		if err != nil {
			return nil, nil, err
		}
		elseCase = ec
	}
	return cases, elseCase, nil
}

func (p *Parser) elseCase() (*ElseCase, error) {
	p.advance() // consume 'else'
	if p.currentTok.Type == lexer.NEWLINE {
		p.advance()
		body, err := p.statements(map[string]bool{"end": true})
		if err != nil {
			return nil, err
		}
		if !p.currentTok.Matches(lexer.KEYWORD, "end") {
			return nil, p.invalidSyntaxHere("Expected 'end'")
		}
		p.advance()
		return &ElseCase{Body: body, IsBlock: true}, nil
	}
	stmt, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ElseCase{Body: stmt, IsBlock: false}, nil
}

func (p *Parser) forExpr() (Node, error) {
	startPos := p.currentTok.PosStart
	p.advance() // consume 'for'
	if p.currentTok.Type != lexer.IDENTIFIER {
		return nil, p.invalidSyntaxHere("Expected identifier")
	}
	varName := p.currentTok.Value.(string)
	p.advance()
	if p.currentTok.Type != lexer.EQ {
		return nil, p.invalidSyntaxHere("Expected '='")
	}
	p.advance()
	startValue, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !p.currentTok.Matches(lexer.KEYWORD, "until") {
		return nil, p.invalidSyntaxHere("Expected 'until'")
	}
	p.advance()
	endValue, err := p.expression()
	if err != nil {
		return nil, err
	}
	var stepValue Node
	if p.currentTok.Matches(lexer.KEYWORD, "step") {
		p.advance()
		stepValue, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if !(p.currentTok.Matches(lexer.KEYWORD, "then") || p.currentTok.Type == lexer.ARROW) {
		return nil, p.invalidSyntaxHere("Expected 'then' or '=>'")
	}
	p.advance()

	if p.currentTok.Type == lexer.NEWLINE {
		p.advance()
		body, err := p.statements(map[string]bool{"end": true})
		if err != nil {
			return nil, err
		}
		if !p.currentTok.Matches(lexer.KEYWORD, "end") {
			return nil, p.invalidSyntaxHere("Expected 'end'")
		}
		endPos := p.currentTok.PosEnd
		p.advance()
		return NewForNode(varName, startValue, endValue, stepValue, body, true, startPos, endPos), nil
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return NewForNode(varName, startValue, endValue, stepValue, body, false, startPos, body.PosEnd()), nil
}

func (p *Parser) whileExpr() (Node, error) {
	startPos := p.currentTok.PosStart
	p.advance() // consume 'while'
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !(p.currentTok.Matches(lexer.KEYWORD, "then") || p.currentTok.Type == lexer.ARROW) {
		return nil, p.invalidSyntaxHere("Expected 'then' or '=>'")
	}
	p.advance()

	if p.currentTok.Type == lexer.NEWLINE {
		p.advance()
		body, err := p.statements(map[string]bool{"end": true})
		if err != nil {
			return nil, err
		}
		if !p.currentTok.Matches(lexer.KEYWORD, "end") {
			return nil, p.invalidSyntaxHere("Expected 'end'")
		}
		endPos := p.currentTok.PosEnd
		p.advance()
		return NewWhileNode(condition, body, true, startPos, endPos), nil
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return NewWhileNode(condition, body, false, startPos, body.PosEnd()), nil
}

func (p *Parser) funcDef() (Node, error) {
	startPos := p.currentTok.PosStart
	p.advance() // consume 'function'

	name := ""
	if p.currentTok.Type == lexer.IDENTIFIER {
		name = p.currentTok.Value.(string)
		p.advance()
	}
	if p.currentTok.Type != lexer.LPAREN {
		return nil, p.invalidSyntaxHere("Expected '('")
	}
	p.advance()

	var argNames []string
	var argDefaults []lexer.Token
	seenDefault := false

	if p.currentTok.Type == lexer.IDENTIFIER {
		for {
			argName := p.currentTok.Value.(string)
			p.advance()
			var defTok lexer.Token
			if p.currentTok.Type == lexer.EQ {
				p.advance()
				if !(p.currentTok.Type == lexer.INT || p.currentTok.Type == lexer.FLOAT || p.currentTok.Type == lexer.STRING) {
					return nil, p.invalidSyntaxHere("Expected a literal default value (number or string)")
				}
				defTok = p.currentTok
				seenDefault = true
				p.advance()
			} else if seenDefault {
				return nil, p.invalidSyntaxHere("a non-default parameter cannot follow a defaulted one")
			}
			argNames = append(argNames, argName)
			argDefaults = append(argDefaults, defTok)

			if p.currentTok.Type != lexer.COMMA {
				break
			}
			p.advance()
			if p.currentTok.Type != lexer.IDENTIFIER {
				return nil, p.invalidSyntaxHere("Expected identifier")
			}
		}
	}
	if p.currentTok.Type != lexer.RPAREN {
		return nil, p.invalidSyntaxHere("Expected ',' or ')'")
	}
	p.advance()

	if p.currentTok.Type == lexer.ARROW {
		p.advance()
		body, err := p.expression()
		if err != nil {
			return nil, err
		}
		return NewFuncDefNode(name, argNames, argDefaults, body, true, startPos, body.PosEnd()), nil
	}
	if p.currentTok.Type != lexer.NEWLINE {
		return nil, p.invalidSyntaxHere("Expected '=>' or newline")
	}
	p.advance()
	body, err := p.statements(map[string]bool{"end": true})
	if err != nil {
		return nil, err
	}
	if !p.currentTok.Matches(lexer.KEYWORD, "end") {
		return nil, p.invalidSyntaxHere("Expected 'end'")
	}
	endPos := p.currentTok.PosEnd
	p.advance()
	return NewFuncDefNode(name, argNames, argDefaults, body, false, startPos, endPos), nil
}
