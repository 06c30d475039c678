package parser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/navionguy/flatbasic/ast"
	"github.com/navionguy/flatbasic/token"
)

// parse a comma seperated series of expressions
// returns nil if any of them failed
func (p *Parser) parseExpressionList() []ast.Expression {
	var exps []ast.Expression

	for {
		exp := p.parseExpression()
		if exp == nil {
			return nil
		}
		exps = append(exps, exp)

		if p.l.PeekToken() != token.COMMA {
			return exps
		}
		p.l.Skip(1)
	}
}

// parseExpression reads an atom, then keeps folding operator/atom
// pairs onto the left, there is no precedence
func (p *Parser) parseExpression() ast.Expression {
	defer p.untrace(p.trace("parseExpression"))

	left := p.parseAtom()
	if left == nil {
		return nil
	}

	for token.IsOperator(p.l.PeekToken()) {
		op := p.l.NextToken()

		right := p.parseAtom()
		if right == nil {
			return nil
		}

		left = &ast.InfixExpression{Operator: op, Left: left, Right: right}
	}

	return left
}

// parseAtom handles a number, a parenthesized expression,
// a function call or a variable
func (p *Parser) parseAtom() ast.Expression {
	defer p.untrace(p.trace("parseAtom"))

	tok := p.l.PeekToken()

	if p.l.AtEnd() || isPunctuation(tok) {
		p.peekError("expression")
		return nil
	}

	if isNumber(tok) {
		p.l.Skip(1)
		v, _ := strconv.ParseFloat(tok, 64)
		return &ast.NumberLiteral{Token: tok, Value: v}
	}

	if tok == token.LPAREN {
		p.l.Skip(1)
		return p.parseGroupedExpression()
	}

	if p.l.PeekAhead(1) == token.LPAREN {
		return p.parseCallExpression()
	}

	p.l.Skip(1)
	return &ast.Identifier{Token: tok, Value: token.Upper(tok)}
}

// ( expression )
func (p *Parser) parseGroupedExpression() ast.Expression {
	exp := p.parseExpression()
	if exp == nil {
		return nil
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	if ie, ok := exp.(*ast.InfixExpression); ok {
		ie.Grouped = true
	}

	return exp
}

// name ( expression )
func (p *Parser) parseCallExpression() ast.Expression {
	defer p.untrace(p.trace("parseCallExpression"))

	name := p.l.NextToken()
	p.l.Skip(1) // the (

	arg := p.parseExpression()
	if arg == nil {
		return nil
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return &ast.CallExpression{Token: name, Function: token.Upper(name), Argument: arg}
}

// isNumber reports whether tok is a numeric literal
// words like Inf and NaN and hex forms are names, not numbers
func isNumber(tok string) bool {
	if len(tok) == 0 {
		return false
	}

	start := tok
	if (start[0] == '+') || (start[0] == '-') {
		start = start[1:]
	}
	if (len(start) == 0) || !(isDigit(start[0]) || (start[0] == '.')) {
		return false
	}
	if strings.ContainsAny(tok, "xX_") {
		return false
	}

	// overflow still parses, ParseFloat hands back the infinity
	_, err := strconv.ParseFloat(tok, 64)
	return (err == nil) || errors.Is(err, strconv.ErrRange)
}

// tokens that can never start an expression or be a name
func isPunctuation(tok string) bool {
	return token.IsOperator(tok) || tok == token.RPAREN || tok == token.COMMA
}
