package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func num(lit string, v float64) *NumberLiteral {
	return &NumberLiteral{Token: lit, Value: v}
}

func id(name string) *Identifier {
	return &Identifier{Token: name, Value: name}
}

func TestStatementStrings(t *testing.T) {
	tests := []struct {
		stmt Statement
		lit  string
		exp  string
	}{
		{stmt: &LetStatement{Name: id("X"), Value: num("5", 5)}, lit: "LET", exp: "LET X = 5"},
		{stmt: &PrintStatement{Items: []Expression{num("3.14", 3.14)}}, lit: "PRINT", exp: "PRINT 3.14"},
		{stmt: &PrintStatement{Items: []Expression{id("A"), id("B")}}, lit: "PRINT", exp: "PRINT A , B"},
		{stmt: &GotoStatement{Label: "10"}, lit: "GOTO", exp: "GOTO 10"},
		{stmt: &GotoStatement{Index: 0, Name: "I"}, lit: "GOTO", exp: "NEXT I"},
		{stmt: &ForStatement{Name: "I", Start: num("1", 1), End: num("3", 3)}, lit: "FOR", exp: "FOR I = 1 TO 3"},
		{stmt: &IfStatement{Condition: &InfixExpression{Operator: "=", Left: id("X"), Right: num("1", 1)}, Consequence: &EndStatement{}}, lit: "IF", exp: "IF X = 1 THEN END"},
		{stmt: &ScreenStatement{Mode: num("13", 13)}, lit: "SCREEN", exp: "SCREEN 13"},
		{stmt: &PlotStatement{X: id("X"), Y: id("Y"), Color: num("7", 7)}, lit: "PLOT", exp: "PLOT X , Y , 7"},
		{stmt: &NoOpStatement{Comment: "hello there"}, lit: "REM", exp: "REM hello there"},
		{stmt: &NoOpStatement{}, lit: "REM", exp: "REM"},
		{stmt: &EndStatement{}, lit: "END", exp: "END"},
		{stmt: &LetStatement{Name: id("X")}, lit: "LET", exp: "LET X = ?"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.lit, tt.stmt.TokenLiteral())
		assert.Equal(t, tt.exp, tt.stmt.String())
	}
}

func TestExpressionStrings(t *testing.T) {
	chain := &InfixExpression{
		Operator: "*",
		Left:     &InfixExpression{Operator: "+", Left: num("2", 2), Right: num("4", 4)},
		Right:    num("2", 2),
	}

	tests := []struct {
		exp Expression
		lit string
		str string
	}{
		{exp: num("2.5", 2.5), lit: "2.5", str: "2.5"},
		{exp: id("count"), lit: "count", str: "count"},
		{exp: chain, lit: "*", str: "2 + 4 * 2"},
		{exp: &InfixExpression{Operator: "-", Left: id("A"), Right: &InfixExpression{Operator: "+", Left: id("B"), Right: id("C"), Grouped: true}}, lit: "-", str: "A - ( B + C )"},
		{exp: &CallExpression{Token: "sqr", Function: "SQR", Argument: num("4", 4)}, lit: "SQR", str: "SQR( 4 )"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.lit, tt.exp.TokenLiteral())
		assert.Equal(t, tt.str, tt.exp.String())
	}
}
