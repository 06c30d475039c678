package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ProgramNew(t *testing.T) {
	p := NewProgram()

	assert.Equal(t, "FlatBasic", p.TokenLiteral())
	assert.Equal(t, "", p.String())
	assert.Equal(t, 0, p.Len())
	assert.Nil(t, p.Statement(0))
	assert.Equal(t, -1, p.Source(0).Line)
	assert.Empty(t, p.Labels())
}

func Test_AddStatement(t *testing.T) {
	p := NewProgram()

	i := p.AddStatement(&PrintStatement{Items: []Expression{num("1", 1)}}, "10", SourceLine{Text: "10 PRINT 1", Line: 0})
	assert.Equal(t, 0, i)
	i = p.AddStatement(&GotoStatement{Label: "10"}, "20", SourceLine{Text: "20 GOTO 10", Line: 1})
	assert.Equal(t, 1, i)

	assert.Equal(t, 2, p.Len())
	assert.Equal(t, "PRINT 1\nGOTO 10", p.String())
	assert.Equal(t, "20 GOTO 10", p.Source(1).Text)
	assert.Equal(t, 1, p.Source(1).Line)

	idx, ok := p.Lookup("20")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = p.Lookup("30")
	assert.False(t, ok)
}

func Test_LabelRedefinition(t *testing.T) {
	p := NewProgram()

	p.AddStatement(&PrintStatement{Items: []Expression{num("1", 1)}}, "10", SourceLine{})
	p.AddStatement(&PrintStatement{Items: []Expression{num("2", 2)}}, "20", SourceLine{})
	p.AddStatement(&PrintStatement{Items: []Expression{num("3", 3)}}, "10", SourceLine{})

	idx, ok := p.Lookup("10")
	assert.True(t, ok)
	assert.Equal(t, 2, idx, "last definition wins")

	// the first statement is still in the program
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, "PRINT 1", p.Statement(0).String())
	assert.Empty(t, p.LabelsAt(0))
	assert.Equal(t, []string{"10"}, p.LabelsAt(2))
	assert.Equal(t, []string{"10", "20"}, p.Labels())
}
