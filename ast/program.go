package ast

import (
	"bytes"
	"sort"
)

// SourceLine remembers where a statement came from
type SourceLine struct {
	Text string // the line as written
	Line int    // synthetic line number, counts every non-empty line from 0
}

//Program holds the root of the AST (Abstract Syntax Tree)
// once parsing completes nothing in it changes, so one Program
// can be run any number of times
type Program struct {
	stmts  []Statement
	source []SourceLine
	labels map[string]int
	order  []string // labels in the order they were first defined
}

// NewProgram returns an empty program ready to be filled by the parser
func NewProgram() *Program {
	return &Program{labels: make(map[string]int)}
}

// TokenLiteral returns string representation of the program
func (p *Program) TokenLiteral() string { return "FlatBasic" }

// String returns the program as a string, one statement per line
func (p *Program) String() string {
	var out bytes.Buffer
	for i, s := range p.stmts {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(s.String())
	}
	return out.String()
}

// AddStatement appends a statement and points label at it
// if the label was already in use, the new statement takes it over
// returns the index of the new statement
func (p *Program) AddStatement(stmt Statement, label string, src SourceLine) int {
	p.stmts = append(p.stmts, stmt)
	p.source = append(p.source, src)

	idx := len(p.stmts) - 1
	if _, ok := p.labels[label]; !ok {
		p.order = append(p.order, label)
	}
	p.labels[label] = idx

	return idx
}

// Len returns the number of statements
func (p *Program) Len() int {
	return len(p.stmts)
}

// Statement returns the statement at index i, nil if out of range
func (p *Program) Statement(i int) Statement {
	if (i < 0) || (i >= len(p.stmts)) {
		return nil
	}
	return p.stmts[i]
}

// Source returns where the statement at index i came from
func (p *Program) Source(i int) SourceLine {
	if (i < 0) || (i >= len(p.source)) {
		return SourceLine{Line: -1}
	}
	return p.source[i]
}

// Lookup finds the statement index a label points to
func (p *Program) Lookup(label string) (int, bool) {
	idx, ok := p.labels[label]
	return idx, ok
}

// Labels returns every defined label, in order of first definition
func (p *Program) Labels() []string {
	lbls := make([]string, len(p.order))
	copy(lbls, p.order)
	return lbls
}

// LabelsAt returns the labels that currently point to statement i, sorted
func (p *Program) LabelsAt(i int) []string {
	var lbls []string
	for l, idx := range p.labels {
		if idx == i {
			lbls = append(lbls, l)
		}
	}
	sort.Strings(lbls)
	return lbls
}
