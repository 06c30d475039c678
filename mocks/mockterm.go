package mocks

import "fmt"

// MockTerm is a console that remembers what it was asked to print
type MockTerm struct {
	Lines   *[]string // completed lines, in order
	SawStr  *string   // everything printed, line endings included
	partial *string
	Echo    bool // also write to stdout
}

// NewMockTerm returns a MockTerm ready to record
func NewMockTerm() MockTerm {
	mt := MockTerm{}
	initMockTerm(&mt)
	return mt
}

func initMockTerm(mt *MockTerm) {
	mt.Lines = new([]string)
	*mt.Lines = []string{}

	mt.SawStr = new(string)
	mt.partial = new(string)
}

func (mt MockTerm) Print(msg string) {
	if mt.Echo {
		fmt.Print(msg)
	}
	*mt.SawStr += msg
	*mt.partial += msg
}

func (mt MockTerm) Println(msg string) {
	if mt.Echo {
		fmt.Println(msg)
	}
	*mt.SawStr += msg + "\n"
	*mt.Lines = append(*mt.Lines, *mt.partial+msg)
	*mt.partial = ""
}

// Output returns the completed lines
func (mt MockTerm) Output() []string {
	return *mt.Lines
}
