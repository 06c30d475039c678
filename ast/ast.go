package ast

import (
	"bytes"
	"strings"

	"github.com/navionguy/flatbasic/token"
)

// Node defines interface for all node types
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement defines the interface for all statement nodes
// the set of statements is closed, only this package can add one
type Statement interface {
	Node
	statementNode()
}

//Expression defines interface for all expression nodes
type Expression interface {
	Node
	expressionNode()
}

// CallExpression is used when calling built in functions
// every builtin takes exactly one argument
type CallExpression struct {
	Token    string // the function name as written
	Function string // function name, upper cased
	Argument Expression
}

func (ce *CallExpression) expressionNode() {}

// TokenLiteral returns my token literal
func (ce *CallExpression) TokenLiteral() string { return ce.Function }
func (ce *CallExpression) String() string {
	var out bytes.Buffer

	out.WriteString(ce.Function)
	out.WriteString("( ")
	if ce.Argument != nil {
		out.WriteString(ce.Argument.String())
	}
	out.WriteString(" )")

	return out.String()
}

// EndStatement stops the program
type EndStatement struct {
	Token string
}

func (end *EndStatement) statementNode() {}

// TokenLiteral returns my token literal
func (end *EndStatement) TokenLiteral() string { return token.END }

func (end *EndStatement) String() string { return token.END }

// ForStatement starts a counted loop
// Exit is set once, when the matching NEXT is parsed
type ForStatement struct {
	Token string
	Name  string     // loop variable
	Start Expression // initial value
	End   Expression // loop runs while the counter is <= End
	Exit  int        // statement index to resume at once the loop is done
}

func (fs *ForStatement) statementNode() {}

// TokenLiteral returns my token literal
func (fs *ForStatement) TokenLiteral() string { return token.FOR }

func (fs *ForStatement) String() string {
	var out bytes.Buffer

	out.WriteString("FOR ")
	out.WriteString(fs.Name)
	out.WriteString(" = ")
	writeExp(&out, fs.Start)
	out.WriteString(" TO ")
	writeExp(&out, fs.End)

	return out.String()
}

// GotoStatement transfers control
// a symbolic Label is looked up when the statement runs,
// loop-backs generated by NEXT carry a fixed Index instead
type GotoStatement struct {
	Token string // GOTO, or NEXT for a loop-back
	Label string // target label, empty for a loop-back
	Index int    // target statement index when Label is empty
	Name  string // loop variable named on the NEXT
}

func (gs *GotoStatement) statementNode() {}

// TokenLiteral returns my token literal
func (gs *GotoStatement) TokenLiteral() string { return token.GOTO }

// Symbolic is true when the target has to be resolved through the label map
func (gs *GotoStatement) Symbolic() bool { return len(gs.Label) > 0 }

func (gs *GotoStatement) String() string {
	if !gs.Symbolic() {
		return strings.TrimRight("NEXT "+gs.Name, " ")
	}
	return "GOTO " + gs.Label
}

// Identifier holds a variable name
type Identifier struct {
	Token string // name as written in the source
	Value string // name in upper case
}

func (i *Identifier) expressionNode() {}

// TokenLiteral returns my token literal
func (i *Identifier) TokenLiteral() string { return i.Token }
func (i *Identifier) String() string       { return i.Value }

// IfStatement runs Consequence when the Condition is exactly 1
type IfStatement struct {
	Token       string
	Condition   Expression
	Consequence Statement
}

func (is *IfStatement) statementNode() {}

// TokenLiteral returns my token literal
func (is *IfStatement) TokenLiteral() string { return token.IF }

func (is *IfStatement) String() string {
	var out bytes.Buffer

	out.WriteString("IF ")
	writeExp(&out, is.Condition)
	out.WriteString(" THEN ")
	if is.Consequence != nil {
		out.WriteString(is.Consequence.String())
	}

	return out.String()
}

// InfixExpression applies a binary operator
// chains are always folded to the left, so Right is never
// another unparenthesized InfixExpression
type InfixExpression struct {
	Operator string
	Left     Expression
	Right    Expression
	Grouped  bool // the source wrapped me in parens
}

func (ie *InfixExpression) expressionNode() {}

// TokenLiteral returns my token literal
func (ie *InfixExpression) TokenLiteral() string { return ie.Operator }
func (ie *InfixExpression) String() string {
	var out bytes.Buffer

	if ie.Grouped {
		out.WriteString("( ")
	}
	writeExp(&out, ie.Left)
	out.WriteString(" " + ie.Operator + " ")
	writeExp(&out, ie.Right)
	if ie.Grouped {
		out.WriteString(" )")
	}

	return out.String()
}

// LetStatement holds the assignment expression
type LetStatement struct {
	Token string
	Name  *Identifier
	Value Expression
}

func (ls *LetStatement) statementNode() {}

// TokenLiteral returns literal value of the statement
func (ls *LetStatement) TokenLiteral() string { return token.LET }

func (ls *LetStatement) String() string {
	var out bytes.Buffer

	out.WriteString("LET ")
	out.WriteString(ls.Name.String())
	out.WriteString(" = ")
	writeExp(&out, ls.Value)

	return out.String()
}

// NoOpStatement does nothing, REM lines and placeholders for bad lines
type NoOpStatement struct {
	Token   string
	Comment string
}

func (no *NoOpStatement) statementNode() {}

// TokenLiteral returns my token literal
func (no *NoOpStatement) TokenLiteral() string { return token.REM }

func (no *NoOpStatement) String() string {
	return strings.TrimRight("REM "+no.Comment, " ")
}

// NumberLiteral is a numeric constant
type NumberLiteral struct {
	Token string // the literal as written
	Value float64
}

func (nl *NumberLiteral) expressionNode() {}

// TokenLiteral returns my token literal
func (nl *NumberLiteral) TokenLiteral() string { return nl.Token }
func (nl *NumberLiteral) String() string       { return nl.Token }

// PlotStatement sets one pixel of the graphics screen
type PlotStatement struct {
	Token string
	X     Expression
	Y     Expression
	Color Expression
}

func (ps *PlotStatement) statementNode() {}

// TokenLiteral returns my token literal
func (ps *PlotStatement) TokenLiteral() string { return token.PLOT }

func (ps *PlotStatement) String() string {
	var out bytes.Buffer

	out.WriteString("PLOT ")
	writeExp(&out, ps.X)
	out.WriteString(" , ")
	writeExp(&out, ps.Y)
	out.WriteString(" , ")
	writeExp(&out, ps.Color)

	return out.String()
}

// PrintStatement outputs each of its items on a line of its own
type PrintStatement struct {
	Token string
	Items []Expression
}

func (ps *PrintStatement) statementNode() {}

// TokenLiteral returns my token literal
func (ps *PrintStatement) TokenLiteral() string { return token.PRINT }

func (ps *PrintStatement) String() string {
	items := []string{}
	for _, it := range ps.Items {
		items = append(items, expString(it))
	}

	return "PRINT " + strings.Join(items, " , ")
}

// ScreenStatement selects a graphics mode
type ScreenStatement struct {
	Token string
	Mode  Expression
}

func (ss *ScreenStatement) statementNode() {}

// TokenLiteral returns my token literal
func (ss *ScreenStatement) TokenLiteral() string { return token.SCREEN }

func (ss *ScreenStatement) String() string {
	return "SCREEN " + expString(ss.Mode)
}

func writeExp(out *bytes.Buffer, exp Expression) {
	out.WriteString(expString(exp))
}

// a missing expression only happens after a parse error
func expString(exp Expression) string {
	if exp == nil {
		return "?"
	}
	return exp.String()
}
