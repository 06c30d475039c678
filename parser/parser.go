package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/navionguy/flatbasic/ast"
	"github.com/navionguy/flatbasic/berrors"
	"github.com/navionguy/flatbasic/lexer"
	"github.com/navionguy/flatbasic/token"
)

// ParseError is one problem found while parsing
type ParseError struct {
	Source  string // the offending line as written
	Line    int    // synthetic line number
	Message string
}

func (pe ParseError) Error() string {
	return fmt.Sprintf("%s\nError [Line %d]: %s", pe.Source, pe.Line, pe.Message)
}

// Parser an instance, good for parsing one source text
type Parser struct {
	source  []string
	l       *lexer.Lexer
	errors  []ParseError
	program *ast.Program

	curLine  int    // synthetic line counter, also the default label
	curText  string // line being parsed
	forStack []int  // statement indexes of FOR loops waiting for their NEXT

	traceOn    bool
	traceLevel int
}

// New create and return a Parser for the source lines
func New(lines []string) *Parser {
	p := &Parser{
		source: lines,
		errors: []ParseError{},
	}
	return p
}

// NewFromString splits src into lines and returns a Parser for them
func NewFromString(src string) *Parser {
	return New(SplitLines(src))
}

// SplitLines breaks program text into lines, dropping carriage returns
func SplitLines(src string) []string {
	return strings.Split(strings.ReplaceAll(src, "\r", ""), "\n")
}

// Trace turns on logging of the parse functions as they are entered
func (p *Parser) Trace(on bool) {
	p.traceOn = on
}

// Errors returns list of errors seen while parsing
func (p *Parser) Errors() []ParseError {
	return p.errors
}

// ParseProgram time to get busy and build the Abstract Syntax Tree
// parsing always runs to the end of the source so every error is
// reported, a program with errors must not be run
func (p *Parser) ParseProgram() *ast.Program {
	defer p.untrace(p.trace("ParseProgram"))

	p.program = ast.NewProgram()
	p.curLine = 0
	p.forStack = nil
	defer func() { p.forStack = nil }()

	for _, text := range p.source {
		p.l = lexer.New(text)

		// blank lines don't count
		if p.l.Len() == 0 {
			continue
		}

		p.curText = text
		p.parseLine()
		p.curLine++
	}

	// report unclosed loops against the line of their FOR
	for _, idx := range p.forStack {
		src := p.program.Source(idx)
		p.errors = append(p.errors, ParseError{Source: src.Text, Line: src.Line, Message: berrors.TextForError(berrors.ForWoNext)})
	}

	return p.program
}

// parseLine works out the label and verb, then builds the statement
func (p *Parser) parseLine() {
	defer p.untrace(p.trace("parseLine"))

	label, explicit := p.parseLabel()
	errCount := len(p.errors)

	var stmt ast.Statement
	if explicit && p.l.AtEnd() {
		p.generalError(fmt.Sprintf("Expecting statement after label %s", label))
		stmt = &ast.NoOpStatement{}
	} else {
		stmt = p.parseStatement(p.l.NextToken(), false)
	}

	// only complain about leftovers if the line was otherwise good
	if !p.l.AtEnd() && (errCount == len(p.errors)) {
		p.generalError(fmt.Sprintf("Unexpected %s", p.l.PeekToken()))
	}

	p.program.AddStatement(stmt, label, ast.SourceLine{Text: p.curText, Line: p.curLine})
}

// parseLabel pulls an explicit label off the front of the line
// if there isn't one, the synthetic line number is the label
func (p *Parser) parseLabel() (string, bool) {
	first := p.l.PeekToken()

	if isDigit(first[0]) {
		p.l.Skip(1)
		return first, true
	}

	if strings.HasSuffix(first, token.COLON) {
		p.l.Skip(1)
		return strings.TrimSuffix(first, token.COLON), true
	}

	return strconv.Itoa(p.curLine), false
}

// parseStatement dispatches on the verb
// nested is true for the statement following THEN
func (p *Parser) parseStatement(verb string, nested bool) ast.Statement {
	defer p.untrace(p.trace("parseStatement"))

	var stmt ast.Statement

	switch token.LookupVerb(verb) {
	case token.END:
		stmt = p.parseEndStatement(verb)
	case token.FOR:
		if nested {
			p.reportError(berrors.IllegalThen)
			p.l.Rest()
			return &ast.NoOpStatement{Token: verb}
		}
		stmt = p.parseForStatement(verb)
	case token.GOTO:
		stmt = p.parseGotoStatement(verb)
	case token.IF:
		stmt = p.parseIfStatement(verb)
	case token.LET:
		stmt = p.parseLetStatement(verb)
	case token.NEXT:
		if nested {
			p.reportError(berrors.IllegalThen)
			p.l.Rest()
			return &ast.NoOpStatement{Token: verb}
		}
		stmt = p.parseNextStatement(verb)
	case token.PLOT:
		stmt = p.parsePlotStatement(verb)
	case token.PRINT:
		stmt = p.parsePrintStatement(verb)
	case token.REM:
		stmt = p.parseRemStatement(verb)
	case token.SCREEN:
		stmt = p.parseScreenStatement(verb)
	default:
		p.generalError(fmt.Sprintf("%s %s", berrors.TextForError(berrors.UnknownStatement), verb))
		p.l.Rest()
	}

	// keep a placeholder so statement indexes stay lined up with the source
	if stmt == nil {
		return &ast.NoOpStatement{Token: verb}
	}

	return stmt
}

func (p *Parser) parseEndStatement(verb string) *ast.EndStatement {
	return &ast.EndStatement{Token: verb}
}

// FOR name = start TO end
func (p *Parser) parseForStatement(verb string) *ast.ForStatement {
	defer p.untrace(p.trace("parseForStatement"))
	stmt := &ast.ForStatement{Token: verb, Exit: -1}

	name, ok := p.parseName()
	if !ok {
		return nil
	}
	stmt.Name = name

	if !p.expectPeek(token.EQ) {
		return nil
	}

	stmt.Start = p.parseExpression()
	if stmt.Start == nil {
		return nil
	}

	if !p.expectKeyword(token.TO) {
		return nil
	}

	stmt.End = p.parseExpression()
	if stmt.End == nil {
		return nil
	}

	// the FOR is about to become the next statement
	p.forStack = append(p.forStack, p.program.Len())

	return stmt
}

// goto - uncondition transfer to a label
func (p *Parser) parseGotoStatement(verb string) *ast.GotoStatement {
	defer p.untrace(p.trace("parseGotoStatement"))

	if p.l.AtEnd() {
		p.peekError("label")
		return nil
	}

	return &ast.GotoStatement{Token: verb, Label: p.l.NextToken()}
}

// IF condition THEN statement
func (p *Parser) parseIfStatement(verb string) *ast.IfStatement {
	defer p.untrace(p.trace("parseIfStatement"))
	stmt := &ast.IfStatement{Token: verb}

	stmt.Condition = p.parseExpression()
	if stmt.Condition == nil {
		return nil
	}

	if !p.expectKeyword(token.THEN) {
		return nil
	}

	if p.l.AtEnd() {
		p.peekError("statement")
		return nil
	}

	stmt.Consequence = p.parseStatement(p.l.NextToken(), true)

	return stmt
}

// LET name = expression
func (p *Parser) parseLetStatement(verb string) *ast.LetStatement {
	defer p.untrace(p.trace("parseLetStatement"))
	stmt := &ast.LetStatement{Token: verb}

	name, ok := p.parseName()
	if !ok {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: name, Value: token.Upper(name)}

	if !p.expectPeek(token.EQ) {
		return nil
	}

	stmt.Value = p.parseExpression()
	if stmt.Value == nil {
		return nil
	}

	return stmt
}

// NEXT closes the innermost open FOR and becomes a jump back to it
// a mismatched name is reported but the loop still gets closed
func (p *Parser) parseNextStatement(verb string) ast.Statement {
	defer p.untrace(p.trace("parseNextStatement"))

	name := ""
	if !p.l.AtEnd() {
		name = p.l.NextToken()
	}

	if len(p.forStack) == 0 {
		p.reportError(berrors.NextWithoutFor)
		return nil
	}

	forIdx := p.forStack[len(p.forStack)-1]
	p.forStack = p.forStack[:len(p.forStack)-1]

	fs := p.program.Statement(forIdx).(*ast.ForStatement)

	if len(name) > 0 && !token.SameName(fs.Name, name) {
		p.generalError(fmt.Sprintf("%s, Expecting %s, found %s",
			berrors.TextForError(berrors.ForNextMismatch), fs.Name, name))
	}

	// the jump back becomes the next statement, the loop exits just past it
	fs.Exit = p.program.Len() + 1

	return &ast.GotoStatement{Token: verb, Index: forIdx, Name: name}
}

// PLOT x , y , color
func (p *Parser) parsePlotStatement(verb string) *ast.PlotStatement {
	defer p.untrace(p.trace("parsePlotStatement"))
	stmt := &ast.PlotStatement{Token: verb}

	exps := p.parseExpressionList()
	if exps == nil {
		return nil
	}

	if len(exps) != 3 {
		p.generalError(fmt.Sprintf("Expecting 3 values but got %d", len(exps)))
		return nil
	}

	stmt.X, stmt.Y, stmt.Color = exps[0], exps[1], exps[2]

	return stmt
}

func (p *Parser) parsePrintStatement(verb string) *ast.PrintStatement {
	defer p.untrace(p.trace("parsePrintStatement"))

	items := p.parseExpressionList()
	if items == nil {
		return nil
	}

	return &ast.PrintStatement{Token: verb, Items: items}
}

// not a hard one to parse
func (p *Parser) parseRemStatement(verb string) *ast.NoOpStatement {
	return &ast.NoOpStatement{Token: verb, Comment: strings.Join(p.l.Rest(), " ")}
}

func (p *Parser) parseScreenStatement(verb string) *ast.ScreenStatement {
	defer p.untrace(p.trace("parseScreenStatement"))

	mode := p.parseExpression()
	if mode == nil {
		return nil
	}

	return &ast.ScreenStatement{Token: verb, Mode: mode}
}

// parseName consumes a variable name
func (p *Parser) parseName() (string, bool) {
	name := p.l.PeekToken()

	if len(name) == 0 || isPunctuation(name) || (name == token.LPAREN) || isNumber(name) {
		p.peekError("variable name")
		return "", false
	}

	p.l.Skip(1)
	return name, true
}

// checks the next token is exactly tok and consumes it
// either way so parsing can carry on
func (p *Parser) expectPeek(tok string) bool {
	if p.l.PeekToken() == tok {
		p.l.Skip(1)
		return true
	}
	p.peekError(tok)
	p.l.Skip(1)
	return false
}

// like expectPeek, but keywords match in any case
func (p *Parser) expectKeyword(kw token.TokenType) bool {
	if token.IsKeyword(p.l.PeekToken(), kw) {
		p.l.Skip(1)
		return true
	}
	p.peekError(string(kw))
	p.l.Skip(1)
	return false
}

func (p *Parser) peekError(expected string) {
	got := p.l.PeekToken()
	if p.l.AtEnd() {
		got = "end of line"
	}
	p.generalError(fmt.Sprintf("Expecting %s but got %s", expected, got))
}

func (p *Parser) reportError(code int) {
	p.generalError(berrors.TextForError(code))
}

func (p *Parser) generalError(msg string) {
	p.errors = append(p.errors, ParseError{Source: p.curText, Line: p.curLine, Message: msg})
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
