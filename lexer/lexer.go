package lexer

import (
	"strings"

	"github.com/navionguy/flatbasic/token"
)

// Tokenize splits one source line into tokens
// parens always stand alone, everything else must be
// separated by whitespace
func Tokenize(line string) []string {
	line = strings.ReplaceAll(line, token.LPAREN, " "+token.LPAREN+" ")
	line = strings.ReplaceAll(line, token.RPAREN, " "+token.RPAREN+" ")

	return strings.Fields(line)
}

//Lexer walks the tokens of a single line
type Lexer struct {
	tokens   []string // tokens found on the line
	position int      // index of the next token to hand out
}

//New create a new lexer object for one source line
func New(input string) *Lexer {
	l := &Lexer{
		tokens: Tokenize(input),
	}
	return l
}

// Len returns the total number of tokens on the line
func (l *Lexer) Len() int {
	return len(l.tokens)
}

// Pos returns the index of the next token
func (l *Lexer) Pos() int {
	return l.position
}

// AtEnd is true once every token has been consumed
func (l *Lexer) AtEnd() bool {
	return l.position >= len(l.tokens)
}

//NextToken consumes and returns the next token, "" at end of line
func (l *Lexer) NextToken() string {
	if l.AtEnd() {
		return ""
	}
	tok := l.tokens[l.position]
	l.position++
	return tok
}

//PeekToken - take a look at, but don't consume the next token
func (l *Lexer) PeekToken() string {
	return l.PeekAhead(0)
}

// PeekAhead looks n tokens past the next one without consuming anything
func (l *Lexer) PeekAhead(n int) string {
	if l.position+n >= len(l.tokens) {
		return ""
	}
	return l.tokens[l.position+n]
}

// Skip moves past n tokens
func (l *Lexer) Skip(n int) {
	l.position += n
	if l.position > len(l.tokens) {
		l.position = len(l.tokens)
	}
}

// Rest consumes and returns whatever tokens are left on the line
func (l *Lexer) Rest() []string {
	rest := l.tokens[l.position:]
	l.position = len(l.tokens)
	return rest
}
