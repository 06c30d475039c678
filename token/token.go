package token

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TokenType names the verb a statement starts with
type TokenType string

const (
	ILLEGAL = "ILLEGAL"

	// Operators
	PLUS     = "+"
	MINUS    = "-"
	ASTERISK = "*"
	SLASH    = "/"
	CARET    = "^"

	EQ  = "="
	LT  = "<"
	GT  = ">"
	LTE = "<="
	GTE = ">="

	// Delimiters
	COMMA  = ","
	COLON  = ":"
	LPAREN = "("
	RPAREN = ")"

	// Keywords
	END    = "END"
	FOR    = "FOR"
	GOTO   = "GOTO"
	IF     = "IF"
	LET    = "LET"
	NEXT   = "NEXT"
	PLOT   = "PLOT"
	PRINT  = "PRINT"
	REM    = "REM"
	SCREEN = "SCREEN"
	THEN   = "THEN"
	TO     = "TO"
)

var keywords = map[string]TokenType{
	"end":    END,
	"for":    FOR,
	"goto":   GOTO,
	"if":     IF,
	"let":    LET,
	"next":   NEXT,
	"plot":   PLOT,
	"print":  PRINT,
	"rem":    REM,
	"screen": SCREEN,
	"then":   THEN,
	"to":     TO,
}

// operators is the complete set of binary operators, one or two characters
var operators = map[string]bool{
	PLUS:     true,
	MINUS:    true,
	ASTERISK: true,
	SLASH:    true,
	CARET:    true,
	EQ:       true,
	LT:       true,
	GT:       true,
	LTE:      true,
	GTE:      true,
}

// LookupVerb returns the keyword type for a word, ignoring case
// anything not a keyword comes back ILLEGAL
func LookupVerb(word string) TokenType {
	if tok, ok := keywords[Fold(word)]; ok {
		return tok
	}
	return ILLEGAL
}

// IsKeyword reports whether word matches the keyword kw, ignoring case
func IsKeyword(word string, kw TokenType) bool {
	return LookupVerb(word) == kw
}

// IsOperator reports whether tok is exactly one of the binary operators
func IsOperator(tok string) bool {
	return operators[tok]
}

// Fold returns the caseless form of s, used for every case-insensitive match
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Upper returns s in upper case, used when displaying names
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// SameName reports whether two names match, ignoring case
func SameName(a, b string) bool {
	return Fold(a) == Fold(b)
}
