package berrors

import (
	"fmt"
)

const (
	NextWithoutFor = iota + 1
	Syntax
	IllegalFuncCallErr
	UnDefinedLineNumber
	UndefinedFunction
	UndefinedVariable
	ForWoNext
	ForNextMismatch
	UnknownStatement
	MissingOp
	IllegalThen
)

// TextForError returns the error text based on error number
func TextForError(err int) string {
	switch err {
	case ForNextMismatch:
		return "Invalid variable for the for loop"
	case ForWoNext:
		return "FOR without NEXT"
	case IllegalFuncCallErr:
		return "Illegal function call"
	case IllegalThen:
		return "FOR and NEXT can't follow THEN"
	case MissingOp:
		return "Missing operand"
	case NextWithoutFor:
		return "NEXT without FOR"
	case Syntax:
		return "Syntax error"
	case UnDefinedLineNumber:
		return "Undefined label"
	case UndefinedFunction:
		return "Undefined function"
	case UndefinedVariable:
		return "Undefined variable"
	case UnknownStatement:
		return "Unknown statement"
	}

	return "Unprintable error"
}

// RuntimeError halts a running program
type RuntimeError struct {
	Code  int    // one of the error numbers above
	Name  string // the variable, label or function involved
	Index int    // statement index executing when it happened
	Kind  string // statement kind executing when it happened
}

// Sentinels for errors.Is, only the code is compared
var (
	ErrIllegalFunctionCall = &RuntimeError{Code: IllegalFuncCallErr}
	ErrUndefinedFunction   = &RuntimeError{Code: UndefinedFunction}
	ErrUndefinedLabel      = &RuntimeError{Code: UnDefinedLineNumber}
	ErrUndefinedVariable   = &RuntimeError{Code: UndefinedVariable}
)

// New builds a runtime error, the interpreter loop fills in where it happened
func New(code int, name string) *RuntimeError {
	return &RuntimeError{Code: code, Name: name, Index: -1}
}

func (re *RuntimeError) Error() string {
	msg := TextForError(re.Code)

	if len(re.Name) > 0 {
		msg = fmt.Sprintf("%s %s", msg, re.Name)
	}

	if re.Index >= 0 && len(re.Kind) > 0 {
		msg = fmt.Sprintf("%s in %s at statement %d", msg, re.Kind, re.Index)
	}

	return msg
}

// Is matches any RuntimeError with the same code
func (re *RuntimeError) Is(target error) bool {
	t, ok := target.(*RuntimeError)
	if !ok {
		return false
	}
	return t.Code == re.Code
}

// At records where the error happened, unless that is already known
func (re *RuntimeError) At(index int, kind string) *RuntimeError {
	if re.Index < 0 {
		re.Index = index
		re.Kind = kind
	}
	return re
}
