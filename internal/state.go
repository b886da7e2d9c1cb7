package internal

import (
	"errors"
	"fmt"
	"os"
)

// SyntaxError is a scan or parse diagnostic tagged with the source
// line it was detected on.
type SyntaxError struct {
	Line int
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Error on line %d\n\t%s", e.Line, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// RuntimeError is the failure that aborted an interpret run. Lexeme
// names the offending token.
type RuntimeError struct {
	Line   int
	Lexeme string
	Err    error
}

func (e *RuntimeError) Error() string {
	if e.Lexeme == "" {
		return fmt.Sprintf("Runtime Error on line %d\n\t%s", e.Line, e.Err)
	}
	return fmt.Sprintf("Runtime Error on line %d\n\t%s: %s", e.Line, e.Err, e.Lexeme)
}

func (e *RuntimeError) Unwrap() error { return e.Err }

// bail unwinds the parser back to its statement loop. It never
// escapes the package.
type bail struct{}

// runtimeErr aborts evaluation with err at the given token. The panic
// is recovered at the top of the interpret run.
func runtimeErr(err error, tk *token) {
	panic(&RuntimeError{
		Line:   tk.line,
		Lexeme: tk.lexeme,
		Err:    err,
	})
}

// interpreterState stores the state of an interpreter run
type interpreterState struct {
	source string
	tokens []token
	stmts  []stmt

	errors []*SyntaxError
}

// NewInterpreterState creates a state ready to scan source
func NewInterpreterState(source string) *interpreterState {
	return &interpreterState{
		source: source,
		errors: make([]*SyntaxError, 0),
	}
}

func (s *interpreterState) setError(err error, line int) {
	s.errors = append(s.errors, &SyntaxError{
		Line: line,
		Err:  err,
	})
}

func (s *interpreterState) fatalError(err error, line int) {
	s.setError(err, line)
	panic(bail{})
}

// Valid returns true if no syntax errors were recorded
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}

// Errors returns the recorded syntax errors in source order
func (s *interpreterState) Errors() []error {
	out := make([]error, len(s.errors))
	for i, e := range s.errors {
		out[i] = e
	}
	return out
}

// PrintErrors reports the recorded syntax errors through p and tells
// whether there were any
func (s *interpreterState) PrintErrors(p IPrinter) bool {
	for _, e := range s.errors {
		p.Fprintln(os.Stderr, e)
	}
	return len(s.errors) != 0
}

// Lexer errors
var errUnexpectedChar = errors.New("Unexpected character")
var errUnterminatedString = errors.New("Unterminated string")
var errExpectedProp = errors.New("Expected property name after '.'")

// Parser errors
var errExpectedIdentifier = errors.New("Expected variable name")
var errExpectedInitializer = errors.New("Expect '=' after variable name")
var errExpectedSemicolon = errors.New("Expect ';' after value")
var errExpectedSemicolonVar = errors.New("Expect ';' after variable declaration")
var errUnclosedParen = errors.New("Expect ')' after expression")
var errUndefinedExpr = errors.New("Undefined expression")
var errInvalidAssignTarget = errors.New("Invalid assignment target")

// Runtime errors
var errUndefinedVar = errors.New("Undefined variable")
var errOnlyNumber = errors.New("Operand must be a number")
var errOnlyNumbers = errors.New("Operands must be numbers")
var errNumbersOrStrings = errors.New("Operands must be two numbers or two strings")
var errUndefinedOp = errors.New("Undefined operator")
