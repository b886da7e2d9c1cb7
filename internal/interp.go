package internal

import (
	"io"
	"os"
)

// IPrinter is where a run writes. print statements and error reports
// both go through it, so embedders and tests can capture everything.
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// Scan tokenizes the source held by state. It reports whether the
// source scanned cleanly; the token stream is complete either way.
func Scan(state *interpreterState) bool {
	lexer := &lexer{
		line:  1,
		state: state,
	}
	lexer.scan()
	return state.Valid()
}

// Parse builds statements from the scanned tokens. It reports whether
// the whole source parsed cleanly; statements that did parse are kept.
func Parse(state *interpreterState) bool {
	parser := &parser{
		state: state,
	}
	parser.parse()
	return state.Valid()
}

// Interpret evaluates the parsed statements against environ, writing
// print output through p. It returns the runtime error that aborted
// the run, or nil.
func Interpret(state *interpreterState, environ *env, p IPrinter) error {
	exec := &execute{
		state:   state,
		env:     environ,
		printer: p,
	}
	return exec.interpret()
}

// NewGlobalEnv returns an empty variable store. A caller that reuses
// it across runs keeps the variables defined by earlier runs.
func NewGlobalEnv() *env {
	return newEnv()
}

// RunSourceWithPrinter scans, parses and interprets source against a
// fresh environment, reporting every error through p. It returns true
// when the program ran to completion without errors.
func RunSourceWithPrinter(source string, p IPrinter) bool {
	state := NewInterpreterState(source)

	Scan(state)

	if state.PrintErrors(p) {
		return false
	}

	Parse(state)

	if state.PrintErrors(p) {
		return false
	}

	if err := Interpret(state, NewGlobalEnv(), p); err != nil {
		p.Fprintln(os.Stderr, err)
		return false
	}

	return true
}
