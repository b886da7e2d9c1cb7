package internal

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func checkTree(t *testing.T, source string, lines ...string) {
	t.Helper()
	state := NewInterpreterState(source)
	if !Scan(state) {
		t.Fatalf("unexpected scan errors in %q: %v", source, state.Errors())
	}
	if !Parse(state) {
		t.Fatalf("unexpected parse errors in %q: %v", source, state.Errors())
	}

	tp := &testPrinter{}
	PrintTree(state, tp)

	want := strings.Join(lines, "\n") + "\n"
	if diff := cmp.Diff(want, tp.printed); diff != "" {
		t.Errorf("tree mismatch for %q (-want +got):\n%s", source, diff)
	}
}

func checkParseError(t *testing.T, source string, want error, line int) {
	t.Helper()
	state := NewInterpreterState(source)
	if !Scan(state) {
		t.Fatalf("unexpected scan errors in %q: %v", source, state.Errors())
	}
	if Parse(state) {
		t.Fatalf("expected a parse error in %q", source)
	}
	for _, err := range state.Errors() {
		var syntaxErr *SyntaxError
		if errors.As(err, &syntaxErr) && errors.Is(syntaxErr, want) && syntaxErr.Line == line {
			return
		}
	}
	t.Errorf("missing parse error %q on line %d in %q, got %v", want, line, source, state.Errors())
}

func TestParsePrecedence(t *testing.T) {
	checkTree(t, "1 + 2 * 3;", "(+ 1 (* 2 3))")
	checkTree(t, "(1 + 2) * 3;", "(* (group (+ 1 2)) 3)")
	checkTree(t, "1 + 2 - 3;", "(- (+ 1 2) 3)")
	checkTree(t, "2 * 3 / 4;", "(/ (* 2 3) 4)")
	checkTree(t, "1 < 2 == true;", "(== (< 1 2) true)")
	checkTree(t, "-1 * 2;", "(* (- 1) 2)")
	checkTree(t, "!true == false;", "(== (! true) false)")
	checkTree(t, "--1;", "(- (- 1))")
	checkTree(t, "1 >= 2 != 2 <= 3;", "(!= (>= 1 2) (<= 2 3))")
}

func TestParseAssignment(t *testing.T) {
	checkTree(t, "x = x + 1;", "(set x (+ x 1))")

	// Assignment nests to the right
	checkTree(t, "a = b = 3;", "(set a (set b 3))")
	checkTree(t, "a = 1 == 2;", "(set a (== 1 2))")
}

func TestParseStatements(t *testing.T) {
	checkTree(t, "print 1 + 2;", "(print (+ 1 2))")
	checkTree(t, "var x = 1;", "(var x 1)")
	checkTree(t, `print "hi";`, `(print "hi")`)
	checkTree(t, "nil == nil;", "(== nil nil)")
	checkTree(t, "print 2.5;", "(print 2.5)")
	checkTree(t,
		"var x = 1;\nprint x;\nx = x * 2;",
		"(var x 1)",
		"(print x)",
		"(set x (* x 2))",
	)
}

func TestParseErrors(t *testing.T) {
	checkParseError(t, "var x;", errExpectedInitializer, 1)
	checkParseError(t, "var 1 = 2;", errExpectedIdentifier, 1)
	checkParseError(t, "(1 + 2;", errUnclosedParen, 1)
	checkParseError(t, "1 + 2", errExpectedSemicolon, 1)
	checkParseError(t, "print 1", errExpectedSemicolon, 1)
	checkParseError(t, "var x = 1", errExpectedSemicolonVar, 1)
	checkParseError(t, "(x) = 3;", errInvalidAssignTarget, 1)
	checkParseError(t, "+;", errUndefinedExpr, 1)
	checkParseError(t, "1 +\n;", errUndefinedExpr, 2)
}

func TestParseSynchronize(t *testing.T) {
	// Two broken statements, each reported once, and the parser still
	// recovers the good declaration after them.
	state := NewInterpreterState("var x;\nprint (1;\nvar y = 2;")
	if !Scan(state) {
		t.Fatalf("unexpected scan errors: %v", state.Errors())
	}
	if Parse(state) {
		t.Fatal("expected parse errors")
	}
	if len(state.errors) != 2 {
		t.Fatalf("want two errors, got %v", state.Errors())
	}
	if !errors.Is(state.errors[0], errExpectedInitializer) || state.errors[0].Line != 1 {
		t.Errorf("first error = %v, want %v on line 1", state.errors[0], errExpectedInitializer)
	}
	if !errors.Is(state.errors[1], errUnclosedParen) || state.errors[1].Line != 2 {
		t.Errorf("second error = %v, want %v on line 2", state.errors[1], errUnclosedParen)
	}

	tp := &testPrinter{}
	PrintTree(state, tp)
	if !tp.Equals("(var y 2)") {
		t.Errorf("recovered tree = %q, want the trailing declaration", tp.printed)
	}
}
