package internal

import "fmt"

// PrintTokens writes the scanned token stream through p, one token
// per line.
func PrintTokens(state *interpreterState, p IPrinter) {
	for _, tk := range state.tokens {
		p.Println(tk)
	}
}

// PrintTree writes the parsed statements through p as s-expressions,
// one statement per line.
func PrintTree(state *interpreterState, p IPrinter) {
	for _, st := range state.stmts {
		p.Println(stmtString(st))
	}
}

func stmtString(st stmt) string {
	switch stmt := st.(type) {
	case *exprStmt:
		return exprString(stmt.expression)
	case *printStmt:
		return fmt.Sprintf("(print %s)", exprString(stmt.expression))
	case *varStmt:
		return fmt.Sprintf("(var %s %s)", stmt.name.lexeme, exprString(stmt.initializer))
	}
	return ""
}

func exprString(ex expr) string {
	switch expr := ex.(type) {
	case *literalExpr:
		if stringLiteral, isString := expr.value.(string); isString {
			return "\"" + stringLiteral + "\""
		}
		if expr.value == nil {
			return "nil"
		}
		return fmt.Sprintf("%v", expr.value)
	case *unaryExpr:
		return fmt.Sprintf("(%s %s)", expr.operator.lexeme, exprString(expr.right))
	case *binaryExpr:
		return fmt.Sprintf("(%s %s %s)", expr.operator.lexeme, exprString(expr.left), exprString(expr.right))
	case *groupingExpr:
		return fmt.Sprintf("(group %s)", exprString(expr.expression))
	case *variableExpr:
		return expr.name.lexeme
	case *assignExpr:
		return fmt.Sprintf("(set %s %s)", expr.name.lexeme, exprString(expr.value))
	}
	return ""
}
