package internal

// stmt variants mirror the statement grammar: expression statements,
// print statements and variable declarations.
type stmt interface {
	stmtNode()
}

type exprStmt struct {
	expression expr
}

type printStmt struct {
	keyword    *token
	expression expr
}

type varStmt struct {
	name        *token
	initializer expr
}

func (*exprStmt) stmtNode()  {}
func (*printStmt) stmtNode() {}
func (*varStmt) stmtNode()   {}
