package internal

// expr is the expression tree. The set of variants is closed: every
// consumer switches over exactly these types.
type expr interface {
	exprNode()
}

type literalExpr struct {
	value interface{}
}

type unaryExpr struct {
	operator *token
	right    expr
}

type binaryExpr struct {
	left     expr
	operator *token
	right    expr
}

type groupingExpr struct {
	expression expr
}

type variableExpr struct {
	name *token
}

type assignExpr struct {
	name  *token
	value expr
}

func (*literalExpr) exprNode()  {}
func (*unaryExpr) exprNode()    {}
func (*binaryExpr) exprNode()   {}
func (*groupingExpr) exprNode() {}
func (*variableExpr) exprNode() {}
func (*assignExpr) exprNode()   {}
