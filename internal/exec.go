package internal

// execute walks parsed statements against an environment
type execute struct {
	state *interpreterState

	env     *env
	printer IPrinter
}

// interpret runs the statements in order. The first runtime error
// unwinds out of the walk and is returned; nothing after it executes.
func (e *execute) interpret() (err error) {
	defer func() {
		if r := recover(); r != nil {
			runErr, ok := r.(*RuntimeError)
			if !ok {
				panic(r)
			}
			err = runErr
		}
	}()
	for _, s := range e.state.stmts {
		e.execStmt(s)
	}
	return nil
}

func (e *execute) execStmt(st stmt) {
	switch stmt := st.(type) {
	case *exprStmt:
		e.eval(stmt.expression)
	case *printStmt:
		value := e.eval(stmt.expression)
		e.printer.Println(stringify(value))
	case *varStmt:
		value := e.eval(stmt.initializer)
		e.env.define(stmt.name.lexeme, value)
	}
}

func (e *execute) eval(ex expr) interface{} {
	switch expr := ex.(type) {
	case *literalExpr:
		return expr.value
	case *groupingExpr:
		return e.eval(expr.expression)
	case *variableExpr:
		return e.env.get(expr.name)
	case *assignExpr:
		value := e.eval(expr.value)
		e.env.assign(expr.name, value)
		return value
	case *unaryExpr:
		return e.evalUnary(expr)
	case *binaryExpr:
		return e.evalBinary(expr)
	}
	return nil
}

func (e *execute) evalUnary(expr *unaryExpr) interface{} {
	value := e.eval(expr.right)
	switch expr.operator.token {
	case tkBang:
		return !truthy(value)
	case tkMinus:
		valueNum, ok := value.(float64)
		if !ok {
			runtimeErr(errOnlyNumber, expr.operator)
		}
		return -valueNum
	default:
		runtimeErr(errUndefinedOp, expr.operator)
	}
	return nil
}

func (e *execute) evalBinary(expr *binaryExpr) interface{} {
	left := e.eval(expr.left)
	right := e.eval(expr.right)
	switch expr.operator.token {
	case tkEqualEqual:
		return left == right
	case tkBangEqual:
		return left != right
	case tkGreater:
		leftNum, rightNum := e.getNums(expr, left, right)
		return leftNum > rightNum
	case tkGreaterEqual:
		leftNum, rightNum := e.getNums(expr, left, right)
		return leftNum >= rightNum
	case tkLess:
		leftNum, rightNum := e.getNums(expr, left, right)
		return leftNum < rightNum
	case tkLessEqual:
		leftNum, rightNum := e.getNums(expr, left, right)
		return leftNum <= rightNum
	case tkMinus:
		leftNum, rightNum := e.getNums(expr, left, right)
		return leftNum - rightNum
	case tkSlash:
		leftNum, rightNum := e.getNums(expr, left, right)
		return leftNum / rightNum
	case tkStar:
		leftNum, rightNum := e.getNums(expr, left, right)
		return leftNum * rightNum
	case tkPlus:
		return e.add(expr, left, right)
	default:
		runtimeErr(errUndefinedOp, expr.operator)
	}
	return nil
}

// add handles the one overloaded operator: numeric addition when both
// sides are numbers, concatenation when both are strings. There is no
// coercion between the two.
func (e *execute) add(expr *binaryExpr, left, right interface{}) interface{} {
	leftNum, leftIsNum := left.(float64)
	rightNum, rightIsNum := right.(float64)
	if leftIsNum && rightIsNum {
		return leftNum + rightNum
	}

	leftStr, leftIsStr := left.(string)
	rightStr, rightIsStr := right.(string)
	if leftIsStr && rightIsStr {
		return leftStr + rightStr
	}

	runtimeErr(errNumbersOrStrings, expr.operator)
	return nil
}

func (e *execute) getNums(binExpr *binaryExpr, left, right interface{}) (float64, float64) {
	leftNum, ok := left.(float64)
	if !ok {
		runtimeErr(errOnlyNumbers, binExpr.operator)
	}
	rightNum, ok := right.(float64)
	if !ok {
		runtimeErr(errOnlyNumbers, binExpr.operator)
	}
	return leftNum, rightNum
}
