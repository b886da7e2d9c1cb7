package internal

// parser stores parser data
type parser struct {
	current int

	state *interpreterState
}

func (p *parser) parse() {
	for !p.isAtEnd() {
		if st := p.parseStmt(); st != nil {
			p.state.stmts = append(p.state.stmts, st)
		}
	}
}

// parseStmt builds one statement. A syntax error inside it unwinds to
// here and the parser resynchronizes on the next statement boundary,
// so one malformed statement costs one diagnostic.
func (p *parser) parseStmt() (st stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bail); !ok {
				panic(r)
			}
			st = nil
			p.synchronize()
		}
	}()
	return p.declaration()
}

func (p *parser) declaration() stmt {
	if p.match(tkVar) {
		return p.varDecl()
	}
	return p.statement()
}

func (p *parser) varDecl() stmt {
	name := p.consume(tkIdentifier, errExpectedIdentifier)

	// An initializer is mandatory: there is no implicit nil default.
	if !p.match(tkEqual) {
		p.state.fatalError(errExpectedInitializer, name.line)
	}
	init := p.expression()

	p.consume(tkSemicolon, errExpectedSemicolonVar)

	return &varStmt{
		name:        name,
		initializer: init,
	}
}

func (p *parser) statement() stmt {
	if p.match(tkPrint) {
		return p.printStmt()
	}
	return p.expressionStmt()
}

func (p *parser) printStmt() stmt {
	keyword := p.previous()
	value := p.expression()
	p.consume(tkSemicolon, errExpectedSemicolon)
	return &printStmt{
		keyword:    keyword,
		expression: value,
	}
}

func (p *parser) expressionStmt() stmt {
	expr := p.expression()
	p.consume(tkSemicolon, errExpectedSemicolon)
	return &exprStmt{
		expression: expr,
	}
}

func (p *parser) expression() expr {
	return p.assignment()
}

func (p *parser) assignment() expr {
	expr := p.equality()
	if p.match(tkEqual) {
		equal := p.previous()
		value := p.assignment()

		if variable, isVar := expr.(*variableExpr); isVar {
			return &assignExpr{
				name:  variable.name,
				value: value,
			}
		}

		p.state.fatalError(errInvalidAssignTarget, equal.line)
	}
	return expr
}

func (p *parser) equality() expr {
	expr := p.comparison()
	for p.match(tkEqualEqual, tkBangEqual) {
		operator := p.previous()
		right := p.comparison()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) comparison() expr {
	expr := p.term()
	for p.match(tkGreater, tkGreaterEqual, tkLess, tkLessEqual) {
		operator := p.previous()
		right := p.term()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) term() expr {
	expr := p.factor()
	for p.match(tkPlus, tkMinus) {
		operator := p.previous()
		right := p.factor()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) factor() expr {
	expr := p.unary()
	for p.match(tkSlash, tkStar) {
		operator := p.previous()
		right := p.unary()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) unary() expr {
	if p.match(tkBang, tkMinus) {
		operator := p.previous()
		right := p.unary()
		return &unaryExpr{
			operator: operator,
			right:    right,
		}
	}
	return p.primary()
}

func (p *parser) primary() expr {
	if p.match(tkNumber, tkString) {
		return &literalExpr{value: p.previous().literal}
	}
	if p.match(tkFalse) {
		return &literalExpr{value: false}
	}
	if p.match(tkTrue) {
		return &literalExpr{value: true}
	}
	if p.match(tkNil) {
		return &literalExpr{value: nil}
	}
	if p.match(tkIdentifier) {
		return &variableExpr{name: p.previous()}
	}
	if p.match(tkLeftParen) {
		expr := p.expression()
		p.consume(tkRightParen, errUnclosedParen)
		return &groupingExpr{expression: expr}
	}

	p.state.fatalError(errUndefinedExpr, p.peek().line)
	return &literalExpr{}
}

func (p *parser) consume(tk tokenType, err error) *token {
	if p.check(tk) {
		return p.advance()
	}

	p.state.fatalError(err, p.peek().line)
	return &token{}
}

func (p *parser) advance() *token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(tokens ...tokenType) bool {
	for _, token := range tokens {
		if p.check(token) {
			p.current++
			return true
		}
	}
	return false
}

func (p *parser) check(token tokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().token == token
}

func (p *parser) peek() token {
	return p.state.tokens[p.current]
}

func (p *parser) previous() *token {
	return &p.state.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().token == tkEOF
}

// synchronize skips tokens until the next statement boundary: just
// past a semicolon, or right before a statement keyword.
func (p *parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().token == tkSemicolon {
			return
		}
		switch p.peek().token {
		case tkClass, tkFun, tkVar, tkFor, tkIf, tkWhile, tkPrint, tkReturn:
			return
		}
		p.advance()
	}
}
