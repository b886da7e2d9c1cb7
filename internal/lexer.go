package internal

import (
	"strconv"
)

// lexer walks the source held by state and appends tokens to it
type lexer struct {
	start   int
	current int
	line    int

	state *interpreterState
}

var keywords = map[string]tokenType{
	"and":    tkAnd,
	"class":  tkClass,
	"else":   tkElse,
	"false":  tkFalse,
	"fun":    tkFun,
	"for":    tkFor,
	"if":     tkIf,
	"nil":    tkNil,
	"or":     tkOr,
	"print":  tkPrint,
	"return": tkReturn,
	"super":  tkSuper,
	"this":   tkThis,
	"true":   tkTrue,
	"var":    tkVar,
	"while":  tkWhile,
}

func (l *lexer) scan() {
	for !l.isAtEnd() {
		l.start = l.current
		l.scanToken()
	}
	l.start = l.current
	l.emit(tkEOF, nil)
}

func (l *lexer) scanToken() {
	c := l.advance()
	switch c {
	case '(':
		l.emit(tkLeftParen, nil)
	case ')':
		l.emit(tkRightParen, nil)
	case '{':
		l.emit(tkLeftBrace, nil)
	case '}':
		l.emit(tkRightBrace, nil)
	case ',':
		l.emit(tkComma, nil)
	case '.':
		l.emit(tkDot, nil)
	case '-':
		l.emit(tkMinus, nil)
	case '+':
		l.emit(tkPlus, nil)
	case ';':
		l.emit(tkSemicolon, nil)
	case '*':
		l.emit(tkStar, nil)
	case '/':
		if l.match('/') {
			for !l.isAtEnd() && l.peek() != '\n' {
				l.advance()
			}
		} else {
			l.emit(tkSlash, nil)
		}
	case '!':
		if l.match('=') {
			l.emit(tkBangEqual, nil)
		} else {
			l.emit(tkBang, nil)
		}
	case '=':
		if l.match('=') {
			l.emit(tkEqualEqual, nil)
		} else {
			l.emit(tkEqual, nil)
		}
	case '<':
		if l.match('=') {
			l.emit(tkLessEqual, nil)
		} else {
			l.emit(tkLess, nil)
		}
	case '>':
		if l.match('=') {
			l.emit(tkGreaterEqual, nil)
		} else {
			l.emit(tkGreater, nil)
		}

	// Ignore whitespace
	case ' ', '\r', '\t':

	case '\n':
		l.line++

	case '"':
		l.string()

	default:
		if isDigit(c) {
			l.number()
		} else if isAlpha(c) {
			l.identifier()
		} else {
			l.state.setError(errUnexpectedChar, l.line)
		}
	}
}

// string consumes a literal up to the closing quote. The token keeps
// the line the literal opened on; the line counter catches up on the
// embedded newlines after the token is emitted.
func (l *lexer) string() {
	newLines := 0
	for !l.isAtEnd() && l.peek() != '"' {
		if l.peek() == '\n' {
			newLines++
		}
		l.advance()
	}

	if l.isAtEnd() {
		l.state.setError(errUnterminatedString, l.line)
		return
	}

	// Consume closing "
	l.advance()

	literal := l.state.source[l.start+1 : l.current-1]
	l.emit(tkString, literal)
	l.line += newLines
}

// number consumes an integer or decimal literal. A '.' with no digit
// behind it is an error; the partial number is dropped and scanning
// picks up again at the '.'.
func (l *lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' {
		if !isDigit(l.peekNext()) {
			l.state.setError(errExpectedProp, l.line)
			return
		}
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	literal, _ := strconv.ParseFloat(l.state.source[l.start:l.current], 64)

	l.emit(tkNumber, literal)
}

func (l *lexer) identifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}

	word := l.state.source[l.start:l.current]

	tk, ok := keywords[word]
	if !ok {
		tk = tkIdentifier
	}

	l.emit(tk, nil)
}

func (l *lexer) advance() rune {
	c := l.state.source[l.current]
	l.current++
	return rune(c)
}

func (l *lexer) match(c rune) bool {
	if l.isAtEnd() || rune(l.state.source[l.current]) != c {
		return false
	}
	l.current++
	return true
}

func (l *lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	return rune(l.state.source[l.current])
}

func (l *lexer) peekNext() rune {
	if l.current+1 >= len(l.state.source) {
		return 0
	}
	return rune(l.state.source[l.current+1])
}

func (l *lexer) emit(tk tokenType, literal interface{}) {
	l.state.tokens = append(l.state.tokens, token{
		token:   tk,
		lexeme:  l.state.source[l.start:l.current],
		literal: literal,
		line:    l.line,
	})
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.state.source)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c rune) bool {
	return isAlpha(c) || isDigit(c)
}
