package expr

import (
	"fmt"
)

// tokenKind identifies the lexical class of a token
type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenNumber
	tokenIdent
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenCaret
	tokenBang
	tokenLeftParen
	tokenRightParen
)

// token is a single lexical unit of an expression
type token struct {
	kind tokenKind
	text string
	pos  int
}

// lexer splits an expression into tokens
type lexer struct {
	input []rune
	pos   int
}

func newLexer(input string) *lexer {
	return &lexer{input: []rune(input)}
}

// tokens scans the whole input, ending with an EOF token
func (l *lexer) tokens() ([]token, error) {
	var out []token

	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}

		out = append(out, tok)
		if tok.kind == tokenEOF {
			return out, nil
		}
	}
}

func (l *lexer) next() (token, error) {
	l.skipSpace()

	if l.pos >= len(l.input) {
		return token{kind: tokenEOF, pos: l.pos}, nil
	}

	start := l.pos
	r := l.input[l.pos]

	switch {
	case r == '+':
		l.pos++
		return token{kind: tokenPlus, text: "+", pos: start}, nil
	case r == '-':
		l.pos++
		return token{kind: tokenMinus, text: "-", pos: start}, nil
	case r == '*':
		l.pos++
		return token{kind: tokenStar, text: "*", pos: start}, nil
	case r == '/':
		l.pos++
		return token{kind: tokenSlash, text: "/", pos: start}, nil
	case r == '^':
		l.pos++
		return token{kind: tokenCaret, text: "^", pos: start}, nil
	case r == '!':
		l.pos++
		return token{kind: tokenBang, text: "!", pos: start}, nil
	case r == '(':
		l.pos++
		return token{kind: tokenLeftParen, text: "(", pos: start}, nil
	case r == ')':
		l.pos++
		return token{kind: tokenRightParen, text: ")", pos: start}, nil
	case isDigit(r) || r == '.':
		return l.number()
	case isLetter(r):
		return l.ident()
	}

	return token{}, fmt.Errorf("%w: unexpected character %q at position %d", ErrUnparseable, r, start)
}

// number scans digits with at most one decimal point
func (l *lexer) number() (token, error) {
	start := l.pos
	sawDigit := false
	sawDot := false

	for l.pos < len(l.input) {
		r := l.input[l.pos]

		if isDigit(r) {
			sawDigit = true
			l.pos++
			continue
		}

		if r == '.' && !sawDot {
			sawDot = true
			l.pos++
			continue
		}

		break
	}

	text := string(l.input[start:l.pos])
	if !sawDigit {
		return token{}, fmt.Errorf("%w: malformed number %q at position %d", ErrUnparseable, text, start)
	}

	return token{kind: tokenNumber, text: text, pos: start}, nil
}

func (l *lexer) ident() (token, error) {
	start := l.pos

	for l.pos < len(l.input) {
		r := l.input[l.pos]
		if !isLetter(r) && !isDigit(r) {
			break
		}
		l.pos++
	}

	return token{kind: tokenIdent, text: string(l.input[start:l.pos]), pos: start}, nil
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.input) {
		r := l.input[l.pos]
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return
		}
		l.pos++
	}
}

// ASCII only, so strconv can parse everything the lexer accepts
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
