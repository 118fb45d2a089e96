package expr

import (
	"fmt"
	"strconv"
)

// node is one element of a parsed expression tree
type node interface{}

type numberNode struct {
	value float64
}

type negateNode struct {
	operand node
}

type binaryNode struct {
	op    tokenKind
	left  node
	right node
}

type callNode struct {
	name string
	arg  node
}

// parser builds an expression tree from a token stream.
//
// Grammar, loosest to tightest binding:
//
//	expression := term (('+' | '-') term)*
//	term       := unary (('*' | '/') unary)*
//	unary      := '-' unary | factor
//	factor     := postfix ('^' unary)?
//	postfix    := primary '!'*
//	primary    := NUMBER | IDENT '(' expression ')' | '(' expression ')'
//
// Exponentiation is right-associative and binds tighter than unary
// minus, so -2^2 is -4 and 2^-1 is 0.5.
type parser struct {
	tokens   []token
	pos      int
	nesting  int
	maxDepth int
}

func newParser(tokens []token, maxDepth int) *parser {
	return &parser{tokens: tokens, maxDepth: maxDepth}
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) advance() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokenEOF {
		p.pos++
	}
	return tok
}

// parse consumes the whole token stream and returns the root node
func (p *parser) parse() (node, error) {
	root, err := p.expression()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.kind != tokenEOF {
		return nil, fmt.Errorf("%w: unexpected %q at position %d", ErrUnparseable, tok.text, tok.pos)
	}

	return root, nil
}

func (p *parser) expression() (node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}

	for {
		op := p.peek().kind
		if op != tokenPlus && op != tokenMinus {
			return left, nil
		}
		p.advance()

		right, err := p.term()
		if err != nil {
			return nil, err
		}

		left = &binaryNode{op: op, left: left, right: right}
	}
}

func (p *parser) term() (node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}

	for {
		op := p.peek().kind
		if op != tokenStar && op != tokenSlash {
			return left, nil
		}
		p.advance()

		right, err := p.unary()
		if err != nil {
			return nil, err
		}

		left = &binaryNode{op: op, left: left, right: right}
	}
}

func (p *parser) unary() (node, error) {
	if p.peek().kind == tokenMinus {
		p.advance()

		operand, err := p.unary()
		if err != nil {
			return nil, err
		}

		return &negateNode{operand: operand}, nil
	}

	return p.factor()
}

func (p *parser) factor() (node, error) {
	base, err := p.postfix()
	if err != nil {
		return nil, err
	}

	if p.peek().kind != tokenCaret {
		return base, nil
	}
	p.advance()

	// the exponent may carry its own sign, and chains right-associatively
	exponent, err := p.unary()
	if err != nil {
		return nil, err
	}

	return &binaryNode{op: tokenCaret, left: base, right: exponent}, nil
}

func (p *parser) postfix() (node, error) {
	operand, err := p.primary()
	if err != nil {
		return nil, err
	}

	// n! is shorthand for fact(n)
	for p.peek().kind == tokenBang {
		p.advance()
		operand = &callNode{name: "fact", arg: operand}
	}

	return operand, nil
}

func (p *parser) primary() (node, error) {
	tok := p.advance()

	switch tok.kind {
	case tokenNumber:
		value, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed number %q at position %d", ErrUnparseable, tok.text, tok.pos)
		}
		return &numberNode{value: value}, nil

	case tokenIdent:
		if p.peek().kind != tokenLeftParen {
			return nil, fmt.Errorf("%w: unexpected identifier %q at position %d", ErrUnparseable, tok.text, tok.pos)
		}

		name := normalizeFunction(tok.text)
		if !isAllowedFunction(name) {
			return nil, fmt.Errorf("%w: unknown function %q", ErrDisallowed, tok.text)
		}

		p.advance()
		arg, err := p.group()
		if err != nil {
			return nil, err
		}

		return &callNode{name: name, arg: arg}, nil

	case tokenLeftParen:
		return p.group()

	case tokenEOF:
		return nil, fmt.Errorf("%w: unexpected end of expression", ErrUnparseable)
	}

	return nil, fmt.Errorf("%w: unexpected %q at position %d", ErrUnparseable, tok.text, tok.pos)
}

// group parses the body of an already-opened parenthesis pair
func (p *parser) group() (node, error) {
	p.nesting++
	if p.nesting > p.maxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d levels", ErrDisallowed, p.maxDepth)
	}
	defer func() { p.nesting-- }()

	inner, err := p.expression()
	if err != nil {
		return nil, err
	}

	if closing := p.advance(); closing.kind != tokenRightParen {
		return nil, fmt.Errorf("%w: missing closing parenthesis at position %d", ErrUnparseable, closing.pos)
	}

	return inner, nil
}

// measure returns the node count and structural depth of a parsed tree
func measure(n node) (nodes, depth int) {
	switch v := n.(type) {
	case *numberNode:
		return 1, 1

	case *negateNode:
		nodes, depth = measure(v.operand)
		return nodes + 1, depth + 1

	case *binaryNode:
		leftNodes, leftDepth := measure(v.left)
		rightNodes, rightDepth := measure(v.right)
		return leftNodes + rightNodes + 1, max(leftDepth, rightDepth) + 1

	case *callNode:
		nodes, depth = measure(v.arg)
		return nodes + 1, depth + 1
	}

	return 0, 0
}

// score computes the complexity of a parsed tree. Every operator adds
// one, every distinct function adds two, and each level of structural
// depth past the first adds one. A bare number scores zero.
func score(n node, depth int) int {
	operators := 0
	functions := make(map[string]struct{})

	var walk func(node)
	walk = func(n node) {
		switch v := n.(type) {
		case *negateNode:
			operators++
			walk(v.operand)

		case *binaryNode:
			operators++
			walk(v.left)
			walk(v.right)

		case *callNode:
			functions[v.name] = struct{}{}
			walk(v.arg)
		}
	}
	walk(n)

	return operators + 2*len(functions) + (depth - 1)
}
