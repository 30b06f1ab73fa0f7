package regex

import (
	"github.com/npillmayer/rexa"
)

// Characters with a special meaning. Every other character is a literal.
const (
	opAlt    = '|'
	opStar   = '*'
	opPlus   = '+'
	opOpen   = '('
	opClose  = ')'
	opEscape = '\\'
)

func isOperator(r rune) bool {
	switch r {
	case opAlt, opStar, opPlus, opOpen, opClose, opEscape:
		return true
	}
	return false
}

// parser is a recursive descent parser with one rune of lookahead.
type parser struct {
	input []rune
	pos   int // index of lookahead rune
	depth int // nesting level of parentheses
}

const eof = -1

func (p *parser) peek() rune {
	if p.pos >= len(p.input) {
		return eof
	}
	return p.input[p.pos]
}

func (p *parser) advance() rune {
	r := p.peek()
	if r != eof {
		p.pos++
	}
	return r
}

// Parse parses a regular expression and returns its syntax tree.
// The complete input has to be consumed, otherwise Parse fails.
// Errors are of type *SyntaxError.
func Parse(expr string) (Node, error) {
	p := &parser{input: []rune(expr)}
	if len(p.input) == 0 {
		return nil, syntaxError(EmptyExpression, 0, "regular expression is empty")
	}
	tree, err := p.expression()
	if err != nil {
		return nil, err
	}
	if p.peek() != eof { // only a stray ')' may stop the expression early
		if p.peek() == opClose {
			return nil, syntaxError(UnbalancedParens, p.pos, "')' without matching '('")
		}
		return nil, syntaxError(UnexpectedToken, p.pos, "unexpected %q", p.peek())
	}
	tracer().Debugf("parsed %q as %s", expr, tree)
	return tree, nil
}

// expression ::= term ( '|' term )*
func (p *parser) expression() (Node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.peek() == opAlt {
		p.advance()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &Alternation{Left: left, Right: right}
	}
	return left, nil
}

// term ::= factor factor*
func (p *parser) term() (Node, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.startsPrimary() {
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = &Concat{Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) startsPrimary() bool {
	r := p.peek()
	return r == opOpen || r == opEscape || (r != eof && !isOperator(r))
}

// factor ::= primary ( '*' | '+' )*
func (p *parser) factor() (Node, error) {
	node, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek() {
		case opStar:
			p.advance()
			node = &Star{Child: node}
		case opPlus:
			p.advance()
			node = &Plus{Child: node}
		default:
			return node, nil
		}
	}
}

// primary ::= literal | '(' expression ')' | '\' any
func (p *parser) primary() (Node, error) {
	at := p.pos
	switch r := p.peek(); r {
	case eof:
		if p.depth > 0 {
			return nil, syntaxError(UnbalancedParens, at, "input ends inside a group, missing ')'")
		}
		return nil, syntaxError(EmptyExpression, at, "input ends where an operand is expected")
	case opEscape:
		p.advance()
		if p.peek() == eof {
			return nil, syntaxError(UnexpectedToken, at, "dangling escape at end of input")
		}
		return &Literal{Sym: rexa.Symbol(p.advance())}, nil
	case opOpen:
		p.advance()
		p.depth++
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if p.peek() != opClose {
			return nil, syntaxError(UnbalancedParens, at, "'(' without matching ')'")
		}
		p.advance()
		p.depth--
		return inner, nil
	case opClose:
		if p.depth == 0 {
			return nil, syntaxError(UnbalancedParens, at, "')' without matching '('")
		}
		return nil, syntaxError(EmptyExpression, at, "empty group or alternative")
	case opAlt:
		return nil, syntaxError(EmptyExpression, at, "empty alternative")
	case opStar, opPlus:
		return nil, syntaxError(UnexpectedToken, at, "operator %q has no operand", r)
	default:
		p.advance()
		return &Literal{Sym: rexa.Symbol(r)}, nil
	}
}

// MustParse is like Parse, but panics on errors. Intended for tests and
// for expressions known to be valid.
func MustParse(expr string) Node {
	tree, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return tree
}
