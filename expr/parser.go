package expr

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// divisionScale fractional digits of working precision for division.
// Generous enough that rounding to 8 digits at the end is exact.
const divisionScale = 24

// parser is a recursive-descent evaluator over the restricted grammar:
// numeric literals, unary sign, + - * /, parentheses. There are no
// identifiers and no calls, so a validated string cannot make it do
// anything but arithmetic.
type parser struct {
	input string
	pos   int
}

func eval(input string) (decimal.Decimal, error) {
	p := &parser{input: input}
	value, err := p.expression()
	if err != nil {
		return decimal.Decimal{}, err
	}
	p.skipSpaces()
	if p.pos != len(p.input) {
		return decimal.Decimal{}, fmt.Errorf("%w: unexpected %q", ErrSyntax, p.input[p.pos])
	}
	return value, nil
}

// expression = term { ("+" | "-") term }
func (p *parser) expression() (decimal.Decimal, error) {
	value, err := p.term()
	if err != nil {
		return decimal.Decimal{}, err
	}
	for {
		p.skipSpaces()
		switch p.peek() {
		case '+':
			p.pos++
			rhs, err := p.term()
			if err != nil {
				return decimal.Decimal{}, err
			}
			value = value.Add(rhs)
		case '-':
			p.pos++
			rhs, err := p.term()
			if err != nil {
				return decimal.Decimal{}, err
			}
			value = value.Sub(rhs)
		default:
			return value, nil
		}
	}
}

// term = factor { ("*" | "/") factor }
func (p *parser) term() (decimal.Decimal, error) {
	value, err := p.factor()
	if err != nil {
		return decimal.Decimal{}, err
	}
	for {
		p.skipSpaces()
		switch p.peek() {
		case '*':
			p.pos++
			rhs, err := p.factor()
			if err != nil {
				return decimal.Decimal{}, err
			}
			value = value.Mul(rhs)
		case '/':
			p.pos++
			rhs, err := p.factor()
			if err != nil {
				return decimal.Decimal{}, err
			}
			if rhs.IsZero() {
				return decimal.Decimal{}, ErrDivisionByZero
			}
			value = value.DivRound(rhs, divisionScale)
		default:
			return value, nil
		}
	}
}

// factor = number | "(" expression ")" | ("+" | "-") factor
func (p *parser) factor() (decimal.Decimal, error) {
	p.skipSpaces()
	switch p.peek() {
	case '(':
		p.pos++
		value, err := p.expression()
		if err != nil {
			return decimal.Decimal{}, err
		}
		p.skipSpaces()
		if p.peek() != ')' {
			return decimal.Decimal{}, fmt.Errorf("%w: missing closing parenthesis", ErrSyntax)
		}
		p.pos++
		return value, nil
	case '+':
		p.pos++
		return p.factor()
	case '-':
		p.pos++
		value, err := p.factor()
		if err != nil {
			return decimal.Decimal{}, err
		}
		return value.Neg(), nil
	default:
		return p.number()
	}
}

func (p *parser) number() (decimal.Decimal, error) {
	start := p.pos
	for p.pos < len(p.input) && (isDigit(p.input[p.pos]) || p.input[p.pos] == '.') {
		p.pos++
	}
	if p.pos == start {
		if p.pos == len(p.input) {
			return decimal.Decimal{}, fmt.Errorf("%w: unexpected end of expression", ErrSyntax)
		}
		return decimal.Decimal{}, fmt.Errorf("%w: unexpected %q", ErrSyntax, p.input[p.pos])
	}
	value, err := decimal.NewFromString(p.input[start:p.pos])
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: bad number %q", ErrInvalidOperation, p.input[start:p.pos])
	}
	return value, nil
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
