// Package calc evaluates the arithmetic expressions allowed inside calc()
// field specs. The grammar is deliberately narrow: numeric literals, the four
// basic operators, parentheses, and unary minus. Nothing else is accepted, so
// template-supplied strings can never reach anything resembling a general
// evaluator.
package calc

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Eval evaluates an arithmetic expression and returns its value.
func Eval(expr string) (float64, error) {
	p := &parser{input: expr}

	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}

	p.skipSpace()
	if p.pos < len(p.input) {
		return 0, fmt.Errorf("unexpected %q at position %d", p.input[p.pos], p.pos)
	}

	return v, nil
}

// parser is a recursive-descent parser over the expression string.
//
// expr   = term   { ("+" | "-") term }
// term   = factor { ("*" | "/") factor }
// factor = number | "-" factor | "(" expr ")"
type parser struct {
	input string
	pos   int
}

func (p *parser) parseExpr() (float64, error) {
	v, err := p.parseTerm()
	if err != nil {
		return 0, err
	}

	for {
		p.skipSpace()

		switch p.peek() {
		case '+':
			p.pos++

			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v += rhs
		case '-':
			p.pos++

			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v -= rhs
		default:
			return v, nil
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	v, err := p.parseFactor()
	if err != nil {
		return 0, err
	}

	for {
		p.skipSpace()

		switch p.peek() {
		case '*':
			p.pos++

			rhs, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			v *= rhs
		case '/':
			p.pos++

			rhs, err := p.parseFactor()
			if err != nil {
				return 0, err
			}

			if rhs == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			v /= rhs
		default:
			return v, nil
		}
	}
}

func (p *parser) parseFactor() (float64, error) {
	p.skipSpace()

	switch {
	case p.peek() == '-':
		p.pos++

		v, err := p.parseFactor()
		if err != nil {
			return 0, err
		}

		return -v, nil

	case p.peek() == '(':
		p.pos++

		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}

		p.skipSpace()
		if p.peek() != ')' {
			return 0, fmt.Errorf("missing closing parenthesis")
		}
		p.pos++

		return v, nil

	default:
		return p.parseNumber()
	}
}

func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) && (unicode.IsDigit(rune(p.input[p.pos])) || p.input[p.pos] == '.') {
		p.pos++
	}

	if p.pos == start {
		if p.pos >= len(p.input) {
			return 0, fmt.Errorf("unexpected end of expression")
		}

		return 0, fmt.Errorf("unexpected %q at position %d", p.input[p.pos], p.pos)
	}

	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q: %w", p.input[start:p.pos], err)
	}

	return v, nil
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}

	return p.input[p.pos]
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && strings.ContainsRune(" \t", rune(p.input[p.pos])) {
		p.pos++
	}
}
