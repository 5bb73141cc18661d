package calculator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Evaluate evaluates an expression against the calculator's bindings.
//
// Supported grammar: floating point literals, the constant pi, bound variable
// names, unary minus, the binary operators + - * /, parentheses, and the
// function calls cos, sin, tan, acos, asin, atan, atan2, sqrt, exp, log, abs
// and sign.
func (c *Calculator) Evaluate(expr string) (float64, error) {
	p := &evalParser{input: expr, calc: c}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return 0, CalculatorError{Msg: fmt.Sprintf("unexpected %q at position %d in %q", p.input[p.pos], p.pos, p.input)}
	}
	return v, nil
}

type evalParser struct {
	input string
	pos   int
	calc  *Calculator
}

func (p *evalParser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *evalParser) peek() byte {
	if p.pos < len(p.input) {
		return p.input[p.pos]
	}
	return 0
}

func (p *evalParser) parseExpr() (float64, error) {
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

func (p *evalParser) parseTerm() (float64, error) {
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
			v /= rhs
		default:
			return v, nil
		}
	}
}

func (p *evalParser) parseFactor() (float64, error) {
	p.skipSpace()
	if p.peek() == '-' {
		p.pos++
		v, err := p.parseFactor()
		return -v, err
	}
	return p.parsePrimary()
}

func (p *evalParser) parsePrimary() (float64, error) {
	p.skipSpace()
	ch := p.peek()
	switch {
	case ch == '(':
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return 0, CalculatorError{Msg: fmt.Sprintf("missing closing parenthesis in %q", p.input)}
		}
		p.pos++
		return v, nil
	case ch >= '0' && ch <= '9' || ch == '.':
		return p.parseNumber()
	case isIdentStart(ch):
		return p.parseIdent()
	}
	return 0, CalculatorError{Msg: fmt.Sprintf("unexpected input at position %d in %q", p.pos, p.input)}
}

func (p *evalParser) parseNumber() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) {
		ch := p.input[p.pos]
		if ch >= '0' && ch <= '9' || ch == '.' {
			p.pos++
			continue
		}
		// scientific notation
		if (ch == 'e' || ch == 'E') && p.pos > start {
			next := p.pos + 1
			if next < len(p.input) && (p.input[next] == '+' || p.input[next] == '-') {
				next++
			}
			if next < len(p.input) && p.input[next] >= '0' && p.input[next] <= '9' {
				p.pos = next
				continue
			}
		}
		break
	}
	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, CalculatorError{Msg: fmt.Sprintf("invalid number %q", p.input[start:p.pos])}
	}
	return v, nil
}

func isIdentStart(ch byte) bool {
	return ch == '_' || unicode.IsLetter(rune(ch))
}

func isIdentPart(ch byte) bool {
	return ch == '_' || unicode.IsLetter(rune(ch)) || unicode.IsDigit(rune(ch))
}

var unaryFuncs = map[string]func(float64) float64{
	"cos":  math.Cos,
	"sin":  math.Sin,
	"tan":  math.Tan,
	"acos": math.Acos,
	"asin": math.Asin,
	"atan": math.Atan,
	"sqrt": math.Sqrt,
	"exp":  math.Exp,
	"log":  math.Log,
	"abs":  math.Abs,
	"sign": func(x float64) float64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return 0
		}
	},
}

func (p *evalParser) parseIdent() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) && isIdentPart(p.input[p.pos]) {
		p.pos++
	}
	name := p.input[start:p.pos]

	p.skipSpace()
	if p.peek() == '(' {
		p.pos++
		arg, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if strings.EqualFold(name, "atan2") {
			p.skipSpace()
			if p.peek() != ',' {
				return 0, CalculatorError{Msg: "atan2 requires two arguments"}
			}
			p.pos++
			arg2, err := p.parseExpr()
			if err != nil {
				return 0, err
			}
			p.skipSpace()
			if p.peek() != ')' {
				return 0, CalculatorError{Msg: fmt.Sprintf("missing closing parenthesis in %q", p.input)}
			}
			p.pos++
			return math.Atan2(arg, arg2), nil
		}
		p.skipSpace()
		if p.peek() != ')' {
			return 0, CalculatorError{Msg: fmt.Sprintf("missing closing parenthesis in %q", p.input)}
		}
		p.pos++
		f, ok := unaryFuncs[strings.ToLower(name)]
		if !ok {
			return 0, CalculatorError{Msg: fmt.Sprintf("unknown function %q", name)}
		}
		return f(arg), nil
	}

	if strings.EqualFold(name, "pi") {
		return math.Pi, nil
	}
	if v, ok := p.calc.Get(name); ok {
		return v, nil
	}
	return 0, CalculatorError{Msg: fmt.Sprintf("variable %q not set", name)}
}
