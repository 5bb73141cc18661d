// Package calculator provides the symbolic scalar type used by quantum
// operations: a value that is either a concrete float64 or a symbolic
// expression, with total arithmetic and a single fallible conversion to
// float64.
package calculator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CalculatorError reports a failed evaluation or conversion of a symbolic
// value, e.g. an unresolved variable name.
type CalculatorError struct {
	Msg string
}

func (e CalculatorError) Error() string {
	return "calculator: " + e.Msg
}

// CalculatorFloat is a real scalar that is either numeric or a symbolic
// expression. The zero value is numeric 0.
type CalculatorFloat struct {
	value    float64
	expr     string
	symbolic bool
}

// New returns a numeric CalculatorFloat.
func New(value float64) CalculatorFloat {
	return CalculatorFloat{value: value}
}

// NewSymbolic returns a CalculatorFloat from an expression string.
// Strings that parse as plain floats fold to numeric values.
func NewSymbolic(expr string) CalculatorFloat {
	expr = strings.TrimSpace(expr)
	if v, err := strconv.ParseFloat(expr, 64); err == nil {
		return CalculatorFloat{value: v}
	}
	return CalculatorFloat{expr: expr, symbolic: true}
}

// IsFloat reports whether the value is numeric.
func (c CalculatorFloat) IsFloat() bool {
	return !c.symbolic
}

// Float returns the numeric value, or a CalculatorError if symbolic terms
// remain. This is the only fallible boundary of the scalar type.
func (c CalculatorFloat) Float() (float64, error) {
	if c.symbolic {
		return 0, CalculatorError{Msg: fmt.Sprintf("symbolic value %q cannot be converted to float", c.expr)}
	}
	return c.value, nil
}

// String renders numeric values using pi notation when possible and symbolic
// values as their expression.
func (c CalculatorFloat) String() string {
	if c.symbolic {
		return c.expr
	}
	return FormatFloat(c.value)
}

func binary(a, b CalculatorFloat, op string, f func(x, y float64) float64) CalculatorFloat {
	if !a.symbolic && !b.symbolic {
		return New(f(a.value, b.value))
	}
	return CalculatorFloat{
		expr:     "(" + a.String() + " " + op + " " + b.String() + ")",
		symbolic: true,
	}
}

func unary(a CalculatorFloat, name string, f func(x float64) float64) CalculatorFloat {
	if !a.symbolic {
		return New(f(a.value))
	}
	return CalculatorFloat{expr: name + "(" + a.expr + ")", symbolic: true}
}

// Add returns c + o.
func (c CalculatorFloat) Add(o CalculatorFloat) CalculatorFloat {
	return binary(c, o, "+", func(x, y float64) float64 { return x + y })
}

// Sub returns c - o.
func (c CalculatorFloat) Sub(o CalculatorFloat) CalculatorFloat {
	return binary(c, o, "-", func(x, y float64) float64 { return x - y })
}

// Mul returns c * o.
func (c CalculatorFloat) Mul(o CalculatorFloat) CalculatorFloat {
	return binary(c, o, "*", func(x, y float64) float64 { return x * y })
}

// Div returns c / o.
func (c CalculatorFloat) Div(o CalculatorFloat) CalculatorFloat {
	return binary(c, o, "/", func(x, y float64) float64 { return x / y })
}

// Neg returns -c.
func (c CalculatorFloat) Neg() CalculatorFloat {
	if !c.symbolic {
		return New(-c.value)
	}
	return CalculatorFloat{expr: "(-" + c.expr + ")", symbolic: true}
}

// Cos returns cos(c).
func (c CalculatorFloat) Cos() CalculatorFloat { return unary(c, "cos", math.Cos) }

// Sin returns sin(c).
func (c CalculatorFloat) Sin() CalculatorFloat { return unary(c, "sin", math.Sin) }

// Sqrt returns sqrt(c).
func (c CalculatorFloat) Sqrt() CalculatorFloat { return unary(c, "sqrt", math.Sqrt) }

// Exp returns exp(c).
func (c CalculatorFloat) Exp() CalculatorFloat { return unary(c, "exp", math.Exp) }

// Abs returns |c|.
func (c CalculatorFloat) Abs() CalculatorFloat { return unary(c, "abs", math.Abs) }

// Signum returns the sign of c as -1, 0 or 1.
func (c CalculatorFloat) Signum() CalculatorFloat {
	return unary(c, "sign", func(x float64) float64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return 0
		}
	})
}

// Atan2 returns atan2(c, o).
func (c CalculatorFloat) Atan2(o CalculatorFloat) CalculatorFloat {
	if !c.symbolic && !o.symbolic {
		return New(math.Atan2(c.value, o.value))
	}
	return CalculatorFloat{
		expr:     "atan2(" + c.String() + ", " + o.String() + ")",
		symbolic: true,
	}
}

// Substitute evaluates any symbolic expression against the calculator's
// variable bindings and returns a numeric value. Numeric values are returned
// unchanged.
func (c CalculatorFloat) Substitute(calc *Calculator) (CalculatorFloat, error) {
	if !c.symbolic {
		return c, nil
	}
	v, err := calc.Evaluate(c.expr)
	if err != nil {
		return CalculatorFloat{}, err
	}
	return New(v), nil
}

// Equal reports structural equality: numeric values compare by value,
// symbolic values by expression.
func (c CalculatorFloat) Equal(o CalculatorFloat) bool {
	if c.symbolic != o.symbolic {
		return false
	}
	if c.symbolic {
		return c.expr == o.expr
	}
	return c.value == o.value
}

// Calculator holds variable bindings for evaluating symbolic expressions.
type Calculator struct {
	vars map[string]float64
}

// NewCalculator returns an empty calculator.
func NewCalculator() *Calculator {
	return &Calculator{vars: make(map[string]float64)}
}

// Set binds a variable name to a value.
func (c *Calculator) Set(name string, value float64) {
	c.vars[name] = value
}

// Get returns the value bound to name.
func (c *Calculator) Get(name string) (float64, bool) {
	v, ok := c.vars[name]
	return v, ok
}

// FormatFloat formats a value, using pi notation when the value matches a
// recognized pi fraction.
func FormatFloat(val float64) string {
	type piForm struct {
		value   float64
		display string
	}
	piForms := []piForm{
		{2 * math.Pi, "2*pi"},
		{math.Pi, "pi"},
		{math.Pi / 2, "pi/2"},
		{math.Pi / 3, "pi/3"},
		{math.Pi / 4, "pi/4"},
		{math.Pi / 6, "pi/6"},
		{math.Pi / 8, "pi/8"},
		{3 * math.Pi / 4, "3*pi/4"},
		{3 * math.Pi / 2, "3*pi/2"},
		{2 * math.Pi / 3, "2*pi/3"},
	}

	for _, pf := range piForms {
		if math.Abs(val-pf.value) < 1e-10 {
			return pf.display
		}
		if math.Abs(val+pf.value) < 1e-10 {
			return "-" + pf.display
		}
	}

	return strconv.FormatFloat(val, 'g', -1, 64)
}
