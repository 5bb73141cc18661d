package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericArithmetic(t *testing.T) {
	a := New(2)
	b := New(3)
	cases := []struct {
		name string
		got  CalculatorFloat
		want float64
	}{
		{"add", a.Add(b), 5},
		{"sub", a.Sub(b), -1},
		{"mul", a.Mul(b), 6},
		{"div", a.Div(b), 2.0 / 3.0},
		{"neg", a.Neg(), -2},
		{"sqrt", New(9).Sqrt(), 3},
		{"cos", New(0).Cos(), 1},
		{"sin", New(math.Pi / 2).Sin(), 1},
		{"exp", New(0).Exp(), 1},
		{"abs", New(-4).Abs(), 4},
		{"signum", New(-4).Signum(), -1},
		{"atan2", New(1).Atan2(New(1)), math.Pi / 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.True(t, tc.got.IsFloat())
			v, err := tc.got.Float()
			require.NoError(t, err)
			assert.InDelta(t, tc.want, v, 1e-12)
		})
	}
}

func TestSymbolicExpressionBuilding(t *testing.T) {
	theta := NewSymbolic("theta")
	assert.False(t, theta.IsFloat())

	_, err := theta.Float()
	var calcErr CalculatorError
	require.ErrorAs(t, err, &calcErr)

	half := theta.Div(New(2))
	assert.Equal(t, "(theta / 2)", half.String())
	assert.Equal(t, "cos((theta / 2))", half.Cos().String())
	assert.Equal(t, "(-theta)", theta.Neg().String())
}

// Symbolic strings that are plain numbers fold to numeric values.
func TestNewSymbolicFolding(t *testing.T) {
	folded := NewSymbolic("1.25")
	assert.True(t, folded.IsFloat())
	v, err := folded.Float()
	require.NoError(t, err)
	assert.Equal(t, 1.25, v)
}

func TestSubstitute(t *testing.T) {
	calc := NewCalculator()
	calc.Set("theta", math.Pi)

	expr := NewSymbolic("theta").Div(New(2)).Sin()
	result, err := expr.Substitute(calc)
	require.NoError(t, err)
	v, err := result.Float()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, 1e-12)

	// numeric values pass through untouched
	numeric, err := New(2.5).Substitute(NewCalculator())
	require.NoError(t, err)
	v, err = numeric.Float()
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	// unbound variables fail
	_, err = NewSymbolic("unbound").Substitute(NewCalculator())
	require.Error(t, err)
}

func TestEvaluate(t *testing.T) {
	calc := NewCalculator()
	calc.Set("x", 2)
	calc.Set("y", 3)

	cases := []struct {
		expr string
		want float64
	}{
		{"1 + 2 * 3", 7},
		{"(1 + 2) * 3", 9},
		{"x * y - 1", 5},
		{"-x", -2},
		{"pi / 2", math.Pi / 2},
		{"cos(0)", 1},
		{"sqrt(x * x)", 2},
		{"atan2(1, 1)", math.Pi / 4},
		{"exp(0) + log(1)", 1},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			v, err := calc.Evaluate(tc.expr)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, v, 1e-12)
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	calc := NewCalculator()
	for _, expr := range []string{"", "1 +", "nope", "cos(", "1 2"} {
		t.Run(expr, func(t *testing.T) {
			_, err := calc.Evaluate(expr)
			require.Error(t, err)
		})
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, New(1.5).Equal(New(1.5)))
	assert.False(t, New(1.5).Equal(New(2.5)))
	assert.True(t, NewSymbolic("a").Equal(NewSymbolic("a")))
	assert.False(t, NewSymbolic("a").Equal(NewSymbolic("b")))
	assert.False(t, New(1).Equal(NewSymbolic("a")))
}

func TestFormatFloatPiNotation(t *testing.T) {
	assert.Equal(t, "pi", FormatFloat(math.Pi))
	assert.Equal(t, "-pi/2", FormatFloat(-math.Pi/2))
	assert.Equal(t, "1.5", FormatFloat(1.5))
}
