package linalg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/mat"
)

func assertExpmEqual(t *testing.T, want, got *mat.Dense, tol float64) {
	t.Helper()
	rows, cols := want.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			assert.InDeltaf(t, want.At(i, j), got.At(i, j), tol, "element (%d,%d)", i, j)
		}
	}
}

func TestExpmZero(t *testing.T) {
	got := Expm(mat.NewDense(3, 3, nil))
	assertExpmEqual(t, eye(3), got, 1e-15)
}

func TestExpmDiagonal(t *testing.T) {
	got := Expm(mat.NewDense(2, 2, []float64{-1, 0, 0, 2}))
	want := mat.NewDense(2, 2, []float64{math.Exp(-1), 0, 0, math.Exp(2)})
	assertExpmEqual(t, want, got, 1e-9)
}

func TestExpmNilpotent(t *testing.T) {
	got := Expm(mat.NewDense(2, 2, []float64{0, 1, 0, 0}))
	want := mat.NewDense(2, 2, []float64{1, 1, 0, 1})
	assertExpmEqual(t, want, got, 1e-12)
}

// exp of a rotation generator is the rotation matrix; the large angle forces
// the scaling and squaring path.
func TestExpmRotation(t *testing.T) {
	for _, theta := range []float64{0.3, 10} {
		got := Expm(mat.NewDense(2, 2, []float64{0, -theta, theta, 0}))
		want := mat.NewDense(2, 2, []float64{
			math.Cos(theta), -math.Sin(theta),
			math.Sin(theta), math.Cos(theta),
		})
		assertExpmEqual(t, want, got, 1e-8)
	}
}

// A relaxation generator with closed-form exponential, the shape used by the
// noise channels.
func TestExpmRelaxationGenerator(t *testing.T) {
	a := 0.37
	generator := mat.NewDense(4, 4, []float64{
		-a, 0, 0, 0,
		0, -a / 2, 0, 0,
		0, 0, -a / 2, 0,
		a, 0, 0, 0,
	})
	got := Expm(generator)
	want := mat.NewDense(4, 4, []float64{
		math.Exp(-a), 0, 0, 0,
		0, math.Exp(-a / 2), 0, 0,
		0, 0, math.Exp(-a / 2), 0,
		1 - math.Exp(-a), 0, 0, 1,
	})
	assertExpmEqual(t, want, got, 1e-9)
}

// exp(A) * exp(-A) = I even when A does not commute with its transpose.
func TestExpmInverseIdentity(t *testing.T) {
	a := mat.NewDense(3, 3, []float64{
		0.2, -1.1, 0.4,
		0.7, 0.1, -0.3,
		-0.2, 0.5, 0.6,
	})
	var negA mat.Dense
	negA.Scale(-1, a)

	forward := Expm(a)
	backward := Expm(&negA)

	var product mat.Dense
	product.Mul(forward, backward)
	require.Equal(t, 3, forward.RawMatrix().Rows)
	assertExpmEqual(t, eye(3), &product, 1e-9)
}
