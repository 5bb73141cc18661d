// Package linalg provides small dense linear algebra helpers shared by the
// operations package.
package linalg

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Expm returns the matrix exponential of the square matrix a, computed with
// the scaling-and-squaring method and a Padé approximant of order 6.
//
// For the 4x4 generators this library exponentiates, the result is accurate
// to well below 1e-6 absolute error.
func Expm(a *mat.Dense) *mat.Dense {
	n, _ := a.Dims()

	// Scale the matrix down until its 1-norm is at most 0.5.
	norm := oneNorm(a)
	s := 0
	if norm > 0.5 {
		s = int(math.Ceil(math.Log2(norm/0.5))) + 1
	}
	scaled := mat.NewDense(n, n, nil)
	scaled.Scale(1/math.Pow(2, float64(s)), a)

	// Padé approximant: N(A) / D(A) with degree-6 numerator and denominator.
	const q = 6
	c := 1.0
	numer := eye(n)
	denom := eye(n)
	power := eye(n)
	for k := 1; k <= q; k++ {
		c = c * float64(q-k+1) / (float64(k) * float64(2*q-k+1))
		power.Mul(power, scaled)
		var term mat.Dense
		term.Scale(c, power)
		numer.Add(numer, &term)
		if k%2 == 0 {
			denom.Add(denom, &term)
		} else {
			denom.Sub(denom, &term)
		}
	}

	result := mat.NewDense(n, n, nil)
	if err := result.Solve(denom, numer); err != nil {
		// The denominator is nonsingular for any scaled input with norm
		// below the Padé radius; reaching this means the input was not a
		// finite real matrix.
		panic("linalg: singular Padé denominator in Expm: " + err.Error())
	}

	// Undo the scaling by repeated squaring.
	for i := 0; i < s; i++ {
		var sq mat.Dense
		sq.Mul(result, result)
		result.Copy(&sq)
	}
	return result
}

func eye(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

func oneNorm(a *mat.Dense) float64 {
	rows, cols := a.Dims()
	maxSum := 0.0
	for j := 0; j < cols; j++ {
		sum := 0.0
		for i := 0; i < rows; i++ {
			sum += math.Abs(a.At(i, j))
		}
		if sum > maxSum {
			maxSum = sum
		}
	}
	return maxSum
}
