package operations

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/mat"

	"qopalg/calculator"
)

func assertDenseEqual(t *testing.T, want, got *mat.Dense, tol float64) {
	t.Helper()
	rows, cols := want.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			assert.InDeltaf(t, want.At(i, j), got.At(i, j), tol, "element (%d,%d)", i, j)
		}
	}
}

func TestPragmaDampingSuperoperator(t *testing.T) {
	pragma := NewPragmaDamping(0, calculator.New(0.005), calculator.New(0.02))
	superop, err := pragma.Superoperator()
	require.NoError(t, err)

	t1 := math.Exp(-0.005 * 0.02)
	t2 := math.Exp(-0.005 * 0.02 * 0.5)
	want := mat.NewDense(4, 4, []float64{
		1, 0, 0, 1 - t1,
		0, t2, 0, 0,
		0, 0, t2, 0,
		0, 0, 0, t1,
	})
	assertDenseEqual(t, want, superop, 1e-15)

	prob, err := pragma.Probability().Float()
	require.NoError(t, err)
	assert.InDelta(t, 9.9995e-5, prob, 1e-9)
}

func TestPragmaDepolarisingSuperoperator(t *testing.T) {
	pragma := NewPragmaDepolarising(0, calculator.New(0.005), calculator.New(0.02))
	superop, err := pragma.Superoperator()
	require.NoError(t, err)

	decay := math.Exp(-0.005 * 0.02)
	want := mat.NewDense(4, 4, []float64{
		0.5 + 0.5*decay, 0, 0, 0.5 - 0.5*decay,
		0, decay, 0, 0,
		0, 0, decay, 0,
		0.5 - 0.5*decay, 0, 0, 0.5 + 0.5*decay,
	})
	assertDenseEqual(t, want, superop, 1e-15)

	prob, err := pragma.Probability().Float()
	require.NoError(t, err)
	assert.InDelta(t, 0.75*(1-decay), prob, 1e-15)
}

func TestPragmaDephasingSuperoperator(t *testing.T) {
	pragma := NewPragmaDephasing(0, calculator.New(0.005), calculator.New(0.02))
	superop, err := pragma.Superoperator()
	require.NoError(t, err)

	off := math.Exp(-2 * 0.005 * 0.02)
	want := mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		0, off, 0, 0,
		0, 0, off, 0,
		0, 0, 0, 1,
	})
	assertDenseEqual(t, want, superop, 1e-15)

	prob, err := pragma.Probability().Float()
	require.NoError(t, err)
	assert.InDelta(t, 0.5*(1-off), prob, 1e-15)
}

func TestPragmaRandomNoise(t *testing.T) {
	pragma := NewPragmaRandomNoise(0, calculator.New(0.005), calculator.New(0.02), calculator.New(0.01))

	// averaged over trajectories the channel is pure dephasing
	superop, err := pragma.Superoperator()
	require.NoError(t, err)
	dephasing, err := NewPragmaDephasing(0, calculator.New(0.005), calculator.New(0.01)).Superoperator()
	require.NoError(t, err)
	assertDenseEqual(t, dephasing, superop, 1e-15)

	prob, err := pragma.Probability().Float()
	require.NoError(t, err)
	want := (0.02/4 + 0.02/4 + (0.02/4 + 0.01)) * 0.005
	assert.InDelta(t, want, prob, 1e-15)
}

// A rate matrix with a single diagonal entry reduces the general Lindblad
// channel to the matching closed-form channel.
func TestPragmaGeneralNoiseClosedFormLimits(t *testing.T) {
	gateTime := calculator.New(0.005)
	rate := calculator.New(0.02)

	t.Run("damping", func(t *testing.T) {
		rates := mat.NewDense(3, 3, []float64{
			0.02, 0, 0,
			0, 0, 0,
			0, 0, 0,
		})
		general, err := NewPragmaGeneralNoise(0, gateTime, rates).Superoperator()
		require.NoError(t, err)
		damping, err := NewPragmaDamping(0, gateTime, rate).Superoperator()
		require.NoError(t, err)
		assertDenseEqual(t, damping, general, 1e-6)
	})

	// sigma+ and sigma- at rate a plus sigmaz at a/2 is depolarising at 2a
	t.Run("depolarising", func(t *testing.T) {
		rates := mat.NewDense(3, 3, []float64{
			0.02, 0, 0,
			0, 0.02, 0,
			0, 0, 0.01,
		})
		general, err := NewPragmaGeneralNoise(0, gateTime, rates).Superoperator()
		require.NoError(t, err)
		depolarising, err := NewPragmaDepolarising(0, gateTime, calculator.New(0.04)).Superoperator()
		require.NoError(t, err)
		assertDenseEqual(t, depolarising, general, 1e-6)
	})

	t.Run("dephasing", func(t *testing.T) {
		rates := mat.NewDense(3, 3, []float64{
			0, 0, 0,
			0, 0, 0,
			0, 0, 0.02,
		})
		general, err := NewPragmaGeneralNoise(0, gateTime, rates).Superoperator()
		require.NoError(t, err)
		dephasing, err := NewPragmaDephasing(0, gateTime, rate).Superoperator()
		require.NoError(t, err)
		assertDenseEqual(t, dephasing, general, 1e-6)
	})
}

// taylorExpm evaluates the matrix exponential by a plain truncated Taylor
// series, as an evaluation independent of the Padé implementation.
func taylorExpm(a *mat.Dense, terms int) *mat.Dense {
	n, _ := a.Dims()
	result := mat.NewDense(n, n, nil)
	term := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		result.Set(i, i, 1)
		term.Set(i, i, 1)
	}
	for k := 1; k <= terms; k++ {
		var next mat.Dense
		next.Mul(term, a)
		next.Scale(1/float64(k), &next)
		term.CloneFrom(&next)
		result.Add(result, term)
	}
	return result
}

// A dense rate matrix exercises every generator term at once; the result
// must agree with a direct Taylor expansion of the summed generator.
func TestPragmaGeneralNoiseDenseRates(t *testing.T) {
	rates := mat.NewDense(3, 3, []float64{
		0.3, 0.0, 0.1,
		0.7, 0.0, 0.0,
		0.0, 0.8, 0.2,
	})
	gateTime := 0.005
	superop, err := NewPragmaGeneralNoise(0, calculator.New(gateTime), rates).Superoperator()
	require.NoError(t, err)

	generator := mat.NewDense(4, 4, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 16; k++ {
				generator.Set(k/4, k%4,
					generator.At(k/4, k%4)+gateTime*rates.At(i, j)*pgnSuperOp[i][j][k])
			}
		}
	}
	assertDenseEqual(t, taylorExpm(generator, 30), superop, 1e-12)
}

func TestPragmaGeneralNoiseString(t *testing.T) {
	pragma := NewPragmaGeneralNoise(1, calculator.New(0.005), mat.NewDense(3, 3, nil))
	s := pragma.String()
	assert.Contains(t, s, "PragmaGeneralNoise { qubit: 1, gate_time: 0.005, rates: ")
	assert.Contains(t, s, "[")
}

// Probabilities stay inside [0, 1] across a grid of physical rates and times.
func TestNoiseProbabilityBounds(t *testing.T) {
	times := []float64{0, 1e-4, 0.01, 0.5, 2}
	rates := []float64{0, 0.01, 0.5, 3}
	for _, gt := range times {
		for _, r := range rates {
			pragmas := []PragmaNoiseProbaOperation{
				NewPragmaDamping(0, calculator.New(gt), calculator.New(r)),
				NewPragmaDepolarising(0, calculator.New(gt), calculator.New(r)),
				NewPragmaDephasing(0, calculator.New(gt), calculator.New(r)),
			}
			for _, pragma := range pragmas {
				prob, err := pragma.Probability().Float()
				require.NoError(t, err)
				assert.GreaterOrEqualf(t, prob, 0.0, "%s gt=%v r=%v", pragma.HQSLang(), gt, r)
				assert.LessOrEqualf(t, prob, 1.0, "%s gt=%v r=%v", pragma.HQSLang(), gt, r)
			}
		}
	}
}

// Trace preservation: the superoperator maps (1, 0, 0, 1), the vectorized
// identity components of rho00 + rho11, onto a vector still summing to one
// in the diagonal slots.
func TestNoiseSuperoperatorsTracePreserving(t *testing.T) {
	pragmas := map[string]PragmaNoiseOperation{
		"damping":      NewPragmaDamping(0, calculator.New(0.1), calculator.New(0.5)),
		"depolarising": NewPragmaDepolarising(0, calculator.New(0.1), calculator.New(0.5)),
		"dephasing":    NewPragmaDephasing(0, calculator.New(0.1), calculator.New(0.5)),
		"random":       NewPragmaRandomNoise(0, calculator.New(0.1), calculator.New(0.5), calculator.New(0.2)),
		"general": NewPragmaGeneralNoise(0, calculator.New(0.1), mat.NewDense(3, 3, []float64{
			0.5, 0.1, 0,
			0.1, 0.3, 0,
			0, 0, 0.2,
		})),
	}
	for name, pragma := range pragmas {
		t.Run(name, func(t *testing.T) {
			superop, err := pragma.Superoperator()
			require.NoError(t, err)
			// columns 0 and 3 correspond to populations; each must keep
			// total population 1
			for _, col := range []int{0, 3} {
				sum := superop.At(0, col) + superop.At(3, col)
				assert.InDelta(t, 1, sum, 1e-9, "population column %d", col)
			}
		})
	}
}

func TestNoisePragmaPowerCF(t *testing.T) {
	pragma := NewPragmaDamping(0, calculator.New(0.005), calculator.New(0.02))
	doubled := pragma.PowerCF(calculator.New(2))
	gt, err := doubled.(PragmaDamping).GateTime().Float()
	require.NoError(t, err)
	assert.InDelta(t, 0.01, gt, 1e-15)

	// doubling the gate time squares the decay
	original, err := pragma.Superoperator()
	require.NoError(t, err)
	squared, err := doubled.(PragmaNoiseOperation).Superoperator()
	require.NoError(t, err)
	assert.InDelta(t, original.At(3, 3)*original.At(3, 3), squared.At(3, 3), 1e-12)
}

func TestNoisePragmaContracts(t *testing.T) {
	pragma := NewPragmaDamping(2, calculator.NewSymbolic("t"), calculator.New(0.02))
	assert.Equal(t, []string{
		"Operation", "SingleQubitOperation", "PragmaOperation",
		"PragmaNoiseOperation", "PragmaNoiseProbaOperation", "PragmaDamping",
	}, pragma.Tags())
	assert.Equal(t, QubitSet(2), pragma.InvolvedQubits())
	assert.True(t, pragma.IsParametrized())

	_, err := pragma.Superoperator()
	require.Error(t, err)

	calc := calculator.NewCalculator()
	calc.Set("t", 0.005)
	substituted, err := pragma.SubstituteParameters(calc)
	require.NoError(t, err)
	assert.False(t, substituted.IsParametrized())

	remapped, err := pragma.RemapQubits(map[int]int{2: 0, 0: 2})
	require.NoError(t, err)
	assert.Equal(t, 0, remapped.(PragmaDamping).Qubit())

	general := NewPragmaGeneralNoise(0, calculator.New(0.005), mat.NewDense(3, 3, nil))
	assert.Equal(t, []string{
		"Operation", "SingleQubitOperation", "PragmaOperation",
		"PragmaNoiseOperation", "PragmaGeneralNoise",
	}, general.Tags())
	_, err = AsPragmaNoiseProbaOperation(general)
	var conversionErr ConversionError
	require.ErrorAs(t, err, &conversionErr)

	_, err = AsPragmaNoiseOperation(general)
	require.NoError(t, err)
}
