package operations

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/mat"

	"qopalg/calculator"
)

// embedUnitary lifts a gate matrix on the listed qubits into the full
// 2^n-dimensional register, first listed qubit most significant and qubit 0
// the most significant register bit.
func embedUnitary(u *mat.CDense, qubits []int, n int) *mat.CDense {
	dim := 1 << n
	sub := func(state int) int {
		s := 0
		for _, q := range qubits {
			s = s<<1 | (state>>(n-1-q))&1
		}
		return s
	}
	restMask := dim - 1
	for _, q := range qubits {
		restMask &^= 1 << (n - 1 - q)
	}
	out := mat.NewCDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if i&restMask == j&restMask {
				out.Set(i, j, u.At(sub(i), sub(j)))
			}
		}
	}
	return out
}

func mulSquare(a, b *mat.CDense) *mat.CDense {
	dim, _ := a.Dims()
	out := mat.NewCDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			var sum complex128
			for k := 0; k < dim; k++ {
				sum += a.At(i, k) * b.At(k, j)
			}
			out.Set(i, j, sum)
		}
	}
	return out
}

// circuitUnitary multiplies the circuit's gates into one register-sized
// matrix, first operation applied first.
func circuitUnitary(t *testing.T, c Circuit, n int) *mat.CDense {
	t.Helper()
	dim := 1 << n
	acc := mat.NewCDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		acc.Set(i, i, 1)
	}
	for _, op := range c.Operations {
		gate, err := AsGateOperation(op)
		require.NoError(t, err)
		u, err := gate.UnitaryMatrix()
		require.NoError(t, err)
		var qubits []int
		switch g := op.(type) {
		case SingleQubitOperation:
			qubits = []int{g.Qubit()}
		case TwoQubitOperation:
			qubits = []int{g.Control(), g.Target()}
		default:
			t.Fatalf("unexpected operation %s in decomposition", op.HQSLang())
		}
		acc = mulSquare(embedUnitary(u, qubits, n), acc)
	}
	return acc
}

func TestMultiQubitMSMatrix(t *testing.T) {
	gate := NewMultiQubitMS([]int{0, 1, 2}, calculator.New(math.Pi/2))
	u, err := gate.UnitaryMatrix()
	require.NoError(t, err)
	cos := complex(math.Cos(math.Pi/4), 0)
	sin := complex(0, -math.Sin(math.Pi/4))
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			var want complex128
			switch {
			case i == j:
				want = cos
			case j == 7-i:
				want = sin
			}
			assert.InDeltaf(t, 0, cmplx.Abs(u.At(i, j)-want), 1e-12, "element (%d,%d)", i, j)
		}
	}
}

// On two qubits the multi qubit Molmer-Sorensen gate coincides with
// VariableMSXX.
func TestMultiQubitMSTwoQubitCase(t *testing.T) {
	theta := calculator.New(0.7)
	got, err := NewMultiQubitMS([]int{0, 1}, theta).UnitaryMatrix()
	require.NoError(t, err)
	want, err := NewVariableMSXX(0, 1, theta).UnitaryMatrix()
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.InDelta(t, 0, cmplx.Abs(got.At(i, j)-want.At(i, j)), 1e-12)
		}
	}
}

func TestMultiQubitMSDecomposition(t *testing.T) {
	cases := []struct {
		name   string
		qubits []int
		n      int
	}{
		{"three_contiguous", []int{0, 1, 2}, 3},
		{"two_with_gap", []int{0, 2}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gate := NewMultiQubitMS(tc.qubits, calculator.New(0.7))
			circuit, err := gate.Decomposition()
			require.NoError(t, err)

			got := circuitUnitary(t, circuit, tc.n)
			want, err := gate.UnitaryMatrix()
			require.NoError(t, err)
			embedded := embedUnitary(want, tc.qubits, tc.n)

			for i := 0; i < 1<<tc.n; i++ {
				for j := 0; j < 1<<tc.n; j++ {
					assert.InDeltaf(t, 0, cmplx.Abs(got.At(i, j)-embedded.At(i, j)), 1e-9,
						"element (%d,%d)", i, j)
				}
			}
		})
	}
}

func TestMultiCNOTMatrix(t *testing.T) {
	got, err := NewMultiCNOT([]int{0, 1}).UnitaryMatrix()
	require.NoError(t, err)
	want, err := NewCNOT(0, 1).UnitaryMatrix()
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.Equal(t, want.At(i, j), got.At(i, j))
		}
	}

	toffoli, err := NewMultiCNOT([]int{0, 1, 2}).UnitaryMatrix()
	require.NoError(t, err)
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			var want complex128
			switch {
			case i < 6 && i == j:
				want = 1
			case i == 6 && j == 7, i == 7 && j == 6:
				want = 1
			}
			assert.Equal(t, want, toffoli.At(i, j), "element (%d,%d)", i, j)
		}
	}
}

func TestMultiCNOTDecomposition(t *testing.T) {
	for _, qubits := range [][]int{{0, 1}, {0, 1, 2}} {
		gate := NewMultiCNOT(qubits)
		circuit, err := gate.Decomposition()
		require.NoError(t, err)

		n := len(qubits)
		got := circuitUnitary(t, circuit, n)
		want, err := gate.UnitaryMatrix()
		require.NoError(t, err)

		// up to global phase
		var ratio complex128
		for i := 0; i < 1<<n && ratio == 0; i++ {
			for j := 0; j < 1<<n; j++ {
				if cmplx.Abs(want.At(i, j)) > 0.5 {
					ratio = got.At(i, j) / want.At(i, j)
					break
				}
			}
		}
		require.InDelta(t, 1, cmplx.Abs(ratio), 1e-9)
		for i := 0; i < 1<<n; i++ {
			for j := 0; j < 1<<n; j++ {
				assert.InDeltaf(t, 0, cmplx.Abs(got.At(i, j)-ratio*want.At(i, j)), 1e-9,
					"qubits %v element (%d,%d)", qubits, i, j)
			}
		}
	}
}

func TestMultiCNOTDecompositionUnsupported(t *testing.T) {
	_, err := NewMultiCNOT([]int{0, 1, 2, 3}).Decomposition()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "4 qubits")
}

func TestMultiQubitGateContracts(t *testing.T) {
	ms := NewMultiQubitMS([]int{0, 1, 2}, calculator.NewSymbolic("theta"))
	assert.Equal(t, []string{"Operation", "GateOperation", "MultiQubitGateOperation", "MultiQubitMS"}, ms.Tags())
	assert.Equal(t, QubitSet(0, 1, 2), ms.InvolvedQubits())
	assert.True(t, ms.IsParametrized())
	_, err := ms.UnitaryMatrix()
	require.Error(t, err)

	calc := calculator.NewCalculator()
	calc.Set("theta", 1.0)
	substituted, err := ms.SubstituteParameters(calc)
	require.NoError(t, err)
	theta, err := substituted.(MultiQubitMS).Theta().Float()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, theta, 1e-12)

	cnot := NewMultiCNOT([]int{0, 1, 2})
	assert.Equal(t, []string{"Operation", "GateOperation", "MultiQubitGateOperation", "MultiCNOT"}, cnot.Tags())
	assert.False(t, cnot.IsParametrized())

	remapped, err := cnot.RemapQubits(map[int]int{0: 2, 1: 1, 2: 0})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0}, remapped.(MultiCNOT).Qubits())

	_, err = cnot.RemapQubits(map[int]int{0: 1, 1: 0})
	var mappingErr QubitMappingError
	require.ErrorAs(t, err, &mappingErr)
}

func TestMultiQubitMSPowerCF(t *testing.T) {
	ms := NewMultiQubitMS([]int{0, 1}, calculator.New(1.2))
	tripled := ms.PowerCF(calculator.New(3))
	theta, err := tripled.(MultiQubitMS).Theta().Float()
	require.NoError(t, err)
	assert.InDelta(t, 3.6, theta, 1e-12)
}
