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

func singleQubitGateCases() map[string]SingleQubitGateOperation {
	theta := calculator.New(math.Pi / 3)
	return map[string]SingleQubitGateOperation{
		"RotateX":          NewRotateX(0, theta),
		"RotateY":          NewRotateY(0, theta),
		"RotateZ":          NewRotateZ(0, theta),
		"PauliX":           NewPauliX(0),
		"PauliY":           NewPauliY(0),
		"PauliZ":           NewPauliZ(0),
		"SqrtPauliX":       NewSqrtPauliX(0),
		"InvSqrtPauliX":    NewInvSqrtPauliX(0),
		"Hadamard":         NewHadamard(0),
		"SGate":            NewSGate(0),
		"TGate":            NewTGate(0),
		"PhaseShiftState0": NewPhaseShiftState0(0, theta),
		"PhaseShiftState1": NewPhaseShiftState1(0, theta),
		"RotateAroundSphericalAxis": NewRotateAroundSphericalAxis(
			0, theta, calculator.New(math.Pi/4), calculator.New(math.Pi/5)),
		"RotateXY": NewRotateXY(0, theta, calculator.New(math.Pi/4)),
		"SingleQubitGate": NewSingleQubitGate(0,
			calculator.New(math.Cos(0.3)), calculator.New(0),
			calculator.New(0), calculator.New(-math.Sin(0.3)),
			calculator.New(0.7)),
	}
}

func assertMatrixEqual(t *testing.T, want []complex128, got *mat.CDense, tol float64) {
	t.Helper()
	rows, cols := got.Dims()
	require.Equal(t, len(want), rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			assert.InDeltaf(t, 0, cmplx.Abs(got.At(i, j)-want[i*cols+j]), tol,
				"element (%d,%d): got %v want %v", i, j, got.At(i, j), want[i*cols+j])
		}
	}
}

func TestSingleQubitGatesUnitarity(t *testing.T) {
	for name, gate := range singleQubitGateCases() {
		t.Run(name, func(t *testing.T) {
			u, err := gate.UnitaryMatrix()
			require.NoError(t, err)
			for i := 0; i < 2; i++ {
				for j := 0; j < 2; j++ {
					var sum complex128
					for k := 0; k < 2; k++ {
						sum += u.At(i, k) * cmplx.Conj(u.At(j, k))
					}
					want := complex128(0)
					if i == j {
						want = 1
					}
					assert.InDeltaf(t, 0, cmplx.Abs(sum-want), 1e-9, "U*U^dag at (%d,%d)", i, j)
				}
			}
		})
	}
}

// The alpha/beta/global-phase parameters must reproduce the unitary matrix
// through the general form.
func TestSingleQubitGatesAlphaBetaConsistency(t *testing.T) {
	for name, gate := range singleQubitGateCases() {
		t.Run(name, func(t *testing.T) {
			u, err := gate.UnitaryMatrix()
			require.NoError(t, err)
			general, err := ToSingleQubitGate(gate).UnitaryMatrix()
			require.NoError(t, err)
			for i := 0; i < 2; i++ {
				for j := 0; j < 2; j++ {
					assert.InDelta(t, 0, cmplx.Abs(u.At(i, j)-general.At(i, j)), 1e-9)
				}
			}
		})
	}
}

func TestSingleQubitGateMatrices(t *testing.T) {
	s := 1 / math.Sqrt2
	cases := []struct {
		name string
		gate SingleQubitGateOperation
		want []complex128
	}{
		{"RotateX_pi", NewRotateX(0, calculator.New(math.Pi)), []complex128{
			0, complex(0, -1),
			complex(0, -1), 0,
		}},
		{"RotateZ_pi2", NewRotateZ(0, calculator.New(math.Pi/2)), []complex128{
			complex(s, -s), 0,
			0, complex(s, s),
		}},
		{"PauliX", NewPauliX(0), []complex128{0, 1, 1, 0}},
		{"PauliY", NewPauliY(0), []complex128{0, complex(0, -1), complex(0, 1), 0}},
		{"PauliZ", NewPauliZ(0), []complex128{1, 0, 0, -1}},
		{"Hadamard", NewHadamard(0), []complex128{
			complex(s, 0), complex(s, 0),
			complex(s, 0), complex(-s, 0),
		}},
		{"SGate", NewSGate(0), []complex128{1, 0, 0, complex(0, 1)}},
		{"TGate", NewTGate(0), []complex128{1, 0, 0, complex(s, s)}},
		{"PhaseShiftState1", NewPhaseShiftState1(0, calculator.New(math.Pi / 2)), []complex128{
			1, 0,
			0, complex(0, 1),
		}},
		{"PhaseShiftState0", NewPhaseShiftState0(0, calculator.New(math.Pi / 2)), []complex128{
			complex(0, 1), 0,
			0, 1,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := tc.gate.UnitaryMatrix()
			require.NoError(t, err)
			assertMatrixEqual(t, tc.want, u, 1e-12)
		})
	}
}

// SqrtPauliX applied twice is PauliX up to global phase, and InvSqrtPauliX
// undoes it.
func TestSqrtPauliXComposition(t *testing.T) {
	product, err := MulSingleQubitGates(NewSqrtPauliX(0), NewSqrtPauliX(0))
	require.NoError(t, err)
	u, err := product.UnitaryMatrix()
	require.NoError(t, err)
	x, err := NewPauliX(0).UnitaryMatrix()
	require.NoError(t, err)
	ratio := u.At(0, 1) / x.At(0, 1)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, 0, cmplx.Abs(u.At(i, j)-ratio*x.At(i, j)), 1e-9)
		}
	}

	inverse, err := MulSingleQubitGates(NewInvSqrtPauliX(0), NewSqrtPauliX(0))
	require.NoError(t, err)
	id, err := inverse.UnitaryMatrix()
	require.NoError(t, err)
	assertMatrixEqual(t, []complex128{1, 0, 0, 1}, id, 1e-9)
}

func TestMulSingleQubitGates(t *testing.T) {
	left := NewRotateX(0, calculator.New(math.Pi/3))
	right := NewRotateX(0, calculator.New(math.Pi/4))

	product, err := MulSingleQubitGates(left, right)
	require.NoError(t, err)
	got, err := product.UnitaryMatrix()
	require.NoError(t, err)

	combined, err := NewRotateX(0, calculator.New(math.Pi/3+math.Pi/4)).UnitaryMatrix()
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, 0, cmplx.Abs(got.At(i, j)-combined.At(i, j)), 1e-9)
		}
	}

	_, err = MulSingleQubitGates(NewRotateX(0, calculator.New(1)), NewRotateX(1, calculator.New(1)))
	var incompatible IncompatibleQubitsError
	require.ErrorAs(t, err, &incompatible)
	assert.Equal(t, 0, incompatible.SelfQubit)
	assert.Equal(t, 1, incompatible.OtherQubit)
}

func TestSingleQubitGateNormalization(t *testing.T) {
	zero := calculator.New(0)

	// all components zero
	degenerate := NewSingleQubitGate(0, zero, zero, zero, zero, zero)
	_, err := degenerate.UnitaryMatrix()
	var matrixErr UnitaryMatrixError
	require.ErrorAs(t, err, &matrixErr)

	// norm clearly off from one
	skewed := NewSingleQubitGate(0, calculator.New(1), zero, calculator.New(0.5), zero, zero)
	_, err = skewed.UnitaryMatrix()
	require.ErrorAs(t, err, &matrixErr)
}

// RotateAroundSphericalAxis on the X axis and RotateXY at phi=0 both
// degenerate to RotateX.
func TestRotationAxisSpecialCases(t *testing.T) {
	theta := calculator.New(0.8)
	want, err := NewRotateX(0, theta).UnitaryMatrix()
	require.NoError(t, err)

	spherical := NewRotateAroundSphericalAxis(0, theta, calculator.New(math.Pi/2), calculator.New(0))
	u, err := spherical.UnitaryMatrix()
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, 0, cmplx.Abs(u.At(i, j)-want.At(i, j)), 1e-12)
		}
	}

	xy := NewRotateXY(0, theta, calculator.New(0))
	u, err = xy.UnitaryMatrix()
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, 0, cmplx.Abs(u.At(i, j)-want.At(i, j)), 1e-12)
		}
	}
}

func TestSingleQubitGateContracts(t *testing.T) {
	for name, gate := range singleQubitGateCases() {
		t.Run(name, func(t *testing.T) {
			tags := gate.Tags()
			assert.Equal(t, "Operation", tags[0])
			assert.Contains(t, tags, "SingleQubitGateOperation")
			assert.Equal(t, gate.HQSLang(), tags[len(tags)-1])
			assert.Equal(t, QubitSet(0), gate.InvolvedQubits())
		})
	}
}

func TestSingleQubitGateRemap(t *testing.T) {
	gate := NewRotateZ(2, calculator.New(1.5))

	remapped, err := gate.RemapQubits(map[int]int{2: 0, 0: 2})
	require.NoError(t, err)
	assert.Equal(t, 0, remapped.(RotateZ).Qubit())

	_, err = gate.RemapQubits(map[int]int{0: 0})
	var mappingErr QubitMappingError
	require.ErrorAs(t, err, &mappingErr)
	assert.Equal(t, 2, mappingErr.Qubit)
}

func TestSingleQubitGateSubstitution(t *testing.T) {
	gate := NewRotateY(0, calculator.NewSymbolic("angle"))
	assert.True(t, gate.IsParametrized())

	calc := calculator.NewCalculator()
	calc.Set("angle", math.Pi/6)
	substituted, err := gate.SubstituteParameters(calc)
	require.NoError(t, err)
	require.False(t, substituted.IsParametrized())

	theta, err := substituted.(RotateY).Theta().Float()
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/6, theta, 1e-12)

	// unknown symbols stay unresolved
	unknown := NewRotateY(0, calculator.NewSymbolic("missing"))
	_, err = unknown.SubstituteParameters(calculator.NewCalculator())
	require.Error(t, err)
}

func TestSingleQubitGateEquality(t *testing.T) {
	a := NewRotateX(0, calculator.New(1.0))
	b := NewRotateX(0, calculator.New(1.0))
	c := NewRotateX(0, calculator.New(2.0))
	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
	assert.False(t, Equal(a, NewRotateY(0, calculator.New(1.0))))
}

func TestSingleQubitGateString(t *testing.T) {
	gate := NewRotateX(0, calculator.New(1.5))
	assert.Equal(t, "RotateX { qubit: 0, theta: 1.5 }", gate.String())

	symbolic := NewRotateX(1, calculator.NewSymbolic("theta"))
	assert.Equal(t, "RotateX { qubit: 1, theta: theta }", symbolic.String())
}
