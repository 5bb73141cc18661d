package operations

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/mat"

	"qopalg/calculator"
)

func TestPragmaInvolvement(t *testing.T) {
	inner := NewCircuit()
	inner.Add(NewRotateX(3, calculator.New(1)))

	cases := []struct {
		name string
		op   Operation
		want InvolvedQubits
	}{
		{"SetNumberOfMeasurements", NewPragmaSetNumberOfMeasurements(100, "ro"), NoQubits()},
		{"SetStateVector", NewPragmaSetStateVector([]complex128{1, 0}), AllQubits()},
		{"SetDensityMatrix", NewPragmaSetDensityMatrix(mat.NewCDense(2, 2, nil)), AllQubits()},
		{"RepeatGate", NewPragmaRepeatGate(3), AllQubits()},
		{"Overrotation", NewPragmaOverrotation("RotateX", []int{0, 2}, 0.1, 0.01), QubitSet(0, 2)},
		{"BoostNoise", NewPragmaBoostNoise(calculator.New(1.5)), NoQubits()},
		{"StopParallelBlock", NewPragmaStopParallelBlock([]int{1, 2}, calculator.New(1e-6)), QubitSet(1, 2)},
		{"GlobalPhase", NewPragmaGlobalPhase(calculator.New(math.Pi)), NoQubits()},
		{"Sleep", NewPragmaSleep([]int{0}, calculator.New(1e-3)), QubitSet(0)},
		{"ActiveReset", NewPragmaActiveReset(1), QubitSet(1)},
		{"StartDecompositionBlock", NewPragmaStartDecompositionBlock([]int{0, 1}, map[int]int{0: 1, 1: 0}), QubitSet(0, 1)},
		{"StopDecompositionBlock", NewPragmaStopDecompositionBlock([]int{0, 1}), QubitSet(0, 1)},
		{"ChangeDevice", NewPragmaChangeDevice([]string{"Operation"}, "Other", nil), AllQubits()},
		{"Conditional", NewPragmaConditional("ro", 0, inner), QubitSet(3)},
		{"Loop", NewPragmaLoop(calculator.New(5), inner), QubitSet(3)},
		{"ControlledCircuit", NewPragmaControlledCircuit(0, inner), QubitSet(0, 3)},
		{"AnnotatedOp", NewPragmaAnnotatedOp(NewPauliX(2), "marker"), QubitSet(2)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.op.InvolvedQubits())
			tags := tc.op.Tags()
			assert.Equal(t, "Operation", tags[0])
			assert.Contains(t, tags, "PragmaOperation")
			assert.Equal(t, tc.op.HQSLang(), tags[len(tags)-1])
			_, ok := tc.op.(PragmaOperation)
			assert.True(t, ok)
		})
	}
}

func TestPragmaActiveResetRemap(t *testing.T) {
	pragma := NewPragmaActiveReset(0)
	remapped, err := pragma.RemapQubits(map[int]int{0: 2, 2: 0})
	require.NoError(t, err)
	assert.True(t, Equal(NewPragmaActiveReset(2), remapped))
}

// Substituting an empty binding set into a numeric operation is a no-op.
func TestPragmaOverrotationSubstituteIdentity(t *testing.T) {
	pragma := NewPragmaOverrotation("RotateX", []int{0}, 0.03, 0.001)
	assert.False(t, pragma.IsParametrized())
	substituted, err := pragma.SubstituteParameters(calculator.NewCalculator())
	require.NoError(t, err)
	assert.True(t, Equal(pragma, substituted))
}

func TestPragmaOverrotationRemap(t *testing.T) {
	pragma := NewPragmaOverrotation("RotateZ", []int{0, 1}, 0.1, 0.02)
	remapped, err := pragma.RemapQubits(map[int]int{0: 1, 1: 0})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, remapped.(PragmaOverrotation).Qubits())
	assert.Equal(t, "RotateZ", remapped.(PragmaOverrotation).GateHQSLang())

	_, err = pragma.RemapQubits(map[int]int{0: 0})
	var mappingErr QubitMappingError
	require.ErrorAs(t, err, &mappingErr)
}

func TestPragmaBoostNoiseSubstitution(t *testing.T) {
	pragma := NewPragmaBoostNoise(calculator.NewSymbolic("factor"))
	assert.True(t, pragma.IsParametrized())

	calc := calculator.NewCalculator()
	calc.Set("factor", 2.5)
	substituted, err := pragma.SubstituteParameters(calc)
	require.NoError(t, err)
	coeff, err := substituted.(PragmaBoostNoise).NoiseCoefficient().Float()
	require.NoError(t, err)
	assert.InDelta(t, 2.5, coeff, 1e-12)
}

// The block qubits remap strictly, the reordering dictionary falls back to
// the identity for entries the mapping does not cover.
func TestPragmaStartDecompositionBlockRemap(t *testing.T) {
	pragma := NewPragmaStartDecompositionBlock([]int{0, 1}, map[int]int{0: 1, 1: 0, 5: 5})
	remapped, err := pragma.RemapQubits(map[int]int{0: 2, 2: 0, 1: 1})
	require.NoError(t, err)

	block := remapped.(PragmaStartDecompositionBlock)
	assert.Equal(t, []int{2, 1}, block.Qubits())
	assert.Equal(t, map[int]int{2: 1, 1: 2, 5: 5}, block.ReorderingDictionary())
}

func TestPragmaChangeDeviceRemap(t *testing.T) {
	pragma := NewPragmaChangeDevice([]string{"Operation"}, "Wrapped", []byte{1, 2, 3})

	// identity mappings pass through
	remapped, err := pragma.RemapQubits(map[int]int{0: 0, 1: 1})
	require.NoError(t, err)
	assert.True(t, Equal(pragma, remapped))

	// the wrapped payload cannot be rewritten
	_, err = pragma.RemapQubits(map[int]int{0: 1, 1: 0})
	var mappingErr QubitMappingError
	require.ErrorAs(t, err, &mappingErr)
}

func TestPragmaConditionalRecursion(t *testing.T) {
	inner := NewCircuit()
	inner.Add(NewRotateX(0, calculator.NewSymbolic("theta")))
	pragma := NewPragmaConditional("ro", 2, inner)

	assert.True(t, pragma.IsParametrized())
	assert.Equal(t, "ro", pragma.ConditionRegister())
	assert.Equal(t, 2, pragma.ConditionIndex())

	calc := calculator.NewCalculator()
	calc.Set("theta", 0.5)
	substituted, err := pragma.SubstituteParameters(calc)
	require.NoError(t, err)
	assert.False(t, substituted.IsParametrized())

	remapped, err := pragma.RemapQubits(map[int]int{0: 1, 1: 0})
	require.NoError(t, err)
	assert.Equal(t, QubitSet(1), remapped.InvolvedQubits())
}

func TestPragmaLoopSubstitution(t *testing.T) {
	inner := NewCircuit()
	inner.Add(NewRotateZ(0, calculator.NewSymbolic("angle")))
	pragma := NewPragmaLoop(calculator.NewSymbolic("reps"), inner)
	assert.True(t, pragma.IsParametrized())

	calc := calculator.NewCalculator()
	calc.Set("reps", 3)
	calc.Set("angle", 0.25)
	substituted, err := pragma.SubstituteParameters(calc)
	require.NoError(t, err)

	loop := substituted.(PragmaLoop)
	reps, err := loop.Repetitions().Float()
	require.NoError(t, err)
	assert.InDelta(t, 3, reps, 1e-12)
	assert.False(t, loop.Circuit().IsParametrized())
}

func TestPragmaControlledCircuitRemap(t *testing.T) {
	inner := NewCircuit()
	inner.Add(NewPauliZ(1))
	pragma := NewPragmaControlledCircuit(0, inner)

	remapped, err := pragma.RemapQubits(map[int]int{0: 2, 1: 0, 2: 1})
	require.NoError(t, err)
	controlled := remapped.(PragmaControlledCircuit)
	assert.Equal(t, 2, controlled.ControllingQubit())
	assert.Equal(t, QubitSet(0, 2), controlled.InvolvedQubits())
}

func TestPragmaAnnotatedOpWrapping(t *testing.T) {
	pragma := NewPragmaAnnotatedOp(NewRotateX(1, calculator.NewSymbolic("t")), "calibration")
	assert.True(t, pragma.IsParametrized())
	assert.Equal(t, "calibration", pragma.Annotation())

	calc := calculator.NewCalculator()
	calc.Set("t", 1.0)
	substituted, err := pragma.SubstituteParameters(calc)
	require.NoError(t, err)
	assert.False(t, substituted.IsParametrized())

	remapped, err := pragma.RemapQubits(map[int]int{1: 0, 0: 1})
	require.NoError(t, err)
	annotated := remapped.(PragmaAnnotatedOp)
	assert.Equal(t, 0, annotated.Operation().(RotateX).Qubit())
}

func TestPragmaGlobalPhaseString(t *testing.T) {
	pragma := NewPragmaGlobalPhase(calculator.New(math.Pi))
	assert.Equal(t, "PragmaGlobalPhase { phase: pi }", pragma.String())
}
