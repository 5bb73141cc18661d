package operations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qopalg/calculator"
)

func TestMeasureQubit(t *testing.T) {
	m := NewMeasureQubit(1, "ro", 0)
	assert.Equal(t, []string{"Operation", "Measurement", "MeasureQubit"}, m.Tags())
	assert.Equal(t, QubitSet(1), m.InvolvedQubits())
	assert.Equal(t, "ro", m.Readout())
	assert.Equal(t, 0, m.ReadoutIndex())
	assert.False(t, m.IsParametrized())

	remapped, err := m.RemapQubits(map[int]int{1: 2, 2: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, remapped.(MeasureQubit).Qubit())

	_, err = m.RemapQubits(map[int]int{0: 0})
	var mappingErr QubitMappingError
	require.ErrorAs(t, err, &mappingErr)
}

func TestReadoutPragmasInvolveAll(t *testing.T) {
	prep := NewCircuit()
	prep.Add(NewHadamard(0))

	ops := []Operation{
		NewPragmaGetStateVector("ro", &prep),
		NewPragmaGetStateVector("ro", nil),
		NewPragmaGetDensityMatrix("ro", &prep),
		NewPragmaGetOccupationProbability("ro", nil),
		NewPragmaRepeatedMeasurement("ro", 1000, nil),
	}
	for _, op := range ops {
		assert.Equal(t, AllQubits(), op.InvolvedQubits(), op.HQSLang())
		tags := op.Tags()
		assert.Contains(t, tags, "Measurement")
		assert.Contains(t, tags, "PragmaOperation")
		measurement, ok := op.(MeasurementOperation)
		require.True(t, ok)
		assert.Equal(t, "ro", measurement.Readout())
	}
}

func TestReadoutPragmaCircuitRecursion(t *testing.T) {
	prep := NewCircuit()
	prep.Add(NewRotateX(0, calculator.NewSymbolic("theta")))

	pragma := NewPragmaGetStateVector("ro", &prep)
	assert.True(t, pragma.IsParametrized())

	calc := calculator.NewCalculator()
	calc.Set("theta", 1.0)
	substituted, err := pragma.SubstituteParameters(calc)
	require.NoError(t, err)
	assert.False(t, substituted.IsParametrized())

	remapped, err := pragma.RemapQubits(map[int]int{0: 1, 1: 0})
	require.NoError(t, err)
	circuit := remapped.(PragmaGetStateVector).Circuit()
	require.NotNil(t, circuit)
	assert.Equal(t, 1, circuit.Operations[0].(RotateX).Qubit())

	// without a preparation circuit both walks are identity
	bare := NewPragmaGetStateVector("ro", nil)
	assert.False(t, bare.IsParametrized())
	remappedBare, err := bare.RemapQubits(map[int]int{0: 1, 1: 0})
	require.NoError(t, err)
	assert.Nil(t, remappedBare.(PragmaGetStateVector).Circuit())
}

func TestPragmaGetPauliProduct(t *testing.T) {
	prep := NewCircuit()
	prep.Add(NewHadamard(2))
	pragma := NewPragmaGetPauliProduct(map[int]int{0: 3, 1: 1}, "ro", prep)

	assert.Equal(t, QubitSet(0, 1, 2), pragma.InvolvedQubits())

	// keys are rewritten where mapped, other keys stay
	remapped, err := pragma.RemapQubits(map[int]int{0: 2, 2: 0, 1: 1})
	require.NoError(t, err)
	product := remapped.(PragmaGetPauliProduct)
	assert.Equal(t, map[int]int{2: 3, 1: 1}, product.QubitPaulis())
	assert.Equal(t, 0, product.Circuit().Operations[0].(Hadamard).Qubit())
}

func TestPragmaRepeatedMeasurementMapping(t *testing.T) {
	pragma := NewPragmaRepeatedMeasurement("ro", 500, map[int]int{0: 0, 1: 1, 3: 2})
	assert.Equal(t, 500, pragma.NumberMeasurements())

	// readout mapping keys follow the qubit remapping, values are register
	// indices and stay put
	remapped, err := pragma.RemapQubits(map[int]int{0: 1, 1: 0})
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 0, 0: 1, 3: 2}, remapped.(PragmaRepeatedMeasurement).QubitMapping())

	bare := NewPragmaRepeatedMeasurement("ro", 500, nil)
	remappedBare, err := bare.RemapQubits(map[int]int{0: 1, 1: 0})
	require.NoError(t, err)
	assert.Nil(t, remappedBare.(PragmaRepeatedMeasurement).QubitMapping())
}

func TestMeasurementStrings(t *testing.T) {
	assert.Equal(t, `MeasureQubit { qubit: 0, readout: "ro", readout_index: 0 }`,
		NewMeasureQubit(0, "ro", 0).String())
	assert.Equal(t, `PragmaRepeatedMeasurement { readout: "ro", number_measurements: 10, qubit_mapping: None }`,
		NewPragmaRepeatedMeasurement("ro", 10, nil).String())
	assert.Equal(t, `PragmaGetStateVector { readout: "psi", circuit: None }`,
		NewPragmaGetStateVector("psi", nil).String())
}
