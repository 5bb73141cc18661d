package operations

import (
	"fmt"
	"sort"
	"strings"

	"qopalg/calculator"
)

// MeasureQubit measures a single qubit in the Z basis and stores the result
// in a bit register.
type MeasureQubit struct {
	qubit        int
	readout      string
	readoutIndex int
}

// NewMeasureQubit returns the single qubit measurement writing into
// readout at readoutIndex.
func NewMeasureQubit(qubit int, readout string, readoutIndex int) MeasureQubit {
	return MeasureQubit{qubit: qubit, readout: readout, readoutIndex: readoutIndex}
}

var tagsMeasureQubit = []string{"Operation", "Measurement", "MeasureQubit"}

func (m MeasureQubit) Tags() []string                 { return tagsMeasureQubit }
func (m MeasureQubit) HQSLang() string                { return "MeasureQubit" }
func (m MeasureQubit) Qubit() int                     { return m.qubit }
func (m MeasureQubit) InvolvedQubits() InvolvedQubits { return QubitSet(m.qubit) }
func (m MeasureQubit) IsParametrized() bool           { return false }
func (m MeasureQubit) Readout() string                { return m.readout }
func (m MeasureQubit) ReadoutIndex() int              { return m.readoutIndex }

func (m MeasureQubit) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return m, nil
}

func (m MeasureQubit) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	q, err := remapQubit(m.qubit, mapping)
	if err != nil {
		return nil, err
	}
	return NewMeasureQubit(q, m.readout, m.readoutIndex), nil
}

func (m MeasureQubit) String() string {
	return fmt.Sprintf("MeasureQubit { qubit: %d, readout: %q, readout_index: %d }",
		m.qubit, m.readout, m.readoutIndex)
}

// PragmaGetStateVector reads out the full state vector of the register into
// a complex register, optionally after running a preparation circuit on a
// copy of the register.
type PragmaGetStateVector struct {
	readout string
	circuit *Circuit
}

// NewPragmaGetStateVector returns the state-vector readout pragma. circuit
// may be nil.
func NewPragmaGetStateVector(readout string, circuit *Circuit) PragmaGetStateVector {
	return PragmaGetStateVector{readout: readout, circuit: circuit}
}

var tagsPragmaGetStateVector = []string{"Operation", "Measurement", "PragmaOperation", "PragmaGetStateVector"}

func (p PragmaGetStateVector) Tags() []string                 { return tagsPragmaGetStateVector }
func (p PragmaGetStateVector) HQSLang() string                { return "PragmaGetStateVector" }
func (p PragmaGetStateVector) InvolvedQubits() InvolvedQubits { return AllQubits() }
func (p PragmaGetStateVector) Readout() string                { return p.readout }
func (p PragmaGetStateVector) Circuit() *Circuit              { return p.circuit }
func (p PragmaGetStateVector) pragma()                        {}

func (p PragmaGetStateVector) IsParametrized() bool {
	return p.circuit != nil && p.circuit.IsParametrized()
}

func (p PragmaGetStateVector) nestedOps() []Operation {
	if p.circuit == nil {
		return nil
	}
	return p.circuit.Operations
}

func (p PragmaGetStateVector) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	circuit, err := substituteOptionalCircuit(p.circuit, calc)
	if err != nil {
		return nil, err
	}
	return NewPragmaGetStateVector(p.readout, circuit), nil
}

func (p PragmaGetStateVector) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	circuit, err := remapOptionalCircuit(p.circuit, mapping)
	if err != nil {
		return nil, err
	}
	return NewPragmaGetStateVector(p.readout, circuit), nil
}

func (p PragmaGetStateVector) String() string {
	return fmt.Sprintf("PragmaGetStateVector { readout: %q, circuit: %s }",
		p.readout, formatOptionalCircuit(p.circuit))
}

// PragmaGetDensityMatrix reads out the density matrix of the register into a
// complex register, optionally after running a preparation circuit on a copy
// of the register.
type PragmaGetDensityMatrix struct {
	readout string
	circuit *Circuit
}

// NewPragmaGetDensityMatrix returns the density-matrix readout pragma.
// circuit may be nil.
func NewPragmaGetDensityMatrix(readout string, circuit *Circuit) PragmaGetDensityMatrix {
	return PragmaGetDensityMatrix{readout: readout, circuit: circuit}
}

var tagsPragmaGetDensityMatrix = []string{"Operation", "Measurement", "PragmaOperation", "PragmaGetDensityMatrix"}

func (p PragmaGetDensityMatrix) Tags() []string                 { return tagsPragmaGetDensityMatrix }
func (p PragmaGetDensityMatrix) HQSLang() string                { return "PragmaGetDensityMatrix" }
func (p PragmaGetDensityMatrix) InvolvedQubits() InvolvedQubits { return AllQubits() }
func (p PragmaGetDensityMatrix) Readout() string                { return p.readout }
func (p PragmaGetDensityMatrix) Circuit() *Circuit              { return p.circuit }
func (p PragmaGetDensityMatrix) pragma()                        {}

func (p PragmaGetDensityMatrix) IsParametrized() bool {
	return p.circuit != nil && p.circuit.IsParametrized()
}

func (p PragmaGetDensityMatrix) nestedOps() []Operation {
	if p.circuit == nil {
		return nil
	}
	return p.circuit.Operations
}

func (p PragmaGetDensityMatrix) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	circuit, err := substituteOptionalCircuit(p.circuit, calc)
	if err != nil {
		return nil, err
	}
	return NewPragmaGetDensityMatrix(p.readout, circuit), nil
}

func (p PragmaGetDensityMatrix) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	circuit, err := remapOptionalCircuit(p.circuit, mapping)
	if err != nil {
		return nil, err
	}
	return NewPragmaGetDensityMatrix(p.readout, circuit), nil
}

func (p PragmaGetDensityMatrix) String() string {
	return fmt.Sprintf("PragmaGetDensityMatrix { readout: %q, circuit: %s }",
		p.readout, formatOptionalCircuit(p.circuit))
}

// PragmaGetOccupationProbability reads out the occupation probability of
// every basis state into a float register, optionally after running a
// preparation circuit on a copy of the register.
type PragmaGetOccupationProbability struct {
	readout string
	circuit *Circuit
}

// NewPragmaGetOccupationProbability returns the occupation-probability
// readout pragma. circuit may be nil.
func NewPragmaGetOccupationProbability(readout string, circuit *Circuit) PragmaGetOccupationProbability {
	return PragmaGetOccupationProbability{readout: readout, circuit: circuit}
}

var tagsPragmaGetOccupationProbability = []string{"Operation", "Measurement", "PragmaOperation", "PragmaGetOccupationProbability"}

func (p PragmaGetOccupationProbability) Tags() []string                 { return tagsPragmaGetOccupationProbability }
func (p PragmaGetOccupationProbability) HQSLang() string                { return "PragmaGetOccupationProbability" }
func (p PragmaGetOccupationProbability) InvolvedQubits() InvolvedQubits { return AllQubits() }
func (p PragmaGetOccupationProbability) Readout() string                { return p.readout }
func (p PragmaGetOccupationProbability) Circuit() *Circuit              { return p.circuit }
func (p PragmaGetOccupationProbability) pragma()                        {}

func (p PragmaGetOccupationProbability) IsParametrized() bool {
	return p.circuit != nil && p.circuit.IsParametrized()
}

func (p PragmaGetOccupationProbability) nestedOps() []Operation {
	if p.circuit == nil {
		return nil
	}
	return p.circuit.Operations
}

func (p PragmaGetOccupationProbability) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	circuit, err := substituteOptionalCircuit(p.circuit, calc)
	if err != nil {
		return nil, err
	}
	return NewPragmaGetOccupationProbability(p.readout, circuit), nil
}

func (p PragmaGetOccupationProbability) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	circuit, err := remapOptionalCircuit(p.circuit, mapping)
	if err != nil {
		return nil, err
	}
	return NewPragmaGetOccupationProbability(p.readout, circuit), nil
}

func (p PragmaGetOccupationProbability) String() string {
	return fmt.Sprintf("PragmaGetOccupationProbability { readout: %q, circuit: %s }",
		p.readout, formatOptionalCircuit(p.circuit))
}

// PragmaGetPauliProduct reads out the expectation value of a product of
// Pauli operators into a float register. qubitPaulis maps each qubit to the
// Pauli operator measured on it (0: I, 1: X, 2: Y, 3: Z); the circuit is run
// on a copy of the register before the readout.
type PragmaGetPauliProduct struct {
	qubitPaulis map[int]int
	readout     string
	circuit     Circuit
}

// NewPragmaGetPauliProduct returns the Pauli-product readout pragma.
func NewPragmaGetPauliProduct(qubitPaulis map[int]int, readout string, circuit Circuit) PragmaGetPauliProduct {
	return PragmaGetPauliProduct{qubitPaulis: qubitPaulis, readout: readout, circuit: circuit}
}

var tagsPragmaGetPauliProduct = []string{"Operation", "Measurement", "PragmaOperation", "PragmaGetPauliProduct"}

func (p PragmaGetPauliProduct) Tags() []string           { return tagsPragmaGetPauliProduct }
func (p PragmaGetPauliProduct) HQSLang() string          { return "PragmaGetPauliProduct" }
func (p PragmaGetPauliProduct) Readout() string          { return p.readout }
func (p PragmaGetPauliProduct) QubitPaulis() map[int]int { return p.qubitPaulis }
func (p PragmaGetPauliProduct) Circuit() Circuit         { return p.circuit }
func (p PragmaGetPauliProduct) pragma()                  {}
func (p PragmaGetPauliProduct) nestedOps() []Operation   { return p.circuit.Operations }

func (p PragmaGetPauliProduct) IsParametrized() bool { return p.circuit.IsParametrized() }

// InvolvedQubits is the union of the measured qubits and the qubits of the
// preparation circuit.
func (p PragmaGetPauliProduct) InvolvedQubits() InvolvedQubits {
	qubits := make([]int, 0, len(p.qubitPaulis))
	for q := range p.qubitPaulis {
		qubits = append(qubits, q)
	}
	if inner := p.circuit.InvolvedQubits(); inner.Kind == InvolvementSet {
		qubits = append(qubits, inner.Qubits...)
	}
	return QubitSet(qubits...)
}

func (p PragmaGetPauliProduct) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	circuit, err := p.circuit.SubstituteParameters(calc)
	if err != nil {
		return nil, err
	}
	return NewPragmaGetPauliProduct(p.qubitPaulis, p.readout, circuit), nil
}

// RemapQubits rewrites the keys of qubitPaulis through the mapping, leaving
// unmapped keys in place, and remaps the preparation circuit.
func (p PragmaGetPauliProduct) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	paulis := make(map[int]int, len(p.qubitPaulis))
	for q, pauli := range p.qubitPaulis {
		if n, ok := mapping[q]; ok {
			paulis[n] = pauli
		} else {
			paulis[q] = pauli
		}
	}
	circuit, err := p.circuit.RemapQubits(mapping)
	if err != nil {
		return nil, err
	}
	return NewPragmaGetPauliProduct(paulis, p.readout, circuit), nil
}

func (p PragmaGetPauliProduct) String() string {
	return fmt.Sprintf("PragmaGetPauliProduct { qubit_paulis: %s, readout: %q, circuit: %d ops }",
		formatQubitMap(p.qubitPaulis), p.readout, p.circuit.Len())
}

// PragmaRepeatedMeasurement measures every qubit of the register
// numberMeasurements times into a bit register. qubitMapping optionally maps
// qubits to indices in the readout register; nil means identity.
type PragmaRepeatedMeasurement struct {
	readout            string
	numberMeasurements int
	qubitMapping       map[int]int
}

// NewPragmaRepeatedMeasurement returns the repeated-measurement pragma.
// qubitMapping may be nil.
func NewPragmaRepeatedMeasurement(readout string, numberMeasurements int, qubitMapping map[int]int) PragmaRepeatedMeasurement {
	return PragmaRepeatedMeasurement{readout: readout, numberMeasurements: numberMeasurements, qubitMapping: qubitMapping}
}

var tagsPragmaRepeatedMeasurement = []string{"Operation", "Measurement", "PragmaOperation", "PragmaRepeatedMeasurement"}

func (p PragmaRepeatedMeasurement) Tags() []string                 { return tagsPragmaRepeatedMeasurement }
func (p PragmaRepeatedMeasurement) HQSLang() string                { return "PragmaRepeatedMeasurement" }
func (p PragmaRepeatedMeasurement) InvolvedQubits() InvolvedQubits { return AllQubits() }
func (p PragmaRepeatedMeasurement) IsParametrized() bool           { return false }
func (p PragmaRepeatedMeasurement) Readout() string                { return p.readout }
func (p PragmaRepeatedMeasurement) NumberMeasurements() int        { return p.numberMeasurements }
func (p PragmaRepeatedMeasurement) QubitMapping() map[int]int      { return p.qubitMapping }
func (p PragmaRepeatedMeasurement) pragma()                        {}

func (p PragmaRepeatedMeasurement) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return p, nil
}

// RemapQubits rewrites the keys of the readout mapping through the qubit
// mapping, leaving unmapped keys in place.
func (p PragmaRepeatedMeasurement) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	if p.qubitMapping == nil {
		return p, nil
	}
	remapped := make(map[int]int, len(p.qubitMapping))
	for q, idx := range p.qubitMapping {
		if n, ok := mapping[q]; ok {
			remapped[n] = idx
		} else {
			remapped[q] = idx
		}
	}
	return NewPragmaRepeatedMeasurement(p.readout, p.numberMeasurements, remapped), nil
}

func (p PragmaRepeatedMeasurement) String() string {
	return fmt.Sprintf("PragmaRepeatedMeasurement { readout: %q, number_measurements: %d, qubit_mapping: %s }",
		p.readout, p.numberMeasurements, formatQubitMap(p.qubitMapping))
}

func substituteOptionalCircuit(c *Circuit, calc *calculator.Calculator) (*Circuit, error) {
	if c == nil {
		return nil, nil
	}
	sub, err := c.SubstituteParameters(calc)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func remapOptionalCircuit(c *Circuit, mapping map[int]int) (*Circuit, error) {
	if c == nil {
		return nil, nil
	}
	remapped, err := c.RemapQubits(mapping)
	if err != nil {
		return nil, err
	}
	return &remapped, nil
}

func formatOptionalCircuit(c *Circuit) string {
	if c == nil {
		return "None"
	}
	return fmt.Sprintf("%d ops", c.Len())
}

// formatQubitMap renders an int map with sorted keys so String output is
// stable.
func formatQubitMap(m map[int]int) string {
	if m == nil {
		return "None"
	}
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%d: %d", k, m[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
