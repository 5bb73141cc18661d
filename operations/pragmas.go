package operations

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"qopalg/calculator"
)

// PragmaSetNumberOfMeasurements sets the number of measurement repetitions
// for a readout register.
type PragmaSetNumberOfMeasurements struct {
	numberMeasurements int
	readout            string
}

// NewPragmaSetNumberOfMeasurements returns the measurement-count pragma.
func NewPragmaSetNumberOfMeasurements(numberMeasurements int, readout string) PragmaSetNumberOfMeasurements {
	return PragmaSetNumberOfMeasurements{numberMeasurements: numberMeasurements, readout: readout}
}

var tagsPragmaSetNumberOfMeasurements = []string{"Operation", "PragmaOperation", "PragmaSetNumberOfMeasurements"}

func (p PragmaSetNumberOfMeasurements) Tags() []string                 { return tagsPragmaSetNumberOfMeasurements }
func (p PragmaSetNumberOfMeasurements) HQSLang() string                { return "PragmaSetNumberOfMeasurements" }
func (p PragmaSetNumberOfMeasurements) InvolvedQubits() InvolvedQubits { return NoQubits() }
func (p PragmaSetNumberOfMeasurements) IsParametrized() bool           { return false }
func (p PragmaSetNumberOfMeasurements) NumberMeasurements() int        { return p.numberMeasurements }
func (p PragmaSetNumberOfMeasurements) Readout() string                { return p.readout }
func (p PragmaSetNumberOfMeasurements) pragma()                        {}

func (p PragmaSetNumberOfMeasurements) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return p, nil
}

func (p PragmaSetNumberOfMeasurements) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	return p, nil
}

func (p PragmaSetNumberOfMeasurements) String() string {
	return fmt.Sprintf("PragmaSetNumberOfMeasurements { number_measurements: %d, readout: %q }",
		p.numberMeasurements, p.readout)
}

// PragmaSetStateVector sets the state of the quantum register to an
// arbitrary state vector, overriding the default |0...0> initialization.
type PragmaSetStateVector struct {
	statevector []complex128
}

// NewPragmaSetStateVector returns the state-initialization pragma.
func NewPragmaSetStateVector(statevector []complex128) PragmaSetStateVector {
	return PragmaSetStateVector{statevector: statevector}
}

var tagsPragmaSetStateVector = []string{"Operation", "PragmaOperation", "PragmaSetStateVector"}

func (p PragmaSetStateVector) Tags() []string                 { return tagsPragmaSetStateVector }
func (p PragmaSetStateVector) HQSLang() string                { return "PragmaSetStateVector" }
func (p PragmaSetStateVector) InvolvedQubits() InvolvedQubits { return AllQubits() }
func (p PragmaSetStateVector) IsParametrized() bool           { return false }
func (p PragmaSetStateVector) StateVector() []complex128      { return p.statevector }
func (p PragmaSetStateVector) pragma()                        {}

func (p PragmaSetStateVector) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return p, nil
}

func (p PragmaSetStateVector) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	return p, nil
}

func (p PragmaSetStateVector) String() string {
	return fmt.Sprintf("PragmaSetStateVector { statevector: %v }", p.statevector)
}

// PragmaSetDensityMatrix sets the density matrix of the quantum register.
type PragmaSetDensityMatrix struct {
	densityMatrix *mat.CDense
}

// NewPragmaSetDensityMatrix returns the density-matrix initialization
// pragma.
func NewPragmaSetDensityMatrix(densityMatrix *mat.CDense) PragmaSetDensityMatrix {
	return PragmaSetDensityMatrix{densityMatrix: densityMatrix}
}

var tagsPragmaSetDensityMatrix = []string{"Operation", "PragmaOperation", "PragmaSetDensityMatrix"}

func (p PragmaSetDensityMatrix) Tags() []string                 { return tagsPragmaSetDensityMatrix }
func (p PragmaSetDensityMatrix) HQSLang() string                { return "PragmaSetDensityMatrix" }
func (p PragmaSetDensityMatrix) InvolvedQubits() InvolvedQubits { return AllQubits() }
func (p PragmaSetDensityMatrix) IsParametrized() bool           { return false }
func (p PragmaSetDensityMatrix) DensityMatrix() *mat.CDense     { return p.densityMatrix }
func (p PragmaSetDensityMatrix) pragma()                        {}

func (p PragmaSetDensityMatrix) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return p, nil
}

func (p PragmaSetDensityMatrix) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	return p, nil
}

func (p PragmaSetDensityMatrix) String() string {
	rows, cols := p.densityMatrix.Dims()
	return fmt.Sprintf("PragmaSetDensityMatrix { density_matrix: %dx%d }", rows, cols)
}

// PragmaRepeatGate repeats the next gate in the circuit the given number of
// times.
type PragmaRepeatGate struct {
	repetitionCoefficient int
}

// NewPragmaRepeatGate returns the gate-repetition pragma.
func NewPragmaRepeatGate(repetitionCoefficient int) PragmaRepeatGate {
	return PragmaRepeatGate{repetitionCoefficient: repetitionCoefficient}
}

var tagsPragmaRepeatGate = []string{"Operation", "PragmaOperation", "PragmaRepeatGate"}

func (p PragmaRepeatGate) Tags() []string                 { return tagsPragmaRepeatGate }
func (p PragmaRepeatGate) HQSLang() string                { return "PragmaRepeatGate" }
func (p PragmaRepeatGate) InvolvedQubits() InvolvedQubits { return AllQubits() }
func (p PragmaRepeatGate) IsParametrized() bool           { return false }
func (p PragmaRepeatGate) RepetitionCoefficient() int     { return p.repetitionCoefficient }
func (p PragmaRepeatGate) pragma()                        {}

func (p PragmaRepeatGate) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return p, nil
}

func (p PragmaRepeatGate) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	return p, nil
}

func (p PragmaRepeatGate) String() string {
	return fmt.Sprintf("PragmaRepeatGate { repetition_coefficient: %d }", p.repetitionCoefficient)
}

// PragmaOverrotation applies a statistical overrotation to the next matching
// rotation gate: a random number drawn from a normal distribution with
// standard deviation variance, multiplied by amplitude, is added to the
// rotation angle.
type PragmaOverrotation struct {
	gateHQSLang string
	qubits      []int
	amplitude   float64
	variance    float64
}

// NewPragmaOverrotation returns the overrotation pragma for the gate named
// gateHQSLang on the given qubits.
func NewPragmaOverrotation(gateHQSLang string, qubits []int, amplitude, variance float64) PragmaOverrotation {
	return PragmaOverrotation{gateHQSLang: gateHQSLang, qubits: qubits, amplitude: amplitude, variance: variance}
}

var tagsPragmaOverrotation = []string{"Operation", "MultiQubitOperation", "PragmaOperation", "PragmaOverrotation"}

func (p PragmaOverrotation) Tags() []string                 { return tagsPragmaOverrotation }
func (p PragmaOverrotation) HQSLang() string                { return "PragmaOverrotation" }
func (p PragmaOverrotation) Qubits() []int                  { return p.qubits }
func (p PragmaOverrotation) InvolvedQubits() InvolvedQubits { return QubitSet(p.qubits...) }
func (p PragmaOverrotation) IsParametrized() bool           { return false }
func (p PragmaOverrotation) GateHQSLang() string            { return p.gateHQSLang }
func (p PragmaOverrotation) Amplitude() float64             { return p.amplitude }
func (p PragmaOverrotation) Variance() float64              { return p.variance }
func (p PragmaOverrotation) pragma()                        {}

func (p PragmaOverrotation) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return p, nil
}

func (p PragmaOverrotation) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	qubits, err := remapQubitSlice(p.qubits, mapping)
	if err != nil {
		return nil, err
	}
	return NewPragmaOverrotation(p.gateHQSLang, qubits, p.amplitude, p.variance), nil
}

func (p PragmaOverrotation) String() string {
	return fmt.Sprintf("PragmaOverrotation { gate_hqslang: %q, qubits: %s, amplitude: %v, variance: %v }",
		p.gateHQSLang, formatQubitVector(p.qubits), p.amplitude, p.variance)
}

// PragmaBoostNoise multiplies the simulated noise gate times by the given
// coefficient.
type PragmaBoostNoise struct {
	noiseCoefficient calculator.CalculatorFloat
}

// NewPragmaBoostNoise returns the noise-boost pragma.
func NewPragmaBoostNoise(noiseCoefficient calculator.CalculatorFloat) PragmaBoostNoise {
	return PragmaBoostNoise{noiseCoefficient: noiseCoefficient}
}

var tagsPragmaBoostNoise = []string{"Operation", "PragmaOperation", "PragmaBoostNoise"}

func (p PragmaBoostNoise) Tags() []string                 { return tagsPragmaBoostNoise }
func (p PragmaBoostNoise) HQSLang() string                { return "PragmaBoostNoise" }
func (p PragmaBoostNoise) InvolvedQubits() InvolvedQubits { return NoQubits() }
func (p PragmaBoostNoise) IsParametrized() bool           { return !p.noiseCoefficient.IsFloat() }
func (p PragmaBoostNoise) pragma()                        {}

// NoiseCoefficient returns the factor by which noise gate times are
// multiplied.
func (p PragmaBoostNoise) NoiseCoefficient() calculator.CalculatorFloat {
	return p.noiseCoefficient
}

func (p PragmaBoostNoise) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	coeff, err := p.noiseCoefficient.Substitute(calc)
	if err != nil {
		return nil, err
	}
	return NewPragmaBoostNoise(coeff), nil
}

func (p PragmaBoostNoise) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	return p, nil
}

func (p PragmaBoostNoise) String() string {
	return fmt.Sprintf("PragmaBoostNoise { noise_coefficient: %s }", p.noiseCoefficient)
}

// PragmaStopParallelBlock marks the end of a block of operations executed in
// parallel and carries the execution time of the whole block.
type PragmaStopParallelBlock struct {
	qubits        []int
	executionTime calculator.CalculatorFloat
}

// NewPragmaStopParallelBlock returns the parallel-block terminator pragma.
func NewPragmaStopParallelBlock(qubits []int, executionTime calculator.CalculatorFloat) PragmaStopParallelBlock {
	return PragmaStopParallelBlock{qubits: qubits, executionTime: executionTime}
}

var tagsPragmaStopParallelBlock = []string{"Operation", "MultiQubitOperation", "PragmaOperation", "PragmaStopParallelBlock"}

func (p PragmaStopParallelBlock) Tags() []string                 { return tagsPragmaStopParallelBlock }
func (p PragmaStopParallelBlock) HQSLang() string                { return "PragmaStopParallelBlock" }
func (p PragmaStopParallelBlock) Qubits() []int                  { return p.qubits }
func (p PragmaStopParallelBlock) InvolvedQubits() InvolvedQubits { return QubitSet(p.qubits...) }
func (p PragmaStopParallelBlock) IsParametrized() bool           { return !p.executionTime.IsFloat() }
func (p PragmaStopParallelBlock) pragma()                        {}

// ExecutionTime returns the execution time of the block in seconds.
func (p PragmaStopParallelBlock) ExecutionTime() calculator.CalculatorFloat {
	return p.executionTime
}

func (p PragmaStopParallelBlock) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	t, err := p.executionTime.Substitute(calc)
	if err != nil {
		return nil, err
	}
	return NewPragmaStopParallelBlock(p.qubits, t), nil
}

func (p PragmaStopParallelBlock) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	qubits, err := remapQubitSlice(p.qubits, mapping)
	if err != nil {
		return nil, err
	}
	return NewPragmaStopParallelBlock(qubits, p.executionTime), nil
}

func (p PragmaStopParallelBlock) String() string {
	return fmt.Sprintf("PragmaStopParallelBlock { qubits: %s, execution_time: %s }",
		formatQubitVector(p.qubits), p.executionTime)
}

// PragmaGlobalPhase records a global phase picked up by the circuit.
type PragmaGlobalPhase struct {
	phase calculator.CalculatorFloat
}

// NewPragmaGlobalPhase returns the global-phase pragma.
func NewPragmaGlobalPhase(phase calculator.CalculatorFloat) PragmaGlobalPhase {
	return PragmaGlobalPhase{phase: phase}
}

var tagsPragmaGlobalPhase = []string{"Operation", "PragmaOperation", "PragmaGlobalPhase"}

func (p PragmaGlobalPhase) Tags() []string                       { return tagsPragmaGlobalPhase }
func (p PragmaGlobalPhase) HQSLang() string                      { return "PragmaGlobalPhase" }
func (p PragmaGlobalPhase) InvolvedQubits() InvolvedQubits       { return NoQubits() }
func (p PragmaGlobalPhase) IsParametrized() bool                 { return !p.phase.IsFloat() }
func (p PragmaGlobalPhase) Phase() calculator.CalculatorFloat    { return p.phase }
func (p PragmaGlobalPhase) pragma()                              {}

func (p PragmaGlobalPhase) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	phase, err := p.phase.Substitute(calc)
	if err != nil {
		return nil, err
	}
	return NewPragmaGlobalPhase(phase), nil
}

func (p PragmaGlobalPhase) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	return p, nil
}

func (p PragmaGlobalPhase) String() string {
	return fmt.Sprintf("PragmaGlobalPhase { phase: %s }", p.phase)
}

// PragmaSleep lets the given qubits idle for a fixed time, typically to
// accumulate decoherence deliberately.
type PragmaSleep struct {
	qubits    []int
	sleepTime calculator.CalculatorFloat
}

// NewPragmaSleep returns the idle pragma.
func NewPragmaSleep(qubits []int, sleepTime calculator.CalculatorFloat) PragmaSleep {
	return PragmaSleep{qubits: qubits, sleepTime: sleepTime}
}

var tagsPragmaSleep = []string{"Operation", "MultiQubitOperation", "PragmaOperation", "PragmaSleep"}

func (p PragmaSleep) Tags() []string                          { return tagsPragmaSleep }
func (p PragmaSleep) HQSLang() string                         { return "PragmaSleep" }
func (p PragmaSleep) Qubits() []int                           { return p.qubits }
func (p PragmaSleep) InvolvedQubits() InvolvedQubits          { return QubitSet(p.qubits...) }
func (p PragmaSleep) IsParametrized() bool                    { return !p.sleepTime.IsFloat() }
func (p PragmaSleep) SleepTime() calculator.CalculatorFloat   { return p.sleepTime }
func (p PragmaSleep) pragma()                                 {}

func (p PragmaSleep) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	t, err := p.sleepTime.Substitute(calc)
	if err != nil {
		return nil, err
	}
	return NewPragmaSleep(p.qubits, t), nil
}

func (p PragmaSleep) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	qubits, err := remapQubitSlice(p.qubits, mapping)
	if err != nil {
		return nil, err
	}
	return NewPragmaSleep(qubits, p.sleepTime), nil
}

func (p PragmaSleep) String() string {
	return fmt.Sprintf("PragmaSleep { qubits: %s, sleep_time: %s }", formatQubitVector(p.qubits), p.sleepTime)
}

// PragmaActiveReset resets a qubit to the |0> state, regardless of its
// current state.
type PragmaActiveReset struct {
	qubit int
}

// NewPragmaActiveReset returns the active-reset pragma.
func NewPragmaActiveReset(qubit int) PragmaActiveReset {
	return PragmaActiveReset{qubit: qubit}
}

var tagsPragmaActiveReset = []string{"Operation", "SingleQubitOperation", "PragmaOperation", "PragmaActiveReset"}

func (p PragmaActiveReset) Tags() []string                 { return tagsPragmaActiveReset }
func (p PragmaActiveReset) HQSLang() string                { return "PragmaActiveReset" }
func (p PragmaActiveReset) Qubit() int                     { return p.qubit }
func (p PragmaActiveReset) InvolvedQubits() InvolvedQubits { return QubitSet(p.qubit) }
func (p PragmaActiveReset) IsParametrized() bool           { return false }
func (p PragmaActiveReset) pragma()                        {}

func (p PragmaActiveReset) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return p, nil
}

func (p PragmaActiveReset) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	q, err := remapQubit(p.qubit, mapping)
	if err != nil {
		return nil, err
	}
	return NewPragmaActiveReset(q), nil
}

func (p PragmaActiveReset) String() string {
	return fmt.Sprintf("PragmaActiveReset { qubit: %d }", p.qubit)
}

// PragmaStartDecompositionBlock signals the start of a decomposition block
// with an optional qubit reordering inside the block.
type PragmaStartDecompositionBlock struct {
	qubits               []int
	reorderingDictionary map[int]int
}

// NewPragmaStartDecompositionBlock returns the decomposition-block start
// pragma.
func NewPragmaStartDecompositionBlock(qubits []int, reorderingDictionary map[int]int) PragmaStartDecompositionBlock {
	return PragmaStartDecompositionBlock{qubits: qubits, reorderingDictionary: reorderingDictionary}
}

var tagsPragmaStartDecompositionBlock = []string{"Operation", "MultiQubitOperation", "PragmaOperation", "PragmaStartDecompositionBlock"}

func (p PragmaStartDecompositionBlock) Tags() []string                 { return tagsPragmaStartDecompositionBlock }
func (p PragmaStartDecompositionBlock) HQSLang() string                { return "PragmaStartDecompositionBlock" }
func (p PragmaStartDecompositionBlock) Qubits() []int                  { return p.qubits }
func (p PragmaStartDecompositionBlock) InvolvedQubits() InvolvedQubits { return QubitSet(p.qubits...) }
func (p PragmaStartDecompositionBlock) IsParametrized() bool           { return false }
func (p PragmaStartDecompositionBlock) ReorderingDictionary() map[int]int {
	return p.reorderingDictionary
}
func (p PragmaStartDecompositionBlock) pragma() {}

func (p PragmaStartDecompositionBlock) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return p, nil
}

// RemapQubits remaps the block qubits strictly; keys and values of the
// reordering dictionary fall back to their own index when absent from the
// mapping.
func (p PragmaStartDecompositionBlock) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	qubits, err := remapQubitSlice(p.qubits, mapping)
	if err != nil {
		return nil, err
	}
	reordering := make(map[int]int, len(p.reorderingDictionary))
	for oldQubit, newQubit := range p.reorderingDictionary {
		oldRemapped, ok := mapping[oldQubit]
		if !ok {
			oldRemapped = oldQubit
		}
		newRemapped, ok := mapping[newQubit]
		if !ok {
			newRemapped = newQubit
		}
		reordering[oldRemapped] = newRemapped
	}
	return NewPragmaStartDecompositionBlock(qubits, reordering), nil
}

func (p PragmaStartDecompositionBlock) String() string {
	return fmt.Sprintf("PragmaStartDecompositionBlock { qubits: %s, reordering_dictionary: %s }",
		formatQubitVector(p.qubits), formatQubitMap(p.reorderingDictionary))
}

// PragmaStopDecompositionBlock signals the end of a decomposition block.
type PragmaStopDecompositionBlock struct {
	qubits []int
}

// NewPragmaStopDecompositionBlock returns the decomposition-block end
// pragma.
func NewPragmaStopDecompositionBlock(qubits []int) PragmaStopDecompositionBlock {
	return PragmaStopDecompositionBlock{qubits: qubits}
}

var tagsPragmaStopDecompositionBlock = []string{"Operation", "MultiQubitOperation", "PragmaOperation", "PragmaStopDecompositionBlock"}

func (p PragmaStopDecompositionBlock) Tags() []string                 { return tagsPragmaStopDecompositionBlock }
func (p PragmaStopDecompositionBlock) HQSLang() string                { return "PragmaStopDecompositionBlock" }
func (p PragmaStopDecompositionBlock) Qubits() []int                  { return p.qubits }
func (p PragmaStopDecompositionBlock) InvolvedQubits() InvolvedQubits { return QubitSet(p.qubits...) }
func (p PragmaStopDecompositionBlock) IsParametrized() bool           { return false }
func (p PragmaStopDecompositionBlock) pragma()                        {}

func (p PragmaStopDecompositionBlock) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return p, nil
}

func (p PragmaStopDecompositionBlock) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	qubits, err := remapQubitSlice(p.qubits, mapping)
	if err != nil {
		return nil, err
	}
	return NewPragmaStopDecompositionBlock(qubits), nil
}

func (p PragmaStopDecompositionBlock) String() string {
	return fmt.Sprintf("PragmaStopDecompositionBlock { qubits: %s }", formatQubitVector(p.qubits))
}

// PragmaConditional executes its inner circuit only when a classical
// condition bit is set.
type PragmaConditional struct {
	conditionRegister string
	conditionIndex    int
	circuit           Circuit
}

// NewPragmaConditional returns the conditional-execution pragma reading the
// condition from conditionRegister at conditionIndex.
func NewPragmaConditional(conditionRegister string, conditionIndex int, circuit Circuit) PragmaConditional {
	return PragmaConditional{conditionRegister: conditionRegister, conditionIndex: conditionIndex, circuit: circuit}
}

var tagsPragmaConditional = []string{"Operation", "PragmaOperation", "PragmaConditional"}

func (p PragmaConditional) Tags() []string                 { return tagsPragmaConditional }
func (p PragmaConditional) HQSLang() string                { return "PragmaConditional" }
func (p PragmaConditional) InvolvedQubits() InvolvedQubits { return p.circuit.InvolvedQubits() }
func (p PragmaConditional) IsParametrized() bool           { return p.circuit.IsParametrized() }
func (p PragmaConditional) ConditionRegister() string      { return p.conditionRegister }
func (p PragmaConditional) ConditionIndex() int            { return p.conditionIndex }
func (p PragmaConditional) Circuit() Circuit               { return p.circuit }
func (p PragmaConditional) pragma()                        {}
func (p PragmaConditional) nestedOps() []Operation         { return p.circuit.Operations }

func (p PragmaConditional) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	circuit, err := p.circuit.SubstituteParameters(calc)
	if err != nil {
		return nil, err
	}
	return NewPragmaConditional(p.conditionRegister, p.conditionIndex, circuit), nil
}

func (p PragmaConditional) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	circuit, err := p.circuit.RemapQubits(mapping)
	if err != nil {
		return nil, err
	}
	return NewPragmaConditional(p.conditionRegister, p.conditionIndex, circuit), nil
}

func (p PragmaConditional) String() string {
	return fmt.Sprintf("PragmaConditional { condition_register: %q, condition_index: %d, circuit: %d ops }",
		p.conditionRegister, p.conditionIndex, p.circuit.Len())
}

// PragmaChangeDevice wraps a device-specific operation for backends that
// reconfigure hardware mid-circuit. The wrapped operation travels as an
// opaque serialized payload.
type PragmaChangeDevice struct {
	wrappedTags      []string
	wrappedHQSLang   string
	wrappedOperation []byte
}

// NewPragmaChangeDevice returns the device-change pragma wrapping a
// serialized operation.
func NewPragmaChangeDevice(wrappedTags []string, wrappedHQSLang string, wrappedOperation []byte) PragmaChangeDevice {
	return PragmaChangeDevice{wrappedTags: wrappedTags, wrappedHQSLang: wrappedHQSLang, wrappedOperation: wrappedOperation}
}

var tagsPragmaChangeDevice = []string{"Operation", "PragmaOperation", "PragmaChangeDevice"}

func (p PragmaChangeDevice) Tags() []string                 { return tagsPragmaChangeDevice }
func (p PragmaChangeDevice) HQSLang() string                { return "PragmaChangeDevice" }
func (p PragmaChangeDevice) InvolvedQubits() InvolvedQubits { return AllQubits() }
func (p PragmaChangeDevice) IsParametrized() bool           { return false }
func (p PragmaChangeDevice) WrappedTags() []string          { return p.wrappedTags }
func (p PragmaChangeDevice) WrappedHQSLang() string         { return p.wrappedHQSLang }
func (p PragmaChangeDevice) WrappedOperation() []byte       { return p.wrappedOperation }
func (p PragmaChangeDevice) pragma()                        {}

func (p PragmaChangeDevice) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return p, nil
}

// RemapQubits cannot rewrite the opaque wrapped operation, so any mapping
// that moves a qubit is rejected.
func (p PragmaChangeDevice) RemapQubits(mapping map[int]int) (Operation, error) {
	for from, to := range mapping {
		if from != to {
			return nil, QubitMappingError{Qubit: from}
		}
	}
	return p, nil
}

func (p PragmaChangeDevice) String() string {
	return fmt.Sprintf("PragmaChangeDevice { wrapped_hqslang: %q }", p.wrappedHQSLang)
}

// PragmaLoop repeats its inner circuit a number of times; the repetition
// count may be symbolic until substitution.
type PragmaLoop struct {
	repetitions calculator.CalculatorFloat
	circuit     Circuit
}

// NewPragmaLoop returns the loop pragma.
func NewPragmaLoop(repetitions calculator.CalculatorFloat, circuit Circuit) PragmaLoop {
	return PragmaLoop{repetitions: repetitions, circuit: circuit}
}

var tagsPragmaLoop = []string{"Operation", "PragmaOperation", "PragmaLoop"}

func (p PragmaLoop) Tags() []string                 { return tagsPragmaLoop }
func (p PragmaLoop) HQSLang() string                { return "PragmaLoop" }
func (p PragmaLoop) InvolvedQubits() InvolvedQubits { return p.circuit.InvolvedQubits() }
func (p PragmaLoop) Circuit() Circuit               { return p.circuit }
func (p PragmaLoop) pragma()                        {}
func (p PragmaLoop) nestedOps() []Operation         { return p.circuit.Operations }

// Repetitions returns the loop count.
func (p PragmaLoop) Repetitions() calculator.CalculatorFloat { return p.repetitions }

func (p PragmaLoop) IsParametrized() bool {
	return !p.repetitions.IsFloat() || p.circuit.IsParametrized()
}

func (p PragmaLoop) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	reps, err := p.repetitions.Substitute(calc)
	if err != nil {
		return nil, err
	}
	circuit, err := p.circuit.SubstituteParameters(calc)
	if err != nil {
		return nil, err
	}
	return NewPragmaLoop(reps, circuit), nil
}

func (p PragmaLoop) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	circuit, err := p.circuit.RemapQubits(mapping)
	if err != nil {
		return nil, err
	}
	return NewPragmaLoop(p.repetitions, circuit), nil
}

func (p PragmaLoop) String() string {
	return fmt.Sprintf("PragmaLoop { repetitions: %s, circuit: %d ops }", p.repetitions, p.circuit.Len())
}

// PragmaControlledCircuit executes its inner circuit conditioned on a
// controlling qubit being |1>.
type PragmaControlledCircuit struct {
	controllingQubit int
	circuit          Circuit
}

// NewPragmaControlledCircuit returns the controlled-circuit pragma.
func NewPragmaControlledCircuit(controllingQubit int, circuit Circuit) PragmaControlledCircuit {
	return PragmaControlledCircuit{controllingQubit: controllingQubit, circuit: circuit}
}

var tagsPragmaControlledCircuit = []string{"Operation", "PragmaOperation", "PragmaControlledCircuit"}

func (p PragmaControlledCircuit) Tags() []string         { return tagsPragmaControlledCircuit }
func (p PragmaControlledCircuit) HQSLang() string        { return "PragmaControlledCircuit" }
func (p PragmaControlledCircuit) ControllingQubit() int  { return p.controllingQubit }
func (p PragmaControlledCircuit) Circuit() Circuit       { return p.circuit }
func (p PragmaControlledCircuit) IsParametrized() bool   { return p.circuit.IsParametrized() }
func (p PragmaControlledCircuit) pragma()                {}
func (p PragmaControlledCircuit) nestedOps() []Operation { return p.circuit.Operations }

func (p PragmaControlledCircuit) InvolvedQubits() InvolvedQubits {
	inner := p.circuit.InvolvedQubits()
	if inner.Kind == InvolvementAll {
		return AllQubits()
	}
	return QubitSet(append([]int{p.controllingQubit}, inner.Qubits...)...)
}

func (p PragmaControlledCircuit) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	circuit, err := p.circuit.SubstituteParameters(calc)
	if err != nil {
		return nil, err
	}
	return NewPragmaControlledCircuit(p.controllingQubit, circuit), nil
}

func (p PragmaControlledCircuit) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	q, err := remapQubit(p.controllingQubit, mapping)
	if err != nil {
		return nil, err
	}
	circuit, err := p.circuit.RemapQubits(mapping)
	if err != nil {
		return nil, err
	}
	return NewPragmaControlledCircuit(q, circuit), nil
}

func (p PragmaControlledCircuit) String() string {
	return fmt.Sprintf("PragmaControlledCircuit { controlling_qubit: %d, circuit: %d ops }",
		p.controllingQubit, p.circuit.Len())
}

// PragmaAnnotatedOp attaches a free-form annotation to a single operation,
// leaving the operation's own semantics untouched.
type PragmaAnnotatedOp struct {
	operation  Operation
	annotation string
}

// NewPragmaAnnotatedOp returns the annotation wrapper around op.
func NewPragmaAnnotatedOp(op Operation, annotation string) PragmaAnnotatedOp {
	return PragmaAnnotatedOp{operation: op, annotation: annotation}
}

var tagsPragmaAnnotatedOp = []string{"Operation", "PragmaOperation", "PragmaAnnotatedOp"}

func (p PragmaAnnotatedOp) Tags() []string                 { return tagsPragmaAnnotatedOp }
func (p PragmaAnnotatedOp) HQSLang() string                { return "PragmaAnnotatedOp" }
func (p PragmaAnnotatedOp) InvolvedQubits() InvolvedQubits { return p.operation.InvolvedQubits() }
func (p PragmaAnnotatedOp) IsParametrized() bool           { return p.operation.IsParametrized() }
func (p PragmaAnnotatedOp) Operation() Operation           { return p.operation }
func (p PragmaAnnotatedOp) Annotation() string             { return p.annotation }
func (p PragmaAnnotatedOp) pragma()                        {}
func (p PragmaAnnotatedOp) nestedOps() []Operation         { return []Operation{p.operation} }

func (p PragmaAnnotatedOp) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	op, err := p.operation.SubstituteParameters(calc)
	if err != nil {
		return nil, err
	}
	return NewPragmaAnnotatedOp(op, p.annotation), nil
}

func (p PragmaAnnotatedOp) RemapQubits(mapping map[int]int) (Operation, error) {
	op, err := p.operation.RemapQubits(mapping)
	if err != nil {
		return nil, err
	}
	return NewPragmaAnnotatedOp(op, p.annotation), nil
}

func (p PragmaAnnotatedOp) String() string {
	return fmt.Sprintf("PragmaAnnotatedOp { operation: %s, annotation: %q }", p.operation.HQSLang(), p.annotation)
}
