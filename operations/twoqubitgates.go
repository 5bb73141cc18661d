package operations

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"qopalg/calculator"
)

// KAKDecomposition is the canonical decomposition of a two-qubit gate: local
// circuits around the entangling core
//
//	U(k) = exp(i (k[0] XX + k[1] YY + k[2] ZZ))
//
// so that the full gate equals
//
//	exp(i*GlobalPhase) * CircuitAfter * U(k) * CircuitBefore.
type KAKDecomposition struct {
	GlobalPhase   calculator.CalculatorFloat
	KVector       [3]calculator.CalculatorFloat
	CircuitBefore *Circuit
	CircuitAfter  *Circuit
}

func circuitOf(ops ...Operation) *Circuit {
	c := NewCircuit()
	for _, op := range ops {
		c.Add(op)
	}
	return &c
}

// remapPair rewrites a control/target pair through the mapping.
func remapPair(control, target int, mapping map[int]int) (int, int, error) {
	if err := checkValidMapping(mapping); err != nil {
		return 0, 0, err
	}
	c, err := remapQubit(control, mapping)
	if err != nil {
		return 0, 0, err
	}
	t, err := remapQubit(target, mapping)
	if err != nil {
		return 0, 0, err
	}
	return c, t, nil
}

// CNOT flips the target qubit when the control qubit is |1>.
type CNOT struct {
	control int
	target  int
}

// NewCNOT returns the controlled-NOT gate.
func NewCNOT(control, target int) CNOT {
	return CNOT{control: control, target: target}
}

var tagsCNOT = []string{"Operation", "GateOperation", "TwoQubitGateOperation", "CNOT"}

func (g CNOT) Tags() []string                 { return tagsCNOT }
func (g CNOT) HQSLang() string                { return "CNOT" }
func (g CNOT) Control() int                   { return g.control }
func (g CNOT) Target() int                    { return g.target }
func (g CNOT) InvolvedQubits() InvolvedQubits { return QubitSet(g.control, g.target) }
func (g CNOT) IsParametrized() bool           { return false }

func (g CNOT) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return g, nil
}

func (g CNOT) RemapQubits(mapping map[int]int) (Operation, error) {
	c, t, err := remapPair(g.control, g.target, mapping)
	if err != nil {
		return nil, err
	}
	return NewCNOT(c, t), nil
}

func (g CNOT) UnitaryMatrix() (*mat.CDense, error) {
	return mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
	}), nil
}

func (g CNOT) KAKDecomposition() KAKDecomposition {
	return KAKDecomposition{
		GlobalPhase: calculator.New(math.Pi / 4),
		KVector: [3]calculator.CalculatorFloat{
			calculator.New(math.Pi / 4), calculator.New(0), calculator.New(0),
		},
		CircuitBefore: circuitOf(
			NewRotateZ(g.control, calculator.New(math.Pi/2)),
			NewRotateY(g.control, calculator.New(math.Pi/2)),
			NewRotateX(g.target, calculator.New(math.Pi/2)),
		),
		CircuitAfter: circuitOf(
			NewRotateY(g.control, calculator.New(-math.Pi/2)),
		),
	}
}

func (g CNOT) String() string {
	return fmt.Sprintf("CNOT { control: %d, target: %d }", g.control, g.target)
}

// SWAP exchanges the states of the two qubits.
type SWAP struct {
	control int
	target  int
}

// NewSWAP returns the SWAP gate.
func NewSWAP(control, target int) SWAP {
	return SWAP{control: control, target: target}
}

var tagsSWAP = []string{"Operation", "GateOperation", "TwoQubitGateOperation", "SWAP"}

func (g SWAP) Tags() []string                 { return tagsSWAP }
func (g SWAP) HQSLang() string                { return "SWAP" }
func (g SWAP) Control() int                   { return g.control }
func (g SWAP) Target() int                    { return g.target }
func (g SWAP) InvolvedQubits() InvolvedQubits { return QubitSet(g.control, g.target) }
func (g SWAP) IsParametrized() bool           { return false }

func (g SWAP) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return g, nil
}

func (g SWAP) RemapQubits(mapping map[int]int) (Operation, error) {
	c, t, err := remapPair(g.control, g.target, mapping)
	if err != nil {
		return nil, err
	}
	return NewSWAP(c, t), nil
}

func (g SWAP) UnitaryMatrix() (*mat.CDense, error) {
	return mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	}), nil
}

func (g SWAP) KAKDecomposition() KAKDecomposition {
	return KAKDecomposition{
		GlobalPhase: calculator.New(-math.Pi / 4),
		KVector: [3]calculator.CalculatorFloat{
			calculator.New(math.Pi / 4), calculator.New(math.Pi / 4), calculator.New(math.Pi / 4),
		},
	}
}

func (g SWAP) String() string {
	return fmt.Sprintf("SWAP { control: %d, target: %d }", g.control, g.target)
}

// ISwap exchanges the states of the two qubits and applies a phase i to the
// |01> and |10> states.
type ISwap struct {
	control int
	target  int
}

// NewISwap returns the ISwap gate.
func NewISwap(control, target int) ISwap {
	return ISwap{control: control, target: target}
}

var tagsISwap = []string{"Operation", "GateOperation", "TwoQubitGateOperation", "ISwap"}

func (g ISwap) Tags() []string                 { return tagsISwap }
func (g ISwap) HQSLang() string                { return "ISwap" }
func (g ISwap) Control() int                   { return g.control }
func (g ISwap) Target() int                    { return g.target }
func (g ISwap) InvolvedQubits() InvolvedQubits { return QubitSet(g.control, g.target) }
func (g ISwap) IsParametrized() bool           { return false }

func (g ISwap) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return g, nil
}

func (g ISwap) RemapQubits(mapping map[int]int) (Operation, error) {
	c, t, err := remapPair(g.control, g.target, mapping)
	if err != nil {
		return nil, err
	}
	return NewISwap(c, t), nil
}

func (g ISwap) UnitaryMatrix() (*mat.CDense, error) {
	return mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, 0, 1i, 0,
		0, 1i, 0, 0,
		0, 0, 0, 1,
	}), nil
}

func (g ISwap) KAKDecomposition() KAKDecomposition {
	return KAKDecomposition{
		GlobalPhase: calculator.New(0),
		KVector: [3]calculator.CalculatorFloat{
			calculator.New(math.Pi / 4), calculator.New(math.Pi / 4), calculator.New(0),
		},
	}
}

func (g ISwap) String() string {
	return fmt.Sprintf("ISwap { control: %d, target: %d }", g.control, g.target)
}

// FSwap exchanges the states of the two qubits with the sign convention of
// fermionic degrees of freedom, applying -1 to the |11> state.
type FSwap struct {
	control int
	target  int
}

// NewFSwap returns the fermionic SWAP gate.
func NewFSwap(control, target int) FSwap {
	return FSwap{control: control, target: target}
}

var tagsFSwap = []string{"Operation", "GateOperation", "TwoQubitGateOperation", "FSwap"}

func (g FSwap) Tags() []string                 { return tagsFSwap }
func (g FSwap) HQSLang() string                { return "FSwap" }
func (g FSwap) Control() int                   { return g.control }
func (g FSwap) Target() int                    { return g.target }
func (g FSwap) InvolvedQubits() InvolvedQubits { return QubitSet(g.control, g.target) }
func (g FSwap) IsParametrized() bool           { return false }

func (g FSwap) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return g, nil
}

func (g FSwap) RemapQubits(mapping map[int]int) (Operation, error) {
	c, t, err := remapPair(g.control, g.target, mapping)
	if err != nil {
		return nil, err
	}
	return NewFSwap(c, t), nil
}

func (g FSwap) UnitaryMatrix() (*mat.CDense, error) {
	return mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, -1,
	}), nil
}

func (g FSwap) KAKDecomposition() KAKDecomposition {
	return KAKDecomposition{
		GlobalPhase: calculator.New(-math.Pi / 2),
		KVector: [3]calculator.CalculatorFloat{
			calculator.New(math.Pi / 4), calculator.New(math.Pi / 4), calculator.New(0),
		},
		CircuitBefore: circuitOf(
			NewRotateZ(g.control, calculator.New(-math.Pi/2)),
			NewRotateZ(g.target, calculator.New(-math.Pi/2)),
		),
	}
}

func (g FSwap) String() string {
	return fmt.Sprintf("FSwap { control: %d, target: %d }", g.control, g.target)
}

// SqrtISwap is the square root of the ISwap gate.
type SqrtISwap struct {
	control int
	target  int
}

// NewSqrtISwap returns the square root of ISwap.
func NewSqrtISwap(control, target int) SqrtISwap {
	return SqrtISwap{control: control, target: target}
}

var tagsSqrtISwap = []string{"Operation", "GateOperation", "TwoQubitGateOperation", "SqrtISwap"}

func (g SqrtISwap) Tags() []string                 { return tagsSqrtISwap }
func (g SqrtISwap) HQSLang() string                { return "SqrtISwap" }
func (g SqrtISwap) Control() int                   { return g.control }
func (g SqrtISwap) Target() int                    { return g.target }
func (g SqrtISwap) InvolvedQubits() InvolvedQubits { return QubitSet(g.control, g.target) }
func (g SqrtISwap) IsParametrized() bool           { return false }

func (g SqrtISwap) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return g, nil
}

func (g SqrtISwap) RemapQubits(mapping map[int]int) (Operation, error) {
	c, t, err := remapPair(g.control, g.target, mapping)
	if err != nil {
		return nil, err
	}
	return NewSqrtISwap(c, t), nil
}

func (g SqrtISwap) UnitaryMatrix() (*mat.CDense, error) {
	f := 1.0 / math.Sqrt2
	return mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, complex(f, 0), complex(0, f), 0,
		0, complex(0, f), complex(f, 0), 0,
		0, 0, 0, 1,
	}), nil
}

func (g SqrtISwap) KAKDecomposition() KAKDecomposition {
	return KAKDecomposition{
		GlobalPhase: calculator.New(0),
		KVector: [3]calculator.CalculatorFloat{
			calculator.New(math.Pi / 8), calculator.New(math.Pi / 8), calculator.New(0),
		},
	}
}

func (g SqrtISwap) String() string {
	return fmt.Sprintf("SqrtISwap { control: %d, target: %d }", g.control, g.target)
}

// InvSqrtISwap is the inverse square root of the ISwap gate.
type InvSqrtISwap struct {
	control int
	target  int
}

// NewInvSqrtISwap returns the inverse square root of ISwap.
func NewInvSqrtISwap(control, target int) InvSqrtISwap {
	return InvSqrtISwap{control: control, target: target}
}

var tagsInvSqrtISwap = []string{"Operation", "GateOperation", "TwoQubitGateOperation", "InvSqrtISwap"}

func (g InvSqrtISwap) Tags() []string                 { return tagsInvSqrtISwap }
func (g InvSqrtISwap) HQSLang() string                { return "InvSqrtISwap" }
func (g InvSqrtISwap) Control() int                   { return g.control }
func (g InvSqrtISwap) Target() int                    { return g.target }
func (g InvSqrtISwap) InvolvedQubits() InvolvedQubits { return QubitSet(g.control, g.target) }
func (g InvSqrtISwap) IsParametrized() bool           { return false }

func (g InvSqrtISwap) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return g, nil
}

func (g InvSqrtISwap) RemapQubits(mapping map[int]int) (Operation, error) {
	c, t, err := remapPair(g.control, g.target, mapping)
	if err != nil {
		return nil, err
	}
	return NewInvSqrtISwap(c, t), nil
}

func (g InvSqrtISwap) UnitaryMatrix() (*mat.CDense, error) {
	f := 1.0 / math.Sqrt2
	return mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, complex(f, 0), complex(0, -f), 0,
		0, complex(0, -f), complex(f, 0), 0,
		0, 0, 0, 1,
	}), nil
}

func (g InvSqrtISwap) KAKDecomposition() KAKDecomposition {
	return KAKDecomposition{
		GlobalPhase: calculator.New(0),
		KVector: [3]calculator.CalculatorFloat{
			calculator.New(-math.Pi / 8), calculator.New(-math.Pi / 8), calculator.New(0),
		},
	}
}

func (g InvSqrtISwap) String() string {
	return fmt.Sprintf("InvSqrtISwap { control: %d, target: %d }", g.control, g.target)
}

// XY applies exp(i * (X_target X_control + Y_target Y_control) * theta / 2).
type XY struct {
	control int
	target  int
	theta   calculator.CalculatorFloat
}

// NewXY returns the XY interaction gate with angle theta.
func NewXY(control, target int, theta calculator.CalculatorFloat) XY {
	return XY{control: control, target: target, theta: theta}
}

var tagsXY = []string{"Operation", "GateOperation", "TwoQubitGateOperation", "Rotation", "XY"}

func (g XY) Tags() []string                    { return tagsXY }
func (g XY) HQSLang() string                   { return "XY" }
func (g XY) Control() int                      { return g.control }
func (g XY) Target() int                       { return g.target }
func (g XY) InvolvedQubits() InvolvedQubits    { return QubitSet(g.control, g.target) }
func (g XY) IsParametrized() bool              { return !g.theta.IsFloat() }
func (g XY) Theta() calculator.CalculatorFloat { return g.theta }

func (g XY) PowerCF(power calculator.CalculatorFloat) Operation {
	return NewXY(g.control, g.target, g.theta.Mul(power))
}

func (g XY) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	theta, err := g.theta.Substitute(calc)
	if err != nil {
		return nil, err
	}
	return NewXY(g.control, g.target, theta), nil
}

func (g XY) RemapQubits(mapping map[int]int) (Operation, error) {
	c, t, err := remapPair(g.control, g.target, mapping)
	if err != nil {
		return nil, err
	}
	return NewXY(c, t, g.theta), nil
}

func (g XY) UnitaryMatrix() (*mat.CDense, error) {
	theta, err := g.theta.Float()
	if err != nil {
		return nil, err
	}
	c := math.Cos(theta / 2)
	s := math.Sin(theta / 2)
	return mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, complex(c, 0), complex(0, s), 0,
		0, complex(0, s), complex(c, 0), 0,
		0, 0, 0, 1,
	}), nil
}

func (g XY) KAKDecomposition() KAKDecomposition {
	quarter := g.theta.Div(calculator.New(4))
	return KAKDecomposition{
		GlobalPhase: calculator.New(0),
		KVector:     [3]calculator.CalculatorFloat{quarter, quarter, calculator.New(0)},
	}
}

func (g XY) String() string {
	return fmt.Sprintf("XY { control: %d, target: %d, theta: %s }", g.control, g.target, g.theta)
}

// ControlledPhaseShift applies a phase exp(i*theta) to the |11> state.
type ControlledPhaseShift struct {
	control int
	target  int
	theta   calculator.CalculatorFloat
}

// NewControlledPhaseShift returns the controlled phase shift gate.
func NewControlledPhaseShift(control, target int, theta calculator.CalculatorFloat) ControlledPhaseShift {
	return ControlledPhaseShift{control: control, target: target, theta: theta}
}

var tagsControlledPhaseShift = []string{"Operation", "GateOperation", "TwoQubitGateOperation", "Rotation", "ControlledPhaseShift"}

func (g ControlledPhaseShift) Tags() []string                    { return tagsControlledPhaseShift }
func (g ControlledPhaseShift) HQSLang() string                   { return "ControlledPhaseShift" }
func (g ControlledPhaseShift) Control() int                      { return g.control }
func (g ControlledPhaseShift) Target() int                       { return g.target }
func (g ControlledPhaseShift) InvolvedQubits() InvolvedQubits    { return QubitSet(g.control, g.target) }
func (g ControlledPhaseShift) IsParametrized() bool              { return !g.theta.IsFloat() }
func (g ControlledPhaseShift) Theta() calculator.CalculatorFloat { return g.theta }

func (g ControlledPhaseShift) PowerCF(power calculator.CalculatorFloat) Operation {
	return NewControlledPhaseShift(g.control, g.target, g.theta.Mul(power))
}

func (g ControlledPhaseShift) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	theta, err := g.theta.Substitute(calc)
	if err != nil {
		return nil, err
	}
	return NewControlledPhaseShift(g.control, g.target, theta), nil
}

func (g ControlledPhaseShift) RemapQubits(mapping map[int]int) (Operation, error) {
	c, t, err := remapPair(g.control, g.target, mapping)
	if err != nil {
		return nil, err
	}
	return NewControlledPhaseShift(c, t, g.theta), nil
}

func (g ControlledPhaseShift) UnitaryMatrix() (*mat.CDense, error) {
	theta, err := g.theta.Float()
	if err != nil {
		return nil, err
	}
	return mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, complex(math.Cos(theta), math.Sin(theta)),
	}), nil
}

func (g ControlledPhaseShift) KAKDecomposition() KAKDecomposition {
	half := g.theta.Div(calculator.New(2))
	quarter := g.theta.Div(calculator.New(4))
	return KAKDecomposition{
		GlobalPhase: quarter,
		KVector:     [3]calculator.CalculatorFloat{calculator.New(0), calculator.New(0), quarter},
		CircuitBefore: circuitOf(
			NewRotateZ(g.control, half),
			NewRotateZ(g.target, half),
		),
	}
}

func (g ControlledPhaseShift) String() string {
	return fmt.Sprintf("ControlledPhaseShift { control: %d, target: %d, theta: %s }", g.control, g.target, g.theta)
}

// ControlledPauliY applies PauliY to the target when the control is |1>.
type ControlledPauliY struct {
	control int
	target  int
}

// NewControlledPauliY returns the controlled-Y gate.
func NewControlledPauliY(control, target int) ControlledPauliY {
	return ControlledPauliY{control: control, target: target}
}

var tagsControlledPauliY = []string{"Operation", "GateOperation", "TwoQubitGateOperation", "ControlledPauliY"}

func (g ControlledPauliY) Tags() []string                 { return tagsControlledPauliY }
func (g ControlledPauliY) HQSLang() string                { return "ControlledPauliY" }
func (g ControlledPauliY) Control() int                   { return g.control }
func (g ControlledPauliY) Target() int                    { return g.target }
func (g ControlledPauliY) InvolvedQubits() InvolvedQubits { return QubitSet(g.control, g.target) }
func (g ControlledPauliY) IsParametrized() bool           { return false }

func (g ControlledPauliY) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return g, nil
}

func (g ControlledPauliY) RemapQubits(mapping map[int]int) (Operation, error) {
	c, t, err := remapPair(g.control, g.target, mapping)
	if err != nil {
		return nil, err
	}
	return NewControlledPauliY(c, t), nil
}

func (g ControlledPauliY) UnitaryMatrix() (*mat.CDense, error) {
	return mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, -1i,
		0, 0, 1i, 0,
	}), nil
}

func (g ControlledPauliY) KAKDecomposition() KAKDecomposition {
	return KAKDecomposition{
		GlobalPhase: calculator.New(math.Pi / 4),
		KVector: [3]calculator.CalculatorFloat{
			calculator.New(0), calculator.New(0), calculator.New(math.Pi / 4),
		},
		CircuitBefore: circuitOf(
			NewRotateZ(g.control, calculator.New(math.Pi/2)),
			NewRotateY(g.target, calculator.New(math.Pi/2)),
			NewRotateX(g.target, calculator.New(math.Pi/2)),
		),
		CircuitAfter: circuitOf(
			NewRotateX(g.target, calculator.New(-math.Pi/2)),
		),
	}
}

func (g ControlledPauliY) String() string {
	return fmt.Sprintf("ControlledPauliY { control: %d, target: %d }", g.control, g.target)
}

// ControlledPauliZ applies PauliZ to the target when the control is |1>.
type ControlledPauliZ struct {
	control int
	target  int
}

// NewControlledPauliZ returns the controlled-Z gate.
func NewControlledPauliZ(control, target int) ControlledPauliZ {
	return ControlledPauliZ{control: control, target: target}
}

var tagsControlledPauliZ = []string{"Operation", "GateOperation", "TwoQubitGateOperation", "ControlledPauliZ"}

func (g ControlledPauliZ) Tags() []string                 { return tagsControlledPauliZ }
func (g ControlledPauliZ) HQSLang() string                { return "ControlledPauliZ" }
func (g ControlledPauliZ) Control() int                   { return g.control }
func (g ControlledPauliZ) Target() int                    { return g.target }
func (g ControlledPauliZ) InvolvedQubits() InvolvedQubits { return QubitSet(g.control, g.target) }
func (g ControlledPauliZ) IsParametrized() bool           { return false }

func (g ControlledPauliZ) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return g, nil
}

func (g ControlledPauliZ) RemapQubits(mapping map[int]int) (Operation, error) {
	c, t, err := remapPair(g.control, g.target, mapping)
	if err != nil {
		return nil, err
	}
	return NewControlledPauliZ(c, t), nil
}

func (g ControlledPauliZ) UnitaryMatrix() (*mat.CDense, error) {
	return mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, -1,
	}), nil
}

func (g ControlledPauliZ) KAKDecomposition() KAKDecomposition {
	return KAKDecomposition{
		GlobalPhase: calculator.New(math.Pi / 4),
		KVector: [3]calculator.CalculatorFloat{
			calculator.New(0), calculator.New(0), calculator.New(math.Pi / 4),
		},
		CircuitBefore: circuitOf(
			NewRotateZ(g.control, calculator.New(math.Pi/2)),
			NewRotateZ(g.target, calculator.New(math.Pi/2)),
		),
	}
}

func (g ControlledPauliZ) String() string {
	return fmt.Sprintf("ControlledPauliZ { control: %d, target: %d }", g.control, g.target)
}

// MolmerSorensenXX applies the fixed-phase entangling unitary
// exp(-i X_control X_target * pi/4).
type MolmerSorensenXX struct {
	control int
	target  int
}

// NewMolmerSorensenXX returns the fixed-phase Molmer-Sorensen XX gate.
func NewMolmerSorensenXX(control, target int) MolmerSorensenXX {
	return MolmerSorensenXX{control: control, target: target}
}

var tagsMolmerSorensenXX = []string{"Operation", "GateOperation", "TwoQubitGateOperation", "MolmerSorensenXX"}

func (g MolmerSorensenXX) Tags() []string                 { return tagsMolmerSorensenXX }
func (g MolmerSorensenXX) HQSLang() string                { return "MolmerSorensenXX" }
func (g MolmerSorensenXX) Control() int                   { return g.control }
func (g MolmerSorensenXX) Target() int                    { return g.target }
func (g MolmerSorensenXX) InvolvedQubits() InvolvedQubits { return QubitSet(g.control, g.target) }
func (g MolmerSorensenXX) IsParametrized() bool           { return false }

func (g MolmerSorensenXX) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return g, nil
}

func (g MolmerSorensenXX) RemapQubits(mapping map[int]int) (Operation, error) {
	c, t, err := remapPair(g.control, g.target, mapping)
	if err != nil {
		return nil, err
	}
	return NewMolmerSorensenXX(c, t), nil
}

func (g MolmerSorensenXX) UnitaryMatrix() (*mat.CDense, error) {
	f := 1.0 / math.Sqrt2
	return mat.NewCDense(4, 4, []complex128{
		complex(f, 0), 0, 0, complex(0, -f),
		0, complex(f, 0), complex(0, -f), 0,
		0, complex(0, -f), complex(f, 0), 0,
		complex(0, -f), 0, 0, complex(f, 0),
	}), nil
}

func (g MolmerSorensenXX) KAKDecomposition() KAKDecomposition {
	return KAKDecomposition{
		GlobalPhase: calculator.New(0),
		KVector: [3]calculator.CalculatorFloat{
			calculator.New(-math.Pi / 4), calculator.New(0), calculator.New(0),
		},
	}
}

func (g MolmerSorensenXX) String() string {
	return fmt.Sprintf("MolmerSorensenXX { control: %d, target: %d }", g.control, g.target)
}

// VariableMSXX applies the variable-angle Molmer-Sorensen unitary
// exp(-i X_control X_target * theta/2).
type VariableMSXX struct {
	control int
	target  int
	theta   calculator.CalculatorFloat
}

// NewVariableMSXX returns the variable-angle Molmer-Sorensen XX gate.
func NewVariableMSXX(control, target int, theta calculator.CalculatorFloat) VariableMSXX {
	return VariableMSXX{control: control, target: target, theta: theta}
}

var tagsVariableMSXX = []string{"Operation", "GateOperation", "TwoQubitGateOperation", "Rotation", "VariableMSXX"}

func (g VariableMSXX) Tags() []string                    { return tagsVariableMSXX }
func (g VariableMSXX) HQSLang() string                   { return "VariableMSXX" }
func (g VariableMSXX) Control() int                      { return g.control }
func (g VariableMSXX) Target() int                       { return g.target }
func (g VariableMSXX) InvolvedQubits() InvolvedQubits    { return QubitSet(g.control, g.target) }
func (g VariableMSXX) IsParametrized() bool              { return !g.theta.IsFloat() }
func (g VariableMSXX) Theta() calculator.CalculatorFloat { return g.theta }

func (g VariableMSXX) PowerCF(power calculator.CalculatorFloat) Operation {
	return NewVariableMSXX(g.control, g.target, g.theta.Mul(power))
}

func (g VariableMSXX) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	theta, err := g.theta.Substitute(calc)
	if err != nil {
		return nil, err
	}
	return NewVariableMSXX(g.control, g.target, theta), nil
}

func (g VariableMSXX) RemapQubits(mapping map[int]int) (Operation, error) {
	c, t, err := remapPair(g.control, g.target, mapping)
	if err != nil {
		return nil, err
	}
	return NewVariableMSXX(c, t, g.theta), nil
}

func (g VariableMSXX) UnitaryMatrix() (*mat.CDense, error) {
	theta, err := g.theta.Float()
	if err != nil {
		return nil, err
	}
	c := math.Cos(theta / 2)
	s := math.Sin(theta / 2)
	return mat.NewCDense(4, 4, []complex128{
		complex(c, 0), 0, 0, complex(0, -s),
		0, complex(c, 0), complex(0, -s), 0,
		0, complex(0, -s), complex(c, 0), 0,
		complex(0, -s), 0, 0, complex(c, 0),
	}), nil
}

func (g VariableMSXX) KAKDecomposition() KAKDecomposition {
	return KAKDecomposition{
		GlobalPhase: calculator.New(0),
		KVector: [3]calculator.CalculatorFloat{
			g.theta.Div(calculator.New(-2)), calculator.New(0), calculator.New(0),
		},
	}
}

func (g VariableMSXX) String() string {
	return fmt.Sprintf("VariableMSXX { control: %d, target: %d, theta: %s }", g.control, g.target, g.theta)
}

// GivensRotation is the Givens rotation interaction in big endian notation:
// exp(-i * theta * [X_c Y_t - Y_c X_t]) * exp(-i * phi * Z_t/2).
type GivensRotation struct {
	control int
	target  int
	theta   calculator.CalculatorFloat
	phi     calculator.CalculatorFloat
}

// NewGivensRotation returns the big endian Givens rotation gate.
func NewGivensRotation(control, target int, theta, phi calculator.CalculatorFloat) GivensRotation {
	return GivensRotation{control: control, target: target, theta: theta, phi: phi}
}

var tagsGivensRotation = []string{"Operation", "GateOperation", "TwoQubitGateOperation", "Rotation", "GivensRotation"}

func (g GivensRotation) Tags() []string                    { return tagsGivensRotation }
func (g GivensRotation) HQSLang() string                   { return "GivensRotation" }
func (g GivensRotation) Control() int                      { return g.control }
func (g GivensRotation) Target() int                       { return g.target }
func (g GivensRotation) InvolvedQubits() InvolvedQubits    { return QubitSet(g.control, g.target) }
func (g GivensRotation) Theta() calculator.CalculatorFloat { return g.theta }
func (g GivensRotation) Phi() calculator.CalculatorFloat   { return g.phi }

func (g GivensRotation) IsParametrized() bool {
	return !(g.theta.IsFloat() && g.phi.IsFloat())
}

func (g GivensRotation) PowerCF(power calculator.CalculatorFloat) Operation {
	return NewGivensRotation(g.control, g.target, g.theta.Mul(power), g.phi)
}

func (g GivensRotation) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	theta, err := g.theta.Substitute(calc)
	if err != nil {
		return nil, err
	}
	phi, err := g.phi.Substitute(calc)
	if err != nil {
		return nil, err
	}
	return NewGivensRotation(g.control, g.target, theta, phi), nil
}

func (g GivensRotation) RemapQubits(mapping map[int]int) (Operation, error) {
	c, t, err := remapPair(g.control, g.target, mapping)
	if err != nil {
		return nil, err
	}
	return NewGivensRotation(c, t, g.theta, g.phi), nil
}

func (g GivensRotation) UnitaryMatrix() (*mat.CDense, error) {
	theta, err := g.theta.Float()
	if err != nil {
		return nil, err
	}
	phi, err := g.phi.Float()
	if err != nil {
		return nil, err
	}
	ct, st := math.Cos(theta), math.Sin(theta)
	cp, sp := math.Cos(phi), math.Sin(phi)
	return mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, complex(ct*cp, ct*sp), complex(st, 0), 0,
		0, complex(-st*cp, -st*sp), complex(ct, 0), 0,
		0, 0, 0, complex(cp, sp),
	}), nil
}

func (g GivensRotation) KAKDecomposition() KAKDecomposition {
	half := g.theta.Div(calculator.New(2))
	return KAKDecomposition{
		GlobalPhase: g.phi.Div(calculator.New(2)),
		KVector:     [3]calculator.CalculatorFloat{half, half, calculator.New(0)},
		CircuitBefore: circuitOf(
			NewRotateZ(g.target, g.phi.Add(calculator.New(math.Pi/2))),
		),
		CircuitAfter: circuitOf(
			NewRotateZ(g.target, calculator.New(-math.Pi/2)),
		),
	}
}

func (g GivensRotation) String() string {
	return fmt.Sprintf("GivensRotation { control: %d, target: %d, theta: %s, phi: %s }",
		g.control, g.target, g.theta, g.phi)
}

// GivensRotationLittleEndian is the Givens rotation interaction in little
// endian notation: exp(-i * theta * [X_c Y_t - Y_c X_t]) * exp(-i * phi * Z_c/2).
type GivensRotationLittleEndian struct {
	control int
	target  int
	theta   calculator.CalculatorFloat
	phi     calculator.CalculatorFloat
}

// NewGivensRotationLittleEndian returns the little endian Givens rotation
// gate.
func NewGivensRotationLittleEndian(control, target int, theta, phi calculator.CalculatorFloat) GivensRotationLittleEndian {
	return GivensRotationLittleEndian{control: control, target: target, theta: theta, phi: phi}
}

var tagsGivensRotationLittleEndian = []string{"Operation", "GateOperation", "TwoQubitGateOperation", "Rotation", "GivensRotationLittleEndian"}

func (g GivensRotationLittleEndian) Tags() []string  { return tagsGivensRotationLittleEndian }
func (g GivensRotationLittleEndian) HQSLang() string { return "GivensRotationLittleEndian" }
func (g GivensRotationLittleEndian) Control() int    { return g.control }
func (g GivensRotationLittleEndian) Target() int     { return g.target }
func (g GivensRotationLittleEndian) InvolvedQubits() InvolvedQubits {
	return QubitSet(g.control, g.target)
}
func (g GivensRotationLittleEndian) Theta() calculator.CalculatorFloat { return g.theta }
func (g GivensRotationLittleEndian) Phi() calculator.CalculatorFloat   { return g.phi }

func (g GivensRotationLittleEndian) IsParametrized() bool {
	return !(g.theta.IsFloat() && g.phi.IsFloat())
}

func (g GivensRotationLittleEndian) PowerCF(power calculator.CalculatorFloat) Operation {
	return NewGivensRotationLittleEndian(g.control, g.target, g.theta.Mul(power), g.phi)
}

func (g GivensRotationLittleEndian) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	theta, err := g.theta.Substitute(calc)
	if err != nil {
		return nil, err
	}
	phi, err := g.phi.Substitute(calc)
	if err != nil {
		return nil, err
	}
	return NewGivensRotationLittleEndian(g.control, g.target, theta, phi), nil
}

func (g GivensRotationLittleEndian) RemapQubits(mapping map[int]int) (Operation, error) {
	c, t, err := remapPair(g.control, g.target, mapping)
	if err != nil {
		return nil, err
	}
	return NewGivensRotationLittleEndian(c, t, g.theta, g.phi), nil
}

func (g GivensRotationLittleEndian) UnitaryMatrix() (*mat.CDense, error) {
	theta, err := g.theta.Float()
	if err != nil {
		return nil, err
	}
	phi, err := g.phi.Float()
	if err != nil {
		return nil, err
	}
	ct, st := math.Cos(theta), math.Sin(theta)
	cp, sp := math.Cos(phi), math.Sin(phi)
	return mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, complex(ct, 0), complex(st, 0), 0,
		0, complex(-st*cp, -st*sp), complex(ct*cp, ct*sp), 0,
		0, 0, 0, complex(cp, sp),
	}), nil
}

func (g GivensRotationLittleEndian) KAKDecomposition() KAKDecomposition {
	half := g.theta.Div(calculator.New(2))
	return KAKDecomposition{
		GlobalPhase: g.phi.Div(calculator.New(2)),
		KVector:     [3]calculator.CalculatorFloat{half, half, calculator.New(0)},
		CircuitBefore: circuitOf(
			NewRotateZ(g.control, calculator.New(-math.Pi/2)),
		),
		CircuitAfter: circuitOf(
			NewRotateZ(g.control, g.phi.Add(calculator.New(math.Pi/2))),
		),
	}
}

func (g GivensRotationLittleEndian) String() string {
	return fmt.Sprintf("GivensRotationLittleEndian { control: %d, target: %d, theta: %s, phi: %s }",
		g.control, g.target, g.theta, g.phi)
}

// Qsim swaps the two qubits while evolving under the spin interaction
// exp(-i (x X_c X_t + y Y_c Y_t + z Z_c Z_t)).
type Qsim struct {
	control int
	target  int
	x       calculator.CalculatorFloat
	y       calculator.CalculatorFloat
	z       calculator.CalculatorFloat
}

// NewQsim returns the qubit simulation gate.
func NewQsim(control, target int, x, y, z calculator.CalculatorFloat) Qsim {
	return Qsim{control: control, target: target, x: x, y: y, z: z}
}

var tagsQsim = []string{"Operation", "GateOperation", "TwoQubitGateOperation", "Qsim"}

func (g Qsim) Tags() []string                 { return tagsQsim }
func (g Qsim) HQSLang() string                { return "Qsim" }
func (g Qsim) Control() int                   { return g.control }
func (g Qsim) Target() int                    { return g.target }
func (g Qsim) InvolvedQubits() InvolvedQubits { return QubitSet(g.control, g.target) }

// X returns the prefactor of the XX interaction.
func (g Qsim) X() calculator.CalculatorFloat { return g.x }

// Y returns the prefactor of the YY interaction.
func (g Qsim) Y() calculator.CalculatorFloat { return g.y }

// Z returns the prefactor of the ZZ interaction.
func (g Qsim) Z() calculator.CalculatorFloat { return g.z }

func (g Qsim) IsParametrized() bool {
	return !(g.x.IsFloat() && g.y.IsFloat() && g.z.IsFloat())
}

func (g Qsim) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	x, err := g.x.Substitute(calc)
	if err != nil {
		return nil, err
	}
	y, err := g.y.Substitute(calc)
	if err != nil {
		return nil, err
	}
	z, err := g.z.Substitute(calc)
	if err != nil {
		return nil, err
	}
	return NewQsim(g.control, g.target, x, y, z), nil
}

func (g Qsim) RemapQubits(mapping map[int]int) (Operation, error) {
	c, t, err := remapPair(g.control, g.target, mapping)
	if err != nil {
		return nil, err
	}
	return NewQsim(c, t, g.x, g.y, g.z), nil
}

func (g Qsim) UnitaryMatrix() (*mat.CDense, error) {
	x, err := g.x.Float()
	if err != nil {
		return nil, err
	}
	y, err := g.y.Float()
	if err != nil {
		return nil, err
	}
	z, err := g.z.Float()
	if err != nil {
		return nil, err
	}
	cm, sm := math.Cos(x-y), math.Sin(x-y)
	cp, sp := math.Cos(x+y), math.Sin(x+y)
	cz, sz := math.Cos(z), math.Sin(z)
	return mat.NewCDense(4, 4, []complex128{
		complex(cm*cz, -cm*sz), 0, 0, complex(-sm*sz, -sm*cz),
		0, complex(sp*sz, -sp*cz), complex(cp*cz, cp*sz), 0,
		0, complex(cp*cz, cp*sz), complex(sp*sz, -sp*cz), 0,
		complex(-sm*sz, -sm*cz), 0, 0, complex(cm*cz, -cm*sz),
	}), nil
}

func (g Qsim) KAKDecomposition() KAKDecomposition {
	quarterPi := calculator.New(math.Pi / 4)
	return KAKDecomposition{
		GlobalPhase: calculator.New(-math.Pi / 4),
		KVector: [3]calculator.CalculatorFloat{
			g.x.Neg().Add(quarterPi),
			g.y.Neg().Add(quarterPi),
			g.z.Neg().Add(quarterPi),
		},
	}
}

func (g Qsim) String() string {
	return fmt.Sprintf("Qsim { control: %d, target: %d, x: %s, y: %s, z: %s }",
		g.control, g.target, g.x, g.y, g.z)
}

// Fsim is the fermionic qubit simulation gate with hopping strength t,
// interaction strength u and Bogoliubov interaction delta. It is valid as a
// two-qubit gate only for adjacent qubits.
type Fsim struct {
	control int
	target  int
	t       calculator.CalculatorFloat
	u       calculator.CalculatorFloat
	delta   calculator.CalculatorFloat
}

// NewFsim returns the fermionic simulation gate.
func NewFsim(control, target int, t, u, delta calculator.CalculatorFloat) Fsim {
	return Fsim{control: control, target: target, t: t, u: u, delta: delta}
}

var tagsFsim = []string{"Operation", "GateOperation", "TwoQubitGateOperation", "Fsim"}

func (g Fsim) Tags() []string                 { return tagsFsim }
func (g Fsim) HQSLang() string                { return "Fsim" }
func (g Fsim) Control() int                   { return g.control }
func (g Fsim) Target() int                    { return g.target }
func (g Fsim) InvolvedQubits() InvolvedQubits { return QubitSet(g.control, g.target) }

// T returns the hopping strength.
func (g Fsim) T() calculator.CalculatorFloat { return g.t }

// U returns the interaction strength.
func (g Fsim) U() calculator.CalculatorFloat { return g.u }

// Delta returns the Bogoliubov interaction strength.
func (g Fsim) Delta() calculator.CalculatorFloat { return g.delta }

func (g Fsim) IsParametrized() bool {
	return !(g.t.IsFloat() && g.u.IsFloat() && g.delta.IsFloat())
}

func (g Fsim) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	t, err := g.t.Substitute(calc)
	if err != nil {
		return nil, err
	}
	u, err := g.u.Substitute(calc)
	if err != nil {
		return nil, err
	}
	delta, err := g.delta.Substitute(calc)
	if err != nil {
		return nil, err
	}
	return NewFsim(g.control, g.target, t, u, delta), nil
}

func (g Fsim) RemapQubits(mapping map[int]int) (Operation, error) {
	c, t, err := remapPair(g.control, g.target, mapping)
	if err != nil {
		return nil, err
	}
	return NewFsim(c, t, g.t, g.u, g.delta), nil
}

func (g Fsim) UnitaryMatrix() (*mat.CDense, error) {
	t, err := g.t.Float()
	if err != nil {
		return nil, err
	}
	u, err := g.u.Float()
	if err != nil {
		return nil, err
	}
	d, err := g.delta.Float()
	if err != nil {
		return nil, err
	}
	return mat.NewCDense(4, 4, []complex128{
		complex(math.Cos(d), 0), 0, 0, complex(0, math.Sin(d)),
		0, complex(0, -math.Sin(t)), complex(math.Cos(t), 0), 0,
		0, complex(math.Cos(t), 0), complex(0, -math.Sin(t)), 0,
		complex(-math.Sin(d)*math.Sin(u), -math.Sin(d)*math.Cos(u)), 0, 0,
		complex(-math.Cos(d)*math.Cos(u), math.Cos(d)*math.Sin(u)),
	}), nil
}

func (g Fsim) KAKDecomposition() KAKDecomposition {
	quarterPi := calculator.New(math.Pi / 4)
	halfT := g.t.Div(calculator.New(-2))
	halfDelta := g.delta.Div(calculator.New(2))
	local := g.u.Div(calculator.New(-2)).Sub(calculator.New(math.Pi / 2))
	return KAKDecomposition{
		GlobalPhase: g.u.Div(calculator.New(-4)).Sub(calculator.New(math.Pi / 2)),
		KVector: [3]calculator.CalculatorFloat{
			halfT.Add(halfDelta).Add(quarterPi),
			halfT.Sub(halfDelta).Add(quarterPi),
			g.u.Div(calculator.New(-4)),
		},
		CircuitAfter: circuitOf(
			NewRotateZ(g.control, local),
			NewRotateZ(g.target, local),
		),
	}
}

func (g Fsim) String() string {
	return fmt.Sprintf("Fsim { control: %d, target: %d, t: %s, u: %s, delta: %s }",
		g.control, g.target, g.t, g.u, g.delta)
}

// SpinInteraction applies the generalized anisotropic XYZ Heisenberg
// interaction exp(-i (x X_t X_c + y Y_t Y_c + z Z_t Z_c)).
type SpinInteraction struct {
	control int
	target  int
	x       calculator.CalculatorFloat
	y       calculator.CalculatorFloat
	z       calculator.CalculatorFloat
}

// NewSpinInteraction returns the Heisenberg spin interaction gate.
func NewSpinInteraction(control, target int, x, y, z calculator.CalculatorFloat) SpinInteraction {
	return SpinInteraction{control: control, target: target, x: x, y: y, z: z}
}

var tagsSpinInteraction = []string{"Operation", "GateOperation", "TwoQubitGateOperation", "SpinInteraction"}

func (g SpinInteraction) Tags() []string                 { return tagsSpinInteraction }
func (g SpinInteraction) HQSLang() string                { return "SpinInteraction" }
func (g SpinInteraction) Control() int                   { return g.control }
func (g SpinInteraction) Target() int                    { return g.target }
func (g SpinInteraction) InvolvedQubits() InvolvedQubits { return QubitSet(g.control, g.target) }

// X returns the prefactor of the XX interaction.
func (g SpinInteraction) X() calculator.CalculatorFloat { return g.x }

// Y returns the prefactor of the YY interaction.
func (g SpinInteraction) Y() calculator.CalculatorFloat { return g.y }

// Z returns the prefactor of the ZZ interaction.
func (g SpinInteraction) Z() calculator.CalculatorFloat { return g.z }

func (g SpinInteraction) IsParametrized() bool {
	return !(g.x.IsFloat() && g.y.IsFloat() && g.z.IsFloat())
}

func (g SpinInteraction) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	x, err := g.x.Substitute(calc)
	if err != nil {
		return nil, err
	}
	y, err := g.y.Substitute(calc)
	if err != nil {
		return nil, err
	}
	z, err := g.z.Substitute(calc)
	if err != nil {
		return nil, err
	}
	return NewSpinInteraction(g.control, g.target, x, y, z), nil
}

func (g SpinInteraction) RemapQubits(mapping map[int]int) (Operation, error) {
	c, t, err := remapPair(g.control, g.target, mapping)
	if err != nil {
		return nil, err
	}
	return NewSpinInteraction(c, t, g.x, g.y, g.z), nil
}

func (g SpinInteraction) UnitaryMatrix() (*mat.CDense, error) {
	x, err := g.x.Float()
	if err != nil {
		return nil, err
	}
	y, err := g.y.Float()
	if err != nil {
		return nil, err
	}
	z, err := g.z.Float()
	if err != nil {
		return nil, err
	}
	cm, sm := math.Cos(x-y), math.Sin(x-y)
	cp, sp := math.Cos(x+y), math.Sin(x+y)
	cz, sz := math.Cos(z), math.Sin(z)
	return mat.NewCDense(4, 4, []complex128{
		complex(cm*cz, -cm*sz), 0, 0, complex(-sm*sz, -sm*cz),
		0, complex(cp*cz, cp*sz), complex(sp*sz, -sp*cz), 0,
		0, complex(sp*sz, -sp*cz), complex(cp*cz, cp*sz), 0,
		complex(-sm*sz, -sm*cz), 0, 0, complex(cm*cz, -cm*sz),
	}), nil
}

func (g SpinInteraction) KAKDecomposition() KAKDecomposition {
	return KAKDecomposition{
		GlobalPhase: calculator.New(0),
		KVector: [3]calculator.CalculatorFloat{
			g.x.Neg(), g.y.Neg(), g.z.Neg(),
		},
	}
}

func (g SpinInteraction) String() string {
	return fmt.Sprintf("SpinInteraction { control: %d, target: %d, x: %s, y: %s, z: %s }",
		g.control, g.target, g.x, g.y, g.z)
}

// Bogoliubov is the Bogoliubov-DeGennes interaction gate
// exp(-i * Re(delta) * [X_c X_t - Y_c Y_t]/2 + Im(delta) * [X_c Y_t + Y_c X_t]/2).
type Bogoliubov struct {
	control   int
	target    int
	deltaReal calculator.CalculatorFloat
	deltaImag calculator.CalculatorFloat
}

// NewBogoliubov returns the Bogoliubov-DeGennes gate with complex interaction
// strength deltaReal + i*deltaImag.
func NewBogoliubov(control, target int, deltaReal, deltaImag calculator.CalculatorFloat) Bogoliubov {
	return Bogoliubov{control: control, target: target, deltaReal: deltaReal, deltaImag: deltaImag}
}

var tagsBogoliubov = []string{"Operation", "GateOperation", "TwoQubitGateOperation", "Bogoliubov"}

func (g Bogoliubov) Tags() []string                 { return tagsBogoliubov }
func (g Bogoliubov) HQSLang() string                { return "Bogoliubov" }
func (g Bogoliubov) Control() int                   { return g.control }
func (g Bogoliubov) Target() int                    { return g.target }
func (g Bogoliubov) InvolvedQubits() InvolvedQubits { return QubitSet(g.control, g.target) }

// DeltaReal returns the real part of the interaction strength.
func (g Bogoliubov) DeltaReal() calculator.CalculatorFloat { return g.deltaReal }

// DeltaImag returns the imaginary part of the interaction strength.
func (g Bogoliubov) DeltaImag() calculator.CalculatorFloat { return g.deltaImag }

func (g Bogoliubov) IsParametrized() bool {
	return !(g.deltaReal.IsFloat() && g.deltaImag.IsFloat())
}

func (g Bogoliubov) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	dr, err := g.deltaReal.Substitute(calc)
	if err != nil {
		return nil, err
	}
	di, err := g.deltaImag.Substitute(calc)
	if err != nil {
		return nil, err
	}
	return NewBogoliubov(g.control, g.target, dr, di), nil
}

func (g Bogoliubov) RemapQubits(mapping map[int]int) (Operation, error) {
	c, t, err := remapPair(g.control, g.target, mapping)
	if err != nil {
		return nil, err
	}
	return NewBogoliubov(c, t, g.deltaReal, g.deltaImag), nil
}

func (g Bogoliubov) UnitaryMatrix() (*mat.CDense, error) {
	dr, err := g.deltaReal.Float()
	if err != nil {
		return nil, err
	}
	di, err := g.deltaImag.Float()
	if err != nil {
		return nil, err
	}
	da := math.Hypot(dr, di)
	dp := math.Atan2(di, dr)
	return mat.NewCDense(4, 4, []complex128{
		complex(math.Cos(da), 0), 0, 0, complex(-math.Sin(da)*math.Sin(dp), math.Sin(da)*math.Cos(dp)),
		0, 1, 0, 0,
		0, 0, 1, 0,
		complex(math.Sin(da)*math.Sin(dp), math.Sin(da)*math.Cos(dp)), 0, 0, complex(math.Cos(da), 0),
	}), nil
}

func (g Bogoliubov) KAKDecomposition() KAKDecomposition {
	norm := g.deltaReal.Mul(g.deltaReal).Add(g.deltaImag.Mul(g.deltaImag)).Sqrt()
	arg := g.deltaImag.Atan2(g.deltaReal)
	return KAKDecomposition{
		GlobalPhase: calculator.New(0),
		KVector: [3]calculator.CalculatorFloat{
			norm.Div(calculator.New(2)),
			norm.Div(calculator.New(-2)),
			calculator.New(0),
		},
		CircuitBefore: circuitOf(NewRotateZ(g.target, arg)),
		CircuitAfter:  circuitOf(NewRotateZ(g.target, arg.Neg())),
	}
}

func (g Bogoliubov) String() string {
	return fmt.Sprintf("Bogoliubov { control: %d, target: %d, delta_real: %s, delta_imag: %s }",
		g.control, g.target, g.deltaReal, g.deltaImag)
}

// PMInteraction is the transversal interaction gate
// exp(-i * t * [X_c X_t + Y_c Y_t]).
type PMInteraction struct {
	control int
	target  int
	t       calculator.CalculatorFloat
}

// NewPMInteraction returns the transversal interaction gate with strength t.
func NewPMInteraction(control, target int, t calculator.CalculatorFloat) PMInteraction {
	return PMInteraction{control: control, target: target, t: t}
}

var tagsPMInteraction = []string{"Operation", "GateOperation", "TwoQubitGateOperation", "PMInteraction"}

func (g PMInteraction) Tags() []string                 { return tagsPMInteraction }
func (g PMInteraction) HQSLang() string                { return "PMInteraction" }
func (g PMInteraction) Control() int                   { return g.control }
func (g PMInteraction) Target() int                    { return g.target }
func (g PMInteraction) InvolvedQubits() InvolvedQubits { return QubitSet(g.control, g.target) }
func (g PMInteraction) IsParametrized() bool           { return !g.t.IsFloat() }

// T returns the strength of the interaction.
func (g PMInteraction) T() calculator.CalculatorFloat { return g.t }

func (g PMInteraction) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	t, err := g.t.Substitute(calc)
	if err != nil {
		return nil, err
	}
	return NewPMInteraction(g.control, g.target, t), nil
}

func (g PMInteraction) RemapQubits(mapping map[int]int) (Operation, error) {
	c, t, err := remapPair(g.control, g.target, mapping)
	if err != nil {
		return nil, err
	}
	return NewPMInteraction(c, t, g.t), nil
}

func (g PMInteraction) UnitaryMatrix() (*mat.CDense, error) {
	t, err := g.t.Float()
	if err != nil {
		return nil, err
	}
	c := math.Cos(t)
	s := math.Sin(t)
	return mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, complex(c, 0), complex(0, -s), 0,
		0, complex(0, -s), complex(c, 0), 0,
		0, 0, 0, 1,
	}), nil
}

func (g PMInteraction) KAKDecomposition() KAKDecomposition {
	half := g.t.Div(calculator.New(-2))
	return KAKDecomposition{
		GlobalPhase: calculator.New(0),
		KVector:     [3]calculator.CalculatorFloat{half, half, calculator.New(0)},
	}
}

func (g PMInteraction) String() string {
	return fmt.Sprintf("PMInteraction { control: %d, target: %d, t: %s }", g.control, g.target, g.t)
}

// ComplexPMInteraction is the complex hopping gate
// exp(-i * [Re(t) * (X_c X_t + Y_c Y_t) - Im(t) * (X_c Y_t - Y_c X_t)]).
type ComplexPMInteraction struct {
	control int
	target  int
	tReal   calculator.CalculatorFloat
	tImag   calculator.CalculatorFloat
}

// NewComplexPMInteraction returns the complex hopping gate with strength
// tReal + i*tImag.
func NewComplexPMInteraction(control, target int, tReal, tImag calculator.CalculatorFloat) ComplexPMInteraction {
	return ComplexPMInteraction{control: control, target: target, tReal: tReal, tImag: tImag}
}

var tagsComplexPMInteraction = []string{"Operation", "GateOperation", "TwoQubitGateOperation", "ComplexPMInteraction"}

func (g ComplexPMInteraction) Tags() []string                 { return tagsComplexPMInteraction }
func (g ComplexPMInteraction) HQSLang() string                { return "ComplexPMInteraction" }
func (g ComplexPMInteraction) Control() int                   { return g.control }
func (g ComplexPMInteraction) Target() int                    { return g.target }
func (g ComplexPMInteraction) InvolvedQubits() InvolvedQubits { return QubitSet(g.control, g.target) }

// TReal returns the real part of the hopping strength.
func (g ComplexPMInteraction) TReal() calculator.CalculatorFloat { return g.tReal }

// TImag returns the imaginary part of the hopping strength.
func (g ComplexPMInteraction) TImag() calculator.CalculatorFloat { return g.tImag }

func (g ComplexPMInteraction) IsParametrized() bool {
	return !(g.tReal.IsFloat() && g.tImag.IsFloat())
}

func (g ComplexPMInteraction) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	tr, err := g.tReal.Substitute(calc)
	if err != nil {
		return nil, err
	}
	ti, err := g.tImag.Substitute(calc)
	if err != nil {
		return nil, err
	}
	return NewComplexPMInteraction(g.control, g.target, tr, ti), nil
}

func (g ComplexPMInteraction) RemapQubits(mapping map[int]int) (Operation, error) {
	c, t, err := remapPair(g.control, g.target, mapping)
	if err != nil {
		return nil, err
	}
	return NewComplexPMInteraction(c, t, g.tReal, g.tImag), nil
}

func (g ComplexPMInteraction) UnitaryMatrix() (*mat.CDense, error) {
	tr, err := g.tReal.Float()
	if err != nil {
		return nil, err
	}
	ti, err := g.tImag.Float()
	if err != nil {
		return nil, err
	}
	tn := math.Hypot(tr, ti)
	ta := math.Atan2(ti, tr)
	return mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, complex(math.Cos(tn), 0), complex(-math.Sin(tn)*math.Sin(ta), -math.Sin(tn)*math.Cos(ta)), 0,
		0, complex(math.Sin(tn)*math.Sin(ta), -math.Sin(tn)*math.Cos(ta)), complex(math.Cos(tn), 0), 0,
		0, 0, 0, 1,
	}), nil
}

func (g ComplexPMInteraction) KAKDecomposition() KAKDecomposition {
	norm := g.tReal.Mul(g.tReal).Add(g.tImag.Mul(g.tImag)).Sqrt()
	arg := g.tImag.Atan2(g.tReal)
	half := norm.Div(calculator.New(-2))
	return KAKDecomposition{
		GlobalPhase:   calculator.New(0),
		KVector:       [3]calculator.CalculatorFloat{half, half, calculator.New(0)},
		CircuitBefore: circuitOf(NewRotateZ(g.target, arg)),
		CircuitAfter:  circuitOf(NewRotateZ(g.target, arg.Neg())),
	}
}

func (g ComplexPMInteraction) String() string {
	return fmt.Sprintf("ComplexPMInteraction { control: %d, target: %d, t_real: %s, t_imag: %s }",
		g.control, g.target, g.tReal, g.tImag)
}

// PhaseShiftedControlledZ is the phase-shifted controlled-Z gate with single
// qubit phase phi on both qubits.
type PhaseShiftedControlledZ struct {
	control int
	target  int
	phi     calculator.CalculatorFloat
}

// NewPhaseShiftedControlledZ returns the phase-shifted controlled-Z gate.
func NewPhaseShiftedControlledZ(control, target int, phi calculator.CalculatorFloat) PhaseShiftedControlledZ {
	return PhaseShiftedControlledZ{control: control, target: target, phi: phi}
}

var tagsPhaseShiftedControlledZ = []string{"Operation", "GateOperation", "TwoQubitGateOperation", "PhaseShiftedControlledZ"}

func (g PhaseShiftedControlledZ) Tags() []string  { return tagsPhaseShiftedControlledZ }
func (g PhaseShiftedControlledZ) HQSLang() string { return "PhaseShiftedControlledZ" }
func (g PhaseShiftedControlledZ) Control() int    { return g.control }
func (g PhaseShiftedControlledZ) Target() int     { return g.target }
func (g PhaseShiftedControlledZ) InvolvedQubits() InvolvedQubits {
	return QubitSet(g.control, g.target)
}
func (g PhaseShiftedControlledZ) IsParametrized() bool { return !g.phi.IsFloat() }

// Phi returns the single qubit phase.
func (g PhaseShiftedControlledZ) Phi() calculator.CalculatorFloat { return g.phi }

func (g PhaseShiftedControlledZ) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	phi, err := g.phi.Substitute(calc)
	if err != nil {
		return nil, err
	}
	return NewPhaseShiftedControlledZ(g.control, g.target, phi), nil
}

func (g PhaseShiftedControlledZ) RemapQubits(mapping map[int]int) (Operation, error) {
	c, t, err := remapPair(g.control, g.target, mapping)
	if err != nil {
		return nil, err
	}
	return NewPhaseShiftedControlledZ(c, t, g.phi), nil
}

func (g PhaseShiftedControlledZ) UnitaryMatrix() (*mat.CDense, error) {
	phi, err := g.phi.Float()
	if err != nil {
		return nil, err
	}
	single := complex(math.Cos(phi), math.Sin(phi))
	double := complex(math.Cos(2*phi+math.Pi), math.Sin(2*phi+math.Pi))
	return mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, single, 0, 0,
		0, 0, single, 0,
		0, 0, 0, double,
	}), nil
}

func (g PhaseShiftedControlledZ) KAKDecomposition() KAKDecomposition {
	return KAKDecomposition{
		GlobalPhase: calculator.New(math.Pi / 4).Add(g.phi),
		KVector: [3]calculator.CalculatorFloat{
			calculator.New(0), calculator.New(0), calculator.New(math.Pi / 4),
		},
		CircuitBefore: circuitOf(
			NewRotateZ(g.control, calculator.New(math.Pi/2)),
			NewRotateZ(g.target, calculator.New(math.Pi/2)),
		),
		CircuitAfter: circuitOf(
			NewRotateZ(g.control, g.phi),
			NewRotateZ(g.target, g.phi),
		),
	}
}

func (g PhaseShiftedControlledZ) String() string {
	return fmt.Sprintf("PhaseShiftedControlledZ { control: %d, target: %d, phi: %s }",
		g.control, g.target, g.phi)
}

// PhaseShiftedControlledPhase is the phase-shifted controlled phase shift
// gate with controlled phase theta and single qubit phase phi.
type PhaseShiftedControlledPhase struct {
	control int
	target  int
	theta   calculator.CalculatorFloat
	phi     calculator.CalculatorFloat
}

// NewPhaseShiftedControlledPhase returns the phase-shifted controlled phase
// shift gate.
func NewPhaseShiftedControlledPhase(control, target int, theta, phi calculator.CalculatorFloat) PhaseShiftedControlledPhase {
	return PhaseShiftedControlledPhase{control: control, target: target, theta: theta, phi: phi}
}

var tagsPhaseShiftedControlledPhase = []string{"Operation", "GateOperation", "TwoQubitGateOperation", "PhaseShiftedControlledPhase"}

func (g PhaseShiftedControlledPhase) Tags() []string  { return tagsPhaseShiftedControlledPhase }
func (g PhaseShiftedControlledPhase) HQSLang() string { return "PhaseShiftedControlledPhase" }
func (g PhaseShiftedControlledPhase) Control() int    { return g.control }
func (g PhaseShiftedControlledPhase) Target() int     { return g.target }
func (g PhaseShiftedControlledPhase) InvolvedQubits() InvolvedQubits {
	return QubitSet(g.control, g.target)
}
func (g PhaseShiftedControlledPhase) Theta() calculator.CalculatorFloat { return g.theta }

// Phi returns the single qubit phase.
func (g PhaseShiftedControlledPhase) Phi() calculator.CalculatorFloat { return g.phi }

func (g PhaseShiftedControlledPhase) IsParametrized() bool {
	return !(g.theta.IsFloat() && g.phi.IsFloat())
}

func (g PhaseShiftedControlledPhase) PowerCF(power calculator.CalculatorFloat) Operation {
	return NewPhaseShiftedControlledPhase(g.control, g.target, g.theta.Mul(power), g.phi)
}

func (g PhaseShiftedControlledPhase) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	theta, err := g.theta.Substitute(calc)
	if err != nil {
		return nil, err
	}
	phi, err := g.phi.Substitute(calc)
	if err != nil {
		return nil, err
	}
	return NewPhaseShiftedControlledPhase(g.control, g.target, theta, phi), nil
}

func (g PhaseShiftedControlledPhase) RemapQubits(mapping map[int]int) (Operation, error) {
	c, t, err := remapPair(g.control, g.target, mapping)
	if err != nil {
		return nil, err
	}
	return NewPhaseShiftedControlledPhase(c, t, g.theta, g.phi), nil
}

func (g PhaseShiftedControlledPhase) UnitaryMatrix() (*mat.CDense, error) {
	theta, err := g.theta.Float()
	if err != nil {
		return nil, err
	}
	phi, err := g.phi.Float()
	if err != nil {
		return nil, err
	}
	single := complex(math.Cos(phi), math.Sin(phi))
	double := complex(math.Cos(2*phi+theta), math.Sin(2*phi+theta))
	return mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, single, 0, 0,
		0, 0, single, 0,
		0, 0, 0, double,
	}), nil
}

func (g PhaseShiftedControlledPhase) KAKDecomposition() KAKDecomposition {
	half := g.theta.Div(calculator.New(2))
	quarter := g.theta.Div(calculator.New(4))
	return KAKDecomposition{
		GlobalPhase: quarter.Add(g.phi),
		KVector:     [3]calculator.CalculatorFloat{calculator.New(0), calculator.New(0), quarter},
		CircuitBefore: circuitOf(
			NewRotateZ(g.control, half),
			NewRotateZ(g.target, half),
		),
		CircuitAfter: circuitOf(
			NewRotateZ(g.control, g.phi),
			NewRotateZ(g.target, g.phi),
		),
	}
}

func (g PhaseShiftedControlledPhase) String() string {
	return fmt.Sprintf("PhaseShiftedControlledPhase { control: %d, target: %d, theta: %s, phi: %s }",
		g.control, g.target, g.theta, g.phi)
}
