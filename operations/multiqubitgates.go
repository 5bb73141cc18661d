package operations

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"qopalg/calculator"
)

// MultiQubitMS is the Molmer-Sorensen gate between multiple qubits,
// exp(-i * theta/2 * X⊗X⊗...⊗X).
type MultiQubitMS struct {
	qubits []int
	theta  calculator.CalculatorFloat
}

// NewMultiQubitMS returns the multi qubit Molmer-Sorensen gate on the given
// qubit vector.
func NewMultiQubitMS(qubits []int, theta calculator.CalculatorFloat) MultiQubitMS {
	return MultiQubitMS{qubits: qubits, theta: theta}
}

var tagsMultiQubitMS = []string{"Operation", "GateOperation", "MultiQubitGateOperation", "MultiQubitMS"}

func (g MultiQubitMS) Tags() []string                    { return tagsMultiQubitMS }
func (g MultiQubitMS) HQSLang() string                   { return "MultiQubitMS" }
func (g MultiQubitMS) Qubits() []int                     { return g.qubits }
func (g MultiQubitMS) InvolvedQubits() InvolvedQubits    { return QubitSet(g.qubits...) }
func (g MultiQubitMS) IsParametrized() bool              { return !g.theta.IsFloat() }
func (g MultiQubitMS) Theta() calculator.CalculatorFloat { return g.theta }

func (g MultiQubitMS) PowerCF(power calculator.CalculatorFloat) Operation {
	return NewMultiQubitMS(g.qubits, g.theta.Mul(power))
}

func (g MultiQubitMS) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	theta, err := g.theta.Substitute(calc)
	if err != nil {
		return nil, err
	}
	return NewMultiQubitMS(g.qubits, theta), nil
}

func (g MultiQubitMS) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	qubits, err := remapQubitSlice(g.qubits, mapping)
	if err != nil {
		return nil, err
	}
	return NewMultiQubitMS(qubits, g.theta), nil
}

// UnitaryMatrix returns the 2^n x 2^n matrix with cos(theta/2) on the
// diagonal and -i*sin(theta/2) on the anti-diagonal.
func (g MultiQubitMS) UnitaryMatrix() (*mat.CDense, error) {
	theta, err := g.theta.Float()
	if err != nil {
		return nil, err
	}
	dim := 1 << len(g.qubits)
	cos := complex(math.Cos(theta/2), 0)
	sin := complex(0, -math.Sin(theta/2))
	m := mat.NewCDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		m.Set(i, i, cos)
		m.Set(i, dim-i-1, sin)
	}
	return m, nil
}

// Decomposition returns the standard ladder circuit: a basis change to Z on
// every qubit, a CNOT chain onto the last qubit, the Z rotation, and the
// chain and basis change undone.
func (g MultiQubitMS) Decomposition() (Circuit, error) {
	c := NewCircuit()
	for _, q := range g.qubits {
		c.Add(NewHadamard(q))
	}
	for i := 1; i < len(g.qubits); i++ {
		c.Add(NewCNOT(g.qubits[i-1], g.qubits[i]))
	}
	c.Add(NewRotateZ(g.qubits[len(g.qubits)-1], g.theta))
	for i := len(g.qubits) - 1; i >= 1; i-- {
		c.Add(NewCNOT(g.qubits[i-1], g.qubits[i]))
	}
	for _, q := range g.qubits {
		c.Add(NewHadamard(q))
	}
	return c, nil
}

func (g MultiQubitMS) String() string {
	return fmt.Sprintf("MultiQubitMS { qubits: %s, theta: %s }", formatQubitVector(g.qubits), g.theta)
}

// MultiCNOT is the CNOT gate with multiple controls: all qubits but the last
// control an X on the last qubit.
type MultiCNOT struct {
	qubits []int
}

// NewMultiCNOT returns the multi controlled NOT gate on the given qubit
// vector.
func NewMultiCNOT(qubits []int) MultiCNOT {
	return MultiCNOT{qubits: qubits}
}

var tagsMultiCNOT = []string{"Operation", "GateOperation", "MultiQubitGateOperation", "MultiCNOT"}

func (g MultiCNOT) Tags() []string                 { return tagsMultiCNOT }
func (g MultiCNOT) HQSLang() string                { return "MultiCNOT" }
func (g MultiCNOT) Qubits() []int                  { return g.qubits }
func (g MultiCNOT) InvolvedQubits() InvolvedQubits { return QubitSet(g.qubits...) }
func (g MultiCNOT) IsParametrized() bool           { return false }

func (g MultiCNOT) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return g, nil
}

func (g MultiCNOT) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	qubits, err := remapQubitSlice(g.qubits, mapping)
	if err != nil {
		return nil, err
	}
	return NewMultiCNOT(qubits), nil
}

// UnitaryMatrix returns the 2^n x 2^n identity with the bottom-right 2x2
// block replaced by PauliX.
func (g MultiCNOT) UnitaryMatrix() (*mat.CDense, error) {
	dim := 1 << len(g.qubits)
	m := mat.NewCDense(dim, dim, nil)
	for i := 0; i < dim-2; i++ {
		m.Set(i, i, 1)
	}
	m.Set(dim-2, dim-1, 1)
	m.Set(dim-1, dim-2, 1)
	return m, nil
}

// Decomposition returns the plain CNOT for two qubits and the standard
// Toffoli construction for three. Larger gates have no fixed decomposition.
func (g MultiCNOT) Decomposition() (Circuit, error) {
	c := NewCircuit()
	switch len(g.qubits) {
	case 2:
		c.Add(NewCNOT(g.qubits[0], g.qubits[1]))
	case 3:
		c.Add(NewHadamard(g.qubits[2]))
		c.Add(NewCNOT(g.qubits[1], g.qubits[2]))
		c.Add(NewPhaseShiftState1(g.qubits[2], calculator.New(-math.Pi/4)))
		c.Add(NewCNOT(g.qubits[0], g.qubits[2]))
		c.Add(NewTGate(g.qubits[2]))
		c.Add(NewCNOT(g.qubits[1], g.qubits[2]))
		c.Add(NewPhaseShiftState1(g.qubits[2], calculator.New(-math.Pi/4)))
		c.Add(NewCNOT(g.qubits[0], g.qubits[2]))
		c.Add(NewTGate(g.qubits[1]))
		c.Add(NewTGate(g.qubits[2]))
		c.Add(NewHadamard(g.qubits[2]))
		c.Add(NewCNOT(g.qubits[0], g.qubits[1]))
		c.Add(NewTGate(g.qubits[0]))
		c.Add(NewPhaseShiftState1(g.qubits[1], calculator.New(-math.Pi/4)))
		c.Add(NewCNOT(g.qubits[0], g.qubits[1]))
	default:
		return Circuit{}, fmt.Errorf("no circuit decomposition defined for MultiCNOT on %d qubits", len(g.qubits))
	}
	return c, nil
}

func (g MultiCNOT) String() string {
	return fmt.Sprintf("MultiCNOT { qubits: %s }", formatQubitVector(g.qubits))
}

func formatQubitVector(qubits []int) string {
	parts := make([]string, len(qubits))
	for i, q := range qubits {
		parts[i] = fmt.Sprintf("%d", q)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
