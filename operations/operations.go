// Package operations models quantum circuit instructions as data: a closed
// set of unitary gates and simulation-control pragmas, each carrying a
// uniform algebra for qubit bookkeeping, symbolic-parameter substitution and,
// for gates, a concrete matrix semantics.
//
// Every variant is a small immutable record built through its constructor,
// with getter methods for its fields. Capability interfaces (GateOperation,
// TwoQubitGateOperation, PragmaNoiseOperation, ...) are implemented by the
// variants that carry the capability; the As* helpers perform the checked
// narrowing conversions.
package operations

import (
	"reflect"
	"sort"

	"gonum.org/v1/gonum/mat"

	"qopalg/calculator"
)

// InvolvementKind classifies how an operation relates to the qubit register.
type InvolvementKind int

const (
	// InvolvementNone marks operations touching no qubits (annotations etc.).
	InvolvementNone InvolvementKind = iota
	// InvolvementAll marks operations acting on the full register, whatever
	// its size.
	InvolvementAll
	// InvolvementSet marks operations acting on an explicit qubit set.
	InvolvementSet
)

// InvolvedQubits describes the qubits an operation acts on.
type InvolvedQubits struct {
	Kind   InvolvementKind
	Qubits []int // sorted, only set for InvolvementSet
}

// NoQubits returns the involvement of a qubit-free operation.
func NoQubits() InvolvedQubits {
	return InvolvedQubits{Kind: InvolvementNone}
}

// AllQubits returns the involvement of an operation acting on the whole
// register.
func AllQubits() InvolvedQubits {
	return InvolvedQubits{Kind: InvolvementAll}
}

// QubitSet returns the involvement for an explicit set of qubits. The input
// is deduplicated and sorted so that equal sets compare equal.
func QubitSet(qubits ...int) InvolvedQubits {
	seen := make(map[int]bool, len(qubits))
	set := make([]int, 0, len(qubits))
	for _, q := range qubits {
		if !seen[q] {
			seen[q] = true
			set = append(set, q)
		}
	}
	sort.Ints(set)
	return InvolvedQubits{Kind: InvolvementSet, Qubits: set}
}

// Contains reports whether qubit q is involved. All involvement contains
// every qubit.
func (iq InvolvedQubits) Contains(q int) bool {
	switch iq.Kind {
	case InvolvementAll:
		return true
	case InvolvementSet:
		for _, s := range iq.Qubits {
			if s == q {
				return true
			}
		}
	}
	return false
}

// Operation is the base contract every variant implements.
type Operation interface {
	// Tags returns the ordered classification list, most general first,
	// ending in the variant name.
	Tags() []string
	// HQSLang returns the canonical variant name.
	HQSLang() string
	// InvolvedQubits returns the qubits the operation acts on.
	InvolvedQubits() InvolvedQubits
	// IsParametrized reports whether any scalar field, recursively, is
	// symbolic.
	IsParametrized() bool
	// SubstituteParameters returns a copy with all symbolic parameters
	// evaluated against the calculator's bindings.
	SubstituteParameters(calc *calculator.Calculator) (Operation, error)
	// RemapQubits returns a copy with all qubit indices rewritten through
	// the mapping.
	RemapQubits(mapping map[int]int) (Operation, error)
}

// SingleQubitOperation is implemented by operations acting on exactly one
// qubit.
type SingleQubitOperation interface {
	Operation
	Qubit() int
}

// TwoQubitOperation is implemented by operations acting on exactly two
// qubits. Control is the more significant qubit in the matrix basis.
type TwoQubitOperation interface {
	Operation
	Control() int
	Target() int
}

// MultiQubitOperation is implemented by operations acting on a qubit vector.
type MultiQubitOperation interface {
	Operation
	Qubits() []int
}

// GateOperation is implemented by unitary operations.
type GateOperation interface {
	Operation
	// UnitaryMatrix returns the gate's unitary matrix. It fails with a
	// CalculatorError when parameters are still symbolic.
	UnitaryMatrix() (*mat.CDense, error)
}

// Rotation is implemented by gates characterized by a single rotation angle.
type Rotation interface {
	GateOperation
	Theta() calculator.CalculatorFloat
	// PowerCF multiplies the rotation angle by power, symbolically if power
	// is symbolic.
	PowerCF(power calculator.CalculatorFloat) Operation
}

// SingleQubitGateOperation is implemented by unitary operations on one qubit.
//
// Every such gate can be written as
//
//	exp(i*phi) * [[alpha, -conj(beta)], [beta, conj(alpha)]]
//
// with alpha = AlphaR + i*AlphaI and beta = BetaR + i*BetaI.
type SingleQubitGateOperation interface {
	GateOperation
	SingleQubitOperation
	AlphaR() calculator.CalculatorFloat
	AlphaI() calculator.CalculatorFloat
	BetaR() calculator.CalculatorFloat
	BetaI() calculator.CalculatorFloat
	GlobalPhase() calculator.CalculatorFloat
}

// TwoQubitGateOperation is implemented by unitary operations on two qubits.
type TwoQubitGateOperation interface {
	GateOperation
	TwoQubitOperation
	// KAKDecomposition returns the canonical decomposition of the gate into
	// local rotations around a fixed entangling core.
	KAKDecomposition() KAKDecomposition
}

// MultiQubitGateOperation is implemented by unitary operations on more than
// two qubits.
type MultiQubitGateOperation interface {
	GateOperation
	MultiQubitOperation
	// Decomposition returns an equivalent circuit of one- and two-qubit
	// gates. It fails when no decomposition is defined for the qubit count.
	Decomposition() (Circuit, error)
}

// PragmaOperation marks simulation-control operations that are not part of
// the universal gate set.
type PragmaOperation interface {
	Operation
	pragma()
}

// PragmaNoiseOperation is implemented by pragmas describing a decoherence
// channel on one qubit.
type PragmaNoiseOperation interface {
	PragmaOperation
	SingleQubitOperation
	// Superoperator returns the 4x4 real matrix acting on the vectorized
	// density matrix.
	Superoperator() (*mat.Dense, error)
	// PowerCF rescales the gate time by power.
	PowerCF(power calculator.CalculatorFloat) Operation
}

// PragmaNoiseProbaOperation is implemented by noise pragmas with a closed
// form error probability.
type PragmaNoiseProbaOperation interface {
	PragmaNoiseOperation
	Probability() calculator.CalculatorFloat
}

// Definition is implemented by classical register definitions.
type Definition interface {
	Operation
	Name() string
}

// MeasurementOperation marks operations that read out quantum state.
type MeasurementOperation interface {
	Operation
	Readout() string
}

// AsGateOperation narrows op to a gate, or fails with a ConversionError.
func AsGateOperation(op Operation) (GateOperation, error) {
	if g, ok := op.(GateOperation); ok {
		return g, nil
	}
	return nil, ConversionError{StartType: op.HQSLang(), EndType: "GateOperation"}
}

// AsSingleQubitGateOperation narrows op to a single-qubit gate.
func AsSingleQubitGateOperation(op Operation) (SingleQubitGateOperation, error) {
	if g, ok := op.(SingleQubitGateOperation); ok {
		return g, nil
	}
	return nil, ConversionError{StartType: op.HQSLang(), EndType: "SingleQubitGateOperation"}
}

// AsTwoQubitGateOperation narrows op to a two-qubit gate.
func AsTwoQubitGateOperation(op Operation) (TwoQubitGateOperation, error) {
	if g, ok := op.(TwoQubitGateOperation); ok {
		return g, nil
	}
	return nil, ConversionError{StartType: op.HQSLang(), EndType: "TwoQubitGateOperation"}
}

// AsMultiQubitGateOperation narrows op to a multi-qubit gate.
func AsMultiQubitGateOperation(op Operation) (MultiQubitGateOperation, error) {
	if g, ok := op.(MultiQubitGateOperation); ok {
		return g, nil
	}
	return nil, ConversionError{StartType: op.HQSLang(), EndType: "MultiQubitGateOperation"}
}

// AsRotation narrows op to a single-angle rotation gate.
func AsRotation(op Operation) (Rotation, error) {
	if g, ok := op.(Rotation); ok {
		return g, nil
	}
	return nil, ConversionError{StartType: op.HQSLang(), EndType: "Rotation"}
}

// AsPragmaNoiseOperation narrows op to a noise pragma.
func AsPragmaNoiseOperation(op Operation) (PragmaNoiseOperation, error) {
	if g, ok := op.(PragmaNoiseOperation); ok {
		return g, nil
	}
	return nil, ConversionError{StartType: op.HQSLang(), EndType: "PragmaNoiseOperation"}
}

// AsPragmaNoiseProbaOperation narrows op to a noise pragma with probability.
func AsPragmaNoiseProbaOperation(op Operation) (PragmaNoiseProbaOperation, error) {
	if g, ok := op.(PragmaNoiseProbaOperation); ok {
		return g, nil
	}
	return nil, ConversionError{StartType: op.HQSLang(), EndType: "PragmaNoiseProbaOperation"}
}

// Equal reports structural equality of two operations.
func Equal(a, b Operation) bool {
	return reflect.DeepEqual(a, b)
}

// checkValidMapping rejects mappings whose values are not themselves keys:
// such a mapping cannot be inverted and would silently merge wires.
func checkValidMapping(mapping map[int]int) error {
	for _, v := range mapping {
		if _, ok := mapping[v]; !ok {
			return QubitMappingError{Qubit: v}
		}
	}
	return nil
}

// remapQubit rewrites one qubit index through the mapping. Qubits the
// operation involves must be present as keys.
func remapQubit(q int, mapping map[int]int) (int, error) {
	n, ok := mapping[q]
	if !ok {
		return 0, QubitMappingError{Qubit: q}
	}
	return n, nil
}

// remapQubitSlice rewrites a qubit vector through the mapping, preserving
// order.
func remapQubitSlice(qubits []int, mapping map[int]int) ([]int, error) {
	out := make([]int, len(qubits))
	for i, q := range qubits {
		n, err := remapQubit(q, mapping)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
