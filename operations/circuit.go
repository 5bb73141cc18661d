package operations

import (
	"reflect"
	"strings"

	"qopalg/calculator"
)

// Circuit is an ordered sequence of operations. It is the owning container
// used by wrapper pragmas and by KAK decompositions; all methods return new
// values and leave the receiver untouched.
type Circuit struct {
	Operations []Operation
}

// NewCircuit returns an empty circuit.
func NewCircuit() Circuit {
	return Circuit{}
}

// Add appends an operation to the circuit.
func (c *Circuit) Add(op Operation) {
	c.Operations = append(c.Operations, op)
}

// Len returns the number of operations.
func (c Circuit) Len() int {
	return len(c.Operations)
}

// InvolvedQubits returns the union of the involvement of all contained
// operations. Any operation involving all qubits makes the whole circuit
// involve all qubits.
func (c Circuit) InvolvedQubits() InvolvedQubits {
	set := []int{}
	any := false
	for _, op := range c.Operations {
		iq := op.InvolvedQubits()
		switch iq.Kind {
		case InvolvementAll:
			return AllQubits()
		case InvolvementSet:
			set = append(set, iq.Qubits...)
			any = true
		}
	}
	if !any {
		return NoQubits()
	}
	return QubitSet(set...)
}

// IsParametrized reports whether any contained operation is parametrized.
func (c Circuit) IsParametrized() bool {
	for _, op := range c.Operations {
		if op.IsParametrized() {
			return true
		}
	}
	return false
}

// SubstituteParameters substitutes symbolic parameters in every contained
// operation, failing on the first unresolvable one.
func (c Circuit) SubstituteParameters(calc *calculator.Calculator) (Circuit, error) {
	out := Circuit{Operations: make([]Operation, len(c.Operations))}
	for i, op := range c.Operations {
		sub, err := op.SubstituteParameters(calc)
		if err != nil {
			return Circuit{}, err
		}
		out.Operations[i] = sub
	}
	return out, nil
}

// RemapQubits remaps the qubits of every contained operation.
func (c Circuit) RemapQubits(mapping map[int]int) (Circuit, error) {
	out := Circuit{Operations: make([]Operation, len(c.Operations))}
	for i, op := range c.Operations {
		remapped, err := op.RemapQubits(mapping)
		if err != nil {
			return Circuit{}, err
		}
		out.Operations[i] = remapped
	}
	return out, nil
}

// Equal reports structural equality of two circuits.
func (c Circuit) Equal(o Circuit) bool {
	if len(c.Operations) != len(o.Operations) {
		return false
	}
	if len(c.Operations) == 0 {
		return true
	}
	return reflect.DeepEqual(c.Operations, o.Operations)
}

// String renders the circuit as one hqslang name per line.
func (c Circuit) String() string {
	var sb strings.Builder
	for _, op := range c.Operations {
		sb.WriteString(op.HQSLang())
		sb.WriteString("\n")
	}
	return sb.String()
}
