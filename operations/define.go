package operations

import (
	"fmt"

	"qopalg/calculator"
)

// DefinitionFloat declares a classical register of real values.
type DefinitionFloat struct {
	name     string
	length   int
	isOutput bool
}

// NewDefinitionFloat returns the float register definition.
func NewDefinitionFloat(name string, length int, isOutput bool) DefinitionFloat {
	return DefinitionFloat{name: name, length: length, isOutput: isOutput}
}

var tagsDefinitionFloat = []string{"Operation", "Definition", "DefinitionFloat"}

func (d DefinitionFloat) Tags() []string                 { return tagsDefinitionFloat }
func (d DefinitionFloat) HQSLang() string                { return "DefinitionFloat" }
func (d DefinitionFloat) InvolvedQubits() InvolvedQubits { return NoQubits() }
func (d DefinitionFloat) IsParametrized() bool           { return false }
func (d DefinitionFloat) Name() string                   { return d.name }
func (d DefinitionFloat) Length() int                    { return d.length }
func (d DefinitionFloat) IsOutput() bool                 { return d.isOutput }

func (d DefinitionFloat) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return d, nil
}

func (d DefinitionFloat) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	return d, nil
}

func (d DefinitionFloat) String() string {
	return fmt.Sprintf("DefinitionFloat { name: %q, length: %d, is_output: %t }", d.name, d.length, d.isOutput)
}

// DefinitionComplex declares a classical register of complex values.
type DefinitionComplex struct {
	name     string
	length   int
	isOutput bool
}

// NewDefinitionComplex returns the complex register definition.
func NewDefinitionComplex(name string, length int, isOutput bool) DefinitionComplex {
	return DefinitionComplex{name: name, length: length, isOutput: isOutput}
}

var tagsDefinitionComplex = []string{"Operation", "Definition", "DefinitionComplex"}

func (d DefinitionComplex) Tags() []string                 { return tagsDefinitionComplex }
func (d DefinitionComplex) HQSLang() string                { return "DefinitionComplex" }
func (d DefinitionComplex) InvolvedQubits() InvolvedQubits { return NoQubits() }
func (d DefinitionComplex) IsParametrized() bool           { return false }
func (d DefinitionComplex) Name() string                   { return d.name }
func (d DefinitionComplex) Length() int                    { return d.length }
func (d DefinitionComplex) IsOutput() bool                 { return d.isOutput }

func (d DefinitionComplex) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return d, nil
}

func (d DefinitionComplex) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	return d, nil
}

func (d DefinitionComplex) String() string {
	return fmt.Sprintf("DefinitionComplex { name: %q, length: %d, is_output: %t }", d.name, d.length, d.isOutput)
}

// DefinitionUsize declares a classical register of unsigned integers.
type DefinitionUsize struct {
	name     string
	length   int
	isOutput bool
}

// NewDefinitionUsize returns the integer register definition.
func NewDefinitionUsize(name string, length int, isOutput bool) DefinitionUsize {
	return DefinitionUsize{name: name, length: length, isOutput: isOutput}
}

var tagsDefinitionUsize = []string{"Operation", "Definition", "DefinitionUsize"}

func (d DefinitionUsize) Tags() []string                 { return tagsDefinitionUsize }
func (d DefinitionUsize) HQSLang() string                { return "DefinitionUsize" }
func (d DefinitionUsize) InvolvedQubits() InvolvedQubits { return NoQubits() }
func (d DefinitionUsize) IsParametrized() bool           { return false }
func (d DefinitionUsize) Name() string                   { return d.name }
func (d DefinitionUsize) Length() int                    { return d.length }
func (d DefinitionUsize) IsOutput() bool                 { return d.isOutput }

func (d DefinitionUsize) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return d, nil
}

func (d DefinitionUsize) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	return d, nil
}

func (d DefinitionUsize) String() string {
	return fmt.Sprintf("DefinitionUsize { name: %q, length: %d, is_output: %t }", d.name, d.length, d.isOutput)
}

// DefinitionBit declares a classical register of bits, the target of
// measurement operations.
type DefinitionBit struct {
	name     string
	length   int
	isOutput bool
}

// NewDefinitionBit returns the bit register definition.
func NewDefinitionBit(name string, length int, isOutput bool) DefinitionBit {
	return DefinitionBit{name: name, length: length, isOutput: isOutput}
}

var tagsDefinitionBit = []string{"Operation", "Definition", "DefinitionBit"}

func (d DefinitionBit) Tags() []string                 { return tagsDefinitionBit }
func (d DefinitionBit) HQSLang() string                { return "DefinitionBit" }
func (d DefinitionBit) InvolvedQubits() InvolvedQubits { return NoQubits() }
func (d DefinitionBit) IsParametrized() bool           { return false }
func (d DefinitionBit) Name() string                   { return d.name }
func (d DefinitionBit) Length() int                    { return d.length }
func (d DefinitionBit) IsOutput() bool                 { return d.isOutput }

func (d DefinitionBit) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return d, nil
}

func (d DefinitionBit) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	return d, nil
}

func (d DefinitionBit) String() string {
	return fmt.Sprintf("DefinitionBit { name: %q, length: %d, is_output: %t }", d.name, d.length, d.isOutput)
}

// InputSymbolic declares a classical input parameter with the value it takes
// in this run.
type InputSymbolic struct {
	name  string
	input float64
}

// NewInputSymbolic returns the symbolic input declaration.
func NewInputSymbolic(name string, input float64) InputSymbolic {
	return InputSymbolic{name: name, input: input}
}

var tagsInputSymbolic = []string{"Operation", "Definition", "InputSymbolic"}

func (d InputSymbolic) Tags() []string                 { return tagsInputSymbolic }
func (d InputSymbolic) HQSLang() string                { return "InputSymbolic" }
func (d InputSymbolic) InvolvedQubits() InvolvedQubits { return NoQubits() }
func (d InputSymbolic) IsParametrized() bool           { return false }
func (d InputSymbolic) Name() string                   { return d.name }
func (d InputSymbolic) Input() float64                 { return d.input }

func (d InputSymbolic) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return d, nil
}

func (d InputSymbolic) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	return d, nil
}

func (d InputSymbolic) String() string {
	return fmt.Sprintf("InputSymbolic { name: %q, input: %v }", d.name, d.input)
}
