package operations

import "fmt"

// UnitaryMatrixError reports alpha/beta values that do not form a unitary
// single-qubit matrix.
type UnitaryMatrixError struct {
	AlphaR float64
	AlphaI float64
	BetaR  float64
	BetaI  float64
	Norm   float64
}

func (e UnitaryMatrixError) Error() string {
	return fmt.Sprintf(
		"resulting gate matrix is not unitary: alpha_r %v, alpha_i %v, beta_r %v, beta_i %v, norm %v",
		e.AlphaR, e.AlphaI, e.BetaR, e.BetaI, e.Norm)
}

// QubitMappingError reports a qubit that cannot be remapped because it is
// missing from the mapping.
type QubitMappingError struct {
	Qubit int
}

func (e QubitMappingError) Error() string {
	return fmt.Sprintf("mapping of qubit %d failed", e.Qubit)
}

// ConversionError reports a failed narrowing between operation capabilities.
type ConversionError struct {
	StartType string
	EndType   string
}

func (e ConversionError) Error() string {
	return fmt.Sprintf("conversion from %s to %s failed", e.StartType, e.EndType)
}

// IncompatibleQubitsError reports a multiplication of single-qubit gates
// acting on different qubits.
type IncompatibleQubitsError struct {
	SelfQubit  int
	OtherQubit int
}

func (e IncompatibleQubitsError) Error() string {
	return fmt.Sprintf(
		"qubits %d and %d incompatible: gates acting on different qubits cannot be multiplied",
		e.SelfQubit, e.OtherQubit)
}

// VersionMismatchError reports data requiring a newer library version than
// the one running.
type VersionMismatchError struct {
	LibraryMajor uint32
	LibraryMinor uint32
	DataMajor    uint32
	DataMinor    uint32
}

func (e VersionMismatchError) Error() string {
	return fmt.Sprintf(
		"operation requires version %d.%d but library version is %d.%d",
		e.DataMajor, e.DataMinor, e.LibraryMajor, e.LibraryMinor)
}
