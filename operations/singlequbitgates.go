package operations

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"qopalg/calculator"
)

// singleQubitUnitary builds the 2x2 unitary exp(i*phi) * [[a, -conj(b)], [b, conj(a)]]
// from the gate's alpha/beta/phase parameters. Fails with a CalculatorError
// when any parameter is still symbolic.
func singleQubitUnitary(g SingleQubitGateOperation) (*mat.CDense, error) {
	ar, err := g.AlphaR().Float()
	if err != nil {
		return nil, err
	}
	ai, err := g.AlphaI().Float()
	if err != nil {
		return nil, err
	}
	br, err := g.BetaR().Float()
	if err != nil {
		return nil, err
	}
	bi, err := g.BetaI().Float()
	if err != nil {
		return nil, err
	}
	phi, err := g.GlobalPhase().Float()
	if err != nil {
		return nil, err
	}
	pref := cmplx.Exp(complex(0, phi))
	return mat.NewCDense(2, 2, []complex128{
		pref * complex(ar, ai), pref * complex(-br, bi),
		pref * complex(br, bi), pref * complex(ar, -ai),
	}), nil
}

// MulSingleQubitGates composes two single-qubit gates acting on the same
// qubit into a general SingleQubitGate; r is applied first. When the product
// is fully numeric the resulting alpha/beta pair is renormalized to absorb
// floating point error.
func MulSingleQubitGates(l, r SingleQubitGateOperation) (SingleQubitGate, error) {
	if l.Qubit() != r.Qubit() {
		return SingleQubitGate{}, IncompatibleQubitsError{SelfQubit: l.Qubit(), OtherQubit: r.Qubit()}
	}
	ar, ai := l.AlphaR(), l.AlphaI()
	br, bi := l.BetaR(), l.BetaI()
	oar, oai := r.AlphaR(), r.AlphaI()
	obr, obi := r.BetaR(), r.BetaI()

	// alpha = a*oa - conj(b)*ob, beta = b*oa + ob*conj(a)
	newAR := ar.Mul(oar).Sub(ai.Mul(oai)).Sub(br.Mul(obr).Add(bi.Mul(obi)))
	newAI := ar.Mul(oai).Add(ai.Mul(oar)).Sub(br.Mul(obi)).Add(bi.Mul(obr))
	newBR := br.Mul(oar).Sub(bi.Mul(oai)).Add(obr.Mul(ar)).Add(obi.Mul(ai))
	newBI := br.Mul(oai).Add(bi.Mul(oar)).Add(obi.Mul(ar)).Sub(obr.Mul(ai))
	phase := l.GlobalPhase().Add(r.GlobalPhase())

	if newAR.IsFloat() && newAI.IsFloat() && newBR.IsFloat() && newBI.IsFloat() {
		nar, _ := newAR.Float()
		nai, _ := newAI.Float()
		nbr, _ := newBR.Float()
		nbi, _ := newBI.Float()
		norm := math.Sqrt(nar*nar + nai*nai + nbr*nbr + nbi*nbi)
		if math.Abs(norm-1.0) > 1e-15 {
			return NewSingleQubitGate(r.Qubit(),
				calculator.New(nar/norm), calculator.New(nai/norm),
				calculator.New(nbr/norm), calculator.New(nbi/norm),
				phase), nil
		}
	}
	return NewSingleQubitGate(r.Qubit(), newAR, newAI, newBR, newBI, phase), nil
}

// ToSingleQubitGate converts any single-qubit gate to its general form.
func ToSingleQubitGate(g SingleQubitGateOperation) SingleQubitGate {
	return NewSingleQubitGate(g.Qubit(), g.AlphaR(), g.AlphaI(), g.BetaR(), g.BetaI(), g.GlobalPhase())
}

// SingleQubitGate is the fully general single-qubit unitary, parametrized by
// the complex matrix components alpha and beta and a global phase.
type SingleQubitGate struct {
	qubit       int
	alphaR      calculator.CalculatorFloat
	alphaI      calculator.CalculatorFloat
	betaR       calculator.CalculatorFloat
	betaI       calculator.CalculatorFloat
	globalPhase calculator.CalculatorFloat
}

// NewSingleQubitGate returns a general single-qubit gate with the given
// matrix components.
func NewSingleQubitGate(qubit int, alphaR, alphaI, betaR, betaI, globalPhase calculator.CalculatorFloat) SingleQubitGate {
	return SingleQubitGate{qubit: qubit, alphaR: alphaR, alphaI: alphaI, betaR: betaR, betaI: betaI, globalPhase: globalPhase}
}

var tagsSingleQubitGate = []string{"Operation", "GateOperation", "SingleQubitGateOperation", "SingleQubitGate"}

func (g SingleQubitGate) Tags() []string   { return tagsSingleQubitGate }
func (g SingleQubitGate) HQSLang() string  { return "SingleQubitGate" }
func (g SingleQubitGate) Qubit() int       { return g.qubit }
func (g SingleQubitGate) InvolvedQubits() InvolvedQubits {
	return QubitSet(g.qubit)
}

func (g SingleQubitGate) IsParametrized() bool {
	return !(g.alphaR.IsFloat() && g.alphaI.IsFloat() && g.betaR.IsFloat() && g.betaI.IsFloat() && g.globalPhase.IsFloat())
}

func (g SingleQubitGate) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	ar, err := g.alphaR.Substitute(calc)
	if err != nil {
		return nil, err
	}
	ai, err := g.alphaI.Substitute(calc)
	if err != nil {
		return nil, err
	}
	br, err := g.betaR.Substitute(calc)
	if err != nil {
		return nil, err
	}
	bi, err := g.betaI.Substitute(calc)
	if err != nil {
		return nil, err
	}
	phi, err := g.globalPhase.Substitute(calc)
	if err != nil {
		return nil, err
	}
	return NewSingleQubitGate(g.qubit, ar, ai, br, bi, phi), nil
}

func (g SingleQubitGate) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	q, err := remapQubit(g.qubit, mapping)
	if err != nil {
		return nil, err
	}
	return NewSingleQubitGate(q, g.alphaR, g.alphaI, g.betaR, g.betaI, g.globalPhase), nil
}

func (g SingleQubitGate) AlphaR() calculator.CalculatorFloat      { return g.alphaR }
func (g SingleQubitGate) AlphaI() calculator.CalculatorFloat      { return g.alphaI }
func (g SingleQubitGate) BetaR() calculator.CalculatorFloat       { return g.betaR }
func (g SingleQubitGate) BetaI() calculator.CalculatorFloat       { return g.betaI }
func (g SingleQubitGate) GlobalPhase() calculator.CalculatorFloat { return g.globalPhase }

// UnitaryMatrix validates that alpha and beta describe a unitary matrix and
// returns it. Fails with UnitaryMatrixError when the normalization invariant
// is broken, and with a CalculatorError on symbolic parameters.
func (g SingleQubitGate) UnitaryMatrix() (*mat.CDense, error) {
	ar, err := g.alphaR.Float()
	if err != nil {
		return nil, err
	}
	ai, err := g.alphaI.Float()
	if err != nil {
		return nil, err
	}
	br, err := g.betaR.Float()
	if err != nil {
		return nil, err
	}
	bi, err := g.betaI.Float()
	if err != nil {
		return nil, err
	}
	sumSq := ar*ar + ai*ai + br*br + bi*bi
	norm := math.Sqrt(sumSq)
	if sumSq == 0 || math.Abs(sumSq-1.0) > 1e-6 {
		return nil, UnitaryMatrixError{AlphaR: ar, AlphaI: ai, BetaR: br, BetaI: bi, Norm: norm}
	}
	return singleQubitUnitary(g)
}

func (g SingleQubitGate) String() string {
	return fmt.Sprintf("SingleQubitGate { qubit: %d, alpha_r: %s, alpha_i: %s, beta_r: %s, beta_i: %s, global_phase: %s }",
		g.qubit, g.alphaR, g.alphaI, g.betaR, g.betaI, g.globalPhase)
}

// RotateZ rotates a single qubit around the z axis of the Bloch sphere.
type RotateZ struct {
	qubit int
	theta calculator.CalculatorFloat
}

// NewRotateZ returns a z rotation by theta on qubit.
func NewRotateZ(qubit int, theta calculator.CalculatorFloat) RotateZ {
	return RotateZ{qubit: qubit, theta: theta}
}

var tagsRotateZ = []string{"Operation", "GateOperation", "SingleQubitGateOperation", "Rotation", "RotateZ"}

func (g RotateZ) Tags() []string                 { return tagsRotateZ }
func (g RotateZ) HQSLang() string                { return "RotateZ" }
func (g RotateZ) Qubit() int                     { return g.qubit }
func (g RotateZ) InvolvedQubits() InvolvedQubits { return QubitSet(g.qubit) }
func (g RotateZ) IsParametrized() bool           { return !g.theta.IsFloat() }
func (g RotateZ) Theta() calculator.CalculatorFloat {
	return g.theta
}

func (g RotateZ) PowerCF(power calculator.CalculatorFloat) Operation {
	return NewRotateZ(g.qubit, g.theta.Mul(power))
}

func (g RotateZ) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	theta, err := g.theta.Substitute(calc)
	if err != nil {
		return nil, err
	}
	return NewRotateZ(g.qubit, theta), nil
}

func (g RotateZ) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	q, err := remapQubit(g.qubit, mapping)
	if err != nil {
		return nil, err
	}
	return NewRotateZ(q, g.theta), nil
}

func (g RotateZ) AlphaR() calculator.CalculatorFloat { return g.theta.Div(calculator.New(2)).Cos() }
func (g RotateZ) AlphaI() calculator.CalculatorFloat {
	return g.theta.Div(calculator.New(2)).Sin().Neg()
}
func (g RotateZ) BetaR() calculator.CalculatorFloat       { return calculator.New(0) }
func (g RotateZ) BetaI() calculator.CalculatorFloat       { return calculator.New(0) }
func (g RotateZ) GlobalPhase() calculator.CalculatorFloat { return calculator.New(0) }

func (g RotateZ) UnitaryMatrix() (*mat.CDense, error) { return singleQubitUnitary(g) }

func (g RotateZ) String() string {
	return fmt.Sprintf("RotateZ { qubit: %d, theta: %s }", g.qubit, g.theta)
}

// RotateX rotates a single qubit around the x axis of the Bloch sphere.
type RotateX struct {
	qubit int
	theta calculator.CalculatorFloat
}

// NewRotateX returns an x rotation by theta on qubit.
func NewRotateX(qubit int, theta calculator.CalculatorFloat) RotateX {
	return RotateX{qubit: qubit, theta: theta}
}

var tagsRotateX = []string{"Operation", "GateOperation", "SingleQubitGateOperation", "Rotation", "RotateX"}

func (g RotateX) Tags() []string                 { return tagsRotateX }
func (g RotateX) HQSLang() string                { return "RotateX" }
func (g RotateX) Qubit() int                     { return g.qubit }
func (g RotateX) InvolvedQubits() InvolvedQubits { return QubitSet(g.qubit) }
func (g RotateX) IsParametrized() bool           { return !g.theta.IsFloat() }
func (g RotateX) Theta() calculator.CalculatorFloat {
	return g.theta
}

func (g RotateX) PowerCF(power calculator.CalculatorFloat) Operation {
	return NewRotateX(g.qubit, g.theta.Mul(power))
}

func (g RotateX) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	theta, err := g.theta.Substitute(calc)
	if err != nil {
		return nil, err
	}
	return NewRotateX(g.qubit, theta), nil
}

func (g RotateX) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	q, err := remapQubit(g.qubit, mapping)
	if err != nil {
		return nil, err
	}
	return NewRotateX(q, g.theta), nil
}

func (g RotateX) AlphaR() calculator.CalculatorFloat { return g.theta.Div(calculator.New(2)).Cos() }
func (g RotateX) AlphaI() calculator.CalculatorFloat { return calculator.New(0) }
func (g RotateX) BetaR() calculator.CalculatorFloat  { return calculator.New(0) }
func (g RotateX) BetaI() calculator.CalculatorFloat {
	return g.theta.Div(calculator.New(2)).Sin().Neg()
}
func (g RotateX) GlobalPhase() calculator.CalculatorFloat { return calculator.New(0) }

func (g RotateX) UnitaryMatrix() (*mat.CDense, error) { return singleQubitUnitary(g) }

func (g RotateX) String() string {
	return fmt.Sprintf("RotateX { qubit: %d, theta: %s }", g.qubit, g.theta)
}

// RotateY rotates a single qubit around the y axis of the Bloch sphere.
type RotateY struct {
	qubit int
	theta calculator.CalculatorFloat
}

// NewRotateY returns a y rotation by theta on qubit.
func NewRotateY(qubit int, theta calculator.CalculatorFloat) RotateY {
	return RotateY{qubit: qubit, theta: theta}
}

var tagsRotateY = []string{"Operation", "GateOperation", "SingleQubitGateOperation", "Rotation", "RotateY"}

func (g RotateY) Tags() []string                 { return tagsRotateY }
func (g RotateY) HQSLang() string                { return "RotateY" }
func (g RotateY) Qubit() int                     { return g.qubit }
func (g RotateY) InvolvedQubits() InvolvedQubits { return QubitSet(g.qubit) }
func (g RotateY) IsParametrized() bool           { return !g.theta.IsFloat() }
func (g RotateY) Theta() calculator.CalculatorFloat {
	return g.theta
}

func (g RotateY) PowerCF(power calculator.CalculatorFloat) Operation {
	return NewRotateY(g.qubit, g.theta.Mul(power))
}

func (g RotateY) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	theta, err := g.theta.Substitute(calc)
	if err != nil {
		return nil, err
	}
	return NewRotateY(g.qubit, theta), nil
}

func (g RotateY) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	q, err := remapQubit(g.qubit, mapping)
	if err != nil {
		return nil, err
	}
	return NewRotateY(q, g.theta), nil
}

func (g RotateY) AlphaR() calculator.CalculatorFloat { return g.theta.Div(calculator.New(2)).Cos() }
func (g RotateY) AlphaI() calculator.CalculatorFloat { return calculator.New(0) }
func (g RotateY) BetaR() calculator.CalculatorFloat  { return g.theta.Div(calculator.New(2)).Sin() }
func (g RotateY) BetaI() calculator.CalculatorFloat  { return calculator.New(0) }
func (g RotateY) GlobalPhase() calculator.CalculatorFloat {
	return calculator.New(0)
}

func (g RotateY) UnitaryMatrix() (*mat.CDense, error) { return singleQubitUnitary(g) }

func (g RotateY) String() string {
	return fmt.Sprintf("RotateY { qubit: %d, theta: %s }", g.qubit, g.theta)
}

// PauliX is the bit-flip gate.
type PauliX struct {
	qubit int
}

// NewPauliX returns the Pauli X gate on qubit.
func NewPauliX(qubit int) PauliX {
	return PauliX{qubit: qubit}
}

var tagsPauliX = []string{"Operation", "GateOperation", "SingleQubitGateOperation", "PauliX"}

func (g PauliX) Tags() []string                 { return tagsPauliX }
func (g PauliX) HQSLang() string                { return "PauliX" }
func (g PauliX) Qubit() int                     { return g.qubit }
func (g PauliX) InvolvedQubits() InvolvedQubits { return QubitSet(g.qubit) }
func (g PauliX) IsParametrized() bool           { return false }

func (g PauliX) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return g, nil
}

func (g PauliX) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	q, err := remapQubit(g.qubit, mapping)
	if err != nil {
		return nil, err
	}
	return NewPauliX(q), nil
}

func (g PauliX) AlphaR() calculator.CalculatorFloat      { return calculator.New(0) }
func (g PauliX) AlphaI() calculator.CalculatorFloat      { return calculator.New(0) }
func (g PauliX) BetaR() calculator.CalculatorFloat       { return calculator.New(0) }
func (g PauliX) BetaI() calculator.CalculatorFloat       { return calculator.New(-1) }
func (g PauliX) GlobalPhase() calculator.CalculatorFloat { return calculator.New(math.Pi / 2) }

func (g PauliX) UnitaryMatrix() (*mat.CDense, error) { return singleQubitUnitary(g) }

func (g PauliX) String() string { return fmt.Sprintf("PauliX { qubit: %d }", g.qubit) }

// PauliY is the bit- and phase-flip gate.
type PauliY struct {
	qubit int
}

// NewPauliY returns the Pauli Y gate on qubit.
func NewPauliY(qubit int) PauliY {
	return PauliY{qubit: qubit}
}

var tagsPauliY = []string{"Operation", "GateOperation", "SingleQubitGateOperation", "PauliY"}

func (g PauliY) Tags() []string                 { return tagsPauliY }
func (g PauliY) HQSLang() string                { return "PauliY" }
func (g PauliY) Qubit() int                     { return g.qubit }
func (g PauliY) InvolvedQubits() InvolvedQubits { return QubitSet(g.qubit) }
func (g PauliY) IsParametrized() bool           { return false }

func (g PauliY) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return g, nil
}

func (g PauliY) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	q, err := remapQubit(g.qubit, mapping)
	if err != nil {
		return nil, err
	}
	return NewPauliY(q), nil
}

func (g PauliY) AlphaR() calculator.CalculatorFloat      { return calculator.New(0) }
func (g PauliY) AlphaI() calculator.CalculatorFloat      { return calculator.New(0) }
func (g PauliY) BetaR() calculator.CalculatorFloat       { return calculator.New(1) }
func (g PauliY) BetaI() calculator.CalculatorFloat       { return calculator.New(0) }
func (g PauliY) GlobalPhase() calculator.CalculatorFloat { return calculator.New(math.Pi / 2) }

func (g PauliY) UnitaryMatrix() (*mat.CDense, error) { return singleQubitUnitary(g) }

func (g PauliY) String() string { return fmt.Sprintf("PauliY { qubit: %d }", g.qubit) }

// PauliZ is the phase-flip gate.
type PauliZ struct {
	qubit int
}

// NewPauliZ returns the Pauli Z gate on qubit.
func NewPauliZ(qubit int) PauliZ {
	return PauliZ{qubit: qubit}
}

var tagsPauliZ = []string{"Operation", "GateOperation", "SingleQubitGateOperation", "PauliZ"}

func (g PauliZ) Tags() []string                 { return tagsPauliZ }
func (g PauliZ) HQSLang() string                { return "PauliZ" }
func (g PauliZ) Qubit() int                     { return g.qubit }
func (g PauliZ) InvolvedQubits() InvolvedQubits { return QubitSet(g.qubit) }
func (g PauliZ) IsParametrized() bool           { return false }

func (g PauliZ) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return g, nil
}

func (g PauliZ) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	q, err := remapQubit(g.qubit, mapping)
	if err != nil {
		return nil, err
	}
	return NewPauliZ(q), nil
}

func (g PauliZ) AlphaR() calculator.CalculatorFloat      { return calculator.New(0) }
func (g PauliZ) AlphaI() calculator.CalculatorFloat      { return calculator.New(-1) }
func (g PauliZ) BetaR() calculator.CalculatorFloat       { return calculator.New(0) }
func (g PauliZ) BetaI() calculator.CalculatorFloat       { return calculator.New(0) }
func (g PauliZ) GlobalPhase() calculator.CalculatorFloat { return calculator.New(math.Pi / 2) }

func (g PauliZ) UnitaryMatrix() (*mat.CDense, error) { return singleQubitUnitary(g) }

func (g PauliZ) String() string { return fmt.Sprintf("PauliZ { qubit: %d }", g.qubit) }

// SqrtPauliX is the square root of the Pauli X gate.
type SqrtPauliX struct {
	qubit int
}

// NewSqrtPauliX returns the square root of Pauli X on qubit.
func NewSqrtPauliX(qubit int) SqrtPauliX {
	return SqrtPauliX{qubit: qubit}
}

var tagsSqrtPauliX = []string{"Operation", "GateOperation", "SingleQubitGateOperation", "SqrtPauliX"}

func (g SqrtPauliX) Tags() []string                 { return tagsSqrtPauliX }
func (g SqrtPauliX) HQSLang() string                { return "SqrtPauliX" }
func (g SqrtPauliX) Qubit() int                     { return g.qubit }
func (g SqrtPauliX) InvolvedQubits() InvolvedQubits { return QubitSet(g.qubit) }
func (g SqrtPauliX) IsParametrized() bool           { return false }

func (g SqrtPauliX) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return g, nil
}

func (g SqrtPauliX) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	q, err := remapQubit(g.qubit, mapping)
	if err != nil {
		return nil, err
	}
	return NewSqrtPauliX(q), nil
}

func (g SqrtPauliX) AlphaR() calculator.CalculatorFloat { return calculator.New(math.Cos(math.Pi / 4)) }
func (g SqrtPauliX) AlphaI() calculator.CalculatorFloat { return calculator.New(0) }
func (g SqrtPauliX) BetaR() calculator.CalculatorFloat  { return calculator.New(0) }
func (g SqrtPauliX) BetaI() calculator.CalculatorFloat {
	return calculator.New(-math.Sin(math.Pi / 4))
}
func (g SqrtPauliX) GlobalPhase() calculator.CalculatorFloat { return calculator.New(0) }

func (g SqrtPauliX) UnitaryMatrix() (*mat.CDense, error) { return singleQubitUnitary(g) }

func (g SqrtPauliX) String() string { return fmt.Sprintf("SqrtPauliX { qubit: %d }", g.qubit) }

// InvSqrtPauliX is the inverse square root of the Pauli X gate.
type InvSqrtPauliX struct {
	qubit int
}

// NewInvSqrtPauliX returns the inverse square root of Pauli X on qubit.
func NewInvSqrtPauliX(qubit int) InvSqrtPauliX {
	return InvSqrtPauliX{qubit: qubit}
}

var tagsInvSqrtPauliX = []string{"Operation", "GateOperation", "SingleQubitGateOperation", "InvSqrtPauliX"}

func (g InvSqrtPauliX) Tags() []string                 { return tagsInvSqrtPauliX }
func (g InvSqrtPauliX) HQSLang() string                { return "InvSqrtPauliX" }
func (g InvSqrtPauliX) Qubit() int                     { return g.qubit }
func (g InvSqrtPauliX) InvolvedQubits() InvolvedQubits { return QubitSet(g.qubit) }
func (g InvSqrtPauliX) IsParametrized() bool           { return false }

func (g InvSqrtPauliX) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return g, nil
}

func (g InvSqrtPauliX) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	q, err := remapQubit(g.qubit, mapping)
	if err != nil {
		return nil, err
	}
	return NewInvSqrtPauliX(q), nil
}

func (g InvSqrtPauliX) AlphaR() calculator.CalculatorFloat {
	return calculator.New(math.Cos(math.Pi / 4))
}
func (g InvSqrtPauliX) AlphaI() calculator.CalculatorFloat { return calculator.New(0) }
func (g InvSqrtPauliX) BetaR() calculator.CalculatorFloat  { return calculator.New(0) }
func (g InvSqrtPauliX) BetaI() calculator.CalculatorFloat {
	return calculator.New(math.Sin(math.Pi / 4))
}
func (g InvSqrtPauliX) GlobalPhase() calculator.CalculatorFloat { return calculator.New(0) }

func (g InvSqrtPauliX) UnitaryMatrix() (*mat.CDense, error) { return singleQubitUnitary(g) }

func (g InvSqrtPauliX) String() string { return fmt.Sprintf("InvSqrtPauliX { qubit: %d }", g.qubit) }

// Hadamard maps the computational basis onto the superposition basis.
type Hadamard struct {
	qubit int
}

// NewHadamard returns the Hadamard gate on qubit.
func NewHadamard(qubit int) Hadamard {
	return Hadamard{qubit: qubit}
}

var tagsHadamard = []string{"Operation", "GateOperation", "SingleQubitGateOperation", "Hadamard"}

func (g Hadamard) Tags() []string                 { return tagsHadamard }
func (g Hadamard) HQSLang() string                { return "Hadamard" }
func (g Hadamard) Qubit() int                     { return g.qubit }
func (g Hadamard) InvolvedQubits() InvolvedQubits { return QubitSet(g.qubit) }
func (g Hadamard) IsParametrized() bool           { return false }

func (g Hadamard) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return g, nil
}

func (g Hadamard) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	q, err := remapQubit(g.qubit, mapping)
	if err != nil {
		return nil, err
	}
	return NewHadamard(q), nil
}

func (g Hadamard) AlphaR() calculator.CalculatorFloat { return calculator.New(0) }
func (g Hadamard) AlphaI() calculator.CalculatorFloat {
	return calculator.New(-1.0 / math.Sqrt2)
}
func (g Hadamard) BetaR() calculator.CalculatorFloat { return calculator.New(0) }
func (g Hadamard) BetaI() calculator.CalculatorFloat {
	return calculator.New(-1.0 / math.Sqrt2)
}
func (g Hadamard) GlobalPhase() calculator.CalculatorFloat { return calculator.New(math.Pi / 2) }

func (g Hadamard) UnitaryMatrix() (*mat.CDense, error) { return singleQubitUnitary(g) }

func (g Hadamard) String() string { return fmt.Sprintf("Hadamard { qubit: %d }", g.qubit) }

// SGate is the phase gate diag(1, i).
type SGate struct {
	qubit int
}

// NewSGate returns the S gate on qubit.
func NewSGate(qubit int) SGate {
	return SGate{qubit: qubit}
}

var tagsSGate = []string{"Operation", "GateOperation", "SingleQubitGateOperation", "SGate"}

func (g SGate) Tags() []string                 { return tagsSGate }
func (g SGate) HQSLang() string                { return "SGate" }
func (g SGate) Qubit() int                     { return g.qubit }
func (g SGate) InvolvedQubits() InvolvedQubits { return QubitSet(g.qubit) }
func (g SGate) IsParametrized() bool           { return false }

func (g SGate) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return g, nil
}

func (g SGate) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	q, err := remapQubit(g.qubit, mapping)
	if err != nil {
		return nil, err
	}
	return NewSGate(q), nil
}

func (g SGate) AlphaR() calculator.CalculatorFloat      { return calculator.New(1.0 / math.Sqrt2) }
func (g SGate) AlphaI() calculator.CalculatorFloat      { return calculator.New(-1.0 / math.Sqrt2) }
func (g SGate) BetaR() calculator.CalculatorFloat       { return calculator.New(0) }
func (g SGate) BetaI() calculator.CalculatorFloat       { return calculator.New(0) }
func (g SGate) GlobalPhase() calculator.CalculatorFloat { return calculator.New(math.Pi / 4) }

func (g SGate) UnitaryMatrix() (*mat.CDense, error) { return singleQubitUnitary(g) }

func (g SGate) String() string { return fmt.Sprintf("SGate { qubit: %d }", g.qubit) }

// TGate is the phase gate diag(1, exp(i*pi/4)).
type TGate struct {
	qubit int
}

// NewTGate returns the T gate on qubit.
func NewTGate(qubit int) TGate {
	return TGate{qubit: qubit}
}

var tagsTGate = []string{"Operation", "GateOperation", "SingleQubitGateOperation", "TGate"}

func (g TGate) Tags() []string                 { return tagsTGate }
func (g TGate) HQSLang() string                { return "TGate" }
func (g TGate) Qubit() int                     { return g.qubit }
func (g TGate) InvolvedQubits() InvolvedQubits { return QubitSet(g.qubit) }
func (g TGate) IsParametrized() bool           { return false }

func (g TGate) SubstituteParameters(*calculator.Calculator) (Operation, error) {
	return g, nil
}

func (g TGate) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	q, err := remapQubit(g.qubit, mapping)
	if err != nil {
		return nil, err
	}
	return NewTGate(q), nil
}

func (g TGate) AlphaR() calculator.CalculatorFloat { return calculator.New(math.Cos(math.Pi / 8)) }
func (g TGate) AlphaI() calculator.CalculatorFloat {
	return calculator.New(-math.Sin(math.Pi / 8))
}
func (g TGate) BetaR() calculator.CalculatorFloat       { return calculator.New(0) }
func (g TGate) BetaI() calculator.CalculatorFloat       { return calculator.New(0) }
func (g TGate) GlobalPhase() calculator.CalculatorFloat { return calculator.New(math.Pi / 8) }

func (g TGate) UnitaryMatrix() (*mat.CDense, error) { return singleQubitUnitary(g) }

func (g TGate) String() string { return fmt.Sprintf("TGate { qubit: %d }", g.qubit) }

// PhaseShiftState1 applies a phase to the |1> state: diag(1, exp(i*theta)).
type PhaseShiftState1 struct {
	qubit int
	theta calculator.CalculatorFloat
}

// NewPhaseShiftState1 returns a phase shift of theta on the |1> state of
// qubit.
func NewPhaseShiftState1(qubit int, theta calculator.CalculatorFloat) PhaseShiftState1 {
	return PhaseShiftState1{qubit: qubit, theta: theta}
}

var tagsPhaseShiftState1 = []string{"Operation", "GateOperation", "SingleQubitGateOperation", "Rotation", "PhaseShiftState1"}

func (g PhaseShiftState1) Tags() []string                 { return tagsPhaseShiftState1 }
func (g PhaseShiftState1) HQSLang() string                { return "PhaseShiftState1" }
func (g PhaseShiftState1) Qubit() int                     { return g.qubit }
func (g PhaseShiftState1) InvolvedQubits() InvolvedQubits { return QubitSet(g.qubit) }
func (g PhaseShiftState1) IsParametrized() bool           { return !g.theta.IsFloat() }
func (g PhaseShiftState1) Theta() calculator.CalculatorFloat {
	return g.theta
}

func (g PhaseShiftState1) PowerCF(power calculator.CalculatorFloat) Operation {
	return NewPhaseShiftState1(g.qubit, g.theta.Mul(power))
}

func (g PhaseShiftState1) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	theta, err := g.theta.Substitute(calc)
	if err != nil {
		return nil, err
	}
	return NewPhaseShiftState1(g.qubit, theta), nil
}

func (g PhaseShiftState1) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	q, err := remapQubit(g.qubit, mapping)
	if err != nil {
		return nil, err
	}
	return NewPhaseShiftState1(q, g.theta), nil
}

func (g PhaseShiftState1) AlphaR() calculator.CalculatorFloat {
	return g.theta.Div(calculator.New(2)).Cos()
}
func (g PhaseShiftState1) AlphaI() calculator.CalculatorFloat {
	return g.theta.Div(calculator.New(2)).Sin().Neg()
}
func (g PhaseShiftState1) BetaR() calculator.CalculatorFloat { return calculator.New(0) }
func (g PhaseShiftState1) BetaI() calculator.CalculatorFloat { return calculator.New(0) }
func (g PhaseShiftState1) GlobalPhase() calculator.CalculatorFloat {
	return g.theta.Div(calculator.New(2))
}

func (g PhaseShiftState1) UnitaryMatrix() (*mat.CDense, error) { return singleQubitUnitary(g) }

func (g PhaseShiftState1) String() string {
	return fmt.Sprintf("PhaseShiftState1 { qubit: %d, theta: %s }", g.qubit, g.theta)
}

// PhaseShiftState0 applies a phase to the |0> state: diag(exp(i*theta), 1).
type PhaseShiftState0 struct {
	qubit int
	theta calculator.CalculatorFloat
}

// NewPhaseShiftState0 returns a phase shift of theta on the |0> state of
// qubit.
func NewPhaseShiftState0(qubit int, theta calculator.CalculatorFloat) PhaseShiftState0 {
	return PhaseShiftState0{qubit: qubit, theta: theta}
}

var tagsPhaseShiftState0 = []string{"Operation", "GateOperation", "SingleQubitGateOperation", "Rotation", "PhaseShiftState0"}

func (g PhaseShiftState0) Tags() []string                 { return tagsPhaseShiftState0 }
func (g PhaseShiftState0) HQSLang() string                { return "PhaseShiftState0" }
func (g PhaseShiftState0) Qubit() int                     { return g.qubit }
func (g PhaseShiftState0) InvolvedQubits() InvolvedQubits { return QubitSet(g.qubit) }
func (g PhaseShiftState0) IsParametrized() bool           { return !g.theta.IsFloat() }
func (g PhaseShiftState0) Theta() calculator.CalculatorFloat {
	return g.theta
}

func (g PhaseShiftState0) PowerCF(power calculator.CalculatorFloat) Operation {
	return NewPhaseShiftState0(g.qubit, g.theta.Mul(power))
}

func (g PhaseShiftState0) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	theta, err := g.theta.Substitute(calc)
	if err != nil {
		return nil, err
	}
	return NewPhaseShiftState0(g.qubit, theta), nil
}

func (g PhaseShiftState0) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	q, err := remapQubit(g.qubit, mapping)
	if err != nil {
		return nil, err
	}
	return NewPhaseShiftState0(q, g.theta), nil
}

func (g PhaseShiftState0) AlphaR() calculator.CalculatorFloat {
	return g.theta.Div(calculator.New(2)).Cos()
}
func (g PhaseShiftState0) AlphaI() calculator.CalculatorFloat {
	return g.theta.Div(calculator.New(2)).Sin()
}
func (g PhaseShiftState0) BetaR() calculator.CalculatorFloat { return calculator.New(0) }
func (g PhaseShiftState0) BetaI() calculator.CalculatorFloat { return calculator.New(0) }
func (g PhaseShiftState0) GlobalPhase() calculator.CalculatorFloat {
	return g.theta.Div(calculator.New(2))
}

func (g PhaseShiftState0) UnitaryMatrix() (*mat.CDense, error) { return singleQubitUnitary(g) }

func (g PhaseShiftState0) String() string {
	return fmt.Sprintf("PhaseShiftState0 { qubit: %d, theta: %s }", g.qubit, g.theta)
}

// RotateAroundSphericalAxis rotates a single qubit around an axis given in
// spherical coordinates.
type RotateAroundSphericalAxis struct {
	qubit          int
	theta          calculator.CalculatorFloat
	sphericalTheta calculator.CalculatorFloat
	sphericalPhi   calculator.CalculatorFloat
}

// NewRotateAroundSphericalAxis returns a rotation of theta around the axis
// (sphericalTheta, sphericalPhi) on qubit.
func NewRotateAroundSphericalAxis(qubit int, theta, sphericalTheta, sphericalPhi calculator.CalculatorFloat) RotateAroundSphericalAxis {
	return RotateAroundSphericalAxis{qubit: qubit, theta: theta, sphericalTheta: sphericalTheta, sphericalPhi: sphericalPhi}
}

var tagsRotateAroundSphericalAxis = []string{"Operation", "GateOperation", "SingleQubitGateOperation", "Rotation", "RotateAroundSphericalAxis"}

func (g RotateAroundSphericalAxis) Tags() []string                 { return tagsRotateAroundSphericalAxis }
func (g RotateAroundSphericalAxis) HQSLang() string                { return "RotateAroundSphericalAxis" }
func (g RotateAroundSphericalAxis) Qubit() int                     { return g.qubit }
func (g RotateAroundSphericalAxis) InvolvedQubits() InvolvedQubits { return QubitSet(g.qubit) }
func (g RotateAroundSphericalAxis) IsParametrized() bool {
	return !(g.theta.IsFloat() && g.sphericalTheta.IsFloat() && g.sphericalPhi.IsFloat())
}

// SphericalTheta returns the polar angle of the rotation axis.
func (g RotateAroundSphericalAxis) SphericalTheta() calculator.CalculatorFloat {
	return g.sphericalTheta
}

// SphericalPhi returns the azimuthal angle of the rotation axis.
func (g RotateAroundSphericalAxis) SphericalPhi() calculator.CalculatorFloat {
	return g.sphericalPhi
}

func (g RotateAroundSphericalAxis) Theta() calculator.CalculatorFloat { return g.theta }

func (g RotateAroundSphericalAxis) PowerCF(power calculator.CalculatorFloat) Operation {
	return NewRotateAroundSphericalAxis(g.qubit, g.theta.Mul(power), g.sphericalTheta, g.sphericalPhi)
}

func (g RotateAroundSphericalAxis) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	theta, err := g.theta.Substitute(calc)
	if err != nil {
		return nil, err
	}
	st, err := g.sphericalTheta.Substitute(calc)
	if err != nil {
		return nil, err
	}
	sp, err := g.sphericalPhi.Substitute(calc)
	if err != nil {
		return nil, err
	}
	return NewRotateAroundSphericalAxis(g.qubit, theta, st, sp), nil
}

func (g RotateAroundSphericalAxis) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	q, err := remapQubit(g.qubit, mapping)
	if err != nil {
		return nil, err
	}
	return NewRotateAroundSphericalAxis(q, g.theta, g.sphericalTheta, g.sphericalPhi), nil
}

func (g RotateAroundSphericalAxis) AlphaR() calculator.CalculatorFloat {
	return g.theta.Div(calculator.New(2)).Cos()
}

func (g RotateAroundSphericalAxis) AlphaI() calculator.CalculatorFloat {
	s := g.theta.Div(calculator.New(2)).Sin()
	return s.Mul(g.sphericalTheta.Cos()).Neg()
}

func (g RotateAroundSphericalAxis) BetaR() calculator.CalculatorFloat {
	s := g.theta.Div(calculator.New(2)).Sin()
	return s.Mul(g.sphericalPhi.Sin()).Mul(g.sphericalTheta.Sin())
}

func (g RotateAroundSphericalAxis) BetaI() calculator.CalculatorFloat {
	s := g.theta.Div(calculator.New(2)).Sin()
	return s.Mul(g.sphericalPhi.Cos()).Mul(g.sphericalTheta.Sin()).Neg()
}

func (g RotateAroundSphericalAxis) GlobalPhase() calculator.CalculatorFloat {
	return calculator.New(0)
}

func (g RotateAroundSphericalAxis) UnitaryMatrix() (*mat.CDense, error) {
	return singleQubitUnitary(g)
}

func (g RotateAroundSphericalAxis) String() string {
	return fmt.Sprintf("RotateAroundSphericalAxis { qubit: %d, theta: %s, spherical_theta: %s, spherical_phi: %s }",
		g.qubit, g.theta, g.sphericalTheta, g.sphericalPhi)
}

// RotateXY rotates a single qubit around an axis in the xy plane.
type RotateXY struct {
	qubit int
	theta calculator.CalculatorFloat
	phi   calculator.CalculatorFloat
}

// NewRotateXY returns a rotation of theta around the xy-plane axis at angle
// phi on qubit.
func NewRotateXY(qubit int, theta, phi calculator.CalculatorFloat) RotateXY {
	return RotateXY{qubit: qubit, theta: theta, phi: phi}
}

var tagsRotateXY = []string{"Operation", "GateOperation", "SingleQubitGateOperation", "Rotation", "RotateXY"}

func (g RotateXY) Tags() []string                 { return tagsRotateXY }
func (g RotateXY) HQSLang() string                { return "RotateXY" }
func (g RotateXY) Qubit() int                     { return g.qubit }
func (g RotateXY) InvolvedQubits() InvolvedQubits { return QubitSet(g.qubit) }
func (g RotateXY) IsParametrized() bool {
	return !(g.theta.IsFloat() && g.phi.IsFloat())
}

// Phi returns the axis angle in the xy plane.
func (g RotateXY) Phi() calculator.CalculatorFloat { return g.phi }

func (g RotateXY) Theta() calculator.CalculatorFloat { return g.theta }

func (g RotateXY) PowerCF(power calculator.CalculatorFloat) Operation {
	return NewRotateXY(g.qubit, g.theta.Mul(power), g.phi)
}

func (g RotateXY) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	theta, err := g.theta.Substitute(calc)
	if err != nil {
		return nil, err
	}
	phi, err := g.phi.Substitute(calc)
	if err != nil {
		return nil, err
	}
	return NewRotateXY(g.qubit, theta, phi), nil
}

func (g RotateXY) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	q, err := remapQubit(g.qubit, mapping)
	if err != nil {
		return nil, err
	}
	return NewRotateXY(q, g.theta, g.phi), nil
}

func (g RotateXY) AlphaR() calculator.CalculatorFloat {
	return g.theta.Div(calculator.New(2)).Cos()
}
func (g RotateXY) AlphaI() calculator.CalculatorFloat { return calculator.New(0) }
func (g RotateXY) BetaR() calculator.CalculatorFloat {
	return g.theta.Div(calculator.New(2)).Sin().Mul(g.phi.Sin())
}
func (g RotateXY) BetaI() calculator.CalculatorFloat {
	return g.theta.Div(calculator.New(2)).Sin().Mul(g.phi.Cos()).Neg()
}
func (g RotateXY) GlobalPhase() calculator.CalculatorFloat { return calculator.New(0) }

func (g RotateXY) UnitaryMatrix() (*mat.CDense, error) { return singleQubitUnitary(g) }

func (g RotateXY) String() string {
	return fmt.Sprintf("RotateXY { qubit: %d, theta: %s, phi: %s }", g.qubit, g.theta, g.phi)
}
