package operations

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"qopalg/calculator"
	"qopalg/internal/linalg"
)

// PragmaDamping applies amplitude damping to one qubit, the zero temperature
// relaxation channel with T1 = 1/rate.
type PragmaDamping struct {
	qubit    int
	gateTime calculator.CalculatorFloat
	rate     calculator.CalculatorFloat
}

// NewPragmaDamping returns the damping pragma acting for gateTime seconds at
// the given rate in 1/second.
func NewPragmaDamping(qubit int, gateTime, rate calculator.CalculatorFloat) PragmaDamping {
	return PragmaDamping{qubit: qubit, gateTime: gateTime, rate: rate}
}

var tagsPragmaDamping = []string{
	"Operation", "SingleQubitOperation", "PragmaOperation",
	"PragmaNoiseOperation", "PragmaNoiseProbaOperation", "PragmaDamping",
}

func (p PragmaDamping) Tags() []string                        { return tagsPragmaDamping }
func (p PragmaDamping) HQSLang() string                       { return "PragmaDamping" }
func (p PragmaDamping) Qubit() int                            { return p.qubit }
func (p PragmaDamping) InvolvedQubits() InvolvedQubits        { return QubitSet(p.qubit) }
func (p PragmaDamping) GateTime() calculator.CalculatorFloat  { return p.gateTime }
func (p PragmaDamping) Rate() calculator.CalculatorFloat      { return p.rate }
func (p PragmaDamping) pragma()                               {}

func (p PragmaDamping) IsParametrized() bool {
	return !p.gateTime.IsFloat() || !p.rate.IsFloat()
}

func (p PragmaDamping) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	gateTime, err := p.gateTime.Substitute(calc)
	if err != nil {
		return nil, err
	}
	rate, err := p.rate.Substitute(calc)
	if err != nil {
		return nil, err
	}
	return NewPragmaDamping(p.qubit, gateTime, rate), nil
}

func (p PragmaDamping) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	q, err := remapQubit(p.qubit, mapping)
	if err != nil {
		return nil, err
	}
	return NewPragmaDamping(q, p.gateTime, p.rate), nil
}

// Superoperator returns the damping channel acting on the vectorized density
// matrix (row-major, basis |00>, |01>, |10>, |11>).
func (p PragmaDamping) Superoperator() (*mat.Dense, error) {
	gt, err := p.gateTime.Float()
	if err != nil {
		return nil, err
	}
	rate, err := p.rate.Float()
	if err != nil {
		return nil, err
	}
	t1 := math.Exp(-gt * rate)
	t2 := math.Exp(-gt * rate * 0.5)
	return mat.NewDense(4, 4, []float64{
		1, 0, 0, 1 - t1,
		0, t2, 0, 0,
		0, 0, t2, 0,
		0, 0, 0, t1,
	}), nil
}

// Probability returns the chance 1 - exp(-gate_time * rate) of the damping
// affecting the qubit.
func (p PragmaDamping) Probability() calculator.CalculatorFloat {
	return p.gateTime.Mul(p.rate).Neg().Exp().Neg().Add(calculator.New(1))
}

// PowerCF rescales the gate time by power.
func (p PragmaDamping) PowerCF(power calculator.CalculatorFloat) Operation {
	return NewPragmaDamping(p.qubit, p.gateTime.Mul(power), p.rate)
}

func (p PragmaDamping) String() string {
	return fmt.Sprintf("PragmaDamping { qubit: %d, gate_time: %s, rate: %s }", p.qubit, p.gateTime, p.rate)
}

// PragmaDepolarising applies depolarising noise to one qubit, the infinite
// temperature relaxation channel.
type PragmaDepolarising struct {
	qubit    int
	gateTime calculator.CalculatorFloat
	rate     calculator.CalculatorFloat
}

// NewPragmaDepolarising returns the depolarising pragma acting for gateTime
// seconds at the given rate in 1/second.
func NewPragmaDepolarising(qubit int, gateTime, rate calculator.CalculatorFloat) PragmaDepolarising {
	return PragmaDepolarising{qubit: qubit, gateTime: gateTime, rate: rate}
}

var tagsPragmaDepolarising = []string{
	"Operation", "SingleQubitOperation", "PragmaOperation",
	"PragmaNoiseOperation", "PragmaNoiseProbaOperation", "PragmaDepolarising",
}

func (p PragmaDepolarising) Tags() []string                       { return tagsPragmaDepolarising }
func (p PragmaDepolarising) HQSLang() string                      { return "PragmaDepolarising" }
func (p PragmaDepolarising) Qubit() int                           { return p.qubit }
func (p PragmaDepolarising) InvolvedQubits() InvolvedQubits       { return QubitSet(p.qubit) }
func (p PragmaDepolarising) GateTime() calculator.CalculatorFloat { return p.gateTime }
func (p PragmaDepolarising) Rate() calculator.CalculatorFloat     { return p.rate }
func (p PragmaDepolarising) pragma()                              {}

func (p PragmaDepolarising) IsParametrized() bool {
	return !p.gateTime.IsFloat() || !p.rate.IsFloat()
}

func (p PragmaDepolarising) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	gateTime, err := p.gateTime.Substitute(calc)
	if err != nil {
		return nil, err
	}
	rate, err := p.rate.Substitute(calc)
	if err != nil {
		return nil, err
	}
	return NewPragmaDepolarising(p.qubit, gateTime, rate), nil
}

func (p PragmaDepolarising) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	q, err := remapQubit(p.qubit, mapping)
	if err != nil {
		return nil, err
	}
	return NewPragmaDepolarising(q, p.gateTime, p.rate), nil
}

func (p PragmaDepolarising) Superoperator() (*mat.Dense, error) {
	gt, err := p.gateTime.Float()
	if err != nil {
		return nil, err
	}
	rate, err := p.rate.Float()
	if err != nil {
		return nil, err
	}
	t1 := math.Exp(-gt * rate)
	t2 := math.Exp(-gt * rate)
	return mat.NewDense(4, 4, []float64{
		0.5 + 0.5*t1, 0, 0, 0.5 - 0.5*t1,
		0, t2, 0, 0,
		0, 0, t2, 0,
		0.5 - 0.5*t1, 0, 0, 0.5 + 0.5*t1,
	}), nil
}

// Probability returns the chance 3/4 * (1 - exp(-gate_time * rate)) of the
// depolarisation affecting the qubit.
func (p PragmaDepolarising) Probability() calculator.CalculatorFloat {
	return p.gateTime.Mul(p.rate).Neg().Exp().Neg().Add(calculator.New(1)).Mul(calculator.New(0.75))
}

// PowerCF rescales the gate time by power.
func (p PragmaDepolarising) PowerCF(power calculator.CalculatorFloat) Operation {
	return NewPragmaDepolarising(p.qubit, p.gateTime.Mul(power), p.rate)
}

func (p PragmaDepolarising) String() string {
	return fmt.Sprintf("PragmaDepolarising { qubit: %d, gate_time: %s, rate: %s }", p.qubit, p.gateTime, p.rate)
}

// PragmaDephasing applies pure dephasing to one qubit.
type PragmaDephasing struct {
	qubit    int
	gateTime calculator.CalculatorFloat
	rate     calculator.CalculatorFloat
}

// NewPragmaDephasing returns the dephasing pragma acting for gateTime
// seconds at the given rate in 1/second.
func NewPragmaDephasing(qubit int, gateTime, rate calculator.CalculatorFloat) PragmaDephasing {
	return PragmaDephasing{qubit: qubit, gateTime: gateTime, rate: rate}
}

var tagsPragmaDephasing = []string{
	"Operation", "SingleQubitOperation", "PragmaOperation",
	"PragmaNoiseOperation", "PragmaNoiseProbaOperation", "PragmaDephasing",
}

func (p PragmaDephasing) Tags() []string                       { return tagsPragmaDephasing }
func (p PragmaDephasing) HQSLang() string                      { return "PragmaDephasing" }
func (p PragmaDephasing) Qubit() int                           { return p.qubit }
func (p PragmaDephasing) InvolvedQubits() InvolvedQubits       { return QubitSet(p.qubit) }
func (p PragmaDephasing) GateTime() calculator.CalculatorFloat { return p.gateTime }
func (p PragmaDephasing) Rate() calculator.CalculatorFloat     { return p.rate }
func (p PragmaDephasing) pragma()                              {}

func (p PragmaDephasing) IsParametrized() bool {
	return !p.gateTime.IsFloat() || !p.rate.IsFloat()
}

func (p PragmaDephasing) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	gateTime, err := p.gateTime.Substitute(calc)
	if err != nil {
		return nil, err
	}
	rate, err := p.rate.Substitute(calc)
	if err != nil {
		return nil, err
	}
	return NewPragmaDephasing(p.qubit, gateTime, rate), nil
}

func (p PragmaDephasing) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	q, err := remapQubit(p.qubit, mapping)
	if err != nil {
		return nil, err
	}
	return NewPragmaDephasing(q, p.gateTime, p.rate), nil
}

func (p PragmaDephasing) Superoperator() (*mat.Dense, error) {
	gt, err := p.gateTime.Float()
	if err != nil {
		return nil, err
	}
	rate, err := p.rate.Float()
	if err != nil {
		return nil, err
	}
	prob := 0.5 * (1 - math.Exp(-2*gt*rate))
	return mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		0, 1 - 2*prob, 0, 0,
		0, 0, 1 - 2*prob, 0,
		0, 0, 0, 1,
	}), nil
}

// Probability returns the chance 1/2 * (1 - exp(-2 * gate_time * rate)) of
// the dephasing affecting the qubit.
func (p PragmaDephasing) Probability() calculator.CalculatorFloat {
	return p.gateTime.Mul(p.rate).Mul(calculator.New(-2)).Exp().Neg().Add(calculator.New(1)).Mul(calculator.New(0.5))
}

// PowerCF rescales the gate time by power.
func (p PragmaDephasing) PowerCF(power calculator.CalculatorFloat) Operation {
	return NewPragmaDephasing(p.qubit, p.gateTime.Mul(power), p.rate)
}

func (p PragmaDephasing) String() string {
	return fmt.Sprintf("PragmaDephasing { qubit: %d, gate_time: %s, rate: %s }", p.qubit, p.gateTime, p.rate)
}

// PragmaRandomNoise applies a stochastically unravelled combination of
// dephasing and depolarising to one qubit. Averaged over trajectories the
// effective channel is the dephasing channel at the dephasing rate.
type PragmaRandomNoise struct {
	qubit            int
	gateTime         calculator.CalculatorFloat
	depolarisingRate calculator.CalculatorFloat
	dephasingRate    calculator.CalculatorFloat
}

// NewPragmaRandomNoise returns the stochastic noise pragma.
func NewPragmaRandomNoise(qubit int, gateTime, depolarisingRate, dephasingRate calculator.CalculatorFloat) PragmaRandomNoise {
	return PragmaRandomNoise{qubit: qubit, gateTime: gateTime, depolarisingRate: depolarisingRate, dephasingRate: dephasingRate}
}

var tagsPragmaRandomNoise = []string{
	"Operation", "SingleQubitOperation", "PragmaOperation",
	"PragmaNoiseOperation", "PragmaNoiseProbaOperation", "PragmaRandomNoise",
}

func (p PragmaRandomNoise) Tags() []string                                 { return tagsPragmaRandomNoise }
func (p PragmaRandomNoise) HQSLang() string                                { return "PragmaRandomNoise" }
func (p PragmaRandomNoise) Qubit() int                                     { return p.qubit }
func (p PragmaRandomNoise) InvolvedQubits() InvolvedQubits                 { return QubitSet(p.qubit) }
func (p PragmaRandomNoise) GateTime() calculator.CalculatorFloat           { return p.gateTime }
func (p PragmaRandomNoise) DepolarisingRate() calculator.CalculatorFloat   { return p.depolarisingRate }
func (p PragmaRandomNoise) DephasingRate() calculator.CalculatorFloat      { return p.dephasingRate }
func (p PragmaRandomNoise) pragma()                                        {}

func (p PragmaRandomNoise) IsParametrized() bool {
	return !p.gateTime.IsFloat() || !p.depolarisingRate.IsFloat() || !p.dephasingRate.IsFloat()
}

func (p PragmaRandomNoise) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	gateTime, err := p.gateTime.Substitute(calc)
	if err != nil {
		return nil, err
	}
	depol, err := p.depolarisingRate.Substitute(calc)
	if err != nil {
		return nil, err
	}
	deph, err := p.dephasingRate.Substitute(calc)
	if err != nil {
		return nil, err
	}
	return NewPragmaRandomNoise(p.qubit, gateTime, depol, deph), nil
}

func (p PragmaRandomNoise) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	q, err := remapQubit(p.qubit, mapping)
	if err != nil {
		return nil, err
	}
	return NewPragmaRandomNoise(q, p.gateTime, p.depolarisingRate, p.dephasingRate), nil
}

// Superoperator returns the trajectory-averaged channel, which is the
// dephasing superoperator at the dephasing rate.
func (p PragmaRandomNoise) Superoperator() (*mat.Dense, error) {
	gt, err := p.gateTime.Float()
	if err != nil {
		return nil, err
	}
	rate, err := p.dephasingRate.Float()
	if err != nil {
		return nil, err
	}
	prob := 0.5 * (1 - math.Exp(-2*gt*rate))
	return mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		0, 1 - 2*prob, 0, 0,
		0, 0, 1 - 2*prob, 0,
		0, 0, 0, 1,
	}), nil
}

// Probability returns the total rate of trajectory events, summed over the
// three Pauli channels, times the gate time.
func (p PragmaRandomNoise) Probability() calculator.CalculatorFloat {
	quarter := calculator.New(0.25)
	rateX := p.depolarisingRate.Mul(quarter)
	rateY := p.depolarisingRate.Mul(quarter)
	rateZ := p.depolarisingRate.Mul(quarter).Add(p.dephasingRate)
	return rateX.Add(rateY).Add(rateZ).Mul(p.gateTime)
}

// PowerCF rescales the gate time by power.
func (p PragmaRandomNoise) PowerCF(power calculator.CalculatorFloat) Operation {
	return NewPragmaRandomNoise(p.qubit, p.gateTime.Mul(power), p.depolarisingRate, p.dephasingRate)
}

func (p PragmaRandomNoise) String() string {
	return fmt.Sprintf("PragmaRandomNoise { qubit: %d, gate_time: %s, depolarising_rate: %s, dephasing_rate: %s }",
		p.qubit, p.gateTime, p.depolarisingRate, p.dephasingRate)
}

// pgnSuperOp holds the superoperators of the nine Lindblad terms for a
// single qubit in the operator basis 0: sigma+, 1: sigma-, 2: sigmaz.
// pgnSuperOp[i][j] is the generator of the term with jump operators Li, Lj.
var pgnSuperOp = [3][3][16]float64{
	{
		{
			0, 0, 0, 1,
			0, -0.5, 0, 0,
			0, 0, -0.5, 0,
			0, 0, 0, -1,
		},
		{
			0, 0, 0, 0,
			0, 0, 1, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
		},
		{
			0, 0, 0.5, 0,
			-0.5, 0, 0, -1.5,
			0, 0, 0, 0,
			0, 0, -0.5, 0,
		},
	},
	{
		{
			0, 0, 0, 0,
			0, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 0, 0,
		},
		{
			-1, 0, 0, 0,
			0, -0.5, 0, 0,
			0, 0, -0.5, 0,
			1, 0, 0, 0,
		},
		{
			0, 0.5, 0, 0,
			0, 0, 0, 0,
			1.5, 0, 0, 0.5,
			0, -0.5, 0, 0,
		},
	},
	{
		{
			0, 0.5, 0, 0,
			0, 0, 0, 0,
			-0.5, 0, 0, -1.5,
			0, -0.5, 0, 0,
		},
		{
			0, 0, 0.5, 0,
			1.5, 0, 0, 0.5,
			0, 0, 0, 0,
			0, 0, -0.5, 0,
		},
		{
			0, 0, 0, 0,
			0, -2, 0, 0,
			0, 0, -2, 0,
			0, 0, 0, 0,
		},
	},
}

// PragmaGeneralNoise applies the noise term of the single qubit Lindblad
// equation
//
//	d/dt rho = sum_ij M_ij (Li rho Lj' - 1/2 (Lj' Li rho + rho Lj' Li))
//
// with L0 = sigma+, L1 = sigma-, L2 = sigmaz, integrated for gate_time time.
// The rate matrix M is given as a concrete 3x3 matrix.
type PragmaGeneralNoise struct {
	qubit    int
	gateTime calculator.CalculatorFloat
	rates    *mat.Dense
}

// NewPragmaGeneralNoise returns the general Lindblad noise pragma. rates
// must be a 3x3 matrix.
func NewPragmaGeneralNoise(qubit int, gateTime calculator.CalculatorFloat, rates *mat.Dense) PragmaGeneralNoise {
	return PragmaGeneralNoise{qubit: qubit, gateTime: gateTime, rates: rates}
}

var tagsPragmaGeneralNoise = []string{
	"Operation", "SingleQubitOperation", "PragmaOperation",
	"PragmaNoiseOperation", "PragmaGeneralNoise",
}

func (p PragmaGeneralNoise) Tags() []string                       { return tagsPragmaGeneralNoise }
func (p PragmaGeneralNoise) HQSLang() string                      { return "PragmaGeneralNoise" }
func (p PragmaGeneralNoise) Qubit() int                           { return p.qubit }
func (p PragmaGeneralNoise) InvolvedQubits() InvolvedQubits       { return QubitSet(p.qubit) }
func (p PragmaGeneralNoise) GateTime() calculator.CalculatorFloat { return p.gateTime }
func (p PragmaGeneralNoise) Rates() *mat.Dense                    { return p.rates }
func (p PragmaGeneralNoise) pragma()                              {}

func (p PragmaGeneralNoise) IsParametrized() bool { return !p.gateTime.IsFloat() }

func (p PragmaGeneralNoise) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	gateTime, err := p.gateTime.Substitute(calc)
	if err != nil {
		return nil, err
	}
	return NewPragmaGeneralNoise(p.qubit, gateTime, p.rates), nil
}

func (p PragmaGeneralNoise) RemapQubits(mapping map[int]int) (Operation, error) {
	if err := checkValidMapping(mapping); err != nil {
		return nil, err
	}
	q, err := remapQubit(p.qubit, mapping)
	if err != nil {
		return nil, err
	}
	return NewPragmaGeneralNoise(q, p.gateTime, p.rates), nil
}

// Superoperator sums the nine generator terms weighted by gate_time and the
// rate matrix and integrates the Lindblad evolution by exponentiating the
// result.
func (p PragmaGeneralNoise) Superoperator() (*mat.Dense, error) {
	gt, err := p.gateTime.Float()
	if err != nil {
		return nil, err
	}
	generator := mat.NewDense(4, 4, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			w := gt * p.rates.At(i, j)
			for k := 0; k < 16; k++ {
				generator.Set(k/4, k%4, generator.At(k/4, k%4)+w*pgnSuperOp[i][j][k])
			}
		}
	}
	return linalg.Expm(generator), nil
}

// PowerCF rescales the gate time by power.
func (p PragmaGeneralNoise) PowerCF(power calculator.CalculatorFloat) Operation {
	return NewPragmaGeneralNoise(p.qubit, p.gateTime.Mul(power), p.rates)
}

func (p PragmaGeneralNoise) String() string {
	return fmt.Sprintf("PragmaGeneralNoise { qubit: %d, gate_time: %s, rates: %v }",
		p.qubit, p.gateTime, mat.Formatted(p.rates, mat.FormatMATLAB()))
}
