package main

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"qopalg/calculator"
	"qopalg/operations"
)

// catalogEntry is a single operation variant in the browser. build returns a
// representative instance used to render the detail pane.
type catalogEntry struct {
	name  string
	build func() operations.Operation
}

// catalogCategory groups related entries under a tab.
type catalogCategory struct {
	name    string
	entries []catalogEntry
}

func pi(f float64) calculator.CalculatorFloat {
	return calculator.New(math.Pi * f)
}

func exampleCircuit(ops ...operations.Operation) operations.Circuit {
	c := operations.NewCircuit()
	for _, op := range ops {
		c.Add(op)
	}
	return c
}

// catalog lists every operation variant with representative parameters.
var catalog = []catalogCategory{
	{
		name: "Single Qubit",
		entries: []catalogEntry{
			{"RotateX", func() operations.Operation { return operations.NewRotateX(0, pi(0.5)) }},
			{"RotateY", func() operations.Operation { return operations.NewRotateY(0, pi(0.5)) }},
			{"RotateZ", func() operations.Operation { return operations.NewRotateZ(0, pi(0.5)) }},
			{"PauliX", func() operations.Operation { return operations.NewPauliX(0) }},
			{"PauliY", func() operations.Operation { return operations.NewPauliY(0) }},
			{"PauliZ", func() operations.Operation { return operations.NewPauliZ(0) }},
			{"SqrtPauliX", func() operations.Operation { return operations.NewSqrtPauliX(0) }},
			{"InvSqrtPauliX", func() operations.Operation { return operations.NewInvSqrtPauliX(0) }},
			{"Hadamard", func() operations.Operation { return operations.NewHadamard(0) }},
			{"SGate", func() operations.Operation { return operations.NewSGate(0) }},
			{"TGate", func() operations.Operation { return operations.NewTGate(0) }},
			{"PhaseShiftState0", func() operations.Operation { return operations.NewPhaseShiftState0(0, pi(0.25)) }},
			{"PhaseShiftState1", func() operations.Operation { return operations.NewPhaseShiftState1(0, pi(0.25)) }},
			{"RotateAroundSphericalAxis", func() operations.Operation {
				return operations.NewRotateAroundSphericalAxis(0, pi(0.5), pi(0.5), calculator.New(0))
			}},
			{"RotateXY", func() operations.Operation { return operations.NewRotateXY(0, pi(0.5), pi(0.25)) }},
			{"SingleQubitGate", func() operations.Operation {
				return operations.NewSingleQubitGate(0,
					calculator.New(1), calculator.New(0),
					calculator.New(0), calculator.New(0),
					calculator.New(0))
			}},
		},
	},
	{
		name: "Two Qubit",
		entries: []catalogEntry{
			{"CNOT", func() operations.Operation { return operations.NewCNOT(0, 1) }},
			{"SWAP", func() operations.Operation { return operations.NewSWAP(0, 1) }},
			{"ISwap", func() operations.Operation { return operations.NewISwap(0, 1) }},
			{"FSwap", func() operations.Operation { return operations.NewFSwap(0, 1) }},
			{"SqrtISwap", func() operations.Operation { return operations.NewSqrtISwap(0, 1) }},
			{"InvSqrtISwap", func() operations.Operation { return operations.NewInvSqrtISwap(0, 1) }},
			{"XY", func() operations.Operation { return operations.NewXY(0, 1, pi(0.5)) }},
			{"ControlledPhaseShift", func() operations.Operation { return operations.NewControlledPhaseShift(0, 1, pi(0.25)) }},
			{"ControlledPauliY", func() operations.Operation { return operations.NewControlledPauliY(0, 1) }},
			{"ControlledPauliZ", func() operations.Operation { return operations.NewControlledPauliZ(0, 1) }},
			{"MolmerSorensenXX", func() operations.Operation { return operations.NewMolmerSorensenXX(0, 1) }},
			{"VariableMSXX", func() operations.Operation { return operations.NewVariableMSXX(0, 1, pi(0.5)) }},
			{"GivensRotation", func() operations.Operation { return operations.NewGivensRotation(0, 1, pi(0.25), pi(0.125)) }},
			{"GivensRotationLittleEndian", func() operations.Operation {
				return operations.NewGivensRotationLittleEndian(0, 1, pi(0.25), pi(0.125))
			}},
			{"Qsim", func() operations.Operation { return operations.NewQsim(0, 1, pi(0.25), pi(0.25), pi(0.25)) }},
			{"Fsim", func() operations.Operation { return operations.NewFsim(0, 1, pi(0.25), pi(0.125), calculator.New(0.1)) }},
			{"SpinInteraction", func() operations.Operation {
				return operations.NewSpinInteraction(0, 1, pi(0.25), pi(0.125), calculator.New(0.1))
			}},
			{"Bogoliubov", func() operations.Operation {
				return operations.NewBogoliubov(0, 1, calculator.New(0.1), calculator.New(0.2))
			}},
			{"PMInteraction", func() operations.Operation { return operations.NewPMInteraction(0, 1, pi(0.25)) }},
			{"ComplexPMInteraction", func() operations.Operation {
				return operations.NewComplexPMInteraction(0, 1, calculator.New(0.1), calculator.New(0.2))
			}},
			{"PhaseShiftedControlledZ", func() operations.Operation { return operations.NewPhaseShiftedControlledZ(0, 1, pi(0.25)) }},
			{"PhaseShiftedControlledPhase", func() operations.Operation {
				return operations.NewPhaseShiftedControlledPhase(0, 1, pi(0.5), pi(0.25))
			}},
		},
	},
	{
		name: "Multi Qubit",
		entries: []catalogEntry{
			{"MultiQubitMS", func() operations.Operation { return operations.NewMultiQubitMS([]int{0, 1, 2}, pi(0.5)) }},
			{"MultiCNOT", func() operations.Operation { return operations.NewMultiCNOT([]int{0, 1, 2}) }},
		},
	},
	{
		name: "Pragmas",
		entries: []catalogEntry{
			{"PragmaSetNumberOfMeasurements", func() operations.Operation {
				return operations.NewPragmaSetNumberOfMeasurements(100, "ro")
			}},
			{"PragmaSetStateVector", func() operations.Operation {
				return operations.NewPragmaSetStateVector([]complex128{1, 0, 0, 0})
			}},
			{"PragmaSetDensityMatrix", func() operations.Operation {
				return operations.NewPragmaSetDensityMatrix(mat.NewCDense(2, 2, []complex128{1, 0, 0, 0}))
			}},
			{"PragmaRepeatGate", func() operations.Operation { return operations.NewPragmaRepeatGate(3) }},
			{"PragmaOverrotation", func() operations.Operation {
				return operations.NewPragmaOverrotation("RotateX", []int{0}, 0.03, 0.01)
			}},
			{"PragmaBoostNoise", func() operations.Operation { return operations.NewPragmaBoostNoise(calculator.New(1.5)) }},
			{"PragmaStopParallelBlock", func() operations.Operation {
				return operations.NewPragmaStopParallelBlock([]int{0, 1}, calculator.New(0.005))
			}},
			{"PragmaGlobalPhase", func() operations.Operation { return operations.NewPragmaGlobalPhase(pi(1)) }},
			{"PragmaSleep", func() operations.Operation {
				return operations.NewPragmaSleep([]int{0}, calculator.New(0.001))
			}},
			{"PragmaActiveReset", func() operations.Operation { return operations.NewPragmaActiveReset(0) }},
			{"PragmaStartDecompositionBlock", func() operations.Operation {
				return operations.NewPragmaStartDecompositionBlock([]int{0, 1}, map[int]int{0: 1, 1: 0})
			}},
			{"PragmaStopDecompositionBlock", func() operations.Operation {
				return operations.NewPragmaStopDecompositionBlock([]int{0, 1})
			}},
			{"PragmaConditional", func() operations.Operation {
				return operations.NewPragmaConditional("ro", 0, exampleCircuit(operations.NewPauliX(0)))
			}},
			{"PragmaChangeDevice", func() operations.Operation {
				return operations.NewPragmaChangeDevice([]string{"Operation", "PragmaOperation"}, "PragmaChangeDevice", nil)
			}},
			{"PragmaLoop", func() operations.Operation {
				return operations.NewPragmaLoop(calculator.New(2), exampleCircuit(operations.NewPauliX(0)))
			}},
			{"PragmaControlledCircuit", func() operations.Operation {
				return operations.NewPragmaControlledCircuit(0, exampleCircuit(operations.NewPauliX(1)))
			}},
			{"PragmaAnnotatedOp", func() operations.Operation {
				return operations.NewPragmaAnnotatedOp(operations.NewPauliX(0), "calibration marker")
			}},
		},
	},
	{
		name: "Noise",
		entries: []catalogEntry{
			{"PragmaDamping", func() operations.Operation {
				return operations.NewPragmaDamping(0, calculator.New(0.005), calculator.New(0.02))
			}},
			{"PragmaDepolarising", func() operations.Operation {
				return operations.NewPragmaDepolarising(0, calculator.New(0.005), calculator.New(0.02))
			}},
			{"PragmaDephasing", func() operations.Operation {
				return operations.NewPragmaDephasing(0, calculator.New(0.005), calculator.New(0.02))
			}},
			{"PragmaRandomNoise", func() operations.Operation {
				return operations.NewPragmaRandomNoise(0, calculator.New(0.005), calculator.New(0.02), calculator.New(0.01))
			}},
			{"PragmaGeneralNoise", func() operations.Operation {
				rates := mat.NewDense(3, 3, []float64{
					0.02, 0, 0,
					0, 0, 0,
					0, 0, 0.01,
				})
				return operations.NewPragmaGeneralNoise(0, calculator.New(0.005), rates)
			}},
		},
	},
	{
		name: "Measurement",
		entries: []catalogEntry{
			{"MeasureQubit", func() operations.Operation { return operations.NewMeasureQubit(0, "ro", 0) }},
			{"PragmaGetStateVector", func() operations.Operation { return operations.NewPragmaGetStateVector("psi", nil) }},
			{"PragmaGetDensityMatrix", func() operations.Operation { return operations.NewPragmaGetDensityMatrix("rho", nil) }},
			{"PragmaGetOccupationProbability", func() operations.Operation {
				return operations.NewPragmaGetOccupationProbability("occ", nil)
			}},
			{"PragmaGetPauliProduct", func() operations.Operation {
				return operations.NewPragmaGetPauliProduct(map[int]int{0: 1, 1: 3}, "pp", operations.NewCircuit())
			}},
			{"PragmaRepeatedMeasurement", func() operations.Operation {
				return operations.NewPragmaRepeatedMeasurement("ro", 1000, map[int]int{0: 0, 1: 1})
			}},
		},
	},
	{
		name: "Definitions",
		entries: []catalogEntry{
			{"DefinitionFloat", func() operations.Operation { return operations.NewDefinitionFloat("f", 3, true) }},
			{"DefinitionComplex", func() operations.Operation { return operations.NewDefinitionComplex("c", 4, false) }},
			{"DefinitionUsize", func() operations.Operation { return operations.NewDefinitionUsize("u", 1, false) }},
			{"DefinitionBit", func() operations.Operation { return operations.NewDefinitionBit("ro", 2, true) }},
			{"InputSymbolic", func() operations.Operation { return operations.NewInputSymbolic("theta", 1.5) }},
		},
	},
}
