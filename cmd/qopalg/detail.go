package main

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"qopalg/operations"
)

// formatInvolved renders an involvement for the detail pane.
func formatInvolved(iq operations.InvolvedQubits) string {
	switch iq.Kind {
	case operations.InvolvementNone:
		return "none"
	case operations.InvolvementAll:
		return "all"
	default:
		parts := make([]string, len(iq.Qubits))
		for i, q := range iq.Qubits {
			parts[i] = strconv.Itoa(q)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
}

// formatComplexEntry renders a complex matrix entry compactly, dropping
// vanishing real or imaginary parts.
func formatComplexEntry(v complex128) string {
	re, im := real(v), imag(v)
	const eps = 1e-12
	switch {
	case im > -eps && im < eps:
		return strconv.FormatFloat(re, 'g', 4, 64)
	case re > -eps && re < eps:
		return strconv.FormatFloat(im, 'g', 4, 64) + "i"
	default:
		sign := "+"
		if im < 0 {
			sign = ""
		}
		return strconv.FormatFloat(re, 'g', 4, 64) + sign +
			strconv.FormatFloat(im, 'g', 4, 64) + "i"
	}
}

// formatComplexMatrix renders a complex matrix with aligned columns.
func formatComplexMatrix(m *mat.CDense) string {
	rows, cols := m.Dims()
	cells := make([][]string, rows)
	widths := make([]int, cols)
	for i := 0; i < rows; i++ {
		cells[i] = make([]string, cols)
		for j := 0; j < cols; j++ {
			s := formatComplexEntry(m.At(i, j))
			cells[i][j] = s
			if len(s) > widths[j] {
				widths[j] = len(s)
			}
		}
	}
	var sb strings.Builder
	for i := 0; i < rows; i++ {
		sb.WriteString("⎢ ")
		for j := 0; j < cols; j++ {
			fmt.Fprintf(&sb, "%*s", widths[j], cells[i][j])
			if j < cols-1 {
				sb.WriteString("  ")
			}
		}
		sb.WriteString(" ⎥")
		if i < rows-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// formatRealMatrix renders a real matrix with aligned columns.
func formatRealMatrix(m *mat.Dense) string {
	rows, cols := m.Dims()
	cells := make([][]string, rows)
	widths := make([]int, cols)
	for i := 0; i < rows; i++ {
		cells[i] = make([]string, cols)
		for j := 0; j < cols; j++ {
			s := strconv.FormatFloat(m.At(i, j), 'g', 6, 64)
			cells[i][j] = s
			if len(s) > widths[j] {
				widths[j] = len(s)
			}
		}
	}
	var sb strings.Builder
	for i := 0; i < rows; i++ {
		sb.WriteString("⎢ ")
		for j := 0; j < cols; j++ {
			fmt.Fprintf(&sb, "%*s", widths[j], cells[i][j])
			if j < cols-1 {
				sb.WriteString("  ")
			}
		}
		sb.WriteString(" ⎥")
		if i < rows-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func writeField(sb *strings.Builder, label, value string) {
	sb.WriteString(labelStyle.Render(fmt.Sprintf("%-14s", label)))
	sb.WriteString(normalStyle.Render(value))
	sb.WriteString("\n")
}

func writeSection(sb *strings.Builder, title string) {
	sb.WriteString("\n")
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n")
}

// renderDetail builds the full detail text for one operation, probing its
// capability interfaces one by one.
func renderDetail(op operations.Operation) string {
	var sb strings.Builder

	sb.WriteString(gateStyle.Render(op.HQSLang()))
	sb.WriteString("\n\n")

	writeField(&sb, "tags", strings.Join(op.Tags(), " › "))
	writeField(&sb, "qubits", formatInvolved(op.InvolvedQubits()))
	writeField(&sb, "parametrized", strconv.FormatBool(op.IsParametrized()))
	writeField(&sb, "min version", operations.MinimumSupportedVersion(op).String())
	writeField(&sb, "repr", fmt.Sprintf("%v", op))

	if rot, err := operations.AsRotation(op); err == nil {
		writeField(&sb, "theta", rot.Theta().String())
	}

	if sq, err := operations.AsSingleQubitGateOperation(op); err == nil {
		writeSection(&sb, "Bloch parameters")
		writeField(&sb, "alpha", fmt.Sprintf("%s + %s i", sq.AlphaR(), sq.AlphaI()))
		writeField(&sb, "beta", fmt.Sprintf("%s + %s i", sq.BetaR(), sq.BetaI()))
		writeField(&sb, "global phase", sq.GlobalPhase().String())
	}

	if gate, err := operations.AsGateOperation(op); err == nil {
		writeSection(&sb, "Unitary matrix")
		if u, err := gate.UnitaryMatrix(); err == nil {
			sb.WriteString(matrixStyle.Render(formatComplexMatrix(u)))
			sb.WriteString("\n")
		} else {
			sb.WriteString(errorStyle.Render(err.Error()))
			sb.WriteString("\n")
		}
	}

	if two, err := operations.AsTwoQubitGateOperation(op); err == nil {
		kak := two.KAKDecomposition()
		writeSection(&sb, "KAK decomposition")
		writeField(&sb, "k vector", fmt.Sprintf("[%s, %s, %s]",
			kak.KVector[0], kak.KVector[1], kak.KVector[2]))
		writeField(&sb, "global phase", kak.GlobalPhase.String())
		if kak.CircuitBefore != nil {
			writeField(&sb, "before", kak.CircuitBefore.String())
		}
		if kak.CircuitAfter != nil {
			writeField(&sb, "after", kak.CircuitAfter.String())
		}
	}

	if multi, err := operations.AsMultiQubitGateOperation(op); err == nil {
		writeSection(&sb, "Circuit decomposition")
		if circuit, err := multi.Decomposition(); err == nil {
			for _, inner := range circuit.Operations {
				sb.WriteString(normalStyle.Render(fmt.Sprintf("%v", inner)))
				sb.WriteString("\n")
			}
		} else {
			sb.WriteString(errorStyle.Render(err.Error()))
			sb.WriteString("\n")
		}
	}

	if noise, err := operations.AsPragmaNoiseOperation(op); err == nil {
		writeSection(&sb, "Superoperator")
		if s, err := noise.Superoperator(); err == nil {
			sb.WriteString(matrixStyle.Render(formatRealMatrix(s)))
			sb.WriteString("\n")
		} else {
			sb.WriteString(errorStyle.Render(err.Error()))
			sb.WriteString("\n")
		}
		if proba, err := operations.AsPragmaNoiseProbaOperation(op); err == nil {
			writeField(&sb, "probability", proba.Probability().String())
		}
	}

	if def, ok := op.(operations.Definition); ok {
		writeSection(&sb, "Register")
		writeField(&sb, "name", def.Name())
	}
	if meas, ok := op.(operations.MeasurementOperation); ok {
		writeSection(&sb, "Readout")
		writeField(&sb, "register", meas.Readout())
	}

	return sb.String()
}
