package operations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qopalg/calculator"
)

func TestMinimumSupportedVersion(t *testing.T) {
	cases := []struct {
		name string
		op   Operation
		want Version
	}{
		{"base gate", NewRotateX(0, calculator.New(1)), Version{Major: 1}},
		{"PhaseShiftedControlledPhase", NewPhaseShiftedControlledPhase(0, 1, calculator.New(1), calculator.New(2)), Version{Major: 1, Minor: 2}},
		{"PragmaLoop", NewPragmaLoop(calculator.New(2), NewCircuit()), Version{Major: 1, Minor: 1}},
		{"PragmaControlledCircuit", NewPragmaControlledCircuit(0, NewCircuit()), Version{Major: 1, Minor: 5}},
		{"PragmaAnnotatedOp", NewPragmaAnnotatedOp(NewPauliX(0), "note"), Version{Major: 1, Minor: 8}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MinimumSupportedVersion(tc.op))
		})
	}
}

// Wrappers must inherit the requirement of what they wrap.
func TestMinimumSupportedVersionNesting(t *testing.T) {
	inner := NewCircuit()
	inner.Add(NewPhaseShiftedControlledPhase(0, 1, calculator.New(1), calculator.New(2)))

	conditional := NewPragmaConditional("ro", 0, inner)
	assert.Equal(t, Version{Major: 1, Minor: 2}, MinimumSupportedVersion(conditional))

	// the wrapper's own requirement wins when it is newer
	loopBody := NewCircuit()
	loopBody.Add(NewPauliX(0))
	loop := NewPragmaLoop(calculator.New(2), loopBody)
	assert.Equal(t, Version{Major: 1, Minor: 1}, MinimumSupportedVersion(loop))

	annotatedLoop := NewPragmaAnnotatedOp(loop, "note")
	assert.Equal(t, Version{Major: 1, Minor: 8}, MinimumSupportedVersion(annotatedLoop))
}

func TestValidateVersion(t *testing.T) {
	require.NoError(t, ValidateVersion(Version{Major: 1, Minor: 9}, Version{Major: 1, Minor: 2}))

	err := ValidateVersion(Version{Major: 1, Minor: 1}, Version{Major: 1, Minor: 5})
	var mismatch VersionMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, uint32(5), mismatch.DataMinor)
}

func TestCheckVersion(t *testing.T) {
	require.NoError(t, CheckVersion(NewPragmaAnnotatedOp(NewPauliZ(0), "x")))
	assert.Equal(t, "1.9.0", CurrentVersion().String())
}

func TestVersionLess(t *testing.T) {
	assert.True(t, Version{Major: 1}.Less(Version{Major: 1, Minor: 1}))
	assert.True(t, Version{Major: 1, Minor: 9}.Less(Version{Major: 2}))
	assert.False(t, Version{Major: 1, Minor: 2}.Less(Version{Major: 1, Minor: 2}))
	assert.True(t, Version{Major: 1, Minor: 2}.Less(Version{Major: 1, Minor: 2, Patch: 1}))
}
