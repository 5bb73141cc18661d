package operations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitions(t *testing.T) {
	cases := []struct {
		op       Definition
		wantLang string
	}{
		{NewDefinitionFloat("f", 3, true), "DefinitionFloat"},
		{NewDefinitionComplex("c", 4, false), "DefinitionComplex"},
		{NewDefinitionUsize("u", 1, false), "DefinitionUsize"},
		{NewDefinitionBit("ro", 2, true), "DefinitionBit"},
	}
	for _, tc := range cases {
		t.Run(tc.wantLang, func(t *testing.T) {
			assert.Equal(t, tc.wantLang, tc.op.HQSLang())
			assert.Equal(t, []string{"Operation", "Definition", tc.wantLang}, tc.op.Tags())
			assert.Equal(t, NoQubits(), tc.op.InvolvedQubits())
			assert.False(t, tc.op.IsParametrized())

			// definitions carry no qubits; remapping is identity
			remapped, err := tc.op.RemapQubits(map[int]int{0: 1, 1: 0})
			require.NoError(t, err)
			assert.True(t, Equal(tc.op, remapped))
		})
	}
}

func TestDefinitionAccessors(t *testing.T) {
	def := NewDefinitionBit("ro", 8, true)
	assert.Equal(t, "ro", def.Name())
	assert.Equal(t, 8, def.Length())
	assert.True(t, def.IsOutput())
	assert.Equal(t, `DefinitionBit { name: "ro", length: 8, is_output: true }`, def.String())
}

func TestInputSymbolic(t *testing.T) {
	input := NewInputSymbolic("theta", 1.5)
	assert.Equal(t, []string{"Operation", "Definition", "InputSymbolic"}, input.Tags())
	assert.Equal(t, "theta", input.Name())
	assert.Equal(t, 1.5, input.Input())
	assert.Equal(t, NoQubits(), input.InvolvedQubits())
	assert.False(t, input.IsParametrized())
}
