package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qopalg/operations"
)

// Every catalog entry must build an operation whose name matches the entry
// and render a non-empty detail pane without blowing up.
func TestCatalogEntriesRender(t *testing.T) {
	for _, cat := range catalog {
		for _, entry := range cat.entries {
			t.Run(cat.name+"/"+entry.name, func(t *testing.T) {
				op := entry.build()
				require.NotNil(t, op)
				assert.Equal(t, entry.name, op.HQSLang())
				detail := renderDetail(op)
				assert.Contains(t, detail, entry.name)
			})
		}
	}
}

func TestFormatInvolved(t *testing.T) {
	assert.Equal(t, "none", formatInvolved(operations.NoQubits()))
	assert.Equal(t, "all", formatInvolved(operations.AllQubits()))
	assert.Equal(t, "{0, 2}", formatInvolved(operations.QubitSet(2, 0)))
}

func TestFormatComplexEntry(t *testing.T) {
	assert.Equal(t, "1", formatComplexEntry(1))
	assert.Equal(t, "-1i", formatComplexEntry(complex(0, -1)))
	assert.Equal(t, "0.5+0.5i", formatComplexEntry(complex(0.5, 0.5)))
	assert.Equal(t, "0", formatComplexEntry(0))
}
