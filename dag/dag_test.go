package dag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qopalg/calculator"
	"qopalg/operations"
)

func TestCommutingOperations(t *testing.T) {
	d := New()
	def := operations.NewDefinitionBit("ro", 1, false)
	d.AddToBack(def)

	assert.Equal(t, 0, d.NodeCount())
	require.Len(t, d.CommutingOperations(), 1)
	assert.True(t, operations.Equal(def, d.CommutingOperations()[0]))
}

func TestNodeCount(t *testing.T) {
	d := New()
	d.AddToBack(operations.NewPauliX(0))
	d.AddToBack(operations.NewPauliY(0))
	assert.Equal(t, 2, d.NodeCount())

	// duplicates get their own node
	d.AddToBack(operations.NewPauliX(0))
	assert.Equal(t, 3, d.NodeCount())
}

func TestQubitDependencyEdges(t *testing.T) {
	d := New()
	d.AddToBack(operations.NewPauliX(0))
	d.AddToBack(operations.NewPauliY(0))
	d.AddToBack(operations.NewPauliZ(1))

	// same qubit orders, disjoint qubits do not
	assert.Equal(t, []NodeIndex{1}, d.Successors(0))
	assert.Equal(t, []NodeIndex{0}, d.Predecessors(1))
	assert.Empty(t, d.Predecessors(2))

	last, ok := d.LastOperationInvolvingQubit(0)
	require.True(t, ok)
	assert.Equal(t, NodeIndex(1), last)
	first, ok := d.FirstOperationInvolvingQubit(0)
	require.True(t, ok)
	assert.Equal(t, NodeIndex(0), first)
}

func TestTwoQubitGateBridgesWires(t *testing.T) {
	d := New()
	d.AddToBack(operations.NewHadamard(0))
	d.AddToBack(operations.NewPauliX(1))
	d.AddToBack(operations.NewCNOT(0, 1))

	assert.Equal(t, []NodeIndex{2}, d.Successors(0))
	assert.Equal(t, []NodeIndex{2}, d.Successors(1))
	assert.Equal(t, []NodeIndex{0, 1}, d.Predecessors(2))
}

func TestParallelBlocks(t *testing.T) {
	d := New()
	d.AddToBack(operations.NewPauliX(0))
	d.AddToBack(operations.NewPauliY(1))
	assert.Equal(t, []NodeIndex{0, 1}, d.FirstParallelBlock())
	assert.Equal(t, []NodeIndex{0, 1}, d.LastParallelBlock())

	d.AddToBack(operations.NewPauliZ(0))
	assert.Equal(t, []NodeIndex{0, 1}, d.FirstParallelBlock())
	assert.Equal(t, []NodeIndex{1, 2}, d.LastParallelBlock())
}

func TestFirstLastAll(t *testing.T) {
	d := New()
	_, ok := d.FirstAll()
	assert.False(t, ok)
	_, ok = d.LastAll()
	assert.False(t, ok)

	d.AddToBack(operations.NewPragmaRepeatedMeasurement("ro", 1, nil))
	d.AddToBack(operations.NewPragmaRepeatedMeasurement("ri", 2, nil))

	first, ok := d.FirstAll()
	require.True(t, ok)
	last, ok := d.LastAll()
	require.True(t, ok)
	assert.NotEqual(t, first, last)
	assert.False(t, operations.Equal(d.Operation(first), d.Operation(last)))
}

// A register-wide operation must depend on every open wire and everything
// after it must depend on the barrier, including fresh qubits.
func TestRegisterWideBarrier(t *testing.T) {
	d := New()
	d.AddToBack(operations.NewPauliX(0))
	d.AddToBack(operations.NewPragmaRepeatedMeasurement("ro", 10, nil))
	d.AddToBack(operations.NewPauliY(1))

	assert.Equal(t, []NodeIndex{1}, d.Successors(0))
	assert.Equal(t, []NodeIndex{2}, d.Successors(1))

	first, ok := d.FirstOperationInvolvingQubit(1)
	require.True(t, ok)
	assert.Equal(t, NodeIndex(1), first)
	assert.Equal(t, []NodeIndex{2}, d.LastParallelBlock())
}

func TestAddToFront(t *testing.T) {
	d := New()
	d.AddToBack(operations.NewPauliX(0))
	d.AddToFront(operations.NewPauliY(0))

	assert.Equal(t, []NodeIndex{0}, d.Successors(1))
	first, ok := d.FirstOperationInvolvingQubit(0)
	require.True(t, ok)
	assert.Equal(t, NodeIndex(1), first)
	assert.Equal(t, []NodeIndex{1}, d.FirstParallelBlock())
	assert.Equal(t, []NodeIndex{0}, d.LastParallelBlock())
}

func TestCircuitRoundTrip(t *testing.T) {
	c := operations.NewCircuit()
	c.Add(operations.NewDefinitionBit("ro", 2, true))
	c.Add(operations.NewHadamard(0))
	c.Add(operations.NewCNOT(0, 1))
	c.Add(operations.NewRotateX(0, calculator.New(1.5)))

	rebuilt := FromCircuit(c).ToCircuit()
	assert.True(t, c.Equal(rebuilt))
}

func TestTopologicalOrder(t *testing.T) {
	d := New()
	d.AddToBack(operations.NewPauliX(0))
	d.AddToBack(operations.NewPauliY(1))
	d.AddToBack(operations.NewCNOT(1, 0))
	d.AddToBack(operations.NewPauliZ(1))

	order := d.TopologicalOrder()
	require.Len(t, order, 4)
	position := make(map[NodeIndex]int, len(order))
	for i, n := range order {
		position[n] = i
	}
	for node := 0; node < d.NodeCount(); node++ {
		for _, succ := range d.Successors(NodeIndex(node)) {
			assert.Less(t, position[NodeIndex(node)], position[succ])
		}
	}
}
