// Package dag maintains a dependency graph over circuit operations. Two
// operations are ordered when they involve a common qubit; operations
// touching disjoint qubit sets stay unordered and may execute in parallel.
// Operations involving no qubits commute with everything and are kept aside.
package dag

import (
	"sort"

	"qopalg/operations"
)

// NodeIndex identifies a node in a CircuitDag. Indices are assigned in
// insertion order and stay valid for the lifetime of the graph.
type NodeIndex int

// CircuitDag is a directed acyclic dependency graph over operations.
//
// An operation whose involvement is the full register acts as a barrier: it
// depends on every prior operation and everything added after it depends on
// it.
type CircuitDag struct {
	ops []operations.Operation
	out map[NodeIndex]map[NodeIndex]struct{}
	in  map[NodeIndex]map[NodeIndex]struct{}

	commuting []operations.Operation

	firstParallelBlock map[NodeIndex]struct{}
	lastParallelBlock  map[NodeIndex]struct{}

	firstAll *NodeIndex
	lastAll  *NodeIndex

	firstOfQubit map[int]NodeIndex
	lastOfQubit  map[int]NodeIndex
}

// New creates an empty CircuitDag.
func New() *CircuitDag {
	return &CircuitDag{
		out:                make(map[NodeIndex]map[NodeIndex]struct{}),
		in:                 make(map[NodeIndex]map[NodeIndex]struct{}),
		firstParallelBlock: make(map[NodeIndex]struct{}),
		lastParallelBlock:  make(map[NodeIndex]struct{}),
		firstOfQubit:       make(map[int]NodeIndex),
		lastOfQubit:        make(map[int]NodeIndex),
	}
}

// FromCircuit builds the dependency graph of a circuit by adding every
// operation to the back in order.
func FromCircuit(c operations.Circuit) *CircuitDag {
	dag := New()
	for _, op := range c.Operations {
		dag.AddToBack(op)
	}
	return dag
}

func (d *CircuitDag) addNode(op operations.Operation) NodeIndex {
	node := NodeIndex(len(d.ops))
	d.ops = append(d.ops, op)
	d.out[node] = make(map[NodeIndex]struct{})
	d.in[node] = make(map[NodeIndex]struct{})
	return node
}

func (d *CircuitDag) addEdge(from, to NodeIndex) {
	d.out[from][to] = struct{}{}
	d.in[to][from] = struct{}{}
}

// AddToBack appends an operation to the graph. Operations involving no
// qubits go to the commuting list instead.
func (d *CircuitDag) AddToBack(op operations.Operation) {
	involved := op.InvolvedQubits()
	switch involved.Kind {
	case operations.InvolvementNone:
		d.commuting = append(d.commuting, op)
	case operations.InvolvementSet:
		node := d.addNode(op)
		for _, qubit := range involved.Qubits {
			d.updateFromQubitBack(node, qubit)
		}
	case operations.InvolvementAll:
		d.updateFromAllBack(d.addNode(op))
	}
}

func (d *CircuitDag) updateFromQubitBack(node NodeIndex, qubit int) {
	if prev, ok := d.lastOfQubit[qubit]; ok {
		d.addEdge(prev, node)
		delete(d.lastParallelBlock, prev)
	} else if d.lastAll != nil {
		d.addEdge(*d.lastAll, node)
		delete(d.lastParallelBlock, *d.lastAll)
	}
	d.lastOfQubit[qubit] = node
	d.lastParallelBlock[node] = struct{}{}

	if _, ok := d.firstOfQubit[qubit]; !ok {
		if d.lastAll == nil {
			d.firstOfQubit[qubit] = node
			d.firstParallelBlock[node] = struct{}{}
		} else {
			// the register-wide barrier is the real first touch
			d.firstOfQubit[qubit] = *d.lastAll
		}
	}
}

func (d *CircuitDag) updateFromAllBack(node NodeIndex) {
	if d.firstAll == nil {
		d.firstAll = &node
	}
	d.lastAll = &node

	for qubit, prev := range d.lastOfQubit {
		d.addEdge(prev, node)
		d.lastOfQubit[qubit] = node
	}
	d.lastParallelBlock = map[NodeIndex]struct{}{node: {}}
}

// AddToFront prepends an operation to the graph. Operations involving no
// qubits go to the commuting list instead.
func (d *CircuitDag) AddToFront(op operations.Operation) {
	involved := op.InvolvedQubits()
	switch involved.Kind {
	case operations.InvolvementNone:
		d.commuting = append(d.commuting, op)
	case operations.InvolvementSet:
		node := d.addNode(op)
		for _, qubit := range involved.Qubits {
			d.updateFromQubitFront(node, qubit)
		}
	case operations.InvolvementAll:
		d.updateFromAllFront(d.addNode(op))
	}
}

func (d *CircuitDag) updateFromQubitFront(node NodeIndex, qubit int) {
	if next, ok := d.firstOfQubit[qubit]; ok {
		d.addEdge(node, next)
		delete(d.firstParallelBlock, next)
	} else if d.firstAll != nil {
		d.addEdge(node, *d.firstAll)
		delete(d.firstParallelBlock, *d.firstAll)
	}
	d.firstOfQubit[qubit] = node
	d.firstParallelBlock[node] = struct{}{}

	if _, ok := d.lastOfQubit[qubit]; !ok {
		if d.firstAll == nil {
			d.lastOfQubit[qubit] = node
			d.lastParallelBlock[node] = struct{}{}
		} else {
			d.lastOfQubit[qubit] = *d.firstAll
		}
	}
}

func (d *CircuitDag) updateFromAllFront(node NodeIndex) {
	if d.lastAll == nil {
		d.lastAll = &node
	}
	d.firstAll = &node

	for qubit, next := range d.firstOfQubit {
		d.addEdge(node, next)
		d.firstOfQubit[qubit] = node
	}
	d.firstParallelBlock = map[NodeIndex]struct{}{node: {}}
}

// NodeCount returns the number of graph nodes, excluding commuting
// operations.
func (d *CircuitDag) NodeCount() int {
	return len(d.ops)
}

// Operation returns the operation at node, or nil for an invalid index.
func (d *CircuitDag) Operation(node NodeIndex) operations.Operation {
	if node < 0 || int(node) >= len(d.ops) {
		return nil
	}
	return d.ops[node]
}

// CommutingOperations returns the operations involving no qubits, in the
// order they were added.
func (d *CircuitDag) CommutingOperations() []operations.Operation {
	return d.commuting
}

func sortedNodes(set map[NodeIndex]struct{}) []NodeIndex {
	nodes := make([]NodeIndex, 0, len(set))
	for n := range set {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
	return nodes
}

// FirstParallelBlock returns the nodes with no qubit dependency before them,
// sorted by index.
func (d *CircuitDag) FirstParallelBlock() []NodeIndex {
	return sortedNodes(d.firstParallelBlock)
}

// LastParallelBlock returns the nodes with no qubit dependency after them,
// sorted by index.
func (d *CircuitDag) LastParallelBlock() []NodeIndex {
	return sortedNodes(d.lastParallelBlock)
}

// FirstAll returns the first register-wide operation, if any.
func (d *CircuitDag) FirstAll() (NodeIndex, bool) {
	if d.firstAll == nil {
		return 0, false
	}
	return *d.firstAll, true
}

// LastAll returns the last register-wide operation, if any.
func (d *CircuitDag) LastAll() (NodeIndex, bool) {
	if d.lastAll == nil {
		return 0, false
	}
	return *d.lastAll, true
}

// FirstOperationInvolvingQubit returns the earliest node touching qubit.
func (d *CircuitDag) FirstOperationInvolvingQubit(qubit int) (NodeIndex, bool) {
	node, ok := d.firstOfQubit[qubit]
	return node, ok
}

// LastOperationInvolvingQubit returns the latest node touching qubit.
func (d *CircuitDag) LastOperationInvolvingQubit(qubit int) (NodeIndex, bool) {
	node, ok := d.lastOfQubit[qubit]
	return node, ok
}

// Successors returns the direct dependents of node, sorted by index.
func (d *CircuitDag) Successors(node NodeIndex) []NodeIndex {
	return sortedNodes(d.out[node])
}

// Predecessors returns the direct dependencies of node, sorted by index.
func (d *CircuitDag) Predecessors(node NodeIndex) []NodeIndex {
	return sortedNodes(d.in[node])
}

// TopologicalOrder returns all nodes in an order compatible with the edge
// relation. Ties break towards lower node indices so the result is
// deterministic.
func (d *CircuitDag) TopologicalOrder() []NodeIndex {
	indegree := make(map[NodeIndex]int, len(d.ops))
	for node := range d.ops {
		indegree[NodeIndex(node)] = len(d.in[NodeIndex(node)])
	}

	order := make([]NodeIndex, 0, len(d.ops))
	done := make(map[NodeIndex]struct{}, len(d.ops))
	for len(order) < len(d.ops) {
		next := NodeIndex(-1)
		for node := range d.ops {
			n := NodeIndex(node)
			if _, ok := done[n]; ok {
				continue
			}
			if indegree[n] == 0 && (next < 0 || n < next) {
				next = n
			}
		}
		if next < 0 {
			// unreachable while edges only run old -> new
			break
		}
		done[next] = struct{}{}
		order = append(order, next)
		for succ := range d.out[next] {
			indegree[succ]--
		}
	}
	return order
}

// ToCircuit rebuilds a circuit from the graph: commuting operations first,
// then the graph nodes in topological order.
func (d *CircuitDag) ToCircuit() operations.Circuit {
	c := operations.NewCircuit()
	for _, op := range d.commuting {
		c.Add(op)
	}
	for _, node := range d.TopologicalOrder() {
		c.Add(d.ops[node])
	}
	return c
}
