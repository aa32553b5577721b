package mnasolver

import (
	"fmt"
	"sort"

	"github.com/memristive/nanowire-net/pkg/network"
)

// Solve performs one Modified Nodal Analysis solve over net: it
// assembles the augmented system from net.Y, the given voltage-source
// inputs (node index -> applied voltage) and net's current ground set,
// solves it, and writes the resulting node voltages back into net.V
// (ground nodes are written as exactly zero).
//
// inputs keys must be non-ground node indices in [0, net.Nodes()); any
// violation is rejected with ErrInvalidIndex before the matrix is
// built. The solve is deterministic regardless of inputs' iteration
// order because source columns are assigned in ascending node-index
// order (step 1 of the MNA assembly).
func Solve(net *network.Network, inputs map[int]float64) error {
	nodes := net.Nodes()

	sources := make([]int, 0, len(inputs))
	for node := range inputs {
		if node < 0 || node >= nodes {
			return fmt.Errorf("%w: source node %d, nodes=%d", ErrInvalidIndex, node, nodes)
		}
		if net.IsGround(node) {
			return fmt.Errorf("%w: source node %d is a ground node", ErrInvalidIndex, node)
		}
		sources = append(sources, node)
	}
	sort.Ints(sources)

	// Build the non-ground row mapping: row indices are 1-based and
	// assigned in increasing node-index order.
	rowOf := make(map[int]int, nodes)
	n := 0
	for i := 0; i < nodes; i++ {
		if net.IsGround(i) {
			continue
		}
		n++
		rowOf[i] = n
	}

	s := len(sources)
	mat, err := newCircuitMatrix(n + s)
	if err != nil {
		return err
	}
	defer mat.destroy()

	// Conductance Laplacian: off-diagonal -Y[i][j] between non-ground
	// nodes, diagonal = sum of Y[i][*] over every adjacent neighbour
	// (grounded or not) — grounded neighbours still contribute to the
	// diagonal but never to an off-diagonal column, since ground
	// columns are omitted from the reduced system entirely.
	for i := 0; i < nodes; i++ {
		ri, ok := rowOf[i]
		if !ok {
			continue
		}
		diag := 0.0
		for j := 0; j < nodes; j++ {
			if !net.Adjacency[i][j] {
				continue
			}
			y := net.Y[i][j]
			diag += y
			if rj, ok := rowOf[j]; ok {
				mat.addElement(ri, rj, -y)
			}
		}
		mat.addElement(ri, ri, diag)
	}

	// Source-indicator block B and the augmented branch-current rows.
	for k, src := range sources {
		branch := n + k + 1
		row := rowOf[src]
		mat.addElement(row, branch, 1)
		mat.addElement(branch, row, 1)
		mat.addRHS(branch, inputs[src])
	}

	solution, err := mat.solve()
	if err != nil {
		return err
	}

	for i := 0; i < nodes; i++ {
		if net.IsGround(i) {
			net.V[i] = 0
			continue
		}
		net.V[i] = solution[rowOf[i]]
	}

	return nil
}
