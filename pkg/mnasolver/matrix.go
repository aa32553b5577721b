// Package mnasolver solves the linear resistive network for node
// voltages via Modified Nodal Analysis, given a conductance matrix, a
// set of ideal voltage-source inputs, and a ground set.
package mnasolver

import (
	"fmt"

	"github.com/edp1096/sparse"
)

// circuitMatrix wraps the sparse LU solver the same way
// toy-spice/pkg/matrix.CircuitMatrix does, trimmed to the real-only
// path: this solver never needs the AC/complex branch since the core
// only ever solves a single DC-like linear system per step.
type circuitMatrix struct {
	size   int
	matrix *sparse.Matrix
	rhs    []float64
}

func newCircuitMatrix(size int) (*circuitMatrix, error) {
	config := &sparse.Configuration{
		Real:           true,
		Complex:        false,
		Expandable:     true,
		ModifiedNodal:  true,
		TiesMultiplier: 5,
		PrinterWidth:   140,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("mnasolver: creating sparse matrix: %w", err)
	}

	return &circuitMatrix{
		size:   size,
		matrix: mat,
		rhs:    make([]float64, size+1), // 1-based indexing
	}, nil
}

func (m *circuitMatrix) addElement(i, j int, value float64) {
	if i <= 0 || j <= 0 || i > m.size || j > m.size {
		return
	}
	m.matrix.GetElement(int64(i), int64(j)).Real += value
}

func (m *circuitMatrix) addRHS(i int, value float64) {
	if i <= 0 || i > m.size {
		return
	}
	m.rhs[i] += value
}

func (m *circuitMatrix) solve() ([]float64, error) {
	if err := m.matrix.Factor(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}
	solution, err := m.matrix.Solve(m.rhs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}
	return solution, nil
}

func (m *circuitMatrix) destroy() {
	if m.matrix != nil {
		m.matrix.Destroy()
	}
}
