// Package network carries the mutable electrical state of a nanowire
// network over its fixed geometry, and mediates attaching/detaching
// external load grounds.
package network

import (
	"errors"
	"fmt"

	"github.com/memristive/nanowire-net/pkg/datasheet"
	"github.com/memristive/nanowire-net/pkg/geometry"
)

// ErrInvalidIndex is returned when an operation references a node
// index outside [0, Nodes()).
var ErrInvalidIndex = errors.New("network: invalid node index")

// ErrDimensionMismatch is returned when a network is reconstructed
// from externally supplied data (see pkg/persist) whose shape is
// internally inconsistent — e.g. an edge referencing a node index
// outside the declared node count.
var ErrDimensionMismatch = errors.New("network: dimension mismatch")

// Network bundles the static geometric adjacency with the mutable
// electrical state layered over it: per-junction conductance Y and
// kinetic variable G, per-node voltage V, and the ground-node
// bookkeeping. Index layout is `[0, deviceWires) device wires, then
// [deviceWires, deviceWires+deviceGrounds) device grounds, then
// [..., +externalGrounds) external grounds` — ground nodes are always
// a contiguous suffix.
type Network struct {
	geom *geometry.Geometry

	// Adjacency, Y and G are all (Nodes() x Nodes()) and share the same
	// sparsity pattern: nonzero only where Adjacency is true.
	Adjacency [][]bool
	Y         [][]float64
	G         [][]float64
	DeltaV    [][]float64

	V []float64

	deviceWires     int // wires that are not device grounds
	deviceGrounds   int // D
	externalGrounds int // E
}

// New allocates electrical state over geom: Y is seeded to
// initialConductance at every junction, G and V start at zero.
// deviceGrounds designates the last `deviceGrounds` wires of geom as
// clamped-to-zero device grounds.
func New(geom *geometry.Geometry, ds datasheet.Datasheet, initialConductance float64, deviceGrounds int) (*Network, error) {
	n := geom.N()
	if deviceGrounds < 0 || deviceGrounds > n {
		return nil, fmt.Errorf("%w: device grounds %d out of range for %d wires", ErrInvalidIndex, deviceGrounds, n)
	}

	adjacency := make([][]bool, n)
	y := make([][]float64, n)
	g := make([][]float64, n)
	dv := make([][]float64, n)
	for i := 0; i < n; i++ {
		adjacency[i] = make([]bool, n)
		y[i] = make([]float64, n)
		g[i] = make([]float64, n)
		dv[i] = make([]float64, n)
		copy(adjacency[i], geom.Adjacency[i])
		for j := 0; j < n; j++ {
			if adjacency[i][j] {
				y[i][j] = initialConductance
			}
		}
	}

	return &Network{
		geom:          geom,
		Adjacency:     adjacency,
		Y:             y,
		G:             g,
		DeltaV:        dv,
		V:             make([]float64, n),
		deviceWires:   n - deviceGrounds,
		deviceGrounds: deviceGrounds,
	}, nil
}

// Nodes returns the total node count: device wires + device grounds +
// external grounds.
func (n *Network) Nodes() int {
	return len(n.V)
}

// Wires returns the number of non-ground device wires.
func (n *Network) Wires() int {
	return n.deviceWires
}

// DeviceGrounds returns the count of device-ground wires (D).
func (n *Network) DeviceGrounds() int {
	return n.deviceGrounds
}

// ExternalGrounds returns the count of appended external-ground nodes (E).
func (n *Network) ExternalGrounds() int {
	return n.externalGrounds
}

// Grounds returns the total ground count (D + E).
func (n *Network) Grounds() int {
	return n.deviceGrounds + n.externalGrounds
}

// GroundSet returns the set of node indices currently clamped to zero
// volts: the device grounds followed by the external grounds.
func (n *Network) GroundSet() []int {
	grounds := make([]int, 0, n.Grounds())
	for i := n.deviceWires; i < n.Nodes(); i++ {
		grounds = append(grounds, i)
	}
	return grounds
}

// IsGround reports whether node idx is currently a ground (device or
// external).
func (n *Network) IsGround(idx int) bool {
	return idx >= n.deviceWires && idx < n.Nodes()
}

// Geometry returns the static geometry this network's state is laid
// over.
func (n *Network) Geometry() *geometry.Geometry {
	return n.geom
}

// WirePosition returns the centroid of device wire idx. Valid only for
// idx < Wires()+DeviceGrounds() (i.e. not an external ground).
func (n *Network) WirePosition(idx int) (x, y float64, ok bool) {
	if n.geom == nil || idx < 0 || idx >= len(n.geom.Wires) {
		return 0, 0, false
	}
	w := n.geom.Wires[idx]
	return w.Xc, w.Yc, true
}

// JunctionPosition returns the geometric intersection point of wires i
// and j, if one exists in the underlying geometry.
func (n *Network) JunctionPosition(i, j int) (x, y float64, ok bool) {
	if n.geom == nil || i < 0 || j < 0 || i >= len(n.geom.Wires) || j >= len(n.geom.Wires) {
		return 0, 0, false
	}
	if !n.geom.Adjacency[i][j] {
		return 0, 0, false
	}
	return n.geom.JunctionX[i][j], n.geom.JunctionY[i][j], true
}
