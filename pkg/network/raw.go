package network

// FromMatrices builds a Network directly from an adjacency matrix and
// conductance matrix, without requiring a generated Geometry. This is
// the entry point collaborators use when the electrical topology is
// known analytically (hand-built test circuits, loaded snapshots)
// rather than sampled — WirePosition/JunctionPosition simply report
// "not found" for a network built this way, since there is no
// geometry to query.
func FromMatrices(adjacency [][]bool, y [][]float64, deviceGrounds int) *Network {
	n := len(adjacency)
	g := make([][]float64, n)
	dv := make([][]float64, n)
	for i := range g {
		g[i] = make([]float64, n)
		dv[i] = make([]float64, n)
	}
	return &Network{
		geom:            nil,
		Adjacency:       cloneBool(adjacency),
		Y:               cloneFloat(y),
		G:               g,
		DeltaV:          dv,
		V:               make([]float64, n),
		deviceWires:     n - deviceGrounds,
		deviceGrounds:   deviceGrounds,
		externalGrounds: 0,
	}
}
