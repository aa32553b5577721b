package network

// Snapshot returns an independent deep copy of the live network.
// Subsequent mutation of the source (or of the returned copy) never
// affects the other.
func (n *Network) Snapshot() *Network {
	return &Network{
		geom:            n.geom, // geometry is immutable, safe to share
		Adjacency:       cloneBool(n.Adjacency),
		Y:               cloneFloat(n.Y),
		G:               cloneFloat(n.G),
		DeltaV:          cloneFloat(n.DeltaV),
		V:               append([]float64(nil), n.V...),
		deviceWires:     n.deviceWires,
		deviceGrounds:   n.deviceGrounds,
		externalGrounds: n.externalGrounds,
	}
}

func cloneFloat(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

func cloneBool(rows [][]bool) [][]bool {
	out := make([][]bool, len(rows))
	for i, row := range rows {
		out[i] = append([]bool(nil), row...)
	}
	return out
}
