package simulator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/memristive/nanowire-net/pkg/datasheet"
	"github.com/memristive/nanowire-net/pkg/network"
	"github.com/memristive/nanowire-net/pkg/simulator"
)

func adjFromEdges(n int, edges [][2]int) [][]bool {
	a := make([][]bool, n)
	for i := range a {
		a[i] = make([]bool, n)
	}
	for _, e := range edges {
		a[e[0]][e[1]] = true
		a[e[1]][e[0]] = true
	}
	return a
}

func TestGenerateGeometryIsReproducible(t *testing.T) {
	ds := datasheet.Default()
	ds.WiresCount = 80

	g1, err := simulator.GenerateGeometry(ds, 7)
	require.NoError(t, err)
	g2, err := simulator.GenerateGeometry(ds, 7)
	require.NoError(t, err)

	require.Equal(t, g1.Adjacency, g2.Adjacency)
}

func TestBuildNetworkSeedsConductance(t *testing.T) {
	ds := datasheet.Default()
	ds.WiresCount = 60

	geom, err := simulator.GenerateGeometry(ds, 3)
	require.NoError(t, err)

	net, err := simulator.BuildNetwork(ds, geom, ds.Ymin, 1)
	require.NoError(t, err)
	require.Equal(t, geom.N(), net.Nodes())
	for i := 0; i < net.Nodes(); i++ {
		for j := 0; j < net.Nodes(); j++ {
			if net.Adjacency[i][j] {
				require.Equal(t, ds.Ymin, net.Y[i][j])
			}
		}
	}
}

// TestStimulateIsNoOpWithEmptyInputsAndZeroDt: a zero-Δt, empty-input
// step on a network without external grounds leaves both G and V
// unchanged.
func TestStimulateIsNoOpWithEmptyInputsAndZeroDt(t *testing.T) {
	ds := datasheet.Default()
	adjacency := adjFromEdges(2, [][2]int{{0, 1}})
	y := make([][]float64, 2)
	for i := range y {
		y[i] = make([]float64, 2)
	}
	y[0][1], y[1][0] = ds.Ymin, ds.Ymin
	net := network.FromMatrices(adjacency, y, 1)

	before := append([]float64(nil), net.V...)
	beforeG := net.G[0][1]

	err := simulator.Stimulate(net, ds, 0, map[int]float64{})
	require.NoError(t, err)
	require.Equal(t, before, net.V)
	require.Equal(t, beforeG, net.G[0][1])
}

// TestStimulateRoundTripsThroughConnectDisconnect is scenario 4: driving
// a node through an attached external load, then detaching it, returns
// the network to its original ground-free shape, where node 1 carries no
// current and sits at the source voltage.
func TestStimulateRoundTripsThroughConnectDisconnect(t *testing.T) {
	ds := datasheet.Default()
	adjacency := adjFromEdges(2, [][2]int{{0, 1}})
	y := make([][]float64, 2)
	for i := range y {
		y[i] = make([]float64, 2)
	}
	y[0][1], y[1][0] = 1, 1
	net := network.FromMatrices(adjacency, y, 0)

	require.NoError(t, simulator.Connect(net, 1, 1.0))
	require.NoError(t, simulator.Stimulate(net, ds, 0, map[int]float64{0: 5.0}))
	require.InDelta(t, 5.0, net.V[0], 1e-9)
	require.InDelta(t, 2.5, net.V[1], 1e-9)

	simulator.Disconnect(net)
	require.Equal(t, 2, net.Nodes())
	require.NoError(t, simulator.Stimulate(net, ds, 0, map[int]float64{0: 5.0}))
	require.InDelta(t, 5.0, net.V[0], 1e-9)
	require.InDelta(t, 5.0, net.V[1], 1e-9)
}

func TestSnapshotIsIndependentOfFurtherStimulation(t *testing.T) {
	ds := datasheet.Default()
	adjacency := adjFromEdges(2, [][2]int{{0, 1}})
	y := make([][]float64, 2)
	for i := range y {
		y[i] = make([]float64, 2)
	}
	y[0][1], y[1][0] = ds.Ymin, ds.Ymin
	net := network.FromMatrices(adjacency, y, 1)

	require.NoError(t, simulator.Stimulate(net, ds, 0.05, map[int]float64{0: 1.0}))
	snap := simulator.Snapshot(net)

	require.NoError(t, simulator.Stimulate(net, ds, 0.05, map[int]float64{0: 1.0}))

	require.NotEqual(t, net.G[0][1], snap.G[0][1])
}
