package recorder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/memristive/nanowire-net/pkg/network"
	"github.com/memristive/nanowire-net/pkg/recorder"
)

func twoNodeNetwork() *network.Network {
	adjacency := [][]bool{{false, true}, {true, false}}
	y := [][]float64{{0, 1}, {1, 0}}
	return network.FromMatrices(adjacency, y, 1)
}

func TestRecordAccumulatesSeries(t *testing.T) {
	net := twoNodeNetwork()
	r := recorder.New(net.Nodes())

	net.V[0] = 1.0
	require.NoError(t, r.Record(0.0, net))
	net.V[0] = 2.0
	net.Y[0][1], net.Y[1][0] = 0.5, 0.5
	require.NoError(t, r.Record(0.1, net))

	series, err := r.NodeVoltageSeries(0)
	require.NoError(t, err)
	require.Equal(t, []float64{1.0, 2.0}, series)

	y, _, ok := r.JunctionSeries(0, 1)
	require.True(t, ok)
	require.Equal(t, []float64{1.0, 0.5}, y)

	require.Equal(t, []float64{0.0, 0.1}, r.Times())
}

func TestRecordRejectsNonIncreasingTime(t *testing.T) {
	net := twoNodeNetwork()
	r := recorder.New(net.Nodes())

	require.NoError(t, r.Record(1.0, net))
	require.Error(t, r.Record(1.0, net))
	require.Error(t, r.Record(0.5, net))
}

func TestJunctionSeriesUnknownPairIsMissing(t *testing.T) {
	net := twoNodeNetwork()
	r := recorder.New(net.Nodes())
	require.NoError(t, r.Record(0.0, net))

	_, _, ok := r.JunctionSeries(0, 5)
	require.False(t, ok)
}

func TestNodeVoltageSeriesRejectsOutOfRange(t *testing.T) {
	net := twoNodeNetwork()
	r := recorder.New(net.Nodes())
	require.NoError(t, r.Record(0.0, net))

	_, err := r.NodeVoltageSeries(9)
	require.ErrorIs(t, err, recorder.ErrUnknownTime)
}
