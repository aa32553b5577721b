package persist_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/memristive/nanowire-net/pkg/datasheet"
	"github.com/memristive/nanowire-net/pkg/geometry"
	"github.com/memristive/nanowire-net/pkg/network"
	"github.com/memristive/nanowire-net/pkg/persist"
)

func TestDatasheetRoundTrip(t *testing.T) {
	ds := datasheet.Default()

	data, err := json.Marshal(persist.EncodeDatasheet(ds))
	require.NoError(t, err)

	var doc persist.DatasheetDocument
	require.NoError(t, json.Unmarshal(data, &doc))

	require.Equal(t, ds, doc.Decode())
}

func TestNetworkGraphRoundTrip(t *testing.T) {
	adjacency := [][]bool{{false, true, false}, {true, false, true}, {false, true, false}}
	y := [][]float64{{0, 1, 0}, {1, 0, 2}, {0, 2, 0}}
	net := network.FromMatrices(adjacency, y, 1)
	net.V[0], net.V[1], net.V[2] = 5, 2.5, 0

	doc := persist.EncodeNetwork(net)
	require.Len(t, doc.Nodes, 3)
	require.False(t, doc.Nodes[0].Ground)
	require.True(t, doc.Nodes[2].Ground)
	require.Len(t, doc.Edges, 2)

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded persist.GraphDocument
	require.NoError(t, json.Unmarshal(data, &decoded))
	restored, err := decoded.Decode()
	require.NoError(t, err)

	require.Equal(t, net.V, restored.V)
	require.Equal(t, net.Adjacency, restored.Adjacency)
	require.Equal(t, net.Y, restored.Y)
	require.Equal(t, net.DeviceGrounds(), restored.DeviceGrounds())
}

// TestNetworkGraphRejectsOutOfRangeEdge exercises the document-boundary
// validation Decode performs on externally supplied data: a hand-edited
// or corrupted document whose edge references a node index outside the
// declared node count must be rejected with ErrDimensionMismatch rather
// than panicking.
func TestNetworkGraphRejectsOutOfRangeEdge(t *testing.T) {
	doc := persist.GraphDocument{
		Nodes: []persist.GraphNode{{ID: 0}, {ID: 1}},
		Edges: []persist.GraphEdge{{Source: 0, Target: 5, Y: 1}},
	}

	_, err := doc.Decode()
	require.ErrorIs(t, err, network.ErrDimensionMismatch)
}

func TestEncodeGeometryRoundTrip(t *testing.T) {
	ds := datasheet.Default()
	ds.WiresCount = 40
	ds.Lx, ds.Ly = 80, 80

	geom, err := geometry.Generate(ds, 9)
	require.NoError(t, err)

	doc := persist.EncodeGeometry(geom, ds)
	require.Equal(t, geom.N(), doc.NumberOfWires)
	require.Equal(t, ds.Lx, doc.Lx)
	require.Equal(t, ds.Seed, doc.Seed)
	require.Len(t, doc.WireDistances, geom.N())

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded persist.WiresDocument
	require.NoError(t, json.Unmarshal(data, &decoded))

	restored, err := decoded.Decode()
	require.NoError(t, err)
	require.Equal(t, geom.N(), restored.N())
	require.Equal(t, geom.Adjacency, restored.Adjacency)
}

// TestWiresDocumentCoercesScalarsToArrays is the spec's "coerce them
// back" requirement: a one-wire network's JSON dump sometimes carries
// bare scalars instead of one-element arrays, and the load path must
// accept both.
func TestWiresDocumentCoercesScalarsToArrays(t *testing.T) {
	raw := `{
		"xc": 1.5, "yc": 2.5, "xa": 0, "ya": 0, "xb": 3, "yb": 5,
		"theta": 0.78, "wire_lengths": 4,
		"xi": [[0]], "yi": [[0]],
		"adj_matrix": [[false]], "wire_indices": 0
	}`

	var doc persist.WiresDocument
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	require.Equal(t, persist.Float64Array{1.5}, doc.Xc)
	require.Equal(t, persist.IntArray{0}, doc.OldIndex)

	geom, err := doc.Decode()
	require.NoError(t, err)
	require.Equal(t, 1, geom.N())
	require.InDelta(t, 1.5, geom.Wires[0].Xc, 1e-9)
}

func TestWiresDocumentAcceptsArrays(t *testing.T) {
	raw := `{
		"xc": [1, 2], "yc": [1, 2], "xa": [0, 0], "ya": [0, 0],
		"xb": [1, 1], "yb": [1, 1], "theta": [0, 0], "wire_lengths": [1, 1],
		"xi": [[0,0],[0,0]], "yi": [[0,0],[0,0]],
		"adj_matrix": [[false,true],[true,false]], "wire_indices": [0, 1]
	}`

	var doc persist.WiresDocument
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	geom, err := doc.Decode()
	require.NoError(t, err)
	require.Equal(t, 2, geom.N())
}

func TestConnectionsRoundTrip(t *testing.T) {
	conns := persist.ConnectionsDocument{"probe-a": 3, "probe-b": 7}

	data, err := persist.MarshalConnections(conns)
	require.NoError(t, err)

	decoded, err := persist.UnmarshalConnections(data)
	require.NoError(t, err)
	require.Equal(t, conns, decoded)
}
