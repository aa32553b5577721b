// Package persist encodes and decodes the four JSON documents a
// nanowire simulation session is made of: the datasheet parameters,
// the network's node/edge graph, the wire geometry dictionary, and
// the name-to-wire-index connection map. It mirrors the four-file
// JSON dump/load round-trip of
// original_source/nn_simulator/controller/backup.py, adapted from
// NetworkX's node_link_data format to a plain adjacency/edge list.
package persist

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/memristive/nanowire-net/pkg/datasheet"
	"github.com/memristive/nanowire-net/pkg/geometry"
	"github.com/memristive/nanowire-net/pkg/network"
)

// DatasheetDocument is the on-disk form of a datasheet.Datasheet.
type DatasheetDocument struct {
	WiresCount int     `json:"wires_count"`
	MeanLength float64 `json:"mean_length"`
	StdLength  float64 `json:"std_length"`
	Lx         float64 `json:"Lx"`
	Ly         float64 `json:"Ly"`
	Kp0        float64 `json:"kp0"`
	EtaP       float64 `json:"eta_p"`
	Kd0        float64 `json:"kd0"`
	EtaD       float64 `json:"eta_d"`
	Ymin       float64 `json:"Y_min"`
	Ymax       float64 `json:"Y_max"`
	Seed       int64   `json:"seed"`
}

// EncodeDatasheet converts a Datasheet into its JSON document form.
func EncodeDatasheet(ds datasheet.Datasheet) DatasheetDocument {
	return DatasheetDocument{
		WiresCount: ds.WiresCount,
		MeanLength: ds.MeanLength,
		StdLength:  ds.StdLength,
		Lx:         ds.Lx,
		Ly:         ds.Ly,
		Kp0:        ds.Kp0,
		EtaP:       ds.EtaP,
		Kd0:        ds.Kd0,
		EtaD:       ds.EtaD,
		Ymin:       ds.Ymin,
		Ymax:       ds.Ymax,
		Seed:       ds.Seed,
	}
}

// Decode converts a document back into a Datasheet.
func (d DatasheetDocument) Decode() datasheet.Datasheet {
	return datasheet.Datasheet{
		WiresCount: d.WiresCount,
		MeanLength: d.MeanLength,
		StdLength:  d.StdLength,
		Lx:         d.Lx,
		Ly:         d.Ly,
		Kp0:        d.Kp0,
		EtaP:       d.EtaP,
		Kd0:        d.Kd0,
		EtaD:       d.EtaD,
		Ymin:       d.Ymin,
		Ymax:       d.Ymax,
		Seed:       d.Seed,
	}
}

// GraphNode is one node-link node of the network document, mirroring
// the attributes nn2nx hangs off each nx.Graph node: voltage always
// present, ground/external/position present only where applicable
// (device wires carry Pos, grounds carry Ground or External, never
// both).
type GraphNode struct {
	ID       int         `json:"id"`
	V        float64     `json:"V"`
	Ground   bool        `json:"ground,omitempty"`
	External bool        `json:"external,omitempty"`
	Pos      *[2]float64 `json:"pos,omitempty"`
}

// GraphEdge is one node-link edge of the network document, carrying
// the live electrical state of a junction alongside its endpoints and
// its geometric junction position, mirroring nn2nx's per-edge V, Y, g,
// jx_pos fields.
type GraphEdge struct {
	Source int         `json:"source"`
	Target int         `json:"target"`
	V      float64     `json:"V"`
	Y      float64     `json:"Y"`
	G      float64     `json:"g"`
	JxPos  *[2]float64 `json:"jx_pos,omitempty"`
}

// GraphDocument is the node-link view of a Network's electrical
// state. It plays the role nx.node_link_data(nn2nx(network)) plays in
// the original.
type GraphDocument struct {
	Nodes           []GraphNode `json:"nodes"`
	Edges           []GraphEdge `json:"edges"`
	DeviceGrounds   int         `json:"device_grounds"`
	ExternalGrounds int         `json:"external_grounds"`
}

// EncodeNetwork flattens net's adjacency-keyed state into a node-link
// document, the same shape nn2nx produces: device wires carry their
// centroid as pos, device/external grounds carry their respective
// flag instead, and every adjacent pair becomes one edge carrying its
// voltage drop, conductance, kinetic state, and junction position when
// the network has backing geometry.
func EncodeNetwork(net *network.Network) GraphDocument {
	doc := GraphDocument{
		DeviceGrounds:   net.DeviceGrounds(),
		ExternalGrounds: net.ExternalGrounds(),
	}
	nodes := net.Nodes()
	doc.Nodes = make([]GraphNode, nodes)
	for i := 0; i < nodes; i++ {
		node := GraphNode{ID: i, V: net.V[i]}
		switch {
		case i >= net.Wires()+net.DeviceGrounds():
			node.External = true
		case i >= net.Wires():
			node.Ground = true
		default:
			if x, y, ok := net.WirePosition(i); ok {
				node.Pos = &[2]float64{x, y}
			}
		}
		doc.Nodes[i] = node
	}

	for i := 0; i < nodes; i++ {
		for j := i + 1; j < nodes; j++ {
			if !net.Adjacency[i][j] {
				continue
			}
			edge := GraphEdge{
				Source: i,
				Target: j,
				V:      net.V[i] - net.V[j],
				Y:      net.Y[i][j],
				G:      net.G[i][j],
			}
			if x, y, ok := net.JunctionPosition(i, j); ok {
				edge.JxPos = &[2]float64{x, y}
			}
			doc.Edges = append(doc.Edges, edge)
		}
	}
	return doc
}

// Decode rebuilds a Network from a graph document. The returned
// network has no backing geometry: WirePosition and JunctionPosition
// report !ok, exactly as for network.FromMatrices — position
// information carried in the document's Pos/JxPos fields is
// informational only and is not restored onto the live network, which
// keeps its geometry only ever sampled, never reconstructed from a
// node-link dump.
//
// Decode is the boundary where externally supplied (and possibly
// hand-edited or corrupted) JSON enters the system, so every edge's
// Source/Target is checked against the declared node count before
// indexing into it; an out-of-range reference is rejected with
// network.ErrDimensionMismatch instead of panicking.
func (doc GraphDocument) Decode() (*network.Network, error) {
	n := len(doc.Nodes)
	for _, e := range doc.Edges {
		if e.Source < 0 || e.Source >= n {
			return nil, fmt.Errorf("persist: edge references node %d, document has %d nodes: %w", e.Source, n, network.ErrDimensionMismatch)
		}
		if e.Target < 0 || e.Target >= n {
			return nil, fmt.Errorf("persist: edge references node %d, document has %d nodes: %w", e.Target, n, network.ErrDimensionMismatch)
		}
	}

	adjacency := make([][]bool, n)
	y := make([][]float64, n)
	for i := range adjacency {
		adjacency[i] = make([]bool, n)
		y[i] = make([]float64, n)
	}
	for _, e := range doc.Edges {
		adjacency[e.Source][e.Target] = true
		adjacency[e.Target][e.Source] = true
		y[e.Source][e.Target] = e.Y
		y[e.Target][e.Source] = e.Y
	}

	net := network.FromMatrices(adjacency, y, doc.DeviceGrounds)
	for i, node := range doc.Nodes {
		net.V[i] = node.V
	}
	for _, e := range doc.Edges {
		net.G[e.Source][e.Target] = e.G
		net.G[e.Target][e.Source] = e.G
	}
	return net, nil
}

// WiresDocument is the geometry dictionary: parallel arrays, one
// entry per wire, plus the pairwise junction coordinate matrices.
// Every per-wire array field (Float64Array/IntArray) accepts either a
// JSON array or a single bare scalar on decode — the source data
// sometimes collapses a one-wire network's arrays to scalars, and the
// load path must "coerce them back" into arrays the way backup.read
// does with np.asarray. The pairwise matrices (wire_distances, xi, yi,
// adj_matrix) accept only nested JSON arrays.
type WiresDocument struct {
	Xc             Float64Array `json:"xc"`
	Yc             Float64Array `json:"yc"`
	Xa             Float64Array `json:"xa"`
	Ya             Float64Array `json:"ya"`
	Xb             Float64Array `json:"xb"`
	Yb             Float64Array `json:"yb"`
	Theta          Float64Array `json:"theta"`
	WireLengths    Float64Array `json:"wire_lengths"`
	WireDistances  [][]float64  `json:"wire_distances"`
	Outside        IntArray     `json:"outside"`
	JunctionX      [][]float64  `json:"xi"`
	JunctionY      [][]float64  `json:"yi"`
	Adjacency      [][]bool     `json:"adj_matrix"`
	OldIndex       IntArray     `json:"wire_indices"`
	NumberOfWires  int          `json:"number_of_wires"`
	Lx             float64      `json:"Lx"`
	Ly             float64      `json:"Ly"`
	Seed           int64        `json:"seed"`
}

// EncodeGeometry converts a Geometry generated from ds into its
// wires-document form: the parallel coordinate arrays, the pairwise
// centroid-distance matrix (`wire_distances`, mirroring
// `scipy.spatial.distance.cdist` over centroids), and the per-wire
// `outside` flag (1 when either endpoint falls outside the [0,Lx] x
// [0,Ly] device rectangle, as wires.py's `generate_wires_distribution`
// computes it).
func EncodeGeometry(geom *geometry.Geometry, ds datasheet.Datasheet) WiresDocument {
	n := geom.N()
	doc := WiresDocument{
		Xc: make(Float64Array, n), Yc: make(Float64Array, n),
		Xa: make(Float64Array, n), Ya: make(Float64Array, n),
		Xb: make(Float64Array, n), Yb: make(Float64Array, n),
		Theta: make(Float64Array, n), WireLengths: make(Float64Array, n),
		Outside:       make(IntArray, n),
		WireDistances: make([][]float64, n),
		JunctionX:     geom.JunctionX, JunctionY: geom.JunctionY,
		Adjacency:     geom.Adjacency,
		OldIndex:      IntArray(geom.OldIndex),
		NumberOfWires: n,
		Lx:            ds.Lx, Ly: ds.Ly, Seed: ds.Seed,
	}
	for i, w := range geom.Wires {
		doc.Xc[i], doc.Yc[i] = w.Xc, w.Yc
		doc.Xa[i], doc.Ya[i] = w.Xa, w.Ya
		doc.Xb[i], doc.Yb[i] = w.Xb, w.Yb
		doc.Theta[i], doc.WireLengths[i] = w.Theta, w.Length
		if w.Xa < 0 || w.Xb < 0 || w.Ya < 0 || w.Yb < 0 ||
			w.Xa > ds.Lx || w.Xb > ds.Lx || w.Ya > ds.Ly || w.Yb > ds.Ly {
			doc.Outside[i] = 1
		}
	}
	for i := range doc.WireDistances {
		doc.WireDistances[i] = make([]float64, n)
		for j := range doc.WireDistances[i] {
			dx, dy := doc.Xc[i]-doc.Xc[j], doc.Yc[i]-doc.Yc[j]
			doc.WireDistances[i][j] = math.Hypot(dx, dy)
		}
	}
	return doc
}

// Decode rebuilds a Geometry from a wires document.
func (doc WiresDocument) Decode() (*geometry.Geometry, error) {
	n := len(doc.Xc)
	if n == 0 {
		return nil, fmt.Errorf("persist: wires document has no wires")
	}
	wires := make([]geometry.Wire, n)
	for i := range wires {
		wires[i] = geometry.Wire{
			Xc: at(doc.Xc, i), Yc: at(doc.Yc, i),
			Xa: at(doc.Xa, i), Ya: at(doc.Ya, i),
			Xb: at(doc.Xb, i), Yb: at(doc.Yb, i),
			Theta: at(doc.Theta, i), Length: at(doc.WireLengths, i),
		}
	}
	return &geometry.Geometry{
		Wires:     wires,
		Adjacency: doc.Adjacency,
		JunctionX: doc.JunctionX,
		JunctionY: doc.JunctionY,
		OldIndex:  []int(doc.OldIndex),
	}, nil
}

func at(a Float64Array, i int) float64 {
	if i < len(a) {
		return a[i]
	}
	return 0
}

// ConnectionsDocument maps a transducer/probe name to the wire index
// it drives or reads.
type ConnectionsDocument map[string]int

// MarshalConnections and UnmarshalConnections are thin wrappers kept
// for symmetry with the other three documents; json.Marshal/Unmarshal
// work directly on ConnectionsDocument since it needs no scalar
// coercion.
func MarshalConnections(c ConnectionsDocument) ([]byte, error) {
	return json.Marshal(c)
}

func UnmarshalConnections(data []byte) (ConnectionsDocument, error) {
	var c ConnectionsDocument
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("persist: decoding connections: %w", err)
	}
	return c, nil
}
