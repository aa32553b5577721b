// Package recorder accumulates per-timestep simulation history: node
// voltages and junction (Y, g) pairs keyed by time. It mirrors
// toy-spice's analysis.BaseAnalysis time-series store, generalized
// from string-keyed SPICE variables to integer node/junction indices.
package recorder

import (
	"errors"
	"fmt"

	"github.com/memristive/nanowire-net/pkg/network"
)

// ErrUnknownTime is returned by NodeVoltageSeries when the requested
// node index is outside the recorder's node range.
var ErrUnknownTime = errors.New("recorder: unknown time")

type junctionKey struct{ i, j int }

// Recorder is not safe for concurrent use; callers driving a
// simulation from multiple goroutines must serialize their own
// Record calls, exactly as mnasolver.Solve and kinetic.Update require
// serialized access to the Network they share (spec.md §5).
type Recorder struct {
	times      []float64
	voltages   [][]float64
	junctionsY map[junctionKey][]float64
	junctionsG map[junctionKey][]float64
	nodes      int
}

// New prepares a recorder for a network with the given node count.
func New(nodes int) *Recorder {
	return &Recorder{
		junctionsY: make(map[junctionKey][]float64),
		junctionsG: make(map[junctionKey][]float64),
		nodes:      nodes,
	}
}

// Record appends one time sample. Repeated calls with a
// non-increasing time are rejected, mirroring BaseAnalysis.StoreTimeResult's
// same-time guard.
func (r *Recorder) Record(t float64, net *network.Network) error {
	if len(r.times) > 0 && t <= r.times[len(r.times)-1] {
		return fmt.Errorf("recorder: time %g does not advance past last recorded time %g", t, r.times[len(r.times)-1])
	}
	if net.Nodes() != r.nodes {
		return fmt.Errorf("recorder: network has %d nodes, recorder expects %d", net.Nodes(), r.nodes)
	}

	r.times = append(r.times, t)

	v := make([]float64, r.nodes)
	copy(v, net.V)
	r.voltages = append(r.voltages, v)

	for i := 0; i < r.nodes; i++ {
		for j := i + 1; j < r.nodes; j++ {
			if !net.Adjacency[i][j] {
				continue
			}
			key := junctionKey{i, j}
			r.junctionsY[key] = append(r.junctionsY[key], net.Y[i][j])
			r.junctionsG[key] = append(r.junctionsG[key], net.G[i][j])
		}
	}

	return nil
}

// Times returns every recorded time, in recording order.
func (r *Recorder) Times() []float64 {
	return r.times
}

// NodeVoltageSeries returns the full history of node's voltage across
// every recorded time.
func (r *Recorder) NodeVoltageSeries(node int) ([]float64, error) {
	if node < 0 || node >= r.nodes {
		return nil, fmt.Errorf("recorder: %w: node %d", ErrUnknownTime, node)
	}
	series := make([]float64, len(r.voltages))
	for k, row := range r.voltages {
		series[k] = row[node]
	}
	return series, nil
}

// JunctionSeries returns the recorded Y and g history for the junction
// between i and j, if one was ever adjacent. Order of i, j does not
// matter.
func (r *Recorder) JunctionSeries(i, j int) (y, g []float64, ok bool) {
	if i > j {
		i, j = j, i
	}
	key := junctionKey{i, j}
	y, ok = r.junctionsY[key]
	if !ok {
		return nil, nil, false
	}
	g = r.junctionsG[key]
	return y, g, true
}
