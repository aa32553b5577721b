// Package simulator exposes the programmatic surface spec.md §6
// describes for collaborators: pure geometry generation, network
// construction, external-load attach/detach, single-step stimulation,
// and snapshotting. It is a thin composition layer over
// pkg/geometry, pkg/network, pkg/kinetic and pkg/mnasolver — no new
// algorithm lives here.
package simulator

import (
	"github.com/memristive/nanowire-net/pkg/datasheet"
	"github.com/memristive/nanowire-net/pkg/geometry"
	"github.com/memristive/nanowire-net/pkg/kinetic"
	"github.com/memristive/nanowire-net/pkg/mnasolver"
	"github.com/memristive/nanowire-net/pkg/network"
)

// GenerateGeometry is a pure, seed-deterministic function producing the
// wire layout and junction adjacency a network is built over.
func GenerateGeometry(ds datasheet.Datasheet, seed int64) (*geometry.Geometry, error) {
	return geometry.Generate(ds, seed)
}

// BuildNetwork reduces geom to its largest connected component (already
// done by GenerateGeometry) and allocates electrical state over it,
// seeding every junction's conductance to initialConductance and
// designating the last deviceGrounds wires as device grounds.
func BuildNetwork(ds datasheet.Datasheet, geom *geometry.Geometry, initialConductance float64, deviceGrounds int) (*network.Network, error) {
	return network.New(geom, ds, initialConductance, deviceGrounds)
}

// Connect attaches an external load of the given resistance to wireIdx.
func Connect(net *network.Network, wireIdx int, resistance float64) error {
	return net.Connect(wireIdx, resistance)
}

// Disconnect removes every external load attached to net.
func Disconnect(net *network.Network) {
	net.Disconnect()
}

// Stimulate performs one full simulation step: the kinetic updater
// advances every junction's conductance using the voltages from the
// previous step, then the MNA solver consumes the freshly updated
// conductances together with inputs and net's current ground set to
// write new node voltages back into net. This ordering — kinetic
// update strictly before solve — is the core's only concurrency
// guarantee (spec.md §5) and must never be reordered.
func Stimulate(net *network.Network, ds datasheet.Datasheet, dt float64, inputs map[int]float64) error {
	kinetic.Update(net, ds, dt)
	return mnasolver.Solve(net, inputs)
}

// Snapshot returns an independent deep copy of net.
func Snapshot(net *network.Network) *network.Network {
	return net.Snapshot()
}
