// Package kinetic implements the Miranda-style conductance evolution
// law applied to every junction of a nanowire network once per
// simulated timestep.
package kinetic

import (
	"math"

	"github.com/memristive/nanowire-net/pkg/datasheet"
	"github.com/memristive/nanowire-net/pkg/network"
)

// Update advances every junction's (g, Y) pair by dt, reading the
// network's current voltages. It is a single masked pass over the
// adjacency's nonzero positions: every read comes from the pre-step V
// and G, and writes land only in G and Y, so junctions never couple to
// each other within one call. Must be called unconditionally, even on
// the very first step where V is identically zero — the formula is
// well-defined there without any special-casing.
func Update(net *network.Network, ds datasheet.Datasheet, dt float64) {
	adjacency := net.Adjacency
	v := net.V
	n := len(adjacency)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !adjacency[i][j] {
				continue
			}

			deltaV := math.Abs(v[i] - v[j])
			g, y := step(ds, net.G[i][j], deltaV, dt)

			net.DeltaV[i][j] = deltaV
			net.DeltaV[j][i] = deltaV
			net.G[i][j] = g
			net.G[j][i] = g
			net.Y[i][j] = y
			net.Y[j][i] = y
		}
	}
}

// step applies the Miranda kinetic law to a single junction and clamps
// the result into the valid ranges.
func step(ds datasheet.Datasheet, g, deltaV, dt float64) (newG, newY float64) {
	kp := ds.Kp0 * math.Exp(ds.EtaP*deltaV)
	kd := ds.Kd0 * math.Exp(-ds.EtaD*deltaV)
	kSum := kp + kd

	newG = kp / kSum * (1 - (1-(1+kd/kp)*g)*math.Exp(-kSum*dt))
	newG = clamp(newG, 0, 1)

	newY = ds.Ymin*(1-newG) + ds.Ymax*newG
	newY = clamp(newY, ds.Ymin, ds.Ymax)

	return newG, newY
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
