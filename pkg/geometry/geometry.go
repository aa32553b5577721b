// Package geometry samples a random planar nanowire layout and derives
// the junctions (pairwise wire crossings) and adjacency needed to build
// an electrical network over it.
package geometry

import (
	"errors"
	"math"
	"math/rand"

	"github.com/memristive/nanowire-net/pkg/datasheet"
)

// ErrEmptyNetwork is returned by Generate when no junctions are found
// anywhere in the sampled layout.
var ErrEmptyNetwork = errors.New("geometry: no junctions in sampled layout")

// Wire is one straight conductor in the layout. Immutable once
// generated.
type Wire struct {
	Xc, Yc     float64 // centroid
	Xa, Ya     float64 // first endpoint
	Xb, Yb     float64 // second endpoint
	Theta      float64 // orientation, in [0, pi)
	Length     float64
}

// Geometry is the frozen output of wire sampling and junction
// detection: N wires, their pairwise junctions, and the symmetric
// adjacency matrix over the largest connected component.
type Geometry struct {
	Wires []Wire

	// Adjacency[i][j] is true iff wires i and j are adjacent (a
	// junction exists between them). Symmetric, zero diagonal.
	Adjacency [][]bool

	// JunctionX/JunctionY[i][j] hold the intersection point of wires i
	// and j, mirrored at [j][i]. Defined only where Adjacency is true.
	JunctionX [][]float64
	JunctionY [][]float64

	// OldIndex maps a post-reduction wire index to its original
	// pre-reduction sampling index, so callers can translate external
	// references (named sources/grounds) made against the original
	// layout.
	OldIndex []int
}

// N returns the number of wires retained after largest-component
// reduction.
func (g *Geometry) N() int {
	return len(g.Wires)
}

// Generate samples a wire layout from ds using seed, detects all
// pairwise junctions, builds the adjacency matrix, and reduces the
// result to its largest connected component. It fails with
// ErrEmptyNetwork if the raw layout has no junctions at all.
func Generate(ds datasheet.Datasheet, seed int64) (*Geometry, error) {
	rng := rand.New(rand.NewSource(seed))

	wires := sampleWires(ds, rng)
	adjacency, jx, jy := detectJunctions(wires)

	if !anyTrue(adjacency) {
		return nil, ErrEmptyNetwork
	}

	component, oldIndex := largestComponent(adjacency)

	reducedWires := make([]Wire, len(component))
	for newIdx, oldIdx := range component {
		reducedWires[newIdx] = wires[oldIdx]
	}

	n := len(component)
	reducedAdj := make([][]bool, n)
	reducedJX := make([][]float64, n)
	reducedJY := make([][]float64, n)
	for i := range reducedAdj {
		reducedAdj[i] = make([]bool, n)
		reducedJX[i] = make([]float64, n)
		reducedJY[i] = make([]float64, n)
	}
	for newI, oldI := range component {
		for newJ, oldJ := range component {
			if adjacency[oldI][oldJ] {
				reducedAdj[newI][newJ] = true
				reducedJX[newI][newJ] = jx[oldI][oldJ]
				reducedJY[newI][newJ] = jy[oldI][oldJ]
			}
		}
	}

	return &Geometry{
		Wires:     reducedWires,
		Adjacency: reducedAdj,
		JunctionX: reducedJX,
		JunctionY: reducedJY,
		OldIndex:  oldIndex,
	}, nil
}

func anyTrue(adjacency [][]bool) bool {
	for _, row := range adjacency {
		for _, v := range row {
			if v {
				return true
			}
		}
	}
	return false
}

func sampleWires(ds datasheet.Datasheet, rng *rand.Rand) []Wire {
	wires := make([]Wire, ds.WiresCount)
	for i := range wires {
		length := positiveNormal(rng, ds.MeanLength, ds.StdLength)
		xc := rng.Float64() * ds.Lx
		yc := rng.Float64() * ds.Ly
		theta := rng.Float64() * math.Pi

		half := length / 2.0
		cos, sin := math.Cos(theta), math.Sin(theta)

		wires[i] = Wire{
			Xc: xc, Yc: yc,
			Xa: xc - half*cos, Ya: yc - half*sin,
			Xb: xc + half*cos, Yb: yc + half*sin,
			Theta:  theta,
			Length: length,
		}
	}
	return wires
}

// positiveNormal resamples until a strictly positive draw is found, as
// required by the length-sampling policy (unbounded retries).
func positiveNormal(rng *rand.Rand, mean, std float64) float64 {
	for {
		v := rng.NormFloat64()*std + mean
		if v > 0 {
			return v
		}
	}
}
