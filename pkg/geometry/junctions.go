package geometry

import "math"

// collinearEpsilon is the determinant threshold below which two
// segments are treated as parallel/collinear and therefore
// non-intersecting, following the original nanowire-network model's
// `detect_junctions` (see original_source nn_simulator wires.py).
const collinearEpsilon = 0.01

// detectJunctions finds every pairwise intersection among wires and
// returns the resulting symmetric adjacency matrix together with the
// mirrored junction-coordinate matrices.
func detectJunctions(wires []Wire) (adjacency [][]bool, jx, jy [][]float64) {
	n := len(wires)
	adjacency = make([][]bool, n)
	jx = make([][]float64, n)
	jy = make([][]float64, n)
	for i := range adjacency {
		adjacency[i] = make([]bool, n)
		jx[i] = make([]float64, n)
		jy[i] = make([]float64, n)
	}

	// Precompute per-wire quantities used by the line-intersection
	// solve, avoiding recomputation across the O(n^2) pairs.
	deltaX := make([]float64, n)
	deltaY := make([]float64, n)
	m := make([]float64, n)
	xMin, xMax := make([]float64, n), make([]float64, n)
	yMin, yMax := make([]float64, n), make([]float64, n)
	for i, w := range wires {
		deltaX[i] = w.Xa - w.Xb
		deltaY[i] = w.Ya - w.Yb
		m[i] = w.Xa*w.Yb - w.Ya*w.Xb
		xMin[i], xMax[i] = minmax(w.Xa, w.Xb)
		yMin[i], yMax[i] = minmax(w.Ya, w.Yb)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			// Reject pairs whose bounding intervals don't overlap
			// before doing any line-solve work.
			if xMax[i] < xMin[j] || xMax[j] < xMin[i] {
				continue
			}
			if yMax[i] < yMin[j] || yMax[j] < yMin[i] {
				continue
			}

			x, y, ok := intersect(deltaX[i], deltaY[i], m[i], deltaX[j], deltaY[j], m[j])
			if !ok {
				continue
			}
			if !between(x, xMin[i], xMax[i]) || !between(x, xMin[j], xMax[j]) {
				continue
			}
			if !between(y, yMin[i], yMax[i]) || !between(y, yMin[j], yMax[j]) {
				continue
			}

			adjacency[i][j] = true
			adjacency[j][i] = true
			jx[i][j], jx[j][i] = x, x
			jy[i][j], jy[j][i] = y, y
		}
	}

	return adjacency, jx, jy
}

// intersect solves the two-line system given each line's (deltaX,
// deltaY, m) where deltaX = xa-xb, deltaY = ya-yb, m = xa*yb - ya*xb.
// Collinear or parallel lines (|c| below collinearEpsilon) report no
// intersection.
func intersect(dx1, dy1, m1, dx2, dy2, m2 float64) (x, y float64, ok bool) {
	c := dx1*dy2 - dy1*dx2
	if math.Abs(c) < collinearEpsilon {
		return 0, 0, false
	}
	x = (m1*dx2 - m2*dx1) / c
	y = (m1*dy2 - m2*dy1) / c
	return x, y, true
}

func between(v, lo, hi float64) bool {
	return lo <= v && v <= hi
}

func minmax(a, b float64) (lo, hi float64) {
	if a < b {
		return a, b
	}
	return b, a
}
