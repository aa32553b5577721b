package geometry

// disjointSet is an int-indexed union-find with path compression and
// union by rank, the same pattern katalvlaran/lvlath's prim_kruskal
// package uses over string vertex IDs — here specialized to the dense
// wire-index space the adjacency matrix already uses, so no string
// keying or graph object is needed.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}
	return ds
}

func (ds *disjointSet) find(x int) int {
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}
	return x
}

func (ds *disjointSet) union(a, b int) {
	ra, rb := ds.find(a), ds.find(b)
	if ra == rb {
		return
	}
	switch {
	case ds.rank[ra] < ds.rank[rb]:
		ds.parent[ra] = rb
	case ds.rank[ra] > ds.rank[rb]:
		ds.parent[rb] = ra
	default:
		ds.parent[rb] = ra
		ds.rank[ra]++
	}
}

// largestComponent identifies the largest connected component of the
// adjacency graph and returns it as a sorted slice of original wire
// indices (`component`, where component[newIdx] = oldIdx), plus the
// full old-index mapping exposed on Geometry.OldIndex (identical to
// `component` — kept as a separate return for clarity at call sites).
// Ties are broken by smallest minimum index: components are visited in
// map order, so each one is compared explicitly by (size desc, min
// index asc).
func largestComponent(adjacency [][]bool) (component []int, oldIndex []int) {
	n := len(adjacency)
	ds := newDisjointSet(n)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if adjacency[i][j] {
				ds.union(i, j)
			}
		}
	}

	members := make(map[int][]int, n)
	for i := 0; i < n; i++ {
		root := ds.find(i)
		members[root] = append(members[root], i)
	}

	bestRoot := -1
	bestSize := -1
	bestMin := -1
	for root, group := range members {
		size := len(group)
		minIdx := group[0] // group is built in increasing i order, so group[0] is its min
		if size > bestSize || (size == bestSize && minIdx < bestMin) {
			bestRoot, bestSize, bestMin = root, size, minIdx
		}
	}

	component = members[bestRoot]
	return component, component
}
