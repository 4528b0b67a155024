package core

// DegeneracyOrder returns a permutation of [0,n) in degeneracy order: the
// sequence produced by repeatedly removing a minimum-residual-degree vertex
// from the graph (spec §3). Each vertex has at most d later neighbors in the
// returned order, where d is the degeneracy (DegeneracyOrder also returns d).
//
// Grounded on other_examples/kubernetes-kubernetes__bron_kerbosch.go's
// degeneracyOrdering (a bucket-queue scheme, in place of the linear rescan
// original_source/src/graph.cpp::compute_degeneracy_ordering uses),
// generalized from gonum's graph.Node interface to this package's dense int
// vertices. The running time is not O(n+m): each pop scans the buckets up
// from degree 0 and then its bucket for the lowest id, and each neighbor
// update scans a bucket to remove that neighbor, so buckets holding Θ(n)
// vertices (e.g. the leaves of a star) make the pass Θ(n^2).
//
// Ties (equal residual degree) are broken by smallest vertex id: among the
// vertices currently at the minimum residual degree, the one actually
// removed next is always the lowest-id member of that bucket, so the
// ordering — and therefore recursion node counts downstream — is
// reproducible across runs (spec §5 determinism).
func (g *Graph) DegeneracyOrder() (order []int, degeneracy int) {
	n := g.n
	order = make([]int, 0, n)
	if n == 0 {
		return order, 0
	}

	deg := make([]int, n)
	maxDeg := 0
	for v := 0; v < n; v++ {
		deg[v] = len(g.neighbors[v])
		if deg[v] > maxDeg {
			maxDeg = deg[v]
		}
	}

	// buckets[d] holds, in no particular order, the not-yet-removed vertices
	// whose current residual degree is d; the pop step below always scans
	// out the lowest-id member rather than relying on insertion order.
	buckets := make([][]int, maxDeg+1)
	for v := 0; v < n; v++ {
		buckets[deg[v]] = append(buckets[deg[v]], v)
	}
	removed := make([]bool, n)

	for processed := 0; processed < n; processed++ {
		i := 0
		for i <= maxDeg && len(buckets[i]) == 0 {
			i++
		}
		if i > degeneracy {
			degeneracy = i
		}

		bucket := buckets[i]
		minIdx, v := 0, bucket[0]
		for idx, x := range bucket {
			if x < v {
				minIdx, v = idx, x
			}
		}
		bucket[minIdx] = bucket[len(bucket)-1]
		buckets[i] = bucket[:len(bucket)-1]

		order = append(order, v)
		removed[v] = true

		for _, w := range g.neighbors[v] {
			if removed[w] {
				continue
			}
			dw := deg[w]
			// Remove w from buckets[dw]; order within the bucket carries no
			// meaning (the pop step always scans for the minimum id).
			b := buckets[dw]
			for idx, x := range b {
				if x == w {
					b = append(b[:idx], b[idx+1:]...)
					break
				}
			}
			buckets[dw] = b
			deg[w] = dw - 1
			buckets[dw-1] = append(buckets[dw-1], w)
		}
	}

	return order, degeneracy
}
