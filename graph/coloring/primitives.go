// Package coloring implements the proper vertex coloring algorithms the
// benchmark driver compares: two sequential greedy variants and three
// parallel variants that arbitrate color assignment across worker
// goroutines using only priority comparisons and atomic reads of the color
// vector, with no per-vertex locking.
package coloring

import "github.com/grcolor/grcolor/graph"

// smallestMissingPositive returns the smallest positive integer absent from
// used. Zero and negative entries (an uncolored neighbor reports 0) are
// treated as absent and never considered a match. used is rearranged in
// place: this is the destructive O(n) time, O(1) extra space scheme of
// placing each value v in [1,len(used)] at index v-1 by repeated swap, then
// scanning for the first index whose value is not its own rank.
func smallestMissingPositive(used []int32) int32 {
	n := len(used)
	for i := 0; i < n; i++ {
		for used[i] > 0 && int(used[i]) <= n && used[used[i]-1] != used[i] {
			j := used[i] - 1
			used[i], used[j] = used[j], used[i]
		}
	}
	for i := 0; i < n; i++ {
		if used[i] != int32(i+1) {
			return int32(i + 1)
		}
	}
	return int32(n + 1)
}

// assignColor returns the smallest missing positive color with respect to
// v's current neighbor colors, including neighbors not yet colored (which
// report the unassigned sentinel 0 and are ignored by
// smallestMissingPositive).
func assignColor(g *graph.Graph, v int32) int32 {
	used := make([]int32, 0, g.Degree(v))
	it := g.Neighbors(v)
	for it.Next() {
		used = append(used, g.Color(it.Vertex()))
	}
	return smallestMissingPositive(used)
}
