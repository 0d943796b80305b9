package coloring

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/grcolor/grcolor/graph"
	"github.com/grcolor/grcolor/graph/internal/order"
)

// ParallelLDFPlus colors g using a pipelined variant of ParallelLDF that
// replaces repeated sweeping with a single total order computed up front.
// Vertices are stably sorted ascending by degree, ties broken by ascending
// index, then that order is reversed so position 0 holds the
// highest-priority (largest-degree) vertex. Worker t owns positions
// {t, t+n, t+2n, …} and processes them in increasing position order, which
// is decreasing priority order.
//
// Before coloring the vertex at a position, the worker spins on every
// neighbor of strictly higher priority (a smaller position in the order)
// until that neighbor's color becomes nonzero. Because the order is total,
// a vertex never shares its exact priority with a neighbor, so the set of
// neighbors it must wait for is well defined and, since the dependency
// always points toward a strictly earlier position, the wait graph is
// acyclic: no two workers can ever spin on each other.
func ParallelLDFPlus(ctx context.Context, g *graph.Graph, n int) ([]int32, error) {
	g.ResetColors()
	vc := g.VertexCount()
	degree := make([]int32, vc)
	for v := 0; v < vc; v++ {
		degree[v] = g.Degree(int32(v))
	}
	total := order.StablePermutationByKey(degree) // ascending degree, ties ascending index
	order.Reverse(total)                           // total[0] = highest priority

	rank := make([]int32, vc)
	for pos, v := range total {
		rank[v] = int32(pos)
	}

	grp, _ := errgroup.WithContext(ctx)
	for t := 0; t < n; t++ {
		t := t
		grp.Go(func() error {
			for pos := t; pos < vc; pos += n {
				v := int32(total[pos])
				waitForHigherPriority(g, v, rank)
				g.SetColor(v, assignColor(g, v))
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return g.Colors(), nil
}

// waitForHigherPriority busy-spins on every neighbor of v whose rank is
// strictly smaller (higher priority) until that neighbor is colored. Lower-
// priority neighbors are read as currently observed: if still 0 they will
// be colored after v and cannot affect v's color choice.
func waitForHigherPriority(g *graph.Graph, v int32, rank []int32) {
	it := g.Neighbors(v)
	var higher []int32
	for it.Next() {
		u := it.Vertex()
		if rank[u] < rank[v] {
			higher = append(higher, u)
		}
	}
	for _, u := range higher {
		for g.Color(u) == 0 {
		}
	}
}
