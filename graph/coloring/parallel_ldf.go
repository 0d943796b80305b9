package coloring

import (
	"context"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/grcolor/grcolor/graph"
)

// ParallelLDF colors g with the same repeated-sweep, priority-arbitrated
// structure as ParallelJP, but with a richer priority relation: vertex u is
// a local maximum among its uncolored neighbors v iff
// (degree[v], w[v], v) is lexicographically less than (degree[u], w[u], u).
// Degree dominates, an independent random weight breaks degree ties, and
// vertex index breaks weight ties. Preferring high-degree vertices tends to
// use fewer colors than JP's pure-random priority, at the cost of an
// initial O(V) pass to compute degrees.
func ParallelLDF(ctx context.Context, g *graph.Graph, n int, rnd *rand.Rand) ([]int32, error) {
	g.ResetColors()
	vc := g.VertexCount()
	degree := make([]int32, vc)
	weight := make([]int32, vc)
	for v := 0; v < vc; v++ {
		degree[v] = g.Degree(int32(v))
		weight[v] = rnd.Int31()
	}

	lexLess := func(v, u int32) bool {
		if degree[v] != degree[u] {
			return degree[v] < degree[u]
		}
		if weight[v] != weight[u] {
			return weight[v] < weight[u]
		}
		return v < u
	}

	ready := func(u int32) bool {
		it := g.Neighbors(u)
		for it.Next() {
			v := it.Vertex()
			if g.Color(v) != 0 {
				continue
			}
			if !lexLess(v, u) {
				return false
			}
		}
		return true
	}

	grp, _ := errgroup.WithContext(ctx)
	for t := 0; t < n; t++ {
		t := t
		grp.Go(func() error {
			sweepStripe(g, vc, n, t, ready)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return g.Colors(), nil
}
