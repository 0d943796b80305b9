package coloring

import (
	"context"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/grcolor/grcolor/graph"
)

// ParallelJP colors g with the Jones-Plassmann algorithm. Every vertex
// draws an independent random priority from rnd, then n worker goroutines
// each own a stripe of vertices (worker t owns {v : v mod n == t}) and
// repeatedly sweep their stripe coloring any vertex that is a strict local
// maximum among its currently-uncolored neighbors.
//
// A vertex u is a local maximum when every uncolored neighbor v satisfies
// w[v] < w[u], or w[v] == w[u] and v < u. Because priority with this
// index tie-break is a strict total order, at most one of any two adjacent
// vertices is ever a local maximum in a given sweep, so no two neighbors
// are ever colored concurrently. Reads of neighbor colors are relaxed: a
// worker observing a stale 0 for a just-colored neighbor only delays its
// own progress by one sweep, since the priority relation is symmetric.
func ParallelJP(ctx context.Context, g *graph.Graph, n int, rnd *rand.Rand) ([]int32, error) {
	g.ResetColors()
	vc := g.VertexCount()
	weight := make([]int32, vc)
	for v := range weight {
		weight[v] = rnd.Int31()
	}

	ready := func(u int32) bool {
		it := g.Neighbors(u)
		for it.Next() {
			v := it.Vertex()
			if g.Color(v) != 0 {
				continue
			}
			if weight[v] > weight[u] || (weight[v] == weight[u] && v > u) {
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

// sweepStripe runs the repeated-sweep worker loop shared by ParallelJP and
// ParallelLDF: own every vertex v with v mod n == worker, and keep
// re-scanning the stripe, coloring any vertex ready reports true for,
// until every owned vertex has been colored.
func sweepStripe(g *graph.Graph, vc, n, worker int, ready func(int32) bool) {
	uncolored := 0
	for v := worker; v < vc; v += n {
		uncolored++
	}
	for uncolored > 0 {
		for v := worker; v < vc; v += n {
			u := int32(v)
			if g.Color(u) != 0 {
				continue
			}
			if ready(u) {
				g.SetColor(u, assignColor(g, u))
				uncolored--
			}
		}
	}
}
