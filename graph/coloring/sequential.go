package coloring

import (
	"golang.org/x/exp/rand"

	"github.com/grcolor/grcolor/graph"
	"github.com/grcolor/grcolor/graph/internal/order"
)

// SeqGreedy colors g in a single pass over a random vertex order: the
// identity permutation of [0,V) shuffled by rnd. Each vertex in turn is
// assigned the smallest color absent from its already-colored neighbors.
//
// SeqGreedy uses at most Δ(g)+1 colors: when a vertex is colored at most
// Δ(g) of its neighbors have already claimed a color, so at most Δ(g)
// values are forbidden and a missing positive integer always exists among
// the first Δ(g)+1 candidates.
func SeqGreedy(g *graph.Graph, rnd *rand.Rand) []int32 {
	g.ResetColors()
	n := g.VertexCount()
	perm := make([]int32, n)
	for i := range perm {
		perm[i] = int32(i)
	}
	order.Shuffle(perm, rnd)
	for _, v := range perm {
		g.SetColor(v, assignColor(g, v))
	}
	return g.Colors()
}

// SeqLDF colors g in descending-degree order (largest-degree-first): the
// vertices are sorted ascending by degree with an unstable, arbitrary tie
// break, then visited from the back of that order to the front. Coloring
// the highest-degree vertices first tends to lower the peak number of
// colors compared to a random order, since a high-degree vertex colored
// late has accumulated the most forbidden colors from its neighbors.
func SeqLDF(g *graph.Graph) []int32 {
	g.ResetColors()
	n := g.VertexCount()
	degrees := make([]int32, n)
	indices := make([]int32, n)
	for i := 0; i < n; i++ {
		degrees[i] = g.Degree(int32(i))
		indices[i] = int32(i)
	}
	order.UnstableSortPairs(degrees, indices)
	for i := n - 1; i >= 0; i-- {
		v := indices[i]
		g.SetColor(v, assignColor(g, v))
	}
	return g.Colors()
}
