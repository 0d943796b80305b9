package coloring

import (
	"context"

	"golang.org/x/exp/rand"

	"github.com/grcolor/grcolor/graph"
	"github.com/grcolor/grcolor/internal/colorerr"
)

// Method names accepted by Color, matching the benchmark driver's method
// flag and the CSV coloring_method column exactly.
const (
	SeqGreedyMethod       = "seq_greedy"
	SeqLDFMethod          = "seq_ldf"
	ParallelJPMethod      = "par_jp"
	ParallelLDFMethod     = "par_ldf"
	ParallelLDFPlusMethod = "par_ldf_plus"
)

// Methods lists the fixed set of names Color accepts, in the order the
// benchmark driver reports them.
var Methods = []string{SeqGreedyMethod, SeqLDFMethod, ParallelJPMethod, ParallelLDFMethod, ParallelLDFPlusMethod}

// Color dispatches to the coloring algorithm named by method. n is the
// worker count for the parallel methods and is ignored by the sequential
// ones; it must be >= 1. rnd seeds whatever randomness the method needs;
// sequential and JP/LDF runs are reproducible by seeding rnd identically,
// while LDF+ needs no randomness at all.
//
// Color never fails logically: it returns an error only for an unknown
// method name, matching the dispatcher's sole parameter-error contract.
// Thread count validation is the CLI's responsibility, not the core's.
func Color(ctx context.Context, g *graph.Graph, method string, n int, rnd *rand.Rand) ([]int32, error) {
	switch method {
	case SeqGreedyMethod:
		return SeqGreedy(g, rnd), nil
	case SeqLDFMethod:
		return SeqLDF(g), nil
	case ParallelJPMethod:
		return ParallelJP(ctx, g, n, rnd)
	case ParallelLDFMethod:
		return ParallelLDF(ctx, g, n, rnd)
	case ParallelLDFPlusMethod:
		return ParallelLDFPlus(ctx, g, n)
	default:
		return nil, colorerr.New(colorerr.CodeInvalidMethod, "unknown method %q", method)
	}
}
