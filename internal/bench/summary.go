package bench

import (
	"time"

	"github.com/grcolor/grcolor/graph"
)

// GraphSummary captures the per-graph load diagnostics the benchmark
// driver reports before coloring begins: how long the load took, the
// graph's size, its densest vertex, and a rough memory footprint.
type GraphSummary struct {
	Name           string
	VertexCount    int
	MaxDegree      int32
	LoadDuration   time.Duration
	EstimatedBytes uint64
}

// Summarize builds a GraphSummary from a freshly loaded graph and the
// duration its load took.
func Summarize(name string, g *graph.Graph, loadDuration time.Duration) GraphSummary {
	return GraphSummary{
		Name:           name,
		VertexCount:    g.VertexCount(),
		MaxDegree:      g.MaxDegree(),
		LoadDuration:   loadDuration,
		EstimatedBytes: g.EstimatedBytes(),
	}
}
