package graph_test

import (
	"testing"

	"github.com/grcolor/grcolor/graph"
)

func symmetric(g *graph.Graph, u, v int32) {
	g.AddEdge(u, v)
	g.AddEdge(v, u)
}

func TestAddEdgeSymmetric(t *testing.T) {
	g := graph.New(3)
	symmetric(g, 0, 1)

	if g.Degree(0) != 1 || g.Degree(1) != 1 || g.Degree(2) != 0 {
		t.Fatalf("degrees = %d,%d,%d, want 1,1,0", g.Degree(0), g.Degree(1), g.Degree(2))
	}
	if g.EdgeCount() != 2 {
		t.Fatalf("EdgeCount() = %d, want 2", g.EdgeCount())
	}

	it := g.Neighbors(0)
	if !it.Next() || it.Vertex() != 1 {
		t.Fatalf("expected vertex 0 to neighbor 1")
	}
}

func TestAddEdgeDropsSelfLoop(t *testing.T) {
	g := graph.New(2)
	g.AddEdge(0, 0)
	if g.Degree(0) != 0 || g.EdgeCount() != 0 {
		t.Fatalf("self-loop was not dropped: degree=%d edges=%d", g.Degree(0), g.EdgeCount())
	}
}

func TestResetColors(t *testing.T) {
	g := graph.New(2)
	g.SetColor(0, 1)
	g.SetColor(1, 2)
	g.ResetColors()
	if g.Color(0) != 0 || g.Color(1) != 0 {
		t.Fatalf("colors not reset: %d, %d", g.Color(0), g.Color(1))
	}
}

func TestColorsSnapshot(t *testing.T) {
	g := graph.New(3)
	g.SetColor(0, 1)
	g.SetColor(1, 2)
	g.SetColor(2, 1)
	got := g.Colors()
	want := []int32{1, 2, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Colors() = %v, want %v", got, want)
		}
	}
}

func TestValid(t *testing.T) {
	// Triangle 0-1-2.
	g := graph.New(3)
	symmetric(g, 0, 1)
	symmetric(g, 1, 2)
	symmetric(g, 0, 2)

	if g.Valid([]int32{1, 2, 1}) {
		t.Fatalf("expected invalid coloring (0 and 2 share color 1) to be rejected")
	}
	if !g.Valid([]int32{1, 2, 3}) {
		t.Fatalf("expected valid 3-coloring of a triangle to be accepted")
	}
	if g.Valid([]int32{0, 2, 3}) {
		t.Fatalf("expected unassigned vertex (color 0) to be rejected")
	}
}

func TestValidCurrent(t *testing.T) {
	g := graph.New(2)
	symmetric(g, 0, 1)
	g.SetColor(0, 1)
	g.SetColor(1, 1)
	if g.ValidCurrent() {
		t.Fatalf("adjacent vertices sharing a color should be invalid")
	}
	g.SetColor(1, 2)
	if !g.ValidCurrent() {
		t.Fatalf("expected valid coloring to be accepted")
	}
}

func TestMaxDegree(t *testing.T) {
	g := graph.New(4)
	symmetric(g, 0, 1)
	symmetric(g, 0, 2)
	symmetric(g, 0, 3)
	if g.MaxDegree() != 3 {
		t.Fatalf("MaxDegree() = %d, want 3", g.MaxDegree())
	}
}

func TestEmptyGraph(t *testing.T) {
	g := graph.New(0)
	if g.VertexCount() != 0 {
		t.Fatalf("VertexCount() = %d, want 0", g.VertexCount())
	}
	if !g.Valid(nil) {
		t.Fatalf("the empty coloring of the empty graph must be valid")
	}
}
