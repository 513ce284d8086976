package graph

import (
	"reflect"
	"testing"
)

func TestShortestPath(t *testing.T) {
	//   0 --4--> 1 --1--> 3
	//   |                 ^
	//   +--2--> 2 --5-----+
	//           2 --1--> 1
	g := NewDirectedWeightedGraph(5)
	_ = g.AddEdge(Edge{From: 0, To: 1, Weight: 4})
	e02 := g.AddEdge(Edge{From: 0, To: 2, Weight: 2})
	e13 := g.AddEdge(Edge{From: 1, To: 3, Weight: 1})
	_ = g.AddEdge(Edge{From: 2, To: 3, Weight: 5})
	e21 := g.AddEdge(Edge{From: 2, To: 1, Weight: 1})

	tests := []struct {
		name      string
		from, to  VertexID
		wantOK    bool
		wantCost  float64
		wantEdges []EdgeID
	}{
		{name: "cheaper detour", from: 0, to: 3, wantOK: true, wantCost: 4, wantEdges: []EdgeID{e02, e21, e13}},
		{name: "direct edge", from: 0, to: 2, wantOK: true, wantCost: 2, wantEdges: []EdgeID{e02}},
		{name: "self", from: 1, to: 1, wantOK: true, wantCost: 0, wantEdges: nil},
		{name: "isolated vertex", from: 0, to: 4, wantOK: false},
		{name: "against edge direction", from: 3, to: 0, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, ok := ShortestPath(g, tt.from, tt.to)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if path.Weight != tt.wantCost {
				t.Errorf("weight = %v, want %v", path.Weight, tt.wantCost)
			}
			if !reflect.DeepEqual(path.Edges, tt.wantEdges) {
				t.Errorf("edges = %v, want %v", path.Edges, tt.wantEdges)
			}
		})
	}
}

func TestGraphCounts(t *testing.T) {
	g := NewDirectedWeightedGraph(3)
	g.AddEdge(Edge{From: 0, To: 1, Weight: 1})
	g.AddEdge(Edge{From: 0, To: 2, Weight: 1})
	if g.VertexCount() != 3 || g.EdgeCount() != 2 {
		t.Errorf("counts = %d vertices, %d edges", g.VertexCount(), g.EdgeCount())
	}
	if got := len(g.IncidentEdges(0)); got != 2 {
		t.Errorf("incident edges of 0 = %d, want 2", got)
	}
	if got := g.Edge(1).To; got != 2 {
		t.Errorf("edge 1 target = %d, want 2", got)
	}
}

func TestShortestPath_ParallelEdges(t *testing.T) {
	g := NewDirectedWeightedGraph(3)
	_ = g.AddEdge(Edge{From: 0, To: 1, Weight: 3})
	cheap := g.AddEdge(Edge{From: 0, To: 1, Weight: 0.25})
	_ = g.AddEdge(Edge{From: 0, To: 1, Weight: 0.25})
	next := g.AddEdge(Edge{From: 1, To: 2, Weight: 0.5})

	path, ok := ShortestPath(g, 0, 2)
	if !ok {
		t.Fatal("expected a path")
	}
	if !reflect.DeepEqual(path.Edges, []EdgeID{cheap, next}) {
		t.Errorf("edges = %v, want %v", path.Edges, []EdgeID{cheap, next})
	}
	// The weight is the float sum of the chosen edges, not the scaled search cost.
	if path.Weight != 0.75 {
		t.Errorf("weight = %v, want 0.75", path.Weight)
	}
}

func TestShortestPath_ZeroWeightEdges(t *testing.T) {
	g := NewDirectedWeightedGraph(3)
	a := g.AddEdge(Edge{From: 0, To: 1, Weight: 0})
	b := g.AddEdge(Edge{From: 1, To: 2, Weight: 0})
	path, ok := ShortestPath(g, 0, 2)
	if !ok || path.Weight != 0 || !reflect.DeepEqual(path.Edges, []EdgeID{a, b}) {
		t.Errorf("path = %+v, ok = %v", path, ok)
	}
}
