// Package graph implements a directed weighted multigraph with non-negative
// edge weights and a single-source shortest path search over it. Adjacency
// and the search itself are provided by lvlath; this package keeps integer
// vertex and edge handles and the exact float weights on top of it.
package graph

import (
	"math"
	"strconv"

	"github.com/katalvlaran/lvlath/graph/core"
)

// VertexID indexes a vertex in [0, VertexCount).
type VertexID int

// EdgeID indexes an edge in insertion order.
type EdgeID int

// Edge is a directed weighted edge.
type Edge struct {
	From   VertexID
	To     VertexID
	Weight float64
}

// weightScale converts float weights into the int64 weights lvlath sums.
// One unit is a millionth of a weight unit.
const weightScale = 1e6

// DirectedWeightedGraph stores edges and their per-vertex incidence lists.
// Parallel edges between the same pair of vertices are allowed.
type DirectedWeightedGraph struct {
	g         *core.Graph
	edges     []Edge
	incidence [][]EdgeID
}

// NewDirectedWeightedGraph creates a graph with vertexCount vertices and no edges.
func NewDirectedWeightedGraph(vertexCount int) *DirectedWeightedGraph {
	g := core.NewGraph(true, true)
	for v := 0; v < vertexCount; v++ {
		g.AddVertex(&core.Vertex{ID: vertexKey(VertexID(v)), Metadata: map[string]interface{}{}})
	}
	return &DirectedWeightedGraph{
		g:         g,
		incidence: make([][]EdgeID, vertexCount),
	}
}

// AddEdge appends an edge and returns its id. Both endpoints must be valid
// vertices and the weight must not be negative.
func (g *DirectedWeightedGraph) AddEdge(e Edge) EdgeID {
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, e)
	g.incidence[e.From] = append(g.incidence[e.From], id)
	g.g.AddEdge(vertexKey(e.From), vertexKey(e.To), scaledWeight(e.Weight))
	return id
}

// VertexCount returns the number of vertices.
func (g *DirectedWeightedGraph) VertexCount() int { return len(g.incidence) }

// EdgeCount returns the number of edges.
func (g *DirectedWeightedGraph) EdgeCount() int { return len(g.edges) }

// Edge returns the edge with the given id.
func (g *DirectedWeightedGraph) Edge(id EdgeID) Edge { return g.edges[id] }

// IncidentEdges returns the ids of the edges leaving v. The slice must not be modified.
func (g *DirectedWeightedGraph) IncidentEdges(v VertexID) []EdgeID { return g.incidence[v] }

func vertexKey(v VertexID) string { return strconv.Itoa(int(v)) }

func parseVertexKey(s string) (VertexID, bool) {
	v, err := strconv.Atoi(s)
	return VertexID(v), err == nil
}

func scaledWeight(w float64) int64 { return int64(math.Round(w * weightScale)) }
