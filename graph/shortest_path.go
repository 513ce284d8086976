package graph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath/graph/algorithms"
)

// Path is a shortest path: its total weight and the edges traversed in order.
type Path struct {
	Weight float64
	Edges  []EdgeID
}

// ShortestPath runs Dijkstra's algorithm from `from` and returns the cheapest
// path to `to`. The boolean is false when `to` is unreachable. A query from a
// vertex to itself yields an empty zero-weight path. Search state is local to
// the call, so concurrent queries over an unchanging graph are safe.
//
// The search compares scaled integer weights. Path.Weight is the exact sum
// of the float weights of the edges taken.
func ShortestPath(g *DirectedWeightedGraph, from, to VertexID) (Path, bool) {
	if from == to {
		return Path{}, true
	}
	dist, parent, err := algorithms.Dijkstra(g.g, vertexKey(from))
	if err != nil {
		return Path{}, false
	}
	if d, ok := dist[vertexKey(to)]; !ok || d == math.MaxInt64 {
		return Path{}, false
	}
	edges, err := reconstructPath(g, parent, from, to)
	if err != nil {
		return Path{}, false
	}
	path := Path{Edges: edges}
	for _, id := range edges {
		path.Weight += g.edges[id].Weight
	}
	return path, true
}

// reconstructPath walks the predecessor chain back from `to` and picks, for
// every hop, the cheapest of the parallel edges joining the two vertices.
func reconstructPath(g *DirectedWeightedGraph, parent map[string]string, from, to VertexID) ([]EdgeID, error) {
	var path []EdgeID
	for v := to; v != from; {
		if len(path) > len(g.incidence) {
			return nil, fmt.Errorf("graph: predecessor cycle through vertex %d", v)
		}
		p, ok := parseVertexKey(parent[vertexKey(v)])
		if !ok {
			return nil, fmt.Errorf("graph: broken predecessor chain at vertex %d", v)
		}
		id, ok := g.cheapestEdge(p, v)
		if !ok {
			return nil, fmt.Errorf("graph: no edge %d -> %d", p, v)
		}
		path = append(path, id)
		v = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// cheapestEdge returns the lowest-weight edge from → to; ties go to the
// earliest edge.
func (g *DirectedWeightedGraph) cheapestEdge(from, to VertexID) (EdgeID, bool) {
	best, found := EdgeID(-1), false
	for _, id := range g.incidence[from] {
		e := g.edges[id]
		if e.To != to {
			continue
		}
		if !found || e.Weight < g.edges[best].Weight {
			best, found = id, true
		}
	}
	return best, found
}
