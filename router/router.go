package router

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/golang/glog"

	"github.com/theoremus-urban-solutions/transit-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transit-catalogue/domain"
	"github.com/theoremus-urban-solutions/transit-catalogue/graph"
)

var (
	// ErrStopNotFound is returned by RouteBetween for a stop unknown to the catalogue.
	ErrStopNotFound = errors.New("stop not found")
	// ErrNoRoute is returned by RouteBetween when the destination is unreachable.
	ErrNoRoute = errors.New("no route")
	// ErrNotBuilt is returned by RouteBetween before Build.
	ErrNotBuilt = errors.New("router is not built")
	// ErrAlreadyBuilt is returned by a second call to Build.
	ErrAlreadyBuilt = errors.New("router is already built")
)

// edgeInfo decodes a graph edge back into an itinerary item.
type edgeInfo struct {
	kind domain.ItemKind
	stop domain.StopID // wait edges
	bus  domain.BusID  // ride edges
	span int
	time float64
}

// Router builds the wait/ride graph once and answers queries over it.
type Router struct {
	cat      *catalogue.Catalogue
	settings Settings

	graph *graph.DirectedWeightedGraph
	edges []edgeInfo

	building atomic.Bool
	built    atomic.Bool
}

// New creates an unbuilt router over cat.
func New(cat *catalogue.Catalogue, settings Settings) *Router {
	return &Router{cat: cat, settings: settings}
}

// Settings returns the router's settings.
func (r *Router) Settings() Settings { return r.settings }

// Built reports whether Build has completed.
func (r *Router) Built() bool { return r.built.Load() }

func arrivalVertex(id domain.StopID) graph.VertexID   { return graph.VertexID(2 * id) }
func departureVertex(id domain.StopID) graph.VertexID { return graph.VertexID(2*id + 1) }

// Build seals the catalogue and constructs the routing graph. It may be
// called only once per Router.
func (r *Router) Build() error {
	if err := r.settings.Validate(); err != nil {
		return err
	}
	if !r.building.CompareAndSwap(false, true) {
		return ErrAlreadyBuilt
	}
	r.cat.Seal()

	g := graph.NewDirectedWeightedGraph(2 * r.cat.StopCount())
	r.edges = r.edges[:0]

	for _, stop := range r.cat.Stops() {
		r.addEdge(g, graph.Edge{
			From:   arrivalVertex(stop.ID),
			To:     departureVertex(stop.ID),
			Weight: r.settings.BusWaitTime,
		}, edgeInfo{kind: domain.ItemWait, stop: stop.ID, time: r.settings.BusWaitTime})
	}

	for _, bus := range r.cat.Buses() {
		if err := r.addBusEdges(g, bus); err != nil {
			return err
		}
	}

	r.graph = g
	r.built.Store(true)
	glog.V(1).Infof("router built: %d vertices, %d edges", g.VertexCount(), g.EdgeCount())
	return nil
}

func (r *Router) addBusEdges(g *graph.DirectedWeightedGraph, bus domain.Bus) error {
	route := bus.Route
	for i := 0; i < len(route); i++ {
		meters := 0
		for j := i + 1; j < len(route); j++ {
			d, ok := r.cat.DistanceBetween(route[j-1], route[j])
			if !ok {
				return fmt.Errorf("bus %q: %w", bus.Name, catalogue.ErrDistanceUnknown)
			}
			meters += d
			minutes := r.settings.travelMinutes(meters)
			r.addEdge(g, graph.Edge{
				From:   departureVertex(route[i]),
				To:     arrivalVertex(route[j]),
				Weight: minutes,
			}, edgeInfo{kind: domain.ItemRide, bus: bus.ID, span: j - i, time: minutes})
		}
	}
	return nil
}

func (r *Router) addEdge(g *graph.DirectedWeightedGraph, e graph.Edge, info edgeInfo) {
	id := g.AddEdge(e)
	if int(id) != len(r.edges) {
		panic("router: edge metadata out of sync with graph")
	}
	r.edges = append(r.edges, info)
}

// RouteBetween returns the fastest itinerary from one stop to another.
func (r *Router) RouteBetween(from, to string) (domain.RouteInfo, error) {
	if !r.built.Load() {
		return domain.RouteInfo{}, ErrNotBuilt
	}
	fromStop, ok := r.cat.FindStop(from)
	if !ok {
		return domain.RouteInfo{}, fmt.Errorf("%w: %q", ErrStopNotFound, from)
	}
	toStop, ok := r.cat.FindStop(to)
	if !ok {
		return domain.RouteInfo{}, fmt.Errorf("%w: %q", ErrStopNotFound, to)
	}
	if fromStop.ID == toStop.ID {
		return domain.RouteInfo{Items: []domain.RouteItem{}}, nil
	}

	path, ok := graph.ShortestPath(r.graph, arrivalVertex(fromStop.ID), arrivalVertex(toStop.ID))
	if !ok {
		return domain.RouteInfo{}, fmt.Errorf("%w: %q -> %q", ErrNoRoute, from, to)
	}

	info := domain.RouteInfo{
		TotalTime: path.Weight,
		Items:     make([]domain.RouteItem, 0, len(path.Edges)),
	}
	for _, id := range path.Edges {
		info.Items = append(info.Items, r.decode(r.edges[id]))
	}
	glog.V(2).Infof("route %q -> %q: %.2f min, %d items", from, to, info.TotalTime, len(info.Items))
	return info, nil
}

func (r *Router) decode(e edgeInfo) domain.RouteItem {
	if e.kind == domain.ItemWait {
		return domain.RouteItem{
			Kind:     domain.ItemWait,
			StopName: r.cat.Stop(e.stop).Name,
			Time:     e.time,
		}
	}
	return domain.RouteItem{
		Kind:      domain.ItemRide,
		BusName:   r.cat.Bus(e.bus).Name,
		SpanCount: e.span,
		Time:      e.time,
	}
}
