package transitcatalogue

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/theoremus-urban-solutions/transit-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transit-catalogue/domain"
	"github.com/theoremus-urban-solutions/transit-catalogue/formatter"
	"github.com/theoremus-urban-solutions/transit-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transit-catalogue/requests"
	"github.com/theoremus-urban-solutions/transit-catalogue/router"
)

// Service answers stat requests against a populated, sealed catalogue.
// It is safe for concurrent use.
type Service struct {
	cat      *catalogue.Catalogue
	router   *router.Router
	renderer *renderer.MapRenderer
	loadedAt time.Time

	mapOnce sync.Once
	mapSVG  string
}

// NewService populates a catalogue from batch and builds the router.
func NewService(batch domain.Batch, settings router.Settings, render renderer.Settings) (*Service, error) {
	if err := render.Validate(); err != nil {
		return nil, fmt.Errorf("invalid render settings: %w", err)
	}
	cat := catalogue.New()
	if err := requests.Populate(cat, batch); err != nil {
		return nil, fmt.Errorf("failed to populate catalogue: %w", err)
	}
	r := router.New(cat, settings)
	if err := r.Build(); err != nil {
		return nil, fmt.Errorf("failed to build router: %w", err)
	}
	glog.Infof("service ready: %d stops, %d buses, wait %v min, velocity %v km/h",
		cat.StopCount(), cat.BusCount(), settings.BusWaitTime, settings.BusVelocity)
	return &Service{cat: cat, router: r, renderer: renderer.New(render), loadedAt: time.Now()}, nil
}

// NewServiceFromInput builds a service from a decoded request document.
// Routing and render settings in the document take precedence over the
// fallbacks.
func NewServiceFromInput(in requests.Input, routing router.Settings, render renderer.Settings) (*Service, error) {
	if in.Settings != nil {
		routing = *in.Settings
	}
	if in.Render != nil {
		render = *in.Render
	}
	return NewService(in.Batch, routing, render)
}

// Catalogue returns the sealed catalogue.
func (s *Service) Catalogue() *catalogue.Catalogue { return s.cat }

// LoadedAt returns when the service finished building.
func (s *Service) LoadedAt() time.Time { return s.loadedAt }

// Map returns the SVG map of the network. The catalogue is sealed, so the
// document is rendered once and reused.
func (s *Service) Map() string {
	s.mapOnce.Do(func() {
		s.mapSVG = s.renderer.Render(s.cat)
		glog.V(1).Infof("rendered map: %d bytes", len(s.mapSVG))
	})
	return s.mapSVG
}

// Answer resolves one stat request.
func (s *Service) Answer(req requests.StatRequest) formatter.Response {
	switch req.Type {
	case requests.TypeBus:
		if stat, ok := s.cat.StatsForBus(req.Name); ok {
			return formatter.WrapBus(req.ID, stat)
		}
		return formatter.WrapNotFound(req)
	case requests.TypeStop:
		if stat, ok := s.cat.StatsForStop(req.Name); ok {
			return formatter.WrapStop(req.ID, stat)
		}
		return formatter.WrapNotFound(req)
	case requests.TypeRoute:
		info, err := s.router.RouteBetween(req.From, req.To)
		if err != nil {
			if !errors.Is(err, router.ErrStopNotFound) && !errors.Is(err, router.ErrNoRoute) {
				glog.Warningf("route %q -> %q: %v", req.From, req.To, err)
			}
			return formatter.WrapNotFound(req)
		}
		return formatter.WrapRoute(req.ID, req.From, req.To, info)
	case requests.TypeMap:
		return formatter.WrapMap(req.ID, s.Map())
	default:
		return formatter.WrapUnsupported(req)
	}
}

// AnswerAll resolves requests in order.
func (s *Service) AnswerAll(reqs []requests.StatRequest) []formatter.Response {
	out := make([]formatter.Response, 0, len(reqs))
	for _, req := range reqs {
		glog.V(1).Infof("stat request %+v", req)
		out = append(out, s.Answer(req))
	}
	return out
}

// AllBuses returns statistics for every bus in insertion order.
func (s *Service) AllBuses() []formatter.Response {
	buses := s.cat.Buses()
	out := make([]formatter.Response, 0, len(buses))
	for _, b := range buses {
		stat, _ := s.cat.StatsForBus(b.Name)
		out = append(out, formatter.WrapBus(0, stat))
	}
	return out
}

// AllStops returns statistics for every stop in insertion order.
func (s *Service) AllStops() []formatter.Response {
	stops := s.cat.Stops()
	out := make([]formatter.Response, 0, len(stops))
	for _, st := range stops {
		stat, _ := s.cat.StatsForStop(st.Name)
		out = append(out, formatter.WrapStop(0, stat))
	}
	return out
}
