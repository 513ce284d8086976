package catalogue

import (
	"fmt"
	"sync/atomic"

	"github.com/theoremus-urban-solutions/transit-catalogue/domain"
	"github.com/theoremus-urban-solutions/transit-catalogue/geo"
)

type stopPair struct {
	from, to domain.StopID
}

// Catalogue stores stops, buses, directed distances and the stop → buses index.
// It is not safe for concurrent mutation; once sealed it is safe for concurrent reads.
type Catalogue struct {
	stops []domain.Stop
	buses []domain.Bus

	stopByName map[string]domain.StopID
	busByName  map[string]domain.BusID

	distances    map[stopPair]int
	busesForStop map[domain.StopID]map[domain.BusID]struct{}

	sealed atomic.Bool
}

// New creates an empty catalogue.
func New() *Catalogue {
	return &Catalogue{
		stopByName:   map[string]domain.StopID{},
		busByName:    map[string]domain.BusID{},
		distances:    map[stopPair]int{},
		busesForStop: map[domain.StopID]map[domain.BusID]struct{}{},
	}
}

// Seal closes the write phase. It is idempotent.
func (c *Catalogue) Seal() { c.sealed.Store(true) }

// Sealed reports whether Seal has been called.
func (c *Catalogue) Sealed() bool { return c.sealed.Load() }

// AddStop inserts a stop if name is unseen. Adding a known name is a no-op and
// keeps the first coordinates.
func (c *Catalogue) AddStop(name string, lat, lng float64) error {
	if c.Sealed() {
		return ErrSealed
	}
	if _, ok := c.stopByName[name]; ok {
		return nil
	}
	id := domain.StopID(len(c.stops))
	c.stops = append(c.stops, domain.Stop{
		ID:          id,
		Name:        name,
		Coordinates: geo.Coordinates{Lat: lat, Lng: lng},
	})
	c.stopByName[name] = id
	c.distances[stopPair{id, id}] = 0
	return nil
}

// SetDistance records the directed road distance from → to. The reverse pair is
// seeded with the same value only if it has no entry yet.
func (c *Catalogue) SetDistance(from, to string, meters int) error {
	if c.Sealed() {
		return ErrSealed
	}
	fromID, ok := c.stopByName[from]
	if !ok {
		return fmt.Errorf("set distance %q -> %q: %w: %q", from, to, ErrStopNotFound, from)
	}
	toID, ok := c.stopByName[to]
	if !ok {
		return fmt.Errorf("set distance %q -> %q: %w: %q", from, to, ErrStopNotFound, to)
	}
	c.distances[stopPair{fromID, toID}] = meters
	reverse := stopPair{toID, fromID}
	if _, ok := c.distances[reverse]; !ok {
		c.distances[reverse] = meters
	}
	return nil
}

// AddBus adds a bus over already known stops. For an out-and-back bus
// (isRoundTrip == false) the stored route is stops followed by its reverse
// without the turnaround stop repeated.
func (c *Catalogue) AddBus(name string, stops []string, isRoundTrip bool) error {
	if c.Sealed() {
		return ErrSealed
	}
	if _, ok := c.busByName[name]; ok {
		return fmt.Errorf("add bus %q: %w", name, ErrDuplicateBus)
	}
	if len(stops) == 0 {
		return fmt.Errorf("add bus %q: %w", name, ErrEmptyRoute)
	}

	declared := make([]domain.StopID, 0, len(stops))
	unique := make(map[domain.StopID]struct{}, len(stops))
	for _, s := range stops {
		id, ok := c.stopByName[s]
		if !ok {
			return fmt.Errorf("add bus %q: %w: %q", name, ErrStopNotFound, s)
		}
		declared = append(declared, id)
		unique[id] = struct{}{}
	}

	route := declared
	if !isRoundTrip && len(declared) > 1 {
		route = make([]domain.StopID, 0, 2*len(declared)-1)
		route = append(route, declared...)
		for i := len(declared) - 2; i >= 0; i-- {
			route = append(route, declared[i])
		}
	}

	actual := 0
	geographic := 0.0
	for i := 1; i < len(route); i++ {
		prev, cur := route[i-1], route[i]
		d, ok := c.distances[stopPair{prev, cur}]
		if !ok {
			return fmt.Errorf("add bus %q: %w: %q -> %q", name, ErrDistanceUnknown,
				c.stops[prev].Name, c.stops[cur].Name)
		}
		actual += d
		geographic += geo.ComputeDistance(c.stops[prev].Coordinates, c.stops[cur].Coordinates)
	}

	id := domain.BusID(len(c.buses))
	c.buses = append(c.buses, domain.Bus{
		ID:               id,
		Name:             name,
		Route:            route,
		IsRoundTrip:      isRoundTrip,
		FinalStop:        declared[len(declared)-1],
		UniqueStops:      len(unique),
		ActualLength:     actual,
		GeographicLength: geographic,
	})
	c.busByName[name] = id

	for _, stopID := range route {
		set, ok := c.busesForStop[stopID]
		if !ok {
			set = map[domain.BusID]struct{}{}
			c.busesForStop[stopID] = set
		}
		set[id] = struct{}{}
	}
	return nil
}

// FindStop returns the stop named name.
func (c *Catalogue) FindStop(name string) (domain.Stop, bool) {
	id, ok := c.stopByName[name]
	if !ok {
		return domain.Stop{}, false
	}
	return c.stops[id], true
}

// FindBus returns the bus named name. The returned Route must not be modified.
func (c *Catalogue) FindBus(name string) (domain.Bus, bool) {
	id, ok := c.busByName[name]
	if !ok {
		return domain.Bus{}, false
	}
	return c.buses[id], true
}

// Stop returns the stop behind a handle obtained from this catalogue.
func (c *Catalogue) Stop(id domain.StopID) domain.Stop { return c.stops[id] }

// Bus returns the bus behind a handle obtained from this catalogue.
func (c *Catalogue) Bus(id domain.BusID) domain.Bus { return c.buses[id] }

// StopCount returns the number of stops.
func (c *Catalogue) StopCount() int { return len(c.stops) }

// BusCount returns the number of buses.
func (c *Catalogue) BusCount() int { return len(c.buses) }

// Stops returns all stops in insertion order.
func (c *Catalogue) Stops() []domain.Stop {
	out := make([]domain.Stop, len(c.stops))
	copy(out, c.stops)
	return out
}

// Buses returns all buses in insertion order.
func (c *Catalogue) Buses() []domain.Bus {
	out := make([]domain.Bus, len(c.buses))
	copy(out, c.buses)
	return out
}

// GetDistance returns the directed road distance in meters. The boolean is
// false when either stop is unknown or the pair was never recorded.
func (c *Catalogue) GetDistance(from, to string) (int, bool) {
	fromID, ok1 := c.stopByName[from]
	toID, ok2 := c.stopByName[to]
	if !ok1 || !ok2 {
		return 0, false
	}
	return c.DistanceBetween(fromID, toID)
}

// DistanceBetween is GetDistance over handles.
func (c *Catalogue) DistanceBetween(from, to domain.StopID) (int, bool) {
	d, ok := c.distances[stopPair{from, to}]
	return d, ok
}

// GetGeographicDistance returns the great-circle distance in meters between two
// known stops.
func (c *Catalogue) GetGeographicDistance(from, to string) (float64, bool) {
	a, ok1 := c.FindStop(from)
	b, ok2 := c.FindStop(to)
	if !ok1 || !ok2 {
		return 0, false
	}
	return geo.ComputeDistance(a.Coordinates, b.Coordinates), true
}
