package catalogue

import (
	"sort"

	"github.com/theoremus-urban-solutions/transit-catalogue/domain"
)

// BusesThroughStop returns the sorted names of the buses visiting the stop.
// A known stop without buses yields an empty, non-nil slice.
func (c *Catalogue) BusesThroughStop(name string) ([]string, bool) {
	id, ok := c.stopByName[name]
	if !ok {
		return nil, false
	}
	set := c.busesForStop[id]
	names := make([]string, 0, len(set))
	for busID := range set {
		names = append(names, c.buses[busID].Name)
	}
	sort.Strings(names)
	return names, true
}

// StatsForBus returns the statistics snapshot of a bus.
func (c *Catalogue) StatsForBus(name string) (domain.BusStat, bool) {
	bus, ok := c.FindBus(name)
	if !ok {
		return domain.BusStat{}, false
	}
	return domain.BusStat{
		Name:          bus.Name,
		StopsOnRoute:  len(bus.Route),
		UniqueStops:   bus.UniqueStops,
		RouteLength:   bus.ActualLength,
		GeographicLen: bus.GeographicLength,
		Curvature:     bus.Curvature(),
		IsRoundTrip:   bus.IsRoundTrip,
		FirstStopName: c.stops[bus.Route[0]].Name,
		FinalStopName: c.stops[bus.FinalStop].Name,
	}, true
}

// StatsForStop returns the statistics snapshot of a stop.
func (c *Catalogue) StatsForStop(name string) (domain.StopStat, bool) {
	stop, ok := c.FindStop(name)
	if !ok {
		return domain.StopStat{}, false
	}
	buses, _ := c.BusesThroughStop(name)
	return domain.StopStat{
		Name:        stop.Name,
		Coordinates: stop.Coordinates,
		Buses:       buses,
	}, true
}
