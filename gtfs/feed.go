package gtfs

import "sort"

// Feed stores the parts of a GTFS static feed needed to build a catalogue.
type Feed struct {
	routeShortNames map[string]string     // route_id -> short_name
	tripToRoute     map[string]string     // trip_id -> route_id
	tripDirection   map[string]string     // trip_id -> direction_id ("0"|"1"|"")
	stopNames       map[string]string     // stop_id -> name
	stopCoord       map[string][2]float64 // stop_id -> [lon,lat]
	TripStopSeq     map[string][]string   // trip_id -> ordered stop_ids
	tripShapeDist   map[string][]float64  // trip_id -> shape_dist_traveled per stop, NaN when unset
}

func newFeed() *Feed {
	return &Feed{
		routeShortNames: map[string]string{},
		tripToRoute:     map[string]string{},
		tripDirection:   map[string]string{},
		stopNames:       map[string]string{},
		stopCoord:       map[string][2]float64{},
		TripStopSeq:     map[string][]string{},
		tripShapeDist:   map[string][]float64{},
	}
}

func (f *Feed) GetRouteShortName(routeID string) string { return f.routeShortNames[routeID] }

func (f *Feed) GetRouteIDForTrip(tripID string) string { return f.tripToRoute[tripID] }

func (f *Feed) GetDirectionIDForTrip(tripID string) string { return f.tripDirection[tripID] }

// GetStopName returns the stop name, or the stop id when the feed gives none.
func (f *Feed) GetStopName(stopID string) string {
	if name := f.stopNames[stopID]; name != "" {
		return name
	}
	return stopID
}

// GetAllStops returns every stop id in lexical order.
func (f *Feed) GetAllStops() []string {
	keys := make([]string, 0, len(f.stopNames))
	for k := range f.stopNames {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetAllRoutes returns every route id in lexical order.
func (f *Feed) GetAllRoutes() []string {
	keys := make([]string, 0, len(f.routeShortNames))
	for k := range f.routeShortNames {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetAllTrips returns every trip id that has a stop sequence, in lexical order.
func (f *Feed) GetAllTrips() []string {
	keys := make([]string, 0, len(f.TripStopSeq))
	for k := range f.TripStopSeq {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
