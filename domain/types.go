package domain

import "github.com/theoremus-urban-solutions/transit-catalogue/geo"

// StopID is a stable handle into the catalogue's stop arena.
type StopID int

// BusID is a stable handle into the catalogue's bus arena.
type BusID int

// Stop is a named geographic point.
type Stop struct {
	ID          StopID
	Name        string
	Coordinates geo.Coordinates
}

// Bus is a named route. Route already includes the return leg for
// out-and-back buses.
type Bus struct {
	ID               BusID
	Name             string
	Route            []StopID
	IsRoundTrip      bool
	FinalStop        StopID // last stop of the declared list
	UniqueStops      int
	ActualLength     int     // meters, sum of directed road distances
	GeographicLength float64 // meters, sum of great-circle distances
}

// Curvature is ActualLength / GeographicLength, or 0 for a route with no
// geographic extent.
func (b Bus) Curvature() float64 {
	if b.GeographicLength == 0 {
		return 0
	}
	return float64(b.ActualLength) / b.GeographicLength
}

// BusStat is a read-only statistics snapshot of a bus.
type BusStat struct {
	Name          string
	StopsOnRoute  int
	UniqueStops   int
	RouteLength   int
	GeographicLen float64
	Curvature     float64
	IsRoundTrip   bool
	FirstStopName string
	FinalStopName string
}

// StopStat is a read-only statistics snapshot of a stop.
type StopStat struct {
	Name        string
	Coordinates geo.Coordinates
	Buses       []string // sorted
}
