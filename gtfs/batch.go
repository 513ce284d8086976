package gtfs

import (
	"fmt"
	"math"
	"slices"

	"github.com/golang/glog"

	"github.com/theoremus-urban-solutions/transit-catalogue/domain"
	"github.com/theoremus-urban-solutions/transit-catalogue/geo"
)

// Options controls the feed conversion.
type Options struct {
	// ShapeDistUnit is the length of one shape_dist_traveled unit in meters.
	// Zero ignores the column.
	ShapeDistUnit float64
	// Source names the feed in warning messages.
	Source string
	// Warnings receives conversion warnings; a fresh aggregator is used when nil.
	Warnings *WarningAggregator
}

type namePair struct {
	from, to string
}

// ToBatch converts the feed into population records and logs a summary of
// every conversion warning. Routes without trips, or whose trip visits a stop
// missing from stops.txt, are skipped.
func (f *Feed) ToBatch(opts Options) domain.Batch {
	warn := opts.Warnings
	if warn == nil {
		warn = NewWarningAggregator()
	}

	var batch domain.Batch
	seenStops := map[string]bool{}
	for _, id := range f.GetAllStops() {
		name := f.GetStopName(id)
		if f.stopNames[id] == "" {
			warn.Add(WarningStopNoName, id)
		}
		if seenStops[name] {
			warn.Add(WarningDuplicateStopName, id)
			continue
		}
		seenStops[name] = true
		c := f.stopCoord[id]
		batch.Stops = append(batch.Stops, domain.StopRecord{
			Name:      name,
			Latitude:  c[1],
			Longitude: c[0],
		})
	}

	outbound, inbound := f.longestTrips()
	distances := map[namePair]int{}
	addLeg := func(trip string) {
		seq := f.TripStopSeq[trip]
		dists := f.tripShapeDist[trip]
		for i := 1; i < len(seq); i++ {
			key := namePair{f.GetStopName(seq[i-1]), f.GetStopName(seq[i])}
			if key.from == key.to {
				continue
			}
			if _, ok := distances[key]; ok {
				continue
			}
			meters, fromShape := f.legMeters(seq[i-1], seq[i], dists[i-1], dists[i], opts)
			if opts.ShapeDistUnit > 0 && !fromShape {
				warn.Add(WarningNoShapeDist, trip)
			}
			distances[key] = meters
			batch.Distances = append(batch.Distances, domain.DistanceRecord{From: key.from, To: key.to, Meters: meters})
		}
	}

	taken := map[string]bool{}
	for _, routeID := range f.GetAllRoutes() {
		trip, ok := outbound[routeID]
		if !ok {
			warn.Add(WarningRouteWithoutTrips, routeID)
			continue
		}
		if missing := f.firstUnknownStop(trip); missing != "" {
			warn.Add(WarningUnknownStop, trip+":"+missing)
			continue
		}
		names := f.stopNamesForTrip(trip)
		addLeg(trip)

		roundTrip := true
		if len(names) > 1 && names[0] != names[len(names)-1] {
			back, ok := inbound[routeID]
			if ok && f.firstUnknownStop(back) == "" && slices.Equal(reversed(names), f.stopNamesForTrip(back)) {
				addLeg(back)
				roundTrip = false
			}
		}

		name := f.GetRouteShortName(routeID)
		if name == "" {
			warn.Add(WarningNoRouteShortName, routeID)
			name = routeID
		}
		if taken[name] {
			warn.Add(WarningDuplicateBusName, routeID)
			name = routeID
			if taken[name] {
				name = fmt.Sprintf("%s (%s)", routeID, trip)
			}
		}
		taken[name] = true
		batch.Buses = append(batch.Buses, domain.BusRecord{Name: name, Stops: names, IsRoundTrip: roundTrip})
	}

	warn.LogAll(opts.Source)
	glog.Infof("gtfs: converted %d stops, %d distances, %d buses",
		len(batch.Stops), len(batch.Distances), len(batch.Buses))
	return batch
}

// longestTrips picks the trip with most stops per route, separately for
// direction 1 (inbound) and any other direction (outbound). A route with only
// inbound trips uses its inbound trip as outbound. Ties go to the lexically
// smaller trip id.
func (f *Feed) longestTrips() (outbound, inbound map[string]string) {
	outbound = map[string]string{}
	inbound = map[string]string{}
	for _, trip := range f.GetAllTrips() {
		routeID := f.GetRouteIDForTrip(trip)
		target := outbound
		if f.GetDirectionIDForTrip(trip) == "1" {
			target = inbound
		}
		if cur, ok := target[routeID]; !ok || len(f.TripStopSeq[trip]) > len(f.TripStopSeq[cur]) {
			target[routeID] = trip
		}
	}
	for routeID, trip := range inbound {
		if _, ok := outbound[routeID]; !ok {
			outbound[routeID] = trip
			delete(inbound, routeID)
		}
	}
	return outbound, inbound
}

func (f *Feed) firstUnknownStop(trip string) string {
	for _, id := range f.TripStopSeq[trip] {
		if _, ok := f.stopNames[id]; !ok {
			return id
		}
	}
	return ""
}

func (f *Feed) stopNamesForTrip(trip string) []string {
	seq := f.TripStopSeq[trip]
	names := make([]string, len(seq))
	for i, id := range seq {
		names[i] = f.GetStopName(id)
	}
	return names
}

// legMeters uses the shape_dist_traveled delta when both ends carry one and it
// grows along the trip, otherwise the great-circle distance rounded up. The
// second result reports whether the shape distance was used.
func (f *Feed) legMeters(fromID, toID string, fromDist, toDist float64, opts Options) (int, bool) {
	if opts.ShapeDistUnit > 0 && !math.IsNaN(fromDist) && !math.IsNaN(toDist) && toDist > fromDist {
		return int(math.Round((toDist - fromDist) * opts.ShapeDistUnit)), true
	}
	a, b := f.stopCoord[fromID], f.stopCoord[toID]
	return int(math.Ceil(geo.ComputeDistance(
		geo.Coordinates{Lat: a[1], Lng: a[0]},
		geo.Coordinates{Lat: b[1], Lng: b[0]},
	))), false
}

func reversed(s []string) []string {
	out := slices.Clone(s)
	slices.Reverse(out)
	return out
}
