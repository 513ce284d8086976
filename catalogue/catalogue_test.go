package catalogue

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/theoremus-urban-solutions/transit-catalogue/domain"
	"github.com/theoremus-urban-solutions/transit-catalogue/geo"
)

// newTestCatalogue builds stops A..E on a line of longitudes with 1000m road
// distances between neighbours.
func newTestCatalogue(t *testing.T) *Catalogue {
	t.Helper()
	c := New()
	for i, name := range []string{"A", "B", "C", "D", "E"} {
		if err := c.AddStop(name, 0, float64(i)*0.01); err != nil {
			t.Fatalf("AddStop(%s): %v", name, err)
		}
	}
	pairs := [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "E"}}
	for _, p := range pairs {
		if err := c.SetDistance(p[0], p[1], 1000); err != nil {
			t.Fatalf("SetDistance(%s, %s): %v", p[0], p[1], err)
		}
	}
	return c
}

func TestAddStop_Idempotent(t *testing.T) {
	c := New()
	if err := c.AddStop("A", 55.1, 37.2); err != nil {
		t.Fatal(err)
	}
	if err := c.AddStop("A", 10, 20); err != nil {
		t.Fatal(err)
	}
	stop, ok := c.FindStop("A")
	if !ok {
		t.Fatal("stop A should exist")
	}
	if stop.Coordinates != (geo.Coordinates{Lat: 55.1, Lng: 37.2}) {
		t.Errorf("second AddStop overwrote coordinates: %+v", stop.Coordinates)
	}
	if c.StopCount() != 1 {
		t.Errorf("expected 1 stop, got %d", c.StopCount())
	}
}

func TestAddStop_SeedsSelfDistance(t *testing.T) {
	c := New()
	_ = c.AddStop("A", 0, 0)
	d, ok := c.GetDistance("A", "A")
	if !ok || d != 0 {
		t.Errorf("GetDistance(A, A) = %d, %v; want 0, true", d, ok)
	}
}

func TestSetDistance_ReverseSeededOnce(t *testing.T) {
	c := New()
	_ = c.AddStop("A", 0, 0)
	_ = c.AddStop("B", 0, 1)

	if err := c.SetDistance("A", "B", 1200); err != nil {
		t.Fatal(err)
	}
	if d, ok := c.GetDistance("B", "A"); !ok || d != 1200 {
		t.Fatalf("reverse distance = %d, %v; want 1200, true", d, ok)
	}

	if err := c.SetDistance("B", "A", 1500); err != nil {
		t.Fatal(err)
	}
	if d, _ := c.GetDistance("B", "A"); d != 1500 {
		t.Errorf("GetDistance(B, A) = %d, want 1500", d)
	}
	if d, _ := c.GetDistance("A", "B"); d != 1200 {
		t.Errorf("GetDistance(A, B) = %d, want 1200 (must not follow reverse update)", d)
	}

	// The seeded reverse is not refreshed when the forward value changes.
	_ = c.AddStop("C", 0, 2)
	_ = c.SetDistance("B", "C", 700)
	_ = c.SetDistance("B", "C", 900)
	if d, _ := c.GetDistance("C", "B"); d != 700 {
		t.Errorf("GetDistance(C, B) = %d, want 700 (copy-once default)", d)
	}
}

func TestSetDistance_UnknownStop(t *testing.T) {
	c := New()
	_ = c.AddStop("A", 0, 0)
	err := c.SetDistance("A", "Nowhere", 10)
	if !errors.Is(err, ErrStopNotFound) {
		t.Errorf("expected ErrStopNotFound, got %v", err)
	}
	err = c.SetDistance("Nowhere", "A", 10)
	if !errors.Is(err, ErrStopNotFound) {
		t.Errorf("expected ErrStopNotFound, got %v", err)
	}
}

func TestGetDistance_UnknownPair(t *testing.T) {
	c := newTestCatalogue(t)
	if _, ok := c.GetDistance("A", "E"); ok {
		t.Error("A -> E was never recorded and must be unknown")
	}
	if _, ok := c.GetDistance("A", "Z"); ok {
		t.Error("unknown stop must yield unknown distance")
	}
}

func TestGetGeographicDistance(t *testing.T) {
	c := newTestCatalogue(t)
	d, ok := c.GetGeographicDistance("A", "E")
	if !ok {
		t.Fatal("geographic distance between known stops must resolve")
	}
	want := geo.ComputeDistance(geo.Coordinates{Lat: 0, Lng: 0}, geo.Coordinates{Lat: 0, Lng: 0.04})
	if math.Abs(d-want) > 1e-9 {
		t.Errorf("got %f, want %f", d, want)
	}
	if _, ok := c.GetGeographicDistance("A", "Z"); ok {
		t.Error("expected unknown for missing stop")
	}
}

func TestAddBus_OutAndBack(t *testing.T) {
	c := newTestCatalogue(t)
	if err := c.AddBus("750", []string{"A", "B", "C"}, false); err != nil {
		t.Fatal(err)
	}
	bus, ok := c.FindBus("750")
	if !ok {
		t.Fatal("bus 750 should exist")
	}
	var names []string
	for _, id := range bus.Route {
		names = append(names, c.Stop(id).Name)
	}
	want := []string{"A", "B", "C", "B", "A"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("route = %v, want %v", names, want)
	}
	if c.Stop(bus.FinalStop).Name != "C" {
		t.Errorf("final stop = %s, want C", c.Stop(bus.FinalStop).Name)
	}

	stat, ok := c.StatsForBus("750")
	if !ok {
		t.Fatal("stats should be found")
	}
	if stat.StopsOnRoute != 5 {
		t.Errorf("stop count = %d, want 5", stat.StopsOnRoute)
	}
	if stat.UniqueStops != 3 {
		t.Errorf("unique stops = %d, want 3", stat.UniqueStops)
	}
	if stat.RouteLength != 4000 {
		t.Errorf("route length = %d, want 4000", stat.RouteLength)
	}
}

func TestAddBus_RoundTrip(t *testing.T) {
	c := newTestCatalogue(t)
	_ = c.SetDistance("C", "A", 2500)
	if err := c.AddBus("256", []string{"A", "B", "C", "A"}, true); err != nil {
		t.Fatal(err)
	}
	stat, _ := c.StatsForBus("256")
	if stat.StopsOnRoute != 4 {
		t.Errorf("stop count = %d, want 4", stat.StopsOnRoute)
	}
	if stat.UniqueStops != 3 {
		t.Errorf("unique stops = %d, want 3", stat.UniqueStops)
	}
	if stat.RouteLength != 4500 {
		t.Errorf("route length = %d, want 4500", stat.RouteLength)
	}
	if stat.FinalStopName != "A" {
		t.Errorf("final stop = %s, want A", stat.FinalStopName)
	}
}

func TestAddBus_Errors(t *testing.T) {
	tests := []struct {
		name    string
		stops   []string
		wantErr error
	}{
		{name: "unknown stop", stops: []string{"A", "Z"}, wantErr: ErrStopNotFound},
		{name: "missing distance", stops: []string{"A", "C"}, wantErr: ErrDistanceUnknown},
		{name: "empty route", stops: nil, wantErr: ErrEmptyRoute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCatalogue(t)
			err := c.AddBus("X", tt.stops, true)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if _, ok := c.FindBus("X"); ok {
				t.Error("failed AddBus must not register the bus")
			}
			if buses, _ := c.BusesThroughStop("A"); len(buses) != 0 {
				t.Errorf("failed AddBus must not touch the index, got %v", buses)
			}
		})
	}

	c := newTestCatalogue(t)
	_ = c.AddBus("1", []string{"A", "B"}, false)
	if err := c.AddBus("1", []string{"B", "C"}, false); !errors.Is(err, ErrDuplicateBus) {
		t.Errorf("expected ErrDuplicateBus, got %v", err)
	}
}

func TestStatsForBus_DegenerateRoute(t *testing.T) {
	c := newTestCatalogue(t)
	if err := c.AddBus("loop", []string{"A"}, true); err != nil {
		t.Fatal(err)
	}
	if err := c.AddBus("still", []string{"B", "B"}, true); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"loop", "still"} {
		stat, ok := c.StatsForBus(name)
		if !ok {
			t.Fatalf("%s should be found", name)
		}
		if stat.GeographicLen != 0 {
			t.Errorf("%s: geographic length = %f, want 0", name, stat.GeographicLen)
		}
		if stat.Curvature != 0 {
			t.Errorf("%s: curvature = %f, want 0 sentinel", name, stat.Curvature)
		}
		if math.IsNaN(stat.Curvature) || math.IsInf(stat.Curvature, 0) {
			t.Errorf("%s: curvature must be finite", name)
		}
	}
}

func TestStatsForBus_CurvatureNotClamped(t *testing.T) {
	c := New()
	_ = c.AddStop("A", 0, 0)
	_ = c.AddStop("B", 0, 1)
	// Road distance far shorter than the great-circle distance.
	_ = c.SetDistance("A", "B", 1000)
	if err := c.AddBus("short", []string{"A", "B"}, false); err != nil {
		t.Fatal(err)
	}
	stat, _ := c.StatsForBus("short")
	geoLen := 2 * geo.ComputeDistance(geo.Coordinates{Lat: 0, Lng: 0}, geo.Coordinates{Lat: 0, Lng: 1})
	want := 2000 / geoLen
	if math.Abs(stat.Curvature-want) > 1e-12 {
		t.Errorf("curvature = %f, want %f", stat.Curvature, want)
	}
	if stat.Curvature >= 1 {
		t.Errorf("curvature should be reported below 1, got %f", stat.Curvature)
	}
}

func TestStatsForBus_NotFound(t *testing.T) {
	c := newTestCatalogue(t)
	if _, ok := c.StatsForBus("nope"); ok {
		t.Error("expected not found")
	}
}

func TestBusesThroughStop(t *testing.T) {
	c := newTestCatalogue(t)
	_ = c.AddBus("828", []string{"A", "B"}, false)
	_ = c.AddBus("14", []string{"B", "C"}, false)
	_ = c.AddBus("256", []string{"A", "B", "C"}, false)

	tests := []struct {
		stop      string
		want      []string
		wantFound bool
	}{
		{stop: "B", want: []string{"14", "256", "828"}, wantFound: true},
		{stop: "A", want: []string{"256", "828"}, wantFound: true},
		{stop: "E", want: []string{}, wantFound: true},
		{stop: "Z", want: nil, wantFound: false},
	}
	for _, tt := range tests {
		t.Run(tt.stop, func(t *testing.T) {
			got, ok := c.BusesThroughStop(tt.stop)
			if ok != tt.wantFound {
				t.Fatalf("found = %v, want %v", ok, tt.wantFound)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("buses = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestStatsForStop(t *testing.T) {
	c := newTestCatalogue(t)
	_ = c.AddBus("1", []string{"A", "B"}, false)

	stat, ok := c.StatsForStop("E")
	if !ok {
		t.Fatal("stop E should be found")
	}
	if stat.Buses == nil || len(stat.Buses) != 0 {
		t.Errorf("expected empty bus list, got %#v", stat.Buses)
	}
	if _, ok := c.StatsForStop("missing"); ok {
		t.Error("expected not found")
	}
}

func TestSeal(t *testing.T) {
	c := newTestCatalogue(t)
	c.Seal()
	if !c.Sealed() {
		t.Fatal("catalogue should report sealed")
	}
	if err := c.AddStop("F", 0, 0); !errors.Is(err, ErrSealed) {
		t.Errorf("AddStop after seal: %v", err)
	}
	if err := c.SetDistance("A", "B", 1); !errors.Is(err, ErrSealed) {
		t.Errorf("SetDistance after seal: %v", err)
	}
	if err := c.AddBus("x", []string{"A", "B"}, true); !errors.Is(err, ErrSealed) {
		t.Errorf("AddBus after seal: %v", err)
	}
	if _, ok := c.FindStop("A"); !ok {
		t.Error("reads must keep working after seal")
	}
}

func TestStopsAndBusesInInsertionOrder(t *testing.T) {
	c := newTestCatalogue(t)
	_ = c.AddBus("b", []string{"A", "B"}, false)
	_ = c.AddBus("a", []string{"B", "C"}, false)

	var stops []string
	for _, s := range c.Stops() {
		stops = append(stops, s.Name)
	}
	if !reflect.DeepEqual(stops, []string{"A", "B", "C", "D", "E"}) {
		t.Errorf("stops = %v", stops)
	}
	buses := c.Buses()
	if len(buses) != 2 || buses[0].Name != "b" || buses[1].Name != "a" {
		t.Errorf("buses out of order: %+v", buses)
	}
	if buses[0].ID != domain.BusID(0) {
		t.Errorf("first bus handle = %d", buses[0].ID)
	}
}
