package transitcatalogue

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/theoremus-urban-solutions/transit-catalogue/domain"
	"github.com/theoremus-urban-solutions/transit-catalogue/formatter"
	"github.com/theoremus-urban-solutions/transit-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transit-catalogue/requests"
	"github.com/theoremus-urban-solutions/transit-catalogue/router"
)

// testBatch has two unconnected lines: 1 over A-B and 2 over C-D, plus a stop
// E without buses.
func testBatch() domain.Batch {
	return domain.Batch{
		Stops: []domain.StopRecord{
			{Name: "A", Latitude: 0, Longitude: 0, RoadDistances: map[string]int{"B": 1000}},
			{Name: "B", Latitude: 0, Longitude: 0.01},
			{Name: "C", Latitude: 1, Longitude: 1},
			{Name: "D", Latitude: 1, Longitude: 1.01},
			{Name: "E", Latitude: 5, Longitude: 5},
		},
		Distances: []domain.DistanceRecord{{From: "C", To: "D", Meters: 500}},
		Buses: []domain.BusRecord{
			{Name: "1", Stops: []string{"A", "B"}},
			{Name: "2", Stops: []string{"C", "D"}},
		},
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(testBatch(), router.Settings{BusWaitTime: 5, BusVelocity: 30}, renderer.DefaultSettings())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestService_Answer(t *testing.T) {
	svc := newTestService(t)
	tests := []struct {
		name     string
		req      requests.StatRequest
		notFound bool
		check    func(t *testing.T, r formatter.Response)
	}{
		{
			name: "bus",
			req:  requests.StatRequest{ID: 1, Type: requests.TypeBus, Name: "1"},
			check: func(t *testing.T, r formatter.Response) {
				if r.Bus.StopsOnRoute != 3 || r.Bus.UniqueStops != 2 || r.Bus.RouteLength != 2000 {
					t.Errorf("bus = %+v", r.Bus)
				}
			},
		},
		{
			name:     "unknown bus",
			req:      requests.StatRequest{ID: 2, Type: requests.TypeBus, Name: "99"},
			notFound: true,
		},
		{
			name: "stop",
			req:  requests.StatRequest{ID: 3, Type: requests.TypeStop, Name: "B"},
			check: func(t *testing.T, r formatter.Response) {
				if !reflect.DeepEqual(r.Stop.Buses, []string{"1"}) {
					t.Errorf("stop = %+v", r.Stop)
				}
			},
		},
		{
			name: "stop without buses",
			req:  requests.StatRequest{ID: 4, Type: requests.TypeStop, Name: "E"},
			check: func(t *testing.T, r formatter.Response) {
				if r.Stop.Buses == nil || len(r.Stop.Buses) != 0 {
					t.Errorf("stop = %+v", r.Stop)
				}
			},
		},
		{
			name: "route",
			req:  requests.StatRequest{ID: 5, Type: requests.TypeRoute, From: "A", To: "B"},
			check: func(t *testing.T, r formatter.Response) {
				if math.Abs(r.Route.TotalTime-7) > 1e-9 || len(r.Route.Items) != 2 {
					t.Errorf("route = %+v", r.Route)
				}
			},
		},
		{
			name:     "route between unconnected stops",
			req:      requests.StatRequest{ID: 6, Type: requests.TypeRoute, From: "A", To: "C"},
			notFound: true,
		},
		{
			name:     "route from unknown stop",
			req:      requests.StatRequest{ID: 7, Type: requests.TypeRoute, From: "Z", To: "A"},
			notFound: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := svc.Answer(tt.req)
			if r.RequestID != tt.req.ID {
				t.Errorf("request id = %d, want %d", r.RequestID, tt.req.ID)
			}
			if tt.notFound {
				if r.ErrorMessage != formatter.NotFoundMessage {
					t.Errorf("expected not found, got %+v", r)
				}
				return
			}
			if r.Failed() {
				t.Fatalf("unexpected error %q", r.ErrorMessage)
			}
			tt.check(t, r)
		})
	}
}

func TestService_Map(t *testing.T) {
	svc := newTestService(t)
	r := svc.Answer(requests.StatRequest{ID: 9, Type: requests.TypeMap})
	if r.Failed() || r.RequestID != 9 {
		t.Fatalf("got %+v", r)
	}
	if !strings.HasPrefix(r.Map, "<?xml") || !strings.HasSuffix(r.Map, "</svg>") {
		t.Errorf("map is not an SVG document: %q", r.Map)
	}
	if got := strings.Count(r.Map, "<polyline"); got != 2 {
		t.Errorf("map has %d polylines, want 2", got)
	}
	// E has no buses and is not drawn.
	if strings.Contains(r.Map, ">E</text>") {
		t.Error("stop without buses was drawn")
	}
	if svc.Map() != r.Map {
		t.Error("map should be rendered once and reused")
	}
}

func TestService_UnknownTypeIsUnsupported(t *testing.T) {
	r := newTestService(t).Answer(requests.StatRequest{ID: 9, Type: "Tram"})
	if r.ErrorMessage != formatter.UnsupportedMessage {
		t.Errorf("got %+v", r)
	}
}

func TestService_Listings(t *testing.T) {
	svc := newTestService(t)
	buses := svc.AllBuses()
	if len(buses) != 2 || buses[0].Name != "1" || buses[1].Name != "2" {
		t.Errorf("buses = %+v", buses)
	}
	stops := svc.AllStops()
	if len(stops) != 5 || stops[4].Name != "E" {
		t.Errorf("stops = %+v", stops)
	}
}

func TestNewService_Errors(t *testing.T) {
	batch := testBatch()
	batch.Distances = nil
	if _, err := NewService(batch, router.DefaultSettings(), renderer.DefaultSettings()); err == nil {
		t.Error("expected error for a bus without distances")
	}
	if _, err := NewService(testBatch(), router.Settings{BusWaitTime: 0, BusVelocity: 30}, renderer.DefaultSettings()); err == nil {
		t.Error("expected error for invalid routing settings")
	}
	render := renderer.DefaultSettings()
	render.ColorPalette = nil
	if _, err := NewService(testBatch(), router.DefaultSettings(), render); err == nil {
		t.Error("expected error for invalid render settings")
	}
}

func TestNewServiceFromInput_PrefersDocumentSettings(t *testing.T) {
	in := requests.Input{Batch: testBatch(), Settings: &router.Settings{BusWaitTime: 1, BusVelocity: 60}}
	render := renderer.DefaultSettings()
	render.ColorPalette = []renderer.Color{renderer.Named("purple")}
	in.Render = &render
	svc, err := NewServiceFromInput(in, router.Settings{BusWaitTime: 5, BusVelocity: 30}, renderer.DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	r := svc.Answer(requests.StatRequest{Type: requests.TypeRoute, From: "A", To: "B"})
	if math.Abs(r.Route.TotalTime-2) > 1e-9 {
		t.Errorf("total time = %v, want 2", r.Route.TotalTime)
	}
	if !strings.Contains(svc.Map(), `stroke="purple"`) {
		t.Error("document render settings were not applied")
	}
}
