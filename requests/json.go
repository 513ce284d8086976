package requests

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/theoremus-urban-solutions/transit-catalogue/domain"
	"github.com/theoremus-urban-solutions/transit-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transit-catalogue/router"
)

type baseRequest struct {
	Type          string         `json:"type"`
	Name          string         `json:"name"`
	Latitude      float64        `json:"latitude"`
	Longitude     float64        `json:"longitude"`
	RoadDistances map[string]int `json:"road_distances"`
	Stops         []string       `json:"stops"`
	IsRoundTrip   bool           `json:"is_roundtrip"`
}

type document struct {
	BaseRequests    []baseRequest    `json:"base_requests"`
	RoutingSettings *router.Settings `json:"routing_settings"`
	RenderSettings  json.RawMessage  `json:"render_settings"`
	StatRequests    []StatRequest    `json:"stat_requests"`
}

// DecodeJSON reads a JSON request document. Render settings absent from
// render_settings keep their defaults.
func DecodeJSON(r io.Reader) (Input, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Input{}, fmt.Errorf("failed to decode request document: %w", err)
	}
	for i, req := range doc.StatRequests {
		if err := validate.Struct(req); err != nil {
			return Input{}, fmt.Errorf("stat_requests[%d]: %w", i, err)
		}
	}
	in := Input{Settings: doc.RoutingSettings, Stats: doc.StatRequests}
	if len(doc.RenderSettings) > 0 && string(doc.RenderSettings) != "null" {
		rs := renderer.DefaultSettings()
		if err := json.Unmarshal(doc.RenderSettings, &rs); err != nil {
			return Input{}, fmt.Errorf("render_settings: %w", err)
		}
		if err := rs.Validate(); err != nil {
			return Input{}, fmt.Errorf("render_settings: %w", err)
		}
		in.Render = &rs
	}
	for i, req := range doc.BaseRequests {
		switch req.Type {
		case TypeStop:
			in.Batch.Stops = append(in.Batch.Stops, domain.StopRecord{
				Name:          req.Name,
				Latitude:      req.Latitude,
				Longitude:     req.Longitude,
				RoadDistances: req.RoadDistances,
			})
		case TypeBus:
			in.Batch.Buses = append(in.Batch.Buses, domain.BusRecord{
				Name:        req.Name,
				Stops:       req.Stops,
				IsRoundTrip: req.IsRoundTrip,
			})
		default:
			return Input{}, fmt.Errorf("base_requests[%d]: %w: %q", i, ErrUnknownRequestType, req.Type)
		}
	}
	return in, nil
}

// DecodeStatRequests reads a bare JSON array of stat requests.
func DecodeStatRequests(r io.Reader) ([]StatRequest, error) {
	var reqs []StatRequest
	if err := json.NewDecoder(r).Decode(&reqs); err != nil {
		return nil, fmt.Errorf("failed to decode stat requests: %w", err)
	}
	for i, req := range reqs {
		if err := validate.Struct(req); err != nil {
			return nil, fmt.Errorf("stat request %d: %w", i, err)
		}
	}
	return reqs, nil
}
