package geo

import (
	"math"
	"testing"
)

func TestComputeDistance(t *testing.T) {
	tests := []struct {
		name     string
		from, to Coordinates
		want     float64
		tol      float64
	}{
		{
			name: "same point",
			from: Coordinates{Lat: 55.611087, Lng: 37.20829},
			to:   Coordinates{Lat: 55.611087, Lng: 37.20829},
			want: 0,
			tol:  0,
		},
		{
			name: "one degree of longitude on the equator",
			from: Coordinates{Lat: 0, Lng: 0},
			to:   Coordinates{Lat: 0, Lng: 1},
			want: EarthRadiusMeters * math.Pi / 180,
			tol:  1e-6,
		},
		{
			name: "one degree of latitude",
			from: Coordinates{Lat: 10, Lng: 20},
			to:   Coordinates{Lat: 11, Lng: 20},
			want: EarthRadiusMeters * math.Pi / 180,
			tol:  1e-6,
		},
		{
			name: "antipodes",
			from: Coordinates{Lat: 0, Lng: 0},
			to:   Coordinates{Lat: 0, Lng: 180},
			want: EarthRadiusMeters * math.Pi,
			tol:  1e-3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDistance(tt.from, tt.to)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("ComputeDistance(%v, %v) = %f, want %f", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestComputeDistance_Symmetric(t *testing.T) {
	a := Coordinates{Lat: 55.574371, Lng: 37.6517}
	b := Coordinates{Lat: 55.587655, Lng: 37.645687}
	ab := ComputeDistance(a, b)
	ba := ComputeDistance(b, a)
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("distance is not symmetric: %f vs %f", ab, ba)
	}
	if ab <= 0 {
		t.Errorf("expected positive distance, got %f", ab)
	}
}
