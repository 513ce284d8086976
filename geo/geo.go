package geo

import "math"

// EarthRadiusMeters is the mean Earth radius used by ComputeDistance.
const EarthRadiusMeters = 6371000.0

// Coordinates is a point on the globe in signed degrees.
type Coordinates struct {
	Lat float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Lng float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// ComputeDistance returns the great-circle distance in meters between two points
// using the haversine formula.
func ComputeDistance(from, to Coordinates) float64 {
	if from == to {
		return 0
	}
	const dr = math.Pi / 180
	dLat := (to.Lat - from.Lat) * dr
	dLng := (to.Lng - from.Lng) * dr
	la1 := from.Lat * dr
	la2 := to.Lat * dr
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(la1)*math.Cos(la2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusMeters * c
}
