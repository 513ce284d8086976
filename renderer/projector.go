package renderer

import (
	"math"

	"github.com/theoremus-urban-solutions/transit-catalogue/geo"
)

const epsilon = 1e-6

type point struct {
	x, y float64
}

// sphereProjector maps coordinates onto the canvas, fitting the bounding box
// of the input points inside the padded area while keeping the aspect ratio.
type sphereProjector struct {
	padding float64
	minLng  float64
	maxLat  float64
	zoom    float64
}

func isZero(v float64) bool { return math.Abs(v) < epsilon }

func newSphereProjector(coords []geo.Coordinates, width, height, padding float64) sphereProjector {
	p := sphereProjector{padding: padding}
	if len(coords) == 0 {
		return p
	}
	minLng, maxLng := coords[0].Lng, coords[0].Lng
	minLat, maxLat := coords[0].Lat, coords[0].Lat
	for _, c := range coords[1:] {
		minLng = math.Min(minLng, c.Lng)
		maxLng = math.Max(maxLng, c.Lng)
		minLat = math.Min(minLat, c.Lat)
		maxLat = math.Max(maxLat, c.Lat)
	}
	p.minLng, p.maxLat = minLng, maxLat

	var widthZoom, heightZoom float64
	hasWidth, hasHeight := !isZero(maxLng-minLng), !isZero(maxLat-minLat)
	if hasWidth {
		widthZoom = (width - 2*padding) / (maxLng - minLng)
	}
	if hasHeight {
		heightZoom = (height - 2*padding) / (maxLat - minLat)
	}
	switch {
	case hasWidth && hasHeight:
		p.zoom = math.Min(widthZoom, heightZoom)
	case hasWidth:
		p.zoom = widthZoom
	case hasHeight:
		p.zoom = heightZoom
	}
	return p
}

func (p sphereProjector) project(c geo.Coordinates) point {
	return point{
		x: (c.Lng-p.minLng)*p.zoom + p.padding,
		y: (p.maxLat-c.Lat)*p.zoom + p.padding,
	}
}
