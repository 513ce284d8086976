package renderer

import (
	"sort"

	"github.com/theoremus-urban-solutions/transit-catalogue/domain"
	"github.com/theoremus-urban-solutions/transit-catalogue/geo"
)

// Catalogue is the read side of the transit catalogue the renderer draws.
type Catalogue interface {
	Stops() []domain.Stop
	Buses() []domain.Bus
	Stop(id domain.StopID) domain.Stop
	BusesThroughStop(name string) ([]string, bool)
}

// MapRenderer draws the network as an SVG document.
type MapRenderer struct {
	settings Settings
}

// New returns a renderer using settings as given.
func New(settings Settings) *MapRenderer {
	return &MapRenderer{settings: settings}
}

// Settings returns the renderer configuration.
func (mr *MapRenderer) Settings() Settings { return mr.settings }

// Render draws route lines, bus names, stop circles and stop names, in that
// order. Only stops served by at least one bus are drawn and projected.
func (mr *MapRenderer) Render(cat Catalogue) string {
	buses := cat.Buses()
	sort.SliceStable(buses, func(i, j int) bool { return buses[i].Name < buses[j].Name })

	var stops []domain.Stop
	for _, s := range cat.Stops() {
		if through, ok := cat.BusesThroughStop(s.Name); ok && len(through) > 0 {
			stops = append(stops, s)
		}
	}
	sort.SliceStable(stops, func(i, j int) bool { return stops[i].Name < stops[j].Name })

	coords := make([]geo.Coordinates, len(stops))
	for i, s := range stops {
		coords[i] = s.Coordinates
	}
	proj := newSphereProjector(coords, mr.settings.Width, mr.settings.Height, mr.settings.Padding)
	at := func(id domain.StopID) point { return proj.project(cat.Stop(id).Coordinates) }

	doc := newDocument()
	mr.drawRouteLines(doc, buses, at)
	mr.drawBusNames(doc, buses, at)
	for _, s := range stops {
		doc.circle(proj.project(s.Coordinates), mr.settings.StopRadius, pathProps{fill: "white"})
	}
	for _, s := range stops {
		mr.drawLabel(doc, proj.project(s.Coordinates), s.Name, mr.stopLabel(), "black")
	}
	return doc.String()
}

// label carries the shared attributes of one family of text labels.
type label struct {
	offset     [2]float64
	fontSize   int
	fontWeight string
}

func (mr *MapRenderer) busLabel() label {
	return label{offset: mr.settings.BusLabelOffset, fontSize: mr.settings.BusLabelFontSize, fontWeight: "bold"}
}

func (mr *MapRenderer) stopLabel() label {
	return label{offset: mr.settings.StopLabelOffset, fontSize: mr.settings.StopLabelFontSize}
}

func (mr *MapRenderer) paletteColor(i int) string {
	palette := mr.settings.ColorPalette
	if len(palette) == 0 {
		return NoColor.String()
	}
	return palette[i%len(palette)].String()
}

func (mr *MapRenderer) drawRouteLines(doc *document, buses []domain.Bus, at func(domain.StopID) point) {
	color := 0
	for _, bus := range buses {
		if len(bus.Route) == 0 {
			continue
		}
		points := make([]point, len(bus.Route))
		for i, id := range bus.Route {
			points[i] = at(id)
		}
		doc.polyline(points, pathProps{
			fill:        NoColor.String(),
			stroke:      mr.paletteColor(color),
			strokeWidth: formatNumber(mr.settings.LineWidth),
			lineCap:     "round",
			lineJoin:    "round",
		})
		color++
	}
}

func (mr *MapRenderer) drawBusNames(doc *document, buses []domain.Bus, at func(domain.StopID) point) {
	color := 0
	for _, bus := range buses {
		if len(bus.Route) == 0 {
			continue
		}
		fill := mr.paletteColor(color)
		first := bus.Route[0]
		mr.drawLabel(doc, at(first), bus.Name, mr.busLabel(), fill)
		if !bus.IsRoundTrip && bus.FinalStop != first {
			mr.drawLabel(doc, at(bus.FinalStop), bus.Name, mr.busLabel(), fill)
		}
		color++
	}
}

// drawLabel writes the underlayer text followed by the text itself.
func (mr *MapRenderer) drawLabel(doc *document, pos point, data string, l label, fill string) {
	base := text{
		pos:        pos,
		offset:     l.offset,
		fontSize:   l.fontSize,
		fontFamily: "Verdana",
		fontWeight: l.fontWeight,
		data:       data,
	}
	under := base
	under.props = pathProps{
		fill:        mr.settings.UnderlayerColor.String(),
		stroke:      mr.settings.UnderlayerColor.String(),
		strokeWidth: formatNumber(mr.settings.UnderlayerWidth),
		lineCap:     "round",
		lineJoin:    "round",
	}
	doc.text(under)
	base.props = pathProps{fill: fill}
	doc.text(base)
}
