package renderer

import (
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/transit-catalogue/utils"
)

func formatNumber(v float64) string {
	return utils.FormatSignificant(v, 6)
}

// pathProps holds presentation attributes. Empty strings are omitted.
type pathProps struct {
	fill        string
	stroke      string
	strokeWidth string
	lineCap     string
	lineJoin    string
}

func (p pathProps) write(b *strings.Builder) {
	writeAttr(b, "fill", p.fill)
	writeAttr(b, "stroke", p.stroke)
	writeAttr(b, "stroke-width", p.strokeWidth)
	writeAttr(b, "stroke-linecap", p.lineCap)
	writeAttr(b, "stroke-linejoin", p.lineJoin)
}

func writeAttr(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString(" ")
	b.WriteString(name)
	b.WriteString("=\"")
	b.WriteString(value)
	b.WriteString("\"")
}

type text struct {
	props      pathProps
	pos        point
	offset     [2]float64
	fontSize   int
	fontFamily string
	fontWeight string
	data       string
}

// document accumulates SVG elements one per line.
type document struct {
	b strings.Builder
}

func newDocument() *document {
	d := &document{}
	d.b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n")
	d.b.WriteString("<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\">\n")
	return d
}

func (d *document) polyline(points []point, props pathProps) {
	d.b.WriteString("  <polyline points=\"")
	for i, p := range points {
		if i > 0 {
			d.b.WriteString(" ")
		}
		d.b.WriteString(formatNumber(p.x))
		d.b.WriteString(",")
		d.b.WriteString(formatNumber(p.y))
	}
	d.b.WriteString("\"")
	props.write(&d.b)
	d.b.WriteString("/>\n")
}

func (d *document) circle(center point, radius float64, props pathProps) {
	d.b.WriteString("  <circle")
	writeAttr(&d.b, "cx", formatNumber(center.x))
	writeAttr(&d.b, "cy", formatNumber(center.y))
	writeAttr(&d.b, "r", formatNumber(radius))
	props.write(&d.b)
	d.b.WriteString("/>\n")
}

func (d *document) text(t text) {
	d.b.WriteString("  <text")
	t.props.write(&d.b)
	writeAttr(&d.b, "x", formatNumber(t.pos.x))
	writeAttr(&d.b, "y", formatNumber(t.pos.y))
	writeAttr(&d.b, "dx", formatNumber(t.offset[0]))
	writeAttr(&d.b, "dy", formatNumber(t.offset[1]))
	writeAttr(&d.b, "font-size", strconv.Itoa(t.fontSize))
	writeAttr(&d.b, "font-family", t.fontFamily)
	writeAttr(&d.b, "font-weight", t.fontWeight)
	d.b.WriteString(">")
	d.b.WriteString(utils.EscapeXML(t.data))
	d.b.WriteString("</text>\n")
}

func (d *document) String() string {
	return d.b.String() + "</svg>"
}
