package renderer

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/transit-catalogue/utils"
)

// Color is an SVG paint value. The zero Color renders as "none".
type Color struct {
	paint string
}

// NoColor paints nothing.
var NoColor = Color{}

// Named returns a color given by name, such as "green".
func Named(name string) Color { return Color{paint: name} }

// RGB returns an opaque rgb(r,g,b) color.
func RGB(r, g, b uint8) Color {
	return Color{paint: fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)}
}

// RGBA returns an rgba(r,g,b,a) color with opacity a in [0, 1].
func RGBA(r, g, b uint8, a float64) Color {
	return Color{paint: fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, utils.FormatSignificant(a, 6))}
}

func (c Color) String() string {
	if c.paint == "" {
		return "none"
	}
	return c.paint
}

// colorFromComponents builds a color from a [r, g, b] or [r, g, b, a] array.
func colorFromComponents(vals []float64) (Color, error) {
	if len(vals) != 3 && len(vals) != 4 {
		return Color{}, fmt.Errorf("color array needs 3 or 4 components, got %d", len(vals))
	}
	var rgb [3]uint8
	for i, v := range vals[:3] {
		if v != math.Trunc(v) || v < 0 || v > 255 {
			return Color{}, fmt.Errorf("color component %v is not an integer in [0, 255]", v)
		}
		rgb[i] = uint8(v)
	}
	if len(vals) == 3 {
		return RGB(rgb[0], rgb[1], rgb[2]), nil
	}
	if a := vals[3]; a < 0 || a > 1 {
		return Color{}, fmt.Errorf("color opacity %v is outside [0, 1]", a)
	}
	return RGBA(rgb[0], rgb[1], rgb[2], vals[3]), nil
}

// UnmarshalJSON accepts a color name or a component array.
func (c *Color) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*c = Named(name)
		return nil
	}
	var vals []float64
	if err := json.Unmarshal(data, &vals); err != nil {
		return fmt.Errorf("color must be a string or an array: %s", data)
	}
	parsed, err := colorFromComponents(vals)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalJSON writes the SVG paint string.
func (c Color) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(c.String())), nil
}

// UnmarshalYAML accepts the same shapes as UnmarshalJSON.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*c = Named(node.Value)
		return nil
	case yaml.SequenceNode:
		var vals []float64
		if err := node.Decode(&vals); err != nil {
			return err
		}
		parsed, err := colorFromComponents(vals)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	default:
		return fmt.Errorf("line %d: color must be a string or a sequence", node.Line)
	}
}

// MarshalYAML writes the SVG paint string.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}
