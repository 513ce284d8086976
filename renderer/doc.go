// Package renderer draws the transit network as an SVG map.
//
// Stops served by at least one bus are projected onto the canvas with a
// linear sphere projection that fits their bounding box inside the padded
// area. The document is drawn in four layers:
//
//   - one polyline per bus, colored from the palette in bus name order
//   - bus names at the first stop, and at the final stop of out-and-back buses
//   - a white circle for each stop
//   - stop names
//
// Each label is written twice, first as an underlayer in UnderlayerColor and
// then in its own color. Settings decode from the render_settings JSON object
// and from the render section of config.yml; colors accept a name, an
// [r, g, b] array or an [r, g, b, a] array.
package renderer
