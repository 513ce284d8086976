/*
Package requests decodes catalogue population records and statistics queries
and applies the records to a catalogue.

Two input formats are supported:

  - JSON documents with base_requests, routing_settings, render_settings
    and stat_requests; every stat request is validated on decode;
  - the line-oriented console format: a record count followed by
    "Stop X: lat, lon, 3900m to Y" and "Bus X: A > B > A" (loop) or
    "Bus X: A - B" (out-and-back) lines, then a query count followed by
    "Bus X", "Stop X", "Route A > B" or "Map" lines.

Both decode into an Input. Populate applies a Batch in the order the catalogue
requires: stops, then distances, then buses.
*/
package requests
