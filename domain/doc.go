// Package domain holds the data model shared by the catalogue, the router and
// the I/O layers: stops, buses, their statistics snapshots, population records
// and itineraries.
package domain
