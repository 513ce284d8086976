// Package geo provides great-circle distance helpers for stop coordinates.
package geo
