package gtfs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/golang/glog"
)

// Warning type constants
const (
	WarningStopNoName        = "stop_no_name"
	WarningDuplicateStopName = "duplicate_stop_name"
	WarningNoRouteShortName  = "no_route_short_name"
	WarningDuplicateBusName  = "duplicate_bus_name"
	WarningRouteWithoutTrips = "route_without_trips"
	WarningUnknownStop       = "unknown_stop"
	WarningNoShapeDist       = "no_shape_dist"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects warnings during conversion and outputs consolidated summaries
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example ID
func (w *WarningAggregator) Add(warningType, exampleID string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

// Count returns how many times warningType was recorded.
func (w *WarningAggregator) Count(warningType string) int {
	if info := w.warnings[warningType]; info != nil {
		return info.count
	}
	return 0
}

// LogAll outputs all collected warnings in consolidated format, sorted by type.
func (w *WarningAggregator) LogAll(source string) {
	types := make([]string, 0, len(w.warnings))
	for t := range w.warnings {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		glog.Warning(w.formatWarningMessage(t, source, w.warnings[t]))
	}
}

// formatWarningMessage creates a human-readable warning message
func (w *WarningAggregator) formatWarningMessage(warningType, source string, info *warningInfo) string {
	var description, action string

	switch warningType {
	case WarningStopNoName:
		description = "stops with no stop_name"
		action = "Using stop_id as the stop name"
	case WarningDuplicateStopName:
		description = "stops sharing a name with an earlier stop"
		action = "Merging them into the first stop with that name"
	case WarningNoRouteShortName:
		description = "routes with no route_short_name"
		action = "Using route_id as the bus name"
	case WarningDuplicateBusName:
		description = "routes whose name is already taken"
		action = "Renaming the bus"
	case WarningRouteWithoutTrips:
		description = "routes with no trips"
		action = "Skipping the route"
	case WarningUnknownStop:
		description = "trips visiting stops missing from stops.txt"
		action = "Skipping the route"
	case WarningNoShapeDist:
		description = "legs without usable shape_dist_traveled"
		action = "Using the great-circle distance"
	default:
		description = "unknown issue"
		action = "Continuing with fallback behavior"
	}

	return fmt.Sprintf("GTFS feed %s has %s (%d occurrences). %s. Examples: %s",
		source, description, info.count, action, strings.Join(info.examples, ", "))
}
