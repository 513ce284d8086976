package domain

// ItemKind distinguishes itinerary items.
type ItemKind int

const (
	ItemWait ItemKind = iota
	ItemRide
)

func (k ItemKind) String() string {
	switch k {
	case ItemWait:
		return "Wait"
	case ItemRide:
		return "Bus"
	default:
		return "Unknown"
	}
}

// RouteItem is one step of an itinerary. StopName is set for waits;
// BusName and SpanCount for rides. Time is in minutes.
type RouteItem struct {
	Kind      ItemKind
	StopName  string
	BusName   string
	SpanCount int
	Time      float64
}

// RouteInfo is an ordered itinerary with its total time in minutes.
type RouteInfo struct {
	TotalTime float64
	Items     []RouteItem
}
