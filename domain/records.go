package domain

// StopRecord describes a stop to add. RoadDistances maps a neighbour stop name
// to the directed road distance in meters from this stop.
type StopRecord struct {
	Name          string         `json:"name" validate:"required"`
	Latitude      float64        `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude     float64        `json:"longitude" validate:"gte=-180,lte=180"`
	RoadDistances map[string]int `json:"road_distances" validate:"dive,keys,required,endkeys,gte=0"`
}

// BusRecord describes a bus to add.
type BusRecord struct {
	Name        string   `json:"name" validate:"required"`
	Stops       []string `json:"stops" validate:"required,min=1,dive,required"`
	IsRoundTrip bool     `json:"is_roundtrip"`
}

// DistanceRecord sets the directed road distance between two stops.
type DistanceRecord struct {
	From   string `json:"from" validate:"required"`
	To     string `json:"to" validate:"required"`
	Meters int    `json:"meters" validate:"gte=0"`
}

// Batch is a complete set of population records.
type Batch struct {
	Stops     []StopRecord
	Distances []DistanceRecord
	Buses     []BusRecord
}

// Len returns the number of records in the batch.
func (b Batch) Len() int {
	return len(b.Stops) + len(b.Distances) + len(b.Buses)
}
