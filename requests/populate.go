package requests

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/golang/glog"

	"github.com/theoremus-urban-solutions/transit-catalogue/domain"
)

var validate = validator.New()

// Catalogue is the population surface of catalogue.Catalogue.
type Catalogue interface {
	AddStop(name string, lat, lng float64) error
	SetDistance(from, to string, meters int) error
	AddBus(name string, stops []string, isRoundTrip bool) error
}

// Populate validates every record and applies the batch: all stops, then all
// distances (road_distances of stop records first, in name order, then
// standalone distance records), then all buses. The first failure aborts.
func Populate(cat Catalogue, batch domain.Batch) error {
	for i, s := range batch.Stops {
		if err := validate.Struct(s); err != nil {
			return fmt.Errorf("stop record %d (%q): %w", i, s.Name, err)
		}
		if err := cat.AddStop(s.Name, s.Latitude, s.Longitude); err != nil {
			return fmt.Errorf("stop record %d (%q): %w", i, s.Name, err)
		}
	}
	for _, s := range batch.Stops {
		neighbours := make([]string, 0, len(s.RoadDistances))
		for to := range s.RoadDistances {
			neighbours = append(neighbours, to)
		}
		sort.Strings(neighbours)
		for _, to := range neighbours {
			if err := cat.SetDistance(s.Name, to, s.RoadDistances[to]); err != nil {
				return fmt.Errorf("road distances of %q: %w", s.Name, err)
			}
		}
	}
	for i, d := range batch.Distances {
		if err := validate.Struct(d); err != nil {
			return fmt.Errorf("distance record %d: %w", i, err)
		}
		if err := cat.SetDistance(d.From, d.To, d.Meters); err != nil {
			return fmt.Errorf("distance record %d: %w", i, err)
		}
	}
	for i, b := range batch.Buses {
		if err := validate.Struct(b); err != nil {
			return fmt.Errorf("bus record %d (%q): %w", i, b.Name, err)
		}
		if err := cat.AddBus(b.Name, b.Stops, b.IsRoundTrip); err != nil {
			return fmt.Errorf("bus record %d: %w", i, err)
		}
		glog.V(1).Infof("added bus %q with %d declared stops", b.Name, len(b.Stops))
	}
	glog.Infof("catalogue populated: %d stops, %d distances, %d buses",
		len(batch.Stops), len(batch.Distances), len(batch.Buses))
	return nil
}
