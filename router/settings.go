package router

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultBusWaitTime is the wait in minutes used when no settings are supplied.
	DefaultBusWaitTime = 6.0
	// DefaultBusVelocity is the bus velocity in km/h used when no settings are supplied.
	DefaultBusVelocity = 40.0
)

// Settings configures the router. Both values are fixed for the router's lifetime.
type Settings struct {
	BusWaitTime float64 `yaml:"busWaitTime" json:"bus_wait_time" validate:"gte=1,lte=1000"` // minutes
	BusVelocity float64 `yaml:"busVelocity" json:"bus_velocity" validate:"gte=1,lte=1000"`  // km/h
}

// DefaultSettings returns the settings used when none are configured.
func DefaultSettings() Settings {
	return Settings{BusWaitTime: DefaultBusWaitTime, BusVelocity: DefaultBusVelocity}
}

// Validate checks that both values are within the accepted range.
func (s Settings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("invalid routing settings: %w", err)
	}
	return nil
}

// travelMinutes converts a road distance in meters into riding minutes.
func (s Settings) travelMinutes(meters int) float64 {
	return float64(meters) * metersKmhToMinutes / s.BusVelocity
}

// 1 m at 1 km/h takes 3.6 s = 0.06 min.
const metersKmhToMinutes = 0.06
