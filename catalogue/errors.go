package catalogue

import "errors"

var (
	// ErrStopNotFound is returned when a mutation references an unknown stop.
	ErrStopNotFound = errors.New("stop not found")
	// ErrDistanceUnknown is returned by AddBus when a consecutive stop pair has no directed distance.
	ErrDistanceUnknown = errors.New("distance between stops is unknown")
	// ErrDuplicateBus is returned when a bus name is added twice.
	ErrDuplicateBus = errors.New("bus already exists")
	// ErrEmptyRoute is returned by AddBus for an empty stop list.
	ErrEmptyRoute = errors.New("bus route has no stops")
	// ErrSealed is returned by mutations after Seal.
	ErrSealed = errors.New("catalogue is sealed")
)
