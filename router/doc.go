/*
Package router answers minimum-time itinerary queries over a sealed catalogue.

Build turns the catalogue into a time-weighted directed graph. Every stop gets
two vertices: an arrival vertex where a passenger starts waiting and a
departure vertex reached after paying the fixed BusWaitTime. Every bus adds a
ride edge from the departure vertex of the stop at position i to the arrival
vertex of the stop at position j for all i < j, weighted by the road distance
ridden converted with BusVelocity. Staying on the same bus therefore never
costs a second wait.

	r := router.New(cat, router.Settings{BusWaitTime: 6, BusVelocity: 40})
	if err := r.Build(); err != nil {
	    // invalid settings or Build called twice
	}
	info, err := r.RouteBetween("A", "B")
	switch {
	case errors.Is(err, router.ErrStopNotFound):
	case errors.Is(err, router.ErrNoRoute):
	}

Build seals the catalogue; a built Router is safe for concurrent queries.
*/
package router
