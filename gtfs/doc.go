/*
Package gtfs converts a GTFS static feed into catalogue population records.

A feed is read from a local zip file, raw zip bytes or an HTTP URL. Only
stops.txt, routes.txt, trips.txt and stop_times.txt are consumed; every
other file in the archive is ignored.

# Basic Usage

	feed, err := gtfs.LoadFromLocalZip("gtfs.zip")
	if err != nil {
	    glog.Exitf("load feed: %v", err)
	}
	batch := feed.ToBatch(gtfs.Options{ShapeDistUnit: 1})
	if err := requests.Populate(cat, batch); err != nil {
	    glog.Exitf("populate: %v", err)
	}

# Conversion Rules

Each route becomes one bus named after route_short_name (route_id when the
short name is empty or already taken). The bus follows the route's longest
trip:

  - a trip that ends where it started is a loop
  - a trip whose longest opposite-direction trip visits the same stops in
    reverse is an out-and-back route
  - any other trip is kept as-is, one way

Road distances come from shape_dist_traveled deltas scaled by
Options.ShapeDistUnit. When the column is absent or the unit is zero the
great-circle distance rounded up to whole meters is used instead.

# Warnings

Stops sharing a name are merged into the first one. Routes without trips, or
whose trip visits a stop missing from stops.txt, are skipped. ToBatch counts
each case in a WarningAggregator and logs one summary line per warning type.

# Caching

Parsing a large feed takes seconds. SaveBatch and LoadBatch keep the
converted records on disk with encoding/gob so a restart can skip the zip.
*/
package gtfs
