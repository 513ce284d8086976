/*
Package catalogue is the canonical in-memory store of stops and buses.

Stops and buses live in append-only arenas and are referenced by integer
handles (domain.StopID, domain.BusID). The catalogue also owns the directed
road-distance table and the stop → passing buses index, and computes route
statistics when a bus is added.

# Population

Stops must be added before any distance or bus that references them, and
every distance a bus needs must be set before the bus is added:

	cat := catalogue.New()
	_ = cat.AddStop("A", 55.61, 37.20)
	_ = cat.AddStop("B", 55.59, 37.21)
	_ = cat.SetDistance("A", "B", 3900)
	if err := cat.AddBus("750", []string{"A", "B"}, false); err != nil {
	    // malformed input: unknown stop or missing distance
	}

# Reverse distances

SetDistance(A, B, d) also records (B, A) = d when (B, A) is absent. The copy
happens once; a later SetDistance(A, B, d2) leaves the seeded (B, A) at d, and a
later SetDistance(B, A, d3) never touches (A, B).

# Phases

Seal closes the write phase. The router seals the catalogue when it builds its
graph so that queries always see the same snapshot. After sealing every
mutation returns ErrSealed and the catalogue is safe for concurrent reads.
*/
package catalogue
