// Package campusmap finds walking routes across a campus map.
//
// A map is a weighted directed graph: locations are nodes and each walking
// route is an edge weighted by its travel time in seconds.
//
// Under the hood, everything is organized into subpackages:
//
//	hashmap/   - generic chained hash map with load-factor doubling (xxhash hashers)
//	core/      - generic WeightedGraph with single-pair Dijkstra ShortestPath
//	dijkstra/  - single-source Dijkstra with distance caps and impassable-edge thresholds
//	navigator/ - query facade: Locations, ShortestPath, TravelTimes, MostDistant, Route
//	dotfile/   - reader for `"A" -> "B" [seconds="60"];` map files
//	builder/   - deterministic synthetic maps for tests and benchmarks
//	server/    - read-only JSON API over a loaded navigator
//
// The campusmap command (cmd/campusmap) wires them together.
//
// Quick start:
//
//	records, _, err := dotfile.Load("campus.dot")
//	if err != nil { ... }
//	nav := navigator.New()
//	if err := nav.LoadGraph(records); err != nil { ... }
//	fmt.Println(nav.ShortestPath("Jorns Hall", "Adams Residence Hall"))
package campusmap
