// Package navigator is the query facade over a campus map: it loads walking
// routes into a core.WeightedGraph and answers location queries.
//
// Queries:
//
//   - Locations:   every label in first-encounter order during loading.
//   - ShortestPath, TravelTimes, TotalTime: the minimum-time path and its legs.
//   - Route:       path, legs and total in one value; fails on unknown labels.
//   - MostDistant: the reachable location with the largest travel time.
//
// Unknown labels are hard failures (ErrUnknownLocation) where an operation
// returns an error; an unreachable destination is a normal empty result.
//
// Example:
//
//	nav := navigator.New()
//	_ = nav.LoadGraph([]navigator.Record{{"Jorns Hall", "Adams Residence Hall", 60}})
//	nav.ShortestPath("Jorns Hall", "Adams Residence Hall") // [Jorns Hall Adams Residence Hall]
//	nav.TravelTimes("Jorns Hall", "Adams Residence Hall")  // [60]
package navigator
