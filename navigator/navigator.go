package navigator

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/campusmap/core"
	"github.com/katalvlaran/campusmap/dijkstra"
	"github.com/katalvlaran/campusmap/hashmap"
)

// Navigator answers location queries over a campus graph.
//
// It is populated by LoadGraph and read-only afterwards; once loading is done
// a Navigator may be shared between goroutines for queries.
type Navigator struct {
	graph     *core.WeightedGraph[string, float64]
	locations []string                  // first-encounter order
	rank      *hashmap.Map[string, int] // label → index in locations
	log       *slog.Logger
}

// New returns an empty Navigator.
func New(opts ...Option) *Navigator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Navigator{
		graph: core.NewGraph[string, float64](hashmap.String, core.WithCapacity(cfg.capacity)),
		rank:  hashmap.New[string, int](hashmap.String, hashmap.WithCapacity(cfg.capacity)),
		log:   cfg.logger,
	}
}

// LoadGraph inserts every record into the graph.
//
// Implementation:
//   - Stage 1: Validate labels and seconds before touching any state.
//   - Stage 2: Register both endpoints (first encounter fixes the order) and insert them as nodes.
//   - Stage 3: Insert the edge unless (src,dst) already exists, so replaying a file is a no-op.
//
// A structurally invalid record (empty label, negative or non-finite seconds)
// stops the load with an error naming its index. Records before it stay loaded;
// nothing of the invalid record does.
func (n *Navigator) LoadGraph(records []Record) error {
	var added, skipped int
	for i, r := range records {
		if r.Source == "" || r.Destination == "" {
			return fmt.Errorf("%w: record %d has an empty label", ErrInvalidRecord, i)
		}
		if err := core.CheckWeight(r.Seconds); err != nil {
			return fmt.Errorf("navigator: record %d (%q -> %q): %w", i, r.Source, r.Destination, err)
		}
		for _, label := range [2]string{r.Source, r.Destination} {
			if err := n.register(label); err != nil {
				return fmt.Errorf("navigator: record %d: %w", i, err)
			}
		}
		if n.graph.ContainsEdge(r.Source, r.Destination) {
			skipped++
			continue
		}
		if err := n.graph.InsertEdge(r.Source, r.Destination, r.Seconds); err != nil {
			return fmt.Errorf("navigator: record %d (%q -> %q): %w", i, r.Source, r.Destination, err)
		}
		added++
	}

	n.log.Debug("graph loaded",
		slog.Int("records", len(records)),
		slog.Int("edges_added", added),
		slog.Int("edges_skipped", skipped),
		slog.Int("locations", len(n.locations)),
	)

	return nil
}

// register adds label to the registry and graph on first encounter.
func (n *Navigator) register(label string) error {
	if n.rank.ContainsKey(label) {
		return nil
	}
	if err := n.graph.InsertNode(label); err != nil {
		return err
	}
	if err := n.rank.Put(label, len(n.locations)); err != nil {
		return err
	}
	n.locations = append(n.locations, label)

	return nil
}

// Locations returns every known label in first-encounter order.
func (n *Navigator) Locations() []string {
	out := make([]string, len(n.locations))
	copy(out, n.locations)

	return out
}

// Len returns the number of known locations.
func (n *Navigator) Len() int { return len(n.locations) }

// Contains reports whether label was loaded.
func (n *Navigator) Contains(label string) bool { return n.rank.ContainsKey(label) }

// ShortestPath returns the minimum-time path a→b inclusive, [a] when a == b,
// or an empty slice when either label is unknown or b is unreachable.
func (n *Navigator) ShortestPath(a, b string) []string {
	return n.graph.ShortestPath(a, b)
}

// TravelTimes returns the seconds of each leg along ShortestPath(a, b).
// Empty when there is no path.
func (n *Navigator) TravelTimes(a, b string) []float64 {
	times, err := n.legTimes(n.graph.ShortestPath(a, b))
	if err != nil {
		return nil
	}

	return times
}

// TotalTime returns the sum of TravelTimes(a, b); zero when there is no path.
func (n *Navigator) TotalTime(a, b string) float64 {
	var total float64
	for _, t := range n.TravelTimes(a, b) {
		total += t
	}

	return total
}

// Route returns the shortest path a→b with its leg times and total.
// ErrUnknownLocation is returned if either endpoint was never loaded;
// an unreachable b yields an empty Route and no error.
func (n *Navigator) Route(a, b string) (Route, error) {
	for _, label := range [2]string{a, b} {
		if !n.Contains(label) {
			return Route{}, fmt.Errorf("%w: %q", ErrUnknownLocation, label)
		}
	}

	path := n.graph.ShortestPath(a, b)
	times, err := n.legTimes(path)
	if err != nil {
		return Route{}, err
	}
	r := Route{Path: path, Times: times}
	for _, t := range times {
		r.Total += t
	}

	return r, nil
}

// MostDistant returns the location whose shortest-path time from a is the
// largest. The start itself is never a candidate.
//
// Implementation:
//   - Stage 1: One single-source Dijkstra run from a settles every reachable location.
//   - Stage 2: Scan Locations() in order, keeping the first strictly larger total.
//
// Returns ErrUnknownLocation if a was never loaded and NoLocation when
// nothing other than a is reachable.
//
// Complexity:
//   - Time O((V + E) log V), Space O(V).
func (n *Navigator) MostDistant(a string) (string, error) {
	if !n.Contains(a) {
		return NoLocation, fmt.Errorf("%w: %q", ErrUnknownLocation, a)
	}

	res, err := dijkstra.Dijkstra(n.graph, a)
	if err != nil {
		return NoLocation, fmt.Errorf("navigator: most distant from %q: %w", a, err)
	}

	best, found := NoLocation, false
	var bestTime float64
	for _, b := range n.locations {
		if b == a {
			continue
		}
		d, ok := res.Distance(b)
		if !ok {
			continue
		}
		if !found || d > bestTime {
			best, bestTime, found = b, d, true
		}
	}

	return best, nil
}

// legTimes looks up the weight of each consecutive pair of path.
func (n *Navigator) legTimes(path []string) ([]float64, error) {
	if len(path) < 2 {
		return []float64{}, nil
	}
	times := make([]float64, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		w, err := n.graph.Edge(path[i], path[i+1])
		if err != nil {
			return nil, err
		}
		times = append(times, w)
	}

	return times, nil
}
