// Package navigator defines the record, route and option types of the query facade.
package navigator

import (
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// NoLocation is returned by MostDistant when nothing is reachable from the start.
const NoLocation = ""

// DefaultCapacity is the initial capacity of the location registry and graph stores.
const DefaultCapacity = 64

// Sentinel errors for navigator operations.
var (
	// ErrUnknownLocation indicates a query referenced a label that was never loaded.
	ErrUnknownLocation = errors.New("navigator: unknown location")

	// ErrInvalidRecord indicates a record with an empty source or destination label.
	ErrInvalidRecord = errors.New("navigator: invalid record")

	// ErrBadCapacity is the panic value of WithCapacity for n < 1.
	ErrBadCapacity = errors.New("navigator: capacity must be at least 1")
)

// Record is one walking route: Source → Destination taking Seconds.
type Record struct {
	Source      string
	Destination string
	Seconds     float64
}

// Route is a shortest path together with the time of each leg.
// len(Times) == len(Path)-1 for a non-empty route.
type Route struct {
	Path  []string
	Times []float64
	Total float64
}

// Empty reports whether the route has no path.
func (r Route) Empty() bool { return len(r.Path) == 0 }

// String renders the route as "A -(30s)-> B -(12.5s)-> C".
func (r Route) String() string {
	if r.Empty() {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(r.Path[0])
	for i, t := range r.Times {
		sb.WriteString(" -(")
		sb.WriteString(strconv.FormatFloat(t, 'f', -1, 64))
		sb.WriteString("s)-> ")
		sb.WriteString(r.Path[i+1])
	}

	return sb.String()
}

// Option configures a Navigator.
type Option func(*config)

type config struct {
	logger   *slog.Logger
	capacity int
}

// WithLogger sets the logger used for load summaries (Debug level).
// A nil logger keeps the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCapacity presizes the location registry and the graph's node store.
// Panics with ErrBadCapacity if n < 1.
func WithCapacity(n int) Option {
	if n < 1 {
		panic(ErrBadCapacity.Error())
	}
	return func(c *config) {
		c.capacity = n
	}
}

func defaultConfig() config {
	return config{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		capacity: DefaultCapacity,
	}
}
