package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig is the resolved, immutable view of all options.
type builderConfig struct {
	idFn     func(int) string
	rng      *rand.Rand
	weightFn func(*rand.Rand) float64
	twoWay   bool
}

// defaultSeconds is the constant route time when no weight option is given.
const defaultSeconds = 60.0

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     locationID,
		weightFn: func(*rand.Rand) float64 { return defaultSeconds },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// locationID labels locations "L0", "L1", ...
func locationID(i int) string {
	return "L" + strconv.Itoa(i)
}
