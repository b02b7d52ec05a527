package hashmap

import "errors"

// Sentinel errors returned by Map operations.
var (
	// ErrInvalidKey indicates the key is the zero value of its type.
	ErrInvalidKey = errors.New("hashmap: invalid key")

	// ErrDuplicateKey indicates Put was called with a key that is already stored.
	ErrDuplicateKey = errors.New("hashmap: duplicate key")

	// ErrKeyNotFound indicates the requested key is not stored.
	ErrKeyNotFound = errors.New("hashmap: key not found")

	// ErrBadCapacity indicates WithCapacity received a non-positive value.
	ErrBadCapacity = errors.New("hashmap: capacity must be positive")

	// ErrBadLoadFactor indicates WithLoadFactor received a value outside (0, 1].
	ErrBadLoadFactor = errors.New("hashmap: load factor must be in (0, 1]")
)

const (
	// DefaultCapacity is the initial number of buckets.
	DefaultCapacity = 64

	// DefaultLoadFactor is the size/capacity ratio that triggers a rehash.
	DefaultLoadFactor = 0.8
)

// Hasher maps a key to a 64-bit hash. It must be deterministic and
// consistent with ==: equal keys must produce equal hashes.
type Hasher[K any] func(K) uint64

// Options configures a Map before creation.
type Options struct {
	Capacity   int     // initial bucket count
	LoadFactor float64 // rehash threshold
}

// Option represents a functional option for configuring a Map.
type Option func(*Options)

// WithCapacity sets the initial bucket count. Panics if n <= 0.
func WithCapacity(n int) Option {
	if n <= 0 {
		panic(ErrBadCapacity.Error())
	}
	return func(o *Options) { o.Capacity = n }
}

// WithLoadFactor sets the rehash threshold. Panics unless 0 < f <= 1.
func WithLoadFactor(f float64) Option {
	if !(f > 0 && f <= 1) {
		panic(ErrBadLoadFactor.Error())
	}
	return func(o *Options) { o.LoadFactor = f }
}

// DefaultOptions returns the defaults: 64 buckets, load factor 0.8.
func DefaultOptions() Options {
	return Options{
		Capacity:   DefaultCapacity,
		LoadFactor: DefaultLoadFactor,
	}
}

// pair is a single stored entry.
type pair[K comparable, V any] struct {
	key   K
	value V
}
