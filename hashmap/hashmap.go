package hashmap

import (
	"fmt"
	"slices"
)

// Map is a hash table with separate chaining.
//
// The bucket array is a slice of pair slices. size counts distinct keys and
// len(buckets) is the capacity.
type Map[K comparable, V any] struct {
	hash       Hasher[K]
	buckets    [][]pair[K, V]
	size       int
	loadFactor float64
}

// New creates an empty Map that hashes keys with hash.
// Panics if hash is nil.
func New[K comparable, V any](hash Hasher[K], opts ...Option) *Map[K, V] {
	if hash == nil {
		panic("hashmap: nil hasher")
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Map[K, V]{
		hash:       hash,
		buckets:    make([][]pair[K, V], cfg.Capacity),
		loadFactor: cfg.LoadFactor,
	}
}

// Put stores value under key.
//
// Errors:
//   - ErrInvalidKey if key is the zero value of K.
//   - ErrDuplicateKey if key is already present; the stored value is kept.
//
// A successful Put may grow the table (see rehash).
func (m *Map[K, V]) Put(key K, value V) error {
	var zero K
	if key == zero {
		return ErrInvalidKey
	}
	idx := m.index(key)
	if m.find(idx, key) >= 0 {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}

	m.buckets[idx] = append(m.buckets[idx], pair[K, V]{key: key, value: value})
	m.size++
	m.rehash()

	return nil
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (m *Map[K, V]) Get(key K) (V, error) {
	idx := m.index(key)
	if i := m.find(idx, key); i >= 0 {
		return m.buckets[idx][i].value, nil
	}
	var zero V

	return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// ContainsKey reports whether key is stored.
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.find(m.index(key), key) >= 0
}

// Remove deletes key and returns its value, or ErrKeyNotFound.
// The relative order of the remaining pairs in the bucket is preserved.
func (m *Map[K, V]) Remove(key K) (V, error) {
	idx := m.index(key)
	i := m.find(idx, key)
	if i < 0 {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	value := m.buckets[idx][i].value
	m.buckets[idx] = slices.Delete(m.buckets[idx], i, i+1)
	m.size--

	return value, nil
}

// Len returns the number of stored keys.
func (m *Map[K, V]) Len() int { return m.size }

// Capacity returns the current number of buckets.
func (m *Map[K, V]) Capacity() int { return len(m.buckets) }

// Clear removes every pair but keeps the current capacity.
func (m *Map[K, V]) Clear() {
	for i := range m.buckets {
		m.buckets[i] = nil
	}
	m.size = 0
}

// Range calls fn for every stored pair until fn returns false.
// Iteration order is unspecified. fn must not mutate m.
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	for _, bucket := range m.buckets {
		for _, p := range bucket {
			if !fn(p.key, p.value) {
				return
			}
		}
	}
}

// Keys returns every stored key in unspecified order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	m.Range(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})

	return keys
}

// index returns the bucket slot for key under the current capacity.
func (m *Map[K, V]) index(key K) int {
	return int(m.hash(key) % uint64(len(m.buckets)))
}

// find returns the position of key inside bucket idx, or -1.
func (m *Map[K, V]) find(idx int, key K) int {
	for i, p := range m.buckets[idx] {
		if p.key == key {
			return i
		}
	}

	return -1
}

// rehash doubles the capacity and redistributes every pair once the load
// factor reaches the threshold. It is a full rebuild: a fresh bucket array is
// allocated and each pair is re-indexed under the new capacity.
func (m *Map[K, V]) rehash() {
	if float64(m.size)/float64(len(m.buckets)) < m.loadFactor {
		return
	}
	old := m.buckets
	m.buckets = make([][]pair[K, V], 2*len(old))
	for _, bucket := range old {
		for _, p := range bucket {
			idx := m.index(p.key)
			m.buckets[idx] = append(m.buckets[idx], p)
		}
	}
}
