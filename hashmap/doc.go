// Package hashmap provides Map, a generic associative store with separate
// chaining and whole-table rehashing.
//
// Overview:
//
//   - Keys are placed in bucket hash(key) mod capacity; a bucket is an ordered
//     slice of key/value pairs scanned linearly for equality.
//   - Hashing is explicit: every Map is built with a Hasher[K]. Ready-made
//     hashers (String, Bytes, Integer) are backed by xxhash and are
//     deterministic across processes.
//   - After every successful Put the load factor size/capacity is checked;
//     once it reaches the threshold (0.8 by default) the capacity doubles and
//     all pairs are rehashed into a freshly allocated bucket array.
//     Lookups never trigger a resize.
//
// Key policy:
//
//   - The zero value of K is not a valid key (ErrInvalidKey).
//   - Keys are unique. Put on an existing key fails with ErrDuplicateKey;
//     the stored value is never replaced.
//
// Complexity:
//
//   - Put, Get, ContainsKey, Remove: O(1) average, O(n) worst case per bucket.
//   - A resizing Put costs O(n); amortised over the doubling schedule it is O(1).
//
// Iteration order (Range, Keys) is unspecified and must not be relied upon.
//
// Thread safety:
//
//   - Map is not safe for concurrent mutation. Concurrent readers are fine
//     once all writes have completed.
package hashmap
