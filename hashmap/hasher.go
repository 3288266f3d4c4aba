package hashmap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Hasher hashes and compares keys. Keys which are Equal must have the same
// Hash.
type Hasher[K any] interface {
	Hash(key K) uint64
	Equal(a, b K) bool
}

// ComparableHasher hashes any comparable key with the runtime's hash
// function and compares keys with ==. The zero value is not usable; create
// instances with NewComparableHasher.
type ComparableHasher[K comparable] struct {
	seed maphash.Seed
}

// NewComparableHasher creates a hasher with a random seed.
func NewComparableHasher[K comparable]() ComparableHasher[K] {
	return ComparableHasher[K]{seed: maphash.MakeSeed()}
}

// Hash returns the hash of key.
func (h ComparableHasher[K]) Hash(key K) uint64 {
	return maphash.Comparable(h.seed, key)
}

// Equal reports whether a == b.
func (h ComparableHasher[K]) Equal(a, b K) bool {
	return a == b
}

// StringHasher hashes string keys with xxHash64. Hashes are stable across
// processes.
type StringHasher struct{}

// Hash returns the xxHash64 of key.
func (StringHasher) Hash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Equal reports whether a == b.
func (StringHasher) Equal(a, b string) bool {
	return a == b
}

// spread folds the upper 32 bits of a hash into the lower ones, which select
// the bucket.
func spread(h uint64) uint64 {
	return h ^ (h >> 32)
}
