package hashmap

import (
	"math"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/containers"
)

const (
	// DefaultCapacity is the number of buckets allocated on first insertion
	// if no initial capacity is configured.
	DefaultCapacity = 16
	// MaximumCapacity is the largest number of buckets of a table.
	MaximumCapacity = 1 << 30
	// DefaultLoadFactor is the ratio of entries to buckets above which the
	// table is doubled.
	DefaultLoadFactor = 0.75
	// TreeifyThreshold is the default length above which a chain is
	// converted to a tree bin.
	TreeifyThreshold = 8
	// UntreeifyThreshold is the default size at or below which a tree bin
	// reverts to a chain.
	UntreeifyThreshold = 6
	// MinTreeifyCapacity is the default smallest table size for which bins
	// are converted to trees. Smaller tables are resized instead.
	MinTreeifyCapacity = 64
)

// Config configures a map. Zero values select defaults.
type Config[K comparable, V any] struct {
	// InitialCapacity is rounded up to the next power of two.
	InitialCapacity int
	// LoadFactor must be positive.
	LoadFactor float64
	// TreeifyThreshold, UntreeifyThreshold and MinTreeifyCapacity tune the
	// escalation of chains to trees. 0 < Untreeify < Treeify must hold.
	TreeifyThreshold   int
	UntreeifyThreshold int
	MinTreeifyCapacity int
	// MaxSize limits the number of entries; inserting beyond it fails with
	// containers.ErrCapacityExceeded. 0 means no limit.
	MaxSize int
	// Hasher defaults to a ComparableHasher.
	Hasher Hasher[K]
	// Compare optionally orders keys with equal hashes inside tree bins. It
	// must be consistent with the hasher's Equal.
	Compare func(a, b K) int
	// ValueEqual compares values for ContainsValue. It defaults to
	// reflect.DeepEqual.
	ValueEqual func(a, b V) bool
	// RejectNilKeys and RejectNilValues make Put fail with
	// containers.ErrKeyNotAllowed and containers.ErrValueNotAllowed,
	// respectively, for nil keys or values.
	RejectNilKeys   bool
	RejectNilValues bool
}

func (cfg Config[K, V]) normalized() Config[K, V] {
	if cfg.InitialCapacity == 0 {
		cfg.InitialCapacity = DefaultCapacity
	}
	cfg.InitialCapacity = tableSizeFor(cfg.InitialCapacity)
	if cfg.LoadFactor == 0 {
		cfg.LoadFactor = DefaultLoadFactor
	}
	if cfg.TreeifyThreshold == 0 {
		cfg.TreeifyThreshold = TreeifyThreshold
	}
	if cfg.UntreeifyThreshold == 0 {
		cfg.UntreeifyThreshold = min(UntreeifyThreshold, cfg.TreeifyThreshold-1)
	}
	if cfg.MinTreeifyCapacity == 0 {
		cfg.MinTreeifyCapacity = MinTreeifyCapacity
	}
	if cfg.MaxSize == 0 {
		cfg.MaxSize = math.MaxInt
	}
	if cfg.Hasher == nil {
		cfg.Hasher = NewComparableHasher[K]()
	}
	if cfg.ValueEqual == nil {
		cfg.ValueEqual = func(a, b V) bool {
			return reflect.DeepEqual(a, b)
		}
	}
	return cfg
}

func (cfg Config[K, V]) validate() error {
	if cfg.InitialCapacity < 0 {
		return errors.Wrapf(containers.ErrInvalidConfig, "illegal initial capacity %d", cfg.InitialCapacity)
	}
	if cfg.LoadFactor < 0 || math.IsNaN(cfg.LoadFactor) || math.IsInf(cfg.LoadFactor, 0) {
		return errors.Wrapf(containers.ErrInvalidConfig, "illegal load factor %v", cfg.LoadFactor)
	}
	if cfg.MaxSize < 0 {
		return errors.Wrapf(containers.ErrInvalidConfig, "illegal maximum size %d", cfg.MaxSize)
	}
	cfg = cfg.normalized()
	if cfg.TreeifyThreshold < 2 || cfg.UntreeifyThreshold < 1 ||
		cfg.UntreeifyThreshold >= cfg.TreeifyThreshold {
		return errors.Wrapf(containers.ErrInvalidConfig, "illegal treeify thresholds %d/%d",
			cfg.TreeifyThreshold, cfg.UntreeifyThreshold)
	}
	if cfg.MinTreeifyCapacity < 1 {
		return errors.Wrapf(containers.ErrInvalidConfig, "illegal minimum treeify capacity %d",
			cfg.MinTreeifyCapacity)
	}
	return nil
}

// tableSizeFor returns the smallest power of two ≥ c, within [1,MaximumCapacity].
func tableSizeFor(c int) int {
	if c >= MaximumCapacity {
		return MaximumCapacity
	}
	n := 1
	for n < c {
		n <<= 1
	}
	return n
}

func thresholdFor(capacity int, loadFactor float64) int {
	if capacity >= MaximumCapacity {
		return math.MaxInt
	}
	t := float64(capacity) * loadFactor
	if t >= float64(math.MaxInt) {
		return math.MaxInt
	}
	return int(t)
}
