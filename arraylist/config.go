package arraylist

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/containers"
)

const (
	// DefaultCapacity is the capacity allocated by lists created with New on
	// their first insertion.
	DefaultCapacity = 10
	// MaxArraySize is the largest capacity a list will ever allocate.
	MaxArraySize = math.MaxInt32 - 8
)

// Config configures a list.
type Config struct {
	// Capacity is the initial capacity. 0 selects lazy allocation of
	// DefaultCapacity slots on first insertion.
	Capacity int
	// MaxCapacity caps growth. 0 means MaxArraySize.
	MaxCapacity int
	// RejectNil makes the list refuse nil elements with
	// containers.ErrValueNotAllowed.
	RejectNil bool
}

func (cfg Config) normalized() Config {
	if cfg.MaxCapacity == 0 {
		cfg.MaxCapacity = MaxArraySize
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.Capacity < 0 {
		return errors.Wrapf(containers.ErrInvalidConfig, "illegal capacity %d", cfg.Capacity)
	}
	if cfg.MaxCapacity < 0 || cfg.MaxCapacity > MaxArraySize {
		return errors.Wrapf(containers.ErrInvalidConfig, "illegal maximum capacity %d", cfg.MaxCapacity)
	}
	if cfg.Capacity > cfg.MaxCapacity {
		return errors.Wrapf(containers.ErrCapacityExceeded, "capacity %d exceeds maximum %d",
			cfg.Capacity, cfg.MaxCapacity)
	}
	return nil
}
