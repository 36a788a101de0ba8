package subset

import (
	"math"

	"github.com/katalvlaran/trajecta/errs"
)

// NeighbourhoodOption configures the size window and fixed-ID filter
// shared by every neighbourhood in this package.
type NeighbourhoodOption func(*neighbourhoodConfig)

type neighbourhoodConfig struct {
	minSize int
	maxSize int
	fixed   map[int]struct{}
}

func defaultNeighbourhoodConfig() *neighbourhoodConfig {
	return &neighbourhoodConfig{minSize: 0, maxSize: math.MaxInt}
}

// WithMinSize bounds the selected-set size from below: DeletionMove and
// the deletion arm of SinglePerturbation never drop the size under n.
func WithMinSize(n int) NeighbourhoodOption {
	return func(c *neighbourhoodConfig) { c.minSize = n }
}

// WithMaxSize bounds the selected-set size from above: AdditionMove and
// the addition arm of SinglePerturbation never raise the size above n.
func WithMaxSize(n int) NeighbourhoodOption {
	return func(c *neighbourhoodConfig) { c.maxSize = n }
}

// WithFixedIDs marks ids as never eligible for addition, deletion, or
// swap, regardless of their current selection state.
func WithFixedIDs(ids ...int) NeighbourhoodOption {
	return func(c *neighbourhoodConfig) {
		if c.fixed == nil {
			c.fixed = make(map[int]struct{}, len(ids))
		}
		for _, id := range ids {
			c.fixed[id] = struct{}{}
		}
	}
}

func buildConfig(opts []NeighbourhoodOption) (*neighbourhoodConfig, error) {
	cfg := defaultNeighbourhoodConfig()
	for _, o := range opts {
		o(cfg)
	}
	if cfg.minSize > cfg.maxSize {
		return nil, errs.NewConfigurationError("subset.Neighbourhood", "minSize must not exceed maxSize", nil)
	}
	return cfg, nil
}

func (c *neighbourhoodConfig) isFixed(id int) bool {
	if c.fixed == nil {
		return false
	}
	_, ok := c.fixed[id]
	return ok
}

// eligible filters ids to those not marked fixed.
func (c *neighbourhoodConfig) eligible(ids []int) []int {
	if c.fixed == nil {
		return ids
	}
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if !c.isFixed(id) {
			out = append(out, id)
		}
	}
	return out
}
