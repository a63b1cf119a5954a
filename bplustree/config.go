package bplus

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const DefaultOrder = 32

// Config holds the construction parameters of a tree.
type Config struct {
	// Order is the maximum number of records in a leaf and of separator keys
	// in an internal node.
	Order int
}

func DefaultConfig() Config {
	return Config{Order: DefaultOrder}
}

func (c Config) Validate() error {
	if c.Order < MinOrder {
		return errors.Wrapf(ErrInvalidOrder, "order %d is below minimum %d", c.Order, MinOrder)
	}
	return nil
}

type options struct {
	logger *zap.Logger
}

// Option customizes a tree at construction.
type Option func(*options)

// WithLogger routes structural events (splits, borrows, merges, root changes)
// to l at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
