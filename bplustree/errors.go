package bplus

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidOrder is returned when a tree is configured with an order below MinOrder.
	ErrInvalidOrder = errors.New("bplus: invalid order")
	// ErrNilComparator is returned when NewWithComparator receives a nil compare func.
	ErrNilComparator = errors.New("bplus: nil comparator")
	// ErrCorrupt marks a broken structural invariant. Rebalancing panics with an
	// error wrapping it; Validate failures unwrap to it.
	ErrCorrupt = errors.New("bplus: corrupt tree")
)

// corruptf aborts on a state a correct tree can never reach.
func corruptf(format string, args ...any) {
	panic(errors.Wrapf(ErrCorrupt, format, args...))
}
