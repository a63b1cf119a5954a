package bplus

import (
	"cmp"

	"go.uber.org/zap"
)

// New builds an empty tree ordered by the natural order of K.
func New[K cmp.Ordered, V any](order int, opts ...Option) (*BPlusTree[K, V], error) {
	return NewWithComparator[K, V](order, cmp.Compare[K], opts...)
}

// NewWithComparator builds an empty tree ordered by compare, which must be a
// total order returning <0, 0 or >0.
func NewWithComparator[K any, V any](order int, compare func(a, b K) int, opts ...Option) (*BPlusTree[K, V], error) {
	if err := (Config{Order: order}).Validate(); err != nil {
		return nil, err
	}
	if compare == nil {
		return nil, ErrNilComparator
	}

	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	t := &BPlusTree[K, V]{
		order: order,
		nodes: newArena[K, V](),
		cmp:   compare,
		log:   o.logger.With(zap.Int("order", order)),
	}
	t.root = t.nodes.allocate(NodeLeaf, order).id
	return t, nil
}

// NewFromConfig is New with a Config value.
func NewFromConfig[K cmp.Ordered, V any](cfg Config, opts ...Option) (*BPlusTree[K, V], error) {
	return New[K, V](cfg.Order, opts...)
}

// Order returns the order the tree was built with.
func (t *BPlusTree[K, V]) Order() int {
	return t.order
}
