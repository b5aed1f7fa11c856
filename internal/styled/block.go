package styled

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/alexisbeaulieu97/styler/internal/stylesheet"
)

// Elements maps element names to the fragment of one variant.
type Elements map[string]stylesheet.Style

// Block is an insertion-ordered set of variant fragments. Declared order is
// cascade order: fragments of later variants override earlier ones.
type Block[T any] struct {
	values *orderedmap.OrderedMap[string, T]
}

// NewBlock returns an empty block.
func NewBlock[T any]() *Block[T] {
	return &Block[T]{values: orderedmap.New[string, T]()}
}

// Set stores value under variant. Re-setting a variant keeps its position.
func (b *Block[T]) Set(variant string, value T) *Block[T] {
	if b.values == nil {
		b.values = orderedmap.New[string, T]()
	}
	b.values.Set(variant, value)
	return b
}

// Get returns the fragment stored under variant.
func (b *Block[T]) Get(variant string) (T, bool) {
	if b == nil || b.values == nil {
		var zero T
		return zero, false
	}
	return b.values.Get(variant)
}

// Keys returns the variant names in declared order.
func (b *Block[T]) Keys() []string {
	if b == nil || b.values == nil {
		return nil
	}
	out := make([]string, 0, b.values.Len())
	for pair := b.values.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Len reports the number of variants.
func (b *Block[T]) Len() int {
	if b == nil || b.values == nil {
		return 0
	}
	return b.values.Len()
}

// Each calls fn for every variant in declared order.
func (b *Block[T]) Each(fn func(variant string, value T)) {
	if b == nil || b.values == nil {
		return
	}
	for pair := b.values.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Clone returns a shallow copy of the block.
func (b *Block[T]) Clone() *Block[T] {
	out := NewBlock[T]()
	b.Each(func(variant string, value T) {
		out.Set(variant, value)
	})
	return out
}
