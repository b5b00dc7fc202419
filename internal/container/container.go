// Package container implements nestable dispatch: string-keyed groupings of
// named sub-tensors over which tensor functions are applied independently,
// with results regrouped under the same keys.
package container

import (
	"sort"

	"github.com/strand-ml/strand/internal/fwerr"
	"github.com/strand-ml/strand/internal/tensor"
)

// Container is an ordered collection of named sub-tensors sharing an element
// type and backend. Iteration order is insertion order.
type Container[T tensor.DType, B tensor.Backend] struct {
	keys   []string
	leaves map[string]*tensor.Tensor[T, B]
}

// New creates an empty container.
func New[T tensor.DType, B tensor.Backend]() *Container[T, B] {
	return &Container[T, B]{
		leaves: make(map[string]*tensor.Tensor[T, B]),
	}
}

// FromMap creates a container from a map, with keys in sorted order.
func FromMap[T tensor.DType, B tensor.Backend](m map[string]*tensor.Tensor[T, B]) *Container[T, B] {
	c := New[T, B]()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		c.Set(k, m[k])
	}
	return c
}

// Set adds or replaces the sub-tensor under key.
func (c *Container[T, B]) Set(key string, t *tensor.Tensor[T, B]) {
	if _, exists := c.leaves[key]; !exists {
		c.keys = append(c.keys, key)
	}
	c.leaves[key] = t
}

// At returns the sub-tensor under key, or false if absent.
func (c *Container[T, B]) At(key string) (*tensor.Tensor[T, B], bool) {
	t, ok := c.leaves[key]
	return t, ok
}

// Keys returns the container's keys in insertion order.
// The returned slice must not be modified.
func (c *Container[T, B]) Keys() []string {
	return c.keys
}

// Len returns the number of sub-tensors.
func (c *Container[T, B]) Len() int {
	return len(c.keys)
}

// Map applies f independently to each sub-tensor and regroups the results
// under the same keys. The first error aborts and is returned.
func Map[T tensor.DType, B tensor.Backend](
	c *Container[T, B],
	f func(key string, t *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error),
) (*Container[T, B], error) {
	result := New[T, B]()
	for _, key := range c.keys {
		r, err := f(key, c.leaves[key])
		if err != nil {
			return nil, err
		}
		result.Set(key, r)
	}
	return result, nil
}

// Zip applies f pairwise to the sub-tensors of a and b under matching keys
// and regroups the results. The key sets of a and b must be identical.
func Zip[T tensor.DType, B tensor.Backend](
	a, b *Container[T, B],
	f func(key string, ta, tb *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error),
) (*Container[T, B], error) {
	if err := sameKeys(a, b); err != nil {
		return nil, err
	}

	result := New[T, B]()
	for _, key := range a.keys {
		r, err := f(key, a.leaves[key], b.leaves[key])
		if err != nil {
			return nil, err
		}
		result.Set(key, r)
	}
	return result, nil
}

func sameKeys[T tensor.DType, B tensor.Backend](a, b *Container[T, B]) error {
	if a.Len() != b.Len() {
		return fwerr.Valuef("containers have different key counts: %d vs %d", a.Len(), b.Len())
	}
	for _, key := range a.keys {
		if _, ok := b.leaves[key]; !ok {
			return fwerr.Valuef("key %q present in one container but not the other", key)
		}
	}
	return nil
}
