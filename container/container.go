// Copyright 2025 Strand ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package container provides string-keyed groupings of named sub-tensors.
//
// A Container maps keys to sub-tensors sharing an element type and backend.
// Tensor functions are applied independently per key with the results
// regrouped under the same keys; see the container forms of the loss
// functions in package nn.
//
// Example:
//
//	backend := cpu.New()
//	c := container.New[float32, *cpu.Backend]()
//	c.Set("weights", tensor.Ones[float32](tensor.Shape{2, 3}, backend))
//	c.Set("bias", tensor.Zeros[float32](tensor.Shape{3}, backend))
package container

import (
	"github.com/strand-ml/strand/internal/container"
	"github.com/strand-ml/strand/internal/tensor"
)

// Container is an ordered collection of named sub-tensors sharing an element
// type and backend. Iteration order is insertion order.
type Container[T tensor.DType, B tensor.Backend] = container.Container[T, B]

// New creates an empty container.
func New[T tensor.DType, B tensor.Backend]() *Container[T, B] {
	return container.New[T, B]()
}

// FromMap creates a container from a map, with keys in sorted order.
func FromMap[T tensor.DType, B tensor.Backend](m map[string]*tensor.Tensor[T, B]) *Container[T, B] {
	return container.FromMap(m)
}

// Map applies f independently to each sub-tensor and regroups the results
// under the same keys. The first error aborts and is returned.
func Map[T tensor.DType, B tensor.Backend](
	c *Container[T, B],
	f func(key string, t *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error),
) (*Container[T, B], error) {
	return container.Map(c, f)
}

// Zip applies f pairwise to the sub-tensors of a and b under matching keys
// and regroups the results. The key sets of a and b must be identical.
func Zip[T tensor.DType, B tensor.Backend](
	a, b *Container[T, B],
	f func(key string, ta, tb *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error),
) (*Container[T, B], error) {
	return container.Zip(a, b, f)
}
