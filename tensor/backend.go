// Copyright 2025 Strand ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/strand-ml/strand/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - backend/cpu: Pure Go with optional parallel execution
//   - backend/cuda, backend/metal, backend/webgpu: reserved for future
//     accelerator backends
//
// Example:
//
//	import (
//	    "github.com/strand-ml/strand/tensor"
//	    "github.com/strand-ml/strand/backend/cpu"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	z := x.Add(y)  // Uses backend.Add under the hood
type Backend interface {
	// Element-wise binary operations with NumPy-style broadcasting.
	Add(a, b *RawTensor) *RawTensor // Element-wise addition.
	Sub(a, b *RawTensor) *RawTensor // Element-wise subtraction.
	Mul(a, b *RawTensor) *RawTensor // Element-wise multiplication.
	Div(a, b *RawTensor) *RawTensor // Element-wise division.

	// Scalar operations (element-wise with scalar).
	AddScalar(x *RawTensor, scalar any) *RawTensor // x + s
	SubScalar(x *RawTensor, scalar any) *RawTensor // x - s
	MulScalar(x *RawTensor, scalar any) *RawTensor // x * s
	DivScalar(x *RawTensor, scalar any) *RawTensor // x / s

	// Math operations (element-wise).
	Exp(x *RawTensor) *RawTensor                  // exponential
	Log(x *RawTensor) *RawTensor                  // natural logarithm
	Sqrt(x *RawTensor) *RawTensor                 // square root
	Abs(x *RawTensor) *RawTensor                  // absolute value
	Square(x *RawTensor) *RawTensor               // x * x
	Neg(x *RawTensor) *RawTensor                  // -x
	Sigmoid(x *RawTensor) *RawTensor              // 1 / (1 + exp(-x))
	Clip(x *RawTensor, lo, hi float64) *RawTensor // clamp into [lo, hi]

	// Reduction operations.
	Sum(x *RawTensor) *RawTensor                            // total sum (scalar result)
	Mean(x *RawTensor) *RawTensor                           // mean over all elements (scalar result)
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor  // sum along dimension
	MeanDim(x *RawTensor, dim int, keepDim bool) *RawTensor // mean along dimension

	// Shape operations.
	Reshape(t *RawTensor, newShape Shape) *RawTensor
	Expand(x *RawTensor, shape Shape) *RawTensor // broadcast to shape

	// Type conversion.
	Cast(x *RawTensor, dtype DataType) *RawTensor

	// Metadata.
	Name() string
	Device() Device
}

// Compile-time check that the public interface matches the internal one.
var _ tensor.Backend = (Backend)(nil)
