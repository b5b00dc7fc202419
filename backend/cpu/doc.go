// Copyright 2025 Strand ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Float32 and Float64 compute, with int32/int64 arithmetic
//   - NumPy-compatible broadcasting
//   - Chunked parallel execution for large tensors
//
// # Basic Usage
//
//	import (
//	    "github.com/strand-ml/strand/backend/cpu"
//	    "github.com/strand-ml/strand/tensor"
//	    "github.com/strand-ml/strand/nn"
//	)
//
//	func main() {
//	    // Create CPU backend
//	    backend := cpu.New()
//
//	    // Use with tensors
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	    z := x.Add(y)
//
//	    // Use with loss functions
//	    loss, err := nn.MSELoss(x, y, nn.ReductionMean, nil)
//	}
//
// # Error Model
//
// The backend panics on programmer errors: shape mismatches, dtype
// mismatches, or unsupported dtypes for an operation. The nn loss functions
// recover those panics and return them as classified errors.
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each tensor operation
// is isolated and does not share mutable state.
package cpu
