// Copyright 2025 Strand ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides element-wise loss functions for training and evaluation.
//
// # Overview
//
// This package contains:
//   - Loss functions: BCEWithLogits, BinaryCrossEntropy, MSELoss, MAELoss
//   - Reduction modes: ReductionNone, ReductionSum, ReductionMean
//   - Container forms applying a loss per key (BCEWithLogitsContainer, ...)
//
// # Basic Usage
//
//	import (
//	    "github.com/strand-ml/strand/nn"
//	    "github.com/strand-ml/strand/tensor"
//	    "github.com/strand-ml/strand/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    target, _ := tensor.FromSlice([]float32{0, 1, 0, 1}, tensor.Shape{4}, backend)
//	    logits, _ := tensor.FromSlice([]float32{1.2, 3.8, 5.3, 2.8}, tensor.Shape{4}, backend)
//
//	    loss, err := nn.BCEWithLogits(target, logits, nn.DefaultEpsilon, nil, nn.ReductionMean, nil)
//	}
//
// # Reductions
//
// Every loss takes a Reduction selecting how per-element losses are
// aggregated: ReductionNone leaves the loss tensor unchanged, ReductionSum
// sums all elements into a scalar, and ReductionMean averages them. An
// unknown reduction is rejected with a KindValue error before any
// computation runs.
//
// # Output Buffers
//
// Every loss accepts an optional out tensor. When non-nil, the result is
// broadcast into out's buffer and out itself is returned, letting callers
// reuse allocations across training steps.
//
// # Error Handling
//
// Loss functions never panic on bad inputs: backend panics (shape or dtype
// mismatches) are recovered and returned as fwerr.KindBackend errors, and
// argument validation failures are returned as fwerr.KindValue,
// fwerr.KindShape, or fwerr.KindDType errors. See package fwerr.
package nn
