// Copyright 2025 Strand ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/strand-ml/strand/internal/container"
	"github.com/strand-ml/strand/internal/nn"
	"github.com/strand-ml/strand/internal/tensor"
)

// Reduction selects how per-element losses are aggregated.
type Reduction = nn.Reduction

// Reduction modes.
const (
	ReductionNone Reduction = nn.ReductionNone // leave the loss tensor unchanged
	ReductionSum  Reduction = nn.ReductionSum  // sum all elements into a scalar
	ReductionMean Reduction = nn.ReductionMean // average all elements into a scalar
)

// DefaultEpsilon is the default clipping bound for binary cross-entropy.
const DefaultEpsilon = nn.DefaultEpsilon

// BCEWithLogits computes binary cross-entropy between target labels and raw
// logits. Logits are mapped through a numerically stable sigmoid, the
// resulting probabilities are clipped into [epsilon, 1-epsilon], and the
// element-wise cross-entropy is aggregated per reduction.
//
// A non-nil posWeight rescales the positive-class term after broadcasting
// against the loss shape. A non-nil out receives the result and is returned.
//
// Example:
//
//	target, _ := tensor.FromSlice([]float32{0, 1, 0, 1}, tensor.Shape{4}, backend)
//	logits, _ := tensor.FromSlice([]float32{1.2, 3.8, 5.3, 2.8}, tensor.Shape{4}, backend)
//	loss, err := nn.BCEWithLogits(target, logits, nn.DefaultEpsilon, nil, nn.ReductionNone, nil)
//	// loss ≈ [1.463, 0.022, 5.305, 0.059]
func BCEWithLogits[T tensor.Float, B tensor.Backend](
	target, logits *tensor.Tensor[T, B],
	epsilon float64,
	posWeight *tensor.Tensor[T, B],
	reduction Reduction,
	out *tensor.Tensor[T, B],
) (*tensor.Tensor[T, B], error) {
	return nn.BCEWithLogits(target, logits, epsilon, posWeight, reduction, out)
}

// BinaryCrossEntropy computes binary cross-entropy between target labels and
// predicted probabilities (already in [0, 1]). Probabilities are clipped into
// [epsilon, 1-epsilon] before the logarithms are taken.
func BinaryCrossEntropy[T tensor.Float, B tensor.Backend](
	target, probs *tensor.Tensor[T, B],
	epsilon float64,
	reduction Reduction,
	out *tensor.Tensor[T, B],
) (*tensor.Tensor[T, B], error) {
	return nn.BinaryCrossEntropy(target, probs, epsilon, reduction, out)
}

// MSELoss computes the mean squared error between target and pred.
//
// The squared differences are first averaged over all elements with rank
// preserved (every dimension reduced to 1); the reduction is then applied to
// that result. ReductionNone therefore yields the rank-preserving mean, not
// the per-element squared errors.
//
// Example:
//
//	target, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{4}, backend)
//	pred, _ := tensor.FromSlice([]float32{0.9, 2.1, 2.8, 4.2}, tensor.Shape{4}, backend)
//	loss, err := nn.MSELoss(target, pred, nn.ReductionMean, nil)
//	// loss ≈ 0.025
func MSELoss[T tensor.Float, B tensor.Backend](
	target, pred *tensor.Tensor[T, B],
	reduction Reduction,
	out *tensor.Tensor[T, B],
) (*tensor.Tensor[T, B], error) {
	return nn.MSELoss(target, pred, reduction, out)
}

// MAELoss computes the mean absolute error between target and pred. It
// follows the same two-stage aggregation as MSELoss.
func MAELoss[T tensor.Float, B tensor.Backend](
	target, pred *tensor.Tensor[T, B],
	reduction Reduction,
	out *tensor.Tensor[T, B],
) (*tensor.Tensor[T, B], error) {
	return nn.MAELoss(target, pred, reduction, out)
}

// Container forms

// BCEWithLogitsContainer applies BCEWithLogits independently to the
// sub-tensors under matching keys. A non-nil posWeight tensor is broadcast
// across every key.
func BCEWithLogitsContainer[T tensor.Float, B tensor.Backend](
	target, logits *container.Container[T, B],
	epsilon float64,
	posWeight *tensor.Tensor[T, B],
	reduction Reduction,
) (*container.Container[T, B], error) {
	return nn.BCEWithLogitsContainer(target, logits, epsilon, posWeight, reduction)
}

// MSELossContainer applies MSELoss per key.
func MSELossContainer[T tensor.Float, B tensor.Backend](
	target, pred *container.Container[T, B],
	reduction Reduction,
) (*container.Container[T, B], error) {
	return nn.MSELossContainer(target, pred, reduction)
}

// MAELossContainer applies MAELoss per key.
func MAELossContainer[T tensor.Float, B tensor.Backend](
	target, pred *container.Container[T, B],
	reduction Reduction,
) (*container.Container[T, B], error) {
	return nn.MAELossContainer(target, pred, reduction)
}
