package nn

import (
	"github.com/strand-ml/strand/internal/fwerr"
	"github.com/strand-ml/strand/internal/tensor"
)

// DefaultEpsilon is the default smoothing epsilon for the binary
// cross-entropy losses. Probabilities are clipped into
// [DefaultEpsilon, 1-DefaultEpsilon] before taking logarithms.
const DefaultEpsilon = 1e-7

// BCEWithLogits computes the binary cross-entropy with logits loss.
//
// The logits are passed through a sigmoid to obtain probabilities. With a
// positive-class weight tensor, probabilities are clipped into
// [epsilon, 1-epsilon] and the weighted elementwise loss
//
//	target·(−log p)·posWeight + (1−target)·(−log(1−p))
//
// is computed before reduction. Without posWeight the call delegates to the
// unweighted BinaryCrossEntropy primitive with the same epsilon and reduction.
//
// Parameters:
//   - target: true binary labels (broadcast-compatible with logits)
//   - logits: raw pre-sigmoid prediction scores
//   - epsilon: smoothing amount in [0, 1); use DefaultEpsilon when unsure
//   - posWeight: optional per-class positive weight, broadcast over target;
//     nil disables weighting
//   - reduction: one of ReductionNone, ReductionSum, ReductionMean;
//     the conventional default for this loss is ReductionNone
//   - out: optional pre-allocated output tensor; the computed result must
//     broadcast to its shape and is written in place
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
) (_ *tensor.Tensor[T, B], err error) {
	if err := reduction.Validate(); err != nil {
		return nil, err
	}
	defer fwerr.Normalize(&err)

	p := logits.Sigmoid()
	if posWeight == nil {
		return BinaryCrossEntropy(target, p, epsilon, reduction, out)
	}

	p = p.Clip(epsilon, 1-epsilon)
	posTerm := target.Mul(p.Log().Neg()).Mul(posWeight)
	negTerm := oneMinus(target).Mul(oneMinus(p).Log().Neg())
	loss := posTerm.Add(negTerm)

	return reduceLoss(reduction, loss, nil, out)
}

// BinaryCrossEntropy computes the unweighted binary cross-entropy loss over
// probabilities (not logits):
//
//	−(target·log p + (1−target)·log(1−p))
//
// Probabilities are clipped into [epsilon, 1-epsilon] first. See
// BCEWithLogits for the parameter contract.
func BinaryCrossEntropy[T tensor.Float, B tensor.Backend](
	target, probs *tensor.Tensor[T, B],
	epsilon float64,
	reduction Reduction,
	out *tensor.Tensor[T, B],
) (_ *tensor.Tensor[T, B], err error) {
	if err := reduction.Validate(); err != nil {
		return nil, err
	}
	defer fwerr.Normalize(&err)

	p := probs.Clip(epsilon, 1-epsilon)
	loss := target.Mul(p.Log()).Add(oneMinus(target).Mul(oneMinus(p).Log())).Neg()

	return reduceLoss(reduction, loss, nil, out)
}

// MSELoss computes the mean squared error loss.
//
// The elementwise squared difference is first averaged over all elements with
// the rank preserved (every dimension reduced to 1); the requested reduction
// is then applied on top of that mean. ReductionNone therefore returns the
// keepdims mean, not the per-element losses.
//
// The conventional default reduction for this loss is ReductionMean.
//
// Example:
//
//	target, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{4}, backend)
//	pred, _ := tensor.FromSlice([]float32{0.9, 2.1, 2.8, 4.2}, tensor.Shape{4}, backend)
//	loss, err := nn.MSELoss(target, pred, nn.ReductionMean, nil)
//	// loss.Item() == 0.025
func MSELoss[T tensor.Float, B tensor.Backend](
	target, pred *tensor.Tensor[T, B],
	reduction Reduction,
	out *tensor.Tensor[T, B],
) (_ *tensor.Tensor[T, B], err error) {
	if err := reduction.Validate(); err != nil {
		return nil, err
	}
	defer fwerr.Normalize(&err)

	sq := target.Sub(pred).Square()
	keep := sq.Mean().Reshape(sq.Shape().OnesLike()...)

	return reduceLoss(reduction, keep, nil, out)
}

// MAELoss computes the mean absolute error loss.
//
// Identical in structure to MSELoss with the squared difference replaced by
// the absolute difference.
//
// Example:
//
//	loss, err := nn.MAELoss(target, pred, nn.ReductionMean, nil)
//	// loss.Item() == 0.15 for the MSELoss example inputs
func MAELoss[T tensor.Float, B tensor.Backend](
	target, pred *tensor.Tensor[T, B],
	reduction Reduction,
	out *tensor.Tensor[T, B],
) (_ *tensor.Tensor[T, B], err error) {
	if err := reduction.Validate(); err != nil {
		return nil, err
	}
	defer fwerr.Normalize(&err)

	abs := target.Sub(pred).Abs()
	keep := abs.Mean().Reshape(abs.Shape().OnesLike()...)

	return reduceLoss(reduction, keep, nil, out)
}

// reduceLoss applies the reduction policy to a computed loss tensor and
// honors the optional output buffer.
//
// Contract: ReductionNone returns the tensor unchanged, ReductionSum its sum
// and ReductionMean its mean, over axis when given and over all elements
// otherwise. When out is non-nil the result is broadcast into it and out is
// returned, so the return value aliases the buffer.
func reduceLoss[T tensor.Float, B tensor.Backend](
	reduction Reduction,
	loss *tensor.Tensor[T, B],
	axis *int,
	out *tensor.Tensor[T, B],
) (*tensor.Tensor[T, B], error) {
	var result *tensor.Tensor[T, B]
	switch reduction {
	case ReductionSum:
		if axis == nil {
			result = loss.Sum()
		} else {
			result = loss.SumDim(*axis, false)
		}
	case ReductionMean:
		if axis == nil {
			result = loss.Mean()
		} else {
			result = loss.MeanDim(*axis, false)
		}
	default: // ReductionNone; already validated by the caller
		result = loss
	}

	if out == nil {
		return result, nil
	}
	return writeOut(result, out)
}

// writeOut broadcasts result into the caller-supplied buffer and returns the
// buffer, establishing the aliasing contract.
func writeOut[T tensor.Float, B tensor.Backend](
	result, out *tensor.Tensor[T, B],
) (*tensor.Tensor[T, B], error) {
	if result.DType() != out.DType() {
		return nil, fwerr.DTypef("output buffer dtype %s does not match result dtype %s",
			out.DType(), result.DType())
	}
	if !tensor.BroadcastableTo(result.Shape(), out.Shape()) {
		return nil, fwerr.Shapef("result shape %v cannot broadcast to output buffer shape %v",
			result.Shape(), out.Shape())
	}

	expanded := result.Expand(out.Shape())
	copy(out.Data(), expanded.Data())
	return out, nil
}

// oneMinus computes 1 - x elementwise.
func oneMinus[T tensor.Float, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return x.Neg().AddScalar(T(1))
}
