package nn

import (
	"github.com/strand-ml/strand/internal/container"
	"github.com/strand-ml/strand/internal/tensor"
)

// Container-level forms of the loss functions. Each loss is applied
// independently to the sub-tensors under matching keys and the per-key
// results are regrouped under the same keys. Output buffers are not
// supported at the container level.

// BCEWithLogitsContainer applies BCEWithLogits per key. A non-nil posWeight
// tensor is broadcast across every key, matching the behavior of mixing a
// plain tensor with container-shaped inputs.
func BCEWithLogitsContainer[T tensor.Float, B tensor.Backend](
	target, logits *container.Container[T, B],
	epsilon float64,
	posWeight *tensor.Tensor[T, B],
	reduction Reduction,
) (*container.Container[T, B], error) {
	if err := reduction.Validate(); err != nil {
		return nil, err
	}
	return container.Zip(target, logits, func(_ string, t, l *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
		return BCEWithLogits(t, l, epsilon, posWeight, reduction, nil)
	})
}

// MSELossContainer applies MSELoss per key.
func MSELossContainer[T tensor.Float, B tensor.Backend](
	target, pred *container.Container[T, B],
	reduction Reduction,
) (*container.Container[T, B], error) {
	if err := reduction.Validate(); err != nil {
		return nil, err
	}
	return container.Zip(target, pred, func(_ string, t, p *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
		return MSELoss(t, p, reduction, nil)
	})
}

// MAELossContainer applies MAELoss per key.
func MAELossContainer[T tensor.Float, B tensor.Backend](
	target, pred *container.Container[T, B],
	reduction Reduction,
) (*container.Container[T, B], error) {
	if err := reduction.Validate(); err != nil {
		return nil, err
	}
	return container.Zip(target, pred, func(_ string, t, p *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
		return MAELoss(t, p, reduction, nil)
	})
}
