package nn

import "github.com/strand-ml/strand/internal/fwerr"

// Reduction selects how a per-element loss tensor is collapsed.
type Reduction string

// Supported reduction modes. This set is closed: any other value fails
// validation before any tensor computation happens.
const (
	// ReductionNone returns the loss tensor unchanged.
	ReductionNone Reduction = "none"
	// ReductionSum sums the loss over all elements.
	ReductionSum Reduction = "sum"
	// ReductionMean averages the loss over all elements.
	ReductionMean Reduction = "mean"
)

// Validate checks the reduction against the closed set {none, sum, mean}.
// Returns a value-kind error for anything else, including the empty string.
func (r Reduction) Validate() error {
	switch r {
	case ReductionNone, ReductionSum, ReductionMean:
		return nil
	default:
		return fwerr.Valuef("invalid reduction %q: must be one of [none sum mean]", string(r))
	}
}
