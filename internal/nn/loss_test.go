package nn_test

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strand-ml/strand/internal/backend/cpu"
	"github.com/strand-ml/strand/internal/fwerr"
	"github.com/strand-ml/strand/internal/nn"
	"github.com/strand-ml/strand/internal/tensor"
)

func assertAllInDelta(t *testing.T, want []float32, got []float32, delta float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "mismatch at index %d", i)
	}
}

func TestBCEWithLogits(t *testing.T) {
	backend := cpu.New()

	target := must.M1(tensor.FromSlice([]float32{0, 1, 0, 1}, tensor.Shape{4}, backend))
	logits := must.M1(tensor.FromSlice([]float32{1.2, 3.8, 5.3, 2.8}, tensor.Shape{4}, backend))

	loss, err := nn.BCEWithLogits(target, logits, nn.DefaultEpsilon, nil, nn.ReductionNone, nil)
	require.NoError(t, err)
	require.Equal(t, tensor.Shape{4}, loss.Shape())
	assertAllInDelta(t, []float32{1.463, 0.022, 5.305, 0.059}, loss.Data(), 1e-3)
}

func TestBCEWithLogitsReductions(t *testing.T) {
	backend := cpu.New()

	target := must.M1(tensor.FromSlice([]float32{0, 1, 0, 1}, tensor.Shape{4}, backend))
	logits := must.M1(tensor.FromSlice([]float32{1.2, 3.8, 5.3, 2.8}, tensor.Shape{4}, backend))

	none := must.M1(nn.BCEWithLogits(target, logits, nn.DefaultEpsilon, nil, nn.ReductionNone, nil))
	sum := must.M1(nn.BCEWithLogits(target, logits, nn.DefaultEpsilon, nil, nn.ReductionSum, nil))
	mean := must.M1(nn.BCEWithLogits(target, logits, nn.DefaultEpsilon, nil, nn.ReductionMean, nil))

	var total float32
	for _, v := range none.Data() {
		total += v
	}

	require.Equal(t, tensor.Shape{}, sum.Shape())
	assert.InDelta(t, total, sum.Item(), 1e-5)
	assert.InDelta(t, total/4, mean.Item(), 1e-5)
}

func TestBCEWithLogitsEpsilon(t *testing.T) {
	backend := cpu.New()

	// With epsilon 1e-3 the most confident wrong prediction is clipped,
	// capping its loss at -log(1e-3).
	target := must.M1(tensor.FromSlice([]float32{0, 1, 0, 0}, tensor.Shape{1, 4}, backend))
	logits := must.M1(tensor.FromSlice([]float32{6.6, 4.2, 1.7, 7.3}, tensor.Shape{1, 4}, backend))

	loss, err := nn.BCEWithLogits(target, logits, 1e-3, nil, nn.ReductionNone, nil)
	require.NoError(t, err)
	require.Equal(t, tensor.Shape{1, 4}, loss.Shape())
	assertAllInDelta(t, []float32{6.601, 0.015, 1.868, 6.908}, loss.Data(), 1e-3)
}

func TestBCEWithLogitsPosWeight(t *testing.T) {
	backend := cpu.New()

	target := must.M1(tensor.FromSlice([]float32{0, 1, 1, 0}, tensor.Shape{1, 4}, backend))
	logits := must.M1(tensor.FromSlice([]float32{2.6, 6.2, 3.7, 5.3}, tensor.Shape{1, 4}, backend))
	posWeight := must.M1(tensor.FromSlice([]float32{1.2}, tensor.Shape{1}, backend))

	loss, err := nn.BCEWithLogits(target, logits, nn.DefaultEpsilon, posWeight, nn.ReductionNone, nil)
	require.NoError(t, err)
	assertAllInDelta(t, []float32{2.672, 0.002, 0.029, 5.305}, loss.Data(), 1e-3)
}

func TestBCEWithLogitsInvalidReduction(t *testing.T) {
	backend := cpu.New()

	target := must.M1(tensor.FromSlice([]float32{0, 1}, tensor.Shape{2}, backend))
	logits := must.M1(tensor.FromSlice([]float32{1, 2}, tensor.Shape{2}, backend))

	_, err := nn.BCEWithLogits(target, logits, nn.DefaultEpsilon, nil, "median", nil)
	require.Error(t, err)
	assert.True(t, fwerr.IsKind(err, fwerr.KindValue))
}

func TestBinaryCrossEntropyOverProbabilities(t *testing.T) {
	backend := cpu.New()

	target := must.M1(tensor.FromSlice([]float64{1, 0}, tensor.Shape{2}, backend))
	probs := must.M1(tensor.FromSlice([]float64{0.9, 0.1}, tensor.Shape{2}, backend))

	loss, err := nn.BinaryCrossEntropy(target, probs, nn.DefaultEpsilon, nn.ReductionNone, nil)
	require.NoError(t, err)
	// -log(0.9) for both elements.
	assert.InDelta(t, 0.105360516, loss.Data()[0], 1e-8)
	assert.InDelta(t, 0.105360516, loss.Data()[1], 1e-8)
}

func TestMSELoss(t *testing.T) {
	backend := cpu.New()

	target := must.M1(tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{4}, backend))
	pred := must.M1(tensor.FromSlice([]float32{0.9, 2.1, 2.8, 4.2}, tensor.Shape{4}, backend))

	mean := must.M1(nn.MSELoss(target, pred, nn.ReductionMean, nil))
	assert.InDelta(t, 0.025, mean.Item(), 1e-6)

	// ReductionNone returns the rank-preserving all-elements mean, not the
	// per-element losses.
	none := must.M1(nn.MSELoss(target, pred, nn.ReductionNone, nil))
	require.Equal(t, tensor.Shape{1}, none.Shape())
	assert.InDelta(t, 0.025, none.Data()[0], 1e-6)

	sum := must.M1(nn.MSELoss(target, pred, nn.ReductionSum, nil))
	require.Equal(t, tensor.Shape{}, sum.Shape())
	assert.InDelta(t, 0.025, sum.Item(), 1e-6)
}

func TestMSELossZeroForIdenticalInputs(t *testing.T) {
	backend := cpu.New()

	x := must.M1(tensor.FromSlice([]float32{1, -2, 3.5, 0}, tensor.Shape{2, 2}, backend))

	for _, reduction := range []nn.Reduction{nn.ReductionNone, nn.ReductionSum, nn.ReductionMean} {
		loss, err := nn.MSELoss(x, x, reduction, nil)
		require.NoError(t, err, "reduction %s", reduction)
		for _, v := range loss.Data() {
			assert.Zero(t, v, "reduction %s", reduction)
		}
	}
}

func TestMSELossKeepdimsShape(t *testing.T) {
	backend := cpu.New()

	target := must.M1(tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend))
	pred := must.M1(tensor.FromSlice([]float32{0, 2, 3, 4}, tensor.Shape{2, 2}, backend))

	// Rank is preserved with every dimension reduced to 1.
	none := must.M1(nn.MSELoss(target, pred, nn.ReductionNone, nil))
	require.Equal(t, tensor.Shape{1, 1}, none.Shape())
	assert.InDelta(t, 0.25, none.Data()[0], 1e-6)
}

func TestMAELoss(t *testing.T) {
	backend := cpu.New()

	target := must.M1(tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{4}, backend))
	pred := must.M1(tensor.FromSlice([]float32{0.9, 2.1, 2.8, 4.2}, tensor.Shape{4}, backend))

	mean := must.M1(nn.MAELoss(target, pred, nn.ReductionMean, nil))
	assert.InDelta(t, 0.15, mean.Item(), 1e-6)

	none := must.M1(nn.MAELoss(target, pred, nn.ReductionNone, nil))
	require.Equal(t, tensor.Shape{1}, none.Shape())
	assert.InDelta(t, 0.15, none.Data()[0], 1e-6)

	sum := must.M1(nn.MAELoss(target, pred, nn.ReductionSum, nil))
	assert.InDelta(t, 0.15, sum.Item(), 1e-6)
}

func TestMAELossInvalidReduction(t *testing.T) {
	backend := cpu.New()

	x := must.M1(tensor.FromSlice([]float32{1}, tensor.Shape{1}, backend))

	_, err := nn.MAELoss(x, x, "max", nil)
	require.Error(t, err)
	assert.True(t, fwerr.IsKind(err, fwerr.KindValue))
}

func TestLossOutBufferAliasing(t *testing.T) {
	backend := cpu.New()

	target := must.M1(tensor.FromSlice([]float32{0, 1, 0, 1}, tensor.Shape{4}, backend))
	logits := must.M1(tensor.FromSlice([]float32{1.2, 3.8, 5.3, 2.8}, tensor.Shape{4}, backend))
	out := tensor.Zeros[float32](tensor.Shape{4}, backend)

	loss, err := nn.BCEWithLogits(target, logits, nn.DefaultEpsilon, nil, nn.ReductionNone, out)
	require.NoError(t, err)

	// The returned tensor aliases the buffer and both hold the result.
	assert.Same(t, out, loss)
	assertAllInDelta(t, []float32{1.463, 0.022, 5.305, 0.059}, out.Data(), 1e-3)
}

func TestLossOutBufferBroadcast(t *testing.T) {
	backend := cpu.New()

	target := must.M1(tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{4}, backend))
	pred := must.M1(tensor.FromSlice([]float32{0.9, 2.1, 2.8, 4.2}, tensor.Shape{4}, backend))
	out := tensor.Zeros[float32](tensor.Shape{2}, backend)

	// The [1]-shaped keepdims mean broadcasts across the buffer.
	loss, err := nn.MSELoss(target, pred, nn.ReductionNone, out)
	require.NoError(t, err)
	require.Same(t, out, loss)
	assert.InDelta(t, 0.025, out.Data()[0], 1e-6)
	assert.InDelta(t, 0.025, out.Data()[1], 1e-6)
}

func TestLossOutBufferIncompatibleShape(t *testing.T) {
	backend := cpu.New()

	target := must.M1(tensor.FromSlice([]float32{0, 1, 0}, tensor.Shape{3}, backend))
	logits := must.M1(tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend))
	out := tensor.Zeros[float32](tensor.Shape{2}, backend)

	_, err := nn.BCEWithLogits(target, logits, nn.DefaultEpsilon, nil, nn.ReductionNone, out)
	require.Error(t, err)
	assert.True(t, fwerr.IsKind(err, fwerr.KindShape))
}

func TestLossShapeMismatchIsBackendError(t *testing.T) {
	backend := cpu.New()

	target := must.M1(tensor.FromSlice([]float32{1, 2}, tensor.Shape{2}, backend))
	pred := must.M1(tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend))

	_, err := nn.MSELoss(target, pred, nn.ReductionMean, nil)
	require.Error(t, err)
	assert.True(t, fwerr.IsKind(err, fwerr.KindBackend))
}

func TestLossDeterministic(t *testing.T) {
	backend := cpu.New()

	target := must.M1(tensor.FromSlice([]float32{0, 1, 1, 0}, tensor.Shape{4}, backend))
	logits := must.M1(tensor.FromSlice([]float32{-0.5, 0.25, 1.5, -2}, tensor.Shape{4}, backend))

	first := must.M1(nn.BCEWithLogits(target, logits, nn.DefaultEpsilon, nil, nn.ReductionMean, nil))
	second := must.M1(nn.BCEWithLogits(target, logits, nn.DefaultEpsilon, nil, nn.ReductionMean, nil))
	assert.Equal(t, first.Item(), second.Item())
}

func TestReductionValidate(t *testing.T) {
	assert.NoError(t, nn.ReductionNone.Validate())
	assert.NoError(t, nn.ReductionSum.Validate())
	assert.NoError(t, nn.ReductionMean.Validate())

	for _, invalid := range []nn.Reduction{"", "median", "max", "NONE"} {
		err := invalid.Validate()
		require.Error(t, err, "reduction %q", invalid)
		assert.True(t, fwerr.IsKind(err, fwerr.KindValue))
	}
}
