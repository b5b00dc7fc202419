package tensor_test

import (
	"math"
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/strand-ml/strand/internal/backend/cpu"
	"github.com/strand-ml/strand/internal/tensor"
)

func TestArithmetic(t *testing.T) {
	backend := cpu.New()

	a := must.M1(tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{4}, backend))
	b := must.M1(tensor.FromSlice([]float32{4, 3, 2, 1}, tensor.Shape{4}, backend))

	assert.Equal(t, []float32{5, 5, 5, 5}, a.Add(b).Data())
	assert.Equal(t, []float32{-3, -1, 1, 3}, a.Sub(b).Data())
	assert.Equal(t, []float32{4, 6, 6, 4}, a.Mul(b).Data())
	assert.Equal(t, []float32{0.25, 2.0 / 3.0, 1.5, 4}, a.Div(b).Data())
}

func TestArithmeticBroadcast(t *testing.T) {
	backend := cpu.New()

	// [2, 3] * [3] broadcasts the row vector over both rows.
	a := must.M1(tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend))
	row := must.M1(tensor.FromSlice([]float32{10, 100, 1000}, tensor.Shape{3}, backend))

	got := a.Mul(row)
	require.Equal(t, tensor.Shape{2, 3}, got.Shape())
	assert.Equal(t, []float32{10, 200, 3000, 40, 500, 6000}, got.Data())
}

func TestScalarOps(t *testing.T) {
	backend := cpu.New()

	a := must.M1(tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{3}, backend))
	assert.Equal(t, []float64{3, 4, 5}, a.AddScalar(2).Data())
	assert.Equal(t, []float64{0, 1, 2}, a.SubScalar(1).Data())
	assert.Equal(t, []float64{2, 4, 6}, a.MulScalar(2).Data())
	assert.Equal(t, []float64{0.5, 1, 1.5}, a.DivScalar(2).Data())
}

func TestUnaryMath(t *testing.T) {
	backend := cpu.New()

	x := must.M1(tensor.FromSlice([]float64{-2, -0.5, 0.5, 2}, tensor.Shape{4}, backend))

	abs := x.Abs().Data()
	assert.Equal(t, []float64{2, 0.5, 0.5, 2}, abs)

	sq := x.Square().Data()
	assert.Equal(t, []float64{4, 0.25, 0.25, 4}, sq)

	neg := x.Neg().Data()
	assert.Equal(t, []float64{2, 0.5, -0.5, -2}, neg)

	for i, v := range x.Exp().Data() {
		assert.InDelta(t, math.Exp(x.Data()[i]), v, 1e-12)
	}
}

func TestSigmoid(t *testing.T) {
	backend := cpu.New()

	x := must.M1(tensor.FromSlice([]float64{-1000, -1, 0, 1, 1000}, tensor.Shape{5}, backend))
	got := x.Sigmoid().Data()

	assert.InDelta(t, 0, got[0], 1e-12)
	assert.InDelta(t, 0.2689414213699951, got[1], 1e-12)
	assert.InDelta(t, 0.5, got[2], 1e-12)
	assert.InDelta(t, 0.7310585786300049, got[3], 1e-12)
	assert.InDelta(t, 1, got[4], 1e-12)
}

func TestClip(t *testing.T) {
	backend := cpu.New()

	x := must.M1(tensor.FromSlice([]float32{-1, 0.3, 0.5, 2}, tensor.Shape{4}, backend))
	got := x.Clip(0, 1).Data()
	assert.Equal(t, []float32{0, 0.3, 0.5, 1}, got)
}

func TestLogPanicsOnNonPositive(t *testing.T) {
	backend := cpu.New()

	x := must.M1(tensor.FromSlice([]float32{1, 0}, tensor.Shape{2}, backend))
	assert.Panics(t, func() { x.Log() })
}

func TestSumMean(t *testing.T) {
	backend := cpu.New()

	x := must.M1(tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, backend))

	sum := x.Sum()
	require.Equal(t, tensor.Shape{}, sum.Shape())
	assert.Equal(t, 10.0, sum.Item())

	mean := x.Mean()
	assert.Equal(t, 2.5, mean.Item())
}

func TestSumDimMeanDim(t *testing.T) {
	backend := cpu.New()

	x := must.M1(tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend))

	rows := x.SumDim(1, false)
	require.Equal(t, tensor.Shape{2}, rows.Shape())
	assert.Equal(t, []float32{6, 15}, rows.Data())

	kept := x.SumDim(-1, true)
	require.Equal(t, tensor.Shape{2, 1}, kept.Shape())
	assert.Equal(t, []float32{6, 15}, kept.Data())

	cols := x.MeanDim(0, false)
	require.Equal(t, tensor.Shape{3}, cols.Shape())
	assert.Equal(t, []float32{2.5, 3.5, 4.5}, cols.Data())
}

func TestReshape(t *testing.T) {
	backend := cpu.New()

	x := tensor.Arange[float32](0, 6, backend)
	r := x.Reshape(2, 3)
	require.Equal(t, tensor.Shape{2, 3}, r.Shape())
	assert.Equal(t, x.Data(), r.Data())

	assert.Panics(t, func() { x.Reshape(4, 2) })
}

func TestExpand(t *testing.T) {
	backend := cpu.New()

	x := must.M1(tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{1, 3}, backend))
	e := x.Expand(tensor.Shape{2, 3})
	require.Equal(t, tensor.Shape{2, 3}, e.Shape())
	assert.Equal(t, []float32{1, 2, 3, 1, 2, 3}, e.Data())

	assert.Panics(t, func() { x.Expand(tensor.Shape{2, 4}) })
}

func TestCast(t *testing.T) {
	backend := cpu.New()

	x := must.M1(tensor.FromSlice([]float32{1.5, -2, 3}, tensor.Shape{3}, backend))

	d := tensor.Cast[float64](x)
	require.Equal(t, tensor.Float64, d.DType())
	assert.Equal(t, []float64{1.5, -2, 3}, d.Data())

	i := tensor.Cast[int32](x)
	assert.Equal(t, []int32{1, -2, 3}, i.Data())
}

func TestCastFloat16RoundTrip(t *testing.T) {
	backend := cpu.New()

	// Values exactly representable in half precision survive the round trip.
	x := must.M1(tensor.FromSlice([]float32{0.5, -1.25, 2048}, tensor.Shape{3}, backend))

	h := tensor.Cast[float16.Float16](x)
	require.Equal(t, tensor.Float16, h.DType())

	back := tensor.Cast[float32](h)
	assert.Equal(t, x.Data(), back.Data())
}
