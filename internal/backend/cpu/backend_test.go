package cpu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strand-ml/strand/internal/backend/cpu"
	"github.com/strand-ml/strand/internal/parallel"
	"github.com/strand-ml/strand/internal/tensor"
)

func newRaw(t *testing.T, data []float32, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Float32, tensor.CPU)
	require.NoError(t, err)
	copy(raw.AsFloat32(), data)
	return raw
}

func TestBackendMetadata(t *testing.T) {
	backend := cpu.New()
	assert.Equal(t, "CPU", backend.Name())
	assert.Equal(t, tensor.CPU, backend.Device())
}

func TestAddSameShape(t *testing.T) {
	backend := cpu.New()

	a := newRaw(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := newRaw(t, []float32{10, 20, 30, 40}, tensor.Shape{2, 2})

	got := backend.Add(a, b)
	assert.Equal(t, []float32{11, 22, 33, 44}, got.AsFloat32())
}

func TestSubBroadcastColumn(t *testing.T) {
	backend := cpu.New()

	a := newRaw(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	col := newRaw(t, []float32{1, 2}, tensor.Shape{2, 1})

	got := backend.Sub(a, col)
	require.Equal(t, tensor.Shape{2, 3}, got.Shape())
	assert.Equal(t, []float32{0, 1, 2, 2, 3, 4}, got.AsFloat32())
}

func TestMulScalarBroadcast(t *testing.T) {
	backend := cpu.New()

	// Scalar tensor against a matrix.
	a := newRaw(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	s := newRaw(t, []float32{3}, tensor.Shape{1})

	got := backend.Mul(a, s)
	require.Equal(t, tensor.Shape{2, 2}, got.Shape())
	assert.Equal(t, []float32{3, 6, 9, 12}, got.AsFloat32())
}

func TestBinaryOpShapeMismatchPanics(t *testing.T) {
	backend := cpu.New()

	a := newRaw(t, []float32{1, 2, 3}, tensor.Shape{3})
	b := newRaw(t, []float32{1, 2}, tensor.Shape{2})

	assert.Panics(t, func() { backend.Add(a, b) })
}

func TestBinaryOpDTypeMismatchPanics(t *testing.T) {
	backend := cpu.New()

	a := newRaw(t, []float32{1, 2}, tensor.Shape{2})
	b, err := tensor.NewRaw(tensor.Shape{2}, tensor.Float64, tensor.CPU)
	require.NoError(t, err)

	assert.Panics(t, func() { backend.Add(a, b) })
}

func TestBinaryOpInt64(t *testing.T) {
	backend := cpu.New()

	a, err := tensor.NewRaw(tensor.Shape{3}, tensor.Int64, tensor.CPU)
	require.NoError(t, err)
	copy(a.AsInt64(), []int64{1, 2, 3})
	b, err := tensor.NewRaw(tensor.Shape{3}, tensor.Int64, tensor.CPU)
	require.NoError(t, err)
	copy(b.AsInt64(), []int64{10, 20, 30})

	assert.Equal(t, []int64{10, 40, 90}, backend.Mul(a, b).AsInt64())
}

func TestParallelMatchesSequential(t *testing.T) {
	seq := cpu.NewWithConfig(parallel.Sequential())
	par := cpu.NewWithConfig(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1})

	n := 10_000
	data := make([]float32, n)
	for i := range data {
		data[i] = float32(i) * 0.25
	}
	a := newRaw(t, data, tensor.Shape{n})
	b := newRaw(t, data, tensor.Shape{n})

	wantAdd := seq.Add(a, b).AsFloat32()
	gotAdd := par.Add(a, b).AsFloat32()
	assert.Equal(t, wantAdd, gotAdd)

	wantSig := seq.Sigmoid(a).AsFloat32()
	gotSig := par.Sigmoid(a).AsFloat32()
	assert.Equal(t, wantSig, gotSig)
}
