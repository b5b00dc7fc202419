package cpu

import (
	"fmt"

	"github.com/strand-ml/strand/internal/parallel"
	"github.com/strand-ml/strand/internal/tensor"
)

// Scalar operations - element-wise operations with a scalar value.
// The scalar must match the tensor's element type.

// AddScalar adds a scalar value to each element of the tensor.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("addScalar", x, scalar,
		func(v, s float32) float32 { return v + s },
		func(v, s float64) float64 { return v + s },
		func(v, s int32) int32 { return v + s },
		func(v, s int64) int64 { return v + s })
}

// SubScalar subtracts a scalar value from each element of the tensor.
func (cpu *CPUBackend) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("subScalar", x, scalar,
		func(v, s float32) float32 { return v - s },
		func(v, s float64) float64 { return v - s },
		func(v, s int32) int32 { return v - s },
		func(v, s int64) int64 { return v - s })
}

// MulScalar multiplies each element of the tensor by a scalar value.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("mulScalar", x, scalar,
		func(v, s float32) float32 { return v * s },
		func(v, s float64) float64 { return v * s },
		func(v, s int32) int32 { return v * s },
		func(v, s int64) int64 { return v * s })
}

// DivScalar divides each element of the tensor by a scalar value.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("divScalar", x, scalar,
		func(v, s float32) float32 { return v / s },
		func(v, s float64) float64 { return v / s },
		func(v, s int32) int32 { return v / s },
		func(v, s int64) int64 { return v / s })
}

func (cpu *CPUBackend) scalarOp(
	name string,
	x *tensor.RawTensor,
	scalar any,
	f32 func(float32, float32) float32,
	f64 func(float64, float64) float64,
	i32 func(int32, int32) int32,
	i64 func(int64, int64) int64,
) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	switch x.DType() {
	case tensor.Float32:
		applyScalar(result.AsFloat32(), x.AsFloat32(), scalar.(float32), f32, cpu.parallel)
	case tensor.Float64:
		applyScalar(result.AsFloat64(), x.AsFloat64(), scalar.(float64), f64, cpu.parallel)
	case tensor.Int32:
		applyScalar(result.AsInt32(), x.AsInt32(), scalar.(int32), i32, cpu.parallel)
	case tensor.Int64:
		applyScalar(result.AsInt64(), x.AsInt64(), scalar.(int64), i64, cpu.parallel)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %v", name, x.DType()))
	}

	return result
}

func applyScalar[T tensor.DType](dst, src []T, scalar T, op func(T, T) T, cfg parallel.Config) {
	parallel.For(len(src), func(i int) {
		dst[i] = op(src[i], scalar)
	}, cfg)
}
