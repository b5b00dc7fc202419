package cpu

import (
	"fmt"

	"github.com/x448/float16"

	"github.com/strand-ml/strand/internal/tensor"
)

// Cast converts the tensor to a different data type.
// Float16 is converted through float32 using IEEE 754 rounding.
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	// No-op if same dtype
	if x.DType() == dtype {
		return x
	}

	result, err := tensor.NewRaw(x.Shape(), dtype, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("cast: %v", err))
	}

	// Widen to float64, then narrow to the target type.
	wide := toFloat64(x)
	fromFloat64(result, wide)

	return result
}

func toFloat64(x *tensor.RawTensor) []float64 {
	out := make([]float64, x.NumElements())
	switch x.DType() {
	case tensor.Float32:
		for i, v := range x.AsFloat32() {
			out[i] = float64(v)
		}
	case tensor.Float64:
		copy(out, x.AsFloat64())
	case tensor.Float16:
		for i, v := range x.AsFloat16() {
			out[i] = float64(v.Float32())
		}
	case tensor.Int32:
		for i, v := range x.AsInt32() {
			out[i] = float64(v)
		}
	case tensor.Int64:
		for i, v := range x.AsInt64() {
			out[i] = float64(v)
		}
	case tensor.Uint8:
		for i, v := range x.AsUint8() {
			out[i] = float64(v)
		}
	case tensor.Bool:
		for i, v := range x.AsBool() {
			if v {
				out[i] = 1
			}
		}
	default:
		panic(fmt.Sprintf("cast: unsupported source dtype %s", x.DType()))
	}
	return out
}

func fromFloat64(result *tensor.RawTensor, wide []float64) {
	switch result.DType() {
	case tensor.Float32:
		dst := result.AsFloat32()
		for i, v := range wide {
			dst[i] = float32(v)
		}
	case tensor.Float64:
		copy(result.AsFloat64(), wide)
	case tensor.Float16:
		dst := result.AsFloat16()
		for i, v := range wide {
			dst[i] = float16.Fromfloat32(float32(v))
		}
	case tensor.Int32:
		dst := result.AsInt32()
		for i, v := range wide {
			dst[i] = int32(v)
		}
	case tensor.Int64:
		dst := result.AsInt64()
		for i, v := range wide {
			dst[i] = int64(v)
		}
	case tensor.Uint8:
		dst := result.AsUint8()
		for i, v := range wide {
			dst[i] = uint8(v)
		}
	case tensor.Bool:
		dst := result.AsBool()
		for i, v := range wide {
			dst[i] = v != 0
		}
	default:
		panic(fmt.Sprintf("cast: unsupported target dtype %s", result.DType()))
	}
}
