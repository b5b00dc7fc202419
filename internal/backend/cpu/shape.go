package cpu

import (
	"fmt"

	"github.com/strand-ml/strand/internal/tensor"
)

// Reshape returns a tensor with the same data but a different shape.
// The new shape must describe the same number of elements.
func (cpu *CPUBackend) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	if err := newShape.Validate(); err != nil {
		panic(fmt.Sprintf("reshape: invalid shape: %v", err))
	}

	// Zero-copy view over the same buffer.
	view, err := t.WithShape(newShape)
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	return view
}

// Expand broadcasts the tensor to the given shape, materializing the result.
func (cpu *CPUBackend) Expand(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	if !tensor.BroadcastableTo(x.Shape(), shape) {
		panic(fmt.Sprintf("expand: cannot broadcast %v to %v", x.Shape(), shape))
	}

	result, err := tensor.NewRaw(shape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("expand: %v", err))
	}

	inStrides := broadcastStrides(x.Shape(), shape)
	outStrides := shape.ComputeStrides()

	switch x.DType() {
	case tensor.Float32:
		expandData(result.AsFloat32(), x.AsFloat32(), outStrides, inStrides)
	case tensor.Float64:
		expandData(result.AsFloat64(), x.AsFloat64(), outStrides, inStrides)
	case tensor.Int32:
		expandData(result.AsInt32(), x.AsInt32(), outStrides, inStrides)
	case tensor.Int64:
		expandData(result.AsInt64(), x.AsInt64(), outStrides, inStrides)
	case tensor.Uint8:
		expandData(result.AsUint8(), x.AsUint8(), outStrides, inStrides)
	case tensor.Bool:
		expandData(result.AsBool(), x.AsBool(), outStrides, inStrides)
	default:
		panic(fmt.Sprintf("expand: unsupported dtype %s", x.DType()))
	}

	return result
}

func expandData[T tensor.DType](dst, src []T, outStrides, inStrides []int) {
	for i := range dst {
		dst[i] = src[flatIndex(i, outStrides, inStrides)]
	}
}
