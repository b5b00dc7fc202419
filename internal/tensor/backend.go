package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations; the loss
// layer and container dispatch consume these primitives without knowing
// which device is bound.
//
// Implementations:
//   - CPU: pure Go backend (internal/backend/cpu)
//   - CUDA, Metal, WebGPU: reserved for future accelerator backends
type Backend interface {
	// Element-wise binary operations with NumPy-style broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Scalar operations (element-wise with scalar)
	AddScalar(x *RawTensor, scalar any) *RawTensor // x + s
	SubScalar(x *RawTensor, scalar any) *RawTensor // x - s
	MulScalar(x *RawTensor, scalar any) *RawTensor // x * s
	DivScalar(x *RawTensor, scalar any) *RawTensor // x / s

	// Math operations (element-wise)
	Exp(x *RawTensor) *RawTensor                // exponential
	Log(x *RawTensor) *RawTensor                // natural logarithm
	Sqrt(x *RawTensor) *RawTensor               // square root
	Abs(x *RawTensor) *RawTensor                // absolute value
	Square(x *RawTensor) *RawTensor             // x * x
	Neg(x *RawTensor) *RawTensor                // -x
	Sigmoid(x *RawTensor) *RawTensor            // 1 / (1 + exp(-x))
	Clip(x *RawTensor, lo, hi float64) *RawTensor // clamp into [lo, hi]

	// Reduction operations
	Sum(x *RawTensor) *RawTensor                            // total sum (scalar result)
	Mean(x *RawTensor) *RawTensor                           // mean over all elements (scalar result)
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor  // sum along dimension
	MeanDim(x *RawTensor, dim int, keepDim bool) *RawTensor // mean along dimension

	// Shape operations
	Reshape(t *RawTensor, newShape Shape) *RawTensor
	Expand(x *RawTensor, shape Shape) *RawTensor // broadcast to shape

	// Type conversion
	Cast(x *RawTensor, dtype DataType) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
