// Copyright 2025 Strand ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/strand-ml/strand/internal/tensor"

// RawTensor is the low-level, type-erased tensor representation.
//
// RawTensor stores element data in a reference-counted byte buffer with
// copy-on-write semantics, along with shape, strides, dtype, and device
// metadata. Backends operate on RawTensor; most users should work with the
// high-level Tensor[T, B] API instead.
type RawTensor = tensor.RawTensor
