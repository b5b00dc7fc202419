// Copyright 2025 Strand ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package fwerr exposes the framework error classification.
//
// Every error returned by the nn loss functions is a framework error with a
// Kind. Callers branch on the kind rather than on error strings:
//
//	loss, err := nn.MSELoss(target, pred, nn.ReductionMean, nil)
//	if fwerr.IsKind(err, fwerr.KindBackend) {
//	    // shape or dtype mismatch raised inside the backend
//	}
package fwerr

import "github.com/strand-ml/strand/internal/fwerr"

// Kind classifies a framework error.
type Kind = fwerr.Kind

// Framework error kinds.
const (
	// KindValue marks invalid argument values (e.g. an unknown reduction mode).
	KindValue Kind = fwerr.KindValue
	// KindShape marks incompatible tensor shapes.
	KindShape Kind = fwerr.KindShape
	// KindDType marks unsupported or mismatched data types.
	KindDType Kind = fwerr.KindDType
	// KindBackend marks failures raised inside a compute backend.
	KindBackend Kind = fwerr.KindBackend
)

// Error is a framework error with a kind and a wrapped cause.
type Error = fwerr.Error

// KindOf returns the kind of a framework error and true, or false if err is
// not a framework error.
func KindOf(err error) (Kind, bool) {
	return fwerr.KindOf(err)
}

// IsKind reports whether err is a framework error of the given kind.
func IsKind(err error, kind Kind) bool {
	return fwerr.IsKind(err, kind)
}
