// SPDX-License-Identifier: MIT
// Package covariance: sentinel error set.
// All public functions return these sentinels (optionally wrapped with an
// operation tag via %w) and tests match them with errors.Is. No function in
// this package panics on user input.

package covariance

import "errors"

var (
	// ErrNilMatrix indicates that a nil matrix (or a nil batch entry) was
	// passed where a concrete matrix is required.
	ErrNilMatrix = errors.New("covariance: nil matrix")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// arguments, e.g. an error vector whose length differs from the matrix
	// order, or a data row whose bin count differs from the relative matrix.
	ErrDimensionMismatch = errors.New("covariance: dimension mismatch")

	// ErrEmptyBatch indicates that a batch argument contains no histograms.
	ErrEmptyBatch = errors.New("covariance: empty batch")

	// ErrNonSquare signals that a square matrix was required but the input
	// was rectangular.
	ErrNonSquare = errors.New("covariance: matrix is not square")

	// ErrNotImplemented marks the absolute→relative covariance conversion,
	// which is intentionally unsupported: the inverse transform is not
	// well-defined once histograms with empty bins are admitted, so callers
	// must keep relative covariances around if they need them later.
	ErrNotImplemented = errors.New("covariance: absolute to relative conversion not implemented")
)
