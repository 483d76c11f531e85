// SPDX-License-Identifier: MIT
// Package dataset: sentinel error set. All methods return these sentinels
// (wrapped with method context via %w) and tests match them with errors.Is.

package dataset

import "errors"

var (
	// ErrEmptyDataset indicates a data batch with zero histograms or zero
	// bins; an accumulator over an empty geometry is meaningless.
	ErrEmptyDataset = errors.New("dataset: empty data batch")

	// ErrDimensionMismatch indicates an argument whose shape disagrees with
	// the dataset's n histograms × b bins geometry (ragged rows included).
	ErrDimensionMismatch = errors.New("dataset: dimension mismatch")

	// ErrNilMatrix indicates a nil matrix argument or batch entry.
	ErrNilMatrix = errors.New("dataset: nil matrix")

	// ErrSingular is returned when decorrelation was requested but a
	// histogram's correlation matrix could not be inverted. It is propagated
	// rather than recovered: silently skipping the whitening step would
	// silently change what the downstream comparison means.
	ErrSingular = errors.New("dataset: singular correlation matrix")
)
