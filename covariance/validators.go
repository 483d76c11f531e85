// SPDX-License-Identifier: MIT
// Package covariance: canonical validation helpers.
// Keeping all structural checks here means every conversion fails the same
// way for the same malformed input. Validators return plain sentinels; the
// public facades wrap them with an operation tag.

package covariance

import "gonum.org/v1/gonum/mat"

// validateNotNil ensures a single symmetric matrix argument is present.
// Complexity: O(1).
func validateNotNil(c mat.Symmetric) error {
	if c == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateBatch ensures a covariance/correlation batch is non-empty, has no
// nil entries, and that every matrix shares the same order (one histogram's
// bin count must match the next — mixed-width batches are malformed).
// Complexity: O(n) over batch entries.
func validateBatch(cs []*mat.SymDense) error {
	if len(cs) == 0 {
		return ErrEmptyBatch
	}
	bins := -1
	for _, c := range cs {
		if c == nil {
			return ErrNilMatrix
		}
		if bins < 0 {
			bins = c.SymmetricDim()
			continue
		}
		if c.SymmetricDim() != bins {
			return ErrDimensionMismatch
		}
	}

	return nil
}

// validateVecLen ensures an error vector has exactly n entries.
// Complexity: O(1).
func validateVecLen(errs []float64, n int) error {
	if errs == nil {
		return ErrNilMatrix
	}
	if len(errs) != n {
		return ErrDimensionMismatch
	}

	return nil
}

// validateData ensures a histogram batch is non-empty and rectangular with
// exactly bins columns per row. Complexity: O(n) over rows.
func validateData(data [][]float64, bins int) error {
	if len(data) == 0 {
		return ErrEmptyBatch
	}
	for _, row := range data {
		if len(row) != bins {
			return ErrDimensionMismatch
		}
	}

	return nil
}
