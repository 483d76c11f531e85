// SPDX-License-Identifier: MIT
// Package covariance: conversion kernels between covariance, correlation and
// error representations, in single-matrix and batched flavors.
//
// Conventions shared by every kernel in this file:
//   - Inputs are never mutated; every result is freshly allocated.
//   - Structural validation happens before any allocation or computation.
//   - Degenerate divisions (zero error) propagate NaN/±Inf untouched.

package covariance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping.
const (
	opToError              = "ToError"
	opToErrorBatch         = "ToErrorBatch"
	opToCorrelation        = "ToCorrelation"
	opToCorrelationBatch   = "ToCorrelationBatch"
	opFromCorrelation      = "FromCorrelation"
	opFromCorrelationBatch = "FromCorrelationBatch"
	opRelativeToAbsolute   = "RelativeToAbsolute"
	opAbsoluteToRelative   = "AbsoluteToRelative"
)

// covErrorf wraps err with an operation tag, preserving the sentinel for
// errors.Is at call sites. Callers must pass a non-nil err.
func covErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ToError extracts the per-bin error vector from one covariance matrix:
// err[i] = sqrt(c[i,i]). Diagonal entries of a covariance matrix are squared
// errors, so the result is elementwise non-negative for valid input; a
// negative diagonal yields NaN, which is passed through.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(b), Space O(b).
func ToError(c mat.Symmetric) ([]float64, error) {
	if err := validateNotNil(c); err != nil {
		return nil, covErrorf(opToError, err)
	}

	bins := c.SymmetricDim()
	errs := make([]float64, bins)
	for i := 0; i < bins; i++ {
		errs[i] = math.Sqrt(c.At(i, i))
	}

	return errs, nil
}

// ToErrorBatch applies ToError to every matrix of a batch, returning one
// error vector per histogram.
//
// Errors: ErrEmptyBatch, ErrNilMatrix, ErrDimensionMismatch (mixed orders).
// Complexity: Time O(n·b), Space O(n·b).
func ToErrorBatch(cs []*mat.SymDense) ([][]float64, error) {
	if err := validateBatch(cs); err != nil {
		return nil, covErrorf(opToErrorBatch, err)
	}

	out := make([][]float64, len(cs))
	for k, c := range cs {
		out[k], _ = ToError(c) // entries validated above
	}

	return out, nil
}

// ToCorrelation converts one covariance matrix to its correlation matrix:
// corr[i,j] = c[i,j] / (err[i]·err[j]). Wherever an error vanishes the
// division produces NaN or ±Inf; this is deliberate pass-through, not a
// failure — callers needing a well-defined correlation must guarantee a
// strictly positive diagonal first.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(b²), Space O(b²).
func ToCorrelation(c mat.Symmetric) (*mat.SymDense, error) {
	if err := validateNotNil(c); err != nil {
		return nil, covErrorf(opToCorrelation, err)
	}

	errs, _ := ToError(c) // already validated
	bins := c.SymmetricDim()
	corr := mat.NewSymDense(bins, nil)
	for i := 0; i < bins; i++ {
		for j := i; j < bins; j++ { // upper triangle; SetSym mirrors
			corr.SetSym(i, j, c.At(i, j)/(errs[i]*errs[j]))
		}
	}

	return corr, nil
}

// ToCorrelationBatch applies ToCorrelation to every matrix of a batch.
//
// Errors: ErrEmptyBatch, ErrNilMatrix, ErrDimensionMismatch (mixed orders).
// Complexity: Time O(n·b²), Space O(n·b²).
func ToCorrelationBatch(cs []*mat.SymDense) ([]*mat.SymDense, error) {
	if err := validateBatch(cs); err != nil {
		return nil, covErrorf(opToCorrelationBatch, err)
	}

	out := make([]*mat.SymDense, len(cs))
	for k, c := range cs {
		out[k], _ = ToCorrelation(c) // entries validated above
	}

	return out, nil
}

// FromCorrelation rebuilds a covariance matrix from a correlation matrix and
// an error vector: cov[i,j] = corr[i,j]·errs[i]·errs[j]. It is the exact
// inverse of ToCorrelation/ToError for matrices with nonzero errors.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(errs) != order of corr).
// Complexity: Time O(b²), Space O(b²).
func FromCorrelation(corr mat.Symmetric, errs []float64) (*mat.SymDense, error) {
	if err := validateNotNil(corr); err != nil {
		return nil, covErrorf(opFromCorrelation, err)
	}
	bins := corr.SymmetricDim()
	if err := validateVecLen(errs, bins); err != nil {
		return nil, covErrorf(opFromCorrelation, err)
	}

	cov := mat.NewSymDense(bins, nil)
	for i := 0; i < bins; i++ {
		for j := i; j < bins; j++ {
			cov.SetSym(i, j, corr.At(i, j)*errs[i]*errs[j])
		}
	}

	return cov, nil
}

// FromCorrelationBatch rebuilds one covariance matrix per histogram from
// parallel slices of correlation matrices and error vectors.
//
// Errors: ErrEmptyBatch, ErrNilMatrix, ErrDimensionMismatch (batch lengths
// differ, mixed orders, or any vector/matrix length disagreement).
// Complexity: Time O(n·b²), Space O(n·b²).
func FromCorrelationBatch(corrs []*mat.SymDense, errs [][]float64) ([]*mat.SymDense, error) {
	if err := validateBatch(corrs); err != nil {
		return nil, covErrorf(opFromCorrelationBatch, err)
	}
	if len(errs) != len(corrs) {
		return nil, covErrorf(opFromCorrelationBatch, ErrDimensionMismatch)
	}
	bins := corrs[0].SymmetricDim()
	for _, e := range errs {
		if err := validateVecLen(e, bins); err != nil {
			return nil, covErrorf(opFromCorrelationBatch, err)
		}
	}

	out := make([]*mat.SymDense, len(corrs))
	for k := range corrs {
		out[k], _ = FromCorrelation(corrs[k], errs[k]) // validated above
	}

	return out, nil
}

// RelativeToAbsolute promotes ONE shared relative covariance matrix to an
// absolute per-histogram batch: abs[k][i,j] = rel[i,j]·data[k][i]·data[k][j].
// The asymmetry is intentional — a relative (scale-invariant) uncertainty is
// typically quoted once for the whole batch, while the bin contents vary per
// histogram.
//
// Errors: ErrNilMatrix, ErrEmptyBatch, ErrDimensionMismatch (any data row
// whose bin count differs from the order of rel).
// Complexity: Time O(n·b²), Space O(n·b²).
func RelativeToAbsolute(rel mat.Symmetric, data [][]float64) ([]*mat.SymDense, error) {
	if err := validateNotNil(rel); err != nil {
		return nil, covErrorf(opRelativeToAbsolute, err)
	}
	bins := rel.SymmetricDim()
	if err := validateData(data, bins); err != nil {
		return nil, covErrorf(opRelativeToAbsolute, err)
	}

	out := make([]*mat.SymDense, len(data))
	for k, row := range data {
		abs := mat.NewSymDense(bins, nil)
		for i := 0; i < bins; i++ {
			for j := i; j < bins; j++ {
				abs.SetSym(i, j, rel.At(i, j)*row[i]*row[j])
			}
		}
		out[k] = abs
	}

	return out, nil
}

// AbsoluteToRelative is the inverse of RelativeToAbsolute and is
// intentionally unsupported: it always returns ErrNotImplemented, never a
// silently wrong answer. The signature exists so that the gap in the algebra
// is an explicit, checkable part of the API surface.
func AbsoluteToRelative(cov []*mat.SymDense, data [][]float64) ([]*mat.SymDense, error) {
	return nil, covErrorf(opAbsoluteToRelative, ErrNotImplemented)
}
