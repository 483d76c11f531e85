// SPDX-License-Identifier: MIT
// Package dataset: error-injection methods. Every method here converts its
// particular error description into an absolute covariance contribution
// (via the covariance package) and funnels it through AddCovariance, the
// single point of mutation. Contributions add, and addition commutes, so
// injection order never changes the accumulated covariance.

package dataset

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/histmetric/covariance"
)

// Operation name constants for unified error wrapping.
const (
	opAddCovariance            = "AddCovariance"
	opAddUncorrelated          = "AddUncorrelated"
	opAddCorrelated            = "AddCorrelated"
	opAddRelativeCovariance    = "AddRelativeCovariance"
	opAddRelativeUncorrelated  = "AddRelativeUncorrelated"
	opAddRelativeCorrelated    = "AddRelativeCorrelated"
	opAddRelativeMaxCorrelated = "AddRelativeMaxCorrelated"
)

// AddCovariance accumulates an arbitrary covariance contribution, one b×b
// matrix per histogram. This is the single mutation funnel: every other
// Add* method ends up here. The whole batch is validated against the
// dataset geometry BEFORE any matrix is touched, so a failing call never
// leaves a partially applied contribution.
//
// Errors: ErrDimensionMismatch (batch length != n, or any matrix order
// != b), ErrNilMatrix (nil entry).
// Complexity: Time O(n·b²).
func (d *Dataset) AddCovariance(cov []*mat.SymDense) error {
	if len(cov) != d.n {
		return dsErrorf(opAddCovariance, ErrDimensionMismatch)
	}
	for _, c := range cov {
		if c == nil {
			return dsErrorf(opAddCovariance, ErrNilMatrix)
		}
		if c.SymmetricDim() != d.bins {
			return dsErrorf(opAddCovariance, ErrDimensionMismatch)
		}
	}

	for k, c := range cov {
		d.cov[k].AddSym(d.cov[k], c)
	}

	return nil
}

// AddUncorrelated accumulates a per-bin error with no bin-to-bin
// correlation: the contribution is diagonal, identity correlation times
// squared errors. errs must be n×b.
//
// Errors: ErrDimensionMismatch, ErrNilMatrix (via the conversion).
// Complexity: Time O(n·b²).
func (d *Dataset) AddUncorrelated(errs [][]float64) error {
	if err := d.validateErrBatch(errs); err != nil {
		return dsErrorf(opAddUncorrelated, err)
	}

	eye := identity(d.bins)
	corrs := make([]*mat.SymDense, d.n)
	for k := range corrs {
		corrs[k] = eye // shared read-only identity per histogram
	}

	return d.addFromCorrelation(opAddUncorrelated, corrs, errs)
}

// AddCorrelated accumulates a per-bin error together with an explicit
// correlation matrix per histogram. errs must be n×b and corrs n matrices
// of order b.
//
// Errors: ErrDimensionMismatch, ErrNilMatrix.
// Complexity: Time O(n·b²).
func (d *Dataset) AddCorrelated(errs [][]float64, corrs []*mat.SymDense) error {
	if err := d.validateErrBatch(errs); err != nil {
		return dsErrorf(opAddCorrelated, err)
	}
	if len(corrs) != d.n {
		return dsErrorf(opAddCorrelated, ErrDimensionMismatch)
	}
	for _, c := range corrs {
		if c == nil {
			return dsErrorf(opAddCorrelated, ErrNilMatrix)
		}
		if c.SymmetricDim() != d.bins {
			return dsErrorf(opAddCorrelated, ErrDimensionMismatch)
		}
	}

	return d.addFromCorrelation(opAddCorrelated, corrs, errs)
}

// AddRelativeCovariance accumulates ONE shared relative (scale-invariant)
// covariance matrix, promoted to an absolute per-histogram contribution
// using the stored bin contents. Because the stored data is immutable, the
// promotion always reads the original contents and the injection stays
// order-independent like every other Add* call.
//
// Errors: ErrDimensionMismatch (rel order != b), ErrNilMatrix.
// Complexity: Time O(n·b²).
func (d *Dataset) AddRelativeCovariance(rel mat.Symmetric) error {
	if rel == nil {
		return dsErrorf(opAddRelativeCovariance, ErrNilMatrix)
	}
	if rel.SymmetricDim() != d.bins {
		return dsErrorf(opAddRelativeCovariance, ErrDimensionMismatch)
	}

	abs, err := covariance.RelativeToAbsolute(rel, d.data)
	if err != nil {
		return dsErrorf(opAddRelativeCovariance, err)
	}

	return d.AddCovariance(abs)
}

// AddRelativeUncorrelated accumulates a relative per-bin error shared by
// every histogram, with no bin-to-bin correlation. errs is a single
// b-vector of fractional errors (e.g. 0.05 for 5% per bin).
//
// Errors: ErrDimensionMismatch, ErrNilMatrix.
// Complexity: Time O(n·b²).
func (d *Dataset) AddRelativeUncorrelated(errs []float64) error {
	if err := d.addRelativeFromCorrelation(identity(d.bins), errs); err != nil {
		return dsErrorf(opAddRelativeUncorrelated, err)
	}

	return nil
}

// AddRelativeCorrelated accumulates a relative per-bin error shared by every
// histogram together with an explicit b×b correlation matrix.
//
// Errors: ErrDimensionMismatch, ErrNilMatrix.
// Complexity: Time O(n·b²).
func (d *Dataset) AddRelativeCorrelated(errs []float64, corr mat.Symmetric) error {
	if corr == nil {
		return dsErrorf(opAddRelativeCorrelated, ErrNilMatrix)
	}
	if err := d.addRelativeFromCorrelation(corr, errs); err != nil {
		return dsErrorf(opAddRelativeCorrelated, err)
	}

	return nil
}

// AddRelativeMaxCorrelated accumulates a relative per-bin error with
// maximal bin-to-bin correlation (all-ones correlation matrix) — the shape
// of an overall scale uncertainty that moves all bins together.
//
// Errors: ErrDimensionMismatch, ErrNilMatrix.
// Complexity: Time O(n·b²).
func (d *Dataset) AddRelativeMaxCorrelated(errs []float64) error {
	if err := d.addRelativeFromCorrelation(ones(d.bins), errs); err != nil {
		return dsErrorf(opAddRelativeMaxCorrelated, err)
	}

	return nil
}

// AddRelativeMaxCorrelatedScalar is the scalar-broadcast form of
// AddRelativeMaxCorrelated: the single fractional error e applies to every
// bin. It behaves identically to passing a b-vector filled with e.
func (d *Dataset) AddRelativeMaxCorrelatedScalar(e float64) error {
	errs := make([]float64, d.bins)
	for i := range errs {
		errs[i] = e
	}

	return d.AddRelativeMaxCorrelated(errs)
}

// AddPoisson accumulates counting-statistics errors: an uncorrelated per-bin
// error of sqrt(content) for every histogram. Empty bins contribute zero
// error, which downstream comparisons will surface as NaN if no other error
// source covers them.
//
// Complexity: Time O(n·b²).
func (d *Dataset) AddPoisson() error {
	errs := make([][]float64, d.n)
	for k, row := range d.data {
		errs[k] = make([]float64, d.bins)
		for i, v := range row {
			errs[k][i] = math.Sqrt(v)
		}
	}

	return d.AddUncorrelated(errs)
}

// addFromCorrelation converts (correlation, error) pairs to covariance and
// accumulates. Inputs are pre-validated by the public wrappers.
func (d *Dataset) addFromCorrelation(tag string, corrs []*mat.SymDense, errs [][]float64) error {
	cov, err := covariance.FromCorrelationBatch(corrs, errs)
	if err != nil {
		return dsErrorf(tag, err)
	}

	return d.AddCovariance(cov)
}

// addRelativeFromCorrelation builds a shared relative covariance from a
// correlation matrix and a relative error vector, then accumulates it via
// AddRelativeCovariance. Returns plain (unwrapped) errors for the public
// wrappers to tag.
func (d *Dataset) addRelativeFromCorrelation(corr mat.Symmetric, errs []float64) error {
	rel, err := covariance.FromCorrelation(corr, errs)
	if err != nil {
		return err
	}

	return d.AddRelativeCovariance(rel)
}

// validateErrBatch checks an n×b error batch against the dataset geometry.
func (d *Dataset) validateErrBatch(errs [][]float64) error {
	if len(errs) != d.n {
		return ErrDimensionMismatch
	}
	for _, row := range errs {
		if len(row) != d.bins {
			return ErrDimensionMismatch
		}
	}

	return nil
}

// identity returns the b×b identity correlation matrix.
func identity(bins int) *mat.SymDense {
	eye := mat.NewSymDense(bins, nil)
	for i := 0; i < bins; i++ {
		eye.SetSym(i, i, 1)
	}

	return eye
}

// ones returns the b×b all-ones (maximally correlated) correlation matrix.
func ones(bins int) *mat.SymDense {
	m := mat.NewSymDense(bins, nil)
	for i := 0; i < bins; i++ {
		for j := i; j < bins; j++ {
			m.SetSym(i, j, 1)
		}
	}

	return m
}
