// SPDX-License-Identifier: MIT
// Package dataset: the Dataset container and its derived views.
// The accumulator itself lives here; the error-injection methods that feed
// it are in accumulate.go.

package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/histmetric/covariance"
)

// Operation name constants for unified error wrapping.
const (
	opNew  = "New"
	opData = "Data"
)

// dsErrorf wraps err with an operation tag, preserving the sentinel for
// errors.Is at call sites. Callers must pass a non-nil err.
func dsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Dataset binds an immutable batch of histogram bin contents to an additive
// covariance accumulator, one symmetric b×b matrix per histogram.
//
// Invariants:
//   - data is never mutated after New; relative-error injections read it at
//     call time, so their contributions stay order-independent.
//   - every cov[k] stays symmetric with a non-negative diagonal, because the
//     only mutation is adding covariance contributions built from error
//     vectors and correlation matrices.
type Dataset struct {
	n    int             // number of histograms
	bins int             // bins per histogram
	data [][]float64     // n×b bin contents, immutable after construction
	cov  []*mat.SymDense // accumulated absolute covariance, one per histogram
}

// New constructs a Dataset from an n×b batch of bin contents. The batch is
// deep-copied; the caller keeps ownership of its slices. The covariance
// accumulator starts at zero.
//
// Errors: ErrEmptyDataset (no histograms, or zero bins), ErrDimensionMismatch
// (ragged rows).
// Complexity: Time O(n·b), Space O(n·b²) for the zeroed accumulator.
func New(data [][]float64) (*Dataset, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, dsErrorf(opNew, ErrEmptyDataset)
	}
	bins := len(data[0])
	for _, row := range data {
		if len(row) != bins {
			return nil, dsErrorf(opNew, ErrDimensionMismatch)
		}
	}

	d := &Dataset{
		n:    len(data),
		bins: bins,
		data: make([][]float64, len(data)),
		cov:  make([]*mat.SymDense, len(data)),
	}
	for k, row := range data {
		d.data[k] = make([]float64, bins)
		copy(d.data[k], row)
		d.cov[k] = mat.NewSymDense(bins, nil)
	}

	return d, nil
}

// N returns the number of histograms in the batch.
func (d *Dataset) N() int { return d.n }

// Bins returns the number of bins per histogram.
func (d *Dataset) Bins() int { return d.bins }

// Norms returns the per-histogram sum of bin contents, i.e. the histogram
// normalizations. Norms are computed from the stored (original) data and are
// unaffected by any view option.
func (d *Dataset) Norms() []float64 {
	norms := make([]float64, d.n)
	for k, row := range d.data {
		norms[k] = floats.Sum(row)
	}

	return norms
}

// Data returns an independent copy of the bin contents, optionally
// transformed per histogram:
//
//	WithNormalized()   — divide histogram k by Norms()[k]
//	WithDecorrelated() — replace histogram k by corr[k]⁻¹ · histogram k
//
// Normalization is applied before decorrelation when both are requested.
// A zero norm produces ±Inf/NaN in the normalized view (propagated, not
// trapped). Decorrelation inverts each histogram's correlation matrix; if
// any inversion fails the call returns ErrSingular (annotated with the
// histogram index) and no partial result.
//
// Complexity: Time O(n·b) plain, O(n·b³) with decorrelation.
func (d *Dataset) Data(opts ...Option) ([][]float64, error) {
	o := gatherOptions(opts...)

	out := make([][]float64, d.n)
	for k, row := range d.data {
		out[k] = make([]float64, d.bins)
		copy(out[k], row)
	}

	if o.normalize {
		norms := d.Norms()
		for k := range out {
			floats.Scale(1/norms[k], out[k])
		}
	}

	if o.decorrelate {
		corrs, _ := covariance.ToCorrelationBatch(d.cov) // internal state is always a valid batch
		var inv mat.Dense
		var white mat.VecDense
		for k := range out {
			if err := inv.Inverse(corrs[k]); err != nil {
				return nil, dsErrorf(opData, fmt.Errorf("histogram %d: %w", k, ErrSingular))
			}
			white.MulVec(&inv, mat.NewVecDense(d.bins, out[k]))
			for i := 0; i < d.bins; i++ {
				out[k][i] = white.AtVec(i)
			}
		}
	}

	return out, nil
}

// Normalized is shorthand for Data(WithNormalized()).
func (d *Dataset) Normalized() [][]float64 {
	out, _ := d.Data(WithNormalized()) // cannot fail without decorrelation

	return out
}

// Covariance returns an independent copy of the accumulated absolute
// covariance, one b×b matrix per histogram.
func (d *Dataset) Covariance() []*mat.SymDense {
	out := make([]*mat.SymDense, d.n)
	for k, c := range d.cov {
		cp := mat.NewSymDense(d.bins, nil)
		cp.CopySym(c)
		out[k] = cp
	}

	return out
}

// RelativeCovariance would return the accumulated covariance rescaled to be
// invariant under per-histogram normalization. The underlying conversion is
// intentionally unsupported, so this always fails with
// covariance.ErrNotImplemented; it exists to make the gap explicit rather
// than to silently hand back the absolute form.
func (d *Dataset) RelativeCovariance() ([]*mat.SymDense, error) {
	return covariance.AbsoluteToRelative(d.cov, d.data)
}

// Correlation returns the correlation matrices derived from the accumulated
// covariance, one per histogram. Histograms with zero error in some bin
// yield NaN/±Inf entries there; this is propagated, never an error, so a
// freshly constructed Dataset can be inspected without failing.
func (d *Dataset) Correlation() []*mat.SymDense {
	corrs, _ := covariance.ToCorrelationBatch(d.cov) // internal state is always a valid batch

	return corrs
}

// Errors returns the per-bin absolute errors (square roots of the
// covariance diagonals), one b-vector per histogram.
func (d *Dataset) Errors() [][]float64 {
	errs, _ := covariance.ToErrorBatch(d.cov) // internal state is always a valid batch

	return errs
}

// RelativeErrors returns the per-bin errors divided by each histogram's
// norm, i.e. errors on the same scale as the normalized data. A zero norm
// propagates ±Inf/NaN.
func (d *Dataset) RelativeErrors() [][]float64 {
	errs := d.Errors()
	norms := d.Norms()
	for k := range errs {
		floats.Scale(1/norms[k], errs[k])
	}

	return errs
}
