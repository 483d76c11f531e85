// SPDX-License-Identifier: MIT
// Package chi2: distance matrix construction and its condensed form.

package chi2

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/histmetric/covariance"
	"github.com/katalvlaran/histmetric/dataset"
)

// Operation name constant for unified error wrapping.
const opMatrix = "Matrix"

// chErrorf wraps err with an operation tag, preserving the sentinel for
// errors.Is at call sites. Callers must pass a non-nil err.
func chErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Matrix computes the n×n symmetric matrix of chi²-per-bin distances between
// every pair of histograms in d, comparing the decorrelated bin contents
// against the accumulated per-bin errors. Cross-normalization makes the
// comparison scale-free: each histogram is weighed by the other's norm, so
// proportional histograms land at distance zero. Norms always come from the
// raw contents; decorrelation never touches them.
//
// The diagonal is computed by the same formula as every other entry; it is
// zero wherever a histogram carries any error and NaN where it carries none,
// which makes an absent error model impossible to miss.
//
// Errors: ErrNilDataset; dataset.ErrSingular when a histogram's correlation
// matrix cannot be inverted for the decorrelation step.
// Complexity: Time O(n·b³ + n²·b), Space O(n²).
func Matrix(d *dataset.Dataset) (*mat.SymDense, error) {
	if d == nil {
		return nil, chErrorf(opMatrix, ErrNilDataset)
	}

	data, err := d.Data(dataset.WithDecorrelated())
	if err != nil {
		return nil, chErrorf(opMatrix, err)
	}
	errs := d.Errors()
	norms := d.Norms()
	n, bins := d.N(), d.Bins()

	out := mat.NewSymDense(n, nil)
	for k := 0; k < n; k++ {
		for l := k; l < n; l++ {
			var sum float64
			for i := 0; i < bins; i++ {
				diff := norms[k]*data[l][i] - norms[l]*data[k][i]
				ek := norms[l] * errs[k][i]
				el := norms[k] * errs[l][i]
				sum += diff * diff / (el*el + ek*ek)
			}
			out.SetSym(k, l, sum/float64(bins))
		}
	}

	return out, nil
}

// Condense flattens a square distance matrix into its strictly upper
// triangle, row by row — the compact pairwise form expected by clustering
// consumers. The symmetric matrix from Matrix condenses to n·(n-1)/2 values.
//
// Errors: covariance.ErrNilMatrix, covariance.ErrNonSquare.
func Condense(m mat.Matrix) ([]float64, error) {
	return covariance.CondenseUpperTriangle(m)
}
