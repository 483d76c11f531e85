// SPDX-License-Identifier: MIT

package dataset

// Option configures a Data view request. Options compose; applying the same
// option twice is idempotent.
type Option func(*viewOptions)

// viewOptions stores the effective view configuration. Fields are unexported
// so the only way to toggle them is through the WithX constructors.
type viewOptions struct {
	normalize   bool // divide each histogram by its norm (bin sum)
	decorrelate bool // whiten each histogram by its inverse correlation
}

// WithNormalized divides each histogram by its norm, turning bin contents
// into a probability-like density. The stored data is never rescaled; only
// the returned copy is.
func WithNormalized() Option {
	return func(o *viewOptions) { o.normalize = true }
}

// WithDecorrelated left-multiplies each histogram by the inverse of its own
// correlation matrix (whitening), producing independent-equivalent bin
// values. Requires a well-defined correlation: every histogram must carry
// nonzero diagonal covariance, and each correlation matrix must be
// invertible — otherwise Data fails with ErrSingular.
func WithDecorrelated() Option {
	return func(o *viewOptions) { o.decorrelate = true }
}

// gatherOptions resolves option setters against the zero defaults
// (plain copy: no normalization, no decorrelation).
func gatherOptions(opts ...Option) viewOptions {
	var o viewOptions
	for _, set := range opts {
		set(&o)
	}

	return o
}
