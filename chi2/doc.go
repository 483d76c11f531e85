// Package chi2 computes the pairwise chi²-per-bin distance between the
// histograms of a dataset.Dataset, using the errors accumulated on it.
//
// For histograms k and l with norms N, decorrelated bin contents D and
// per-bin errors E, the per-bin term compares the cross-normalized contents
//
//	num_i = (N[k]·D[l][i] − N[l]·D[k][i])²
//	den_i = (N[k]·E[l][i])² + (N[l]·E[k][i])²
//
// and the distance is Σ_i num_i/den_i divided by the number of bins, i.e. a
// reduced chi²: a value near 1 means the two histograms differ by about one
// standard deviation per bin. Proportional histograms are at distance zero
// regardless of their absolute scale.
//
// The contents are whitened first: each histogram is left-multiplied by the
// inverse of its own correlation matrix, so correlated error contributions
// do not get double-counted by the bin-by-bin sum. A correlation that cannot
// be inverted fails with dataset.ErrSingular. Bins whose combined error is
// zero divide by zero; the resulting NaN/±Inf entries are propagated
// untouched so that a missing error model is visible in the output instead
// of silently skewing it.
//
// Errors:
//
//	ErrNilDataset       - the dataset argument is nil.
//	dataset.ErrSingular - a correlation matrix could not be inverted.
package chi2
