// Package dataset binds a batch of histograms to an accumulating covariance
// model and exposes the derived views downstream consumers need: raw or
// normalized bin contents, decorrelated (whitened) contents, per-bin errors,
// and the correlation matrices themselves.
//
// A Dataset is created once from an n×b batch of bin contents. The contents
// are copied and never mutated afterwards; every subsequent error-injection
// call only adds a covariance contribution. Because addition commutes, the
// order of injections is irrelevant — Poisson statistics, flat relative
// systematics and fully correlated scale uncertainties can be layered in any
// sequence and yield the same accumulated covariance.
//
// All Add* methods validate their arguments completely before touching the
// accumulator, so a rejected call leaves the Dataset exactly as it was.
// Derived views are recomputed on demand from the current covariance and are
// always independent copies; mutating a returned slice or matrix cannot
// corrupt the Dataset.
//
// A Dataset is not safe for concurrent mutation; it assumes a single owner,
// like every mutable container in this module.
//
// Errors:
//
//	ErrEmptyDataset      - the data batch has no histograms or no bins.
//	ErrDimensionMismatch - an argument disagrees with the n×b geometry.
//	ErrNilMatrix         - a required matrix argument (or entry) is nil.
//	ErrSingular          - decorrelation met a non-invertible correlation.
package dataset
