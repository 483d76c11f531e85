// Package histmetric accumulates statistical uncertainties on batches of
// histograms and measures how compatible any two histograms in a batch are,
// given those uncertainties.
//
// 🚀 What is histmetric?
//
//	A small, deterministic library that brings together:
//		• Covariance algebra: convert between covariance, correlation and
//		  per-bin error representations, batched per histogram
//		• Error-aware datasets: bind a batch of histograms to an additive
//		  covariance accumulator and inject errors of any correlation shape
//		• Pairwise chi² metric: turn a finished dataset into a symmetric
//		  distance matrix ready for clustering or benchmark selection
//
// ✨ Why choose histmetric?
//
//   - Predictable failure policy – malformed shapes fail fast with sentinel
//     errors; degenerate numerics (zero errors) propagate NaN/Inf instead
//     of being silently repaired
//   - Defensive by default – returned slices and matrices never alias
//     internal state, so callers cannot corrupt a dataset by accident
//   - Built on gonum – symmetric matrices, inversion and vector kernels use
//     gonum.org/v1/gonum rather than hand-rolled linear algebra
//
// Everything is organized under three subpackages:
//
//	covariance/ — stateless covariance ⇄ correlation ⇄ error conversions
//	dataset/    — the mutable error accumulator bound to a histogram batch
//	chi2/       — the pairwise chi²/ndf distance matrix and its condensed form
//
// A typical pipeline:
//
//	ds, _ := dataset.New(bins)          // n histograms × b bins
//	_ = ds.AddPoisson()                 // counting statistics
//	_ = ds.AddRelativeUncorrelated(sys) // per-bin systematic, scale-invariant
//	dist, _ := chi2.Matrix(ds)          // n × n distance matrix
//	flat, _ := chi2.Condense(dist)      // upper-triangular vector form
//
// Producing the histograms, clustering the distance matrix and plotting are
// deliberately left to callers.
//
//	go get github.com/katalvlaran/histmetric
package histmetric
