// Package covariance provides stateless conversions between the three
// equivalent representations of histogram uncertainty — covariance matrices,
// correlation matrices and per-bin error vectors — plus the relative→absolute
// covariance promotion and the upper-triangle condenser used to flatten
// symmetric distance matrices.
//
// Every conversion exists in two explicit flavors: a single-matrix form
// operating on one b×b matrix, and a batch form operating on one matrix per
// histogram. Batches are ordinary slices of *mat.SymDense; single matrices
// are accepted through the mat.Symmetric interface, which makes non-square
// input unrepresentable.
//
// Numeric policy: conversions never repair degenerate values. Dividing by a
// zero error in ToCorrelation yields NaN or ±Inf in the output, by design —
// the caller asked a question the error model cannot answer, and the result
// says so. Structural problems (nil matrices, mismatched dimensions, empty
// batches) are rejected up front with sentinel errors before any output is
// produced.
//
// Errors:
//
//	ErrNilMatrix         - a matrix argument (or batch entry) is nil.
//	ErrDimensionMismatch - vector/matrix/batch dimensions disagree.
//	ErrEmptyBatch        - a batch argument has no entries.
//	ErrNonSquare         - a square matrix was required but not supplied.
//	ErrNotImplemented    - the absolute→relative conversion (unsupported).
package covariance
