// SPDX-License-Identifier: MIT

package covariance

import "gonum.org/v1/gonum/mat"

const opCondenseUpperTriangle = "CondenseUpperTriangle"

// CondenseUpperTriangle extracts the strictly-above-diagonal entries of a
// square matrix in row-major order: for an n×n input it returns exactly
// n·(n-1)/2 values m[0,1], m[0,2], …, m[0,n-1], m[1,2], …, m[n-2,n-1].
// For a symmetric matrix this is a lossless flat representation minus the
// (redundant) diagonal, the form most pairwise-distance consumers expect.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O(n²), Space O(n²) for the result.
func CondenseUpperTriangle(m mat.Matrix) ([]float64, error) {
	if m == nil {
		return nil, covErrorf(opCondenseUpperTriangle, ErrNilMatrix)
	}
	rows, cols := m.Dims()
	if rows != cols {
		return nil, covErrorf(opCondenseUpperTriangle, ErrNonSquare)
	}

	out := make([]float64, 0, rows*(rows-1)/2)
	for i := 0; i < rows; i++ {
		for j := i + 1; j < cols; j++ { // strictly above the diagonal
			out = append(out, m.At(i, j))
		}
	}

	return out, nil
}
