package chi2_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/histmetric/chi2"
	"github.com/katalvlaran/histmetric/covariance"
	"github.com/katalvlaran/histmetric/dataset"
)

const tol = 1e-12

// TestMatrix_NilDataset verifies the nil guard.
func TestMatrix_NilDataset(t *testing.T) {
	_, err := chi2.Matrix(nil)
	assert.ErrorIs(t, err, chi2.ErrNilDataset)
}

// TestMatrix_IdenticalHistogramsAreAtZero verifies that two identical
// histograms with Poisson errors sit at distance zero, with a clean zero
// diagonal as well.
func TestMatrix_IdenticalHistogramsAreAtZero(t *testing.T) {
	d, err := dataset.New([][]float64{
		{10, 20, 30},
		{10, 20, 30},
	})
	require.NoError(t, err)
	require.NoError(t, d.AddPoisson())

	m, err := chi2.Matrix(d)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, m.At(0, 1), tol)
	assert.InDelta(t, 0.0, m.At(0, 0), tol)
	assert.InDelta(t, 0.0, m.At(1, 1), tol)
}

// TestMatrix_ProportionalHistogramsAreAtZero verifies scale invariance:
// histograms that differ only by an overall factor are indistinguishable.
func TestMatrix_ProportionalHistogramsAreAtZero(t *testing.T) {
	d, err := dataset.New([][]float64{
		{1, 2, 3},
		{4, 8, 12},
	})
	require.NoError(t, err)
	require.NoError(t, d.AddPoisson())

	m, err := chi2.Matrix(d)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, m.At(0, 1), tol)
}

// TestMatrix_HandComputedPair checks a 2×2 case against a by-hand
// evaluation of the cross-normalized formula.
func TestMatrix_HandComputedPair(t *testing.T) {
	d, err := dataset.New([][]float64{
		{1, 2},
		{2, 2},
	})
	require.NoError(t, err)
	require.NoError(t, d.AddUncorrelated([][]float64{
		{0.1, 0.2},
		{0.2, 0.3},
	}))

	// norms are [3,4];
	// bin 0: (3·2-4·1)² / ((3·0.2)²+(4·0.1)²) = 4/0.52
	// bin 1: (3·2-4·2)² / ((3·0.3)²+(4·0.2)²) = 4/1.45
	want := (4/0.52 + 4/1.45) / 2

	m, err := chi2.Matrix(d)
	require.NoError(t, err)

	assert.InDelta(t, want, m.At(0, 1), 1e-9)
	assert.InDelta(t, want, m.At(1, 0), 1e-9)
}

// TestMatrix_SingularCorrelationFails verifies that a non-invertible
// correlation (maximally correlated errors only) surfaces as ErrSingular
// instead of a silently wrong distance.
func TestMatrix_SingularCorrelationFails(t *testing.T) {
	d, err := dataset.New([][]float64{
		{1, 2},
		{2, 1},
	})
	require.NoError(t, err)
	require.NoError(t, d.AddRelativeMaxCorrelatedScalar(0.1))

	_, err = chi2.Matrix(d)
	assert.ErrorIs(t, err, dataset.ErrSingular)
}

// TestMatrix_MoreErrorMeansLessDistance verifies the chi² scaling: layering
// an extra error source onto the same data shrinks every finite distance.
func TestMatrix_MoreErrorMeansLessDistance(t *testing.T) {
	data := [][]float64{
		{5, 9},
		{9, 5},
	}

	tight, err := dataset.New(data)
	require.NoError(t, err)
	require.NoError(t, tight.AddPoisson())

	loose, err := dataset.New(data)
	require.NoError(t, err)
	require.NoError(t, loose.AddPoisson())
	require.NoError(t, loose.AddRelativeUncorrelated([]float64{0.3, 0.3}))

	mt, err := chi2.Matrix(tight)
	require.NoError(t, err)
	ml, err := chi2.Matrix(loose)
	require.NoError(t, err)

	assert.Greater(t, mt.At(0, 1), ml.At(0, 1))
	assert.Greater(t, ml.At(0, 1), 0.0)
}

// TestCondense_PairCount verifies the strictly-upper-triangular flattening
// of a distance matrix: n histograms condense to n·(n-1)/2 entries in
// row-major order.
func TestCondense_PairCount(t *testing.T) {
	d, err := dataset.New([][]float64{
		{4, 6},
		{6, 4},
		{5, 5},
	})
	require.NoError(t, err)
	require.NoError(t, d.AddPoisson())

	m, err := chi2.Matrix(d)
	require.NoError(t, err)

	flat, err := chi2.Condense(m)
	require.NoError(t, err)
	require.Len(t, flat, 3)

	assert.InDelta(t, m.At(0, 1), flat[0], tol)
	assert.InDelta(t, m.At(0, 2), flat[1], tol)
	assert.InDelta(t, m.At(1, 2), flat[2], tol)
}

// TestCondense_RejectsNil verifies that the covariance-package sentinels
// pass through the wrapper unchanged.
func TestCondense_RejectsNil(t *testing.T) {
	_, err := chi2.Condense(nil)
	assert.ErrorIs(t, err, covariance.ErrNilMatrix)
}
