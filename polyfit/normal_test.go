package polyfit_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lsqfit/matrix"
	"github.com/katalvlaran/lsqfit/polyfit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// demoPoints is the classic five-point data set used throughout the tests.
func demoPoints() []polyfit.Point {
	return []polyfit.Point{
		{X: 0.5, Y: 10.01},
		{X: 1.0, Y: 8.71},
		{X: 1.5, Y: 7.41},
		{X: 2.0, Y: 6.92},
		{X: 2.5, Y: 5.94},
	}
}

// TestBuildNormal_Layout checks every entry of a small system by hand:
// x = 1,2,3 gives S = 3, 6, 14, 36, 98 and y = 2,3,5 gives b = 10, 23, 59.
func TestBuildNormal_Layout(t *testing.T) {
	pts := []polyfit.Point{{X: 1, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 5}}

	aug, err := polyfit.BuildNormal(pts, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, aug.Rows())
	assert.Equal(t, 4, aug.Cols())
	assert.Equal(t, [][]float64{
		{3, 6, 14, 10},
		{6, 14, 36, 23},
		{14, 36, 98, 59},
	}, aug.ToRows())

	ok, err := matrix.IsSymmetricBlock(aug, 0)
	require.NoError(t, err)
	assert.True(t, ok, "normal matrix must be symmetric")
}

func TestBuildNormal_DegreeZero(t *testing.T) {
	t.Parallel()

	aug, err := polyfit.BuildNormal([]polyfit.Point{{X: 0, Y: 1}, {X: 2, Y: 5}}, 0)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2, 6}}, aug.ToRows(), "1×2: point count and Σy")
}

func TestBuildNormal_ShapeFollowsDegree(t *testing.T) {
	t.Parallel()

	for degree := 0; degree <= 6; degree++ {
		aug, err := polyfit.BuildNormal(demoPoints(), degree)
		require.NoError(t, err)
		assert.Equal(t, degree+1, aug.Rows())
		assert.Equal(t, degree+2, aug.Cols())
		assert.NoError(t, matrix.ValidateAugmented(aug))
	}
}

func TestBuildNormal_InputErrors(t *testing.T) {
	t.Parallel()

	_, err := polyfit.BuildNormal(nil, 1)
	assert.ErrorIs(t, err, polyfit.ErrInvalidInput)

	_, err = polyfit.BuildNormal([]polyfit.Point{}, 0)
	assert.ErrorIs(t, err, polyfit.ErrInvalidInput)

	_, err = polyfit.BuildNormal(demoPoints(), -1)
	assert.ErrorIs(t, err, polyfit.ErrInvalidDegree)

	_, err = polyfit.BuildNormal([]polyfit.Point{{X: 1, Y: math.NaN()}}, 0)
	assert.ErrorIs(t, err, polyfit.ErrInvalidInput)

	_, err = polyfit.BuildNormal([]polyfit.Point{{X: math.Inf(1), Y: 1}}, 0)
	assert.ErrorIs(t, err, polyfit.ErrInvalidInput)
}

// TestBuildNormal_ErrorPriority: an empty set is reported before a bad degree.
func TestBuildNormal_ErrorPriority(t *testing.T) {
	t.Parallel()

	_, err := polyfit.BuildNormal(nil, -1)
	assert.ErrorIs(t, err, polyfit.ErrInvalidInput)
	assert.NotErrorIs(t, err, polyfit.ErrInvalidDegree)
}

func TestBuildNormal_Overflow(t *testing.T) {
	t.Parallel()

	pts := []polyfit.Point{{X: 1e200, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 3}}
	_, err := polyfit.BuildNormal(pts, 2)
	assert.ErrorIs(t, err, matrix.ErrNaNInf, "x^4 overflows")

	aug, err := polyfit.BuildNormal(pts, 2, polyfit.WithValidateNaNInf(false))
	require.NoError(t, err, "policy disabled: overflow is left in the matrix")
	assert.ErrorIs(t, matrix.ValidateFinite(aug), matrix.ErrNaNInf)
}

// TestBuildNormal_DegreeBeyondData: a degree the data can not determine is
// rejected before the power sums are allocated, however large it is.
func TestBuildNormal_DegreeBeyondData(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		pts    []polyfit.Point
		degree int
	}{
		"single point, max int":  {[]polyfit.Point{{X: 1, Y: 1}}, math.MaxInt},
		"demo, 1<<40":            {demoPoints(), 1 << 40},
		"demo, one too many":     {demoPoints(), len(demoPoints())},
		"repeated x, quadratic":  {[]polyfit.Point{{X: 0.1, Y: 1}, {X: 0.1, Y: 2}, {X: 0.7, Y: 3}}, 2},
		"signed zeros are equal": {[]polyfit.Point{{X: 0, Y: 1}, {X: math.Copysign(0, -1), Y: 2}}, 1},
	}
	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			aug, err := polyfit.BuildNormal(tc.pts, tc.degree)
			assert.ErrorIs(t, err, polyfit.ErrSingular)
			assert.Nil(t, aug)
		})
	}

	_, err := polyfit.BuildNormal([]polyfit.Point{{X: math.NaN(), Y: 1}}, math.MaxInt)
	assert.ErrorIs(t, err, polyfit.ErrInvalidInput, "bad coordinates are reported first")
}

func TestBuildNormal_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	pts := demoPoints()
	_, err := polyfit.BuildNormal(pts, 3)
	require.NoError(t, err)
	assert.Equal(t, demoPoints(), pts)
}

func TestPointsAndXY(t *testing.T) {
	t.Parallel()

	pts, err := polyfit.Points([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, []polyfit.Point{{X: 1, Y: 3}, {X: 2, Y: 4}}, pts)

	xs, ys := polyfit.XY(pts)
	assert.Equal(t, []float64{1, 2}, xs)
	assert.Equal(t, []float64{3, 4}, ys)

	_, err = polyfit.Points([]float64{1}, nil)
	assert.ErrorIs(t, err, polyfit.ErrInvalidInput)
}

// TestBuildNormal_SolutionSatisfiesSystem: the fitted coefficients solve
// the normal equations they came from.
func TestBuildNormal_SolutionSatisfiesSystem(t *testing.T) {
	t.Parallel()

	for degree := 0; degree <= 3; degree++ {
		aug, err := polyfit.BuildNormal(demoPoints(), degree)
		require.NoError(t, err)
		p, err := polyfit.Fit(demoPoints(), degree)
		require.NoError(t, err)

		r, err := matrix.Residual(aug, p)
		require.NoError(t, err)
		for i, ri := range r {
			assert.InDelta(t, 0, ri, 1e-8, "degree %d row %d", degree, i)
		}
	}
}
