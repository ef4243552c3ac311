package polyfit_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lsqfit/matrix"
	"github.com/katalvlaran/lsqfit/polyfit"
)

// TestFit_ExactInterpolation: n points with distinct x and degree n-1 form a
// square system whose solution passes through every point.
func TestFit_ExactInterpolation(t *testing.T) {
	cases := map[string][]polyfit.Point{
		"symmetric x": {{X: -1, Y: 2}, {X: 0, Y: 1}, {X: 1, Y: 4}},
		"cubic":       {{X: -1, Y: 1}, {X: 0, Y: 3}, {X: 1, Y: -2}, {X: 2, Y: 5}},
		"quartic":     {{X: 0, Y: 1}, {X: 1, Y: 3}, {X: 2, Y: 11}, {X: 3, Y: 31}, {X: 4, Y: 69}},
		"two points":  {{X: 0.5, Y: 10.01}, {X: 2.5, Y: 5.94}},
	}

	for name, pts := range cases {
		pts := pts
		t.Run(name, func(t *testing.T) {
			p, err := polyfit.Fit(pts, len(pts)-1)
			require.NoError(t, err)
			require.Len(t, p, len(pts))
			for _, pt := range pts {
				assert.InDelta(t, pt.Y, p.Eval(pt.X), 1e-9, "residual at x=%g", pt.X)
			}
		})
	}
}

func TestFit_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := polyfit.Fit(demoPoints(), 2)
	require.NoError(t, err)
	for run := 0; run < 10; run++ {
		again, err := polyfit.Fit(demoPoints(), 2)
		require.NoError(t, err)
		assert.Equal(t, first, again, "run %d must be bit-identical", run)
	}
}

func TestFit_DegreeZeroIsMean(t *testing.T) {
	t.Parallel()

	pts := demoPoints()
	_, ys := polyfit.XY(pts)

	p, err := polyfit.Fit(pts, 0)
	require.NoError(t, err)
	require.Len(t, p, 1)
	assert.InDelta(t, stat.Mean(ys, nil), p[0], 1e-12)

	p, err = polyfit.Fit([]polyfit.Point{{X: 3, Y: -4}}, 0)
	require.NoError(t, err)
	assert.Equal(t, -4.0, p[0], "a single point is its own mean")
}

// TestFit_DuplicateX: two points sharing x can not pin down a line.
func TestFit_DuplicateX(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		pts    []polyfit.Point
		degree int
	}{
		{[]polyfit.Point{{X: 1, Y: 2}, {X: 1, Y: 3}}, 1},
		{[]polyfit.Point{{X: 2, Y: 1}, {X: 2, Y: 3}, {X: 2, Y: 5}}, 1},
		{[]polyfit.Point{{X: 0.1, Y: 1}, {X: 0.1, Y: 2}}, 1},
		{[]polyfit.Point{{X: 2.9, Y: 1}, {X: 2.9, Y: 2}}, 1},
		{[]polyfit.Point{{X: 0.3, Y: 1}, {X: 0.3, Y: 2}, {X: 1.7, Y: 0}}, 2},
	} {
		p, err := polyfit.Fit(tc.pts, tc.degree)
		assert.ErrorIs(t, err, polyfit.ErrSingular, "points %v degree %d", tc.pts, tc.degree)
		assert.ErrorIs(t, err, matrix.ErrSingular)
		assert.Nil(t, p)
	}

	p, err := polyfit.Fit([]polyfit.Point{{X: 0.1, Y: 1}, {X: 0.1, Y: 2}}, 0)
	require.NoError(t, err, "a constant needs only one distinct x")
	assert.InDelta(t, 1.5, p[0], 1e-15)
}

func TestFit_RejectsBadInput(t *testing.T) {
	t.Parallel()

	_, err := polyfit.Fit(nil, 1)
	assert.ErrorIs(t, err, polyfit.ErrInvalidInput)

	_, err = polyfit.Fit(demoPoints(), -1)
	assert.ErrorIs(t, err, polyfit.ErrInvalidDegree)
	assert.Contains(t, err.Error(), "degree -1")
}

// TestFit_NonFiniteNeverLeaks: with the builder policy off, the solver
// still refuses to return NaN coefficients.
func TestFit_NonFiniteNeverLeaks(t *testing.T) {
	t.Parallel()

	pts := []polyfit.Point{{X: 1, Y: math.NaN()}, {X: 2, Y: 3}}
	p, err := polyfit.Fit(pts, 1, polyfit.WithValidateNaNInf(false))
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
	assert.Nil(t, p)
}

// TestFit_DemoLine compares the degree-1 fit with the closed-form simple
// linear regression computed independently by gonum.
func TestFit_DemoLine(t *testing.T) {
	pts := demoPoints()
	xs, ys := polyfit.XY(pts)

	p, err := polyfit.Fit(pts, 1)
	require.NoError(t, err)
	require.Len(t, p, 2)

	assert.InDelta(t, 10.777, p[0], 0.01, "intercept")
	assert.InDelta(t, -1.986, p[1], 0.01, "slope")

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	assert.InDelta(t, alpha, p[0], 1e-9)
	assert.InDelta(t, beta, p[1], 1e-9)
}

func TestFit_DemoQuadratic(t *testing.T) {
	t.Parallel()

	p, err := polyfit.Fit(demoPoints(), 2)
	require.NoError(t, err)
	assert.InDelta(t, 11.502, p[0], 1e-9)
	assert.InDelta(t, -3.228857142857143, p[1], 1e-9)
	assert.InDelta(t, 0.414285714285714, p[2], 1e-9)
}

func TestFit_PivotTolerance(t *testing.T) {
	t.Parallel()

	_, err := polyfit.Fit(demoPoints(), 1, polyfit.WithPivotTolerance(1e6))
	assert.ErrorIs(t, err, polyfit.ErrSingular, "every pivot is below an absurd tolerance")

	assert.Panics(t, func() { polyfit.WithPivotTolerance(-1) })
	assert.Panics(t, func() { polyfit.WithMaxWorkers(-1) })
}

func TestFitDegrees_MatchesSequentialFits(t *testing.T) {
	t.Parallel()

	degrees := []int{2, 0, 1, 3}
	got, err := polyfit.FitDegrees(context.Background(), demoPoints(), degrees)
	require.NoError(t, err)
	require.Len(t, got, len(degrees))

	for i, d := range degrees {
		want, err := polyfit.Fit(demoPoints(), d)
		require.NoError(t, err)
		assert.Equal(t, want, got[i], "degree %d", d)
	}

	limited, err := polyfit.FitDegrees(context.Background(), demoPoints(), degrees, polyfit.WithMaxWorkers(1))
	require.NoError(t, err)
	assert.Equal(t, got, limited)
}

func TestFitDegrees_Errors(t *testing.T) {
	t.Parallel()

	dup := []polyfit.Point{{X: 1, Y: 2}, {X: 1, Y: 3}}
	_, err := polyfit.FitDegrees(context.Background(), dup, []int{0, 1})
	assert.ErrorIs(t, err, polyfit.ErrSingular)

	_, err = polyfit.FitDegrees(context.Background(), demoPoints(), []int{1, math.MaxInt})
	assert.ErrorIs(t, err, polyfit.ErrSingular)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = polyfit.FitDegrees(ctx, demoPoints(), []int{1, 2})
	assert.ErrorIs(t, err, context.Canceled)

	out, err := polyfit.FitDegrees(context.Background(), demoPoints(), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

// qrFit solves the same least-squares problem through a QR factorisation
// of the Vandermonde matrix, bypassing the normal equations entirely.
func qrFit(t *testing.T, pts []polyfit.Point, degree int) []float64 {
	t.Helper()
	xs, ys := polyfit.XY(pts)
	a := mat.NewDense(len(xs), degree+1, nil)
	for i, x := range xs {
		p := 1.0
		for j := 0; j <= degree; j++ {
			a.Set(i, j, p)
			p *= x
		}
	}

	var qr mat.QR
	qr.Factorize(a)
	var c mat.VecDense
	require.NoError(t, qr.SolveVecTo(&c, false, mat.NewVecDense(len(ys), ys)))

	return c.RawVector().Data
}

func TestFit_AgreesWithQR(t *testing.T) {
	t.Parallel()

	for degree := 0; degree <= 3; degree++ {
		want := qrFit(t, demoPoints(), degree)
		got, err := polyfit.Fit(demoPoints(), degree)
		require.NoError(t, err)
		require.Len(t, got, len(want))
		for i := range want {
			assert.InDelta(t, want[i], got[i], 1e-8, "degree %d coefficient %d", degree, i)
		}
	}
}
