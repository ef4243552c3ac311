package polyfit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lsqfit/polynomial"
)

// Summary describes how well a polynomial explains a point set.
type Summary struct {
	Degree       int                   `json:"degree" yaml:"degree"`
	Coefficients polynomial.Polynomial `json:"coefficients" yaml:"coefficients"`
	Residuals    []float64             `json:"residuals" yaml:"residuals"` // y_k − p(x_k), in point order
	SSE          float64               `json:"sse" yaml:"sse"`             // Σ residual²
	RMSE         float64               `json:"rmse" yaml:"rmse"`           // √(SSE/N)
	RSquared     float64               `json:"r_squared" yaml:"r_squared"` // NaN when every y is equal
	MeanY        float64               `json:"mean_y" yaml:"mean_y"`
}

// Summarize evaluates p at every point and reports residual statistics.
// Returns ErrInvalidInput for an empty point set.
func Summarize(points []Point, p polynomial.Polynomial) (Summary, error) {
	if len(points) == 0 {
		return Summary{}, fitErrorf(opSummarize, fmt.Errorf("no points: %w", ErrInvalidInput))
	}

	xs, ys := XY(points)
	est := p.EvalAll(xs)

	s := Summary{
		Degree:       p.Degree(),
		Coefficients: p.Clone(),
		Residuals:    make([]float64, len(points)),
		MeanY:        stat.Mean(ys, nil),
	}
	for i := range ys {
		r := ys[i] - est[i]
		s.Residuals[i] = r
		s.SSE += r * r
	}
	s.RMSE = math.Sqrt(s.SSE / float64(len(points)))
	s.RSquared = rSquared(est, ys)

	return s, nil
}

// rSquared is stat.RSquaredFrom, except that a zero-variance y gives NaN
// rather than whatever 0/0 happens to round to.
func rSquared(est, ys []float64) float64 {
	if len(ys) < 2 || stat.Variance(ys, nil) == 0 {
		return math.NaN()
	}

	return stat.RSquaredFrom(est, ys, nil)
}
