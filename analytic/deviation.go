package analytic

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/tuneinsight/analytic/utils/sampling"
)

// Deviation summarizes the pointwise difference between two expressions
// sampled at the same points.
type Deviation struct {
	// RMS is the root mean square of the differences.
	RMS float64
	// Max is the largest absolute difference.
	Max float64
	// Mean is the mean absolute difference.
	Mean float64
}

func (d Deviation) String() string {
	return fmt.Sprintf("rms=%g max=%g mean=%g", d.RMS, d.Max, d.Mean)
}

// Deviate samples f and g at n points of [lo, hi] drawn from prng and
// returns the statistics of their differences. n must be positive. It complements Distance for
// expressions, such as rationals, whose difference has no closed form integral.
func Deviate(f, g Expression, lo, hi float64, n int, prng sampling.PRNG) (d Deviation, err error) {

	if n < 1 {
		return d, fmt.Errorf("cannot Deviate: invalid number of samples %d", n)
	}

	xs, err := sampling.Float64s(prng, n, lo, hi)
	if err != nil {
		return d, fmt.Errorf("cannot Deviate: %w", err)
	}

	yf := make(stats.Float64Data, n)
	yg := make(stats.Float64Data, n)
	diff := make(stats.Float64Data, n)

	for i, x := range xs {
		yf[i], yg[i] = f.Evaluate(x), g.Evaluate(x)
		diff[i] = math.Abs(yf[i] - yg[i])
	}

	euclidean, err := stats.EuclideanDistance(yf, yg)
	if err != nil {
		return d, fmt.Errorf("cannot Deviate: %w", err)
	}
	d.RMS = euclidean / math.Sqrt(float64(n))

	if d.Max, err = stats.Max(diff); err != nil {
		return d, fmt.Errorf("cannot Deviate: %w", err)
	}

	if d.Mean, err = stats.Mean(diff); err != nil {
		return d, fmt.Errorf("cannot Deviate: %w", err)
	}

	return
}
