package service

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// trendSlope fits a least-squares line through the series (x = month index)
// and returns its slope. Series shorter than two points have no trend.
func trendSlope(series []float64) float64 {
	if len(series) < 2 {
		return 0
	}
	xs := make([]float64, len(series))
	for i := range xs {
		xs[i] = float64(i)
	}
	_, beta := stat.LinearRegression(xs, series, nil, false)
	return beta
}

func mean(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	return stat.Mean(series, nil)
}

func meanAbs(series []float64) float64 {
	abs := make([]float64, len(series))
	for i, v := range series {
		abs[i] = math.Abs(v)
	}
	return mean(abs)
}

// recentMean averages the last n entries. A series shorter than n yields its
// final entry.
func recentMean(series []float64, n int) float64 {
	switch {
	case len(series) == 0:
		return 0
	case len(series) < n:
		return series[len(series)-1]
	}
	return mean(series[len(series)-n:])
}

func clamp(score float64) float64 {
	return math.Min(math.Max(score, 0), 100)
}
