package calculator

import (
	"math"

	"FinCompare/internal/model"
)

// CalculateSalesGrowth1Yr computes year-over-year revenue growth from a
// most-recent-first annual series.
func CalculateSalesGrowth1Yr(revenue []float64) model.MetricValue {
	if len(revenue) < 2 {
		return model.Missing(model.InsufficientHistory)
	}
	latest, prior := revenue[0], revenue[1]
	if prior == 0 {
		return model.Missing(model.ZeroOrNegativeBase)
	}
	return model.Numeric((latest - prior) / prior)
}

// CalculateSalesGrowth5Yr computes the five-year compound annual growth
// rate from a most-recent-first annual series. A zero base with positive
// latest revenue yields +Inf, the unbounded-growth sentinel.
func CalculateSalesGrowth5Yr(revenue []float64) model.MetricValue {
	if len(revenue) < 5 {
		return model.Missing(model.InsufficientHistory)
	}
	latest, base := revenue[0], revenue[4]
	switch {
	case base > 0 && latest >= 0:
		return model.Numeric(math.Pow(latest/base, 1.0/5.0) - 1)
	case base == 0 && latest > 0:
		return model.Numeric(math.Inf(1))
	default:
		// Fractional powers of non-positive ratios are undefined; never
		// attempt the computation.
		return model.Missing(model.ZeroOrNegativeBase)
	}
}
