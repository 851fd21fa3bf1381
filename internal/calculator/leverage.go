package calculator

import (
	"math"

	"FinCompare/internal/model"
)

// CalculateDebtToEquity computes total debt over stockholder equity.
// Zero equity with debt present yields +Inf, including when debt is also
// zero. Negative equity yields a negative ratio, passed through
// unclamped.
func CalculateDebtToEquity(totalDebt, equity *float64) model.MetricValue {
	if totalDebt == nil || equity == nil {
		return model.Missing(model.FieldUnavailable)
	}
	if *equity == 0 {
		return model.Numeric(math.Inf(1))
	}
	return model.Numeric(*totalDebt / *equity)
}
