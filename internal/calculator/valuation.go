package calculator

import "FinCompare/internal/model"

// CalculateTrailingPE returns the provider-supplied trailing P/E when
// available, otherwise price divided by EPS. The ratio is never computed
// from non-positive earnings.
func CalculateTrailingPE(providerPE, price, eps *float64) model.MetricValue {
	if providerPE != nil {
		return model.Numeric(*providerPE)
	}
	if eps != nil && *eps <= 0 {
		return model.Missing(model.NonPositiveInput)
	}
	if price != nil && eps != nil {
		return model.Numeric(*price / *eps)
	}
	return model.Missing(model.FieldUnavailable)
}

// CalculatePEG computes (price/EPS) / growth, with growth as a whole
// percent (15 means 15%). All three inputs must be present and strictly
// positive; a present-but-non-positive input is NON_POSITIVE_INPUT, a
// missing one FIELD_UNAVAILABLE.
func CalculatePEG(price, eps, growthPercent *float64) model.MetricValue {
	if price == nil || eps == nil || growthPercent == nil {
		return model.Missing(model.FieldUnavailable)
	}
	if *price <= 0 || *eps <= 0 || *growthPercent <= 0 {
		return model.Missing(model.NonPositiveInput)
	}
	return model.Numeric((*price / *eps) / *growthPercent)
}
