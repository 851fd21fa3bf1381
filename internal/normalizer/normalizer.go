// Package normalizer resolves provider-level fallback chains into the
// canonical snapshot the calculators consume. It performs no arithmetic
// beyond unit conversion and has no side effects.
package normalizer

import "FinCompare/internal/model"

// Normalize maps one raw provider record onto a canonical snapshot.
// Identical input always yields an identical snapshot.
func Normalize(raw model.RawFinancialFacts) model.Snapshot {
	snap := model.Snapshot{
		Ticker:        raw.Ticker,
		DisplayName:   raw.DisplayName,
		Industry:      raw.Industry,
		MarketCapUSD:  raw.MarketCapUSD,
		TrailingPE:    raw.TrailingPE,
		AnnualRevenue: raw.AnnualRevenue,
	}

	// Live price preferred, last regular-session price as fallback.
	switch {
	case raw.CurrentPrice != nil:
		snap.Price = raw.CurrentPrice
	case raw.RegularMarketPrice != nil:
		snap.Price = raw.RegularMarketPrice
	}

	// Trailing EPS preferred, forward as fallback. The chosen source is
	// recorded for diagnostics and does not affect any formula.
	switch {
	case raw.TrailingEPS != nil:
		snap.EPS = raw.TrailingEPS
		snap.EPSSource = "trailing"
	case raw.ForwardEPS != nil:
		snap.EPS = raw.ForwardEPS
		snap.EPSSource = "forward"
	}

	// Providers quote the growth estimate as a decimal fraction; the
	// valuation formulas expect a whole percent.
	if raw.FiveYearGrowthEstimate != nil {
		snap.GrowthPercent = model.Float(*raw.FiveYearGrowthEstimate * 100)
	}

	snap.TotalDebt = resolveDebt(raw)
	snap.Equity = raw.TotalStockholderEquity

	return snap
}

// resolveDebt prefers the aggregate total-debt figure; otherwise it sums
// the long- and short-term components, treating a missing component as
// zero only when the other is present. Both absent means debt is
// unknown, never zero.
func resolveDebt(raw model.RawFinancialFacts) *float64 {
	if raw.TotalDebt != nil {
		return raw.TotalDebt
	}
	if raw.LongTermDebt == nil && raw.ShortTermDebt == nil {
		return nil
	}
	var sum float64
	if raw.LongTermDebt != nil {
		sum += *raw.LongTermDebt
	}
	if raw.ShortTermDebt != nil {
		sum += *raw.ShortTermDebt
	}
	return model.Float(sum)
}
