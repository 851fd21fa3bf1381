// Package calculator derives financial metrics from normalized
// snapshots. Every calculator is a total function: it returns a tagged
// result, never panics, and never evaluates a division or fractional
// power without a preceding guard.
package calculator

import "FinCompare/internal/model"

// ComputeMetrics derives every metric from one snapshot. The result is
// always fully populated, with missing reasons where inputs were absent
// or invalid. Per-company computations are independent and safe to run
// in parallel.
func ComputeMetrics(snap model.Snapshot) model.ComputedMetrics {
	return model.ComputedMetrics{
		SalesGrowth1Yr: CalculateSalesGrowth1Yr(snap.AnnualRevenue),
		SalesGrowth5Yr: CalculateSalesGrowth5Yr(snap.AnnualRevenue),
		DebtToEquity:   CalculateDebtToEquity(snap.TotalDebt, snap.Equity),
		PEGRatio:       CalculatePEG(snap.Price, snap.EPS, snap.GrowthPercent),
		TrailingPE:     CalculateTrailingPE(snap.TrailingPE, snap.Price, snap.EPS),
	}
}
