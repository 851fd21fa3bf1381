package model

// Snapshot is the canonical per-company record after fallback
// resolution. Calculators read only this shape. It is constructed whole
// by the normalizer and never mutated afterward.
type Snapshot struct {
	Ticker      string
	DisplayName string
	Industry    string

	MarketCapUSD *float64

	Price     *float64
	EPS       *float64
	EPSSource string // "trailing" or "forward"; diagnostics only

	GrowthPercent *float64 // whole percent, 15 = 15%

	TrailingPE *float64 // provider-supplied, if any

	AnnualRevenue []float64

	TotalDebt *float64 // aggregate, or summed long- plus short-term
	Equity    *float64
}
