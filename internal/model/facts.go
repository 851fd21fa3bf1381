package model

// RawFinancialFacts is one company's facts exactly as received from a
// provider, before any fallback resolution. Absent numeric fields are
// nil; absent strings are empty. Providers are unreliable: any field may
// be missing, stale, or zero.
type RawFinancialFacts struct {
	Ticker      string
	DisplayName string
	Industry    string

	MarketCapUSD *float64

	CurrentPrice       *float64 // live price, preferred
	RegularMarketPrice *float64 // last regular-session price, fallback

	TrailingEPS *float64
	ForwardEPS  *float64

	FiveYearGrowthEstimate *float64 // decimal fraction, 0.15 = 15%

	TrailingPE *float64

	// AnnualRevenue is ordered most-recent first, one entry per fiscal
	// year. A short series is a legitimate state, not an error.
	AnnualRevenue []float64

	TotalDebt     *float64
	LongTermDebt  *float64
	ShortTermDebt *float64

	TotalStockholderEquity *float64
}

// Float returns a pointer to v, for populating optional numeric fields.
func Float(v float64) *float64 { return &v }
