package collector

import (
	"log"

	"FinCompare/internal/calculator"
	"FinCompare/internal/model"
	"FinCompare/internal/normalizer"
)

// Collector orchestrates data fetching and metric computation.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Collect fetches raw facts for each ticker and runs them through the
// normalize and compute stages. A failed fetch does not abort the run:
// the ticker keeps its column and every metric reads as unavailable.
func (c *Collector) Collect(tickers []string) []model.CompanyReport {
	reports := make([]model.CompanyReport, 0, len(tickers))
	for _, t := range tickers {
		facts, err := c.Fetcher.FetchFacts(t)
		if err != nil {
			log.Printf("[WARN] fetch %s failed: %v, reporting without data", t, err)
			facts = model.RawFinancialFacts{Ticker: t}
		}
		snap := normalizer.Normalize(facts)
		reports = append(reports, model.CompanyReport{
			Snapshot: snap,
			Metrics:  calculator.ComputeMetrics(snap),
		})
	}
	return reports
}
