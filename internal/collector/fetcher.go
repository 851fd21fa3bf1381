package collector

import "FinCompare/internal/model"

// Fetcher defines the interface for fetching per-company financial facts.
type Fetcher interface {
	// FetchFacts returns one company's raw facts. Providers are
	// unreliable; any field of the result may be absent.
	FetchFacts(ticker string) (model.RawFinancialFacts, error)
	Name() string
}
