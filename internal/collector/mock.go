package collector

import (
	"fmt"

	"FinCompare/internal/model"
)

// MockFetcher serves a deterministic built-in universe of large caps for
// development and testing. No network access.
type MockFetcher struct {
	Facts map[string]model.RawFinancialFacts // optional override of the built-in universe
}

func NewMockFetcher() *MockFetcher { return &MockFetcher{} }

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchFacts(ticker string) (model.RawFinancialFacts, error) {
	universe := m.Facts
	if universe == nil {
		universe = mockUniverse
	}
	facts, ok := universe[ticker]
	if !ok {
		return model.RawFinancialFacts{}, fmt.Errorf("mock: unknown ticker %s", ticker)
	}
	return facts, nil
}

// mockUniverse holds raw facts for eight companies. The entries vary in
// which fields they populate, so every fallback chain in the normalizer
// gets exercised on a full default run: MSFT and JPM carry an aggregate
// total-debt figure, the rest split it into long- and short-term; JNJ
// and KO quote only a regular-market price; JPM supplies its own
// trailing P/E. Revenue series are most-recent first.
var mockUniverse = map[string]model.RawFinancialFacts{
	"AAPL": {
		Ticker:                 "AAPL",
		DisplayName:            "Apple Inc.",
		Industry:               "Technology",
		MarketCapUSD:           model.Float(2.8e12),
		CurrentPrice:           model.Float(175.50),
		TrailingEPS:            model.Float(6.13),
		FiveYearGrowthEstimate: model.Float(0.136),
		AnnualRevenue:          []float64{383.3e9, 354.9e9, 325.0e9, 270.0e9, 217.5e9},
		LongTermDebt:           model.Float(95.3e9),
		ShortTermDebt:          model.Float(10.4e9),
		TotalStockholderEquity: model.Float(62.15e9),
	},
	"MSFT": {
		Ticker:                 "MSFT",
		DisplayName:            "Microsoft Corp.",
		Industry:               "Technology",
		MarketCapUSD:           model.Float(2.4e12),
		CurrentPrice:           model.Float(330.20),
		TrailingEPS:            model.Float(9.81),
		FiveYearGrowthEstimate: model.Float(0.182),
		AnnualRevenue:          []float64{211.9e9, 192.6e9, 168.1e9, 143.0e9, 105.4e9},
		TotalDebt:              model.Float(164.9e9),
		TotalStockholderEquity: model.Float(206.2e9),
	},
	"AMZN": {
		Ticker:                 "AMZN",
		DisplayName:            "Amazon.com Inc.",
		Industry:               "E-commerce/Cloud",
		MarketCapUSD:           model.Float(1.5e12),
		CurrentPrice:           model.Float(145.20),
		TrailingEPS:            model.Float(2.90),
		FiveYearGrowthEstimate: model.Float(0.20),
		AnnualRevenue:          []float64{574.8e9, 508.7e9, 469.8e9, 386.1e9, 231.0e9},
		LongTermDebt:           model.Float(161.6e9),
		ShortTermDebt:          model.Float(30.2e9),
		TotalStockholderEquity: model.Float(201.9e9),
	},
	"GOOGL": {
		Ticker:                 "GOOGL",
		DisplayName:            "Alphabet Inc.",
		Industry:               "Technology",
		MarketCapUSD:           model.Float(1.8e12),
		CurrentPrice:           model.Float(140.10),
		TrailingEPS:            model.Float(5.80),
		FiveYearGrowthEstimate: model.Float(0.151),
		AnnualRevenue:          []float64{307.4e9, 287.3e9, 257.6e9, 222.9e9, 190.9e9},
		LongTermDebt:           model.Float(13.3e9),
		ShortTermDebt:          model.Float(0.9e9),
		TotalStockholderEquity: model.Float(283.4e9),
	},
	"TSLA": {
		Ticker:                 "TSLA",
		DisplayName:            "Tesla Inc.",
		Industry:               "Automotive",
		MarketCapUSD:           model.Float(700e9),
		CurrentPrice:           model.Float(250.50),
		TrailingEPS:            model.Float(3.12),
		FiveYearGrowthEstimate: model.Float(0.25),
		AnnualRevenue:          []float64{96.8e9, 74.5e9, 53.8e9, 31.5e9, 18.0e9},
		LongTermDebt:           model.Float(5.2e9),
		ShortTermDebt:          model.Float(4.2e9),
		TotalStockholderEquity: model.Float(62.6e9),
	},
	"JNJ": {
		Ticker:                 "JNJ",
		DisplayName:            "Johnson & Johnson",
		Industry:               "Healthcare",
		MarketCapUSD:           model.Float(400e9),
		RegularMarketPrice:     model.Float(160.30),
		TrailingEPS:            model.Float(9.92),
		FiveYearGrowthEstimate: model.Float(0.135),
		AnnualRevenue:          []float64{85.2e9, 82.7e9, 79.9e9, 71.9e9, 66.8e9},
		LongTermDebt:           model.Float(26.5e9),
		ShortTermDebt:          model.Float(5.5e9),
		TotalStockholderEquity: model.Float(71.0e9),
	},
	"KO": {
		Ticker:                 "KO",
		DisplayName:            "Coca-Cola Co",
		Industry:               "Beverages",
		MarketCapUSD:           model.Float(260e9),
		RegularMarketPrice:     model.Float(59.80),
		TrailingEPS:            model.Float(2.47),
		FiveYearGrowthEstimate: model.Float(0.087),
		AnnualRevenue:          []float64{45.75e9, 43.16e9, 42.0e9, 39.5e9, 37.6e9},
		LongTermDebt:           model.Float(36.4e9),
		ShortTermDebt:          model.Float(16.9e9),
		TotalStockholderEquity: model.Float(26.0e9),
	},
	"JPM": {
		Ticker:                 "JPM",
		DisplayName:            "JPMorgan Chase & Co.",
		Industry:               "Financial Services",
		MarketCapUSD:           model.Float(480e9),
		CurrentPrice:           model.Float(165.80),
		TrailingEPS:            model.Float(16.25),
		FiveYearGrowthEstimate: model.Float(0.068),
		TrailingPE:             model.Float(10.20),
		AnnualRevenue:          []float64{158.1e9, 145.0e9, 128.7e9, 119.5e9, 107.6e9},
		TotalDebt:              model.Float(321.5e9),
		TotalStockholderEquity: model.Float(292.3e9),
	},
}
