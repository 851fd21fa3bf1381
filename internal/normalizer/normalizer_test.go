package normalizer

import (
	"reflect"
	"testing"

	"FinCompare/internal/model"
)

func TestNormalize_PriceFallback(t *testing.T) {
	tests := []struct {
		name    string
		current *float64
		regular *float64
		want    *float64
	}{
		{"live preferred", model.Float(101.5), model.Float(100.0), model.Float(101.5)},
		{"regular fallback", nil, model.Float(100.0), model.Float(100.0)},
		{"both absent", nil, nil, nil},
		{"live zero still wins", model.Float(0), model.Float(100.0), model.Float(0)},
	}
	for _, tt := range tests {
		snap := Normalize(model.RawFinancialFacts{
			Ticker:             "TST",
			CurrentPrice:       tt.current,
			RegularMarketPrice: tt.regular,
		})
		if tt.want == nil {
			if snap.Price != nil {
				t.Errorf("%s: expected absent price, got %v", tt.name, *snap.Price)
			}
			continue
		}
		if snap.Price == nil {
			t.Errorf("%s: expected price %v, got absent", tt.name, *tt.want)
			continue
		}
		if *snap.Price != *tt.want {
			t.Errorf("%s: expected price %v, got %v", tt.name, *tt.want, *snap.Price)
		}
	}
}

func TestNormalize_EPSFallback(t *testing.T) {
	both := Normalize(model.RawFinancialFacts{
		TrailingEPS: model.Float(6.1),
		ForwardEPS:  model.Float(7.2),
	})
	if both.EPS == nil || *both.EPS != 6.1 {
		t.Errorf("expected trailing EPS 6.1 preferred, got %v", both.EPS)
	}
	if both.EPSSource != "trailing" {
		t.Errorf("expected source trailing, got %q", both.EPSSource)
	}

	forwardOnly := Normalize(model.RawFinancialFacts{ForwardEPS: model.Float(7.2)})
	if forwardOnly.EPS == nil || *forwardOnly.EPS != 7.2 {
		t.Errorf("expected forward EPS 7.2 fallback, got %v", forwardOnly.EPS)
	}
	if forwardOnly.EPSSource != "forward" {
		t.Errorf("expected source forward, got %q", forwardOnly.EPSSource)
	}

	neither := Normalize(model.RawFinancialFacts{})
	if neither.EPS != nil {
		t.Errorf("expected absent EPS, got %v", *neither.EPS)
	}
	if neither.EPSSource != "" {
		t.Errorf("expected empty source, got %q", neither.EPSSource)
	}
}

func TestNormalize_DebtAssembly(t *testing.T) {
	tests := []struct {
		name  string
		total *float64
		lt    *float64
		st    *float64
		want  *float64
	}{
		{"aggregate wins", model.Float(110), model.Float(90), model.Float(15), model.Float(110)},
		{"sum of components", nil, model.Float(90), model.Float(15), model.Float(105)},
		{"long-term only", nil, model.Float(90), nil, model.Float(90)},
		{"short-term only", nil, nil, model.Float(15), model.Float(15)},
		{"both absent stays unknown", nil, nil, nil, nil},
		{"aggregate zero is a real zero", model.Float(0), nil, nil, model.Float(0)},
	}
	for _, tt := range tests {
		snap := Normalize(model.RawFinancialFacts{
			TotalDebt:     tt.total,
			LongTermDebt:  tt.lt,
			ShortTermDebt: tt.st,
		})
		switch {
		case tt.want == nil && snap.TotalDebt != nil:
			t.Errorf("%s: expected unknown debt, got %v", tt.name, *snap.TotalDebt)
		case tt.want != nil && snap.TotalDebt == nil:
			t.Errorf("%s: expected debt %v, got unknown", tt.name, *tt.want)
		case tt.want != nil && *snap.TotalDebt != *tt.want:
			t.Errorf("%s: expected debt %v, got %v", tt.name, *tt.want, *snap.TotalDebt)
		}
	}
}

func TestNormalize_GrowthEstimateToWholePercent(t *testing.T) {
	snap := Normalize(model.RawFinancialFacts{FiveYearGrowthEstimate: model.Float(0.15)})
	if snap.GrowthPercent == nil || *snap.GrowthPercent != 15 {
		t.Errorf("expected growth 15, got %v", snap.GrowthPercent)
	}

	absent := Normalize(model.RawFinancialFacts{})
	if absent.GrowthPercent != nil {
		t.Errorf("expected absent growth, got %v", *absent.GrowthPercent)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	raw := model.RawFinancialFacts{
		Ticker:                 "AAPL",
		DisplayName:            "Apple Inc.",
		Industry:               "Technology",
		MarketCapUSD:           model.Float(2.8e12),
		CurrentPrice:           model.Float(175.5),
		TrailingEPS:            model.Float(6.13),
		FiveYearGrowthEstimate: model.Float(0.136),
		AnnualRevenue:          []float64{383.3e9, 354.9e9},
		LongTermDebt:           model.Float(95.3e9),
		ShortTermDebt:          model.Float(10.4e9),
		TotalStockholderEquity: model.Float(62.15e9),
	}
	first := Normalize(raw)
	second := Normalize(raw)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("normalization not idempotent: %+v vs %+v", first, second)
	}
}
