package calculator

import (
	"math"
	"testing"

	"FinCompare/internal/model"
)

func TestCalculateTrailingPE_Boundaries(t *testing.T) {
	tests := []struct {
		name       string
		providerPE *float64
		price      *float64
		eps        *float64
		want       float64
		reason     model.MissingReason
	}{
		{"provider value wins", model.Float(28.6), model.Float(175.5), model.Float(6.13), 28.6, ""},
		{"provider wins over bad eps", model.Float(12.4), model.Float(100), model.Float(-2), 12.4, ""},
		{"computed from price and eps", nil, model.Float(150), model.Float(5), 30, ""},
		{"negative eps never divided", nil, model.Float(100), model.Float(-2), 0, model.NonPositiveInput},
		{"zero eps never divided", nil, model.Float(100), model.Float(0), 0, model.NonPositiveInput},
		{"negative eps without price", nil, nil, model.Float(-2), 0, model.NonPositiveInput},
		{"price missing", nil, nil, model.Float(5), 0, model.FieldUnavailable},
		{"eps missing", nil, model.Float(150), nil, 0, model.FieldUnavailable},
		{"everything missing", nil, nil, nil, 0, model.FieldUnavailable},
	}
	for _, tt := range tests {
		got := CalculateTrailingPE(tt.providerPE, tt.price, tt.eps)
		if tt.reason != "" {
			if got.Valid() || got.Reason != tt.reason {
				t.Errorf("%s: expected reason %s, got %+v", tt.name, tt.reason, got)
			}
			continue
		}
		if !got.Valid() {
			t.Errorf("%s: expected %v, got reason %s", tt.name, tt.want, got.Reason)
			continue
		}
		if math.Abs(got.Value-tt.want) > 1e-9 {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got.Value)
		}
	}
}

func TestCalculatePEG_Boundaries(t *testing.T) {
	tests := []struct {
		name   string
		price  *float64
		eps    *float64
		growth *float64
		want   float64
		reason model.MissingReason
	}{
		{"fair value", model.Float(150), model.Float(5), model.Float(30), 1.0, ""},
		{"whole percent convention", model.Float(150), model.Float(5), model.Float(15), 2.0, ""},
		{"growth missing", model.Float(150), model.Float(5), nil, 0, model.FieldUnavailable},
		{"price missing", nil, model.Float(5), model.Float(15), 0, model.FieldUnavailable},
		{"eps missing", model.Float(150), nil, model.Float(15), 0, model.FieldUnavailable},
		{"zero price", model.Float(0), model.Float(5), model.Float(15), 0, model.NonPositiveInput},
		{"negative eps", model.Float(100), model.Float(-2), model.Float(15), 0, model.NonPositiveInput},
		{"zero growth", model.Float(150), model.Float(5), model.Float(0), 0, model.NonPositiveInput},
		{"negative growth", model.Float(150), model.Float(5), model.Float(-4), 0, model.NonPositiveInput},
	}
	for _, tt := range tests {
		got := CalculatePEG(tt.price, tt.eps, tt.growth)
		if tt.reason != "" {
			if got.Valid() || got.Reason != tt.reason {
				t.Errorf("%s: expected reason %s, got %+v", tt.name, tt.reason, got)
			}
			continue
		}
		if !got.Valid() {
			t.Errorf("%s: expected %v, got reason %s", tt.name, tt.want, got.Reason)
			continue
		}
		if math.Abs(got.Value-tt.want) > 1e-9 {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got.Value)
		}
	}
}
