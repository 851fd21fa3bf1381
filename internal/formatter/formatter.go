// Package formatter turns metric values into display strings. Every
// function here is pure and total: any legal input maps to exactly one
// string.
package formatter

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"FinCompare/internal/model"
)

// Kind selects the display convention for a metric.
type Kind int

const (
	// Percent renders a decimal fraction with two decimal places and a
	// percent sign: 0.08 becomes "8.00%".
	Percent Kind = iota
	// CurrencyBillions renders a value already expressed in billions as
	// a dollar amount with thousands separators: 2800 becomes "$2,800B".
	CurrencyBillions
	// Ratio renders two decimal places with no separators.
	Ratio
)

// Metric renders one metric value. Missing reasons render "N/A"; the
// positive-infinity sentinel renders "Inf" regardless of kind.
func Metric(v model.MetricValue, kind Kind) string {
	if !v.Valid() {
		return "N/A"
	}
	if v.IsInf() {
		return "Inf"
	}
	switch kind {
	case Percent:
		return fmt.Sprintf("%.2f%%", v.Value*100)
	case CurrencyBillions:
		return "$" + humanize.Comma(int64(math.Round(v.Value))) + "B"
	default:
		return fmt.Sprintf("%.2f", v.Value)
	}
}
