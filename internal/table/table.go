// Package table assembles company reports into a metrics-as-rows
// comparison grid and renders it for the terminal.
package table

import (
	"fmt"

	"FinCompare/internal/formatter"
	"FinCompare/internal/model"
)

// Grid is one assembled comparison table: a row per metric, a column
// per company, every cell already formatted for display. Reports keeps
// the unformatted source values alongside.
type Grid struct {
	RowLabels []string
	Columns   []string
	Cells     [][]string // indexed [row][column]
	Reports   []model.CompanyReport
}

// metricRows fixes the canonical row order of the table body.
var metricRows = []struct {
	label string
	kind  formatter.Kind
	pick  func(model.ComputedMetrics) model.MetricValue
}{
	{"1Yr Sales Growth", formatter.Percent, func(m model.ComputedMetrics) model.MetricValue { return m.SalesGrowth1Yr }},
	{"5Yr Sales Growth", formatter.Percent, func(m model.ComputedMetrics) model.MetricValue { return m.SalesGrowth5Yr }},
	{"Debt to Equity", formatter.Ratio, func(m model.ComputedMetrics) model.MetricValue { return m.DebtToEquity }},
	{"PEG Ratio", formatter.Ratio, func(m model.ComputedMetrics) model.MetricValue { return m.PEGRatio }},
	{"Trailing P/E", formatter.Ratio, func(m model.ComputedMetrics) model.MetricValue { return m.TrailingPE }},
}

// Assemble builds the comparison grid from per-company reports, columns
// in report order. Metric rows are always present; the industry and
// market-cap rows appear only when at least one company carries the
// field, with "N/A" filling the gaps for the rest.
func Assemble(reports []model.CompanyReport) Grid {
	g := Grid{Reports: reports}
	for _, r := range reports {
		g.Columns = append(g.Columns, columnHeader(r.Snapshot))
	}

	if anyIndustry(reports) {
		row := make([]string, 0, len(reports))
		for _, r := range reports {
			if r.Snapshot.Industry == "" {
				row = append(row, "N/A")
			} else {
				row = append(row, r.Snapshot.Industry)
			}
		}
		g.addRow("Industry", row)
	}

	if anyMarketCap(reports) {
		row := make([]string, 0, len(reports))
		for _, r := range reports {
			if m := r.Snapshot.MarketCapUSD; m != nil {
				row = append(row, formatter.Metric(model.Numeric(*m/1e9), formatter.CurrencyBillions))
			} else {
				row = append(row, "N/A")
			}
		}
		g.addRow("Market Cap (B)", row)
	}

	for _, mr := range metricRows {
		row := make([]string, 0, len(reports))
		for _, r := range reports {
			row = append(row, formatter.Metric(mr.pick(r.Metrics), mr.kind))
		}
		g.addRow(mr.label, row)
	}

	return g
}

func (g *Grid) addRow(label string, cells []string) {
	g.RowLabels = append(g.RowLabels, label)
	g.Cells = append(g.Cells, cells)
}

func columnHeader(snap model.Snapshot) string {
	if snap.DisplayName != "" {
		return fmt.Sprintf("%s (%s)", snap.DisplayName, snap.Ticker)
	}
	return snap.Ticker
}

func anyIndustry(reports []model.CompanyReport) bool {
	for _, r := range reports {
		if r.Snapshot.Industry != "" {
			return true
		}
	}
	return false
}

func anyMarketCap(reports []model.CompanyReport) bool {
	for _, r := range reports {
		if r.Snapshot.MarketCapUSD != nil {
			return true
		}
	}
	return false
}
