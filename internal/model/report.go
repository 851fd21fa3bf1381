package model

// CompanyReport pairs a company's normalized snapshot with its derived
// metrics. One is produced per requested ticker, in request order.
type CompanyReport struct {
	Snapshot Snapshot
	Metrics  ComputedMetrics
}
