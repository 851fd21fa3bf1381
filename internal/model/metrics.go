package model

import "math"

// MissingReason explains why a metric could not be computed.
type MissingReason string

const (
	NotProvided         MissingReason = "NOT_PROVIDED"
	InsufficientHistory MissingReason = "INSUFFICIENT_HISTORY"
	ZeroOrNegativeBase  MissingReason = "ZERO_OR_NEGATIVE_BASE"
	FieldUnavailable    MissingReason = "FIELD_UNAVAILABLE"
	NonPositiveInput    MissingReason = "NON_POSITIVE_INPUT"
)

// MetricValue carries either a numeric result or exactly one
// MissingReason. Positive infinity is a valid numeric result (the
// unbounded-ratio sentinel), not a missing reason.
type MetricValue struct {
	Value  float64
	Reason MissingReason // empty when Value is usable
}

// Numeric wraps a computed value.
func Numeric(v float64) MetricValue { return MetricValue{Value: v} }

// Missing tags a metric with the reason it could not be computed.
func Missing(reason MissingReason) MetricValue { return MetricValue{Reason: reason} }

// Valid reports whether the metric carries a usable numeric value.
func (m MetricValue) Valid() bool { return m.Reason == "" }

// IsInf reports whether the metric is the positive-infinity sentinel.
func (m MetricValue) IsInf() bool { return m.Valid() && math.IsInf(m.Value, 1) }

// ComputedMetrics holds every derived metric for one company. Each field
// is always populated: a numeric value, or the reason it is missing.
type ComputedMetrics struct {
	SalesGrowth1Yr MetricValue
	SalesGrowth5Yr MetricValue
	DebtToEquity   MetricValue
	PEGRatio       MetricValue
	TrailingPE     MetricValue
}
