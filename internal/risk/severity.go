package risk

import (
	"fmt"
	"math"
	"strconv"
)

// MetricKind selects the threshold table a value is graded against.
// ROI and absolute profit live on different scales, so they bucket
// differently.
type MetricKind string

const (
	MetricROI    MetricKind = "roi"
	MetricProfit MetricKind = "profit"
)

// Severity is an ordered tier from best to worst.
type Severity string

const (
	SeverityExcellent Severity = "excellent"
	SeverityGood      Severity = "good"
	SeverityMarginal  Severity = "marginal"
	SeverityPoor      Severity = "poor"
	SeverityCritical  Severity = "critical"
)

// tierBoundary maps a lower bound (inclusive) to a severity. Tables are
// ordered best-first; the first bound the value meets wins.
type tierBoundary struct {
	Min      float64
	Severity Severity
}

// Threshold boundaries are part of the tested contract:
// ROI (%):    >=100 excellent, >=50 good, >=0 marginal, >=-25 poor, else critical.
// Profit ($): >=10000 excellent, >=2500 good, >=0 marginal, >=-5000 poor, else critical.
var severityTables = map[MetricKind][]tierBoundary{
	MetricROI: {
		{Min: 100, Severity: SeverityExcellent},
		{Min: 50, Severity: SeverityGood},
		{Min: 0, Severity: SeverityMarginal},
		{Min: -25, Severity: SeverityPoor},
	},
	MetricProfit: {
		{Min: 10000, Severity: SeverityExcellent},
		{Min: 2500, Severity: SeverityGood},
		{Min: 0, Severity: SeverityMarginal},
		{Min: -5000, Severity: SeverityPoor},
	},
}

var severityColors = map[Severity]string{
	SeverityExcellent: "#1b5e20",
	SeverityGood:      "#4caf50",
	SeverityMarginal:  "#ffc107",
	SeverityPoor:      "#ff7043",
	SeverityCritical:  "#b71c1c",
}

// CellSeverity grades a metric value. Unknown kinds grade as ROI, and
// NaN grades critical.
func CellSeverity(kind MetricKind, value float64) Severity {
	if math.IsNaN(value) {
		return SeverityCritical
	}
	table, ok := severityTables[kind]
	if !ok {
		table = severityTables[MetricROI]
	}
	for _, tier := range table {
		if value >= tier.Min {
			return tier.Severity
		}
	}
	return SeverityCritical
}

// CellColor maps a metric value straight to its tier's display color.
func CellColor(kind MetricKind, value float64) string {
	return severityColors[CellSeverity(kind, value)]
}

// DisplayValue renders a metric for a matrix cell: percentages with one
// decimal, dollar amounts with thousands separators.
func DisplayValue(kind MetricKind, value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "—"
	}
	switch kind {
	case MetricROI:
		return fmt.Sprintf("%.1f%%", value)
	case MetricProfit:
		return formatDollars(value)
	default:
		return strconv.FormatFloat(value, 'f', 2, 64)
	}
}

func formatDollars(v float64) string {
	neg := v < 0
	whole := int64(math.Round(math.Abs(v)))
	s := strconv.FormatInt(whole, 10)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-$" + s
	}
	return "$" + s
}
