package risk

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCellSeverityROIBoundaries(t *testing.T) {
	cases := []struct {
		value float64
		want  Severity
	}{
		{150, SeverityExcellent},
		{100, SeverityExcellent},
		{99.9, SeverityGood},
		{50, SeverityGood},
		{0, SeverityMarginal},
		{-0.1, SeverityPoor},
		{-25, SeverityPoor},
		{-25.1, SeverityCritical},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, CellSeverity(MetricROI, tc.value), "roi %v", tc.value)
	}
}

func TestCellSeverityProfitBoundaries(t *testing.T) {
	cases := []struct {
		value float64
		want  Severity
	}{
		{25000, SeverityExcellent},
		{10000, SeverityExcellent},
		{2500, SeverityGood},
		{0, SeverityMarginal},
		{-5000, SeverityPoor},
		{-5001, SeverityCritical},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, CellSeverity(MetricProfit, tc.value), "profit %v", tc.value)
	}
}

func TestCellSeverityHostileValues(t *testing.T) {
	require.Equal(t, SeverityCritical, CellSeverity(MetricROI, math.NaN()))
	require.Equal(t, SeverityExcellent, CellSeverity(MetricROI, math.Inf(1)))
	require.Equal(t, SeverityCritical, CellSeverity(MetricROI, math.Inf(-1)))
	// Unknown kinds fall back to the ROI table.
	require.Equal(t, SeverityGood, CellSeverity(MetricKind("wat"), 75))
}

func TestCellColorCoversAllTiers(t *testing.T) {
	for _, sev := range []Severity{
		SeverityExcellent, SeverityGood, SeverityMarginal, SeverityPoor, SeverityCritical,
	} {
		require.NotEmpty(t, severityColors[sev])
	}
	require.Equal(t, severityColors[SeverityCritical], CellColor(MetricProfit, -99999))
}

func TestDisplayValue(t *testing.T) {
	require.Equal(t, "42.5%", DisplayValue(MetricROI, 42.5))
	require.Equal(t, "$1,234,567", DisplayValue(MetricProfit, 1234567.4))
	require.Equal(t, "-$5,000", DisplayValue(MetricProfit, -5000))
	require.Equal(t, "$0", DisplayValue(MetricProfit, 0))
	require.Equal(t, "—", DisplayValue(MetricROI, math.NaN()))
	require.Equal(t, "—", DisplayValue(MetricProfit, math.Inf(1)))
}
