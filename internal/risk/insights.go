package risk

import (
	"math"
	"sort"

	"mining-econ/internal/model"
)

// Insights is a single-pass aggregate over a profit matrix, used by the
// presentation layer for at-a-glance summaries.
type Insights struct {
	Cells           int     `json:"cells"`
	ProfitableCells int     `json:"profitableCells"`

	BestMiner      string  `json:"bestMiner"`
	BestNetProfit  float64 `json:"bestNetProfit"`
	WorstMiner     string  `json:"worstMiner"`
	WorstNetProfit float64 `json:"worstNetProfit"`

	MeanROI   float64 `json:"meanRoi"`
	MinROI    float64 `json:"minRoi"`
	MaxROI    float64 `json:"maxRoi"`
	ROISpread float64 `json:"roiSpread"`
	ROIStdDev float64 `json:"roiStdDev"`

	// RiskScore grades the matrix 0 (benign) to 100 (hostile): 60 points
	// from the share of unprofitable cells, 40 from ROI dispersion
	// relative to its mean magnitude.
	RiskScore float64 `json:"riskScore"`
}

// QuickInsights aggregates matrix rows by their horizon summaries.
// An empty matrix yields a zero Insights value.
func QuickInsights(rows []model.ProfitMatrixRow) Insights {
	ins := Insights{}
	if len(rows) == 0 {
		return ins
	}

	ins.Cells = len(rows)
	ins.MinROI = math.Inf(1)
	ins.MaxROI = math.Inf(-1)
	ins.BestNetProfit = math.Inf(-1)
	ins.WorstNetProfit = math.Inf(1)

	rois := make([]float64, 0, len(rows))
	sum := 0.0
	for _, row := range rows {
		s := row.Summary
		if s.NetProfit > 0 {
			ins.ProfitableCells++
		}
		if s.NetProfit > ins.BestNetProfit {
			ins.BestNetProfit = s.NetProfit
			ins.BestMiner = row.Miner.Name
		}
		if s.NetProfit < ins.WorstNetProfit {
			ins.WorstNetProfit = s.NetProfit
			ins.WorstMiner = row.Miner.Name
		}
		if s.ROI < ins.MinROI {
			ins.MinROI = s.ROI
		}
		if s.ROI > ins.MaxROI {
			ins.MaxROI = s.ROI
		}
		rois = append(rois, s.ROI)
		sum += s.ROI
	}

	ins.MeanROI = sum / float64(len(rois))
	ins.ROISpread = ins.MaxROI - ins.MinROI

	variance := 0.0
	for _, r := range rois {
		d := r - ins.MeanROI
		variance += d * d
	}
	ins.ROIStdDev = math.Sqrt(variance / float64(len(rois)))

	unprofitableShare := 1 - float64(ins.ProfitableCells)/float64(ins.Cells)
	dispersion := 0.0
	if scale := math.Abs(ins.MeanROI) + 1; scale > 0 {
		dispersion = math.Min(1, ins.ROIStdDev/scale)
	}
	ins.RiskScore = 60*unprofitableShare + 40*dispersion
	return ins
}

// RankByNetProfit orders rows best-first by horizon net profit.
func RankByNetProfit(rows []model.ProfitMatrixRow) []model.ProfitMatrixRow {
	out := make([]model.ProfitMatrixRow, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Summary.NetProfit > out[j].Summary.NetProfit
	})
	return out
}
