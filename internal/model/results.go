package model

// MonthlyResult captures one month of production and cash flow for one
// miner. It is ephemeral: always recomputed, never persisted.
type MonthlyResult struct {
	BTCMined          float64 `json:"btcMined"`
	GrossRevenue      float64 `json:"grossRevenue"`
	PoolFees          float64 `json:"poolFees"`
	NetRevenue        float64 `json:"netRevenue"`
	ElectricityCost   float64 `json:"electricityCost"`
	OperationalProfit float64 `json:"operationalProfit"`
}

// YearlyProfit aggregates a year (or, for horizon summaries, a whole
// multi-year run) of operation, layered with depreciation and taxes.
type YearlyProfit struct {
	Year int `json:"year"`

	TotalBTCMined          float64 `json:"totalBtcMined"`
	TotalRevenue           float64 `json:"totalRevenue"`
	TotalPoolFees          float64 `json:"totalPoolFees"`
	TotalElectricity       float64 `json:"totalElectricity"`
	TotalOperationalProfit float64 `json:"totalOperationalProfit"`

	Depreciation   float64 `json:"depreciation"`
	TaxableIncome  float64 `json:"taxableIncome"`
	FederalTax     float64 `json:"federalTax"`
	StateTax       float64 `json:"stateTax"`
	TotalTax       float64 `json:"totalTax"`
	AfterTaxProfit float64 `json:"afterTaxProfit"`

	MinerPrice float64 `json:"minerPrice"`
	NetProfit  float64 `json:"netProfit"`
	ROI        float64 `json:"roi"`
	// AnnualizedROI is only populated on horizon summaries.
	AnnualizedROI float64 `json:"annualizedRoi,omitempty"`
}

// ProfitMatrixRow is one miner's results across the projection horizon at
// a single electricity rate. Rows are recomputed wholesale on every
// parameter change rather than patched in place.
type ProfitMatrixRow struct {
	Miner           MinerSpec      `json:"miner"`
	ElectricityRate float64        `json:"electricityRate"`
	Results         []YearlyProfit `json:"results"`
	Summary         YearlyProfit   `json:"summary"`
}
