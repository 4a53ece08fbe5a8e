package models

// ProjectionResponse represents the response from a projection run
type ProjectionResponse struct {
	ID      string            `json:"id,omitempty"`
	Status  string            `json:"status"`
	Summary ProjectionSummary `json:"summary"`
	Ledger  []LedgerRow       `json:"ledger,omitempty"`
}

// ProjectionSummary contains the headline KPIs of a finished projection
type ProjectionSummary struct {
	FuelSavingsMT       float64 `json:"fuel_savings_mt"`
	CostSavingsTotal    float64 `json:"cost_savings_total"`
	CO2ReductionMT      float64 `json:"co2_reduction_mt"`
	FinalProfit         float64 `json:"final_profit"`
	FinalROI            string  `json:"final_roi"`
	TotalInvestmentCost float64 `json:"total_investment_cost"`
	TotalFuelMT         float64 `json:"total_fuel_mt"`
	TotalMonths         int     `json:"total_months"`
}

// LedgerRow represents one month in the projection ledger
type LedgerRow struct {
	Month                      int     `json:"month"`
	Phase                      string  `json:"phase"` // "PRE_RAMP", "RAMP_UP", "CLEANING", "DETERIORATION"
	FuelCost                   float64 `json:"fuel_cost"`
	SubscriptionCost           float64 `json:"subscription_cost"`
	CumulativeSubscriptionCost float64 `json:"cumulative_subscription_cost"`
	HullCleaningCost           float64 `json:"hull_cleaning_cost"`
	SavingPct                  float64 `json:"saving_pct"`
	FuelCostSavings            float64 `json:"fuel_cost_savings"`
	CumulativeSavings          float64 `json:"cumulative_savings"`
	CumulativeTotalCost        float64 `json:"cumulative_total_cost"`
	Profit                     float64 `json:"profit"`
	CumulativeROI              string  `json:"cumulative_roi"`
}

// LedgerResponse represents a stored ledger fetched by id
type LedgerResponse struct {
	ID     string      `json:"id"`
	Ledger []LedgerRow `json:"ledger"`
}

// CompareProjectionResponse represents the response from a comparison
type CompareProjectionResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation
type ComparisonResult struct {
	Name    string            `json:"name"`
	Summary ProjectionSummary `json:"summary"`
}

// ScenarioInfo represents information about a scenario preset
type ScenarioInfo struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	File  string        `json:"file"`
	Specs ScenarioSpecs `json:"specs"`
}

// ScenarioSpecs contains the headline terms of a scenario preset
type ScenarioSpecs struct {
	ContractYears int     `json:"contract_years"`
	FleetSize     int     `json:"fleet_size"`
	FuelPrice     float64 `json:"fuel_price"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
