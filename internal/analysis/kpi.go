package analysis

import (
	"fleet-roi/internal/model"
	"fleet-roi/internal/simulation"
)

// CO2EmissionFactor is the MT of CO2 emitted per MT of marine fuel burned.
const CO2EmissionFactor = 3.114

// Summary holds the headline KPIs derived from a finished projection.
type Summary struct {
	// FuelSavingsMT is the fuel mass not burned thanks to the software,
	// derived from the dollar savings at the contract fuel price.
	FuelSavingsMT float64 `json:"fuel_savings_mt"`

	// CostSavingsTotal is the sum of the monthly fuel-cost savings ($).
	CostSavingsTotal float64 `json:"cost_savings_total"`

	CO2ReductionMT float64 `json:"co2_reduction_mt"`

	FinalProfit float64 `json:"final_profit"`
	FinalROI    string  `json:"final_roi"`

	TotalInvestmentCost float64 `json:"total_investment_cost"`
	TotalFuelMT         float64 `json:"total_fuel_mt"`

	TotalMonths int `json:"total_months"`
}

// Summarize post-processes a projection into its headline metrics.
// KPI figures are derived from the rounded ledger values, so they line up
// exactly with the table a reader sees.
func Summarize(res *simulation.Result, params model.SimulationParameters) Summary {
	if res == nil || len(res.Ledger) == 0 {
		return Summary{}
	}
	s := Summary{TotalFuelMT: res.TotalFuelMT}

	last := res.Ledger[len(res.Ledger)-1]

	if params.FuelPrice > 0 {
		s.FuelSavingsMT = last.CumulativeSavings / params.FuelPrice
	}
	s.CO2ReductionMT = s.FuelSavingsMT * CO2EmissionFactor

	for _, r := range res.Ledger {
		s.CostSavingsTotal += r.FuelCostSavings
	}

	s.FinalProfit = last.Profit
	s.FinalROI = last.CumulativeROI
	s.TotalInvestmentCost = last.CumulativeTotalCost
	s.TotalMonths = len(res.Ledger)
	return s
}
