package simulation

import "fleet-roi/internal/model"

// MonthlyRecord is one row of per-month output.
// This is the primary artifact for "what happened" over the contract.
//
// Monetary fields are rounded to the nearest whole dollar at emission time;
// SavingPct is kept to two decimals and CumulativeROI is a percentage string
// with one decimal, matching how the figures are consumed downstream.
type MonthlyRecord struct {
	Month int         `json:"month"`
	Phase model.Phase `json:"phase"`

	FuelCost         float64 `json:"fuel_cost"`
	SubscriptionCost float64 `json:"subscription_cost"`

	CumulativeSubscriptionCost float64 `json:"cumulative_subscription_cost"`

	HullCleaningCost float64 `json:"hull_cleaning_cost"`

	SavingPct       float64 `json:"saving_pct"`
	FuelCostSavings float64 `json:"fuel_cost_savings"`

	CumulativeSavings   float64 `json:"cumulative_savings"`
	CumulativeTotalCost float64 `json:"cumulative_total_cost"`

	Profit        float64 `json:"profit"`
	CumulativeROI string  `json:"cumulative_roi"`
}

// Result bundles the full ledger with the unrounded final accumulators.
type Result struct {
	Ledger []MonthlyRecord `json:"ledger"`

	// FinalProfit and FinalROI are the exact (unrounded) end-of-contract
	// values; FinalROI is a fraction, -1 when no cost was ever incurred.
	FinalProfit float64 `json:"final_profit"`
	FinalROI    float64 `json:"final_roi"`

	TotalFuelMT float64 `json:"total_fuel_mt"`
}
