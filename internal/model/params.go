package model

import "fmt"

// SimulationParameters defines the commercial terms of one fleet
// efficiency-software contract. Units:
// - FuelPrice: $/MT
// - DailyFuelConsumption: MT/day
// - Savings: percent of monthly fuel cost (e.g. 2.0 = 2%)
// - Costs: $ per month per app, except CleaningCost/OneTimeCost/CrewTrainingCost ($ events)
// - MonthlyDeteriorationPct, YearlySubscriptionIncreasePct: percent (0.1 = 0.1%)
// - RampUpSavingSharePct, PostCleaningSavingSharePct: percent of total saving (0..100)
type SimulationParameters struct {
	ContractYears        int
	FleetSize            int // advisory; not used in cost math yet
	FuelPrice            float64
	DailyFuelConsumption float64
	OperatingDaysPerYear float64

	SavingHullPct       float64
	SavingVoyagePct     float64
	SavingEmissionPct   float64
	SavingScorecardPct  float64
	SavingPropulsionPct float64

	CostHull       float64
	CostVoyage     float64
	CostEmission   float64
	CostScorecard  float64
	CostPropulsion float64

	RampUpMonths            int
	CleaningCost            float64
	CleaningFrequencyMonths int
	OneTimeCost             float64
	CrewTrainingCost        float64

	MonthlyDeteriorationPct       float64
	YearlySubscriptionIncreasePct float64
	RampUpSavingSharePct          float64
	PostCleaningSavingSharePct    float64
}

// InvalidParameterError names the first parameter that failed validation.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *InvalidParameterError {
	return &InvalidParameterError{Field: field, Reason: reason}
}

func (p SimulationParameters) Validate() error {
	if p.ContractYears < 1 || p.ContractYears > 5 {
		return invalid("contract_years", "must be between 1 and 5")
	}
	if p.FleetSize < 1 {
		return invalid("fleet_size", "must be >= 1")
	}
	if p.FuelPrice < 0 {
		return invalid("fuel_price", "must be >= 0")
	}
	if p.DailyFuelConsumption < 0 {
		return invalid("daily_fuel_consumption", "must be >= 0")
	}
	if p.OperatingDaysPerYear < 0 {
		return invalid("operating_days_per_year", "must be >= 0")
	}
	nonNegative := []struct {
		field string
		value float64
	}{
		{"saving_hull_pct", p.SavingHullPct},
		{"saving_voyage_pct", p.SavingVoyagePct},
		{"saving_emission_pct", p.SavingEmissionPct},
		{"saving_scorecard_pct", p.SavingScorecardPct},
		{"saving_propulsion_pct", p.SavingPropulsionPct},
		{"cost_hull", p.CostHull},
		{"cost_voyage", p.CostVoyage},
		{"cost_emission", p.CostEmission},
		{"cost_scorecard", p.CostScorecard},
		{"cost_propulsion", p.CostPropulsion},
	}
	for _, c := range nonNegative {
		if c.value < 0 {
			return invalid(c.field, "must be >= 0")
		}
	}
	if p.RampUpMonths < 0 {
		return invalid("ramp_up_months", "must be >= 0")
	}
	if p.CleaningCost < 0 {
		return invalid("cleaning_cost", "must be >= 0")
	}
	// A zero frequency would make the policy machine divide by zero mid-run;
	// reject it here rather than fault during month evaluation.
	if p.CleaningFrequencyMonths < 1 {
		return invalid("cleaning_frequency_months", "must be >= 1")
	}
	if p.OneTimeCost < 0 {
		return invalid("one_time_cost", "must be >= 0")
	}
	if p.CrewTrainingCost < 0 {
		return invalid("crew_training_cost", "must be >= 0")
	}
	if p.MonthlyDeteriorationPct < 0 {
		return invalid("monthly_deterioration_pct", "must be >= 0")
	}
	if p.YearlySubscriptionIncreasePct < 0 {
		return invalid("yearly_subscription_increase_pct", "must be >= 0")
	}
	if p.RampUpSavingSharePct < 0 || p.RampUpSavingSharePct > 100 {
		return invalid("ramp_up_saving_share_pct", "must be between 0 and 100")
	}
	if p.PostCleaningSavingSharePct < 0 || p.PostCleaningSavingSharePct > 100 {
		return invalid("post_cleaning_saving_share_pct", "must be between 0 and 100")
	}
	return nil
}

// Months is the contract duration in months.
func (p SimulationParameters) Months() int {
	return p.ContractYears * 12
}

// MonthlyFuelCostBase is the fleet's baseline monthly fuel spend ($),
// before any yearly escalation is applied.
func (p SimulationParameters) MonthlyFuelCostBase() float64 {
	return p.FuelPrice * p.DailyFuelConsumption * p.OperatingDaysPerYear / 12
}

// TotalSavingPct is the combined saving across all five apps, the ceiling
// the policy machine works under.
func (p SimulationParameters) TotalSavingPct() float64 {
	return p.SavingHullPct + p.SavingVoyagePct + p.SavingEmissionPct + p.SavingScorecardPct + p.SavingPropulsionPct
}

// InitialSubscriptionCost is the combined monthly subscription ($) in year one.
func (p SimulationParameters) InitialSubscriptionCost() float64 {
	return p.CostHull + p.CostVoyage + p.CostEmission + p.CostScorecard + p.CostPropulsion
}
