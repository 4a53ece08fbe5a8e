package models

// ProjectionRequest represents the request body for running a projection
type ProjectionRequest struct {
	Config  ProjectionConfig  `json:"config" binding:"required"`
	Options ProjectionOptions `json:"options,omitempty"`
}

// ProjectionConfig contains scenario configuration
type ProjectionConfig struct {
	ScenarioFile string         `json:"scenario_file,omitempty"`
	Scenario     ScenarioConfig `json:"scenario,omitempty"`
}

// ScenarioConfig defines simulation parameters
type ScenarioConfig struct {
	Name string `json:"name,omitempty"`

	ContractYears        int     `json:"contract_years"`
	FleetSize            int     `json:"fleet_size"`
	FuelPrice            float64 `json:"fuel_price"`
	DailyFuelConsumption float64 `json:"daily_fuel_consumption"`
	OperatingDaysPerYear float64 `json:"operating_days_per_year"`

	SavingHullPct       float64 `json:"saving_hull_pct"`
	SavingVoyagePct     float64 `json:"saving_voyage_pct"`
	SavingEmissionPct   float64 `json:"saving_emission_pct"`
	SavingScorecardPct  float64 `json:"saving_scorecard_pct"`
	SavingPropulsionPct float64 `json:"saving_propulsion_pct"`

	CostHull       float64 `json:"cost_hull"`
	CostVoyage     float64 `json:"cost_voyage"`
	CostEmission   float64 `json:"cost_emission"`
	CostScorecard  float64 `json:"cost_scorecard"`
	CostPropulsion float64 `json:"cost_propulsion"`

	RampUpMonths            int     `json:"ramp_up_months"`
	CleaningCost            float64 `json:"cleaning_cost"`
	CleaningFrequencyMonths int     `json:"cleaning_frequency_months"`
	OneTimeCost             float64 `json:"one_time_cost"`
	CrewTrainingCost        float64 `json:"crew_training_cost"`

	MonthlyDeteriorationPct       float64 `json:"monthly_deterioration_pct"`
	YearlySubscriptionIncreasePct float64 `json:"yearly_subscription_increase_pct"`
	RampUpSavingSharePct          float64 `json:"ramp_up_saving_share_pct"`
	PostCleaningSavingSharePct    float64 `json:"post_cleaning_saving_share_pct"`
}

// ProjectionOptions contains optional projection parameters
type ProjectionOptions struct {
	IncludeLedger bool `json:"include_ledger,omitempty"` // default: false
	StoreResult   bool `json:"store_result,omitempty"`   // keep the ledger retrievable by id
}

// CompareProjectionRequest represents a request to compare multiple scenarios
type CompareProjectionRequest struct {
	BaseConfig ProjectionConfig      `json:"base_config" binding:"required"`
	Variations []ProjectionVariation `json:"variations" binding:"required"`
}

// ProjectionVariation defines a variation to test
type ProjectionVariation struct {
	Name   string           `json:"name" binding:"required"`
	Config ProjectionConfig `json:"config" binding:"required"`
}
