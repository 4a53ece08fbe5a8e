package config

import (
	"errors"
	"os"
	"path/filepath"

	"fleet-roi/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load scenario parameters from a separate YAML
	// (e.g. examples/scenarios/*.yaml). Explicit fields under Scenario
	// override whatever the file provides.
	ScenarioFile string         `yaml:"scenario_file"`
	Scenario     ScenarioConfig `yaml:"scenario"`
}

type ScenarioConfig struct {
	Name string `yaml:"name"`

	ContractYears        int     `yaml:"contract_years"`
	FleetSize            int     `yaml:"fleet_size"`
	FuelPrice            float64 `yaml:"fuel_price"`
	DailyFuelConsumption float64 `yaml:"daily_fuel_consumption"`
	OperatingDaysPerYear float64 `yaml:"operating_days_per_year"`

	SavingHullPct       float64 `yaml:"saving_hull_pct"`
	SavingVoyagePct     float64 `yaml:"saving_voyage_pct"`
	SavingEmissionPct   float64 `yaml:"saving_emission_pct"`
	SavingScorecardPct  float64 `yaml:"saving_scorecard_pct"`
	SavingPropulsionPct float64 `yaml:"saving_propulsion_pct"`

	CostHull       float64 `yaml:"cost_hull"`
	CostVoyage     float64 `yaml:"cost_voyage"`
	CostEmission   float64 `yaml:"cost_emission"`
	CostScorecard  float64 `yaml:"cost_scorecard"`
	CostPropulsion float64 `yaml:"cost_propulsion"`

	RampUpMonths            int     `yaml:"ramp_up_months"`
	CleaningCost            float64 `yaml:"cleaning_cost"`
	CleaningFrequencyMonths int     `yaml:"cleaning_frequency_months"`
	OneTimeCost             float64 `yaml:"one_time_cost"`
	CrewTrainingCost        float64 `yaml:"crew_training_cost"`

	MonthlyDeteriorationPct       float64 `yaml:"monthly_deterioration_pct"`
	YearlySubscriptionIncreasePct float64 `yaml:"yearly_subscription_increase_pct"`
	RampUpSavingSharePct          float64 `yaml:"ramp_up_saving_share_pct"`
	PostCleaningSavingSharePct    float64 `yaml:"post_cleaning_saving_share_pct"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If scenario_file is set, load it and merge in any explicit overrides.
	if c.ScenarioFile != "" {
		scenarioPath := c.ScenarioFile
		if !filepath.IsAbs(scenarioPath) {
			// Prefer interpreting relative paths as relative to the config
			// file directory, falling back to the path as given.
			cand := filepath.Join(filepath.Dir(path), scenarioPath)
			if _, err := os.Stat(cand); err == nil {
				scenarioPath = cand
			}
		}
		loaded, err := LoadScenarioFile(scenarioPath)
		if err != nil {
			return nil, err
		}
		c.Scenario = MergeScenario(loaded, c.Scenario)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	return c.Scenario.ToModelParams().Validate()
}

func (s ScenarioConfig) ToModelParams() model.SimulationParameters {
	return model.SimulationParameters{
		ContractYears:        s.ContractYears,
		FleetSize:            s.FleetSize,
		FuelPrice:            s.FuelPrice,
		DailyFuelConsumption: s.DailyFuelConsumption,
		OperatingDaysPerYear: s.OperatingDaysPerYear,

		SavingHullPct:       s.SavingHullPct,
		SavingVoyagePct:     s.SavingVoyagePct,
		SavingEmissionPct:   s.SavingEmissionPct,
		SavingScorecardPct:  s.SavingScorecardPct,
		SavingPropulsionPct: s.SavingPropulsionPct,

		CostHull:       s.CostHull,
		CostVoyage:     s.CostVoyage,
		CostEmission:   s.CostEmission,
		CostScorecard:  s.CostScorecard,
		CostPropulsion: s.CostPropulsion,

		RampUpMonths:            s.RampUpMonths,
		CleaningCost:            s.CleaningCost,
		CleaningFrequencyMonths: s.CleaningFrequencyMonths,
		OneTimeCost:             s.OneTimeCost,
		CrewTrainingCost:        s.CrewTrainingCost,

		MonthlyDeteriorationPct:       s.MonthlyDeteriorationPct,
		YearlySubscriptionIncreasePct: s.YearlySubscriptionIncreasePct,
		RampUpSavingSharePct:          s.RampUpSavingSharePct,
		PostCleaningSavingSharePct:    s.PostCleaningSavingSharePct,
	}
}

type scenarioFileWrapper struct {
	Scenario ScenarioConfig `yaml:"scenario"`
}

// LoadScenarioFile reads a standalone scenario preset YAML.
func LoadScenarioFile(path string) (ScenarioConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ScenarioConfig{}, err
	}
	var w scenarioFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ScenarioConfig{}, err
	}
	return w.Scenario, nil
}

// MergeScenario overlays non-zero fields from override onto base.
// This is used when loading a scenario file and then applying overrides
// from the enclosing config or an API request.
func MergeScenario(base, override ScenarioConfig) ScenarioConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.ContractYears != 0 {
		out.ContractYears = override.ContractYears
	}
	if override.FleetSize != 0 {
		out.FleetSize = override.FleetSize
	}
	if override.FuelPrice != 0 {
		out.FuelPrice = override.FuelPrice
	}
	if override.DailyFuelConsumption != 0 {
		out.DailyFuelConsumption = override.DailyFuelConsumption
	}
	if override.OperatingDaysPerYear != 0 {
		out.OperatingDaysPerYear = override.OperatingDaysPerYear
	}
	if override.SavingHullPct != 0 {
		out.SavingHullPct = override.SavingHullPct
	}
	if override.SavingVoyagePct != 0 {
		out.SavingVoyagePct = override.SavingVoyagePct
	}
	if override.SavingEmissionPct != 0 {
		out.SavingEmissionPct = override.SavingEmissionPct
	}
	if override.SavingScorecardPct != 0 {
		out.SavingScorecardPct = override.SavingScorecardPct
	}
	if override.SavingPropulsionPct != 0 {
		out.SavingPropulsionPct = override.SavingPropulsionPct
	}
	if override.CostHull != 0 {
		out.CostHull = override.CostHull
	}
	if override.CostVoyage != 0 {
		out.CostVoyage = override.CostVoyage
	}
	if override.CostEmission != 0 {
		out.CostEmission = override.CostEmission
	}
	if override.CostScorecard != 0 {
		out.CostScorecard = override.CostScorecard
	}
	if override.CostPropulsion != 0 {
		out.CostPropulsion = override.CostPropulsion
	}
	if override.RampUpMonths != 0 {
		out.RampUpMonths = override.RampUpMonths
	}
	if override.CleaningCost != 0 {
		out.CleaningCost = override.CleaningCost
	}
	if override.CleaningFrequencyMonths != 0 {
		out.CleaningFrequencyMonths = override.CleaningFrequencyMonths
	}
	if override.OneTimeCost != 0 {
		out.OneTimeCost = override.OneTimeCost
	}
	if override.CrewTrainingCost != 0 {
		out.CrewTrainingCost = override.CrewTrainingCost
	}
	if override.MonthlyDeteriorationPct != 0 {
		out.MonthlyDeteriorationPct = override.MonthlyDeteriorationPct
	}
	if override.YearlySubscriptionIncreasePct != 0 {
		out.YearlySubscriptionIncreasePct = override.YearlySubscriptionIncreasePct
	}
	if override.RampUpSavingSharePct != 0 {
		out.RampUpSavingSharePct = override.RampUpSavingSharePct
	}
	if override.PostCleaningSavingSharePct != 0 {
		out.PostCleaningSavingSharePct = override.PostCleaningSavingSharePct
	}
	return out
}
