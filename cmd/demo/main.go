package main

import (
	"flag"
	"fmt"

	"fleet-roi/internal/analysis"
	"fleet-roi/internal/config"
	"fleet-roi/internal/model"
	"fleet-roi/internal/simulation"
)

// Demo:
// - Build a baseline 3-year contract for a 10-vessel fleet
// - Run the projection and print the monthly ledger
// - Print the KPI headline block the way an analyst would read it
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional; overrides the built-in scenario)")
	flag.Parse()

	// Defaults (can be overridden via --config).
	params := model.SimulationParameters{
		ContractYears:        3,
		FleetSize:            10,
		FuelPrice:            550,
		DailyFuelConsumption: 20,
		OperatingDaysPerYear: 200,

		SavingHullPct:       2.0,
		SavingVoyagePct:     1.0,
		SavingEmissionPct:   0.5,
		SavingScorecardPct:  0.2,
		SavingPropulsionPct: 0.0,

		CostHull:       250,
		CostVoyage:     250,
		CostEmission:   250,
		CostScorecard:  250,
		CostPropulsion: 0,

		RampUpMonths:            6,
		CleaningCost:            15000,
		CleaningFrequencyMonths: 9,
		OneTimeCost:             1000,
		CrewTrainingCost:        100,

		MonthlyDeteriorationPct:       0.1,
		YearlySubscriptionIncreasePct: 10,
		RampUpSavingSharePct:          60,
		PostCleaningSavingSharePct:    100,
	}

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		params = cfg.Scenario.ToModelParams()
	}

	result, err := simulation.New().Run(params)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%-6s %-14s %10s %10s %10s %8s %10s %12s %12s %12s %8s\n",
		"month", "phase", "fuel", "sub", "cleaning", "save%", "saved$", "cum_saved", "cum_cost", "profit", "roi")
	for _, r := range result.Ledger {
		fmt.Printf("%-6d %-14s %10.0f %10.0f %10.0f %8.2f %10.0f %12.0f %12.0f %12.0f %8s\n",
			r.Month, r.Phase, r.FuelCost, r.SubscriptionCost, r.HullCleaningCost,
			r.SavingPct, r.FuelCostSavings, r.CumulativeSavings, r.CumulativeTotalCost,
			r.Profit, r.CumulativeROI)
	}

	s := analysis.Summarize(result, params)
	fmt.Println()
	fmt.Println("key metrics")
	fmt.Printf("  fuel savings (MT):    %s\n", short(s.FuelSavingsMT))
	fmt.Printf("  cost savings ($):     %s\n", short(s.CostSavingsTotal))
	fmt.Printf("  co2 reduction (MT):   %s\n", short(s.CO2ReductionMT))
	fmt.Printf("  profit ($):           %s\n", short(s.FinalProfit))
	fmt.Printf("  roi:                  %s\n", s.FinalROI)
	fmt.Printf("  total investment ($): %s\n", short(s.TotalInvestmentCost))
	fmt.Printf("  total fuel (MT):      %s\n", short(s.TotalFuelMT))
}

// short renders big numbers the way the KPI cards do: 1.2M, 3.4k, 512.
func short(x float64) string {
	switch {
	case x > 1_000_000:
		return fmt.Sprintf("%.1fM", x/1_000_000)
	case x > 1_000:
		return fmt.Sprintf("%.1fk", x/1_000)
	default:
		return fmt.Sprintf("%.0f", x)
	}
}
