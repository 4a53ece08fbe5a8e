package simulation

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"fleet-roi/internal/model"
)

// oneYearParams is a 12-month contract with one cleaning event (month 9)
// and a 6-month ramp-up. Baseline monthly fuel cost: 550*20*200/12.
func oneYearParams() model.SimulationParameters {
	return model.SimulationParameters{
		ContractYears:        1,
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
}

func TestRunConcreteScenario(t *testing.T) {
	result, err := New().Run(oneYearParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Ledger) != 12 {
		t.Fatalf("expected 12 records, got %d", len(result.Ledger))
	}

	m1 := result.Ledger[0]
	if m1.Month != 1 {
		t.Errorf("month index should be 1-based, got %d", m1.Month)
	}
	if m1.SubscriptionCost != 1000 {
		t.Errorf("month 1 subscription cost = %v, want 1000", m1.SubscriptionCost)
	}
	if m1.SavingPct != 0 {
		t.Errorf("month 1 saving pct = %v, want 0 (before ramp-up)", m1.SavingPct)
	}
	if m1.Phase != model.PhasePreRamp {
		t.Errorf("month 1 phase = %s, want %s", m1.Phase, model.PhasePreRamp)
	}
	// subscription 1000 + one-time 1000 + crew training 100
	if m1.CumulativeTotalCost != 2100 {
		t.Errorf("month 1 cumulative total cost = %v, want 2100", m1.CumulativeTotalCost)
	}
	if m1.CumulativeROI != "-100.0%" {
		t.Errorf("month 1 roi = %q, want -100.0%%", m1.CumulativeROI)
	}

	// Month 9 is the first cleaning month: 9%9 == 0 and 9 >= 6.
	m9 := result.Ledger[8]
	if m9.Phase != model.PhaseCleaning {
		t.Errorf("month 9 phase = %s, want %s", m9.Phase, model.PhaseCleaning)
	}
	if m9.SavingPct != 3.7 {
		t.Errorf("month 9 saving pct = %v, want 3.7", m9.SavingPct)
	}
	if m9.HullCleaningCost != 15000 {
		t.Errorf("month 9 hull cleaning cost = %v, want 15000", m9.HullCleaningCost)
	}

	// Month 12: savings 2x4070 (ramp) + 6783.33 (cleaning) + 6600 + 6416.67
	// + 6233.33 (decay) = 34173.33; costs 12x1000 + 1100 + 15000 = 28100.
	m12 := result.Ledger[11]
	if m12.CumulativeSavings != 34173 {
		t.Errorf("month 12 cumulative savings = %v, want 34173", m12.CumulativeSavings)
	}
	if m12.CumulativeTotalCost != 28100 {
		t.Errorf("month 12 cumulative total cost = %v, want 28100", m12.CumulativeTotalCost)
	}
	if m12.Profit != 6073 {
		t.Errorf("month 12 profit = %v, want 6073", m12.Profit)
	}
	// 6073.33 / 28100 = 21.613...%
	if m12.CumulativeROI != "21.6%" {
		t.Errorf("month 12 roi = %q, want 21.6%%", m12.CumulativeROI)
	}
}

func TestRunLength(t *testing.T) {
	params := oneYearParams()
	params.ContractYears = 3

	result, err := New().Run(params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Ledger) != 36 {
		t.Errorf("expected 36 records for 3 years, got %d", len(result.Ledger))
	}
	for i, r := range result.Ledger {
		if r.Month != i+1 {
			t.Fatalf("record %d has month %d, want %d", i, r.Month, i+1)
		}
	}
}

func TestRunDeterminism(t *testing.T) {
	params := oneYearParams()
	params.ContractYears = 5

	a, err := New().Run(params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := New().Run(params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated runs produced different results")
	}
}

func TestCumulativesMonotonic(t *testing.T) {
	params := oneYearParams()
	params.ContractYears = 4

	result, err := New().Run(params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prev := MonthlyRecord{}
	for _, r := range result.Ledger {
		if r.CumulativeSubscriptionCost < prev.CumulativeSubscriptionCost {
			t.Errorf("month %d: cumulative subscription cost decreased", r.Month)
		}
		if r.CumulativeSavings < prev.CumulativeSavings {
			t.Errorf("month %d: cumulative savings decreased", r.Month)
		}
		if r.CumulativeTotalCost < prev.CumulativeTotalCost {
			t.Errorf("month %d: cumulative total cost decreased", r.Month)
		}
		prev = r
	}
}

func TestSavingPctBounded(t *testing.T) {
	params := oneYearParams()
	params.ContractYears = 5
	total := params.TotalSavingPct()

	result, err := New().Run(params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range result.Ledger {
		if r.SavingPct < 0 || r.SavingPct > total {
			t.Errorf("month %d: saving pct %v outside [0, %v]", r.Month, r.SavingPct, total)
		}
	}
}

func TestYearlyEscalation(t *testing.T) {
	params := oneYearParams()
	params.ContractYears = 2

	result, err := New().Run(params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m1 := result.Ledger[0]
	m13 := result.Ledger[12]
	if m1.SubscriptionCost != params.InitialSubscriptionCost() {
		t.Errorf("month 1 subscription cost = %v, want %v", m1.SubscriptionCost, params.InitialSubscriptionCost())
	}
	wantSub := math.Round(params.InitialSubscriptionCost() * 1.1)
	if m13.SubscriptionCost != wantSub {
		t.Errorf("month 13 subscription cost = %v, want %v", m13.SubscriptionCost, wantSub)
	}
	wantFuel := math.Round(params.MonthlyFuelCostBase() * 1.1)
	if m13.FuelCost != wantFuel {
		t.Errorf("month 13 fuel cost = %v, want %v", m13.FuelCost, wantFuel)
	}
	// Only one escalation in months 2..12.
	if result.Ledger[11].SubscriptionCost != m1.SubscriptionCost {
		t.Errorf("month 12 subscription cost escalated early")
	}
}

func TestProfitInvariant(t *testing.T) {
	params := oneYearParams()
	params.ContractYears = 3

	result, err := New().Run(params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range result.Ledger {
		// Fields are rounded independently, so allow 1 dollar of slack.
		diff := math.Abs(r.Profit - (r.CumulativeSavings - r.CumulativeTotalCost))
		if diff > 1 {
			t.Errorf("month %d: profit %v != savings %v - cost %v", r.Month, r.Profit, r.CumulativeSavings, r.CumulativeTotalCost)
		}
	}
}

func TestROIWithZeroCost(t *testing.T) {
	params := oneYearParams()
	params.CostHull = 0
	params.CostVoyage = 0
	params.CostEmission = 0
	params.CostScorecard = 0
	params.CleaningCost = 0
	params.OneTimeCost = 0
	params.CrewTrainingCost = 0

	result, err := New().Run(params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range result.Ledger {
		if r.CumulativeTotalCost != 0 {
			t.Fatalf("month %d: expected zero cumulative cost, got %v", r.Month, r.CumulativeTotalCost)
		}
		if r.CumulativeROI != "-100.0%" {
			t.Errorf("month %d: roi = %q, want -100.0%% when no cost was incurred", r.Month, r.CumulativeROI)
		}
	}
	if result.FinalROI != -1 {
		t.Errorf("final roi = %v, want -1", result.FinalROI)
	}
}

func TestRunRejectsInvalidParams(t *testing.T) {
	params := oneYearParams()
	params.CleaningFrequencyMonths = 0

	result, err := New().Run(params)
	if err == nil {
		t.Fatalf("expected error for zero cleaning frequency")
	}
	if result != nil {
		t.Errorf("expected no result for invalid params, got %+v", result)
	}

	var invalid *model.InvalidParameterError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidParameterError, got %T", err)
	}
	if invalid.Field != "cleaning_frequency_months" {
		t.Errorf("error names field %q, want cleaning_frequency_months", invalid.Field)
	}
}
