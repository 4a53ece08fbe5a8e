package simulation

import (
	"fmt"
	"math"

	"fleet-roi/internal/model"
	"fleet-roi/internal/policy"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// state carries the running totals and cost levels across the month fold.
// Each run owns its own instance; nothing here is shared between runs.
type state struct {
	cumulativeSubCost   float64
	cumulativeSavings   float64
	cumulativeTotalCost float64
	totalFuelMT         float64

	fuelCostCurrent float64
	subCostCurrent  float64

	lastSavingPct float64
}

// Run executes the projection over the full contract.
//
// The fold is inherently sequential: each month's saving percentage and
// escalated cost levels depend on the previous month's carried state, so
// months are never reordered or evaluated in parallel. Independent runs are
// safe to execute concurrently.
func (e *Engine) Run(params model.SimulationParameters) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	months := params.Months()
	machine := policy.FromParams(params)
	yearlyIncrease := params.YearlySubscriptionIncreasePct / 100

	st := state{
		fuelCostCurrent: params.MonthlyFuelCostBase(),
		subCostCurrent:  params.InitialSubscriptionCost(),
	}

	ledger := make([]MonthlyRecord, 0, months)
	finalProfit := 0.0
	finalROI := -1.0

	for month := 1; month <= months; month++ {
		// Escalation fires once at the start of each contract year after the
		// first, and applies the same rate to both cost levels. It must run
		// before anything else reads the levels for this month.
		if month%12 == 1 && month > 1 {
			st.fuelCostCurrent *= 1 + yearlyIncrease
			st.subCostCurrent *= 1 + yearlyIncrease
		}

		step := machine.Evaluate(month, st.lastSavingPct)
		st.lastSavingPct = step.LastSavingPct

		fuelSavings := st.fuelCostCurrent * step.SavingPct / 100

		// Fuel mass is derived back from the (escalated) fuel cost; it is a
		// cost proxy, not a metered quantity.
		monthlyFuelMT := 0.0
		if params.FuelPrice > 0 {
			monthlyFuelMT = st.fuelCostCurrent / params.FuelPrice
		}
		st.totalFuelMT += monthlyFuelMT

		hullCleaning := 0.0
		if step.Phase == model.PhaseCleaning {
			hullCleaning = params.CleaningCost
		}

		otherCost := 0.0
		if month == 1 {
			otherCost = params.OneTimeCost + params.CrewTrainingCost
		}

		totalMonthlyCost := st.subCostCurrent + hullCleaning + otherCost

		st.cumulativeSavings += fuelSavings
		st.cumulativeSubCost += st.subCostCurrent
		st.cumulativeTotalCost += totalMonthlyCost

		profit := st.cumulativeSavings - st.cumulativeTotalCost
		roi := -1.0
		if st.cumulativeTotalCost > 0 {
			roi = profit / st.cumulativeTotalCost
		}
		finalProfit = profit
		finalROI = roi

		ledger = append(ledger, MonthlyRecord{
			Month: month,
			Phase: step.Phase,

			FuelCost:         math.Round(st.fuelCostCurrent),
			SubscriptionCost: math.Round(st.subCostCurrent),

			CumulativeSubscriptionCost: math.Round(st.cumulativeSubCost),

			HullCleaningCost: math.Round(hullCleaning),

			SavingPct:       math.Round(step.SavingPct*100) / 100,
			FuelCostSavings: math.Round(fuelSavings),

			CumulativeSavings:   math.Round(st.cumulativeSavings),
			CumulativeTotalCost: math.Round(st.cumulativeTotalCost),

			Profit:        math.Round(profit),
			CumulativeROI: fmt.Sprintf("%.1f%%", roi*100),
		})
	}

	return &Result{
		Ledger:      ledger,
		FinalProfit: finalProfit,
		FinalROI:    finalROI,
		TotalFuelMT: st.totalFuelMT,
	}, nil
}
