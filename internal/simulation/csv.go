package simulation

import (
	"encoding/csv"
	"os"
	"strconv"
)

func WriteLedgerCSV(path string, ledger []MonthlyRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"month",
		"phase",
		"fuel_cost",
		"subscription_cost",
		"cumulative_subscription_cost",
		"hull_cleaning_cost",
		"saving_pct",
		"fuel_cost_savings",
		"cumulative_savings",
		"cumulative_total_cost",
		"profit",
		"cumulative_roi",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Month),
			string(r.Phase),
			fmtMoney(r.FuelCost),
			fmtMoney(r.SubscriptionCost),
			fmtMoney(r.CumulativeSubscriptionCost),
			fmtMoney(r.HullCleaningCost),
			strconv.FormatFloat(r.SavingPct, 'f', 2, 64),
			fmtMoney(r.FuelCostSavings),
			fmtMoney(r.CumulativeSavings),
			fmtMoney(r.CumulativeTotalCost),
			fmtMoney(r.Profit),
			r.CumulativeROI,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtMoney(x float64) string {
	return strconv.FormatFloat(x, 'f', 0, 64)
}
