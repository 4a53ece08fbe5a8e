package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fleet-roi/internal/analysis"
	"fleet-roi/internal/config"
	"fleet-roi/internal/simulation"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "project":
		cmdProject(os.Args[2:])
	case "compare":
		cmdCompare(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli project --config examples/config.yaml --out results/ledger.csv")
	fmt.Println("  cli compare examples/scenarios/baseline.yaml examples/scenarios/aggressive.yaml")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - project prints the monthly ledger and headline KPIs, optionally writing CSV")
	fmt.Println("  - compare runs each scenario file and ranks them by final ROI")
}

func cmdProject(args []string) {
	fs := flag.NewFlagSet("project", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "", "Optional output CSV path")
	n := fs.Int("n", 0, "Optional: print only the first N months (0=all)")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	params := cfg.Scenario.ToModelParams()

	result, err := simulation.New().Run(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "projection: %v\n", err)
		os.Exit(1)
	}

	rows := result.Ledger
	if *n > 0 && *n < len(rows) {
		rows = rows[:*n]
	}
	printLedger(rows)

	summary := analysis.Summarize(result, params)
	fmt.Println()
	printSummary(cfg.Scenario.Name, summary)

	if *outPath != "" {
		if dir := filepath.Dir(*outPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
				os.Exit(1)
			}
		}
		if err := simulation.WriteLedgerCSV(*outPath, result.Ledger); err != nil {
			fmt.Fprintf(os.Stderr, "write csv: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nwrote %s (%d rows)\n", *outPath, len(result.Ledger))
	}
}

func cmdCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	_ = fs.Parse(args)
	paths := fs.Args()

	if len(paths) < 2 {
		fmt.Println("compare needs at least two scenario files")
		os.Exit(2)
	}

	scenarios := map[string]analysis.ScenarioResult{}
	for _, path := range paths {
		sc, err := config.LoadScenarioFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			os.Exit(1)
		}
		params := sc.ToModelParams()

		result, err := simulation.New().Run(params)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			os.Exit(1)
		}

		name := sc.Name
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		scenarios[name] = analysis.ScenarioResult{Params: params, Result: result}
	}

	ranked := analysis.RankByFinalROI(scenarios)

	fmt.Printf("%-4s %-24s %12s %14s %14s %12s\n",
		"#", "scenario", "final_roi", "profit", "investment", "co2_mt")
	for i, r := range ranked {
		fmt.Printf("%-4d %-24s %12s %14.0f %14.0f %12.1f\n",
			i+1, r.Name, r.FinalROI, r.FinalProfit, r.TotalInvestmentCost, r.CO2ReductionMT)
	}
}

func printLedger(rows []simulation.MonthlyRecord) {
	fmt.Printf("%-6s %-14s %10s %10s %10s %8s %10s %12s %12s %12s %8s\n",
		"month", "phase", "fuel", "sub", "cleaning", "save%", "saved$", "cum_saved", "cum_cost", "profit", "roi")
	for _, r := range rows {
		fmt.Printf("%-6d %-14s %10.0f %10.0f %10.0f %8.2f %10.0f %12.0f %12.0f %12.0f %8s\n",
			r.Month, r.Phase, r.FuelCost, r.SubscriptionCost, r.HullCleaningCost,
			r.SavingPct, r.FuelCostSavings, r.CumulativeSavings, r.CumulativeTotalCost,
			r.Profit, r.CumulativeROI)
	}
}

func printSummary(name string, s analysis.Summary) {
	if name != "" {
		fmt.Printf("scenario: %s\n", name)
	}
	fmt.Printf("months:               %d\n", s.TotalMonths)
	fmt.Printf("fuel savings (MT):    %.1f\n", s.FuelSavingsMT)
	fmt.Printf("cost savings ($):     %.0f\n", s.CostSavingsTotal)
	fmt.Printf("co2 reduction (MT):   %.1f\n", s.CO2ReductionMT)
	fmt.Printf("profit ($):           %.0f\n", s.FinalProfit)
	fmt.Printf("roi:                  %s\n", s.FinalROI)
	fmt.Printf("total investment ($): %.0f\n", s.TotalInvestmentCost)
	fmt.Printf("total fuel (MT):      %.1f\n", s.TotalFuelMT)
}
