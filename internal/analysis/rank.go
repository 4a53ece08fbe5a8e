package analysis

import (
	"sort"

	"fleet-roi/internal/model"
	"fleet-roi/internal/simulation"
)

// ScenarioResult pairs a finished run with the parameters that produced it.
type ScenarioResult struct {
	Params model.SimulationParameters
	Result *simulation.Result
}

type RankedScenario struct {
	Name string
	Summary
	finalROI float64
}

// RankByFinalROI summarizes each named scenario and sorts descending by
// end-of-contract ROI (the exact fraction, not the formatted string).
// Ties break on name so the ordering is stable across runs.
func RankByFinalROI(scenarios map[string]ScenarioResult) []RankedScenario {
	out := make([]RankedScenario, 0, len(scenarios))
	for name, sc := range scenarios {
		out = append(out, RankedScenario{
			Name:     name,
			Summary:  Summarize(sc.Result, sc.Params),
			finalROI: sc.Result.FinalROI,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].finalROI != out[j].finalROI {
			return out[i].finalROI > out[j].finalROI
		}
		return out[i].Name < out[j].Name
	})
	return out
}
