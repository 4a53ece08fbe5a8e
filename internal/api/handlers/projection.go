package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"fleet-roi/internal/analysis"
	"fleet-roi/internal/api/models"
	"fleet-roi/internal/api/store"
	"fleet-roi/internal/config"
	"fleet-roi/internal/model"
	"fleet-roi/internal/simulation"

	"github.com/gin-gonic/gin"
)

// ProjectionHandler handles projection-related requests
type ProjectionHandler struct {
	store       store.ResultStore
	scenarioDir string
}

// NewProjectionHandler creates a new projection handler. The store may be
// nil, in which case store_result requests are silently ignored and the
// ledger-by-id endpoint always responds 404.
func NewProjectionHandler(st store.ResultStore, scenarioDir string) *ProjectionHandler {
	return &ProjectionHandler{store: st, scenarioDir: scenarioDir}
}

// RunProjection handles POST /api/v1/projection
func (h *ProjectionHandler) RunProjection(c *gin.Context) {
	var req models.ProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	params, err := h.buildParams(req.Config)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	engine := simulation.New()
	result, err := engine.Run(params)
	if err != nil {
		var invalid *model.InvalidParameterError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_PARAMETER",
					Message: invalid.Error(),
					Details: map[string]interface{}{
						"field":  invalid.Field,
						"reason": invalid.Reason,
					},
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "PROJECTION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	response := models.ProjectionResponse{
		Status:  "completed",
		Summary: buildSummary(result, params),
	}
	if req.Options.IncludeLedger {
		response.Ledger = ledgerRows(result.Ledger)
	}
	if req.Options.StoreResult && h.store != nil {
		id := store.NewID()
		if err := h.store.Set(id, result); err == nil {
			response.ID = id
		}
	}

	c.JSON(http.StatusOK, response)
}

// GetLedger handles GET /api/v1/projection/:id/ledger
func (h *ProjectionHandler) GetLedger(c *gin.Context) {
	id := c.Param("id")

	var result *simulation.Result
	ok := false
	if h.store != nil {
		result, ok = h.store.Get(id)
	}
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NOT_FOUND",
				Message: "no stored projection with that id; run with store_result=true first",
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.LedgerResponse{
		ID:     id,
		Ledger: ledgerRows(result.Ledger),
	})
}

// CompareProjections handles POST /api/v1/projection/compare
func (h *ProjectionHandler) CompareProjections(c *gin.Context) {
	var req models.CompareProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	comparison := make([]models.ComparisonResult, 0, len(req.Variations))
	engine := simulation.New()

	for _, variation := range req.Variations {
		merged := mergeConfig(req.BaseConfig, variation.Config)

		params, err := h.buildParams(merged)
		if err != nil {
			continue // Skip invalid configs
		}

		result, err := engine.Run(params)
		if err != nil {
			continue // Skip failed runs
		}

		comparison = append(comparison, models.ComparisonResult{
			Name:    variation.Name,
			Summary: buildSummary(result, params),
		})
	}

	c.JSON(http.StatusOK, models.CompareProjectionResponse{
		Comparison: comparison,
	})
}

// Helper methods

// buildParams resolves an optional scenario file and overlays the request's
// explicit scenario fields on top of it.
func (h *ProjectionHandler) buildParams(pc models.ProjectionConfig) (model.SimulationParameters, error) {
	scenario := toConfigScenario(pc.Scenario)

	if pc.ScenarioFile != "" {
		path := pc.ScenarioFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(h.scenarioDir, path)
		}
		if _, err := os.Stat(path); err != nil {
			return model.SimulationParameters{}, err
		}
		loaded, err := config.LoadScenarioFile(path)
		if err != nil {
			return model.SimulationParameters{}, err
		}
		scenario = config.MergeScenario(loaded, scenario)
	}

	return scenario.ToModelParams(), nil
}

// mergeConfig overlays a variation onto the base request config.
func mergeConfig(base, override models.ProjectionConfig) models.ProjectionConfig {
	out := base
	if override.ScenarioFile != "" {
		out.ScenarioFile = override.ScenarioFile
	}
	merged := config.MergeScenario(toConfigScenario(base.Scenario), toConfigScenario(override.Scenario))
	out.Scenario = fromConfigScenario(merged)
	return out
}

func buildSummary(result *simulation.Result, params model.SimulationParameters) models.ProjectionSummary {
	s := analysis.Summarize(result, params)
	return models.ProjectionSummary{
		FuelSavingsMT:       s.FuelSavingsMT,
		CostSavingsTotal:    s.CostSavingsTotal,
		CO2ReductionMT:      s.CO2ReductionMT,
		FinalProfit:         s.FinalProfit,
		FinalROI:            s.FinalROI,
		TotalInvestmentCost: s.TotalInvestmentCost,
		TotalFuelMT:         s.TotalFuelMT,
		TotalMonths:         s.TotalMonths,
	}
}

func ledgerRows(ledger []simulation.MonthlyRecord) []models.LedgerRow {
	rows := make([]models.LedgerRow, 0, len(ledger))
	for _, r := range ledger {
		rows = append(rows, models.LedgerRow{
			Month:                      r.Month,
			Phase:                      string(r.Phase),
			FuelCost:                   r.FuelCost,
			SubscriptionCost:           r.SubscriptionCost,
			CumulativeSubscriptionCost: r.CumulativeSubscriptionCost,
			HullCleaningCost:           r.HullCleaningCost,
			SavingPct:                  r.SavingPct,
			FuelCostSavings:            r.FuelCostSavings,
			CumulativeSavings:          r.CumulativeSavings,
			CumulativeTotalCost:        r.CumulativeTotalCost,
			Profit:                     r.Profit,
			CumulativeROI:              r.CumulativeROI,
		})
	}
	return rows
}

func toConfigScenario(m models.ScenarioConfig) config.ScenarioConfig {
	return config.ScenarioConfig{
		Name:                 m.Name,
		ContractYears:        m.ContractYears,
		FleetSize:            m.FleetSize,
		FuelPrice:            m.FuelPrice,
		DailyFuelConsumption: m.DailyFuelConsumption,
		OperatingDaysPerYear: m.OperatingDaysPerYear,

		SavingHullPct:       m.SavingHullPct,
		SavingVoyagePct:     m.SavingVoyagePct,
		SavingEmissionPct:   m.SavingEmissionPct,
		SavingScorecardPct:  m.SavingScorecardPct,
		SavingPropulsionPct: m.SavingPropulsionPct,

		CostHull:       m.CostHull,
		CostVoyage:     m.CostVoyage,
		CostEmission:   m.CostEmission,
		CostScorecard:  m.CostScorecard,
		CostPropulsion: m.CostPropulsion,

		RampUpMonths:            m.RampUpMonths,
		CleaningCost:            m.CleaningCost,
		CleaningFrequencyMonths: m.CleaningFrequencyMonths,
		OneTimeCost:             m.OneTimeCost,
		CrewTrainingCost:        m.CrewTrainingCost,

		MonthlyDeteriorationPct:       m.MonthlyDeteriorationPct,
		YearlySubscriptionIncreasePct: m.YearlySubscriptionIncreasePct,
		RampUpSavingSharePct:          m.RampUpSavingSharePct,
		PostCleaningSavingSharePct:    m.PostCleaningSavingSharePct,
	}
}

func fromConfigScenario(s config.ScenarioConfig) models.ScenarioConfig {
	return models.ScenarioConfig{
		Name:                 s.Name,
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
