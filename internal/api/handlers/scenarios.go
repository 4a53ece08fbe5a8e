package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"fleet-roi/internal/api/models"
	"fleet-roi/internal/config"

	"github.com/gin-gonic/gin"
)

// ScenarioHandler handles scenario preset requests
type ScenarioHandler struct {
	scenarioDir string
}

// GetScenarioDir returns the scenario directory path
func (h *ScenarioHandler) GetScenarioDir() string {
	return h.scenarioDir
}

// NewScenarioHandler creates a new scenario handler
func NewScenarioHandler() *ScenarioHandler {
	dir := os.Getenv("SCENARIO_DIR")
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples", "scenarios")
		} else {
			dir = "./examples/scenarios"
		}
	}

	if absDir, err := filepath.Abs(dir); err == nil {
		dir = absDir
	}

	log.Printf("ScenarioHandler: using scenario directory: %s", dir)

	return &ScenarioHandler{scenarioDir: dir}
}

// ListScenarios handles GET /api/v1/scenarios
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	scenarios := []models.ScenarioInfo{}

	entries, err := os.ReadDir(h.scenarioDir)
	if err != nil {
		log.Printf("ScenarioHandler: cannot read %s: %v", h.scenarioDir, err)
		// An empty list is more useful to the client than an error here.
		c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || (!strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml")) {
			continue
		}

		sc, err := config.LoadScenarioFile(filepath.Join(h.scenarioDir, name))
		if err != nil {
			log.Printf("ScenarioHandler: skipping %s: %v", name, err)
			continue
		}

		id := strings.TrimSuffix(strings.TrimSuffix(name, ".yaml"), ".yml")
		display := sc.Name
		if display == "" {
			display = id
		}

		scenarios = append(scenarios, models.ScenarioInfo{
			ID:   id,
			Name: display,
			File: name,
			Specs: models.ScenarioSpecs{
				ContractYears: sc.ContractYears,
				FleetSize:     sc.FleetSize,
				FuelPrice:     sc.FuelPrice,
			},
		})
	}

	c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
}
