// core/site_loader.go
package core

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gridfield/windplan/model"
)

// SiteScenario is what a JSON scenario file resolves to: the site parameters
// plus the strategy the file asked for.
type SiteScenario struct {
	Site     model.SiteParams
	Strategy Strategy
}

// internal JSON shapes – kept unexported so the file format can evolve
// without touching the public types.
type siteScenarioJSON struct {
	Center           centerJSON `json:"center"`
	TurbineCount     int        `json:"turbine_count"`
	SpacingMultiple  float64    `json:"spacing_multiple"`
	RotorDiameterM   float64    `json:"rotor_diameter_m"`
	CapacityMW       float64    `json:"capacity_mw"`
	DominantAngleDeg float64    `json:"dominant_angle_deg"`
	TurbineModel     string     `json:"turbine_model"`
	Strategy         string     `json:"strategy"` // grid | spiral | greedy; defaults to grid
}

type centerJSON struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// LoadSiteScenario reads a JSON site scenario from r. It fails only on
// JSON/structural problems; semantic validation of the parameters happens
// once, in Planner.Plan, so that direct callers and file-driven callers hit
// the exact same checks.
func LoadSiteScenario(r io.Reader) (*SiteScenario, error) {
	var payload siteScenarioJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("LoadSiteScenario: decode failed: %w", err)
	}

	strategy := StrategyGrid
	if payload.Strategy != "" {
		parsed, err := ParseStrategy(payload.Strategy)
		if err != nil {
			return nil, fmt.Errorf("LoadSiteScenario: %w", err)
		}
		strategy = parsed
	}

	return &SiteScenario{
		Site: model.SiteParams{
			CenterLat:        payload.Center.Lat,
			CenterLon:        payload.Center.Lon,
			TurbineCount:     payload.TurbineCount,
			SpacingMultiple:  payload.SpacingMultiple,
			RotorDiameterM:   payload.RotorDiameterM,
			CapacityMW:       payload.CapacityMW,
			DominantAngleDeg: payload.DominantAngleDeg,
			TurbineModel:     payload.TurbineModel,
		},
		Strategy: strategy,
	}, nil
}
