// Package config loads planner tuning from a TOML file. Site parameters
// travel in JSON scenarios; tuning lives separately because it describes how
// the strategies search, not what the caller wants built.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/gridfield/windplan/core"
)

type tuningFile struct {
	Spiral spiralSection `toml:"spiral"`
	Greedy greedySection `toml:"greedy"`
}

type spiralSection struct {
	AngleStepRad   float64 `toml:"angle_step_rad"`
	RadiusStepFrac float64 `toml:"radius_step_frac"`
}

type greedySection struct {
	PitchFactor   float64 `toml:"pitch_factor"`
	SearchRadiusM float64 `toml:"search_radius_m"`
}

// LoadTuning reads tuning from a TOML file. Missing sections or fields keep
// their defaults; a missing file is an error (pass an empty path to skip the
// file and take defaults outright).
func LoadTuning(path string) (core.Tuning, error) {
	tune := core.DefaultTuning()
	if path == "" {
		return tune, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return tune, fmt.Errorf("read tuning file: %w", err)
	}

	var f tuningFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return tune, fmt.Errorf("parse tuning file %q: %w", path, err)
	}

	if f.Spiral.AngleStepRad > 0 {
		tune.SpiralAngleStepRad = f.Spiral.AngleStepRad
	}
	if f.Spiral.RadiusStepFrac > 0 {
		tune.SpiralRadiusStepFrac = f.Spiral.RadiusStepFrac
	}
	if f.Greedy.PitchFactor > 0 {
		tune.GreedyPitchFactor = f.Greedy.PitchFactor
	}
	if f.Greedy.SearchRadiusM > 0 {
		tune.GreedySearchRadiusM = f.Greedy.SearchRadiusM
	}
	return tune, nil
}
