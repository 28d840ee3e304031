package core

import (
	"context"
	"reflect"
	"testing"

	"github.com/gridfield/windplan/model"
)

func TestSpiral_SingleUnitAtExactCenter(t *testing.T) {
	site := model.SiteParams{
		CenterLat:       40.0,
		CenterLon:       -74.0,
		TurbineCount:    1,
		SpacingMultiple: 5,
		RotorDiameterM:  130,
		CapacityMW:      4.2,
	}

	layout, err := NewPlanner(nil).Plan(context.Background(), site, StrategySpiral)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	if layout.AchievedCount != 1 {
		t.Fatalf("achieved = %d, want 1", layout.AchievedCount)
	}
	// A zero offset projects onto the center coordinate with no error at all.
	if layout.Turbines[0].Lat != 40.0 || layout.Turbines[0].Lon != -74.0 {
		t.Errorf("single unit at (%v, %v), want exactly (40, -74)",
			layout.Turbines[0].Lat, layout.Turbines[0].Lon)
	}
}

func TestSpiral_SpacingInvariant(t *testing.T) {
	site := model.SiteParams{
		CenterLat:        40.0,
		CenterLon:        -74.0,
		TurbineCount:     12,
		SpacingMultiple:  5,
		RotorDiameterM:   130,
		CapacityMW:       4.2,
		DominantAngleDeg: 180,
	}

	placed := planSpiral(site, DefaultTuning())

	if len(placed) == 0 || len(placed) > 12 {
		t.Fatalf("placed %d units, want 1..12", len(placed))
	}
	if min := minPairwiseDistance(placed); min < 650-1e-6 {
		t.Errorf("min pairwise distance = %v, want >= 650", min)
	}
}

func TestSpiral_Deterministic(t *testing.T) {
	site := model.SiteParams{
		CenterLat:        40.0,
		CenterLon:        -74.0,
		TurbineCount:     10,
		SpacingMultiple:  5,
		RotorDiameterM:   130,
		CapacityMW:       4.2,
		DominantAngleDeg: 45,
	}

	a := planSpiral(site, DefaultTuning())
	b := planSpiral(site, DefaultTuning())

	if !reflect.DeepEqual(a, b) {
		t.Errorf("two spiral runs with identical inputs differ")
	}
}

func TestSpiral_ExhaustionReportsUnderfill(t *testing.T) {
	// A radius step larger than the walk bound exhausts the spiral after a
	// single off-center candidate, leaving the third unit unplaced.
	site := model.SiteParams{
		CenterLat:       40.0,
		CenterLon:       -74.0,
		TurbineCount:    3,
		SpacingMultiple: 5,
		RotorDiameterM:  130,
		CapacityMW:      4.2,
	}
	tune := Tuning{SpiralAngleStepRad: 1.0, SpiralRadiusStepFrac: 2.0}

	planner := NewPlanner(nil)
	planner.Tuning = tune
	layout, err := planner.Plan(context.Background(), site, StrategySpiral)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	if layout.AchievedCount >= layout.RequestedCount {
		t.Fatalf("achieved = %d, want < %d", layout.AchievedCount, layout.RequestedCount)
	}
	if layout.Efficiency >= 1.0 {
		t.Errorf("efficiency = %v, want < 1.0", layout.Efficiency)
	}
	if layout.CapacityMW != float64(layout.AchievedCount)*4.2 {
		t.Errorf("capacity = %v, want achieved*4.2", layout.CapacityMW)
	}
}
