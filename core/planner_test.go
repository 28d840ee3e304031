package core

import (
	"context"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/gridfield/windplan/model"
)

// minPairwiseDistance returns the smallest planar distance between any two
// placed positions, or +Inf for fewer than two.
func minPairwiseDistance(placed []Planar) float64 {
	min := math.Inf(1)
	for i := 0; i < len(placed); i++ {
		for j := i + 1; j < len(placed); j++ {
			if d := placed[i].DistanceTo(placed[j]); d < min {
				min = d
			}
		}
	}
	return min
}

// layoutOffsets projects a layout's turbines back onto the tangent plane
// around the layout's own site center.
func layoutOffsets(layout model.Layout) []Planar {
	placed := make([]Planar, 0, len(layout.Turbines))
	for _, turbine := range layout.Turbines {
		x, y := CoordinateToOffset(layout.SiteLat, layout.SiteLon, turbine.Lat, turbine.Lon)
		placed = append(placed, Planar{X: x, Y: y})
	}
	return placed
}

func validSite() model.SiteParams {
	return model.SiteParams{
		CenterLat:        40.0,
		CenterLon:        -74.0,
		TurbineCount:     9,
		SpacingMultiple:  5,
		RotorDiameterM:   130,
		CapacityMW:       4.2,
		DominantAngleDeg: 270,
		TurbineModel:     "V150-4.2",
	}
}

func TestPlan_ZeroCountRejected(t *testing.T) {
	site := validSite()
	site.TurbineCount = 0

	_, err := NewPlanner(nil).Plan(context.Background(), site, StrategyGrid)
	if err == nil {
		t.Fatalf("expected validation error for turbine count 0")
	}
}

func TestPlan_AngleOutOfRangeRejected(t *testing.T) {
	site := validSite()
	site.DominantAngleDeg = 360

	_, err := NewPlanner(nil).Plan(context.Background(), site, StrategySpiral)
	if err == nil {
		t.Fatalf("expected validation error for angle 360")
	}
}

func TestPlan_GridScenario(t *testing.T) {
	layout, err := NewPlanner(nil).Plan(context.Background(), validSite(), StrategyGrid)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	if layout.AchievedCount != 9 {
		t.Fatalf("achieved = %d, want 9", layout.AchievedCount)
	}
	if layout.Efficiency != 1.0 {
		t.Errorf("efficiency = %v, want 1.0", layout.Efficiency)
	}
	if got, want := layout.CapacityMW, 9*4.2; math.Abs(got-want) > 1e-9 {
		t.Errorf("capacity = %v, want %v", got, want)
	}
	if layout.Strategy != "grid" {
		t.Errorf("strategy = %q, want grid", layout.Strategy)
	}
	if layout.SpacingM != 650 {
		t.Errorf("spacing echo = %v, want 650", layout.SpacingM)
	}

	if layout.Turbines[0].ID != "T1" || layout.Turbines[8].ID != "T9" {
		t.Errorf("IDs = %q..%q, want T1..T9", layout.Turbines[0].ID, layout.Turbines[8].ID)
	}
	if layout.Turbines[0].Model != "V150-4.2" {
		t.Errorf("model = %q, want V150-4.2", layout.Turbines[0].Model)
	}

	if min := minPairwiseDistance(layoutOffsets(layout)); min < 650-1e-3 {
		t.Errorf("min pairwise distance after projection round trip = %v, want ~>= 650", min)
	}
}

func TestPlan_SpacingInvariantAcrossRandomInputs(t *testing.T) {
	// Property check over randomized valid parameters: the spacing
	// invariant and the count/capacity identities hold for every strategy.
	rng := rand.New(rand.NewSource(7))
	planner := NewPlanner(nil)

	for i := 0; i < 25; i++ {
		site := model.SiteParams{
			CenterLat:        rng.Float64()*120 - 60,
			CenterLon:        rng.Float64()*360 - 180,
			TurbineCount:     1 + rng.Intn(20),
			SpacingMultiple:  2 + rng.Float64()*6,
			RotorDiameterM:   80 + rng.Float64()*100,
			CapacityMW:       1 + rng.Float64()*10,
			DominantAngleDeg: rng.Float64() * 360,
		}
		if site.DominantAngleDeg >= 360 {
			site.DominantAngleDeg = 0
		}

		for _, strategy := range []Strategy{StrategyGrid, StrategySpiral, StrategyGreedy} {
			layout, err := planner.Plan(context.Background(), site, strategy)
			if err != nil {
				t.Fatalf("case %d %s: Plan: %v", i, strategy, err)
			}

			if layout.AchievedCount > layout.RequestedCount {
				t.Fatalf("case %d %s: achieved %d > requested %d",
					i, strategy, layout.AchievedCount, layout.RequestedCount)
			}
			if got, want := layout.CapacityMW, float64(layout.AchievedCount)*site.CapacityMW; math.Abs(got-want) > 1e-9 {
				t.Fatalf("case %d %s: capacity = %v, want %v", i, strategy, got, want)
			}
			if got, want := layout.Efficiency, float64(layout.AchievedCount)/float64(layout.RequestedCount); math.Abs(got-want) > 1e-12 {
				t.Fatalf("case %d %s: efficiency = %v, want %v", i, strategy, got, want)
			}

			spacing := site.MinSpacingM()
			if min := minPairwiseDistance(layoutOffsets(layout)); layout.AchievedCount > 1 && min < spacing*(1-1e-6) {
				t.Fatalf("case %d %s: min pairwise distance %v below spacing %v",
					i, strategy, min, spacing)
			}
		}
	}
}

func TestPlan_DeterministicLayouts(t *testing.T) {
	planner := NewPlanner(nil)
	for _, strategy := range []Strategy{StrategyGrid, StrategySpiral, StrategyGreedy} {
		a, err := planner.Plan(context.Background(), validSite(), strategy)
		if err != nil {
			t.Fatalf("%s: Plan: %v", strategy, err)
		}
		b, err := planner.Plan(context.Background(), validSite(), strategy)
		if err != nil {
			t.Fatalf("%s: Plan: %v", strategy, err)
		}
		if !reflect.DeepEqual(a, b) {
			t.Errorf("%s: identical inputs produced different layouts", strategy)
		}
	}
}

type fakeRecorder struct {
	strategies []string
	outcomes   []string
	layouts    []model.Layout
}

func (r *fakeRecorder) RecordPlan(strategy, outcome string, seconds float64, layout model.Layout) {
	r.strategies = append(r.strategies, strategy)
	r.outcomes = append(r.outcomes, outcome)
	r.layouts = append(r.layouts, layout)
}

func TestPlan_RecorderSeesOutcomes(t *testing.T) {
	rec := &fakeRecorder{}
	planner := NewPlanner(nil)
	planner.Recorder = rec

	if _, err := planner.Plan(context.Background(), validSite(), StrategyGrid); err != nil {
		t.Fatalf("Plan: %v", err)
	}

	bad := validSite()
	bad.RotorDiameterM = 0
	if _, err := planner.Plan(context.Background(), bad, StrategyGrid); err == nil {
		t.Fatalf("expected validation error for zero rotor diameter")
	}

	if len(rec.outcomes) != 2 {
		t.Fatalf("recorded %d runs, want 2", len(rec.outcomes))
	}
	if rec.outcomes[0] != OutcomeFull {
		t.Errorf("first outcome = %q, want %q", rec.outcomes[0], OutcomeFull)
	}
	if rec.outcomes[1] != OutcomeInvalid {
		t.Errorf("second outcome = %q, want %q", rec.outcomes[1], OutcomeInvalid)
	}
}

func TestParseStrategy(t *testing.T) {
	cases := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{"grid", StrategyGrid, false},
		{"Spiral", StrategySpiral, false},
		{" GREEDY ", StrategyGreedy, false},
		{"", StrategyGrid, true},
		{"voronoi", StrategyGrid, true},
	}

	for _, tc := range cases {
		got, err := ParseStrategy(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseStrategy(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseStrategy(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseStrategy(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
