package core

import (
	"math"
	"testing"

	"github.com/gridfield/windplan/model"
)

func TestGrid_ThreeByThree(t *testing.T) {
	site := model.SiteParams{
		CenterLat:       40.0,
		CenterLon:       -74.0,
		TurbineCount:    9,
		SpacingMultiple: 5,
		RotorDiameterM:  130,
		CapacityMW:      4.2,
	}

	placed := planGrid(site)

	if len(placed) != 9 {
		t.Fatalf("placed %d units, want 9", len(placed))
	}
	if min := minPairwiseDistance(placed); min < 650-1e-6 {
		t.Errorf("min pairwise distance = %v, want >= 650", min)
	}

	// A 3x3 centered grid must include the site center itself.
	foundCenter := false
	for _, p := range placed {
		if math.Abs(p.X) < 1e-9 && math.Abs(p.Y) < 1e-9 {
			foundCenter = true
		}
	}
	if !foundCenter {
		t.Errorf("expected the centered 3x3 grid to contain the origin")
	}
}

func TestGrid_RotationKeepsSpacing(t *testing.T) {
	site := model.SiteParams{
		CenterLat:        40.0,
		CenterLon:        -74.0,
		TurbineCount:     12,
		SpacingMultiple:  5,
		RotorDiameterM:   130,
		CapacityMW:       4.2,
		DominantAngleDeg: 37.5,
	}

	placed := planGrid(site)

	if len(placed) != 12 {
		t.Fatalf("placed %d units, want 12", len(placed))
	}
	if min := minPairwiseDistance(placed); min < 650-1e-6 {
		t.Errorf("min pairwise distance after rotation = %v, want >= 650", min)
	}
}

func TestGrid_NonSquareCount(t *testing.T) {
	// n=7: rows = 2, cols = 4; the walk stops after exactly 7 units.
	site := model.SiteParams{
		CenterLat:       0,
		CenterLon:       0,
		TurbineCount:    7,
		SpacingMultiple: 4,
		RotorDiameterM:  100,
		CapacityMW:      3,
	}

	placed := planGrid(site)
	if len(placed) != 7 {
		t.Fatalf("placed %d units, want 7", len(placed))
	}
}
