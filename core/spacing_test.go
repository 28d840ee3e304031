package core

import "testing"

func TestIsAdmissible_EmptyPlacedSet(t *testing.T) {
	if !IsAdmissible(Planar{X: 1, Y: 2}, nil, 650) {
		t.Errorf("expected any candidate to be admissible against an empty set")
	}
}

func TestIsAdmissible_ExactBoundaryDistance(t *testing.T) {
	// The constraint is "at least", so a candidate exactly at the minimum
	// spacing is admissible.
	placed := []Planar{{X: 0, Y: 0}}
	if !IsAdmissible(Planar{X: 650, Y: 0}, placed, 650) {
		t.Errorf("candidate at exactly min spacing should be admissible")
	}
}

func TestIsAdmissible_TooCloseToAnyOne(t *testing.T) {
	placed := []Planar{
		{X: 0, Y: 0},
		{X: 2000, Y: 0},
	}

	// Fine against the first, too close to the second.
	if IsAdmissible(Planar{X: 1600, Y: 0}, placed, 650) {
		t.Errorf("candidate 400m from a placed unit should be rejected")
	}
}
