package model

import (
	"fmt"
	"math"
)

// SiteParams is the immutable input for one layout computation. All fields
// are read-only once planning starts; strategies never mutate it.
type SiteParams struct {
	// CenterLat / CenterLon locate the site center in decimal degrees.
	CenterLat float64
	CenterLon float64

	// TurbineCount is the requested number of units to place.
	TurbineCount int

	// SpacingMultiple expresses the minimum inter-turbine separation as a
	// multiple of RotorDiameterM (industry shorthand, e.g. "5D").
	SpacingMultiple float64

	// RotorDiameterM is the reference rotor diameter in metres.
	RotorDiameterM float64

	// CapacityMW is the rated capacity of a single unit, in megawatts.
	CapacityMW float64

	// DominantAngleDeg is the prevailing wind direction in degrees, [0, 360).
	// Grid and spiral patterns are rotated to align with it; the greedy
	// scorer uses it as a fixed bias term.
	DominantAngleDeg float64

	// TurbineModel is a free-form model label copied onto every placed unit.
	TurbineModel string
}

// MinSpacingM is the minimum pairwise separation in metres implied by the
// spacing multiple and rotor diameter.
func (p SiteParams) MinSpacingM() float64 {
	return p.SpacingMultiple * p.RotorDiameterM
}

// Validate rejects parameter sets that no strategy should attempt. Invalid
// input is an error, never clamped or corrected silently.
func (p SiteParams) Validate() error {
	if math.IsNaN(p.CenterLat) || p.CenterLat < -90 || p.CenterLat > 90 {
		return fmt.Errorf("center latitude %v out of range [-90, 90]", p.CenterLat)
	}
	if math.IsNaN(p.CenterLon) || p.CenterLon < -180 || p.CenterLon > 180 {
		return fmt.Errorf("center longitude %v out of range [-180, 180]", p.CenterLon)
	}
	if p.TurbineCount <= 0 {
		return fmt.Errorf("turbine count must be positive, got %d", p.TurbineCount)
	}
	if !(p.SpacingMultiple > 0) {
		return fmt.Errorf("spacing multiple must be positive, got %v", p.SpacingMultiple)
	}
	if !(p.RotorDiameterM > 0) {
		return fmt.Errorf("rotor diameter must be positive, got %v", p.RotorDiameterM)
	}
	if !(p.CapacityMW > 0) {
		return fmt.Errorf("capacity must be positive, got %v", p.CapacityMW)
	}
	if math.IsNaN(p.DominantAngleDeg) || p.DominantAngleDeg < 0 || p.DominantAngleDeg >= 360 {
		return fmt.Errorf("dominant angle %v out of range [0, 360)", p.DominantAngleDeg)
	}
	return nil
}
