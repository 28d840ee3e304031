package core

import "math"

// Tuning holds the strategy knobs that are not part of the site input.
// The zero value of any field means "use the default", so a partially
// populated Tuning (e.g. from a config file) is always usable.
type Tuning struct {
	// SpiralAngleStepRad is the angular increment per spiral step.
	SpiralAngleStepRad float64

	// SpiralRadiusStepFrac is the radius growth per spiral step, as a
	// fraction of the minimum spacing.
	SpiralRadiusStepFrac float64

	// GreedyPitchFactor sets the candidate lattice pitch as a fraction of
	// the minimum spacing. Below 1.0 the lattice is denser than the
	// constraint, which is the point: the admissibility check thins it out.
	GreedyPitchFactor float64

	// GreedySearchRadiusM bounds the greedy candidate lattice. When zero,
	// a radius is derived from the spacing and the requested count.
	GreedySearchRadiusM float64
}

// DefaultTuning returns the stock strategy parameters.
func DefaultTuning() Tuning {
	return Tuning{
		SpiralAngleStepRad:   0.1,
		SpiralRadiusStepFrac: 0.02,
		GreedyPitchFactor:    0.8,
	}
}

// withDefaults fills zero-valued fields from DefaultTuning.
func (t Tuning) withDefaults() Tuning {
	def := DefaultTuning()
	if t.SpiralAngleStepRad <= 0 {
		t.SpiralAngleStepRad = def.SpiralAngleStepRad
	}
	if t.SpiralRadiusStepFrac <= 0 {
		t.SpiralRadiusStepFrac = def.SpiralRadiusStepFrac
	}
	if t.GreedyPitchFactor <= 0 {
		t.GreedyPitchFactor = def.GreedyPitchFactor
	}
	return t
}

// defaultSearchRadius sizes the greedy lattice when the caller gives none.
// A disc of radius minSpacing*sqrt(n)*0.75 holds roughly 2n units at the
// minimum spacing, so full placement is normally feasible while the lattice
// stays bounded. Callers reproduce under-fill by passing a smaller radius.
func defaultSearchRadius(minSpacingM float64, count int) float64 {
	return minSpacingM * math.Sqrt(float64(count)) * 0.75
}
