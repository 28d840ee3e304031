package core

import (
	"math"

	"github.com/gridfield/windplan/model"
)

// planSpiral walks an Archimedean-style spiral outward from the site center,
// accepting every point that clears the spacing constraint against the units
// placed so far. The first unit always sits at the exact center.
//
// The walk is bounded at minSpacing * n * 0.5 of radius. If the spiral is
// exhausted before n units are placed, the shorter result is returned as-is;
// under-fill is a reported outcome, not an error. The walk order is fixed
// for given inputs, so results are reproducible.
func planSpiral(site model.SiteParams, tune Tuning) []Planar {
	tune = tune.withDefaults()
	n := site.TurbineCount
	spacing := site.MinSpacingM()

	placed := make([]Planar, 0, n)
	placed = append(placed, Planar{})
	if n == 1 {
		return placed
	}

	maxRadius := spacing * float64(n) * 0.5
	angle := 0.0
	radius := 0.0
	for radius <= maxRadius && len(placed) < n {
		angle += tune.SpiralAngleStepRad
		radius += tune.SpiralRadiusStepFrac * spacing

		x, y := Rotate(radius*math.Cos(angle), radius*math.Sin(angle), site.DominantAngleDeg)
		cand := Planar{X: x, Y: y}
		if IsAdmissible(cand, placed, spacing) {
			placed = append(placed, cand)
		}
	}
	return placed
}
