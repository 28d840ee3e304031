package core

import (
	"sort"

	"github.com/gridfield/windplan/model"
)

// planGreedy generates a dense candidate lattice inside the search radius,
// scores every candidate, and accepts them in descending score order subject
// to the spacing constraint. It maximizes achieved count within the radius
// rather than pattern regularity.
func planGreedy(site model.SiteParams, tune Tuning) []Planar {
	tune = tune.withDefaults()
	n := site.TurbineCount
	spacing := site.MinSpacingM()

	radius := tune.GreedySearchRadiusM
	if radius <= 0 {
		radius = defaultSearchRadius(spacing, n)
	}
	pitch := tune.GreedyPitchFactor * spacing

	type candidate struct {
		pos   Planar
		score float64
	}

	// Integer-stepped lattice so the generation order (and therefore the
	// stable-sort tie-break) is identical on every run.
	steps := int(radius / pitch)
	candidates := make([]candidate, 0, (2*steps+1)*(2*steps+1))
	for iy := -steps; iy <= steps; iy++ {
		for ix := -steps; ix <= steps; ix++ {
			pos := Planar{X: float64(ix) * pitch, Y: float64(iy) * pitch}
			dist := pos.Norm()
			if dist > radius {
				continue
			}
			candidates = append(candidates, candidate{
				pos:   pos,
				score: greedyScore(dist, site.DominantAngleDeg),
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	placed := make([]Planar, 0, n)
	for _, c := range candidates {
		if len(placed) >= n {
			break
		}
		if IsAdmissible(c.pos, placed, spacing) {
			placed = append(placed, c.pos)
		}
	}
	return placed
}

// greedyScore prefers candidates close to the site center. The wind term is
// a constant additive bias from the site's dominant angle; it does not vary
// with the candidate's own bearing, so it shifts every score equally.
// Replacing it with bearing-aware wake scoring would change which layouts
// are accepted, so it stays a constant until that change is made on purpose.
func greedyScore(distToCenterM, dominantAngleDeg float64) float64 {
	return 1/(1+distToCenterM/1000) + dominantAngleDeg/360
}
