package core

import (
	"math"

	"github.com/gridfield/windplan/model"
)

// planGrid places units on a centered rectangular lattice at the minimum
// spacing, rotated as a whole to the dominant wind direction.
//
// rows = floor(sqrt(n)) and cols = ceil(n/rows), so rows*cols >= n and the
// grid always reaches the requested count. A regular lattice at exactly the
// minimum spacing satisfies the separation constraint by construction, so
// candidates are accepted unconditionally.
func planGrid(site model.SiteParams) []Planar {
	n := site.TurbineCount
	spacing := site.MinSpacingM()

	rows := int(math.Floor(math.Sqrt(float64(n))))
	if rows < 1 {
		rows = 1
	}
	cols := (n + rows - 1) / rows

	placed := make([]Planar, 0, n)
	for row := 0; row < rows && len(placed) < n; row++ {
		for col := 0; col < cols && len(placed) < n; col++ {
			x := (float64(col) - float64(cols-1)/2) * spacing
			y := (float64(row) - float64(rows-1)/2) * spacing
			rx, ry := Rotate(x, y, site.DominantAngleDeg)
			placed = append(placed, Planar{X: rx, Y: ry})
		}
	}
	return placed
}
