package core

// IsAdmissible reports whether candidate keeps at least minSpacingM of
// planar distance to every already-placed position. The scan is O(n) per
// call; strategies invoke it once per candidate, which is fine at the unit
// counts this domain sees (tens to low hundreds).
func IsAdmissible(candidate Planar, placed []Planar, minSpacingM float64) bool {
	for _, p := range placed {
		if candidate.DistanceTo(p) < minSpacingM {
			return false
		}
	}
	return true
}
