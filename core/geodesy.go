package core

import "math"

// MetersPerDegree is the length of one degree of latitude on the local
// tangent plane (metres). Longitude degrees shrink by cos(latitude).
const MetersPerDegree = 111320.0

// Planar is a local tangent-plane offset in metres from the site center,
// x east and y north. It only exists during candidate generation; finished
// layouts carry geographic coordinates.
type Planar struct {
	X, Y float64
}

// DistanceTo returns the Euclidean distance between two planar offsets.
func (p Planar) DistanceTo(other Planar) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Norm returns the distance of the offset from the site center.
func (p Planar) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// OffsetToCoordinate projects a planar metre offset around the given center
// to a geographic coordinate using a local equirectangular approximation.
//
// Accuracy degrades gracefully with distance from the center; for site
// extents under a few tens of kilometres the error is far below turbine
// placement tolerances. That is a known property of the projection, not a
// defect.
func OffsetToCoordinate(centerLat, centerLon, dxM, dyM float64) (lat, lon float64) {
	lat = centerLat + dyM/MetersPerDegree
	lon = centerLon + dxM/(MetersPerDegree*math.Cos(centerLat*math.Pi/180))
	return lat, lon
}

// CoordinateToOffset is the inverse of OffsetToCoordinate around the same
// center. Round-tripping an offset under ~50 km recovers it to well within
// a millimetre.
func CoordinateToOffset(centerLat, centerLon, lat, lon float64) (dxM, dyM float64) {
	dyM = (lat - centerLat) * MetersPerDegree
	dxM = (lon - centerLon) * MetersPerDegree * math.Cos(centerLat*math.Pi/180)
	return dxM, dyM
}

// Rotate applies a 2D rotation of angleDeg degrees (counter-clockwise) to a
// planar vector. Strategies use it to align regular patterns with the
// dominant wind direction.
func Rotate(x, y, angleDeg float64) (float64, float64) {
	rad := angleDeg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return x*cos - y*sin, x*sin + y*cos
}
