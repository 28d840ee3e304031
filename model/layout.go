package model

// Layout is the output aggregate of one planning run. Turbines are ordered
// by acceptance, which matters for traceability but not for correctness.
//
// The one invariant the whole optimizer exists to guarantee: every pair of
// turbines is at least SpacingM apart in the local tangent plane.
type Layout struct {
	Turbines []PlacedTurbine `json:"turbines"`

	RequestedCount int `json:"requested_count"`
	AchievedCount  int `json:"achieved_count"`

	// CapacityMW is the achieved total: AchievedCount × per-unit capacity.
	CapacityMW float64 `json:"capacity_mw"`

	// Efficiency is AchievedCount / RequestedCount in [0, 1]. Values below
	// 1.0 signal under-fill; that is a reported outcome, not an error.
	Efficiency float64 `json:"efficiency"`

	// Strategy names the algorithm that produced this layout.
	Strategy string `json:"strategy"`

	// Parameter echo for traceability.
	SpacingM         float64 `json:"spacing_m"`
	DominantAngleDeg float64 `json:"dominant_angle_deg"`
	SiteLat          float64 `json:"site_lat"`
	SiteLon          float64 `json:"site_lon"`
}
