package model

// PlacedTurbine is one accepted unit in a finished layout. Instances are
// created by a strategy at acceptance time and never mutated afterwards;
// they are owned exclusively by their Layout.
type PlacedTurbine struct {
	// ID is a stable sequential label in acceptance order ("T1", "T2", ...).
	ID string `json:"id"`

	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`

	// Model and CapacityMW are copied from the site parameters so each unit
	// is self-describing when the layout is rendered or serialized.
	Model      string  `json:"model"`
	CapacityMW float64 `json:"capacity_mw"`
}
