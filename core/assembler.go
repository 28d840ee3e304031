package core

import (
	"fmt"

	"github.com/gridfield/windplan/model"
)

// assemble packages accepted planar positions into a Layout: sequential IDs
// in acceptance order, geographic projection, achieved capacity and
// efficiency, and a parameter echo for traceability. Pure transformation,
// no side effects.
func assemble(site model.SiteParams, strategy Strategy, placed []Planar) model.Layout {
	turbines := make([]model.PlacedTurbine, 0, len(placed))
	for i, p := range placed {
		lat, lon := OffsetToCoordinate(site.CenterLat, site.CenterLon, p.X, p.Y)
		turbines = append(turbines, model.PlacedTurbine{
			ID:         fmt.Sprintf("T%d", i+1),
			Lat:        lat,
			Lon:        lon,
			Model:      site.TurbineModel,
			CapacityMW: site.CapacityMW,
		})
	}

	achieved := len(placed)
	return model.Layout{
		Turbines:         turbines,
		RequestedCount:   site.TurbineCount,
		AchievedCount:    achieved,
		CapacityMW:       float64(achieved) * site.CapacityMW,
		Efficiency:       float64(achieved) / float64(site.TurbineCount),
		Strategy:         strategy.String(),
		SpacingM:         site.MinSpacingM(),
		DominantAngleDeg: site.DominantAngleDeg,
		SiteLat:          site.CenterLat,
		SiteLon:          site.CenterLon,
	}
}
