package model

import "testing"

func validParams() SiteParams {
	return SiteParams{
		CenterLat:        40.0,
		CenterLon:        -74.0,
		TurbineCount:     9,
		SpacingMultiple:  5,
		RotorDiameterM:   130,
		CapacityMW:       4.2,
		DominantAngleDeg: 270,
	}
}

func TestSiteParamsValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*SiteParams)
		wantErr bool
	}{
		{"valid", func(p *SiteParams) {}, false},
		{"zero angle ok", func(p *SiteParams) { p.DominantAngleDeg = 0 }, false},
		{"zero count", func(p *SiteParams) { p.TurbineCount = 0 }, true},
		{"negative count", func(p *SiteParams) { p.TurbineCount = -3 }, true},
		{"zero spacing multiple", func(p *SiteParams) { p.SpacingMultiple = 0 }, true},
		{"zero diameter", func(p *SiteParams) { p.RotorDiameterM = 0 }, true},
		{"zero capacity", func(p *SiteParams) { p.CapacityMW = 0 }, true},
		{"angle 360", func(p *SiteParams) { p.DominantAngleDeg = 360 }, true},
		{"negative angle", func(p *SiteParams) { p.DominantAngleDeg = -1 }, true},
		{"latitude over 90", func(p *SiteParams) { p.CenterLat = 91 }, true},
		{"longitude under -180", func(p *SiteParams) { p.CenterLon = -181 }, true},
	}

	for _, tc := range cases {
		p := validParams()
		tc.mutate(&p)
		err := p.Validate()
		if tc.wantErr && err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
	}
}

func TestMinSpacingM(t *testing.T) {
	p := validParams()
	if got := p.MinSpacingM(); got != 650 {
		t.Errorf("MinSpacingM = %v, want 650", got)
	}
}
