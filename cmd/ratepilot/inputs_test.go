package main

import (
	"testing"

	"github.com/alejandrodnm/ratepilot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFlags() contextFlags {
	return contextFlags{
		name:            "Hotel Bellavista",
		location:        "centrale",
		review:          4.6,
		brand:           "si",
		luxury:          "no",
		demand:          "alta",
		leadDays:        100,
		competitorPrice: 120,
	}
}

func TestResolve_Valid(t *testing.T) {
	pc, err := validFlags().resolve(true)
	require.NoError(t, err)

	assert.Equal(t, domain.PricingContext{
		PropertyName:    "Hotel Bellavista",
		Location:        domain.LocationCentral,
		ReviewScore:     4.6,
		StrongBrand:     true,
		LuxuryAmenities: false,
		Demand:          domain.DemandHigh,
		LeadTimeDays:    100,
		CompetitorPrice: 120,
	}, pc)
}

func TestResolve_PermissiveDefaults(t *testing.T) {
	f := validFlags()
	f.location = "beach"
	f.demand = "festival"
	f.brand = "maybe"
	f.review = 7

	pc, err := f.resolve(false)
	require.NoError(t, err)

	assert.Equal(t, domain.LocationPeripheral, pc.Location)
	assert.Equal(t, domain.DemandUnknown, pc.Demand)
	assert.False(t, pc.StrongBrand)
	assert.Equal(t, 7.0, pc.ReviewScore, "out-of-range reviews pass through in permissive mode")
}

func TestResolve_StrictRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*contextFlags)
		want   string
	}{
		{"location", func(f *contextFlags) { f.location = "beach" }, `invalid location "beach"`},
		{"demand", func(f *contextFlags) { f.demand = "festival" }, `invalid demand "festival"`},
		{"brand", func(f *contextFlags) { f.brand = "maybe" }, `invalid brand "maybe"`},
		{"luxury", func(f *contextFlags) { f.luxury = "kinda" }, `invalid luxury "kinda"`},
		{"review", func(f *contextFlags) { f.review = 5.5 }, `invalid review "5.5"`},
		{"lead days", func(f *contextFlags) { f.leadDays = -1 }, `invalid lead-days "-1"`},
		{"competitor price", func(f *contextFlags) { f.competitorPrice = 0 }, `invalid competitor-price "0"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFlags()
			tt.mutate(&f)
			_, err := f.resolve(true)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}
