package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertyScore_Base(t *testing.T) {
	ctx := PricingContext{Location: LocationPeripheral, ReviewScore: 3.5}
	assert.Equal(t, 50, PropertyScore(ctx))
}

func TestPropertyScore_AllBonuses(t *testing.T) {
	ctx := PricingContext{
		Location:        LocationCentral,
		ReviewScore:     4.0,
		StrongBrand:     true,
		LuxuryAmenities: true,
	}
	assert.Equal(t, MaxPropertyScore, PropertyScore(ctx))
	assert.Equal(t, 120, PropertyScore(ctx))
}

func TestPropertyScore_ReviewThreshold(t *testing.T) {
	ctx := PricingContext{Location: LocationPeripheral, ReviewScore: 3.99}
	assert.Equal(t, 50, PropertyScore(ctx))
	ctx.ReviewScore = 4.0
	assert.Equal(t, 70, PropertyScore(ctx))
}

// --- RoundPrice / Summarize ---

func TestRoundPrice(t *testing.T) {
	assert.Equal(t, 390.67, RoundPrice(390.6662))
	assert.Equal(t, 10.13, RoundPrice(10.125))
	assert.Equal(t, -1.5, RoundPrice(-1.4999))
	assert.Equal(t, 0.0, RoundPrice(0))
}

func TestSummarize(t *testing.T) {
	st := Summarize([]float64{100, 120.5, 90})
	assert.Equal(t, 3, st.Count)
	assert.Equal(t, 90.0, st.Min)
	assert.Equal(t, 120.5, st.Max)
	assert.InDelta(t, 103.5, st.Mean, 0.001)

	assert.Equal(t, PriceStats{}, Summarize(nil))
}

func TestSeasonalSeries_HeadAndStatsByDemand(t *testing.T) {
	s := SeasonalSeries{Days: []DailyRate{
		{Day: 0, Demand: DemandHigh, Price: 200},
		{Day: 1, Demand: DemandHigh, Price: 210},
		{Day: 2, Demand: DemandMedium, Price: 150},
	}}

	assert.Len(t, s.Head(2), 2)
	assert.Len(t, s.Head(10), 3)
	assert.Empty(t, s.Head(-1))

	by := s.StatsByDemand()
	assert.Equal(t, 2, by[DemandHigh].Count)
	assert.InDelta(t, 205.0, by[DemandHigh].Mean, 0.001)
	assert.Equal(t, 1, by[DemandMedium].Count)
}

func TestScenarioBatch_Prices(t *testing.T) {
	b := ScenarioBatch{Scenarios: []Scenario{{Index: 0, Price: 1.5}, {Index: 1, Price: 2.5}}}
	assert.Equal(t, []float64{1.5, 2.5}, b.Prices())
	assert.InDelta(t, 2.0, b.Stats().Mean, 0.001)
}
