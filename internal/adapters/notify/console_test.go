package notify_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alejandrodnm/ratepilot/internal/adapters/notify"
	"github.com/alejandrodnm/ratepilot/internal/domain"
	"github.com/alejandrodnm/ratepilot/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeContext() domain.PricingContext {
	return domain.PricingContext{
		PropertyName:    "Hotel Bellavista",
		Location:        domain.LocationCentral,
		ReviewScore:     4.7,
		StrongBrand:     true,
		LuxuryAmenities: true,
		Demand:          domain.DemandHigh,
		LeadTimeDays:    100,
		CompetitorPrice: 120,
	}
}

func makeQuote(floor bool) domain.PriceBreakdown {
	return domain.PriceBreakdown{
		BaseRate: 80,
		Steps: []domain.AdjustmentStep{
			{Name: "demand", Factor: 1.6, Price: 128},
			{Name: "location", Factor: 1.4, Price: 179.2},
		},
		PreFloor:     179.2,
		FloorApplied: floor,
		PreNoise:     179.2,
		Noise:        1.25,
		Final:        180.45,
	}
}

func makeSeries(days int) domain.SeasonalSeries {
	s := domain.SeasonalSeries{}
	for d := 0; d < days; d++ {
		demand := domain.DemandLow
		if d%30 < 10 {
			demand = domain.DemandHigh
		}
		s.Days = append(s.Days, domain.DailyRate{Day: d, Demand: demand, Price: 200 + float64(d)})
	}
	return s
}

func TestConsole_ImplementsReporter(t *testing.T) {
	var _ ports.Reporter = notify.NewConsoleWriter(&bytes.Buffer{}, false)
}

func TestConsole_ReportQuote(t *testing.T) {
	var buf bytes.Buffer
	c := notify.NewConsoleWriter(&buf, false)

	require.NoError(t, c.ReportQuote(context.Background(), makeContext(), makeQuote(false)))

	out := buf.String()
	assert.Contains(t, out, "Hotel Bellavista")
	assert.Contains(t, out, "€180.45")
	assert.Contains(t, out, "demand=high")
	assert.NotContains(t, out, "competitive floor")
	assert.NotContains(t, out, "179.2000", "breakdown only in verbose mode")
}

func TestConsole_ReportQuote_VerboseBreakdown(t *testing.T) {
	var buf bytes.Buffer
	c := notify.NewConsoleWriter(&buf, true)

	require.NoError(t, c.ReportQuote(context.Background(), makeContext(), makeQuote(true)))

	out := buf.String()
	assert.Contains(t, out, "x1.60")
	assert.Contains(t, out, "179.2000")
	assert.Contains(t, out, "applied")
	assert.Contains(t, out, "competitive floor")
}

func TestConsole_ReportScenarios(t *testing.T) {
	var buf bytes.Buffer
	c := notify.NewConsoleWriter(&buf, false)

	batch := domain.ScenarioBatch{Seed: makeContext()}
	for i, p := range []float64{210.5, 250.75, 199.99} {
		pc := makeContext()
		pc.LeadTimeDays = 10 * i
		batch.Scenarios = append(batch.Scenarios, domain.Scenario{Index: i, Context: pc, Price: p})
	}

	require.NoError(t, c.ReportScenarios(context.Background(), batch))

	out := buf.String()
	assert.Contains(t, out, "WHAT-IF SCENARIOS (3)")
	assert.Contains(t, out, "€250.75")
	assert.Contains(t, out, "min €199.99")
	assert.Contains(t, out, "max €250.75")
}

func TestConsole_ReportScenarios_Empty(t *testing.T) {
	var buf bytes.Buffer
	c := notify.NewConsoleWriter(&buf, false)

	require.NoError(t, c.ReportScenarios(context.Background(), domain.ScenarioBatch{}))
	assert.Contains(t, buf.String(), "No scenarios generated")
}

func TestConsole_ReportProjection_HeadAndSeasons(t *testing.T) {
	var buf bytes.Buffer
	c := notify.NewConsoleWriter(&buf, false)

	require.NoError(t, c.ReportProjection(context.Background(), makeSeries(60), 5))

	out := buf.String()
	assert.Contains(t, out, "SEASONAL PROJECTION (60 days)")
	assert.Contains(t, out, "€204.00")
	assert.NotContains(t, out, "€205.00")
	assert.Contains(t, out, "55 more days")
	assert.Contains(t, out, "high")
	assert.Contains(t, out, "low")
	assert.NotContains(t, out, "medium")
}

func TestConsole_ReportRun(t *testing.T) {
	var buf bytes.Buffer
	c := notify.NewConsoleWriter(&buf, false)

	pc := makeContext()
	run := domain.Run{
		ID:         "0f8fad5b-d9cb-469f-a165-70867728950e",
		CreatedAt:  time.Now(),
		Seed:       42,
		Context:    pc,
		Competitor: domain.NeutralSnapshot(pc.PropertyName),
		Score:      domain.PropertyScore(pc),
		Quote:      makeQuote(false),
		Projection: makeSeries(3),
	}

	require.NoError(t, c.ReportRun(context.Background(), run, 10))

	out := buf.String()
	assert.Contains(t, out, "RATE ADVISORY")
	assert.Contains(t, out, "seed 42")
	assert.Contains(t, out, "neutral fallback")
	assert.Contains(t, out, "Property score: 120/120")
	assert.Contains(t, out, "No scenarios generated")
	assert.NotContains(t, out, "more days")
}

func TestConsole_PrintHistory(t *testing.T) {
	var buf bytes.Buffer
	c := notify.NewConsoleWriter(&buf, false)

	c.PrintHistory([]domain.RunSummary{{
		ID:              "0f8fad5b-d9cb-469f-a165-70867728950e",
		CreatedAt:       time.Now(),
		PropertyName:    strings.Repeat("Grand Hotel ", 5),
		Score:           85,
		FinalPrice:      301.4,
		PreNoisePrice:   300,
		CompetitorPrice: 100,
		Fallback:        true,
	}})

	out := buf.String()
	assert.Contains(t, out, "0f8fad5b")
	assert.NotContains(t, out, "0f8fad5b-d9cb")
	assert.Contains(t, out, "...")
	assert.Contains(t, out, "€301.40")
	assert.Contains(t, out, "€100.00*")
}

func TestConsole_PrintHistory_Empty(t *testing.T) {
	var buf bytes.Buffer
	c := notify.NewConsoleWriter(&buf, false)

	c.PrintHistory(nil)
	assert.Contains(t, buf.String(), "No archived runs yet")
}

func TestConsole_PrintScore(t *testing.T) {
	var buf bytes.Buffer
	c := notify.NewConsoleWriter(&buf, false)

	c.PrintScore(domain.PricingContext{PropertyName: "Ostello", Location: domain.LocationPeripheral, ReviewScore: 3.2})
	assert.Contains(t, buf.String(), "Ostello: score 50/120")
}
