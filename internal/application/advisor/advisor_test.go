package advisor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alejandrodnm/ratepilot/internal/application/projection"
	"github.com/alejandrodnm/ratepilot/internal/application/scenario"
	"github.com/alejandrodnm/ratepilot/internal/domain"
	"github.com/alejandrodnm/ratepilot/internal/domain/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompetitors struct {
	snap domain.CompetitorSnapshot
	err  error
}

func (s stubCompetitors) FetchCompetitor(_ context.Context, _ string) (domain.CompetitorSnapshot, error) {
	return s.snap, s.err
}

type recordingReporter struct {
	runs []domain.Run
	show int
	err  error
}

func (r *recordingReporter) ReportQuote(context.Context, domain.PricingContext, domain.PriceBreakdown) error {
	return nil
}
func (r *recordingReporter) ReportScenarios(context.Context, domain.ScenarioBatch) error { return nil }
func (r *recordingReporter) ReportProjection(context.Context, domain.SeasonalSeries, int) error {
	return nil
}
func (r *recordingReporter) ReportRun(_ context.Context, run domain.Run, show int) error {
	r.runs = append(r.runs, run)
	r.show = show
	return r.err
}

type memoryStore struct {
	saved []domain.Run
	err   error
}

func (m *memoryStore) SaveRun(_ context.Context, run domain.Run) error {
	m.saved = append(m.saved, run)
	return m.err
}
func (m *memoryStore) GetRuns(context.Context, time.Time, time.Time) ([]domain.RunSummary, error) {
	return nil, nil
}
func (m *memoryStore) GetDailyRates(context.Context, string) (domain.SeasonalSeries, error) {
	return domain.SeasonalSeries{}, nil
}
func (m *memoryStore) Close() error { return nil }

func newTestAdvisor(cp stubCompetitors, rep *recordingReporter, store *memoryStore) *Advisor {
	engine := pricing.NewEngine(pricing.DefaultConfig())
	a := New(DefaultConfig(), cp, engine,
		scenario.New(scenario.DefaultConfig(), engine),
		projection.New(projection.DefaultConfig(), engine),
		nil, nil)
	if rep != nil {
		a.reporter = rep
	}
	if store != nil {
		a.store = store
	}
	return a
}

func testRequest() Request {
	return Request{
		PropertyName:    "Hotel Bellavista",
		StrongBrand:     true,
		LuxuryAmenities: false,
		Demand:          domain.DemandMedium,
		LeadTimeDays:    45,
		Seed:            123,
	}
}

func TestAdvisor_Run_UsesCompetitorSnapshot(t *testing.T) {
	cp := stubCompetitors{snap: domain.CompetitorSnapshot{
		Name:        "Hotel Bellavista Centro",
		ReviewScore: 4.7,
		Location:    domain.LocationCentral,
		Price:       150,
	}}
	rep := &recordingReporter{}
	store := &memoryStore{}
	a := newTestAdvisor(cp, rep, store)

	run, err := a.Run(context.Background(), testRequest(), pricing.NewSource(123))
	require.NoError(t, err)

	assert.NotEmpty(t, run.ID)
	assert.Equal(t, uint64(123), run.Seed)
	assert.Equal(t, "Hotel Bellavista Centro", run.Context.PropertyName)
	assert.Equal(t, 4.7, run.Context.ReviewScore)
	assert.Equal(t, domain.LocationCentral, run.Context.Location)
	assert.Equal(t, 150.0, run.Context.CompetitorPrice)
	assert.Equal(t, domain.DemandMedium, run.Context.Demand)
	assert.True(t, run.Context.StrongBrand)
	assert.False(t, run.Competitor.Fallback)

	assert.Equal(t, 105, run.Score) // 50 + 20 central + 20 reseñas + 15 marca
	assert.Len(t, run.Scenarios.Scenarios, 5)
	assert.Equal(t, 365, run.Projection.Len())

	require.Len(t, rep.runs, 1)
	assert.Equal(t, 10, rep.show)
	require.Len(t, store.saved, 1)
	assert.Equal(t, run.ID, store.saved[0].ID)
}

func TestAdvisor_Run_FallsBackOnProviderError(t *testing.T) {
	a := newTestAdvisor(stubCompetitors{err: errors.New("timeout")}, nil, nil)

	run, err := a.Run(context.Background(), testRequest(), pricing.NewSource(1))
	require.NoError(t, err)

	assert.True(t, run.Competitor.Fallback)
	assert.Equal(t, "Hotel Bellavista", run.Context.PropertyName)
	assert.Equal(t, 4.0, run.Context.ReviewScore)
	assert.Equal(t, domain.LocationCentral, run.Context.Location)
	assert.Equal(t, 100.0, run.Context.CompetitorPrice)
}

func TestAdvisor_Run_ReporterAndStoreErrorsAreNotFatal(t *testing.T) {
	rep := &recordingReporter{err: errors.New("broken pipe")}
	store := &memoryStore{err: errors.New("disk full")}
	a := newTestAdvisor(stubCompetitors{err: errors.New("offline")}, rep, store)

	_, err := a.Run(context.Background(), testRequest(), pricing.NewSource(1))
	assert.NoError(t, err)
	assert.Len(t, rep.runs, 1)
	assert.Len(t, store.saved, 1)
}

func TestAdvisor_Run_DeterministicWithSeed(t *testing.T) {
	cp := stubCompetitors{err: errors.New("offline")}
	a := newTestAdvisor(cp, nil, nil)

	r1, err := a.Run(context.Background(), testRequest(), pricing.NewSource(55))
	require.NoError(t, err)
	r2, err := a.Run(context.Background(), testRequest(), pricing.NewSource(55))
	require.NoError(t, err)

	assert.Equal(t, r1.Quote, r2.Quote)
	assert.Equal(t, r1.Scenarios.Prices(), r2.Scenarios.Prices())
	assert.Equal(t, r1.Projection.Prices(), r2.Projection.Prices())
	assert.NotEqual(t, r1.ID, r2.ID)
}

func TestAdvisor_Run_NilRandom(t *testing.T) {
	a := newTestAdvisor(stubCompetitors{}, nil, nil)
	_, err := a.Run(context.Background(), testRequest(), nil)
	assert.Error(t, err)
}

func TestAdvisor_Run_NilProviderUsesNeutral(t *testing.T) {
	engine := pricing.NewEngine(pricing.DefaultConfig())
	a := New(Config{}, nil, engine,
		scenario.New(scenario.DefaultConfig(), engine),
		projection.New(projection.DefaultConfig(), engine),
		nil, nil)

	run, err := a.Run(context.Background(), testRequest(), pricing.NewSource(3))
	require.NoError(t, err)
	assert.True(t, run.Competitor.Fallback)
	assert.Equal(t, 365, run.Projection.Len())
}
