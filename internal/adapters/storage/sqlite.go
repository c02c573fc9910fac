package storage

// sqlite.go: archivo opcional de runs de asesoramiento.
//
// Estrategia:
//   - `runs`: una fila por run con el contexto, la traza resumida y las medias.
//   - `scenario_prices`: una fila por escenario what-if (run_id, idx).
//   - `daily_rates`: una fila por día proyectado (run_id, day).
//   - Guardar el mismo run dos veces lo sobreescribe (UPSERT).
//   - Prune al arrancar: runs de más de un año, con sus hijos.

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alejandrodnm/ratepilot/internal/domain"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id               TEXT PRIMARY KEY,
    created_at       TEXT    NOT NULL,
    property_name    TEXT    NOT NULL DEFAULT '',
    seed             INTEGER NOT NULL DEFAULT 0,
    location         TEXT    NOT NULL,
    review_score     REAL    NOT NULL DEFAULT 0,
    strong_brand     INTEGER NOT NULL DEFAULT 0,
    luxury           INTEGER NOT NULL DEFAULT 0,
    demand           TEXT    NOT NULL,
    lead_time_days   INTEGER NOT NULL DEFAULT 0,
    competitor_price REAL    NOT NULL DEFAULT 0,
    fallback         INTEGER NOT NULL DEFAULT 0,
    score            INTEGER NOT NULL DEFAULT 0,
    pre_floor        REAL    NOT NULL DEFAULT 0,
    floor_applied    INTEGER NOT NULL DEFAULT 0,
    pre_noise        REAL    NOT NULL DEFAULT 0,
    noise            REAL    NOT NULL DEFAULT 0,
    final_price      REAL    NOT NULL DEFAULT 0,
    scenario_mean    REAL    NOT NULL DEFAULT 0,
    projection_mean  REAL    NOT NULL DEFAULT 0,
    projection_days  INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS scenario_prices (
    run_id           TEXT    NOT NULL,
    idx              INTEGER NOT NULL,
    review_score     REAL    NOT NULL,
    location         TEXT    NOT NULL,
    strong_brand     INTEGER NOT NULL DEFAULT 0,
    lead_time_days   INTEGER NOT NULL DEFAULT 0,
    competitor_price REAL    NOT NULL DEFAULT 0,
    price            REAL    NOT NULL,
    PRIMARY KEY (run_id, idx)
);

CREATE TABLE IF NOT EXISTS daily_rates (
    run_id TEXT    NOT NULL,
    day    INTEGER NOT NULL,
    demand TEXT    NOT NULL,
    price  REAL    NOT NULL,
    PRIMARY KEY (run_id, day)
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
`

const (
	retentionRuns = 365 * 24 * time.Hour

	// Ancho fijo para que el orden lexicográfico coincida con el temporal.
	timeLayout = "2006-01-02T15:04:05.000000000Z"
)

// SQLiteStorage implementa ports.RunStore usando SQLite (pure Go, sin CGo).
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage abre (o crea) la base de datos en la ruta dada,
// aplica el schema y limpia runs antiguos.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage.NewSQLiteStorage: open %q: %w", path, err)
	}
	db.SetMaxOpenConns(1) // SQLite es single-writer
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.NewSQLiteStorage: apply schema: %w", err)
	}

	s := &SQLiteStorage{db: db}
	s.pruneOld(context.Background())
	return s, nil
}

// SaveRun persiste el run, sus escenarios y su proyección en una transacción.
func (s *SQLiteStorage) SaveRun(ctx context.Context, run domain.Run) error {
	if run.ID == "" {
		return fmt.Errorf("storage.SaveRun: empty run id")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage.SaveRun: begin tx: %w", err)
	}
	defer tx.Rollback()

	pc := run.Context
	q := run.Quote
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs
			(id, created_at, property_name, seed, location, review_score, strong_brand,
			 luxury, demand, lead_time_days, competitor_price, fallback, score,
			 pre_floor, floor_applied, pre_noise, noise, final_price,
			 scenario_mean, projection_mean, projection_days)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			property_name    = excluded.property_name,
			location         = excluded.location,
			review_score     = excluded.review_score,
			strong_brand     = excluded.strong_brand,
			luxury           = excluded.luxury,
			demand           = excluded.demand,
			lead_time_days   = excluded.lead_time_days,
			competitor_price = excluded.competitor_price,
			fallback         = excluded.fallback,
			score            = excluded.score,
			pre_floor        = excluded.pre_floor,
			floor_applied    = excluded.floor_applied,
			pre_noise        = excluded.pre_noise,
			noise            = excluded.noise,
			final_price      = excluded.final_price,
			scenario_mean    = excluded.scenario_mean,
			projection_mean  = excluded.projection_mean,
			projection_days  = excluded.projection_days
	`,
		run.ID,
		formatTime(run.CreatedAt),
		pc.PropertyName,
		int64(run.Seed), // SQLite INTEGER es con signo; se recupera con uint64()
		pc.Location.String(),
		pc.ReviewScore,
		boolInt(pc.StrongBrand),
		boolInt(pc.LuxuryAmenities),
		pc.Demand.String(),
		pc.LeadTimeDays,
		pc.CompetitorPrice,
		boolInt(run.Competitor.Fallback),
		run.Score,
		q.PreFloor,
		boolInt(q.FloorApplied),
		q.PreNoise,
		q.Noise,
		q.Final,
		run.Scenarios.Stats().Mean,
		run.Projection.Stats().Mean,
		run.Projection.Len(),
	); err != nil {
		return fmt.Errorf("storage.SaveRun: upsert run %s: %w", run.ID, err)
	}

	if err := saveScenarios(ctx, tx, run.ID, run.Scenarios); err != nil {
		return err
	}
	if err := saveDailyRates(ctx, tx, run.ID, run.Projection); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage.SaveRun: commit: %w", err)
	}
	return nil
}

// GetRuns devuelve los runs creados en el rango dado, más recientes primero.
func (s *SQLiteStorage) GetRuns(ctx context.Context, from, to time.Time) ([]domain.RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, property_name, seed, score, final_price, pre_noise,
		       competitor_price, fallback, scenario_mean, projection_mean, projection_days
		FROM runs
		WHERE created_at BETWEEN ? AND ?
		ORDER BY created_at DESC
	`, formatTime(from), formatTime(to))
	if err != nil {
		return nil, fmt.Errorf("storage.GetRuns: query: %w", err)
	}
	defer rows.Close()

	var runs []domain.RunSummary
	for rows.Next() {
		var r domain.RunSummary
		var createdAt string
		var seed int64
		var fallback int

		if err := rows.Scan(
			&r.ID,
			&createdAt,
			&r.PropertyName,
			&seed,
			&r.Score,
			&r.FinalPrice,
			&r.PreNoisePrice,
			&r.CompetitorPrice,
			&fallback,
			&r.ScenarioMean,
			&r.ProjectionMean,
			&r.ProjectionDays,
		); err != nil {
			return nil, fmt.Errorf("storage.GetRuns: scan row: %w", err)
		}

		r.CreatedAt, _ = time.Parse(timeLayout, createdAt)
		r.Seed = uint64(seed)
		r.Fallback = fallback == 1
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// GetDailyRates devuelve la proyección archivada de un run, en orden de día.
func (s *SQLiteStorage) GetDailyRates(ctx context.Context, runID string) (domain.SeasonalSeries, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT day, demand, price FROM daily_rates WHERE run_id = ? ORDER BY day`,
		runID,
	)
	if err != nil {
		return domain.SeasonalSeries{}, fmt.Errorf("storage.GetDailyRates: query: %w", err)
	}
	defer rows.Close()

	var series domain.SeasonalSeries
	for rows.Next() {
		var d domain.DailyRate
		var demand string
		if err := rows.Scan(&d.Day, &demand, &d.Price); err != nil {
			return domain.SeasonalSeries{}, fmt.Errorf("storage.GetDailyRates: scan row: %w", err)
		}
		d.Demand, _ = domain.ParseDemandPeriod(demand)
		series.Days = append(series.Days, d)
	}

	return series, rows.Err()
}

// Close cierra la conexión a la base de datos.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// --- helpers internos ---

func saveScenarios(ctx context.Context, tx *sql.Tx, runID string, batch domain.ScenarioBatch) error {
	// filas sobrantes de un guardado anterior con más escenarios
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM scenario_prices WHERE run_id = ? AND idx >= ?`, runID, len(batch.Scenarios),
	); err != nil {
		return fmt.Errorf("storage.SaveRun: trim scenarios: %w", err)
	}
	if len(batch.Scenarios) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO scenario_prices
			(run_id, idx, review_score, location, strong_brand, lead_time_days, competitor_price, price)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id, idx) DO UPDATE SET
			review_score     = excluded.review_score,
			location         = excluded.location,
			strong_brand     = excluded.strong_brand,
			lead_time_days   = excluded.lead_time_days,
			competitor_price = excluded.competitor_price,
			price            = excluded.price
	`)
	if err != nil {
		return fmt.Errorf("storage.SaveRun: prepare scenarios: %w", err)
	}
	defer stmt.Close()

	for _, sc := range batch.Scenarios {
		if _, err := stmt.ExecContext(ctx,
			runID,
			sc.Index,
			sc.Context.ReviewScore,
			sc.Context.Location.String(),
			boolInt(sc.Context.StrongBrand),
			sc.Context.LeadTimeDays,
			sc.Context.CompetitorPrice,
			sc.Price,
		); err != nil {
			return fmt.Errorf("storage.SaveRun: scenario %d: %w", sc.Index, err)
		}
	}
	return nil
}

func saveDailyRates(ctx context.Context, tx *sql.Tx, runID string, series domain.SeasonalSeries) error {
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM daily_rates WHERE run_id = ? AND day >= ?`, runID, series.Len(),
	); err != nil {
		return fmt.Errorf("storage.SaveRun: trim daily rates: %w", err)
	}
	if series.Len() == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO daily_rates (run_id, day, demand, price)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(run_id, day) DO UPDATE SET
			demand = excluded.demand,
			price  = excluded.price
	`)
	if err != nil {
		return fmt.Errorf("storage.SaveRun: prepare daily rates: %w", err)
	}
	defer stmt.Close()

	for _, d := range series.Days {
		if _, err := stmt.ExecContext(ctx, runID, d.Day, d.Demand.String(), d.Price); err != nil {
			return fmt.Errorf("storage.SaveRun: day %d: %w", d.Day, err)
		}
	}
	return nil
}

// pruneOld elimina runs de más de un año con sus escenarios y días.
func (s *SQLiteStorage) pruneOld(ctx context.Context) {
	cutoff := formatTime(time.Now().Add(-retentionRuns))
	s.db.ExecContext(ctx, `DELETE FROM scenario_prices WHERE run_id IN (SELECT id FROM runs WHERE created_at < ?)`, cutoff)
	s.db.ExecContext(ctx, `DELETE FROM daily_rates WHERE run_id IN (SELECT id FROM runs WHERE created_at < ?)`, cutoff)
	s.db.ExecContext(ctx, `DELETE FROM runs WHERE created_at < ?`, cutoff)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
