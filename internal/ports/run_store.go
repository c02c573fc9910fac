package ports

import (
	"context"
	"time"

	"github.com/alejandrodnm/ratepilot/internal/domain"
)

// RunStore archiva los runs de asesoramiento. Es opcional: el core no persiste nada.
type RunStore interface {
	// SaveRun persiste el run completo (tarifa, escenarios y proyección).
	SaveRun(ctx context.Context, run domain.Run) error

	// GetRuns devuelve los runs creados en el rango de tiempo dado, más recientes primero.
	GetRuns(ctx context.Context, from, to time.Time) ([]domain.RunSummary, error)

	// GetDailyRates devuelve la proyección archivada de un run, en orden de día.
	GetDailyRates(ctx context.Context, runID string) (domain.SeasonalSeries, error)

	// Close cierra la conexión a la base de datos limpiamente.
	Close() error
}
