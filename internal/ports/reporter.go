package ports

import (
	"context"

	"github.com/alejandrodnm/ratepilot/internal/domain"
)

// Reporter presenta los resultados al usuario.
// En la implementación de consola, imprime tablas formateadas.
type Reporter interface {
	// ReportQuote muestra la tarifa recomendada con su traza de ajustes.
	ReportQuote(ctx context.Context, pc domain.PricingContext, quote domain.PriceBreakdown) error

	// ReportScenarios muestra un batch what-if.
	ReportScenarios(ctx context.Context, batch domain.ScenarioBatch) error

	// ReportProjection muestra los primeros show días y el resumen por temporada.
	ReportProjection(ctx context.Context, series domain.SeasonalSeries, show int) error

	// ReportRun muestra un ciclo completo de asesoramiento.
	ReportRun(ctx context.Context, run domain.Run, show int) error
}
