package ports

import (
	"context"

	"github.com/alejandrodnm/ratepilot/internal/domain"
)

// CompetitorProvider obtiene los datos de mercado de la propiedad o de su
// competidor más cercano: nombre, reseñas, ubicación y precio por noche.
type CompetitorProvider interface {
	// FetchCompetitor busca propertyName en la OTA y devuelve el primer resultado.
	// Devuelve error si no pudo extraer los datos; el fallback neutro lo decide el caller.
	FetchCompetitor(ctx context.Context, propertyName string) (domain.CompetitorSnapshot, error)
}
