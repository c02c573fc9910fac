package competitor

import (
	"context"
	"time"

	"github.com/alejandrodnm/ratepilot/internal/domain"
)

// Static devuelve siempre el mismo snapshot. Se usa con --dry-run o cuando el
// usuario da el precio del competidor a mano.
type Static struct {
	snap domain.CompetitorSnapshot
}

// NewStatic crea un proveedor fijo. Un review <= 0 o un price <= 0 toman el valor neutro.
func NewStatic(review float64, location domain.LocationClass, price float64) *Static {
	if review <= 0 {
		review = domain.FallbackReviewScore
	}
	if price <= 0 {
		price = domain.FallbackCompetitorPrice
	}
	return &Static{snap: domain.CompetitorSnapshot{
		ReviewScore: review,
		Location:    location,
		Price:       price,
	}}
}

// FetchCompetitor nunca falla; el nombre devuelto es el consultado.
func (s *Static) FetchCompetitor(_ context.Context, propertyName string) (domain.CompetitorSnapshot, error) {
	snap := s.snap
	snap.Name = propertyName
	snap.FetchedAt = time.Now().UTC()
	return snap, nil
}
