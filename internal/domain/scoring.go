package domain

// Puntos del screening inicial de la propiedad.
const (
	scoreBase      = 50
	scoreCentral   = 20
	scoreReviews   = 20
	scoreBrand     = 15
	scoreLuxury    = 15
	scoreReviewMin = 4.0
)

// MaxPropertyScore es el máximo alcanzable sumando todos los bonus.
const MaxPropertyScore = scoreBase + scoreCentral + scoreReviews + scoreBrand + scoreLuxury

// PropertyScore calcula el score del screening inicial: base + bonus fijos.
// No interviene en el precio; sirve para detectar margen de mejora.
func PropertyScore(ctx PricingContext) int {
	score := scoreBase
	if ctx.Location == LocationCentral {
		score += scoreCentral
	}
	if ctx.ReviewScore >= scoreReviewMin {
		score += scoreReviews
	}
	if ctx.StrongBrand {
		score += scoreBrand
	}
	if ctx.LuxuryAmenities {
		score += scoreLuxury
	}
	return score
}
