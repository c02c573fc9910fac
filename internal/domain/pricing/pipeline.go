package pricing

import "github.com/alejandrodnm/ratepilot/internal/domain"

// Nombres de los pasos del pipeline, en orden de aplicación.
const (
	StepDemand   = "demand"
	StepLocation = "location"
	StepReviews  = "reviews"
	StepBrand    = "brand"
	StepLuxury   = "luxury"
	StepLeadTime = "lead_time"
)

// Step es un ajuste multiplicativo con nombre.
type Step struct {
	Name   string
	Factor func(ctx domain.PricingContext) float64
}

// DefaultPipeline devuelve la cadena de ajustes en el orden contractual:
// demanda → ubicación → reseñas → marca → lujo → antelación.
func DefaultPipeline() []Step {
	return []Step{
		{Name: StepDemand, Factor: func(c domain.PricingContext) float64 { return domain.DemandFactor(c.Demand) }},
		{Name: StepLocation, Factor: func(c domain.PricingContext) float64 { return domain.LocationFactor(c.Location) }},
		{Name: StepReviews, Factor: func(c domain.PricingContext) float64 { return domain.ReviewFactor(c.ReviewScore) }},
		{Name: StepBrand, Factor: func(c domain.PricingContext) float64 { return domain.BrandFactor(c.StrongBrand) }},
		{Name: StepLuxury, Factor: func(c domain.PricingContext) float64 { return domain.LuxuryFactor(c.LuxuryAmenities) }},
		{Name: StepLeadTime, Factor: func(c domain.PricingContext) float64 { return domain.LeadTimeFactor(c.LeadTimeDays) }},
	}
}

// StepNames devuelve los nombres del pipeline en orden.
func StepNames(steps []Step) []string {
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.Name
	}
	return names
}
