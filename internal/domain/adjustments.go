package domain

// Catálogo de ajustes multiplicativos. Tablas estáticas, sin estado.
const (
	NeutralFactor = 1.0
	BrandPremium  = 1.3 // marca fuerte
	LuxuryPremium = 1.2 // mobiliario de lujo o experiencias especiales

	earlyBirdDays    = 90
	lastMinuteDays   = 7
	earlyBirdFactor  = 0.85
	lastMinuteFactor = 1.2
	centralFactor    = 1.4
	peripheralFactor = 1.1
)

var demandFactors = map[DemandPeriod]float64{
	DemandHigh:   1.6,
	DemandMedium: 1.3,
	DemandLow:    1.0,
}

// reviewTiers se evalúa del umbral más alto al más bajo.
var reviewTiers = []struct {
	min    float64
	factor float64
}{
	{4.5, 1.4},
	{4.0, 1.2},
	{3.0, 1.1},
}

const lowReviewFactor = 0.9

// DemandFactor devuelve el multiplicador de demanda. Periodo desconocido → 1.0.
func DemandFactor(p DemandPeriod) float64 {
	if f, ok := demandFactors[p]; ok {
		return f
	}
	return NeutralFactor
}

// LocationFactor devuelve el multiplicador por ubicación.
func LocationFactor(l LocationClass) float64 {
	if l == LocationCentral {
		return centralFactor
	}
	return peripheralFactor
}

// ReviewFactor es una función escalonada sobre la nota media de reseñas.
//
//	>= 4.5 → 1.4 | >= 4.0 → 1.2 | >= 3.0 → 1.1 | resto → 0.9
func ReviewFactor(score float64) float64 {
	for _, t := range reviewTiers {
		if score >= t.min {
			return t.factor
		}
	}
	return lowReviewFactor
}

// LeadTimeFactor aplica descuento early-bird (> 90 días) o recargo
// last-minute (< 7 días). Entre ambos no hay ajuste.
func LeadTimeFactor(days int) float64 {
	switch {
	case days > earlyBirdDays:
		return earlyBirdFactor
	case days < lastMinuteDays:
		return lastMinuteFactor
	default:
		return NeutralFactor
	}
}

// BrandFactor devuelve BrandPremium si la marca es fuerte.
func BrandFactor(strong bool) float64 {
	if strong {
		return BrandPremium
	}
	return NeutralFactor
}

// LuxuryFactor devuelve LuxuryPremium si la propiedad ofrece servicios de lujo.
func LuxuryFactor(luxury bool) float64 {
	if luxury {
		return LuxuryPremium
	}
	return NeutralFactor
}
