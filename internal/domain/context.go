package domain

import "strings"

// LocationClass clasifica la ubicación de la propiedad respecto al centro.
type LocationClass int

const (
	LocationCentral LocationClass = iota
	LocationPeripheral
)

func (l LocationClass) String() string {
	if l == LocationCentral {
		return "central"
	}
	return "peripheral"
}

// DemandPeriod es la etiqueta de demanda estacional del mercado.
// El zero value (DemandUnknown) aplica el factor neutro 1.0.
type DemandPeriod int

const (
	DemandUnknown DemandPeriod = iota
	DemandHigh
	DemandMedium
	DemandLow
)

func (d DemandPeriod) String() string {
	switch d {
	case DemandHigh:
		return "high"
	case DemandMedium:
		return "medium"
	case DemandLow:
		return "low"
	default:
		return "unknown"
	}
}

// PricingContext es el input completo de un cálculo de tarifa.
// Es un value object: ningún componente lo modifica después de crearlo.
type PricingContext struct {
	PropertyName    string // solo informativo
	Location        LocationClass
	ReviewScore     float64 // esperado en [1, 5], no se valida
	StrongBrand     bool
	LuxuryAmenities bool
	Demand          DemandPeriod
	LeadTimeDays    int     // días entre reserva y estancia, no se valida
	CompetitorPrice float64 // precio de referencia del competidor
}

// ParseLocationClass traduce el texto libre de la capa de input.
// Cualquier valor no reconocido cae en Peripheral y devuelve ok=false.
func ParseLocationClass(s string) (LocationClass, bool) {
	switch normalize(s) {
	case "central", "centrale", "centro", "downtown", "center", "centre":
		return LocationCentral, true
	case "peripheral", "periferica", "periferia", "suburb", "suburban", "outskirts":
		return LocationPeripheral, true
	default:
		return LocationPeripheral, false
	}
}

// ParseDemandPeriod traduce el periodo de demanda.
// Cualquier valor no reconocido devuelve DemandUnknown (factor 1.0) y ok=false.
func ParseDemandPeriod(s string) (DemandPeriod, bool) {
	switch normalize(s) {
	case "high", "alta", "peak":
		return DemandHigh, true
	case "medium", "media", "mid", "shoulder":
		return DemandMedium, true
	case "low", "bassa", "baja", "off":
		return DemandLow, true
	default:
		return DemandUnknown, false
	}
}

// ParseYesNo interpreta respuestas sí/no en inglés, italiano y español.
func ParseYesNo(s string) (value, ok bool) {
	switch normalize(s) {
	case "yes", "y", "si", "sí", "true", "1":
		return true, true
	case "no", "n", "false", "0":
		return false, true
	default:
		return false, false
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
