package competitor

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/alejandrodnm/ratepilot/internal/domain"
	"github.com/shopspring/decimal"
)

var errNoResults = errors.New("no property card in search results")

// centralRadiusKm: a esta distancia del centro o menos la ubicación cuenta como central.
const centralRadiusKm = 1.0

// rawCard es el DTO que devuelve el JS de extracción.
type rawCard struct {
	Name   string `json:"name"`
	Review string `json:"review"`
	Price  string `json:"price"`
	Text   string `json:"text"`
}

var (
	numberRe   = regexp.MustCompile(`\d+(?:[.,]\d+)*`)
	distanceRe = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(km|m)\s+(?:from|dal|da|del|de)\s+(?:the\s+)?(?:city\s+)?cent`)
)

// snapshotFromCard convierte la tarjeta cruda a un CompetitorSnapshot.
// El precio es obligatorio; sin reseñas se usa el valor neutro.
func snapshotFromCard(c rawCard, query string) (domain.CompetitorSnapshot, error) {
	price, err := parsePrice(c.Price)
	if err != nil {
		return domain.CompetitorSnapshot{}, err
	}

	review := domain.FallbackReviewScore
	if strings.TrimSpace(c.Review) != "" {
		review, err = parseReview(c.Review)
		if err != nil {
			return domain.CompetitorSnapshot{}, err
		}
	}

	name := strings.TrimSpace(c.Name)
	if name == "" {
		name = query
	}

	return domain.CompetitorSnapshot{
		Name:        name,
		ReviewScore: review,
		Location:    classifyLocation(c.Text),
		Price:       price,
		FetchedAt:   time.Now().UTC(),
	}, nil
}

// parsePrice extrae el importe de textos como "€ 1.234", "€120" o "US$1,234.50".
func parsePrice(s string) (float64, error) {
	raw := numberRe.FindString(s)
	if raw == "" {
		return 0, fmt.Errorf("parse price %q: no amount", s)
	}
	d, err := decimal.NewFromString(normalizeNumber(raw))
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", s, err)
	}
	if !d.IsPositive() {
		return 0, fmt.Errorf("parse price %q: must be positive", s)
	}
	return d.Round(2).InexactFloat64(), nil
}

// parseReview lee la nota de la tarjeta. Las notas sobre 10 se pasan a escala de 5.
func parseReview(s string) (float64, error) {
	raw := numberRe.FindString(s)
	if raw == "" {
		return 0, fmt.Errorf("parse review %q: no score", s)
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
	if err != nil {
		return 0, fmt.Errorf("parse review %q: %w", s, err)
	}
	score := d.InexactFloat64()
	switch {
	case score < 0 || score > 10:
		return 0, fmt.Errorf("parse review %q: out of range", s)
	case score > 5:
		return d.Div(decimal.NewFromInt(2)).Round(2).InexactFloat64(), nil
	default:
		return score, nil
	}
}

// classifyLocation decide central/periférica a partir del texto de la tarjeta.
// Una distancia explícita al centro manda; si no hay, se buscan palabras clave.
func classifyLocation(text string) domain.LocationClass {
	t := strings.ToLower(text)
	if m := distanceRe.FindStringSubmatch(t); m != nil {
		d, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", "."))
		if err == nil {
			km := d.InexactFloat64()
			if m[2] == "m" {
				km /= 1000
			}
			if km <= centralRadiusKm {
				return domain.LocationCentral
			}
			return domain.LocationPeripheral
		}
	}
	for _, kw := range []string{"centrale", "centro", "city centre", "city center", "central"} {
		if strings.Contains(t, kw) {
			return domain.LocationCentral
		}
	}
	return domain.LocationPeripheral
}

// normalizeNumber deja un solo separador decimal con punto.
// "1.234" y "1,234" son miles; "12,50" y "12.50" son decimales.
func normalizeNumber(raw string) string {
	lastDot := strings.LastIndex(raw, ".")
	lastComma := strings.LastIndex(raw, ",")
	if lastDot < 0 && lastComma < 0 {
		return raw
	}

	sep := lastDot
	if lastComma > lastDot {
		sep = lastComma
	}
	intPart := strings.NewReplacer(".", "", ",", "").Replace(raw[:sep])
	frac := raw[sep+1:]

	// un único separador seguido de tres dígitos es de miles
	if len(frac) == 3 && (lastDot < 0 || lastComma < 0) {
		return intPart + frac
	}
	return intPart + "." + frac
}
