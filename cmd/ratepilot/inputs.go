package main

import (
	"fmt"
	"log/slog"

	"github.com/alejandrodnm/ratepilot/internal/domain"
	"github.com/spf13/cobra"
)

// contextFlags son los atributos de la propiedad tal como llegan de la línea de comandos.
type contextFlags struct {
	name            string
	location        string
	review          float64
	brand           string
	luxury          string
	demand          string
	leadDays        int
	competitorPrice float64
}

func addContextFlags(cmd *cobra.Command, f *contextFlags) {
	fs := cmd.Flags()
	fs.StringVar(&f.name, "name", "", "property name")
	fs.StringVar(&f.location, "location", "central", "location: central|peripheral")
	fs.Float64Var(&f.review, "review", domain.FallbackReviewScore, "average review score (0-5)")
	fs.StringVar(&f.brand, "brand", "no", "strong brand: yes|no")
	fs.StringVar(&f.luxury, "luxury", "no", "luxury amenities: yes|no")
	fs.StringVar(&f.demand, "demand", "medium", "demand period: high|medium|low")
	fs.IntVar(&f.leadDays, "lead-days", 30, "days between booking and stay")
	fs.Float64Var(&f.competitorPrice, "competitor-price", domain.FallbackCompetitorPrice, "competitor nightly price")
}

// resolve convierte los flags en un PricingContext.
// En modo estricto un valor no reconocido es error; si no, se avisa y se usa el default.
func (f contextFlags) resolve(strict bool) (domain.PricingContext, error) {
	location, ok := domain.ParseLocationClass(f.location)
	if !ok {
		if err := reject(strict, "location", f.location, location.String()); err != nil {
			return domain.PricingContext{}, err
		}
	}

	demand, ok := domain.ParseDemandPeriod(f.demand)
	if !ok {
		if err := reject(strict, "demand", f.demand, demand.String()); err != nil {
			return domain.PricingContext{}, err
		}
	}

	brand, ok := domain.ParseYesNo(f.brand)
	if !ok {
		if err := reject(strict, "brand", f.brand, "no"); err != nil {
			return domain.PricingContext{}, err
		}
	}

	luxury, ok := domain.ParseYesNo(f.luxury)
	if !ok {
		if err := reject(strict, "luxury", f.luxury, "no"); err != nil {
			return domain.PricingContext{}, err
		}
	}

	if strict {
		switch {
		case f.review < 0 || f.review > 5:
			return domain.PricingContext{}, fmt.Errorf("invalid review %q", fmt.Sprint(f.review))
		case f.leadDays < 0:
			return domain.PricingContext{}, fmt.Errorf("invalid lead-days %q", fmt.Sprint(f.leadDays))
		case f.competitorPrice <= 0:
			return domain.PricingContext{}, fmt.Errorf("invalid competitor-price %q", fmt.Sprint(f.competitorPrice))
		}
	}

	return domain.PricingContext{
		PropertyName:    f.name,
		Location:        location,
		ReviewScore:     f.review,
		StrongBrand:     brand,
		LuxuryAmenities: luxury,
		Demand:          demand,
		LeadTimeDays:    f.leadDays,
		CompetitorPrice: f.competitorPrice,
	}, nil
}

func reject(strict bool, field, value, fallback string) error {
	if strict {
		return fmt.Errorf("invalid %s %q", field, value)
	}
	slog.Warn("unrecognized input, using default", "field", field, "value", value, "default", fallback)
	return nil
}
