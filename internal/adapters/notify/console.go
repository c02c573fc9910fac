package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alejandrodnm/ratepilot/internal/domain"
	"github.com/olekukonko/tablewriter"
)

// Console implementa ports.Reporter.
type Console struct {
	out     io.Writer
	verbose bool
}

// NewConsole crea un reporter que escribe a stdout.
// Con verbose imprime también la traza de ajustes de cada tarifa.
func NewConsole(verbose bool) *Console {
	return &Console{out: os.Stdout, verbose: verbose}
}

// NewConsoleWriter crea un reporter para tests.
func NewConsoleWriter(w io.Writer, verbose bool) *Console {
	return &Console{out: w, verbose: verbose}
}

// ReportQuote imprime la tarifa recomendada. En modo verbose incluye la tabla de ajustes.
func (c *Console) ReportQuote(_ context.Context, pc domain.PricingContext, q domain.PriceBreakdown) error {
	fmt.Fprintf(c.out, "\n[%s] %s\n", time.Now().Format("15:04:05"), propertyLabel(pc.PropertyName))
	fmt.Fprintf(c.out, "  location=%s review=%.1f brand=%s luxury=%s demand=%s lead=%dd competitor=%s\n",
		pc.Location, pc.ReviewScore, yesNo(pc.StrongBrand), yesNo(pc.LuxuryAmenities),
		pc.Demand, pc.LeadTimeDays, money(pc.CompetitorPrice))

	if c.verbose {
		c.printBreakdown(q)
	}

	fmt.Fprintf(c.out, "  Recommended rate: %s", money(q.Final))
	if q.FloorApplied {
		fmt.Fprintf(c.out, "  (competitive floor: %s)", money(q.PreNoise))
	}
	fmt.Fprintln(c.out)
	return nil
}

// ReportScenarios imprime un batch what-if y su resumen.
func (c *Console) ReportScenarios(_ context.Context, batch domain.ScenarioBatch) error {
	if len(batch.Scenarios) == 0 {
		fmt.Fprintln(c.out, "  No scenarios generated.")
		return nil
	}

	fmt.Fprintf(c.out, "\n=== WHAT-IF SCENARIOS (%d) ===\n", len(batch.Scenarios))
	table := tablewriter.NewWriter(c.out)
	table.Header("#", "Review", "Location", "Brand", "Lead", "Competitor", "Rate")
	for _, s := range batch.Scenarios {
		table.Append(
			fmt.Sprintf("%d", s.Index+1),
			fmt.Sprintf("%.2f", s.Context.ReviewScore),
			s.Context.Location.String(),
			yesNo(s.Context.StrongBrand),
			fmt.Sprintf("%dd", s.Context.LeadTimeDays),
			money(s.Context.CompetitorPrice),
			money(s.Price),
		)
	}
	table.Render()

	c.printStats("  Scenarios", batch.Stats())
	return nil
}

// ReportProjection imprime los primeros show días y el resumen por temporada.
func (c *Console) ReportProjection(_ context.Context, series domain.SeasonalSeries, show int) error {
	if series.Len() == 0 {
		fmt.Fprintln(c.out, "  Empty projection.")
		return nil
	}

	fmt.Fprintf(c.out, "\n=== SEASONAL PROJECTION (%d days) ===\n", series.Len())
	head := series.Head(show)
	if len(head) > 0 {
		table := tablewriter.NewWriter(c.out)
		table.Header("Day", "Demand", "Rate")
		for _, d := range head {
			table.Append(fmt.Sprintf("%d", d.Day+1), d.Demand.String(), money(d.Price))
		}
		table.Render()
		if len(head) < series.Len() {
			fmt.Fprintf(c.out, "  ... %d more days\n", series.Len()-len(head))
		}
	}

	byDemand := series.StatsByDemand()
	table := tablewriter.NewWriter(c.out)
	table.Header("Season", "Days", "Min", "Mean", "Max")
	for _, p := range []domain.DemandPeriod{domain.DemandHigh, domain.DemandMedium, domain.DemandLow} {
		st, ok := byDemand[p]
		if !ok {
			continue
		}
		table.Append(p.String(), fmt.Sprintf("%d", st.Count), money(st.Min), money(st.Mean), money(st.Max))
	}
	table.Render()

	c.printStats("  Year", series.Stats())
	return nil
}

// ReportRun imprime un ciclo completo de asesoramiento.
func (c *Console) ReportRun(ctx context.Context, run domain.Run, show int) error {
	fmt.Fprintf(c.out, "\n========================================================\n")
	fmt.Fprintf(c.out, "  RATE ADVISORY  %s\n", propertyLabel(run.Context.PropertyName))
	fmt.Fprintf(c.out, "  run %s  seed %d\n", run.ID, run.Seed)
	fmt.Fprintf(c.out, "========================================================\n")

	source := "scraped"
	if run.Competitor.Fallback {
		source = "neutral fallback"
	}
	fmt.Fprintf(c.out, "  Competitor: %s  review %.1f  %s  %s  (%s)\n",
		propertyLabel(run.Competitor.Name), run.Competitor.ReviewScore,
		run.Competitor.Location, money(run.Competitor.Price), source)
	fmt.Fprintf(c.out, "  Property score: %d/%d\n", run.Score, domain.MaxPropertyScore)

	if err := c.ReportQuote(ctx, run.Context, run.Quote); err != nil {
		return err
	}
	if err := c.ReportScenarios(ctx, run.Scenarios); err != nil {
		return err
	}
	if err := c.ReportProjection(ctx, run.Projection, show); err != nil {
		return err
	}
	fmt.Fprintln(c.out)
	return nil
}

// PrintScore imprime el score aditivo de la propiedad.
func (c *Console) PrintScore(pc domain.PricingContext) {
	fmt.Fprintf(c.out, "%s: score %d/%d\n",
		propertyLabel(pc.PropertyName), domain.PropertyScore(pc), domain.MaxPropertyScore)
}

// PrintHistory imprime los runs archivados.
func (c *Console) PrintHistory(runs []domain.RunSummary) {
	if len(runs) == 0 {
		fmt.Fprintln(c.out, "\n  No archived runs yet. Run advise with storage enabled first.")
		return
	}

	table := tablewriter.NewWriter(c.out)
	table.Header("Date", "Run", "Property", "Score", "Rate", "Pre-noise", "Competitor", "Scen. mean", "Year mean")
	for _, r := range runs {
		competitor := money(r.CompetitorPrice)
		if r.Fallback {
			competitor += "*"
		}
		table.Append(
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			shortID(r.ID),
			truncate(propertyLabel(r.PropertyName), 28),
			fmt.Sprintf("%d", r.Score),
			money(r.FinalPrice),
			money(r.PreNoisePrice),
			competitor,
			money(r.ScenarioMean),
			money(r.ProjectionMean),
		)
	}
	table.Render()
	fmt.Fprintln(c.out, "  * = neutral competitor fallback")
}

// printBreakdown imprime la traza paso a paso del pipeline.
func (c *Console) printBreakdown(q domain.PriceBreakdown) {
	table := tablewriter.NewWriter(c.out)
	table.Header("Step", "Factor", "Price")
	table.Append("base", "", money(q.BaseRate))
	for _, s := range q.Steps {
		table.Append(s.Name, fmt.Sprintf("x%.2f", s.Factor), fmt.Sprintf("%.4f", s.Price))
	}
	floor := "-"
	if q.FloorApplied {
		floor = "applied"
	}
	table.Append("floor", floor, fmt.Sprintf("%.4f", q.PreNoise))
	table.Append("noise", fmt.Sprintf("%+.4f", q.Noise), money(q.Final))
	table.Render()
}

func (c *Console) printStats(label string, st domain.PriceStats) {
	if st.Count == 0 {
		return
	}
	fmt.Fprintf(c.out, "%s: min %s  mean %s  max %s  (n=%d)\n",
		label, money(st.Min), money(st.Mean), money(st.Max), st.Count)
}

// --- helpers ---

func money(v float64) string {
	return fmt.Sprintf("€%.2f", v)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func propertyLabel(name string) string {
	if name == "" {
		return "(unnamed property)"
	}
	return name
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
