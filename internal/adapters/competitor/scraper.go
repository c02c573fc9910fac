package competitor

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/url"
	"time"

	"github.com/alejandrodnm/ratepilot/internal/domain"
	"github.com/chromedp/chromedp"
	"golang.org/x/time/rate"
)

const (
	defaultSearchURL = "https://www.booking.com/searchresults.html"
	userAgent        = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	baseRetryWait = 2 * time.Second
)

// Config parametriza el scraper de la OTA.
type Config struct {
	SearchURL         string        // página de resultados, se le añade ?ss=<nombre>
	Timeout           time.Duration // límite total por FetchCompetitor
	RequestsPerMinute int           // navegaciones por minuto
	MaxRetries        int
	RenderWait        time.Duration // espera tras navegar para que el JS pinte las tarjetas
	Headless          bool
}

// DefaultConfig devuelve valores conservadores para no saturar la OTA.
func DefaultConfig() Config {
	return Config{
		SearchURL:         defaultSearchURL,
		Timeout:           45 * time.Second,
		RequestsPerMinute: 6,
		MaxRetries:        2,
		RenderWait:        3 * time.Second,
		Headless:          true,
	}
}

// Scraper obtiene el primer resultado de búsqueda de la OTA con un navegador headless.
type Scraper struct {
	cfg     Config
	limiter *rate.Limiter
}

// NewScraper crea un Scraper. Los campos vacíos de cfg toman los valores por defecto.
func NewScraper(cfg Config) *Scraper {
	def := DefaultConfig()
	if cfg.SearchURL == "" {
		cfg.SearchURL = def.SearchURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = def.RequestsPerMinute
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.RenderWait < 0 {
		cfg.RenderWait = def.RenderWait
	}
	perReq := time.Minute / time.Duration(cfg.RequestsPerMinute)
	return &Scraper{
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Every(perReq), 1),
	}
}

// FetchCompetitor busca propertyName y extrae nombre, reseñas, ubicación y precio
// de la primera tarjeta de resultados.
func (s *Scraper) FetchCompetitor(ctx context.Context, propertyName string) (domain.CompetitorSnapshot, error) {
	target, err := SearchURL(s.cfg.SearchURL, propertyName)
	if err != nil {
		return domain.CompetitorSnapshot{}, fmt.Errorf("competitor.FetchCompetitor: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	browserCtx, closeBrowser := s.newBrowser(ctx)
	defer closeBrowser()

	var card rawCard
	err = s.withRetry(ctx, func() error {
		c, err := s.scrapeFirstCard(browserCtx, target)
		if err != nil {
			return err
		}
		card = c
		return nil
	})
	if err != nil {
		return domain.CompetitorSnapshot{}, fmt.Errorf("competitor.FetchCompetitor: %s: %w", propertyName, err)
	}

	snap, err := snapshotFromCard(card, propertyName)
	if err != nil {
		return domain.CompetitorSnapshot{}, fmt.Errorf("competitor.FetchCompetitor: %s: %w", propertyName, err)
	}
	slog.Debug("competitor card parsed",
		"query", propertyName,
		"name", snap.Name,
		"review", snap.ReviewScore,
		"location", snap.Location.String(),
		"price", snap.Price,
	)
	return snap, nil
}

// SearchURL añade el parámetro ss con el nombre de la propiedad a la URL base.
func SearchURL(base, propertyName string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse search url %q: %w", base, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("search url %q must be absolute", base)
	}
	q := u.Query()
	q.Set("ss", propertyName)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// newBrowser crea un contexto chromedp (un navegador, una pestaña) colgado de ctx.
func (s *Scraper) newBrowser(ctx context.Context) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", s.cfg.Headless),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.UserAgent(userAgent),
		chromedp.WindowSize(1280, 900),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	return browserCtx, func() {
		cancelBrowser()
		cancelAlloc()
	}
}

// scrapeFirstCard navega a la búsqueda y extrae la primera tarjeta con JS.
func (s *Scraper) scrapeFirstCard(ctx context.Context, target string) (rawCard, error) {
	if err := chromedp.Run(ctx,
		chromedp.Navigate(target),
		chromedp.Sleep(s.cfg.RenderWait),
	); err != nil {
		return rawCard{}, fmt.Errorf("navigate: %w", err)
	}

	var card rawCard
	if err := chromedp.Run(ctx, chromedp.Evaluate(firstCardJS, &card)); err != nil {
		return rawCard{}, fmt.Errorf("card extraction: %w", err)
	}
	if card.Name == "" && card.Price == "" {
		return rawCard{}, errNoResults
	}
	return card, nil
}

// withRetry ejecuta fn con rate limiting y backoff exponencial, respetando el contexto.
func (s *Scraper) withRetry(ctx context.Context, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= s.cfg.MaxRetries; attempt++ {
		if err := s.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if attempt == s.cfg.MaxRetries {
			break
		}
		slog.Warn("competitor scrape failed, retrying", "attempt", attempt+1, "err", lastErr)
		wait := time.Duration(math.Pow(2, float64(attempt))) * baseRetryWait
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return fmt.Errorf("scrape failed after %d retries: %w", s.cfg.MaxRetries, lastErr)
}

// firstCardJS prueba primero el marcado actual de Booking y luego el clásico.
const firstCardJS = `
(function() {
	var card = document.querySelector('[data-testid="property-card"]') ||
	           document.querySelector('div.sr_property_block_main_row') ||
	           document.querySelector('[data-testid="property-card-container"]');
	if (!card) return {name: '', review: '', price: '', text: ''};

	function pick(selectors) {
		for (var i = 0; i < selectors.length; i++) {
			var el = card.querySelector(selectors[i]);
			if (el && el.innerText.trim()) return el.innerText.trim();
		}
		return '';
	}

	return {
		name: pick(['[data-testid="title"]', 'span.sr-hotel__name']),
		review: pick(['[data-testid="review-score"] > div:first-child', 'div.bui-review-score__badge']),
		price: pick(['[data-testid="price-and-discounted-price"]', 'div.bui-price-display__value']),
		text: card.innerText || ''
	};
})()
`
