package scenario

// concurrent.go: worker pool para batches what-if independientes.
//
// Cada batch lleva su propia Source sembrada con baseSeed+i, así que el
// resultado es idéntico al de ejecutar los batches en secuencia.

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/alejandrodnm/ratepilot/internal/domain"
	"github.com/alejandrodnm/ratepilot/internal/domain/pricing"
)

// RunParallel ejecuta batches batches de count escenarios en paralelo.
// El slice devuelto está ordenado por índice de batch. Si el contexto se
// cancela se deja de encolar trabajo y los batches no calculados quedan vacíos.
func (s *Simulator) RunParallel(
	ctx context.Context,
	seed domain.PricingContext,
	count, batches int,
	baseSeed uint64,
) []domain.ScenarioBatch {
	if batches <= 0 {
		return nil
	}
	workers := s.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > batches {
		workers = batches
	}

	type result struct {
		index int
		batch domain.ScenarioBatch
	}

	workCh := make(chan int, batches)
	resultCh := make(chan result, batches)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range workCh {
				rng := pricing.NewSource(baseSeed + uint64(idx))
				resultCh <- result{index: idx, batch: s.Run(seed, count, rng)}
			}
		}()
	}

	queued := 0
feed:
	for i := 0; i < batches; i++ {
		select {
		case <-ctx.Done():
			slog.Debug("scenario batches cancelled", "queued", queued, "batches", batches)
			break feed
		case workCh <- i:
			queued++
		}
	}
	close(workCh)

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	out := make([]domain.ScenarioBatch, batches)
	for r := range resultCh {
		out[r.index] = r.batch
	}

	slog.Debug("parallel scenarios complete",
		"batches", batches,
		"queued", queued,
		"workers", workers,
	)
	return out
}
