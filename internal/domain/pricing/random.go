package pricing

import "math/rand/v2"

// Random es la fuente de entropía que se inyecta en cada cálculo.
// No hay estado aleatorio global: con una fuente sembrada, los resultados
// son reproducibles.
type Random interface {
	// Uniform devuelve un float uniforme en [lo, hi].
	Uniform(lo, hi float64) float64
	// IntInclusive devuelve un entero uniforme en [lo, hi], ambos incluidos.
	IntInclusive(lo, hi int) int
}

// Source implementa Random sobre math/rand/v2 (PCG).
// No es segura para uso concurrente: cada goroutine necesita su propia Source.
type Source struct {
	r *rand.Rand
}

// NewSource crea una fuente determinista a partir de la semilla.
func NewSource(seed uint64) *Source {
	return &Source{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewEntropySource crea una fuente con semilla aleatoria.
// Devuelve también la semilla para poder reproducir el run.
func NewEntropySource() (*Source, uint64) {
	seed := rand.Uint64()
	return NewSource(seed), seed
}

// Uniform implementa Random.
func (s *Source) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.r.Float64()
}

// IntInclusive implementa Random. Si hi < lo se intercambian.
func (s *Source) IntInclusive(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + s.r.IntN(hi-lo+1)
}
