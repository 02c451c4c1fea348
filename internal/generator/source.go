package generator

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source supplies uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewRandSource returns a Source seeded from the current time. The returned
// source is safe for use from multiple goroutines.
func NewRandSource() Source {
	seed := uint64(time.Now().UnixNano())
	return &lockedSource{r: rand.New(rand.NewPCG(seed, seed>>1|1))}
}

// NewSeededSource returns a reproducible Source.
func NewSeededSource(seed uint64) Source {
	return &lockedSource{r: rand.New(rand.NewPCG(seed, seed>>1|1))}
}

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}
