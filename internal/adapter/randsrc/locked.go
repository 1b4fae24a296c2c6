// Package randsrc provides the seedable randomness both the action engine and
// the market walk draw from, safe for concurrent sessions.
package randsrc

import (
	"math/rand"
	"sync"
)

type Source struct {
	mu   sync.Mutex
	rand *rand.Rand
}

func New(seed int64) *Source {
	return &Source{rand: rand.New(rand.NewSource(seed))}
}

// IntBetween returns a uniform int in [lo, hi] inclusive.
func (s *Source) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo + s.rand.Intn(hi-lo+1)
}

func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rand.Float64()
}
