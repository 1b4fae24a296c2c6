package httpadapter

import (
	"sync"

	"golang.org/x/time/rate"
)

// PlayerLimiter throttles button mashing per player id.
type PlayerLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	perSec   rate.Limit
	burst    int
}

func NewPlayerLimiter(perSec float64, burst int) *PlayerLimiter {
	return &PlayerLimiter{
		limiters: make(map[string]*rate.Limiter),
		perSec:   rate.Limit(perSec),
		burst:    burst,
	}
}

func (l *PlayerLimiter) Allow(playerID string) bool {
	l.mu.Lock()
	limiter, ok := l.limiters[playerID]
	if !ok {
		limiter = rate.NewLimiter(l.perSec, l.burst)
		l.limiters[playerID] = limiter
	}
	l.mu.Unlock()
	return limiter.Allow()
}
