// Package exchange owns the process-wide price table. All players read through
// one Service; the staleness check and the walk run under its mutex so a burst
// of concurrent reads inside the refresh interval sees one stable snapshot.
package exchange

import (
	"context"
	"fmt"
	"sync"
	"time"

	"darklife/internal/app/ports"
	"darklife/internal/domain/market"
)

type Service struct {
	repo ports.MarketRepository
	rng  market.Rand

	mu        sync.Mutex
	prices    map[string]float64
	updatedAt time.Time
	loaded    bool
}

func NewService(repo ports.MarketRepository, rng market.Rand) *Service {
	return &Service{repo: repo, rng: rng}
}

// RefreshIfStale loads the snapshot on first use and re-walks the prices at
// most once per interval. A failed persist keeps the previous snapshot so a
// store outage only yields stale prices, never a half-applied walk.
func (s *Service) RefreshIfStale(ctx context.Context, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		prices, updatedAt, err := s.repo.LoadQuotes(ctx)
		if err != nil {
			return fmt.Errorf("load quotes: %w", err)
		}
		if len(prices) == 0 {
			prices = market.DefaultPrices()
			updatedAt = now
			if err := s.repo.SaveQuotes(ctx, prices, updatedAt); err != nil {
				return fmt.Errorf("seed quotes: %w", err)
			}
		}
		s.prices = prices
		s.updatedAt = updatedAt
		s.loaded = true
	}

	if now.Sub(s.updatedAt) < market.RefreshInterval {
		return nil
	}

	next := market.Step(s.prices, s.rng)
	if err := s.repo.SaveQuotes(ctx, next, now); err != nil {
		return fmt.Errorf("save quotes: %w", err)
	}
	s.prices = next
	s.updatedAt = now
	return nil
}

// Price implements life.PriceView over the current snapshot.
func (s *Service) Price(symbol string) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		p, ok := market.DefaultPrices()[symbol]
		return p, ok
	}
	p, ok := s.prices[symbol]
	return p, ok
}

// Quotes returns a copy of the current snapshot for rendering.
func (s *Service) Quotes() map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	src := s.prices
	if !s.loaded {
		src = market.DefaultPrices()
	}
	out := make(map[string]float64, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
