package memory

import (
	"context"
	"time"
)

type MarketRepo struct {
	store *Store
}

func NewMarketRepo(store *Store) MarketRepo {
	return MarketRepo{store: store}
}

func (r MarketRepo) LoadQuotes(_ context.Context) (map[string]float64, time.Time, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make(map[string]float64, len(r.store.quotes))
	for k, v := range r.store.quotes {
		out[k] = v
	}
	return out, r.store.quotesAt, nil
}

func (r MarketRepo) SaveQuotes(_ context.Context, prices map[string]float64, updatedAt time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	next := make(map[string]float64, len(prices))
	for k, v := range prices {
		next[k] = v
	}
	r.store.quotes = next
	r.store.quotesAt = updatedAt
	return nil
}
