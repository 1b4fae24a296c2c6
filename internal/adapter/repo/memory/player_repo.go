package memory

import (
	"context"
	"sort"

	"darklife/internal/app/ports"
	"darklife/internal/domain/life"
)

type PlayerRepo struct {
	store *Store
}

func NewPlayerRepo(store *Store) PlayerRepo {
	return PlayerRepo{store: store}
}

func (r PlayerRepo) GetByPlayerID(_ context.Context, playerID string) (life.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	p, ok := r.store.players[playerID]
	if !ok {
		return life.Player{}, ports.ErrNotFound
	}
	return clonePlayer(p), nil
}

func (r PlayerRepo) SaveWithVersion(_ context.Context, player life.Player, expectedVersion int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	current, ok := r.store.players[player.PlayerID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.players[player.PlayerID] = clonePlayer(player)
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.players[player.PlayerID] = clonePlayer(player)
	return nil
}

func (r PlayerRepo) TopByWealth(_ context.Context, limit int) ([]life.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]life.Player, 0, len(r.store.players))
	for _, p := range r.store.players {
		out = append(out, clonePlayer(p))
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := out[i].Cash+out[i].Bank, out[j].Cash+out[j].Bank
		if ti != tj {
			return ti > tj
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
