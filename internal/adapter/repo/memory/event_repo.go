package memory

import (
	"context"

	"darklife/internal/app/ports"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, events []ports.EventRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, evt := range events {
		r.store.events[evt.PlayerID] = append(r.store.events[evt.PlayerID], evt)
	}
	return nil
}

func (r EventRepo) ListByPlayerID(_ context.Context, playerID string, limit int) ([]ports.EventRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	all := r.store.events[playerID]
	if limit <= 0 || limit > len(all) {
		limit = len(all)
	}
	// Newest first, like the SQL adapter.
	out := make([]ports.EventRecord, 0, limit)
	for i := len(all) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, all[i])
	}
	return out, nil
}
