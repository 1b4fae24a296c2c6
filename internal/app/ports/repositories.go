package ports

import (
	"context"
	"time"

	"darklife/internal/domain/life"
)

// PlayerRepository is the player-state store contract. SaveWithVersion creates
// when expectedVersion is 0 and otherwise performs a compare-and-swap on the
// stored version, returning ErrConflict on a lost race.
type PlayerRepository interface {
	GetByPlayerID(ctx context.Context, playerID string) (life.Player, error)
	SaveWithVersion(ctx context.Context, player life.Player, expectedVersion int64) error
	TopByWealth(ctx context.Context, limit int) ([]life.Player, error)
}

// MarketRepository persists the shared price snapshot.
type MarketRepository interface {
	LoadQuotes(ctx context.Context) (map[string]float64, time.Time, error)
	SaveQuotes(ctx context.Context, prices map[string]float64, updatedAt time.Time) error
}

// EventRecord is one entry of the per-player action log.
type EventRecord struct {
	ID         string
	PlayerID   string
	Action     string
	Text       string
	Rejected   bool
	OccurredAt time.Time
}

type EventRepository interface {
	Append(ctx context.Context, events []EventRecord) error
	ListByPlayerID(ctx context.Context, playerID string, limit int) ([]EventRecord, error)
}
