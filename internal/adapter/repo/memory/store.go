// Package memory backs the ports with an in-process store, used by tests and
// the no-database dev mode. There are no transactions here: every repo method
// takes the store lock itself, so reads arriving outside the session flow (the
// events and leaderboard endpoints) never race a concurrent action. Action
// atomicity comes from the session layer's per-player lock plus the version CAS.
package memory

import (
	"sync"
	"time"

	"darklife/internal/app/ports"
	"darklife/internal/domain/life"
)

type Store struct {
	mu       sync.RWMutex
	players  map[string]life.Player
	quotes   map[string]float64
	quotesAt time.Time
	events   map[string][]ports.EventRecord
}

func NewStore() *Store {
	return &Store{
		players: make(map[string]life.Player),
		quotes:  make(map[string]float64),
		events:  make(map[string][]ports.EventRecord),
	}
}

func (s *Store) SeedPlayer(p life.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[p.PlayerID] = clonePlayer(p)
}

func clonePlayer(p life.Player) life.Player {
	out := p
	out.Inventory = make(map[string]int, len(p.Inventory))
	for k, v := range p.Inventory {
		out.Inventory[k] = v
	}
	out.Businesses = make(map[string]life.BusinessHolding, len(p.Businesses))
	for k, v := range p.Businesses {
		out.Businesses[k] = v
	}
	out.Portfolio = make(map[string]float64, len(p.Portfolio))
	for k, v := range p.Portfolio {
		out.Portfolio[k] = v
	}
	return out
}
