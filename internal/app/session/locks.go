package session

import "sync"

// playerLocks serializes the load-decay-act-persist sequence per player id.
// Actions for different players proceed in parallel; two presses from the same
// player never interleave their read-modify-write.
type playerLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (pl *playerLocks) forPlayer(playerID string) *sync.Mutex {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	if pl.locks == nil {
		pl.locks = make(map[string]*sync.Mutex)
	}
	l, ok := pl.locks[playerID]
	if !ok {
		l = &sync.Mutex{}
		pl.locks[playerID] = l
	}
	return l
}
