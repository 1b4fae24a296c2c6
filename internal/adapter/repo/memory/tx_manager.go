package memory

import "context"

// TxManager satisfies the port without providing real transactions. The repos
// lock the store per call; holding the store lock across fn would deadlock the
// repo calls made inside it.
type TxManager struct {
	store *Store
}

func NewTxManager(store *Store) TxManager {
	return TxManager{store: store}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
