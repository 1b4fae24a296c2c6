package ports

import "context"

// TxManager scopes the load-decay-act-persist sequence so an action is
// all-or-nothing from the caller's perspective.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
