package gormrepo

import (
	"context"

	"gorm.io/gorm"
)

// The session orchestrator runs load-decay-act-persist inside one transaction;
// repos pick the tx handle out of the context so the same repo value works
// inside and outside that flow.
type txKeyType struct{}

var txKey = txKeyType{}

func withTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

func getDBFromCtx(ctx context.Context, base *gorm.DB) *gorm.DB {
	if v := ctx.Value(txKey); v != nil {
		if tx, ok := v.(*gorm.DB); ok && tx != nil {
			return tx
		}
	}
	return base
}
