package transaction

import (
	"context"

	"gorm.io/gorm"
	"lendsqr.dev/admin-api-gateway/app/utils/contextkeys"
)

func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, contextkeys.TransactionContextKey{}, tx)
}

type Database struct {
	db *gorm.DB
}

// GetTx returns the request-scoped transaction when one is attached to the
// context, the root handle otherwise.
func (t *Database) GetTx(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(contextkeys.TransactionContextKey{}).(*gorm.DB); ok {
		return tx
	}
	return t.db
}

func NewDatabase(db *gorm.DB) *Database {
	return &Database{db}
}
