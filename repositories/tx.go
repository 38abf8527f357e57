package repositories

import (
	"context"

	"gorm.io/gorm"
)

type contextKey string

const txContextKey contextKey = "tx"

// WithTx returns a context whose repository calls run inside tx.
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txContextKey, tx)
}

// tableOf resolves the table name of T for log fields.
func tableOf[T any](db *gorm.DB) string {
	var entity T
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(&entity); err != nil || stmt.Schema == nil {
		return "unknown"
	}
	return stmt.Schema.Table
}
