package sqlxutils

import (
	"context"

	"github.com/jmoiron/sqlx"
)

func Select(ctx context.Context, db *sqlx.DB, dest any, query string, args ...any) error {
	return db.SelectContext(ctx, dest, query, args...)
}

func Get(ctx context.Context, db *sqlx.DB, dest any, query string, args ...any) error {
	return db.GetContext(ctx, dest, query, args...)
}
