package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/SlavaShagalov/car-booking/pkg/sqlxutils"
)

type Request struct {
	Method  string `db:"method"`
	URL     string `db:"url"`
	Body    string `db:"body"`
	Headers string `db:"headers"`
}

type SqlxRepository struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewSqlxRepository(db *sqlx.DB, logger *slog.Logger) *SqlxRepository {
	return &SqlxRepository{
		db:     db,
		logger: logger,
	}
}

func (r *SqlxRepository) HealthCheck(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SqlxRepository) GetRequests(ctx context.Context) ([]Request, error) {
	reqs := make([]Request, 0)

	const cmd = `SELECT method, url, body, headers FROM requests;`

	err := sqlxutils.Select(ctx, r.db, &reqs, cmd)
	if errors.Is(err, sql.ErrNoRows) {
		return []Request{}, nil
	} else if err != nil {
		return nil, err
	}

	return reqs, nil
}

func (r *SqlxRepository) SaveRequest(ctx context.Context, req Request) error {
	const createCmd = `
	INSERT INTO requests (method, url, body, headers)
	VALUES ($1, $2, $3, $4);`

	_, err := r.db.ExecContext(ctx, createCmd, req.Method, req.URL, req.Body, req.Headers)
	return err
}
