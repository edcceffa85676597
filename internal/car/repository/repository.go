package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/car-booking/internal/models"
	pkgErrors "github.com/SlavaShagalov/car-booking/internal/pkg/errors"
	"github.com/SlavaShagalov/car-booking/pkg/sqlxutils"
)

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

func (r *SqlxRepository) List(ctx context.Context) ([]models.Car, error) {
	const listCmd = `
	SELECT car_id, make, model, daily_rate, img_path, status
	FROM cars
	ORDER BY car_id;`

	cars := make([]models.Car, 0)
	if err := sqlxutils.Select(ctx, r.db, &cars, listCmd); err != nil {
		r.logger.Error("list cars", slog.String("error", err.Error()))
		return nil, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return cars, nil
}

func (r *SqlxRepository) Get(ctx context.Context, id int) (models.Car, error) {
	const getCmd = `
	SELECT car_id, make, model, daily_rate, img_path, status
	FROM cars
	WHERE car_id = $1;`

	var car models.Car
	err := r.db.GetContext(ctx, &car, getCmd, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Car{}, pkgErrors.ErrCarNotFound
	} else if err != nil {
		r.logger.Error("get car", slog.String("error", err.Error()))
		return models.Car{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return car, nil
}
