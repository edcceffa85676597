package usecase

import (
	"context"

	"github.com/SlavaShagalov/car-booking/internal/models"
)

type Repository interface {
	HealthCheck(ctx context.Context) error

	List(ctx context.Context) ([]models.Car, error)
	Get(ctx context.Context, id int) (models.Car, error)
}
