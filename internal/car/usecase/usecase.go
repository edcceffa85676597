package usecase

import (
	"context"
	"log/slog"

	"github.com/SlavaShagalov/car-booking/internal/models"
)

// UseCase is read-only: car status changes only inside the booking
// lifecycle transaction.
type UseCase struct {
	repo   Repository
	logger *slog.Logger
}

func New(repo Repository, logger *slog.Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		logger: logger,
	}
}

func (u *UseCase) HealthCheck(ctx context.Context) error {
	return u.repo.HealthCheck(ctx)
}

func (u *UseCase) List(ctx context.Context) ([]models.Car, error) {
	return u.repo.List(ctx)
}

func (u *UseCase) Get(ctx context.Context, id int) (models.Car, error) {
	return u.repo.Get(ctx, id)
}
