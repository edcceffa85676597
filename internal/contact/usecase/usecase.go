package usecase

import (
	"context"
	"log/slog"

	"github.com/SlavaShagalov/car-booking/internal/models"
	pkgErrors "github.com/SlavaShagalov/car-booking/internal/pkg/errors"
)

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

func (u *UseCase) Submit(ctx context.Context, params SubmitParams) (models.ContactMessage, error) {
	if params.Name == "" || params.Email == "" || params.Subject == "" || params.Message == "" {
		return models.ContactMessage{}, pkgErrors.ErrInvalidContactParams
	}

	return u.repo.Create(ctx, params)
}

func (u *UseCase) List(ctx context.Context) ([]models.ContactMessage, error) {
	return u.repo.List(ctx)
}

func (u *UseCase) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return u.repo.ListTestimonials(ctx)
}
