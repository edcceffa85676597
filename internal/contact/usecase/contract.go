package usecase

import (
	"context"

	"github.com/SlavaShagalov/car-booking/internal/models"
)

type SubmitParams struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type Repository interface {
	HealthCheck(ctx context.Context) error

	Create(ctx context.Context, params SubmitParams) (models.ContactMessage, error)
	List(ctx context.Context) ([]models.ContactMessage, error)
	ListTestimonials(ctx context.Context) ([]models.Testimonial, error)
}
