package delivery

import (
	"context"

	"github.com/SlavaShagalov/car-booking/internal/booking/usecase"
	"github.com/SlavaShagalov/car-booking/internal/models"
	"github.com/SlavaShagalov/car-booking/internal/pkg/app"
)

type UseCase interface {
	app.HealthChecker

	Create(ctx context.Context, params usecase.CreateParams) (models.Booking, error)
	SetStatus(ctx context.Context, bookingID int, status string, adminID int) error
	Cancel(ctx context.Context, bookingID int) error
	ListForUser(ctx context.Context, userID int) ([]models.UserBooking, error)
	ListAll(ctx context.Context) ([]models.AdminBooking, error)
	Get(ctx context.Context, bookingID int) (models.BookingDetails, error)
	Invoice(ctx context.Context, bookingID int) (models.Invoice, error)
	DeleteAccount(ctx context.Context, userID int, token string) error
}
