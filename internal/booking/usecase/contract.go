package usecase

import (
	"context"
	"time"

	"github.com/SlavaShagalov/car-booking/internal/models"
)

type CreateParams struct {
	CarID      int
	UserID     int
	StartDate  time.Time
	EndDate    time.Time
	TotalPrice float64
}

type Repository interface {
	HealthCheck(ctx context.Context) error

	Create(ctx context.Context, params CreateParams) (models.Booking, error)

	// SetStatus updates the booking's status and acting admin AND flips the
	// linked car to rented, as one transaction: both or neither.
	SetStatus(ctx context.Context, bookingID int, status string, adminID int) error

	// Cancel is a conditional update: it only matches rows whose status is
	// not already cancelled, so a repeat cancel reports ErrBookingNotFound.
	Cancel(ctx context.Context, bookingID int) error

	ListForUser(ctx context.Context, userID int) ([]models.UserBooking, error)
	ListAll(ctx context.Context) ([]models.AdminBooking, error)
	Get(ctx context.Context, bookingID int) (models.BookingDetails, error)
	Invoice(ctx context.Context, bookingID int) (models.Invoice, error)

	// DeleteAccountCascade removes the user's bookings and then the user
	// row in one transaction.
	DeleteAccountCascade(ctx context.Context, userID int) error
}

type Sessions interface {
	Destroy(ctx context.Context, token string) error
}
