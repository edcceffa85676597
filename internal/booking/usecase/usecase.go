package usecase

import (
	"context"
	"log/slog"

	"github.com/SlavaShagalov/car-booking/internal/models"
	pkgErrors "github.com/SlavaShagalov/car-booking/internal/pkg/errors"
)

type UseCase struct {
	repo     Repository
	sessions Sessions
	logger   *slog.Logger
}

func New(repo Repository, sessions Sessions, logger *slog.Logger) *UseCase {
	return &UseCase{
		repo:     repo,
		sessions: sessions,
		logger:   logger,
	}
}

func (u *UseCase) HealthCheck(ctx context.Context) error {
	return u.repo.HealthCheck(ctx)
}

// Create inserts a new pending booking. All five fields are required; date
// ordering and car availability are deliberately not checked here (no
// overlap invariant exists yet).
func (u *UseCase) Create(ctx context.Context, params CreateParams) (models.Booking, error) {
	if params.CarID <= 0 || params.UserID <= 0 ||
		params.StartDate.IsZero() || params.EndDate.IsZero() || params.TotalPrice <= 0 {
		return models.Booking{}, pkgErrors.ErrInvalidBookingParams
	}

	return u.repo.Create(ctx, params)
}

func (u *UseCase) SetStatus(ctx context.Context, bookingID int, status string, adminID int) error {
	if status == "" {
		return pkgErrors.ErrInvalidBookingParams
	}

	return u.repo.SetStatus(ctx, bookingID, status, adminID)
}

func (u *UseCase) Cancel(ctx context.Context, bookingID int) error {
	return u.repo.Cancel(ctx, bookingID)
}

func (u *UseCase) ListForUser(ctx context.Context, userID int) ([]models.UserBooking, error) {
	return u.repo.ListForUser(ctx, userID)
}

func (u *UseCase) ListAll(ctx context.Context) ([]models.AdminBooking, error) {
	return u.repo.ListAll(ctx)
}

func (u *UseCase) Get(ctx context.Context, bookingID int) (models.BookingDetails, error) {
	return u.repo.Get(ctx, bookingID)
}

func (u *UseCase) Invoice(ctx context.Context, bookingID int) (models.Invoice, error) {
	return u.repo.Invoice(ctx, bookingID)
}

// DeleteAccount removes the user and their bookings atomically, then
// destroys the caller's session. A destroy failure after a committed
// delete is logged, not surfaced: the account is already gone.
func (u *UseCase) DeleteAccount(ctx context.Context, userID int, token string) error {
	if err := u.repo.DeleteAccountCascade(ctx, userID); err != nil {
		return err
	}

	if err := u.sessions.Destroy(ctx, token); err != nil {
		u.logger.Error("destroy session after account deletion",
			slog.Int("user_id", userID),
			slog.String("error", err.Error()),
		)
	}

	return nil
}
