package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SlavaShagalov/car-booking/internal/models"
	pkgErrors "github.com/SlavaShagalov/car-booking/internal/pkg/errors"
)

// stubRepository records calls and answers from canned state. Cancel
// mimics the conditional update: a cancelled booking no longer matches.
type stubRepository struct {
	createCalls    int
	lastCreate     CreateParams
	created        models.Booking
	createErr      error
	setStatusCalls int
	lastStatus     string
	lastAdminID    int
	cancelled      map[int]bool
	cascadeCalls   int
	cascadeErr     error
}

func (r *stubRepository) HealthCheck(context.Context) error { return nil }

func (r *stubRepository) Create(_ context.Context, params CreateParams) (models.Booking, error) {
	r.createCalls++
	r.lastCreate = params
	return r.created, r.createErr
}

func (r *stubRepository) SetStatus(_ context.Context, _ int, status string, adminID int) error {
	r.setStatusCalls++
	r.lastStatus = status
	r.lastAdminID = adminID
	return nil
}

func (r *stubRepository) Cancel(_ context.Context, bookingID int) error {
	if r.cancelled[bookingID] {
		return pkgErrors.ErrBookingNotFound
	}
	if r.cancelled == nil {
		r.cancelled = make(map[int]bool)
	}
	r.cancelled[bookingID] = true
	return nil
}

func (r *stubRepository) ListForUser(context.Context, int) ([]models.UserBooking, error) {
	return nil, nil
}

func (r *stubRepository) ListAll(context.Context) ([]models.AdminBooking, error) {
	return nil, nil
}

func (r *stubRepository) Get(context.Context, int) (models.BookingDetails, error) {
	return models.BookingDetails{}, nil
}

func (r *stubRepository) Invoice(context.Context, int) (models.Invoice, error) {
	return models.Invoice{}, nil
}

func (r *stubRepository) DeleteAccountCascade(context.Context, int) error {
	r.cascadeCalls++
	return r.cascadeErr
}

type stubSessions struct {
	destroyCalls int
	lastToken    string
	destroyErr   error
}

func (s *stubSessions) Destroy(_ context.Context, token string) error {
	s.destroyCalls++
	s.lastToken = token
	return s.destroyErr
}

func newTestUseCase(repo *stubRepository, sessions *stubSessions) *UseCase {
	return New(repo, sessions, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreate(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 3)

	valid := CreateParams{CarID: 2, UserID: 7, StartDate: start, EndDate: end, TotalPrice: 135}

	tests := []struct {
		name   string
		params CreateParams
	}{
		{name: "missing car", params: CreateParams{UserID: 7, StartDate: start, EndDate: end, TotalPrice: 135}},
		{name: "missing user", params: CreateParams{CarID: 2, StartDate: start, EndDate: end, TotalPrice: 135}},
		{name: "zero start date", params: CreateParams{CarID: 2, UserID: 7, EndDate: end, TotalPrice: 135}},
		{name: "zero end date", params: CreateParams{CarID: 2, UserID: 7, StartDate: start, TotalPrice: 135}},
		{name: "non-positive price", params: CreateParams{CarID: 2, UserID: 7, StartDate: start, EndDate: end}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := &stubRepository{}
			uc := newTestUseCase(repo, &stubSessions{})

			_, err := uc.Create(context.Background(), test.params)

			assert.ErrorIs(t, err, pkgErrors.ErrInvalidBookingParams)
			assert.Zero(t, repo.createCalls, "invalid params must not reach the store")
		})
	}

	t.Run("valid params reach the store unchanged", func(t *testing.T) {
		repo := &stubRepository{created: models.Booking{ID: 11, Status: models.BookingPending}}
		uc := newTestUseCase(repo, &stubSessions{})

		booking, err := uc.Create(context.Background(), valid)

		require.NoError(t, err)
		assert.Equal(t, valid, repo.lastCreate)
		assert.Equal(t, models.BookingPending, booking.Status)
	})
}

func TestSetStatus(t *testing.T) {
	t.Run("empty status is rejected", func(t *testing.T) {
		repo := &stubRepository{}
		uc := newTestUseCase(repo, &stubSessions{})

		err := uc.SetStatus(context.Background(), 3, "", 1)

		assert.ErrorIs(t, err, pkgErrors.ErrInvalidBookingParams)
		assert.Zero(t, repo.setStatusCalls)
	})

	t.Run("status and acting admin are forwarded", func(t *testing.T) {
		repo := &stubRepository{}
		uc := newTestUseCase(repo, &stubSessions{})

		err := uc.SetStatus(context.Background(), 3, "approved", 4)

		require.NoError(t, err)
		assert.Equal(t, "approved", repo.lastStatus)
		assert.Equal(t, 4, repo.lastAdminID)
	})
}

func TestCancel(t *testing.T) {
	repo := &stubRepository{}
	uc := newTestUseCase(repo, &stubSessions{})

	require.NoError(t, uc.Cancel(context.Background(), 5))

	// A second cancel matches no rows and reports not found.
	err := uc.Cancel(context.Background(), 5)
	assert.ErrorIs(t, err, pkgErrors.ErrBookingNotFound)
}

func TestDeleteAccount(t *testing.T) {
	t.Run("session is destroyed after the cascade commits", func(t *testing.T) {
		repo := &stubRepository{}
		sessions := &stubSessions{}
		uc := newTestUseCase(repo, sessions)

		err := uc.DeleteAccount(context.Background(), 7, "token-7")

		require.NoError(t, err)
		assert.Equal(t, 1, repo.cascadeCalls)
		assert.Equal(t, 1, sessions.destroyCalls)
		assert.Equal(t, "token-7", sessions.lastToken)
	})

	t.Run("failed cascade keeps the session alive", func(t *testing.T) {
		repo := &stubRepository{cascadeErr: pkgErrors.ErrUserNotFound}
		sessions := &stubSessions{}
		uc := newTestUseCase(repo, sessions)

		err := uc.DeleteAccount(context.Background(), 7, "token-7")

		assert.ErrorIs(t, err, pkgErrors.ErrUserNotFound)
		assert.Zero(t, sessions.destroyCalls)
	})

	t.Run("destroy failure is not surfaced once the account is gone", func(t *testing.T) {
		repo := &stubRepository{}
		sessions := &stubSessions{destroyErr: pkgErrors.ErrSessionNotFound}
		uc := newTestUseCase(repo, sessions)

		err := uc.DeleteAccount(context.Background(), 7, "token-7")

		assert.NoError(t, err)
		assert.Equal(t, 1, repo.cascadeCalls)
	})
}
