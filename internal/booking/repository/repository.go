package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/SlavaShagalov/car-booking/internal/booking/usecase"
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

func (r *SqlxRepository) Create(ctx context.Context, params usecase.CreateParams) (models.Booking, error) {
	const createCmd = `
	INSERT INTO bookings (car_id, user_id, start_date, end_date, total_price, status)
	VALUES ($1, $2, $3, $4, $5, 'pending')
	RETURNING booking_id, car_id, user_id, admin_id, start_date, end_date, total_price, status, created_at;`

	var booking models.Booking
	err := r.db.GetContext(ctx, &booking, createCmd,
		params.CarID,
		params.UserID,
		params.StartDate,
		params.EndDate,
		params.TotalPrice,
	)
	if err != nil {
		r.logger.Error("create booking", slog.String("error", err.Error()))
		return models.Booking{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return booking, nil
}

// SetStatus runs the status transition as one transaction: the booking row
// update and the linked car's flip to rented commit together or not at
// all. A mid-state where the booking is non-pending but the car is still
// available is never observable.
func (r *SqlxRepository) SetStatus(ctx context.Context, bookingID int, status string, adminID int) (err error) {
	const updateBookingCmd = `
	UPDATE bookings
	SET status = $1, admin_id = $2
	WHERE booking_id = $3;`

	const updateCarCmd = `
	UPDATE cars
	SET status = 'rented'
	FROM bookings b
	WHERE cars.car_id = b.car_id AND b.booking_id = $1;`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(pkgErrors.ErrDb, err.Error())
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, tx.Rollback())
		}
	}()

	result, err := tx.ExecContext(ctx, updateBookingCmd, status, adminID, bookingID)
	if err != nil {
		r.logger.Error("update booking status", slog.String("error", err.Error()))
		return errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(pkgErrors.ErrDb, err.Error())
	}
	if affected == 0 {
		return pkgErrors.ErrBookingNotFound
	}

	if _, err = tx.ExecContext(ctx, updateCarCmd, bookingID); err != nil {
		r.logger.Error("update car status", slog.String("error", err.Error()))
		return errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return nil
}

// Cancel only matches rows not already cancelled: a repeat cancel affects
// zero rows and reports ErrBookingNotFound, so it can never double-apply.
// The car is intentionally not reverted to available; releasing it is a
// manual admin step.
func (r *SqlxRepository) Cancel(ctx context.Context, bookingID int) error {
	const cancelCmd = `
	UPDATE bookings
	SET status = 'cancelled'
	WHERE booking_id = $1 AND status <> 'cancelled';`

	result, err := r.db.ExecContext(ctx, cancelCmd, bookingID)
	if err != nil {
		r.logger.Error("cancel booking", slog.String("error", err.Error()))
		return errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(pkgErrors.ErrDb, err.Error())
	}
	if affected == 0 {
		return pkgErrors.ErrBookingNotFound
	}

	return nil
}

func (r *SqlxRepository) ListForUser(ctx context.Context, userID int) ([]models.UserBooking, error) {
	const listCmd = `
	SELECT b.booking_id,
	       c.make || ' ' || c.model AS car_name,
	       b.start_date, b.end_date, b.total_price, b.status
	FROM bookings b
	JOIN cars c ON b.car_id = c.car_id
	WHERE b.user_id = $1
	ORDER BY b.start_date DESC;`

	bookings := make([]models.UserBooking, 0)
	if err := sqlxutils.Select(ctx, r.db, &bookings, listCmd, userID); err != nil {
		r.logger.Error("list user bookings", slog.String("error", err.Error()))
		return nil, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return bookings, nil
}

func (r *SqlxRepository) ListAll(ctx context.Context) ([]models.AdminBooking, error) {
	const listCmd = `
	SELECT b.booking_id,
	       u.first_name || ' ' || u.last_name AS customer_name,
	       c.make || ' ' || c.model AS car_name,
	       b.car_id, b.user_id, b.admin_id,
	       b.start_date, b.end_date, b.total_price, b.status
	FROM bookings b
	JOIN users u ON u.id = b.user_id
	JOIN cars c ON c.car_id = b.car_id
	ORDER BY b.start_date DESC;`

	bookings := make([]models.AdminBooking, 0)
	if err := sqlxutils.Select(ctx, r.db, &bookings, listCmd); err != nil {
		r.logger.Error("list all bookings", slog.String("error", err.Error()))
		return nil, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return bookings, nil
}

func (r *SqlxRepository) Get(ctx context.Context, bookingID int) (models.BookingDetails, error) {
	const getCmd = `
	SELECT b.booking_id,
	       u.first_name || ' ' || u.last_name AS customer_name,
	       c.make || ' ' || c.model AS car_name,
	       b.car_id, b.user_id, b.admin_id,
	       b.start_date, b.end_date, b.total_price, b.status,
	       c.status AS car_status
	FROM bookings b
	JOIN users u ON u.id = b.user_id
	JOIN cars c ON c.car_id = b.car_id
	WHERE b.booking_id = $1;`

	var details models.BookingDetails
	err := r.db.GetContext(ctx, &details, getCmd, bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.BookingDetails{}, pkgErrors.ErrBookingNotFound
	} else if err != nil {
		r.logger.Error("get booking", slog.String("error", err.Error()))
		return models.BookingDetails{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return details, nil
}

func (r *SqlxRepository) Invoice(ctx context.Context, bookingID int) (models.Invoice, error) {
	const invoiceCmd = `
	SELECT a.first_name || ' ' || a.last_name AS admin_name,
	       u.first_name || ' ' || u.last_name AS user_name,
	       c.make || ' ' || c.model AS car_name,
	       c.daily_rate,
	       b.start_date, b.end_date, b.total_price
	FROM bookings b
	LEFT JOIN admins a ON a.id = b.admin_id
	JOIN users u ON u.id = b.user_id
	JOIN cars c ON c.car_id = b.car_id
	WHERE b.booking_id = $1;`

	var invoice models.Invoice
	err := r.db.GetContext(ctx, &invoice, invoiceCmd, bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Invoice{}, pkgErrors.ErrBookingNotFound
	} else if err != nil {
		r.logger.Error("get invoice", slog.String("error", err.Error()))
		return models.Invoice{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return invoice, nil
}

// DeleteAccountCascade deletes the user's bookings and then the user row;
// the bookings delete is worthless without the user delete, so both run in
// one transaction and roll back together.
func (r *SqlxRepository) DeleteAccountCascade(ctx context.Context, userID int) (err error) {
	const deleteBookingsCmd = `DELETE FROM bookings WHERE user_id = $1;`
	const deleteUserCmd = `DELETE FROM users WHERE id = $1;`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(pkgErrors.ErrDb, err.Error())
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, tx.Rollback())
		}
	}()

	if _, err = tx.ExecContext(ctx, deleteBookingsCmd, userID); err != nil {
		r.logger.Error("delete user bookings", slog.String("error", err.Error()))
		return errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	result, err := tx.ExecContext(ctx, deleteUserCmd, userID)
	if err != nil {
		r.logger.Error("delete user", slog.String("error", err.Error()))
		return errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(pkgErrors.ErrDb, err.Error())
	}
	if affected == 0 {
		return pkgErrors.ErrUserNotFound
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return nil
}
