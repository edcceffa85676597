package repository

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/car-booking/internal/contact/usecase"
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

func (r *SqlxRepository) Create(ctx context.Context, params usecase.SubmitParams) (models.ContactMessage, error) {
	const createCmd = `
	INSERT INTO contact_us (name, email, subject, message)
	VALUES ($1, $2, $3, $4)
	RETURNING id, name, email, subject, message, created_at;`

	var msg models.ContactMessage
	err := r.db.GetContext(ctx, &msg, createCmd, params.Name, params.Email, params.Subject, params.Message)
	if err != nil {
		r.logger.Error("create contact message", slog.String("error", err.Error()))
		return models.ContactMessage{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return msg, nil
}

func (r *SqlxRepository) List(ctx context.Context) ([]models.ContactMessage, error) {
	const listCmd = `
	SELECT id, name, email, subject, message, created_at
	FROM contact_us
	ORDER BY created_at DESC;`

	msgs := make([]models.ContactMessage, 0)
	if err := sqlxutils.Select(ctx, r.db, &msgs, listCmd); err != nil {
		r.logger.Error("list contact messages", slog.String("error", err.Error()))
		return nil, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return msgs, nil
}

func (r *SqlxRepository) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	const listCmd = `
	SELECT t.testimonial_id,
	       u.first_name || ' ' || u.last_name AS customer_name,
	       t.feedback,
	       t.rating,
	       t.created_at::date AS created_date
	FROM testimonials t
	JOIN users u ON t.customer_id = u.id
	ORDER BY t.created_at DESC
	LIMIT 8;`

	testimonials := make([]models.Testimonial, 0)
	if err := sqlxutils.Select(ctx, r.db, &testimonials, listCmd); err != nil {
		r.logger.Error("list testimonials", slog.String("error", err.Error()))
		return nil, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return testimonials, nil
}
