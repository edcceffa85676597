package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/car-booking/internal/auth/usecase"
	"github.com/SlavaShagalov/car-booking/internal/models"
	pkgErrors "github.com/SlavaShagalov/car-booking/internal/pkg/errors"
	"github.com/SlavaShagalov/car-booking/pkg/sqlxutils"
)

const uniqueViolation = "23505"

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

const userColumns = `id, first_name, last_name, phone_number, ic_passport_number,
	email, license_number, username, hashed_password, created_at, updated_at`

func (r *SqlxRepository) Create(ctx context.Context, params usecase.CreateParams) (models.User, error) {
	const createCmd = `
	INSERT INTO users (first_name, last_name, phone_number, ic_passport_number,
	                   email, license_number, username, hashed_password)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING ` + userColumns + `;`

	var user models.User
	err := r.db.GetContext(ctx, &user, createCmd,
		params.FirstName,
		params.LastName,
		params.PhoneNumber,
		params.IcPassportNumber,
		params.Email,
		params.LicenseNumber,
		params.Username,
		params.HashedPassword,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, pkgErrors.ErrUserAlreadyExists
		}

		r.logger.Error("create user", slog.String("error", err.Error()))
		return models.User{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return user, nil
}

func (r *SqlxRepository) GetByUsername(ctx context.Context, username string) (models.User, error) {
	const getCmd = `
	SELECT ` + userColumns + `
	FROM users
	WHERE username = $1;`

	var user models.User
	err := r.db.GetContext(ctx, &user, getCmd, username)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, pkgErrors.ErrUserNotFound
	} else if err != nil {
		r.logger.Error("get user by username", slog.String("error", err.Error()))
		return models.User{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return user, nil
}

func (r *SqlxRepository) GetByID(ctx context.Context, id int) (models.User, error) {
	const getCmd = `
	SELECT ` + userColumns + `
	FROM users
	WHERE id = $1;`

	var user models.User
	err := r.db.GetContext(ctx, &user, getCmd, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, pkgErrors.ErrUserNotFound
	} else if err != nil {
		r.logger.Error("get user by id", slog.String("error", err.Error()))
		return models.User{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return user, nil
}

// Update is a partial update: the password column is only touched when a
// new hash is supplied.
func (r *SqlxRepository) Update(ctx context.Context, params usecase.UpdateParams) (models.User, error) {
	const updateCmd = `
	UPDATE users
	SET first_name         = $1,
	    last_name          = $2,
	    phone_number       = $3,
	    ic_passport_number = $4,
	    email              = $5,
	    license_number     = $6,
	    username           = $7,
	    hashed_password    = COALESCE(NULLIF($8, ''), hashed_password),
	    updated_at         = now()
	WHERE id = $9
	RETURNING ` + userColumns + `;`

	var user models.User
	err := r.db.GetContext(ctx, &user, updateCmd,
		params.FirstName,
		params.LastName,
		params.PhoneNumber,
		params.IcPassportNumber,
		params.Email,
		params.LicenseNumber,
		params.Username,
		params.HashedPassword,
		params.ID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, pkgErrors.ErrUserNotFound
	} else if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, pkgErrors.ErrUserAlreadyExists
		}

		r.logger.Error("update user", slog.String("error", err.Error()))
		return models.User{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return user, nil
}

func (r *SqlxRepository) List(ctx context.Context) ([]models.User, error) {
	const listCmd = `
	SELECT ` + userColumns + `
	FROM users
	ORDER BY id;`

	users := make([]models.User, 0)
	if err := sqlxutils.Select(ctx, r.db, &users, listCmd); err != nil {
		r.logger.Error("list users", slog.String("error", err.Error()))
		return nil, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return users, nil
}

const adminColumns = `id, first_name, last_name, phone_number, ic_passport_number,
	email, license_number, username, hashed_password, created_at, updated_at`

// CreateAdmin inserts a new admin row. The username column is generated by
// the store from the row id ('admin' || id), so allocation is atomic and
// concurrent signups can never collide.
func (r *SqlxRepository) CreateAdmin(ctx context.Context, params usecase.CreateParams) (models.Admin, error) {
	const createCmd = `
	INSERT INTO admins (first_name, last_name, phone_number, ic_passport_number,
	                    email, license_number, hashed_password)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING ` + adminColumns + `;`

	var admin models.Admin
	err := r.db.GetContext(ctx, &admin, createCmd,
		params.FirstName,
		params.LastName,
		params.PhoneNumber,
		params.IcPassportNumber,
		params.Email,
		params.LicenseNumber,
		params.HashedPassword,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Admin{}, pkgErrors.ErrUserAlreadyExists
		}

		r.logger.Error("create admin", slog.String("error", err.Error()))
		return models.Admin{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return admin, nil
}

func (r *SqlxRepository) GetAdminByUsername(ctx context.Context, username string) (models.Admin, error) {
	const getCmd = `
	SELECT ` + adminColumns + `
	FROM admins
	WHERE username = $1;`

	var admin models.Admin
	err := r.db.GetContext(ctx, &admin, getCmd, username)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Admin{}, pkgErrors.ErrAdminNotFound
	} else if err != nil {
		r.logger.Error("get admin by username", slog.String("error", err.Error()))
		return models.Admin{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return admin, nil
}

func (r *SqlxRepository) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	const listCmd = `
	SELECT ` + adminColumns + `
	FROM admins
	ORDER BY id;`

	admins := make([]models.Admin, 0)
	if err := sqlxutils.Select(ctx, r.db, &admins, listCmd); err != nil {
		r.logger.Error("list admins", slog.String("error", err.Error()))
		return nil, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return admins, nil
}

// DeleteAdmin removes the admin row; bookings referencing the admin keep
// existing with admin_id set to NULL by the store.
func (r *SqlxRepository) DeleteAdmin(ctx context.Context, id int) error {
	const deleteCmd = `DELETE FROM admins WHERE id = $1;`

	result, err := r.db.ExecContext(ctx, deleteCmd, id)
	if err != nil {
		r.logger.Error("delete admin", slog.String("error", err.Error()))
		return errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(pkgErrors.ErrDb, err.Error())
	}
	if affected == 0 {
		return pkgErrors.ErrAdminNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
