package usecase

import (
	"context"

	"github.com/SlavaShagalov/car-booking/internal/models"
)

type SignInParams struct {
	Username string
	Password string
}

type SignUpParams struct {
	FirstName        string
	LastName         string
	PhoneNumber      string
	IcPassportNumber string
	Email            string
	LicenseNumber    string
	Username         string
	Password         string
}

type CreateParams struct {
	FirstName        string
	LastName         string
	PhoneNumber      string
	IcPassportNumber string
	Email            string
	LicenseNumber    string
	Username         string
	HashedPassword   string
}

// UpdateParams is a partial profile update; HashedPassword is applied only
// when non-empty.
type UpdateParams struct {
	ID               int
	FirstName        string
	LastName         string
	PhoneNumber      string
	IcPassportNumber string
	Email            string
	LicenseNumber    string
	Username         string
	HashedPassword   string
}

type Repository interface {
	HealthCheck(ctx context.Context) error

	Create(ctx context.Context, params CreateParams) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	GetByID(ctx context.Context, id int) (models.User, error)
	Update(ctx context.Context, params UpdateParams) (models.User, error)
	List(ctx context.Context) ([]models.User, error)

	CreateAdmin(ctx context.Context, params CreateParams) (models.Admin, error)
	GetAdminByUsername(ctx context.Context, username string) (models.Admin, error)
	ListAdmins(ctx context.Context) ([]models.Admin, error)
	DeleteAdmin(ctx context.Context, id int) error
}

// Cascader removes a user together with every booking referencing them,
// as one atomic unit. Owned by the booking lifecycle; injected here so
// administrative user deletion shares the same cascade.
type Cascader interface {
	DeleteAccountCascade(ctx context.Context, userID int) error
}
