package usecase

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/SlavaShagalov/car-booking/internal/models"
	pkgErrors "github.com/SlavaShagalov/car-booking/internal/pkg/errors"
	pkgHasher "github.com/SlavaShagalov/car-booking/internal/pkg/hasher"
)

type UseCase struct {
	repo     Repository
	cascader Cascader
	logger   *slog.Logger
	hasher   pkgHasher.Hasher
}

func New(repo Repository, cascader Cascader, logger *slog.Logger, hasher pkgHasher.Hasher) *UseCase {
	return &UseCase{
		repo:     repo,
		cascader: cascader,
		logger:   logger,
		hasher:   hasher,
	}
}

func (u *UseCase) HealthCheck(ctx context.Context) error {
	return u.repo.HealthCheck(ctx)
}

func (u *UseCase) SignUp(ctx context.Context, params SignUpParams) (models.User, error) {
	hashedPassword, err := u.hasher.GetHashedPassword(ctx, params.Password)
	if err != nil {
		return models.User{}, errors.Wrap(pkgErrors.ErrGetHashedPassword, err.Error())
	}

	user, err := u.repo.Create(ctx, CreateParams{
		FirstName:        params.FirstName,
		LastName:         params.LastName,
		PhoneNumber:      params.PhoneNumber,
		IcPassportNumber: params.IcPassportNumber,
		Email:            params.Email,
		LicenseNumber:    params.LicenseNumber,
		Username:         params.Username,
		HashedPassword:   hashedPassword,
	})
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// AdminSignUp inserts a new admin; the username is allocated from the
// row's id inside the repository transaction and returned on the record.
func (u *UseCase) AdminSignUp(ctx context.Context, params SignUpParams) (models.Admin, error) {
	hashedPassword, err := u.hasher.GetHashedPassword(ctx, params.Password)
	if err != nil {
		return models.Admin{}, errors.Wrap(pkgErrors.ErrGetHashedPassword, err.Error())
	}

	admin, err := u.repo.CreateAdmin(ctx, CreateParams{
		FirstName:        params.FirstName,
		LastName:         params.LastName,
		PhoneNumber:      params.PhoneNumber,
		IcPassportNumber: params.IcPassportNumber,
		Email:            params.Email,
		LicenseNumber:    params.LicenseNumber,
		HashedPassword:   hashedPassword,
	})
	if err != nil {
		return models.Admin{}, err
	}

	return admin, nil
}

// SignIn answers every failure with ErrWrongLoginOrPassword: an unknown
// username and a wrong password are indistinguishable to the caller.
func (u *UseCase) SignIn(ctx context.Context, params SignInParams) (models.User, error) {
	user, err := u.repo.GetByUsername(ctx, params.Username)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrUserNotFound) {
			return models.User{}, pkgErrors.ErrWrongLoginOrPassword
		}
		return models.User{}, err
	}

	if err = u.hasher.CompareHashAndPassword(ctx, user.Password, params.Password); err != nil {
		return models.User{}, pkgErrors.ErrWrongLoginOrPassword
	}

	return user, nil
}

func (u *UseCase) AdminSignIn(ctx context.Context, params SignInParams) (models.Admin, error) {
	admin, err := u.repo.GetAdminByUsername(ctx, params.Username)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrAdminNotFound) {
			return models.Admin{}, pkgErrors.ErrWrongLoginOrPassword
		}
		return models.Admin{}, err
	}

	if err = u.hasher.CompareHashAndPassword(ctx, admin.Password, params.Password); err != nil {
		return models.Admin{}, pkgErrors.ErrWrongLoginOrPassword
	}

	return admin, nil
}

func (u *UseCase) GetProfile(ctx context.Context, userID int) (models.User, error) {
	return u.repo.GetByID(ctx, userID)
}

// UpdateProfile applies a partial update; a supplied new password is
// rehashed before it is persisted.
func (u *UseCase) UpdateProfile(ctx context.Context, params UpdateParams, newPassword string) (models.User, error) {
	if newPassword != "" {
		hashedPassword, err := u.hasher.GetHashedPassword(ctx, newPassword)
		if err != nil {
			return models.User{}, errors.Wrap(pkgErrors.ErrGetHashedPassword, err.Error())
		}
		params.HashedPassword = hashedPassword
	}

	return u.repo.Update(ctx, params)
}

func (u *UseCase) ListUsers(ctx context.Context) ([]models.User, error) {
	return u.repo.List(ctx)
}

// DeleteUser removes a user and all their bookings through the booking
// lifecycle cascade.
func (u *UseCase) DeleteUser(ctx context.Context, id int) error {
	return u.cascader.DeleteAccountCascade(ctx, id)
}

func (u *UseCase) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	return u.repo.ListAdmins(ctx)
}

func (u *UseCase) DeleteAdmin(ctx context.Context, id int) error {
	return u.repo.DeleteAdmin(ctx, id)
}
