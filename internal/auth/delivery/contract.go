package delivery

import (
	"context"

	"github.com/SlavaShagalov/car-booking/internal/auth/usecase"
	"github.com/SlavaShagalov/car-booking/internal/models"
	"github.com/SlavaShagalov/car-booking/internal/pkg/app"
)

type UseCase interface {
	app.HealthChecker

	SignUp(ctx context.Context, params usecase.SignUpParams) (models.User, error)
	AdminSignUp(ctx context.Context, params usecase.SignUpParams) (models.Admin, error)
	SignIn(ctx context.Context, params usecase.SignInParams) (models.User, error)
	AdminSignIn(ctx context.Context, params usecase.SignInParams) (models.Admin, error)

	GetProfile(ctx context.Context, userID int) (models.User, error)
	UpdateProfile(ctx context.Context, params usecase.UpdateParams, newPassword string) (models.User, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id int) error
	ListAdmins(ctx context.Context) ([]models.Admin, error)
	DeleteAdmin(ctx context.Context, id int) error
}

type Sessions interface {
	Create(ctx context.Context, session models.Session) (string, error)
	Get(ctx context.Context, token string) (models.Session, error)
	Destroy(ctx context.Context, token string) error
}
