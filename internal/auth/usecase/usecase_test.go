package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"

	"github.com/SlavaShagalov/car-booking/internal/models"
	pkgErrors "github.com/SlavaShagalov/car-booking/internal/pkg/errors"
	"github.com/SlavaShagalov/car-booking/internal/pkg/hasher"
)

// memRepository keeps accounts in maps. Admin usernames are allocated from
// the row id the way the real store's generated column does.
type memRepository struct {
	users      map[string]models.User
	admins     map[string]models.Admin
	nextID     int
	lastUpdate UpdateParams
}

func newMemRepository() *memRepository {
	return &memRepository{
		users:  make(map[string]models.User),
		admins: make(map[string]models.Admin),
	}
}

func (r *memRepository) HealthCheck(context.Context) error { return nil }

func (r *memRepository) Create(_ context.Context, params CreateParams) (models.User, error) {
	if _, ok := r.users[params.Username]; ok {
		return models.User{}, pkgErrors.ErrUserAlreadyExists
	}

	r.nextID++
	user := models.User{
		ID:        r.nextID,
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Email:     params.Email,
		Username:  params.Username,
		Password:  params.HashedPassword,
	}
	r.users[user.Username] = user
	return user, nil
}

func (r *memRepository) GetByUsername(_ context.Context, username string) (models.User, error) {
	user, ok := r.users[username]
	if !ok {
		return models.User{}, pkgErrors.ErrUserNotFound
	}
	return user, nil
}

func (r *memRepository) GetByID(_ context.Context, id int) (models.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, pkgErrors.ErrUserNotFound
}

func (r *memRepository) Update(_ context.Context, params UpdateParams) (models.User, error) {
	r.lastUpdate = params
	for _, user := range r.users {
		if user.ID == params.ID {
			return user, nil
		}
	}
	return models.User{}, pkgErrors.ErrUserNotFound
}

func (r *memRepository) List(context.Context) ([]models.User, error) { return nil, nil }

func (r *memRepository) CreateAdmin(_ context.Context, params CreateParams) (models.Admin, error) {
	r.nextID++
	admin := models.Admin{
		ID:       r.nextID,
		Email:    params.Email,
		Username: fmt.Sprintf("admin%d", r.nextID),
		Password: params.HashedPassword,
	}
	r.admins[admin.Username] = admin
	return admin, nil
}

func (r *memRepository) GetAdminByUsername(_ context.Context, username string) (models.Admin, error) {
	admin, ok := r.admins[username]
	if !ok {
		return models.Admin{}, pkgErrors.ErrAdminNotFound
	}
	return admin, nil
}

func (r *memRepository) ListAdmins(context.Context) ([]models.Admin, error) { return nil, nil }

func (r *memRepository) DeleteAdmin(_ context.Context, id int) error {
	for username, admin := range r.admins {
		if admin.ID == id {
			delete(r.admins, username)
			return nil
		}
	}
	return pkgErrors.ErrAdminNotFound
}

type cascadeRecorder struct {
	calls  int
	lastID int
}

func (c *cascadeRecorder) DeleteAccountCascade(_ context.Context, userID int) error {
	c.calls++
	c.lastID = userID
	return nil
}

type AuthSuite struct {
	suite.Suite

	repo     *memRepository
	cascader *cascadeRecorder
	hasher   *hasher.BcryptHasher
	uc       *UseCase
}

func (s *AuthSuite) BeforeEach(t provider.T) {
	s.repo = newMemRepository()
	s.cascader = &cascadeRecorder{}
	s.hasher = hasher.NewBcryptHasher()
	s.uc = New(s.repo, s.cascader, slog.New(slog.NewTextHandler(io.Discard, nil)), s.hasher)
}

func (s *AuthSuite) TestSignUpStoresHashedPassword(t provider.T) {
	t.Title("Signup never persists the plain password")
	ctx := context.Background()

	user, err := s.uc.SignUp(ctx, SignUpParams{Username: "jlee", Password: "s3cret", Email: "jlee@mail.com"})
	t.Require().NoError(err)

	stored := s.repo.users[user.Username]
	t.Assert().NotEqual("s3cret", stored.Password)
	t.Assert().NoError(s.hasher.CompareHashAndPassword(ctx, stored.Password, "s3cret"))
}

func (s *AuthSuite) TestSignInRoundTrip(t provider.T) {
	t.Title("A signed-up user can sign in with the same credentials")
	ctx := context.Background()

	_, err := s.uc.SignUp(ctx, SignUpParams{Username: "jlee", Password: "s3cret"})
	t.Require().NoError(err)

	user, err := s.uc.SignIn(ctx, SignInParams{Username: "jlee", Password: "s3cret"})
	t.Require().NoError(err)
	t.Assert().Equal("jlee", user.Username)
}

func (s *AuthSuite) TestSignInWrongPassword(t provider.T) {
	t.Title("A wrong password is rejected without detail")
	ctx := context.Background()

	_, err := s.uc.SignUp(ctx, SignUpParams{Username: "jlee", Password: "s3cret"})
	t.Require().NoError(err)

	_, err = s.uc.SignIn(ctx, SignInParams{Username: "jlee", Password: "wrong"})
	t.Assert().ErrorIs(err, pkgErrors.ErrWrongLoginOrPassword)
}

func (s *AuthSuite) TestSignInUnknownUsername(t provider.T) {
	t.Title("An unknown username reads the same as a wrong password")

	_, err := s.uc.SignIn(context.Background(), SignInParams{Username: "ghost", Password: "s3cret"})
	t.Assert().ErrorIs(err, pkgErrors.ErrWrongLoginOrPassword)
}

func (s *AuthSuite) TestAdminSignUpAllocatesUsername(t provider.T) {
	t.Title("Admin usernames come from the store, not the request")
	ctx := context.Background()

	first, err := s.uc.AdminSignUp(ctx, SignUpParams{Password: "pw1", Email: "a1@mail.com"})
	t.Require().NoError(err)
	second, err := s.uc.AdminSignUp(ctx, SignUpParams{Password: "pw2", Email: "a2@mail.com"})
	t.Require().NoError(err)

	t.Assert().Equal(fmt.Sprintf("admin%d", first.ID), first.Username)
	t.Assert().Equal(fmt.Sprintf("admin%d", second.ID), second.Username)
	t.Assert().NotEqual(first.Username, second.Username)
}

func (s *AuthSuite) TestAdminSignInRoundTrip(t provider.T) {
	t.Title("An admin signs in with the allocated username")
	ctx := context.Background()

	admin, err := s.uc.AdminSignUp(ctx, SignUpParams{Password: "pw1"})
	t.Require().NoError(err)

	got, err := s.uc.AdminSignIn(ctx, SignInParams{Username: admin.Username, Password: "pw1"})
	t.Require().NoError(err)
	t.Assert().Equal(admin.ID, got.ID)
}

func (s *AuthSuite) TestUpdateProfileRehashesNewPassword(t provider.T) {
	t.Title("A new password is rehashed before it reaches the store")
	ctx := context.Background()

	user, err := s.uc.SignUp(ctx, SignUpParams{Username: "jlee", Password: "s3cret"})
	t.Require().NoError(err)

	_, err = s.uc.UpdateProfile(ctx, UpdateParams{ID: user.ID, Username: "jlee"}, "newpass")
	t.Require().NoError(err)

	t.Assert().NotEqual("newpass", s.repo.lastUpdate.HashedPassword)
	t.Assert().NoError(s.hasher.CompareHashAndPassword(ctx, s.repo.lastUpdate.HashedPassword, "newpass"))
}

func (s *AuthSuite) TestUpdateProfileKeepsPassword(t provider.T) {
	t.Title("Without a new password the update carries no hash")
	ctx := context.Background()

	user, err := s.uc.SignUp(ctx, SignUpParams{Username: "jlee", Password: "s3cret"})
	t.Require().NoError(err)

	_, err = s.uc.UpdateProfile(ctx, UpdateParams{ID: user.ID, Username: "jlee"}, "")
	t.Require().NoError(err)
	t.Assert().Empty(s.repo.lastUpdate.HashedPassword)
}

func (s *AuthSuite) TestDeleteUserGoesThroughCascade(t provider.T) {
	t.Title("Administrative user deletion uses the booking cascade")

	err := s.uc.DeleteUser(context.Background(), 42)
	t.Require().NoError(err)
	t.Assert().Equal(1, s.cascader.calls)
	t.Assert().Equal(42, s.cascader.lastID)
}

func (s *AuthSuite) TestDuplicateUsername(t provider.T) {
	t.Title("A taken username is reported as a conflict")
	ctx := context.Background()

	_, err := s.uc.SignUp(ctx, SignUpParams{Username: "jlee", Password: "s3cret"})
	t.Require().NoError(err)

	_, err = s.uc.SignUp(ctx, SignUpParams{Username: "jlee", Password: "other"})
	t.Assert().ErrorIs(err, pkgErrors.ErrUserAlreadyExists)
}

func TestAuthSuite(t *testing.T) {
	suite.RunSuite(t, new(AuthSuite))
}
