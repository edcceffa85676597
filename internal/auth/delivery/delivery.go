package delivery

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/SlavaShagalov/car-booking/internal/auth/usecase"
	"github.com/SlavaShagalov/car-booking/internal/models"
	"github.com/SlavaShagalov/car-booking/internal/pkg/app"
	pkgValidator "github.com/SlavaShagalov/car-booking/internal/pkg/validator"
)

type Delivery struct {
	useCase    UseCase
	sessions   Sessions
	sessionTTL time.Duration
	logger     *slog.Logger
}

func New(useCase UseCase, sessions Sessions, sessionTTL time.Duration, logger *slog.Logger) *Delivery {
	return &Delivery{
		useCase:    useCase,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

func (d *Delivery) HealthCheck(ctx context.Context) error {
	return d.useCase.HealthCheck(ctx)
}

func (d *Delivery) AddHandlers(router fiber.Router, mw *app.SessionMW) {
	router.Post("/signup", d.signup)
	router.Post("/adminsignup", d.adminSignup)
	router.Post("/login", d.login)
	router.Post("/adminlogin", d.adminLogin)
	router.Get("/check-session", d.checkSession)
	router.Get("/logout", mw.RequireUser, d.logout)

	router.Get("/get-user-info", mw.RequireUser, d.getUserInfo)
	router.Put("/update-user-info", mw.RequireUser, d.updateUserInfo)

	router.Get("/users", mw.RequireAdmin, d.listUsers)
	router.Delete("/users/:id", mw.RequireAdmin, d.deleteUser)
	router.Get("/admins", mw.RequireAdmin, d.listAdmins)
	router.Delete("/admins/:id", mw.RequireAdmin, d.deleteAdmin)
}

func (d *Delivery) signup(ctx *fiber.Ctx) error {
	var dto SignUpDTO
	if err := ctx.BodyParser(&dto); err != nil {
		d.logger.Error(err.Error())
		return fiber.NewError(fiber.StatusBadRequest, "invalid sign up request")
	}
	if err := pkgValidator.Struct(dto); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	user, err := d.useCase.SignUp(ctx.Context(), usecase.SignUpParams{
		FirstName:        dto.FirstName,
		LastName:         dto.LastName,
		PhoneNumber:      dto.PhoneNumber,
		IcPassportNumber: dto.IcPassportNumber,
		Email:            dto.Email,
		LicenseNumber:    dto.LicenseNumber,
		Username:         dto.Username,
		Password:         dto.Password,
	})
	if err != nil {
		return err
	}

	// Signup also signs the user in.
	if err = d.createSession(ctx, models.Session{
		UserID:   user.ID,
		Username: user.Username,
		Name:     user.FullName(),
		Email:    user.Email,
		Role:     models.RoleUser,
	}); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "User signed up successfully",
	})
}

func (d *Delivery) adminSignup(ctx *fiber.Ctx) error {
	var dto AdminSignUpDTO
	if err := ctx.BodyParser(&dto); err != nil {
		d.logger.Error(err.Error())
		return fiber.NewError(fiber.StatusBadRequest, "invalid sign up request")
	}
	if err := pkgValidator.Struct(dto); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	admin, err := d.useCase.AdminSignUp(ctx.Context(), usecase.SignUpParams{
		FirstName:        dto.FirstName,
		LastName:         dto.LastName,
		PhoneNumber:      dto.PhoneNumber,
		IcPassportNumber: dto.IcPassportNumber,
		Email:            dto.Email,
		LicenseNumber:    dto.LicenseNumber,
		Password:         dto.Password,
	})
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"message":  "Admin signed up successfully",
		"username": admin.Username,
	})
}

func (d *Delivery) login(ctx *fiber.Ctx) error {
	var dto SignInDTO
	if err := ctx.BodyParser(&dto); err != nil {
		d.logger.Error(err.Error())
		return fiber.NewError(fiber.StatusBadRequest, "invalid login request")
	}
	if err := pkgValidator.Struct(dto); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	user, err := d.useCase.SignIn(ctx.Context(), usecase.SignInParams{
		Username: dto.Username,
		Password: dto.Password,
	})
	if err != nil {
		return err
	}

	session := models.Session{
		UserID:   user.ID,
		Username: user.Username,
		Name:     user.FullName(),
		Email:    user.Email,
		Role:     models.RoleUser,
	}
	if err = d.createSession(ctx, session); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"user":    NewSessionUserResponseDTO(session),
	})
}

func (d *Delivery) adminLogin(ctx *fiber.Ctx) error {
	var dto SignInDTO
	if err := ctx.BodyParser(&dto); err != nil {
		d.logger.Error(err.Error())
		return fiber.NewError(fiber.StatusBadRequest, "invalid login request")
	}
	if err := pkgValidator.Struct(dto); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	admin, err := d.useCase.AdminSignIn(ctx.Context(), usecase.SignInParams{
		Username: dto.Username,
		Password: dto.Password,
	})
	if err != nil {
		return err
	}

	session := models.Session{
		UserID:   admin.ID,
		Username: admin.Username,
		Name:     admin.FullName(),
		Email:    admin.Email,
		Role:     models.RoleAdmin,
	}
	if err = d.createSession(ctx, session); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"user":    NewSessionUserResponseDTO(session),
	})
}

// checkSession never fails: it answers loggedIn true or false.
func (d *Delivery) checkSession(ctx *fiber.Ctx) error {
	token := ctx.Cookies(app.SessionCookie)
	if token == "" {
		return ctx.JSON(fiber.Map{"loggedIn": false})
	}

	session, err := d.sessions.Get(ctx.Context(), token)
	if err != nil {
		return ctx.JSON(fiber.Map{"loggedIn": false})
	}

	return ctx.JSON(fiber.Map{
		"loggedIn": true,
		"user":     NewSessionUserResponseDTO(session),
	})
}

// logout reports success even when the store cannot destroy the session;
// the failure is logged server-side. The client's cookie is cleared either
// way.
func (d *Delivery) logout(ctx *fiber.Ctx) error {
	if token, ok := app.TokenFromCtx(ctx); ok {
		if err := d.sessions.Destroy(ctx.Context(), token); err != nil {
			d.logger.Error("destroy session on logout", slog.String("error", err.Error()))
		}
	}

	d.clearSessionCookie(ctx)
	return ctx.JSON(fiber.Map{"success": true})
}

func (d *Delivery) getUserInfo(ctx *fiber.Ctx) error {
	session, _ := app.SessionFromCtx(ctx)

	user, err := d.useCase.GetProfile(ctx.Context(), session.UserID)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"user":    NewUserResponseDTO(user),
	})
}

func (d *Delivery) updateUserInfo(ctx *fiber.Ctx) error {
	session, _ := app.SessionFromCtx(ctx)

	var dto UpdateUserDTO
	if err := ctx.BodyParser(&dto); err != nil {
		d.logger.Error(err.Error())
		return fiber.NewError(fiber.StatusBadRequest, "invalid update request")
	}
	if err := pkgValidator.Struct(dto); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	_, err := d.useCase.UpdateProfile(ctx.Context(), usecase.UpdateParams{
		ID:               session.UserID,
		FirstName:        dto.FirstName,
		LastName:         dto.LastName,
		PhoneNumber:      dto.PhoneNumber,
		IcPassportNumber: dto.IcPassportNumber,
		Email:            dto.Email,
		LicenseNumber:    dto.LicenseNumber,
		Username:         dto.Username,
	}, dto.Password)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "User information updated successfully",
	})
}

func (d *Delivery) listUsers(ctx *fiber.Ctx) error {
	users, err := d.useCase.ListUsers(ctx.Context())
	if err != nil {
		return err
	}
	if len(users) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "no users found")
	}

	items := make([]UserResponse, 0, len(users))
	for _, user := range users {
		items = append(items, NewUserResponseDTO(user))
	}

	return ctx.JSON(fiber.Map{"success": true, "items": items})
}

func (d *Delivery) deleteUser(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	if err = d.useCase.DeleteUser(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "User deleted successfully"})
}

func (d *Delivery) listAdmins(ctx *fiber.Ctx) error {
	admins, err := d.useCase.ListAdmins(ctx.Context())
	if err != nil {
		return err
	}
	if len(admins) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "no admins found")
	}

	items := make([]fiber.Map, 0, len(admins))
	for _, admin := range admins {
		items = append(items, fiber.Map{
			"id":         admin.ID,
			"first_name": admin.FirstName,
			"last_name":  admin.LastName,
			"email":      admin.Email,
			"username":   admin.Username,
			"created_at": admin.CreatedAt,
		})
	}

	return ctx.JSON(fiber.Map{"success": true, "items": items})
}

func (d *Delivery) deleteAdmin(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid admin id")
	}

	if err = d.useCase.DeleteAdmin(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Admin deleted successfully"})
}

func (d *Delivery) createSession(ctx *fiber.Ctx, session models.Session) error {
	token, err := d.sessions.Create(ctx.Context(), session)
	if err != nil {
		return err
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     app.SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(d.sessionTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return nil
}

func (d *Delivery) clearSessionCookie(ctx *fiber.Ctx) {
	ctx.Cookie(&fiber.Cookie{
		Name:     app.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
