package delivery

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/SlavaShagalov/car-booking/internal/booking/usecase"
	"github.com/SlavaShagalov/car-booking/internal/pkg/app"
	pkgErrors "github.com/SlavaShagalov/car-booking/internal/pkg/errors"
	pkgValidator "github.com/SlavaShagalov/car-booking/internal/pkg/validator"
)

type Delivery struct {
	useCase UseCase
	logger  *slog.Logger
}

func New(useCase UseCase, logger *slog.Logger) *Delivery {
	return &Delivery{
		useCase: useCase,
		logger:  logger,
	}
}

func (d *Delivery) HealthCheck(ctx context.Context) error {
	return d.useCase.HealthCheck(ctx)
}

func (d *Delivery) AddHandlers(router fiber.Router, mw *app.SessionMW) {
	router.Post("/book-car", mw.RequireUser, d.bookCar)
	router.Put("/cancel-booking/:id", mw.RequireUser, d.cancelBooking)
	router.Get("/get-bookings/:userId", mw.RequireUser, d.getBookings)
	router.Delete("/delete-account", mw.RequireUser, d.deleteAccount)

	router.Get("/bookings", mw.RequireAdmin, d.listAll)
	router.Get("/bookings/:id", mw.RequireAdmin, d.get)
	router.Put("/bookings/:id/:status", mw.RequireAdmin, d.setStatus)
	router.Get("/invoice/:bookingId", mw.RequireAdmin, d.invoice)
}

func (d *Delivery) bookCar(ctx *fiber.Ctx) error {
	session, _ := app.SessionFromCtx(ctx)

	var dto BookCarDTO
	if err := ctx.BodyParser(&dto); err != nil {
		d.logger.Error(err.Error())
		return fiber.NewError(fiber.StatusBadRequest, "invalid booking request")
	}
	if err := pkgValidator.Struct(dto); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// A user can only book on their own behalf.
	if dto.UserID != session.UserID {
		return pkgErrors.ErrAccessDenied
	}

	startDate, err := parseDate(dto.StartDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid start date")
	}
	endDate, err := parseDate(dto.EndDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid end date")
	}

	booking, err := d.useCase.Create(ctx.Context(), usecase.CreateParams{
		CarID:      dto.CarID,
		UserID:     dto.UserID,
		StartDate:  startDate,
		EndDate:    endDate,
		TotalPrice: dto.TotalPrice,
	})
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"message":   "Booking successful!",
		"bookingId": booking.ID,
	})
}

func (d *Delivery) cancelBooking(ctx *fiber.Ctx) error {
	session, _ := app.SessionFromCtx(ctx)

	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid booking id")
	}

	if err = d.useCase.Cancel(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"userId":  session.UserID,
	})
}

// getBookings serves a user's own list; admins may read anyone's.
func (d *Delivery) getBookings(ctx *fiber.Ctx) error {
	session, _ := app.SessionFromCtx(ctx)

	userID, err := ctx.ParamsInt("userId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}
	if userID != session.UserID && !session.IsAdmin() {
		return pkgErrors.ErrAccessDenied
	}

	bookings, err := d.useCase.ListForUser(ctx.Context(), userID)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{"bookings": bookings})
}

func (d *Delivery) deleteAccount(ctx *fiber.Ctx) error {
	session, _ := app.SessionFromCtx(ctx)
	token, _ := app.TokenFromCtx(ctx)

	if err := d.useCase.DeleteAccount(ctx.Context(), session.UserID, token); err != nil {
		return err
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     app.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Account deleted successfully",
	})
}

func (d *Delivery) listAll(ctx *fiber.Ctx) error {
	bookings, err := d.useCase.ListAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(bookings)
}

func (d *Delivery) get(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid booking id")
	}

	details, err := d.useCase.Get(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(details)
}

func (d *Delivery) setStatus(ctx *fiber.Ctx) error {
	session, _ := app.SessionFromCtx(ctx)

	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid booking id")
	}
	status := ctx.Params("status")

	if err = d.useCase.SetStatus(ctx.Context(), id, status, session.UserID); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Booking %s", status),
	})
}

func (d *Delivery) invoice(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("bookingId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid booking id")
	}

	invoice, err := d.useCase.Invoice(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{"invoice": invoice})
}
