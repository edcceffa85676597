package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	slogfiber "github.com/samber/slog-fiber"

	pkgErrors "github.com/SlavaShagalov/car-booking/internal/pkg/errors"
)

type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Delivery is one domain's slice of the HTTP surface.
type Delivery interface {
	HealthChecker
	AddHandlers(router fiber.Router, mw *SessionMW)
}

type WebApp struct {
	app  *fiber.App
	addr string
}

// NewFiberApp assembles the fiber application: access log, request
// statistics, the /api group with every delivery's handlers, and a health
// endpoint that pings them all.
func NewFiberApp(
	web WebConfig,
	statisticsMW fiber.Handler,
	sessionMW *SessionMW,
	logger *slog.Logger,
	deliveries ...Delivery,
) *WebApp {
	app := fiber.New(fiber.Config{
		ErrorHandler:          newErrorHandler(logger),
		DisableStartupMessage: true,
	})

	app.Use(slogfiber.New(logger))
	app.Use(statisticsMW)

	api := app.Group("/api")
	for _, d := range deliveries {
		d.AddHandlers(api, sessionMW)
	}

	api.Get("/health", func(ctx *fiber.Ctx) error {
		for _, d := range deliveries {
			if err := d.HealthCheck(ctx.Context()); err != nil {
				return err
			}
		}
		return ctx.SendStatus(fiber.StatusOK)
	})

	return &WebApp{
		app:  app,
		addr: web.Host + ":" + web.Port,
	}
}

func (a *WebApp) Start() error {
	return a.app.Listen(a.addr)
}

func (a *WebApp) Shutdown(ctx context.Context) error {
	return a.app.ShutdownWithContext(ctx)
}

// newErrorHandler maps the sentinel taxonomy to HTTP statuses. Anything
// outside the taxonomy is logged with its cause and answered with a
// generic 500 body so internal detail never reaches the client.
func newErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		}

		code := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, pkgErrors.ErrSessionNotFound),
			errors.Is(err, pkgErrors.ErrWrongLoginOrPassword):
			code = fiber.StatusUnauthorized
		case errors.Is(err, pkgErrors.ErrAdminRequired),
			errors.Is(err, pkgErrors.ErrAccessDenied):
			code = fiber.StatusForbidden
		case errors.Is(err, pkgErrors.ErrUserNotFound),
			errors.Is(err, pkgErrors.ErrAdminNotFound),
			errors.Is(err, pkgErrors.ErrCarNotFound),
			errors.Is(err, pkgErrors.ErrBookingNotFound):
			code = fiber.StatusNotFound
		case errors.Is(err, pkgErrors.ErrInvalidBookingParams),
			errors.Is(err, pkgErrors.ErrInvalidContactParams):
			code = fiber.StatusBadRequest
		case errors.Is(err, pkgErrors.ErrUserAlreadyExists),
			errors.Is(err, pkgErrors.ErrBookingConflict):
			code = fiber.StatusConflict
		}

		if code == fiber.StatusInternalServerError {
			logger.Error("request failed",
				slog.String("method", ctx.Method()),
				slog.String("path", ctx.Path()),
				slog.String("error", err.Error()),
			)
			return ctx.Status(code).JSON(fiber.Map{"error": "internal server error"})
		}

		return ctx.Status(code).JSON(fiber.Map{"error": err.Error()})
	}
}
