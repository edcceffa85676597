package delivery

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/SlavaShagalov/car-booking/internal/models"
	"github.com/SlavaShagalov/car-booking/internal/pkg/app"
)

type UseCase interface {
	app.HealthChecker

	List(ctx context.Context) ([]models.Car, error)
	Get(ctx context.Context, id int) (models.Car, error)
}

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

func (d *Delivery) AddHandlers(router fiber.Router, _ *app.SessionMW) {
	router.Get("/cars", d.list)
	router.Get("/cars/:id", d.get)
}

func (d *Delivery) list(ctx *fiber.Ctx) error {
	cars, err := d.useCase.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(cars)
}

func (d *Delivery) get(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid car id")
	}

	car, err := d.useCase.Get(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(car)
}
