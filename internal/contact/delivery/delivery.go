package delivery

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/SlavaShagalov/car-booking/internal/contact/usecase"
	"github.com/SlavaShagalov/car-booking/internal/models"
	"github.com/SlavaShagalov/car-booking/internal/pkg/app"
	pkgValidator "github.com/SlavaShagalov/car-booking/internal/pkg/validator"
)

type UseCase interface {
	app.HealthChecker

	Submit(ctx context.Context, params usecase.SubmitParams) (models.ContactMessage, error)
	List(ctx context.Context) ([]models.ContactMessage, error)
	ListTestimonials(ctx context.Context) ([]models.Testimonial, error)
}

type SubmitFormDTO struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
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

func (d *Delivery) AddHandlers(router fiber.Router, mw *app.SessionMW) {
	router.Post("/submit-form", d.submitForm)
	router.Get("/testimonials", d.listTestimonials)
	router.Get("/contact-us", mw.RequireAdmin, d.listContacts)
}

func (d *Delivery) submitForm(ctx *fiber.Ctx) error {
	var dto SubmitFormDTO
	if err := ctx.BodyParser(&dto); err != nil {
		d.logger.Error(err.Error())
		return fiber.NewError(fiber.StatusBadRequest, "invalid contact request")
	}
	if err := pkgValidator.Struct(dto); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	_, err := d.useCase.Submit(ctx.Context(), usecase.SubmitParams{
		Name:    dto.Name,
		Email:   dto.Email,
		Subject: dto.Subject,
		Message: dto.Message,
	})
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{"message": "Form submitted successfully!"})
}

func (d *Delivery) listTestimonials(ctx *fiber.Ctx) error {
	testimonials, err := d.useCase.ListTestimonials(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(testimonials)
}

func (d *Delivery) listContacts(ctx *fiber.Ctx) error {
	contacts, err := d.useCase.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{"contacts": contacts})
}
