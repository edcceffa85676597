package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SlavaShagalov/car-booking/internal/models"
	pkgErrors "github.com/SlavaShagalov/car-booking/internal/pkg/errors"
)

type stubSessions struct {
	sessions map[string]models.Session
}

func (s *stubSessions) Get(_ context.Context, token string) (models.Session, error) {
	session, ok := s.sessions[token]
	if !ok {
		return models.Session{}, pkgErrors.ErrSessionNotFound
	}
	return session, nil
}

// errorDelivery exposes one route per sentinel so the mapping can be hit
// through a real request.
type errorDelivery struct {
	handled bool
}

func (d *errorDelivery) HealthCheck(context.Context) error { return nil }

func (d *errorDelivery) AddHandlers(router fiber.Router, mw *SessionMW) {
	fail := func(err error) fiber.Handler {
		return func(*fiber.Ctx) error { return err }
	}

	router.Get("/unauthorized", fail(pkgErrors.ErrWrongLoginOrPassword))
	router.Get("/missing", fail(pkgErrors.ErrBookingNotFound))
	router.Get("/invalid", fail(pkgErrors.ErrInvalidBookingParams))
	router.Get("/conflict", fail(pkgErrors.ErrUserAlreadyExists))
	router.Get("/forbidden", fail(pkgErrors.ErrAccessDenied))
	router.Get("/internal", fail(pkgErrors.ErrDb))

	router.Get("/gated", mw.RequireUser, func(ctx *fiber.Ctx) error {
		d.handled = true
		return ctx.SendStatus(fiber.StatusOK)
	})
	router.Get("/admin-gated", mw.RequireAdmin, func(ctx *fiber.Ctx) error {
		d.handled = true
		return ctx.SendStatus(fiber.StatusOK)
	})
}

func newTestApp(sessions Sessions, delivery Delivery) *WebApp {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	passThrough := func(ctx *fiber.Ctx) error { return ctx.Next() }
	return NewFiberApp(WebConfig{Host: "localhost", Port: "0"}, passThrough, NewSessionMW(sessions, logger), logger, delivery)
}

func TestErrorMapping(t *testing.T) {
	webApp := newTestApp(&stubSessions{}, &errorDelivery{})

	tests := []struct {
		path string
		code int
	}{
		{path: "/api/unauthorized", code: http.StatusUnauthorized},
		{path: "/api/missing", code: http.StatusNotFound},
		{path: "/api/invalid", code: http.StatusBadRequest},
		{path: "/api/conflict", code: http.StatusConflict},
		{path: "/api/forbidden", code: http.StatusForbidden},
		{path: "/api/internal", code: http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			resp, err := webApp.app.Test(httptest.NewRequest(http.MethodGet, test.path, nil))
			require.NoError(t, err)
			assert.Equal(t, test.code, resp.StatusCode)
		})
	}
}

func TestInternalErrorBodyIsGeneric(t *testing.T) {
	webApp := newTestApp(&stubSessions{}, &errorDelivery{})

	resp, err := webApp.app.Test(httptest.NewRequest(http.MethodGet, "/api/internal", nil))
	require.NoError(t, err)

	body := make([]byte, 256)
	n, _ := resp.Body.Read(body)
	assert.NotContains(t, string(body[:n]), "database error")
	assert.Contains(t, string(body[:n]), "internal server error")
}

func TestSessionGate(t *testing.T) {
	sessions := &stubSessions{sessions: map[string]models.Session{
		"user-token":  {UserID: 7, Role: models.RoleUser},
		"admin-token": {UserID: 1, Role: models.RoleAdmin},
	}}

	t.Run("no cookie", func(t *testing.T) {
		delivery := &errorDelivery{}
		webApp := newTestApp(sessions, delivery)

		resp, err := webApp.app.Test(httptest.NewRequest(http.MethodGet, "/api/gated", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.False(t, delivery.handled, "the handler must not run without a session")
	})

	t.Run("unknown token", func(t *testing.T) {
		delivery := &errorDelivery{}
		webApp := newTestApp(sessions, delivery)

		req := httptest.NewRequest(http.MethodGet, "/api/gated", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "stale-token"})

		resp, err := webApp.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.False(t, delivery.handled)
	})

	t.Run("valid session", func(t *testing.T) {
		delivery := &errorDelivery{}
		webApp := newTestApp(sessions, delivery)

		req := httptest.NewRequest(http.MethodGet, "/api/gated", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "user-token"})

		resp, err := webApp.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, delivery.handled)
	})

	t.Run("user session on admin route", func(t *testing.T) {
		delivery := &errorDelivery{}
		webApp := newTestApp(sessions, delivery)

		req := httptest.NewRequest(http.MethodGet, "/api/admin-gated", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "user-token"})

		resp, err := webApp.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.False(t, delivery.handled, "the role tag gates admin routes, not just login")
	})

	t.Run("admin session on admin route", func(t *testing.T) {
		delivery := &errorDelivery{}
		webApp := newTestApp(sessions, delivery)

		req := httptest.NewRequest(http.MethodGet, "/api/admin-gated", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "admin-token"})

		resp, err := webApp.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
