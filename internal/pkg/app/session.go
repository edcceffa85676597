package app

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/SlavaShagalov/car-booking/internal/models"
	pkgErrors "github.com/SlavaShagalov/car-booking/internal/pkg/errors"
)

// SessionCookie carries the opaque session token.
const SessionCookie = "session_id"

const (
	sessionKey = "session"
	tokenKey   = "session_token"
)

type Sessions interface {
	Get(ctx context.Context, token string) (models.Session, error)
}

// SessionMW gates handlers on a valid session. The gate runs before any
// other component is touched: a missing or expired token short-circuits
// with ErrSessionNotFound and the handler never executes.
type SessionMW struct {
	sessions Sessions
	logger   *slog.Logger
}

func NewSessionMW(sessions Sessions, logger *slog.Logger) *SessionMW {
	return &SessionMW{
		sessions: sessions,
		logger:   logger,
	}
}

func (mw *SessionMW) RequireUser(ctx *fiber.Ctx) error {
	token := ctx.Cookies(SessionCookie)
	if token == "" {
		return pkgErrors.ErrSessionNotFound
	}

	session, err := mw.sessions.Get(ctx.Context(), token)
	if err != nil {
		return err
	}

	ctx.Locals(sessionKey, session)
	ctx.Locals(tokenKey, token)
	return ctx.Next()
}

// RequireAdmin is a separate precondition from "is logged in": the session
// must exist AND carry the admin role tag.
func (mw *SessionMW) RequireAdmin(ctx *fiber.Ctx) error {
	token := ctx.Cookies(SessionCookie)
	if token == "" {
		return pkgErrors.ErrSessionNotFound
	}

	session, err := mw.sessions.Get(ctx.Context(), token)
	if err != nil {
		return err
	}
	if !session.IsAdmin() {
		return pkgErrors.ErrAdminRequired
	}

	ctx.Locals(sessionKey, session)
	ctx.Locals(tokenKey, token)
	return ctx.Next()
}

// SessionFromCtx returns the session stored by the middleware.
func SessionFromCtx(ctx *fiber.Ctx) (models.Session, bool) {
	session, ok := ctx.Locals(sessionKey).(models.Session)
	return session, ok
}

// TokenFromCtx returns the raw token stored by the middleware, for
// operations that destroy their own session.
func TokenFromCtx(ctx *fiber.Ctx) (string, bool) {
	token, ok := ctx.Locals(tokenKey).(string)
	return token, ok
}
