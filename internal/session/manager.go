package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/car-booking/internal/models"
	pkgErrors "github.com/SlavaShagalov/car-booking/internal/pkg/errors"
)

// Store is the token → record mapping under the manager. The Redis
// implementation lives in store.go; tests use an in-memory fake.
type Store interface {
	Set(ctx context.Context, token string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, token string) ([]byte, error)
	Del(ctx context.Context, token string) error
	Ping(ctx context.Context) error
}

// Manager issues opaque session tokens with a fixed expiry measured from
// creation. Tokens carry no information themselves; everything lives
// server-side, so Destroy is immediate and absolute.
type Manager struct {
	store  Store
	ttl    time.Duration
	logger *slog.Logger
}

func NewManager(store Store, ttl time.Duration, logger *slog.Logger) *Manager {
	return &Manager{
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

func (m *Manager) HealthCheck(ctx context.Context) error {
	return m.store.Ping(ctx)
}

func (m *Manager) Create(ctx context.Context, session models.Session) (string, error) {
	payload, err := json.Marshal(session)
	if err != nil {
		return "", errors.Wrap(err, "marshal session")
	}

	token := uuid.NewString()
	if err = m.store.Set(ctx, token, payload, m.ttl); err != nil {
		return "", errors.Wrap(err, "store session")
	}

	return token, nil
}

func (m *Manager) Get(ctx context.Context, token string) (models.Session, error) {
	payload, err := m.store.Get(ctx, token)
	if err != nil {
		return models.Session{}, err
	}

	var session models.Session
	if err = json.Unmarshal(payload, &session); err != nil {
		m.logger.Error("corrupt session record", slog.String("error", err.Error()))
		return models.Session{}, pkgErrors.ErrSessionNotFound
	}

	return session, nil
}

func (m *Manager) Destroy(ctx context.Context, token string) error {
	return m.store.Del(ctx, token)
}
