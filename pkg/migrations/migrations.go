package migrations

import (
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/pkg/errors"
)

// Do applies all pending migrations from the given directory. Both the
// postgres database driver and the file source must be blank-imported by
// the caller.
func Do(connString, path string, logger *slog.Logger) error {
	m, err := migrate.New("file://"+path, connString)
	if err != nil {
		return errors.Wrap(err, "open migrations")
	}
	defer m.Close()

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Debug("migrations: nothing to apply")
		return nil
	} else if err != nil {
		return errors.Wrap(err, "apply migrations")
	}

	logger.Debug("migrations applied")
	return nil
}
