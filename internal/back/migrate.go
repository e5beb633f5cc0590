package back

import (
	"errors"
	"fmt"
	"strings"

	"swiss/internal/util"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // migration driver
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"  // migration driver
	_ "github.com/golang-migrate/migrate/v4/source/file"       // migration source
	"github.com/rs/zerolog"
)

// Migrate applies every pending migration found in sourceURL, a directory
// holding one sub-directory of migrations per SQL driver.
func Migrate(sourceURL, sqlDriver, sqlDSN string, logger zerolog.Logger) (err error) {
	databaseURL, err := migrationDatabaseURL(sqlDriver, sqlDSN)
	if err != nil {
		return err
	}

	migrator, err := migrate.New(strings.TrimSuffix(sourceURL, "/")+"/"+sqlDriver, databaseURL)
	if err != nil {
		return fmt.Errorf("unable to create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := migrator.Close()
		if closeErr := util.ConcatErrors([]error{srcErr, dbErr}); closeErr != nil && err == nil {
			err = fmt.Errorf("unable to close migrator: %w", closeErr)
		}
	}()
	migrator.Log = migrateLogger{logger}

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info().Msg("database schema is up to date")
			return nil
		}

		return err
	}

	version, dirty, err := migrator.Version()
	if err != nil {
		return err
	}
	logger.Info().Uint("version", version).Bool("dirty", dirty).Msg("migrated database schema")

	return nil
}

func migrationDatabaseURL(sqlDriver, sqlDSN string) (string, error) {
	switch sqlDriver {
	case "sqlite3":
		return "sqlite3://" + sqlDSN, nil
	case "postgres":
		if !strings.HasPrefix(sqlDSN, "postgres://") && !strings.HasPrefix(sqlDSN, "postgresql://") {
			return "", fmt.Errorf("postgres DSN must be an URL to be migrated, got %q", sqlDSN)
		}
		return sqlDSN, nil
	default:
		return "", fmt.Errorf("no migrations for driver %q", sqlDriver)
	}
}

type migrateLogger struct {
	logger zerolog.Logger
}

func (l migrateLogger) Printf(format string, v ...interface{}) {
	l.logger.Debug().Msgf(strings.TrimSuffix(format, "\n"), v...)
}

func (l migrateLogger) Verbose() bool {
	return l.logger.GetLevel() <= zerolog.DebugLevel
}
