// Package back is the SQL implementation of swiss.Store.
package back

import (
	"context"
	"fmt"

	"swiss/internal/swiss"
	"swiss/internal/util"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"           // postgres driver
	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
	"github.com/rs/zerolog"
)

type Back struct {
	db     *sqlx.DB
	sql    squirrel.StatementBuilderType
	logger zerolog.Logger
}

// New connects to the database, sqlDriver is either "sqlite3" or "postgres".
// The schema is expected to be migrated already, see Migrate.
func New(sqlDriver string, sqlDSN string, logger zerolog.Logger) (*Back, error) {
	// Why even bother converting names? A single greppable string across all
	// your source code is better than any odd conversion scheme you could ever
	// come up with.
	// HACK: This is global but putting this in init() makes test ugly.
	// As only the Back relies on the DB, this seems like an okay-ish place.
	sqlx.NameMapper = func(v string) string { return v }

	db, err := sqlx.Connect(sqlDriver, sqlDSN)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", swiss.ErrStorageUnavailable, err)
	}

	if sqlDriver == "sqlite3" {
		// Avoid SQLITE_BUSY on concurrent writers, sqlite serializes anyway.
		db.SetMaxOpenConns(1)
	}

	logger = logger.With().Str("component", "back").Str("driver", sqlDriver).Logger()
	logger.Debug().Msg("connected to database")

	return &Back{
		db:     db,
		sql:    squirrel.StatementBuilder.PlaceholderFormat(placeholderFormat(sqlDriver)),
		logger: logger,
	}, nil
}

// placeholderFormat returns the bind variables style expected by sqlDriver.
func placeholderFormat(sqlDriver string) squirrel.PlaceholderFormat {
	if sqlx.BindType(sqlDriver) == sqlx.DOLLAR {
		return squirrel.Dollar
	}

	return squirrel.Question
}

func (b *Back) Close() error {
	return b.db.Close()
}

func (b *Back) transaction(ctx context.Context, cb util.TransactionCallback) error {
	return util.Transaction(ctx, b.db, swiss.ErrStorageUnavailable, cb)
}

func (b *Back) DeleteMatches(ctx context.Context) error {
	return b.transaction(ctx, b.deleteMatches)
}

func (b *Back) DeletePlayers(ctx context.Context) error {
	return b.transaction(ctx, func(tx *sqlx.Tx) error {
		if err := b.deleteMatches(tx); err != nil {
			return err
		}

		return b.exec(tx, b.sql.Delete(`"Player"`))
	})
}

func (b *Back) deleteMatches(tx *sqlx.Tx) error {
	if err := b.exec(tx, b.sql.Delete(`"MatchEntry"`)); err != nil {
		return err
	}

	return b.exec(tx, b.sql.Delete(`"Match"`))
}

func (b *Back) exec(tx *sqlx.Tx, builder squirrel.Sqlizer) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = tx.Exec(query, args...)

	return err
}
