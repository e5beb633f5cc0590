package back

import (
	"context"

	"swiss/internal/swiss"

	"github.com/jmoiron/sqlx"
	"gopkg.in/guregu/null.v4"
)

// standing is a row of the Standing view, the score is computed by the
// database.
type standing struct {
	PlayerID int64
	Name     string
	Wins     null.Float
	Matches  int
}

func (b *Back) Standings(ctx context.Context) ([]swiss.Standing, error) {
	var rows []standing
	if err := b.transaction(ctx, func(tx *sqlx.Tx) error {
		query, args, err := b.sql.Select(`"PlayerID"`, `"Name"`, `"Wins"`, `"Matches"`).
			From(`"Standing"`).
			// NULL sorts differently on sqlite and postgres.
			OrderBy(`COALESCE("Wins", 0) DESC`, `"PlayerID" ASC`).
			ToSql()
		if err != nil {
			return err
		}

		return tx.SelectContext(ctx, &rows, query, args...)
	}); err != nil {
		return nil, err
	}

	ret := make([]swiss.Standing, 0, len(rows))
	for _, v := range rows {
		ret = append(ret, swiss.Standing{
			PlayerID: v.PlayerID,
			Name:     v.Name,
			Wins:     v.Wins.ValueOrZero(),
			Matches:  v.Matches,
		})
	}

	return ret, nil
}
