package back

import (
	"context"
	"time"

	"swiss/internal/swiss"
	"swiss/internal/util"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type player struct {
	ID        int64
	CreatedAt util.TimeAsTimestamp
	Name      string
}

func (p player) toSwiss() swiss.Player {
	return swiss.Player{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt.Time(),
	}
}

func (b *Back) RegisterPlayer(ctx context.Context, name string) (swiss.Player, error) {
	p := player{
		CreatedAt: util.NewTimeAsTimestamp(time.Now()),
		Name:      name,
	}

	if err := b.transaction(ctx, func(tx *sqlx.Tx) error {
		query, args, err := b.sql.Insert(`"Player"`).
			Columns(`"CreatedAt"`, `"Name"`).
			Values(p.CreatedAt, p.Name).
			Suffix(`RETURNING "ID"`).
			ToSql()
		if err != nil {
			return err
		}

		return tx.QueryRowxContext(ctx, query, args...).Scan(&p.ID)
	}); err != nil {
		return swiss.Player{}, err
	}

	b.logger.Debug().Int64("player_id", p.ID).Msg("inserted Player")

	return p.toSwiss(), nil
}

func (b *Back) CountPlayers(ctx context.Context) (count int, _ error) {
	if err := b.transaction(ctx, func(tx *sqlx.Tx) error {
		query, args, err := b.sql.Select("COUNT(*)").From(`"Player"`).ToSql()
		if err != nil {
			return err
		}

		return tx.GetContext(ctx, &count, query, args...)
	}); err != nil {
		return 0, err
	}

	return count, nil
}

func (b *Back) Players(ctx context.Context) ([]swiss.Player, error) {
	var players []player
	if err := b.transaction(ctx, func(tx *sqlx.Tx) error {
		query, args, err := b.sql.Select(`"ID"`, `"CreatedAt"`, `"Name"`).
			From(`"Player"`).
			OrderBy(`"ID" ASC`).
			ToSql()
		if err != nil {
			return err
		}

		return tx.SelectContext(ctx, &players, query, args...)
	}); err != nil {
		return nil, err
	}

	ret := make([]swiss.Player, 0, len(players))
	for _, v := range players {
		ret = append(ret, v.toSwiss())
	}

	return ret, nil
}

// getMissingPlayerID returns the first of ids that is not a registered
// player, or 0 if they all exist.
func (b *Back) getMissingPlayerID(ctx context.Context, tx *sqlx.Tx, ids ...int64) (int64, error) {
	query, args, err := b.sql.Select(`"ID"`).
		From(`"Player"`).
		Where(squirrel.Eq{`"ID"`: ids}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var found []int64
	if err := tx.SelectContext(ctx, &found, query, args...); err != nil {
		return 0, err
	}

	exists := make(map[int64]struct{}, len(found))
	for _, v := range found {
		exists[v] = struct{}{}
	}

	for _, v := range ids {
		if _, ok := exists[v]; !ok {
			return v, nil
		}
	}

	return 0, nil
}
