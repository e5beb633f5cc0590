package back

import (
	"context"
	"fmt"
	"time"

	"swiss/internal/swiss"
	"swiss/internal/util"

	"github.com/jmoiron/sqlx"
)

// A match is stored as a Match row with one MatchEntry per participant, each
// entry holding the outcome from that participant's point of view.
type match struct {
	ID        util.UUIDAsBlob
	CreatedAt util.TimeAsTimestamp
}

type matchEntry struct {
	MatchID  util.UUIDAsBlob
	PlayerID int64
	Outcome  swiss.Outcome
}

func (b *Back) RecordMatch(ctx context.Context, result swiss.MatchResult) error {
	entries := result.Entries()
	m := match{
		ID:        util.NewUUIDAsBlob(),
		CreatedAt: util.NewTimeAsTimestamp(time.Now()),
	}

	if err := b.transaction(ctx, func(tx *sqlx.Tx) error {
		missing, err := b.getMissingPlayerID(ctx, tx, entries[0].PlayerID, entries[1].PlayerID)
		if err != nil {
			return err
		}
		if missing != 0 {
			return swiss.NotFound("player %d does not exist", missing)
		}

		if err := b.exec(tx, b.sql.Insert(`"Match"`).
			Columns(`"ID"`, `"CreatedAt"`).
			Values(m.ID, m.CreatedAt),
		); err != nil {
			return fmt.Errorf("unable to insert Match: %w", err)
		}

		insert := b.sql.Insert(`"MatchEntry"`).Columns(`"MatchID"`, `"PlayerID"`, `"Outcome"`)
		for _, v := range entries {
			insert = insert.Values(m.ID, v.PlayerID, v.Outcome)
		}
		if err := b.exec(tx, insert); err != nil {
			return fmt.Errorf("unable to insert MatchEntry: %w", err)
		}

		return nil
	}); err != nil {
		return err
	}

	b.logger.Debug().Str("match_id", m.ID.String()).Msg("inserted Match")

	return nil
}

// Matches returns the match log ordered by creation time.
func (b *Back) Matches(ctx context.Context) ([]swiss.MatchResult, error) {
	var entries []matchEntry
	if err := b.transaction(ctx, func(tx *sqlx.Tx) error {
		query, args, err := b.sql.Select(
			`"MatchEntry"."MatchID" AS "MatchID"`,
			`"MatchEntry"."PlayerID" AS "PlayerID"`,
			`"MatchEntry"."Outcome" AS "Outcome"`,
		).
			From(`"MatchEntry"`).
			Join(`"Match" ON "Match"."ID" = "MatchEntry"."MatchID"`).
			OrderBy(
				`"Match"."CreatedAt" ASC`,
				`"Match"."ID" ASC`,
				`"MatchEntry"."Outcome" DESC`,
				`"MatchEntry"."PlayerID" ASC`,
			).
			ToSql()
		if err != nil {
			return err
		}

		return tx.SelectContext(ctx, &entries, query, args...)
	}); err != nil {
		return nil, err
	}

	if len(entries)%2 != 0 {
		return nil, fmt.Errorf("corrupted match log: %d entries", len(entries))
	}

	ret := make([]swiss.MatchResult, 0, len(entries)/2)
	for i := 0; i < len(entries); i += 2 {
		first, second := entries[i], entries[i+1]
		if first.MatchID != second.MatchID {
			return nil, fmt.Errorf("corrupted match log: match %s has a single entry", first.MatchID)
		}

		result, err := swiss.ResultFromEntries(
			swiss.Entry{PlayerID: first.PlayerID, Outcome: first.Outcome},
			swiss.Entry{PlayerID: second.PlayerID, Outcome: second.Outcome},
		)
		if err != nil {
			return nil, fmt.Errorf("match %s: %w", first.MatchID, err)
		}

		ret = append(ret, result)
	}

	return ret, nil
}
