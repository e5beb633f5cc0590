package swiss

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Tournament runs a single Swiss-system tournament on top of a Store.
type Tournament struct {
	store  Store
	logger zerolog.Logger
}

func New(store Store, logger zerolog.Logger) *Tournament {
	return &Tournament{
		store:  store,
		logger: logger.With().Str("component", "tournament").Logger(),
	}
}

func (t *Tournament) DeleteMatches(ctx context.Context) error {
	if err := t.store.DeleteMatches(ctx); err != nil {
		return fmt.Errorf("unable to delete matches: %w", err)
	}
	t.logger.Info().Msg("deleted all matches")

	return nil
}

func (t *Tournament) DeletePlayers(ctx context.Context) error {
	if err := t.store.DeletePlayers(ctx); err != nil {
		return fmt.Errorf("unable to delete players: %w", err)
	}
	t.logger.Info().Msg("deleted all players")

	return nil
}

func (t *Tournament) CountPlayers(ctx context.Context) (int, error) {
	count, err := t.store.CountPlayers(ctx)
	if err != nil {
		return 0, fmt.Errorf("unable to count players: %w", err)
	}

	return count, nil
}

// RegisterPlayer adds a new player to the tournament, the name is trimmed and
// need not be unique.
func (t *Tournament) RegisterPlayer(ctx context.Context, name string) (Player, error) {
	name, err := NormalizePlayerName(name)
	if err != nil {
		return Player{}, err
	}

	player, err := t.store.RegisterPlayer(ctx, name)
	if err != nil {
		return Player{}, fmt.Errorf("unable to register player: %w", err)
	}
	t.logger.Info().Int64("player_id", player.ID).Str("name", player.Name).Msg("registered player")

	return player, nil
}

// ReportMatch records the outcome of a single match between two players.
func (t *Tournament) ReportMatch(ctx context.Context, result MatchResult) error {
	if err := ValidateResult(result); err != nil {
		return err
	}

	if err := t.store.RecordMatch(ctx, result); err != nil {
		return fmt.Errorf("unable to record match: %w", err)
	}

	entries := result.Entries()
	t.logger.Info().
		Int64("player_a", entries[0].PlayerID).
		Stringer("outcome_a", entries[0].Outcome).
		Int64("player_b", entries[1].PlayerID).
		Stringer("outcome_b", entries[1].Outcome).
		Msg("recorded match")

	return nil
}

// Standings returns every player's record, first place first.
func (t *Tournament) Standings(ctx context.Context) ([]Standing, error) {
	standings, err := t.store.Standings(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch standings: %w", err)
	}

	return standings, nil
}

// SwissPairings returns the pairings for the next round, each player is paired
// with the player adjacent to them in the standings.
func (t *Tournament) SwissPairings(ctx context.Context) ([]Pairing, error) {
	standings, err := t.Standings(ctx)
	if err != nil {
		return nil, err
	}

	pairs, err := Pair(standings)
	if err != nil {
		return nil, err
	}
	t.logger.Debug().Int("pairs", len(pairs)).Msg("generated pairings")

	return pairs, nil
}

func (t *Tournament) Players(ctx context.Context) ([]Player, error) {
	players, err := t.store.Players(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch players: %w", err)
	}

	return players, nil
}

// Matches returns the full match log, oldest first.
func (t *Tournament) Matches(ctx context.Context) ([]MatchResult, error) {
	matches, err := t.store.Matches(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch matches: %w", err)
	}

	return matches, nil
}

func (t *Tournament) Close() error {
	return t.store.Close()
}
