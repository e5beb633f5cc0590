package swiss

import "context"

// Store is the storage session the tournament reads from and writes to. Every
// call is a single unit of work committed before returning.
type Store interface {
	// DeleteMatches removes every recorded match.
	DeleteMatches(ctx context.Context) error
	// DeletePlayers removes every player along with their match history.
	DeletePlayers(ctx context.Context) error
	CountPlayers(ctx context.Context) (int, error)
	// RegisterPlayer adds a player and assigns it a new unique ID.
	RegisterPlayer(ctx context.Context, name string) (Player, error)
	// Standings returns the standings of every registered player in ranking
	// order, see SortStandings.
	Standings(ctx context.Context) ([]Standing, error)
	// RecordMatch appends a result, referencing an unknown player is an
	// ErrNotFound.
	RecordMatch(ctx context.Context, result MatchResult) error
	Players(ctx context.Context) ([]Player, error)
	Matches(ctx context.Context) ([]MatchResult, error)
	Close() error
}
