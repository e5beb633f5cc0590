// Package memory provides a swiss.Store kept in process memory. Nothing
// survives a restart.
package memory

import (
	"context"
	"sync"
	"time"

	"swiss/internal/swiss"
)

type Store struct {
	mu      sync.Mutex
	lastID  int64
	players []swiss.Player
	matches []swiss.MatchResult
}

func New() *Store {
	return &Store{}
}

func (s *Store) DeleteMatches(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.matches = nil

	return nil
}

func (s *Store) DeletePlayers(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.players = nil
	s.matches = nil

	return nil
}

func (s *Store) CountPlayers(context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.players), nil
}

// RegisterPlayer assigns IDs from a counter that is never reset, like a SQL
// sequence would.
func (s *Store) RegisterPlayer(_ context.Context, name string) (swiss.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	player := swiss.Player{
		ID:        s.lastID,
		Name:      name,
		CreatedAt: time.Now().Truncate(time.Second),
	}
	s.players = append(s.players, player)

	return player, nil
}

func (s *Store) Standings(context.Context) ([]swiss.Standing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return swiss.ComputeStandings(s.players, s.matches), nil
}

func (s *Store) RecordMatch(_ context.Context, result swiss.MatchResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range result.Entries() {
		if !s.hasPlayer(v.PlayerID) {
			return swiss.NotFound("player %d does not exist", v.PlayerID)
		}
	}

	s.matches = append(s.matches, result)

	return nil
}

func (s *Store) hasPlayer(id int64) bool {
	for k := range s.players {
		if s.players[k].ID == id {
			return true
		}
	}

	return false
}

func (s *Store) Players(context.Context) ([]swiss.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ret := make([]swiss.Player, len(s.players))
	copy(ret, s.players)

	return ret, nil
}

func (s *Store) Matches(context.Context) ([]swiss.MatchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ret := make([]swiss.MatchResult, len(s.matches))
	copy(ret, s.matches)

	return ret, nil
}

func (s *Store) Close() error {
	return nil
}
