package web

import (
	"encoding/json"
	"net/http"

	"swiss/internal/rating"
	"swiss/internal/swiss"
	"swiss/internal/util"
)

func (s *Server) getPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := s.tournament.Players(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.response(w, http.StatusOK, players)
}

func (s *Server) countPlayers(w http.ResponseWriter, r *http.Request) {
	count, err := s.tournament.CountPlayers(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.response(w, http.StatusOK, struct {
		Count int `json:"count"`
	}{count})
}

func (s *Server) postPlayer(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.error(w, r, util.ErrPublic("malformed JSON body"), http.StatusBadRequest)
		return
	}

	player, err := s.tournament.RegisterPlayer(r.Context(), payload.Name)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.response(w, http.StatusCreated, player)
}

// matchRequest is either {"winner": 1, "loser": 2} or
// {"draw": true, "players": [1, 2]}.
type matchRequest struct {
	Winner  int64   `json:"winner"`
	Loser   int64   `json:"loser"`
	Draw    bool    `json:"draw"`
	Players []int64 `json:"players"`
}

func (m matchRequest) result() (swiss.MatchResult, error) {
	decisive := m.Winner != 0 || m.Loser != 0
	if (m.Draw && decisive) || (!m.Draw && len(m.Players) > 0) {
		return nil, swiss.InvalidInput("a match is either winner/loser or draw/players")
	}

	if !m.Draw {
		return swiss.Decisive{Winner: m.Winner, Loser: m.Loser}, nil
	}

	if len(m.Players) != 2 {
		return nil, swiss.InvalidInput("a draw needs exactly two players")
	}

	return swiss.Draw{PlayerA: m.Players[0], PlayerB: m.Players[1]}, nil
}

func (s *Server) postMatch(w http.ResponseWriter, r *http.Request) {
	var payload matchRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.error(w, r, util.ErrPublic("malformed JSON body"), http.StatusBadRequest)
		return
	}

	result, err := payload.result()
	if err != nil {
		s.fail(w, r, err)
		return
	}

	if err := s.tournament.ReportMatch(r.Context(), result); err != nil {
		s.fail(w, r, err)
		return
	}

	s.response(w, http.StatusCreated, result)
}

func (s *Server) deleteMatches(w http.ResponseWriter, r *http.Request) {
	if err := s.tournament.DeleteMatches(r.Context()); err != nil {
		s.fail(w, r, err)
		return
	}

	noContent(w, r)
}

func (s *Server) deletePlayers(w http.ResponseWriter, r *http.Request) {
	if err := s.tournament.DeletePlayers(r.Context()); err != nil {
		s.fail(w, r, err)
		return
	}

	noContent(w, r)
}

func (s *Server) getStandings(w http.ResponseWriter, r *http.Request) {
	standings, err := s.tournament.Standings(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.response(w, http.StatusOK, standings)
}

func (s *Server) getPairings(w http.ResponseWriter, r *http.Request) {
	pairings, err := s.tournament.SwissPairings(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.response(w, http.StatusOK, pairings)
}

func (s *Server) getRatings(w http.ResponseWriter, r *http.Request) {
	ratings, err := s.ratings(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.response(w, http.StatusOK, ratings)
}

func (s *Server) ratings(r *http.Request) ([]rating.Rating, error) {
	players, err := s.tournament.Players(r.Context())
	if err != nil {
		return nil, err
	}

	matches, err := s.tournament.Matches(r.Context())
	if err != nil {
		return nil, err
	}

	return rating.Compute(players, matches), nil
}
