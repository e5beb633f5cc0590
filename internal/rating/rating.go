// Package rating computes Glicko-2 ratings from a tournament match log. The
// ratings are informational, pairings only ever use the standings.
package rating

import (
	"sort"

	"swiss/internal/swiss"

	glicko "github.com/zelenin/go-glicko2"
)

type Rating struct {
	PlayerID int64  `json:"id"`
	Name     string `json:"name"`

	// Glicko-2
	Rating     float64 `json:"rating"`
	Deviation  float64 `json:"deviation"`
	Volatility float64 `json:"volatility"`
}

type byRating []Rating

func (a byRating) Len() int {
	return len(a)
}

func (a byRating) Less(i, j int) bool {
	if a[i].Rating != a[j].Rating {
		return a[i].Rating > a[j].Rating
	}

	return a[i].PlayerID < a[j].PlayerID
}

func (a byRating) Swap(i, j int) {
	a[i], a[j] = a[j], a[i]
}

// Compute rates every player of the roster by running the whole match log as
// a single rating period, starting from the Glicko-2 defaults. Matches with
// players absent from the roster are ignored.
func Compute(players []swiss.Player, matches []swiss.MatchResult) []Rating {
	glickoPlayers := make(map[int64]*glicko.Player, len(players))
	period := glicko.NewRatingPeriod()
	for _, v := range players {
		p := glicko.NewPlayer(glicko.NewRating(
			glicko.RATING_BASE_R,
			glicko.RATING_BASE_RD,
			glicko.RATING_BASE_SIGMA,
		))
		glickoPlayers[v.ID] = p
		// Add players so Glicko-2 know to ensure inactive players decay.
		period.AddPlayer(p)
	}

	for _, match := range matches {
		entries := match.Entries()
		p1, ok1 := glickoPlayers[entries[0].PlayerID]
		p2, ok2 := glickoPlayers[entries[1].PlayerID]
		if !ok1 || !ok2 {
			continue
		}

		switch entries[0].Outcome {
		case swiss.OutcomeWin:
			period.AddMatch(p1, p2, glicko.MATCH_RESULT_WIN)
		case swiss.OutcomeDraw:
			period.AddMatch(p1, p2, glicko.MATCH_RESULT_DRAW)
		case swiss.OutcomeLoss:
			period.AddMatch(p1, p2, glicko.MATCH_RESULT_LOSS)
		}
	}

	period.Calculate()

	ret := make([]Rating, 0, len(players))
	for _, v := range players {
		r := glickoPlayers[v.ID].Rating()
		ret = append(ret, Rating{
			PlayerID:   v.ID,
			Name:       v.Name,
			Rating:     r.R(),
			Deviation:  r.Rd(),
			Volatility: r.Sigma(),
		})
	}

	sort.Sort(byRating(ret))

	return ret
}
