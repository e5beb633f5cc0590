package swiss

import "sort"

// A Standing is a player's aggregated record. Wins is a score where a win
// counts 1, a draw 0.5 and a loss 0.
type Standing struct {
	PlayerID int64   `json:"id"`
	Name     string  `json:"name"`
	Wins     float64 `json:"wins"`
	Matches  int     `json:"matches"`
}

// byStanding orders by descending score, ties are broken by ascending player
// ID so the order never depends on storage.
type byStanding []Standing

func (a byStanding) Len() int {
	return len(a)
}

func (a byStanding) Less(i, j int) bool {
	if a[i].Wins != a[j].Wins {
		return a[i].Wins > a[j].Wins
	}

	return a[i].PlayerID < a[j].PlayerID
}

func (a byStanding) Swap(i, j int) {
	a[i], a[j] = a[j], a[i]
}

// SortStandings sorts standings in ranking order, first place first.
func SortStandings(standings []Standing) {
	sort.Stable(byStanding(standings))
}

// ComputeStandings derives the ranked standings of every player in the roster
// from the match log. Players that have not played yet are included with a
// zero record. Results involving unknown players are ignored.
func ComputeStandings(players []Player, matches []MatchResult) []Standing {
	ret := make([]Standing, len(players))
	index := make(map[int64]*Standing, len(players))
	for k := range players {
		ret[k] = Standing{
			PlayerID: players[k].ID,
			Name:     players[k].Name,
		}
		index[players[k].ID] = &ret[k]
	}

	for _, match := range matches {
		entries := match.Entries()
		a, b := index[entries[0].PlayerID], index[entries[1].PlayerID]
		if a == nil || b == nil {
			continue
		}

		a.Matches++
		a.Wins += entries[0].Outcome.Points()
		b.Matches++
		b.Wins += entries[1].Outcome.Points()
	}

	SortStandings(ret)

	return ret
}
