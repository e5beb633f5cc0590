package swiss

// A Pairing is a match to be played in the next round.
type Pairing struct {
	Player1 Player `json:"player1"`
	Player2 Player `json:"player2"`
}

// Pair generates the next round pairings from standings sorted in ranking
// order: first plays second, third plays fourth, and so on. This only
// approximates pairing players with equal records, rematches are not avoided.
//
// There is no bye policy, an odd number of players is an ErrInvalidInput.
func Pair(standings []Standing) ([]Pairing, error) {
	if len(standings) == 0 {
		return nil, NotFound("no players to pair")
	}
	if len(standings)%2 != 0 {
		return nil, InvalidInput("cannot pair an odd number of players (%d)", len(standings))
	}

	seen := make(map[int64]struct{}, len(standings))
	for _, v := range standings {
		if _, ok := seen[v.PlayerID]; ok {
			return nil, InvalidInput("player %d appears twice in standings", v.PlayerID)
		}
		seen[v.PlayerID] = struct{}{}
	}

	pairs := make([]Pairing, 0, len(standings)/2)
	for i := 0; i < len(standings); i += 2 {
		pairs = append(pairs, Pairing{
			Player1: Player{ID: standings[i].PlayerID, Name: standings[i].Name},
			Player2: Player{ID: standings[i+1].PlayerID, Name: standings[i+1].Name},
		})
	}

	return pairs, nil
}
