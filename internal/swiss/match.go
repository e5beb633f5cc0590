package swiss

import "fmt"

// Outcome is the result of a match from the point of view of one of its
// participants.
type Outcome int

const ( // this is stored in DB, don't change values
	OutcomeLoss Outcome = -1
	OutcomeDraw Outcome = 0
	OutcomeWin  Outcome = 1
)

// Points returns the score awarded for the outcome.
func (o Outcome) Points() float64 {
	switch o {
	case OutcomeWin:
		return 1
	case OutcomeDraw:
		return 0.5
	default:
		return 0
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeDraw:
		return "draw"
	case OutcomeLoss:
		return "loss"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// A MatchResult is the outcome of a single match between two players, it is
// either a Decisive or a Draw.
type MatchResult interface {
	// Entries returns both participants along with their own outcome.
	Entries() [2]Entry

	matchResult()
}

// An Entry is one participant's side of a match.
type Entry struct {
	PlayerID int64
	Outcome  Outcome
}

// Decisive is a match that one player won and the other lost.
type Decisive struct {
	Winner int64 `json:"winner"`
	Loser  int64 `json:"loser"`
}

func (Decisive) matchResult() {}

func (m Decisive) Entries() [2]Entry {
	return [2]Entry{
		{PlayerID: m.Winner, Outcome: OutcomeWin},
		{PlayerID: m.Loser, Outcome: OutcomeLoss},
	}
}

// Draw is a match where both players share the point.
type Draw struct {
	PlayerA int64 `json:"player_a"`
	PlayerB int64 `json:"player_b"`
}

func (Draw) matchResult() {}

func (m Draw) Entries() [2]Entry {
	return [2]Entry{
		{PlayerID: m.PlayerA, Outcome: OutcomeDraw},
		{PlayerID: m.PlayerB, Outcome: OutcomeDraw},
	}
}

// ResultFromEntries rebuilds a MatchResult from its two stored entries.
func ResultFromEntries(a, b Entry) (MatchResult, error) {
	switch {
	case a.Outcome == OutcomeDraw && b.Outcome == OutcomeDraw:
		return Draw{PlayerA: a.PlayerID, PlayerB: b.PlayerID}, nil
	case a.Outcome == OutcomeWin && b.Outcome == OutcomeLoss:
		return Decisive{Winner: a.PlayerID, Loser: b.PlayerID}, nil
	case a.Outcome == OutcomeLoss && b.Outcome == OutcomeWin:
		return Decisive{Winner: b.PlayerID, Loser: a.PlayerID}, nil
	default:
		return nil, InvalidInput("inconsistent match entries %s/%s", a.Outcome, b.Outcome)
	}
}

// ValidateResult ensures a result references two distinct, well-formed ids.
func ValidateResult(m MatchResult) error {
	if m == nil {
		return InvalidInput("missing match result")
	}

	entries := m.Entries()
	for _, v := range entries {
		if v.PlayerID <= 0 {
			return InvalidInput("invalid player id %d", v.PlayerID)
		}
	}

	if entries[0].PlayerID == entries[1].PlayerID {
		return InvalidInput("player %d cannot play against themselves", entries[0].PlayerID)
	}

	return nil
}
