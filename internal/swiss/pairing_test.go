package swiss // nolint:testpackage

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPair(t *testing.T) {
	standings := []Standing{
		{PlayerID: 1, Name: "A", Wins: 2, Matches: 2},
		{PlayerID: 2, Name: "B", Wins: 2, Matches: 2},
		{PlayerID: 3, Name: "C", Wins: 1, Matches: 2},
		{PlayerID: 4, Name: "D", Wins: 0, Matches: 2},
	}

	actual, err := Pair(standings)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Pairing{
		{Player1: Player{ID: 1, Name: "A"}, Player2: Player{ID: 2, Name: "B"}},
		{Player1: Player{ID: 3, Name: "C"}, Player2: Player{ID: 4, Name: "D"}},
	}
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("pairings mismatch (-want +got):\n%s", diff)
	}
}

func TestPairCoversEveryPlayerOnce(t *testing.T) {
	players := roster("A", "B", "C", "D", "E", "F", "G", "H")
	standings := ComputeStandings(players, []MatchResult{
		Decisive{Winner: 8, Loser: 1},
		Draw{PlayerA: 3, PlayerB: 5},
		Decisive{Winner: 2, Loser: 6},
	})

	pairs, err := Pair(standings)
	if err != nil {
		t.Fatal(err)
	}
	if len(pairs) != len(players)/2 {
		t.Fatalf("expected %d pairs, got %d", len(players)/2, len(pairs))
	}

	seen := make(map[int64]int, len(players))
	for _, v := range pairs {
		seen[v.Player1.ID]++
		seen[v.Player2.ID]++
	}
	for _, v := range players {
		if seen[v.ID] != 1 {
			t.Errorf("player %d paired %d times", v.ID, seen[v.ID])
		}
	}
}

func TestPairErrors(t *testing.T) {
	type entry struct {
		name      string
		standings []Standing
		expected  error
	}

	cases := []entry{
		{"empty", nil, ErrNotFound},
		{"odd", ComputeStandings(roster("A", "B", "C"), nil), ErrInvalidInput},
		{"single", ComputeStandings(roster("A"), nil), ErrInvalidInput},
		{"duplicate", []Standing{{PlayerID: 1}, {PlayerID: 1}}, ErrInvalidInput},
	}

	for _, v := range cases {
		pairs, err := Pair(v.standings)
		if !errors.Is(err, v.expected) {
			t.Errorf("%s: expected %v, got %v", v.name, v.expected, err)
		}
		if pairs != nil {
			t.Errorf("%s: expected no pairings, got %v", v.name, pairs)
		}
	}
}
