package swiss_test

import (
	"context"
	"errors"
	"testing"

	"swiss/internal/memory"
	"swiss/internal/swiss"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

func newTestTournament(t *testing.T) *swiss.Tournament {
	t.Helper()

	tournament := swiss.New(memory.New(), zerolog.Nop())
	t.Cleanup(func() {
		if err := tournament.Close(); err != nil {
			t.Error(err)
		}
	})

	return tournament
}

func register(t *testing.T, tournament *swiss.Tournament, names ...string) []swiss.Player {
	t.Helper()

	ret := make([]swiss.Player, 0, len(names))
	for _, v := range names {
		player, err := tournament.RegisterPlayer(context.Background(), v)
		if err != nil {
			t.Fatal(err)
		}
		ret = append(ret, player)
	}

	return ret
}

func TestEndToEnd(t *testing.T) {
	ctx := context.Background()
	tournament := newTestTournament(t)
	p := register(t, tournament, "P1", "P2", "P3", "P4")

	if err := tournament.ReportMatch(ctx, swiss.Decisive{Winner: p[0].ID, Loser: p[1].ID}); err != nil {
		t.Fatal(err)
	}
	if err := tournament.ReportMatch(ctx, swiss.Draw{PlayerA: p[2].ID, PlayerB: p[3].ID}); err != nil {
		t.Fatal(err)
	}

	standings, err := tournament.Standings(ctx)
	if err != nil {
		t.Fatal(err)
	}
	expected := []swiss.Standing{
		{PlayerID: p[0].ID, Name: "P1", Wins: 1, Matches: 1},
		{PlayerID: p[2].ID, Name: "P3", Wins: 0.5, Matches: 1},
		{PlayerID: p[3].ID, Name: "P4", Wins: 0.5, Matches: 1},
		{PlayerID: p[1].ID, Name: "P2", Wins: 0, Matches: 1},
	}
	if diff := cmp.Diff(expected, standings); diff != "" {
		t.Errorf("standings mismatch (-want +got):\n%s", diff)
	}

	pairs, err := tournament.SwissPairings(ctx)
	if err != nil {
		t.Fatal(err)
	}
	expectedPairs := [][2]int64{{p[0].ID, p[2].ID}, {p[3].ID, p[1].ID}}
	if len(pairs) != len(expectedPairs) {
		t.Fatalf("expected %d pairs got %d", len(expectedPairs), len(pairs))
	}
	for k, v := range pairs {
		if actual := [2]int64{v.Player1.ID, v.Player2.ID}; actual != expectedPairs[k] {
			t.Errorf("pair #%d: expected %v got %v", k, expectedPairs[k], actual)
		}
	}
}

func TestDeleteMatchesResetsStandings(t *testing.T) {
	ctx := context.Background()
	tournament := newTestTournament(t)
	p := register(t, tournament, "Saria", "Darunia")

	for i := 0; i < 3; i++ {
		if err := tournament.ReportMatch(ctx, swiss.Decisive{Winner: p[1].ID, Loser: p[0].ID}); err != nil {
			t.Fatal(err)
		}
	}

	if err := tournament.DeleteMatches(ctx); err != nil {
		t.Fatal(err)
	}

	standings, err := tournament.Standings(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(standings) != 2 {
		t.Fatalf("expected 2 standings got %d", len(standings))
	}
	for _, v := range standings {
		if v.Wins != 0 || v.Matches != 0 {
			t.Errorf("expected a blank record, got %+v", v)
		}
	}
}

func TestDeletePlayers(t *testing.T) {
	ctx := context.Background()
	tournament := newTestTournament(t)
	p := register(t, tournament, "Zelda", "Impa")
	if err := tournament.ReportMatch(ctx, swiss.Draw{PlayerA: p[0].ID, PlayerB: p[1].ID}); err != nil {
		t.Fatal(err)
	}

	if err := tournament.DeletePlayers(ctx); err != nil {
		t.Fatal(err)
	}

	count, err := tournament.CountPlayers(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("expected no players, got %d", count)
	}

	matches, err := tournament.Matches(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 0 {
		t.Errorf("expected no matches, got %d", len(matches))
	}

	if _, err := tournament.SwissPairings(ctx); !errors.Is(err, swiss.ErrNotFound) {
		t.Errorf("expected ErrNotFound when pairing nobody, got %v", err)
	}
}

func TestRegisterPlayer(t *testing.T) {
	ctx := context.Background()
	tournament := newTestTournament(t)

	player, err := tournament.RegisterPlayer(ctx, "  Chandra Nalaar ")
	if err != nil {
		t.Fatal(err)
	}
	if player.Name != "Chandra Nalaar" {
		t.Errorf("expected a trimmed name, got %q", player.Name)
	}

	again, err := tournament.RegisterPlayer(ctx, "Chandra Nalaar")
	if err != nil {
		t.Fatal(err)
	}
	if again.ID == player.ID {
		t.Error("expected a new unique ID for a duplicate name")
	}

	if _, err := tournament.RegisterPlayer(ctx, "   "); !errors.Is(err, swiss.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}

	count, err := tournament.CountPlayers(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("expected 2 players, got %d", count)
	}
}

func TestReportMatchErrors(t *testing.T) {
	ctx := context.Background()
	tournament := newTestTournament(t)
	p := register(t, tournament, "Rauru", "Nabooru")

	type entry struct {
		name     string
		result   swiss.MatchResult
		expected error
	}

	cases := []entry{
		{"nil", nil, swiss.ErrInvalidInput},
		{"self", swiss.Decisive{Winner: p[0].ID, Loser: p[0].ID}, swiss.ErrInvalidInput},
		{"zero id", swiss.Draw{PlayerA: 0, PlayerB: p[1].ID}, swiss.ErrInvalidInput},
		{"unknown winner", swiss.Decisive{Winner: 1000, Loser: p[1].ID}, swiss.ErrNotFound},
		{"unknown drawer", swiss.Draw{PlayerA: p[0].ID, PlayerB: 1000}, swiss.ErrNotFound},
	}

	for _, v := range cases {
		if err := tournament.ReportMatch(ctx, v.result); !errors.Is(err, v.expected) {
			t.Errorf("%s: expected %v, got %v", v.name, v.expected, err)
		}
	}

	matches, err := tournament.Matches(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 0 {
		t.Errorf("expected failed reports to record nothing, got %d matches", len(matches))
	}
}

func TestSwissPairingsOddCount(t *testing.T) {
	tournament := newTestTournament(t)
	register(t, tournament, "A", "B", "C")

	if _, err := tournament.SwissPairings(context.Background()); !errors.Is(err, swiss.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
