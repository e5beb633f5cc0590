package rating_test

import (
	"testing"

	"swiss/internal/rating"
	"swiss/internal/swiss"

	glicko "github.com/zelenin/go-glicko2"
)

func players(names ...string) []swiss.Player {
	ret := make([]swiss.Player, len(names))
	for k, v := range names {
		ret[k] = swiss.Player{ID: int64(k + 1), Name: v}
	}

	return ret
}

func TestComputeNoMatches(t *testing.T) {
	ratings := rating.Compute(players("Saria", "Darunia"), nil)
	if len(ratings) != 2 {
		t.Fatalf("expected 2 ratings, got %d", len(ratings))
	}

	for k, v := range ratings {
		if v.Rating != glicko.RATING_BASE_R {
			t.Errorf("expected base rating, got %v", v.Rating)
		}
		if v.PlayerID != int64(k+1) {
			t.Errorf("expected ties ordered by ID, got %d at #%d", v.PlayerID, k+1)
		}
	}
}

func TestComputeDecisive(t *testing.T) {
	ratings := rating.Compute(players("Saria", "Darunia", "Ruto"), []swiss.MatchResult{
		swiss.Decisive{Winner: 2, Loser: 1},
		swiss.Decisive{Winner: 42, Loser: 3},
	})

	if ratings[0].PlayerID != 2 {
		t.Fatalf("expected the winner first, got %+v", ratings)
	}

	byID := make(map[int64]rating.Rating, len(ratings))
	for _, v := range ratings {
		byID[v.PlayerID] = v
	}

	if byID[2].Rating <= glicko.RATING_BASE_R {
		t.Errorf("expected the winner to gain rating, got %v", byID[2].Rating)
	}
	if byID[1].Rating >= glicko.RATING_BASE_R {
		t.Errorf("expected the loser to lose rating, got %v", byID[1].Rating)
	}
	if byID[3].Rating != glicko.RATING_BASE_R {
		t.Errorf("expected a match against an unknown player to be ignored, got %v", byID[3].Rating)
	}
}

func TestComputeDraw(t *testing.T) {
	ratings := rating.Compute(players("Zelda", "Impa"), []swiss.MatchResult{
		swiss.Draw{PlayerA: 1, PlayerB: 2},
	})

	if ratings[0].Rating != ratings[1].Rating {
		t.Errorf("expected equal ratings after a draw between equals, got %v and %v", ratings[0].Rating, ratings[1].Rating)
	}
}
