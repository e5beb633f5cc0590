package report_test

import (
	"strings"
	"testing"

	"swiss/internal/rating"
	"swiss/internal/report"
	"swiss/internal/swiss"
)

func TestStandings(t *testing.T) {
	var sb strings.Builder
	err := report.Standings(&sb, []swiss.Standing{
		{PlayerID: 1, Name: "P1", Wins: 1, Matches: 1},
		{PlayerID: 3, Name: "P3", Wins: 0.5, Matches: 1},
		{PlayerID: 4, Name: "P4", Wins: 0.5, Matches: 1},
		{PlayerID: 2, Name: "P2", Wins: 0, Matches: 1},
	})
	if err != nil {
		t.Fatal(err)
	}

	expected := `| Rank | Player | Score | Matches |
|---:|---|---:|---:|
| 1 | P1 | 1.0 | 1 |
| 2 | P3 | 0.5 | 1 |
| 2 | P4 | 0.5 | 1 |
| 4 | P2 | 0.0 | 1 |
`
	if actual := sb.String(); actual != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, actual)
	}
}

func TestPairingsEscapesNames(t *testing.T) {
	var sb strings.Builder
	err := report.Pairings(&sb, []swiss.Pairing{{
		Player1: swiss.Player{ID: 1, Name: "a|b"},
		Player2: swiss.Player{ID: 2, Name: "<script>"},
	}})
	if err != nil {
		t.Fatal(err)
	}

	if actual := sb.String(); !strings.Contains(actual, `| 1 | a\|b | &lt;script&gt; |`) {
		t.Errorf("names not escaped:\n%s", actual)
	}
}

func TestRatings(t *testing.T) {
	var sb strings.Builder
	err := report.Ratings(&sb, []rating.Rating{{PlayerID: 1, Name: "Saria", Rating: 1662.31, Deviation: 290.3}})
	if err != nil {
		t.Fatal(err)
	}

	if actual := sb.String(); !strings.Contains(actual, "| Saria | 1662 | 290 |") {
		t.Errorf("unexpected output:\n%s", actual)
	}
}

func TestFormatScore(t *testing.T) {
	for in, expected := range map[float64]string{0: "0.0", 0.5: "0.5", 2: "2.0", 3.5: "3.5"} {
		if actual := report.FormatScore(in); actual != expected {
			t.Errorf("FormatScore(%v): expected %s got %s", in, expected, actual)
		}
	}
}
