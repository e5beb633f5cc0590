// Package report renders tournament state as Markdown.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"swiss/internal/rating"
	"swiss/internal/swiss"
)

// Standings writes a Markdown table of the standings, ranks are shared by
// players with the same score.
func Standings(w io.Writer, standings []swiss.Standing) error {
	var sb strings.Builder
	sb.WriteString("| Rank | Player | Score | Matches |\n")
	sb.WriteString("|---:|---|---:|---:|\n")

	rank := 0
	for k, v := range standings {
		if k == 0 || v.Wins != standings[k-1].Wins {
			rank = k + 1
		}

		fmt.Fprintf(&sb, "| %d | %s | %s | %d |\n", rank, escape(v.Name), FormatScore(v.Wins), v.Matches)
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

// Pairings writes a Markdown table of the next round pairings.
func Pairings(w io.Writer, pairings []swiss.Pairing) error {
	var sb strings.Builder
	sb.WriteString("| Table | Player 1 | Player 2 |\n")
	sb.WriteString("|---:|---|---|\n")

	for k, v := range pairings {
		fmt.Fprintf(&sb, "| %d | %s | %s |\n", k+1, escape(v.Player1.Name), escape(v.Player2.Name))
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

func Ratings(w io.Writer, ratings []rating.Rating) error {
	var sb strings.Builder
	sb.WriteString("| Player | Rating | Deviation |\n")
	sb.WriteString("|---|---:|---:|\n")

	for _, v := range ratings {
		fmt.Fprintf(&sb, "| %s | %.0f | %.0f |\n", escape(v.Name), v.Rating, v.Deviation)
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

// FormatScore prints a score with a single decimal, eg. 1.5 or 2.0.
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	"|", `\|`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"<", "&lt;",
	">", "&gt;",
	"\n", " ",
)

// escape makes a player name inert inside a Markdown table cell.
func escape(str string) string {
	return escaper.Replace(str)
}
