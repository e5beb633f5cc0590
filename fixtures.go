package main

import (
	"context"

	"swiss/internal/config"
	"swiss/internal/swiss"

	"github.com/rs/zerolog"
)

// loadFixtures registers eight players and plays a first round so standings
// and pairings have something to show.
func loadFixtures(ctx context.Context, conf *config.Config, log zerolog.Logger, _ []string) error {
	names := []string{
		"Twilight Sparkle", "Fluttershy", "Applejack", "Pinkie Pie",
		"Rarity", "Rainbow Dash", "Princess Celestia", "Princess Luna",
	}

	return withTournament(conf, log, func(t *swiss.Tournament) error {
		players := make([]swiss.Player, 0, len(names))
		for _, v := range names {
			player, err := t.RegisterPlayer(ctx, v)
			if err != nil {
				return err
			}
			players = append(players, player)
		}

		results := []swiss.MatchResult{
			swiss.Decisive{Winner: players[0].ID, Loser: players[1].ID},
			swiss.Decisive{Winner: players[3].ID, Loser: players[2].ID},
			swiss.Draw{PlayerA: players[4].ID, PlayerB: players[5].ID},
			swiss.Decisive{Winner: players[6].ID, Loser: players[7].ID},
		}
		for _, v := range results {
			if err := t.ReportMatch(ctx, v); err != nil {
				return err
			}
		}

		return nil
	})
}
