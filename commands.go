package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"swiss/internal/config"
	"swiss/internal/rating"
	"swiss/internal/report"
	"swiss/internal/swiss"
	"swiss/internal/util"
	"swiss/internal/web"

	"github.com/rs/zerolog"
)

func configInit(_ context.Context, conf *config.Config, log zerolog.Logger, _ []string) error {
	if len(conf.WebToken) < 32 {
		key := make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return err
		}
		conf.WebToken = hex.EncodeToString(key)
	}

	path, err := conf.Write()
	if err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	log.Info().Str("path", path).Msg("configuration written")

	return nil
}

func register(ctx context.Context, conf *config.Config, log zerolog.Logger, args []string) error {
	if len(args) != 1 {
		return util.ErrPublic("usage: register NAME")
	}

	return withTournament(conf, log, func(t *swiss.Tournament) error {
		player, err := t.RegisterPlayer(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "%d\n", player.ID)

		return nil
	})
}

func count(ctx context.Context, conf *config.Config, log zerolog.Logger, _ []string) error {
	return withTournament(conf, log, func(t *swiss.Tournament) error {
		n, err := t.CountPlayers(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "%d\n", n)

		return nil
	})
}

func parsePlayerIDs(usage string, args []string) (int64, int64, error) {
	if len(args) != 2 {
		return 0, 0, util.ErrPublic("usage: " + usage)
	}

	var ids [2]int64
	for k, v := range args {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, 0, swiss.InvalidInput("invalid player ID %q", v)
		}
		ids[k] = id
	}

	return ids[0], ids[1], nil
}

func reportMatch(ctx context.Context, conf *config.Config, log zerolog.Logger, args []string) error {
	winner, loser, err := parsePlayerIDs("report WINNER LOSER", args)
	if err != nil {
		return err
	}

	return withTournament(conf, log, func(t *swiss.Tournament) error {
		return t.ReportMatch(ctx, swiss.Decisive{Winner: winner, Loser: loser})
	})
}

func reportDraw(ctx context.Context, conf *config.Config, log zerolog.Logger, args []string) error {
	a, b, err := parsePlayerIDs("draw A B", args)
	if err != nil {
		return err
	}

	return withTournament(conf, log, func(t *swiss.Tournament) error {
		return t.ReportMatch(ctx, swiss.Draw{PlayerA: a, PlayerB: b})
	})
}

// parseMarkdownFlag parses the -md flag shared by the listing commands.
func parseMarkdownFlag(name string, args []string) (bool, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	md := fs.Bool("md", false, "output a Markdown table")
	if err := fs.Parse(args); err != nil {
		return false, err
	}

	return *md, nil
}

func standings(ctx context.Context, conf *config.Config, log zerolog.Logger, args []string) error {
	md, err := parseMarkdownFlag("standings", args)
	if err != nil {
		return err
	}

	return withTournament(conf, log, func(t *swiss.Tournament) error {
		standings, err := t.Standings(ctx)
		if err != nil {
			return err
		}

		if md {
			return report.Standings(os.Stdout, standings)
		}

		return writeTable(os.Stdout, []string{"ID", "PLAYER", "SCORE", "MATCHES"}, func(w io.Writer) {
			for _, v := range standings {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", v.PlayerID, v.Name, report.FormatScore(v.Wins), v.Matches)
			}
		})
	})
}

func pairings(ctx context.Context, conf *config.Config, log zerolog.Logger, args []string) error {
	md, err := parseMarkdownFlag("pairings", args)
	if err != nil {
		return err
	}

	return withTournament(conf, log, func(t *swiss.Tournament) error {
		pairings, err := t.SwissPairings(ctx)
		if err != nil {
			return err
		}

		if md {
			return report.Pairings(os.Stdout, pairings)
		}

		return writeTable(os.Stdout, []string{"ID1", "NAME1", "ID2", "NAME2"}, func(w io.Writer) {
			for _, v := range pairings {
				fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", v.Player1.ID, v.Player1.Name, v.Player2.ID, v.Player2.Name)
			}
		})
	})
}

func ratings(ctx context.Context, conf *config.Config, log zerolog.Logger, args []string) error {
	md, err := parseMarkdownFlag("ratings", args)
	if err != nil {
		return err
	}

	return withTournament(conf, log, func(t *swiss.Tournament) error {
		players, err := t.Players(ctx)
		if err != nil {
			return err
		}
		matches, err := t.Matches(ctx)
		if err != nil {
			return err
		}
		ratings := rating.Compute(players, matches)

		if md {
			return report.Ratings(os.Stdout, ratings)
		}

		return writeTable(os.Stdout, []string{"ID", "PLAYER", "RATING", "DEVIATION"}, func(w io.Writer) {
			for _, v := range ratings {
				fmt.Fprintf(w, "%d\t%s\t%.0f\t%.0f\n", v.PlayerID, v.Name, v.Rating, v.Deviation)
			}
		})
	})
}

func writeTable(out io.Writer, header []string, rows func(io.Writer)) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for k, v := range header {
		if k > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, v)
	}
	fmt.Fprint(w, "\n")
	rows(w)

	return w.Flush()
}

func resetMatches(ctx context.Context, conf *config.Config, log zerolog.Logger, _ []string) error {
	return withTournament(conf, log, func(t *swiss.Tournament) error {
		return t.DeleteMatches(ctx)
	})
}

func resetPlayers(ctx context.Context, conf *config.Config, log zerolog.Logger, _ []string) error {
	return withTournament(conf, log, func(t *swiss.Tournament) error {
		return t.DeletePlayers(ctx)
	})
}

func token(_ context.Context, conf *config.Config, _ zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	ttl := fs.Duration("ttl", time.Hour, "token validity")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tok, err := conf.SignToken(web.AdminScope, *ttl)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, tok)

	return nil
}
