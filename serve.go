package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"swiss/internal/config"
	"swiss/internal/swiss"
	"swiss/internal/web"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

func serve(ctx context.Context, conf *config.Config, log zerolog.Logger, _ []string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(conf.WebToken) < 32 {
		log.Warn().Msg("no web token configured, destructive API calls are disabled")
	}

	return withTournament(conf, log, func(t *swiss.Tournament) error {
		g, ctx := errgroup.WithContext(ctx)
		server := web.NewServer(t, conf, log)

		g.Go(func() error {
			return server.Serve(ctx)
		})

		g.Go(func() error {
			return logStats(ctx, t, log)
		})

		if err := g.Wait(); err != nil {
			return err
		}

		log.Info().Msg("shutdown complete")

		return nil
	})
}

// logStats periodically logs the size of the tournament until ctx is done.
func logStats(ctx context.Context, t *swiss.Tournament, log zerolog.Logger) error {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		players, err := t.Players(ctx)
		if err != nil {
			log.Error().Err(err).Msg("unable to fetch players")
			continue
		}
		matches, err := t.Matches(ctx)
		if err != nil {
			log.Error().Err(err).Msg("unable to fetch matches")
			continue
		}

		log.Info().Int("players", len(players)).Int("matches", len(matches)).Msg("tournament stats")
	}
}
