package main

import (
	"swiss/internal/back"
	"swiss/internal/config"
	"swiss/internal/memory"
	"swiss/internal/swiss"

	"github.com/rs/zerolog"
)

func openStore(conf *config.Config, log zerolog.Logger) (swiss.Store, error) {
	if conf.DBDriver == "memory" {
		log.Warn().Msg("using the memory driver, nothing will be saved")
		return memory.New(), nil
	}

	return back.New(conf.DBDriver, conf.DBDSN, log)
}

// withTournament opens the configured store for the duration of cb.
func withTournament(
	conf *config.Config,
	log zerolog.Logger,
	cb func(*swiss.Tournament) error,
) (err error) {
	store, err := openStore(conf, log)
	if err != nil {
		return err
	}

	tournament := swiss.New(store, log)
	defer func() {
		if closeErr := tournament.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("unable to close store")
			if err == nil {
				err = closeErr
			}
		}
	}()

	return cb(tournament)
}
