package main

import (
	"context"

	"swiss/internal/back"
	"swiss/internal/config"
	"swiss/internal/util"

	"github.com/rs/zerolog"
)

func migrate(_ context.Context, conf *config.Config, log zerolog.Logger, _ []string) error {
	if conf.DBDriver == "memory" {
		return util.ErrPublic("the memory driver has no schema to migrate")
	}

	return back.Migrate(conf.Migrations, conf.DBDriver, conf.DBDSN, log)
}
