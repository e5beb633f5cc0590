package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"swiss/internal/config"
	"swiss/internal/logger"
	"swiss/internal/util"

	"github.com/rs/zerolog"
)

// Version holds the build-time version string.
var Version = "unknown" // nolint:gochecknoglobals

func main() {
	// Process-wide, every logger shares it.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	configPath := flag.String("config", "", "path to a JSON configuration file")
	flag.Parse()

	if err := run(*configPath, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", util.PublicMessage(err, err.Error()))
		os.Exit(1)
	}
}

func run(configPath string, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, help())
		return errors.New("no command given")
	}

	switch args[0] {
	case "help":
		fmt.Fprint(os.Stdout, help())
		return nil
	case "version":
		fmt.Fprintf(os.Stdout, "swiss %s\n", Version)
		return nil
	}

	conf, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	log := logger.New(conf.LogLevel)

	cmd, ok := commands()[args[0]]
	if !ok {
		fmt.Fprint(os.Stderr, help())
		return fmt.Errorf("unknown command %q", args[0])
	}

	return cmd(context.Background(), conf, log, args[1:])
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.NewFromFile(path)
	}

	return config.NewFromUserConfigDir()
}

type command func(ctx context.Context, conf *config.Config, log zerolog.Logger, args []string) error

func commands() map[string]command {
	return map[string]command{
		"config:init":   configInit,
		"dev:fixtures":  loadFixtures,
		"migrate":       migrate,
		"register":      register,
		"count":         count,
		"report":        reportMatch,
		"draw":          reportDraw,
		"standings":     standings,
		"pairings":      pairings,
		"ratings":       ratings,
		"reset:matches": resetMatches,
		"reset:players": resetPlayers,
		"token":         token,
		"serve":         serve,
	}
}

func help() string {
	return fmt.Sprintf(`
Swiss keeps track of a Swiss-system tournament: players, results and the
pairings of the next round.

Usage: %[1]s [-config PATH] COMMAND [ARGS…]

COMMANDS
    config:init          write a default configuration file with a new web token
    count                display the number of registered players
    dev:fixtures         create default data for quick testing during development
    draw A B             record a drawn match between players A and B
    help                 display this help
    migrate              create or upgrade the database schema
    pairings [-md]       display the pairings of the next round
    ratings [-md]        display the Glicko-2 ratings of every player
    register NAME        register a new player
    report WINNER LOSER  record a decisive match
    reset:matches        delete every match result
    reset:players        delete every player and match result
    serve                start the HTTP API
    standings [-md]      display the current standings
    token [-ttl D]       print an admin token for the destructive API calls
    version              display the current version

ENVIRONMENT
    SWISS_DB_DRIVER   sqlite3 (default), postgres or memory
    SWISS_DB_DSN      database DSN, defaults to %[2]s
    SWISS_MIGRATIONS  migrations source URL, defaults to %[3]s
    SWISS_LISTEN      HTTP API address, defaults to %[4]s
    SWISS_LOG_LEVEL   debug, info (default), warn or error
    SWISS_WEB_TOKEN   HMAC key of the admin tokens, at least 32 characters
`,
		os.Args[0],
		config.DefaultDBDSN,
		config.DefaultMigrations,
		config.DefaultListen,
	)
}
