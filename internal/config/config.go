package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	DefaultDBDriver   = "sqlite3"
	DefaultDBDSN      = "./swiss.db"
	DefaultMigrations = "file://resources/migrations"
	DefaultListen     = "127.0.0.1:3001"
	DefaultLogLevel   = "info"
)

type Config struct {
	// DBDriver is one of "sqlite3", "postgres" or "memory". The memory driver
	// loses everything on exit.
	DBDriver string
	DBDSN    string

	// Migrations is the source URL of the migrations directory, it holds one
	// sub-directory per driver.
	Migrations string

	// Listen is the address the HTTP API binds to.
	Listen   string
	LogLevel string

	// WebToken is the HMAC key of the admin tokens, it must be at least 32
	// characters long for destructive API calls to be enabled.
	WebToken string
}

// Default returns a configuration usable for local development.
func Default() *Config {
	return &Config{
		DBDriver:   DefaultDBDriver,
		DBDSN:      DefaultDBDSN,
		Migrations: DefaultMigrations,
		Listen:     DefaultListen,
		LogLevel:   DefaultLogLevel,
	}
}

// NewFromUserConfigDir loads the user configuration file if it exists, then a
// .env file from the working directory if any, then the environment.
func NewFromUserConfigDir() (*Config, error) {
	path, err := getOrCreateUserConfigPath()
	if err != nil {
		return nil, err
	}

	return NewFromFile(path)
}

// NewFromFile is NewFromUserConfigDir with an explicit configuration path, a
// missing file is not an error.
func NewFromFile(path string) (*Config, error) {
	c := Default()
	if err := c.readFile(path); err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", path, err)
	}

	// .env never overrides variables already set.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("unable to load .env: %w", err)
	}
	c.expandFromEnv()

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) readFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	return json.NewDecoder(f).Decode(c)
}

func (c *Config) expandFromEnv() {
	vars := []struct {
		src string
		dst *string
	}{
		{"SWISS_DB_DRIVER", &c.DBDriver},
		{"SWISS_DB_DSN", &c.DBDSN},
		{"SWISS_MIGRATIONS", &c.Migrations},
		{"SWISS_LISTEN", &c.Listen},
		{"SWISS_LOG_LEVEL", &c.LogLevel},
		{"SWISS_WEB_TOKEN", &c.WebToken},
	}

	for _, v := range vars {
		if str := os.Getenv(v.src); str != "" {
			*v.dst = str
		}
	}
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "sqlite3", "postgres", "memory":
	default:
		return fmt.Errorf("unsupported database driver %q", c.DBDriver)
	}

	if c.DBDriver != "memory" && c.DBDSN == "" {
		return fmt.Errorf("a DSN is required for the %s driver", c.DBDriver)
	}

	return nil
}

func getOrCreateUserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(configDir, "swiss")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}

	return filepath.Join(dir, "config.json"), nil
}

// Write saves the configuration to the user configuration directory and
// returns the path written.
func (c *Config) Write() (string, error) {
	path, err := getOrCreateUserConfigPath()
	if err != nil {
		return "", err
	}

	return path, c.WriteFile(path)
}

func (c *Config) WriteFile(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	if err := enc.Encode(c); err != nil {
		if err2 := f.Close(); err2 != nil {
			return fmt.Errorf("unable to close file (%s) after error: %w", err2, err)
		}

		return err
	}

	return f.Close()
}
