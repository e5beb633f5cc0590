package main // nolint:testpackage

import (
	"errors"
	"path/filepath"
	"testing"

	"swiss/internal/swiss"
)

func TestParsePlayerIDs(t *testing.T) {
	a, b, err := parsePlayerIDs("report WINNER LOSER", []string{"3", "7"})
	if err != nil {
		t.Fatal(err)
	}
	if a != 3 || b != 7 {
		t.Errorf("expected 3 7, got %d %d", a, b)
	}

	if _, _, err := parsePlayerIDs("report WINNER LOSER", []string{"3"}); err == nil {
		t.Error("expected an error on a missing argument")
	}

	_, _, err = parsePlayerIDs("report WINNER LOSER", []string{"3", "seven"})
	if !errors.Is(err, swiss.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRunMemoryDriver(t *testing.T) {
	t.Setenv("SWISS_DB_DRIVER", "memory")
	t.Setenv("SWISS_LOG_LEVEL", "error")
	path := filepath.Join(t.TempDir(), "config.json")

	for _, args := range [][]string{
		{"help"},
		{"version"},
		{"dev:fixtures"},
		{"register", "Alice"},
		{"count"},
		{"reset:players"},
	} {
		if err := run(path, args); err != nil {
			t.Errorf("%v: %s", args, err)
		}
	}

	if err := run(path, []string{"migrate"}); err == nil {
		t.Error("expected migrate to fail on the memory driver")
	}

	if err := run(path, []string{"nope"}); err == nil {
		t.Error("expected an unknown command to fail")
	}

	if err := run(path, []string{"pairings"}); !errors.Is(err, swiss.ErrNotFound) {
		t.Errorf("expected ErrNotFound without players, got %v", err)
	}
}
