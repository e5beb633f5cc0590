package logger_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"swiss/internal/logger"

	"github.com/rs/zerolog"
)

func TestLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "warn")

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message should have been filtered: %s", out)
	}
	if !strings.Contains(out, `"message":"shown"`) {
		t.Errorf("expected the warning in output: %s", out)
	}
}

func TestUnknownLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "chatty")

	log.Debug().Msg("hidden")
	log.Info().Msg("shown")

	if out := buf.String(); strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestLeavesTimeFormatAlone(t *testing.T) {
	previous := zerolog.TimeFieldFormat
	t.Cleanup(func() {
		zerolog.TimeFieldFormat = previous
	})

	zerolog.TimeFieldFormat = time.RFC3339
	logger.NewWithWriter(&bytes.Buffer{}, "info")

	if zerolog.TimeFieldFormat != time.RFC3339 {
		t.Errorf("time format was changed to %q", zerolog.TimeFieldFormat)
	}
}
