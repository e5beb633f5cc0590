package swiss

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxPlayerNameLength is the maximum number of runes in a player name.
const MaxPlayerNameLength = 64

// A Player is a registered competitor. Players are never updated, they only
// disappear when every player is deleted at once.
type Player struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NormalizePlayerName trims the given name and ensures it can be registered.
// Names need not be unique.
func NormalizePlayerName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", InvalidInput("player name cannot be empty")
	}

	if utf8.RuneCountInString(name) > MaxPlayerNameLength {
		return "", InvalidInput("player name must be at most %d characters", MaxPlayerNameLength)
	}

	return name, nil
}
