package config

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"
)

// ErrTokenExpired means the token is valid, but expired.
var ErrTokenExpired = errors.New("token expired")

// ErrInvalidToken means the token was not signed by us for this scope.
var ErrInvalidToken = errors.New("invalid token")

// SignToken returns a token granting access to scope for the given duration.
func (c *Config) SignToken(scope string, d time.Duration) (string, error) {
	td := strconv.FormatInt(time.Now().Add(d).Unix(), 10)
	mac, err := c.sign(scope, td)
	if err != nil {
		return "", err
	}

	return td + "." + mac, nil
}

// CheckToken ensures the given token was signed for scope and is not expired.
func (c *Config) CheckToken(token, scope string) error {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return ErrInvalidToken
	}

	td, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return ErrInvalidToken
	}

	expected, err := c.sign(scope, parts[0])
	if err != nil {
		return err
	}

	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return ErrInvalidToken
	}

	// Keep this last, this error must be returned _only_ if the token is valid.
	if time.Unix(td, 0).Before(time.Now()) {
		return ErrTokenExpired
	}

	return nil
}

func (c *Config) sign(scope, td string) (string, error) {
	if len(c.WebToken) < 32 {
		return "", errors.New("web token must be ≥ 32 chars")
	}

	mac := hmac.New(sha256.New, []byte(c.WebToken))
	if _, err := mac.Write([]byte(scope + "\n" + td)); err != nil {
		return "", err
	}

	return hex.EncodeToString(mac.Sum(nil)), nil
}
