// ABOUTME: Opaque session tokens minted at login and resolved in redis
// ABOUTME: Entries expire after 24 hours, bounding a stolen token's lifetime

package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrInvalidToken is returned when a token is unknown or expired
var ErrInvalidToken = errors.New("invalid token")

const (
	tokenKeyPrefix = "token:"
	tokenTTL       = 24 * time.Hour
)

// tokenClient is the slice of the redis API token storage needs
type tokenClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// TokenStore mints and verifies opaque session tokens backed by redis.
// Tokens are 32 hex characters of crypto/rand output; possession is the
// whole credential, so nothing about the user is derivable from one.
type TokenStore struct {
	client tokenClient
}

// NewTokenStore builds a token store over the shared redis client
func NewTokenStore(client tokenClient) *TokenStore {
	return &TokenStore{client: client}
}

// Mint creates a fresh token for the user, valid for 24 hours
func (s *TokenStore) Mint(ctx context.Context, userID int64) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}
	token := hex.EncodeToString(buf)

	err := s.client.Set(ctx, tokenKeyPrefix+token, strconv.FormatInt(userID, 10), tokenTTL).Err()
	if err != nil {
		return "", fmt.Errorf("storing token: %w", err)
	}
	return token, nil
}

// Verify resolves a token to the user it was minted for
func (s *TokenStore) Verify(ctx context.Context, token string) (int64, error) {
	val, err := s.client.Get(ctx, tokenKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrInvalidToken
	}
	if err != nil {
		return 0, fmt.Errorf("verifying token: %w", err)
	}
	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt token entry %q: %w", val, err)
	}
	return userID, nil
}

// Revoke deletes a token; revoking an unknown token is a no-op
func (s *TokenStore) Revoke(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, tokenKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("revoking token: %w", err)
	}
	return nil
}
