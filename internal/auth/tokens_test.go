// ABOUTME: Unit tests for opaque session token minting and verification
// ABOUTME: Uses an in-memory redis fake; covers expiry keys, revocation, and uniqueness

package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// fakeTokenClient implements tokenClient over a plain map
type fakeTokenClient struct {
	entries map[string]string
	ttls    map[string]time.Duration
	setErr  error
}

func newFakeTokenClient() *fakeTokenClient {
	return &fakeTokenClient{
		entries: make(map[string]string),
		ttls:    make(map[string]time.Duration),
	}
}

func (f *fakeTokenClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.entries[key] = value.(string)
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeTokenClient) Get(ctx context.Context, key string) *redis.StringCmd {
	v, ok := f.entries[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeTokenClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, key := range keys {
		if _, ok := f.entries[key]; ok {
			delete(f.entries, key)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestTokenStore_MintAndVerify(t *testing.T) {
	client := newFakeTokenClient()
	tokens := NewTokenStore(client)
	ctx := context.Background()

	token, err := tokens.Mint(ctx, 7)
	if err != nil {
		t.Fatalf("Mint() error = %v", err)
	}
	if len(token) != 32 {
		t.Errorf("token length = %d, want 32", len(token))
	}

	userID, err := tokens.Verify(ctx, token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if userID != 7 {
		t.Errorf("Verify() = %d, want 7", userID)
	}

	if ttl := client.ttls[tokenKeyPrefix+token]; ttl != 24*time.Hour {
		t.Errorf("token TTL = %v, want 24h", ttl)
	}
}

func TestTokenStore_Verify_UnknownToken(t *testing.T) {
	tokens := NewTokenStore(newFakeTokenClient())

	tests := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"never minted", "deadbeefdeadbeefdeadbeefdeadbeef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokens.Verify(context.Background(), tt.token)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestTokenStore_Revoke(t *testing.T) {
	client := newFakeTokenClient()
	tokens := NewTokenStore(client)
	ctx := context.Background()

	token, err := tokens.Mint(ctx, 7)
	if err != nil {
		t.Fatalf("Mint() error = %v", err)
	}
	if err := tokens.Revoke(ctx, token); err != nil {
		t.Fatalf("Revoke() error = %v", err)
	}

	if _, err := tokens.Verify(ctx, token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() after revoke error = %v, want ErrInvalidToken", err)
	}

	// Revoking again is a no-op
	if err := tokens.Revoke(ctx, token); err != nil {
		t.Errorf("second Revoke() error = %v", err)
	}
}

func TestTokenStore_MintsAreUnique(t *testing.T) {
	client := newFakeTokenClient()
	tokens := NewTokenStore(client)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 16; i++ {
		token, err := tokens.Mint(ctx, 7)
		if err != nil {
			t.Fatalf("Mint() error = %v", err)
		}
		if seen[token] {
			t.Fatalf("duplicate token minted: %s", token)
		}
		seen[token] = true
	}
}

func TestTokenStore_KeysCarryPrefix(t *testing.T) {
	client := newFakeTokenClient()
	tokens := NewTokenStore(client)

	token, err := tokens.Mint(context.Background(), 7)
	if err != nil {
		t.Fatalf("Mint() error = %v", err)
	}

	for key := range client.entries {
		if !strings.HasPrefix(key, "token:") {
			t.Errorf("key %q missing token: prefix", key)
		}
		if !strings.HasSuffix(key, token) {
			t.Errorf("key %q does not carry the token", key)
		}
	}
}
