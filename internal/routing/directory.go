// ABOUTME: Redis-backed routing directory mapping online users to their edge node
// ABOUTME: One hash entry per online user, written on join and cleared on leave

package routing

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// directoryKey is the redis hash holding user -> gateway assignments
const directoryKey = "user_gateway"

// ErrNotRouted is returned when a user has no edge-node assignment
var ErrNotRouted = errors.New("user not routed")

// hashClient is the slice of the redis API the directory needs
type hashClient interface {
	HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	HGet(ctx context.Context, key, field string) *redis.StringCmd
	HDel(ctx context.Context, key string, fields ...string) *redis.IntCmd
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
}

// Directory tracks which gateway each online user is connected to
type Directory struct {
	client hashClient
}

// NewDirectory builds a directory over the shared redis client
func NewDirectory(client hashClient) *Directory {
	return &Directory{client: client}
}

// Register points the user's route at the given gateway, replacing any
// previous assignment.
func (d *Directory) Register(ctx context.Context, userID int64, gatewayID string) error {
	if err := d.client.HSet(ctx, directoryKey, field(userID), gatewayID).Err(); err != nil {
		return fmt.Errorf("registering route for %d: %w", userID, err)
	}
	return nil
}

// Lookup returns the gateway currently serving the user
func (d *Directory) Lookup(ctx context.Context, userID int64) (string, error) {
	gatewayID, err := d.client.HGet(ctx, directoryKey, field(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotRouted
	}
	if err != nil {
		return "", fmt.Errorf("looking up route for %d: %w", userID, err)
	}
	return gatewayID, nil
}

// Deregister clears the user's route only while it still points at
// gatewayID. A session displaced to another node already overwrote the
// entry, and the old node must not clobber the newer assignment.
func (d *Directory) Deregister(ctx context.Context, userID int64, gatewayID string) error {
	current, err := d.Lookup(ctx, userID)
	if errors.Is(err, ErrNotRouted) {
		return nil
	}
	if err != nil {
		return err
	}
	if current != gatewayID {
		return nil
	}
	if err := d.client.HDel(ctx, directoryKey, field(userID)).Err(); err != nil {
		return fmt.Errorf("deregistering route for %d: %w", userID, err)
	}
	return nil
}

// Routes returns the full directory snapshot. The reconciler uses it to
// clear entries left behind by a crashed node.
func (d *Directory) Routes(ctx context.Context) (map[int64]string, error) {
	raw, err := d.client.HGetAll(ctx, directoryKey).Result()
	if err != nil {
		return nil, fmt.Errorf("listing routes: %w", err)
	}
	routes := make(map[int64]string, len(raw))
	for f, gatewayID := range raw {
		userID, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			continue // skip malformed entries rather than failing the sweep
		}
		routes[userID] = gatewayID
	}
	return routes, nil
}

func field(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
