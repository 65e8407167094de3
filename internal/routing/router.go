// ABOUTME: Cross-node frame router combining directory lookups with bus publishes
// ABOUTME: Reports whether the target user was routed anywhere at all

package routing

import (
	"context"
	"errors"
)

// Router forwards frames to whichever gateway serves the target user
type Router struct {
	directory *Directory
	bus       *Bus
}

// NewRouter builds a router over an existing directory and bus
func NewRouter(directory *Directory, bus *Bus) *Router {
	return &Router{directory: directory, bus: bus}
}

// PublishToUser routes one frame to the user's gateway. The boolean
// reports whether the user had a route; an offline target is not an error.
func (r *Router) PublishToUser(ctx context.Context, userID int64, frame []byte) (bool, error) {
	gatewayID, err := r.directory.Lookup(ctx, userID)
	if errors.Is(err, ErrNotRouted) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := r.bus.Publish(ctx, gatewayID, userID, frame); err != nil {
		return false, err
	}
	return true, nil
}
