// ABOUTME: Frame delivery: local session first, then the directory and bus.
// ABOUTME: Consumes this edge's topic and reconciles directory entries on a schedule.

package gateway

import (
	"context"

	"google.golang.org/protobuf/proto"

	"github.com/myluster/TinyIM/internal/routing"
	pb "github.com/myluster/TinyIM/proto/im"
)

// sendToUser routes a frame to wherever the user is connected. A local
// session wins outright; otherwise the directory names the owning edge and
// the frame rides the bus. A user in neither place is offline, and since
// persistence already holds every chat message nothing further happens.
func (g *Gateway) sendToUser(ctx context.Context, userID int64, frame *pb.Frame) {
	raw, err := proto.Marshal(frame)
	if err != nil {
		g.logger.Error("marshal frame", "type", frame.GetType().String(), "error", err)
		return
	}
	if g.deliverLocal(userID, raw) {
		g.metrics.deliveries.WithLabelValues("local").Inc()
		return
	}
	published, err := g.router.PublishToUser(ctx, userID, raw)
	if err != nil {
		g.logger.Warn("publish to user", "user_id", userID, "error", err)
		return
	}
	if published {
		g.metrics.deliveries.WithLabelValues("remote").Inc()
	} else {
		g.metrics.deliveries.WithLabelValues("offline").Inc()
	}
}

// deliverLocal enqueues a frame on the user's local session, reporting
// whether one existed. An enqueue that fails because the session is slow
// still counts as local delivery: the session is being torn down and the
// message is already persisted.
func (g *Gateway) deliverLocal(userID int64, frame []byte) bool {
	s, ok := g.table.Get(userID)
	if !ok {
		return false
	}
	s.enqueue(frame)
	return true
}

// consumeBus drains deliveries published to this edge's topic. Frames only
// ever go to local sessions here; re-publishing would bounce frames between
// edges forever. A frame for a user who already left is dropped, the next
// login drains it from persistence instead.
func (g *Gateway) consumeBus(deliveries <-chan routing.Delivery) {
	for d := range deliveries {
		g.metrics.busReceived.Inc()
		if !g.deliverLocal(d.UserID, d.Frame) {
			g.logger.Debug("bus delivery for absent user", "user_id", d.UserID)
		}
	}
}

// reconcile repairs the routing directory: every live local session gets
// its entry re-asserted, and stale entries still naming this edge are
// dropped. Crashed peers leave both kinds of damage behind.
func (g *Gateway) reconcile() {
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()

	routes, err := g.directory.Routes(ctx)
	if err != nil {
		g.logger.Warn("directory reconcile", "error", err)
		return
	}

	local := make(map[int64]bool)
	var reasserted, dropped int
	for _, userID := range g.table.UserIDs() {
		local[userID] = true
		if routes[userID] == g.id {
			continue
		}
		if err := g.directory.Register(ctx, userID, g.id); err != nil {
			g.logger.Warn("directory reassert", "user_id", userID, "error", err)
			continue
		}
		reasserted++
	}
	for userID, owner := range routes {
		if owner != g.id || local[userID] {
			continue
		}
		if err := g.directory.Deregister(ctx, userID, g.id); err != nil {
			g.logger.Warn("directory cleanup", "user_id", userID, "error", err)
			continue
		}
		dropped++
	}
	if reasserted > 0 || dropped > 0 {
		g.logger.Info("directory reconciled", "reasserted", reasserted, "dropped", dropped)
	}
}
