// ABOUTME: Redis pub/sub frame bus carrying serialized frames between edge nodes
// ABOUTME: Each gateway consumes one topic; payloads prefix the target user ID

package routing

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
)

// topicPrefix namespaces per-gateway channels on the shared redis
const topicPrefix = "edge."

// Delivery is one frame addressed to a user connected to this node
type Delivery struct {
	UserID int64
	Frame  []byte
}

// publishClient is the slice of the redis API Publish needs
type publishClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// subscribeClient opens pub/sub subscriptions
type subscribeClient interface {
	Subscribe(ctx context.Context, channels ...string) *redis.PubSub
}

// Bus publishes frames to gateway topics and subscribes to this node's own.
// Subscriptions take over a dedicated connection inside the client, so one
// client serves both directions.
type Bus struct {
	pub    publishClient
	sub    subscribeClient
	logger *slog.Logger
}

// NewBus builds a bus on the shared redis client
func NewBus(client *redis.Client) *Bus {
	return &Bus{
		pub:    client,
		sub:    client,
		logger: slog.Default().With("component", "bus"),
	}
}

// Topic returns the pub/sub channel a gateway consumes
func Topic(gatewayID string) string {
	return topicPrefix + gatewayID
}

// Publish sends one frame to the gateway currently serving userID
func (b *Bus) Publish(ctx context.Context, gatewayID string, userID int64, frame []byte) error {
	if err := b.pub.Publish(ctx, Topic(gatewayID), encodePayload(userID, frame)).Err(); err != nil {
		return fmt.Errorf("publishing to %s: %w", Topic(gatewayID), err)
	}
	return nil
}

// Subscribe starts consuming the gateway's topic. The initial Receive
// confirms the subscription is live before any publisher can race it.
func (b *Bus) Subscribe(ctx context.Context, gatewayID string) (*Subscription, error) {
	pubsub := b.sub.Subscribe(ctx, Topic(gatewayID))
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("subscribing to %s: %w", Topic(gatewayID), err)
	}
	s := &Subscription{
		pubsub:     pubsub,
		deliveries: make(chan Delivery, 256),
		logger:     b.logger,
	}
	go s.run(pubsub.Channel())
	return s, nil
}

// Subscription is a live pub/sub consumer for one gateway topic
type Subscription struct {
	pubsub     *redis.PubSub
	deliveries chan Delivery
	logger     *slog.Logger
}

// Deliveries returns decoded frames addressed to this node's users. The
// channel closes once the subscription is closed.
func (s *Subscription) Deliveries() <-chan Delivery {
	return s.deliveries
}

// Close tears down the redis subscription
func (s *Subscription) Close() error {
	return s.pubsub.Close()
}

func (s *Subscription) run(msgs <-chan *redis.Message) {
	defer close(s.deliveries)
	for msg := range msgs {
		d, err := decodePayload(msg.Payload)
		if err != nil {
			s.logger.Warn("dropping malformed bus payload", "channel", msg.Channel, "error", err)
			continue
		}
		s.deliveries <- d
	}
}

// Payload layout: "<user_id>|<frame bytes>". Redis strings are binary
// safe, so the serialized frame rides after the first pipe untouched.
func encodePayload(userID int64, frame []byte) []byte {
	uid := strconv.FormatInt(userID, 10)
	payload := make([]byte, 0, len(uid)+1+len(frame))
	payload = append(payload, uid...)
	payload = append(payload, '|')
	return append(payload, frame...)
}

func decodePayload(payload string) (Delivery, error) {
	i := strings.IndexByte(payload, '|')
	if i < 0 {
		return Delivery{}, fmt.Errorf("missing user prefix")
	}
	userID, err := strconv.ParseInt(payload[:i], 10, 64)
	if err != nil {
		return Delivery{}, fmt.Errorf("bad user prefix %q: %w", payload[:i], err)
	}
	return Delivery{UserID: userID, Frame: []byte(payload[i+1:])}, nil
}
