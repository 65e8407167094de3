// ABOUTME: Tests for the frame bus payload codec and subscription decode loop
// ABOUTME: Frames are opaque bytes, so pipes and zero bytes inside them must survive

package routing

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/redis/go-redis/v9"
)

// fakePublishClient records every publish
type fakePublishClient struct {
	channels []string
	payloads [][]byte
	err      error
}

func (f *fakePublishClient) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	f.channels = append(f.channels, channel)
	f.payloads = append(f.payloads, message.([]byte))
	return redis.NewIntResult(1, nil)
}

func TestPayloadRoundTrip(t *testing.T) {
	frame := []byte{0x08, 0x01, '|', 0x00, 0xFF, '|'}

	d, err := decodePayload(string(encodePayload(42, frame)))
	if err != nil {
		t.Fatalf("decodePayload failed: %v", err)
	}
	if d.UserID != 42 {
		t.Errorf("user ID mismatch: got %d, want 42", d.UserID)
	}
	if !bytes.Equal(d.Frame, frame) {
		t.Errorf("frame mismatch: got %v, want %v", d.Frame, frame)
	}
}

func TestDecodePayload_Malformed(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"no separator", "12345"},
		{"non-numeric user", "abc|frame"},
		{"empty user", "|frame"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := decodePayload(tc.payload); err == nil {
				t.Errorf("expected error for %q", tc.payload)
			}
		})
	}
}

func TestBus_Publish(t *testing.T) {
	pub := &fakePublishClient{}
	bus := &Bus{pub: pub, logger: slog.Default()}

	frame := []byte{0x08, 0x03}
	if err := bus.Publish(context.Background(), "gw-2", 7, frame); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	if len(pub.channels) != 1 {
		t.Fatalf("publish count mismatch: got %d, want 1", len(pub.channels))
	}
	if pub.channels[0] != "edge.gw-2" {
		t.Errorf("channel mismatch: got %q, want %q", pub.channels[0], "edge.gw-2")
	}
	want := append([]byte("7|"), frame...)
	if !bytes.Equal(pub.payloads[0], want) {
		t.Errorf("payload mismatch: got %v, want %v", pub.payloads[0], want)
	}
}

func TestSubscription_Run(t *testing.T) {
	s := &Subscription{
		deliveries: make(chan Delivery, 4),
		logger:     slog.Default(),
	}

	msgs := make(chan *redis.Message, 3)
	msgs <- &redis.Message{Channel: "edge.gw-1", Payload: string(encodePayload(7, []byte("a")))}
	msgs <- &redis.Message{Channel: "edge.gw-1", Payload: "garbage without prefix"}
	msgs <- &redis.Message{Channel: "edge.gw-1", Payload: string(encodePayload(8, []byte("b")))}
	close(msgs)

	s.run(msgs)

	var got []Delivery
	for d := range s.deliveries {
		got = append(got, d)
	}
	if len(got) != 2 {
		t.Fatalf("delivery count mismatch: got %d, want 2", len(got))
	}
	if got[0].UserID != 7 || got[1].UserID != 8 {
		t.Errorf("user IDs mismatch: got [%d, %d], want [7, 8]", got[0].UserID, got[1].UserID)
	}
}

func TestRouter_PublishToUser(t *testing.T) {
	hash := newFakeHashClient()
	hash.entries["7"] = "gw-9"
	pub := &fakePublishClient{}
	router := NewRouter(NewDirectory(hash), &Bus{pub: pub, logger: slog.Default()})

	delivered, err := router.PublishToUser(context.Background(), 7, []byte("frame"))
	if err != nil {
		t.Fatalf("PublishToUser failed: %v", err)
	}
	if !delivered {
		t.Error("expected delivered=true for routed user")
	}
	if len(pub.channels) != 1 || pub.channels[0] != "edge.gw-9" {
		t.Errorf("unexpected publishes: %v", pub.channels)
	}
}

func TestRouter_PublishToUser_Offline(t *testing.T) {
	pub := &fakePublishClient{}
	router := NewRouter(NewDirectory(newFakeHashClient()), &Bus{pub: pub, logger: slog.Default()})

	delivered, err := router.PublishToUser(context.Background(), 99, []byte("frame"))
	if err != nil {
		t.Fatalf("PublishToUser failed: %v", err)
	}
	if delivered {
		t.Error("expected delivered=false for offline user")
	}
	if len(pub.channels) != 0 {
		t.Errorf("expected no publishes, got %v", pub.channels)
	}
}
