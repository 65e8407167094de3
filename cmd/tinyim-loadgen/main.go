// ABOUTME: Load generator that registers account pairs and drives chat over WebSocket.
// ABOUTME: Usage: tinyim-loadgen [-config loadgen.toml]

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"net"
	"net/http"
	"net/url"
	"os/signal"
	"sort"
	"sync"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"google.golang.org/protobuf/proto"

	"github.com/myluster/TinyIM/internal/gateway"
	pb "github.com/myluster/TinyIM/proto/im"
)

func main() {
	configPath := flag.String("config", "loadgen.toml", "path to TOML config")
	flag.Parse()

	if err := run(*configPath); err != nil {
		log.Fatal(err)
	}
}

type account struct {
	username string
	userID   int64
	token    string
}

func run(configPath string) error {
	cfg, err := Load(configPath)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	fmt.Printf("tinyim-loadgen: %d pairs x %d messages against %s\n\n",
		cfg.Load.Pairs, cfg.Load.MessagesPerSender, cfg.Target.BaseURL)

	client := resty.New().
		SetBaseURL(cfg.Target.BaseURL).
		SetTimeout(10 * time.Second)

	green := color.New(color.FgGreen)

	// Fresh accounts every run so a changed password never breaks login.
	runID := uuid.NewString()[:8]
	accounts := make([]account, 0, cfg.Load.Pairs*2)
	for i := 0; i < cfg.Load.Pairs*2; i++ {
		name := fmt.Sprintf("%s-%s-%d", cfg.Accounts.UsernamePrefix, runID, i)
		acct, err := provision(ctx, client, name, cfg.Accounts.Password)
		if err != nil {
			return err
		}
		accounts = append(accounts, acct)
	}
	green.Printf("  ✓ provisioned %d accounts\n", len(accounts))

	// Pair members befriend each other so presence announcements flow too.
	for i := 0; i < cfg.Load.Pairs; i++ {
		sender, receiver := accounts[2*i], accounts[2*i+1]
		if err := befriend(ctx, client, sender, receiver); err != nil {
			fmt.Printf("  ! befriending %s and %s: %v\n", sender.username, receiver.username, err)
		}
	}

	sessions := make([]*wsSession, 0, cfg.Load.Pairs*2)
	defer func() {
		for _, s := range sessions {
			_ = s.conn.Close()
		}
	}()

	st := &stats{}
	done := make(chan struct{})
	var receiverWG, senderWG sync.WaitGroup

	start := time.Now()
	for i := 0; i < cfg.Load.Pairs; i++ {
		sender, receiver := accounts[2*i], accounts[2*i+1]

		// Receiver connects first so pushes arrive live instead of queuing.
		recvSess, err := dialSession(ctx, cfg.wsURL(), receiver.token)
		if err != nil {
			return fmt.Errorf("connecting receiver %s: %w", receiver.username, err)
		}
		sessions = append(sessions, recvSess)

		sendSess, err := dialSession(ctx, cfg.wsURL(), sender.token)
		if err != nil {
			return fmt.Errorf("connecting sender %s: %w", sender.username, err)
		}
		sessions = append(sessions, sendSess)

		receiverWG.Add(1)
		go func() {
			defer receiverWG.Done()
			runReceiver(ctx, recvSess, cfg.Load.MessagesPerSender, st, done)
		}()

		senderWG.Add(1)
		go func(to int64) {
			defer senderWG.Done()
			runSender(ctx, cfg, sendSess, to, st)
		}(receiver.userID)
	}
	green.Printf("  ✓ %d pairs connected\n", cfg.Load.Pairs)

	senderWG.Wait()
	select {
	case <-time.After(cfg.Load.DrainWait):
	case <-ctx.Done():
	}
	close(done)
	receiverWG.Wait()
	elapsed := time.Since(start)

	fmt.Println()
	fmt.Println("=== summary ===")
	fmt.Printf("sent:      %d\n", st.sent)
	fmt.Printf("acked:     %d\n", st.acked)
	fmt.Printf("delivered: %d\n", st.delivered)
	fmt.Printf("errors:    %d\n", st.errors)
	fmt.Printf("elapsed:   %s\n", elapsed.Round(time.Millisecond))
	if elapsed > 0 {
		fmt.Printf("rate:      %.1f msg/s\n", float64(st.sent)/elapsed.Seconds())
	}
	printLatency("ack rtt", st.ackRTT)
	printLatency("delivery", st.deliverLat)

	if st.errors > 0 {
		return fmt.Errorf("%d errors during run", st.errors)
	}
	return nil
}

// provision registers the account (tolerating an existing one) and logs in.
func provision(ctx context.Context, client *resty.Client, username, password string) (account, error) {
	resp, err := client.R().
		SetContext(ctx).
		SetBody(gateway.RegisterRequest{Username: username, Password: password}).
		Post("/api/v1/register")
	if err != nil {
		return account{}, fmt.Errorf("registering %s: %w", username, err)
	}
	if resp.IsError() && resp.StatusCode() != http.StatusConflict {
		return account{}, fmt.Errorf("registering %s: status %d: %s", username, resp.StatusCode(), resp.String())
	}

	var login gateway.LoginResponse
	resp, err = client.R().
		SetContext(ctx).
		SetBody(gateway.LoginRequest{Username: username, Password: password}).
		SetResult(&login).
		Post("/api/v1/login")
	if err != nil {
		return account{}, fmt.Errorf("logging in %s: %w", username, err)
	}
	if resp.IsError() {
		return account{}, fmt.Errorf("logging in %s: status %d: %s", username, resp.StatusCode(), resp.String())
	}

	return account{username: username, userID: login.UserID, token: login.Token}, nil
}

// befriend sends a friend request from one account and accepts it as the other.
func befriend(ctx context.Context, client *resty.Client, from, to account) error {
	resp, err := client.R().
		SetContext(ctx).
		SetAuthToken(from.token).
		SetBody(gateway.AddFriendRequest{FriendID: to.userID}).
		Post("/api/v1/friends/add")
	if err != nil {
		return fmt.Errorf("requesting friendship: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("requesting friendship: status %d: %s", resp.StatusCode(), resp.String())
	}

	resp, err = client.R().
		SetContext(ctx).
		SetAuthToken(to.token).
		SetBody(gateway.HandleFriendRequest{RequestID: from.userID, Accept: true}).
		Post("/api/v1/friends/handle")
	if err != nil {
		return fmt.Errorf("accepting friendship: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("accepting friendship: status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

// wsSession wraps a WebSocket connection with a write lock so the read
// loop can answer server pings while the send loop is active.
type wsSession struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func dialSession(ctx context.Context, endpoint, token string) (*wsSession, error) {
	u := endpoint + "?token=" + url.QueryEscape(token)
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, u, nil)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("dialing %s: %w (status %d)", endpoint, err, resp.StatusCode)
		}
		return nil, fmt.Errorf("dialing %s: %w", endpoint, err)
	}
	return &wsSession{conn: conn}, nil
}

func (s *wsSession) writeFrame(f *pb.Frame) error {
	raw, err := proto.Marshal(f)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	return s.conn.WriteMessage(websocket.BinaryMessage, raw)
}

func (s *wsSession) readFrame(timeout time.Duration) (*pb.Frame, error) {
	_ = s.conn.SetReadDeadline(time.Now().Add(timeout))
	_, raw, err := s.conn.ReadMessage()
	if err != nil {
		return nil, err
	}
	f := &pb.Frame{}
	if err := proto.Unmarshal(raw, f); err != nil {
		return nil, err
	}
	return f, nil
}

// runSender writes chat frames at the configured interval and matches
// acknowledgements back to send times for round-trip latency.
func runSender(ctx context.Context, cfg *Config, sess *wsSession, to int64, st *stats) {
	pending := make(map[string]time.Time)
	var mu sync.Mutex

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		ticker := time.NewTicker(cfg.Load.SendInterval)
		defer ticker.Stop()
		for i := 0; i < cfg.Load.MessagesPerSender; i++ {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			reqID := uuid.NewString()
			frame := &pb.Frame{
				Type:      pb.FrameType_CHAT_SEND,
				RequestId: reqID,
				Payload: &pb.Frame_Chat{Chat: &pb.ChatData{
					ToUserId:  to,
					Content:   fmt.Sprintf("load message %d", i),
					Timestamp: time.Now().UnixMilli(),
				}},
			}

			mu.Lock()
			pending[reqID] = time.Now()
			mu.Unlock()

			if err := sess.writeFrame(frame); err != nil {
				mu.Lock()
				delete(pending, reqID)
				mu.Unlock()
				st.addErrors(1)
				return
			}
			st.addSent()
		}
	}()

	var deadline time.Time
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		mu.Lock()
		waiting := len(pending)
		mu.Unlock()

		select {
		case <-writerDone:
			if waiting == 0 {
				return
			}
			if deadline.IsZero() {
				deadline = time.Now().Add(cfg.Load.DrainWait)
			}
			if time.Now().After(deadline) {
				st.addErrors(waiting) // unacknowledged sends
				return
			}
		default:
		}

		f, err := sess.readFrame(500 * time.Millisecond)
		if err != nil {
			if isTimeout(err) {
				continue
			}
			st.addErrors(1)
			return
		}

		switch f.GetType() {
		case pb.FrameType_CHAT_ACK:
			mu.Lock()
			sentAt, ok := pending[f.GetRequestId()]
			if ok {
				delete(pending, f.GetRequestId())
			}
			mu.Unlock()
			if ok {
				st.recordAck(time.Since(sentAt))
			}
		case pb.FrameType_HEARTBEAT_PING:
			_ = sess.writeFrame(&pb.Frame{Type: pb.FrameType_HEARTBEAT_PONG, RequestId: f.GetRequestId()})
		case pb.FrameType_UNKNOWN:
			st.addErrors(1) // server rejected a frame
		}
	}
}

// runReceiver counts pushed messages and measures sender-to-receiver latency
// from the server-stamped timestamp.
func runReceiver(ctx context.Context, sess *wsSession, expect int, st *stats, done <-chan struct{}) {
	got := 0
	for got < expect {
		select {
		case <-ctx.Done():
			return
		case <-done:
			return
		default:
		}

		f, err := sess.readFrame(500 * time.Millisecond)
		if err != nil {
			if isTimeout(err) {
				continue
			}
			st.addErrors(1)
			return
		}

		switch f.GetType() {
		case pb.FrameType_CHAT_PUSH:
			got++
			lat := time.Duration(time.Now().UnixMilli()-f.GetChat().GetTimestamp()) * time.Millisecond
			st.recordDeliver(lat)
		case pb.FrameType_HEARTBEAT_PING:
			_ = sess.writeFrame(&pb.Frame{Type: pb.FrameType_HEARTBEAT_PONG, RequestId: f.GetRequestId()})
		case pb.FrameType_STATUS_UPDATE:
			// friend presence announcement, not counted
		}
	}
}

func isTimeout(err error) bool {
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}

type stats struct {
	mu         sync.Mutex
	sent       int
	acked      int
	delivered  int
	errors     int
	ackRTT     []time.Duration
	deliverLat []time.Duration
}

func (s *stats) addSent() {
	s.mu.Lock()
	s.sent++
	s.mu.Unlock()
}

func (s *stats) addErrors(n int) {
	s.mu.Lock()
	s.errors += n
	s.mu.Unlock()
}

func (s *stats) recordAck(d time.Duration) {
	s.mu.Lock()
	s.acked++
	s.ackRTT = append(s.ackRTT, d)
	s.mu.Unlock()
}

func (s *stats) recordDeliver(d time.Duration) {
	if d < 0 {
		d = 0 // clock skew between loadgen and server
	}
	s.mu.Lock()
	s.delivered++
	s.deliverLat = append(s.deliverLat, d)
	s.mu.Unlock()
}

func printLatency(label string, samples []time.Duration) {
	if len(samples) == 0 {
		fmt.Printf("%-10s no samples\n", label+":")
		return
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	fmt.Printf("%-10s p50=%s p95=%s max=%s\n", label+":",
		percentile(samples, 0.50).Round(time.Microsecond),
		percentile(samples, 0.95).Round(time.Microsecond),
		samples[len(samples)-1].Round(time.Microsecond))
}

// percentile expects samples sorted ascending.
func percentile(sorted []time.Duration, p float64) time.Duration {
	idx := int(math.Ceil(p*float64(len(sorted)))) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
