// ABOUTME: Shared fakes and helpers for gateway tests, plus shutdown coverage.
// ABOUTME: Fakes script the auth, chat, presence, routing and directory collaborators.

package gateway

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myluster/TinyIM/internal/config"
	pb "github.com/myluster/TinyIM/proto/im"
)

type fakeAuth struct {
	verifyFn   func(ctx context.Context, token string) (*pb.VerifyTokenResponse, error)
	registerFn func(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error)
	loginFn    func(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error)
	friendsFn  func(ctx context.Context, req *pb.GetFriendListRequest) (*pb.GetFriendListResponse, error)
	addFn      func(ctx context.Context, req *pb.AddFriendRequest) (*pb.AddFriendResponse, error)
	pendingFn  func(ctx context.Context, req *pb.GetPendingFriendRequestsRequest) (*pb.GetPendingFriendRequestsResponse, error)
	handleFn   func(ctx context.Context, req *pb.HandleFriendRequestRequest) (*pb.HandleFriendRequestResponse, error)
	deleteFn   func(ctx context.Context, req *pb.DeleteFriendRequest) (*pb.DeleteFriendResponse, error)
}

func (f *fakeAuth) VerifyToken(ctx context.Context, token string) (*pb.VerifyTokenResponse, error) {
	if f.verifyFn != nil {
		return f.verifyFn(ctx, token)
	}
	return &pb.VerifyTokenResponse{Success: true, UserId: 1}, nil
}

func (f *fakeAuth) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	if f.registerFn != nil {
		return f.registerFn(ctx, req)
	}
	return &pb.RegisterResponse{Success: true, UserId: 1}, nil
}

func (f *fakeAuth) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, req)
	}
	return &pb.LoginResponse{Success: true, UserId: 1, Token: "tok"}, nil
}

func (f *fakeAuth) GetFriendList(ctx context.Context, req *pb.GetFriendListRequest) (*pb.GetFriendListResponse, error) {
	if f.friendsFn != nil {
		return f.friendsFn(ctx, req)
	}
	return &pb.GetFriendListResponse{Success: true}, nil
}

func (f *fakeAuth) AddFriend(ctx context.Context, req *pb.AddFriendRequest) (*pb.AddFriendResponse, error) {
	if f.addFn != nil {
		return f.addFn(ctx, req)
	}
	return &pb.AddFriendResponse{Success: true}, nil
}

func (f *fakeAuth) GetPendingFriendRequests(ctx context.Context, req *pb.GetPendingFriendRequestsRequest) (*pb.GetPendingFriendRequestsResponse, error) {
	if f.pendingFn != nil {
		return f.pendingFn(ctx, req)
	}
	return &pb.GetPendingFriendRequestsResponse{Success: true}, nil
}

func (f *fakeAuth) HandleFriendRequest(ctx context.Context, req *pb.HandleFriendRequestRequest) (*pb.HandleFriendRequestResponse, error) {
	if f.handleFn != nil {
		return f.handleFn(ctx, req)
	}
	return &pb.HandleFriendRequestResponse{Success: true}, nil
}

func (f *fakeAuth) DeleteFriend(ctx context.Context, req *pb.DeleteFriendRequest) (*pb.DeleteFriendResponse, error) {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, req)
	}
	return &pb.DeleteFriendResponse{Success: true}, nil
}

type fakeChat struct {
	mu        sync.Mutex
	saved     []*pb.SaveMessageRequest
	nextMsgID int64

	saveFn     func(ctx context.Context, req *pb.SaveMessageRequest) (*pb.SaveMessageResponse, error)
	offline    []*pb.MessageRecord
	offlineErr error
	historyFn  func(ctx context.Context, req *pb.GetHistoryRequest) (*pb.GetHistoryResponse, error)
	recentFn   func(ctx context.Context, req *pb.GetRecentSessionsRequest) (*pb.GetRecentSessionsResponse, error)
	ackErr     error
	acked      [][2]int64
}

func (f *fakeChat) SaveMessage(ctx context.Context, req *pb.SaveMessageRequest) (*pb.SaveMessageResponse, error) {
	if f.saveFn != nil {
		return f.saveFn(ctx, req)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextMsgID++
	f.saved = append(f.saved, req)
	return &pb.SaveMessageResponse{Success: true, MsgId: f.nextMsgID}, nil
}

func (f *fakeChat) savedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.saved)
}

func (f *fakeChat) GetHistory(ctx context.Context, req *pb.GetHistoryRequest) (*pb.GetHistoryResponse, error) {
	if f.historyFn != nil {
		return f.historyFn(ctx, req)
	}
	return &pb.GetHistoryResponse{Success: true}, nil
}

func (f *fakeChat) GetRecentSessions(ctx context.Context, req *pb.GetRecentSessionsRequest) (*pb.GetRecentSessionsResponse, error) {
	if f.recentFn != nil {
		return f.recentFn(ctx, req)
	}
	return &pb.GetRecentSessionsResponse{Success: true}, nil
}

func (f *fakeChat) GetOfflineMessages(ctx context.Context, userID int64) ([]*pb.MessageRecord, error) {
	if f.offlineErr != nil {
		return nil, f.offlineErr
	}
	return f.offline, nil
}

func (f *fakeChat) AckMessages(ctx context.Context, userID, peerID int64) error {
	if f.ackErr != nil {
		return f.ackErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acked = append(f.acked, [2]int64{userID, peerID})
	return nil
}

type fakePresence struct {
	mu       sync.Mutex
	online   []int64
	loginErr error
	logins   []int64
	logouts  []int64
}

func (f *fakePresence) Login(ctx context.Context, userID int64) ([]int64, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logins = append(f.logins, userID)
	return f.online, nil
}

func (f *fakePresence) Logout(ctx context.Context, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logouts = append(f.logouts, userID)
	return nil
}

func (f *fakePresence) logoutCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.logouts)
}

type publishedFrame struct {
	userID int64
	frame  []byte
}

type fakeRouter struct {
	mu        sync.Mutex
	published []publishedFrame
	routed    bool
	err       error
}

func (f *fakeRouter) PublishToUser(ctx context.Context, userID int64, frame []byte) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.routed {
		f.published = append(f.published, publishedFrame{userID: userID, frame: frame})
	}
	return f.routed, nil
}

func (f *fakeRouter) publishedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.published)
}

type fakeDirectory struct {
	mu           sync.Mutex
	entries      map[int64]string
	registerErr  error
	registered   []int64
	deregistered []int64
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{entries: make(map[int64]string)}
}

func (f *fakeDirectory) Register(ctx context.Context, userID int64, gatewayID string) error {
	if f.registerErr != nil {
		return f.registerErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[userID] = gatewayID
	f.registered = append(f.registered, userID)
	return nil
}

func (f *fakeDirectory) Deregister(ctx context.Context, userID int64, gatewayID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.entries[userID] == gatewayID {
		delete(f.entries, userID)
	}
	f.deregistered = append(f.deregistered, userID)
	return nil
}

func (f *fakeDirectory) Routes(ctx context.Context) (map[int64]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[int64]string, len(f.entries))
	for k, v := range f.entries {
		out[k] = v
	}
	return out, nil
}

func (f *fakeDirectory) deregisteredCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.deregistered)
}

func (f *fakeDirectory) owner(userID int64) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.entries[userID]
}

// newTestGateway builds a gateway around scripted fakes. Heartbeats default
// to intervals long enough that no ping interferes with a test's frame
// stream; tests that exercise the heartbeat shrink them via opts.
func newTestGateway(t *testing.T, d deps, opts ...func(*config.Config)) *Gateway {
	t.Helper()
	if d.auth == nil {
		d.auth = &fakeAuth{}
	}
	if d.chat == nil {
		d.chat = &fakeChat{}
	}
	if d.presence == nil {
		d.presence = &fakePresence{}
	}
	if d.router == nil {
		d.router = &fakeRouter{}
	}
	if d.directory == nil {
		d.directory = newFakeDirectory()
	}

	cfg := &config.Config{}
	cfg.Gateway.ID = "edge-test"
	cfg.Gateway.HTTPAddr = "127.0.0.1:0"
	cfg.Gateway.WSPath = "/ws"
	cfg.Gateway.MaxFrameBytes = 64 * 1024
	cfg.Gateway.WorkerPool = 4
	cfg.Gateway.WorkerQueue = 64
	cfg.Gateway.HeartbeatIdle = time.Minute
	cfg.Gateway.HeartbeatDead = 2 * time.Minute
	cfg.Metrics.Enabled = true
	cfg.Metrics.Path = "/metrics"
	for _, opt := range opts {
		opt(cfg)
	}

	g := newGateway(cfg, d, slog.Default())
	t.Cleanup(g.pool.StopAndWait)
	return g
}

func TestGatewayGeneratesEdgeID(t *testing.T) {
	g := newTestGateway(t, deps{}, func(cfg *config.Config) {
		cfg.Gateway.ID = ""
	})
	assert.NotEmpty(t, g.ID())
	assert.Contains(t, g.ID(), "edge-")
}

func TestGatewayShutdownTearsDownSessions(t *testing.T) {
	g := newTestGateway(t, deps{})

	conn := newFakeWSConn()
	s := newSession(42, conn, slog.Default())
	g.table.Join(s)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, g.Shutdown(ctx))

	assert.True(t, s.closed())
	assert.True(t, conn.wasClosed())
}
