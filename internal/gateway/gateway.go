// ABOUTME: Edge gateway orchestrator: HTTP server, bus subscription, reconciler.
// ABOUTME: Wires the session table, worker pool and backing-service clients.

package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"google.golang.org/grpc"

	"github.com/myluster/TinyIM/internal/client"
	"github.com/myluster/TinyIM/internal/config"
	"github.com/myluster/TinyIM/internal/routing"
	"github.com/myluster/TinyIM/internal/store"
	pb "github.com/myluster/TinyIM/proto/im"
)

// Collaborator interfaces, satisfied by the internal/client wrappers. They
// keep the gateway testable with scripted fakes.

type authClient interface {
	Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error)
	Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error)
	VerifyToken(ctx context.Context, token string) (*pb.VerifyTokenResponse, error)
	AddFriend(ctx context.Context, req *pb.AddFriendRequest) (*pb.AddFriendResponse, error)
	GetFriendList(ctx context.Context, req *pb.GetFriendListRequest) (*pb.GetFriendListResponse, error)
	GetPendingFriendRequests(ctx context.Context, req *pb.GetPendingFriendRequestsRequest) (*pb.GetPendingFriendRequestsResponse, error)
	HandleFriendRequest(ctx context.Context, req *pb.HandleFriendRequestRequest) (*pb.HandleFriendRequestResponse, error)
	DeleteFriend(ctx context.Context, req *pb.DeleteFriendRequest) (*pb.DeleteFriendResponse, error)
}

type chatClient interface {
	SaveMessage(ctx context.Context, req *pb.SaveMessageRequest) (*pb.SaveMessageResponse, error)
	GetHistory(ctx context.Context, req *pb.GetHistoryRequest) (*pb.GetHistoryResponse, error)
	GetRecentSessions(ctx context.Context, req *pb.GetRecentSessionsRequest) (*pb.GetRecentSessionsResponse, error)
	GetOfflineMessages(ctx context.Context, userID int64) ([]*pb.MessageRecord, error)
	AckMessages(ctx context.Context, userID, peerID int64) error
}

type presenceClient interface {
	Login(ctx context.Context, userID int64) ([]int64, error)
	Logout(ctx context.Context, userID int64) error
}

type frameRouter interface {
	PublishToUser(ctx context.Context, userID int64, frame []byte) (bool, error)
}

type directoryClient interface {
	Register(ctx context.Context, userID int64, gatewayID string) error
	Deregister(ctx context.Context, userID int64, gatewayID string) error
	Routes(ctx context.Context) (map[int64]string, error)
}

// Gateway is one edge node. It terminates WebSocket sessions, fronts the
// REST API, and exchanges frames with peer edges over the routing plane.
type Gateway struct {
	cfg    *config.Config
	id     string
	logger *slog.Logger

	table   *sessionTable
	pool    *pond.WorkerPool
	metrics *metrics
	promReg *prometheus.Registry

	auth      authClient
	chat      chatClient
	presence  presenceClient
	router    frameRouter
	directory directoryClient
	bus       *routing.Bus

	httpServer *http.Server
	cron       *cron.Cron
	sub        *routing.Subscription
	ready      atomic.Bool

	// wsWG counts live handleWS goroutines. Their disconnect cleanup
	// deregisters routes and logs presence out, so Shutdown waits for it
	// before the transports close.
	wsWG sync.WaitGroup

	rdb   *redis.Client
	conns []*grpc.ClientConn
}

// deps bundles the collaborators a Gateway needs. New builds them from
// configuration; tests substitute fakes.
type deps struct {
	auth      authClient
	chat      chatClient
	presence  presenceClient
	router    frameRouter
	directory directoryClient
	bus       *routing.Bus
}

func newGateway(cfg *config.Config, d deps, logger *slog.Logger) *Gateway {
	id := cfg.Gateway.ID
	if id == "" {
		id = generateEdgeID()
	}
	reg := prometheus.NewRegistry()
	g := &Gateway{
		cfg:       cfg,
		id:        id,
		logger:    logger.With("component", "gateway", "edge_id", id),
		table:     newSessionTable(),
		metrics:   newMetrics(reg),
		promReg:   reg,
		auth:      d.auth,
		chat:      d.chat,
		presence:  d.presence,
		router:    d.router,
		directory: d.directory,
		bus:       d.bus,
	}
	g.pool = pond.New(cfg.Gateway.WorkerPool, cfg.Gateway.WorkerQueue, pond.PanicHandler(func(p interface{}) {
		g.logger.Error("worker panic", "panic", p)
	}))
	g.httpServer = &http.Server{
		Addr:              cfg.Gateway.HTTPAddr,
		Handler:           g.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return g
}

// New assembles a gateway from configuration: Redis for the routing plane
// and gRPC connections to the auth, chat and presence services.
func New(cfg *config.Config, logger *slog.Logger) (*Gateway, error) {
	rdb := store.NewRedisClient(cfg.Redis)

	authConn, err := client.Dial(cfg.Services.AuthAddr)
	if err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}
	chatConn, err := client.Dial(cfg.Services.ChatAddr)
	if err != nil {
		return nil, fmt.Errorf("chat service: %w", err)
	}
	presenceConn, err := client.Dial(cfg.Services.PresenceAddr)
	if err != nil {
		return nil, fmt.Errorf("presence service: %w", err)
	}

	directory := routing.NewDirectory(rdb)
	bus := routing.NewBus(rdb)

	g := newGateway(cfg, deps{
		auth:      client.NewAuth(authConn),
		chat:      client.NewChat(chatConn),
		presence:  client.NewPresence(presenceConn),
		router:    routing.NewRouter(directory, bus),
		directory: directory,
		bus:       bus,
	}, logger)
	g.rdb = rdb
	g.conns = []*grpc.ClientConn{authConn, chatConn, presenceConn}
	return g, nil
}

// ID returns the edge identifier used in the routing directory.
func (g *Gateway) ID() string {
	return g.id
}

func (g *Gateway) routes() http.Handler {
	mux := http.NewServeMux()

	wsPath := g.cfg.Gateway.WSPath
	if wsPath == "" {
		wsPath = "/ws"
	}
	mux.HandleFunc(wsPath, g.handleWS)

	mux.HandleFunc("/healthz", g.handleHealthz)
	mux.HandleFunc("/readyz", g.handleReadyz)
	if g.cfg.Metrics.Enabled {
		path := g.cfg.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		mux.Handle(path, promhttp.HandlerFor(g.promReg, promhttp.HandlerOpts{}))
	}

	mux.HandleFunc("/api/v1/register", g.handleRegister)
	mux.HandleFunc("/api/v1/login", g.handleLogin)
	mux.Handle("/api/v1/friends", g.requireAuth(g.handleFriends))
	mux.Handle("/api/v1/friends/requests", g.requireAuth(g.handleFriendRequests))
	mux.Handle("/api/v1/friends/add", g.requireAuth(g.handleAddFriend))
	mux.Handle("/api/v1/friends/handle", g.requireAuth(g.handleHandleFriendRequest))
	mux.Handle("/api/v1/friends/delete", g.requireAuth(g.handleDeleteFriend))
	mux.Handle("/api/v1/messages/history", g.requireAuth(g.handleHistory))
	mux.Handle("/api/v1/messages/ack", g.requireAuth(g.handleAck))
	mux.Handle("/api/v1/sessions", g.requireAuth(g.handleRecentSessions))

	return mux
}

// Run starts the gateway and blocks until ctx is canceled or the server
// fails, then shuts down gracefully.
func (g *Gateway) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", g.cfg.Gateway.HTTPAddr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", g.cfg.Gateway.HTTPAddr, err)
	}

	if g.bus != nil {
		sub, err := g.bus.Subscribe(ctx, g.id)
		if err != nil {
			_ = ln.Close()
			return fmt.Errorf("subscribing to edge topic: %w", err)
		}
		g.sub = sub
		go g.consumeBus(sub.Deliveries())
	}
	g.ready.Store(true)

	g.startReconciler()

	errCh := g.startServer(ln)
	serverErr := g.waitForShutdownSignal(ctx, errCh)

	shutdownErr := g.gracefulShutdown()
	if serverErr != nil {
		return serverErr
	}
	return shutdownErr
}

// startReconciler schedules the periodic directory repair job.
func (g *Gateway) startReconciler() {
	if g.cfg.Gateway.ReconcileInterval <= 0 {
		return
	}
	g.cron = cron.New()
	spec := fmt.Sprintf("@every %s", g.cfg.Gateway.ReconcileInterval)
	if _, err := g.cron.AddFunc(spec, g.reconcile); err != nil {
		g.logger.Warn("scheduling reconciler", "error", err)
		g.cron = nil
		return
	}
	g.cron.Start()
	g.logger.Info("directory reconciler scheduled", "interval", g.cfg.Gateway.ReconcileInterval.String())
}

// startServer serves HTTP in a goroutine and returns its error channel.
func (g *Gateway) startServer(ln net.Listener) chan error {
	errCh := make(chan error, 1)
	go func() {
		g.logger.Info("edge gateway listening", "addr", ln.Addr().String())
		if err := g.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server: %w", err)
		}
	}()
	return errCh
}

// waitForShutdownSignal blocks until the context is canceled or the server
// reports an error.
func (g *Gateway) waitForShutdownSignal(ctx context.Context, errCh chan error) error {
	select {
	case <-ctx.Done():
		g.logger.Info("context canceled, initiating shutdown")
		return nil
	case err := <-errCh:
		g.logger.Error("server error", "error", err)
		return err
	}
}

// gracefulShutdown runs Shutdown with a fresh context; the run context is
// already canceled by the time this is called.
func (g *Gateway) gracefulShutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return g.Shutdown(ctx)
}

// appendCloseError appends err under label when it is non-nil.
func appendCloseError(errs []error, label string, err error) []error {
	if err != nil {
		return append(errs, fmt.Errorf("%s: %w", label, err))
	}
	return errs
}

// Shutdown stops the HTTP server, tears down every session, waits for
// in-flight persistence work, and releases the routing-plane connections.
func (g *Gateway) Shutdown(ctx context.Context) error {
	g.logger.Info("shutting down gateway")
	g.ready.Store(false)

	if g.cron != nil {
		g.cron.Stop()
	}

	var errs []error
	errs = appendCloseError(errs, "HTTP shutdown", g.httpServer.Shutdown(ctx))

	// WebSocket connections are hijacked, so the HTTP shutdown above does
	// not touch them. Tear the sessions down directly, then wait for each
	// handleWS goroutine to finish its disconnect cleanup: the directory
	// must not keep routes to an edge that is gone.
	for _, s := range g.table.Sessions() {
		s.teardown()
	}
	errs = appendCloseError(errs, "session drain", g.drainSessions(ctx))

	if g.sub != nil {
		errs = appendCloseError(errs, "bus unsubscribe", g.sub.Close())
	}

	// Accepted chat sends finish persisting before the pool stops.
	g.pool.StopAndWait()

	for _, conn := range g.conns {
		errs = appendCloseError(errs, "grpc close", conn.Close())
	}
	if g.rdb != nil {
		errs = appendCloseError(errs, "redis close", g.rdb.Close())
	}

	if len(errs) > 0 {
		return fmt.Errorf("shutdown errors: %v", errs)
	}
	g.logger.Info("gateway shutdown complete")
	return nil
}

// drainSessions blocks until every handleWS goroutine has exited, bounded
// by ctx.
func (g *Gateway) drainSessions(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		g.wsWG.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// generateEdgeID creates a unique identifier for an edge instance that was
// not given one in configuration.
func generateEdgeID() string {
	return fmt.Sprintf("edge-%s", uuid.NewString()[:8])
}
