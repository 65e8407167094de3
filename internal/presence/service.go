// ABOUTME: PresenceService gRPC implementation tracking online flags in redis
// ABOUTME: Status transitions fan out as STATUS_UPDATE frames to the user's friends

package presence

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"github.com/myluster/TinyIM/internal/store"
	pb "github.com/myluster/TinyIM/proto/im"
)

const (
	statusKeyPrefix = "user:status:"
	statusOnline    = "1"
	statusOffline   = "0"

	flushTimeout = 5 * time.Second
)

// statusRedis is the slice of the redis API status flags need
type statusRedis interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	MGet(ctx context.Context, keys ...string) *redis.SliceCmd
}

// friendLister reads a user's friends from the database
type friendLister interface {
	ListFriends(ctx context.Context, userID int64, c store.Consistency) ([]store.Friend, error)
}

// frameRouter forwards a frame to whichever node serves the target user
type frameRouter interface {
	PublishToUser(ctx context.Context, userID int64, frame []byte) (bool, error)
}

// Service implements the presence RPCs
type Service struct {
	pb.UnimplementedPresenceServiceServer

	redis    statusRedis
	friends  friendLister
	router   frameRouter
	debounce *Debouncer
	logger   *slog.Logger
	now      func() time.Time
}

// NewService builds the presence service. grace is how long a logout is
// held back waiting for a reconnect.
func NewService(r statusRedis, friends friendLister, router frameRouter, grace time.Duration) *Service {
	return &Service{
		redis:    r,
		friends:  friends,
		router:   router,
		debounce: NewDebouncer(grace),
		logger:   slog.Default().With("component", "presence"),
		now:      time.Now,
	}
}

// Close cancels pending logout timers
func (s *Service) Close() {
	s.debounce.Stop()
}

// Login marks the user online, cancels any pending logout, and tells the
// user's friends. The response lists which friends are online right now so
// the caller can seed the fresh session.
func (s *Service) Login(ctx context.Context, req *pb.PresenceLoginRequest) (*pb.PresenceLoginResponse, error) {
	userID := req.GetUserId()
	if userID == 0 {
		return &pb.PresenceLoginResponse{Success: false, ErrorMsg: "user_id is required"}, nil
	}

	// A reconnect inside the grace window swallows the offline flap
	cancelled := s.debounce.Cancel(userID)

	was, err := s.redis.Get(ctx, statusKey(userID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, status.Errorf(codes.Internal, "reading status: %v", err)
	}
	if err := s.redis.Set(ctx, statusKey(userID), statusOnline, 0).Err(); err != nil {
		return nil, status.Errorf(codes.Internal, "writing status: %v", err)
	}

	friends, err := s.friends.ListFriends(ctx, userID, store.Strong)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "listing friends: %v", err)
	}

	online, err := s.onlineSet(ctx, friendIDs(friends))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "reading friend statuses: %v", err)
	}

	onlineFriends := make([]int64, 0, len(friends))
	for _, f := range friends {
		if online[f.UserID] {
			onlineFriends = append(onlineFriends, f.UserID)
		}
	}

	// Still marked online (reconnect, displacement): friends saw no change
	if was != statusOnline {
		s.broadcast(ctx, userID, onlineFriends, true)
	}

	resp := &pb.PresenceLoginResponse{Success: true, OnlineFriendIds: onlineFriends}

	s.logger.Info("presence login",
		"user_id", userID,
		"online_friends", len(resp.OnlineFriendIds),
		"cancelled_logout", cancelled)
	return resp, nil
}

// Logout schedules the user's offline transition after the grace period
func (s *Service) Logout(ctx context.Context, req *pb.PresenceLogoutRequest) (*pb.PresenceLogoutResponse, error) {
	userID := req.GetUserId()
	if userID == 0 {
		return &pb.PresenceLogoutResponse{Success: false, ErrorMsg: "user_id is required"}, nil
	}

	s.debounce.Schedule(userID, func(gen uint64) { s.flushOffline(userID, gen) })
	s.logger.Debug("presence logout scheduled", "user_id", userID)
	return &pb.PresenceLogoutResponse{Success: true}, nil
}

// GetStatus reports the online flag for each requested user
func (s *Service) GetStatus(ctx context.Context, req *pb.GetStatusRequest) (*pb.GetStatusResponse, error) {
	online, err := s.onlineSet(ctx, req.GetUserIds())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "reading statuses: %v", err)
	}

	resp := &pb.GetStatusResponse{Success: true}
	for _, id := range req.GetUserIds() {
		resp.Statuses = append(resp.Statuses, &pb.StatusEntry{UserId: id, Online: online[id]})
	}
	return resp, nil
}

// flushOffline runs once the grace period expires with no reconnect. The
// offline write happens under Guard: a Login racing in either invalidates
// the generation first, skipping the write entirely, or waits for it and
// overwrites it, so the user never ends up stuck offline.
func (s *Service) flushOffline(userID int64, gen uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	var setErr error
	if !s.debounce.Guard(userID, gen, func() {
		setErr = s.redis.Set(ctx, statusKey(userID), statusOffline, 0).Err()
	}) {
		s.logger.Debug("logout flush superseded by login", "user_id", userID)
		return
	}
	if setErr != nil {
		s.logger.Error("writing offline status", "user_id", userID, "error", setErr)
		return
	}

	friends, err := s.friends.ListFriends(ctx, userID, store.Eventual)
	if err != nil {
		s.logger.Error("listing friends for offline fanout", "user_id", userID, "error", err)
		return
	}

	online, err := s.onlineSet(ctx, friendIDs(friends))
	if err != nil {
		s.logger.Error("reading friend statuses for offline fanout", "user_id", userID, "error", err)
		return
	}
	targets := make([]int64, 0, len(friends))
	for _, f := range friends {
		if online[f.UserID] {
			targets = append(targets, f.UserID)
		}
	}

	// A login that slipped in after the write has already re-asserted
	// online and told friends; the offline fanout would only confuse them.
	if !s.debounce.Current(userID, gen) {
		return
	}

	s.broadcast(ctx, userID, targets, false)
	s.logger.Info("presence logout flushed", "user_id", userID, "notified", len(targets))
}

// broadcast fans one STATUS_UPDATE out to each currently-online friend
func (s *Service) broadcast(ctx context.Context, userID int64, targets []int64, online bool) {
	var st int32
	if online {
		st = 1
	}
	frame := &pb.Frame{
		Type: pb.FrameType_STATUS_UPDATE,
		Payload: &pb.Frame_Status{Status: &pb.StatusData{
			UserId:    userID,
			Status:    st,
			Timestamp: s.now().UnixMilli(),
		}},
	}
	raw, err := proto.Marshal(frame)
	if err != nil {
		s.logger.Error("marshaling status frame", "user_id", userID, "error", err)
		return
	}

	for _, friendID := range targets {
		if _, err := s.router.PublishToUser(ctx, friendID, raw); err != nil {
			s.logger.Warn("status fanout failed", "user_id", userID, "friend_id", friendID, "error", err)
		}
	}
}

// onlineSet resolves a batch of users to their online flags in one MGET
func (s *Service) onlineSet(ctx context.Context, ids []int64) (map[int64]bool, error) {
	online := make(map[int64]bool, len(ids))
	if len(ids) == 0 {
		return online, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = statusKey(id)
	}
	vals, err := s.redis.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		online[ids[i]] = v == statusOnline
	}
	return online, nil
}

func friendIDs(friends []store.Friend) []int64 {
	ids := make([]int64, len(friends))
	for i, f := range friends {
		ids[i] = f.UserID
	}
	return ids
}

func statusKey(userID int64) string {
	return statusKeyPrefix + strconv.FormatInt(userID, 10)
}
