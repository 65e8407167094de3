// ABOUTME: AuthService gRPC implementation covering accounts and the friend graph
// ABOUTME: Domain failures travel in-band as success=false; gRPC errors mean infrastructure broke

package auth

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/myluster/TinyIM/internal/store"
	pb "github.com/myluster/TinyIM/proto/im"
)

// statusClient reports which of the given users are currently online
type statusClient interface {
	GetStatus(ctx context.Context, userIDs []int64) (map[int64]bool, error)
}

// Service implements the account and friend-graph RPCs
type Service struct {
	pb.UnimplementedAuthServiceServer

	store  *store.DB
	tokens *TokenStore
	status statusClient
	logger *slog.Logger
}

// NewService builds the auth service. status may be nil in deployments
// without a presence service; friend lists then report everyone offline.
func NewService(db *store.DB, tokens *TokenStore, status statusClient) *Service {
	return &Service{
		store:  db,
		tokens: tokens,
		status: status,
		logger: slog.Default().With("component", "auth"),
	}
}

// Register creates a new account
func (s *Service) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	if req.GetUsername() == "" || req.GetPassword() == "" {
		return &pb.RegisterResponse{Success: false, ErrorMsg: "username and password are required"}, nil
	}

	hash, err := HashPassword(req.GetPassword())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "hashing password: %v", err)
	}

	userID, err := s.store.CreateUser(ctx, req.GetUsername(), hash, req.GetNickname())
	if errors.Is(err, store.ErrDuplicateUser) {
		return &pb.RegisterResponse{Success: false, ErrorMsg: "username already exists"}, nil
	}
	if err != nil {
		return nil, status.Errorf(codes.Internal, "creating user: %v", err)
	}

	s.logger.Info("user registered", "user_id", userID, "username", req.GetUsername())
	return &pb.RegisterResponse{Success: true, UserId: userID}, nil
}

// Login checks credentials and mints a session token
func (s *Service) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	user, err := s.store.GetUserByUsername(ctx, req.GetUsername(), store.Strong)
	if errors.Is(err, store.ErrNotFound) {
		// Same message as a bad password so usernames stay unguessable
		return &pb.LoginResponse{Success: false, ErrorMsg: "invalid username or password"}, nil
	}
	if err != nil {
		return nil, status.Errorf(codes.Internal, "loading user: %v", err)
	}
	if !CheckPassword(user.PasswordHash, req.GetPassword()) {
		return &pb.LoginResponse{Success: false, ErrorMsg: "invalid username or password"}, nil
	}

	token, err := s.tokens.Mint(ctx, user.ID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "minting token: %v", err)
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return &pb.LoginResponse{Success: true, UserId: user.ID, Token: token}, nil
}

// VerifyToken resolves a session token to its user
func (s *Service) VerifyToken(ctx context.Context, req *pb.VerifyTokenRequest) (*pb.VerifyTokenResponse, error) {
	userID, err := s.tokens.Verify(ctx, req.GetToken())
	if errors.Is(err, ErrInvalidToken) {
		return &pb.VerifyTokenResponse{Success: false, ErrorMsg: "invalid token"}, nil
	}
	if err != nil {
		return nil, status.Errorf(codes.Internal, "verifying token: %v", err)
	}
	return &pb.VerifyTokenResponse{Success: true, UserId: userID}, nil
}

// AddFriend records a friend request for the target user to act on
func (s *Service) AddFriend(ctx context.Context, req *pb.AddFriendRequest) (*pb.AddFriendResponse, error) {
	if req.GetUserId() == req.GetFriendId() {
		return &pb.AddFriendResponse{Success: false, ErrorMsg: "cannot befriend yourself"}, nil
	}

	// Target must exist before a request is recorded
	if _, err := s.store.GetUserByID(ctx, req.GetFriendId(), store.Strong); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &pb.AddFriendResponse{Success: false, ErrorMsg: "user does not exist"}, nil
		}
		return nil, status.Errorf(codes.Internal, "loading user: %v", err)
	}

	err := s.store.CreateFriendRequest(ctx, req.GetUserId(), req.GetFriendId())
	switch {
	case errors.Is(err, store.ErrAlreadyFriends):
		return &pb.AddFriendResponse{Success: false, ErrorMsg: "already friends"}, nil
	case errors.Is(err, store.ErrDuplicateFriendRequest):
		return &pb.AddFriendResponse{Success: false, ErrorMsg: "request already pending"}, nil
	case err != nil:
		return nil, status.Errorf(codes.Internal, "creating friend request: %v", err)
	}
	return &pb.AddFriendResponse{Success: true}, nil
}

// GetFriendList returns the user's friends with live online flags
func (s *Service) GetFriendList(ctx context.Context, req *pb.GetFriendListRequest) (*pb.GetFriendListResponse, error) {
	friends, err := s.store.ListFriends(ctx, req.GetUserId(), store.Eventual)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "listing friends: %v", err)
	}

	var online map[int64]bool
	if s.status != nil && len(friends) > 0 {
		ids := make([]int64, len(friends))
		for i, f := range friends {
			ids[i] = f.UserID
		}
		online, err = s.status.GetStatus(ctx, ids)
		if err != nil {
			// Degrade to all-offline rather than failing the listing
			s.logger.Warn("presence lookup failed", "error", err)
		}
	}

	resp := &pb.GetFriendListResponse{Success: true}
	for _, f := range friends {
		resp.Friends = append(resp.Friends, &pb.FriendInfo{
			UserId:   f.UserID,
			Username: f.Username,
			Nickname: f.Nickname,
			Online:   online[f.UserID],
		})
	}
	return resp, nil
}

// GetPendingFriendRequests returns requests awaiting the user's decision
func (s *Service) GetPendingFriendRequests(ctx context.Context, req *pb.GetPendingFriendRequestsRequest) (*pb.GetPendingFriendRequestsResponse, error) {
	reqs, err := s.store.ListPendingRequests(ctx, req.GetUserId(), store.Strong)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "listing requests: %v", err)
	}

	resp := &pb.GetPendingFriendRequestsResponse{Success: true}
	for _, r := range reqs {
		resp.Requests = append(resp.Requests, &pb.PendingFriendRequest{
			FromUserId:   r.FromUserID,
			FromUsername: r.FromUsername,
			CreatedAt:    r.CreatedAt.UnixMilli(),
		})
	}
	return resp, nil
}

// HandleFriendRequest accepts or rejects a pending request. RequestId
// carries the requesting user's ID, matching the pending listing.
func (s *Service) HandleFriendRequest(ctx context.Context, req *pb.HandleFriendRequestRequest) (*pb.HandleFriendRequestResponse, error) {
	var err error
	if req.GetAccept() {
		err = s.store.AcceptFriendRequest(ctx, req.GetUserId(), req.GetRequestId())
	} else {
		err = s.store.RejectFriendRequest(ctx, req.GetUserId(), req.GetRequestId())
	}
	if errors.Is(err, store.ErrNotFound) {
		return &pb.HandleFriendRequestResponse{Success: false, ErrorMsg: "no pending request from that user"}, nil
	}
	if err != nil {
		return nil, status.Errorf(codes.Internal, "handling friend request: %v", err)
	}

	s.logger.Info("friend request handled",
		"user_id", req.GetUserId(),
		"from_user_id", req.GetRequestId(),
		"accepted", req.GetAccept())
	return &pb.HandleFriendRequestResponse{Success: true}, nil
}

// DeleteFriend removes the friendship in both directions
func (s *Service) DeleteFriend(ctx context.Context, req *pb.DeleteFriendRequest) (*pb.DeleteFriendResponse, error) {
	if err := s.store.DeleteFriend(ctx, req.GetUserId(), req.GetFriendId()); err != nil {
		return nil, status.Errorf(codes.Internal, "deleting friend: %v", err)
	}
	return &pb.DeleteFriendResponse{Success: true}, nil
}
