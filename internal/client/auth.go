// ABOUTME: Typed wrapper around the AuthService gRPC client
// ABOUTME: Serves the gateway's join-time token check and the REST pass-through

package client

import (
	"context"

	"google.golang.org/grpc"

	pb "github.com/myluster/TinyIM/proto/im"
)

// Auth wraps the auth service client with the retry-once policy.
type Auth struct {
	rpc pb.AuthServiceClient
}

// NewAuth creates an auth client on an established connection.
func NewAuth(conn grpc.ClientConnInterface) *Auth {
	return &Auth{rpc: pb.NewAuthServiceClient(conn)}
}

func (c *Auth) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	var resp *pb.RegisterResponse
	err := withRetry(ctx, func(ctx context.Context) error {
		var err error
		resp, err = c.rpc.Register(ctx, req)
		return err
	})
	return resp, err
}

func (c *Auth) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	var resp *pb.LoginResponse
	err := withRetry(ctx, func(ctx context.Context) error {
		var err error
		resp, err = c.rpc.Login(ctx, req)
		return err
	})
	return resp, err
}

// VerifyToken resolves an opaque token to its user ID. A rejected token comes
// back as Success=false, not as an error.
func (c *Auth) VerifyToken(ctx context.Context, token string) (*pb.VerifyTokenResponse, error) {
	var resp *pb.VerifyTokenResponse
	err := withRetry(ctx, func(ctx context.Context) error {
		var err error
		resp, err = c.rpc.VerifyToken(ctx, &pb.VerifyTokenRequest{Token: token})
		return err
	})
	return resp, err
}

func (c *Auth) AddFriend(ctx context.Context, req *pb.AddFriendRequest) (*pb.AddFriendResponse, error) {
	var resp *pb.AddFriendResponse
	err := withRetry(ctx, func(ctx context.Context) error {
		var err error
		resp, err = c.rpc.AddFriend(ctx, req)
		return err
	})
	return resp, err
}

func (c *Auth) GetFriendList(ctx context.Context, req *pb.GetFriendListRequest) (*pb.GetFriendListResponse, error) {
	var resp *pb.GetFriendListResponse
	err := withRetry(ctx, func(ctx context.Context) error {
		var err error
		resp, err = c.rpc.GetFriendList(ctx, req)
		return err
	})
	return resp, err
}

func (c *Auth) GetPendingFriendRequests(ctx context.Context, req *pb.GetPendingFriendRequestsRequest) (*pb.GetPendingFriendRequestsResponse, error) {
	var resp *pb.GetPendingFriendRequestsResponse
	err := withRetry(ctx, func(ctx context.Context) error {
		var err error
		resp, err = c.rpc.GetPendingFriendRequests(ctx, req)
		return err
	})
	return resp, err
}

func (c *Auth) HandleFriendRequest(ctx context.Context, req *pb.HandleFriendRequestRequest) (*pb.HandleFriendRequestResponse, error) {
	var resp *pb.HandleFriendRequestResponse
	err := withRetry(ctx, func(ctx context.Context) error {
		var err error
		resp, err = c.rpc.HandleFriendRequest(ctx, req)
		return err
	})
	return resp, err
}

func (c *Auth) DeleteFriend(ctx context.Context, req *pb.DeleteFriendRequest) (*pb.DeleteFriendResponse, error) {
	var resp *pb.DeleteFriendResponse
	err := withRetry(ctx, func(ctx context.Context) error {
		var err error
		resp, err = c.rpc.DeleteFriend(ctx, req)
		return err
	})
	return resp, err
}
