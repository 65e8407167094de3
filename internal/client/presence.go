// ABOUTME: Typed wrapper around the PresenceService gRPC client
// ABOUTME: Collapses in-band failures into errors; used by gateway and auth service

package client

import (
	"context"
	"fmt"

	"google.golang.org/grpc"

	pb "github.com/myluster/TinyIM/proto/im"
)

// Presence wraps the presence service client with the retry-once policy.
type Presence struct {
	rpc pb.PresenceServiceClient
}

// NewPresence creates a presence client on an established connection.
func NewPresence(conn grpc.ClientConnInterface) *Presence {
	return &Presence{rpc: pb.NewPresenceServiceClient(conn)}
}

// Login marks the user online and returns the IDs of friends currently
// online, which the gateway turns into seed STATUS_UPDATE frames.
func (c *Presence) Login(ctx context.Context, userID int64) ([]int64, error) {
	var resp *pb.PresenceLoginResponse
	err := withRetry(ctx, func(ctx context.Context) error {
		var err error
		resp, err = c.rpc.Login(ctx, &pb.PresenceLoginRequest{UserId: userID})
		return err
	})
	if err != nil {
		return nil, err
	}
	if !resp.GetSuccess() {
		return nil, fmt.Errorf("presence login: %s", resp.GetErrorMsg())
	}
	return resp.GetOnlineFriendIds(), nil
}

// Logout starts the offline grace window for the user.
func (c *Presence) Logout(ctx context.Context, userID int64) error {
	var resp *pb.PresenceLogoutResponse
	err := withRetry(ctx, func(ctx context.Context) error {
		var err error
		resp, err = c.rpc.Logout(ctx, &pb.PresenceLogoutRequest{UserId: userID})
		return err
	})
	if err != nil {
		return err
	}
	if !resp.GetSuccess() {
		return fmt.Errorf("presence logout: %s", resp.GetErrorMsg())
	}
	return nil
}

// GetStatus reports online state for each requested user. Users absent from
// the result were never seen by presence and count as offline.
func (c *Presence) GetStatus(ctx context.Context, userIDs []int64) (map[int64]bool, error) {
	if len(userIDs) == 0 {
		return map[int64]bool{}, nil
	}
	var resp *pb.GetStatusResponse
	err := withRetry(ctx, func(ctx context.Context) error {
		var err error
		resp, err = c.rpc.GetStatus(ctx, &pb.GetStatusRequest{UserIds: userIDs})
		return err
	})
	if err != nil {
		return nil, err
	}
	if !resp.GetSuccess() {
		return nil, fmt.Errorf("presence status: %s", resp.GetErrorMsg())
	}
	statuses := make(map[int64]bool, len(resp.GetStatuses()))
	for _, entry := range resp.GetStatuses() {
		statuses[entry.GetUserId()] = entry.GetOnline()
	}
	return statuses, nil
}
