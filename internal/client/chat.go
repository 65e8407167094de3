// ABOUTME: Typed wrapper around the ChatService gRPC client
// ABOUTME: Used on the gateway's send path and for offline drain at join

package client

import (
	"context"

	"google.golang.org/grpc"

	pb "github.com/myluster/TinyIM/proto/im"
)

// Chat wraps the chat service client with the retry-once policy.
type Chat struct {
	rpc pb.ChatServiceClient
}

// NewChat creates a chat client on an established connection.
func NewChat(conn grpc.ClientConnInterface) *Chat {
	return &Chat{rpc: pb.NewChatServiceClient(conn)}
}

func (c *Chat) SaveMessage(ctx context.Context, req *pb.SaveMessageRequest) (*pb.SaveMessageResponse, error) {
	var resp *pb.SaveMessageResponse
	err := withRetry(ctx, func(ctx context.Context) error {
		var err error
		resp, err = c.rpc.SaveMessage(ctx, req)
		return err
	})
	return resp, err
}

func (c *Chat) GetHistory(ctx context.Context, req *pb.GetHistoryRequest) (*pb.GetHistoryResponse, error) {
	var resp *pb.GetHistoryResponse
	err := withRetry(ctx, func(ctx context.Context) error {
		var err error
		resp, err = c.rpc.GetHistory(ctx, req)
		return err
	})
	return resp, err
}

func (c *Chat) GetRecentSessions(ctx context.Context, req *pb.GetRecentSessionsRequest) (*pb.GetRecentSessionsResponse, error) {
	var resp *pb.GetRecentSessionsResponse
	err := withRetry(ctx, func(ctx context.Context) error {
		var err error
		resp, err = c.rpc.GetRecentSessions(ctx, req)
		return err
	})
	return resp, err
}

// GetOfflineMessages returns the undelivered backlog for a user, grouped by
// conversation in the order the store assembled them.
func (c *Chat) GetOfflineMessages(ctx context.Context, userID int64) ([]*pb.MessageRecord, error) {
	var resp *pb.GetOfflineMessagesResponse
	err := withRetry(ctx, func(ctx context.Context) error {
		var err error
		resp, err = c.rpc.GetOfflineMessages(ctx, &pb.GetOfflineMessagesRequest{UserId: userID})
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp.GetMessages(), nil
}

func (c *Chat) AckMessages(ctx context.Context, userID, peerID int64) error {
	return withRetry(ctx, func(ctx context.Context) error {
		_, err := c.rpc.AckMessages(ctx, &pb.AckMessagesRequest{UserId: userID, PeerId: peerID})
		return err
	})
}
