// ABOUTME: Tests for the chat client wrapper
// ABOUTME: Verifies offline backlog extraction and domain-failure pass-through

package client

import (
	"context"
	"testing"

	"google.golang.org/grpc"

	pb "github.com/myluster/TinyIM/proto/im"
)

// fakeChatRPC overrides only the methods under test; anything else panics.
type fakeChatRPC struct {
	pb.ChatServiceClient

	saveResp    *pb.SaveMessageResponse
	offlineResp *pb.GetOfflineMessagesResponse
	ackCalls    []*pb.AckMessagesRequest
	calls       int
}

func (f *fakeChatRPC) SaveMessage(ctx context.Context, in *pb.SaveMessageRequest, opts ...grpc.CallOption) (*pb.SaveMessageResponse, error) {
	f.calls++
	return f.saveResp, nil
}

func (f *fakeChatRPC) GetOfflineMessages(ctx context.Context, in *pb.GetOfflineMessagesRequest, opts ...grpc.CallOption) (*pb.GetOfflineMessagesResponse, error) {
	f.calls++
	return f.offlineResp, nil
}

func (f *fakeChatRPC) AckMessages(ctx context.Context, in *pb.AckMessagesRequest, opts ...grpc.CallOption) (*pb.AckMessagesResponse, error) {
	f.calls++
	f.ackCalls = append(f.ackCalls, in)
	return &pb.AckMessagesResponse{Success: true}, nil
}

func TestChat_SaveMessage_DomainFailurePassesThrough(t *testing.T) {
	rpc := &fakeChatRPC{saveResp: &pb.SaveMessageResponse{Success: false, ErrorMsg: "content required"}}
	c := &Chat{rpc: rpc}

	resp, err := c.SaveMessage(context.Background(), &pb.SaveMessageRequest{FromUserId: 1, ToUserId: 2})
	if err != nil {
		t.Fatalf("SaveMessage() error = %v", err)
	}
	if resp.GetSuccess() {
		t.Error("SaveMessage() reported success for a rejected message")
	}
	if rpc.calls != 1 {
		t.Errorf("calls = %d, want 1 (domain failures must not retry)", rpc.calls)
	}
}

func TestChat_GetOfflineMessages(t *testing.T) {
	rpc := &fakeChatRPC{offlineResp: &pb.GetOfflineMessagesResponse{
		Success: true,
		Messages: []*pb.MessageRecord{
			{MsgId: 10, FromUserId: 2, ToUserId: 1, Content: "hi"},
			{MsgId: 11, FromUserId: 2, ToUserId: 1, Content: "there"},
		},
	}}
	c := &Chat{rpc: rpc}

	msgs, err := c.GetOfflineMessages(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetOfflineMessages() error = %v", err)
	}
	if len(msgs) != 2 || msgs[0].GetMsgId() != 10 || msgs[1].GetMsgId() != 11 {
		t.Errorf("messages = %v, want ids [10 11]", msgs)
	}
}

func TestChat_AckMessages(t *testing.T) {
	rpc := &fakeChatRPC{}
	c := &Chat{rpc: rpc}

	if err := c.AckMessages(context.Background(), 1, 2); err != nil {
		t.Fatalf("AckMessages() error = %v", err)
	}
	if len(rpc.ackCalls) != 1 || rpc.ackCalls[0].GetUserId() != 1 || rpc.ackCalls[0].GetPeerId() != 2 {
		t.Errorf("ack calls = %v, want one for user 1 peer 2", rpc.ackCalls)
	}
}
