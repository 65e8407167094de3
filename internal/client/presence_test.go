// ABOUTME: Tests for the presence client wrapper
// ABOUTME: Verifies online-friend extraction, status maps, and restart retry

package client

import (
	"context"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/myluster/TinyIM/proto/im"
)

type fakePresenceRPC struct {
	loginResp    *pb.PresenceLoginResponse
	logoutResp   *pb.PresenceLogoutResponse
	statusResp   *pb.GetStatusResponse
	failuresLeft int
	calls        int
}

func (f *fakePresenceRPC) unavailable() error {
	if f.failuresLeft > 0 {
		f.failuresLeft--
		return status.Error(codes.Unavailable, "backend restarting")
	}
	return nil
}

func (f *fakePresenceRPC) Login(ctx context.Context, in *pb.PresenceLoginRequest, opts ...grpc.CallOption) (*pb.PresenceLoginResponse, error) {
	f.calls++
	if err := f.unavailable(); err != nil {
		return nil, err
	}
	return f.loginResp, nil
}

func (f *fakePresenceRPC) Logout(ctx context.Context, in *pb.PresenceLogoutRequest, opts ...grpc.CallOption) (*pb.PresenceLogoutResponse, error) {
	f.calls++
	if err := f.unavailable(); err != nil {
		return nil, err
	}
	return f.logoutResp, nil
}

func (f *fakePresenceRPC) GetStatus(ctx context.Context, in *pb.GetStatusRequest, opts ...grpc.CallOption) (*pb.GetStatusResponse, error) {
	f.calls++
	if err := f.unavailable(); err != nil {
		return nil, err
	}
	return f.statusResp, nil
}

func TestPresence_Login_ReturnsOnlineFriends(t *testing.T) {
	rpc := &fakePresenceRPC{loginResp: &pb.PresenceLoginResponse{
		Success:         true,
		OnlineFriendIds: []int64{2, 5},
	}}
	c := &Presence{rpc: rpc}

	online, err := c.Login(context.Background(), 1)
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if len(online) != 2 || online[0] != 2 || online[1] != 5 {
		t.Errorf("online friends = %v, want [2 5]", online)
	}
}

func TestPresence_Login_RetriesAfterRestart(t *testing.T) {
	rpc := &fakePresenceRPC{
		loginResp:    &pb.PresenceLoginResponse{Success: true},
		failuresLeft: 1,
	}
	c := &Presence{rpc: rpc}

	if _, err := c.Login(context.Background(), 1); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if rpc.calls != 2 {
		t.Errorf("calls = %d, want 2", rpc.calls)
	}
}

func TestPresence_Logout_DomainFailure(t *testing.T) {
	rpc := &fakePresenceRPC{logoutResp: &pb.PresenceLogoutResponse{
		Success:  false,
		ErrorMsg: "redis unreachable",
	}}
	c := &Presence{rpc: rpc}

	err := c.Logout(context.Background(), 1)
	if err == nil {
		t.Fatal("Logout() error = nil, want error")
	}
}

func TestPresence_GetStatus_MapsEntries(t *testing.T) {
	rpc := &fakePresenceRPC{statusResp: &pb.GetStatusResponse{
		Success: true,
		Statuses: []*pb.StatusEntry{
			{UserId: 2, Online: true},
			{UserId: 3, Online: false},
		},
	}}
	c := &Presence{rpc: rpc}

	statuses, err := c.GetStatus(context.Background(), []int64{2, 3})
	if err != nil {
		t.Fatalf("GetStatus() error = %v", err)
	}
	if !statuses[2] || statuses[3] {
		t.Errorf("statuses = %v, want 2 online and 3 offline", statuses)
	}
}

func TestPresence_GetStatus_NoIDsSkipsRPC(t *testing.T) {
	rpc := &fakePresenceRPC{}
	c := &Presence{rpc: rpc}

	statuses, err := c.GetStatus(context.Background(), nil)
	if err != nil {
		t.Fatalf("GetStatus() error = %v", err)
	}
	if len(statuses) != 0 {
		t.Errorf("statuses = %v, want empty", statuses)
	}
	if rpc.calls != 0 {
		t.Errorf("calls = %d, want 0", rpc.calls)
	}
}
