// ABOUTME: Tests for the REST surface using a live httptest server.
// ABOUTME: Auth middleware, JSON mapping, status codes and health probes.

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/myluster/TinyIM/proto/im"
)

func newAPIServer(t *testing.T, d deps) (*Gateway, *httptest.Server) {
	t.Helper()
	if d.auth == nil {
		d.auth = userTokens(map[string]int64{"alice-token": 1})
	}
	g := newTestGateway(t, d)
	srv := httptest.NewServer(g.routes())
	t.Cleanup(srv.Close)
	return g, srv
}

func doJSON(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()
	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, buf)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestRegisterEndpoint(t *testing.T) {
	auth := &fakeAuth{registerFn: func(_ context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
		if req.GetUsername() == "taken" {
			return &pb.RegisterResponse{Success: false, ErrorMsg: "username already exists"}, nil
		}
		return &pb.RegisterResponse{Success: true, UserId: 42}, nil
	}}
	_, srv := newAPIServer(t, deps{auth: auth})

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/register", "",
		RegisterRequest{Username: "alice", Password: "secret"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[RegisterResponse](t, resp)
	assert.Equal(t, int64(42), body.UserID)

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/register", "",
		RegisterRequest{Username: "taken", Password: "secret"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/register", "",
		RegisterRequest{Username: "", Password: ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/register", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestLoginEndpoint(t *testing.T) {
	auth := &fakeAuth{loginFn: func(_ context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
		if req.GetPassword() != "secret" {
			return &pb.LoginResponse{Success: false, ErrorMsg: "invalid username or password"}, nil
		}
		return &pb.LoginResponse{Success: true, UserId: 42, Token: "issued-token"}, nil
	}}
	_, srv := newAPIServer(t, deps{auth: auth})

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/login", "",
		LoginRequest{Username: "alice", Password: "secret"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[LoginResponse](t, resp)
	assert.Equal(t, int64(42), body.UserID)
	assert.Equal(t, "issued-token", body.Token)

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/login", "",
		LoginRequest{Username: "alice", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware(t *testing.T) {
	_, srv := newAPIServer(t, deps{})

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/v1/friends", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "missing token")

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/friends", "wrong-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "unknown token")

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/friends", "alice-token", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The token query parameter works too, for parity with the WebSocket.
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/friends?token=alice-token", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestFriendListEndpoint(t *testing.T) {
	auth := userTokens(map[string]int64{"alice-token": 1})
	auth.friendsFn = func(_ context.Context, req *pb.GetFriendListRequest) (*pb.GetFriendListResponse, error) {
		require.Equal(t, int64(1), req.GetUserId())
		return &pb.GetFriendListResponse{Success: true, Friends: []*pb.FriendInfo{
			{UserId: 2, Username: "bob", Nickname: "Bob", Online: true},
			{UserId: 3, Username: "carol", Online: false},
		}}, nil
	}
	_, srv := newAPIServer(t, deps{auth: auth})

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/v1/friends", "alice-token", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[FriendListResponse](t, resp)
	require.Len(t, body.Friends, 2)
	assert.Equal(t, FriendEntry{UserID: 2, Username: "bob", Nickname: "Bob", Online: true}, body.Friends[0])
	assert.False(t, body.Friends[1].Online)
}

func TestAddFriendEndpoint(t *testing.T) {
	auth := userTokens(map[string]int64{"alice-token": 1})
	auth.addFn = func(_ context.Context, req *pb.AddFriendRequest) (*pb.AddFriendResponse, error) {
		require.Equal(t, int64(1), req.GetUserId())
		if req.GetFriendId() == 99 {
			return &pb.AddFriendResponse{Success: false, ErrorMsg: "already friends"}, nil
		}
		return &pb.AddFriendResponse{Success: true}, nil
	}
	_, srv := newAPIServer(t, deps{auth: auth})

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/friends/add", "alice-token", AddFriendRequest{FriendID: 2})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/friends/add", "alice-token", AddFriendRequest{FriendID: 99})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "already friends", body["error"])

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/friends/add", "alice-token", AddFriendRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleFriendRequestEndpoint(t *testing.T) {
	auth := userTokens(map[string]int64{"alice-token": 1})
	var gotAccept bool
	auth.handleFn = func(_ context.Context, req *pb.HandleFriendRequestRequest) (*pb.HandleFriendRequestResponse, error) {
		gotAccept = req.GetAccept()
		require.Equal(t, int64(5), req.GetRequestId())
		return &pb.HandleFriendRequestResponse{Success: true}, nil
	}
	_, srv := newAPIServer(t, deps{auth: auth})

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/friends/handle", "alice-token",
		HandleFriendRequest{RequestID: 5, Accept: true})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, gotAccept)
}

func TestHistoryEndpoint(t *testing.T) {
	chat := &fakeChat{historyFn: func(_ context.Context, req *pb.GetHistoryRequest) (*pb.GetHistoryResponse, error) {
		require.Equal(t, int64(1), req.GetUserId())
		require.Equal(t, int64(2), req.GetPeerId())
		require.Equal(t, int32(5), req.GetLimit())
		return &pb.GetHistoryResponse{Success: true, Messages: []*pb.MessageRecord{
			{MsgId: 11, FromUserId: 1, ToUserId: 2, Content: "hey", Timestamp: 1000},
		}}, nil
	}}
	_, srv := newAPIServer(t, deps{chat: chat})

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/v1/messages/history?peer_id=2&limit=5", "alice-token", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[HistoryResponse](t, resp)
	require.Len(t, body.Messages, 1)
	assert.Equal(t, int64(11), body.Messages[0].MsgID)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/messages/history", "alice-token", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "peer_id is required")

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/messages/history?peer_id=2&limit=junk", "alice-token", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRecentSessionsEndpoint(t *testing.T) {
	chat := &fakeChat{recentFn: func(_ context.Context, req *pb.GetRecentSessionsRequest) (*pb.GetRecentSessionsResponse, error) {
		return &pb.GetRecentSessionsResponse{Success: true, Sessions: []*pb.SessionRecord{
			{PeerId: 2, LastMsgContent: "later!", LastMsgTimestamp: 2000, UnreadCount: 3},
		}}, nil
	}}
	_, srv := newAPIServer(t, deps{chat: chat})

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/v1/sessions", "alice-token", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[SessionListResponse](t, resp)
	require.Len(t, body.Sessions, 1)
	assert.Equal(t, SessionEntry{PeerID: 2, LastMsgContent: "later!", LastMsgTimestamp: 2000, UnreadCount: 3}, body.Sessions[0])
}

func TestAckEndpoint(t *testing.T) {
	chat := &fakeChat{}
	_, srv := newAPIServer(t, deps{chat: chat})

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/messages/ack", "alice-token", AckRequest{PeerID: 2})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	chat.mu.Lock()
	require.Len(t, chat.acked, 1)
	assert.Equal(t, [2]int64{1, 2}, chat.acked[0])
	chat.mu.Unlock()

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/messages/ack", "alice-token", AckRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAckEndpointReportsChatOutage(t *testing.T) {
	chat := &fakeChat{ackErr: errors.New("replica down")}
	_, srv := newAPIServer(t, deps{chat: chat})

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/messages/ack", "alice-token", AckRequest{PeerID: 2})
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestHealthAndReadiness(t *testing.T) {
	g, srv := newAPIServer(t, deps{})

	resp := doJSON(t, http.MethodGet, srv.URL+"/healthz", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/readyz", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode, "not ready before the bus subscription")

	g.ready.Store(true)
	resp = doJSON(t, http.MethodGet, srv.URL+"/readyz", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	_, srv := newAPIServer(t, deps{})

	resp := doJSON(t, http.MethodGet, srv.URL+"/metrics", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "tinyim_gateway_sessions_active")
}
