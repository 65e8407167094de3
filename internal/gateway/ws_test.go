// ABOUTME: End-to-end WebSocket tests against a live httptest server.
// ABOUTME: Connect protocol, chat send path, heartbeats, displacement, teardown.

package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"github.com/myluster/TinyIM/internal/config"
	pb "github.com/myluster/TinyIM/proto/im"
)

// userTokens maps test tokens to user ids for the fake verifier.
func userTokens(tokens map[string]int64) *fakeAuth {
	return &fakeAuth{verifyFn: func(_ context.Context, token string) (*pb.VerifyTokenResponse, error) {
		if id, ok := tokens[token]; ok {
			return &pb.VerifyTokenResponse{Success: true, UserId: id}, nil
		}
		return &pb.VerifyTokenResponse{Success: false, ErrorMsg: "invalid token"}, nil
	}}
}

func dialWS(t *testing.T, srv *httptest.Server, token string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readFrameWS(t *testing.T, conn *websocket.Conn) *pb.Frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var frame pb.Frame
	require.NoError(t, proto.Unmarshal(data, &frame))
	return &frame
}

func writeFrameWS(t *testing.T, conn *websocket.Conn, frame *pb.Frame) {
	t.Helper()
	raw, err := proto.Marshal(frame)
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, raw))
}

func chatSend(requestID string, to int64, content string) *pb.Frame {
	return &pb.Frame{
		Type:      pb.FrameType_CHAT_SEND,
		RequestId: requestID,
		Payload:   &pb.Frame_Chat{Chat: &pb.ChatData{ToUserId: to, Content: content}},
	}
}

func TestWebSocketRejectsInvalidToken(t *testing.T) {
	g := newTestGateway(t, deps{auth: userTokens(map[string]int64{"good": 1})})
	srv := httptest.NewServer(g.routes())
	defer srv.Close()

	conn := dialWS(t, srv, "bogus")

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	var closeErr *websocket.CloseError
	require.ErrorAs(t, err, &closeErr)
	assert.Equal(t, websocket.ClosePolicyViolation, closeErr.Code)
	assert.Equal(t, "invalid token", closeErr.Text)
}

func TestWebSocketSeedsOnlineFriends(t *testing.T) {
	pres := &fakePresence{online: []int64{7, 9}}
	g := newTestGateway(t, deps{
		auth:     userTokens(map[string]int64{"alice": 1}),
		presence: pres,
	})
	srv := httptest.NewServer(g.routes())
	defer srv.Close()

	conn := dialWS(t, srv, "alice")

	for _, want := range []int64{7, 9} {
		frame := readFrameWS(t, conn)
		require.Equal(t, pb.FrameType_STATUS_UPDATE, frame.GetType())
		assert.Equal(t, want, frame.GetStatus().GetUserId())
		assert.Equal(t, int32(1), frame.GetStatus().GetStatus())
	}
}

func TestWebSocketDrainsOfflineBacklogInOrder(t *testing.T) {
	chat := &fakeChat{offline: []*pb.MessageRecord{
		{MsgId: 3, FromUserId: 2, ToUserId: 1, Content: "third", Timestamp: 200},
		{MsgId: 2, FromUserId: 2, ToUserId: 1, Content: "second", Timestamp: 100},
		{MsgId: 1, FromUserId: 2, ToUserId: 1, Content: "first", Timestamp: 100},
	}}
	g := newTestGateway(t, deps{
		auth: userTokens(map[string]int64{"alice": 1}),
		chat: chat,
	})
	srv := httptest.NewServer(g.routes())
	defer srv.Close()

	conn := dialWS(t, srv, "alice")

	// Same timestamp orders by msg_id, then later timestamps follow.
	for _, want := range []int64{1, 2, 3} {
		frame := readFrameWS(t, conn)
		require.Equal(t, pb.FrameType_CHAT_PUSH, frame.GetType())
		assert.Equal(t, want, frame.GetChat().GetMsgId())
	}

	// Draining must not acknowledge on the client's behalf.
	chat.mu.Lock()
	defer chat.mu.Unlock()
	assert.Empty(t, chat.acked)
}

func TestWebSocketChatSendAcksAfterPersist(t *testing.T) {
	chat := &fakeChat{}
	g := newTestGateway(t, deps{
		auth: userTokens(map[string]int64{"alice": 1}),
		chat: chat,
	})
	srv := httptest.NewServer(g.routes())
	defer srv.Close()

	conn := dialWS(t, srv, "alice")
	writeFrameWS(t, conn, chatSend("req-1", 2, "hello bob"))

	frame := readFrameWS(t, conn)
	require.Equal(t, pb.FrameType_CHAT_ACK, frame.GetType())
	assert.Equal(t, "req-1", frame.GetRequestId())
	assert.Equal(t, int64(1), frame.GetChat().GetMsgId())
	assert.NotZero(t, frame.GetChat().GetTimestamp())

	require.Equal(t, 1, chat.savedCount())
	chat.mu.Lock()
	saved := chat.saved[0]
	chat.mu.Unlock()
	assert.Equal(t, int64(1), saved.GetFromUserId())
	assert.Equal(t, int64(2), saved.GetToUserId())
	assert.Equal(t, "hello bob", saved.GetContent())
}

func TestWebSocketChatSendIgnoresClientTimestamp(t *testing.T) {
	chat := &fakeChat{}
	g := newTestGateway(t, deps{
		auth: userTokens(map[string]int64{"alice": 1}),
		chat: chat,
	})
	srv := httptest.NewServer(g.routes())
	defer srv.Close()

	conn := dialWS(t, srv, "alice")

	// A skewed client clock (or a hostile client) must not reorder
	// conversations: the gateway stamps its own time.
	before := time.Now().UnixMilli()
	bogus := before + 365*24*time.Hour.Milliseconds()
	writeFrameWS(t, conn, &pb.Frame{
		Type:      pb.FrameType_CHAT_SEND,
		RequestId: "req-1",
		Payload:   &pb.Frame_Chat{Chat: &pb.ChatData{ToUserId: 2, Content: "hi", Timestamp: bogus}},
	})

	ack := readFrameWS(t, conn)
	require.Equal(t, pb.FrameType_CHAT_ACK, ack.GetType())
	after := time.Now().UnixMilli()

	require.Equal(t, 1, chat.savedCount())
	chat.mu.Lock()
	saved := chat.saved[0]
	chat.mu.Unlock()
	assert.GreaterOrEqual(t, saved.GetTimestamp(), before)
	assert.LessOrEqual(t, saved.GetTimestamp(), after)
	assert.GreaterOrEqual(t, ack.GetChat().GetTimestamp(), before)
	assert.LessOrEqual(t, ack.GetChat().GetTimestamp(), after)
}

func TestWebSocketChatSendFailureReportsError(t *testing.T) {
	chat := &fakeChat{saveFn: func(context.Context, *pb.SaveMessageRequest) (*pb.SaveMessageResponse, error) {
		return nil, errors.New("primary down")
	}}
	g := newTestGateway(t, deps{
		auth: userTokens(map[string]int64{"alice": 1}),
		chat: chat,
	})
	srv := httptest.NewServer(g.routes())
	defer srv.Close()

	conn := dialWS(t, srv, "alice")
	writeFrameWS(t, conn, chatSend("req-1", 2, "doomed"))

	frame := readFrameWS(t, conn)
	assert.Equal(t, pb.FrameType_UNKNOWN, frame.GetType())
	assert.Equal(t, "req-1", frame.GetRequestId())
	assert.Equal(t, "message not persisted", frame.GetError())
}

func TestWebSocketAckOrderMatchesSendOrder(t *testing.T) {
	var msgID atomic.Int64
	chat := &fakeChat{saveFn: func(_ context.Context, req *pb.SaveMessageRequest) (*pb.SaveMessageResponse, error) {
		time.Sleep(2 * time.Millisecond) // give concurrent workers room to misbehave
		return &pb.SaveMessageResponse{Success: true, MsgId: msgID.Add(1)}, nil
	}}
	g := newTestGateway(t, deps{
		auth: userTokens(map[string]int64{"alice": 1}),
		chat: chat,
	})
	srv := httptest.NewServer(g.routes())
	defer srv.Close()

	conn := dialWS(t, srv, "alice")

	const n = 10
	for i := 0; i < n; i++ {
		writeFrameWS(t, conn, chatSend(fmt.Sprintf("req-%d", i), 2, "msg"))
	}

	var lastMsgID int64
	for i := 0; i < n; i++ {
		frame := readFrameWS(t, conn)
		require.Equal(t, pb.FrameType_CHAT_ACK, frame.GetType())
		assert.Equal(t, fmt.Sprintf("req-%d", i), frame.GetRequestId())
		assert.Greater(t, frame.GetChat().GetMsgId(), lastMsgID)
		lastMsgID = frame.GetChat().GetMsgId()
	}
}

func TestWebSocketDeliversToLocalRecipient(t *testing.T) {
	g := newTestGateway(t, deps{
		auth: userTokens(map[string]int64{"alice": 1, "bob": 2}),
	})
	srv := httptest.NewServer(g.routes())
	defer srv.Close()

	alice := dialWS(t, srv, "alice")
	bob := dialWS(t, srv, "bob")
	require.Eventually(t, func() bool { return g.table.Len() == 2 }, 2*time.Second, 10*time.Millisecond)

	writeFrameWS(t, alice, chatSend("req-1", 2, "hi bob"))

	ack := readFrameWS(t, alice)
	assert.Equal(t, pb.FrameType_CHAT_ACK, ack.GetType())

	push := readFrameWS(t, bob)
	require.Equal(t, pb.FrameType_CHAT_PUSH, push.GetType())
	assert.Equal(t, int64(1), push.GetChat().GetFromUserId())
	assert.Equal(t, "hi bob", push.GetChat().GetContent())
}

func TestWebSocketDisplacementKeepsNewSession(t *testing.T) {
	pres := &fakePresence{}
	dir := newFakeDirectory()
	g := newTestGateway(t, deps{
		auth:      userTokens(map[string]int64{"alice": 1}),
		presence:  pres,
		directory: dir,
	})
	srv := httptest.NewServer(g.routes())
	defer srv.Close()

	first := dialWS(t, srv, "alice")
	require.Eventually(t, func() bool { return dir.owner(1) == g.ID() }, 2*time.Second, 10*time.Millisecond)
	second := dialWS(t, srv, "alice")

	// The first connection is torn down by the second one's join.
	require.NoError(t, first.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := first.ReadMessage()
	require.Error(t, err)

	// The replacement stays usable.
	writeFrameWS(t, second, &pb.Frame{Type: pb.FrameType_HEARTBEAT_PING, RequestId: "hb"})
	pong := readFrameWS(t, second)
	assert.Equal(t, pb.FrameType_HEARTBEAT_PONG, pong.GetType())
	assert.Equal(t, "hb", pong.GetRequestId())

	// The displaced session's teardown must not clobber the new route or
	// announce a logout.
	require.Eventually(t, func() bool {
		return testutil.ToFloat64(g.metrics.sessionsActive) == 1
	}, 2*time.Second, 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, dir.deregisteredCount())
	assert.Equal(t, 0, pres.logoutCount())
	assert.Equal(t, g.ID(), dir.owner(1))
	assert.Equal(t, float64(1), testutil.ToFloat64(g.metrics.displacements))
}

func TestWebSocketDisconnectCleansUp(t *testing.T) {
	pres := &fakePresence{}
	dir := newFakeDirectory()
	g := newTestGateway(t, deps{
		auth:      userTokens(map[string]int64{"alice": 1}),
		presence:  pres,
		directory: dir,
	})
	srv := httptest.NewServer(g.routes())
	defer srv.Close()

	conn := dialWS(t, srv, "alice")
	require.Eventually(t, func() bool { return g.table.Len() == 1 }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool {
		return dir.deregisteredCount() == 1 && pres.logoutCount() == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Empty(t, dir.owner(1))
	assert.Equal(t, 0, g.table.Len())
}

func TestShutdownDeregistersLiveSessions(t *testing.T) {
	pres := &fakePresence{}
	dir := newFakeDirectory()
	g := newTestGateway(t, deps{
		auth:      userTokens(map[string]int64{"alice": 1}),
		presence:  pres,
		directory: dir,
	})
	srv := httptest.NewServer(g.routes())
	defer srv.Close()

	dialWS(t, srv, "alice")
	require.Eventually(t, func() bool { return dir.owner(1) == g.ID() }, 2*time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, g.Shutdown(ctx))

	// By the time Shutdown returns, this edge's routes and presence are
	// gone; peers never forward frames to a dead node.
	assert.Equal(t, 1, dir.deregisteredCount())
	assert.Empty(t, dir.owner(1))
	assert.Equal(t, 1, pres.logoutCount())
}

func TestWebSocketMalformedFrameKeepsConnection(t *testing.T) {
	g := newTestGateway(t, deps{auth: userTokens(map[string]int64{"alice": 1})})
	srv := httptest.NewServer(g.routes())
	defer srv.Close()

	conn := dialWS(t, srv, "alice")
	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, []byte("\xff\xfe not a frame")))

	// The connection survives and keeps serving.
	writeFrameWS(t, conn, &pb.Frame{Type: pb.FrameType_HEARTBEAT_PING})
	pong := readFrameWS(t, conn)
	assert.Equal(t, pb.FrameType_HEARTBEAT_PONG, pong.GetType())
	assert.Equal(t, float64(1), testutil.ToFloat64(g.metrics.framesDropped))
}

func TestWebSocketIdlePeerGetsPinged(t *testing.T) {
	g := newTestGateway(t, deps{auth: userTokens(map[string]int64{"alice": 1})},
		func(cfg *config.Config) {
			cfg.Gateway.HeartbeatIdle = 80 * time.Millisecond
			cfg.Gateway.HeartbeatDead = 5 * time.Second
		})
	srv := httptest.NewServer(g.routes())
	defer srv.Close()

	conn := dialWS(t, srv, "alice")

	frame := readFrameWS(t, conn)
	assert.Equal(t, pb.FrameType_HEARTBEAT_PING, frame.GetType())
}

func TestWebSocketDeadPeerDisconnected(t *testing.T) {
	pres := &fakePresence{}
	g := newTestGateway(t, deps{
		auth:     userTokens(map[string]int64{"alice": 1}),
		presence: pres,
	}, func(cfg *config.Config) {
		cfg.Gateway.HeartbeatIdle = 150 * time.Millisecond
		cfg.Gateway.HeartbeatDead = 300 * time.Millisecond
	})
	srv := httptest.NewServer(g.routes())
	defer srv.Close()

	conn := dialWS(t, srv, "alice")

	// Never answer the ping; the server must cut the connection.
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
	require.Eventually(t, func() bool { return pres.logoutCount() == 1 }, 2*time.Second, 10*time.Millisecond)
}
