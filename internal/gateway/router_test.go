// ABOUTME: Tests for frame routing: local-first delivery, bus consumption,
// ABOUTME: and the periodic directory reconciliation.

package gateway

import (
	"context"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"github.com/myluster/TinyIM/internal/routing"
	pb "github.com/myluster/TinyIM/proto/im"
)

func testFrame(t *testing.T, content string) *pb.Frame {
	t.Helper()
	return &pb.Frame{
		Type: pb.FrameType_CHAT_PUSH,
		Payload: &pb.Frame_Chat{Chat: &pb.ChatData{
			FromUserId: 1,
			ToUserId:   2,
			Content:    content,
		}},
	}
}

func TestSendToUserPrefersLocalSession(t *testing.T) {
	rt := &fakeRouter{routed: true}
	g := newTestGateway(t, deps{router: rt})

	s := newSession(2, newFakeWSConn(), slog.Default())
	g.table.Join(s)

	g.sendToUser(context.Background(), 2, testFrame(t, "hello"))

	require.Len(t, s.send, 1)
	raw := <-s.send
	var got pb.Frame
	require.NoError(t, proto.Unmarshal(raw, &got))
	assert.Equal(t, "hello", got.GetChat().GetContent())

	// The bus must not see the frame when a local session exists.
	assert.Equal(t, 0, rt.publishedCount())
	assert.Equal(t, float64(1), testutil.ToFloat64(g.metrics.deliveries.WithLabelValues("local")))
}

func TestSendToUserPublishesForRemoteUser(t *testing.T) {
	rt := &fakeRouter{routed: true}
	g := newTestGateway(t, deps{router: rt})

	g.sendToUser(context.Background(), 9, testFrame(t, "remote"))

	require.Equal(t, 1, rt.publishedCount())
	assert.Equal(t, int64(9), rt.published[0].userID)
	assert.Equal(t, float64(1), testutil.ToFloat64(g.metrics.deliveries.WithLabelValues("remote")))
}

func TestSendToUserDropsForOfflineUser(t *testing.T) {
	rt := &fakeRouter{routed: false}
	g := newTestGateway(t, deps{router: rt})

	g.sendToUser(context.Background(), 9, testFrame(t, "nobody home"))

	assert.Equal(t, 0, rt.publishedCount())
	assert.Equal(t, float64(1), testutil.ToFloat64(g.metrics.deliveries.WithLabelValues("offline")))
}

func TestConsumeBusDeliversToLocalSessionOnly(t *testing.T) {
	g := newTestGateway(t, deps{})

	s := newSession(5, newFakeWSConn(), slog.Default())
	g.table.Join(s)

	deliveries := make(chan routing.Delivery, 2)
	raw, err := proto.Marshal(testFrame(t, "via bus"))
	require.NoError(t, err)
	deliveries <- routing.Delivery{UserID: 5, Frame: raw}
	deliveries <- routing.Delivery{UserID: 404, Frame: raw} // user already left
	close(deliveries)

	g.consumeBus(deliveries)

	require.Len(t, s.send, 1)
	assert.Equal(t, float64(2), testutil.ToFloat64(g.metrics.busReceived))
}

func TestReconcileRepairsDirectory(t *testing.T) {
	dir := newFakeDirectory()
	g := newTestGateway(t, deps{directory: dir})

	// Users 1 and 2 are connected here; the directory is missing 1, has 2
	// correct, claims 3 for this edge (stale), and 4 belongs elsewhere.
	g.table.Join(newSession(1, newFakeWSConn(), slog.Default()))
	g.table.Join(newSession(2, newFakeWSConn(), slog.Default()))
	require.NoError(t, dir.Register(context.Background(), 2, g.ID()))
	require.NoError(t, dir.Register(context.Background(), 3, g.ID()))
	require.NoError(t, dir.Register(context.Background(), 4, "edge-other"))

	g.reconcile()

	assert.Equal(t, g.ID(), dir.owner(1), "missing entry should be re-asserted")
	assert.Equal(t, g.ID(), dir.owner(2))
	assert.Empty(t, dir.owner(3), "stale self-owned entry should be dropped")
	assert.Equal(t, "edge-other", dir.owner(4), "other edges' entries are untouched")
}

func TestDeliverLocalReportsMiss(t *testing.T) {
	g := newTestGateway(t, deps{})
	assert.False(t, g.deliverLocal(123, []byte("frame")))

	s := newSession(123, newFakeWSConn(), slog.Default())
	g.table.Join(s)
	assert.True(t, g.deliverLocal(123, []byte("frame")))
}
