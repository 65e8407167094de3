// ABOUTME: WebSocket endpoint: token check, session lifecycle, frame dispatch.
// ABOUTME: Chat sends are persisted off the read pump, acknowledged after the write lands.

package gateway

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gorilla/websocket"
	"google.golang.org/protobuf/proto"

	pb "github.com/myluster/TinyIM/proto/im"
)

// rpcTimeout bounds collaborator calls made on behalf of a session.
const rpcTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// handleWS upgrades the connection and runs the session lifecycle: verify
// the token, register locally and in the directory, announce presence,
// drain stored offline messages, then pump frames until the connection
// dies. Auth failures close the upgraded connection with a policy
// violation so the client can tell a bad token from a network blip.
func (g *Gateway) handleWS(w http.ResponseWriter, r *http.Request) {
	g.wsWG.Add(1)
	defer g.wsWG.Done()

	token := r.URL.Query().Get("token")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Warn("websocket upgrade failed", "remote_addr", r.RemoteAddr, "error", err)
		return
	}

	// The connection is hijacked at this point, so r.Context() is no
	// longer tied to it. Join-time calls get their own deadline.
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()

	resp, err := g.auth.VerifyToken(ctx, token)
	if err != nil {
		g.logger.Error("verify token", "error", err)
		closePolicy(conn, "authentication unavailable")
		return
	}
	if !resp.GetSuccess() {
		closePolicy(conn, "invalid token")
		return
	}
	userID := resp.GetUserId()

	s := newSession(userID, conn, g.logger)
	if displaced := g.table.Join(s); displaced != nil {
		g.metrics.displacements.Inc()
		g.logger.Info("session displaced by newer connection", "user_id", userID)
		displaced.teardown()
	}
	g.metrics.sessionsActive.Inc()
	g.metrics.sessionsTotal.Inc()

	go g.writePump(s)

	if err := g.directory.Register(ctx, userID, g.id); err != nil {
		g.logger.Error("directory register", "user_id", userID, "error", err)
		g.disconnect(s)
		return
	}

	g.announcePresence(ctx, s)
	g.drainOffline(ctx, s)

	g.logger.Info("session established", "user_id", userID, "remote_addr", r.RemoteAddr)

	g.readPump(s)
	g.disconnect(s)
}

// closePolicy rejects an already-upgraded connection with close code 1008.
func closePolicy(conn wsConn, reason string) {
	deadline := time.Now().Add(writeWait)
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason), deadline)
	_ = conn.Close()
}

// disconnect finalizes a dead session. It is safe to call for displaced
// sessions: the table compare-and-delete makes the directory and presence
// cleanup run only for the session that still owns the user entry, so a
// reconnect is never clobbered by its predecessor's teardown.
func (g *Gateway) disconnect(s *session) {
	s.teardown()
	g.metrics.sessionsActive.Dec()

	if !g.table.Leave(s) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()

	if err := g.directory.Deregister(ctx, s.userID, g.id); err != nil {
		g.logger.Warn("directory deregister", "user_id", s.userID, "error", err)
	}
	if err := g.presence.Logout(ctx, s.userID); err != nil {
		g.logger.Warn("presence logout", "user_id", s.userID, "error", err)
	}
	g.logger.Info("session closed", "user_id", s.userID)
}

// announcePresence marks the user online and seeds the fresh session with a
// STATUS_UPDATE for each friend who is already online. Fanning the user's
// own transition out to those friends is the presence service's job; doing
// it here too would double-notify. Presence being down degrades the session
// (no seeds) but does not reject it.
func (g *Gateway) announcePresence(ctx context.Context, s *session) {
	online, err := g.presence.Login(ctx, s.userID)
	if err != nil {
		g.logger.Warn("presence login", "user_id", s.userID, "error", err)
		return
	}
	now := time.Now().UnixMilli()
	for _, friendID := range online {
		raw, err := proto.Marshal(&pb.Frame{
			Type: pb.FrameType_STATUS_UPDATE,
			Payload: &pb.Frame_Status{Status: &pb.StatusData{
				UserId:    friendID,
				Status:    1,
				Timestamp: now,
			}},
		})
		if err != nil {
			continue
		}
		if !s.enqueueBlocking(raw) {
			return
		}
	}
}

// drainOffline pushes the user's stored unread tail in (timestamp, msg_id)
// order. Unread counters are left untouched; the client acknowledges per
// peer through the REST surface once it has rendered the messages.
func (g *Gateway) drainOffline(ctx context.Context, s *session) {
	msgs, err := g.chat.GetOfflineMessages(ctx, s.userID)
	if err != nil {
		g.logger.Warn("offline drain", "user_id", s.userID, "error", err)
		return
	}
	if len(msgs) == 0 {
		return
	}
	sort.Slice(msgs, func(i, j int) bool {
		if msgs[i].GetTimestamp() != msgs[j].GetTimestamp() {
			return msgs[i].GetTimestamp() < msgs[j].GetTimestamp()
		}
		return msgs[i].GetMsgId() < msgs[j].GetMsgId()
	})
	for _, m := range msgs {
		raw, err := proto.Marshal(pushFrame(m))
		if err != nil {
			continue
		}
		if !s.enqueueBlocking(raw) {
			return
		}
	}
	g.logger.Info("offline messages drained", "user_id", s.userID, "count", len(msgs))
}

// pushFrame wraps a stored message as a CHAT_PUSH frame.
func pushFrame(m *pb.MessageRecord) *pb.Frame {
	return &pb.Frame{
		Type: pb.FrameType_CHAT_PUSH,
		Payload: &pb.Frame_Chat{Chat: &pb.ChatData{
			MsgId:      m.GetMsgId(),
			FromUserId: m.GetFromUserId(),
			ToUserId:   m.GetToUserId(),
			Content:    m.GetContent(),
			Timestamp:  m.GetTimestamp(),
		}},
	}
}

// readPump consumes frames until the connection errors out. The read
// deadline doubles as the dead-peer timer: every inbound frame, pongs
// included, pushes it forward.
func (g *Gateway) readPump(s *session) {
	s.conn.SetReadLimit(g.cfg.Gateway.MaxFrameBytes)
	_ = s.conn.SetReadDeadline(time.Now().Add(g.cfg.Gateway.HeartbeatDead))
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if !s.closed() && websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				g.logger.Debug("read pump closed", "user_id", s.userID, "error", err)
			}
			return
		}
		s.touch()
		_ = s.conn.SetReadDeadline(time.Now().Add(g.cfg.Gateway.HeartbeatDead))
		g.dispatch(s, data)
	}
}

// writePump is the only goroutine writing to the connection. It drains the
// send queue and probes idle peers with an application-level ping.
func (g *Gateway) writePump(s *session) {
	ticker := time.NewTicker(g.cfg.Gateway.HeartbeatIdle / 2)
	defer ticker.Stop()
	var lastPing time.Time
	for {
		select {
		case frame := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
				s.teardown()
				return
			}
			g.metrics.framesOut.Inc()
		case <-ticker.C:
			if s.idleFor() < g.cfg.Gateway.HeartbeatIdle || time.Since(lastPing) < g.cfg.Gateway.HeartbeatIdle {
				continue
			}
			ping, err := proto.Marshal(&pb.Frame{Type: pb.FrameType_HEARTBEAT_PING})
			if err != nil {
				continue
			}
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.BinaryMessage, ping); err != nil {
				s.teardown()
				return
			}
			g.metrics.framesOut.Inc()
			lastPing = time.Now()
		case <-s.done:
			_ = s.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			return
		}
	}
}

// dispatch routes one inbound frame. Malformed bytes are logged and
// dropped; the connection stays up.
func (g *Gateway) dispatch(s *session, data []byte) {
	var frame pb.Frame
	if err := proto.Unmarshal(data, &frame); err != nil {
		g.metrics.framesDropped.Inc()
		g.logger.Warn("malformed frame dropped", "user_id", s.userID, "error", err)
		return
	}
	g.metrics.framesIn.WithLabelValues(frame.GetType().String()).Inc()

	switch frame.GetType() {
	case pb.FrameType_CHAT_SEND:
		g.handleChatSend(s, &frame)
	case pb.FrameType_HEARTBEAT_PING:
		g.sendFrame(s, &pb.Frame{Type: pb.FrameType_HEARTBEAT_PONG, RequestId: frame.GetRequestId()})
	case pb.FrameType_HEARTBEAT_PONG:
		// reply to our idle probe; touch already reset the dead timer
	case pb.FrameType_CHAT_ACK, pb.FrameType_CHAT_PUSH, pb.FrameType_STATUS_UPDATE:
		g.logger.Warn("server-only frame from client", "user_id", s.userID, "type", frame.GetType().String())
	case pb.FrameType_UNKNOWN:
		g.logger.Warn("unknown frame from client", "user_id", s.userID, "request_id", frame.GetRequestId())
	}
}

// handleChatSend queues the message for the per-session drainer. The read
// pump never blocks on persistence; the drainer acknowledges each message
// only after SaveMessage reports the write landed, then routes a CHAT_PUSH
// to the recipient.
func (g *Gateway) handleChatSend(s *session, frame *pb.Frame) {
	chat := frame.GetChat()
	if chat == nil {
		g.sendError(s, frame.GetRequestId(), "chat payload missing")
		return
	}
	// The timestamp is stamped here, never taken from the frame, so
	// conversation order and the offline drain follow the server clock.
	job := chatJob{
		requestID: frame.GetRequestId(),
		to:        chat.GetToUserId(),
		content:   chat.GetContent(),
		ts:        time.Now().UnixMilli(),
	}

	// Jobs are appended only here, on the read pump, and drained by at
	// most one worker, so acknowledgements keep send order.
	s.jobMu.Lock()
	s.jobs = append(s.jobs, job)
	start := !s.saving
	if start {
		s.saving = true
	}
	s.jobMu.Unlock()
	if !start {
		return
	}

	if !g.pool.TrySubmit(func() { g.drainChatJobs(s) }) {
		s.jobMu.Lock()
		s.jobs = nil
		s.saving = false
		s.jobMu.Unlock()
		g.metrics.poolRejected.Inc()
		g.sendError(s, job.requestID, "server busy")
	}
}

// drainChatJobs persists this session's queued messages one at a time. It
// keeps running after a disconnect so accepted messages still reach the
// store; their acknowledgements are dropped harmlessly by the dead queue.
func (g *Gateway) drainChatJobs(s *session) {
	for {
		s.jobMu.Lock()
		if len(s.jobs) == 0 {
			s.saving = false
			s.jobMu.Unlock()
			return
		}
		job := s.jobs[0]
		s.jobs = s.jobs[1:]
		s.jobMu.Unlock()

		g.saveAndDeliver(s, job)
	}
}

func (g *Gateway) saveAndDeliver(s *session, job chatJob) {
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()

	resp, err := g.chat.SaveMessage(ctx, &pb.SaveMessageRequest{
		FromUserId: s.userID,
		ToUserId:   job.to,
		Content:    job.content,
		Timestamp:  job.ts,
	})
	if err != nil {
		g.logger.Error("save message", "from", s.userID, "to", job.to, "error", err)
		g.sendError(s, job.requestID, "message not persisted")
		return
	}
	if !resp.GetSuccess() {
		g.sendError(s, job.requestID, resp.GetErrorMsg())
		return
	}
	msgID := resp.GetMsgId()

	g.sendFrame(s, &pb.Frame{
		Type:      pb.FrameType_CHAT_ACK,
		RequestId: job.requestID,
		Payload: &pb.Frame_Chat{Chat: &pb.ChatData{
			MsgId:      msgID,
			FromUserId: s.userID,
			ToUserId:   job.to,
			Timestamp:  job.ts,
		}},
	})

	g.sendToUser(ctx, job.to, &pb.Frame{
		Type: pb.FrameType_CHAT_PUSH,
		Payload: &pb.Frame_Chat{Chat: &pb.ChatData{
			MsgId:      msgID,
			FromUserId: s.userID,
			ToUserId:   job.to,
			Content:    job.content,
			Timestamp:  job.ts,
		}},
	})
}

// sendFrame marshals and enqueues a frame on s.
func (g *Gateway) sendFrame(s *session, frame *pb.Frame) {
	raw, err := proto.Marshal(frame)
	if err != nil {
		g.logger.Error("marshal frame", "type", frame.GetType().String(), "error", err)
		return
	}
	s.enqueue(raw)
}

// sendError reports a failure to the client on an UNKNOWN frame carrying
// the originating request id.
func (g *Gateway) sendError(s *session, requestID, msg string) {
	g.sendFrame(s, &pb.Frame{Type: pb.FrameType_UNKNOWN, RequestId: requestID, Error: msg})
}
