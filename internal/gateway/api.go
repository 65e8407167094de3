// ABOUTME: REST surface for account, friend and history operations.
// ABOUTME: Thin JSON layer in front of the auth and chat gRPC services.

package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	pb "github.com/myluster/TinyIM/proto/im"
)

type contextKey string

// userIDKey carries the authenticated user id through request contexts.
const userIDKey contextKey = "user_id"

// RegisterRequest is the JSON body for POST /api/v1/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Nickname string `json:"nickname,omitempty"`
}

// RegisterResponse is the reply for a successful registration.
type RegisterResponse struct {
	UserID int64 `json:"user_id"`
}

// LoginRequest is the JSON body for POST /api/v1/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the session token clients pass to the WebSocket
// endpoint and on subsequent API calls.
type LoginResponse struct {
	UserID int64  `json:"user_id"`
	Token  string `json:"token"`
}

// FriendEntry is one friend in GET /api/v1/friends.
type FriendEntry struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Nickname string `json:"nickname,omitempty"`
	Online   bool   `json:"online"`
}

// FriendListResponse is the reply for GET /api/v1/friends.
type FriendListResponse struct {
	Friends []FriendEntry `json:"friends"`
}

// FriendRequestEntry is one pending request in GET /api/v1/friends/requests.
type FriendRequestEntry struct {
	FromUserID   int64  `json:"from_user_id"`
	FromUsername string `json:"from_username"`
	CreatedAt    int64  `json:"created_at"`
}

// FriendRequestListResponse is the reply for GET /api/v1/friends/requests.
type FriendRequestListResponse struct {
	Requests []FriendRequestEntry `json:"requests"`
}

// AddFriendRequest is the JSON body for POST /api/v1/friends/add.
type AddFriendRequest struct {
	FriendID int64 `json:"friend_id"`
}

// HandleFriendRequest is the JSON body for POST /api/v1/friends/handle.
// RequestID is the id of the user whose request is being answered.
type HandleFriendRequest struct {
	RequestID int64 `json:"request_id"`
	Accept    bool  `json:"accept"`
}

// DeleteFriendRequest is the JSON body for POST /api/v1/friends/delete.
type DeleteFriendRequest struct {
	FriendID int64 `json:"friend_id"`
}

// MessageEntry is one message in GET /api/v1/messages/history.
type MessageEntry struct {
	MsgID      int64  `json:"msg_id"`
	FromUserID int64  `json:"from_user_id"`
	ToUserID   int64  `json:"to_user_id"`
	Content    string `json:"content"`
	Timestamp  int64  `json:"timestamp"`
}

// HistoryResponse is the reply for GET /api/v1/messages/history.
type HistoryResponse struct {
	Messages []MessageEntry `json:"messages"`
}

// SessionEntry is one conversation in GET /api/v1/sessions.
type SessionEntry struct {
	PeerID           int64  `json:"peer_id"`
	LastMsgContent   string `json:"last_msg_content"`
	LastMsgTimestamp int64  `json:"last_msg_timestamp"`
	UnreadCount      int32  `json:"unread_count"`
}

// SessionListResponse is the reply for GET /api/v1/sessions.
type SessionListResponse struct {
	Sessions []SessionEntry `json:"sessions"`
}

// AckRequest is the JSON body for POST /api/v1/messages/ack.
type AckRequest struct {
	PeerID int64 `json:"peer_id"`
}

// requireAuth validates the bearer token (or ?token=) and stashes the
// authenticated user id in the request context.
func (g *Gateway) requireAuth(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			g.sendJSONError(w, http.StatusUnauthorized, "missing token")
			return
		}
		resp, err := g.auth.VerifyToken(r.Context(), token)
		if err != nil {
			g.logger.Error("verify token", "error", err)
			g.sendJSONError(w, http.StatusServiceUnavailable, "authentication unavailable")
			return
		}
		if !resp.GetSuccess() {
			g.sendJSONError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, resp.GetUserId())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from the Authorization header, falling
// back to the token query parameter WebSocket clients use.
func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return token
		}
		return ""
	}
	return r.URL.Query().Get("token")
}

// requestUserID returns the user id stored by requireAuth.
func requestUserID(r *http.Request) int64 {
	id, _ := r.Context().Value(userIDKey).(int64)
	return id
}

func (g *Gateway) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		g.sendJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Username == "" || req.Password == "" {
		g.sendJSONError(w, http.StatusBadRequest, "username and password are required")
		return
	}
	resp, err := g.auth.Register(r.Context(), &pb.RegisterRequest{
		Username: req.Username,
		Password: req.Password,
		Nickname: req.Nickname,
	})
	if err != nil {
		g.logger.Error("register", "error", err)
		g.sendJSONError(w, http.StatusServiceUnavailable, "auth service unavailable")
		return
	}
	if !resp.GetSuccess() {
		g.sendJSONError(w, http.StatusConflict, resp.GetErrorMsg())
		return
	}
	g.writeJSON(w, RegisterResponse{UserID: resp.GetUserId()})
}

func (g *Gateway) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		g.sendJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	resp, err := g.auth.Login(r.Context(), &pb.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		g.logger.Error("login", "error", err)
		g.sendJSONError(w, http.StatusServiceUnavailable, "auth service unavailable")
		return
	}
	if !resp.GetSuccess() {
		g.sendJSONError(w, http.StatusUnauthorized, resp.GetErrorMsg())
		return
	}
	g.writeJSON(w, LoginResponse{UserID: resp.GetUserId(), Token: resp.GetToken()})
}

func (g *Gateway) handleFriends(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	resp, err := g.auth.GetFriendList(r.Context(), &pb.GetFriendListRequest{UserId: requestUserID(r)})
	if err != nil {
		g.logger.Error("friend list", "error", err)
		g.sendJSONError(w, http.StatusServiceUnavailable, "auth service unavailable")
		return
	}
	if !resp.GetSuccess() {
		g.sendJSONError(w, http.StatusInternalServerError, resp.GetErrorMsg())
		return
	}
	out := FriendListResponse{Friends: make([]FriendEntry, 0, len(resp.GetFriends()))}
	for _, f := range resp.GetFriends() {
		out.Friends = append(out.Friends, FriendEntry{
			UserID:   f.GetUserId(),
			Username: f.GetUsername(),
			Nickname: f.GetNickname(),
			Online:   f.GetOnline(),
		})
	}
	g.writeJSON(w, out)
}

func (g *Gateway) handleFriendRequests(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	resp, err := g.auth.GetPendingFriendRequests(r.Context(), &pb.GetPendingFriendRequestsRequest{UserId: requestUserID(r)})
	if err != nil {
		g.logger.Error("pending friend requests", "error", err)
		g.sendJSONError(w, http.StatusServiceUnavailable, "auth service unavailable")
		return
	}
	if !resp.GetSuccess() {
		g.sendJSONError(w, http.StatusInternalServerError, resp.GetErrorMsg())
		return
	}
	out := FriendRequestListResponse{Requests: make([]FriendRequestEntry, 0, len(resp.GetRequests()))}
	for _, req := range resp.GetRequests() {
		out.Requests = append(out.Requests, FriendRequestEntry{
			FromUserID:   req.GetFromUserId(),
			FromUsername: req.GetFromUsername(),
			CreatedAt:    req.GetCreatedAt(),
		})
	}
	g.writeJSON(w, out)
}

func (g *Gateway) handleAddFriend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req AddFriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		g.sendJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.FriendID <= 0 {
		g.sendJSONError(w, http.StatusBadRequest, "friend_id is required")
		return
	}
	resp, err := g.auth.AddFriend(r.Context(), &pb.AddFriendRequest{
		UserId:   requestUserID(r),
		FriendId: req.FriendID,
	})
	if err != nil {
		g.logger.Error("add friend", "error", err)
		g.sendJSONError(w, http.StatusServiceUnavailable, "auth service unavailable")
		return
	}
	if !resp.GetSuccess() {
		g.sendJSONError(w, http.StatusBadRequest, resp.GetErrorMsg())
		return
	}
	g.writeJSON(w, map[string]string{"status": "requested"})
}

func (g *Gateway) handleHandleFriendRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req HandleFriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		g.sendJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.RequestID <= 0 {
		g.sendJSONError(w, http.StatusBadRequest, "request_id is required")
		return
	}
	resp, err := g.auth.HandleFriendRequest(r.Context(), &pb.HandleFriendRequestRequest{
		UserId:    requestUserID(r),
		RequestId: req.RequestID,
		Accept:    req.Accept,
	})
	if err != nil {
		g.logger.Error("handle friend request", "error", err)
		g.sendJSONError(w, http.StatusServiceUnavailable, "auth service unavailable")
		return
	}
	if !resp.GetSuccess() {
		g.sendJSONError(w, http.StatusBadRequest, resp.GetErrorMsg())
		return
	}
	g.writeJSON(w, map[string]string{"status": "handled"})
}

func (g *Gateway) handleDeleteFriend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req DeleteFriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		g.sendJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.FriendID <= 0 {
		g.sendJSONError(w, http.StatusBadRequest, "friend_id is required")
		return
	}
	resp, err := g.auth.DeleteFriend(r.Context(), &pb.DeleteFriendRequest{
		UserId:   requestUserID(r),
		FriendId: req.FriendID,
	})
	if err != nil {
		g.logger.Error("delete friend", "error", err)
		g.sendJSONError(w, http.StatusServiceUnavailable, "auth service unavailable")
		return
	}
	if !resp.GetSuccess() {
		g.sendJSONError(w, http.StatusBadRequest, resp.GetErrorMsg())
		return
	}
	g.writeJSON(w, map[string]string{"status": "deleted"})
}

func (g *Gateway) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	peerID, err := strconv.ParseInt(r.URL.Query().Get("peer_id"), 10, 64)
	if err != nil || peerID <= 0 {
		g.sendJSONError(w, http.StatusBadRequest, "peer_id is required")
		return
	}
	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.ParseInt(raw, 10, 32)
		if err != nil || limit < 0 {
			g.sendJSONError(w, http.StatusBadRequest, "invalid limit")
			return
		}
	}
	resp, err := g.chat.GetHistory(r.Context(), &pb.GetHistoryRequest{
		UserId: requestUserID(r),
		PeerId: peerID,
		Limit:  int32(limit),
	})
	if err != nil {
		g.logger.Error("history", "error", err)
		g.sendJSONError(w, http.StatusServiceUnavailable, "chat service unavailable")
		return
	}
	if !resp.GetSuccess() {
		g.sendJSONError(w, http.StatusInternalServerError, resp.GetErrorMsg())
		return
	}
	out := HistoryResponse{Messages: make([]MessageEntry, 0, len(resp.GetMessages()))}
	for _, m := range resp.GetMessages() {
		out.Messages = append(out.Messages, MessageEntry{
			MsgID:      m.GetMsgId(),
			FromUserID: m.GetFromUserId(),
			ToUserID:   m.GetToUserId(),
			Content:    m.GetContent(),
			Timestamp:  m.GetTimestamp(),
		})
	}
	g.writeJSON(w, out)
}

func (g *Gateway) handleRecentSessions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	resp, err := g.chat.GetRecentSessions(r.Context(), &pb.GetRecentSessionsRequest{UserId: requestUserID(r)})
	if err != nil {
		g.logger.Error("recent sessions", "error", err)
		g.sendJSONError(w, http.StatusServiceUnavailable, "chat service unavailable")
		return
	}
	if !resp.GetSuccess() {
		g.sendJSONError(w, http.StatusInternalServerError, resp.GetErrorMsg())
		return
	}
	out := SessionListResponse{Sessions: make([]SessionEntry, 0, len(resp.GetSessions()))}
	for _, sess := range resp.GetSessions() {
		out.Sessions = append(out.Sessions, SessionEntry{
			PeerID:           sess.GetPeerId(),
			LastMsgContent:   sess.GetLastMsgContent(),
			LastMsgTimestamp: sess.GetLastMsgTimestamp(),
			UnreadCount:      sess.GetUnreadCount(),
		})
	}
	g.writeJSON(w, out)
}

func (g *Gateway) handleAck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req AckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		g.sendJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.PeerID <= 0 {
		g.sendJSONError(w, http.StatusBadRequest, "peer_id is required")
		return
	}
	if err := g.chat.AckMessages(r.Context(), requestUserID(r), req.PeerID); err != nil {
		g.logger.Error("ack messages", "error", err)
		g.sendJSONError(w, http.StatusServiceUnavailable, "chat service unavailable")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (g *Gateway) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (g *Gateway) handleReadyz(w http.ResponseWriter, _ *http.Request) {
	if !g.ready.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("not ready"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (g *Gateway) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		g.logger.Error("encoding response", "error", err)
	}
}

func (g *Gateway) sendJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		g.logger.Error("encoding error response", "error", err)
	}
}
