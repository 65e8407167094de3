// ABOUTME: ChatService gRPC implementation over the message store
// ABOUTME: Stamps message timestamps at persist time so ordering uses one clock

package chat

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/myluster/TinyIM/internal/store"
	pb "github.com/myluster/TinyIM/proto/im"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// Service implements the chat persistence RPCs
type Service struct {
	pb.UnimplementedChatServiceServer

	store  *store.DB
	logger *slog.Logger
	now    func() time.Time
}

// NewService builds the chat service over the message store
func NewService(db *store.DB) *Service {
	return &Service{
		store:  db,
		logger: slog.Default().With("component", "chat"),
		now:    time.Now,
	}
}

// SaveMessage persists one message and returns its assigned ID. Callers
// normally leave the timestamp zero and let the service stamp it.
func (s *Service) SaveMessage(ctx context.Context, req *pb.SaveMessageRequest) (*pb.SaveMessageResponse, error) {
	if req.GetFromUserId() == 0 || req.GetToUserId() == 0 {
		return &pb.SaveMessageResponse{Success: false, ErrorMsg: "sender and receiver are required"}, nil
	}
	if req.GetContent() == "" {
		return &pb.SaveMessageResponse{Success: false, ErrorMsg: "empty message"}, nil
	}

	ts := req.GetTimestamp()
	if ts == 0 {
		ts = s.now().UnixMilli()
	}

	msgID, err := s.store.SaveMessage(ctx, req.GetFromUserId(), req.GetToUserId(), req.GetContent(), ts)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "saving message: %v", err)
	}
	return &pb.SaveMessageResponse{Success: true, MsgId: msgID}, nil
}

// GetHistory returns the latest messages between two users, oldest first
func (s *Service) GetHistory(ctx context.Context, req *pb.GetHistoryRequest) (*pb.GetHistoryResponse, error) {
	limit := req.GetLimit()
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	msgs, err := s.store.GetHistory(ctx, req.GetUserId(), req.GetPeerId(), limit, store.Eventual)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "loading history: %v", err)
	}
	return &pb.GetHistoryResponse{Success: true, Messages: toRecords(msgs)}, nil
}

// GetRecentSessions returns the user's conversation summaries, most
// recently active first. Unread counts feed the client's badge state, so
// the read pins the primary.
func (s *Service) GetRecentSessions(ctx context.Context, req *pb.GetRecentSessionsRequest) (*pb.GetRecentSessionsResponse, error) {
	sessions, err := s.store.GetRecentSessions(ctx, req.GetUserId(), store.Strong)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "loading sessions: %v", err)
	}

	resp := &pb.GetRecentSessionsResponse{Success: true}
	for _, sess := range sessions {
		resp.Sessions = append(resp.Sessions, &pb.SessionRecord{
			PeerId:           sess.PeerID,
			LastMsgContent:   sess.LastMsgContent,
			LastMsgTimestamp: sess.LastMsgTS,
			UnreadCount:      sess.UnreadCount,
		})
	}
	return resp, nil
}

// GetOfflineMessages returns every unread message awaiting the user.
// Counters stay untouched until the client acks each conversation.
func (s *Service) GetOfflineMessages(ctx context.Context, req *pb.GetOfflineMessagesRequest) (*pb.GetOfflineMessagesResponse, error) {
	msgs, err := s.store.GetOfflineMessages(ctx, req.GetUserId())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "loading offline messages: %v", err)
	}
	return &pb.GetOfflineMessagesResponse{Success: true, Messages: toRecords(msgs)}, nil
}

// AckMessages clears the unread counter for one conversation
func (s *Service) AckMessages(ctx context.Context, req *pb.AckMessagesRequest) (*pb.AckMessagesResponse, error) {
	if err := s.store.AckMessages(ctx, req.GetUserId(), req.GetPeerId()); err != nil {
		return nil, status.Errorf(codes.Internal, "acking messages: %v", err)
	}
	return &pb.AckMessagesResponse{Success: true}, nil
}

func toRecords(msgs []store.Message) []*pb.MessageRecord {
	records := make([]*pb.MessageRecord, 0, len(msgs))
	for _, m := range msgs {
		records = append(records, &pb.MessageRecord{
			MsgId:      m.ID,
			FromUserId: m.FromUserID,
			ToUserId:   m.ToUserID,
			Content:    m.Content,
			Timestamp:  m.Timestamp,
		})
	}
	return records
}
