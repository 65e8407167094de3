// ABOUTME: Tests for message persistence and conversation-session bookkeeping
// ABOUTME: Exercises the SaveMessage transaction and offline-drain queries against sqlmock

package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

var messageColumns = []string{"id", "from_user_id", "to_user_id", "content", "created_at"}

var sessionColumns = []string{"owner_id", "peer_id", "last_msg_content", "last_msg_ts", "unread_count"}

// newMockDB wires one sqlmock handle as both pools, modeling a single-node
// deployment.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })
	return NewWithDB(mockDB, mockDB), mock
}

func TestSaveMessage(t *testing.T) {
	db, mock := newMockDB(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO messages").
		WithArgs(1, 2, "hello", 1700000000000).
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec("INSERT INTO chat_sessions").
		WithArgs(1, 2, "hello", 1700000000000).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO chat_sessions").
		WithArgs(2, 1, "hello", 1700000000000).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	msgID, err := db.SaveMessage(ctx, 1, 2, "hello", 1700000000000)
	if err != nil {
		t.Fatalf("SaveMessage failed: %v", err)
	}
	if msgID != 42 {
		t.Errorf("message ID mismatch: got %d, want 42", msgID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestSaveMessage_InsertFails(t *testing.T) {
	db, mock := newMockDB(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO messages").
		WillReturnError(errors.New("connection refused"))
	mock.ExpectRollback()

	_, err := db.SaveMessage(ctx, 1, 2, "hello", 1700000000000)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "inserting message") {
		t.Errorf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestSaveMessage_SessionUpdateFails(t *testing.T) {
	db, mock := newMockDB(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO messages").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec("INSERT INTO chat_sessions").
		WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()

	_, err := db.SaveMessage(ctx, 1, 2, "hello", 1700000000000)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "updating sender session") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGetHistory_ReturnsChronologicalOrder(t *testing.T) {
	db, mock := newMockDB(t)
	ctx := context.Background()

	// Query returns newest-first; callers get oldest-first
	rows := sqlmock.NewRows(messageColumns).
		AddRow(9, 2, 1, "second", 1700000000900).
		AddRow(7, 1, 2, "first", 1700000000700)
	mock.ExpectQuery("SELECT id, from_user_id, to_user_id, content, created_at FROM messages").
		WithArgs(1, 2, 2, 1, 50).
		WillReturnRows(rows)

	msgs, err := db.GetHistory(ctx, 1, 2, 50, Eventual)
	if err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("message count mismatch: got %d, want 2", len(msgs))
	}
	if msgs[0].ID != 7 || msgs[1].ID != 9 {
		t.Errorf("order mismatch: got [%d, %d], want [7, 9]", msgs[0].ID, msgs[1].ID)
	}
	if msgs[0].Content != "first" {
		t.Errorf("content mismatch: got %q, want %q", msgs[0].Content, "first")
	}
}

func TestGetRecentSessions(t *testing.T) {
	db, mock := newMockDB(t)
	ctx := context.Background()

	rows := sqlmock.NewRows(sessionColumns).
		AddRow(1, 3, "latest", 1700000000900, 2).
		AddRow(1, 2, "older", 1700000000100, 0)
	mock.ExpectQuery("SELECT owner_id, peer_id, last_msg_content, last_msg_ts, unread_count").
		WithArgs(1).
		WillReturnRows(rows)

	sessions, err := db.GetRecentSessions(ctx, 1, Eventual)
	if err != nil {
		t.Fatalf("GetRecentSessions failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("session count mismatch: got %d, want 2", len(sessions))
	}
	if sessions[0].PeerID != 3 {
		t.Errorf("expected most recent session first, got peer %d", sessions[0].PeerID)
	}
	if sessions[0].UnreadCount != 2 {
		t.Errorf("unread count mismatch: got %d, want 2", sessions[0].UnreadCount)
	}
}

func TestGetOfflineMessages(t *testing.T) {
	db, mock := newMockDB(t)
	ctx := context.Background()

	sessions := sqlmock.NewRows(sessionColumns).
		AddRow(1, 2, "m11", 1700000001100, 2).
		AddRow(1, 3, "m12", 1700000001200, 1)
	mock.ExpectQuery("FROM chat_sessions WHERE owner_id = \\? AND unread_count > 0").
		WithArgs(1).
		WillReturnRows(sessions)

	fromTwo := sqlmock.NewRows(messageColumns).
		AddRow(11, 2, 1, "m11", 1700000001100).
		AddRow(10, 2, 1, "m10", 1700000001000)
	mock.ExpectQuery("SELECT id, from_user_id, to_user_id, content, created_at FROM messages").
		WithArgs(2, 1, 2).
		WillReturnRows(fromTwo)

	fromThree := sqlmock.NewRows(messageColumns).
		AddRow(12, 3, 1, "m12", 1700000001200)
	mock.ExpectQuery("SELECT id, from_user_id, to_user_id, content, created_at FROM messages").
		WithArgs(3, 1, 1).
		WillReturnRows(fromThree)

	msgs, err := db.GetOfflineMessages(ctx, 1)
	if err != nil {
		t.Fatalf("GetOfflineMessages failed: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("message count mismatch: got %d, want 3", len(msgs))
	}
	// Per-conversation batches are chronological
	wantIDs := []int64{10, 11, 12}
	for i, want := range wantIDs {
		if msgs[i].ID != want {
			t.Errorf("message %d: got ID %d, want %d", i, msgs[i].ID, want)
		}
	}
	for _, m := range msgs {
		if m.ToUserID != 1 {
			t.Errorf("message %d addressed to %d, want 1", m.ID, m.ToUserID)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestGetOfflineMessages_NothingUnread(t *testing.T) {
	db, mock := newMockDB(t)
	ctx := context.Background()

	mock.ExpectQuery("FROM chat_sessions WHERE owner_id = \\? AND unread_count > 0").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(sessionColumns))

	msgs, err := db.GetOfflineMessages(ctx, 1)
	if err != nil {
		t.Fatalf("GetOfflineMessages failed: %v", err)
	}
	if len(msgs) != 0 {
		t.Errorf("expected no messages, got %d", len(msgs))
	}
}

func TestAckMessages(t *testing.T) {
	db, mock := newMockDB(t)
	ctx := context.Background()

	mock.ExpectExec("UPDATE chat_sessions SET unread_count = 0").
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := db.AckMessages(ctx, 1, 2); err != nil {
		t.Fatalf("AckMessages failed: %v", err)
	}
}

func TestAckMessages_NoSessionRow(t *testing.T) {
	db, mock := newMockDB(t)
	ctx := context.Background()

	mock.ExpectExec("UPDATE chat_sessions SET unread_count = 0").
		WithArgs(1, 99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	// Acking an unknown conversation is a no-op, not an error
	if err := db.AckMessages(ctx, 1, 99); err != nil {
		t.Fatalf("AckMessages failed: %v", err)
	}
}
