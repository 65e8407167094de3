// ABOUTME: Message persistence and conversation-session bookkeeping
// ABOUTME: SaveMessage updates both sides' session rows atomically with the insert

package store

import (
	"context"
	"fmt"
)

const insertMessageSQL = `INSERT INTO messages (from_user_id, to_user_id, content, created_at) VALUES (?, ?, ?, ?)`

const upsertSenderSessionSQL = `INSERT INTO chat_sessions (owner_id, peer_id, last_msg_content, last_msg_ts, unread_count)
	VALUES (?, ?, ?, ?, 0)
	ON DUPLICATE KEY UPDATE last_msg_content = VALUES(last_msg_content), last_msg_ts = VALUES(last_msg_ts), unread_count = 0`

const upsertReceiverSessionSQL = `INSERT INTO chat_sessions (owner_id, peer_id, last_msg_content, last_msg_ts, unread_count)
	VALUES (?, ?, ?, ?, 1)
	ON DUPLICATE KEY UPDATE last_msg_content = VALUES(last_msg_content), last_msg_ts = VALUES(last_msg_ts), unread_count = unread_count + 1`

const selectHistorySQL = `SELECT id, from_user_id, to_user_id, content, created_at FROM messages
	WHERE (from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)
	ORDER BY id DESC LIMIT ?`

const selectRecentSessionsSQL = `SELECT owner_id, peer_id, last_msg_content, last_msg_ts, unread_count
	FROM chat_sessions WHERE owner_id = ? ORDER BY last_msg_ts DESC`

const selectUnreadSessionsSQL = `SELECT owner_id, peer_id, last_msg_content, last_msg_ts, unread_count
	FROM chat_sessions WHERE owner_id = ? AND unread_count > 0`

const selectUnreadMessagesSQL = `SELECT id, from_user_id, to_user_id, content, created_at FROM messages
	WHERE from_user_id = ? AND to_user_id = ? ORDER BY id DESC LIMIT ?`

const resetUnreadSQL = `UPDATE chat_sessions SET unread_count = 0 WHERE owner_id = ? AND peer_id = ?`

// SaveMessage inserts one message and refreshes both conversation-session
// rows in a single transaction: the sender's row is marked read, the
// receiver's unread count grows by one. Returns the assigned message ID.
func (db *DB) SaveMessage(ctx context.Context, from, to int64, content string, ts int64) (int64, error) {
	tx, err := db.primary.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, insertMessageSQL, from, to, content, ts)
	if err != nil {
		return 0, fmt.Errorf("inserting message: %w", err)
	}
	msgID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading message id: %w", err)
	}

	if _, err := tx.ExecContext(ctx, upsertSenderSessionSQL, from, to, content, ts); err != nil {
		return 0, fmt.Errorf("updating sender session: %w", err)
	}
	if _, err := tx.ExecContext(ctx, upsertReceiverSessionSQL, to, from, content, ts); err != nil {
		return 0, fmt.Errorf("updating receiver session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing message: %w", err)
	}
	return msgID, nil
}

// GetHistory returns the latest messages exchanged between two users in
// chronological order, at most limit rows.
func (db *DB) GetHistory(ctx context.Context, userID, peerID int64, limit int32, c Consistency) ([]Message, error) {
	var msgs []Message
	err := db.Reader(c).SelectContext(ctx, &msgs, selectHistorySQL, userID, peerID, peerID, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	reverseMessages(msgs)
	return msgs, nil
}

// GetRecentSessions returns the owner's conversation summaries, most
// recently active first.
func (db *DB) GetRecentSessions(ctx context.Context, ownerID int64, c Consistency) ([]ChatSession, error) {
	var sessions []ChatSession
	err := db.Reader(c).SelectContext(ctx, &sessions, selectRecentSessionsSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	return sessions, nil
}

// GetOfflineMessages returns, for every conversation with unread messages,
// the last unread_count messages from that peer in chronological order.
// The unread counters are left untouched; AckMessages resets them once the
// client confirms display. Reads go to the primary so a message persisted
// moments before the owner reconnects is never missed.
func (db *DB) GetOfflineMessages(ctx context.Context, ownerID int64) ([]Message, error) {
	var sessions []ChatSession
	err := db.primary.SelectContext(ctx, &sessions, selectUnreadSessionsSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("querying unread sessions: %w", err)
	}

	var out []Message
	for _, s := range sessions {
		var msgs []Message
		err := db.primary.SelectContext(ctx, &msgs, selectUnreadMessagesSQL, s.PeerID, ownerID, s.UnreadCount)
		if err != nil {
			return nil, fmt.Errorf("querying unread from %d: %w", s.PeerID, err)
		}
		reverseMessages(msgs)
		out = append(out, msgs...)
	}
	return out, nil
}

// AckMessages resets the unread counter for one conversation. Acking a
// conversation with no session row is a no-op.
func (db *DB) AckMessages(ctx context.Context, ownerID, peerID int64) error {
	if _, err := db.primary.ExecContext(ctx, resetUnreadSQL, ownerID, peerID); err != nil {
		return fmt.Errorf("resetting unread count: %w", err)
	}
	return nil
}

func reverseMessages(msgs []Message) {
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
}
