// ABOUTME: User accounts, friendships, and friend-request persistence
// ABOUTME: Friendships are stored as two directed rows so both sides list each other

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const insertUserSQL = `INSERT INTO users (username, password_hash, nickname) VALUES (?, ?, ?)`

const selectUserByUsernameSQL = `SELECT id, username, password_hash, nickname, created_at FROM users WHERE username = ?`

const selectUserByIDSQL = `SELECT id, username, password_hash, nickname, created_at FROM users WHERE id = ?`

const selectFriendshipSQL = `SELECT 1 FROM friends WHERE user_id = ? AND friend_id = ?`

const insertFriendRequestSQL = `INSERT INTO friend_requests (from_user_id, to_user_id, status) VALUES (?, ?, 0)`

const selectFriendsSQL = `SELECT u.id, u.username, u.nickname FROM friends f
	JOIN users u ON u.id = f.friend_id WHERE f.user_id = ? ORDER BY u.id`

const selectPendingRequestsSQL = `SELECT r.from_user_id, u.username AS from_username, r.created_at
	FROM friend_requests r JOIN users u ON u.id = r.from_user_id
	WHERE r.to_user_id = ? AND r.status = 0 ORDER BY r.created_at`

const updateRequestStatusSQL = `UPDATE friend_requests SET status = ? WHERE from_user_id = ? AND to_user_id = ? AND status = 0`

const insertFriendSQL = `INSERT IGNORE INTO friends (user_id, friend_id) VALUES (?, ?)`

const deleteFriendsSQL = `DELETE FROM friends WHERE (user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)`

const deleteRequestsSQL = `DELETE FROM friend_requests WHERE (from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)`

// CreateUser inserts a new account and returns its assigned ID
func (db *DB) CreateUser(ctx context.Context, username, passwordHash, nickname string) (int64, error) {
	res, err := db.primary.ExecContext(ctx, insertUserSQL, username, passwordHash, nickname)
	if err != nil {
		if isDuplicateEntry(err) {
			return 0, ErrDuplicateUser
		}
		return 0, fmt.Errorf("inserting user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading user id: %w", err)
	}
	return id, nil
}

// GetUserByUsername looks up an account by its login name
func (db *DB) GetUserByUsername(ctx context.Context, username string, c Consistency) (*User, error) {
	var u User
	err := db.Reader(c).GetContext(ctx, &u, selectUserByUsernameSQL, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying user %q: %w", username, err)
	}
	return &u, nil
}

// GetUserByID looks up an account by its ID
func (db *DB) GetUserByID(ctx context.Context, id int64, c Consistency) (*User, error) {
	var u User
	err := db.Reader(c).GetContext(ctx, &u, selectUserByIDSQL, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying user %d: %w", id, err)
	}
	return &u, nil
}

// CreateFriendRequest records a pending request from one user to another.
// Requesting an existing friend or re-requesting while a request is still
// pending both fail with typed errors.
func (db *DB) CreateFriendRequest(ctx context.Context, fromUserID, toUserID int64) error {
	var one int
	err := db.primary.GetContext(ctx, &one, selectFriendshipSQL, fromUserID, toUserID)
	if err == nil {
		return ErrAlreadyFriends
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking friendship: %w", err)
	}

	if _, err := db.primary.ExecContext(ctx, insertFriendRequestSQL, fromUserID, toUserID); err != nil {
		if isDuplicateEntry(err) {
			return ErrDuplicateFriendRequest
		}
		return fmt.Errorf("inserting friend request: %w", err)
	}
	return nil
}

// ListFriends returns the user's friends ordered by ID
func (db *DB) ListFriends(ctx context.Context, userID int64, c Consistency) ([]Friend, error) {
	var friends []Friend
	err := db.Reader(c).SelectContext(ctx, &friends, selectFriendsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("querying friends: %w", err)
	}
	return friends, nil
}

// ListPendingRequests returns requests awaiting the user's decision, oldest first
func (db *DB) ListPendingRequests(ctx context.Context, userID int64, c Consistency) ([]FriendRequest, error) {
	var reqs []FriendRequest
	err := db.Reader(c).SelectContext(ctx, &reqs, selectPendingRequestsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("querying pending requests: %w", err)
	}
	return reqs, nil
}

// AcceptFriendRequest marks the pending request from fromUserID accepted and
// inserts both directed friendship rows in one transaction. ErrNotFound is
// returned when no pending request from that user exists.
func (db *DB) AcceptFriendRequest(ctx context.Context, userID, fromUserID int64) error {
	tx, err := db.primary.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, updateRequestStatusSQL, RequestAccepted, fromUserID, userID)
	if err != nil {
		return fmt.Errorf("accepting request: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, insertFriendSQL, userID, fromUserID); err != nil {
		return fmt.Errorf("inserting friendship: %w", err)
	}
	if _, err := tx.ExecContext(ctx, insertFriendSQL, fromUserID, userID); err != nil {
		return fmt.Errorf("inserting reverse friendship: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing accept: %w", err)
	}
	return nil
}

// RejectFriendRequest marks the pending request from fromUserID rejected.
// ErrNotFound is returned when no pending request from that user exists.
func (db *DB) RejectFriendRequest(ctx context.Context, userID, fromUserID int64) error {
	res, err := db.primary.ExecContext(ctx, updateRequestStatusSQL, RequestRejected, fromUserID, userID)
	if err != nil {
		return fmt.Errorf("rejecting request: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteFriend removes both directed friendship rows and any requests
// between the pair, so either side can re-initiate from a clean slate.
func (db *DB) DeleteFriend(ctx context.Context, userID, friendID int64) error {
	tx, err := db.primary.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteFriendsSQL, userID, friendID, friendID, userID); err != nil {
		return fmt.Errorf("deleting friendship: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteRequestsSQL, userID, friendID, friendID, userID); err != nil {
		return fmt.Errorf("deleting friend requests: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}
	return nil
}
