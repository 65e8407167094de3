// ABOUTME: Shared data types, errors, and read-consistency selection for persistence
// ABOUTME: Defines User, Message, ChatSession structs used by the auth and chat services

package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrDuplicateUser is returned when registering a username that is taken
var ErrDuplicateUser = errors.New("username already exists")

// ErrAlreadyFriends is returned when requesting friendship with an existing friend
var ErrAlreadyFriends = errors.New("already friends")

// ErrDuplicateFriendRequest is returned when a pending request already exists
var ErrDuplicateFriendRequest = errors.New("friend request already pending")

// Consistency selects which pool serves a read. Reads that feed
// user-visible correctness must be Strong; browsing reads may be Eventual.
type Consistency int

const (
	// Strong pins the read to the primary pool
	Strong Consistency = iota
	// Eventual allows the read to hit the replica pool
	Eventual
)

// User represents an account row
type User struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Nickname     string    `db:"nickname"`
	CreatedAt    time.Time `db:"created_at"`
}

// Friend represents one row of a user's friend list
type Friend struct {
	UserID   int64  `db:"id"`
	Username string `db:"username"`
	Nickname string `db:"nickname"`
}

// FriendRequest represents a pending friend request addressed to a user
type FriendRequest struct {
	FromUserID   int64     `db:"from_user_id"`
	FromUsername string    `db:"from_username"`
	CreatedAt    time.Time `db:"created_at"`
}

// Friend request states stored in friend_requests.status
const (
	RequestPending  = 0
	RequestAccepted = 1
	RequestRejected = 2
)

// Message represents one persisted chat message. Timestamp is milliseconds
// since epoch, stamped when the row is written.
type Message struct {
	ID         int64  `db:"id"`
	FromUserID int64  `db:"from_user_id"`
	ToUserID   int64  `db:"to_user_id"`
	Content    string `db:"content"`
	Timestamp  int64  `db:"created_at"`
}

// ChatSession represents the per-(owner, peer) conversation summary row
type ChatSession struct {
	OwnerID        int64  `db:"owner_id"`
	PeerID         int64  `db:"peer_id"`
	LastMsgContent string `db:"last_msg_content"`
	LastMsgTS      int64  `db:"last_msg_ts"`
	UnreadCount    int32  `db:"unread_count"`
}
