// Package store provides persistent storage for accounts, friendships, and
// chat history using MySQL, plus Redis client construction for the shared
// runtime state (tokens, presence, routing, frame bus).
//
// # Architecture
//
// DB wraps two sqlx connection pools:
//
//   - primary: serves all writes and Strong reads
//   - replica: serves Eventual reads
//
// When the configured replica mirrors the primary (single-node deployments),
// both handles point at one pool and no second connection is opened. Callers
// pick the pool per read through the Consistency argument; writes never take
// one because they always land on the primary.
//
// # Data Models
//
//   - User: account row with bcrypt password hash
//   - Friend: one row of a user's friend list (directed friends rows, two per pair)
//   - FriendRequest: pending request awaiting the recipient's decision
//   - Message: persisted chat message with millisecond timestamp
//   - ChatSession: per-(owner, peer) conversation summary with unread counter
//
// # Consistency Rules
//
// Reads that feed user-visible correctness pin to the primary:
//
//   - GetOfflineMessages: a message persisted moments before reconnect must
//     not be lost to replica lag
//   - credential lookups during login
//
// Browsing reads (history, recent sessions, friend lists) may go Eventual.
//
// # Error Handling
//
// Common errors:
//
//   - ErrNotFound: requested entity does not exist
//   - ErrDuplicateUser: username already registered
//   - ErrAlreadyFriends / ErrDuplicateFriendRequest: friend-request conflicts
//
// All methods accept context.Context for cancellation support.
//
// # Testing
//
// Use NewWithDB with sqlmock handles for unit tests:
//
//	mockDB, mock, _ := sqlmock.New()
//	db := store.NewWithDB(mockDB, mockDB)
//
// # Schema
//
// The schema is embedded as CREATE TABLE IF NOT EXISTS statements and applied
// by EnsureSchema when the auth and chat services start.
package store
