// Package chat implements the TinyIM message persistence service.
//
// # Messages
//
// Messages are rows in MySQL with Unix-millisecond timestamps stamped at
// persist time, so ordering within a conversation follows one clock. Each
// save also upserts both participants' chat_sessions rows in the same
// transaction: the sender's summary refreshes, the receiver's unread
// counter increments.
//
// # Reads
//
// History and session listings are plain SQL reads:
//
//   - GetHistory returns the most recent page of a conversation,
//     reordered oldest first, from the replica
//   - GetRecentSessions returns conversation summaries with unread
//     counts from the primary, so a just-sent message is never missing
//     from its sender's own list
//   - GetOfflineMessages assembles the unread tail of every conversation
//     without touching the counters
//
// AckMessages is the only operation that resets an unread counter;
// fetching the backlog never does, so a crash between fetch and ack
// loses nothing.
package chat
