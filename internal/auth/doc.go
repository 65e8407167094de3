// Package auth implements the TinyIM account service.
//
// # Accounts
//
// Accounts are rows in the MySQL users table keyed by an auto-increment
// user id. Usernames are unique; passwords are stored as bcrypt hashes
// and never leave the service. Registration and login run against the
// primary pool so a fresh account is immediately visible to its owner.
//
// # Session Tokens
//
// Login mints an opaque session token:
//
//	token, err := tokens.Mint(ctx, userID)
//	userID, err := tokens.Verify(ctx, token)
//
// Tokens are 32 hex characters of crypto/rand output stored in Redis
// under token:<value> with a 24 hour TTL. Possession is the whole
// credential; nothing about the user is derivable from the string, and
// expiry is enforced by Redis rather than by clock checks here. Each
// login mints a fresh token and leaves earlier ones valid until they
// expire or are revoked.
//
// # Friend Graph
//
// The service owns the friendship tables:
//
//   - AddFriend files a pending friend request
//   - HandleFriendRequest accepts or rejects one
//   - GetFriendList returns accepted friends, decorated with live
//     online flags from the presence service
//   - DeleteFriend removes the edge in both directions
//
// Friend lists tolerate a presence outage: when the status lookup
// fails, the list is returned with every friend reported offline.
//
// # Errors
//
// RPC responses carry success flags and user-facing error strings
// (duplicate username, wrong password) rather than gRPC status codes,
// so the gateway can relay them to clients verbatim. Transport-level
// errors still surface as gRPC errors.
package auth
