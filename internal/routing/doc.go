// Package routing moves frames between edge nodes through Redis.
//
// Two primitives cooperate:
//
//   - Directory: a hash mapping each online user to the ID of the gateway
//     holding their connection. Joins overwrite, leaves delete only while
//     the entry still names the departing node.
//   - Bus: per-gateway pub/sub topics ("edge.<gateway_id>") carrying
//     serialized frames prefixed with the target user's ID.
//
// Router glues them together: look up the user's node, publish to its
// topic. A missing directory entry means the user is offline and the frame
// is simply not forwarded; durability comes from the message store, not
// the bus.
package routing
