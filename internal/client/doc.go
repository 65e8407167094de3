// Package client provides the gateway's typed clients for the auth, chat,
// and presence services.
//
// # Overview
//
// Each backend service gets a thin wrapper (Auth, Chat, Presence) around its
// generated gRPC client. The wrappers add one behavior on top of the raw
// stubs: a call that fails with codes.Unavailable is retried exactly once,
// which papers over a service restart without hiding a real outage.
//
// # Usage
//
// Wrappers share a ClientConn per backend address:
//
//	conn, err := client.Dial(cfg.AuthAddr())
//	if err != nil {
//		return err
//	}
//	defer conn.Close()
//	authc := client.NewAuth(conn)
//
// # Error Handling
//
// Auth and Chat expose the raw protobuf responses so callers can distinguish
// domain failures (Success=false, ErrorMsg set) from transport failures (a
// non-nil error). Presence collapses both into an error because its callers
// only care whether the operation happened.
package client
