// Package gateway implements the WebSocket edge node of the TinyIM backend.
//
// # Overview
//
// The gateway package is the client-facing half of the system. It owns the
// HTTP server that terminates WebSocket sessions and serves the REST API,
// the per-user session table, the bounded worker pool that persists chat
// sends, and the routing-plane pieces (directory, bus subscription,
// reconciler) that stitch multiple edges into one network.
//
// # Gateway Struct
//
// The Gateway struct is the main entry point:
//
//	type Gateway struct {
//	    cfg       *config.Config
//	    table     *sessionTable
//	    pool      *pond.WorkerPool
//	    auth      authClient
//	    chat      chatClient
//	    presence  presenceClient
//	    router    frameRouter
//	    directory directoryClient
//	    bus       *routing.Bus
//	    httpServer *http.Server
//	    // ... and more
//	}
//
// Collaborators sit behind small interfaces so tests can drive the gateway
// with scripted fakes; production wiring in New uses the internal/client
// gRPC wrappers and the Redis-backed routing plane.
//
// # Connection Lifecycle
//
// A client connects to the WebSocket path with ?token=. The gateway
// upgrades first and authenticates second, so a bad token is rejected with
// close code 1008 (policy violation) rather than a silent TCP reset. A
// verified session joins the table (displacing any previous session for
// the same user), registers in the routing directory, announces presence,
// and receives its stored offline backlog before steady-state frame
// exchange begins.
//
// # Frame Routing
//
// Outbound frames try the local session table first, then the routing
// directory plus bus. Frames arriving over the bus are delivered to local
// sessions only, which keeps a stale directory entry from bouncing a frame
// between edges.
//
// # Shutdown
//
// Run blocks until its context is canceled, then shuts down in order: stop
// accepting HTTP, tear down sessions, unsubscribe from the bus, wait for
// in-flight persistence work, and close the backing connections.
package gateway
