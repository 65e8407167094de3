// ABOUTME: Shared gRPC dialing and the retry-once policy for backend calls
// ABOUTME: All service wrappers route their RPCs through withRetry

package client

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// Dial opens a client connection to a backend service. Connections are lazy;
// the first RPC establishes the transport.
func Dial(addr string) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	return conn, nil
}

// withRetry invokes call and repeats it once if the transport reported
// Unavailable. Other gRPC codes and context cancellation are returned as-is:
// a second attempt only helps when the backend was mid-restart.
func withRetry(ctx context.Context, call func(context.Context) error) error {
	err := call(ctx)
	if err == nil || ctx.Err() != nil {
		return err
	}
	if status.Code(err) != codes.Unavailable {
		return err
	}
	return call(ctx)
}
