// Package api holds the cross-cutting gRPC server plumbing: request
// logging and per-client rate limiting, applied as interceptors.
package api

import (
	"context"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"oxide/pkg/logx"
)

// Interceptors bundles the unary and stream server options for the service.
type Interceptors struct {
	limiter *ipRateLimiter
}

// NewInterceptors creates the interceptor set, limiting each client IP to
// r requests per second with burst b.
func NewInterceptors(r rate.Limit, b int) *Interceptors {
	return &Interceptors{limiter: newIPRateLimiter(r, b)}
}

// Unary returns the interceptor chain for unary RPCs.
func (i *Interceptors) Unary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if err := i.allow(ctx); err != nil {
			return nil, err
		}

		start := time.Now()
		resp, err := handler(ctx, req)
		logRequest(info.FullMethod, start, err)
		return resp, err
	}
}

// Stream returns the interceptor chain for server-streaming RPCs.
func (i *Interceptors) Stream() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if err := i.allow(ss.Context()); err != nil {
			return err
		}

		start := time.Now()
		err := handler(srv, ss)
		logRequest(info.FullMethod, start, err)
		return err
	}
}

func (i *Interceptors) allow(ctx context.Context) error {
	p, ok := peer.FromContext(ctx)
	if !ok {
		return nil
	}
	if !i.limiter.limiterFor(p.Addr.String()).Allow() {
		return status.Error(codes.ResourceExhausted, "rate limit exceeded")
	}
	return nil
}

func logRequest(method string, start time.Time, err error) {
	if err != nil {
		logx.Error(err, "rpc failed", "method", method, "duration", time.Since(start).String())
		return
	}
	logx.Info("rpc handled", "method", method, "duration", time.Since(start).String())
}
