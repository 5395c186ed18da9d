package api

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

func peerContext(addr string) context.Context {
	return peer.NewContext(context.Background(), &peer.Peer{
		Addr: &net.TCPAddr{IP: net.ParseIP(addr), Port: 40000},
	})
}

func TestLimiterForReusesBucketPerIP(t *testing.T) {
	l := newIPRateLimiter(rate.Limit(1), 1)

	a := l.limiterFor("10.0.0.1:1234")
	b := l.limiterFor("10.0.0.1:5678")
	c := l.limiterFor("10.0.0.2:1234")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}

func TestUnaryInterceptorRateLimits(t *testing.T) {
	i := NewInterceptors(rate.Limit(1), 2)
	info := &grpc.UnaryServerInfo{FullMethod: "/oxide.ChatService/LoginUser"}
	handler := func(ctx context.Context, req any) (any, error) { return "ok", nil }

	ctx := peerContext("10.0.0.1")

	// Burst of 2 passes, the third call in the same instant is refused.
	for range 2 {
		resp, err := i.Unary()(ctx, nil, info, handler)
		require.NoError(t, err)
		assert.Equal(t, "ok", resp)
	}

	_, err := i.Unary()(ctx, nil, info, handler)
	require.Error(t, err)
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))

	// A different client is unaffected.
	_, err = i.Unary()(peerContext("10.0.0.2"), nil, info, handler)
	assert.NoError(t, err)
}

func TestUnaryInterceptorWithoutPeer(t *testing.T) {
	i := NewInterceptors(rate.Limit(1), 1)
	info := &grpc.UnaryServerInfo{FullMethod: "/oxide.ChatService/LoginUser"}
	handler := func(ctx context.Context, req any) (any, error) { return "ok", nil }

	resp, err := i.Unary()(context.Background(), nil, info, handler)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}
