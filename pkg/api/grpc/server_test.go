package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func TestHealthCheck(t *testing.T) {
	s, err := NewServer(&Config{Addr: "127.0.0.1:0", Logger: zaptest.NewLogger(t)})
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() { errCh <- s.Start() }()

	conn, err := grpc.NewClient(s.Addr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	client := healthpb.NewHealthClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, svc := range []string{"", ServiceName} {
		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: svc})
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
	}

	require.NoError(t, s.Shutdown(ctx))

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("gRPC server did not stop")
	}
}

func TestNewServer_BadAddress(t *testing.T) {
	_, err := NewServer(&Config{Addr: "not-an-address", Logger: zaptest.NewLogger(t)})
	assert.Error(t, err)
}
