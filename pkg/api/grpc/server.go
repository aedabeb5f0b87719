package grpc

import (
	"context"
	"fmt"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the health service name reported for the question endpoint
const ServiceName = "theoryq.QuestionService"

// Server represents the gRPC health server
type Server struct {
	server   *grpc.Server
	listener net.Listener
	health   *health.Server
	logger   *zap.Logger
}

// Config holds gRPC server configuration
type Config struct {
	Addr   string
	Logger *zap.Logger
}

// NewServer creates a new gRPC server exposing the standard health service
func NewServer(cfg *Config) (*Server, error) {
	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("failed to create listener: %w", err)
	}

	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()

	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	return &Server{
		server:   grpcServer,
		listener: listener,
		health:   healthServer,
		logger:   cfg.Logger,
	}, nil
}

// Addr returns the address the server is listening on
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Start starts the gRPC server
func (s *Server) Start() error {
	s.logger.Info("starting gRPC server", zap.String("addr", s.Addr()))

	if err := s.server.Serve(s.listener); err != nil {
		return fmt.Errorf("failed to serve gRPC: %w", err)
	}

	return nil
}

// Shutdown marks every service NOT_SERVING and stops the server gracefully.
// If ctx expires first the server is stopped forcefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down gRPC server")

	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.server.Stop()
		return fmt.Errorf("gRPC shutdown timeout: %w", ctx.Err())
	}

	s.logger.Info("gRPC server shut down complete")
	return nil
}
