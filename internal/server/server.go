package server

import (
	"context"
	"net"
	"time"

	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"homework_tracker/pkg/logger"
)

// ServiceName is the name reported by the health service.
const ServiceName = "homework.tracker"

// Dependency is one backing service; a non-nil Check error marks the service NOT_SERVING.
type Dependency struct {
	Name  string
	Check func(ctx context.Context) error
}

type Server struct {
	server *grpc.Server
	health *health.Server
	logger *logger.Logger
}

func NewServer(log *logger.Logger, timeout time.Duration) *Server {
	interceptor := grpc_middleware.ChainUnaryServer(
		logger.NewMetadataUnaryInterceptor(),
		logger.NewUnaryLoggingInterceptor(log),
		NewErrorUnaryInterceptor(),
	)

	opts := []grpc.ServerOption{grpc.UnaryInterceptor(interceptor)}
	if timeout > 0 {
		opts = append(opts, grpc.ConnectionTimeout(timeout))
	}
	srv := grpc.NewServer(opts...)

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(srv, healthSrv)
	reflection.Register(srv)

	healthSrv.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Server{
		server: srv,
		health: healthSrv,
		logger: log,
	}
}

// GRPC exposes the underlying server for registering more services.
func (s *Server) GRPC() *grpc.Server {
	return s.server
}

func (s *Server) SetServing(serving bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus(ServiceName, st)
	s.health.SetServingStatus("", st)
}

// CheckOnce runs every dependency check and updates the health status.
func (s *Server) CheckOnce(ctx context.Context, deps []Dependency) bool {
	healthy := true
	for _, p := range deps {
		if err := p.Check(ctx); err != nil {
			healthy = false
			s.logger.WarnContext(ctx, "health check failed", zap.String("dependency", p.Name), zap.Error(err))
		}
	}
	s.SetServing(healthy)
	return healthy
}

// WatchHealth re-runs the checks every interval until ctx is done.
func (s *Server) WatchHealth(ctx context.Context, interval time.Duration, deps []Dependency) {
	s.CheckOnce(ctx, deps)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.CheckOnce(ctx, deps)
		}
	}
}

func (s *Server) Serve(lis net.Listener) error {
	return s.server.Serve(lis)
}

func (s *Server) Stop() {
	s.health.Shutdown()
	s.server.GracefulStop()
}
