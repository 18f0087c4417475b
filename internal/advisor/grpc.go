package advisor

import (
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServerOptions configures NewGRPCServer
type ServerOptions struct {
	EnableReflection bool
	Logger           zerolog.Logger
}

// NewGRPCServer builds a gRPC server with the advisor and health services
// registered. The returned health server starts SERVING for both the overall
// server and the advisor service.
func NewGRPCServer(advisor AdvisorServer, opts ServerOptions) (*grpc.Server, *health.Server) {
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			LoggingInterceptor(opts.Logger),
			RecoveryInterceptor(opts.Logger),
		),
		grpc.ChainStreamInterceptor(
			StreamLoggingInterceptor(opts.Logger),
			StreamRecoveryInterceptor(opts.Logger),
		),
	)

	RegisterAdvisorServer(grpcServer, advisor)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	if opts.EnableReflection {
		reflection.Register(grpcServer)
	}

	return grpcServer, healthServer
}
