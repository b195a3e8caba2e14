package grpc

import (
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Options configures the interceptor chain of the gRPC server
type Options struct {
	APIToken string
	Log      *logrus.Entry
	Recorder CallRecorder     // Optional
	Limiter  *PeerRateLimiter // Optional
}

// NewGRPCServer builds a grpc.Server with TransferService, health and reflection registered
// Reflection only lists TransferService, see TransferService_ServiceDesc
// Interceptor order: logging, metrics, rate limit, auth
func NewGRPCServer(srv TransferServiceServer, opts Options) (*grpc.Server, *health.Server) {
	interceptors := []grpc.UnaryServerInterceptor{LoggingInterceptor(opts.Log)}
	if opts.Recorder != nil {
		interceptors = append(interceptors, MetricsInterceptor(opts.Recorder))
	}
	if opts.Limiter != nil {
		interceptors = append(interceptors, opts.Limiter.UnaryInterceptor())
	}
	interceptors = append(interceptors, AuthInterceptor(opts.APIToken))

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors...))
	RegisterTransferServiceServer(grpcServer, srv)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(serviceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	reflection.Register(grpcServer)

	return grpcServer, healthServer
}
