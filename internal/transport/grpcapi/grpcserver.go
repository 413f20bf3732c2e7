package grpcapi

import (
	"log/slog"

	grpcprom "github.com/grpc-ecosystem/go-grpc-middleware/providers/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	classifierv1 "github.com/heartmarshall/segmentbench/pkg/api/classifierv1"
)

// ServerOptions configures NewGRPCServer.
type ServerOptions struct {
	Logger *slog.Logger
	// Metrics is optional; when set its interceptor is installed and its
	// per-method series are initialized.
	Metrics        *grpcprom.ServerMetrics
	MaxRecvMsgSize int
	Reflection     bool
}

// NewGRPCServer builds a grpc.Server with the Classifier service, the
// standard health service and, optionally, server reflection. Interceptors
// run request ID, logging, metrics, recovery (outermost first).
//
// The returned health server starts NOT_SERVING for the Classifier service;
// the caller flips it once its dependencies are reachable.
func NewGRPCServer(srv *Server, opts ServerOptions) (*grpc.Server, *health.Server) {
	interceptors := []grpc.UnaryServerInterceptor{
		requestIDInterceptor(opts.Logger),
		loggingInterceptor(opts.Logger),
	}
	if opts.Metrics != nil {
		interceptors = append(interceptors, opts.Metrics.UnaryServerInterceptor())
	}
	interceptors = append(interceptors, recoveryInterceptor(opts.Logger))

	serverOpts := []grpc.ServerOption{grpc.ChainUnaryInterceptor(interceptors...)}
	if opts.MaxRecvMsgSize > 0 {
		serverOpts = append(serverOpts, grpc.MaxRecvMsgSize(opts.MaxRecvMsgSize))
	}

	gs := grpc.NewServer(serverOpts...)
	classifierv1.RegisterClassifierServer(gs, srv)

	hs := health.NewServer()
	hs.SetServingStatus(classifierv1.Classifier_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	healthpb.RegisterHealthServer(gs, hs)

	if opts.Reflection {
		reflection.Register(gs)
	}
	if opts.Metrics != nil {
		opts.Metrics.InitializeMetrics(gs)
	}

	return gs, hs
}
