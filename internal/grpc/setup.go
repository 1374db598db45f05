package grpc

import (
	"sync"

	grpcprom "github.com/grpc-ecosystem/go-grpc-middleware/providers/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/Belphemur/ShowFinder/internal/client"
)

var (
	grpcServerMetrics         *grpcprom.ServerMetrics
	registerServerMetricsOnce sync.Once
)

// NewGRPCServer creates a gRPC server exposing the catalog service with
// Prometheus metrics, health checking and reflection.
func NewGRPCServer(c client.Client) *grpc.Server {
	registerServerMetricsOnce.Do(func() {
		grpcServerMetrics = grpcprom.NewServerMetrics(
			grpcprom.WithServerHandlingTimeHistogram(),
		)
		prometheus.MustRegister(grpcServerMetrics)
	})

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(grpcServerMetrics.UnaryServerInterceptor()),
	)

	RegisterCatalogServiceServer(grpcServer, NewServer(c))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	// grpcurl and friends
	reflection.Register(grpcServer)

	grpcServerMetrics.InitializeMetrics(grpcServer)

	return grpcServer
}
