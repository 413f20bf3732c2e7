package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	grpcprom "github.com/grpc-ecosystem/go-grpc-middleware/providers/prometheus"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/heartmarshall/segmentbench/internal/adapter/postgres"
	segmentrepo "github.com/heartmarshall/segmentbench/internal/adapter/postgres/segment"
	"github.com/heartmarshall/segmentbench/internal/classifier"
	"github.com/heartmarshall/segmentbench/internal/config"
	segmentsvc "github.com/heartmarshall/segmentbench/internal/service/segment"
	"github.com/heartmarshall/segmentbench/internal/textnorm"
	"github.com/heartmarshall/segmentbench/internal/transport/grpcapi"
	"github.com/heartmarshall/segmentbench/internal/transport/middleware"
	"github.com/heartmarshall/segmentbench/internal/transport/rest"
	classifierv1 "github.com/heartmarshall/segmentbench/pkg/api/classifierv1"
)

// RunREST loads configuration from configPath (see config.Load) and
// serves the JSON API until ctx is cancelled. It uses the regexp normalizer.
func RunREST(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger := NewLogger(cfg.Log)
	logger.Info("starting rest server",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, svc, err := buildService(ctx, cfg, logger, textnorm.Normalize)
	if err != nil {
		return err
	}
	defer pool.Close()

	reg := newRegistry()
	handler := rest.NewRouter(rest.RouterDeps{
		Classify:    rest.NewClassifyHandler(svc, logger),
		Health:      rest.NewHealthHandler(pool, Version),
		Metrics:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		HTTPMetrics: middleware.NewHTTPMetrics(reg),
		Logger:      logger,
	})

	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	lis, err := net.Listen("tcp", cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Server.Addr(), err)
	}

	return serveHTTP(ctx, lis, srv, cfg.Server.ShutdownTimeout, logger.With("system", "http"))
}

// RunGRPC loads configuration and serves classifier.v1.Classifier until ctx
// is cancelled, plus /metrics on a side port when enabled. It uses the
// single-pass normalizer.
func RunGRPC(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger := NewLogger(cfg.Log)
	logger.Info("starting grpc server",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, svc, err := buildService(ctx, cfg, logger, textnorm.NormalizeFast)
	if err != nil {
		return err
	}
	defer pool.Close()

	reg := newRegistry()
	metrics := grpcprom.NewServerMetrics(grpcprom.WithServerHandlingTimeHistogram())
	reg.MustRegister(metrics)

	gs, hs := grpcapi.NewGRPCServer(grpcapi.NewServer(svc, logger), grpcapi.ServerOptions{
		Logger:         logger,
		Metrics:        metrics,
		MaxRecvMsgSize: cfg.GRPC.MaxRecvMsgSize,
		Reflection:     cfg.GRPC.Reflection,
	})
	// NewPool pinged the database already.
	hs.SetServingStatus(classifierv1.Classifier_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	lis, err := net.Listen("tcp", cfg.GRPC.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.GRPC.Addr(), err)
	}

	var mlis net.Listener
	if cfg.Metrics.Enabled {
		mlis, err = net.Listen("tcp", cfg.Metrics.Addr())
		if err != nil {
			_ = lis.Close()
			return fmt.Errorf("listen %s: %w", cfg.Metrics.Addr(), err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer hs.Shutdown()
		return serveGRPC(gctx, lis, gs, cfg.Server.ShutdownTimeout, logger.With("system", "grpc"))
	})
	if mlis != nil {
		mux := http.NewServeMux()
		mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
		msrv := &http.Server{Handler: mux, ReadTimeout: cfg.Server.ReadTimeout}
		g.Go(func() error {
			return serveHTTP(gctx, mlis, msrv, cfg.Server.ShutdownTimeout, logger.With("system", "metrics"))
		})
	}

	return g.Wait()
}

func buildService(ctx context.Context, cfg *config.Config, logger *slog.Logger, normalize textnorm.Func) (*pgxpool.Pool, *segmentsvc.Service, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	svc := segmentsvc.NewService(
		logger,
		segmentrepo.New(pool),
		classifier.NewKeyword(cfg.Classifier.Seed),
		postgres.NewTxManager(pool),
		normalize,
		segmentsvc.Config{
			HistoryFetch:  cfg.Segment.HistoryFetch,
			HistoryLimit:  cfg.Segment.HistoryLimit,
			AtomicHistory: cfg.Segment.AtomicHistory,
		},
	)
	return pool, svc, nil
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
