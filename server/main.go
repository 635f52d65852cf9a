package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/frankonly/datasets/api"
	pb "github.com/frankonly/datasets/api/datasetspb"
	"github.com/frankonly/datasets/config"
	"github.com/frankonly/datasets/datasets"
	"github.com/frankonly/datasets/log"
	"github.com/frankonly/datasets/storage"
)

var configFile = flag.String("config", "", "The config file, ./datasets.yaml if empty")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := log.Init(cfg.LogOutputs...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger := log.New()
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}

func run(cfg *config.Config, logger *zap.SugaredLogger) error {
	resolver := datasets.Default()
	if cfg.BaseDir != "" {
		var err error
		if resolver, err = datasets.NewResolver(cfg.BaseDir); err != nil {
			return err
		}
	}

	db, err := storage.NewLevelDB(cfg.DBDir)
	if err != nil {
		return fmt.Errorf("failed to initialize db: %w", err)
	}
	stats := storage.NewLookupStats(db)
	defer func() { _ = stats.Close() }()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	var opts []grpc.ServerOption
	if cfg.TLS.Enabled {
		creds, err := credentials.NewServerTLSFromFile(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		if err != nil {
			return fmt.Errorf("failed to generate credentials: %w", err)
		}
		opts = append(opts, grpc.Creds(creds))
	}

	grpcServer := grpc.NewServer(opts...)
	pb.RegisterDatasetsServer(grpcServer, api.NewServer(resolver, stats, logger))

	var metricsServer *http.Server
	if cfg.MetricsPort != 0 {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsServer = &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.MetricsPort),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}

		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Errorw("metrics server failed", "error", err)
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		logger.Infow("shutting down")
		if metricsServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = metricsServer.Shutdown(shutdownCtx)
		}
		grpcServer.GracefulStop()
	}()

	logger.Infow("serving examples", "port", cfg.Port, "metrics_port", cfg.MetricsPort, "base", resolver.Base(), "tls", cfg.TLS.Enabled)
	return grpcServer.Serve(lis)
}
