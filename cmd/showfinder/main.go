package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Belphemur/ShowFinder/internal/client"
	"github.com/Belphemur/ShowFinder/internal/config"
	grpcserver "github.com/Belphemur/ShowFinder/internal/grpc"
	"github.com/Belphemur/ShowFinder/internal/metrics"
	"github.com/Belphemur/ShowFinder/internal/reporting"
	"github.com/Belphemur/ShowFinder/internal/web"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.GetConfig()
	logger := config.GetLogger()

	logger.Info().
		Str("catalog_base_url", cfg.CatalogBaseURL).
		Str("proxy_connection_string", cfg.ProxyConnectionString).
		Int("server_port", cfg.Server.Port).
		Str("server_address", cfg.Server.Address).
		Bool("web_enabled", cfg.Web.Enabled).
		Msg("Application started with configuration")

	flush, err := reporting.Init(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize Sentry, continuing without error reporting")
	}
	defer flush()

	catalog := client.NewClient(cfg)
	defer func() {
		if err := catalog.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close catalog client")
		}
	}()

	grpcServer := grpcserver.NewGRPCServer(catalog)

	var httpServers []*http.Server
	serve := func(name string, srv *http.Server) {
		httpServers = append(httpServers, srv)
		go func() {
			logger.Info().Str("address", srv.Addr).Msgf("Starting %s HTTP server", name)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Fatal().Err(err).Msgf("Failed to serve %s", name)
			}
		}()
	}

	if cfg.Metrics.Enabled {
		serve("metrics", metrics.NewHTTPServer(cfg.Server.Address, cfg.Metrics.Port))
	}

	if cfg.Web.Enabled {
		webServer, err := web.NewServer(catalog)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to create web server")
		}
		serve("web", web.NewHTTPServer(cfg.Server.Address, cfg.Web.Port, webServer.Handler()))
	}

	address := net.JoinHostPort(cfg.Server.Address, strconv.Itoa(cfg.Server.Port))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		logger.Fatal().Err(err).Str("address", address).Msg("Failed to create listener")
	}

	logger.Info().Str("address", address).Msg("Starting gRPC server")

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		for _, srv := range httpServers {
			if err := srv.Shutdown(ctx); err != nil {
				logger.Error().Err(err).Str("address", srv.Addr).Msg("Failed to shutdown HTTP server")
			}
		}
		grpcServer.GracefulStop()
	}()

	if err := grpcServer.Serve(listener); err != nil {
		logger.Fatal().Err(err).Msg("Failed to serve gRPC")
	}

	logger.Info().Msg("Server stopped gracefully")
}
