package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

// NewMonitoringHandler serves Prometheus metrics from reg on /metrics and health checks on /healthz.
func NewMonitoringHandler(log *slog.Logger, reg *prometheus.Registry, db DBPinger, authHost string) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	mux.Handle("/healthz", NewHealthChecker(db, authHost, log))

	return mux
}

// StartMonitoringServer runs the metrics and health endpoints until ctx is done.
func StartMonitoringServer(
	ctx context.Context,
	log *slog.Logger,
	reg *prometheus.Registry,
	db DBPinger,
	port int,
	authHost string,
) {
	Serve(ctx, log.With(slog.String("server", "monitoring")), NewMonitoringHandler(log, reg, db, authHost), port)
}

// Serve runs handler on port until ctx is done, then shuts the listener down gracefully.
func Serve(ctx context.Context, log *slog.Logger, handler http.Handler, port int) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		}
	}()

	log.InfoContext(ctx, "Server is listening", "port", port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.ErrorContext(ctx, "Server failed", "error", err)
		return
	}

	log.Info("Server stopped")
}
