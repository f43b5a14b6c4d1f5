package tools

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the HTTP surface of the service: tool dispatch,
// tool listing, health check, and Prometheus metrics.
func NewRouter(log *slog.Logger, reg *Registry, promReg *prometheus.Registry) http.Handler {
	router := chi.NewRouter()

	router.Get("/healthz", func(writer http.ResponseWriter, req *http.Request) {
		log.DebugContext(req.Context(), "Performing health check")
		writer.WriteHeader(http.StatusOK)
		if _, err := writer.Write([]byte("OK")); err != nil {
			log.ErrorContext(req.Context(), "failed to write reply", "error", err)
		}
	})
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(promReg, promhttp.HandlerOpts{}))

	router.Get("/v1/tools", func(writer http.ResponseWriter, _ *http.Request) {
		WriteData(writer, map[string]any{"tools": reg.List()})
	})
	router.Post("/v1/tools/{name}", func(writer http.ResponseWriter, req *http.Request) {
		reg.Serve(writer, req, chi.URLParam(req, "name"))
	})

	return router
}

// Serve runs the tool server until the context is canceled, then shuts it
// down gracefully. The write timeout leaves room for the slowest pipeline
// (one 10s geocoding call plus two 30s weather calls).
func Serve(ctx context.Context, log *slog.Logger, addr string, handler http.Handler) error {
	const (
		readTimeout     = 5 * time.Second
		writeTimeout    = 75 * time.Second
		shutdownTimeout = 5 * time.Second
	)

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	log.InfoContext(ctx, "Tool server started", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
