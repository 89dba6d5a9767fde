// Package api serves the dashboard as JSON under /api.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"faunadash/adapters/excel"
	"faunadash/domain/core"
	"faunadash/internal/dashboard"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handler holds the dependencies of the JSON endpoints
type Handler struct {
	service *dashboard.Service
	excel   excel.ExcelConfig
	logger  *slog.Logger
}

// NewHandler creates the API handler
func NewHandler(service *dashboard.Service, excelConfig excel.ExcelConfig, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, excel: excelConfig, logger: logger}
}

// Router returns the chi router serving /api
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.logger))
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/healthz", h.handleHealth)
		r.Post("/datasets", h.handleUpload)
		r.Get("/dashboard", h.handleDashboardQuery)
		r.Post("/dashboard", h.handleDashboardJSON)
	})
	return r
}

// requestLogger logs one line per request with a request ID
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := core.NewRequestID()
			w.Header().Set("X-Request-ID", requestID.String())

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			logger.Info("[API] request",
				"request_id", requestID.String(),
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"elapsed_ms", float64(time.Since(start).Nanoseconds())/1e6)
		})
	}
}
