package ui

import (
	"net/http"
	"strings"
	"time"

	"faunadash/domain/core"

	"github.com/gin-gonic/gin"
)

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(s.requestLogger())

	static, err := staticFS()
	if err != nil {
		s.logger.Error("[Static] cannot open embedded static files", "error", err)
		return
	}
	s.router.StaticFS("/static", http.FS(static))
}

// requestLogger logs one line per request with a request ID
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := core.NewRequestID()
		c.Set("requestID", requestID.String())
		c.Header("X-Request-ID", requestID.String())

		c.Next()

		// /api requests are logged by the API router
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			return
		}
		s.logger.Info("[Server] request",
			"request_id", requestID.String(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed_ms", float64(time.Since(start).Nanoseconds())/1e6)
	}
}
