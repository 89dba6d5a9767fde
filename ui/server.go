package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"faunadash/adapters/excel"
	"faunadash/internal/dashboard"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
)

//go:embed templates/*.html static/* content/*.md
var embeddedFiles embed.FS

// Server represents the web server for the fauna dashboard
type Server struct {
	router    *gin.Engine
	service   *dashboard.Service
	excel     excel.ExcelConfig
	templates *template.Template
	intro     template.HTML
	logger    *slog.Logger
}

// NewServer creates the server. api, when not nil, is mounted under /api.
func NewServer(service *dashboard.Service, excelConfig excel.ExcelConfig, api http.Handler, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		router:  gin.New(),
		service: service,
		excel:   excelConfig,
		logger:  logger,
	}

	if err := s.initialize(); err != nil {
		return nil, err
	}

	s.setupMiddleware()
	s.setupRoutes(api)
	return s, nil
}

// initialize parses templates and renders the intro text
func (s *Server) initialize() error {
	funcMap := template.FuncMap{
		"pct": func(count, max int) float64 {
			if max == 0 {
				return 0
			}
			return float64(count) * 100 / float64(max)
		},
		"percent": func(share float64) string {
			return fmt.Sprintf("%.1f%%", share*100)
		},
		"decimal": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
		"upper": strings.ToUpper,
	}

	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	s.templates = templates

	intro, err := embeddedFiles.ReadFile("content/intro.md")
	if err != nil {
		return fmt.Errorf("failed to read intro text: %w", err)
	}
	s.intro = template.HTML(markdown.ToHTML(intro, nil, nil))

	return nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes(api http.Handler) {
	s.router.GET("/", s.handleIndex)
	s.router.POST("/upload", s.handleFileUpload)

	if api != nil {
		s.router.Any("/api/*path", gin.WrapH(api))
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	s.logger.Info("[Server] listening", "addr", addr)
	return s.router.Run(addr)
}

func staticFS() (fs.FS, error) {
	return fs.Sub(embeddedFiles, "static")
}
