package ui

import (
	"html/template"
	"net/http"

	"faunadash/internal/dashboard"
	"faunadash/internal/errors"

	"github.com/gin-gonic/gin"
)

// pageData feeds index.html
type pageData struct {
	Intro       template.HTML
	Error       string
	HasDataset  bool
	View        dashboard.View
	MaxUploadMB int64
	PreviewRows int
}

func (s *Server) newPage() pageData {
	return pageData{
		Intro:       s.intro,
		MaxUploadMB: s.excel.MaxFileSize / (1024 * 1024),
		PreviewRows: s.service.Options().PreviewRows,
	}
}

// handleIndex renders the upload form, and the dashboard once a dataset is loaded
func (s *Server) handleIndex(c *gin.Context) {
	page := s.newPage()

	view, err := s.service.Render(dashboard.SelectionFromQuery(c.Request.URL.Query()))
	switch {
	case err == nil:
		page.HasDataset = true
		page.View = view
	case errors.HasCode(err, errors.CodeNotFound):
		// nothing uploaded yet
	default:
		s.logger.Error("[handleIndex] render failed", "error", err)
		page.Error = err.Error()
		s.renderTemplate(c, http.StatusInternalServerError, "index.html", page)
		return
	}

	s.renderTemplate(c, http.StatusOK, "index.html", page)
}
