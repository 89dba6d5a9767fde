package ui

import (
	"io"
	"net/http"

	"faunadash/internal/errors"

	"github.com/gin-gonic/gin"
)

// handleFileUpload handles dataset file uploads
func (s *Server) handleFileUpload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.excel.MaxBodySize())

	file, header, err := c.Request.FormFile("dataset")
	if err != nil {
		s.logger.Warn("[handleFileUpload] cannot read uploaded file", "error", err)
		s.uploadFailed(c, s.excel.FormError(err))
		return
	}
	defer file.Close()

	if err := s.excel.ValidateUpload(header.Filename, header.Size); err != nil {
		s.logger.Warn("[handleFileUpload] upload rejected", "filename", header.Filename, "size", header.Size, "error", err)
		s.uploadFailed(c, err)
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		s.uploadFailed(c, errors.Wrap(err, "failed to read upload"))
		return
	}

	if _, err := s.service.Upload(c.Request.Context(), header.Filename, content); err != nil {
		s.uploadFailed(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// uploadFailed shows the upload form again with a blocking message
func (s *Server) uploadFailed(c *gin.Context, err error) {
	page := s.newPage()
	page.Error = err.Error()
	s.renderTemplate(c, errors.HTTPStatus(err), "index.html", page)
}
