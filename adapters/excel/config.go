package excel

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"faunadash/internal/errors"
)

// ExcelConfig holds the limits applied to uploaded workbooks
type ExcelConfig struct {
	MaxFileSize       int64
	AllowedExtensions []string
}

// DefaultExcelConfig returns sensible defaults for Excel processing
func DefaultExcelConfig() ExcelConfig {
	return ExcelConfig{
		MaxFileSize:       50 * 1024 * 1024, // 50MB
		AllowedExtensions: []string{".xlsx"},
	}
}

// MaxBodySize bounds a multipart request carrying one workbook. Multipart
// framing needs a little room on top of the file itself.
func (c ExcelConfig) MaxBodySize() int64 {
	return c.MaxFileSize + 1<<20
}

// ValidateUpload checks the file name and declared size of an upload
func (c ExcelConfig) ValidateUpload(filename string, size int64) error {
	if c.MaxFileSize > 0 && size > c.MaxFileSize {
		return errors.InvalidInput(fmt.Sprintf("File size (%.1f MB) exceeds the %.0fMB limit",
			float64(size)/(1024*1024), float64(c.MaxFileSize)/(1024*1024)))
	}

	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range c.AllowedExtensions {
		if ext == strings.ToLower(allowed) {
			return nil
		}
	}
	return errors.InvalidInput(fmt.Sprintf("Only %s files are allowed", strings.Join(c.AllowedExtensions, ", ")))
}

// FormError explains why the "dataset" form file could not be read. A body
// cut off at MaxBodySize is reported as exceeding the size limit.
func (c ExcelConfig) FormError(err error) error {
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		return errors.InvalidInput(fmt.Sprintf("File exceeds the %.0fMB limit", float64(c.MaxFileSize)/(1024*1024)))
	}
	return errors.InvalidInput("No file uploaded")
}
