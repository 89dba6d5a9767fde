package excel

import (
	"bytes"
	"log/slog"
	"time"

	"faunadash/domain/table"
	"faunadash/internal/errors"

	"github.com/xuri/excelize/v2"
)

// DataReader turns uploaded workbook bytes into a table
type DataReader struct {
	logger *slog.Logger
}

// NewDataReader creates a reader. A nil logger falls back to slog.Default.
func NewDataReader(logger *slog.Logger) *DataReader {
	if logger == nil {
		logger = slog.Default()
	}
	return &DataReader{logger: logger}
}

// ReadBytes parses the first sheet of an .xlsx workbook. The first row is
// the header; no schema is enforced.
func (r *DataReader) ReadBytes(content []byte) (*table.Table, error) {
	sheet, err := r.ReadSheet(content)
	if err != nil {
		return nil, err
	}
	return ToTable(sheet), nil
}

// ReadSheet reads the raw text of the first worksheet
func (r *DataReader) ReadSheet(content []byte) (*RawSheet, error) {
	startTime := time.Now()
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		r.logger.Warn("[DataReader] failed to open workbook", "bytes", len(content), "error", err)
		return nil, errors.LoadError("the uploaded file is not a valid Excel workbook", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.LoadError("the workbook contains no sheets", nil)
	}
	name := sheets[0]

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, errors.LoadError("failed to read sheet "+name, err)
	}
	if len(rows) == 0 {
		return nil, errors.LoadError("sheet "+name+" has no header row", nil)
	}

	sheet := processRows(name, rows)
	r.logger.Info("[DataReader] workbook read",
		"sheet", name,
		"columns", len(sheet.Headers),
		"rows", len(sheet.Rows),
		"elapsed_ms", float64(time.Since(startTime).Nanoseconds())/1e6)
	return sheet, nil
}

// processRows splits the header from the data rows and drops blank rows
func processRows(name string, rows [][]string) *RawSheet {
	headers := table.NormalizeHeaders(rows[0])

	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		if len(row) > len(headers) {
			row = row[:len(headers)]
		}
		data = append(data, row)
	}

	return &RawSheet{Name: name, Headers: headers, Rows: data}
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

// ToTable types every cell of a raw sheet
func ToTable(sheet *RawSheet) *table.Table {
	rows := make([][]table.Value, len(sheet.Rows))
	for i, raw := range sheet.Rows {
		row := make([]table.Value, len(sheet.Headers))
		for j := range row {
			if j < len(raw) {
				row[j] = table.ParseValue(raw[j])
			}
		}
		rows[i] = row
	}
	return table.New(sheet.Headers, rows)
}
