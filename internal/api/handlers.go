package api

import (
	"encoding/json"
	"io"
	"net/http"

	"faunadash/internal/dashboard"
	"faunadash/internal/errors"

	"github.com/tidwall/gjson"
)

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_, loaded := h.service.Current()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "ok",
		"dataset_loaded": loaded,
	})
}

// handleUpload accepts a multipart upload in the "dataset" field
func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.excel.MaxBodySize())

	file, header, err := r.FormFile("dataset")
	if err != nil {
		h.logger.Warn("[API] cannot read uploaded file", "error", err)
		h.writeError(w, h.excel.FormError(err))
		return
	}
	defer file.Close()

	if err := h.excel.ValidateUpload(header.Filename, header.Size); err != nil {
		h.writeError(w, err)
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		h.writeError(w, errors.Wrap(err, "failed to read upload"))
		return
	}

	entry, err := h.service.Upload(r.Context(), header.Filename, content)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Datos cargados correctamente",
		"dataset_id": entry.ID.String(),
		"filename":   entry.Filename,
		"rows":       entry.Table.Len(),
		"columns":    entry.Table.Columns(),
	})
}

func (h *Handler) handleDashboardQuery(w http.ResponseWriter, r *http.Request) {
	h.render(w, dashboard.SelectionFromQuery(r.URL.Query()))
}

// handleDashboardJSON reads {"year": [...], "municipality": [...]}. Values
// may be numbers or strings; a missing or null key leaves the filter at its
// default.
func (h *Handler) handleDashboardJSON(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		h.writeError(w, errors.Wrap(err, "failed to read request body"))
		return
	}

	sel, err := parseSelection(body)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.render(w, sel)
}

func (h *Handler) render(w http.ResponseWriter, sel dashboard.Selection) {
	view, err := h.service.Render(sel)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func parseSelection(body []byte) (dashboard.Selection, error) {
	if len(body) == 0 {
		return dashboard.Selection{}, nil
	}
	if !gjson.ValidBytes(body) {
		return dashboard.Selection{}, errors.InvalidInput("request body is not valid JSON")
	}
	return dashboard.Selection{
		Years:          selectionList(gjson.GetBytes(body, dashboard.FilterYear)),
		Municipalities: selectionList(gjson.GetBytes(body, dashboard.FilterMunicipality)),
	}, nil
}

func selectionList(res gjson.Result) []string {
	if !res.Exists() || res.Type == gjson.Null {
		return nil
	}
	if !res.IsArray() {
		return []string{res.String()}
	}
	items := res.Array()
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item.Type == gjson.Null {
			continue
		}
		out = append(out, item.String())
	}
	return out
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("[API] request failed", "error", err)
	}
	writeJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
