// Package convertapi exposes statement conversion over HTTP.
package convertapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kritsw/bankconv/internal/convert"
	"github.com/kritsw/bankconv/internal/history"
	"github.com/kritsw/bankconv/internal/mapping"
	"github.com/kritsw/bankconv/internal/normalize"
	"github.com/kritsw/bankconv/internal/template"
)

type Handler struct {
	convertSvc *convert.Service
	historySvc *history.Service
	maxUpload  int64
}

func NewHandler(convertSvc *convert.Service, historySvc *history.Service, maxUpload int64) *Handler {
	return &Handler{
		convertSvc: convertSvc,
		historySvc: historySvc,
		maxUpload:  maxUpload,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.preview)
	r.Post("/download", h.download)
}

type bindingDTO struct {
	Bound bool   `json:"bound"`
	Value string `json:"value,omitempty"`
	Ref   string `json:"ref,omitempty"`
}

type previewResponse struct {
	Filename           string                `json:"filename"`
	Bindings           map[string]bindingDTO `json:"bindings"`
	HeaderPreview      string                `json:"header_preview"`
	TransactionPreview string                `json:"transaction_preview"`
	Summary            summaryDTO            `json:"summary"`
}

type summaryDTO struct {
	TotalRows           int   `json:"totalRows"`
	ValidTransactions   int   `json:"validTransactions"`
	InvalidTransactions []int `json:"invalidTransactions"`
}

type validationResponse struct {
	Error         string   `json:"error"`
	MissingFields []string `json:"missing_fields"`
}

// conversion parses the multipart request and runs one conversion. The
// "fields" part, when present, is a JSON object of field label -> spec and
// overrides the selected bank template field by field.
func (h *Handler) conversion(w http.ResponseWriter, r *http.Request) (*convert.Result, bool) {
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return nil, false
	}
	defer file.Close()

	bank := r.FormValue("bank")

	specs, ok := h.convertSvc.SpecsFor(bank, header.Filename)
	if !ok {
		specs = map[template.Field]string{}
	}

	if raw := r.FormValue("fields"); raw != "" {
		var overrides map[string]string
		if err := json.Unmarshal([]byte(raw), &overrides); err != nil {
			http.Error(w, "invalid fields object: "+err.Error(), http.StatusBadRequest)
			return nil, false
		}

		merged := make(map[template.Field]string, len(specs)+len(overrides))
		for f, spec := range specs {
			merged[f] = spec
		}

		for label, spec := range overrides {
			merged[template.Field(label)] = spec
		}

		specs = merged
	}

	if len(specs) == 0 {
		http.Error(w, "no template matched and no fields given", http.StatusBadRequest)
		return nil, false
	}

	result, err := h.convertSvc.Convert(header.Filename, file, specs)
	if err != nil {
		var verr *convert.ValidationError
		if errors.As(err, &verr) {
			missing := make([]string, len(verr.Missing))
			for i, f := range verr.Missing {
				missing[i] = string(f)
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)

			if err := json.NewEncoder(w).Encode(validationResponse{
				Error:         verr.Error(),
				MissingFields: missing,
			}); err != nil {
				slog.Error("failed to encode response", "error", err)
			}

			return nil, false
		}

		http.Error(w, err.Error(), http.StatusBadRequest)

		return nil, false
	}

	if h.historySvc != nil {
		_, err := h.historySvc.Record(r.Context(), history.RecordParams{
			Filename:          header.Filename,
			OutputFilename:    result.Filename,
			BankCode:          bank,
			TotalRows:         result.Summary.TotalRows,
			ValidTransactions: result.Summary.ValidTransactions,
			InvalidRows:       result.Summary.InvalidTransactions,
		})
		if err != nil {
			slog.Error("failed to record conversion", "error", err)
		}
	}

	return result, true
}

func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	result, ok := h.conversion(w, r)
	if !ok {
		return
	}

	bindings := make(map[string]bindingDTO, len(result.Bindings))
	for f, b := range result.Bindings {
		dto := bindingDTO{Bound: b.Bound()}
		if b.Kind == mapping.PointerBinding {
			dto.Ref = b.Ref()
		}

		dto.Value = b.Value
		if f == template.FieldOpeningBalance {
			// Shown in an editable input; keep it human-readable.
			dto.Value = normalize.FormatCurrency(b.Value)
		}

		bindings[string(f)] = dto
	}

	resp := previewResponse{
		Filename:           result.Filename,
		Bindings:           bindings,
		HeaderPreview:      mapping.PreviewHeader(result.Bindings),
		TransactionPreview: mapping.PreviewTransaction(result.Bindings),
		Summary: summaryDTO{
			TotalRows:           result.Summary.TotalRows,
			ValidTransactions:   result.Summary.ValidTransactions,
			InvalidTransactions: result.Summary.InvalidTransactions,
		},
	}
	if resp.Summary.InvalidTransactions == nil {
		resp.Summary.InvalidTransactions = []int{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	result, ok := h.conversion(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))

	if _, err := w.Write([]byte(result.Content)); err != nil {
		slog.Error("failed to write document", "error", err)
	}
}
