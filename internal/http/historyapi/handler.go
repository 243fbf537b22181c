// Package historyapi serves recorded conversions.
package historyapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kritsw/bankconv/internal/history"
)

type Handler struct {
	svc *history.Service
}

func NewHandler(svc *history.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
}

type conversionResponse struct {
	ID                uuid.UUID `json:"id"`
	Filename          string    `json:"filename"`
	OutputFilename    string    `json:"output_filename"`
	BankCode          string    `json:"bank_code,omitempty"`
	TotalRows         int       `json:"total_rows"`
	ValidTransactions int       `json:"valid_transactions"`
	InvalidRows       []int     `json:"invalid_rows,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func toConversionResponse(c *history.Conversion) conversionResponse {
	return conversionResponse{
		ID:                c.ID,
		Filename:          c.Filename,
		OutputFilename:    c.OutputFilename,
		BankCode:          c.BankCode,
		TotalRows:         c.TotalRows,
		ValidTransactions: c.ValidTransactions,
		InvalidRows:       c.InvalidRows,
		CreatedAt:         c.CreatedAt,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := history.ListFilter{}

	if bank := r.URL.Query().Get("bank"); bank != "" {
		filter.BankCode = &bank
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}

		filter.Limit = limit
	}

	cs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]conversionResponse, 0, len(cs))
	for _, c := range cs {
		resp = append(resp, toConversionResponse(c))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, history.ErrNotFound) {
			http.Error(w, "conversion not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toConversionResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
