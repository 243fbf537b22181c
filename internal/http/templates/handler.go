// Package templates serves the built-in bank template catalog.
package templates

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kritsw/bankconv/internal/template"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{code}", h.get)
}

type bankResponse struct {
	Code   string            `json:"code"`
	Name   string            `json:"name"`
	Fields map[string]string `json:"fields"`
}

type fieldInfo struct {
	Label     string `json:"label"`
	Header    bool   `json:"header"`
	Mandatory bool   `json:"mandatory"`
}

type listResponse struct {
	Banks  []bankResponse `json:"banks"`
	Fields []fieldInfo    `json:"fields"`
}

func toBankResponse(b template.Bank) bankResponse {
	fields := make(map[string]string, len(b.Fields))
	for f, spec := range b.Fields {
		fields[string(f)] = spec
	}

	return bankResponse{Code: b.Code, Name: b.Name, Fields: fields}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	resp := listResponse{}

	for _, b := range template.All() {
		resp.Banks = append(resp.Banks, toBankResponse(b))
	}

	for _, f := range template.AllFields() {
		resp.Fields = append(resp.Fields, fieldInfo{
			Label:     string(f),
			Header:    f.IsHeader(),
			Mandatory: f.Mandatory(),
		})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	b, ok := template.FindByCode(code)
	if !ok {
		http.Error(w, "unknown bank code", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toBankResponse(b)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
